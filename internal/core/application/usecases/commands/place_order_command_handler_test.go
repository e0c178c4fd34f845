package commands_test

import (
	"context"
	"errors"
	"testing"

	"wroom/internal/core/application/usecases/commands"
	"wroom/internal/core/domain/model/kernel"
	"wroom/internal/core/domain/model/order"
	"wroom/internal/core/domain/model/restaurant"
	"wroom/internal/core/ports"
	"wroom/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPlaceRestaurantRepository struct{ mock.Mock }

func (m *MockPlaceRestaurantRepository) Add(_ context.Context, _ *restaurant.Restaurant) error {
	return errors.New("not implemented in mock")
}
func (m *MockPlaceRestaurantRepository) Update(_ context.Context, _ *restaurant.Restaurant) error {
	return errors.New("not implemented in mock")
}
func (m *MockPlaceRestaurantRepository) Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*restaurant.Restaurant), args.Error(1)
}

type MockPlaceOrderRepository struct{ mock.Mock }

func (m *MockPlaceOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockPlaceOrderRepository) Update(_ context.Context, _ *order.Order) error {
	return errors.New("not implemented in mock")
}
func (m *MockPlaceOrderRepository) Get(_ context.Context, _ kernel.UUID) (*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockPlaceOrderRepository) ClaimForCourier(_ context.Context, _, _ kernel.UUID) error {
	return errors.New("not implemented in mock")
}

type MockPlaceUoW struct{ mock.Mock }

func (m *MockPlaceUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockPlaceUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockPlaceUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPlaceUoW) RestaurantRepository() ports.RestaurantRepository {
	args := m.Called()
	return args.Get(0).(ports.RestaurantRepository)
}

func (m *MockPlaceUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockPlaceUoWFactory struct{ mock.Mock }

func (m *MockPlaceUoWFactory) Create() commands.PlaceOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.PlaceOrderUoW)
}

func makeOrderableRestaurant(t *testing.T) (*restaurant.Restaurant, *restaurant.Item) {
	t.Helper()

	r, err := restaurant.NewRestaurant(
		kernel.NewUUID(), kernel.NewUUID(), "Trattoria", "Main St 1", "Copenhagen", "2100",
	)
	require.NoError(t, err)

	price, err := kernel.NewMoney(5000)
	require.NoError(t, err)
	item, err := restaurant.NewItem(kernel.NewUUID(), r.ID(), "Margherita", "Classic pizza", price)
	require.NoError(t, err)
	require.NoError(t, r.AddItem(item))

	return r, item
}

func TestPlaceOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate, item := makeOrderableRestaurant(t)

	cmd, err := commands.NewPlaceOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), aggregate.ID(),
		[]commands.OrderLine{{ItemID: item.ID(), Quantity: 2}},
	)
	require.NoError(t, err)

	restaurantRepo := new(MockPlaceRestaurantRepository)
	orderRepo := new(MockPlaceOrderRepository)
	uow := new(MockPlaceUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPlaceUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory)
	placed, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, placed)
	assert.Equal(t, order.Pending, placed.Status())
	// 2 x 50.00 snapshotted from the catalog
	assert.Equal(t, int64(10000), placed.TotalPrice().MinorUnits())
	restaurantRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.PlaceOrderCommand{} // not constructed properly
	factory := new(MockPlaceUoWFactory)
	h := commands.NewPlaceOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestPlaceOrderCommandHandler_Handle_RestaurantNotOrderable(t *testing.T) {
	ctx := t.Context()
	aggregate, item := makeOrderableRestaurant(t)
	aggregate.Block()

	cmd, err := commands.NewPlaceOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), aggregate.ID(),
		[]commands.OrderLine{{ItemID: item.ID(), Quantity: 1}},
	)
	require.NoError(t, err)

	restaurantRepo := new(MockPlaceRestaurantRepository)
	uow := new(MockPlaceUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPlaceUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	restaurantRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_BlockedItem(t *testing.T) {
	ctx := t.Context()
	aggregate, item := makeOrderableRestaurant(t)
	item.Block()

	cmd, err := commands.NewPlaceOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), aggregate.ID(),
		[]commands.OrderLine{{ItemID: item.ID(), Quantity: 1}},
	)
	require.NoError(t, err)

	restaurantRepo := new(MockPlaceRestaurantRepository)
	uow := new(MockPlaceUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPlaceUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestPlaceOrderCommandHandler_Handle_UnknownItem(t *testing.T) {
	ctx := t.Context()
	aggregate, _ := makeOrderableRestaurant(t)

	cmd, err := commands.NewPlaceOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), aggregate.ID(),
		[]commands.OrderLine{{ItemID: kernel.NewUUID(), Quantity: 1}},
	)
	require.NoError(t, err)

	restaurantRepo := new(MockPlaceRestaurantRepository)
	uow := new(MockPlaceUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPlaceUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestPlaceOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	aggregate, item := makeOrderableRestaurant(t)

	cmd, err := commands.NewPlaceOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), aggregate.ID(),
		[]commands.OrderLine{{ItemID: item.ID(), Quantity: 1}},
	)
	require.NoError(t, err)

	restaurantRepo := new(MockPlaceRestaurantRepository)
	orderRepo := new(MockPlaceOrderRepository)
	uow := new(MockPlaceUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPlaceUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertExpectations(t)
}
