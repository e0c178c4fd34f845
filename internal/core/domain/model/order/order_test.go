package order_test

import (
	"testing"

	"wroom/internal/core/domain/model/kernel"
	"wroom/internal/core/domain/model/order"
	"wroom/internal/core/domain/model/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeLineItems(t *testing.T) []order.LineItem {
	t.Helper()

	pizza, err := kernel.NewMoney(5000)
	require.NoError(t, err)
	soda, err := kernel.NewMoney(3000)
	require.NoError(t, err)

	first, err := order.NewLineItem(kernel.NewUUID(), 2, pizza)
	require.NoError(t, err)
	second, err := order.NewLineItem(kernel.NewUUID(), 1, soda)
	require.NoError(t, err)

	return []order.LineItem{first, second}
}

func makeOrder(t *testing.T) *order.Order {
	t.Helper()

	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), makeLineItems(t))
	require.NoError(t, err)
	return o
}

// moveTo walks a freshly placed order to the target status through the
// legal per-role steps.
func moveTo(t *testing.T, o *order.Order, target order.Status) {
	t.Helper()

	steps := []struct {
		actor user.Role
		next  order.Status
	}{
		{user.Restaurant, order.Accepted},
		{user.Restaurant, order.Preparing},
		{user.Restaurant, order.ReadyForPickup},
	}

	for _, step := range steps {
		if o.Status() == target {
			return
		}
		require.NoError(t, o.Transition(step.actor, step.next))
	}
	require.Equal(t, target, o.Status())
}

func TestNewOrder(t *testing.T) {
	t.Run("should create pending unclaimed order", func(t *testing.T) {
		id := kernel.NewUUID()
		customerID := kernel.NewUUID()
		restaurantID := kernel.NewUUID()

		o, err := order.NewOrder(id, customerID, restaurantID, makeLineItems(t))

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.True(t, o.CustomerID().IsEqual(customerID))
		assert.True(t, o.RestaurantID().IsEqual(restaurantID))
		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.Courier())
	})

	t.Run("should compute total from line item snapshots", func(t *testing.T) {
		// 2 x 50.00 + 1 x 30.00 = 130.00
		o := makeOrder(t)

		assert.Equal(t, int64(13000), o.TotalPrice().MinorUnits())
	})

	t.Run("should reject missing line items", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil)

		require.ErrorIs(t, err, order.ErrLineItemsAreRequired)
	})

	t.Run("should reject invalid identifiers", func(t *testing.T) {
		lineItems := makeLineItems(t)

		_, err := order.NewOrder(kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(), lineItems)
		require.Error(t, err)

		_, err = order.NewOrder(kernel.NewUUID(), kernel.UUID{}, kernel.NewUUID(), lineItems)
		require.Error(t, err)

		_, err = order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.UUID{}, lineItems)
		require.Error(t, err)
	})

	t.Run("should reject unconstructed line items", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			[]order.LineItem{{}},
		)

		require.ErrorIs(t, err, order.ErrLineItemIsNotConstructed)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore claimed order", func(t *testing.T) {
		courierID := kernel.NewUUID()

		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			&courierID, order.InTransit, makeLineItems(t),
		)

		require.NoError(t, err)
		assert.Equal(t, order.InTransit, o.Status())
		require.NotNil(t, o.Courier())
		assert.True(t, o.Courier().IsEqual(courierID))
	})

	t.Run("should reject claimed order before handoff", func(t *testing.T) {
		courierID := kernel.NewUUID()

		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			&courierID, order.Preparing, makeLineItems(t),
		)

		require.Error(t, err)
	})

	t.Run("should reject unclaimed order past the claim point", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			nil, order.InTransit, makeLineItems(t),
		)

		require.Error(t, err)
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			nil, order.Unknown, makeLineItems(t),
		)

		require.Error(t, err)
	})
}

func TestOrder_Transition(t *testing.T) {
	t.Run("should walk the restaurant track", func(t *testing.T) {
		o := makeOrder(t)

		require.NoError(t, o.Transition(user.Restaurant, order.Accepted))
		require.NoError(t, o.Transition(user.Restaurant, order.Preparing))
		require.NoError(t, o.Transition(user.Restaurant, order.ReadyForPickup))

		assert.Equal(t, order.ReadyForPickup, o.Status())
	})

	t.Run("should allow restaurant cancellation at every pre-handoff stage", func(t *testing.T) {
		for _, stop := range []order.Status{
			order.Pending,
			order.Accepted,
			order.Preparing,
			order.ReadyForPickup,
		} {
			o := makeOrder(t)
			moveTo(t, o, stop)

			require.NoError(t, o.Transition(user.Restaurant, order.Canceled))
			assert.Equal(t, order.Canceled, o.Status())
		}
	})

	t.Run("should reject invalid transition without changing state", func(t *testing.T) {
		o := makeOrder(t)

		err := o.Transition(user.Restaurant, order.ReadyForPickup)

		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("should reject courier track on unclaimed order", func(t *testing.T) {
		o := makeOrder(t)
		moveTo(t, o, order.ReadyForPickup)
		// skip the claim and force WaitingForPickup through Transition
		err := o.Transition(user.Partner, order.WaitingForPickup)

		require.ErrorIs(t, err, order.ErrNotClaimed)
		assert.Equal(t, order.ReadyForPickup, o.Status())
	})

	t.Run("should walk the courier track after a claim", func(t *testing.T) {
		o := makeOrder(t)
		moveTo(t, o, order.ReadyForPickup)
		require.NoError(t, o.Claim(kernel.NewUUID()))

		require.NoError(t, o.Transition(user.Partner, order.InTransit))
		require.NoError(t, o.Transition(user.Partner, order.Completed))

		assert.Equal(t, order.Completed, o.Status())
	})
}

func TestOrder_Claim(t *testing.T) {
	t.Run("should claim ready order and move it to waiting for pickup", func(t *testing.T) {
		o := makeOrder(t)
		moveTo(t, o, order.ReadyForPickup)
		courierID := kernel.NewUUID()

		require.NoError(t, o.Claim(courierID))

		assert.Equal(t, order.WaitingForPickup, o.Status())
		require.NotNil(t, o.Courier())
		assert.True(t, o.Courier().IsEqual(courierID))
	})

	t.Run("should reject second claim", func(t *testing.T) {
		o := makeOrder(t)
		moveTo(t, o, order.ReadyForPickup)
		require.NoError(t, o.Claim(kernel.NewUUID()))

		err := o.Claim(kernel.NewUUID())

		require.ErrorIs(t, err, order.ErrAlreadyClaimed)
	})

	t.Run("should reject claim before the order is ready", func(t *testing.T) {
		for _, stop := range []order.Status{order.Pending, order.Accepted, order.Preparing} {
			o := makeOrder(t)
			moveTo(t, o, stop)

			err := o.Claim(kernel.NewUUID())

			require.ErrorIs(t, err, order.ErrInvalidTransition)
			assert.Nil(t, o.Courier())
		}
	})

	t.Run("should reject invalid courier id", func(t *testing.T) {
		o := makeOrder(t)
		moveTo(t, o, order.ReadyForPickup)

		err := o.Claim(kernel.UUID{})

		require.Error(t, err)
		assert.Nil(t, o.Courier())
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should reject order not created via constructor", func(t *testing.T) {
		var o order.Order

		err := o.Validate()

		require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})

	t.Run("should reject nil order", func(t *testing.T) {
		var o *order.Order

		err := o.Validate()

		require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}
