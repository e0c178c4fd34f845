package queries_test

import (
	"context"
	"testing"
	"time"

	"wroom/internal/adapters/out/postgres/orderrepo"
	"wroom/internal/core/application/usecases/queries"
	"wroom/internal/core/domain/model/kernel"
	"wroom/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetPartnerOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetPartnerOrdersQueryHandler
}

func (suite *GetPartnerOrdersQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetPartnerOrdersQueryHandler(db)
}

func (suite *GetPartnerOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetPartnerOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetPartnerOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query, err := queries.NewGetPartnerOrdersQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetPartnerOrdersQueryHandlerTestSuite) TestHandle_FeedCombinesMarketplaceAndOwnClaims() {
	courierID := kernel.NewUUID()
	otherCourierID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()

	unclaimed := seedOrder(&suite.Suite, suite.db, kernel.NewUUID(), restaurantID, order.ReadyForPickup, nil)
	ownClaim := seedOrder(&suite.Suite, suite.db, kernel.NewUUID(), restaurantID, order.WaitingForPickup, &courierID)
	// Invisible to this partner: claimed elsewhere or not yet ready.
	seedOrder(&suite.Suite, suite.db, kernel.NewUUID(), restaurantID, order.InTransit, &otherCourierID)
	seedOrder(&suite.Suite, suite.db, kernel.NewUUID(), restaurantID, order.Pending, nil)

	query, err := queries.NewGetPartnerOrdersQuery(courierID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	// Unclaimed marketplace orders sort before the partner's own claims.
	suite.True(result[0].ID.IsEqual(unclaimed.ID()))
	suite.Nil(result[0].CourierID)
	suite.Equal("READY_FOR_PICKUP", result[0].Status)

	suite.True(result[1].ID.IsEqual(ownClaim.ID()))
	suite.Require().NotNil(result[1].CourierID)
	suite.True(result[1].CourierID.IsEqual(courierID))
}

func (suite *GetPartnerOrdersQueryHandlerTestSuite) TestHandle_IncludesCompletedDeliveries() {
	courierID := kernel.NewUUID()

	completed := seedOrder(&suite.Suite, suite.db, kernel.NewUUID(), kernel.NewUUID(), order.Completed, &courierID)

	query, err := queries.NewGetPartnerOrdersQuery(courierID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].ID.IsEqual(completed.ID()))
	suite.Equal("COMPLETED", result[0].Status)
}

func (suite *GetPartnerOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetPartnerOrdersQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, queries.ErrGetPartnerOrdersQueryIsNotConstructed)
}

func TestGetPartnerOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetPartnerOrdersQueryHandlerTestSuite))
}
