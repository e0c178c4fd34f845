package userrepo_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"wroom/internal/adapters/out/postgres/userrepo"
	"wroom/internal/core/domain/model/kernel"
	"wroom/internal/core/domain/model/user"
	"wroom/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// UserRepositoryIntegrationTestSuite provides integration tests for
// GormUserRepository using PostgreSQL containers.
type UserRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *userrepo.GormUserRepository
	tracker    *MockAggregateTracker
}

func (suite *UserRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&userrepo.UserDTO{}))
}

func (suite *UserRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE users").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = userrepo.NewGormUserRepository(suite.db, suite.tracker)
}

func (suite *UserRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UserRepositoryIntegrationTestSuite) createTestUser(email string) *user.User {
	account, err := user.NewUser(kernel.NewUUID(), email, "Jan", "Larsen", user.Customer)
	suite.Require().NoError(err)
	return account
}

func (suite *UserRepositoryIntegrationTestSuite) addUser(account *user.User) {
	suite.tracker.On("TrackAggregate", account.ID(), account).Once()
	suite.Require().NoError(suite.repository.Add(context.Background(), account))
}

func (suite *UserRepositoryIntegrationTestSuite) TestAdd_And_Get_RoundTrip() {
	restaurantID := kernel.NewUUID()
	account, err := user.RestoreUser(
		kernel.NewUUID(), "maria@example.com", "Maria", "Rossi", user.Restaurant,
		&restaurantID, true, false, false, "", time.Time{},
	)
	suite.Require().NoError(err)

	suite.addUser(account)

	loaded, err := suite.repository.Get(context.Background(), account.ID())
	suite.Require().NoError(err)
	suite.True(loaded.ID().IsEqual(account.ID()))
	suite.Equal("maria@example.com", loaded.Email())
	suite.Equal("Maria", loaded.FirstName())
	suite.Equal(user.Restaurant, loaded.Role())
	suite.Require().NotNil(loaded.RestaurantID())
	suite.True(loaded.RestaurantID().IsEqual(restaurantID))
	suite.True(loaded.IsVerified())
	suite.False(loaded.IsBlocked())
}

func (suite *UserRepositoryIntegrationTestSuite) TestGet_MissingUser_ReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UserRepositoryIntegrationTestSuite) TestUpdate_BlockedFlag_Persists() {
	account := suite.createTestUser("jan@example.com")
	suite.addUser(account)

	account.Block()
	suite.tracker.On("TrackAggregate", account.ID(), account).Once()
	suite.Require().NoError(suite.repository.Update(context.Background(), account))

	loaded, err := suite.repository.Get(context.Background(), account.ID())
	suite.Require().NoError(err)
	suite.True(loaded.IsBlocked())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *UserRepositoryIntegrationTestSuite) TestUpdate_MissingUser_ReturnsError() {
	account := suite.createTestUser("ghost@example.com")

	err := suite.repository.Update(context.Background(), account)

	suite.Require().Error(err)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *UserRepositoryIntegrationTestSuite) TestPurgeExpiredVerificationTokens() {
	ctx := context.Background()
	now := time.Now()

	seed := func(email, token string, expiry time.Time) *user.User {
		account, err := user.RestoreUser(
			kernel.NewUUID(), email, "Jan", "Larsen", user.Customer,
			nil, false, false, false, token, expiry,
		)
		suite.Require().NoError(err)
		suite.addUser(account)
		return account
	}

	expired := seed("expired@example.com", "token-expired", now.Add(-time.Hour))
	fresh := seed("fresh@example.com", "token-fresh", now.Add(time.Hour))
	seed("verified@example.com", "", time.Time{})

	purged, err := suite.repository.PurgeExpiredVerificationTokens(ctx, now)

	suite.Require().NoError(err)
	suite.Equal(int64(1), purged)

	loaded, err := suite.repository.Get(ctx, expired.ID())
	suite.Require().NoError(err)
	suite.Empty(loaded.VerificationToken())
	suite.False(loaded.IsVerified())

	loaded, err = suite.repository.Get(ctx, fresh.ID())
	suite.Require().NoError(err)
	suite.Equal("token-fresh", loaded.VerificationToken())
}

func (suite *UserRepositoryIntegrationTestSuite) TestPurgeExpiredVerificationTokens_Idempotent() {
	ctx := context.Background()
	now := time.Now()

	for i := range 3 {
		account, err := user.RestoreUser(
			kernel.NewUUID(), fmt.Sprintf("user%d@example.com", i), "Jan", "Larsen", user.Customer,
			nil, false, false, false, "stale-token", now.Add(-time.Hour),
		)
		suite.Require().NoError(err)
		suite.addUser(account)
	}

	purged, err := suite.repository.PurgeExpiredVerificationTokens(ctx, now)
	suite.Require().NoError(err)
	suite.Equal(int64(3), purged)

	purged, err = suite.repository.PurgeExpiredVerificationTokens(ctx, now)
	suite.Require().NoError(err)
	suite.Equal(int64(0), purged)
}

func TestUserRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryIntegrationTestSuite))
}
