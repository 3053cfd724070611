package queries_test

import (
	"context"
	"testing"
	"time"

	"workorders/internal/adapters/out/postgres"
	"workorders/internal/adapters/out/postgres/installerrepo"
	"workorders/internal/adapters/out/postgres/orderrepo"
	"workorders/internal/adapters/out/postgres/tokenrepo"
	"workorders/internal/adapters/out/postgres/userrepo"
	"workorders/internal/core/application/usecases/queries"
	"workorders/internal/core/domain/model/account"
	"workorders/internal/core/domain/model/installer"
	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/order"
	"workorders/internal/core/ports"
	"workorders/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OrderQueriesTestSuite exercises the order-side read models: the full
// listing, the per-installer listing, comments, and the audit trail.
type OrderQueriesTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *OrderQueriesTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
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

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&userrepo.UserDTO{},
		&tokenrepo.TokenDTO{},
		&installerrepo.InstallerDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.CommentDTO{},
		&orderrepo.HistoryDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *OrderQueriesTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *OrderQueriesTestSuite) SetupTest() {
	suite.db.Exec("TRUNCATE orders, comments, order_history, installers, tokens, users")
}

func (suite *OrderQueriesTestSuite) commit(ctx context.Context, fn func(uow ports.UnitOfWork)) {
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	fn(uow)
	suite.Require().NoError(uow.Commit(ctx))
}

func (suite *OrderQueriesTestSuite) seedOrder(ctx context.Context, address string) *order.Order {
	aggregate, err := order.NewOrder(
		kernel.NewUUID(), address, "AC-100", "555-0101", kernel.NewUUID())
	suite.Require().NoError(err)

	suite.commit(ctx, func(uow ports.UnitOfWork) {
		suite.Require().NoError(uow.OrderRepository().Add(ctx, aggregate))
	})
	return aggregate
}

func (suite *OrderQueriesTestSuite) seedComment(ctx context.Context, orderID kernel.UUID, text string) {
	comment, err := order.NewComment(kernel.NewUUID(), orderID, text)
	suite.Require().NoError(err)

	suite.commit(ctx, func(uow ports.UnitOfWork) {
		suite.Require().NoError(uow.CommentRepository().Add(ctx, comment))
	})
}

func (suite *OrderQueriesTestSuite) TestGetAllOrdersEmbedsComments() {
	ctx := context.Background()
	first := suite.seedOrder(ctx, "12 Main St")
	second := suite.seedOrder(ctx, "99 Oak Ave")
	suite.seedComment(ctx, first.ID(), "gate code 4411")
	suite.seedComment(ctx, first.ID(), "customer prefers mornings")

	handler := queries.NewGetAllOrdersQueryHandler(suite.db)

	orders, err := handler.Handle(ctx, queries.NewGetAllOrdersQuery())
	suite.Require().NoError(err)
	suite.Require().Len(orders, 2)

	suite.Equal(first.ID(), orders[0].ID)
	suite.Equal("12 Main St", orders[0].Address)
	suite.Equal(order.InProgress, orders[0].Status)
	suite.Require().Len(orders[0].Comments, 2)
	suite.Equal("gate code 4411", orders[0].Comments[0].Text)
	suite.Equal("customer prefers mornings", orders[0].Comments[1].Text)

	suite.Equal(second.ID(), orders[1].ID)
	suite.Empty(orders[1].Comments)
}

func (suite *OrderQueriesTestSuite) TestGetAllOrdersEmptyDatabase() {
	ctx := context.Background()
	handler := queries.NewGetAllOrdersQueryHandler(suite.db)

	orders, err := handler.Handle(ctx, queries.NewGetAllOrdersQuery())
	suite.Require().NoError(err)
	suite.NotNil(orders)
	suite.Empty(orders)
}

func (suite *OrderQueriesTestSuite) TestGetMyOrdersFiltersByInstallerLink() {
	ctx := context.Background()

	user, err := account.NewUser(kernel.NewUUID(), "installer1", "hash", account.Installer)
	suite.Require().NoError(err)
	userID := user.ID()

	profile, err := installer.NewInstaller(kernel.NewUUID(), "Bob Wires", "bob@example.com", &userID)
	suite.Require().NoError(err)

	mine := suite.seedOrder(ctx, "12 Main St")
	other := suite.seedOrder(ctx, "99 Oak Ave")
	_ = other

	suite.commit(ctx, func(uow ports.UnitOfWork) {
		suite.Require().NoError(uow.UserRepository().Add(ctx, user))
		suite.Require().NoError(uow.InstallerRepository().Add(ctx, profile))

		loaded, getErr := uow.OrderRepository().Get(ctx, mine.ID())
		suite.Require().NoError(getErr)
		suite.Require().NoError(loaded.AssignInstaller(profile.ID(), userID))
		suite.Require().NoError(uow.OrderRepository().Update(ctx, loaded))
	})

	handler := queries.NewGetMyOrdersQueryHandler(suite.db)

	query, err := queries.NewGetMyOrdersQuery(userID)
	suite.Require().NoError(err)

	orders, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 1)
	suite.Equal(mine.ID(), orders[0].ID)
}

func (suite *OrderQueriesTestSuite) TestGetMyOrdersWithoutProfileReturnsEmpty() {
	ctx := context.Background()
	suite.seedOrder(ctx, "12 Main St")

	handler := queries.NewGetMyOrdersQueryHandler(suite.db)

	query, err := queries.NewGetMyOrdersQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	orders, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.NotNil(orders)
	suite.Empty(orders)
}

func (suite *OrderQueriesTestSuite) TestGetOrderCommentsUnknownOrder() {
	ctx := context.Background()
	handler := queries.NewGetOrderCommentsQueryHandler(suite.db)

	query, err := queries.NewGetOrderCommentsQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = handler.Handle(ctx, query)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderQueriesTestSuite) TestGetOrderCommentsOldestFirst() {
	ctx := context.Background()
	aggregate := suite.seedOrder(ctx, "12 Main St")
	suite.seedComment(ctx, aggregate.ID(), "first")
	suite.seedComment(ctx, aggregate.ID(), "second")

	handler := queries.NewGetOrderCommentsQueryHandler(suite.db)

	query, err := queries.NewGetOrderCommentsQuery(aggregate.ID())
	suite.Require().NoError(err)

	comments, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(comments, 2)
	suite.Equal("first", comments[0].Text)
	suite.Equal("second", comments[1].Text)
	suite.Equal(aggregate.ID(), comments[0].OrderID)
}

func (suite *OrderQueriesTestSuite) TestGetOrderHistoryReadsTrailInOrder() {
	ctx := context.Background()
	aggregate := suite.seedOrder(ctx, "12 Main St")
	actorID := kernel.NewUUID()

	actions := []order.ActionType{order.ActionCreate, order.ActionChangeStatus}
	for _, action := range actions {
		entry, err := order.NewHistoryEntry(
			kernel.NewUUID(), aggregate.ID(), actorID, action, "details")
		suite.Require().NoError(err)

		suite.commit(ctx, func(uow ports.UnitOfWork) {
			suite.Require().NoError(uow.HistoryRepository().Append(ctx, entry))
		})
	}

	handler := queries.NewGetOrderHistoryQueryHandler(suite.db)

	query, err := queries.NewGetOrderHistoryQuery(aggregate.ID())
	suite.Require().NoError(err)

	entries, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(entries, 2)
	suite.Equal(order.ActionCreate, entries[0].Action)
	suite.Equal(order.ActionChangeStatus, entries[1].Action)
	suite.Equal(actorID, entries[0].ActorID)
}

func (suite *OrderQueriesTestSuite) TestGetOrderSummaryCountsByStatus() {
	ctx := context.Background()
	first := suite.seedOrder(ctx, "12 Main St")
	suite.seedOrder(ctx, "99 Oak Ave")
	actorID := kernel.NewUUID()

	suite.commit(ctx, func(uow ports.UnitOfWork) {
		loaded, err := uow.OrderRepository().Get(ctx, first.ID())
		suite.Require().NoError(err)
		suite.Require().NoError(loaded.AssignInstaller(kernel.NewUUID(), actorID))
		suite.Require().NoError(loaded.ChangeStatus(order.Completed, actorID))
		suite.Require().NoError(uow.OrderRepository().Update(ctx, loaded))
	})

	handler := queries.NewGetOrderSummaryQueryHandler(suite.db)

	summary, err := handler.Handle(ctx, queries.NewGetOrderSummaryQuery())
	suite.Require().NoError(err)
	suite.Equal(int64(2), summary.Total)
	suite.Equal(int64(1), summary.InProgress)
	suite.Equal(int64(0), summary.NeedsRework)
	suite.Equal(int64(1), summary.Completed)
	suite.Equal(int64(1), summary.Unassigned)
}

func (suite *OrderQueriesTestSuite) TestGetOrderHistoryUnknownOrder() {
	ctx := context.Background()
	handler := queries.NewGetOrderHistoryQueryHandler(suite.db)

	query, err := queries.NewGetOrderHistoryQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = handler.Handle(ctx, query)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestOrderQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(OrderQueriesTestSuite))
}
