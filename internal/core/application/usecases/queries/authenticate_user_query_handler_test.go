package queries_test

import (
	"context"
	"testing"
	"time"

	"workorders/internal/adapters/out/postgres"
	"workorders/internal/adapters/out/postgres/installerrepo"
	"workorders/internal/adapters/out/postgres/tokenrepo"
	"workorders/internal/adapters/out/postgres/userrepo"
	"workorders/internal/core/application/usecases/queries"
	"workorders/internal/core/domain/model/account"
	"workorders/internal/core/domain/model/installer"
	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/ports"
	"workorders/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// AccountQueriesTestSuite exercises the identity read models: token
// resolution, the user listing, the installer directory, and the profile view.
type AccountQueriesTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *AccountQueriesTestSuite) SetupSuite() {
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
	)
	suite.Require().NoError(err)

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *AccountQueriesTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *AccountQueriesTestSuite) SetupTest() {
	suite.db.Exec("TRUNCATE installers, tokens, users")
}

func (suite *AccountQueriesTestSuite) commit(ctx context.Context, fn func(uow ports.UnitOfWork)) {
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	fn(uow)
	suite.Require().NoError(uow.Commit(ctx))
}

func (suite *AccountQueriesTestSuite) seedUser(ctx context.Context, username string, role account.Role) *account.User {
	user, err := account.NewUser(kernel.NewUUID(), username, "hash", role)
	suite.Require().NoError(err)

	suite.commit(ctx, func(uow ports.UnitOfWork) {
		suite.Require().NoError(uow.UserRepository().Add(ctx, user))
	})
	return user
}

func (suite *AccountQueriesTestSuite) TestAuthenticateUserResolvesToken() {
	ctx := context.Background()
	user := suite.seedUser(ctx, "dispatcher1", account.Dispatcher)

	token, err := account.NewToken(kernel.NewUUID(), "tok-12345", user.ID())
	suite.Require().NoError(err)
	suite.commit(ctx, func(uow ports.UnitOfWork) {
		suite.Require().NoError(uow.TokenRepository().Add(ctx, token))
	})

	handler := queries.NewAuthenticateUserQueryHandler(suite.db)

	query, err := queries.NewAuthenticateUserQuery("tok-12345")
	suite.Require().NoError(err)

	identity, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal(user.ID(), identity.UserID)
	suite.Equal("dispatcher1", identity.Username)
	suite.Equal(account.Dispatcher, identity.Role)
}

func (suite *AccountQueriesTestSuite) TestAuthenticateUserUnknownToken() {
	ctx := context.Background()
	handler := queries.NewAuthenticateUserQueryHandler(suite.db)

	query, err := queries.NewAuthenticateUserQuery("no-such-token")
	suite.Require().NoError(err)

	_, err = handler.Handle(ctx, query)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrNotAuthenticated)
}

func (suite *AccountQueriesTestSuite) TestGetAllUsersIncludesInstallerLink() {
	ctx := context.Background()
	admin := suite.seedUser(ctx, "admin", account.Administrator)
	worker := suite.seedUser(ctx, "worker", account.Installer)
	workerID := worker.ID()

	profile, err := installer.NewInstaller(kernel.NewUUID(), "Bob Wires", "bob@example.com", &workerID)
	suite.Require().NoError(err)
	suite.commit(ctx, func(uow ports.UnitOfWork) {
		suite.Require().NoError(uow.InstallerRepository().Add(ctx, profile))
	})

	handler := queries.NewGetAllUsersQueryHandler(suite.db)

	users, err := handler.Handle(ctx, queries.NewGetAllUsersQuery())
	suite.Require().NoError(err)
	suite.Require().Len(users, 2)

	suite.Equal(admin.ID(), users[0].ID)
	suite.Equal("admin", users[0].Username)
	suite.Equal(account.Administrator, users[0].Role)
	suite.Nil(users[0].InstallerID)

	suite.Equal(worker.ID(), users[1].ID)
	suite.Require().NotNil(users[1].InstallerID)
	suite.True(users[1].InstallerID.IsEqual(profile.ID()))
}

func (suite *AccountQueriesTestSuite) TestGetAllInstallersSortedByName() {
	ctx := context.Background()

	second, err := installer.NewInstaller(kernel.NewUUID(), "Zoe Volt", "zoe@example.com", nil)
	suite.Require().NoError(err)
	first, err := installer.NewInstaller(kernel.NewUUID(), "Al Ampere", "al@example.com", nil)
	suite.Require().NoError(err)

	suite.commit(ctx, func(uow ports.UnitOfWork) {
		suite.Require().NoError(uow.InstallerRepository().Add(ctx, second))
		suite.Require().NoError(uow.InstallerRepository().Add(ctx, first))
	})

	handler := queries.NewGetAllInstallersQueryHandler(suite.db)

	installers, err := handler.Handle(ctx, queries.NewGetAllInstallersQuery())
	suite.Require().NoError(err)
	suite.Require().Len(installers, 2)
	suite.Equal("Al Ampere", installers[0].Name)
	suite.Equal("Zoe Volt", installers[1].Name)
	suite.Nil(installers[0].UserID)
}

func (suite *AccountQueriesTestSuite) TestGetProfileWithInstaller() {
	ctx := context.Background()
	worker := suite.seedUser(ctx, "worker", account.Installer)
	workerID := worker.ID()

	profile, err := installer.NewInstaller(kernel.NewUUID(), "Bob Wires", "bob@example.com", &workerID)
	suite.Require().NoError(err)
	suite.commit(ctx, func(uow ports.UnitOfWork) {
		suite.Require().NoError(uow.InstallerRepository().Add(ctx, profile))
	})

	handler := queries.NewGetProfileQueryHandler(suite.db)

	query, err := queries.NewGetProfileQuery(workerID)
	suite.Require().NoError(err)

	resp, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal("worker", resp.User.Username)
	suite.Equal(account.Installer, resp.User.Role)
	suite.Require().NotNil(resp.Installer)
	suite.Equal("Bob Wires", resp.Installer.Name)
	suite.Equal("bob@example.com", resp.Installer.ContactInfo)
}

func (suite *AccountQueriesTestSuite) TestGetProfileWithoutInstaller() {
	ctx := context.Background()
	admin := suite.seedUser(ctx, "admin", account.Administrator)

	handler := queries.NewGetProfileQueryHandler(suite.db)

	query, err := queries.NewGetProfileQuery(admin.ID())
	suite.Require().NoError(err)

	resp, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal("admin", resp.User.Username)
	suite.Nil(resp.Installer)
}

func (suite *AccountQueriesTestSuite) TestGetProfileUnknownUser() {
	ctx := context.Background()
	handler := queries.NewGetProfileQueryHandler(suite.db)

	query, err := queries.NewGetProfileQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = handler.Handle(ctx, query)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestAccountQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(AccountQueriesTestSuite))
}
