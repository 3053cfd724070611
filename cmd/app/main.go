package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"workorders/cmd"
	httpadapter "workorders/internal/adapters/in/http"
	"workorders/internal/adapters/out/postgres/installerrepo"
	"workorders/internal/adapters/out/postgres/orderrepo"
	"workorders/internal/adapters/out/postgres/tokenrepo"
	"workorders/internal/adapters/out/postgres/userrepo"
	"workorders/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db := mustConnectDB(configs)
	app := cmd.NewCompositionRoot(configs, db)

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(app.CreateGetOrderSummaryQueryHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

// mustConnectDB opens the database connection and migrates the schema.
// TranslateError is required so unique constraint violations surface as
// gorm.ErrDuplicatedKey in the repositories.
func mustConnectDB(configs cmd.Config) *gorm.DB {
	db, err := gorm.Open(gorm_postgres.Open(configs.PostgresDSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = db.AutoMigrate(
		&userrepo.UserDTO{},
		&tokenrepo.TokenDTO{},
		&installerrepo.InstallerDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.CommentDTO{},
		&orderrepo.HistoryDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}

	return db
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(
		app.CreateRegisterUserCommandHandler(),
		app.CreateLoginUserCommandHandler(),
		app.CreateCreateInstallerCommandHandler(),
		app.CreateCreateOrderCommandHandler(),
		app.CreateUpdateOrderCommandHandler(),
		app.CreateAssignInstallerCommandHandler(),
		app.CreateChangeOrderStatusCommandHandler(),
		app.CreateAddCommentCommandHandler(),
		app.CreateAuthenticateUserQueryHandler(),
		app.CreateGetAllOrdersQueryHandler(),
		app.CreateGetMyOrdersQueryHandler(),
		app.CreateGetOrderCommentsQueryHandler(),
		app.CreateGetOrderHistoryQueryHandler(),
		app.CreateGetAllInstallersQueryHandler(),
		app.CreateGetAllUsersQueryHandler(),
		app.CreateGetProfileQueryHandler(),
		app.CreateAccessPolicy(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
