package main

import (
	"fmt"
	"net/http"
	"os"

	"wroom/cmd"
	_ "wroom/docs"
	httpin "wroom/internal/adapters/in/http"
	"wroom/internal/adapters/out/postgres/orderrepo"
	"wroom/internal/adapters/out/postgres/restaurantrepo"
	"wroom/internal/adapters/out/postgres/userrepo"
	"wroom/internal/jobs"

	"log/slog"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

//	@title			Wroom API
//	@version		1.0
//	@description	Food ordering and delivery service.
//	@BasePath		/api/v1

func main() {
	configs := getConfigs()

	gormDB := mustOpenDB(configs)
	mustMigrate(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(app.CreatePurgeVerificationTokensCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:               goDotEnvVariable("HTTP_PORT"),
		DBHost:                 goDotEnvVariable("DB_HOST"),
		DBPort:                 goDotEnvVariable("DB_PORT"),
		DBUser:                 goDotEnvVariable("DB_USER"),
		DBPassword:             goDotEnvVariable("DB_PASSWORD"),
		DBName:                 goDotEnvVariable("DB_NAME"),
		DBSslMode:              goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:              goDotEnvVariable("KAFKA_HOST"),
		KafkaOrderChangedTopic: goDotEnvVariable("KAFKA_ORDER_CHANGED_TOPIC"),
		SMTPHost:               goDotEnvVariable("SMTP_HOST"),
		SMTPPort:               goDotEnvVariable("SMTP_PORT"),
		SMTPUser:               goDotEnvVariable("SMTP_USER"),
		SMTPPassword:           goDotEnvVariable("SMTP_PASS"),
		SMTPFrom:               goDotEnvVariable("SMTP_FROM"),
		SessionSecret:          goDotEnvVariable("SESSION_SECRET"),
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

func mustOpenDB(config cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.DBHost, config.DBPort, config.DBUser,
		config.DBPassword, config.DBName, config.DBSslMode,
	)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	return gormDB
}

func mustMigrate(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&userrepo.UserDTO{},
		&restaurantrepo.RestaurantDTO{},
		&restaurantrepo.ItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, config cmd.Config) {
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	server := httpin.NewServer(
		app.CreatePlaceOrderCommandHandler(),
		app.CreateUpdateOrderStatusCommandHandler(),
		app.CreateBlockUserCommandHandler(),
		app.CreateGetCustomerOrdersQueryHandler(),
		app.CreateGetRestaurantOrdersQueryHandler(),
		app.CreateGetPartnerOrdersQueryHandler(),
		app.CreateGetOrderQueryHandler(),
	)
	server.RegisterRoutes(e, httpin.NewTokenCodec(config.SessionSecret))

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)))
}
