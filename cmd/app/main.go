package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"parcel/cmd"
	httpin "parcel/internal/adapters/in/http"
	"parcel/internal/adapters/out/postgres/codrepo"
	"parcel/internal/adapters/out/postgres/courierrepo"
	"parcel/internal/adapters/out/postgres/pricingrepo"
	"parcel/internal/adapters/out/postgres/settlementrepo"
	"parcel/internal/adapters/out/postgres/shipmentrepo"
	"parcel/internal/adapters/out/postgres/tenantrepo"
	"parcel/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := openDatabase(configs)
	migrateDatabase(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := jobs.NewJobManager(
		app.CreateListUnsettledMerchantsQueryHandler(),
		app.CreateCreateSettlementCommandHandler(),
		configs.SettlementSchedule,
		slog.Default(),
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:           goDotEnvVariable("HTTP_PORT"),
		DBHost:             goDotEnvVariable("DB_HOST"),
		DBPort:             goDotEnvVariable("DB_PORT"),
		DBUser:             goDotEnvVariable("DB_USER"),
		DBPassword:         goDotEnvVariable("DB_PASSWORD"),
		DBName:             goDotEnvVariable("DB_NAME"),
		DBSslMode:          goDotEnvVariable("DB_SSLMODE"),
		SettlementSchedule: goDotEnvVariable("SETTLEMENT_SCHEDULE"),
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

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func migrateDatabase(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&shipmentrepo.ShipmentDTO{},
		&shipmentrepo.StatusHistoryDTO{},
		&codrepo.RecordDTO{},
		&settlementrepo.SettlementDTO{},
		&pricingrepo.RuleDTO{},
		&courierrepo.CourierDTO{},
		&tenantrepo.TenantDTO{},
		&tenantrepo.BranchDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := httpin.NewServer(
		app.CreateCreateShipmentCommandHandler(),
		app.CreateApproveShipmentCommandHandler(),
		app.CreateAssignCourierCommandHandler(),
		app.CreateUpdateShipmentStatusCommandHandler(),
		app.CreateCancelShipmentCommandHandler(),
		app.CreateCreateSettlementCommandHandler(),
		app.CreateConfirmPayoutCommandHandler(),
		app.CreateGetMerchantBalanceQueryHandler(),
		app.CreateCalculatePriceQueryHandler(),
		app.CreateGetShipmentHistoryQueryHandler(),
	)

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
