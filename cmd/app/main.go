package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"parcels/cmd"
	"parcels/internal/adapters/in/http"
	"parcels/internal/adapters/out/postgres/accountrepo"
	"parcels/internal/adapters/out/postgres/parcelrepo"
	"parcels/internal/bootstrap"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB, err := gorm.Open(postgresdriver.Open(configs.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = gormDB.AutoMigrate(&accountrepo.AccountDTO{}, &parcelrepo.ParcelDTO{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	seeder := app.CreateSeeder(logger)
	if err = seeder.Seed(context.Background(), seedAccounts(configs)); err != nil {
		log.Fatalf("Failed to seed accounts: %v", err)
	}

	jobManager := app.CreateJobManager(logger)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	// Missing .env is fine; the environment may already be populated.
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPPort:      getEnv("HTTP_PORT", "8080"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", "postgres"),
		DBName:        getEnv("DB_NAME", "parcels"),
		DBSslMode:     getEnv("DB_SSLMODE", "disable"),
		AdminLogin:    getEnv("ADMIN_LOGIN", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func seedAccounts(configs cmd.Config) []bootstrap.SeedAccount {
	accounts := []bootstrap.SeedAccount{
		{Login: configs.AdminLogin, Password: configs.AdminPassword, Role: "ADMIN"},
	}

	if getEnv("SEED_SAMPLE_TRANSPORTERS", "false") == "true" {
		accounts = append(accounts,
			bootstrap.SeedAccount{Login: "std1", Password: "std1pass", Role: "TRANSPORTER", Specialty: "STANDARD"},
			bootstrap.SeedAccount{Login: "fragile1", Password: "fragile1pass", Role: "TRANSPORTER", Specialty: "FRAGILE"},
			bootstrap.SeedAccount{Login: "cold1", Password: "cold1pass", Role: "TRANSPORTER", Specialty: "REFRIGERATED"},
		)
	}

	return accounts
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := http.NewServer(
		app.CreateCreateAccountCommandHandler(),
		app.CreateUpdateAccountCommandHandler(),
		app.CreateCreateParcelCommandHandler(),
		app.CreateUpdateParcelCommandHandler(),
		app.CreateDeleteParcelCommandHandler(),
		app.CreateAssignParcelCommandHandler(),
		app.CreateMarkParcelDeliveredCommandHandler(),
		app.CreateCancelParcelCommandHandler(),
		app.CreateSetAccountActiveCommandHandler(),
		app.CreateGetParcelsQueryHandler(),
		app.CreateGetTransportersQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
