package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"ordering/cmd"
	"ordering/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db, err := gorm.Open(gorm_postgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err = postgres.Migrate(db); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	var redisClient *redis.Client
	if configs.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: configs.RedisAddr})
		defer redisClient.Close()
	}

	app := cmd.NewCompositionRoot(configs, db, redisClient, logger)
	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	// .env is optional; the process environment always wins.
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	config := cmd.Config{
		HTTPPort:             envOr("HTTP_PORT", "8080"),
		DBHost:               envOr("DB_HOST", "localhost"),
		DBPort:               envOr("DB_PORT", "5432"),
		DBUser:               os.Getenv("DB_USER"),
		DBPassword:           os.Getenv("DB_PASSWORD"),
		DBName:               os.Getenv("DB_NAME"),
		DBSslMode:            envOr("DB_SSLMODE", "disable"),
		RedisAddr:            os.Getenv("REDIS_ADDR"),
		DefaultPaymentMethod: os.Getenv("DEFAULT_PAYMENT_METHOD"),
	}

	if raw := os.Getenv("CATALOG_CACHE_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			log.Fatalf("Invalid CATALOG_CACHE_TTL %q: %v", raw, err)
		}
		config.CatalogCacheTTL = ttl
	}
	return config
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()
	app.CreateServer().Register(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
