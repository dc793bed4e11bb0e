package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"pos-sync-gateway/internal/application"
	syncapi "pos-sync-gateway/internal/infrastructure/api"
	"pos-sync-gateway/internal/infrastructure/cache"
	securitymiddleware "pos-sync-gateway/internal/infrastructure/middleware"
	"pos-sync-gateway/internal/infrastructure/repository"
	"pos-sync-gateway/internal/ports"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"
)

func main() {
	// Initialize logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if err := godotenv.Load(); err != nil {
		logger.Warn().Msg("⚠️  Warning: .env file not found")
	}

	// Get configuration from environment
	apiKey := os.Getenv("API_KEY")
	if apiKey == "" {
		logger.Fatal().Msg("API_KEY environment variable is required")
	}

	// Connect to Postgres
	pool, err := pgxpool.New(context.Background(), databaseURL())
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to Postgres")
	}
	defer pool.Close()

	if err := repository.EnsureSchema(context.Background(), pool); err != nil {
		logger.Fatal().Err(err).Msg("Failed to ensure database schema")
	}

	// Account cache: Redis when configured, otherwise a pass-through
	var accountCache ports.AccountCache = cache.NewNoopAccountCache()
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: os.Getenv("REDIS_PASSWORD"),
		})
		if err := client.Ping(context.Background()).Err(); err != nil {
			logger.Warn().Err(err).Msg("Redis unavailable, account cache disabled")
		} else {
			accountCache = cache.NewRedisAccountCache(client, cacheTTL(), logger)
			logger.Info().Str("addr", addr).Msg("Account cache enabled")
		}
	}

	// Initialize repositories
	accountRepo := repository.NewPostgresAccountRepository(pool)
	resourceRepo := repository.NewPostgresResourceRepository(pool)

	// Initialize application services
	accountService := application.NewAccountService(accountRepo, accountCache, logger)
	syncService := application.NewSyncService(accountService, resourceRepo, logger)

	api := syncapi.NewSyncAPI(accountService, syncService, logger)

	// Setup router
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(securitymiddleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	// Public routes (no API key required)
	r.Get("/metrics", promhttp.Handler().ServeHTTP)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"), // The URL pointing to API definition
	))
	r.Get("/swagger/doc.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		http.ServeFile(w, r, "./docs/swagger.json")
	})

	// Everything else, the health check included, sits behind the API key gate
	r.Group(func(r chi.Router) {
		r.Use(securitymiddleware.APIKeyAuth(apiKey, logger))
		api.Routes(r)
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	logger.Info().Str("port", port).Msg("API User Sync running")
	if err := http.ListenAndServe(":"+port, r); err != nil {
		logger.Fatal().Err(err).Msg("Failed to start server")
	}
}

// databaseURL builds the Postgres DSN from DATABASE_URL or the discrete DB_*
// variables.
func databaseURL() string {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return dsn
	}

	host := env("DB_HOST", "localhost")
	port := env("DB_PORT", "5432")
	user := env("DB_USER", "postgres")
	pass := env("DB_PASSWORD", "postgres")
	name := env("DB_NAME", "pos_sync")
	ssl := env("DB_SSLMODE", "disable")
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", user, pass, host, port, name, ssl)
}

func cacheTTL() time.Duration {
	raw := os.Getenv("ACCOUNT_CACHE_TTL")
	if raw == "" {
		return 5 * time.Minute
	}
	ttl, err := time.ParseDuration(raw)
	if err != nil {
		return 5 * time.Minute
	}
	return ttl
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
