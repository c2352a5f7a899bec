// @title                       Storefront API
// @version                     1.0
// @description                 Catalog, custom-order and contact API for the Kitenge Atelier storefront.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by the admin token.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	_ "github.com/kitenge-atelier/storefront/docs"
	"github.com/kitenge-atelier/storefront/internal/api"
	"github.com/kitenge-atelier/storefront/internal/api/handler"
	"github.com/kitenge-atelier/storefront/internal/core/domain"
	"github.com/kitenge-atelier/storefront/internal/core/ports"
	"github.com/kitenge-atelier/storefront/internal/core/service"
	"github.com/kitenge-atelier/storefront/internal/infrastructure/db/memory"
	mongostore "github.com/kitenge-atelier/storefront/internal/infrastructure/db/mongo"
	redisstore "github.com/kitenge-atelier/storefront/internal/infrastructure/db/redis"
	"github.com/kitenge-atelier/storefront/internal/pkg/config"
	"github.com/kitenge-atelier/storefront/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "storefront",
	})

	ctx := context.Background()
	health := map[string]handler.Pinger{}

	// 1. Storage
	var store ports.Storage
	switch cfg.StorageDriver {
	case config.DriverMongo:
		client, db, err := mongostore.Connect(ctx, mongostore.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
			Timeout:  cfg.Mongo.Timeout,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to mongodb")
		}
		defer func() { _ = client.Disconnect(context.Background()) }()

		ms := mongostore.NewStore(db)
		if err := ms.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("failed to create mongodb indexes")
		}
		store = ms
		health["mongodb"] = ms
	default:
		store = memory.New()
	}
	log.Info().Str("driver", cfg.StorageDriver).Msg("storage ready")

	// 2. Idempotency keys (optional)
	var idempotency ports.IdempotencyStore
	if cfg.Redis.Addr != "" {
		rdb, err := redisstore.Connect(ctx, redisstore.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Timeout:  cfg.Redis.Timeout,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer func() { _ = rdb.Close() }()

		is := redisstore.NewIdempotencyStore(rdb, cfg.Redis.IdempotencyTTL)
		idempotency = is
		health["redis"] = is
	}

	// 3. Seed data
	if cfg.SeedCatalog {
		if _, err := service.SeedCatalog(ctx, store, service.SampleCatalog(), logger.Component("seed")); err != nil {
			log.Fatal().Err(err).Msg("failed to seed catalog")
		}
	}

	// 4. Admin auth
	var tokens ports.TokenAuthority = service.NewStaticTokenAuthority(cfg.Admin.Username, cfg.Admin.Token)
	if cfg.Admin.JWTSecret != "" {
		tokens = service.NewJWTTokenAuthority(cfg.Admin.JWTSecret, cfg.Admin.TokenTTL)
	}
	auth := service.NewAuthService(store, tokens, cfg.Admin.Username, logger.Component("auth"))
	if _, err := auth.EnsureAdmin(ctx, cfg.Admin.Password); err != nil {
		log.Fatal().Err(err).Msg("failed to provision admin account")
	}

	// 5. HTTP
	e := api.NewRouter(api.Deps{
		Logger:       logger.Component("http"),
		Catalog:      service.NewCatalogService(store, logger.Component("catalog")),
		Orders:       service.NewOrderService(store, idempotency, logger.Component("orders")),
		Contacts:     service.NewContactService(store, logger.Component("contacts")),
		Auth:         auth,
		Analytics:    store,
		ExchangeRate: domain.NewExchangeRate(cfg.Currency.USDToKES),
		Health:       health,
		Registerer:   prometheus.DefaultRegisterer,
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-stop
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		return
	}
	log.Info().Msg("server stopped")
}
