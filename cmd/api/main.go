package main

import (
	"context"
	"errors"
	stdlog "log"
	"net/http"

	"github.com/joho/godotenv"
	goredis "github.com/redis/go-redis/v9"

	"github.com/Akshit-MMQH/RakshaChain/internal/api"
	"github.com/Akshit-MMQH/RakshaChain/internal/core/ports"
	"github.com/Akshit-MMQH/RakshaChain/internal/core/service"
	"github.com/Akshit-MMQH/RakshaChain/internal/infrastructure/config"
	redisdb "github.com/Akshit-MMQH/RakshaChain/internal/infrastructure/db/redis"
	"github.com/Akshit-MMQH/RakshaChain/internal/infrastructure/ors"
	"github.com/Akshit-MMQH/RakshaChain/internal/infrastructure/storage/jsonfile"
	"github.com/Akshit-MMQH/RakshaChain/pkg/logger"
)

func main() {
	// A local .env is a convenience for development; absence is not an error.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("could not load config: %v", err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// The store file must exist before the server accepts any request.
	store := jsonfile.NewStore(cfg.ShipmentsFile, log)
	if err := store.Init(); err != nil {
		log.Fatal().Err(err).Str("path", cfg.ShipmentsFile).Msg("failed to initialise shipment store")
	}

	// Redis is optional: without it every estimate hits the geocoder.
	var rdb *goredis.Client
	var cache ports.GeocodeCache
	if cfg.Redis.Addr != "" {
		rdb, err = redisdb.Connect(context.Background(), redisdb.Config{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis unavailable, geocode cache disabled")
			rdb = nil
		} else {
			defer rdb.Close()
			cache = redisdb.NewGeocodeCache(rdb, log)
		}
	}

	shipments := service.NewShipmentService(store, log)
	orsClient := ors.NewClient(cfg.ORS.BaseURL, cfg.ORS.APIKey, log)
	estimates := service.NewEstimateService(shipments, orsClient, orsClient, cache, log)

	e := api.NewRouter(api.Dependencies{
		Shipments: shipments,
		Estimates: estimates,
		StorePath: cfg.ShipmentsFile,
		Redis:     rdb,
		Log:       log,
	})

	log.Info().
		Str("port", cfg.Port).
		Str("shipments_file", cfg.ShipmentsFile).
		Msg("starting API server")

	if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
