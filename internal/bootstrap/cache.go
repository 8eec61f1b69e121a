package bootstrap

import (
	"github.com/redis/go-redis/v9"

	"github.com/jadebrew/site-manager/internal/cache"
	"github.com/jadebrew/site-manager/internal/config"
	"github.com/jadebrew/site-manager/internal/events"
	"github.com/jadebrew/site-manager/internal/logger"
)

// SetupCache connects the local persistence tier if enabled. Returns nil
// values when disabled or unreachable; the service then runs
// cloud-or-defaults only. The raw client is returned too so the event
// publisher can share the connection.
func SetupCache(cfg *config.Config, log logger.Logger) (*cache.Cache, *redis.Client) {
	if !cfg.Redis.Enabled {
		log.Info("Local cache disabled by config")
		return nil, nil
	}

	client, err := cache.NewClient(cache.Config{
		Address:  cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Warn("Local cache unavailable, running without local tier",
			logger.Error(err),
		)
		return nil, nil
	}

	log.Info("Local cache connected",
		logger.String("address", cfg.Redis.Address),
	)
	return cache.New(client), client
}

// SetupEventPublisher creates an optional event publisher on the shared
// cache connection. Returns nil if events are disabled or no connection
// exists.
func SetupEventPublisher(cfg *config.Config, client *redis.Client, log logger.Logger) *events.Publisher {
	if !cfg.Redis.Events || client == nil {
		return nil
	}

	log.Info("Event publisher initialized",
		logger.String("redis_address", cfg.Redis.Address),
	)
	return events.NewPublisher(client, log)
}
