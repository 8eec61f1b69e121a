// Package bootstrap handles application initialization and lifecycle
// management for the site-manager service.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/jadebrew/site-manager/internal/api"
	"github.com/jadebrew/site-manager/internal/auth"
	"github.com/jadebrew/site-manager/internal/logger"
	"github.com/jadebrew/site-manager/internal/state"
)

const version = "dev"

// Start initializes and starts the site-manager application.
func Start() error {
	// Phase 1: Load config and create logger
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := CreateLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	// Phase 2: Setup local cache (optional, degrades to cloud-or-defaults)
	localCache, redisClient := SetupCache(cfg, log)

	// Phase 3: Setup remote store client and persister
	persister := SetupPersister(cfg, localCache, log)

	// Phase 4: Select translator (real provider or deterministic fallback)
	translator := SetupTranslator(cfg, log)

	// Phase 5: Hydrate content and create the state manager
	content, source := persister.Load(context.Background())
	log.Info("Content hydrated", logger.String("source", string(source)))

	publisher := SetupEventPublisher(cfg, redisClient, log)
	manager := state.NewManager(content, source, translator, persister, publisher, log)

	// Phase 6: Background autosave (optional)
	autosave := SetupAutosave(cfg, manager, log)
	if autosave != nil {
		defer autosave.Stop()
	}

	// Phase 7: Setup and run HTTP server
	authenticator := auth.New(cfg.Auth.AdminPassword, cfg.Auth.JWTSecret)
	router := api.NewRouter(api.Deps{
		Manager:       manager,
		Persister:     persister,
		Translator:    translator,
		Authenticator: authenticator,
		CORSOrigins:   cfg.Server.CORSOrigins,
		Logger:        log,
	})

	log.Info("Starting HTTP server",
		logger.String("host", cfg.Server.Host),
		logger.Int("port", cfg.Server.Port),
	)

	if runErr := RunServer(cfg, router, log); runErr != nil {
		log.Error("Server error", logger.Error(runErr))
		return fmt.Errorf("server error: %w", runErr)
	}

	log.Info("Server exited")
	return nil
}
