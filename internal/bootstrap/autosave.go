package bootstrap

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jadebrew/site-manager/internal/config"
	"github.com/jadebrew/site-manager/internal/logger"
	"github.com/jadebrew/site-manager/internal/state"
)

const autosaveTimeout = 30 * time.Second

// SetupAutosave starts the periodic background save of unsaved edits.
// Returns nil when disabled. Clean state is skipped so an idle service
// makes no writes.
func SetupAutosave(cfg *config.Config, manager *state.Manager, log logger.Logger) *cron.Cron {
	if !cfg.Autosave.Enabled {
		return nil
	}

	c := cron.New()
	_, err := c.AddFunc(cfg.Autosave.Schedule, func() {
		if !manager.Dirty() {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), autosaveTimeout)
		defer cancel()

		if err := manager.Save(ctx); err != nil {
			log.Warn("Autosave failed, edits remain in memory", logger.Error(err))
			return
		}
		log.Info("Autosave completed")
	})
	if err != nil {
		log.Warn("Invalid autosave schedule, autosave disabled",
			logger.String("schedule", cfg.Autosave.Schedule),
			logger.Error(err),
		)
		return nil
	}

	c.Start()
	log.Info("Autosave scheduled", logger.String("schedule", cfg.Autosave.Schedule))
	return c
}
