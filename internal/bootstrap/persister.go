package bootstrap

import (
	"context"
	"time"

	"github.com/jadebrew/site-manager/internal/cache"
	"github.com/jadebrew/site-manager/internal/config"
	"github.com/jadebrew/site-manager/internal/httpx"
	"github.com/jadebrew/site-manager/internal/logger"
	"github.com/jadebrew/site-manager/internal/models"
	"github.com/jadebrew/site-manager/internal/persist"
	"github.com/jadebrew/site-manager/internal/store"
)

const cloudConfigReadTimeout = 3 * time.Second

// SetupPersister wires the remote store client and the local cache into a
// persister. Cloud settings previously saved by the admin override the
// config file; the file only seeds first boot.
func SetupPersister(cfg *config.Config, localCache *cache.Cache, log logger.Logger) *persist.Persister {
	storeClient := store.NewClient(cfg.Cloud.BaseURL, httpx.NewDefaultClient(), log)

	cloud := models.CloudConfig{
		Enabled:    cfg.Cloud.Enabled,
		DocumentID: cfg.Cloud.DocumentID,
		APIKey:     cfg.Cloud.APIKey,
		ShardIDs:   cfg.Cloud.ShardIDs,
	}

	ctx, cancel := context.WithTimeout(context.Background(), cloudConfigReadTimeout)
	defer cancel()

	if saved, ok, err := localCache.CloudConfig(ctx); err != nil {
		log.Warn("Saved cloud config unreadable, using file config", logger.Error(err))
	} else if ok {
		cloud = saved
		log.Info("Cloud config restored from local cache",
			logger.String("document_id", cloud.DocumentID),
			logger.Bool("enabled", cloud.Enabled),
		)
	}

	return persist.New(storeClient, localCache, cloud, log)
}
