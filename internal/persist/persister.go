// Package persist orchestrates where content comes from and where it goes:
// remote store first, local cache second, hard-coded defaults last on load;
// local cache always plus remote-if-enabled on save.
package persist

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jadebrew/site-manager/internal/cache"
	"github.com/jadebrew/site-manager/internal/content"
	"github.com/jadebrew/site-manager/internal/logger"
	"github.com/jadebrew/site-manager/internal/models"
	"github.com/jadebrew/site-manager/internal/store"
)

// DefaultLoadTimeout is the startup watchdog: after this long the service
// proceeds with whatever tier resolved instead of hanging on a dead remote.
const DefaultLoadTimeout = 4 * time.Second

// ErrCloudNotConfigured is returned by cloud-only operations when the
// remote store is disabled or missing its document id.
var ErrCloudNotConfigured = errors.New("cloud store is not configured")

// Persister owns the data tiers and the runtime cloud configuration.
type Persister struct {
	mu          sync.RWMutex
	cloud       models.CloudConfig
	store       *store.Client
	cache       *cache.Cache
	log         logger.Logger
	loadTimeout time.Duration
}

// New creates a Persister. cache may be nil (local tier disabled); the
// store client is required even when cloud starts disabled, because cloud
// config is runtime-editable.
func New(storeClient *store.Client, localCache *cache.Cache, cloud models.CloudConfig, log logger.Logger) *Persister {
	return &Persister{
		cloud:       cloud,
		store:       storeClient,
		cache:       localCache,
		log:         log,
		loadTimeout: DefaultLoadTimeout,
	}
}

// SetLoadTimeout overrides the startup watchdog. Zero keeps the default.
func (p *Persister) SetLoadTimeout(d time.Duration) {
	if d > 0 {
		p.loadTimeout = d
	}
}

// CloudConfig returns the active cloud configuration.
func (p *Persister) CloudConfig() models.CloudConfig {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.cloud
}

// SetCloudConfig replaces the cloud configuration and persists it to the
// local cache so it survives restarts.
func (p *Persister) SetCloudConfig(ctx context.Context, cfg models.CloudConfig) error {
	p.mu.Lock()
	p.cloud = cfg
	p.mu.Unlock()

	if err := p.cache.PutCloudConfig(ctx, cfg); err != nil {
		return fmt.Errorf("persist cloud config: %w", err)
	}
	return nil
}

// Load hydrates the content aggregate. The decision is terminal for the
// session: cloud if configured and reachable, else the local snapshot,
// else the hard-coded defaults. Both remote and cached documents go
// through migration.
func (p *Persister) Load(ctx context.Context) (*models.SiteContent, models.DataSource) {
	ctx, cancel := context.WithTimeout(ctx, p.loadTimeout)
	defer cancel()

	cloud := p.CloudConfig()
	if cloud.Enabled && cloud.DocumentID != "" {
		raw, err := p.store.FetchContent(ctx, cloud.APIKey, cloud.DocumentID, cloud.ShardIDs)
		if err == nil {
			p.log.Info("Content loaded from cloud store",
				logger.String("document_id", cloud.DocumentID),
			)
			return content.Migrate(raw), models.SourceCloud
		}
		p.log.Warn("Cloud fetch failed, trying local cache", logger.Error(err))
	}

	raw, ok, err := p.cache.Snapshot(ctx)
	if err != nil {
		p.log.Warn("Local snapshot unreadable, using defaults", logger.Error(err))
	}
	if ok && err == nil {
		p.log.Info("Content loaded from local cache")
		return content.Migrate(raw), models.SourceLocal
	}

	p.log.Info("Content loaded from built-in defaults")
	return content.Defaults(), models.SourceDefault
}

// SaveResult reports the outcome per tier, so callers can treat "saved
// locally, cloud unreachable" differently from a full failure. Rejected is
// set when an invariant violation stopped the save before any write.
type SaveResult struct {
	Rejected error
	Local    error
	Cloud    error
}

// Err joins the per-tier errors; nil when everything succeeded.
func (r SaveResult) Err() error {
	return errors.Join(r.Rejected, r.Local, r.Cloud)
}

// Save writes through: local cache unconditionally, remote store when
// enabled. The library capacity bound and the shard configuration are
// checked up front so a rejected save leaves both tiers untouched. A cloud
// failure does not undo the local write; the error is surfaced for the
// status pill.
func (p *Persister) Save(ctx context.Context, c *models.SiteContent) SaveResult {
	if len(c.Library) > store.ShardCount {
		return SaveResult{Rejected: fmt.Errorf("%w: %d images, %d shards",
			store.ErrLibraryCapacity, len(c.Library), store.ShardCount)}
	}

	cloud := p.CloudConfig()
	if cloud.Enabled && cloud.DocumentID != "" && len(cloud.ShardIDs) != store.ShardCount {
		return SaveResult{Rejected: fmt.Errorf("%w: %d ids, %d shards",
			store.ErrShardConfig, len(cloud.ShardIDs), store.ShardCount)}
	}

	var result SaveResult
	if err := p.cache.PutSnapshot(ctx, c); err != nil {
		p.log.Error("Local snapshot write failed", logger.Error(err))
		result.Local = fmt.Errorf("local save: %w", err)
	}

	if cloud.Enabled && cloud.DocumentID != "" {
		if err := p.store.SaveContent(ctx, cloud.APIKey, cloud.DocumentID, cloud.ShardIDs, c); err != nil {
			p.log.Error("Cloud save failed, edits remain local",
				logger.String("document_id", cloud.DocumentID),
				logger.Error(err),
			)
			result.Cloud = fmt.Errorf("cloud save: %w", err)
		}
	}

	return result
}

// TestConnection checks the configured main document is reachable.
func (p *Persister) TestConnection(ctx context.Context) error {
	cloud := p.CloudConfig()
	if cloud.DocumentID == "" {
		return ErrCloudNotConfigured
	}
	return p.store.TestConnection(ctx, cloud.APIKey, cloud.DocumentID)
}

// Provision creates the shard documents for the configured store and
// records their ids in the cloud configuration.
func (p *Persister) Provision(ctx context.Context) ([]string, error) {
	cloud := p.CloudConfig()
	if cloud.DocumentID == "" {
		return nil, ErrCloudNotConfigured
	}

	ids, err := p.store.Provision(ctx, cloud.APIKey)
	if err != nil {
		return nil, err
	}

	cloud.ShardIDs = ids
	if err := p.SetCloudConfig(ctx, cloud); err != nil {
		return nil, err
	}
	return ids, nil
}

// ClearLocal discards the local snapshot. Used by reset.
func (p *Persister) ClearLocal(ctx context.Context) error {
	return p.cache.DeleteSnapshot(ctx)
}
