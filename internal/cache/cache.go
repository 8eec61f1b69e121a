// Package cache is the local persistence tier: a key-value store holding
// the last saved content snapshot and the cloud store configuration under
// two fixed keys. Every save writes through here; startup reads it when the
// remote store is unavailable or unconfigured.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jadebrew/site-manager/internal/models"
)

const (
	snapshotKey    = "jadebrew:site:content"
	cloudConfigKey = "jadebrew:site:cloud-config"
)

// ErrEmptyAddress is returned when the cache address is not configured.
var ErrEmptyAddress = errors.New("cache address is required")

const connectionTimeout = 5 * time.Second

// Config holds cache connection configuration.
type Config struct {
	Address  string
	Password string
	DB       int
}

// NewClient connects to the backing store and verifies the connection.
func NewClient(cfg Config) (*redis.Client, error) {
	if cfg.Address == "" {
		return nil, ErrEmptyAddress
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), connectionTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("cache ping failed: %w", err)
	}

	return client, nil
}

// Cache wraps the two fixed keys. A nil *Cache is a valid no-op cache so
// callers need no nil checks when the local tier is disabled.
type Cache struct {
	client *redis.Client
}

// New creates a Cache. Returns nil if client is nil.
func New(client *redis.Client) *Cache {
	if client == nil {
		return nil
	}
	return &Cache{client: client}
}

// Snapshot returns the raw persisted content document, or ok=false when the
// key is absent. The raw map goes through migration before use, the same as
// a remote document.
func (c *Cache) Snapshot(ctx context.Context) (map[string]any, bool, error) {
	if c == nil {
		return nil, false, nil
	}

	data, err := c.client.Get(ctx, snapshotKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read snapshot: %w", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, false, fmt.Errorf("decode snapshot: %w", err)
	}
	return raw, true, nil
}

// PutSnapshot stores the full serialized content.
func (c *Cache) PutSnapshot(ctx context.Context, content *models.SiteContent) error {
	if c == nil {
		return nil
	}

	data, err := json.Marshal(content)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := c.client.Set(ctx, snapshotKey, data, 0).Err(); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// DeleteSnapshot discards the local snapshot. Used by reset.
func (c *Cache) DeleteSnapshot(ctx context.Context) error {
	if c == nil {
		return nil
	}
	if err := c.client.Del(ctx, snapshotKey).Err(); err != nil {
		return fmt.Errorf("delete snapshot: %w", err)
	}
	return nil
}

// CloudConfig returns the persisted cloud store configuration, or ok=false
// when none was saved yet.
func (c *Cache) CloudConfig(ctx context.Context) (models.CloudConfig, bool, error) {
	if c == nil {
		return models.CloudConfig{}, false, nil
	}

	data, err := c.client.Get(ctx, cloudConfigKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.CloudConfig{}, false, nil
	}
	if err != nil {
		return models.CloudConfig{}, false, fmt.Errorf("read cloud config: %w", err)
	}

	var cfg models.CloudConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return models.CloudConfig{}, false, fmt.Errorf("decode cloud config: %w", err)
	}
	return cfg, true, nil
}

// PutCloudConfig stores the cloud store configuration.
func (c *Cache) PutCloudConfig(ctx context.Context, cfg models.CloudConfig) error {
	if c == nil {
		return nil
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode cloud config: %w", err)
	}
	if err := c.client.Set(ctx, cloudConfigKey, data, 0).Err(); err != nil {
		return fmt.Errorf("write cloud config: %w", err)
	}
	return nil
}
