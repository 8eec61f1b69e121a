package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jadebrew/site-manager/internal/content"
	"github.com/jadebrew/site-manager/internal/models"
)

func testCache(t *testing.T) *Cache {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return New(client)
}

func TestSnapshotRoundTrip(t *testing.T) {
	c := testCache(t)
	ctx := context.Background()

	_, ok, err := c.Snapshot(ctx)
	require.NoError(t, err)
	assert.False(t, ok, "empty cache has no snapshot")

	doc := content.Defaults()
	doc.Hero.Title = models.L("测试", "Test")
	require.NoError(t, c.PutSnapshot(ctx, doc))

	raw, ok, err := c.Snapshot(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	// The snapshot comes back as a raw document ready for migration.
	restored := content.Migrate(raw)
	assert.Equal(t, models.L("测试", "Test"), restored.Hero.Title)
}

func TestDeleteSnapshot(t *testing.T) {
	c := testCache(t)
	ctx := context.Background()

	require.NoError(t, c.PutSnapshot(ctx, content.Defaults()))
	require.NoError(t, c.DeleteSnapshot(ctx))

	_, ok, err := c.Snapshot(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCloudConfigRoundTrip(t *testing.T) {
	c := testCache(t)
	ctx := context.Background()

	_, ok, err := c.CloudConfig(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	cfg := models.CloudConfig{
		Enabled:    true,
		DocumentID: "doc-1",
		APIKey:     "key",
		ShardIDs:   []string{"s1", "s2"},
	}
	require.NoError(t, c.PutCloudConfig(ctx, cfg))

	got, ok, err := c.CloudConfig(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, cfg, got)
}

func TestNilCacheIsNoOp(t *testing.T) {
	var c *Cache
	ctx := context.Background()

	_, ok, err := c.Snapshot(ctx)
	assert.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, c.PutSnapshot(ctx, content.Defaults()))
	assert.NoError(t, c.DeleteSnapshot(ctx))
	assert.NoError(t, c.PutCloudConfig(ctx, models.CloudConfig{}))

	_, ok, err = c.CloudConfig(ctx)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestNewClientRequiresAddress(t *testing.T) {
	_, err := NewClient(Config{})
	assert.ErrorIs(t, err, ErrEmptyAddress)
}
