package state

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jadebrew/site-manager/internal/cache"
	"github.com/jadebrew/site-manager/internal/content"
	"github.com/jadebrew/site-manager/internal/logger"
	"github.com/jadebrew/site-manager/internal/models"
	"github.com/jadebrew/site-manager/internal/persist"
	"github.com/jadebrew/site-manager/internal/store"
	"github.com/jadebrew/site-manager/internal/testhelpers"
)

func TestSubmitLeadPersistsImmediately(t *testing.T) {
	m, localCache := newTestManager(t, echoTranslator{})

	lead := m.SubmitLead(context.Background(), "王五", "13800000000", "杭州", "想了解加盟")

	assert.Equal(t, models.LeadStatusNew, lead.Status)
	assert.Positive(t, lead.ID)
	assert.Equal(t, lead.ID, lead.Timestamp)

	// The submission hits the local tier without any admin save.
	raw, ok, err := localCache.Snapshot(context.Background())
	require.NoError(t, err)
	require.True(t, ok)

	persisted := content.Migrate(raw)
	require.Len(t, persisted.Leads, 1)
	assert.Equal(t, "王五", persisted.Leads[0].Name)
	assert.False(t, m.Dirty(), "a persisted submission leaves nothing pending")
}

func TestSubmitLeadPersistFailureLeavesStateDirty(t *testing.T) {
	mr, client := testhelpers.NewTestRedis(t)
	localCache := cache.New(client)

	storeClient := store.NewClient("http://127.0.0.1:1", nil, logger.NewNop())
	persister := persist.New(storeClient, localCache, models.CloudConfig{}, logger.NewNop())
	m := NewManager(content.Defaults(), models.SourceDefault, echoTranslator{},
		persister, nil, testhelpers.NewTestLogger())

	// Local tier down: the lead must survive in memory with a retry pending.
	mr.Close()

	lead := m.SubmitLead(context.Background(), "周八", "13600000000", "南京", "")
	assert.Positive(t, lead.ID)
	require.Len(t, m.Content().Leads, 1, "lead is accepted even when persistence fails")
	assert.True(t, m.Dirty(), "an unpersisted lead must leave the state dirty")
}

func TestSubmitLeadMonotonicIDs(t *testing.T) {
	m, _ := newTestManager(t, echoTranslator{})

	first := m.SubmitLead(context.Background(), "a", "1", "", "")
	second := m.SubmitLead(context.Background(), "b", "2", "", "")
	third := m.SubmitLead(context.Background(), "c", "3", "", "")

	assert.Greater(t, second.ID, first.ID)
	assert.Greater(t, third.ID, second.ID)
}

func TestUpdateLeadStatus(t *testing.T) {
	m, _ := newTestManager(t, echoTranslator{})
	lead := m.SubmitLead(context.Background(), "赵六", "139", "成都", "")

	require.NoError(t, m.UpdateLeadStatus(lead.ID, models.LeadStatusContacted))
	assert.Equal(t, models.LeadStatusContacted, m.Content().Leads[0].Status)

	assert.Error(t, m.UpdateLeadStatus(lead.ID, "bogus"))
	assert.ErrorIs(t, m.UpdateLeadStatus(999, models.LeadStatusArchived), ErrNotFound)
}

func TestDeleteLead(t *testing.T) {
	m, _ := newTestManager(t, echoTranslator{})
	lead := m.SubmitLead(context.Background(), "孙七", "137", "长沙", "")

	assert.ErrorIs(t, m.DeleteLead(lead.ID, false), ErrConfirmationRequired)
	require.NoError(t, m.DeleteLead(lead.ID, true))
	assert.Empty(t, m.Content().Leads)

	assert.ErrorIs(t, m.DeleteLead(lead.ID, true), ErrNotFound)
}
