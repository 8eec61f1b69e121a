package events

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jadebrew/site-manager/internal/models"
	"github.com/jadebrew/site-manager/internal/testhelpers"
)

func TestPublishAppendsToStream(t *testing.T) {
	_, client := testhelpers.NewTestRedis(t)
	p := NewPublisher(client, testhelpers.NewTestLogger())

	err := p.Publish(context.Background(), Event{
		EventType:  ContentSaved,
		DataSource: models.SourceLocal,
	})
	require.NoError(t, err)

	entries, err := client.XRange(context.Background(), StreamName, "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, entries, 1)

	payload, ok := entries[0].Values["event"].(string)
	require.True(t, ok)

	var event Event
	require.NoError(t, json.Unmarshal([]byte(payload), &event))
	assert.Equal(t, ContentSaved, event.EventType)
	assert.Equal(t, models.SourceLocal, event.DataSource)
	assert.NotEqual(t, uuid.Nil, event.EventID, "missing id is filled in")
	assert.False(t, event.Timestamp.IsZero())
}

func TestNilPublisherIsNoOp(t *testing.T) {
	var p *Publisher
	assert.NoError(t, p.Publish(context.Background(), Event{EventType: LeadCreated}))
	p.PublishAsync(Event{EventType: LeadCreated})

	assert.Nil(t, NewPublisher(nil, nil))
}
