// Package events publishes content lifecycle events to a redis stream so
// downstream consumers (analytics, CRM sync) can react to saves and new
// franchise inquiries without polling.
package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/jadebrew/site-manager/internal/models"
)

// StreamName is the redis stream all content events are appended to.
const StreamName = "jadebrew:content:events"

// EventType identifies what happened.
type EventType string

const (
	ContentSaved EventType = "content.saved"
	ContentReset EventType = "content.reset"
	LeadCreated  EventType = "lead.created"
)

// Event is one content lifecycle event.
type Event struct {
	EventID    uuid.UUID         `json:"event_id"`
	EventType  EventType         `json:"event_type"`
	Timestamp  time.Time         `json:"timestamp"`
	DataSource models.DataSource `json:"data_source,omitempty"`
	LeadID     int64             `json:"lead_id,omitempty"`
}
