package state

import (
	"context"
	"fmt"
	"time"

	"github.com/jadebrew/site-manager/internal/events"
	"github.com/jadebrew/site-manager/internal/logger"
	"github.com/jadebrew/site-manager/internal/models"
)

// SubmitLead appends a franchise inquiry and persists immediately. This is
// the one write path not gated by the admin's explicit save: it originates
// from an anonymous visitor, so their submission must survive even if the
// admin never presses anything. Persistence failures are logged but the
// lead is still accepted in memory.
func (m *Manager) SubmitLead(ctx context.Context, name, phone, city, message string) models.Lead {
	m.mu.Lock()

	// Ids are monotonic by creation time; guard against clock ties.
	id := time.Now().UnixMilli()
	for _, lead := range m.content.Leads {
		if lead.ID >= id {
			id = lead.ID + 1
		}
	}

	lead := models.Lead{
		ID:        id,
		Name:      name,
		Phone:     phone,
		City:      city,
		Message:   message,
		Timestamp: id,
		Status:    models.LeadStatusNew,
	}

	next := m.content.Clone()
	next.Leads = append(next.Leads, lead)
	m.content = next
	snapshot := next.Clone()
	m.mu.Unlock()

	if result := m.persister.Save(ctx, snapshot); result.Err() != nil {
		// The lead exists only in memory; leave the state dirty so the
		// autosave loop retries the write.
		m.mu.Lock()
		m.dirty = true
		m.mu.Unlock()
		m.log.Warn("Lead accepted but persistence failed",
			logger.Int64("lead_id", lead.ID),
			logger.Error(result.Err()),
		)
	}

	m.publisher.PublishAsync(events.Event{
		EventType: events.LeadCreated,
		LeadID:    lead.ID,
	})

	m.log.Info("Lead submitted",
		logger.Int64("lead_id", lead.ID),
		logger.String("city", city),
	)
	return lead
}

// UpdateLeadStatus moves a lead through the follow-up workflow.
func (m *Manager) UpdateLeadStatus(id int64, status models.LeadStatus) error {
	if !status.Valid() {
		return fmt.Errorf("invalid lead status %q", status)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	next := m.content.Clone()
	for i := range next.Leads {
		if next.Leads[i].ID == id {
			next.Leads[i].Status = status
			m.content = next
			m.dirty = true
			return nil
		}
	}
	return fmt.Errorf("%w: lead %d", ErrNotFound, id)
}

// DeleteLead removes an inquiry permanently.
func (m *Manager) DeleteLead(id int64, confirm bool) error {
	if !confirm {
		return ErrConfirmationRequired
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	next := m.content.Clone()
	for i := range next.Leads {
		if next.Leads[i].ID == id {
			next.Leads = append(next.Leads[:i:i], next.Leads[i+1:]...)
			m.content = next
			m.dirty = true
			return nil
		}
	}
	return fmt.Errorf("%w: lead %d", ErrNotFound, id)
}
