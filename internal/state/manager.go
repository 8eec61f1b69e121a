// Package state holds the in-memory source of truth for the site content
// and exposes every mutation the admin surface and the public lead form
// can perform. All mutations follow the same cycle: clone the aggregate,
// edit the clone, swap the pointer under the lock. Readers always see a
// complete snapshot, never a half-applied edit.
package state

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/jadebrew/site-manager/internal/content"
	"github.com/jadebrew/site-manager/internal/events"
	"github.com/jadebrew/site-manager/internal/logger"
	"github.com/jadebrew/site-manager/internal/models"
	"github.com/jadebrew/site-manager/internal/persist"
	"github.com/jadebrew/site-manager/internal/translate"
)

var (
	// ErrConfirmationRequired guards the irreversible operations.
	ErrConfirmationRequired = errors.New("confirmation required")
	// ErrNotFound is returned when an id names no existing record.
	ErrNotFound = errors.New("not found")
	// ErrInvalidLanguage is returned for a language outside zh/en.
	ErrInvalidLanguage = errors.New("invalid language")
)

// translateTimeout bounds a single background translation request.
const translateTimeout = 30 * time.Second

// Manager owns the content aggregate for the lifetime of the process.
type Manager struct {
	mu      sync.Mutex
	content *models.SiteContent
	source  models.DataSource
	dirty   bool

	// versions tracks an edit counter per field path. A background
	// translation captures the version at spawn time and is discarded if
	// the field (or its containing list) has advanced since.
	versions map[string]uint64

	translator translate.Translator
	persister  *persist.Persister
	publisher  *events.Publisher
	log        logger.Logger
}

// NewManager wraps an already-hydrated aggregate. source names the tier it
// came from; it stays fixed until the process reloads.
func NewManager(
	c *models.SiteContent,
	source models.DataSource,
	translator translate.Translator,
	persister *persist.Persister,
	publisher *events.Publisher,
	log logger.Logger,
) *Manager {
	return &Manager{
		content:    c,
		source:     source,
		versions:   make(map[string]uint64),
		translator: translator,
		persister:  persister,
		publisher:  publisher,
		log:        log,
	}
}

// Content returns a deep copy of the current aggregate.
func (m *Manager) Content() *models.SiteContent {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.content.Clone()
}

// Source reports which tier supplied the active snapshot.
func (m *Manager) Source() models.DataSource {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.source
}

// Dirty reports whether there are edits not yet written to the local cache.
func (m *Manager) Dirty() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.dirty
}

// UpdateField writes value into the field at path. For a bilingual field
// the value lands in the lang slot only, and a background translation of
// the sibling slot is kicked off; the slot being edited is never touched
// by translation results. Plain fields ignore lang.
func (m *Manager) UpdateField(path string, lang models.Language, value string) error {
	if !lang.Valid() {
		return ErrInvalidLanguage
	}

	m.mu.Lock()
	next := m.content.Clone()
	ref, err := content.Resolve(next, path)
	if err != nil {
		m.mu.Unlock()
		return err
	}

	localized := ref.Text != nil
	if localized {
		ref.Text.Set(lang, value)
	} else {
		*ref.Plain = value
	}

	m.versions[path]++
	version := m.versions[path]
	m.content = next
	m.dirty = true
	m.mu.Unlock()

	if localized && translate.Worthwhile(value) {
		m.spawnTranslation(path, lang, value, version)
	}
	return nil
}

// spawnTranslation requests a translation of value and, once it resolves,
// writes it into the sibling slot. If the field has been edited again in
// the meantime the stale result is dropped.
func (m *Manager) spawnTranslation(path string, lang models.Language, value string, version uint64) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), translateTimeout)
		defer cancel()

		translated, err := m.translator.Translate(ctx, value, lang, lang.Other())
		if err != nil {
			// Best-effort: the sibling slot keeps its previous value.
			m.log.Warn("Translation failed, keeping previous text",
				logger.String("path", path),
				logger.Error(err),
			)
			return
		}

		m.mu.Lock()
		defer m.mu.Unlock()

		if m.versions[path] != version {
			m.log.Debug("Discarding stale translation",
				logger.String("path", path),
			)
			return
		}

		next := m.content.Clone()
		ref, err := content.Resolve(next, path)
		if err != nil || ref.Text == nil {
			// The field no longer exists (item deleted, list reshaped).
			return
		}
		ref.Text.Set(lang.Other(), translated)
		m.content = next
		m.dirty = true
	}()
}

// bumpPrefix advances the version of every tracked path at or under
// prefix, so in-flight translations against a reshaped list are discarded
// instead of landing on whatever item now sits at the old index.
func (m *Manager) bumpPrefix(prefix string) {
	for path := range m.versions {
		if path == prefix || strings.HasPrefix(path, prefix+".") {
			m.versions[path]++
		}
	}
}

// Save writes the current state through the persistence tiers. The dirty
// flag clears as soon as the local write lands; a cloud failure is
// returned for the caller to surface but does not roll anything back.
func (m *Manager) Save(ctx context.Context) error {
	snapshot := m.Content()

	result := m.persister.Save(ctx, snapshot)
	if result.Rejected != nil {
		return result.Rejected
	}

	if result.Local == nil {
		m.mu.Lock()
		m.dirty = false
		m.mu.Unlock()
	}

	if err := result.Err(); err != nil {
		return err
	}

	m.publisher.PublishAsync(events.Event{
		EventType:  events.ContentSaved,
		DataSource: m.Source(),
	})
	return nil
}

// Reset discards every customization and reverts to the hard-coded
// defaults. Irreversible, so it demands explicit confirmation. The local
// snapshot is deleted rather than overwritten, returning the process to a
// true first-run state.
func (m *Manager) Reset(ctx context.Context, confirm bool) error {
	if !confirm {
		return ErrConfirmationRequired
	}

	m.mu.Lock()
	m.content = content.Defaults()
	m.versions = make(map[string]uint64)
	m.dirty = false
	m.mu.Unlock()

	if err := m.persister.ClearLocal(ctx); err != nil {
		return err
	}

	m.publisher.PublishAsync(events.Event{EventType: events.ContentReset})
	return nil
}
