package state

import (
	"fmt"

	"github.com/jadebrew/site-manager/internal/content"
	"github.com/jadebrew/site-manager/internal/logger"
	"github.com/jadebrew/site-manager/internal/models"
)

// AddListItem appends a template item (both language slots seeded
// identically) to the list at path and returns the new item's index.
func (m *Manager) AddListItem(path string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	next := m.content.Clone()
	list, err := content.ResolveList(next, path)
	if err != nil {
		return 0, err
	}

	list.Append()
	if path == "menu" {
		m.assignMenuID(next, list.Len()-1)
	}

	m.content = next
	m.dirty = true
	return list.Len() - 1, nil
}

// DeleteListItem removes the item at index. Irreversible, so it requires
// explicit confirmation. Pending translations into the list are discarded
// since their indices may no longer mean what they did.
func (m *Manager) DeleteListItem(path string, index int, confirm bool) error {
	if !confirm {
		return ErrConfirmationRequired
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	next := m.content.Clone()
	list, err := content.ResolveList(next, path)
	if err != nil {
		return err
	}
	if index < 0 || index >= list.Len() {
		return fmt.Errorf("%w: index %d, length %d", content.ErrIndexOutOfRange, index, list.Len())
	}

	list.Remove(index)
	m.bumpPrefix(path)
	m.content = next
	m.dirty = true
	return nil
}

// MoveListItem moves the item at from to position to. A pure permutation,
// nothing is duplicated or lost.
func (m *Manager) MoveListItem(path string, from, to int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	next := m.content.Clone()
	list, err := content.ResolveList(next, path)
	if err != nil {
		return err
	}
	length := list.Len()
	if from < 0 || from >= length || to < 0 || to >= length {
		return fmt.Errorf("%w: move %d -> %d, length %d", content.ErrIndexOutOfRange, from, to, length)
	}
	if from == to {
		return nil
	}

	list.Move(from, to)
	m.bumpPrefix(path)
	m.content = next
	m.dirty = true
	return nil
}

// SetSectionVisible flips a section's display toggle. Content is untouched;
// only downstream rendering policy changes.
func (m *Manager) SetSectionVisible(section string, visible bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	next := m.content.Clone()
	switch section {
	case "hero":
		next.Hero.Visible = visible
	case "model":
		next.Model.Visible = visible
	case "process":
		next.Process.Visible = visible
	case "showcase":
		next.Showcase.Visible = visible
	case "comparison":
		next.Comparison.Visible = visible
	case "financials":
		next.Financials.Visible = visible
	case "menuSection":
		next.MenuSection.Visible = visible
	case "faq":
		next.FAQ.Visible = visible
	case "partner":
		next.Partner.Visible = visible
	case "footer":
		next.Footer.Visible = visible
	default:
		return fmt.Errorf("%w: section %q", content.ErrUnknownPath, section)
	}

	m.content = next
	m.dirty = true
	return nil
}

// DeleteMenuItem removes a product by id, preserving the order of the rest.
func (m *Manager) DeleteMenuItem(id int, confirm bool) error {
	if !confirm {
		return ErrConfirmationRequired
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	next := m.content.Clone()
	idx := -1
	for i, item := range next.Menu {
		if item.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: menu item %d", ErrNotFound, id)
	}

	next.Menu = append(next.Menu[:idx:idx], next.Menu[idx+1:]...)
	m.bumpPrefix("menu")
	m.content = next
	m.dirty = true

	m.log.Info("Menu item deleted", logger.Int("menu_id", id))
	return nil
}

// AddImage adds an image reference to the library, deduplicated by value.
// The shard capacity bound is enforced at save time, not here, so the
// admin sees the descriptive capacity error on the action that matters.
func (m *Manager) AddImage(image string) error {
	if image == "" {
		return fmt.Errorf("%w: empty image", ErrNotFound)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.content.Library {
		if existing == image {
			return nil
		}
	}

	next := m.content.Clone()
	next.Library = append(next.Library, image)
	m.content = next
	m.dirty = true
	return nil
}

// DeleteImage removes an image by value, not by index.
func (m *Manager) DeleteImage(image string, confirm bool) error {
	if !confirm {
		return ErrConfirmationRequired
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	next := m.content.Clone()
	kept := next.Library[:0:0]
	found := false
	for _, existing := range next.Library {
		if existing == image {
			found = true
			continue
		}
		kept = append(kept, existing)
	}
	if !found {
		return fmt.Errorf("%w: image not in library", ErrNotFound)
	}

	next.Library = kept
	m.content = next
	m.dirty = true
	return nil
}

// assignMenuID gives the menu item at index the next free id.
func (m *Manager) assignMenuID(c *models.SiteContent, index int) {
	maxID := 0
	for _, item := range c.Menu {
		if item.ID > maxID {
			maxID = item.ID
		}
	}
	c.Menu[index].ID = maxID + 1
}
