package document

import (
	"strings"

	"github.com/ecodeclub/ekit/slice"
	"github.com/jonathan/resume-builder/internal/types"
)

// Append adds an empty entry to the end of section and returns its id and
// index. The index equals the list length before the call.
func (m *Model) Append(section types.Section) (types.EntryID, int, error) {
	var (
		id    types.EntryID
		index int
		err   error
	)
	m.mutate(func() (Change, bool) {
		l, ok := m.list(section)
		if !ok {
			err = &UnknownSectionError{Section: section}
			return Change{}, false
		}
		id = m.allocID()
		index = l.length()
		l.appendEmpty(id)
		return Change{Kind: ChangeAppended, Section: section, ID: id}, true
	})
	return id, index, err
}

// RemoveAt removes the entry at index, shifting later entries down by one.
// An out of range index is a no-op and reports false.
func (m *Model) RemoveAt(section types.Section, index int) bool {
	return m.mutate(func() (Change, bool) {
		l, ok := m.list(section)
		if !ok || index < 0 || index >= l.length() {
			return Change{}, false
		}
		id := l.idAt(index)
		l.removeAt(index)
		return Change{Kind: ChangeRemoved, Section: section, ID: id}, true
	})
}

// Remove removes the entry with the given id. Unknown ids are a no-op.
func (m *Model) Remove(section types.Section, id types.EntryID) bool {
	return m.mutate(func() (Change, bool) {
		l, ok := m.list(section)
		if !ok {
			return Change{}, false
		}
		index := l.indexOf(id)
		if index < 0 {
			return Change{}, false
		}
		l.removeAt(index)
		return Change{Kind: ChangeRemoved, Section: section, ID: id}, true
	})
}

// UpdateField sets one field of one entry. Updates addressed at entries that
// no longer exist, or at fields the section does not have, are dropped.
func (m *Model) UpdateField(addr types.FieldAddress, value string) bool {
	return m.mutate(func() (Change, bool) {
		l, ok := m.list(addr.Section)
		if !ok {
			return Change{}, false
		}
		index := l.indexOf(addr.ID)
		if index < 0 || !l.set(index, addr.Field, value) {
			return Change{}, false
		}
		return Change{Kind: ChangeUpdated, Section: addr.Section, ID: addr.ID}, true
	})
}

// Len returns the number of entries in section, or 0 for unknown sections.
func (m *Model) Len(section types.Section) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	l, ok := m.list(section)
	if !ok {
		return 0
	}
	return l.length()
}

// IndexOf projects an entry id to its current display position.
func (m *Model) IndexOf(section types.Section, id types.EntryID) (int, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	l, ok := m.list(section)
	if !ok {
		return 0, false
	}
	index := l.indexOf(id)
	return index, index >= 0
}

// IDAt resolves a display position to the id of the entry currently there.
func (m *Model) IDAt(section types.Section, index int) (types.EntryID, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	l, ok := m.list(section)
	if !ok || index < 0 || index >= l.length() {
		return 0, false
	}
	return l.idAt(index), true
}

// IDs returns the entry ids of section in display order.
func (m *Model) IDs(section types.Section) []types.EntryID {
	m.mu.RLock()
	defer m.mu.RUnlock()
	l, ok := m.list(section)
	if !ok {
		return nil
	}
	ids := make([]types.EntryID, l.length())
	for i := range ids {
		ids[i] = l.idAt(i)
	}
	return ids
}

// AddSkill trims text and appends it unless it is empty or already present.
func (m *Model) AddSkill(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	return m.mutate(func() (Change, bool) {
		if slice.Contains(m.doc.Skills, text) {
			return Change{}, false
		}
		m.doc.Skills = append(m.doc.Skills, text)
		return Change{Kind: ChangeSkills}, true
	})
}

// RemoveSkill removes text from the skills list. Matching is exact.
func (m *Model) RemoveSkill(text string) bool {
	return m.mutate(func() (Change, bool) {
		for i, s := range m.doc.Skills {
			if s == text {
				m.doc.Skills = append(m.doc.Skills[:i:i], m.doc.Skills[i+1:]...)
				return Change{Kind: ChangeSkills}, true
			}
		}
		return Change{}, false
	})
}
