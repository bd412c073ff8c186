package document

import (
	"strings"
	"sync"

	"github.com/ecodeclub/ekit/slice"
	"github.com/jonathan/resume-builder/internal/types"
)

// ChangeKind describes what a mutation did to the document.
type ChangeKind string

// Change kinds emitted to listeners.
const (
	ChangeReplaced ChangeKind = "replaced"
	ChangeReset    ChangeKind = "reset"
	ChangeAppended ChangeKind = "appended"
	ChangeRemoved  ChangeKind = "removed"
	ChangeUpdated  ChangeKind = "updated"
	ChangeSkills   ChangeKind = "skills"
	ChangePersonal ChangeKind = "personal"
	ChangeSummary  ChangeKind = "summary"
)

// Change is delivered to listeners after every successful mutation.
type Change struct {
	Kind     ChangeKind
	Section  types.Section
	ID       types.EntryID
	Revision uint64
}

// Model is the single source of truth for resume data. All mutations run
// under one lock, so readers never observe a partially applied update.
type Model struct {
	mu       sync.RWMutex
	doc      types.ResumeDocument
	nextID   types.EntryID
	revision uint64

	listenersMu sync.RWMutex
	listeners   []func(Change)
}

// New creates an empty document model.
func New() *Model {
	return &Model{doc: types.NewResumeDocument()}
}

// OnChange registers a listener invoked after each mutation, outside the model lock.
func (m *Model) OnChange(fn func(Change)) {
	m.listenersMu.Lock()
	defer m.listenersMu.Unlock()
	m.listeners = append(m.listeners, fn)
}

// Snapshot returns a deep copy of the current document.
func (m *Model) Snapshot() types.ResumeDocument {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.doc.Clone()
}

// SnapshotAt returns a deep copy together with the revision it reflects.
func (m *Model) SnapshotAt() (types.ResumeDocument, uint64) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.doc.Clone(), m.revision
}

// Revision returns the number of mutations applied so far.
func (m *Model) Revision() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.revision
}

// ReplaceAll substitutes the whole document. Every list entry receives a
// fresh id and skills are trimmed and de-duplicated.
func (m *Model) ReplaceAll(doc types.ResumeDocument) {
	m.mutate(func() (Change, bool) {
		next := doc.Clone()
		for i := range next.Experience {
			next.Experience[i].ID = m.allocID()
		}
		for i := range next.Education {
			next.Education[i].ID = m.allocID()
		}
		for i := range next.Projects {
			next.Projects[i].ID = m.allocID()
		}
		for i := range next.Certifications {
			next.Certifications[i].ID = m.allocID()
		}
		skills := make([]string, 0, len(next.Skills))
		for _, s := range next.Skills {
			s = strings.TrimSpace(s)
			if s == "" || slice.Contains(skills, s) {
				continue
			}
			skills = append(skills, s)
		}
		next.Skills = skills
		m.doc = next
		return Change{Kind: ChangeReplaced}, true
	})
}

// Reset empties the document. Ids handed out earlier are never reused.
func (m *Model) Reset() {
	m.mutate(func() (Change, bool) {
		m.doc = types.NewResumeDocument()
		return Change{Kind: ChangeReset}, true
	})
}

// SetPersonal assigns one personal field. Unknown fields are ignored.
func (m *Model) SetPersonal(field, value string) bool {
	return m.mutate(func() (Change, bool) {
		return Change{Kind: ChangePersonal}, m.doc.Personal.Set(field, value)
	})
}

// SetSummary assigns the professional summary.
func (m *Model) SetSummary(value string) {
	m.mutate(func() (Change, bool) {
		m.doc.Summary = value
		return Change{Kind: ChangeSummary}, true
	})
}

// mutate runs fn under the write lock and, when fn reports a change, bumps
// the revision and notifies listeners after the lock is released.
func (m *Model) mutate(fn func() (Change, bool)) bool {
	m.mu.Lock()
	c, changed := fn()
	if changed {
		m.revision++
		c.Revision = m.revision
	}
	m.mu.Unlock()

	if changed {
		m.emit(c)
	}
	return changed
}

func (m *Model) emit(c Change) {
	m.listenersMu.RLock()
	listeners := make([]func(Change), len(m.listeners))
	copy(listeners, m.listeners)
	m.listenersMu.RUnlock()

	for _, fn := range listeners {
		fn(c)
	}
}

// allocID must be called with mu held.
func (m *Model) allocID() types.EntryID {
	m.nextID++
	return m.nextID
}
