// Package menu holds the section model a hover widget presents: an ordered,
// identity-keyed list of sections plus a structural-diff subscription
// contract that lets the presentation layer react incrementally when the
// owning application swaps in a new section list.
package menu

import (
	"sort"

	"github.com/google/uuid"

	"github.com/google-admin/hover/internal/errors"
)

// SectionID is the stable identity of a section. Two sections are the same
// entry across updates exactly when their IDs are equal.
type SectionID string

// NewSectionID mints a unique SectionID.
func NewSectionID() SectionID {
	return SectionID(uuid.NewString())
}

// TabDescriptor is the visual identity a section's floating tab renders.
type TabDescriptor struct {
	Glyph string // single-cell glyph shown inside the tab
	Label string // full section name, used in the expanded strip
}

// Content supplies a section's expanded body. Implementations are expected
// to be pointer types: a section is considered unchanged across updates
// when it carries the same Content value.
type Content interface {
	Title() string
	View(width, height int) string
}

// Preview is the optional message bubble a section shows next to the
// collapsed tab while the widget is in the previewed state.
type Preview struct {
	Title string
	Body  string
}

// Section is one addressable unit of menu content. Sections are immutable:
// to change one, construct a replacement with the same ID and call
// SetSections with the new list.
type Section struct {
	ID      SectionID
	Tab     TabDescriptor
	Content Content
	Preview *Preview
}

func sectionsEqual(a, b Section) bool {
	if a.Tab != b.Tab || a.Content != b.Content {
		return false
	}
	if (a.Preview == nil) != (b.Preview == nil) {
		return false
	}
	return a.Preview == nil || *a.Preview == *b.Preview
}

// Listener receives the structural diff produced by SetSections. Indices
// refer to the listener's evolving mirror of the section list: removals are
// delivered first in descending index order, then insertions ascending,
// then moves, then content changes at final positions.
type Listener interface {
	OnInserted(index, count int)
	OnRemoved(index, count int)
	OnMoved(from, to int)
	OnChanged(index, count int)
}

// Subscription is the handle returned by Subscribe. Cancel is idempotent.
type Subscription struct {
	menu     *Menu
	id       int
	listener Listener
	active   bool
}

// Cancel stops delivery to this subscription. Safe to call more than once,
// including from inside a diff callback (remaining callbacks of the batch
// are skipped).
func (s *Subscription) Cancel() {
	if s == nil || !s.active {
		return
	}
	s.active = false
	delete(s.menu.subs, s.id)
}

// Menu is an ordered sequence of sections with unique IDs. It is not safe
// for concurrent use; like the rest of the widget it lives on the single
// UI event loop.
type Menu struct {
	sections  []Section
	subs      map[int]*Subscription
	nextSub   int
	notifying bool
}

// New builds a menu from the given sections. Duplicate IDs are rejected.
func New(sections ...Section) (*Menu, error) {
	m := &Menu{
		subs: make(map[int]*Subscription),
	}
	if err := validateIDs(sections); err != nil {
		return nil, err
	}
	m.sections = append([]Section(nil), sections...)
	return m, nil
}

// Len returns the number of sections.
func (m *Menu) Len() int {
	return len(m.sections)
}

// Sections returns a copy of the current section list.
func (m *Menu) Sections() []Section {
	return append([]Section(nil), m.sections...)
}

// SectionAt returns the section at the given index.
func (m *Menu) SectionAt(index int) (Section, bool) {
	if index < 0 || index >= len(m.sections) {
		return Section{}, false
	}
	return m.sections[index], true
}

// SectionByID returns the section with the given ID.
func (m *Menu) SectionByID(id SectionID) (Section, bool) {
	for _, s := range m.sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

// IndexOf returns the position of the section with the given ID, or -1.
func (m *Menu) IndexOf(id SectionID) int {
	for i, s := range m.sections {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// Subscribe registers a diff listener. Listeners are notified in
// subscription order. The listener is never invoked from within Subscribe
// itself, only from a later SetSections. Subscribing during a diff batch
// is allowed; delivery starts with the next batch.
func (m *Menu) Subscribe(l Listener) *Subscription {
	m.nextSub++
	sub := &Subscription{menu: m, id: m.nextSub, listener: l, active: true}
	m.subs[sub.id] = sub
	return sub
}

// SetSections replaces the section list and notifies subscribers with the
// structural diff against the previous list. Calling SetSections from
// inside a diff callback is a programming error and panics.
func (m *Menu) SetSections(sections []Section) error {
	if m.notifying {
		panic("menu: SetSections called from inside a diff callback")
	}
	if err := validateIDs(sections); err != nil {
		return err
	}

	old := m.sections
	m.sections = append([]Section(nil), sections...)

	ops := diff(old, m.sections)
	if len(ops) == 0 {
		return nil
	}

	// Snapshot subscribers so that listeners added mid-batch only see
	// later batches; cancelled ones drop out immediately via sub.active.
	// Delivery follows subscription order.
	snapshot := make([]*Subscription, 0, len(m.subs))
	for _, sub := range m.subs {
		snapshot = append(snapshot, sub)
	}
	sort.Slice(snapshot, func(i, j int) bool { return snapshot[i].id < snapshot[j].id })

	m.notifying = true
	defer func() { m.notifying = false }()

	for _, o := range ops {
		for _, sub := range snapshot {
			if !sub.active {
				continue
			}
			switch o.kind {
			case opInsert:
				sub.listener.OnInserted(o.index, o.count)
			case opRemove:
				sub.listener.OnRemoved(o.index, o.count)
			case opMove:
				sub.listener.OnMoved(o.index, o.to)
			case opChange:
				sub.listener.OnChanged(o.index, o.count)
			}
		}
	}
	return nil
}

func validateIDs(sections []Section) error {
	seen := make(map[SectionID]bool, len(sections))
	for _, s := range sections {
		if seen[s.ID] {
			return errors.DuplicateSection(string(s.ID))
		}
		seen[s.ID] = true
	}
	return nil
}
