// Package marker maintains the live set of map markers bound 1:1 to loaded
// delivery points, including the single-open-panel invariant.
package marker

import (
	"fmt"
	"sync"

	"github.com/dplocate/locator/internal/panel"
	"github.com/dplocate/locator/internal/point"
)

// Handle is an opaque reference to a rendered marker. It is owned by the map
// widget; the registry only holds it as a lookup key.
type Handle any

// Widget is the marker capability set the registry consumes from the
// external map widget.
type Widget interface {
	RenderMarker(p point.Point, title string, content panel.Descriptor) (Handle, error)
	RemoveMarker(h Handle)
	OpenPanel(h Handle)
	ClosePanel(h Handle)
	// PanelOpen reports the widget's own view of the panel state, so a close
	// done through the widget's UI is observed before the next toggle.
	PanelOpen(h Handle) bool
}

// Entry binds one delivery point to its rendered marker.
type Entry struct {
	Point  point.Point
	Handle Handle

	panelOpen bool
}

// PanelOpen reports the registry's view of the entry's panel state.
func (e *Entry) PanelOpen() bool {
	return e.panelOpen
}

// Registry tracks the current marker generation. All methods are serialized
// by an internal mutex, so a second Rebuild blocks until the first finishes
// and no caller ever observes a mixed generation.
type Registry struct {
	mu      sync.Mutex
	widget  Widget
	entries []*Entry
	index   map[string]*Entry
	open    *Entry
}

// NewRegistry creates a registry rendering through the given widget.
func NewRegistry(widget Widget) *Registry {
	return &Registry{
		widget: widget,
		index:  make(map[string]*Entry),
	}
}

// Rebuild replaces the whole marker set: every prior handle is removed from
// the widget, the open-panel reference is cleared, and one entry per point
// is rendered in input order. On a render failure the new generation is
// rolled back and the registry is left empty rather than mixed.
func (r *Registry) Rebuild(points []point.Point) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.teardown()

	entries := make([]*Entry, 0, len(points))
	index := make(map[string]*Entry, len(points))
	for _, p := range points {
		h, err := r.widget.RenderMarker(p, p.Title(), panel.FromPoint(p))
		if err != nil {
			for _, e := range entries {
				r.widget.RemoveMarker(e.Handle)
			}
			return fmt.Errorf("rendering marker for %q: %w", p.ID, err)
		}
		e := &Entry{Point: p, Handle: h}
		entries = append(entries, e)
		// first entry wins on duplicate ids, matching dataset order
		if _, exists := index[p.ID]; !exists {
			index[p.ID] = e
		}
	}

	r.entries = entries
	r.index = index
	return nil
}

// Toggle flips the entry's panel. Opening an entry closes whichever entry
// was open; toggling the open entry closes it. The widget's reported state
// is consulted first so an external close does not leave the toggle
// inverted.
func (r *Registry) Toggle(e *Entry) {
	if e == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	// resync from the widget: it is the source of truth for panel state
	if r.open == e && !r.widget.PanelOpen(e.Handle) {
		e.panelOpen = false
		r.open = nil
	}

	if r.open == e {
		r.widget.ClosePanel(e.Handle)
		e.panelOpen = false
		r.open = nil
		return
	}

	if r.open != nil {
		r.widget.ClosePanel(r.open.Handle)
		r.open.panelOpen = false
	}
	r.widget.OpenPanel(e.Handle)
	e.panelOpen = true
	r.open = e
}

// Open opens the entry's panel, closing any other open panel first. Unlike
// Toggle it never closes the target entry (search focus path).
func (r *Registry) Open(e *Entry) {
	if e == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.open != nil && r.open != e {
		r.widget.ClosePanel(r.open.Handle)
		r.open.panelOpen = false
	}
	r.widget.OpenPanel(e.Handle)
	e.panelOpen = true
	r.open = e
}

// CloseOpenPanel closes the open panel if there is one. No-op otherwise.
func (r *Registry) CloseOpenPanel() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closeOpenLocked()
}

// LookupByPointID returns the entry for a point id, exact match only.
func (r *Registry) LookupByPointID(id string) (*Entry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.index[id]
	return e, ok
}

// Entries returns the current generation in render order.
func (r *Registry) Entries() []*Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// OpenEntry returns the entry whose panel is open, or nil.
func (r *Registry) OpenEntry() *Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.open
}

// Len returns the number of live entries.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

func (r *Registry) teardown() {
	r.closeOpenLocked()
	for _, e := range r.entries {
		r.widget.RemoveMarker(e.Handle)
	}
	r.entries = nil
	r.index = make(map[string]*Entry)
}

func (r *Registry) closeOpenLocked() {
	if r.open == nil {
		return
	}
	r.widget.ClosePanel(r.open.Handle)
	r.open.panelOpen = false
	r.open = nil
}
