package widget

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/paulmach/orb"

	"github.com/dplocate/locator/internal/marker"
	"github.com/dplocate/locator/internal/panel"
	"github.com/dplocate/locator/internal/point"
	"github.com/dplocate/locator/internal/queue"
	"github.com/dplocate/locator/internal/view"
)

// Appearance holds the widget styling normally handed to a real map.
type Appearance struct {
	MarkerIcon string
	Style      string
}

// Headless is a Map that renders nothing: it logs every widget operation
// and records it in order for later inspection. The CLI uses it to show
// what a real widget would have been asked to do.
type Headless struct {
	log        *slog.Logger
	ops        *queue.Queue[string]
	appearance Appearance

	mu     sync.Mutex
	nextID int
	panels map[marker.Handle]bool
}

// NewHeadless creates a headless map widget.
func NewHeadless(log *slog.Logger) *Headless {
	return &Headless{
		log:    log,
		ops:    queue.New[string](),
		panels: make(map[marker.Handle]bool),
	}
}

// SetAppearance sets the marker icon and map style a real widget would
// apply. Logged with each render so the choice is observable.
func (h *Headless) SetAppearance(a Appearance) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.appearance = a
}

// RenderMarker implements marker.Widget.
func (h *Headless) RenderMarker(p point.Point, title string, _ panel.Descriptor) (marker.Handle, error) {
	h.mu.Lock()
	h.nextID++
	handle := fmt.Sprintf("marker-%d", h.nextID)
	h.panels[handle] = false
	icon := h.appearance.MarkerIcon
	h.mu.Unlock()

	op := fmt.Sprintf("render %s %q at (%.6f,%.6f)", handle, title, p.Lat, p.Lng)
	if icon != "" {
		op += " icon " + icon
	}
	h.record(op)
	return handle, nil
}

// RemoveMarker implements marker.Widget.
func (h *Headless) RemoveMarker(handle marker.Handle) {
	h.mu.Lock()
	delete(h.panels, handle)
	h.mu.Unlock()

	h.record(fmt.Sprintf("remove %v", handle))
}

// OpenPanel implements marker.Widget.
func (h *Headless) OpenPanel(handle marker.Handle) {
	h.mu.Lock()
	h.panels[handle] = true
	h.mu.Unlock()

	h.record(fmt.Sprintf("open panel %v", handle))
}

// ClosePanel implements marker.Widget.
func (h *Headless) ClosePanel(handle marker.Handle) {
	h.mu.Lock()
	h.panels[handle] = false
	h.mu.Unlock()

	h.record(fmt.Sprintf("close panel %v", handle))
}

// PanelOpen implements marker.Widget.
func (h *Headless) PanelOpen(handle marker.Handle) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.panels[handle]
}

// ApplyView implements Map.
func (h *Headless) ApplyView(t view.Target) {
	switch t.Kind {
	case view.TargetNone:
		h.record("view unchanged")
	case view.TargetBounds:
		h.record(fmt.Sprintf("view bounds (%.6f,%.6f)-(%.6f,%.6f) zoom %d",
			t.Bounds.Min[1], t.Bounds.Min[0], t.Bounds.Max[1], t.Bounds.Max[0], t.Zoom))
	case view.TargetCenterZoom:
		h.record(fmt.Sprintf("view center (%.6f,%.6f) zoom %d", t.Center[1], t.Center[0], t.Zoom))
	}
}

// StreetView implements Map.
func (h *Headless) StreetView(center orb.Point) {
	h.record(fmt.Sprintf("street view at (%.6f,%.6f)", center[1], center[0]))
}

// Ops returns all recorded operations in order and clears the log.
func (h *Headless) Ops() []string {
	return h.ops.Drain()
}

func (h *Headless) record(op string) {
	h.ops.Push(op)
	if h.log != nil {
		h.log.Debug("widget op", "op", op)
	}
}
