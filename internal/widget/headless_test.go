package widget

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dplocate/locator/internal/panel"
	"github.com/dplocate/locator/internal/point"
	"github.com/dplocate/locator/internal/view"
)

func TestHeadless_RecordsMarkerLifecycle(t *testing.T) {
	h := NewHeadless(nil)
	p := point.Point{ID: "DP1", Name: "Alpha", Lat: 51.5, Lng: -0.1}

	handle, err := h.RenderMarker(p, p.Title(), panel.FromPoint(p))
	require.NoError(t, err)

	h.OpenPanel(handle)
	assert.True(t, h.PanelOpen(handle))

	h.ClosePanel(handle)
	assert.False(t, h.PanelOpen(handle))

	h.RemoveMarker(handle)

	ops := h.Ops()
	require.Len(t, ops, 4)
	assert.Contains(t, ops[0], `render marker-1 "Alpha"`)
	assert.Contains(t, ops[1], "open panel")
	assert.Contains(t, ops[2], "close panel")
	assert.Contains(t, ops[3], "remove")
}

func TestHeadless_RecordsViewTargets(t *testing.T) {
	h := NewHeadless(nil)

	h.ApplyView(view.Target{Kind: view.TargetNone})
	h.ApplyView(view.Target{Kind: view.TargetCenterZoom, Center: orb.Point{-0.1, 51.5}, Zoom: 16})
	h.StreetView(orb.Point{-0.1, 51.5})

	ops := h.Ops()
	require.Len(t, ops, 3)
	assert.Equal(t, "view unchanged", ops[0])
	assert.Contains(t, ops[1], "view center (51.500000,-0.100000) zoom 16")
	assert.Contains(t, ops[2], "street view")
}

func TestHeadless_AppearanceLoggedWithRender(t *testing.T) {
	h := NewHeadless(nil)
	h.SetAppearance(Appearance{MarkerIcon: "assets/heart.png", Style: "roadmap"})
	p := point.Point{ID: "DP1", Lat: 51.5, Lng: -0.1}

	_, err := h.RenderMarker(p, p.Title(), panel.FromPoint(p))
	require.NoError(t, err)

	ops := h.Ops()
	require.Len(t, ops, 1)
	assert.Contains(t, ops[0], "icon assets/heart.png")
}

func TestHeadless_OpsDrains(t *testing.T) {
	h := NewHeadless(nil)
	h.ApplyView(view.Target{Kind: view.TargetNone})

	require.Len(t, h.Ops(), 1)
	assert.Empty(t, h.Ops())
}
