package panel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dplocate/locator/internal/point"
)

func TestFromPoint_Fields(t *testing.T) {
	d := FromPoint(point.Point{ID: "DP1", Name: "Depot A", Lat: 51.5, Lng: -0.1})

	assert.Equal(t, "DP1", d.PointID)
	assert.Equal(t, "Depot A", d.Title)
	require.Len(t, d.Lines, 2)
	assert.Equal(t, "DP#: DP1", d.Lines[0])
	assert.Equal(t, "Lat: 51.500000, Lng: -0.100000", d.Lines[1])
	require.Len(t, d.Actions, 2)
	assert.Equal(t, ActionNavigate, d.Actions[0].ID)
	assert.Equal(t, ActionStreetView, d.Actions[1].ID)
}

func TestFromPoint_MissingIdentity(t *testing.T) {
	d := FromPoint(point.Point{})

	assert.Equal(t, "Unknown", d.Title)
	assert.Equal(t, "DP#: N/A", d.Lines[0])
}

func TestEscapeHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"ampersand", "A & B", "A &amp; B"},
		{"angle brackets", "<script>", "&lt;script&gt;"},
		{"quotes", `"x" 'y'`, "&quot;x&quot; &#39;y&#39;"},
		{"clean", "Depot 9", "Depot 9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeHTML(tt.in))
		})
	}
}

func TestRenderHTML_EscapesDatasetContent(t *testing.T) {
	d := FromPoint(point.Point{ID: `DP"1`, Name: "<b>Evil & Co</b>"})

	html := RenderHTML(d)

	assert.NotContains(t, html, "<b>")
	assert.Contains(t, html, "&lt;b&gt;Evil &amp; Co&lt;/b&gt;")
	assert.Contains(t, html, `data-point="DP&quot;1"`)
	assert.NotContains(t, html, "onclick")
}
