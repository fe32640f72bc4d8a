// Package panel builds the detail-panel content attached to map markers.
//
// Content is a structured descriptor rather than interpolated markup: the
// presentation layer decides how to render it and resolves action identifiers
// to its own callbacks. RenderHTML exists for widgets that want a markup
// string and escapes every interpolated dataset field.
package panel

import (
	"fmt"
	"strings"

	"github.com/dplocate/locator/internal/point"
)

// ActionID identifies a panel action the presentation layer can wire to a
// callback.
type ActionID string

// Actions offered on every point panel.
const (
	ActionNavigate   ActionID = "navigate"
	ActionStreetView ActionID = "street-view"
)

// Action is a labelled action entry on a panel.
type Action struct {
	ID    ActionID
	Label string
}

// Descriptor is the content of one marker's detail panel.
type Descriptor struct {
	PointID string
	Title   string
	Lines   []string
	Actions []Action
}

// FromPoint builds the panel descriptor for a delivery point.
func FromPoint(p point.Point) Descriptor {
	title := p.Name
	if title == "" {
		title = "Unknown"
	}
	id := p.ID
	if id == "" {
		id = "N/A"
	}
	return Descriptor{
		PointID: p.ID,
		Title:   title,
		Lines: []string{
			fmt.Sprintf("DP#: %s", id),
			fmt.Sprintf("Lat: %.6f, Lng: %.6f", p.Lat, p.Lng),
		},
		Actions: []Action{
			{ID: ActionNavigate, Label: "Directions"},
			{ID: ActionStreetView, Label: "Street view"},
		},
	}
}

// htmlEscaper covers the characters that can break out of attribute or text
// context in panel markup.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"'", "&#39;",
	`"`, "&quot;",
)

// EscapeHTML escapes dataset-sourced text for insertion into panel markup.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// RenderHTML renders a descriptor as a markup fragment with all dataset
// fields escaped. Action entries are emitted as data attributes only; no
// executable attributes are generated.
func RenderHTML(d Descriptor) string {
	var b strings.Builder
	b.WriteString(`<div class="dp-panel">`)
	b.WriteString("<strong>")
	b.WriteString(EscapeHTML(d.Title))
	b.WriteString("</strong>")
	for _, line := range d.Lines {
		b.WriteString("<br/><span>")
		b.WriteString(EscapeHTML(line))
		b.WriteString("</span>")
	}
	for _, a := range d.Actions {
		b.WriteString(fmt.Sprintf(`<button data-action="%s" data-point="%s">%s</button>`,
			EscapeHTML(string(a.ID)), EscapeHTML(d.PointID), EscapeHTML(a.Label)))
	}
	b.WriteString("</div>")
	return b.String()
}
