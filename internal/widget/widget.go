// Package widget defines the full capability set the session consumes from
// the external map widget, and a headless implementation for the CLI and
// for running without a rendering surface.
package widget

import (
	"github.com/paulmach/orb"

	"github.com/dplocate/locator/internal/marker"
	"github.com/dplocate/locator/internal/view"
)

// Map is the consumed surface of the external map widget: marker handling
// plus camera control and the immersive ground-level mode.
type Map interface {
	marker.Widget
	ApplyView(t view.Target)
	StreetView(center orb.Point)
}
