// Package view computes camera targets for the external map widget: the
// "show all" bounding region, the fixed-zoom focus used after a search hit,
// and the radius region that frames the user's location.
package view

import (
	"math"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"

	"github.com/dplocate/locator/internal/geo"
	"github.com/dplocate/locator/internal/point"
)

// TargetKind discriminates the camera instruction variants.
type TargetKind int

const (
	// TargetNone tells the caller to keep the current view.
	TargetNone TargetKind = iota
	// TargetBounds frames a bounding region at a fitted zoom.
	TargetBounds
	// TargetCenterZoom centers on a coordinate at a fixed zoom.
	TargetCenterZoom
)

// Target is an ephemeral camera instruction. Bounds is set for TargetBounds,
// Center for TargetCenterZoom; Zoom is set for both.
type Target struct {
	Kind   TargetKind
	Bounds orb.Bound
	Center orb.Point
	Zoom   int
}

// Config sizes the fitting math.
type Config struct {
	// ViewportWidth/Height are the map viewport dimensions in pixels.
	ViewportWidth  int
	ViewportHeight int
	// MaxFitZoom is the highest zoom a fitted region may produce before the
	// clamp kicks in.
	MaxFitZoom int
	// FallbackZoom is the city-scale zoom used when fitting would exceed
	// MaxFitZoom (points nearly identical or a single point).
	FallbackZoom int
}

// Planner computes camera targets for a fixed viewport.
type Planner struct {
	cfg Config
}

// NewPlanner creates a planner. Zero-valued config fields get sensible
// defaults (1024x768 viewport, clamp above 18 down to 16).
func NewPlanner(cfg Config) *Planner {
	if cfg.ViewportWidth <= 0 {
		cfg.ViewportWidth = 1024
	}
	if cfg.ViewportHeight <= 0 {
		cfg.ViewportHeight = 768
	}
	if cfg.MaxFitZoom <= 0 {
		cfg.MaxFitZoom = 18
	}
	if cfg.FallbackZoom <= 0 {
		cfg.FallbackZoom = 16
	}
	return &Planner{cfg: cfg}
}

// BoundsForAll computes the minimal region covering every point. An empty
// point list yields a TargetNone so the caller leaves the view alone.
func (pl *Planner) BoundsForAll(points []point.Point) Target {
	if len(points) == 0 {
		return Target{Kind: TargetNone}
	}
	bound := orb.Bound{Min: points[0].Position(), Max: points[0].Position()}
	for _, p := range points[1:] {
		bound = bound.Extend(p.Position())
	}
	return Target{
		Kind:   TargetBounds,
		Bounds: bound,
		Zoom:   pl.fitZoom(bound),
	}
}

// FocusOn centers on a single point at a fixed zoom.
func (pl *Planner) FocusOn(p point.Point, zoom int) Target {
	return Target{
		Kind:   TargetCenterZoom,
		Center: p.Position(),
		Zoom:   zoom,
	}
}

// FocusLocation centers on an arbitrary coordinate at a fixed zoom (geocoded
// results that matched no delivery point).
func (pl *Planner) FocusLocation(center orb.Point, zoom int) Target {
	return Target{
		Kind:   TargetCenterZoom,
		Center: center,
		Zoom:   zoom,
	}
}

// RegionAroundRadius frames a circle of radiusMeters around center, used for
// the user-location view.
func (pl *Planner) RegionAroundRadius(center orb.Point, radiusMeters float64) Target {
	bound := orbgeo.NewBoundAroundPoint(center, radiusMeters)
	return Target{
		Kind:   TargetBounds,
		Bounds: bound,
		Zoom:   pl.fitZoom(bound),
	}
}

// webMercatorBaseResolution is metres per pixel at zoom 0 on a 256px tile.
const webMercatorBaseResolution = 156543.033928041

// fitZoom solves the Web Mercator resolution equation for the zoom at which
// the bound fills the viewport, clamping degenerate or extremely tight
// bounds down to the fallback zoom.
func (pl *Planner) fitZoom(bound orb.Bound) int {
	minX, minY := geo.Project3857(bound.Min)
	maxX, maxY := geo.Project3857(bound.Max)

	resX := (maxX - minX) / float64(pl.cfg.ViewportWidth)
	resY := (maxY - minY) / float64(pl.cfg.ViewportHeight)
	res := math.Max(resX, resY)
	if res <= 0 {
		return pl.cfg.FallbackZoom
	}

	zoom := int(math.Floor(math.Log2(webMercatorBaseResolution / res)))
	if zoom > pl.cfg.MaxFitZoom {
		return pl.cfg.FallbackZoom
	}
	if zoom < 0 {
		return 0
	}
	return zoom
}
