package search

import (
	"context"
	"errors"
	"fmt"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"

	"github.com/dplocate/locator/internal/point"
)

// ErrNoResults is returned by a Geocoder whose lookup succeeded but found
// nothing. It becomes a NoMatchError; any other geocoder error is a real
// failure and stops the chain.
var ErrNoResults = errors.New("no geocode results")

// Geocoder is the external postcode/address lookup. Implementations do the
// network work; this package only adapts the result into the resolver chain.
type Geocoder interface {
	Geocode(ctx context.Context, query string) (orb.Point, string, error)
}

// GeocodeResolver resolves queries through an external geocoder. When the
// geocoded location falls within SnapRadius metres of a known delivery
// point, the match is snapped to that point so its marker panel can open.
type GeocodeResolver struct {
	geocoder   Geocoder
	points     []point.Point
	snapRadius float64
}

// NewGeocodeResolver creates a geocoding fallback resolver. A snapRadius of
// zero disables snapping.
func NewGeocodeResolver(geocoder Geocoder, points []point.Point, snapRadius float64) *GeocodeResolver {
	return &GeocodeResolver{
		geocoder:   geocoder,
		points:     points,
		snapRadius: snapRadius,
	}
}

// Resolve implements Resolver. Geocoder failures are returned as-is: they
// surface to the user directly rather than continuing the chain.
func (r *GeocodeResolver) Resolve(ctx context.Context, query string) (Match, error) {
	loc, label, err := r.geocoder.Geocode(ctx, query)
	if errors.Is(err, ErrNoResults) {
		return Match{}, &NoMatchError{Reason: ReasonNoPointMatch}
	}
	if err != nil {
		return Match{}, fmt.Errorf("geocoding %q: %w", query, err)
	}

	if nearest, ok := r.nearestWithin(loc, r.snapRadius); ok {
		return Match{Point: nearest, Location: nearest.Position(), Label: nearest.Title()}, nil
	}
	return Match{Location: loc, Label: label}, nil
}

// nearestWithin returns the closest delivery point within radius metres of
// loc, using geodesic distance.
func (r *GeocodeResolver) nearestWithin(loc orb.Point, radius float64) (*point.Point, bool) {
	if radius <= 0 {
		return nil, false
	}
	best := -1
	bestDist := radius
	for i, p := range r.points {
		d := orbgeo.Distance(loc, p.Position())
		if d <= bestDist {
			best = i
			bestDist = d
		}
	}
	if best < 0 {
		return nil, false
	}
	return &r.points[best], true
}
