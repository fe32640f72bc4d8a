package view

import (
	"fmt"

	"github.com/dplocate/locator/internal/point"
)

// NavigationStrategy selects the device handoff format for directions.
type NavigationStrategy string

const (
	// StrategyGeoURI produces a device-native geo: URI.
	StrategyGeoURI NavigationStrategy = "geo-uri"
	// StrategyWebDirections produces a universal web directions URL.
	StrategyWebDirections NavigationStrategy = "web-directions"
)

// Valid reports whether the strategy is one of the known values.
func (s NavigationStrategy) Valid() bool {
	return s == StrategyGeoURI || s == StrategyWebDirections
}

// NavigationTarget produces the directions handoff URI for a point under the
// given strategy. Unknown strategies fall back to the geo: URI.
func NavigationTarget(p point.Point, strategy NavigationStrategy) string {
	switch strategy {
	case StrategyWebDirections:
		return fmt.Sprintf("https://www.google.com/maps/dir/?api=1&destination=%f,%f", p.Lat, p.Lng)
	default:
		return fmt.Sprintf("geo:%f,%f", p.Lat, p.Lng)
	}
}
