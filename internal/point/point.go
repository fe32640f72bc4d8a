// Package point defines the validated delivery-point model and the loader
// that turns raw dataset records into it.
package point

import (
	"github.com/paulmach/orb"
)

// Point is a validated dataset record. Instances are created once at load
// time and never mutated.
type Point struct {
	ID   string  `json:"dp_number"`
	Name string  `json:"dp_name"`
	Lat  float64 `json:"latitude"`
	Lng  float64 `json:"longitude"`
}

// Position returns the point's coordinates as an orb.Point (lng, lat order).
func (p Point) Position() orb.Point {
	return orb.Point{p.Lng, p.Lat}
}

// Title returns the display label for the point: the name, falling back to
// the id when the name is empty.
func (p Point) Title() string {
	if p.Name != "" {
		return p.Name
	}
	return p.ID
}
