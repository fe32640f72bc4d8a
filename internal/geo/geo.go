// Package geo holds the coordinate helpers shared by the view planner and
// the snapshot store.
//
// Dataset coordinates are WGS 84 (EPSG 4326). The snapshot store keeps them
// as simplefeatures geometry so point data round-trips through SQL as WKB,
// and the view planner projects to Web Mercator (EPSG 3857) when it needs
// distances in metres for zoom fitting.
package geo

import (
	"errors"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	geom "github.com/peterstace/simplefeatures/geom"
	"github.com/wroge/wgs84"
)

// ErrInvalidCoordinates is returned when a coordinate string cannot be parsed.
var ErrInvalidCoordinates = errors.New("invalid coordinates provided")

// ParseLatLng parses a "lat,lng" string into an orb.Point (lng, lat order).
func ParseLatLng(coords string) (orb.Point, error) {
	parts := strings.Split(coords, ",")
	if len(parts) != 2 {
		return orb.Point{}, ErrInvalidCoordinates
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return orb.Point{}, ErrInvalidCoordinates
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return orb.Point{}, ErrInvalidCoordinates
	}
	return orb.Point{lng, lat}, nil
}

// GeomPoint converts an orb.Point into a simplefeatures XY point for WKB
// storage. Construction only rejects non-finite coordinates, which the
// loader has already filtered, so a failure degrades to the empty point.
func GeomPoint(p orb.Point) geom.Point {
	pt, err := geom.NewPoint(geom.Coordinates{
		XY:   geom.XY{X: p[0], Y: p[1]},
		Type: geom.DimXY,
	})
	if err != nil {
		return geom.Point{}
	}
	return pt
}

// OrbPoint converts a stored simplefeatures point back into an orb.Point.
// Empty geometries map to the zero point.
func OrbPoint(p geom.Point) orb.Point {
	coords, ok := p.Coordinates()
	if !ok {
		return orb.Point{}
	}
	return orb.Point{coords.X, coords.Y}
}

// Project3857 projects a WGS 84 point to Web Mercator metres.
func Project3857(p orb.Point) (x, y float64) {
	epsg := wgs84.EPSG()
	f := epsg.Transform(4326, 3857)
	x, y, _ = f(p[0], p[1], 0)
	return x, y
}
