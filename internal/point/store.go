package point

import (
	"math"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// RawRecord is a dataset record as it arrives from the source. Coordinate
// fields may be JSON numbers or strings, so everything is untyped until Load
// coerces it.
type RawRecord struct {
	DPNumber  any `json:"dp_number"`
	DPName    any `json:"dp_name"`
	Latitude  any `json:"latitude"`
	Longitude any `json:"longitude"`
}

// Load validates and normalizes raw records into Points. Records whose
// latitude or longitude cannot be coerced to a finite number are dropped
// silently. Output order matches input order.
func Load(raw []RawRecord) []Point {
	return lo.FilterMap(raw, func(r RawRecord, _ int) (Point, bool) {
		lat, okLat := coerceFloat(r.Latitude)
		lng, okLng := coerceFloat(r.Longitude)
		if !okLat || !okLng {
			return Point{}, false
		}
		return Point{
			ID:   coerceString(r.DPNumber),
			Name: coerceString(r.DPName),
			Lat:  lat,
			Lng:  lng,
		}, true
	})
}

// coerceString converts a raw field to a trimmed string. JSON decoding
// yields float64 for numeric ids; they keep their number rendering. Anything
// else becomes the empty string.
func coerceString(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return ""
	}
}

// coerceFloat converts a raw field to a finite float64. JSON decoding
// produces float64 for numbers, so only float64 and string forms are
// accepted.
func coerceFloat(v any) (float64, bool) {
	var f float64
	switch val := v.(type) {
	case float64:
		f = val
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
