package view

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dplocate/locator/internal/point"
)

func testPlanner() *Planner {
	return NewPlanner(Config{})
}

func TestBoundsForAll_Empty(t *testing.T) {
	target := testPlanner().BoundsForAll(nil)

	assert.Equal(t, TargetNone, target.Kind)
}

func TestBoundsForAll_CoversAllPoints(t *testing.T) {
	points := []point.Point{
		{ID: "1", Lat: 51.5, Lng: -0.1},
		{ID: "2", Lat: 53.4, Lng: -2.2},
		{ID: "3", Lat: 52.0, Lng: 1.0},
	}

	target := testPlanner().BoundsForAll(points)

	require.Equal(t, TargetBounds, target.Kind)
	assert.Equal(t, -2.2, target.Bounds.Min[0])
	assert.Equal(t, 51.5, target.Bounds.Min[1])
	assert.Equal(t, 1.0, target.Bounds.Max[0])
	assert.Equal(t, 53.4, target.Bounds.Max[1])
	for _, p := range points {
		assert.True(t, target.Bounds.Contains(p.Position()), "bound should contain %s", p.ID)
	}
}

func TestBoundsForAll_CountrySpanZoom(t *testing.T) {
	// Roughly the UK: should fit at a low-to-mid zoom, never the clamp.
	points := []point.Point{
		{ID: "south", Lat: 50.0, Lng: -5.0},
		{ID: "north", Lat: 58.0, Lng: 1.0},
	}

	target := testPlanner().BoundsForAll(points)

	require.Equal(t, TargetBounds, target.Kind)
	assert.GreaterOrEqual(t, target.Zoom, 4)
	assert.LessOrEqual(t, target.Zoom, 8)
}

func TestBoundsForAll_IdenticalPointsClampToFallback(t *testing.T) {
	points := []point.Point{
		{ID: "1", Lat: 51.5, Lng: -0.1},
		{ID: "2", Lat: 51.5, Lng: -0.1},
	}

	target := testPlanner().BoundsForAll(points)

	require.Equal(t, TargetBounds, target.Kind)
	assert.Equal(t, 16, target.Zoom)
}

func TestBoundsForAll_NearIdenticalPointsClampToFallback(t *testing.T) {
	// ~5m apart: a raw fit would exceed zoom 18.
	points := []point.Point{
		{ID: "1", Lat: 51.50000, Lng: -0.10000},
		{ID: "2", Lat: 51.50004, Lng: -0.10004},
	}

	target := testPlanner().BoundsForAll(points)

	assert.Equal(t, 16, target.Zoom)
}

func TestBoundsForAll_SinglePointClampToFallback(t *testing.T) {
	target := testPlanner().BoundsForAll([]point.Point{{ID: "1", Lat: 51.5, Lng: -0.1}})

	require.Equal(t, TargetBounds, target.Kind)
	assert.Equal(t, 16, target.Zoom)
}

func TestFocusOn(t *testing.T) {
	p := point.Point{ID: "1", Lat: 51.5, Lng: -0.1}

	target := testPlanner().FocusOn(p, 16)

	assert.Equal(t, TargetCenterZoom, target.Kind)
	assert.Equal(t, orb.Point{-0.1, 51.5}, target.Center)
	assert.Equal(t, 16, target.Zoom)
}

func TestRegionAroundRadius(t *testing.T) {
	center := orb.Point{-0.1, 51.5}

	target := testPlanner().RegionAroundRadius(center, 48280)

	require.Equal(t, TargetBounds, target.Kind)
	assert.True(t, target.Bounds.Contains(center))
	// A 30-mile radius is region scale, nowhere near the clamp.
	assert.Greater(t, target.Zoom, 0)
	assert.Less(t, target.Zoom, 12)
	// The bound should extend roughly the radius in each direction.
	assert.Less(t, target.Bounds.Min[1], 51.1)
	assert.Greater(t, target.Bounds.Max[1], 51.9)
}

func TestRegionAroundRadius_TinyRadiusClampsToFallback(t *testing.T) {
	target := testPlanner().RegionAroundRadius(orb.Point{-0.1, 51.5}, 2)

	require.Equal(t, TargetBounds, target.Kind)
	assert.Equal(t, 16, target.Zoom)
}

func TestNavigationTarget_GeoURI(t *testing.T) {
	p := point.Point{ID: "1", Lat: 51.5, Lng: -0.1}

	uri := NavigationTarget(p, StrategyGeoURI)

	assert.Equal(t, "geo:51.500000,-0.100000", uri)
}

func TestNavigationTarget_WebDirections(t *testing.T) {
	p := point.Point{ID: "1", Lat: 51.5, Lng: -0.1}

	uri := NavigationTarget(p, StrategyWebDirections)

	assert.Equal(t, "https://www.google.com/maps/dir/?api=1&destination=51.500000,-0.100000", uri)
}

func TestNavigationTarget_UnknownStrategyFallsBackToGeoURI(t *testing.T) {
	p := point.Point{ID: "1", Lat: 51.5, Lng: -0.1}

	uri := NavigationTarget(p, NavigationStrategy("bogus"))

	assert.Equal(t, "geo:51.500000,-0.100000", uri)
}

func TestNavigationStrategy_Valid(t *testing.T) {
	assert.True(t, StrategyGeoURI.Valid())
	assert.True(t, StrategyWebDirections.Valid())
	assert.False(t, NavigationStrategy("bogus").Valid())
}
