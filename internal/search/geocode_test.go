package search

import (
	"context"
	"errors"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dplocate/locator/internal/point"
)

type stubGeocoder struct {
	loc   orb.Point
	label string
	err   error
}

func (s *stubGeocoder) Geocode(_ context.Context, _ string) (orb.Point, string, error) {
	return s.loc, s.label, s.err
}

func TestGeocodeResolver_PlainResult(t *testing.T) {
	g := &stubGeocoder{loc: orb.Point{-2.2, 53.4}, label: "M1 1AA"}
	r := NewGeocodeResolver(g, nil, 0)

	m, err := r.Resolve(context.Background(), "M1 1AA")

	require.NoError(t, err)
	assert.Nil(t, m.Point)
	assert.Equal(t, orb.Point{-2.2, 53.4}, m.Location)
	assert.Equal(t, "M1 1AA", m.Label)
}

func TestGeocodeResolver_SnapsToNearbyPoint(t *testing.T) {
	points := []point.Point{
		{ID: "DP1", Name: "Near", Lat: 51.5001, Lng: -0.1001},
		{ID: "DP2", Name: "Far", Lat: 55.0, Lng: -3.0},
	}
	// Geocoded location ~15m from DP1.
	g := &stubGeocoder{loc: orb.Point{-0.1, 51.5}}
	r := NewGeocodeResolver(g, points, 500)

	m, err := r.Resolve(context.Background(), "somewhere")

	require.NoError(t, err)
	require.NotNil(t, m.Point)
	assert.Equal(t, "DP1", m.Point.ID)
}

func TestGeocodeResolver_NoSnapOutsideRadius(t *testing.T) {
	points := []point.Point{{ID: "DP1", Lat: 55.0, Lng: -3.0}}
	g := &stubGeocoder{loc: orb.Point{-0.1, 51.5}, label: "London"}
	r := NewGeocodeResolver(g, points, 500)

	m, err := r.Resolve(context.Background(), "somewhere")

	require.NoError(t, err)
	assert.Nil(t, m.Point)
	assert.Equal(t, "London", m.Label)
}

func TestGeocodeResolver_EmptyResultIsNoMatch(t *testing.T) {
	g := &stubGeocoder{err: ErrNoResults}
	r := NewGeocodeResolver(g, nil, 0)

	_, err := r.Resolve(context.Background(), "nowhere at all")

	assert.True(t, IsNoMatch(err))
}

func TestGeocodeResolver_FailureIsNotNoMatch(t *testing.T) {
	g := &stubGeocoder{err: errors.New("service unavailable")}
	r := NewGeocodeResolver(g, nil, 0)

	_, err := r.Resolve(context.Background(), "somewhere")

	require.Error(t, err)
	assert.False(t, IsNoMatch(err))
	assert.Contains(t, err.Error(), "service unavailable")
}
