package point

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_CoercesStringCoordinates(t *testing.T) {
	raw := []RawRecord{
		{DPNumber: "1", DPName: "Depot A", Latitude: "51.5", Longitude: "-0.1"},
	}

	points := Load(raw)

	require.Len(t, points, 1)
	assert.Equal(t, "1", points[0].ID)
	assert.Equal(t, "Depot A", points[0].Name)
	assert.Equal(t, 51.5, points[0].Lat)
	assert.Equal(t, -0.1, points[0].Lng)
}

func TestLoad_DropsUnparseableCoordinates(t *testing.T) {
	raw := []RawRecord{
		{DPNumber: "1", DPName: "Good", Latitude: 51.5, Longitude: -0.1},
		{DPNumber: "2", DPName: "BadLat", Latitude: "not a number", Longitude: -0.1},
		{DPNumber: "3", DPName: "MissingLng", Latitude: 51.5},
		{DPNumber: "4", DPName: "NaN", Latitude: math.NaN(), Longitude: -0.1},
		{DPNumber: "5", DPName: "Inf", Latitude: 51.5, Longitude: math.Inf(1)},
	}

	points := Load(raw)

	require.Len(t, points, 1)
	assert.Equal(t, "1", points[0].ID)
}

func TestLoad_PreservesInputOrder(t *testing.T) {
	raw := []RawRecord{
		{DPNumber: "3", Latitude: 1.0, Longitude: 1.0},
		{DPNumber: "bad", Latitude: "x", Longitude: 1.0},
		{DPNumber: "1", Latitude: 2.0, Longitude: 2.0},
		{DPNumber: "2", Latitude: 3.0, Longitude: 3.0},
	}

	points := Load(raw)

	require.Len(t, points, 3)
	assert.Equal(t, "3", points[0].ID)
	assert.Equal(t, "1", points[1].ID)
	assert.Equal(t, "2", points[2].ID)
}

func TestLoad_TrimsAndDefaultsIdentity(t *testing.T) {
	raw := []RawRecord{
		{DPNumber: "  DP9  ", DPName: nil, Latitude: 0.0, Longitude: 0.0},
	}

	points := Load(raw)

	require.Len(t, points, 1)
	assert.Equal(t, "DP9", points[0].ID)
	assert.Equal(t, "", points[0].Name)
}

func TestLoad_NumericIdentityKeepsNumberRendering(t *testing.T) {
	raw := []RawRecord{
		{DPNumber: float64(123), DPName: float64(4.5), Latitude: 51.5, Longitude: -0.1},
	}

	points := Load(raw)

	require.Len(t, points, 1)
	assert.Equal(t, "123", points[0].ID)
	assert.Equal(t, "4.5", points[0].Name)
}

func TestLoad_EmptyInput(t *testing.T) {
	assert.Empty(t, Load(nil))
	assert.Empty(t, Load([]RawRecord{}))
}

func TestPoint_Title(t *testing.T) {
	assert.Equal(t, "Depot A", Point{ID: "1", Name: "Depot A"}.Title())
	assert.Equal(t, "1", Point{ID: "1"}.Title())
}

func TestPoint_Position(t *testing.T) {
	p := Point{Lat: 51.5, Lng: -0.1}
	pos := p.Position()
	assert.Equal(t, -0.1, pos[0])
	assert.Equal(t, 51.5, pos[1])
}
