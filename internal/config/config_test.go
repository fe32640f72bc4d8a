package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_WithValidConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	cfg := `{
		"logLevel": "debug",
		"map": { "defaultZoom": 8, "searchZoom": 15 },
		"navigation": { "strategy": "web-directions" },
		"storage": { "type": "sqlite", "path": "points.db" }
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "locator.cfg.json"), []byte(cfg), 0644))

	err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", viper.GetString("logLevel"))
	assert.Equal(t, 8, GetMapConfig().DefaultZoom)
	assert.Equal(t, 15, GetMapConfig().SearchZoom)
	assert.Equal(t, "web-directions", GetNavigationConfig().Strategy)
	assert.Equal(t, "sqlite", GetStorageConfig().Type)
	assert.Equal(t, "points.db", GetStorageConfig().Path)
}

func TestLoad_DefaultValues(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "locator.cfg.json"), []byte(`{}`), 0644))

	err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "info", viper.GetString("logLevel"))
	assert.Equal(t, "./locatorlogs", viper.GetString("logsDir"))

	m := GetMapConfig()
	assert.Equal(t, 52.8, m.DefaultLat)
	assert.Equal(t, -1.6, m.DefaultLng)
	assert.Equal(t, 6, m.DefaultZoom)
	assert.Equal(t, 16, m.SearchZoom)
	assert.Equal(t, 18, m.MaxFitZoom)
	assert.Equal(t, 16, m.FallbackZoom)
	assert.Equal(t, 1024, m.ViewportWidth)
	assert.Equal(t, 768, m.ViewportHeight)
	assert.Equal(t, "assets/heart.png", m.MarkerIcon)
	assert.Equal(t, "roadmap", m.Style)

	assert.Equal(t, "data/delivery_points.json", GetDatasetConfig().Path)

	l := GetLocateConfig()
	assert.Equal(t, 48280.0, l.RadiusMeters)
	assert.Equal(t, 10*time.Second, l.Timeout)

	assert.Equal(t, "geo-uri", GetNavigationConfig().Strategy)
	s := GetSearchConfig()
	assert.Equal(t, 500.0, s.GeocodeSnapRadiusMeters)
	assert.Empty(t, s.GeocodeURL)

	mon := GetMonitorConfig()
	assert.False(t, mon.Enabled)
	assert.Equal(t, time.Minute, mon.Interval)

	assert.Equal(t, "none", GetStorageConfig().Type)
}

func TestLoad_MissingConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	err := Load(t.TempDir())

	require.Error(t, err)
}

func TestLoad_MalformedConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "locator.cfg.json"), []byte(`{not json`), 0644))

	err := Load(dir)

	require.Error(t, err)
}
