// Package config loads the locator configuration from a JSON file via viper
// and exposes typed getters for each subsystem.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// MapConfig holds map view and marker settings.
type MapConfig struct {
	DefaultLat     float64 `json:"defaultLat" mapstructure:"defaultLat"`
	DefaultLng     float64 `json:"defaultLng" mapstructure:"defaultLng"`
	DefaultZoom    int     `json:"defaultZoom" mapstructure:"defaultZoom"`
	SearchZoom     int     `json:"searchZoom" mapstructure:"searchZoom"`
	MaxFitZoom     int     `json:"maxFitZoom" mapstructure:"maxFitZoom"`
	FallbackZoom   int     `json:"fallbackZoom" mapstructure:"fallbackZoom"`
	ViewportWidth  int     `json:"viewportWidth" mapstructure:"viewportWidth"`
	ViewportHeight int     `json:"viewportHeight" mapstructure:"viewportHeight"`
	MarkerIcon     string  `json:"markerIcon" mapstructure:"markerIcon"`
	Style          string  `json:"style" mapstructure:"style"`
}

// DatasetConfig holds dataset source settings.
type DatasetConfig struct {
	Path string `json:"path" mapstructure:"path"`
}

// LocateConfig holds user-location settings.
type LocateConfig struct {
	RadiusMeters float64       `json:"radiusMeters" mapstructure:"radiusMeters"`
	Timeout      time.Duration `json:"timeout" mapstructure:"timeout"`
}

// NavigationConfig holds the directions-handoff settings.
type NavigationConfig struct {
	Strategy string `json:"strategy" mapstructure:"strategy"`
}

// SearchConfig holds resolver settings. An empty GeocodeURL disables the
// remote geocoding resolver.
type SearchConfig struct {
	GeocodeSnapRadiusMeters float64 `json:"geocodeSnapRadiusMeters" mapstructure:"geocodeSnapRadiusMeters"`
	GeocodeURL              string  `json:"geocodeUrl" mapstructure:"geocodeUrl"`
	GeocodeAPIKey           string  `json:"geocodeApiKey" mapstructure:"geocodeApiKey"`
}

// MonitorConfig holds status monitoring settings.
type MonitorConfig struct {
	Enabled  bool          `json:"enabled" mapstructure:"enabled"`
	Interval time.Duration `json:"interval" mapstructure:"interval"`
}

// PostgresConfig holds connection settings for the postgres snapshot store.
type PostgresConfig struct {
	Host     string `json:"host" mapstructure:"host"`
	Port     string `json:"port" mapstructure:"port"`
	Username string `json:"username" mapstructure:"username"`
	Password string `json:"password" mapstructure:"password"`
	Database string `json:"database" mapstructure:"database"`
}

// StorageConfig holds snapshot store settings.
type StorageConfig struct {
	Type     string         `json:"type" mapstructure:"type"` // "none", "sqlite" or "postgres"
	Path     string         `json:"path" mapstructure:"path"` // sqlite file path; empty for in-memory
	Postgres PostgresConfig `json:"postgres" mapstructure:"postgres"`
}

// Load reads configuration from locator.cfg.json in configDir and sets
// default values.
func Load(configDir string) error {
	// Set default values
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logsDir", "./locatorlogs")

	// UK midpoint, matching the shipped dataset
	viper.SetDefault("map.defaultLat", 52.8)
	viper.SetDefault("map.defaultLng", -1.6)
	viper.SetDefault("map.defaultZoom", 6)
	viper.SetDefault("map.searchZoom", 16)
	viper.SetDefault("map.maxFitZoom", 18)
	viper.SetDefault("map.fallbackZoom", 16)
	viper.SetDefault("map.viewportWidth", 1024)
	viper.SetDefault("map.viewportHeight", 768)
	viper.SetDefault("map.markerIcon", "assets/heart.png")
	viper.SetDefault("map.style", "roadmap")

	viper.SetDefault("dataset.path", "data/delivery_points.json")

	// 30 miles, matching the reference locate behavior
	viper.SetDefault("locate.radiusMeters", 48280.0)
	viper.SetDefault("locate.timeout", "10s")

	viper.SetDefault("navigation.strategy", "geo-uri")

	viper.SetDefault("search.geocodeSnapRadiusMeters", 500.0)
	viper.SetDefault("search.geocodeUrl", "")
	viper.SetDefault("search.geocodeApiKey", "")

	viper.SetDefault("monitor.enabled", false)
	viper.SetDefault("monitor.interval", "1m")

	viper.SetDefault("storage.type", "none")
	viper.SetDefault("storage.path", "")
	viper.SetDefault("storage.postgres.host", "localhost")
	viper.SetDefault("storage.postgres.port", "5432")
	viper.SetDefault("storage.postgres.username", "postgres")
	viper.SetDefault("storage.postgres.password", "postgres")
	viper.SetDefault("storage.postgres.database", "locator")

	viper.SetConfigName("locator.cfg.json")
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	err := viper.ReadInConfig()
	if err != nil {
		return fmt.Errorf("error reading config file: %v", err)
	}

	return nil
}

// GetMapConfig returns the map settings.
func GetMapConfig() MapConfig {
	return MapConfig{
		DefaultLat:     viper.GetFloat64("map.defaultLat"),
		DefaultLng:     viper.GetFloat64("map.defaultLng"),
		DefaultZoom:    viper.GetInt("map.defaultZoom"),
		SearchZoom:     viper.GetInt("map.searchZoom"),
		MaxFitZoom:     viper.GetInt("map.maxFitZoom"),
		FallbackZoom:   viper.GetInt("map.fallbackZoom"),
		ViewportWidth:  viper.GetInt("map.viewportWidth"),
		ViewportHeight: viper.GetInt("map.viewportHeight"),
		MarkerIcon:     viper.GetString("map.markerIcon"),
		Style:          viper.GetString("map.style"),
	}
}

// GetDatasetConfig returns the dataset source settings.
func GetDatasetConfig() DatasetConfig {
	return DatasetConfig{
		Path: viper.GetString("dataset.path"),
	}
}

// GetLocateConfig returns the user-location settings.
func GetLocateConfig() LocateConfig {
	return LocateConfig{
		RadiusMeters: viper.GetFloat64("locate.radiusMeters"),
		Timeout:      viper.GetDuration("locate.timeout"),
	}
}

// GetNavigationConfig returns the directions-handoff settings.
func GetNavigationConfig() NavigationConfig {
	return NavigationConfig{
		Strategy: viper.GetString("navigation.strategy"),
	}
}

// GetSearchConfig returns the resolver settings.
func GetSearchConfig() SearchConfig {
	return SearchConfig{
		GeocodeSnapRadiusMeters: viper.GetFloat64("search.geocodeSnapRadiusMeters"),
		GeocodeURL:              viper.GetString("search.geocodeUrl"),
		GeocodeAPIKey:           viper.GetString("search.geocodeApiKey"),
	}
}

// GetMonitorConfig returns the status monitoring settings.
func GetMonitorConfig() MonitorConfig {
	return MonitorConfig{
		Enabled:  viper.GetBool("monitor.enabled"),
		Interval: viper.GetDuration("monitor.interval"),
	}
}

// GetStorageConfig returns the snapshot store settings.
func GetStorageConfig() StorageConfig {
	return StorageConfig{
		Type: viper.GetString("storage.type"),
		Path: viper.GetString("storage.path"),
		Postgres: PostgresConfig{
			Host:     viper.GetString("storage.postgres.host"),
			Port:     viper.GetString("storage.postgres.port"),
			Username: viper.GetString("storage.postgres.username"),
			Password: viper.GetString("storage.postgres.password"),
			Database: viper.GetString("storage.postgres.database"),
		},
	}
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value.
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value.
func GetBool(key string) bool {
	return viper.GetBool(key)
}
