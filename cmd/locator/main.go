package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dplocate/locator/internal/api"
	"github.com/dplocate/locator/internal/config"
	"github.com/dplocate/locator/internal/dispatcher"
	"github.com/dplocate/locator/internal/location"
	"github.com/dplocate/locator/internal/logging"
	"github.com/dplocate/locator/internal/monitor"
	"github.com/dplocate/locator/internal/search"
	"github.com/dplocate/locator/internal/session"
	"github.com/dplocate/locator/internal/storage"
	"github.com/dplocate/locator/internal/storage/file"
	"github.com/dplocate/locator/internal/view"
	"github.com/dplocate/locator/internal/widget"
)

var (
	Version   string = "0.0.1"
	BuildDate string = "unknown"
)

// app bundles everything one locator run needs. Built once in setup, torn
// down in main.
type app struct {
	slogManager *logging.Manager
	logFile     *os.File
	snapshot    storage.Snapshot
	controller  *session.Controller
	dispatcher  *dispatcher.Dispatcher
	widget      *widget.Headless
	provider    *argProvider
	monitor     *monitor.Service
}

// argProvider is a location provider fed from the command line. With no
// coordinates set it reports the unsupported-device case.
type argProvider struct {
	pos locationArg
}

func setup(configDir string) (*app, error) {
	a := &app{}

	if err := config.Load(configDir); err != nil {
		// defaults are registered before the read, so a missing file is
		// survivable
		fmt.Fprintf(os.Stderr, "config: %v (using defaults)\n", err)
	}

	sessionStart := time.Now()
	logsDir := config.GetString("logsDir")

	a.slogManager = logging.NewManager()
	if err := os.MkdirAll(logsDir, 0o755); err == nil {
		path := logging.LogFilePath(logsDir, "locator", sessionStart)
		if f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
			a.logFile = f
		}
	}
	if a.logFile != nil {
		a.slogManager.Setup(a.logFile, config.GetString("logLevel"), nil)
	} else {
		a.slogManager.Setup(nil, config.GetString("logLevel"), nil)
	}
	logger := a.slogManager.Logger()
	logger.Info("Starting up", "version", Version, "buildDate", BuildDate)

	snap, err := storage.NewSnapshot(config.GetStorageConfig(), logger)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot store: %w", err)
	}
	a.snapshot = snap

	mapCfg := config.GetMapConfig()
	locateCfg := config.GetLocateConfig()
	navCfg := config.GetNavigationConfig()
	searchCfg := config.GetSearchConfig()

	strategy := view.NavigationStrategy(navCfg.Strategy)
	if !strategy.Valid() {
		logger.Warn("Unknown navigation strategy, using geo-uri", "strategy", navCfg.Strategy)
		strategy = view.StrategyGeoURI
	}

	a.provider = &argProvider{}
	a.widget = widget.NewHeadless(logger)
	a.widget.SetAppearance(widget.Appearance{
		MarkerIcon: mapCfg.MarkerIcon,
		Style:      mapCfg.Style,
	})

	var geocoder search.Geocoder
	if searchCfg.GeocodeURL != "" {
		geocoder = api.New(searchCfg.GeocodeURL, searchCfg.GeocodeAPIKey)
	}

	a.controller = session.New(session.Dependencies{
		Widget:   a.widget,
		Source:   file.New(config.GetDatasetConfig().Path),
		Snapshot: snap,
		Locator:  location.NewService(a.provider, locateCfg.Timeout),
		Geocoder: geocoder,
		Planner: view.NewPlanner(view.Config{
			ViewportWidth:  mapCfg.ViewportWidth,
			ViewportHeight: mapCfg.ViewportHeight,
			MaxFitZoom:     mapCfg.MaxFitZoom,
			FallbackZoom:   mapCfg.FallbackZoom,
		}),
		Logger: logger,
	}, session.Config{
		SearchZoom:         mapCfg.SearchZoom,
		LocateRadiusMeters: locateCfg.RadiusMeters,
		Navigation:         strategy,
		GeocodeSnapRadius:  searchCfg.GeocodeSnapRadiusMeters,
	})

	a.dispatcher, err = dispatcher.New(logging.NewDispatcherLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("creating dispatcher: %w", err)
	}
	a.controller.RegisterHandlers(a.dispatcher)

	monitorCfg := config.GetMonitorConfig()
	if monitorCfg.Enabled {
		a.monitor = monitor.NewService(monitor.Dependencies{
			Controller: a.controller,
			Logger:     logger,
			Interval:   monitorCfg.Interval,
		})
		a.monitor.Start()
	}

	return a, nil
}

func (a *app) close() {
	if a.monitor != nil {
		a.monitor.Stop()
	}
	if a.snapshot != nil {
		if err := a.snapshot.Close(); err != nil {
			a.slogManager.Logger().Error("Failed to close snapshot store", "error", err)
		}
	}
	if a.logFile != nil {
		a.logFile.Close()
	}
}

func main() {
	configDir, err := os.Executable()
	if err == nil {
		configDir = filepath.Dir(configDir)
	} else {
		configDir = "."
	}
	if v := os.Getenv("LOCATOR_CONFIG_DIR"); v != "" {
		configDir = v
	}

	a, err := setup(configDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer a.close()

	if err := runCLI(a, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
