// Package session owns one locator session: the loaded dataset, the marker
// registry, the view planner, the resolver chain, and the handle to the
// external map widget. It replaces the ad-hoc globals of earlier builds;
// every handler receives the controller explicitly.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/dplocate/locator/internal/location"
	"github.com/dplocate/locator/internal/marker"
	"github.com/dplocate/locator/internal/point"
	"github.com/dplocate/locator/internal/search"
	"github.com/dplocate/locator/internal/storage"
	"github.com/dplocate/locator/internal/view"
	"github.com/dplocate/locator/internal/widget"
)

// ErrNotReady is returned by every operation invoked before Start has
// completed. Callers wire interactive handlers only after Start returns.
var ErrNotReady = errors.New("session not started")

// ErrUnknownPoint is returned when a point id has no live marker.
var ErrUnknownPoint = errors.New("unknown delivery point")

// Config holds the session tunables.
type Config struct {
	SearchZoom         int
	LocateRadiusMeters float64
	Navigation         view.NavigationStrategy
	GeocodeSnapRadius  float64
}

// Dependencies holds everything a session needs.
type Dependencies struct {
	Widget   widget.Map
	Source   storage.Source
	Snapshot storage.Snapshot // optional offline fallback
	Locator  *location.Service
	Geocoder search.Geocoder // optional secondary resolver
	Planner  *view.Planner
	Logger   *slog.Logger
}

// Controller runs one locator session. All operations are serialized by an
// internal mutex; a toggle can never be re-entered for the same entry
// mid-transition.
type Controller struct {
	deps Dependencies
	cfg  Config

	registry *marker.Registry

	mu       sync.Mutex
	ready    bool
	points   []point.Point
	resolver search.Resolver
}

// New creates a session controller. Call Start before any operation.
func New(deps Dependencies, cfg Config) *Controller {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	return &Controller{
		deps:     deps,
		cfg:      cfg,
		registry: marker.NewRegistry(deps.Widget),
	}
}

// Start loads the dataset, builds the markers, and frames the initial view.
// A fetch or parse failure degrades to the snapshot store when one is
// configured, then to an empty dataset; it never fails the session.
func (c *Controller) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ready {
		return errors.New("session already started")
	}

	points, fromPrimary := c.loadDataset(ctx)
	c.points = points

	if err := c.registry.Rebuild(points); err != nil {
		return fmt.Errorf("building markers: %w", err)
	}

	resolvers := []search.Resolver{search.NewPointResolver(points)}
	if c.deps.Geocoder != nil {
		resolvers = append(resolvers, search.NewGeocodeResolver(c.deps.Geocoder, points, c.cfg.GeocodeSnapRadius))
	}
	c.resolver = search.NewChain(resolvers...)

	if len(points) == 0 {
		c.deps.Logger.Warn("No delivery points found")
	} else {
		c.deps.Widget.ApplyView(c.deps.Planner.BoundsForAll(points))
		if fromPrimary && c.deps.Snapshot != nil {
			if err := c.deps.Snapshot.Save(ctx, points); err != nil {
				c.deps.Logger.Error("Failed to save dataset snapshot", "error", err)
			}
		}
	}

	c.ready = true
	c.deps.Logger.Info("Session started", "points", len(points))
	return nil
}

// loadDataset fetches raw records from the primary source, falling back to
// the snapshot store. Returns the validated points and whether the primary
// source supplied them.
func (c *Controller) loadDataset(ctx context.Context) ([]point.Point, bool) {
	raw, err := c.deps.Source.Fetch(ctx)
	if err == nil {
		return point.Load(raw), true
	}
	c.deps.Logger.Error("Failed to load dataset", "error", err)

	if c.deps.Snapshot == nil {
		return nil, false
	}

	raw, err = c.deps.Snapshot.Fetch(ctx)
	if err != nil {
		c.deps.Logger.Error("Failed to load dataset snapshot", "error", err)
		return nil, false
	}
	c.deps.Logger.Info("Using snapshotted dataset", "records", len(raw))
	return point.Load(raw), false
}

// Search resolves a query and moves the camera to the hit: a point match
// focuses its marker and opens its panel, a geocoded match focuses the
// location only. A NoMatchError is returned for the caller to surface.
func (c *Controller) Search(ctx context.Context, query string) (search.Match, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.ready {
		return search.Match{}, ErrNotReady
	}

	m, err := c.resolver.Resolve(ctx, query)
	if err != nil {
		return search.Match{}, err
	}

	if m.Point != nil {
		c.deps.Widget.ApplyView(c.deps.Planner.FocusOn(*m.Point, c.cfg.SearchZoom))
		if entry, ok := c.registry.LookupByPointID(m.Point.ID); ok {
			c.registry.Open(entry)
		}
		return m, nil
	}

	c.deps.Widget.ApplyView(c.deps.Planner.FocusLocation(m.Location, c.cfg.SearchZoom))
	return m, nil
}

// Locate frames the user's location at the configured radius. On any
// classified failure the view is left untouched and the error is returned
// for user messaging.
func (c *Controller) Locate(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.ready {
		return ErrNotReady
	}

	pos, err := c.deps.Locator.CurrentPosition(ctx)
	if err != nil {
		c.deps.Logger.Warn("Locate failed", "error", err)
		return err
	}

	c.deps.Widget.ApplyView(c.deps.Planner.RegionAroundRadius(pos, c.cfg.LocateRadiusMeters))
	return nil
}

// Reset closes any open panel and re-frames the whole dataset.
func (c *Controller) Reset() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.ready {
		return ErrNotReady
	}

	c.registry.CloseOpenPanel()
	c.deps.Widget.ApplyView(c.deps.Planner.BoundsForAll(c.points))
	return nil
}

// Toggle flips the panel of the marker bound to the given point id.
func (c *Controller) Toggle(pointID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.ready {
		return ErrNotReady
	}

	entry, ok := c.registry.LookupByPointID(pointID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownPoint, pointID)
	}
	c.registry.Toggle(entry)
	return nil
}

// Navigate returns the directions handoff URI for a point.
func (c *Controller) Navigate(pointID string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.ready {
		return "", ErrNotReady
	}

	entry, ok := c.registry.LookupByPointID(pointID)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownPoint, pointID)
	}
	return view.NavigationTarget(entry.Point, c.cfg.Navigation), nil
}

// StreetView switches the widget to ground-level imagery at a point.
func (c *Controller) StreetView(pointID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.ready {
		return ErrNotReady
	}

	entry, ok := c.registry.LookupByPointID(pointID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownPoint, pointID)
	}
	c.deps.Widget.StreetView(entry.Point.Position())
	return nil
}

// SetNavigation overrides the navigation handoff strategy.
func (c *Controller) SetNavigation(s view.NavigationStrategy) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cfg.Navigation = s
}

// Ready reports whether Start has completed.
func (c *Controller) Ready() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ready
}

// Points returns the loaded dataset.
func (c *Controller) Points() []point.Point {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.points
}

// Registry exposes the marker registry (CLI inspection).
func (c *Controller) Registry() *marker.Registry {
	return c.registry
}
