// Package search resolves free-text queries against the loaded delivery
// points, with an optional fallback chain for external geocoding.
package search

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/paulmach/orb"

	"github.com/dplocate/locator/internal/point"
)

// NoMatchReason explains why a resolver produced no result.
type NoMatchReason string

const (
	// ReasonEmptyQuery means the normalized query was empty; no scan was done.
	ReasonEmptyQuery NoMatchReason = "empty query"
	// ReasonNoPointMatch means the query matched no point id or name.
	ReasonNoPointMatch NoMatchReason = "no point match"
)

// NoMatchError is the explicit "nothing found" result. It is distinct from a
// resolver failure: callers may fall back to a secondary resolution strategy
// when they see it.
type NoMatchError struct {
	Reason NoMatchReason
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("no match: %s", e.Reason)
}

// IsNoMatch reports whether err is a NoMatchError.
func IsNoMatch(err error) bool {
	var nm *NoMatchError
	return errors.As(err, &nm)
}

// Match is a successful resolution. Point is set when a delivery point
// matched; a geocoding fallback sets only Location and Label.
type Match struct {
	Point    *point.Point
	Location orb.Point
	Label    string
}

// Resolver resolves a query to a map location.
type Resolver interface {
	Resolve(ctx context.Context, query string) (Match, error)
}

// ResolvePoints finds the first point whose id or name contains the
// case-folded query as a substring. Scan order is dataset order, so ties go
// to the earlier record. An empty or whitespace-only query returns
// ReasonEmptyQuery without scanning.
func ResolvePoints(points []point.Point, rawQuery string) (point.Point, error) {
	q := strings.ToLower(strings.TrimSpace(rawQuery))
	if q == "" {
		return point.Point{}, &NoMatchError{Reason: ReasonEmptyQuery}
	}
	for _, p := range points {
		if strings.Contains(strings.ToLower(p.ID), q) ||
			strings.Contains(strings.ToLower(p.Name), q) {
			return p, nil
		}
	}
	return point.Point{}, &NoMatchError{Reason: ReasonNoPointMatch}
}

// PointResolver adapts ResolvePoints to the Resolver interface.
type PointResolver struct {
	points []point.Point
}

// NewPointResolver creates a resolver over the given point list. The list is
// not copied; it is owned by the session and never mutated here.
func NewPointResolver(points []point.Point) *PointResolver {
	return &PointResolver{points: points}
}

// Resolve implements Resolver.
func (r *PointResolver) Resolve(_ context.Context, query string) (Match, error) {
	p, err := ResolvePoints(r.points, query)
	if err != nil {
		return Match{}, err
	}
	return Match{Point: &p, Location: p.Position(), Label: p.Title()}, nil
}

// Chain tries each resolver in order. A NoMatchError moves on to the next
// resolver; any other error is returned immediately. An exhausted chain
// returns the last NoMatchError seen.
type Chain struct {
	resolvers []Resolver
}

// NewChain composes resolvers into a fallback chain.
func NewChain(resolvers ...Resolver) *Chain {
	return &Chain{resolvers: resolvers}
}

// Resolve implements Resolver. An empty query is terminal: no fallback
// resolver gets to see it.
func (c *Chain) Resolve(ctx context.Context, query string) (Match, error) {
	var last error = &NoMatchError{Reason: ReasonNoPointMatch}
	for _, r := range c.resolvers {
		m, err := r.Resolve(ctx, query)
		if err == nil {
			return m, nil
		}
		if !IsNoMatch(err) {
			return Match{}, err
		}
		var nm *NoMatchError
		if errors.As(err, &nm) && nm.Reason == ReasonEmptyQuery {
			return Match{}, err
		}
		last = err
	}
	return Match{}, last
}
