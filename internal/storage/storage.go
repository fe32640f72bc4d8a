// Package storage defines where the point dataset comes from: the primary
// JSON source fetched once per session, and the optional snapshot store that
// keeps the last good dataset for offline starts.
package storage

import (
	"context"

	"github.com/dplocate/locator/internal/point"
)

// Source supplies raw dataset records. Fetch is called once at session
// start; a failed fetch degrades to an empty dataset upstream.
type Source interface {
	Fetch(ctx context.Context) ([]point.RawRecord, error)
}

// Snapshot persists a validated dataset so a later session can start
// without the primary source. A Snapshot is also a Source.
type Snapshot interface {
	Source
	Save(ctx context.Context, points []point.Point) error
	Close() error
}
