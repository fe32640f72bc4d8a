// Package file implements the primary dataset source: a JSON file of raw
// delivery-point records.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/dplocate/locator/internal/point"
)

// Source reads raw records from a JSON file.
type Source struct {
	path string
}

// New creates a file source for the given path.
func New(path string) *Source {
	return &Source{path: path}
}

// Fetch implements storage.Source. The file must contain a JSON array of
// dataset records.
func (s *Source) Fetch(ctx context.Context) ([]point.RawRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset %s: %w", s.path, err)
	}

	var records []point.RawRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing dataset %s: %w", s.path, err)
	}
	return records, nil
}
