// Package snapshot persists the last successfully loaded dataset in a
// relational store, so a session can come up with markers when the primary
// JSON source is unreachable. Coordinates are kept as WKB geometry and the
// normalized record is kept alongside as JSON for diagnostics.
package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	geom "github.com/peterstace/simplefeatures/geom"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/dplocate/locator/internal/database"
	"github.com/dplocate/locator/internal/geo"
	"github.com/dplocate/locator/internal/point"
)

// Record is one snapshotted delivery point.
type Record struct {
	ID       uint   `gorm:"primarykey"`
	Seq      int    `gorm:"index"` // dataset order, Fetch replays it
	DPNumber string `gorm:"size:127"`
	DPName   string `gorm:"size:255"`
	Location geom.Point
	Raw      datatypes.JSON
}

// TableName names the snapshot table.
func (Record) TableName() string {
	return "delivery_points"
}

// Store is a gorm-backed snapshot of the dataset.
type Store struct {
	db  *gorm.DB
	log *slog.Logger
}

// New creates a store over an open gorm connection and migrates the schema.
func New(db *gorm.DB, log *slog.Logger) (*Store, error) {
	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, fmt.Errorf("migrating snapshot schema: %w", err)
	}
	return &Store{db: db, log: log}, nil
}

// NewSqlite opens a SQLite-backed store. An empty path uses an in-memory
// database.
func NewSqlite(path string, log *slog.Logger) (*Store, error) {
	db, err := database.GetSqliteDB(path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite snapshot: %w", err)
	}
	return New(db, log)
}

// NewPostgres opens a Postgres-backed store.
func NewPostgres(settings database.PostgresSettings, log *slog.Logger) (*Store, error) {
	db, err := database.GetPostgresDB(settings)
	if err != nil {
		return nil, fmt.Errorf("opening postgres snapshot: %w", err)
	}
	return New(db, log)
}

// Save replaces the snapshot with the given points, preserving their order.
func (s *Store) Save(ctx context.Context, points []point.Point) error {
	records := make([]Record, 0, len(points))
	for i, p := range points {
		raw, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("encoding point %q: %w", p.ID, err)
		}
		records = append(records, Record{
			Seq:      i,
			DPNumber: p.ID,
			DPName:   p.Name,
			Location: geo.GeomPoint(p.Position()),
			Raw:      raw,
		})
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&Record{}).Error; err != nil {
			return err
		}
		if len(records) == 0 {
			return nil
		}
		return tx.Create(&records).Error
	})
	if err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}

	s.log.Debug("Snapshot saved", "points", len(records))
	return nil
}

// Fetch implements storage.Source, replaying the snapshot as raw records in
// their original dataset order.
func (s *Store) Fetch(ctx context.Context) ([]point.RawRecord, error) {
	var records []Record
	if err := s.db.WithContext(ctx).Order("seq").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("loading snapshot: %w", err)
	}

	raw := make([]point.RawRecord, 0, len(records))
	for _, r := range records {
		pos := geo.OrbPoint(r.Location)
		raw = append(raw, point.RawRecord{
			DPNumber:  r.DPNumber,
			DPName:    r.DPName,
			Latitude:  pos[1],
			Longitude: pos[0],
		})
	}
	return raw, nil
}

// Close releases the underlying connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
