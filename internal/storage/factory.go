package storage

import (
	"fmt"
	"log/slog"

	"github.com/dplocate/locator/internal/config"
	"github.com/dplocate/locator/internal/database"
	"github.com/dplocate/locator/internal/storage/snapshot"
)

// NewSnapshot creates the snapshot store selected by configuration. Type
// "none" returns nil: the session runs without offline fallback.
func NewSnapshot(cfg config.StorageConfig, log *slog.Logger) (Snapshot, error) {
	switch cfg.Type {
	case "sqlite":
		return snapshot.NewSqlite(cfg.Path, log)
	case "postgres":
		return snapshot.NewPostgres(database.PostgresSettings{
			Host:     cfg.Postgres.Host,
			Port:     cfg.Postgres.Port,
			Username: cfg.Postgres.Username,
			Password: cfg.Postgres.Password,
			Database: cfg.Postgres.Database,
		}, log)
	case "none", "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Type)
	}
}
