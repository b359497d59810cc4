package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-admin/internal/config"
	"github.com/MKhiriev/go-user-admin/internal/logger"
)

// Storages groups the storage layer handed to the service layer.
type Storages struct {
	UserStorage UserStorage

	db *DB
}

// NewStorages selects the backend from cfg. With a database DSN it connects
// to SQLite ("sqlite://", "file:") or PostgreSQL and runs migrations;
// otherwise it uses the JSON users file.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	if cfg.DB.DSN == "" {
		return &Storages{
			UserStorage: NewFileUserStorage(cfg.Files.UsersFile, logger),
		}, nil
	}

	var (
		db  *DB
		err error
	)
	if IsSQLiteDSN(cfg.DB.DSN) {
		db, err = NewConnectSQLite(ctx, cfg.DB.DSN, logger)
	} else {
		db, err = NewConnectPostgres(ctx, cfg.DB.DSN, logger)
	}
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		UserStorage: NewUserRepository(db, logger),
		db:          db,
	}, nil
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
