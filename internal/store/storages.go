package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-film-keeper/internal/config"
	"github.com/MKhiriev/go-film-keeper/internal/logger"
)

// ClientStorages groups the client storage repositories.
type ClientStorages struct {
	// FilmRepository is the SQLite-backed film cache.
	FilmRepository FilmRepository

	db *DB
}

// NewClientStorages opens the database at cfg.DB.DSN, applies migrations and
// wires the repositories.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		FilmRepository: NewFilmRepository(db, logger),
		db:             db,
	}, nil
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
