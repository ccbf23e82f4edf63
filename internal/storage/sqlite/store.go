// Package sqlite provides a SQLite-backed game document store.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/thurn/spelldawn/internal/errors"
	"github.com/thurn/spelldawn/internal/game"
	"github.com/thurn/spelldawn/internal/platform/storage/sqlitemigrate"
	"github.com/thurn/spelldawn/internal/storage/sqlite/migrations"
)

// Store persists game documents in SQLite as JSON.
type Store struct {
	sqlDB *sql.DB

	// now is injected for tests.
	now func() time.Time
}

// Open opens a SQLite game store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New(errors.CodeStorage, "storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(errors.CodeStorage, "open sqlite db", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, errors.Wrap(errors.CodeStorage, "ping sqlite db", err)
	}
	if err := sqlitemigrate.Apply(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, errors.Wrap(errors.CodeStorage, "run migrations", err)
	}
	return &Store{sqlDB: sqlDB, now: time.Now}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Put writes the full game document, replacing any existing document with
// the same id.
func (s *Store) Put(ctx context.Context, g *game.Game) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return errors.New(errors.CodeStorage, "storage is not configured")
	}
	if g == nil || strings.TrimSpace(g.ID) == "" {
		return errors.New(errors.CodeStorage, "game id is required")
	}
	document, err := json.Marshal(g)
	if err != nil {
		return errors.Wrap(errors.CodeStorage, "marshal game document", err)
	}
	_, err = s.sqlDB.ExecContext(ctx, `
INSERT INTO games (id, document, updated_at)
VALUES (?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
    document = excluded.document,
    updated_at = excluded.updated_at
`, g.ID, string(document), s.now().UTC().UnixMilli())
	if err != nil {
		return errors.Wrap(errors.CodeStorage, "write game document", err)
	}
	return nil
}

// Get loads the game document for an id. The returned game has no registry
// attached and an unpopulated delegate cache; callers restore both before
// dispatching.
func (s *Store) Get(ctx context.Context, id string) (*game.Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, errors.New(errors.CodeStorage, "storage is not configured")
	}
	var document string
	row := s.sqlDB.QueryRowContext(ctx, "SELECT document FROM games WHERE id = ?", id)
	if err := row.Scan(&document); err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.WithMetadata(errors.CodeGameNotFound, "game not found", map[string]string{"id": id})
		}
		return nil, errors.Wrap(errors.CodeStorage, "read game document", err)
	}
	var g game.Game
	if err := json.Unmarshal([]byte(document), &g); err != nil {
		return nil, errors.Wrap(errors.CodeStorage, "unmarshal game document", err)
	}
	return &g, nil
}
