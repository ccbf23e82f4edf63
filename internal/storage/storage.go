// Package storage defines the persistence interface for game documents.
//
// Games are stored as complete documents keyed by opaque id. The registry
// and delegate cache are derived state and are not persisted; callers
// re-attach the registry and repopulate the cache after loading.
package storage

import (
	"context"

	"github.com/thurn/spelldawn/internal/game"
)

// GameStore persists complete game documents.
type GameStore interface {
	// Put writes the full game document, replacing any existing document
	// with the same id.
	Put(ctx context.Context, g *game.Game) error
	// Get loads the game document for an id. Missing games return a
	// GAME_NOT_FOUND coded error.
	Get(ctx context.Context, id string) (*game.Game, error)
}
