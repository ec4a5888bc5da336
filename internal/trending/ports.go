package trending

import (
	"context"
	"time"
)

// Repository defines the contract for trending snapshot storage.
type Repository interface {
	// Top returns up to limit entries ordered by rank ascending.
	Top(ctx context.Context, limit int) ([]Entry, error)
	// Insert adds a single entry. Returns ErrAlbumNotFound when the album
	// id does not exist.
	Insert(ctx context.Context, e *Entry) error
	// Rebuild replaces the snapshot for weekStart with the top albums by
	// rating count over the trailing window, ranked densely from 1.
	Rebuild(ctx context.Context, weekStart time.Time, size int) (int, error)
}
