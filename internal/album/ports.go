package album

import (
	"context"
)

// Repository defines the contract for album data storage.
type Repository interface {
	GetByID(ctx context.Context, id string) (Album, error)
	// SearchByText is a case-insensitive substring match on title or artist.
	SearchByText(ctx context.Context, q string, limit int) ([]Album, error)
	FindByIdentity(ctx context.Context, title, artist string) (Album, error)
	// InsertIfAbsent stores the album unless one with the same
	// case-insensitive (title, artist) identity already exists, in which case
	// the stored row is loaded into a. Returns true when a new row was
	// created. The existence check and insert are a single atomic statement.
	InsertIfAbsent(ctx context.Context, a *Album) (bool, error)
	Create(ctx context.Context, a *Album) error
	AverageRating(ctx context.Context, id string) (float64, int, error)
}
