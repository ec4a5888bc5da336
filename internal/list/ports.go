package list

import (
	"context"
)

// Repository defines the contract for list storage.
type Repository interface {
	Create(ctx context.Context, l *List) error
	GetByID(ctx context.Context, id string) (List, error)
	ListAll(ctx context.Context, userID string, publicOnly bool) ([]List, error)
	Update(ctx context.Context, l *List) error
	Delete(ctx context.Context, id string) error

	// GetItems returns items in display order: by position (nulls last,
	// then added_at) for ranked lists, by added_at descending otherwise.
	GetItems(ctx context.Context, listID string, ranked bool) ([]Item, error)
	// AddItem inserts an item; for ranked lists with no explicit position
	// the next free position (max+1) is assigned. Returns ErrDuplicateItem
	// when the album is already in the list, ErrAlbumNotFound when the
	// album id does not exist.
	AddItem(ctx context.Context, item *Item) error
	UpdateItem(ctx context.Context, listID, itemID string, position *int, notes *string) (Item, error)
	RemoveItem(ctx context.Context, listID, itemID string) error
}
