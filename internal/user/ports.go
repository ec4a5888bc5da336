package user

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	// SearchByText is a case-insensitive substring match on username or
	// email, with exact username prefix matches ranked first.
	SearchByText(ctx context.Context, q string, limit, offset int) ([]User, error)
}
