package rating

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidValue = errors.New("rating must be between 1 and 10")
)

// Rating is one user's 1-10 score for one album. A user has at most one
// rating per album; re-rating updates it in place.
type Rating struct {
	ID        string     `json:"id"`
	AlbumID   string     `json:"album_id"`
	UserID    string     `json:"user_id"`
	Rating    int        `json:"rating"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type Repository interface {
	Upsert(ctx context.Context, userID, albumID string, value int) (Rating, error)
	ListByAlbum(ctx context.Context, albumID string) ([]Rating, error)
	GetUserStats(ctx context.Context, userID string) (average float64, count int, err error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Rate(ctx context.Context, userID, albumID string, value int) (Rating, error) {
	if value < 1 || value > 10 {
		return Rating{}, ErrInvalidValue
	}
	return s.repo.Upsert(ctx, userID, albumID, value)
}

func (s *Service) ListByAlbum(ctx context.Context, albumID string) ([]Rating, error) {
	return s.repo.ListByAlbum(ctx, albumID)
}

func (s *Service) GetUserStats(ctx context.Context, userID string) (float64, int, error) {
	return s.repo.GetUserStats(ctx, userID)
}
