package review

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound  = errors.New("review not found")
	ErrForbidden = errors.New("not the review owner")
)

type Review struct {
	ID        string     `json:"id"`
	AlbumID   string     `json:"album_id"`
	UserID    string     `json:"user_id"`
	Content   string     `json:"content"`
	Rating    *int       `json:"rating,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type Repository interface {
	Create(ctx context.Context, rv *Review) error
	GetByID(ctx context.Context, id string) (Review, error)
	ListByAlbum(ctx context.Context, albumID string) ([]Review, error)
	Update(ctx context.Context, rv *Review) error
	Delete(ctx context.Context, id string) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, rv *Review) error {
	return s.repo.Create(ctx, rv)
}

func (s *Service) ListByAlbum(ctx context.Context, albumID string) ([]Review, error) {
	return s.repo.ListByAlbum(ctx, albumID)
}

// Update replaces content and rating of an existing review. Only the owner
// may update.
func (s *Service) Update(ctx context.Context, userID, reviewID, content string, rating *int) (Review, error) {
	rv, err := s.repo.GetByID(ctx, reviewID)
	if err != nil {
		return Review{}, err
	}
	if rv.UserID != userID {
		return Review{}, ErrForbidden
	}

	rv.Content = content
	rv.Rating = rating
	if err := s.repo.Update(ctx, &rv); err != nil {
		return Review{}, err
	}
	return rv, nil
}

func (s *Service) Delete(ctx context.Context, userID, reviewID string) error {
	rv, err := s.repo.GetByID(ctx, reviewID)
	if err != nil {
		return err
	}
	if rv.UserID != userID {
		return ErrForbidden
	}
	return s.repo.Delete(ctx, reviewID)
}
