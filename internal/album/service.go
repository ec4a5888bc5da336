package album

import (
	"context"
)

// Service provides album-related business logic.
type Service struct {
	repo Repository
}

// NewService creates a new album service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetByID(ctx context.Context, id string) (Album, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, a *Album) error {
	return s.repo.Create(ctx, a)
}

func (s *Service) AverageRating(ctx context.Context, id string) (float64, int, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return 0, 0, err
	}
	return s.repo.AverageRating(ctx, id)
}
