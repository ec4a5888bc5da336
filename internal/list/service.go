package list

import (
	"context"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, l *List) error {
	return s.repo.Create(ctx, l)
}

func (s *Service) ListAll(ctx context.Context, userID string, publicOnly bool) ([]List, error) {
	return s.repo.ListAll(ctx, userID, publicOnly)
}

// GetDetail returns a list with its items in display order.
func (s *Service) GetDetail(ctx context.Context, id string) (Detail, error) {
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Detail{}, err
	}
	items, err := s.repo.GetItems(ctx, id, l.IsRanked)
	if err != nil {
		return Detail{}, err
	}
	l.ItemCount = len(items)
	return Detail{List: l, Items: items}, nil
}

func (s *Service) Update(ctx context.Context, userID string, l *List) error {
	existing, err := s.repo.GetByID(ctx, l.ID)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return ErrForbidden
	}
	return s.repo.Update(ctx, l)
}

func (s *Service) Delete(ctx context.Context, userID, listID string) error {
	existing, err := s.repo.GetByID(ctx, listID)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return ErrForbidden
	}
	return s.repo.Delete(ctx, listID)
}

func (s *Service) AddItem(ctx context.Context, userID string, item *Item) error {
	l, err := s.repo.GetByID(ctx, item.ListID)
	if err != nil {
		return err
	}
	if l.UserID != userID {
		return ErrForbidden
	}
	return s.repo.AddItem(ctx, item)
}

func (s *Service) UpdateItem(ctx context.Context, userID, listID, itemID string, position *int, notes *string) (Item, error) {
	l, err := s.repo.GetByID(ctx, listID)
	if err != nil {
		return Item{}, err
	}
	if l.UserID != userID {
		return Item{}, ErrForbidden
	}
	return s.repo.UpdateItem(ctx, listID, itemID, position, notes)
}

func (s *Service) RemoveItem(ctx context.Context, userID, listID, itemID string) error {
	l, err := s.repo.GetByID(ctx, listID)
	if err != nil {
		return err
	}
	if l.UserID != userID {
		return ErrForbidden
	}
	return s.repo.RemoveItem(ctx, listID, itemID)
}
