package trending

import (
	"context"
	"time"
)

const (
	// TopLimit caps how many entries a trending read returns.
	TopLimit = 25
	// SnapshotSize is how many albums a rebuilt snapshot holds.
	SnapshotSize = 25
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Top(ctx context.Context) ([]Entry, error) {
	entries, err := s.repo.Top(ctx, TopLimit)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrEmpty
	}
	return entries, nil
}

func (s *Service) Add(ctx context.Context, e *Entry) error {
	return s.repo.Insert(ctx, e)
}

// Refresh rebuilds the snapshot for the week containing now. Weeks start
// on Monday.
func (s *Service) Refresh(ctx context.Context, now time.Time) (int, error) {
	return s.repo.Rebuild(ctx, WeekStart(now), SnapshotSize)
}

// WeekStart truncates t to the Monday of its week, at midnight UTC.
func WeekStart(t time.Time) time.Time {
	t = t.UTC()
	offset := (int(t.Weekday()) + 6) % 7
	day := t.AddDate(0, 0, -offset)
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
}
