package trending

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) Top(ctx context.Context, limit int) ([]Entry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Entry), args.Error(1)
}

func (m *mockRepo) Insert(ctx context.Context, e *Entry) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *mockRepo) Rebuild(ctx context.Context, weekStart time.Time, size int) (int, error) {
	args := m.Called(ctx, weekStart, size)
	return args.Int(0), args.Error(1)
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			"mid-week",
			time.Date(2025, 8, 28, 15, 30, 0, 0, time.UTC), // Thursday
			time.Date(2025, 8, 25, 0, 0, 0, 0, time.UTC),   // Monday
		},
		{
			"monday stays",
			time.Date(2025, 8, 25, 23, 59, 0, 0, time.UTC),
			time.Date(2025, 8, 25, 0, 0, 0, 0, time.UTC),
		},
		{
			"sunday rolls back six days",
			time.Date(2025, 8, 31, 1, 0, 0, 0, time.UTC),
			time.Date(2025, 8, 25, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WeekStart(tt.in))
		})
	}
}

func TestService_Top_EmptySnapshot(t *testing.T) {
	repo := new(mockRepo)
	s := NewService(repo)

	repo.On("Top", mock.Anything, TopLimit).Return([]Entry{}, nil)

	_, err := s.Top(context.Background())
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestService_Refresh_UsesWeekStart(t *testing.T) {
	repo := new(mockRepo)
	s := NewService(repo)

	now := time.Date(2025, 8, 28, 12, 0, 0, 0, time.UTC)
	repo.On("Rebuild", mock.Anything, time.Date(2025, 8, 25, 0, 0, 0, 0, time.UTC), SnapshotSize).
		Return(25, nil)

	count, err := s.Refresh(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 25, count)
	repo.AssertExpectations(t)
}
