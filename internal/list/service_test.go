package list

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) Create(ctx context.Context, l *List) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *mockRepo) GetByID(ctx context.Context, id string) (List, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(List), args.Error(1)
}

func (m *mockRepo) ListAll(ctx context.Context, userID string, publicOnly bool) ([]List, error) {
	args := m.Called(ctx, userID, publicOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]List), args.Error(1)
}

func (m *mockRepo) Update(ctx context.Context, l *List) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *mockRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockRepo) GetItems(ctx context.Context, listID string, ranked bool) ([]Item, error) {
	args := m.Called(ctx, listID, ranked)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Item), args.Error(1)
}

func (m *mockRepo) AddItem(ctx context.Context, item *Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *mockRepo) UpdateItem(ctx context.Context, listID, itemID string, position *int, notes *string) (Item, error) {
	args := m.Called(ctx, listID, itemID, position, notes)
	return args.Get(0).(Item), args.Error(1)
}

func (m *mockRepo) RemoveItem(ctx context.Context, listID, itemID string) error {
	args := m.Called(ctx, listID, itemID)
	return args.Error(0)
}

func TestService_OwnershipEnforced(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRepo)
	s := NewService(repo)

	owned := List{ID: "l1", UserID: "owner", Title: "Favorites"}
	repo.On("GetByID", ctx, "l1").Return(owned, nil)

	t.Run("update by stranger", func(t *testing.T) {
		err := s.Update(ctx, "stranger", &List{ID: "l1", Title: "Hijacked"})
		assert.ErrorIs(t, err, ErrForbidden)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("delete by stranger", func(t *testing.T) {
		err := s.Delete(ctx, "stranger", "l1")
		assert.ErrorIs(t, err, ErrForbidden)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("add item by stranger", func(t *testing.T) {
		err := s.AddItem(ctx, "stranger", &Item{ListID: "l1", AlbumID: "a1"})
		assert.ErrorIs(t, err, ErrForbidden)
		repo.AssertNotCalled(t, "AddItem", mock.Anything, mock.Anything)
	})

	t.Run("remove item by stranger", func(t *testing.T) {
		err := s.RemoveItem(ctx, "stranger", "l1", "i1")
		assert.ErrorIs(t, err, ErrForbidden)
		repo.AssertNotCalled(t, "RemoveItem", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("owner passes through", func(t *testing.T) {
		repo.On("Delete", ctx, "l1").Return(nil)
		assert.NoError(t, s.Delete(ctx, "owner", "l1"))
	})
}

func TestService_GetDetail(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRepo)
	s := NewService(repo)

	ranked := List{ID: "l1", UserID: "owner", Title: "Top Albums", IsRanked: true}
	pos1, pos2 := 1, 2
	items := []Item{
		{ID: "i1", ListID: "l1", Position: &pos1},
		{ID: "i2", ListID: "l1", Position: &pos2},
	}

	repo.On("GetByID", ctx, "l1").Return(ranked, nil)
	repo.On("GetItems", ctx, "l1", true).Return(items, nil)

	detail, err := s.GetDetail(ctx, "l1")
	require.NoError(t, err)
	assert.Equal(t, 2, detail.ItemCount)
	assert.Len(t, detail.Items, 2)
}

func TestService_GetDetail_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRepo)
	s := NewService(repo)

	repo.On("GetByID", ctx, "missing").Return(List{}, ErrNotFound)

	_, err := s.GetDetail(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
