package user

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

func (m *mockRepo) Create(ctx context.Context, u *User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockRepo) GetByID(ctx context.Context, id string) (User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(User), args.Error(1)
}

func (m *mockRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(User), args.Error(1)
}

func (m *mockRepo) GetByUsername(ctx context.Context, username string) (User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(User), args.Error(1)
}

func (m *mockRepo) SearchByText(ctx context.Context, q string, limit, offset int) ([]User, error) {
	args := m.Called(ctx, q, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]User), args.Error(1)
}

func TestService_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects short queries", func(t *testing.T) {
		repo := new(mockRepo)
		s := NewService(repo)

		_, err := s.Search(ctx, " a ", 10, 0)
		assert.ErrorIs(t, err, ErrQueryTooShort)
		repo.AssertNotCalled(t, "SearchByText", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("clamps limit and defaults offset", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("SearchByText", mock.Anything, "frank", 50, 0).
			Return([]User{{Username: "frankfan"}}, nil)
		s := NewService(repo)

		users, err := s.Search(ctx, "frank", 500, -3)
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, "frankfan", users[0].Username)
	})
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := new(mockRepo)
		s := NewService(repo)

		repo.On("GetByUsername", ctx, "newuser").Return(User{}, ErrNotFound)
		repo.On("GetByEmail", ctx, "new@example.com").Return(User{}, ErrNotFound)
		repo.On("Create", ctx, mock.MatchedBy(func(u *User) bool {
			return u.Username == "newuser" && u.Email == "new@example.com"
		})).Return(nil)

		got, err := s.Register(ctx, "newuser", "new@example.com", "hashed")
		require.NoError(t, err)
		assert.Equal(t, "newuser", got.Username)
	})

	t.Run("username taken", func(t *testing.T) {
		repo := new(mockRepo)
		s := NewService(repo)

		repo.On("GetByUsername", ctx, "taken").Return(User{ID: "u1", Username: "taken"}, nil)

		_, err := s.Register(ctx, "taken", "new@example.com", "hashed")
		assert.ErrorIs(t, err, ErrUsernameTaken)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("email taken", func(t *testing.T) {
		repo := new(mockRepo)
		s := NewService(repo)

		repo.On("GetByUsername", ctx, "newuser").Return(User{}, ErrNotFound)
		repo.On("GetByEmail", ctx, "taken@example.com").Return(User{ID: "u1"}, nil)

		_, err := s.Register(ctx, "newuser", "taken@example.com", "hashed")
		assert.ErrorIs(t, err, ErrEmailTaken)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}
