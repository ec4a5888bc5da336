package rating

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"stereo/internal/httpx"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) Upsert(ctx context.Context, userID, albumID string, value int) (Rating, error) {
	args := m.Called(ctx, userID, albumID, value)
	return args.Get(0).(Rating), args.Error(1)
}

func (m *mockRepo) ListByAlbum(ctx context.Context, albumID string) ([]Rating, error) {
	args := m.Called(ctx, albumID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Rating), args.Error(1)
}

func (m *mockRepo) GetUserStats(ctx context.Context, userID string) (float64, int, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(float64), args.Int(1), args.Error(2)
}

func rateRequest(userID, albumID, body string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/albums/"+albumID+"/rate", strings.NewReader(body))
	r.SetPathValue("id", albumID)
	if userID != "" {
		r = r.WithContext(httpx.ContextWithUser(r.Context(), userID))
	}
	return r
}

func TestHTTPHandler_Rate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := new(mockRepo)
		handler := NewHTTPHandler(NewService(repo))

		repo.On("Upsert", mock.Anything, "user-1", "album-1", 8).
			Return(Rating{ID: "r1", AlbumID: "album-1", UserID: "user-1", Rating: 8}, nil)

		w := httptest.NewRecorder()
		handler.Rate(w, rateRequest("user-1", "album-1", `{"rating": 8}`))

		assert.Equal(t, http.StatusOK, w.Code)
		repo.AssertExpectations(t)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		handler := NewHTTPHandler(NewService(new(mockRepo)))

		w := httptest.NewRecorder()
		handler.Rate(w, rateRequest("", "album-1", `{"rating": 8}`))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rating out of range", func(t *testing.T) {
		handler := NewHTTPHandler(NewService(new(mockRepo)))

		w := httptest.NewRecorder()
		handler.Rate(w, rateRequest("user-1", "album-1", `{"rating": 11}`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("album missing", func(t *testing.T) {
		repo := new(mockRepo)
		handler := NewHTTPHandler(NewService(repo))

		repo.On("Upsert", mock.Anything, "user-1", "nope", 5).
			Return(Rating{}, ErrNotFound)

		w := httptest.NewRecorder()
		handler.Rate(w, rateRequest("user-1", "nope", `{"rating": 5}`))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("invalid body", func(t *testing.T) {
		handler := NewHTTPHandler(NewService(new(mockRepo)))

		w := httptest.NewRecorder()
		handler.Rate(w, rateRequest("user-1", "album-1", `not json`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHTTPHandler_ListByAlbum(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := new(mockRepo)
		handler := NewHTTPHandler(NewService(repo))

		repo.On("ListByAlbum", mock.Anything, "album-1").
			Return([]Rating{{ID: "r1", Rating: 7}}, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/ratings/album-1", nil)
		r.SetPathValue("album_id", "album-1")
		handler.ListByAlbum(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("repository error", func(t *testing.T) {
		repo := new(mockRepo)
		handler := NewHTTPHandler(NewService(repo))

		repo.On("ListByAlbum", mock.Anything, "album-1").
			Return(nil, errors.New("db error"))

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/ratings/album-1", nil)
		r.SetPathValue("album_id", "album-1")
		handler.ListByAlbum(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestHTTPHandler_UserStats(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := new(mockRepo)
		handler := NewHTTPHandler(NewService(repo))

		repo.On("GetUserStats", mock.Anything, "user-1").Return(7.5, 12, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/users/user-1/stats", nil)
		r.SetPathValue("id", "user-1")
		handler.UserStats(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"average_rating":7.5`)
		assert.Contains(t, w.Body.String(), `"ratings_count":12`)
	})

	t.Run("repository error", func(t *testing.T) {
		repo := new(mockRepo)
		handler := NewHTTPHandler(NewService(repo))

		repo.On("GetUserStats", mock.Anything, "user-1").
			Return(0.0, 0, errors.New("db error"))

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/users/user-1/stats", nil)
		r.SetPathValue("id", "user-1")
		handler.UserStats(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestService_Rate_ValidatesRange(t *testing.T) {
	s := NewService(new(mockRepo))

	for _, v := range []int{0, -1, 11, 100} {
		_, err := s.Rate(context.Background(), "user-1", "album-1", v)
		assert.ErrorIs(t, err, ErrInvalidValue, "value %d", v)
	}
}
