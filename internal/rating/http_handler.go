package rating

import (
	"encoding/json"
	"errors"
	"net/http"

	"stereo/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

type rateReq struct {
	Rating int `json:"rating" validate:"required,min=1,max=10"`
}

// Rate handles POST /albums/{id}/rate
func (h *HTTPHandler) Rate(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	albumID := r.PathValue("id")
	if albumID == "" {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid album id", nil)
		return
	}

	var req rateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	if validationErrors := httpx.ValidateStruct(req); len(validationErrors) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return
	}

	rt, err := h.service.Rate(r.Context(), userID, albumID, req.Rating)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidValue):
			httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		case errors.Is(err, ErrNotFound):
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Album not found", nil)
		default:
			httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}

	httpx.JSONSuccess(w, r, rt, nil)
}

// ListByAlbum handles GET /ratings/{album_id}
func (h *HTTPHandler) ListByAlbum(w http.ResponseWriter, r *http.Request) {
	albumID := r.PathValue("album_id")
	if albumID == "" {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid album id", nil)
		return
	}

	ratings, err := h.service.ListByAlbum(r.Context(), albumID)
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccess(w, r, ratings, map[string]any{
		"count": len(ratings),
	})
}

// UserStats handles GET /users/{id}/stats
func (h *HTTPHandler) UserStats(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")
	if userID == "" {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid user id", nil)
		return
	}

	average, count, err := h.service.GetUserStats(r.Context(), userID)
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccess(w, r, map[string]any{
		"average_rating": average,
		"ratings_count":  count,
	}, nil)
}
