package review

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

type createReviewReq struct {
	AlbumID string `json:"album_id" validate:"required,uuid"`
	Content string `json:"content" validate:"required,min=1,max=10000"`
	Rating  *int   `json:"rating" validate:"omitempty,min=1,max=10"`
}

type updateReviewReq struct {
	Content string `json:"content" validate:"required,min=1,max=10000"`
	Rating  *int   `json:"rating" validate:"omitempty,min=1,max=10"`
}

// Create handles POST /reviews
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	var req createReviewReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	if validationErrors := httpx.ValidateStruct(req); len(validationErrors) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return
	}

	rv := Review{
		AlbumID: req.AlbumID,
		UserID:  userID,
		Content: req.Content,
		Rating:  req.Rating,
	}
	if err := h.service.Create(r.Context(), &rv); err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccessCreated(w, r, rv)
}

// ListByAlbum handles GET /reviews/{album_id}
func (h *HTTPHandler) ListByAlbum(w http.ResponseWriter, r *http.Request) {
	albumID := r.PathValue("album_id")

	reviews, err := h.service.ListByAlbum(r.Context(), albumID)
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccess(w, r, reviews, map[string]any{
		"count": len(reviews),
	})
}

// Update handles PUT /reviews/{id}
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	var req updateReviewReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	if validationErrors := httpx.ValidateStruct(req); len(validationErrors) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return
	}

	rv, err := h.service.Update(r.Context(), userID, r.PathValue("id"), req.Content, req.Rating)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	httpx.JSONSuccess(w, r, rv, nil)
}

// Delete handles DELETE /reviews/{id}
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	if err := h.service.Delete(r.Context(), userID, r.PathValue("id")); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	httpx.JSONSuccessNoContent(w)
}

func (h *HTTPHandler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Review not found", nil)
	case errors.Is(err, ErrForbidden):
		httpx.JSONError(w, r, http.StatusForbidden, "FORBIDDEN", "You can only modify your own reviews", nil)
	default:
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
	}
}
