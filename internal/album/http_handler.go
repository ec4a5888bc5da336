package album

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"stereo/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

type createAlbumReq struct {
	Title          string  `json:"title" validate:"required,min=1,max=500"`
	Artist         string  `json:"artist" validate:"required,min=1,max=500"`
	ReleaseDate    string  `json:"release_date" validate:"required"`
	CoverURL       string  `json:"cover_url" validate:"required,url"`
	Description    string  `json:"description" validate:"max=5000"`
	RuntimeMinutes *int    `json:"runtime_minutes" validate:"omitempty,min=1"`
	MBID           *string `json:"musicbrainz_id" validate:"omitempty,mbid"`
}

// GetByID handles GET /albums/{id}
func (h *HTTPHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid album id", nil)
		return
	}

	a, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Album not found", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, r, a, nil)
}

// Create handles POST /albums (manual entry)
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createAlbumReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	if validationErrors := httpx.ValidateStruct(req); len(validationErrors) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return
	}

	releaseDate, err := time.Parse("2006-01-02", req.ReleaseDate)
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "release_date must be YYYY-MM-DD", nil)
		return
	}

	a := Album{
		Title:          req.Title,
		Artist:         req.Artist,
		ReleaseDate:    releaseDate,
		CoverURL:       req.CoverURL,
		Description:    req.Description,
		RuntimeMinutes: req.RuntimeMinutes,
		MBID:           req.MBID,
	}
	if err := h.service.Create(r.Context(), &a); err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			httpx.JSONError(w, r, http.StatusConflict, "ALREADY_EXISTS", "Album already exists", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccessCreated(w, r, a)
}

// AverageRating handles GET /albums/{id}/average-rating
func (h *HTTPHandler) AverageRating(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	average, count, err := h.service.AverageRating(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Album not found", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccess(w, r, map[string]any{
		"average_rating": average,
		"ratings_count":  count,
	}, nil)
}
