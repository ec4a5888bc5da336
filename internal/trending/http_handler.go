package trending

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"stereo/internal/httpx"
)

type HTTPHandler struct {
	service *Service
	secret  string
}

func NewHTTPHandler(service *Service, secret string) *HTTPHandler {
	return &HTTPHandler{service: service, secret: secret}
}

type createEntryReq struct {
	AlbumID   string `json:"album_id" validate:"required,uuid"`
	Rank      int    `json:"rank" validate:"required,min=1"`
	WeekStart string `json:"week_start" validate:"required,datetime=2006-01-02"`
}

// Top handles GET /trending
func (h *HTTPHandler) Top(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.Top(r.Context())
	if err != nil {
		if errors.Is(err, ErrEmpty) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "No trending albums found", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccess(w, r, entries, map[string]any{
		"count": len(entries),
	})
}

// Create handles POST /trending
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createEntryReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	if validationErrors := httpx.ValidateStruct(req); len(validationErrors) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return
	}

	weekStart, _ := time.Parse("2006-01-02", req.WeekStart)
	e := Entry{
		AlbumID:   req.AlbumID,
		Rank:      req.Rank,
		WeekStart: weekStart,
	}
	if err := h.service.Add(r.Context(), &e); err != nil {
		if errors.Is(err, ErrAlbumNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Album not found", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccessCreated(w, r, e)
}

// Refresh handles POST /internal/jobs/trending
func (h *HTTPHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	secret := r.Header.Get("X-Internal-Secret")
	if h.secret != "" && secret != h.secret {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "invalid internal secret", nil)
		return
	}

	count, err := h.service.Refresh(r.Context(), time.Now())
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccess(w, r, map[string]any{
		"entries": count,
	}, nil)
}
