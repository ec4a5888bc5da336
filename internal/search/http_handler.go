package search

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"stereo/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// Search handles GET /search?q=...&limit=...
func (h *HTTPHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	candidates, err := h.service.Search(r.Context(), q, limit)
	if err != nil {
		if errors.Is(err, ErrQueryTooShort) {
			httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccess(w, r, candidates, map[string]any{
		"count": len(candidates),
	})
}

// Suggestions handles GET /search/suggestions?q=...
func (h *HTTPHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")

	suggestions, err := h.service.Suggest(r.Context(), q)
	if err != nil {
		if errors.Is(err, ErrQueryTooShort) {
			httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "q is required", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccess(w, r, suggestions, nil)
}

type importCandidateReq struct {
	MBID        string `json:"musicbrainz_id" validate:"omitempty,mbid"`
	Title       string `json:"title" validate:"required,min=1,max=500"`
	Artist      string `json:"artist" validate:"required,min=1,max=500"`
	ReleaseDate string `json:"release_date"`
	CoverURL    string `json:"cover_url" validate:"omitempty,url"`
}

// ImportCandidate handles POST /albums/import
func (h *HTTPHandler) ImportCandidate(w http.ResponseWriter, r *http.Request) {
	var req importCandidateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	if validationErrors := httpx.ValidateStruct(req); len(validationErrors) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return
	}

	var releaseDate time.Time
	if req.ReleaseDate != "" {
		releaseDate = ParseReleaseDate(req.ReleaseDate)
	}

	a, err := h.service.AddFromCandidate(r.Context(), Candidate{
		MBID:        req.MBID,
		Title:       req.Title,
		Artist:      req.Artist,
		ReleaseDate: releaseDate,
		CoverURL:    req.CoverURL,
	})
	if err != nil {
		if errors.Is(err, ErrInvalidCandidate) {
			httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccess(w, r, a, nil)
}

// ImportByMBID handles POST /albums/import/{mbid}
func (h *HTTPHandler) ImportByMBID(w http.ResponseWriter, r *http.Request) {
	mbid := r.PathValue("mbid")
	if mbid == "" {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid MusicBrainz id", nil)
		return
	}

	a, err := h.service.AddByMBID(r.Context(), mbid)
	if err != nil {
		if errors.Is(err, ErrExternalLookup) {
			httpx.JSONError(w, r, http.StatusBadRequest, "EXTERNAL_FETCH_FAILED", "Could not fetch release from MusicBrainz", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccess(w, r, a, nil)
}
