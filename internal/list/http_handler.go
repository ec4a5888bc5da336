package list

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

type createListReq struct {
	Title       string `json:"title" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"max=2000"`
	IsPublic    *bool  `json:"is_public"`
	IsRanked    bool   `json:"is_ranked"`
}

type updateListReq struct {
	Title       string `json:"title" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"max=2000"`
	IsPublic    bool   `json:"is_public"`
	IsRanked    bool   `json:"is_ranked"`
}

type addItemReq struct {
	AlbumID  string `json:"album_id" validate:"required,uuid"`
	Position *int   `json:"position" validate:"omitempty,min=1"`
	Notes    string `json:"notes" validate:"max=1000"`
}

type updateItemReq struct {
	Position *int    `json:"position" validate:"omitempty,min=1"`
	Notes    *string `json:"notes" validate:"omitempty,max=1000"`
}

// Create handles POST /lists
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	var req createListReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	if validationErrors := httpx.ValidateStruct(req); len(validationErrors) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return
	}

	l := List{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		IsPublic:    true,
		IsRanked:    req.IsRanked,
	}
	if req.IsPublic != nil {
		l.IsPublic = *req.IsPublic
	}
	if err := h.service.Create(r.Context(), &l); err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccessCreated(w, r, l)
}

// ListAll handles GET /lists. Without a user_id filter it returns public
// lists only; with one it returns that user's lists, restricted to public
// ones unless the requester is the owner.
func (h *HTTPHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	publicOnly := userID == "" || userID != httpx.UserIDFrom(r)

	lists, err := h.service.ListAll(r.Context(), userID, publicOnly)
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccess(w, r, lists, map[string]any{
		"count": len(lists),
	})
}

// GetByID handles GET /lists/{id}
func (h *HTTPHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	detail, err := h.service.GetDetail(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	if !detail.IsPublic && detail.List.UserID != httpx.UserIDFrom(r) {
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "List not found", nil)
		return
	}

	httpx.JSONSuccess(w, r, detail, nil)
}

// Update handles PUT /lists/{id}
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	var req updateListReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	if validationErrors := httpx.ValidateStruct(req); len(validationErrors) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return
	}

	l := List{
		ID:          r.PathValue("id"),
		Title:       req.Title,
		Description: req.Description,
		IsPublic:    req.IsPublic,
		IsRanked:    req.IsRanked,
	}
	if err := h.service.Update(r.Context(), userID, &l); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	httpx.JSONSuccess(w, r, l, nil)
}

// Delete handles DELETE /lists/{id}
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

// AddItem handles POST /lists/{id}/items
func (h *HTTPHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	var req addItemReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	if validationErrors := httpx.ValidateStruct(req); len(validationErrors) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return
	}

	item := Item{
		ListID:   r.PathValue("id"),
		AlbumID:  req.AlbumID,
		Position: req.Position,
		Notes:    req.Notes,
	}
	if err := h.service.AddItem(r.Context(), userID, &item); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	httpx.JSONSuccessCreated(w, r, item)
}

// UpdateItem handles PUT /lists/{id}/items/{item_id}
func (h *HTTPHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	var req updateItemReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	if validationErrors := httpx.ValidateStruct(req); len(validationErrors) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return
	}

	item, err := h.service.UpdateItem(r.Context(), userID, r.PathValue("id"), r.PathValue("item_id"), req.Position, req.Notes)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	httpx.JSONSuccess(w, r, item, nil)
}

// RemoveItem handles DELETE /lists/{id}/items/{item_id}
func (h *HTTPHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	if err := h.service.RemoveItem(r.Context(), userID, r.PathValue("id"), r.PathValue("item_id")); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	httpx.JSONSuccessNoContent(w)
}

func (h *HTTPHandler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "List not found", nil)
	case errors.Is(err, ErrItemNotFound):
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "List item not found", nil)
	case errors.Is(err, ErrAlbumNotFound):
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Album not found", nil)
	case errors.Is(err, ErrForbidden):
		httpx.JSONError(w, r, http.StatusForbidden, "FORBIDDEN", "You can only modify your own lists", nil)
	case errors.Is(err, ErrDuplicateItem):
		httpx.JSONError(w, r, http.StatusConflict, "DUPLICATE_ITEM", "Album is already in this list", nil)
	default:
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
	}
}
