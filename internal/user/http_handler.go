package user

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"stereo/internal/httpx"
	"stereo/internal/platform/crypto"
)

type HTTPHandler struct {
	service   *Service
	jwtSecret string
	tokenTTL  time.Duration
}

func NewHTTPHandler(service *Service, jwtSecret string) *HTTPHandler {
	return &HTTPHandler{
		service:   service,
		jwtSecret: jwtSecret,
		tokenTTL:  24 * time.Hour,
	}
}

type registerReq struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,password_strength"`
}

type loginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register handles POST /users/register
func (h *HTTPHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	if validationErrors := httpx.ValidateStruct(req); len(validationErrors) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return
	}

	hashedPassword, err := crypto.HashPassword(req.Password)
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	newUser, err := h.service.Register(r.Context(), req.Username, req.Email, hashedPassword)
	if err != nil {
		switch {
		case errors.Is(err, ErrUsernameTaken):
			httpx.JSONError(w, r, http.StatusConflict, "ALREADY_EXISTS", "Username already exists", nil)
		case errors.Is(err, ErrEmailTaken):
			httpx.JSONError(w, r, http.StatusConflict, "ALREADY_EXISTS", "Email already exists", nil)
		default:
			httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}

	httpx.JSONSuccessCreated(w, r, newUser)
}

// Login handles POST /users/login
func (h *HTTPHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	if validationErrors := httpx.ValidateStruct(req); len(validationErrors) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return
	}

	u, err := h.service.GetByEmail(r.Context(), req.Email)
	if err != nil || !crypto.VerifyPassword(u.Password, req.Password) {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid email or password", nil)
		return
	}

	token, err := crypto.GenerateToken(h.jwtSecret, u.ID, h.tokenTTL)
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccess(w, r, map[string]any{
		"token": token,
		"user":  u,
	}, nil)
}

// Search handles GET /search/users?q=...&limit=...&offset=...
func (h *HTTPHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	users, err := h.service.Search(r.Context(), q, limit, offset)
	if err != nil {
		if errors.Is(err, ErrQueryTooShort) {
			httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccess(w, r, users, map[string]any{
		"count": len(users),
	})
}

// Profile handles GET /users/profile/{id}
func (h *HTTPHandler) Profile(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	u, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "User not found", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccess(w, r, u, nil)
}
