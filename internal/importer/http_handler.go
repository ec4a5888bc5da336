package importer

import (
	"net/http"

	"stereo/internal/httpx"
)

type HTTPHandler struct {
	svc    *Service
	secret string
}

func NewHTTPHandler(svc *Service, secret string) *HTTPHandler {
	return &HTTPHandler{svc: svc, secret: secret}
}

// Import handles POST /internal/jobs/import
func (h *HTTPHandler) Import(w http.ResponseWriter, r *http.Request) {
	secret := r.Header.Get("X-Internal-Secret")
	if h.secret != "" && secret != h.secret {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "invalid internal secret", nil)
		return
	}

	if err := h.svc.Run(r.Context()); err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "IMPORT_FAILED", err.Error(), nil)
		return
	}

	httpx.JSONSuccess(w, r, map[string]string{"message": "import completed"}, nil)
}
