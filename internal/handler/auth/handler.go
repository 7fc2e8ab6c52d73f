package auth

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/youthfutures/observatory/internal/config"
	"github.com/youthfutures/observatory/internal/middleware"
	"github.com/youthfutures/observatory/pkg/utils"
)

// Handler exchanges the shared site password for the gate cookie.
type Handler struct {
	cfg config.GateConfig
}

// New creates the auth handler.
func New(cfg config.GateConfig) *Handler {
	return &Handler{cfg: cfg}
}

// RegisterRoutes mounts the auth submission route. It must stay outside the
// gate so unauthenticated visitors can reach it.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/auth", h.handleAuth)
}

func (h *Handler) handleAuth(w http.ResponseWriter, r *http.Request) {
	if !h.cfg.Enabled() {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	var payload struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if subtle.ConstantTimeCompare([]byte(payload.Password), []byte(h.cfg.Password)) != 1 {
		utils.RespondError(w, http.StatusUnauthorized, "wrong password")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.GateCookie,
		Value:    h.cfg.Password,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	w.WriteHeader(http.StatusNoContent)
}
