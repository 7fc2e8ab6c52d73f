package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/youthfutures/observatory/internal/config"
	"github.com/youthfutures/observatory/pkg/utils"
)

// GateCookie carries the shared-secret site gate token.
const GateCookie = "observatory_gate"

// Gate enforces the shared-secret cookie on every route it wraps. With no
// password configured the gate is a no-op. Handlers behind it never
// re-check the secret themselves.
func Gate(cfg config.GateConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !cfg.Enabled() {
				next.ServeHTTP(w, r)
				return
			}

			cookie, err := r.Cookie(GateCookie)
			if err != nil || subtle.ConstantTimeCompare([]byte(cookie.Value), []byte(cfg.Password)) != 1 {
				utils.RespondError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
