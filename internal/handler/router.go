package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/youthfutures/observatory/internal/config"
	authHandler "github.com/youthfutures/observatory/internal/handler/auth"
	chatHandler "github.com/youthfutures/observatory/internal/handler/chat"
	futuresHandler "github.com/youthfutures/observatory/internal/handler/futures"
	middlewarePkg "github.com/youthfutures/observatory/internal/middleware"
	futuresModel "github.com/youthfutures/observatory/internal/model/futures"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(catalog futuresModel.Store, streamer chatHandler.Streamer, gate config.GateConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	r.Route("/api", func(api chi.Router) {
		// Auth submission stays reachable without the gate cookie.
		authHandler.New(gate).RegisterRoutes(api)

		api.Group(func(gated chi.Router) {
			gated.Use(middlewarePkg.Gate(gate))
			futuresHandler.New(catalog).RegisterRoutes(gated)
			chatHandler.New(streamer, catalog).RegisterRoutes(gated)
		})
	})

	return r
}
