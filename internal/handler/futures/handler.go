package futures

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/youthfutures/observatory/internal/model/futures"
	"github.com/youthfutures/observatory/pkg/utils"
)

// Handler serves the static research tables to the presentation views.
type Handler struct {
	catalog futures.Store
}

// New creates the catalog handler.
func New(catalog futures.Store) *Handler {
	return &Handler{catalog: catalog}
}

// RegisterRoutes mounts the reference data routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/populations", h.handleListPopulations)
	r.Get("/populations/{id}", h.handleGetPopulation)
	r.Get("/populations/{id}/scenarios", h.handlePopulationScenarios)
	r.Get("/scenarios", h.handleListScenarios)
	r.Get("/scenarios/{id}", h.handleGetScenario)
	r.Get("/axes", h.handleListAxes)
	r.Get("/pestle", h.handleListPestle)
	r.Get("/policy", h.handleListPolicy)
	r.Get("/findings", h.handleListFindings)
}

func (h *Handler) handleListPopulations(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.catalog.Populations())
}

func (h *Handler) handleGetPopulation(w http.ResponseWriter, r *http.Request) {
	population, ok := h.catalog.FindPopulation(chi.URLParam(r, "id"))
	if !ok {
		utils.RespondError(w, http.StatusNotFound, "population not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, population)
}

// handlePopulationScenarios returns the population's affinity scenarios in
// declared order, which is how the interview sidebar ranks them.
func (h *Handler) handlePopulationScenarios(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, ok := h.catalog.FindPopulation(id); !ok {
		utils.RespondError(w, http.StatusNotFound, "population not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, h.catalog.PopulationAffinities(id))
}

func (h *Handler) handleListScenarios(w http.ResponseWriter, r *http.Request) {
	axis := r.URL.Query().Get("axis")
	if axis == "" {
		utils.RespondJSON(w, http.StatusOK, h.catalog.Scenarios())
		return
	}

	value := r.URL.Query().Get("value")
	matched := h.catalog.ScenariosByAxis(axis, value)
	if matched == nil {
		utils.RespondError(w, http.StatusBadRequest, "unknown axis")
		return
	}
	utils.RespondJSON(w, http.StatusOK, matched)
}

func (h *Handler) handleGetScenario(w http.ResponseWriter, r *http.Request) {
	scenario, ok := h.catalog.FindScenario(chi.URLParam(r, "id"))
	if !ok {
		utils.RespondError(w, http.StatusNotFound, "scenario not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, scenario)
}

func (h *Handler) handleListAxes(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, futures.SeedAxes())
}

func (h *Handler) handleListPestle(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, futures.SeedPestle())
}

func (h *Handler) handleListPolicy(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, futures.SeedPolicyImplications())
}

func (h *Handler) handleListFindings(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, futures.SeedSurveyFindings())
}
