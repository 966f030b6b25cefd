package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/A1Marky/premium-nba-api/internal/analytics"
	"github.com/A1Marky/premium-nba-api/internal/cache"
	"github.com/A1Marky/premium-nba-api/internal/provider"
	"github.com/A1Marky/premium-nba-api/internal/service"
	"github.com/A1Marky/premium-nba-api/internal/store"
	"github.com/gorilla/mux"
)

// Handler contains dependencies for HTTP handlers. The archive and
// cache are optional and only used for health reporting.
type Handler struct {
	analyticsService *service.AnalyticsService
	db               *store.Database
	cache            *cache.RedisCache
}

// NewHandler creates a new handler.
func NewHandler(svc *service.AnalyticsService, db *store.Database, rc *cache.RedisCache) *Handler {
	return &Handler{
		analyticsService: svc,
		db:               db,
		cache:            rc,
	}
}

// HealthCheck handles health check requests. Degraded optional
// dependencies are reported but never fail the check; the engine
// itself has none.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	deps := map[string]string{}
	if h.db != nil {
		deps["postgres"] = "ok"
		if err := h.db.HealthCheck(); err != nil {
			deps["postgres"] = "unreachable"
		}
	}
	if h.cache != nil {
		deps["redis"] = "ok"
		if err := h.cache.HealthCheck(r.Context()); err != nil {
			deps["redis"] = "unreachable"
		}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":       "healthy",
		"service":      "premium-nba-api",
		"dependencies": deps,
	})
}

// GetPlayerGameLog returns a player's normalized game log.
func (h *Handler) GetPlayerGameLog(w http.ResponseWriter, r *http.Request) {
	playerID := mux.Vars(r)["playerID"]
	season := r.URL.Query().Get("season")
	limit, err := intParam(r, "limit", 0, 82)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request", err)
		return
	}

	resp, err := h.analyticsService.PlayerGameLog(r.Context(), playerID, season, limit)
	if err != nil {
		respondAnalyticsError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, resp)
}

// GetPlayerHitRates returns threshold hit rates for every stat
// category over the last num_games games (default 10).
func (h *Handler) GetPlayerHitRates(w http.ResponseWriter, r *http.Request) {
	playerID := mux.Vars(r)["playerID"]
	season := r.URL.Query().Get("season")
	numGames, err := intParam(r, "num_games", 10, 82)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request", err)
		return
	}

	resp, err := h.analyticsService.HitRates(r.Context(), playerID, season, numGames)
	if err != nil {
		respondAnalyticsError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, resp)
}

// GetPlayerHomeAwaySplits returns per-venue splits.
func (h *Handler) GetPlayerHomeAwaySplits(w http.ResponseWriter, r *http.Request) {
	playerID := mux.Vars(r)["playerID"]
	season := r.URL.Query().Get("season")
	lastN, err := intParam(r, "last_n_games", 0, 82)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request", err)
		return
	}

	resp, err := h.analyticsService.HomeAwaySplits(r.Context(), playerID, season, lastN)
	if err != nil {
		respondAnalyticsError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, resp)
}

// GetPlayerRestSplits returns rest-tier splits.
func (h *Handler) GetPlayerRestSplits(w http.ResponseWriter, r *http.Request) {
	playerID := mux.Vars(r)["playerID"]
	season := r.URL.Query().Get("season")
	lastN, err := intParam(r, "last_n_games", 0, 82)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request", err)
		return
	}

	resp, err := h.analyticsService.RestImpact(r.Context(), playerID, season, lastN)
	if err != nil {
		respondAnalyticsError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, resp)
}

// GetPlayerPaceSplits returns pace-tier splits over the last
// last_n_games games (default 20).
func (h *Handler) GetPlayerPaceSplits(w http.ResponseWriter, r *http.Request) {
	playerID := mux.Vars(r)["playerID"]
	season := r.URL.Query().Get("season")
	lastN, err := intParam(r, "last_n_games", 20, 82)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request", err)
		return
	}

	resp, err := h.analyticsService.PaceImpact(r.Context(), playerID, season, lastN)
	if err != nil {
		respondAnalyticsError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, resp)
}

// GetPlayerMatchupHistory returns a player's history against one team
// over the last last_n_matchups meetings (default 5).
func (h *Handler) GetPlayerMatchupHistory(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	playerID := vars["playerID"]
	teamID := vars["teamID"]
	season := r.URL.Query().Get("season")
	lastN, err := intParam(r, "last_n_matchups", 5, 82)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request", err)
		return
	}

	resp, err := h.analyticsService.MatchupHistory(r.Context(), playerID, teamID, season, lastN)
	if err != nil {
		respondAnalyticsError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, resp)
}

// GetPlayerConsistency returns a consistency score for one stat type
// over the last last_n_games games (default 20).
func (h *Handler) GetPlayerConsistency(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	playerID := vars["playerID"]
	statType := vars["statType"]
	season := r.URL.Query().Get("season")
	lastN, err := intParam(r, "last_n_games", 20, 82)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request", err)
		return
	}

	resp, err := h.analyticsService.Consistency(r.Context(), playerID, statType, season, lastN)
	if err != nil {
		respondAnalyticsError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, resp)
}

// intParam reads a bounded positive integer query parameter. Absent
// means the default; anything non-numeric or outside 1..max is the
// caller's mistake and comes back as an error.
func intParam(r *http.Request, name string, def, max int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > max {
		return 0, fmt.Errorf("invalid %s %q (want an integer between 1 and %d)", name, raw, max)
	}
	return n, nil
}

// respondAnalyticsError maps service errors onto HTTP statuses: caller
// mistakes are 400s, missing players 404, upstream failures 502.
func respondAnalyticsError(w http.ResponseWriter, err error) {
	var valErr *analytics.ValidationError
	var cfgErr *analytics.ConfigurationError

	switch {
	case errors.As(err, &valErr):
		respondError(w, http.StatusBadRequest, "Invalid request", err)
	case errors.As(err, &cfgErr):
		respondError(w, http.StatusBadRequest, "Invalid request", err)
	case errors.Is(err, provider.ErrNotFound):
		respondError(w, http.StatusNotFound, "No game log found for player", err)
	default:
		respondError(w, http.StatusBadGateway, "Upstream data source unavailable", err)
	}
}

// respondJSON writes a JSON response.
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes an error response.
func respondError(w http.ResponseWriter, status int, message string, err error) {
	response := map[string]interface{}{
		"error":  message,
		"status": status,
	}
	if err != nil {
		response["details"] = err.Error()
	}

	respondJSON(w, status, response)
}
