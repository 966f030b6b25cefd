package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/A1Marky/premium-nba-api/internal/cache"
	"github.com/A1Marky/premium-nba-api/internal/service"
	"github.com/A1Marky/premium-nba-api/internal/store"
	"github.com/gorilla/mux"
)

// Server represents the REST API server
type Server struct {
	port    string
	server  *http.Server
	handler *Handler
}

// NewServer creates a new REST API server. db and rc may be nil when
// the archive or cache is disabled.
func NewServer(port string, svc *service.AnalyticsService, db *store.Database, rc *cache.RedisCache) *Server {
	handler := NewHandler(svc, db, rc)

	router := mux.NewRouter()

	// Apply middleware
	router.Use(RequestIDMiddleware)
	router.Use(RecoveryMiddleware)
	router.Use(LoggingMiddleware)
	router.Use(CORSMiddleware)

	// Health check
	router.HandleFunc("/health", handler.HealthCheck).Methods("GET")

	// API v1 routes
	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/players/{playerID}/gamelog", handler.GetPlayerGameLog).Methods("GET")
	api.HandleFunc("/players/{playerID}/hit-rates", handler.GetPlayerHitRates).Methods("GET")
	api.HandleFunc("/players/{playerID}/splits/home-away", handler.GetPlayerHomeAwaySplits).Methods("GET")
	api.HandleFunc("/players/{playerID}/splits/rest", handler.GetPlayerRestSplits).Methods("GET")
	api.HandleFunc("/players/{playerID}/splits/pace", handler.GetPlayerPaceSplits).Methods("GET")
	api.HandleFunc("/players/{playerID}/matchups/{teamID}", handler.GetPlayerMatchupHistory).Methods("GET")
	api.HandleFunc("/players/{playerID}/consistency/{statType}", handler.GetPlayerConsistency).Methods("GET")

	return &Server{
		port:    port,
		handler: handler,
		server: &http.Server{
			Addr:    fmt.Sprintf(":%s", port),
			Handler: router,
		},
	}
}

// Router exposes the configured routes for tests.
func (s *Server) Router() http.Handler {
	return s.server.Handler
}

// Start starts the REST API server
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
