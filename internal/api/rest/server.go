// Package rest exposes a small read-only JSON API over the collected
// play-by-play artifacts and the live team directory.
package rest

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/nkal22/ncaa-hoops-pbp/internal/ncaa"
)

// Server represents the REST API server
type Server struct {
	addr    string
	server  *http.Server
	handler *Handler
}

// NewServer creates a new REST API server
func NewServer(addr string, client *ncaa.Client) *Server {
	handler := NewHandler(client)

	router := mux.NewRouter()

	// Apply middleware
	router.Use(RecoveryMiddleware)
	router.Use(LoggingMiddleware)
	router.Use(CORSMiddleware)

	// API v1 routes
	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/health", handler.HealthCheck).Methods("GET")
	api.HandleFunc("/teams", handler.GetTeams).Methods("GET")
	api.HandleFunc("/onoff", handler.RunOnOff).Methods("POST")

	return &Server{
		addr:    addr,
		handler: handler,
		server: &http.Server{
			Addr:    addr,
			Handler: router,
		},
	}
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
