// Package server builds the HTTP surface: middleware, CORS, route fallbacks.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/protonsvc/rasa-nlg/internal/api"
	"github.com/protonsvc/rasa-nlg/internal/assets"
	"github.com/protonsvc/rasa-nlg/internal/db"
)

// Config holds server configuration.
type Config struct {
	Port          int
	AssetsDir     string   // directory containing the compiled dashboard
	AssetPatterns []string // servable asset name globs
	AllowAll      bool     // allow all CORS origins (dev mode)
}

// Server is the NLG HTTP server.
type Server struct {
	cfg        Config
	db         *db.DB
	router     chi.Router
	httpServer *http.Server
}

// New creates a server around the given database. Feature packages mount
// their routes on Router(); unmatched paths fall through to the asset
// handler and finally the 404 envelope.
func New(cfg Config, database *db.DB) *Server {
	s := &Server{cfg: cfg, db: database}
	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS: the dashboard runs on a different port, so the allowed origin is
	// echoed back on every response.
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = nil
		corsOpts.AllowOriginFunc = func(r *http.Request, origin string) bool { return true }
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=UTF-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// A matched route with an unsupported method is the 405 envelope.
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		api.WriteError(w, api.ErrMethodNotAllowed)
	})

	// Everything the API routes did not claim: asset, then 404 envelope.
	assetHandler := assets.NewHandler(s.cfg.AssetsDir, s.cfg.AssetPatterns)
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		if assetHandler.Matches(r.URL.Path) {
			assetHandler.ServeHTTP(w, r)
			return
		}
		api.WriteError(w, api.ErrNotFound)
	})

	return r
}

// Router returns the chi router for registering feature routes.
func (s *Server) Router() chi.Router { return s.router }

// Database returns the database connection.
func (s *Server) Database() *db.DB { return s.db }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("nlg server listening on %s", addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
