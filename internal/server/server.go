// Package server exposes dataset generation over HTTP. The original
// collection tool was an interactive page; this is its service-shaped
// replacement for operators who want datasets without a local checkout.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/walksafe/seedgen/internal/config"
	"github.com/walksafe/seedgen/internal/geo"
	"github.com/walksafe/seedgen/internal/profile"
)

// Server wires generation handlers into a router.
type Server struct {
	cfg     *config.Config
	catalog *profile.Catalog
	clock   clockwork.Clock
	area    geo.CoverageArea
	limiter *rate.Limiter
}

// New builds a Server from validated configuration.
func New(cfg *config.Config, catalog *profile.Catalog, clock clockwork.Clock) (*Server, error) {
	area, err := cfg.CoverageArea()
	if err != nil {
		return nil, err
	}
	return &Server{
		cfg:     cfg,
		catalog: catalog,
		clock:   clock,
		area:    area,
		limiter: rate.NewLimiter(rate.Limit(cfg.Server.RateLimitRPS), cfg.Server.RateLimitBurst),
	}, nil
}

// Router assembles the HTTP routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))
	r.Use(s.rateLimit)

	r.Get("/health", s.handleHealth)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/profiles", s.handleProfiles)
		r.Post("/datasets/accidents", s.handleAccidents)
		r.Post("/datasets/crimes", s.handleCrimes)
		r.Post("/datasets/combined", s.handleCombined)
	})

	return r
}

// rateLimit rejects requests beyond the configured token bucket. Generation
// is CPU-bound, so shedding load beats queueing it.
func (s *Server) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow() {
			respondError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Error("write response", zap.Error(err))
	}
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}
