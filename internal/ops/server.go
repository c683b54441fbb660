package ops

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"campaign_syncer/internal/breaker"
	"campaign_syncer/internal/metrics"
)

// Server exposes health, metrics and circuit breaker state.
type Server struct {
	router     *chi.Mux
	httpServer *http.Server
	addr       string
	metrics    *metrics.Metrics
	breakers   *breaker.Registry
	logger     *slog.Logger
	startTime  time.Time
}

func NewServer(addr string, m *metrics.Metrics, breakers *breaker.Registry, logger *slog.Logger) *Server {
	s := &Server{
		router:    chi.NewRouter(),
		addr:      addr,
		metrics:   m,
		breakers:  breakers,
		logger:    logger.With("component", "ops"),
		startTime: time.Now(),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Recoverer)

	s.router.Get("/healthz", s.handleHealth)
	s.router.Handle("/metrics", promhttp.HandlerFor(s.metrics.Registry(), promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	}))

	s.router.Route("/breakers", func(r chi.Router) {
		r.Get("/", s.handleBreakers)
		r.Post("/reset", s.handleBreakersReset)
	})
}

// Handler returns the router, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) ListenAndServe() error {
	s.httpServer = &http.Server{
		Addr:         s.addr,
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("starting ops server", "addr", s.addr)
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down ops server")
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

type healthResponse struct {
	Status string `json:"status"`
	Uptime string `json:"uptime"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.sendJSON(w, http.StatusOK, healthResponse{
		Status: "ok",
		Uptime: time.Since(s.startTime).Round(time.Second).String(),
	})
}

func (s *Server) handleBreakers(w http.ResponseWriter, r *http.Request) {
	s.sendJSON(w, http.StatusOK, s.breakers.Snapshot())
}

func (s *Server) handleBreakersReset(w http.ResponseWriter, r *http.Request) {
	s.breakers.ResetAll()
	s.logger.Warn("all circuit breakers reset", "request_id", middleware.GetReqID(r.Context()))
	s.sendJSON(w, http.StatusOK, s.breakers.Snapshot())
}

func (s *Server) sendJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}
