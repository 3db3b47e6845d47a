package httpapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	"github.com/kibahcorps/schedule1-go/internal/adapters/metrics"
	"github.com/kibahcorps/schedule1-go/internal/application/common"
	"github.com/kibahcorps/schedule1-go/internal/infrastructure/config"
)

// Options carries the optional collaborators of a Server
type Options struct {
	// Metrics records per-route request counts and latencies (nil = off)
	Metrics *metrics.APIMetricsCollector

	// MetricsPath mounts MetricsHandler when both are set
	MetricsPath    string
	MetricsHandler http.Handler
}

// Server is the JSON API in front of the mediator
type Server struct {
	cfg      config.APIConfig
	log      *slog.Logger
	mediator common.Mediator
	limiter  *rate.Limiter
	opts     Options
	mux      *chi.Mux
}

// New builds the router. Every request shares one token bucket sized by
// cfg.RateLimit.
func New(cfg config.APIConfig, logger *slog.Logger, med common.Mediator, opts Options) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 60 * time.Second
	}

	s := &Server{
		cfg:      cfg,
		log:      logger,
		mediator: med,
		opts:     opts,
		mux:      chi.NewRouter(),
	}
	if cfg.RateLimit.Requests > 0 {
		burst := cfg.RateLimit.Burst
		if burst < 1 {
			burst = 1
		}
		s.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.Requests), burst)
	}
	s.routes()
	return s
}

// Handler returns the root http.Handler
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) routes() {
	r := s.mux
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.instrument)
	r.Use(middleware.Timeout(s.cfg.RequestTimeout))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	if s.opts.MetricsPath != "" && s.opts.MetricsHandler != nil {
		r.Handle(s.opts.MetricsPath, s.opts.MetricsHandler)
	}

	r.Route("/v1", func(r chi.Router) {
		r.Use(s.rateLimit)

		r.Get("/products", s.handleListProducts)
		r.Get("/products/{product}/top", s.handleTopRecipes)
		r.Get("/mixers", s.handleListMixers)
		r.Get("/effects", s.handleListEffects)
		r.Post("/effects", s.handleResolveEffects)
		r.Get("/top", s.handleTopAllProducts)

		r.Post("/recipes/evaluate", s.handleEvaluate)
		r.Post("/recipes/compare", s.handleCompare)
		r.Post("/recipes/batch", s.handleBatchProfit)
		r.Get("/recipes/predefined", s.handlePredefined)

		r.Get("/saved", s.handleListSaved)
		r.Post("/saved", s.handleSaveRecipe)
		r.Get("/saved/{id}", s.handleGetSaved)
		r.Delete("/saved/{id}", s.handleDeleteSaved)

		r.Post("/dealers/rank", s.handleRankDealers)
		r.Post("/dealers/estimate", s.handleEstimateDealer)
		r.Get("/dealers/{dealer}/transactions", s.handleListTransactions)
		r.Post("/dealers/{dealer}/transactions", s.handleRecordTransaction)
	})
}

// ListenAndServe serves on cfg.Address until ctx is cancelled, then shuts down
// gracefully within shutdownTimeout
func (s *Server) ListenAndServe(ctx context.Context, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              s.cfg.Address,
		Handler:           s.mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http api listening", "addr", s.cfg.Address)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	s.log.Info("http api stopped")
	return nil
}
