// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the translator, the constant table and the
// observable calculator as a JSON HTTP API.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/pdiddy/gift-translator/pkg/types"
)

const (
	defaultAddr           = ":8080"
	defaultRequestTimeout = 10 * time.Second
	defaultMaxBodyBytes   = 64 << 10
	shutdownTimeout       = 5 * time.Second
)

// Translator is the part of the translation orchestrator the API serves.
type Translator interface {
	Translate(expr string, d types.Direction) types.TranslationResult
	LookupConstant(symbol string) (types.Constant, bool)
	ListConstants() []types.Constant
	ListEquationTemplates() []types.TemplateInfo
	Examples() []types.Example
}

// Predictor computes observable predictions.
type Predictor interface {
	Predict(key string, experimental *float64) (types.Prediction, error)
	PredictAll() []types.Prediction
}

// Server holds the router and its dependencies.
type Server struct {
	tr     Translator
	pred   Predictor
	cfg    types.ServerConfig
	log    io.Writer
	router *chi.Mux
}

// New builds a server. Zero fields of cfg take their defaults. Request logs
// and lifecycle messages go to w.
func New(tr Translator, pred Predictor, cfg types.ServerConfig, w io.Writer) *Server {
	if cfg.Addr == "" {
		cfg.Addr = defaultAddr
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultRequestTimeout
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = defaultMaxBodyBytes
	}
	s := &Server{
		tr:     tr,
		pred:   pred,
		cfg:    cfg,
		log:    w,
		router: chi.NewRouter(),
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{
		Logger:  log.New(s.log, "", log.LstdFlags),
		NoColor: true,
	}))
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(s.cfg.RequestTimeout))
}

func (s *Server) setupRoutes() {
	s.router.Get("/healthz", s.handleHealth)

	s.router.Route("/api", func(r chi.Router) {
		r.Post("/translate", s.handleTranslate)
		r.Get("/constants", s.handleConstants)
		r.Get("/constants/{symbol}", s.handleConstant)
		r.Get("/templates", s.handleTemplates)
		r.Get("/examples", s.handleExamples)
		r.Get("/observables/{key}", s.handleObservable)
		r.Get("/predictions", s.handlePredictions)
	})
}

// Handler returns the routed handler, for embedding or tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: s.cfg.RequestTimeout,
	}

	errc := make(chan error, 1)
	go func() {
		fmt.Fprintf(s.log, "listening on %s\n", s.cfg.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving on %s: %w", s.cfg.Addr, err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		fmt.Fprintln(s.log, "shutting down")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down: %w", err)
		}
		return nil
	}
}
