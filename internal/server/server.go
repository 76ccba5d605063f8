package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rgehrsitz/wonpay/internal/calculation"
	"github.com/rgehrsitz/wonpay/internal/config"
	"go.uber.org/zap"
)

type handler struct {
	engine       *calculation.Engine
	logger       *zap.Logger
	maxBodyBytes int64
	version      string
}

// NewHandler constructs the HTTP handler that serves the calculator API.
func NewHandler(engine *calculation.Engine, logger *zap.Logger, settings config.ServerSettings, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if engine == nil {
		engine = calculation.NewEngine()
	}
	maxBody := settings.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = config.DefaultMaxBodyBytes
	}
	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{engine: engine, logger: logger, maxBodyBytes: maxBody, version: trimmedVersion}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(bodyLimit(maxBody))

	r.Get("/healthz", h.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/version", h.handleVersion)

		r.Get("/bep", h.handleBEPQuery)
		r.Post("/bep", h.handleBEP)
		r.Post("/hourly", h.handleHourly)
		r.Post("/salary", h.handleSalary)
		r.Get("/labor-cost", h.handleLaborCostQuery)
		r.Post("/labor-cost", h.handleLaborCost)
		r.Post("/price-decision", h.handlePriceDecision)

		r.Post("/report", h.handleReport)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusNotFound, errors.New("not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusMethodNotAllowed, errors.New(http.StatusText(http.StatusMethodNotAllowed)))
	})
	return r
}

// ListenAndServe serves handler on settings.Address until ctx is canceled, then
// shuts down gracefully.
func ListenAndServe(ctx context.Context, handler http.Handler, settings config.ServerSettings, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	addr := settings.Address
	if addr == "" {
		addr = config.DefaultServerAddress
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       settings.ReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      settings.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.String("op", "server.listen"), zap.String("address", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
		logger.Info("shutting down server", zap.String("op", "server.shutdown"))
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	}
}
