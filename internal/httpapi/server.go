// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 FitVault Contributors

package httpapi

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/samber/oops"

	"github.com/fitvault/authd/internal/token"
)

// NewRouter assembles the chi router with the standard middleware chain.
func NewRouter(h *Handler, issuer *token.Issuer, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(RequestID)
	r.Use(RequestLogger(logger))

	r.Post("/signup", h.SignUp)
	r.Post("/login", h.Login)
	r.With(RequireBearer(issuer)).Post("/delete-account", h.DeleteAccount)

	return r
}

// ServerConfig tunes the HTTP listener.
type ServerConfig struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Server runs the API listener with graceful shutdown.
type Server struct {
	httpServer *http.Server
	listener   net.Listener
	logger     *slog.Logger
}

// NewServer creates an unstarted API server.
func NewServer(cfg ServerConfig, handler http.Handler, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		httpServer: &http.Server{
			Addr:         cfg.Addr,
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		logger: logger,
	}
}

// Addr returns the bound address, useful when Addr was ":0".
func (s *Server) Addr() string {
	if s.listener == nil {
		return s.httpServer.Addr
	}
	return s.listener.Addr().String()
}

// Start binds the listener and serves in a goroutine. The returned channel
// receives the terminal serve error, or closes on clean shutdown.
func (s *Server) Start() (<-chan error, error) {
	listener, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return nil, oops.Code("API_LISTEN_FAILED").With("addr", s.httpServer.Addr).Wrap(err)
	}
	s.listener = listener

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		s.logger.Info("api server listening", "addr", listener.Addr().String())
		if serveErr := s.httpServer.Serve(listener); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			errCh <- oops.Code("API_SERVE_FAILED").Wrap(serveErr)
		}
	}()

	return errCh, nil
}

// Stop gracefully shuts the server down, honoring the context deadline.
func (s *Server) Stop(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return oops.Code("API_SHUTDOWN_FAILED").Wrap(err)
	}
	return nil
}
