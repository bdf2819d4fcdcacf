// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 FitVault Contributors

// Package httpapi exposes the authentication endpoints over HTTP.
//
// Three operations are served: POST /signup creates a credential and its
// remote profile, POST /login exchanges a password for a bearer token, and
// POST /delete-account removes both sides of an account. Domain outcomes map
// to statuses (409 conflict, 401 unauthorized, 503 upstream unavailable);
// everything else is a 500 with no internal detail in the body.
package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/fitvault/authd/internal/account"
	"github.com/fitvault/authd/internal/auth"
	"github.com/fitvault/authd/internal/observability"
	"github.com/fitvault/authd/internal/token"
)

type signupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type deleteAccountRequest struct {
	Password string `json:"password"`
}

type signupResponse struct {
	Username string `json:"username"`
	Message  string `json:"message"`
}

type loginResponse struct {
	Username    string `json:"username"`
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Handler serves the account endpoints.
type Handler struct {
	coordinator *account.Coordinator
	manager     *auth.Manager
	issuer      *token.Issuer
	metrics     *observability.Metrics
	logger      *slog.Logger
}

// NewHandler wires the account coordinator, credential manager, and token
// issuer into an HTTP handler set.
func NewHandler(
	coordinator *account.Coordinator,
	manager *auth.Manager,
	issuer *token.Issuer,
	metrics *observability.Metrics,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		coordinator: coordinator,
		manager:     manager,
		issuer:      issuer,
		metrics:     metrics,
		logger:      logger,
	}
}

// SignUp handles POST /signup.
func (h *Handler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if !h.decode(w, r, &req) {
		return
	}

	if err := auth.ValidateUsername(req.Username); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "username must be 3-30 characters of letters, digits, or underscore"})
		return
	}
	if err := auth.ValidatePassword(req.Password); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "password must be 4-64 characters"})
		return
	}

	err := h.coordinator.SignUp(r.Context(), req.Username, req.Password)
	switch {
	case err == nil:
		h.metrics.SignupsTotal.WithLabelValues("created").Inc()
		writeJSON(w, http.StatusCreated, signupResponse{Username: req.Username, Message: "user created"})
	case errors.Is(err, account.ErrConflict):
		h.metrics.SignupsTotal.WithLabelValues("conflict").Inc()
		writeJSON(w, http.StatusConflict, errorResponse{Error: "username already exists"})
	case errors.Is(err, account.ErrUpstreamUnavailable):
		h.metrics.SignupsTotal.WithLabelValues("upstream_unavailable").Inc()
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "account creation is temporarily unavailable"})
	default:
		h.metrics.SignupsTotal.WithLabelValues("error").Inc()
		h.internalError(w, r, "signup failed", err)
	}
}

// Login handles POST /login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !h.decode(w, r, &req) {
		return
	}

	ok, err := h.manager.VerifyPassword(r.Context(), req.Username, req.Password)
	if err != nil {
		h.metrics.LoginsTotal.WithLabelValues("error").Inc()
		h.internalError(w, r, "login failed", err)
		return
	}
	if !ok {
		h.metrics.LoginsTotal.WithLabelValues("denied").Inc()
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid username or password"})
		return
	}

	tok, err := h.issuer.Issue(req.Username)
	if err != nil {
		h.metrics.LoginsTotal.WithLabelValues("error").Inc()
		h.internalError(w, r, "token issuance failed", err)
		return
	}

	h.metrics.LoginsTotal.WithLabelValues("ok").Inc()
	writeJSON(w, http.StatusOK, loginResponse{
		Username:    req.Username,
		AccessToken: tok,
		TokenType:   "bearer",
	})
}

// DeleteAccount handles POST /delete-account. The username comes from the
// verified bearer token subject; the password confirms intent.
func (h *Handler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	username, ok := SubjectFromContext(r.Context())
	if !ok {
		// Route misconfiguration: bearer middleware did not run.
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
		return
	}

	var req deleteAccountRequest
	if !h.decode(w, r, &req) {
		return
	}

	err := h.coordinator.DeleteAccount(r.Context(), username, req.Password)
	switch {
	case err == nil:
		h.metrics.DeletionsTotal.WithLabelValues("ok").Inc()
		writeJSON(w, http.StatusOK, messageResponse{Message: "account deleted"})
	case errors.Is(err, account.ErrUnauthorized):
		h.metrics.DeletionsTotal.WithLabelValues("denied").Inc()
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid credentials"})
	default:
		h.metrics.DeletionsTotal.WithLabelValues("error").Inc()
		h.internalError(w, r, "account deletion failed", err)
	}
}

// decode parses the JSON request body, writing a 400 on failure.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return false
	}
	return true
}

func (h *Handler) internalError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	h.logger.ErrorContext(r.Context(), msg, "error", err, "request_id", RequestIDFromContext(r.Context()))
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
