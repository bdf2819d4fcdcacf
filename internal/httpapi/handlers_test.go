// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 FitVault Contributors

package httpapi_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitvault/authd/internal/account"
	"github.com/fitvault/authd/internal/auth"
	"github.com/fitvault/authd/internal/httpapi"
	"github.com/fitvault/authd/internal/observability"
	"github.com/fitvault/authd/internal/token"
)

type fakeProfileClient struct {
	createErr error
	deleteErr error
}

func (f *fakeProfileClient) CreateProfile(context.Context, string) error { return f.createErr }
func (f *fakeProfileClient) DeleteProfile(context.Context, string) error { return f.deleteErr }

var testParams = auth.Params{
	Time:       1,
	Memory:     8 * 1024,
	Threads:    1,
	SaltLength: 16,
	KeyLength:  32,
}

func newTestAPI(t *testing.T, profiles *fakeProfileClient) http.Handler {
	t.Helper()
	logger := slog.New(slog.DiscardHandler)

	manager, err := auth.NewManager(auth.NewMemoryStore(), auth.NewArgon2idHasherWithParams(testParams), logger)
	require.NoError(t, err)
	coordinator, err := account.NewCoordinator(manager, profiles, logger)
	require.NoError(t, err)
	issuer, err := token.NewHS256Issuer([]byte("test-secret"), time.Minute)
	require.NoError(t, err)

	metrics := observability.NewMetrics(prometheus.NewRegistry())
	handler := httpapi.NewHandler(coordinator, manager, issuer, metrics, logger)
	return httpapi.NewRouter(handler, issuer, logger)
}

func doJSON(t *testing.T, api http.Handler, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	api.ServeHTTP(rec, req)
	return rec
}

func TestAPI_AccountLifecycle(t *testing.T) {
	api := newTestAPI(t, &fakeProfileClient{})
	creds := map[string]string{"username": "fituser_1", "password": "password1234"}

	// Fresh signup succeeds.
	rec := doJSON(t, api, http.MethodPost, "/signup", creds, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	// Same username again conflicts.
	rec = doJSON(t, api, http.MethodPost, "/signup", creds, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Wrong password is denied.
	rec = doJSON(t, api, http.MethodPost, "/login",
		map[string]string{"username": "fituser_1", "password": "wrong-password"}, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Correct credentials yield a three-segment bearer token.
	rec = doJSON(t, api, http.MethodPost, "/login", creds, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var loginBody struct {
		Username    string `json:"username"`
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &loginBody))
	assert.Equal(t, "fituser_1", loginBody.Username)
	assert.Equal(t, "bearer", loginBody.TokenType)
	assert.Len(t, strings.Split(loginBody.AccessToken, "."), 3)

	// The token authorizes account deletion.
	rec = doJSON(t, api, http.MethodPost, "/delete-account",
		map[string]string{"password": "password1234"},
		map[string]string{"Authorization": "Bearer " + loginBody.AccessToken})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// The account is gone: login is denied again.
	rec = doJSON(t, api, http.MethodPost, "/login", creds, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// A replayed token for the deleted account no longer works.
	rec = doJSON(t, api, http.MethodPost, "/delete-account",
		map[string]string{"password": "password1234"},
		map[string]string{"Authorization": "Bearer " + loginBody.AccessToken})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAPI_SignUp_Validation(t *testing.T) {
	api := newTestAPI(t, &fakeProfileClient{})

	tests := []struct {
		name string
		body map[string]string
	}{
		{"username too short", map[string]string{"username": "ab", "password": "password1234"}},
		{"username bad characters", map[string]string{"username": "not valid!", "password": "password1234"}},
		{"password too short", map[string]string{"username": "fituser_1", "password": "abc"}},
		{"password too long", map[string]string{"username": "fituser_1", "password": strings.Repeat("a", 65)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, api, http.MethodPost, "/signup", tt.body, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader("{not json"))
		rec := httptest.NewRecorder()
		api.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAPI_SignUp_UpstreamUnavailable(t *testing.T) {
	profiles := &fakeProfileClient{createErr: errors.New("unavailable")}
	api := newTestAPI(t, profiles)

	rec := doJSON(t, api, http.MethodPost, "/signup",
		map[string]string{"username": "fituser_1", "password": "password1234"}, nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	// The username was released: a retry succeeds once upstream recovers.
	profiles.createErr = nil
	rec = doJSON(t, api, http.MethodPost, "/signup",
		map[string]string{"username": "fituser_1", "password": "password1234"}, nil)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestAPI_DeleteAccount_Auth(t *testing.T) {
	api := newTestAPI(t, &fakeProfileClient{})
	body := map[string]string{"password": "password1234"}

	t.Run("missing header", func(t *testing.T) {
		rec := doJSON(t, api, http.MethodPost, "/delete-account", body, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		rec := doJSON(t, api, http.MethodPost, "/delete-account", body,
			map[string]string{"Authorization": "Basic dXNlcjpwYXNz"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		rec := doJSON(t, api, http.MethodPost, "/delete-account", body,
			map[string]string{"Authorization": "Bearer not.a.token"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token but wrong password", func(t *testing.T) {
		rec := doJSON(t, api, http.MethodPost, "/signup",
			map[string]string{"username": "fituser_2", "password": "password1234"}, nil)
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = doJSON(t, api, http.MethodPost, "/login",
			map[string]string{"username": "fituser_2", "password": "password1234"}, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var loginBody struct {
			AccessToken string `json:"access_token"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &loginBody))

		rec = doJSON(t, api, http.MethodPost, "/delete-account",
			map[string]string{"password": "wrong-password"},
			map[string]string{"Authorization": "Bearer " + loginBody.AccessToken})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		// Account survives the failed attempt.
		rec = doJSON(t, api, http.MethodPost, "/login",
			map[string]string{"username": "fituser_2", "password": "password1234"}, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
