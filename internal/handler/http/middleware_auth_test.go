package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/multilang/concept-memo/internal/service"
	"github.com/multilang/concept-memo/internal/utils"
	"github.com/multilang/concept-memo/models"
)

func executeAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	middleware := h.auth(next)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = injectNopLogger(req)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)
	return rr
}

// ─────────────────────────────────────────────
// getTokenFromAuthHeader
// ─────────────────────────────────────────────

func TestGetTokenFromAuthHeader_TableTest(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{
			name:      "valid bearer token",
			header:    "Bearer deadbeef",
			wantToken: "deadbeef",
		},
		{
			name:    "empty header",
			header:  "",
			wantErr: ErrMalformedCredential,
		},
		{
			name:    "scheme without token",
			header:  "Bearer",
			wantErr: ErrMalformedCredential,
		},
		{
			name:    "scheme with empty remainder",
			header:  "Bearer ",
			wantErr: ErrMalformedCredential,
		},
		{
			name:    "lowercase scheme is rejected",
			header:  "bearer deadbeef",
			wantErr: ErrMalformedCredential,
		},
		{
			name:    "different scheme is rejected",
			header:  "Basic dXNlcjpwYXNz",
			wantErr: ErrMalformedCredential,
		},
		{
			name:      "remainder is taken verbatim",
			header:    "Bearer token extra-part",
			wantToken: "token extra-part",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
			}
		})
	}
}

// ─────────────────────────────────────────────
// auth middleware
// ─────────────────────────────────────────────

func TestAuth_Success_UsernameInContext(t *testing.T) {
	session := &mockSessionService{
		verifyFn: func(_ context.Context, token string) (models.User, error) {
			assert.Equal(t, "deadbeef", token)
			return models.User{Username: "alice", Token: token}, nil
		},
	}
	h := newTestHandler(session, nil, nil)

	var gotUsername string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, ok := utils.GetUsernameFromContext(r.Context())
		require.True(t, ok, "username must be resolved into the context")
		gotUsername = username
		w.WriteHeader(http.StatusOK)
	})

	rr := executeAuth(h, "Bearer deadbeef", next)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "alice", gotUsername)
}

func TestAuth_MissingHeader(t *testing.T) {
	h := newTestHandler(nil, nil, nil)

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Fatal("next handler must not run without credentials")
	})

	rr := executeAuth(h, "", next)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuth_InvalidToken(t *testing.T) {
	session := &mockSessionService{
		verifyFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, service.ErrInvalidToken
		},
	}
	h := newTestHandler(session, nil, nil)

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Fatal("next handler must not run for an unknown token")
	})

	rr := executeAuth(h, "Bearer never-issued", next)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuth_ExpiredToken(t *testing.T) {
	session := &mockSessionService{
		verifyFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, service.ErrTokenExpired
		},
	}
	h := newTestHandler(session, nil, nil)

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Fatal("next handler must not run for an expired session")
	})

	rr := executeAuth(h, "Bearer stale-token", next)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
