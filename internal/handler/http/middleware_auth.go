package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/multilang/concept-memo/internal/logger"
	"github.com/multilang/concept-memo/internal/utils"
)

// bearerScheme is the exact, case-sensitive credential prefix, including
// its single trailing space.
const bearerScheme = "Bearer "

// auth is an HTTP middleware that enforces bearer-token authentication.
//
// It inspects the incoming "Authorization" header, extracts the token, and
// resolves it through [service.SessionService.VerifyAndRenew] — so every
// authenticated request is also a session keep-alive. On success the
// resolved username (never the token itself) is stored in the request
// context under [utils.UsernameCtxKey] before delegating to the next
// handler.
//
// Requests are rejected with HTTP 401 Unauthorized when:
//   - the header is absent or does not use the exact `Bearer ` scheme
//     ([ErrMalformedCredential]);
//   - the token matches no session ([service.ErrInvalidToken]);
//   - the session has expired ([service.ErrTokenExpired]).
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := getTokenFromAuthHeader(r.Header.Get("Authorization"))
		if err != nil {
			log.Err(err).Send()
			h.handleError(w, r, err)
			return
		}

		ctx := r.Context()
		user, err := h.services.SessionService.VerifyAndRenew(ctx, tokenString)
		if err != nil {
			h.handleError(w, r, err)
			return
		}

		// Only the resolved identity crosses this boundary; downstream
		// handlers and their logs never see the credential.
		ctx = context.WithValue(ctx, utils.UsernameCtxKey, user.Username)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the bearer token from a raw
// "Authorization" header value.
//
// The header must follow the exact format:
//
//	Authorization: Bearer <token>
//
// The scheme comparison is case-sensitive and requires the single space
// separator; anything else — a missing header, `bearer`, `Bearer` with no
// remainder — fails with [ErrMalformedCredential].
func getTokenFromAuthHeader(authHeader string) (string, error) {
	if !strings.HasPrefix(authHeader, bearerScheme) {
		return "", ErrMalformedCredential
	}

	tokenString := authHeader[len(bearerScheme):]
	if tokenString == "" {
		return "", ErrMalformedCredential
	}

	return tokenString, nil
}
