package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrMalformedCredential is returned when the "Authorization" header is
	// absent, does not begin with the exact `Bearer ` scheme prefix
	// (case-sensitive, one trailing space), or carries an empty token.
	ErrMalformedCredential = errors.New("malformed `Authorization` header")
)
