package models

// Request and response bodies of the REST API. Each operation binds to an
// explicit struct; the transport layer validates the shape before anything
// reaches the service layer.

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
}

// TokenRequest is the body of POST /api/auth/verify-token and
// POST /api/auth/logout.
type TokenRequest struct {
	Token string `json:"token"`
}

// AuthResponse is returned by register and verify-token. It is the only
// place the bearer token crosses the wire server-to-client.
type AuthResponse struct {
	Username string `json:"username"`
	Token    string `json:"token"`
}

// ConceptRequest is the body of POST /api/concepts and
// PUT /api/concepts/{id}.
type ConceptRequest struct {
	Name  string `json:"name"`
	Notes string `json:"notes"`
}

// WordRequest is the body of POST /api/concepts/{conceptID}/words and
// PUT /api/concepts/{conceptID}/words/{id}.
type WordRequest struct {
	Word     string `json:"word"`
	Language string `json:"language"`
	IPA      string `json:"ipa"`
	Nuance   string `json:"nuance"`
}
