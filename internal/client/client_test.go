package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/multilang/concept-memo/models"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *MemoClient {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return New(Config{BaseURL: srv.URL})
}

func TestMemoClient_Register_StoresToken(t *testing.T) {
	cli := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/register", r.URL.Path)

		var req models.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice", req.Username)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.AuthResponse{Username: "alice", Token: "deadbeef"})
	})

	auth, err := cli.Register(context.Background(), "alice")

	require.NoError(t, err)
	assert.Equal(t, "alice", auth.Username)
	assert.Equal(t, "deadbeef", cli.Token(), "token must be installed for later calls")
}

func TestMemoClient_Register_BadRequest(t *testing.T) {
	cli := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "invalid username", http.StatusBadRequest)
	})

	_, err := cli.Register(context.Background(), "ab")

	require.ErrorIs(t, err, ErrBadRequest)
	assert.Empty(t, cli.Token())
}

func TestMemoClient_ListConcepts_SendsBearerToken(t *testing.T) {
	cli := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer deadbeef", r.Header.Get("Authorization"))
		assert.Empty(t, r.URL.Query().Get("query"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]models.Concept{
			{ConceptID: 1, Name: "greeting", Words: []models.Word{{WordID: 1, Word: "hello", Language: "en"}}},
		})
	})
	cli.SetToken("deadbeef")

	concepts, err := cli.ListConcepts(context.Background(), "")

	require.NoError(t, err)
	require.Len(t, concepts, 1)
	assert.Equal(t, "greeting", concepts[0].Name)
	require.Len(t, concepts[0].Words, 1)
}

func TestMemoClient_ListConcepts_WithKeyword(t *testing.T) {
	cli := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "hel", r.URL.Query().Get("query"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]models.Concept{})
	})
	cli.SetToken("deadbeef")

	_, err := cli.ListConcepts(context.Background(), "hel")

	require.NoError(t, err)
}

func TestMemoClient_Unauthorized(t *testing.T) {
	cli := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
	})
	cli.SetToken("stale")

	_, err := cli.ListConcepts(context.Background(), "")

	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestMemoClient_GetConcept_NotFound(t *testing.T) {
	cli := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})
	cli.SetToken("deadbeef")

	_, err := cli.GetConcept(context.Background(), 404)

	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoClient_Logout_ClearsToken(t *testing.T) {
	cli := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/logout", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	})
	cli.SetToken("deadbeef")

	require.NoError(t, cli.Logout(context.Background()))
	assert.Empty(t, cli.Token())
}
