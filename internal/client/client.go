// Package client provides a small typed client for the concept-memo REST
// API, used by the command-line tool in cmd/client.
package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/multilang/concept-memo/models"
)

// Errors mapped from HTTP status codes of the memo server.
var (
	ErrUnauthorized = errors.New("client unauthorized")
	ErrBadRequest   = errors.New("request rejected")
	ErrNotFound     = errors.New("resource not found")
)

// Config configures the API client.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// MemoClient is the typed HTTP client for the concept-memo server.
type MemoClient struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// New builds a MemoClient with sane defaults for a local server.
func New(cfg Config) *MemoClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &MemoClient{client: cli}
}

// SetToken installs the bearer token used by authenticated calls.
func (c *MemoClient) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = strings.TrimSpace(token)
}

// Token returns the currently installed bearer token.
func (c *MemoClient) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Register creates (or reactivates) the session for a username and installs
// the returned token on the client.
func (c *MemoClient) Register(ctx context.Context, username string) (models.AuthResponse, error) {
	var auth models.AuthResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.RegisterRequest{Username: username}).
		SetResult(&auth).
		Post("/api/auth/register")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	c.SetToken(auth.Token)
	return auth, nil
}

// Verify validates the given token server-side, which also renews it, and
// installs it on the client on success.
func (c *MemoClient) Verify(ctx context.Context, token string) (models.AuthResponse, error) {
	var auth models.AuthResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.TokenRequest{Token: token}).
		SetResult(&auth).
		Post("/api/auth/verify-token")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("verify request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	c.SetToken(auth.Token)
	return auth, nil
}

// Logout revokes the installed token and clears it from the client.
func (c *MemoClient) Logout(ctx context.Context) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.TokenRequest{Token: c.Token()}).
		Post("/api/auth/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	c.SetToken("")
	return nil
}

// ListConcepts fetches every concept of the authenticated tenant. A
// non-empty keyword switches the server to search mode.
func (c *MemoClient) ListConcepts(ctx context.Context, keyword string) ([]models.Concept, error) {
	var concepts []models.Concept

	req := c.authedRequest(ctx).SetResult(&concepts)
	if keyword != "" {
		req.SetQueryParam("query", keyword)
	}

	resp, err := req.Get("/api/concepts")
	if err != nil {
		return nil, fmt.Errorf("list concepts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return concepts, nil
}

// GetConcept fetches one concept aggregate by id.
func (c *MemoClient) GetConcept(ctx context.Context, conceptID int64) (models.Concept, error) {
	var concept models.Concept

	resp, err := c.authedRequest(ctx).
		SetResult(&concept).
		Get(fmt.Sprintf("/api/concepts/%d", conceptID))
	if err != nil {
		return models.Concept{}, fmt.Errorf("get concept request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Concept{}, err
	}

	return concept, nil
}

// CreateConcept creates a concept for the authenticated tenant.
func (c *MemoClient) CreateConcept(ctx context.Context, name, notes string) (models.Concept, error) {
	var concept models.Concept

	resp, err := c.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ConceptRequest{Name: name, Notes: notes}).
		SetResult(&concept).
		Post("/api/concepts")
	if err != nil {
		return models.Concept{}, fmt.Errorf("create concept request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Concept{}, err
	}

	return concept, nil
}

// AddWord attaches a word to an owned concept.
func (c *MemoClient) AddWord(ctx context.Context, conceptID int64, word models.WordRequest) (models.Word, error) {
	var created models.Word

	resp, err := c.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(word).
		SetResult(&created).
		Post(fmt.Sprintf("/api/concepts/%d/words", conceptID))
	if err != nil {
		return models.Word{}, fmt.Errorf("add word request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Word{}, err
	}

	return created, nil
}

// DeleteConcept removes an owned concept and its words.
func (c *MemoClient) DeleteConcept(ctx context.Context, conceptID int64) error {
	resp, err := c.authedRequest(ctx).
		Delete(fmt.Sprintf("/api/concepts/%d", conceptID))
	if err != nil {
		return fmt.Errorf("delete concept request: %w", err)
	}

	return mapHTTPError(resp)
}

func (c *MemoClient) authedRequest(ctx context.Context) *resty.Request {
	return c.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+c.Token())
}

func mapHTTPError(resp *resty.Response) error {
	switch {
	case resp.StatusCode() < 300:
		return nil
	case resp.StatusCode() == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, strings.TrimSpace(resp.String()))
	case resp.StatusCode() == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, strings.TrimSpace(resp.String()))
	case resp.StatusCode() < 500:
		return fmt.Errorf("%w: %s", ErrBadRequest, strings.TrimSpace(resp.String()))
	default:
		return fmt.Errorf("server error: status %d", resp.StatusCode())
	}
}
