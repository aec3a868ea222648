package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/multilang/concept-memo/internal/config"
	"github.com/multilang/concept-memo/internal/logger"
	"github.com/multilang/concept-memo/internal/store"
	"github.com/multilang/concept-memo/internal/utils"
	"github.com/multilang/concept-memo/models"
)

const (
	minUsernameLength = 3
	maxUsernameLength = 50

	// tokenIssueAttempts bounds the retry loop around the users.token
	// unique constraint. A collision of two 256-bit random tokens is
	// practically impossible, so one retry would already be generous.
	tokenIssueAttempts = 3

	// logoutBackdate is how far into the past Invalidate moves the expiry.
	logoutBackdate = 24 * time.Hour
)

// sessionService is the concrete implementation of [SessionService].
//
// Sessions are a small per-user state machine: Active(expiry) slides to
// Active(new expiry) on every verification, drops to Expired on logout or
// timeout, and returns to Active(new token) when the username re-registers
// after expiry. All transitions are delegated to conditional updates in the
// user repository so concurrent callers cannot interleave a stale check.
type sessionService struct {
	// userRepository is the data-access layer owning the users table.
	userRepository store.UserRepository

	// tokenTTL is how long a session stays valid after issuance or renewal.
	tokenTTL time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewSessionService constructs a [SessionService] wired to the given
// UserRepository and configured with the session token lifetime from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewSessionService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) SessionService {
	return &sessionService{
		userRepository: userRepository,
		tokenTTL:       cfg.TokenTTL,
		logger:         logger,
	}
}

// Register creates a session for the given username.
//
// The username is trimmed and must be 3-50 characters long afterwards,
// otherwise ErrInvalidUsername. When a live user with this username exists
// the call fails with store.ErrUsernameTaken. When the existing user is
// expired, the record is reactivated in place with a fresh token and a new
// expiry, preserving identity continuity. Otherwise a new user row is
// inserted.
//
// Registration races for the same username are decided by the store's
// unique constraint; the loser observes store.ErrUsernameTaken.
func (s *sessionService) Register(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	username = strings.TrimSpace(username)
	if length := utf8.RuneCountInString(username); length < minUsernameLength || length > maxUsernameLength {
		log.Error().Str("username", username).Msg("invalid username length")
		return models.User{}, ErrInvalidUsername
	}

	expiresAt := time.Now().Add(s.tokenTTL)

	existing, err := s.userRepository.FindUserByUsername(ctx, username)
	switch {
	case err == nil:
		if !existing.Expired(time.Now()) {
			return models.User{}, store.ErrUsernameTaken
		}
		return s.reactivate(ctx, username, expiresAt)

	case errors.Is(err, store.ErrUserNotFound):
		return s.createFresh(ctx, username, expiresAt)

	default:
		log.Err(err).Str("username", username).Msg("user lookup by username failed")
		return models.User{}, fmt.Errorf("user lookup by username failed: %w", err)
	}
}

// VerifyAndRenew resolves a bearer token to its user and slides the expiry
// forward by the configured lifetime.
//
// The renewal is a single conditional update; when it matches no row, a
// follow-up lookup distinguishes an unknown token (ErrInvalidToken) from an
// expired session (ErrTokenExpired).
func (s *sessionService) VerifyAndRenew(ctx context.Context, token string) (models.User, error) {
	log := logger.FromContext(ctx)

	if token == "" {
		return models.User{}, ErrInvalidToken
	}

	user, err := s.userRepository.RenewUserByToken(ctx, token, time.Now().Add(s.tokenTTL))
	if err == nil {
		return user, nil
	}

	if !errors.Is(err, store.ErrUserNotFound) {
		log.Err(err).Msg("session renewal failed")
		return models.User{}, fmt.Errorf("session renewal failed: %w", err)
	}

	if _, findErr := s.userRepository.FindUserByToken(ctx, token); findErr != nil {
		if errors.Is(findErr, store.ErrUserNotFound) {
			return models.User{}, ErrInvalidToken
		}
		log.Err(findErr).Msg("user lookup by token failed")
		return models.User{}, fmt.Errorf("user lookup by token failed: %w", findErr)
	}

	// The row exists but the conditional renewal skipped it, so the
	// session has run out.
	return models.User{}, ErrTokenExpired
}

// Invalidate soft-revokes the session holding the token by back-dating its
// expiry. Unknown tokens are ignored, which keeps repeated logouts safe.
func (s *sessionService) Invalidate(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	return s.userRepository.ExpireUserByToken(ctx, token, time.Now().Add(-logoutBackdate))
}

// reactivate rotates the token of an expired user row in place. A lost
// race against a concurrent registration surfaces as store.ErrUsernameTaken.
func (s *sessionService) reactivate(ctx context.Context, username string, expiresAt time.Time) (models.User, error) {
	log := logger.FromContext(ctx)

	for attempt := 0; attempt < tokenIssueAttempts; attempt++ {
		token, err := utils.GenerateToken()
		if err != nil {
			return models.User{}, fmt.Errorf("%w: %w", ErrTokenGenerationFailed, err)
		}

		user, err := s.userRepository.ReactivateUser(ctx, username, token, expiresAt)
		switch {
		case err == nil:
			return user, nil
		case errors.Is(err, store.ErrTokenCollision):
			continue
		case errors.Is(err, store.ErrUserNotFound):
			return models.User{}, store.ErrUsernameTaken
		default:
			log.Err(err).Str("username", username).Msg("user reactivation failed")
			return models.User{}, fmt.Errorf("user reactivation failed: %w", err)
		}
	}

	return models.User{}, ErrTokenGenerationFailed
}

// createFresh inserts a new user row with a newly generated token.
func (s *sessionService) createFresh(ctx context.Context, username string, expiresAt time.Time) (models.User, error) {
	log := logger.FromContext(ctx)

	for attempt := 0; attempt < tokenIssueAttempts; attempt++ {
		token, err := utils.GenerateToken()
		if err != nil {
			return models.User{}, fmt.Errorf("%w: %w", ErrTokenGenerationFailed, err)
		}

		user, err := s.userRepository.CreateUser(ctx, models.User{
			Username:  username,
			Token:     token,
			ExpiresAt: expiresAt,
		})
		switch {
		case err == nil:
			return user, nil
		case errors.Is(err, store.ErrTokenCollision):
			continue
		case errors.Is(err, store.ErrUsernameTaken):
			return models.User{}, store.ErrUsernameTaken
		default:
			log.Err(err).Str("username", username).Msg("user creation ended with error")
			return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
		}
	}

	return models.User{}, ErrTokenGenerationFailed
}
