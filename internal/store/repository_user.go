package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"

	"github.com/multilang/concept-memo/internal/logger"
	"github.com/multilang/concept-memo/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
//
// Expiry-sensitive transitions (renewal, reactivation) compare expires_at
// against the database clock inside the UPDATE itself, so the check and the
// write cannot be split by a concurrent caller.
type userRepository struct {
	*DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("UserRepository created")
	return &userRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, createUser, user.Username, user.Token, user.ExpiresAt)

	var created models.User
	if err := row.Scan(&created.UserID, &created.Username, &created.Token, &created.ExpiresAt); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Str("username", user.Username).Msg("error creating user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			if postgresConstraint(err) == "users_token_key" {
				return models.User{}, ErrTokenCollision
			}
			return models.User{}, ErrUsernameTaken
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findUser(ctx, findUserByUsername, username)
}

func (r *userRepository) FindUserByToken(ctx context.Context, token string) (models.User, error) {
	return r.findUser(ctx, findUserByToken, token)
}

func (r *userRepository) findUser(ctx context.Context, query, arg string) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.DB.QueryRowContext(ctx, query, arg)

	if err := row.Scan(&foundUser.UserID, &foundUser.Username, &foundUser.Token, &foundUser.ExpiresAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}

		log.Err(err).Str("func", "*userRepository.findUser").Msg("error scanning user row")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return foundUser, nil
}

func (r *userRepository) ReactivateUser(ctx context.Context, username, token string, expiresAt time.Time) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, reactivateUser, username, token, expiresAt)

	var reactivated models.User
	if err := row.Scan(&reactivated.UserID, &reactivated.Username, &reactivated.Token, &reactivated.ExpiresAt); err != nil {
		// No row means the user is gone or no longer expired: a concurrent
		// registration won the race.
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}

		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.User{}, ErrTokenCollision
		}

		log.Err(err).Str("func", "*userRepository.ReactivateUser").Str("username", username).Msg("error reactivating user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return reactivated, nil
}

func (r *userRepository) RenewUserByToken(ctx context.Context, token string, expiresAt time.Time) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, renewUserByToken, token, expiresAt)

	var renewed models.User
	if err := row.Scan(&renewed.UserID, &renewed.Username, &renewed.Token, &renewed.ExpiresAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}

		log.Err(err).Str("func", "*userRepository.RenewUserByToken").Msg("error renewing session")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return renewed, nil
}

func (r *userRepository) ExpireUserByToken(ctx context.Context, token string, expiresAt time.Time) error {
	log := logger.FromContext(ctx)

	// Deliberately unconditional: expiring an unknown or already expired
	// token is a no-op, which keeps logout idempotent.
	if _, err := r.DB.ExecContext(ctx, expireUserByToken, token, expiresAt); err != nil {
		log.Err(err).Str("func", "*userRepository.ExpireUserByToken").Msg("error expiring session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
