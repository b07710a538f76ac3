package stores

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	log "github.com/sirupsen/logrus"

	"account-service/internal/interfaces"
	"account-service/internal/schemas"
)

// ErrNotImplemented is returned by persistence operations that are declared in the
// contract but not backed by an implementation. Callers must not depend on them.
var ErrNotImplemented = errors.New("not implemented")

// TokenStore outlines the persistence contract for verification token records.
type TokenStore interface {
	Create(ctx context.Context, token *schemas.VerificationToken) error
	Find(ctx context.Context, tokenValue, userId string) (*schemas.VerificationToken, error)
	Delete(ctx context.Context, tokenValue string) (bool, error)
	DeleteAllForUser(ctx context.Context, userId string, purpose schemas.TokenPurpose) error
}

// PostgresTokenStore is a concrete implementation of the TokenStore interface on top of a pgx connection pool.
type PostgresTokenStore struct {
	pool interfaces.PgxPoolIface
}

// NewTokenStore creates a new PostgresTokenStore with the provided connection pool.
func NewTokenStore(pool interfaces.PgxPoolIface) TokenStore {
	log.Info("Initializing token store")
	return &PostgresTokenStore{pool: pool}
}

// Create persists a new verification token record. No uniqueness is enforced, so
// duplicate active records for the same user and purpose are a known possible state.
func (ts *PostgresTokenStore) Create(ctx context.Context, token *schemas.VerificationToken) error {
	queryString := "INSERT INTO verification_tokens (token_id, user_id, token, expires_at, purpose) VALUES ($1, $2, $3, $4, $5)"
	if _, err := ts.pool.Exec(ctx, queryString, uuid.New().String(), token.UserID, token.Token, token.ExpiresAt, string(token.Purpose)); err != nil {
		return err
	}

	return nil
}

// Find returns the token record matching the token value and user id, or nil if none exists.
func (ts *PostgresTokenStore) Find(ctx context.Context, tokenValue, userId string) (*schemas.VerificationToken, error) {
	token := &schemas.VerificationToken{}

	queryString := "SELECT user_id, token, expires_at, purpose FROM verification_tokens WHERE token = $1 AND user_id = $2"
	row := ts.pool.QueryRow(ctx, queryString, tokenValue, userId)
	if err := row.Scan(&token.UserID, &token.Token, &token.ExpiresAt, &token.Purpose); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return token, nil
}

// Delete removes the token record with the given token value and reports whether
// a record was actually removed. Concurrent deletions of the same token race here,
// at most one of them observes true.
func (ts *PostgresTokenStore) Delete(ctx context.Context, tokenValue string) (bool, error) {
	queryString := "DELETE FROM verification_tokens WHERE token = $1"
	commandTag, err := ts.pool.Exec(ctx, queryString, tokenValue)
	if err != nil {
		return false, err
	}

	return commandTag.RowsAffected() > 0, nil
}

// DeleteAllForUser is declared in the persistence contract but intentionally unimplemented.
func (ts *PostgresTokenStore) DeleteAllForUser(_ context.Context, _ string, _ schemas.TokenPurpose) error {
	return ErrNotImplemented
}
