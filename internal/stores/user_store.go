// Package stores provides the persistence contracts consumed by the use cases,
// together with their PostgreSQL adapters.
package stores

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	log "github.com/sirupsen/logrus"

	"account-service/internal/interfaces"
	"account-service/internal/schemas"
)

// ErrUserExists signals that the uniqueness constraint on username or email was violated.
// The store-level existence pre-check is racy, so this is the canonical already-exists signal.
var ErrUserExists = errors.New("user already exists")

// uniqueViolation is the PostgreSQL error code for a unique constraint violation.
const uniqueViolation = "23505"

// UserStore outlines the persistence contract for user records.
// Absence of a record is a normal outcome and reported as a nil user without error.
type UserStore interface {
	GetUserByEmail(ctx context.Context, email string) (*schemas.User, error)
	GetUserByUsername(ctx context.Context, username string) (*schemas.User, error)
	UserExistsByEmail(ctx context.Context, email string) (bool, error)
	UserExistsByUsername(ctx context.Context, username string) (bool, error)
	Create(ctx context.Context, user *schemas.User) (*schemas.User, error)
	Update(ctx context.Context, userId string, update schemas.UserUpdate) error
}

// PostgresUserStore is a concrete implementation of the UserStore interface on top of a pgx connection pool.
type PostgresUserStore struct {
	pool interfaces.PgxPoolIface
}

// NewUserStore creates a new PostgresUserStore with the provided connection pool.
func NewUserStore(pool interfaces.PgxPoolIface) UserStore {
	log.Info("Initializing user store")
	return &PostgresUserStore{pool: pool}
}

// GetUserByEmail returns the user with the given email, or nil if no such user exists.
func (us *PostgresUserStore) GetUserByEmail(ctx context.Context, email string) (*schemas.User, error) {
	queryString := "SELECT user_id, username, email, password, verified FROM users WHERE email = $1"
	return us.getUser(ctx, queryString, email)
}

// GetUserByUsername returns the user with the given username, or nil if no such user exists.
func (us *PostgresUserStore) GetUserByUsername(ctx context.Context, username string) (*schemas.User, error) {
	queryString := "SELECT user_id, username, email, password, verified FROM users WHERE username = $1"
	return us.getUser(ctx, queryString, username)
}

func (us *PostgresUserStore) getUser(ctx context.Context, queryString, arg string) (*schemas.User, error) {
	user := &schemas.User{}
	row := us.pool.QueryRow(ctx, queryString, arg)
	if err := row.Scan(&user.ID, &user.Username, &user.Email, &user.Password, &user.Verified); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return user, nil
}

// UserExistsByEmail reports whether a user with the given email exists.
func (us *PostgresUserStore) UserExistsByEmail(ctx context.Context, email string) (bool, error) {
	queryString := "SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)"
	return us.exists(ctx, queryString, email)
}

// UserExistsByUsername reports whether a user with the given username exists.
func (us *PostgresUserStore) UserExistsByUsername(ctx context.Context, username string) (bool, error) {
	queryString := "SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)"
	return us.exists(ctx, queryString, username)
}

func (us *PostgresUserStore) exists(ctx context.Context, queryString, arg string) (bool, error) {
	var exists bool
	row := us.pool.QueryRow(ctx, queryString, arg)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

// Create persists a new user and returns the persisted entity with its assigned id.
// A violation of the unique constraints on username or email is reported as ErrUserExists.
func (us *PostgresUserStore) Create(ctx context.Context, user *schemas.User) (*schemas.User, error) {
	userId := uuid.New().String()

	queryString := "INSERT INTO users (user_id, username, email, password, verified) VALUES ($1, $2, $3, $4, $5)"
	if _, err := us.pool.Exec(ctx, queryString, userId, user.Username, user.Email, user.Password, user.Verified); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, ErrUserExists
		}
		return nil, err
	}

	created := *user
	created.ID = userId
	return &created, nil
}

// Update applies a partial update to the user with the given id. Nil fields are left untouched.
func (us *PostgresUserStore) Update(ctx context.Context, userId string, update schemas.UserUpdate) error {
	if update.Verified == nil {
		return nil
	}

	queryString := "UPDATE users SET verified = $1 WHERE user_id = $2"
	if _, err := us.pool.Exec(ctx, queryString, *update.Verified, userId); err != nil {
		return err
	}

	return nil
}
