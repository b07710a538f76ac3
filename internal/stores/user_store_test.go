package stores

import (
	"context"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"account-service/internal/schemas"
)

func newUserStoreFixture(t *testing.T) (UserStore, pgxmock.PgxPoolIface) {
	t.Helper()

	poolMock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(poolMock.Close)

	return NewUserStore(poolMock), poolMock
}

func TestUserExistsByEmail(t *testing.T) {
	store, poolMock := newUserStoreFixture(t)

	poolMock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)")).
		WithArgs("a@x.com").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := store.UserExistsByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, poolMock.ExpectationsWereMet())
}

func TestUserExistsByUsernameIsIdempotent(t *testing.T) {
	store, poolMock := newUserStoreFixture(t)

	for i := 0; i < 2; i++ {
		poolMock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)")).
			WithArgs("alice").
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	}

	first, err := store.UserExistsByUsername(context.Background(), "alice")
	require.NoError(t, err)
	second, err := store.UserExistsByUsername(context.Background(), "alice")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.NoError(t, poolMock.ExpectationsWereMet())
}

func TestGetUserByEmail(t *testing.T) {
	store, poolMock := newUserStoreFixture(t)

	rows := pgxmock.NewRows([]string{"user_id", "username", "email", "password", "verified"}).
		AddRow("user-1", "alice", "a@x.com", "hashed", false)
	poolMock.ExpectQuery(regexp.QuoteMeta("SELECT user_id, username, email, password, verified FROM users WHERE email = $1")).
		WithArgs("a@x.com").
		WillReturnRows(rows)

	user, err := store.GetUserByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "user-1", user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.False(t, user.Verified)
	assert.NoError(t, poolMock.ExpectationsWereMet())
}

func TestGetUserByEmailAbsentIsNotAnError(t *testing.T) {
	store, poolMock := newUserStoreFixture(t)

	poolMock.ExpectQuery(regexp.QuoteMeta("SELECT user_id, username, email, password, verified FROM users WHERE email = $1")).
		WithArgs("missing@x.com").
		WillReturnError(pgx.ErrNoRows)

	user, err := store.GetUserByEmail(context.Background(), "missing@x.com")
	require.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, poolMock.ExpectationsWereMet())
}

func TestCreateAssignsId(t *testing.T) {
	store, poolMock := newUserStoreFixture(t)

	poolMock.ExpectExec(regexp.QuoteMeta("INSERT INTO users (user_id, username, email, password, verified) VALUES ($1, $2, $3, $4, $5)")).
		WithArgs(pgxmock.AnyArg(), "alice", "a@x.com", "hashed", false).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	created, err := store.Create(context.Background(), &schemas.User{Username: "alice", Email: "a@x.com", Password: "hashed"})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "alice", created.Username)
	assert.NoError(t, poolMock.ExpectationsWereMet())
}

func TestCreateSurfacesUniqueViolation(t *testing.T) {
	store, poolMock := newUserStoreFixture(t)

	poolMock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs(pgxmock.AnyArg(), "alice", "a@x.com", "hashed", false).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	created, err := store.Create(context.Background(), &schemas.User{Username: "alice", Email: "a@x.com", Password: "hashed"})
	assert.Nil(t, created)
	assert.ErrorIs(t, err, ErrUserExists)
	assert.NoError(t, poolMock.ExpectationsWereMet())
}

func TestUpdateSetsVerifiedFlag(t *testing.T) {
	store, poolMock := newUserStoreFixture(t)

	poolMock.ExpectExec(regexp.QuoteMeta("UPDATE users SET verified = $1 WHERE user_id = $2")).
		WithArgs(true, "user-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	verified := true
	err := store.Update(context.Background(), "user-1", schemas.UserUpdate{Verified: &verified})
	require.NoError(t, err)
	assert.NoError(t, poolMock.ExpectationsWereMet())
}

func TestUpdateWithoutFieldsIsANoOp(t *testing.T) {
	store, poolMock := newUserStoreFixture(t)

	err := store.Update(context.Background(), "user-1", schemas.UserUpdate{})
	require.NoError(t, err)
	assert.NoError(t, poolMock.ExpectationsWereMet())
}
