package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"account-service/internal/managers"
	managermocks "account-service/internal/managers/mocks"
	"account-service/internal/schemas"
	"account-service/internal/stores"
	storemocks "account-service/internal/stores/mocks"
)

type registerFixture struct {
	useCase   *RegisterUseCase
	userStore *storemocks.MockUserStore
	tokens    *storemocks.MockTokenStore
	mail      *managermocks.MockMailManager
	jwt       managers.JWTMgr
}

func newRegisterFixture(t *testing.T) *registerFixture {
	t.Helper()

	jwtMgr, err := managers.NewJWTManager("test-secret")
	require.NoError(t, err)

	userStore := &storemocks.MockUserStore{}
	tokens := &storemocks.MockTokenStore{}
	mail := &managermocks.MockMailManager{}

	return &registerFixture{
		useCase:   NewRegisterUseCase(userStore, tokens, managers.NewPasswordHasher(), jwtMgr, mail),
		userStore: userStore,
		tokens:    tokens,
		mail:      mail,
		jwt:       jwtMgr,
	}
}

func (f *registerFixture) expectNoExistingUser() {
	f.userStore.On("UserExistsByUsername", mock.Anything, "alice").Return(false, nil)
	f.userStore.On("UserExistsByEmail", mock.Anything, "a@x.com").Return(false, nil)
}

func TestRegisterSuccess(t *testing.T) {
	f := newRegisterFixture(t)
	f.expectNoExistingUser()

	f.userStore.On("Create", mock.Anything, mock.MatchedBy(func(user *schemas.User) bool {
		// The plaintext password must never reach the store.
		return user.Username == "alice" && user.Email == "a@x.com" &&
			user.Password != "test.Password123" && !user.Verified
	})).Return(&schemas.User{ID: "user-1", Username: "alice", Email: "a@x.com"}, nil)

	f.tokens.On("Create", mock.Anything, mock.MatchedBy(func(token *schemas.VerificationToken) bool {
		return token.UserID == "user-1" &&
			token.Purpose == schemas.TokenPurposeEmailVerification &&
			time.Until(token.ExpiresAt) > 6*24*time.Hour
	})).Return(nil)

	f.mail.On("SendVerificationMail", "a@x.com", mock.AnythingOfType("string")).Return(nil)

	result, err := f.useCase.Execute(context.Background(), "a@x.com", "alice", "test.Password123")
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "User created successfully", result.Message)

	// The mailed token is the minted verification token for the new user.
	token := f.mail.Calls[0].Arguments.String(1)
	userId, valid := f.jwt.VerifyToken(token)
	assert.True(t, valid)
	assert.Equal(t, "user-1", userId)

	f.userStore.AssertExpectations(t)
	f.tokens.AssertExpectations(t)
	f.mail.AssertExpectations(t)
}

func TestRegisterExistingUsername(t *testing.T) {
	f := newRegisterFixture(t)
	f.userStore.On("UserExistsByUsername", mock.Anything, "alice").Return(true, nil)
	f.userStore.On("UserExistsByEmail", mock.Anything, "b@x.com").Return(false, nil)

	result, err := f.useCase.Execute(context.Background(), "b@x.com", "alice", "test.Password123")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "User already exists", result.Message)

	f.userStore.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterExistingEmail(t *testing.T) {
	f := newRegisterFixture(t)
	f.userStore.On("UserExistsByUsername", mock.Anything, "bob").Return(false, nil)
	f.userStore.On("UserExistsByEmail", mock.Anything, "a@x.com").Return(true, nil)

	result, err := f.useCase.Execute(context.Background(), "a@x.com", "bob", "test.Password123")
	require.NoError(t, err)
	assert.False(t, result.Success)
	// The message does not disclose which field collided.
	assert.Equal(t, "User already exists", result.Message)
}

func TestRegisterRaceLostAtCreate(t *testing.T) {
	f := newRegisterFixture(t)
	f.expectNoExistingUser()

	// Both concurrent registrations passed the pre-check, this one lost the
	// insert race. The store's constraint violation is the canonical signal.
	f.userStore.On("Create", mock.Anything, mock.Anything).Return(nil, stores.ErrUserExists)

	result, err := f.useCase.Execute(context.Background(), "a@x.com", "alice", "test.Password123")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "User already exists", result.Message)

	f.tokens.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterMissingIdFromStore(t *testing.T) {
	f := newRegisterFixture(t)
	f.expectNoExistingUser()

	f.userStore.On("Create", mock.Anything, mock.Anything).Return(&schemas.User{Username: "alice", Email: "a@x.com"}, nil)

	result, err := f.useCase.Execute(context.Background(), "a@x.com", "alice", "test.Password123")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "An error occured while creating user", result.Message)
}

func TestRegisterSucceedsDespiteMailFailure(t *testing.T) {
	f := newRegisterFixture(t)
	f.expectNoExistingUser()

	f.userStore.On("Create", mock.Anything, mock.Anything).Return(&schemas.User{ID: "user-1", Username: "alice", Email: "a@x.com"}, nil)
	f.tokens.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.mail.On("SendVerificationMail", "a@x.com", mock.AnythingOfType("string")).Return(errors.New("smtp unreachable"))

	result, err := f.useCase.Execute(context.Background(), "a@x.com", "alice", "test.Password123")
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "User created successfully", result.Message)
}

func TestRegisterStoreFaultPropagates(t *testing.T) {
	f := newRegisterFixture(t)
	storeErr := errors.New("connection refused")
	f.userStore.On("UserExistsByUsername", mock.Anything, "alice").Return(false, storeErr)
	f.userStore.On("UserExistsByEmail", mock.Anything, "a@x.com").Return(false, nil)

	result, err := f.useCase.Execute(context.Background(), "a@x.com", "alice", "test.Password123")
	assert.ErrorIs(t, err, storeErr)
	assert.False(t, result.Success)
}
