package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"account-service/internal/schemas"
)

// MockTokenStore is a mock of the TokenStore used to simulate persistence in use-case tests.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) Create(ctx context.Context, token *schemas.VerificationToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockTokenStore) Find(ctx context.Context, tokenValue, userId string) (*schemas.VerificationToken, error) {
	args := m.Called(ctx, tokenValue, userId)
	token, _ := args.Get(0).(*schemas.VerificationToken)
	return token, args.Error(1)
}

func (m *MockTokenStore) Delete(ctx context.Context, tokenValue string) (bool, error) {
	args := m.Called(ctx, tokenValue)
	return args.Bool(0), args.Error(1)
}

func (m *MockTokenStore) DeleteAllForUser(ctx context.Context, userId string, purpose schemas.TokenPurpose) error {
	args := m.Called(ctx, userId, purpose)
	return args.Error(0)
}
