// Package mocks provides testify mocks for the persistence contracts.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"account-service/internal/schemas"
)

// MockUserStore is a mock of the UserStore used to simulate persistence in use-case tests.
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) GetUserByEmail(ctx context.Context, email string) (*schemas.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*schemas.User)
	return user, args.Error(1)
}

func (m *MockUserStore) GetUserByUsername(ctx context.Context, username string) (*schemas.User, error) {
	args := m.Called(ctx, username)
	user, _ := args.Get(0).(*schemas.User)
	return user, args.Error(1)
}

func (m *MockUserStore) UserExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserStore) UserExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserStore) Create(ctx context.Context, user *schemas.User) (*schemas.User, error) {
	args := m.Called(ctx, user)
	created, _ := args.Get(0).(*schemas.User)
	return created, args.Error(1)
}

func (m *MockUserStore) Update(ctx context.Context, userId string, update schemas.UserUpdate) error {
	args := m.Called(ctx, userId, update)
	return args.Error(0)
}
