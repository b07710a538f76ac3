package mocks

import (
	"github.com/stretchr/testify/mock"

	"account-service/internal/schemas"
)

// MockJWTManager is a mock of the JWTManager.
// It is used to simulate token operations in tests.
type MockJWTManager struct {
	mock.Mock
}

// GenerateToken returns a mock token string and an optional error.
func (m *MockJWTManager) GenerateToken(userId string, purpose schemas.TokenPurpose) (string, error) {
	args := m.Called(userId, purpose)
	return args.String(0), args.Error(1)
}

// VerifyToken returns a mock user id and validity flag.
func (m *MockJWTManager) VerifyToken(tokenString string) (string, bool) {
	args := m.Called(tokenString)
	return args.String(0), args.Bool(1)
}
