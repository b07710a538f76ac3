package mocks

import (
	"github.com/stretchr/testify/mock"

	"account-service/internal/interfaces"
)

// MockDatabaseManager is a mock of the DatabaseManager.
// It hands out whatever pool it was primed with, typically a pgxmock pool.
type MockDatabaseManager struct {
	mock.Mock
}

func (m *MockDatabaseManager) GetPool() interfaces.PgxPoolIface {
	args := m.Called()
	return args.Get(0).(interfaces.PgxPoolIface)
}
