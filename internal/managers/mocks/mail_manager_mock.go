package mocks

import "github.com/stretchr/testify/mock"

type MockMailManager struct {
	mock.Mock
}

func (m *MockMailManager) SendVerificationMail(email, token string) error {
	args := m.Called(email, token)
	return args.Error(0)
}
