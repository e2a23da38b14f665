package engine

import (
	"order-validator/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockDirectory is a mock implementation of directory.Directory for testing.
type MockDirectory struct {
	mock.Mock
}

func (m *MockDirectory) Lookup(customerID string) domain.CustomerRecord {
	args := m.Called(customerID)
	return args.Get(0).(domain.CustomerRecord)
}
