package service

import (
	"testing"
	"time"

	domainsvc "linkup/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockTokenService is a mock implementation of service.TokenService.
type MockTokenService struct {
	mock.Mock
}

// NewMockTokenService creates a mock wired to the test lifecycle.
func NewMockTokenService(t *testing.T) *MockTokenService {
	m := &MockTokenService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTokenService) Issue(userID uuid.UUID, username string) (string, error) {
	args := m.Called(userID, username)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Verify(tokenString string) (*domainsvc.Claims, error) {
	args := m.Called(tokenString)
	claims, _ := args.Get(0).(*domainsvc.Claims)

	return claims, args.Error(1)
}

func (m *MockTokenService) AccessTokenTTL() time.Duration {
	args := m.Called()
	ttl, _ := args.Get(0).(time.Duration)

	return ttl
}
