// Package usecase contains hand-written test doubles for the application
// usecase interfaces, built on testify's mock package.
package usecase

import (
	"context"
	"testing"

	appusecase "linkup/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAccountUsecase is a mock implementation of usecase.AccountUsecase.
type MockAccountUsecase struct {
	mock.Mock
}

// NewMockAccountUsecase creates a mock wired to the test lifecycle.
func NewMockAccountUsecase(t *testing.T) *MockAccountUsecase {
	m := &MockAccountUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAccountUsecase) Register(ctx context.Context, input *appusecase.RegisterInput) (*appusecase.RegisterOutput, error) {
	args := m.Called(ctx, input)
	output, _ := args.Get(0).(*appusecase.RegisterOutput)

	return output, args.Error(1)
}

func (m *MockAccountUsecase) Login(ctx context.Context, input *appusecase.LoginInput) (*appusecase.LoginOutput, error) {
	args := m.Called(ctx, input)
	output, _ := args.Get(0).(*appusecase.LoginOutput)

	return output, args.Error(1)
}

func (m *MockAccountUsecase) Authorize(ctx context.Context, rawToken string) (*appusecase.Identity, error) {
	args := m.Called(ctx, rawToken)
	identity, _ := args.Get(0).(*appusecase.Identity)

	return identity, args.Error(1)
}

func (m *MockAccountUsecase) DeleteAccount(ctx context.Context, userID uuid.UUID) (*appusecase.DeleteAccountOutput, error) {
	args := m.Called(ctx, userID)
	output, _ := args.Get(0).(*appusecase.DeleteAccountOutput)

	return output, args.Error(1)
}
