// Package mocks provides mock implementations of token use cases for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	tokenDomain "github.com/allisson/tokengen/internal/token/domain"
)

// MockTokenUseCase is a mock implementation of TokenUseCase for testing.
type MockTokenUseCase struct {
	mock.Mock
}

// GenerateToken mocks the GenerateToken method of TokenUseCase.
func (m *MockTokenUseCase) GenerateToken(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

// CreateTokens mocks the CreateTokens method of TokenUseCase.
func (m *MockTokenUseCase) CreateTokens(
	ctx context.Context,
	text string,
) (*tokenDomain.TokenResult, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tokenDomain.TokenResult), args.Error(1)
}
