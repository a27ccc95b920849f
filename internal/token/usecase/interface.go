// Package usecase implements the token generation and text checksum operations.
package usecase

import (
	"context"

	tokenDomain "github.com/allisson/tokengen/internal/token/domain"
)

// TokenUseCase defines the interface for token operations.
type TokenUseCase interface {
	// GenerateToken produces a single random token.
	GenerateToken(ctx context.Context) (string, error)

	// CreateTokens computes the SHA-256 checksum of text and generates one
	// random token per whitespace-delimited word. Empty or whitespace-only
	// text yields zero tokens; the checksum is always computed, including
	// for the empty string.
	CreateTokens(ctx context.Context, text string) (*tokenDomain.TokenResult, error)
}
