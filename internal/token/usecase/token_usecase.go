package usecase

import (
	"context"
	"strings"

	apperrors "github.com/allisson/tokengen/internal/errors"
	tokenDomain "github.com/allisson/tokengen/internal/token/domain"
	tokenService "github.com/allisson/tokengen/internal/token/service"
)

// tokenUseCase implements TokenUseCase using a token generator and a hash service.
// It holds no mutable state, so it is safe for concurrent use.
type tokenUseCase struct {
	generator tokenService.TokenGenerator
	hasher    HashService
}

// NewTokenUseCase creates a new token use case with the given generator and hasher.
func NewTokenUseCase(generator tokenService.TokenGenerator, hasher HashService) TokenUseCase {
	return &tokenUseCase{
		generator: generator,
		hasher:    hasher,
	}
}

// GenerateToken produces a single random token.
func (u *tokenUseCase) GenerateToken(ctx context.Context) (string, error) {
	token, err := u.generator.Generate()
	if err != nil {
		return "", apperrors.Wrap(err, "failed to generate token")
	}
	return token, nil
}

// CreateTokens computes the checksum of text and generates one token per word.
// Tokens carry no relationship to the words they correspond to; only the word
// count drives the token count.
func (u *tokenUseCase) CreateTokens(ctx context.Context, text string) (*tokenDomain.TokenResult, error) {
	words := strings.Fields(text)

	// Non-nil so an empty result serializes as [] instead of null
	tokens := make([]string, 0, len(words))
	for range words {
		token, err := u.generator.Generate()
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to generate token")
		}
		tokens = append(tokens, token)
	}

	return &tokenDomain.TokenResult{
		Checksum: u.hasher.Hash([]byte(text)),
		Tokens:   tokens,
	}, nil
}
