package service

import (
	"github.com/google/uuid"

	apperrors "github.com/allisson/tokengen/internal/errors"
	tokenDomain "github.com/allisson/tokengen/internal/token/domain"
)

type uuidGenerator struct{}

// NewUUIDGenerator creates a token generator that produces UUIDv7 tokens.
func NewUUIDGenerator() TokenGenerator {
	return &uuidGenerator{}
}

// Generate creates a new UUIDv7 token.
func (g *uuidGenerator) Generate() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", apperrors.Wrap(tokenDomain.ErrEntropySourceUnavailable, err.Error())
	}
	return id.String(), nil
}
