package service

import (
	"io"

	tokenDomain "github.com/allisson/tokengen/internal/token/domain"
)

// NewTokenGenerator creates a token generator for the specified format.
// The random source and size only apply to the hex format.
func NewTokenGenerator(
	formatType tokenDomain.FormatType,
	random io.Reader,
	size int,
) (TokenGenerator, error) {
	switch formatType {
	case tokenDomain.FormatHex:
		return NewHexGenerator(random, size)
	case tokenDomain.FormatUUID:
		return NewUUIDGenerator(), nil
	default:
		return nil, tokenDomain.ErrInvalidFormatType
	}
}
