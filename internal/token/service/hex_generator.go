package service

import (
	"encoding/hex"
	"io"

	apperrors "github.com/allisson/tokengen/internal/errors"
	tokenDomain "github.com/allisson/tokengen/internal/token/domain"
)

// Token size bounds in random bytes. The minimum keeps tokens hard to guess,
// the maximum keeps responses reasonably sized.
const (
	minTokenSize = 8
	maxTokenSize = 64
)

type hexGenerator struct {
	random io.Reader
	size   int
}

// NewHexGenerator creates a token generator that hex-encodes random bytes read
// from the provided source. A token is twice the size in characters (e.g.,
// size 16 produces 32 hex chars). The random source should be crypto/rand.Reader
// in production; tests may inject a deterministic reader.
func NewHexGenerator(random io.Reader, size int) (TokenGenerator, error) {
	if size < minTokenSize || size > maxTokenSize {
		return nil, tokenDomain.ErrInvalidTokenSize
	}
	return &hexGenerator{random: random, size: size}, nil
}

// Generate reads size random bytes and returns them hex-encoded.
func (g *hexGenerator) Generate() (string, error) {
	buf := make([]byte, g.size)
	if _, err := io.ReadFull(g.random, buf); err != nil {
		return "", apperrors.Wrap(tokenDomain.ErrEntropySourceUnavailable, err.Error())
	}
	return hex.EncodeToString(buf), nil
}
