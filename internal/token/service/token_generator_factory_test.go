package service

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tokenDomain "github.com/allisson/tokengen/internal/token/domain"
)

func TestNewTokenGenerator(t *testing.T) {
	t.Run("Success_HexFormat", func(t *testing.T) {
		gen, err := NewTokenGenerator(tokenDomain.FormatHex, rand.Reader, 16)
		require.NoError(t, err)

		token, err := gen.Generate()
		require.NoError(t, err)
		assert.Len(t, token, 32)
	})

	t.Run("Success_UUIDFormat", func(t *testing.T) {
		gen, err := NewTokenGenerator(tokenDomain.FormatUUID, rand.Reader, 16)
		require.NoError(t, err)

		token, err := gen.Generate()
		require.NoError(t, err)
		assert.Len(t, token, 36)
	})

	t.Run("Error_UnknownFormat", func(t *testing.T) {
		gen, err := NewTokenGenerator(tokenDomain.FormatType("base64"), rand.Reader, 16)
		assert.Nil(t, gen)
		assert.ErrorIs(t, err, tokenDomain.ErrInvalidFormatType)
	})

	t.Run("Error_InvalidHexSize", func(t *testing.T) {
		gen, err := NewTokenGenerator(tokenDomain.FormatHex, rand.Reader, 0)
		assert.Nil(t, gen)
		assert.ErrorIs(t, err, tokenDomain.ErrInvalidTokenSize)
	})
}
