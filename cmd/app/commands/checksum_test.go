package commands

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	tokenDomain "github.com/allisson/tokengen/internal/token/domain"
	"github.com/allisson/tokengen/internal/token/usecase/mocks"
)

func TestChecksumText(t *testing.T) {
	ctx := context.Background()

	t.Run("text-output", func(t *testing.T) {
		mockUseCase := &mocks.MockTokenUseCase{}
		mockUseCase.On("CreateTokens", ctx, "hello world").Return(&tokenDomain.TokenResult{
			Checksum: "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9",
			Tokens:   []string{"aaaa", "bbbb"},
		}, nil)

		var out bytes.Buffer
		err := checksumText(ctx, mockUseCase, &out, "hello world", "text")

		require.NoError(t, err)
		require.Contains(t, out.String(), "Checksum: b94d27b9")
		require.Contains(t, out.String(), "Tokens (2):")
		require.Contains(t, out.String(), "aaaa")
		require.Contains(t, out.String(), "bbbb")
		mockUseCase.AssertExpectations(t)
	})

	t.Run("json-output", func(t *testing.T) {
		mockUseCase := &mocks.MockTokenUseCase{}
		mockUseCase.On("CreateTokens", ctx, "hello").Return(&tokenDomain.TokenResult{
			Checksum: "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
			Tokens:   []string{"aaaa"},
		}, nil)

		var out bytes.Buffer
		err := checksumText(ctx, mockUseCase, &out, "hello", "json")

		require.NoError(t, err)
		require.Contains(t, out.String(), `"checksum"`)
		require.Contains(t, out.String(), `"tokens"`)
		require.Contains(t, out.String(), `"aaaa"`)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("empty-text", func(t *testing.T) {
		mockUseCase := &mocks.MockTokenUseCase{}
		mockUseCase.On("CreateTokens", ctx, "").Return(&tokenDomain.TokenResult{
			Checksum: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
			Tokens:   []string{},
		}, nil)

		var out bytes.Buffer
		err := checksumText(ctx, mockUseCase, &out, "", "text")

		require.NoError(t, err)
		require.Contains(t, out.String(), "Tokens (0):")
		mockUseCase.AssertExpectations(t)
	})

	t.Run("use-case-error", func(t *testing.T) {
		mockUseCase := &mocks.MockTokenUseCase{}
		mockUseCase.On("CreateTokens", ctx, "boom").Return(nil, errors.New("entropy source failure"))

		err := checksumText(ctx, mockUseCase, &bytes.Buffer{}, "boom", "text")

		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to create tokens")
		mockUseCase.AssertExpectations(t)
	})
}
