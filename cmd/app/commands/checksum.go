package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/allisson/tokengen/internal/app"
	"github.com/allisson/tokengen/internal/config"
	tokenUseCase "github.com/allisson/tokengen/internal/token/usecase"
)

// RunChecksum computes the SHA-256 checksum of the given text and generates one
// random token per whitespace-separated word, writing the result to the command
// output. Supports both text and JSON output formats.
func RunChecksum(ctx context.Context, text string, format string, io IOTuple) error {
	// Load configuration
	cfg := config.Load()

	// Create DI container
	container := app.NewContainer(cfg)

	// Get logger from container
	logger := container.Logger()

	// Ensure cleanup on exit
	defer closeContainer(container, logger)

	// Get token use case from container
	useCase, err := container.TokenUseCase()
	if err != nil {
		return fmt.Errorf("failed to initialize token use case: %w", err)
	}

	if err := checksumText(ctx, useCase, io.Writer, text, format); err != nil {
		return err
	}

	logger.Info("checksum computed", slog.Int("text_length", len(text)))
	return nil
}

// checksumText runs the tokenization use case and writes the result to out.
func checksumText(
	ctx context.Context,
	useCase tokenUseCase.TokenUseCase,
	out io.Writer,
	text string,
	format string,
) error {
	result, err := useCase.CreateTokens(ctx, text)
	if err != nil {
		return fmt.Errorf("failed to create tokens: %w", err)
	}

	if format == "json" {
		return outputChecksumJSON(out, result.Checksum, result.Tokens)
	}
	return outputChecksumText(out, result.Checksum, result.Tokens)
}

// outputChecksumText writes the checksum and tokens in human-readable form.
func outputChecksumText(out io.Writer, checksum string, tokens []string) error {
	if _, err := fmt.Fprintf(out, "Checksum: %s\n", checksum); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if _, err := fmt.Fprintf(out, "Tokens (%d):\n", len(tokens)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	for _, token := range tokens {
		if _, err := fmt.Fprintf(out, "  %s\n", token); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

// outputChecksumJSON writes the result in the same shape as the HTTP API response.
func outputChecksumJSON(out io.Writer, checksum string, tokens []string) error {
	result := map[string]interface{}{
		"checksum": checksum,
		"tokens":   tokens,
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := fmt.Fprintln(out, string(jsonBytes)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
