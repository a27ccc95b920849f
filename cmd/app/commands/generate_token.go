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

// maxTokensPerCommand caps how many tokens a single CLI invocation can produce.
const maxTokensPerCommand = 1000

// RunGenerateToken generates one or more random tokens and writes them to the
// command output. Supports both text and JSON output formats.
func RunGenerateToken(ctx context.Context, count int, format string, io IOTuple) error {
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

	if err := generateTokens(ctx, useCase, io.Writer, count, format); err != nil {
		return err
	}

	logger.Info("tokens generated", slog.Int("count", count))
	return nil
}

// generateTokens produces count tokens from the use case and writes them to out.
func generateTokens(
	ctx context.Context,
	useCase tokenUseCase.TokenUseCase,
	out io.Writer,
	count int,
	format string,
) error {
	if count < 1 {
		return fmt.Errorf("count must be a positive number, got: %d", count)
	}
	if count > maxTokensPerCommand {
		return fmt.Errorf("count must be at most %d, got: %d", maxTokensPerCommand, count)
	}

	tokens := make([]string, 0, count)
	for i := 0; i < count; i++ {
		token, err := useCase.GenerateToken(ctx)
		if err != nil {
			return fmt.Errorf("failed to generate token: %w", err)
		}
		tokens = append(tokens, token)
	}

	if format == "json" {
		return outputTokensJSON(out, tokens)
	}
	return outputTokensText(out, tokens)
}

// outputTokensText writes one token per line.
func outputTokensText(out io.Writer, tokens []string) error {
	for _, token := range tokens {
		if _, err := fmt.Fprintln(out, token); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

// outputTokensJSON writes the tokens as a JSON document for machine consumption.
func outputTokensJSON(out io.Writer, tokens []string) error {
	result := map[string]interface{}{
		"tokens": tokens,
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
