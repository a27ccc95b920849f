package usecase

import (
	"context"
	"time"

	"github.com/allisson/tokengen/internal/metrics"
	tokenDomain "github.com/allisson/tokengen/internal/token/domain"
)

// tokenUseCaseWithMetrics decorates TokenUseCase with metrics instrumentation.
type tokenUseCaseWithMetrics struct {
	next    TokenUseCase
	metrics metrics.BusinessMetrics
}

// NewTokenUseCaseWithMetrics wraps a TokenUseCase with metrics recording.
func NewTokenUseCaseWithMetrics(useCase TokenUseCase, m metrics.BusinessMetrics) TokenUseCase {
	return &tokenUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// GenerateToken records metrics for single token generation.
func (t *tokenUseCaseWithMetrics) GenerateToken(ctx context.Context) (string, error) {
	start := time.Now()
	token, err := t.next.GenerateToken(ctx)

	status := "success"
	if err != nil {
		status = "error"
	}

	t.metrics.RecordOperation(ctx, "token", "generate_token", status)
	t.metrics.RecordDuration(ctx, "token", "generate_token", time.Since(start), status)

	return token, err
}

// CreateTokens records metrics for text checksum and token batch generation.
func (t *tokenUseCaseWithMetrics) CreateTokens(
	ctx context.Context,
	text string,
) (*tokenDomain.TokenResult, error) {
	start := time.Now()
	result, err := t.next.CreateTokens(ctx, text)

	status := "success"
	if err != nil {
		status = "error"
	}

	t.metrics.RecordOperation(ctx, "token", "create_tokens", status)
	t.metrics.RecordDuration(ctx, "token", "create_tokens", time.Since(start), status)

	return result, err
}
