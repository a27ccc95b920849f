package usecase

import (
	"context"
	"crypto/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tokenService "github.com/allisson/tokengen/internal/token/service"
)

// recordingMetrics captures recorded operations for assertions.
type recordingMetrics struct {
	mu         sync.Mutex
	operations []string
	statuses   []string
	durations  int
}

func (r *recordingMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.operations = append(r.operations, domain+"/"+operation)
	r.statuses = append(r.statuses, status)
}

func (r *recordingMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.durations++
}

func TestTokenUseCaseWithMetrics(t *testing.T) {
	t.Run("Success_RecordsGenerateToken", func(t *testing.T) {
		generator, err := tokenService.NewHexGenerator(rand.Reader, 16)
		require.NoError(t, err)

		recorder := &recordingMetrics{}
		useCase := NewTokenUseCaseWithMetrics(
			NewTokenUseCase(generator, NewSHA256HashService()),
			recorder,
		)

		token, err := useCase.GenerateToken(context.Background())
		require.NoError(t, err)
		assert.Len(t, token, 32)

		assert.Equal(t, []string{"token/generate_token"}, recorder.operations)
		assert.Equal(t, []string{"success"}, recorder.statuses)
		assert.Equal(t, 1, recorder.durations)
	})

	t.Run("Success_RecordsCreateTokens", func(t *testing.T) {
		generator, err := tokenService.NewHexGenerator(rand.Reader, 16)
		require.NoError(t, err)

		recorder := &recordingMetrics{}
		useCase := NewTokenUseCaseWithMetrics(
			NewTokenUseCase(generator, NewSHA256HashService()),
			recorder,
		)

		result, err := useCase.CreateTokens(context.Background(), "one two")
		require.NoError(t, err)
		assert.Len(t, result.Tokens, 2)

		assert.Equal(t, []string{"token/create_tokens"}, recorder.operations)
		assert.Equal(t, []string{"success"}, recorder.statuses)
	})

	t.Run("Error_RecordsErrorStatus", func(t *testing.T) {
		recorder := &recordingMetrics{}
		useCase := NewTokenUseCaseWithMetrics(
			NewTokenUseCase(failingGenerator{}, NewSHA256HashService()),
			recorder,
		)

		_, err := useCase.GenerateToken(context.Background())
		assert.Error(t, err)
		assert.Equal(t, []string{"error"}, recorder.statuses)
	})
}
