// Package http provides HTTP handlers for token generation and text checksum operations.
package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/tokengen/internal/httputil"
	"github.com/allisson/tokengen/internal/token/http/dto"
	tokenUseCase "github.com/allisson/tokengen/internal/token/usecase"
	customValidation "github.com/allisson/tokengen/internal/validation"
)

// TokenHandler handles HTTP requests for token generation and text processing.
type TokenHandler struct {
	tokenUseCase tokenUseCase.TokenUseCase
	logger       *slog.Logger
}

// NewTokenHandler creates a new token handler with required dependencies.
func NewTokenHandler(useCase tokenUseCase.TokenUseCase, logger *slog.Logger) *TokenHandler {
	return &TokenHandler{
		tokenUseCase: useCase,
		logger:       logger,
	}
}

// GenerateHandler returns a single random token.
// GET /generate - Returns 200 OK with the token.
func (h *TokenHandler) GenerateHandler(c *gin.Context) {
	token, err := h.tokenUseCase.GenerateToken(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.GenerateResponse{Token: token})
}

// TokensHandler computes the checksum of the submitted text and generates one
// random token per whitespace-delimited word.
// POST /tokens - Returns 200 OK with checksum and tokens, 422 if the text
// field is missing or has the wrong type, 400 for malformed JSON.
func (h *TokenHandler) TokensHandler(c *gin.Context) {
	var req dto.TokensRequest

	// Parse and bind JSON. A type mismatch on a known field is a validation
	// problem (422), while undecodable JSON is a malformed request (400).
	if err := c.ShouldBindJSON(&req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			httputil.HandleValidationErrorGin(c, err, h.logger)
			return
		}
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	// Call use case
	result, err := h.tokenUseCase.CreateTokens(c.Request.Context(), *req.Text)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	// Return response
	c.JSON(http.StatusOK, dto.MapTokenResultToTokensResponse(result))
}
