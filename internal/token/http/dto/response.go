package dto

import (
	tokenDomain "github.com/allisson/tokengen/internal/token/domain"
)

// GenerateResponse contains a single generated token.
type GenerateResponse struct {
	Token string `json:"token"`
}

// TokensResponse contains the checksum of the submitted text and the generated tokens.
type TokensResponse struct {
	Checksum string   `json:"checksum"`
	Tokens   []string `json:"tokens"`
}

// MapTokenResultToTokensResponse converts a domain TokenResult to its response DTO.
func MapTokenResultToTokensResponse(result *tokenDomain.TokenResult) TokensResponse {
	return TokensResponse{
		Checksum: result.Checksum,
		Tokens:   result.Tokens,
	}
}
