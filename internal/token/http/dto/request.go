// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"
)

// TokensRequest contains the text submitted for checksum and token generation.
// Text is a pointer so a missing field can be told apart from an empty string:
// absent fails validation, empty is a valid submission that yields zero tokens.
type TokensRequest struct {
	Text *string `json:"text"`
}

// Validate checks if the tokens request is valid.
func (r *TokensRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Text, validation.NotNil),
	)
}
