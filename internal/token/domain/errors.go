package domain

import (
	"github.com/allisson/tokengen/internal/errors"
)

var (
	// ErrInvalidFormatType indicates an invalid token format type was provided.
	ErrInvalidFormatType = errors.Wrap(errors.ErrInvalidInput, "invalid token format type")

	// ErrInvalidTokenSize indicates the configured token size is out of range.
	ErrInvalidTokenSize = errors.Wrap(errors.ErrInvalidInput, "invalid token size")

	// ErrEntropySourceUnavailable indicates the random source failed to produce bytes.
	ErrEntropySourceUnavailable = errors.Wrap(errors.ErrUnavailable, "entropy source unavailable")
)
