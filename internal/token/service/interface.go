// Package service provides random token generation in multiple output formats.
package service

// TokenGenerator defines the interface for token generation.
// Implementations must be safe for concurrent use; every call draws fresh
// randomness and is independent of all previous calls.
type TokenGenerator interface {
	Generate() (string, error)
}
