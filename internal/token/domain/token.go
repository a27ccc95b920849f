// Package domain defines the core types and errors for token generation.
package domain

// TokenResult is the outcome of processing a text submission: a deterministic
// SHA-256 checksum of the raw text plus one freshly generated random token per
// whitespace-delimited word. The checksum is a pure function of the text while
// the tokens are independent random draws, so two submissions of the same text
// share a checksum but never share tokens.
type TokenResult struct {
	// Checksum is the lowercase hex SHA-256 digest of the submitted text (64 chars).
	Checksum string
	// Tokens holds one random token per word, in word order. Empty for
	// empty or whitespace-only text.
	Tokens []string
}
