package domain

// FormatType represents the output format of generated tokens.
type FormatType string

// Supported token formats.
const (
	// FormatHex produces hex-encoded random tokens (2 chars per random byte).
	FormatHex FormatType = "hex"
	// FormatUUID produces UUIDv7 tokens.
	FormatUUID FormatType = "uuid"
)

// ParseFormatType converts a format string to a FormatType.
// Returns ErrInvalidFormatType for unknown formats.
func ParseFormatType(format string) (FormatType, error) {
	switch FormatType(format) {
	case FormatHex:
		return FormatHex, nil
	case FormatUUID:
		return FormatUUID, nil
	default:
		return "", ErrInvalidFormatType
	}
}
