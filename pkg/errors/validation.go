package errors

import (
	"strings"
	"unicode"
)

const maxSpeciesNameLength = 256

// ValidateSpeciesName validates a species name before it is embedded in an
// upstream URL path. It rejects names that could be used for path traversal
// or injection attacks.
//
// The validation rules are intentionally conservative:
//   - No empty or whitespace-only names
//   - No control characters
//   - No path separators or traversal sequences
//   - Maximum length of 256 bytes
//
// Case is not checked; the species client lowercases names itself.
func ValidateSpeciesName(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidInput, "species name cannot be empty")
	}

	if len(name) > maxSpeciesNameLength {
		return New(ErrCodeInvalidInput, "species name too long (max %d characters)", maxSpeciesNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "species name contains invalid control characters")
		}
	}

	dangerousPatterns := []string{
		"..",   // Parent directory
		"/",    // Path separator
		"\\",   // Backslash (Windows path)
		"?",    // Query delimiter
		"#",    // Fragment delimiter
		"\x00", // Null byte
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidInput, "species name contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	// Simple scheme validation without full URL parsing
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}
