package errors

import (
	"strings"
	"unicode"
)

// ValidateDrugName validates a drug name for safety and correctness.
// Names come from user input (CLI arguments and URL paths) and end up in
// cache keys and output file names, so the rules are conservative:
//   - No empty names
//   - No control characters or null bytes
//   - No path traversal sequences
//   - Maximum length of 256 characters
//
// Catalog lookup decides whether the name actually exists; an unknown but
// well-formed name is valid here.
func ValidateDrugName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidDrug, "drug name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidDrug, "drug name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidDrug, "drug name contains invalid control characters")
		}
	}

	dangerousPatterns := []string{
		"..",   // Parent directory
		"//",   // Double slash
		"\x00", // Null byte
		"\\",   // Backslash (Windows path)
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidDrug, "drug name contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// ValidateOutputPath validates a user-supplied output file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}
