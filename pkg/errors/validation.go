package errors

import (
	"path/filepath"
	"slices"
	"strings"
	"unicode"
)

// maxTokenLength bounds feature tokens read from untrusted input.
const maxTokenLength = 512

// ValidateToken validates a feature token read from a hierarchy or
// registry file.
//
// Validation rules:
//   - Token cannot be empty
//   - Maximum length of 512 bytes
//   - No control characters (tokens end up inside SVG text)
func ValidateToken(token string) error {
	if token == "" {
		return New(ErrCodeInvalidInput, "feature token cannot be empty")
	}

	if len(token) > maxTokenLength {
		return New(ErrCodeInvalidInput, "feature token too long (max %d bytes)", maxTokenLength)
	}

	for _, r := range token {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "feature token contains control characters: %q", token)
		}
	}

	return nil
}

// ValidateOutputPath validates a path the CLI is about to write to.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No ".." segments after cleaning
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	for _, seg := range strings.Split(filepath.ToSlash(filepath.Clean(path)), "/") {
		if seg == ".." {
			return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
		}
	}

	return nil
}

// ValidateFormat checks format against the supported output formats.
func ValidateFormat(format string, supported ...string) error {
	if !slices.Contains(supported, format) {
		return New(ErrCodeInvalidFormat, "unsupported format %q (want one of %s)", format, strings.Join(supported, ", "))
	}
	return nil
}
