package errors

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// maxMapNameLength is the width of the sysmaps.name column in Zabbix.
const maxMapNameLength = 128

// ValidateMapName validates a Zabbix map name.
//
// Rules:
//   - No empty or whitespace-only names
//   - No control characters
//   - Maximum length of 128 characters
func ValidateMapName(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidInput, "map name cannot be empty")
	}

	if utf8.RuneCountInString(name) > maxMapNameLength {
		return New(ErrCodeInvalidInput, "map name too long (max %d characters)", maxMapNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "map name contains invalid control characters")
		}
	}

	return nil
}

// ValidateAPIPath validates the web path under which the Zabbix frontend is served.
// The path is joined with "api_jsonrpc.php", so it must be slash-terminated.
//
// Validation rules:
//   - Path must start and end with "/"
//   - No null bytes or control characters
//   - No path traversal sequences (..)
//   - No backslashes
//   - No query or fragment
func ValidateAPIPath(path string) error {
	if !strings.HasPrefix(path, "/") || !strings.HasSuffix(path, "/") {
		return New(ErrCodeInvalidPath, "API path must start and end with / (got %q)", path)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "API path contains invalid characters")
		}
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "API path cannot contain path traversal sequences (..)")
	}

	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "API path cannot contain backslashes")
	}

	if strings.ContainsAny(path, "?#") {
		return New(ErrCodeInvalidPath, "API path cannot contain a query or fragment")
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

var colorCodeRegex = regexp.MustCompile(`^[0-9A-Fa-f]{6}$`)

// ValidateColorCode validates a link color as Zabbix stores it: six hex
// digits without a leading '#'.
func ValidateColorCode(code string) error {
	if !colorCodeRegex.MatchString(code) {
		return New(ErrCodeInvalidColor, "invalid color code %q (want RRGGBB)", code)
	}
	return nil
}
