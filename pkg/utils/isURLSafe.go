package utils

import "regexp"

var urlSafePattern = regexp.MustCompile(`^[a-zA-Z0-9-_]+$`)

// IsURLSafe reports whether a value can be used as a URL path segment
// without escaping, e.g. a registration ID taken from a status lookup path.
func IsURLSafe(value string) bool {
	if value == "" {
		return false
	}
	return urlSafePattern.MatchString(value)
}
