package validate

import "unicode/utf8"

// WithinLength reports whether text has at most limit characters.
func WithinLength(text string, limit int) bool {
	return utf8.RuneCountInString(text) <= limit
}
