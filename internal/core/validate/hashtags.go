// Package validate holds the field rules of the upload dialog and a small
// registry that evaluates them per field.
package validate

import (
	"regexp"
	"strings"

	"github.com/colonyops/pixpost/pkg/utils"
)

// MaxHashtagLength is the longest allowed hashtag including the leading '#'.
const MaxHashtagLength = 20

// hashtagPattern allows '#' followed by 1-19 Latin or Cyrillic lowercase
// letters or digits.
var hashtagPattern = regexp.MustCompile(`^#[a-zа-яё0-9]{1,19}$`)

// ParseHashtags normalizes the raw hashtags field into lower-cased tokens.
// Blank input yields an empty slice.
func ParseHashtags(raw string) []string {
	normalized := utils.RemoveExceedingSpaces(raw)
	if normalized == "" {
		return []string{}
	}
	return strings.Split(strings.ToLower(normalized), " ")
}

// HasNoDuplicates reports whether all tokens are pairwise distinct.
func HasNoDuplicates(tokens []string) bool {
	return !utils.HasDuplicates(tokens)
}

// WithinCountLimit reports whether there are at most limit tokens.
func WithinCountLimit(tokens []string, limit int) bool {
	return len(tokens) <= limit
}

// AllMatchPattern reports whether every token is a well-formed hashtag.
// An empty list passes.
func AllMatchPattern(tokens []string) bool {
	for _, tok := range tokens {
		if !hashtagPattern.MatchString(tok) {
			return false
		}
	}
	return true
}

// IsHashtag reports whether a single token is a well-formed hashtag.
func IsHashtag(token string) bool {
	return hashtagPattern.MatchString(token)
}
