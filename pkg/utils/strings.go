package utils

import "strings"

// RemoveExceedingSpaces trims s and collapses every internal run of
// whitespace, Unicode spaces included, into a single space.
func RemoveExceedingSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// HasDuplicates reports whether any element occurs more than once.
func HasDuplicates[T comparable](elements []T) bool {
	seen := make(map[T]struct{}, len(elements))
	for _, e := range elements {
		if _, ok := seen[e]; ok {
			return true
		}
		seen[e] = struct{}{}
	}
	return false
}
