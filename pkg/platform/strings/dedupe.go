// Package strings provides string slice utilities.
package strings

import (
	"strings"
)

// DedupeBy trims each element, drops empty ones and keeps the first element
// for every distinct key(trimmed). Order is preserved and the kept elements are
// returned trimmed but otherwise unchanged.
//
// Example:
//
//	DedupeBy([]string{"de89 3704", "DE893704", "GB82"}, iban.Normalize)
//	// Returns: []string{"de89 3704", "GB82"}
func DedupeBy(values []string, key func(string) string) []string {
	if len(values) == 0 {
		return values
	}

	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))

	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		k := key(trimmed)
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			result = append(result, trimmed)
		}
	}

	return result
}
