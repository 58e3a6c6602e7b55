package iban

import "strings"

// Normalize uppercases ASCII letters and removes every space (U+0020).
// Other whitespace is left in place and fails validation later.
func Normalize(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	for i := 0; i < len(input); i++ {
		ch := input[i]
		switch {
		case ch == ' ':
			continue
		case ch >= 'a' && ch <= 'z':
			b.WriteByte(ch - 'a' + 'A')
		default:
			b.WriteByte(ch)
		}
	}
	return b.String()
}
