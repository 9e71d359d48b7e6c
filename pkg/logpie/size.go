package logpie

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

// SizeOf returns the number of bytes value occupies once encoded as UTF-8.
// This differs from the character count whenever value holds multi-byte
// code points. Ill-formed bytes are counted as the U+FFFD replacement the
// encoder writes for them.
func SizeOf(value string) int {
	if utf8.ValidString(value) {
		return len(value)
	}
	encoded, err := unicode.UTF8.NewEncoder().String(value)
	if err != nil {
		// The UTF-8 encoder replaces ill-formed input instead of failing.
		return len(value)
	}
	return len(encoded)
}
