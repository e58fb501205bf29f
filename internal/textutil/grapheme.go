package textutil

import (
	"unicode"

	"github.com/rivo/uniseg"
)

// PrevGraphemeStart returns the byte offset of the start of the
// grapheme cluster that ends at byte offset off. Returns 0 when off
// is at or before the start of s.
func PrevGraphemeStart(s string, off int) int {
	if off <= 0 {
		return 0
	}
	if off > len(s) {
		off = len(s)
	}
	prev := 0
	state := -1
	rest := s[:off]
	for len(rest) > 0 {
		cluster, tail, _, st := uniseg.FirstGraphemeClusterInString(rest, state)
		if len(tail) == 0 {
			return off - len(cluster)
		}
		prev += len(cluster)
		rest = tail
		state = st
	}
	return prev
}

// NextGraphemeEnd returns the byte offset just past the grapheme
// cluster that starts at byte offset off. Returns len(s) when off is
// at or past the end of s.
func NextGraphemeEnd(s string, off int) int {
	if off >= len(s) {
		return len(s)
	}
	if off < 0 {
		off = 0
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(s[off:], -1)
	return off + len(cluster)
}

// ContainsWhitespace reports whether s contains any Unicode
// whitespace. Used by history coalescing to decide whether a typing
// run crossed a word boundary.
func ContainsWhitespace(s string) bool {
	for _, r := range s {
		if unicode.IsSpace(r) {
			return true
		}
	}
	return false
}

// IsWordBreak reports whether r terminates a suggestion token.
func IsWordBreak(r rune) bool {
	return unicode.IsSpace(r)
}
