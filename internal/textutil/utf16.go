package textutil

import "unicode/utf8"

// surrogateThreshold is the first codepoint that needs a UTF-16
// surrogate pair (two codeunits instead of one).
const surrogateThreshold = 0x10000

// UTF16Len returns the length of s in UTF-16 codeunits.
func UTF16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16RuneLen(r)
	}
	return n
}

// utf16RuneLen returns the number of UTF-16 codeunits needed for r.
func utf16RuneLen(r rune) int {
	if r >= surrogateThreshold {
		return 2
	}
	return 1
}

// UTF16ToByte converts a UTF-16 codeunit offset into a byte offset in
// s. Offsets are clamped to [0, len(s)]. An offset that lands in the
// middle of a surrogate pair resolves to the start of that rune, so
// the result is always a valid rune boundary.
func UTF16ToByte(s string, off int) int {
	if off <= 0 {
		return 0
	}
	u16 := 0
	for b, r := range s {
		if u16 >= off {
			return b
		}
		u16 += utf16RuneLen(r)
	}
	return len(s)
}

// ByteToUTF16 converts a byte offset in s into a UTF-16 codeunit
// offset. A byte offset inside a multi-byte rune resolves to the
// start of that rune. Offsets are clamped to [0, len(s)].
func ByteToUTF16(s string, off int) int {
	if off <= 0 {
		return 0
	}
	u16 := 0
	for b, r := range s {
		if b >= off {
			return u16
		}
		u16 += utf16RuneLen(r)
	}
	return u16
}

// RuneLenAt returns the UTF-16 codeunit width of the rune starting at
// byte offset off, or 0 when off is out of range.
func RuneLenAt(s string, off int) int {
	if off < 0 || off >= len(s) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s[off:])
	return utf16RuneLen(r)
}
