// Package suggestion detects live trigger tokens (mentions, hashes,
// slash commands) around the cursor. A pattern is an unbroken token
// that starts with a trigger character and is bounded by whitespace
// or the document edge; it is transient state, recomputed after every
// mutation and never stored in history.
package suggestion

import (
	"unicode/utf8"

	"github.com/dshills/composer/internal/textutil"
)

// Key identifies the trigger character of a pattern.
type Key int

const (
	// KeyUnknown is reported only for the no-trigger case.
	KeyUnknown Key = iota
	// KeyAt is the @ mention trigger.
	KeyAt
	// KeyHash is the # trigger.
	KeyHash
	// KeySlash is the / command trigger.
	KeySlash
)

// String returns the wire name of the key.
func (k Key) String() string {
	switch k {
	case KeyAt:
		return "At"
	case KeyHash:
		return "Hash"
	case KeySlash:
		return "Slash"
	default:
		return "Unknown"
	}
}

// Pattern describes a live trigger token. Text excludes the trigger
// character; Start and End are UTF-16 offsets over the document text
// content covering the whole token including the trigger.
type Pattern struct {
	Key   Key
	Text  string
	Start int
	End   int
}

// Equal reports whether two patterns describe the same token.
func (p *Pattern) Equal(o *Pattern) bool {
	if p == nil || o == nil {
		return p == o
	}
	return *p == *o
}

// keyFor maps a trigger rune to its key.
func keyFor(r rune) Key {
	switch r {
	case '@':
		return KeyAt
	case '#':
		return KeyHash
	case '/':
		return KeySlash
	default:
		return KeyUnknown
	}
}

// Detect scans the plain-text projection around a collapsed cursor
// and returns the active pattern, or nil when no trigger token
// surrounds the cursor. cursor is a UTF-16 offset into text.
func Detect(text string, cursor int) *Pattern {
	cb := textutil.UTF16ToByte(text, cursor)

	// Walk back to the token start.
	start := cb
	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(text[:start])
		if textutil.IsWordBreak(r) {
			break
		}
		start -= size
	}
	if start >= len(text) || cb <= start {
		// Nothing at the cursor, or the cursor sits before the token.
		return nil
	}
	trigger, tsize := utf8.DecodeRuneInString(text[start:])
	key := keyFor(trigger)
	if key == KeyUnknown {
		return nil
	}

	// Walk forward to the token end.
	end := cb
	for end < len(text) {
		r, size := utf8.DecodeRuneInString(text[end:])
		if textutil.IsWordBreak(r) {
			break
		}
		end += size
	}

	return &Pattern{
		Key:   key,
		Text:  text[start+tsize : end],
		Start: textutil.ByteToUTF16(text, start),
		End:   textutil.ByteToUTF16(text, end),
	}
}
