package dom

import "errors"

// Errors returned by tree primitives. These signal contract
// violations inside the engine; the command layer clamps offsets
// before calling down, so they are never surfaced to hosts.
var (
	// ErrOffsetOutOfRange indicates an offset outside the document's
	// content range.
	ErrOffsetOutOfRange = errors.New("offset out of range")
)
