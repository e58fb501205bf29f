package composer

import "errors"

// Errors returned by content-loading operations. Every other command
// is infallible from the host's perspective: out-of-range offsets are
// clamped and boundary cases are silent no-ops.
var (
	// ErrHTMLParse indicates the supplied HTML could not be parsed.
	ErrHTMLParse = errors.New("html parse failed")

	// ErrMarkdownParse indicates the supplied Markdown could not be parsed.
	ErrMarkdownParse = errors.New("markdown parse failed")
)
