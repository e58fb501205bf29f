// Package selection models the composer cursor: a pair of UTF-16
// codeunit offsets into the document's text content. Anchor is where
// the selection started, Head is where the cursor is; Anchor > Head
// is a valid reversed (leftward drag) selection and is preserved
// across commands.
package selection

// Selection is an immutable value type.
type Selection struct {
	Anchor int
	Head   int
}

// At returns a collapsed selection (a cursor) at offset.
func At(offset int) Selection {
	return Selection{Anchor: offset, Head: offset}
}

// New returns a selection from anchor to head.
func New(anchor, head int) Selection {
	return Selection{Anchor: anchor, Head: head}
}

// IsCollapsed reports whether the selection has no extent.
func (s Selection) IsCollapsed() bool { return s.Anchor == s.Head }

// Start returns the lower bound.
func (s Selection) Start() int {
	if s.Anchor <= s.Head {
		return s.Anchor
	}
	return s.Head
}

// End returns the upper bound.
func (s Selection) End() int {
	if s.Anchor >= s.Head {
		return s.Anchor
	}
	return s.Head
}

// Len returns the selection extent in codeunits.
func (s Selection) Len() int { return s.End() - s.Start() }

// IsReversed reports whether the head precedes the anchor.
func (s Selection) IsReversed() bool { return s.Head < s.Anchor }

// Collapse returns a cursor at the head.
func (s Selection) Collapse() Selection { return At(s.Head) }

// Clamp returns the selection with both offsets limited to
// [0, length].
func (s Selection) Clamp(length int) Selection {
	return Selection{Anchor: clamp(s.Anchor, length), Head: clamp(s.Head, length)}
}

func clamp(v, length int) int {
	if v < 0 {
		return 0
	}
	if v > length {
		return length
	}
	return v
}

// Edit describes a completed text mutation: [Start, End) was replaced
// by NewLen codeunits of new content.
type Edit struct {
	Start  int
	End    int
	NewLen int
}

// delta is the length change the edit causes.
func (e Edit) delta() int { return e.NewLen - (e.End - e.Start) }

// MapThrough returns the selection adjusted for an edit that has been
// applied to the document. Offsets before the edit are unchanged,
// offsets inside the replaced range collapse to its new end, and
// offsets after it shift by the length delta.
func (s Selection) MapThrough(e Edit) Selection {
	return Selection{Anchor: mapOffset(s.Anchor, e), Head: mapOffset(s.Head, e)}
}

func mapOffset(off int, e Edit) int {
	switch {
	case off <= e.Start:
		return off
	case off >= e.End:
		return off + e.delta()
	default:
		return e.Start + e.NewLen
	}
}
