package dom

// Kind identifies the variant of a node. The set is closed; the codec
// and mutation engine switch exhaustively over it.
type Kind uint8

const (
	// KindDocument is the root container. Exactly one per document.
	KindDocument Kind = iota

	// KindText is a leaf holding a run of text.
	KindText

	// KindLineBreak is an explicit line break (<br />).
	KindLineBreak

	// Inline format containers.
	KindBold
	KindItalic
	KindStrikeThrough
	KindUnderline
	KindInlineCode

	// KindLink is an inline container carrying an href.
	KindLink

	// KindMention is an atomic inline leaf: an href plus immutable
	// display text. It is never split or partially deleted.
	KindMention

	// Block containers.
	KindParagraph
	KindCodeBlock
	KindQuote
	KindOrderedList
	KindUnorderedList
	KindListItem
)

// String returns the tag-like name used in debug tree dumps.
func (k Kind) String() string {
	switch k {
	case KindDocument:
		return ""
	case KindText:
		return "text"
	case KindLineBreak:
		return "br"
	case KindBold:
		return "strong"
	case KindItalic:
		return "em"
	case KindStrikeThrough:
		return "del"
	case KindUnderline:
		return "u"
	case KindInlineCode:
		return "code"
	case KindLink:
		return "a"
	case KindMention:
		return "mention"
	case KindParagraph:
		return "p"
	case KindCodeBlock:
		return "pre"
	case KindQuote:
		return "blockquote"
	case KindOrderedList:
		return "ol"
	case KindUnorderedList:
		return "ul"
	case KindListItem:
		return "li"
	default:
		return "?"
	}
}

// IsBlock reports whether k is a block-level container.
func (k Kind) IsBlock() bool {
	switch k {
	case KindParagraph, KindCodeBlock, KindQuote, KindOrderedList, KindUnorderedList, KindListItem:
		return true
	default:
		return false
	}
}

// IsInlineFormat reports whether k is an inline formatting container.
func (k Kind) IsInlineFormat() bool {
	switch k {
	case KindBold, KindItalic, KindStrikeThrough, KindUnderline, KindInlineCode:
		return true
	default:
		return false
	}
}

// IsList reports whether k is an ordered or unordered list.
func (k Kind) IsList() bool {
	return k == KindOrderedList || k == KindUnorderedList
}

// IsLeaf reports whether nodes of this kind never have children.
func (k Kind) IsLeaf() bool {
	return k == KindText || k == KindLineBreak || k == KindMention
}

// Format is a bit in an inline format set.
type Format uint8

const (
	FormatBold Format = 1 << iota
	FormatItalic
	FormatStrikeThrough
	FormatUnderline
	FormatInlineCode
)

// FormatSet is a bitmask of inline formats applied to a run.
type FormatSet uint8

// Has reports whether f is set.
func (s FormatSet) Has(f Format) bool { return s&FormatSet(f) != 0 }

// With returns s with f set.
func (s FormatSet) With(f Format) FormatSet { return s | FormatSet(f) }

// Without returns s with f cleared.
func (s FormatSet) Without(f Format) FormatSet { return s &^ FormatSet(f) }

// canonicalFormats is the serialization nesting order, outermost
// first. Rebuilding inline content always nests in this order, which
// is what makes re-serialization deterministic.
var canonicalFormats = []Format{
	FormatBold,
	FormatItalic,
	FormatStrikeThrough,
	FormatUnderline,
	FormatInlineCode,
}

// FormatKind returns the container kind for an inline format.
func FormatKind(f Format) Kind {
	switch f {
	case FormatBold:
		return KindBold
	case FormatItalic:
		return KindItalic
	case FormatStrikeThrough:
		return KindStrikeThrough
	case FormatUnderline:
		return KindUnderline
	case FormatInlineCode:
		return KindInlineCode
	default:
		return KindText
	}
}

// KindFormat returns the format bit for an inline format container
// kind, or 0 when k is not a format container.
func KindFormat(k Kind) Format {
	switch k {
	case KindBold:
		return FormatBold
	case KindItalic:
		return FormatItalic
	case KindStrikeThrough:
		return FormatStrikeThrough
	case KindUnderline:
		return FormatUnderline
	case KindInlineCode:
		return FormatInlineCode
	default:
		return 0
	}
}
