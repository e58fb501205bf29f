package composer

import "github.com/dshills/composer/internal/dom"

// Bold toggles bold on the selection.
func (m *ComposerModel) Bold() ComposerUpdate {
	return m.toggleFormat(dom.FormatBold)
}

// Italic toggles italic on the selection.
func (m *ComposerModel) Italic() ComposerUpdate {
	return m.toggleFormat(dom.FormatItalic)
}

// StrikeThrough toggles strikethrough on the selection.
func (m *ComposerModel) StrikeThrough() ComposerUpdate {
	return m.toggleFormat(dom.FormatStrikeThrough)
}

// Underline toggles underline on the selection.
func (m *ComposerModel) Underline() ComposerUpdate {
	return m.toggleFormat(dom.FormatUnderline)
}

// InlineCode toggles inline code on the selection. Applying it clears
// the other inline formats; inline code does not combine.
func (m *ComposerModel) InlineCode() ComposerUpdate {
	return m.toggleFormat(dom.FormatInlineCode)
}

// toggleFormat applies or reverses one inline format. With a
// collapsed cursor the toggle is recorded as pending and consumed by
// the next insertion. Formatting is unavailable inside code blocks.
func (m *ComposerModel) toggleFormat(f dom.Format) ComposerUpdate {
	start, end := m.sel.Start(), m.sel.End()
	if m.rangeInCodeBlock(m.doc.Blocks(), start, end) {
		return m.keepUpdate()
	}

	if m.sel.IsCollapsed() {
		switch {
		case m.pendingOn.Has(f):
			m.pendingOn = m.pendingOn.Without(f)
		case m.pendingOff.Has(f):
			m.pendingOff = m.pendingOff.Without(f)
		case m.formatsAtCursor().Has(f):
			m.pendingOff = m.pendingOff.With(f)
		default:
			m.pendingOn = m.pendingOn.With(f)
		}
		return ComposerUpdate{
			TextUpdate: TextUpdate{Kind: TextKeep},
			MenuState:  m.menuState(),
			MenuAction: m.menuAction(),
		}
	}

	common, ok := dom.CommonFormats(m.doc.RangeRuns(start, end))
	on := !(ok && common.Has(f))
	return m.commit(func() error {
		return m.doc.ApplyFormat(start, end, f, on)
	})
}
