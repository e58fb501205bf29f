package composer

import "github.com/dshills/composer/internal/textutil"

// SetLink wraps the selection in a link with the given href. With a
// collapsed cursor inside an existing link the href is replaced
// across the whole link; otherwise a collapsed cursor is a no-op
// (use SetLinkWithText).
func (m *ComposerModel) SetLink(href string) ComposerUpdate {
	m.clearPending()
	start, end := m.sel.Start(), m.sel.End()
	if m.sel.IsCollapsed() {
		var ok bool
		start, end, _, ok = m.linkRangeAt(m.sel.Head)
		if !ok {
			return m.keepUpdate()
		}
	}
	return m.commit(func() error {
		return m.doc.SetLinkRange(start, end, href)
	})
}

// SetLinkWithText replaces the selection with text wrapped in a link
// and leaves the cursor after it.
func (m *ComposerModel) SetLinkWithText(href, text string) ComposerUpdate {
	m.clearPending()
	start, end := m.sel.Start(), m.sel.End()
	return m.commit(func() error {
		return m.insertLink(start, end, href, text)
	})
}

// SetLinkSuggestion replaces the pattern's recorded source range with
// text wrapped in a link, consuming the suggestion. The pattern's
// range is used rather than the selection because the cursor may have
// moved since the pattern was reported.
func (m *ComposerModel) SetLinkSuggestion(href, text string, pattern SuggestionPattern) ComposerUpdate {
	m.clearPending()
	start, end := m.clampRange(pattern.Start, pattern.End)
	return m.commit(func() error {
		return m.insertLink(start, end, href, text)
	})
}

// RemoveLinks strips every link the selection covers. A collapsed
// cursor strips the link it sits in.
func (m *ComposerModel) RemoveLinks() ComposerUpdate {
	m.clearPending()
	start, end := m.sel.Start(), m.sel.End()
	if m.sel.IsCollapsed() {
		var ok bool
		start, end, _, ok = m.linkRangeAt(m.sel.Head)
		if !ok {
			return m.keepUpdate()
		}
	}
	return m.commit(func() error {
		return m.doc.RemoveLinkRange(start, end)
	})
}

// insertLink replaces [start, end) with text and links the inserted
// range.
func (m *ComposerModel) insertLink(start, end int, href, text string) error {
	if err := m.replaceRange(start, end, text); err != nil {
		return err
	}
	n := textutil.UTF16Len(text)
	return m.doc.SetLinkRange(start, start+n, href)
}
