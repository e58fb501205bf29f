package composer

import (
	"strings"

	"github.com/dshills/composer/internal/codec/plaintext"
	"github.com/dshills/composer/internal/dom"
	"github.com/dshills/composer/internal/selection"
	"github.com/dshills/composer/internal/textutil"
)

// ReplaceText replaces the current selection with text. A collapsed
// selection inserts. This is the primitive all typing funnels
// through; consecutive whitespace-free inserts coalesce into one undo
// entry. Newlines in text split blocks (or insert line breaks inside
// a code block).
func (m *ComposerModel) ReplaceText(text string) ComposerUpdate {
	return m.ReplaceTextIn(text, m.sel.Start(), m.sel.End())
}

// ReplaceTextIn replaces the range [start, end) with text, clamping
// out-of-range offsets, and leaves the cursor after the insertion.
func (m *ComposerModel) ReplaceTextIn(text string, start, end int) ComposerUpdate {
	start, end = m.clampRange(start, end)
	fn := func() error { return m.replaceRange(start, end, text) }
	if start == end && text != "" && !strings.Contains(text, "\n") {
		return m.commitInsert(start, textutil.UTF16Len(text), text, fn)
	}
	return m.commit(fn)
}

// ReplaceTextSuggestion replaces the pattern's recorded source range
// with text, consuming the suggestion. The pattern's range is used
// rather than the selection because the cursor may have moved since
// the pattern was reported.
func (m *ComposerModel) ReplaceTextSuggestion(text string, pattern SuggestionPattern) ComposerUpdate {
	start, end := m.clampRange(pattern.Start, pattern.End)
	return m.commit(func() error { return m.replaceRange(start, end, text) })
}

// Backspace deletes the selection, or one grapheme cluster before a
// collapsed cursor. An empty structural element at the cursor (empty
// list item, empty code block, empty paragraph in a quote) collapses
// as a whole instead.
func (m *ComposerModel) Backspace() ComposerUpdate {
	m.clearPending()
	if !m.sel.IsCollapsed() {
		start, end := m.sel.Start(), m.sel.End()
		return m.commit(func() error { return m.deleteTo(start, end) })
	}
	pos := m.sel.Head
	if upd, ok := m.collapseEmptyBlock(pos); ok {
		return upd
	}
	if pos == 0 {
		return m.keepUpdate()
	}
	text := plaintext.Serialize(m.doc)
	pb := textutil.UTF16ToByte(text, pos)
	start := textutil.ByteToUTF16(text, textutil.PrevGraphemeStart(text, pb))
	return m.commit(func() error { return m.deleteTo(start, pos) })
}

// Delete deletes the selection, or one grapheme cluster after a
// collapsed cursor. The empty-structural-element rule of Backspace
// applies here too.
func (m *ComposerModel) Delete() ComposerUpdate {
	m.clearPending()
	if !m.sel.IsCollapsed() {
		start, end := m.sel.Start(), m.sel.End()
		return m.commit(func() error { return m.deleteTo(start, end) })
	}
	pos := m.sel.Head
	if upd, ok := m.collapseEmptyBlock(pos); ok {
		return upd
	}
	if pos >= m.doc.Len() {
		return m.keepUpdate()
	}
	text := plaintext.Serialize(m.doc)
	pb := textutil.UTF16ToByte(text, pos)
	end := textutil.ByteToUTF16(text, textutil.NextGraphemeEnd(text, pb))
	return m.commit(func() error { return m.deleteTo(pos, end) })
}

// DeleteIn deletes the range [start, end), clamping out-of-range
// offsets.
func (m *ComposerModel) DeleteIn(start, end int) ComposerUpdate {
	m.clearPending()
	start, end = m.clampRange(start, end)
	if start == end {
		return m.keepUpdate()
	}
	return m.commit(func() error { return m.deleteTo(start, end) })
}

// Enter splits the current block at the cursor. Inside a code block
// it inserts a line break instead; in an empty list item it exits the
// list.
func (m *ComposerModel) Enter() ComposerUpdate {
	m.clearPending()
	return m.commit(func() error {
		start, end := m.sel.Start(), m.sel.End()
		if start != end {
			if err := m.doc.DeleteRange(start, end); err != nil {
				return err
			}
		}
		pos := start
		blocks := m.doc.Blocks()
		b := blocks[dom.BlockAt(blocks, pos)]
		switch {
		case m.doc.Kind(b.Node) == dom.KindListItem && b.Start == b.End:
			m.exitListItem(b.Node)
			m.sel = selection.At(pos)
			return nil
		case m.doc.Kind(b.Node) == dom.KindCodeBlock:
			if err := m.doc.InsertLineBreak(pos); err != nil {
				return err
			}
		default:
			if err := m.doc.SplitBlock(pos); err != nil {
				return err
			}
		}
		m.sel = selection.At(pos + 1)
		return nil
	})
}

// replaceRange deletes [start, end), inserts text segment by segment
// (newlines become block splits, or line breaks inside code blocks),
// applies any pending cursor formats to the insertion, and collapses
// the selection after it.
func (m *ComposerModel) replaceRange(start, end int, text string) error {
	if err := m.doc.DeleteRange(start, end); err != nil {
		return err
	}
	pos := start
	for i, seg := range strings.Split(text, "\n") {
		if i > 0 {
			blocks := m.doc.Blocks()
			b := blocks[dom.BlockAt(blocks, pos)]
			var err error
			if m.doc.Kind(b.Node) == dom.KindCodeBlock {
				err = m.doc.InsertLineBreak(pos)
			} else {
				err = m.doc.SplitBlock(pos)
			}
			if err != nil {
				return err
			}
			pos++
		}
		if seg != "" {
			if err := m.doc.InsertText(pos, seg); err != nil {
				return err
			}
			pos += textutil.UTF16Len(seg)
		}
	}
	if err := m.applyPending(start, pos); err != nil {
		return err
	}
	m.sel = selection.At(pos)
	return nil
}

// applyPending applies formats toggled at a collapsed cursor to the
// newly inserted range, then clears them.
func (m *ComposerModel) applyPending(start, end int) error {
	if start >= end || (m.pendingOn == 0 && m.pendingOff == 0) {
		return nil
	}
	for _, fa := range formatActions {
		if m.pendingOn.Has(fa.format) {
			if err := m.doc.ApplyFormat(start, end, fa.format, true); err != nil {
				return err
			}
		}
		if m.pendingOff.Has(fa.format) {
			if err := m.doc.ApplyFormat(start, end, fa.format, false); err != nil {
				return err
			}
		}
	}
	m.clearPending()
	return nil
}

// deleteTo removes [start, end) and maps the selection through the
// edit: a cursor inside the range collapses to start, one after it
// shifts left, one before it stays put.
func (m *ComposerModel) deleteTo(start, end int) error {
	if err := m.doc.DeleteRange(start, end); err != nil {
		return err
	}
	m.sel = m.sel.MapThrough(selection.Edit{Start: start, End: end}).Clamp(m.doc.Len())
	return nil
}

// collapseEmptyBlock implements the "collapse empty structural
// element first" rule: a collapsed cursor in an empty list item exits
// the list, an empty code block reverts to a paragraph, and an empty
// paragraph inside a quote lifts out of it. Returns false when the
// rule does not apply.
func (m *ComposerModel) collapseEmptyBlock(pos int) (ComposerUpdate, bool) {
	blocks := m.doc.Blocks()
	b := blocks[dom.BlockAt(blocks, pos)]
	if b.Start != b.End {
		return ComposerUpdate{}, false
	}
	switch m.doc.Kind(b.Node) {
	case dom.KindListItem:
		return m.commit(func() error {
			m.exitListItem(b.Node)
			return nil
		}), true
	case dom.KindCodeBlock:
		return m.commit(func() error {
			m.doc.SetKind(b.Node, dom.KindParagraph)
			m.doc.Normalize()
			return nil
		}), true
	case dom.KindParagraph:
		if q := m.doc.AncestorOfKind(b.Node, dom.KindQuote); q != dom.None && m.doc.Parent(b.Node) == q {
			return m.commit(func() error {
				m.liftFromQuote(b.Node, q)
				return nil
			}), true
		}
	}
	return ComposerUpdate{}, false
}

// liftFromQuote moves a direct-child paragraph out of its quote to
// just after it, splitting the quote when the paragraph is not last.
func (m *ComposerModel) liftFromQuote(p, q dom.NodeID) {
	parent := m.doc.Parent(q)
	idx := m.doc.ChildIndex(p)
	rest := append([]dom.NodeID(nil), m.doc.Children(q)[idx+1:]...)

	m.doc.Detach(p)
	m.doc.InsertChild(parent, m.doc.ChildIndex(q)+1, p)
	if len(rest) > 0 {
		second := m.doc.NewContainer(dom.KindQuote)
		for _, c := range rest {
			m.doc.Detach(c)
			m.doc.AppendChild(second, c)
		}
		m.doc.InsertChild(parent, m.doc.ChildIndex(p)+1, second)
	}
	m.doc.Normalize()
}
