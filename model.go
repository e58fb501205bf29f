package composer

import (
	"fmt"
	"maps"

	"github.com/dshills/composer/internal/codec/htmlcodec"
	"github.com/dshills/composer/internal/codec/mdcodec"
	"github.com/dshills/composer/internal/codec/plaintext"
	"github.com/dshills/composer/internal/dom"
	"github.com/dshills/composer/internal/history"
	"github.com/dshills/composer/internal/selection"
	"github.com/dshills/composer/internal/suggestion"
)

// DefaultMaxUndoDepth bounds the undo history when no depth is
// configured.
const DefaultMaxUndoDepth = history.DefaultMaxDepth

// ComposerModel is one composer session: the authoritative document
// tree, the selection, and the undo/redo history. It is
// single-threaded and not reentrant; the host must apply each
// returned ComposerUpdate before issuing the next command.
type ComposerModel struct {
	doc  *dom.Document
	sel  selection.Selection
	hist *history.History

	// Formats toggled at a collapsed cursor, consumed by the next
	// insertion.
	pendingOn  dom.FormatSet
	pendingOff dom.FormatSet

	// Diff baselines so updates can report Keep instead of repeating
	// unchanged menu state.
	lastPattern *suggestion.Pattern
	lastStates  map[Action]ActionState

	maxUndoDepth int
	initContent  string
}

// Option configures a ComposerModel during creation.
type Option func(*ComposerModel)

// WithMaxUndoDepth sets the maximum number of undo history entries.
func WithMaxUndoDepth(n int) Option {
	return func(m *ComposerModel) {
		if n > 0 {
			m.maxUndoDepth = n
		}
	}
}

// WithContent sets the initial content from an HTML string. Content
// that fails to parse is ignored and the model starts empty.
func WithContent(html string) Option {
	return func(m *ComposerModel) {
		m.initContent = html
	}
}

// NewComposerModel creates an empty composer session with the cursor
// at the end of the content.
func NewComposerModel(opts ...Option) *ComposerModel {
	m := &ComposerModel{maxUndoDepth: DefaultMaxUndoDepth}
	for _, opt := range opts {
		opt(m)
	}
	m.hist = history.New(m.maxUndoDepth)
	m.doc = dom.NewDocument()
	if m.initContent != "" {
		if d, err := htmlcodec.Parse(m.initContent); err == nil {
			m.doc = d
		}
	}
	m.sel = selection.At(m.doc.Len())
	return m
}

// SetContentFromHTML replaces the document with the parsed HTML and
// places the cursor at the end. On a parse failure the prior state is
// kept and ErrHTMLParse returned.
func (m *ComposerModel) SetContentFromHTML(html string) (ComposerUpdate, error) {
	d, err := htmlcodec.Parse(html)
	if err != nil {
		return m.keepUpdate(), fmt.Errorf("%w: %v", ErrHTMLParse, err)
	}
	return m.setContent(d), nil
}

// SetContentFromMarkdown replaces the document with the parsed
// Markdown and places the cursor at the end. On a parse failure the
// prior state is kept and ErrMarkdownParse returned.
func (m *ComposerModel) SetContentFromMarkdown(md string) (ComposerUpdate, error) {
	d, err := mdcodec.Parse(md)
	if err != nil {
		return m.keepUpdate(), fmt.Errorf("%w: %v", ErrMarkdownParse, err)
	}
	return m.setContent(d), nil
}

func (m *ComposerModel) setContent(d *dom.Document) ComposerUpdate {
	m.hist.Push(history.Entry{Doc: m.doc, Sel: m.sel})
	m.doc = d
	m.sel = selection.At(d.Len())
	m.clearPending()
	return m.replaceAllUpdate()
}

// GetContentAsHTML serializes the document to HTML. Pure read.
func (m *ComposerModel) GetContentAsHTML() string {
	return htmlcodec.Serialize(m.doc)
}

// GetContentAsMarkdown serializes the document to Markdown. Pure read.
func (m *ComposerModel) GetContentAsMarkdown() string {
	return mdcodec.Serialize(m.doc)
}

// GetContentAsPlainText serializes the document to plain text. Pure
// read.
func (m *ComposerModel) GetContentAsPlainText() string {
	return plaintext.Serialize(m.doc)
}

// Clear replaces the document with an empty one. Undoable.
func (m *ComposerModel) Clear() ComposerUpdate {
	m.clearPending()
	m.hist.Push(history.Entry{Doc: m.doc, Sel: m.sel})
	m.doc = dom.NewDocument()
	m.sel = selection.At(0)
	return m.replaceAllUpdate()
}

// Select moves the selection without mutating the tree. Out-of-range
// offsets are clamped; anchor > head is a valid reversed selection.
// Selecting the current bounds again returns a Keep update.
func (m *ComposerModel) Select(start, end int) ComposerUpdate {
	ns := selection.New(start, end).Clamp(m.doc.Len())
	if ns == m.sel {
		return ComposerUpdate{
			TextUpdate: TextUpdate{Kind: TextKeep},
			MenuState:  m.menuState(),
			MenuAction: m.menuAction(),
		}
	}
	m.clearPending()
	m.sel = ns
	return ComposerUpdate{
		TextUpdate: TextUpdate{Kind: TextSelect, Start: ns.Anchor, End: ns.Head},
		MenuState:  m.menuState(),
		MenuAction: m.menuAction(),
	}
}

// Undo restores the state before the most recent committed mutation.
// Returns a Keep update when the undo stack is empty.
func (m *ComposerModel) Undo() ComposerUpdate {
	m.clearPending()
	prev, ok := m.hist.Undo(history.Entry{Doc: m.doc, Sel: m.sel})
	if !ok {
		return m.keepUpdate()
	}
	m.doc, m.sel = prev.Doc, prev.Sel
	return m.replaceAllUpdate()
}

// Redo reverses the most recent Undo. Returns a Keep update when the
// redo stack is empty.
func (m *ComposerModel) Redo() ComposerUpdate {
	m.clearPending()
	next, ok := m.hist.Redo(history.Entry{Doc: m.doc, Sel: m.sel})
	if !ok {
		return m.keepUpdate()
	}
	m.doc, m.sel = next.Doc, next.Sel
	return m.replaceAllUpdate()
}

// DomState is the full serialized state returned by
// GetCurrentDomState.
type DomState struct {
	HTML  string
	Start int
	End   int
}

// GetCurrentDomState returns the serialized HTML and the selection's
// anchor/head in UTF-16 codeunits. Pure read.
func (m *ComposerModel) GetCurrentDomState() DomState {
	return DomState{
		HTML:  htmlcodec.Serialize(m.doc),
		Start: m.sel.Anchor,
		End:   m.sel.Head,
	}
}

// ToTree returns an indented debug dump of the document tree.
func (m *ComposerModel) ToTree() string {
	return m.doc.ToTree()
}

// ToExampleFormat returns the serialized HTML with the selection
// marked inline: | for a collapsed cursor, {…}| for a forward
// selection, |{…} for a reversed one.
func (m *ComposerModel) ToExampleFormat() string {
	d := m.doc.Clone()
	start, end := m.sel.Start(), m.sel.End()
	// Insert at the end first so the start offset stays valid.
	switch {
	case m.sel.IsCollapsed():
		_ = d.InsertText(start, "|")
	case m.sel.IsReversed():
		_ = d.InsertText(end, "}")
		_ = d.InsertText(start, "|{")
	default:
		_ = d.InsertText(end, "}|")
		_ = d.InsertText(start, "{")
	}
	return htmlcodec.Serialize(d)
}

// snapshot captures the current state for the undo stack.
func (m *ComposerModel) snapshot() history.Entry {
	return history.Entry{Doc: m.doc.Clone(), Sel: m.sel}
}

// commit runs a mutation as one undoable step. The pre-call state is
// snapshotted first; on an internal tree error the snapshot is
// restored and a full Keep update returned (fail closed).
func (m *ComposerModel) commit(fn func() error) ComposerUpdate {
	prev := m.snapshot()
	if err := fn(); err != nil {
		m.doc, m.sel = prev.Doc, prev.Sel
		return m.keepUpdate()
	}
	m.hist.Push(prev)
	return m.replaceAllUpdate()
}

// commitInsert is commit for a pure text insert, which may coalesce
// with the previous typing entry in history.
func (m *ComposerModel) commitInsert(start, insertLen int, text string, fn func() error) ComposerUpdate {
	prev := m.snapshot()
	if err := fn(); err != nil {
		m.doc, m.sel = prev.Doc, prev.Sel
		return m.keepUpdate()
	}
	m.hist.PushInsert(prev, start, text, start+insertLen)
	return m.replaceAllUpdate()
}

// keepUpdate is the no-op update: nothing for the host to do.
func (m *ComposerModel) keepUpdate() ComposerUpdate {
	return ComposerUpdate{
		TextUpdate: TextUpdate{Kind: TextKeep},
		MenuState:  MenuState{Kind: MenuKeep},
		MenuAction: MenuAction{Kind: MenuActionKeep},
	}
}

// replaceAllUpdate packages the current state as a full replacement.
func (m *ComposerModel) replaceAllUpdate() ComposerUpdate {
	return ComposerUpdate{
		TextUpdate: TextUpdate{
			Kind:  TextReplaceAll,
			HTML:  htmlcodec.Serialize(m.doc),
			Start: m.sel.Anchor,
			End:   m.sel.Head,
		},
		MenuState:  m.menuState(),
		MenuAction: m.menuAction(),
	}
}

// menuState diffs the action states against the last reported map.
func (m *ComposerModel) menuState() MenuState {
	states := m.computeActionStates()
	if maps.Equal(states, m.lastStates) {
		return MenuState{Kind: MenuKeep}
	}
	m.lastStates = states
	return MenuState{Kind: MenuUpdate, States: states}
}

// menuAction diffs the active suggestion pattern against the last
// reported one.
func (m *ComposerModel) menuAction() MenuAction {
	p := m.detectPattern()
	if p.Equal(m.lastPattern) {
		return MenuAction{Kind: MenuActionKeep}
	}
	m.lastPattern = p
	if p == nil {
		return MenuAction{Kind: MenuActionNone}
	}
	return MenuAction{
		Kind: MenuActionSuggestion,
		Suggestion: SuggestionPattern{
			Key:   PatternKey(p.Key),
			Text:  p.Text,
			Start: p.Start,
			End:   p.End,
		},
	}
}

// detectPattern runs the suggestion detector at a collapsed cursor.
func (m *ComposerModel) detectPattern() *suggestion.Pattern {
	if !m.sel.IsCollapsed() {
		return nil
	}
	return suggestion.Detect(plaintext.Serialize(m.doc), m.sel.Head)
}

// clampRange clamps a host-supplied range to the document and returns
// it normalized low-to-high.
func (m *ComposerModel) clampRange(start, end int) (int, int) {
	s := selection.New(start, end).Clamp(m.doc.Len())
	return s.Start(), s.End()
}

func (m *ComposerModel) clearPending() {
	m.pendingOn, m.pendingOff = 0, 0
}

// formatsAtCursor returns the inline formats a collapsed cursor sits
// in.
func (m *ComposerModel) formatsAtCursor() dom.FormatSet {
	blocks := m.doc.Blocks()
	pos := m.sel.Head
	b := blocks[dom.BlockAt(blocks, pos)]
	return dom.FormatsAt(m.doc.Runs(b.Node), pos-b.Start)
}

// rangeInCodeBlock reports whether any leaf block covered by
// [start, end] is a code block.
func (m *ComposerModel) rangeInCodeBlock(blocks []dom.Block, start, end int) bool {
	for i := dom.BlockAt(blocks, start); i <= dom.BlockAt(blocks, end); i++ {
		if m.doc.Kind(blocks[i].Node) == dom.KindCodeBlock {
			return true
		}
	}
	return false
}

// listKindAt returns the kind of the list containing the leaf block
// at off, when that block is a list item.
func (m *ComposerModel) listKindAt(blocks []dom.Block, off int) (dom.Kind, bool) {
	b := blocks[dom.BlockAt(blocks, off)]
	if m.doc.Kind(b.Node) != dom.KindListItem {
		return dom.KindDocument, false
	}
	return m.doc.Kind(m.doc.Parent(b.Node)), true
}

// linkRangeAt finds the contiguous link span containing a collapsed
// cursor, preferring the span that ends at the cursor.
func (m *ComposerModel) linkRangeAt(off int) (start, end int, href string, ok bool) {
	type span struct {
		s, e int
		href string
	}
	for _, b := range m.doc.Blocks() {
		if off < b.Start || off > b.End {
			continue
		}
		var spans []span
		pos := b.Start
		for _, r := range m.doc.Runs(b.Node) {
			l := r.Len()
			h := ""
			if !r.Mention && !r.Break {
				h = r.Link
			}
			if n := len(spans); n > 0 && spans[n-1].href == h {
				spans[n-1].e = pos + l
			} else {
				spans = append(spans, span{s: pos, e: pos + l, href: h})
			}
			pos += l
		}
		for _, sp := range spans {
			if sp.href != "" && off > sp.s && off <= sp.e {
				return sp.s, sp.e, sp.href, true
			}
		}
		return 0, 0, "", false
	}
	return 0, 0, "", false
}
