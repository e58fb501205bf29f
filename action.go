package composer

import "github.com/dshills/composer/internal/dom"

// Action names a toolbar/menu action whose availability the host
// renders. The values are the wire names used in action-state maps.
type Action string

const (
	ActionBold          Action = "Bold"
	ActionItalic        Action = "Italic"
	ActionStrikeThrough Action = "StrikeThrough"
	ActionUnderline     Action = "Underline"
	ActionInlineCode    Action = "InlineCode"
	ActionLink          Action = "Link"
	ActionOrderedList   Action = "OrderedList"
	ActionUnorderedList Action = "UnorderedList"
	ActionIndent        Action = "Indent"
	ActionUnindent      Action = "Unindent"
	ActionCodeBlock     Action = "CodeBlock"
	ActionQuote         Action = "Quote"
	ActionUndo          Action = "Undo"
	ActionRedo          Action = "Redo"
)

// ActionState is the availability of an action for the current
// selection.
type ActionState int

const (
	// ActionEnabled means the action can be applied.
	ActionEnabled ActionState = iota

	// ActionReversed means the action is already applied; invoking
	// it reverses (removes) it.
	ActionReversed

	// ActionDisabled means the action is unavailable in the current
	// context.
	ActionDisabled
)

// String returns the wire name of the state.
func (s ActionState) String() string {
	switch s {
	case ActionReversed:
		return "Reversed"
	case ActionDisabled:
		return "Disabled"
	default:
		return "Enabled"
	}
}

// LinkActionKind classifies what a link command would do in the
// current context.
type LinkActionKind int

const (
	// LinkActionCreateWithText means the cursor is collapsed: a link
	// needs both an href and display text.
	LinkActionCreateWithText LinkActionKind = iota

	// LinkActionCreate means a non-empty selection can be wrapped in
	// a link.
	LinkActionCreate

	// LinkActionEdit means the selection is inside an existing link
	// whose href can be changed.
	LinkActionEdit

	// LinkActionDisabled means links are unavailable here (inside a
	// code block).
	LinkActionDisabled
)

// String returns the wire name of the kind.
func (k LinkActionKind) String() string {
	switch k {
	case LinkActionCreate:
		return "Create"
	case LinkActionEdit:
		return "Edit"
	case LinkActionDisabled:
		return "Disabled"
	default:
		return "CreateWithText"
	}
}

// LinkAction is the classification returned by GetLinkAction. Href is
// set for LinkActionEdit.
type LinkAction struct {
	Kind LinkActionKind
	Href string
}

// formatActions pairs each formatting action with its format bit, in
// canonical order.
var formatActions = []struct {
	action Action
	format dom.Format
}{
	{ActionBold, dom.FormatBold},
	{ActionItalic, dom.FormatItalic},
	{ActionStrikeThrough, dom.FormatStrikeThrough},
	{ActionUnderline, dom.FormatUnderline},
	{ActionInlineCode, dom.FormatInlineCode},
}

// ActionStates reports the availability of every action for the
// current selection. Pure read.
func (m *ComposerModel) ActionStates() map[Action]ActionState {
	return m.computeActionStates()
}

func (m *ComposerModel) computeActionStates() map[Action]ActionState {
	st := make(map[Action]ActionState, 14)
	start, end := m.sel.Start(), m.sel.End()
	blocks := m.doc.Blocks()
	inCode := m.rangeInCodeBlock(blocks, start, end)

	for _, fa := range formatActions {
		st[fa.action] = m.formatState(fa.format, inCode)
	}

	switch m.GetLinkAction().Kind {
	case LinkActionDisabled:
		st[ActionLink] = ActionDisabled
	case LinkActionEdit:
		st[ActionLink] = ActionReversed
	default:
		st[ActionLink] = ActionEnabled
	}

	st[ActionOrderedList] = ActionEnabled
	st[ActionUnorderedList] = ActionEnabled
	if kind, ok := m.listKindAt(blocks, start); ok {
		if kind == dom.KindOrderedList {
			st[ActionOrderedList] = ActionReversed
		} else {
			st[ActionUnorderedList] = ActionReversed
		}
	} else if inCode {
		st[ActionOrderedList] = ActionDisabled
		st[ActionUnorderedList] = ActionDisabled
	}

	st[ActionIndent] = ActionDisabled
	st[ActionUnindent] = ActionDisabled
	b := blocks[dom.BlockAt(blocks, start)]
	if m.doc.Kind(b.Node) == dom.KindListItem {
		if m.doc.ChildIndex(b.Node) > 0 {
			st[ActionIndent] = ActionEnabled
		}
		outer := m.doc.Parent(m.doc.Parent(b.Node))
		if m.doc.Kind(outer) == dom.KindListItem {
			st[ActionUnindent] = ActionEnabled
		}
	}

	if inCode {
		st[ActionCodeBlock] = ActionReversed
	} else {
		st[ActionCodeBlock] = ActionEnabled
	}
	if m.doc.AncestorOfKind(b.Node, dom.KindQuote) != dom.None {
		st[ActionQuote] = ActionReversed
	} else {
		st[ActionQuote] = ActionEnabled
	}

	if m.hist.CanUndo() {
		st[ActionUndo] = ActionEnabled
	} else {
		st[ActionUndo] = ActionDisabled
	}
	if m.hist.CanRedo() {
		st[ActionRedo] = ActionEnabled
	} else {
		st[ActionRedo] = ActionDisabled
	}
	return st
}

// formatState classifies one inline format for the current selection.
func (m *ComposerModel) formatState(f dom.Format, inCode bool) ActionState {
	if inCode {
		return ActionDisabled
	}
	if m.sel.IsCollapsed() {
		switch {
		case m.pendingOn.Has(f):
			return ActionReversed
		case m.pendingOff.Has(f):
			return ActionEnabled
		case m.formatsAtCursor().Has(f):
			return ActionReversed
		default:
			return ActionEnabled
		}
	}
	common, ok := dom.CommonFormats(m.doc.RangeRuns(m.sel.Start(), m.sel.End()))
	if ok && common.Has(f) {
		return ActionReversed
	}
	return ActionEnabled
}

// GetLinkAction classifies what a link command would do right now:
// create a link with new text (collapsed cursor), wrap the selection,
// edit the covering link's href, or nothing (inside a code block).
func (m *ComposerModel) GetLinkAction() LinkAction {
	blocks := m.doc.Blocks()
	start, end := m.sel.Start(), m.sel.End()
	if m.rangeInCodeBlock(blocks, start, end) {
		return LinkAction{Kind: LinkActionDisabled}
	}
	if m.sel.IsCollapsed() {
		b := blocks[dom.BlockAt(blocks, m.sel.Head)]
		if href := dom.LinkAt(m.doc.Runs(b.Node), m.sel.Head-b.Start); href != "" {
			return LinkAction{Kind: LinkActionEdit, Href: href}
		}
		return LinkAction{Kind: LinkActionCreateWithText}
	}
	if href := dom.CommonLink(m.doc.RangeRuns(start, end)); href != "" {
		return LinkAction{Kind: LinkActionEdit, Href: href}
	}
	return LinkAction{Kind: LinkActionCreate}
}
