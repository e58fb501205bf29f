package composer

// TextUpdateKind selects the variant of a TextUpdate.
type TextUpdateKind int

const (
	// TextKeep means the host's text buffer is already correct.
	TextKeep TextUpdateKind = iota

	// TextReplaceAll means the host must replace its entire buffer
	// with HTML and apply the given selection.
	TextReplaceAll

	// TextSelect means only the selection changed.
	TextSelect
)

// String returns the wire name of the kind.
func (k TextUpdateKind) String() string {
	switch k {
	case TextReplaceAll:
		return "replace_all"
	case TextSelect:
		return "select"
	default:
		return "keep"
	}
}

// TextUpdate tells the host what to do with its native text buffer.
// The engine never emits incremental patches: a content change is
// always a full replacement plus a selection.
type TextUpdate struct {
	Kind TextUpdateKind

	// HTML is the full serialized document. Set for TextReplaceAll.
	HTML string

	// Start and End are the selection's anchor and head in UTF-16
	// codeunits over the document text. Start may exceed End for a
	// reversed selection. Set for TextReplaceAll and TextSelect.
	Start int
	End   int
}

// MenuStateKind selects the variant of a MenuState.
type MenuStateKind int

const (
	// MenuKeep means the action states are unchanged.
	MenuKeep MenuStateKind = iota

	// MenuUpdate carries a full replacement action-state map.
	MenuUpdate
)

// String returns the wire name of the kind.
func (k MenuStateKind) String() string {
	if k == MenuUpdate {
		return "update"
	}
	return "keep"
}

// MenuState tells the host whether its formatting menu needs
// re-rendering.
type MenuState struct {
	Kind   MenuStateKind
	States map[Action]ActionState
}

// MenuActionKind selects the variant of a MenuAction.
type MenuActionKind int

const (
	// MenuActionKeep means the suggestion state is unchanged since
	// the last report.
	MenuActionKeep MenuActionKind = iota

	// MenuActionNone means no trigger pattern is active.
	MenuActionNone

	// MenuActionSuggestion means a trigger pattern is active.
	MenuActionSuggestion
)

// String returns the wire name of the kind.
func (k MenuActionKind) String() string {
	switch k {
	case MenuActionNone:
		return "none"
	case MenuActionSuggestion:
		return "suggestion"
	default:
		return "keep"
	}
}

// MenuAction tells the host whether to show, hide, or leave alone its
// suggestion menu.
type MenuAction struct {
	Kind MenuActionKind

	// Suggestion is the active pattern. Set for MenuActionSuggestion.
	Suggestion SuggestionPattern
}

// ComposerUpdate is the outward-facing diff returned by every
// command: what to do with the text buffer, the menu, and the
// suggestion popup. It is computed fresh per call and never stored.
type ComposerUpdate struct {
	TextUpdate TextUpdate
	MenuState  MenuState
	MenuAction MenuAction
}

// PatternKey identifies the trigger character of a suggestion
// pattern.
type PatternKey int

const (
	KeyUnknown PatternKey = iota
	KeyAt
	KeyHash
	KeySlash
)

// String returns the wire name of the key.
func (k PatternKey) String() string {
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

// SuggestionPattern describes a live trigger token near the cursor,
// such as "@al" while typing a mention. Text excludes the trigger
// character; Start and End are UTF-16 offsets over the document text
// covering the whole token including the trigger. Patterns are
// transient: recomputed after every mutation, never stored in
// history.
type SuggestionPattern struct {
	Key   PatternKey
	Text  string
	Start int
	End   int
}
