package composer

import (
	"errors"
	"testing"
)

func TestNewComposerModelEmpty(t *testing.T) {
	m := NewComposerModel()
	if got := m.GetContentAsHTML(); got != "" {
		t.Errorf("html = %q, want empty", got)
	}
	st := m.GetCurrentDomState()
	if st.Start != 0 || st.End != 0 {
		t.Errorf("selection = %d..%d, want 0..0", st.Start, st.End)
	}
}

func TestWithContent(t *testing.T) {
	m := NewComposerModel(WithContent("<b>hi</b>"))
	if got := m.GetContentAsHTML(); got != "<strong>hi</strong>" {
		t.Errorf("html = %q", got)
	}
	if st := m.GetCurrentDomState(); st.Start != 2 || st.End != 2 {
		t.Errorf("cursor = %d..%d, want 2..2 (end of content)", st.Start, st.End)
	}
}

func TestSetContentFromHTML(t *testing.T) {
	m := NewComposerModel()
	upd, err := m.SetContentFromHTML("<b>hi</b>")
	if err != nil {
		t.Fatalf("SetContentFromHTML: %v", err)
	}
	if upd.TextUpdate.Kind != TextReplaceAll {
		t.Errorf("TextUpdate.Kind = %v, want replace_all", upd.TextUpdate.Kind)
	}
	if got := m.GetContentAsPlainText(); got != "hi" {
		t.Errorf("plain text = %q, want %q", got, "hi")
	}
}

func TestSetContentFromHTMLRejectsInvalidInput(t *testing.T) {
	m := NewComposerModel()
	m.ReplaceText("keep me")
	upd, err := m.SetContentFromHTML("a\xffb")
	if !errors.Is(err, ErrHTMLParse) {
		t.Fatalf("err = %v, want ErrHTMLParse", err)
	}
	if upd.TextUpdate.Kind != TextKeep {
		t.Errorf("failed load must return a Keep update, got %v", upd.TextUpdate.Kind)
	}
	if got := m.GetContentAsPlainText(); got != "keep me" {
		t.Errorf("prior state lost: %q", got)
	}
}

func TestSetContentFromMarkdown(t *testing.T) {
	m := NewComposerModel()
	if _, err := m.SetContentFromMarkdown("**hi** *there*"); err != nil {
		t.Fatalf("SetContentFromMarkdown: %v", err)
	}
	if got := m.GetContentAsHTML(); got != "<strong>hi</strong> <em>there</em>" {
		t.Errorf("html = %q", got)
	}
	if _, err := m.SetContentFromMarkdown("a\xffb"); !errors.Is(err, ErrMarkdownParse) {
		t.Errorf("err = %v, want ErrMarkdownParse", err)
	}
}

func TestGetContentAsMarkdown(t *testing.T) {
	m := NewComposerModel()
	if _, err := m.SetContentFromHTML("<strong>hi</strong>"); err != nil {
		t.Fatal(err)
	}
	if got := m.GetContentAsMarkdown(); got != "**hi**" {
		t.Errorf("markdown = %q", got)
	}
}

func TestClear(t *testing.T) {
	m := NewComposerModel()
	m.ReplaceText("hello")
	m.Clear()
	if got := m.GetContentAsHTML(); got != "" {
		t.Errorf("html after clear = %q", got)
	}
	m.Undo()
	if got := m.GetContentAsPlainText(); got != "hello" {
		t.Errorf("clear is not undoable: %q", got)
	}
}

func TestSelect(t *testing.T) {
	m := NewComposerModel()
	m.ReplaceText("hello")

	upd := m.Select(0, 5)
	if upd.TextUpdate.Kind != TextSelect || upd.TextUpdate.Start != 0 || upd.TextUpdate.End != 5 {
		t.Errorf("TextUpdate = %+v", upd.TextUpdate)
	}

	// Same bounds again: nothing to do.
	again := m.Select(0, 5)
	if again.TextUpdate.Kind != TextKeep {
		t.Errorf("repeat select TextUpdate.Kind = %v, want keep", again.TextUpdate.Kind)
	}
	if again.MenuState.Kind != MenuKeep || again.MenuAction.Kind != MenuActionKeep {
		t.Errorf("repeat select menu = %v/%v, want keep/keep", again.MenuState.Kind, again.MenuAction.Kind)
	}
}

func TestSelectClampsAndPreservesReversal(t *testing.T) {
	m := NewComposerModel()
	m.ReplaceText("hello")

	upd := m.Select(99, -2)
	if upd.TextUpdate.Start != 5 || upd.TextUpdate.End != 0 {
		t.Errorf("clamped selection = %d..%d, want 5..0 (reversed)", upd.TextUpdate.Start, upd.TextUpdate.End)
	}
	st := m.GetCurrentDomState()
	if st.Start != 5 || st.End != 0 {
		t.Errorf("dom state selection = %d..%d, want 5..0", st.Start, st.End)
	}
}

func TestUndoRedoInverse(t *testing.T) {
	m := NewComposerModel()
	m.ReplaceText("hello")
	m.Select(0, 5)
	m.Bold()
	if got := m.GetContentAsHTML(); got != "<strong>hello</strong>" {
		t.Fatalf("html = %q", got)
	}

	m.Undo()
	if got := m.GetContentAsHTML(); got != "hello" {
		t.Errorf("undo html = %q", got)
	}
	if st := m.GetCurrentDomState(); st.Start != 0 || st.End != 5 {
		t.Errorf("undo selection = %d..%d, want 0..5", st.Start, st.End)
	}

	m.Redo()
	if got := m.GetContentAsHTML(); got != "<strong>hello</strong>" {
		t.Errorf("redo html = %q", got)
	}
}

func TestUndoCoalescesTyping(t *testing.T) {
	m := NewComposerModel()
	m.ReplaceText("h")
	m.ReplaceText("i")
	m.Undo()
	if got := m.GetContentAsPlainText(); got != "" {
		t.Errorf("one undo should remove the whole typed word, got %q", got)
	}
}

func TestUndoEmptyStackIsNoOp(t *testing.T) {
	m := NewComposerModel()
	upd := m.Undo()
	if upd.TextUpdate.Kind != TextKeep || upd.MenuState.Kind != MenuKeep || upd.MenuAction.Kind != MenuActionKeep {
		t.Errorf("empty undo = %+v, want full keep", upd)
	}
	if upd := m.Redo(); upd.TextUpdate.Kind != TextKeep {
		t.Errorf("empty redo TextUpdate.Kind = %v", upd.TextUpdate.Kind)
	}
}

func TestSuggestionLifecycle(t *testing.T) {
	m := NewComposerModel()
	upd := m.ReplaceText("@al")
	if upd.MenuAction.Kind != MenuActionSuggestion {
		t.Fatalf("MenuAction.Kind = %v, want suggestion", upd.MenuAction.Kind)
	}
	want := SuggestionPattern{Key: KeyAt, Text: "al", Start: 0, End: 3}
	if upd.MenuAction.Suggestion != want {
		t.Errorf("pattern = %+v, want %+v", upd.MenuAction.Suggestion, want)
	}

	// Consuming the pattern replaces its recorded range.
	upd = m.ReplaceTextSuggestion("alice", upd.MenuAction.Suggestion)
	if got := m.GetContentAsPlainText(); got != "alice" {
		t.Errorf("plain text = %q", got)
	}
	if upd.MenuAction.Kind != MenuActionNone {
		t.Errorf("MenuAction.Kind after consume = %v, want none", upd.MenuAction.Kind)
	}
}

func TestSuggestionConsumedAfterCursorMove(t *testing.T) {
	m := NewComposerModel()
	upd := m.ReplaceText("@al cursor moves")
	// The pattern was captured while typing "@al"; replay it after the
	// cursor moved on.
	pattern := SuggestionPattern{Key: KeyAt, Text: "al", Start: 0, End: 3}
	_ = upd
	m.ReplaceTextSuggestion("alice", pattern)
	if got := m.GetContentAsPlainText(); got != "alice cursor moves" {
		t.Errorf("plain text = %q", got)
	}
}

func TestMenuActionKeepWhenUnchanged(t *testing.T) {
	m := NewComposerModel()
	if upd := m.ReplaceText("a"); upd.MenuAction.Kind != MenuActionKeep {
		t.Errorf("no pattern before or after: MenuAction.Kind = %v, want keep", upd.MenuAction.Kind)
	}
}

func TestGetCurrentDomState(t *testing.T) {
	m := NewComposerModel()
	m.ReplaceText("hello")
	m.Select(1, 3)
	st := m.GetCurrentDomState()
	if st.HTML != "hello" || st.Start != 1 || st.End != 3 {
		t.Errorf("dom state = %+v", st)
	}
}

func TestToExampleFormat(t *testing.T) {
	tests := []struct {
		name       string
		start, end int
		want       string
	}{
		{"collapsed", 2, 2, "he|llo"},
		{"forward", 0, 5, "{hello}|"},
		{"reversed", 5, 0, "|{hello}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewComposerModel()
			m.ReplaceText("hello")
			m.Select(tt.start, tt.end)
			if got := m.ToExampleFormat(); got != tt.want {
				t.Errorf("ToExampleFormat = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestToTree(t *testing.T) {
	m := NewComposerModel()
	m.ReplaceText("hi")
	if got := m.ToTree(); got == "" {
		t.Error("ToTree returned empty dump")
	}
}
