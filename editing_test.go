package composer

import "testing"

func TestReplaceText(t *testing.T) {
	m := NewComposerModel()
	upd := m.ReplaceText("hello")
	if upd.TextUpdate.Kind != TextReplaceAll {
		t.Fatalf("TextUpdate.Kind = %v, want replace_all", upd.TextUpdate.Kind)
	}
	if upd.TextUpdate.HTML != "hello" {
		t.Errorf("html = %q", upd.TextUpdate.HTML)
	}
	if upd.TextUpdate.Start != 5 || upd.TextUpdate.End != 5 {
		t.Errorf("cursor = %d..%d, want 5..5", upd.TextUpdate.Start, upd.TextUpdate.End)
	}
}

func TestReplaceTextOverSelection(t *testing.T) {
	m := NewComposerModel()
	m.ReplaceText("hello world")
	m.Select(6, 11)
	m.ReplaceText("there")
	if got := m.GetContentAsPlainText(); got != "hello there" {
		t.Errorf("plain text = %q", got)
	}
}

func TestReplaceTextIn(t *testing.T) {
	m := NewComposerModel()
	m.ReplaceText("hello world")
	m.ReplaceTextIn("brave new", 6, 11)
	if got := m.GetContentAsPlainText(); got != "hello brave new" {
		t.Errorf("plain text = %q", got)
	}
	if st := m.GetCurrentDomState(); st.Start != 15 || st.End != 15 {
		t.Errorf("cursor = %d..%d, want 15..15", st.Start, st.End)
	}
}

func TestReplaceTextInClampsOffsets(t *testing.T) {
	m := NewComposerModel()
	m.ReplaceText("hi")
	m.ReplaceTextIn("!", 50, 99)
	if got := m.GetContentAsPlainText(); got != "hi!" {
		t.Errorf("plain text = %q", got)
	}
}

func TestReplaceTextMultiline(t *testing.T) {
	m := NewComposerModel()
	m.ReplaceText("a\nb")
	if got := m.GetContentAsHTML(); got != "<p>a</p><p>b</p>" {
		t.Errorf("html = %q", got)
	}
	if st := m.GetCurrentDomState(); st.Start != 3 {
		t.Errorf("cursor = %d, want 3", st.Start)
	}
}

func TestBackspace(t *testing.T) {
	m := NewComposerModel()
	m.ReplaceText("hello")
	m.Backspace()
	if got := m.GetContentAsPlainText(); got != "hell" {
		t.Errorf("plain text = %q", got)
	}
}

func TestBackspaceDeletesWholeGrapheme(t *testing.T) {
	m := NewComposerModel()
	m.ReplaceText("a\U0001F44D") // thumbs up is two codeunits
	m.Backspace()
	if got := m.GetContentAsPlainText(); got != "a" {
		t.Errorf("plain text = %q", got)
	}
	if st := m.GetCurrentDomState(); st.Start != 1 {
		t.Errorf("cursor = %d, want 1", st.Start)
	}
}

func TestBackspaceMergesBlocks(t *testing.T) {
	m := NewComposerModel()
	m.ReplaceText("a\nb")
	m.Select(2, 2) // start of the second paragraph
	m.Backspace()
	if got := m.GetContentAsHTML(); got != "ab" {
		t.Errorf("html = %q", got)
	}
}

func TestBackspaceSelection(t *testing.T) {
	m := NewComposerModel()
	m.ReplaceText("hello")
	m.Select(1, 4)
	m.Backspace()
	if got := m.GetContentAsPlainText(); got != "ho" {
		t.Errorf("plain text = %q", got)
	}
}

func TestBackspaceAtStartIsNoOp(t *testing.T) {
	m := NewComposerModel()
	m.ReplaceText("hi")
	m.Select(0, 0)
	upd := m.Backspace()
	if upd.TextUpdate.Kind != TextKeep {
		t.Errorf("TextUpdate.Kind = %v, want keep", upd.TextUpdate.Kind)
	}
	if got := m.GetContentAsPlainText(); got != "hi" {
		t.Errorf("plain text = %q", got)
	}
}

func TestBackspaceInEmptyListItemExitsList(t *testing.T) {
	m := NewComposerModel()
	if _, err := m.SetContentFromHTML("<ul><li>a</li><li></li></ul>"); err != nil {
		t.Fatal(err)
	}
	m.Select(2, 2) // inside the empty item
	m.Backspace()
	if got := m.GetContentAsHTML(); got != "<ul><li>a</li></ul><p></p>" {
		t.Errorf("html = %q", got)
	}
}

func TestBackspaceInEmptyCodeBlockRevertsToParagraph(t *testing.T) {
	m := NewComposerModel()
	m.ReplaceText("x")
	m.CodeBlock()
	m.Backspace() // remove "x"
	m.Backspace() // empty code block collapses
	if got := m.GetContentAsHTML(); got != "" {
		t.Errorf("html = %q, want empty paragraph", got)
	}
}

func TestDelete(t *testing.T) {
	m := NewComposerModel()
	m.ReplaceText("hello")
	m.Select(0, 0)
	m.Delete()
	if got := m.GetContentAsPlainText(); got != "ello" {
		t.Errorf("plain text = %q", got)
	}
	if st := m.GetCurrentDomState(); st.Start != 0 {
		t.Errorf("cursor = %d, want 0", st.Start)
	}
}

func TestDeleteAtEndIsNoOp(t *testing.T) {
	m := NewComposerModel()
	m.ReplaceText("hi")
	upd := m.Delete()
	if upd.TextUpdate.Kind != TextKeep {
		t.Errorf("TextUpdate.Kind = %v, want keep", upd.TextUpdate.Kind)
	}
}

func TestDeleteIn(t *testing.T) {
	m := NewComposerModel()
	m.ReplaceText("hello world")
	m.DeleteIn(5, 11)
	if got := m.GetContentAsPlainText(); got != "hello" {
		t.Errorf("plain text = %q", got)
	}
}

func TestDeleteInMapsSelection(t *testing.T) {
	t.Run("cursor before the range stays", func(t *testing.T) {
		m := NewComposerModel()
		m.ReplaceText("hello world")
		m.Select(2, 2)
		m.DeleteIn(5, 11)
		if st := m.GetCurrentDomState(); st.Start != 2 || st.End != 2 {
			t.Errorf("cursor = %d..%d, want 2..2", st.Start, st.End)
		}
	})

	t.Run("cursor after the range shifts left", func(t *testing.T) {
		m := NewComposerModel()
		m.ReplaceText("hello world")
		m.Select(11, 11)
		m.DeleteIn(0, 6)
		if st := m.GetCurrentDomState(); st.Start != 5 || st.End != 5 {
			t.Errorf("cursor = %d..%d, want 5..5", st.Start, st.End)
		}
	})

	t.Run("cursor inside the range collapses to its start", func(t *testing.T) {
		m := NewComposerModel()
		m.ReplaceText("hello world")
		m.Select(8, 8)
		m.DeleteIn(5, 11)
		if st := m.GetCurrentDomState(); st.Start != 5 || st.End != 5 {
			t.Errorf("cursor = %d..%d, want 5..5", st.Start, st.End)
		}
	})
}

func TestEnterSplitsParagraph(t *testing.T) {
	m := NewComposerModel()
	m.ReplaceText("hello")
	m.Select(2, 2)
	m.Enter()
	if got := m.GetContentAsHTML(); got != "<p>he</p><p>llo</p>" {
		t.Errorf("html = %q", got)
	}
	if st := m.GetCurrentDomState(); st.Start != 3 {
		t.Errorf("cursor = %d, want 3 (start of second block)", st.Start)
	}
}

func TestEnterInListItemSplitsItem(t *testing.T) {
	m := NewComposerModel()
	if _, err := m.SetContentFromHTML("<ol><li>ab</li></ol>"); err != nil {
		t.Fatal(err)
	}
	m.Select(1, 1)
	m.Enter()
	if got := m.GetContentAsHTML(); got != "<ol><li>a</li><li>b</li></ol>" {
		t.Errorf("html = %q", got)
	}
}

func TestEnterInEmptyListItemExitsList(t *testing.T) {
	m := NewComposerModel()
	if _, err := m.SetContentFromHTML("<ul><li>a</li><li></li></ul>"); err != nil {
		t.Fatal(err)
	}
	m.Select(2, 2)
	m.Enter()
	if got := m.GetContentAsHTML(); got != "<ul><li>a</li></ul><p></p>" {
		t.Errorf("html = %q", got)
	}
}

func TestEnterInCodeBlockInsertsLineBreak(t *testing.T) {
	m := NewComposerModel()
	m.ReplaceText("code")
	m.CodeBlock()
	m.Enter()
	m.ReplaceText("more")
	if got := m.GetContentAsHTML(); got != "<pre><code>code\nmore</code></pre>" {
		t.Errorf("html = %q", got)
	}
}

func TestEnterReplacesSelection(t *testing.T) {
	m := NewComposerModel()
	m.ReplaceText("hello")
	m.Select(1, 4)
	m.Enter()
	if got := m.GetContentAsHTML(); got != "<p>h</p><p>o</p>" {
		t.Errorf("html = %q", got)
	}
}
