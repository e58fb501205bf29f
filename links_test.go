package composer

import "testing"

func TestSetLinkOnSelection(t *testing.T) {
	m := NewComposerModel()
	m.ReplaceText("hi")
	m.Select(0, 2)
	m.SetLink("https://example.com")
	if got := m.GetContentAsHTML(); got != `<a href="https://example.com">hi</a>` {
		t.Errorf("html = %q", got)
	}
}

func TestSetLinkEditsCoveringLink(t *testing.T) {
	m := NewComposerModel()
	if _, err := m.SetContentFromHTML(`<a href="https://old.example">hi</a>`); err != nil {
		t.Fatal(err)
	}
	m.Select(1, 1)
	m.SetLink("https://new.example")
	if got := m.GetContentAsHTML(); got != `<a href="https://new.example">hi</a>` {
		t.Errorf("html = %q", got)
	}
}

func TestSetLinkCollapsedOutsideLinkIsNoOp(t *testing.T) {
	m := NewComposerModel()
	m.ReplaceText("hi")
	if upd := m.SetLink("https://example.com"); upd.TextUpdate.Kind != TextKeep {
		t.Errorf("TextUpdate.Kind = %v, want keep", upd.TextUpdate.Kind)
	}
}

func TestSetLinkWithText(t *testing.T) {
	m := NewComposerModel()
	m.ReplaceText("go ")
	m.SetLinkWithText("https://example.com", "here")
	if got := m.GetContentAsHTML(); got != `go <a href="https://example.com">here</a>` {
		t.Errorf("html = %q", got)
	}
	if st := m.GetCurrentDomState(); st.Start != 7 {
		t.Errorf("cursor = %d, want 7", st.Start)
	}
}

func TestSetLinkSuggestion(t *testing.T) {
	m := NewComposerModel()
	upd := m.ReplaceText("@al")
	if upd.MenuAction.Kind != MenuActionSuggestion {
		t.Fatal("expected a suggestion")
	}
	m.SetLinkSuggestion("https://m.example/alice", "Alice", upd.MenuAction.Suggestion)
	if got := m.GetContentAsHTML(); got != `<a href="https://m.example/alice">Alice</a>` {
		t.Errorf("html = %q", got)
	}
}

func TestRemoveLinks(t *testing.T) {
	m := NewComposerModel()
	if _, err := m.SetContentFromHTML(`<a href="https://a.example">one</a> and <a href="https://b.example">two</a>`); err != nil {
		t.Fatal(err)
	}
	m.Select(0, 12)
	m.RemoveLinks()
	if got := m.GetContentAsHTML(); got != "one and two" {
		t.Errorf("html = %q", got)
	}
}

func TestRemoveLinksCollapsedInsideLink(t *testing.T) {
	m := NewComposerModel()
	if _, err := m.SetContentFromHTML(`<a href="https://a.example">hi</a>`); err != nil {
		t.Fatal(err)
	}
	m.Select(1, 1)
	m.RemoveLinks()
	if got := m.GetContentAsHTML(); got != "hi" {
		t.Errorf("html = %q", got)
	}
}

func TestGetLinkAction(t *testing.T) {
	t.Run("collapsed outside link", func(t *testing.T) {
		m := NewComposerModel()
		m.ReplaceText("hi")
		if got := m.GetLinkAction(); got.Kind != LinkActionCreateWithText {
			t.Errorf("kind = %v, want CreateWithText", got.Kind)
		}
	})

	t.Run("non-empty selection", func(t *testing.T) {
		m := NewComposerModel()
		m.ReplaceText("hi")
		m.Select(0, 2)
		if got := m.GetLinkAction(); got.Kind != LinkActionCreate {
			t.Errorf("kind = %v, want Create", got.Kind)
		}
	})

	t.Run("inside link", func(t *testing.T) {
		m := NewComposerModel()
		if _, err := m.SetContentFromHTML(`<a href="https://e.example">hi</a>`); err != nil {
			t.Fatal(err)
		}
		m.Select(1, 1)
		got := m.GetLinkAction()
		if got.Kind != LinkActionEdit || got.Href != "https://e.example" {
			t.Errorf("link action = %+v, want Edit(https://e.example)", got)
		}
	})

	t.Run("in code block", func(t *testing.T) {
		m := NewComposerModel()
		m.ReplaceText("x")
		m.CodeBlock()
		if got := m.GetLinkAction(); got.Kind != LinkActionDisabled {
			t.Errorf("kind = %v, want Disabled", got.Kind)
		}
	})
}

func TestLinkActionState(t *testing.T) {
	m := NewComposerModel()
	if _, err := m.SetContentFromHTML(`<a href="https://e.example">hi</a>`); err != nil {
		t.Fatal(err)
	}
	m.Select(0, 2)
	if got := m.ActionStates()[ActionLink]; got != ActionReversed {
		t.Errorf("Link state over link = %v, want Reversed", got)
	}
}
