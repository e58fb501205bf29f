package script

import (
	"testing"

	"github.com/dshills/composer"
)

func TestRunEdits(t *testing.T) {
	m := composer.NewComposerModel()
	r := NewRunner(m)
	defer r.Close()

	err := r.Run(`
		composer.replace_text("hello")
		composer.select(0, 5)
		composer.bold()
	`)
	if err != nil {
		t.Fatal(err)
	}
	if got := m.GetContentAsHTML(); got != "<strong>hello</strong>" {
		t.Errorf("html = %q", got)
	}
}

func TestReadAccessors(t *testing.T) {
	m := composer.NewComposerModel(composer.WithContent("<b>hi</b>"))
	r := NewRunner(m)
	defer r.Close()

	err := r.Run(`
		assert(composer.html() == "<strong>hi</strong>", composer.html())
		assert(composer.markdown() == "**hi**", composer.markdown())
		assert(composer.text() == "hi", composer.text())
	`)
	if err != nil {
		t.Fatal(err)
	}
}

func TestUndoFromScript(t *testing.T) {
	m := composer.NewComposerModel()
	r := NewRunner(m)
	defer r.Close()

	err := r.Run(`
		composer.replace_text("abc")
		composer.backspace()
		composer.undo()
	`)
	if err != nil {
		t.Fatal(err)
	}
	if got := m.GetContentAsPlainText(); got != "abc" {
		t.Errorf("plain text = %q", got)
	}
}

func TestContentLoadErrorRaises(t *testing.T) {
	r := NewRunner(composer.NewComposerModel())
	defer r.Close()

	err := r.Run(`composer.set_content_from_html("a\255b")`)
	if err == nil {
		t.Fatal("expected an error for invalid content")
	}
}

func TestSandboxBlocksFileAccess(t *testing.T) {
	r := NewRunner(composer.NewComposerModel())
	defer r.Close()

	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		if err := r.Run(name + `("x")`); err == nil {
			t.Errorf("%s should be unavailable", name)
		}
	}
}

func TestScriptErrorPropagates(t *testing.T) {
	r := NewRunner(composer.NewComposerModel())
	defer r.Close()

	if err := r.Run(`error("boom")`); err == nil {
		t.Fatal("expected an error")
	}
}
