package plaintext

import (
	"testing"

	"github.com/dshills/composer/internal/codec/htmlcodec"
	"github.com/dshills/composer/internal/dom"
	"github.com/dshills/composer/internal/textutil"
)

func TestSerialize(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{"plain", "hello", "hello"},
		{"formatting dropped", "<b>hi</b>", "hi"},
		{"paragraphs", "<p>a</p><p>b</p>", "a\nb"},
		{"line break", "a<br>b", "a\nb"},
		{"list", "<ul><li>a</li><li>b</li></ul>", "a\nb"},
		{"link keeps text", `<a href="https://example.com">site</a>`, "site"},
		{"mention keeps display", `<a data-mention-type="user" href="https://example.com/a">Alice</a>`, "Alice"},
		{"code block", "<pre><code>x\ny</code></pre>", "x\ny"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := htmlcodec.Parse(tt.html)
			if err != nil {
				t.Fatal(err)
			}
			if got := Serialize(d); got != tt.want {
				t.Errorf("Serialize = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestLengthMatchesDocumentLen pins the invariant that the plain-text
// projection and the document length agree, which the selection model
// relies on.
func TestLengthMatchesDocumentLen(t *testing.T) {
	inputs := []string{
		"hello",
		"<p>a</p><p>b</p>",
		"<ul><li>a𝄞</li><li>b</li></ul>",
		"a<br>b",
		"<pre><code>x\ny</code></pre>",
	}
	for _, in := range inputs {
		d, err := htmlcodec.Parse(in)
		if err != nil {
			t.Fatal(err)
		}
		if got, want := textutil.UTF16Len(Serialize(d)), d.Len(); got != want {
			t.Errorf("%q: text length %d != document length %d", in, got, want)
		}
	}
}

func TestEmptyDocument(t *testing.T) {
	if got := Serialize(dom.NewDocument()); got != "" {
		t.Errorf("Serialize(empty) = %q", got)
	}
}
