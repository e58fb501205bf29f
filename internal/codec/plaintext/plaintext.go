// Package plaintext serializes the composer document tree to plain
// text: formatting is dropped, line breaks and block boundaries
// become newlines, and links and mentions keep their display text.
package plaintext

import (
	"strings"

	"github.com/dshills/composer/internal/dom"
)

// Serialize renders the document as plain text. The output's UTF-16
// length equals dom.Document.Len, which is what keeps the selection
// model and the suggestion detector in the same coordinate space.
func Serialize(d *dom.Document) string {
	var sb strings.Builder
	for i, b := range d.Blocks() {
		if i > 0 {
			sb.WriteString("\n")
		}
		for _, r := range d.Runs(b.Node) {
			if r.Break {
				sb.WriteString("\n")
			} else {
				sb.WriteString(r.Text)
			}
		}
	}
	return sb.String()
}
