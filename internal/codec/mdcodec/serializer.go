package mdcodec

import (
	"fmt"
	"strings"

	"github.com/dshills/composer/internal/dom"
)

// Serialize renders the document tree as Markdown. Top-level blocks
// are separated by blank lines; list items by single newlines.
func Serialize(d *dom.Document) string {
	var parts []string
	for _, c := range d.Children(d.Root()) {
		parts = append(parts, blockMD(d, c, ""))
	}
	return strings.Join(parts, "\n\n")
}

// blockMD renders one block with every line prefixed by prefix
// (accumulated quote markers and list indentation).
func blockMD(d *dom.Document, id dom.NodeID, prefix string) string {
	switch d.Kind(id) {
	case dom.KindParagraph:
		return prefixLines(inlineMD(d, id), prefix)
	case dom.KindCodeBlock:
		var sb strings.Builder
		sb.WriteString("```\n")
		sb.WriteString(codeMD(d, id))
		sb.WriteString("\n```")
		return prefixLines(sb.String(), prefix)
	case dom.KindQuote:
		var parts []string
		for _, c := range d.Children(id) {
			parts = append(parts, blockMD(d, c, ""))
		}
		return prefixLines(strings.Join(parts, "\n\n"), prefix+"> ")
	case dom.KindOrderedList, dom.KindUnorderedList:
		var sb strings.Builder
		num := 1
		for i, c := range d.Children(id) {
			if i > 0 {
				sb.WriteString("\n")
			}
			marker := "- "
			if d.Kind(id) == dom.KindOrderedList {
				marker = fmt.Sprintf("%d. ", num)
				num++
			}
			sb.WriteString(itemMD(d, c, prefix, marker))
		}
		return sb.String()
	default:
		return prefixLines(inlineMD(d, id), prefix)
	}
}

// itemMD renders a list item: marker plus inline content, then any
// nested lists indented underneath.
func itemMD(d *dom.Document, id dom.NodeID, prefix, marker string) string {
	var sb strings.Builder
	sb.WriteString(prefix)
	sb.WriteString(marker)
	sb.WriteString(inlineMD(d, id))
	indent := prefix + strings.Repeat(" ", len(marker))
	for _, c := range d.Children(id) {
		if d.Kind(c).IsList() {
			sb.WriteString("\n")
			sb.WriteString(blockMD(d, c, indent))
		}
	}
	return sb.String()
}

// inlineMD renders the inline content of a leaf block from its runs,
// so the markers always nest in canonical order.
func inlineMD(d *dom.Document, id dom.NodeID) string {
	var sb strings.Builder
	for _, r := range d.Runs(id) {
		switch {
		case r.Break:
			sb.WriteString("\\\n")
		case r.Mention:
			fmt.Fprintf(&sb, "[%s](%s)", escapeMD(r.Text), r.Link)
		default:
			sb.WriteString(runMD(r))
		}
	}
	return sb.String()
}

func runMD(r dom.Run) string {
	if r.Formats.Has(dom.FormatInlineCode) {
		s := "`" + r.Text + "`"
		if r.Link != "" {
			s = "[" + s + "](" + r.Link + ")"
		}
		return s
	}
	s := escapeMD(r.Text)
	if r.Formats.Has(dom.FormatUnderline) {
		s = "<u>" + s + "</u>" // no Markdown underline; inline HTML
	}
	if r.Formats.Has(dom.FormatStrikeThrough) {
		s = "~~" + s + "~~"
	}
	if r.Formats.Has(dom.FormatItalic) {
		s = "*" + s + "*"
	}
	if r.Formats.Has(dom.FormatBold) {
		s = "**" + s + "**"
	}
	if r.Link != "" {
		s = "[" + s + "](" + r.Link + ")"
	}
	return s
}

// codeMD renders code block content with literal newlines.
func codeMD(d *dom.Document, id dom.NodeID) string {
	var sb strings.Builder
	for _, r := range d.Runs(id) {
		if r.Break {
			sb.WriteString("\n")
		} else {
			sb.WriteString(r.Text)
		}
	}
	return sb.String()
}

// prefixLines prepends prefix to every line of s.
func prefixLines(s, prefix string) string {
	if prefix == "" {
		return s
	}
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = prefix + lines[i]
	}
	return strings.Join(lines, "\n")
}

// mdSpecials are the characters escaped in plain text output.
const mdSpecials = "\\`*_[]~"

func escapeMD(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if strings.ContainsRune(mdSpecials, r) {
			sb.WriteByte('\\')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
