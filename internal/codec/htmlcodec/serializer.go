package htmlcodec

import (
	"html"
	"strings"

	"github.com/dshills/composer/internal/dom"
)

// Serialize renders the document tree as HTML. A document whose whole
// content is one paragraph serializes its inline content bare, the
// usual chat-message form; anything else wraps paragraphs in <p>.
func Serialize(d *dom.Document) string {
	var sb strings.Builder
	kids := d.Children(d.Root())
	if len(kids) == 1 && d.Kind(kids[0]) == dom.KindParagraph {
		writeInline(&sb, d, kids[0])
		return sb.String()
	}
	for _, c := range kids {
		writeBlock(&sb, d, c)
	}
	return sb.String()
}

func writeBlock(sb *strings.Builder, d *dom.Document, id dom.NodeID) {
	switch d.Kind(id) {
	case dom.KindParagraph:
		sb.WriteString("<p>")
		writeInline(sb, d, id)
		sb.WriteString("</p>")
	case dom.KindCodeBlock:
		sb.WriteString("<pre><code>")
		writeCode(sb, d, id)
		sb.WriteString("</code></pre>")
	case dom.KindQuote:
		sb.WriteString("<blockquote>")
		for _, c := range d.Children(id) {
			writeBlock(sb, d, c)
		}
		sb.WriteString("</blockquote>")
	case dom.KindOrderedList:
		sb.WriteString("<ol>")
		for _, c := range d.Children(id) {
			writeBlock(sb, d, c)
		}
		sb.WriteString("</ol>")
	case dom.KindUnorderedList:
		sb.WriteString("<ul>")
		for _, c := range d.Children(id) {
			writeBlock(sb, d, c)
		}
		sb.WriteString("</ul>")
	case dom.KindListItem:
		sb.WriteString("<li>")
		writeInline(sb, d, id)
		for _, c := range d.Children(id) {
			if d.Kind(c).IsList() {
				writeBlock(sb, d, c)
			}
		}
		sb.WriteString("</li>")
	default:
		writeInlineNode(sb, d, id)
	}
}

// writeInline renders the inline children of a leaf block, skipping
// nested lists (the list item caller renders those itself).
func writeInline(sb *strings.Builder, d *dom.Document, id dom.NodeID) {
	for _, c := range d.Children(id) {
		if d.Kind(c).IsList() {
			continue
		}
		writeInlineNode(sb, d, c)
	}
}

func writeInlineNode(sb *strings.Builder, d *dom.Document, id dom.NodeID) {
	switch k := d.Kind(id); k {
	case dom.KindText:
		sb.WriteString(html.EscapeString(d.Text(id)))
	case dom.KindLineBreak:
		sb.WriteString("<br />")
	case dom.KindMention:
		sb.WriteString(`<a data-mention-type="mention" contenteditable="false" href="`)
		sb.WriteString(html.EscapeString(d.Href(id)))
		sb.WriteString(`">`)
		sb.WriteString(html.EscapeString(d.Text(id)))
		sb.WriteString("</a>")
	case dom.KindLink:
		sb.WriteString(`<a href="`)
		sb.WriteString(html.EscapeString(d.Href(id)))
		sb.WriteString(`">`)
		for _, c := range d.Children(id) {
			writeInlineNode(sb, d, c)
		}
		sb.WriteString("</a>")
	case dom.KindBold, dom.KindItalic, dom.KindStrikeThrough, dom.KindUnderline, dom.KindInlineCode:
		tag := k.String()
		sb.WriteString("<" + tag + ">")
		for _, c := range d.Children(id) {
			writeInlineNode(sb, d, c)
		}
		sb.WriteString("</" + tag + ">")
	default:
		// Block node in inline position; Normalize prevents this,
		// render children rather than lose content.
		for _, c := range d.Children(id) {
			writeInlineNode(sb, d, c)
		}
	}
}

// writeCode renders code block content, turning line breaks back into
// newlines.
func writeCode(sb *strings.Builder, d *dom.Document, id dom.NodeID) {
	for _, c := range d.Children(id) {
		switch d.Kind(c) {
		case dom.KindText:
			sb.WriteString(html.EscapeString(d.Text(c)))
		case dom.KindLineBreak:
			sb.WriteString("\n")
		default:
			writeCode(sb, d, c)
		}
	}
}
