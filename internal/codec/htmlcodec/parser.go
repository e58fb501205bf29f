package htmlcodec

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"

	"github.com/dshills/composer/internal/dom"
)

// ErrParse indicates the input could not be parsed as HTML.
var ErrParse = errors.New("html parse error")

// Parse builds a document tree from an HTML fragment.
func Parse(src string) (*dom.Document, error) {
	if !utf8.ValidString(src) {
		return nil, fmt.Errorf("%w: input is not valid UTF-8", ErrParse)
	}
	root, err := html.Parse(strings.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	body := findBody(root)
	if body == nil {
		return nil, fmt.Errorf("%w: no body element", ErrParse)
	}

	d := &builder{doc: emptyDoc()}
	for c := body.FirstChild; c != nil; c = c.NextSibling {
		d.convert(c, d.doc.Root(), false)
	}
	d.doc.Normalize()
	return d.doc, nil
}

// emptyDoc returns a document with a bare root, without the canonical
// empty paragraph; Normalize restores it if parsing yields nothing.
func emptyDoc() *dom.Document {
	d := dom.NewDocument()
	for _, c := range d.Children(d.Root()) {
		d.Detach(c)
	}
	return d
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}

type builder struct {
	doc *dom.Document
}

// blockStructural tags hold block children; whitespace-only text
// directly inside them is formatting noise, not content.
var blockStructural = map[string]bool{
	"body": true, "div": true, "ol": true, "ul": true,
	"blockquote": true, "table": true, "tbody": true, "tr": true,
}

// convert maps one html node into the tree under parent. inPre tracks
// whether the content belongs to a code block, where newlines are
// significant.
func (b *builder) convert(n *html.Node, parent dom.NodeID, inPre bool) {
	switch n.Type {
	case html.TextNode:
		b.text(n, parent, inPre)
	case html.ElementNode:
		b.element(n, parent, inPre)
	}
	// comments, doctypes: dropped
}

func (b *builder) text(n *html.Node, parent dom.NodeID, inPre bool) {
	if inPre {
		// Newlines become explicit line breaks inside code blocks.
		// The conventional newline right after <pre> is not content.
		data := n.Data
		if b.doc.ChildCount(parent) == 0 {
			data = strings.TrimPrefix(data, "\n")
		}
		parts := strings.Split(data, "\n")
		for i, p := range parts {
			if i > 0 {
				b.doc.AppendChild(parent, b.doc.NewLineBreak())
			}
			if p != "" {
				b.doc.AppendChild(parent, b.doc.NewText(p))
			}
		}
		return
	}
	if strings.TrimSpace(n.Data) == "" {
		if n.Parent != nil && blockStructural[n.Parent.Data] {
			return
		}
		if n.Data == "" {
			return
		}
	}
	text := strings.NewReplacer("\n", " ", "\t", " ", "\r", " ").Replace(n.Data)
	b.doc.AppendChild(parent, b.doc.NewText(text))
}

func (b *builder) element(n *html.Node, parent dom.NodeID, inPre bool) {
	switch n.Data {
	case "script", "style", "head", "title":
		return
	case "b", "strong":
		b.container(n, parent, dom.KindBold, inPre)
	case "i", "em":
		b.container(n, parent, dom.KindItalic, inPre)
	case "s", "del", "strike":
		b.container(n, parent, dom.KindStrikeThrough, inPre)
	case "u":
		b.container(n, parent, dom.KindUnderline, inPre)
	case "code":
		if inPre {
			b.children(n, parent, true)
			return
		}
		b.container(n, parent, dom.KindInlineCode, false)
	case "pre":
		cb := b.doc.NewContainer(dom.KindCodeBlock)
		b.doc.AppendChild(parent, cb)
		b.children(n, cb, true)
		b.trimCodeBlock(cb)
	case "a":
		b.anchor(n, parent, inPre)
	case "ol":
		b.container(n, parent, dom.KindOrderedList, inPre)
	case "ul":
		b.container(n, parent, dom.KindUnorderedList, inPre)
	case "li":
		b.container(n, parent, dom.KindListItem, inPre)
	case "blockquote":
		b.container(n, parent, dom.KindQuote, inPre)
	case "br":
		b.doc.AppendChild(parent, b.doc.NewLineBreak())
	case "p", "div":
		b.container(n, parent, dom.KindParagraph, inPre)
	default:
		// Unknown tags are transparent: keep their children.
		b.children(n, parent, inPre)
	}
}

func (b *builder) container(n *html.Node, parent dom.NodeID, kind dom.Kind, inPre bool) {
	c := b.doc.NewContainer(kind)
	b.doc.AppendChild(parent, c)
	b.children(n, c, inPre)
}

func (b *builder) children(n *html.Node, parent dom.NodeID, inPre bool) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.convert(c, parent, inPre)
	}
}

// anchor maps <a> to a link, or to an atomic mention when it carries
// a data-mention-type or contenteditable="false" attribute.
func (b *builder) anchor(n *html.Node, parent dom.NodeID, inPre bool) {
	href := attr(n, "href")
	if attr(n, "data-mention-type") != "" || attr(n, "contenteditable") == "false" {
		display := textContent(n)
		b.doc.AppendChild(parent, b.doc.NewMention(href, display))
		return
	}
	l := b.doc.NewLink(href)
	b.doc.AppendChild(parent, l)
	b.children(n, l, inPre)
}

// trimCodeBlock drops the conventional trailing newline of
// <pre> content.
func (b *builder) trimCodeBlock(cb dom.NodeID) {
	kids := b.doc.Children(cb)
	if len(kids) == 0 {
		return
	}
	last := kids[len(kids)-1]
	if b.doc.Kind(last) == dom.KindLineBreak {
		b.doc.Detach(last)
	}
}

func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(m *html.Node) {
		if m.Type == html.TextNode {
			sb.WriteString(m.Data)
		}
		for c := m.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
