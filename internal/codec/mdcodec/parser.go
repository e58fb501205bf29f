package mdcodec

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/dshills/composer/internal/dom"
)

// ErrParse indicates the input could not be parsed as Markdown.
var ErrParse = errors.New("markdown parse error")

// md is the shared goldmark instance. Strikethrough is the only
// extension in the supported subset.
var md = goldmark.New(goldmark.WithExtensions(extension.Strikethrough))

// Parse builds a document tree from Markdown source.
func Parse(src string) (*dom.Document, error) {
	if !utf8.ValidString(src) {
		return nil, fmt.Errorf("%w: input is not valid UTF-8", ErrParse)
	}
	source := []byte(src)
	root := md.Parser().Parse(text.NewReader(source))

	d := dom.NewDocument()
	for _, c := range d.Children(d.Root()) {
		d.Detach(c)
	}
	b := &builder{doc: d, src: source}
	b.blocks(root, d.Root())
	d.Normalize()
	return d, nil
}

type builder struct {
	doc *dom.Document
	src []byte
}

// blocks converts the block-level children of n into the tree under
// parent.
func (b *builder) blocks(n ast.Node, parent dom.NodeID) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		b.block(c, parent)
	}
}

func (b *builder) block(n ast.Node, parent dom.NodeID) {
	switch v := n.(type) {
	case *ast.Paragraph, *ast.TextBlock:
		p := b.doc.NewContainer(dom.KindParagraph)
		b.doc.AppendChild(parent, p)
		b.inline(n, p)
	case *ast.Heading:
		// Headings are outside the subset; keep their text with the
		// literal marker.
		p := b.doc.NewContainer(dom.KindParagraph)
		b.doc.AppendChild(parent, p)
		b.doc.AppendChild(p, b.doc.NewText(strings.Repeat("#", v.Level)+" "))
		b.inline(n, p)
	case *ast.Blockquote:
		q := b.doc.NewContainer(dom.KindQuote)
		b.doc.AppendChild(parent, q)
		b.blocks(n, q)
	case *ast.List:
		kind := dom.KindUnorderedList
		if v.IsOrdered() {
			kind = dom.KindOrderedList
		}
		l := b.doc.NewContainer(kind)
		b.doc.AppendChild(parent, l)
		b.blocks(n, l)
	case *ast.ListItem:
		item := b.doc.NewContainer(dom.KindListItem)
		b.doc.AppendChild(parent, item)
		// Tight list items hold TextBlocks; their inline content goes
		// directly into the item, nested blocks recurse.
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			switch c.(type) {
			case *ast.TextBlock, *ast.Paragraph:
				b.inline(c, item)
			default:
				b.block(c, item)
			}
		}
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		cb := b.doc.NewContainer(dom.KindCodeBlock)
		b.doc.AppendChild(parent, cb)
		b.codeLines(n, cb)
	case *ast.ThematicBreak:
		p := b.doc.NewContainer(dom.KindParagraph)
		b.doc.AppendChild(parent, p)
		b.doc.AppendChild(p, b.doc.NewText("---"))
	case *ast.HTMLBlock:
		// Raw HTML blocks are outside the subset; keep literal text.
		p := b.doc.NewContainer(dom.KindParagraph)
		b.doc.AppendChild(parent, p)
		b.codeLines(n, p)
	default:
		// Unsupported block: keep whatever inline content it has.
		p := b.doc.NewContainer(dom.KindParagraph)
		b.doc.AppendChild(parent, p)
		b.inline(n, p)
	}
}

// codeLines copies a code block's lines, joining them with explicit
// line breaks.
func (b *builder) codeLines(n ast.Node, parent dom.NodeID) {
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		line := strings.TrimSuffix(string(seg.Value(b.src)), "\n")
		if i > 0 {
			b.doc.AppendChild(parent, b.doc.NewLineBreak())
		}
		if line != "" {
			b.doc.AppendChild(parent, b.doc.NewText(line))
		}
	}
}

// inline converts the inline children of n into the tree under
// parent.
func (b *builder) inline(n ast.Node, parent dom.NodeID) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		b.inlineNode(c, parent)
	}
}

func (b *builder) inlineNode(n ast.Node, parent dom.NodeID) {
	switch v := n.(type) {
	case *ast.Text:
		b.doc.AppendChild(parent, b.doc.NewText(string(v.Segment.Value(b.src))))
		if v.HardLineBreak() {
			b.doc.AppendChild(parent, b.doc.NewLineBreak())
		} else if v.SoftLineBreak() {
			b.doc.AppendChild(parent, b.doc.NewText(" "))
		}
	case *ast.String:
		b.doc.AppendChild(parent, b.doc.NewText(string(v.Value)))
	case *ast.Emphasis:
		kind := dom.KindItalic
		if v.Level >= 2 {
			kind = dom.KindBold
		}
		c := b.doc.NewContainer(kind)
		b.doc.AppendChild(parent, c)
		b.inline(n, c)
	case *east.Strikethrough:
		c := b.doc.NewContainer(dom.KindStrikeThrough)
		b.doc.AppendChild(parent, c)
		b.inline(n, c)
	case *ast.CodeSpan:
		c := b.doc.NewContainer(dom.KindInlineCode)
		b.doc.AppendChild(parent, c)
		b.inline(n, c)
	case *ast.Link:
		l := b.doc.NewLink(string(v.Destination))
		b.doc.AppendChild(parent, l)
		b.inline(n, l)
	case *ast.AutoLink:
		url := string(v.URL(b.src))
		l := b.doc.NewLink(url)
		b.doc.AppendChild(parent, l)
		b.doc.AppendChild(l, b.doc.NewText(string(v.Label(b.src))))
	case *ast.RawHTML:
		// Raw HTML is outside the subset; keep it as literal text.
		var sb strings.Builder
		for i := 0; i < v.Segments.Len(); i++ {
			seg := v.Segments.At(i)
			sb.Write(seg.Value(b.src))
		}
		b.doc.AppendChild(parent, b.doc.NewText(sb.String()))
	case *ast.Image:
		// Degrade to the alt text.
		b.inline(n, parent)
	default:
		b.inline(n, parent)
	}
}
