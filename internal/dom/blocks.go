package dom

import "github.com/dshills/composer/internal/textutil"

// Block is a leaf block: a container whose inline content occupies a
// contiguous UTF-16 range of the document text. Leaf blocks are
// paragraphs, code blocks, and the inline portion of list items.
// Consecutive leaf blocks are separated by one codeunit (the newline
// of the plain-text projection).
type Block struct {
	Node  NodeID
	Start int
	End   int
}

// Contains reports whether off falls inside the block's range,
// including both ends.
func (b Block) Contains(off int) bool {
	return off >= b.Start && off <= b.End
}

// Blocks returns the leaf blocks of the document in order, with their
// UTF-16 content ranges.
func (d *Document) Blocks() []Block {
	var out []Block
	off := 0
	first := true
	var walk func(id NodeID)
	walk = func(id NodeID) {
		switch d.Kind(id) {
		case KindDocument, KindQuote, KindOrderedList, KindUnorderedList:
			for _, c := range d.Children(id) {
				walk(c)
			}
		case KindParagraph, KindCodeBlock, KindListItem:
			if !first {
				off++ // block separator
			}
			first = false
			l := d.InlineLen(id)
			out = append(out, Block{Node: id, Start: off, End: off + l})
			off += l
			if d.Kind(id) == KindListItem {
				for _, c := range d.Children(id) {
					if d.Kind(c).IsList() {
						walk(c)
					}
				}
			}
		}
	}
	walk(d.root)
	return out
}

// InlineLen returns the UTF-16 length of the inline content of a leaf
// block, excluding any nested list inside a list item.
func (d *Document) InlineLen(id NodeID) int {
	n := 0
	for _, c := range d.Children(id) {
		if d.Kind(c).IsList() {
			continue
		}
		n += d.subtreeLen(c)
	}
	return n
}

// subtreeLen returns the UTF-16 content length of an inline subtree.
func (d *Document) subtreeLen(id NodeID) int {
	switch d.Kind(id) {
	case KindText, KindMention:
		return textutil.UTF16Len(d.nodes[id].text)
	case KindLineBreak:
		return 1
	default:
		n := 0
		for _, c := range d.Children(id) {
			n += d.subtreeLen(c)
		}
		return n
	}
}

// Len returns the total UTF-16 content length of the document,
// including one codeunit per block separator.
func (d *Document) Len() int {
	blocks := d.Blocks()
	if len(blocks) == 0 {
		return 0
	}
	return blocks[len(blocks)-1].End
}

// BlockAt returns the index within blocks of the leaf block that
// contains off. An offset on a separator boundary belongs to the
// earlier block (it addresses the position before the newline).
func BlockAt(blocks []Block, off int) int {
	for i, b := range blocks {
		if off <= b.End {
			return i
		}
	}
	return len(blocks) - 1
}
