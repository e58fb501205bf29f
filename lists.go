package composer

import (
	"slices"

	"github.com/dshills/composer/internal/dom"
)

// OrderedList toggles an ordered list around the selected blocks.
func (m *ComposerModel) OrderedList() ComposerUpdate {
	return m.toggleList(dom.KindOrderedList)
}

// UnorderedList toggles an unordered list around the selected blocks.
func (m *ComposerModel) UnorderedList() ComposerUpdate {
	return m.toggleList(dom.KindUnorderedList)
}

// toggleList wraps the covered paragraphs in a list of the given
// kind, switches an existing list's kind, or, when the selection is
// already inside a list of that kind, unwraps the covered items back
// to paragraphs.
func (m *ComposerModel) toggleList(kind dom.Kind) ComposerUpdate {
	m.clearPending()
	start, end := m.sel.Start(), m.sel.End()
	if m.rangeInCodeBlock(m.doc.Blocks(), start, end) {
		return m.keepUpdate()
	}
	sel := m.sel
	return m.commit(func() error {
		blocks := m.doc.Blocks()
		fi, li := dom.BlockAt(blocks, start), dom.BlockAt(blocks, end)

		var lists []dom.NodeID
		allSame := true
		for i := fi; i <= li; i++ {
			n := blocks[i].Node
			if m.doc.Kind(n) != dom.KindListItem {
				allSame = false
				continue
			}
			l := m.doc.Parent(n)
			if !slices.Contains(lists, l) {
				lists = append(lists, l)
			}
			if m.doc.Kind(l) != kind {
				allSame = false
			}
		}

		switch {
		case len(lists) > 0 && allSame:
			m.unwrapCoveredItems(kind, start, end)
		case len(lists) > 0:
			for _, l := range lists {
				m.doc.SetKind(l, kind)
			}
		default:
			m.wrapBlocksInList(kind, start, end)
		}
		m.doc.Normalize()
		m.sel = sel.Clamp(m.doc.Len())
		return nil
	})
}

// unwrapCoveredItems exits every covered item of a kind-matching
// list, one at a time; nested items unindent a level per pass until
// they leave the list.
func (m *ComposerModel) unwrapCoveredItems(kind dom.Kind, start, end int) {
	for {
		blocks := m.doc.Blocks()
		fi, li := dom.BlockAt(blocks, start), dom.BlockAt(blocks, end)
		exited := false
		for i := fi; i <= li && i < len(blocks); i++ {
			n := blocks[i].Node
			if m.doc.Kind(n) == dom.KindListItem && m.doc.Kind(m.doc.Parent(n)) == kind {
				m.exitListItem(n)
				exited = true
				break
			}
		}
		if !exited {
			return
		}
	}
}

// wrapBlocksInList moves the covered paragraphs into a new list,
// converting each into a list item.
func (m *ComposerModel) wrapBlocksInList(kind dom.Kind, start, end int) {
	blocks := m.doc.Blocks()
	fi, li := dom.BlockAt(blocks, start), dom.BlockAt(blocks, end)
	list := m.doc.NewContainer(kind)
	inserted := false
	for i := fi; i <= li; i++ {
		n := blocks[i].Node
		if m.doc.Kind(n) != dom.KindParagraph {
			continue
		}
		if !inserted {
			m.doc.InsertChild(m.doc.Parent(n), m.doc.ChildIndex(n), list)
			inserted = true
		}
		m.doc.Detach(n)
		m.doc.SetKind(n, dom.KindListItem)
		m.doc.AppendChild(list, n)
	}
}

// Indent moves the covered list items one level deeper. A no-op when
// the selection is not in a list or the items are already first in
// theirs.
func (m *ComposerModel) Indent() ComposerUpdate {
	m.clearPending()
	items := m.coveredListItems()
	if len(items) == 0 {
		return m.keepUpdate()
	}
	prev := m.snapshot()
	moved := false
	for _, it := range items {
		if m.indentItem(it) {
			moved = true
		}
	}
	if !moved {
		return m.keepUpdate()
	}
	m.doc.Normalize()
	m.hist.Push(prev)
	return m.replaceAllUpdate()
}

// Unindent moves the covered list items one level out. A no-op when
// the selection is not in a nested list.
func (m *ComposerModel) Unindent() ComposerUpdate {
	m.clearPending()
	items := m.coveredListItems()
	if len(items) == 0 {
		return m.keepUpdate()
	}
	prev := m.snapshot()
	moved := false
	for _, it := range items {
		if m.unindentItem(it) {
			moved = true
		}
	}
	if !moved {
		return m.keepUpdate()
	}
	m.doc.Normalize()
	m.hist.Push(prev)
	return m.replaceAllUpdate()
}

// CodeBlock toggles a code block. Toggling on merges the covered
// blocks into one code block with line breaks between them; toggling
// off converts covered code blocks back to paragraphs.
func (m *ComposerModel) CodeBlock() ComposerUpdate {
	m.clearPending()
	sel := m.sel
	return m.commit(func() error {
		start, end := sel.Start(), sel.End()
		blocks := m.doc.Blocks()
		fi, li := dom.BlockAt(blocks, start), dom.BlockAt(blocks, end)

		if m.rangeInCodeBlock(blocks, start, end) {
			for i := fi; i <= li; i++ {
				if m.doc.Kind(blocks[i].Node) == dom.KindCodeBlock {
					m.doc.SetKind(blocks[i].Node, dom.KindParagraph)
				}
			}
			m.doc.Normalize()
			m.sel = sel.Clamp(m.doc.Len())
			return nil
		}

		var runs []dom.Run
		for i := fi; i <= li; i++ {
			if i > fi {
				runs = append(runs, dom.Run{Break: true})
			}
			runs = append(runs, m.doc.Runs(blocks[i].Node)...)
		}
		cb := m.doc.NewContainer(dom.KindCodeBlock)
		top := m.topAncestor(blocks[fi].Node)
		m.doc.InsertChild(m.doc.Root(), m.doc.ChildIndex(top), cb)
		for i := fi; i <= li; i++ {
			m.doc.Detach(blocks[i].Node)
		}
		m.doc.SetRuns(cb, runs)
		m.doc.Normalize()
		m.sel = sel.Clamp(m.doc.Len())
		return nil
	})
}

// Quote toggles a block quote around the selection. Toggling off
// unwraps every quote the selection touches.
func (m *ComposerModel) Quote() ComposerUpdate {
	m.clearPending()
	sel := m.sel
	return m.commit(func() error {
		start, end := sel.Start(), sel.End()
		blocks := m.doc.Blocks()
		fi, li := dom.BlockAt(blocks, start), dom.BlockAt(blocks, end)

		var quotes []dom.NodeID
		for i := fi; i <= li; i++ {
			if q := m.doc.AncestorOfKind(blocks[i].Node, dom.KindQuote); q != dom.None && !slices.Contains(quotes, q) {
				quotes = append(quotes, q)
			}
		}

		if len(quotes) > 0 {
			for _, q := range quotes {
				m.unwrapQuote(q)
			}
		} else {
			var tops []dom.NodeID
			for i := fi; i <= li; i++ {
				t := m.topAncestor(blocks[i].Node)
				if !slices.Contains(tops, t) {
					tops = append(tops, t)
				}
			}
			q := m.doc.NewContainer(dom.KindQuote)
			m.doc.InsertChild(m.doc.Root(), m.doc.ChildIndex(tops[0]), q)
			for _, t := range tops {
				m.doc.Detach(t)
				m.doc.AppendChild(q, t)
			}
		}
		m.doc.Normalize()
		m.sel = sel.Clamp(m.doc.Len())
		return nil
	})
}

// unwrapQuote replaces a quote with its children.
func (m *ComposerModel) unwrapQuote(q dom.NodeID) {
	parent := m.doc.Parent(q)
	idx := m.doc.ChildIndex(q)
	kids := append([]dom.NodeID(nil), m.doc.Children(q)...)
	m.doc.Detach(q)
	for j, c := range kids {
		m.doc.Detach(c)
		m.doc.InsertChild(parent, idx+j, c)
	}
}

// topAncestor returns the root-level ancestor of a node.
func (m *ComposerModel) topAncestor(n dom.NodeID) dom.NodeID {
	for m.doc.Parent(n) != m.doc.Root() {
		n = m.doc.Parent(n)
	}
	return n
}

// coveredListItems returns the list items whose inline blocks the
// selection touches, in document order.
func (m *ComposerModel) coveredListItems() []dom.NodeID {
	blocks := m.doc.Blocks()
	fi := dom.BlockAt(blocks, m.sel.Start())
	li := dom.BlockAt(blocks, m.sel.End())
	var items []dom.NodeID
	for i := fi; i <= li; i++ {
		if m.doc.Kind(blocks[i].Node) == dom.KindListItem {
			items = append(items, blocks[i].Node)
		}
	}
	return items
}

// indentItem moves a list item into a nested list under its previous
// sibling. Returns false when the item is first in its list.
func (m *ComposerModel) indentItem(item dom.NodeID) bool {
	list := m.doc.Parent(item)
	idx := m.doc.ChildIndex(item)
	if idx <= 0 {
		return false
	}
	prev := m.doc.Children(list)[idx-1]
	kind := m.doc.Kind(list)
	m.doc.Detach(item)
	// Reuse a trailing nested list of the same kind under prev.
	kids := m.doc.Children(prev)
	if n := len(kids); n > 0 && m.doc.Kind(kids[n-1]) == kind {
		m.doc.AppendChild(kids[n-1], item)
		return true
	}
	sub := m.doc.NewContainer(kind)
	m.doc.AppendChild(sub, item)
	m.doc.AppendChild(prev, sub)
	return true
}

// unindentItem moves a list item out of a nested list to just after
// its parent item. Later siblings in the nested list become a nested
// list of the moved item. Returns false at the outermost level.
func (m *ComposerModel) unindentItem(item dom.NodeID) bool {
	list := m.doc.Parent(item)
	parentItem := m.doc.Parent(list)
	if m.doc.Kind(parentItem) != dom.KindListItem {
		return false
	}
	outer := m.doc.Parent(parentItem)
	kind := m.doc.Kind(list)
	idx := m.doc.ChildIndex(item)
	rest := append([]dom.NodeID(nil), m.doc.Children(list)[idx+1:]...)

	m.doc.Detach(item)
	if len(rest) > 0 {
		sub := m.doc.NewContainer(kind)
		for _, r := range rest {
			m.doc.Detach(r)
			m.doc.AppendChild(sub, r)
		}
		m.doc.AppendChild(item, sub)
	}
	m.doc.InsertChild(outer, m.doc.ChildIndex(parentItem)+1, item)
	return true
}

// exitListItem removes an item from its list: a nested item
// unindents one level, a top-level item becomes a paragraph after the
// list.
func (m *ComposerModel) exitListItem(item dom.NodeID) {
	if m.unindentItem(item) {
		m.doc.Normalize()
		return
	}
	m.liftItemToParagraph(item)
	m.doc.Normalize()
}

// liftItemToParagraph converts a top-level list item into a paragraph
// placed after its list, splitting the list when the item is not
// last. The item's own nested items join the trailing split.
func (m *ComposerModel) liftItemToParagraph(item dom.NodeID) {
	list := m.doc.Parent(item)
	parent := m.doc.Parent(list)
	kind := m.doc.Kind(list)
	idx := m.doc.ChildIndex(item)
	rest := append([]dom.NodeID(nil), m.doc.Children(list)[idx+1:]...)

	var nested []dom.NodeID
	for _, c := range m.doc.Children(item) {
		if m.doc.Kind(c).IsList() {
			nested = append(nested, c)
		}
	}

	m.doc.Detach(item)
	m.doc.SetKind(item, dom.KindParagraph)
	for _, l := range nested {
		m.doc.Detach(l)
	}
	m.doc.InsertChild(parent, m.doc.ChildIndex(list)+1, item)

	if len(nested) > 0 || len(rest) > 0 {
		second := m.doc.NewContainer(kind)
		for _, l := range nested {
			for _, li := range append([]dom.NodeID(nil), m.doc.Children(l)...) {
				m.doc.Detach(li)
				m.doc.AppendChild(second, li)
			}
		}
		for _, r := range rest {
			m.doc.Detach(r)
			m.doc.AppendChild(second, r)
		}
		m.doc.InsertChild(parent, m.doc.ChildIndex(item)+1, second)
	}
}
