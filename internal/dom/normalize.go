package dom

// Normalize restores the document invariants after structural
// surgery or parsing: stray inline content at block level is wrapped
// in paragraphs, lists contain only list items, empty containers are
// pruned, code block content is flattened to text and breaks, and
// every leaf block's inline tree is rebuilt in canonical order.
//
// Normalizing an already-normalized document is a no-op in the sense
// that serialization is unchanged, which is what makes the
// html→tree→html round trip stable after one pass.
func (d *Document) Normalize() {
	d.normalizeContainer(d.root)
	if len(d.Children(d.root)) == 0 {
		d.AppendChild(d.root, d.NewContainer(KindParagraph))
	}
	for _, b := range d.Blocks() {
		runs := d.Runs(b.Node)
		if d.Kind(b.Node) == KindCodeBlock {
			for i := range runs {
				runs[i].Formats = 0
				if !runs[i].Mention {
					runs[i].Link = ""
				}
			}
		}
		d.SetRuns(b.Node, runs)
	}
}

// normalizeContainer fixes the block structure below id.
func (d *Document) normalizeContainer(id NodeID) {
	switch k := d.Kind(id); {
	case k == KindDocument || k == KindQuote:
		d.wrapStrayInline(id)
		d.recurseAndPrune(id)
	case k.IsList():
		d.wrapStrayItems(id)
		d.recurseAndPrune(id)
	case k == KindListItem:
		d.moveListsToEnd(id)
		d.recurseAndPrune(id)
	}
}

// wrapStrayInline groups consecutive non-block children of id into
// paragraphs.
func (d *Document) wrapStrayInline(id NodeID) {
	kids := append([]NodeID(nil), d.Children(id)...)
	var rebuilt []NodeID
	var para NodeID = None
	for _, c := range kids {
		if d.Kind(c).IsBlock() {
			para = None
			rebuilt = append(rebuilt, c)
			continue
		}
		if para == None {
			para = d.NewContainer(KindParagraph)
			rebuilt = append(rebuilt, para)
		}
		d.nodes[c].parent = para
		d.nodes[para].children = append(d.nodes[para].children, c)
	}
	d.nodes[id].children = nil
	for _, c := range rebuilt {
		d.nodes[c].parent = id
		d.nodes[id].children = append(d.nodes[id].children, c)
	}
}

// wrapStrayItems ensures every child of a list is a list item.
func (d *Document) wrapStrayItems(id NodeID) {
	kids := append([]NodeID(nil), d.Children(id)...)
	var rebuilt []NodeID
	for _, c := range kids {
		switch d.Kind(c) {
		case KindListItem:
			rebuilt = append(rebuilt, c)
		case KindOrderedList, KindUnorderedList:
			// A nested list directly under a list attaches to the
			// preceding item.
			if len(rebuilt) > 0 {
				d.nodes[c].parent = rebuilt[len(rebuilt)-1]
				d.nodes[rebuilt[len(rebuilt)-1]].children = append(d.nodes[rebuilt[len(rebuilt)-1]].children, c)
			} else {
				item := d.NewContainer(KindListItem)
				d.nodes[c].parent = item
				d.nodes[item].children = append(d.nodes[item].children, c)
				rebuilt = append(rebuilt, item)
			}
		default:
			item := d.NewContainer(KindListItem)
			d.nodes[c].parent = item
			d.nodes[item].children = append(d.nodes[item].children, c)
			rebuilt = append(rebuilt, item)
		}
	}
	d.nodes[id].children = nil
	for _, c := range rebuilt {
		d.nodes[c].parent = id
		d.nodes[id].children = append(d.nodes[id].children, c)
	}
}

// moveListsToEnd keeps a list item's inline content before its nested
// lists.
func (d *Document) moveListsToEnd(id NodeID) {
	kids := d.Children(id)
	var inline, lists []NodeID
	for _, c := range kids {
		if d.Kind(c).IsList() {
			lists = append(lists, c)
		} else {
			inline = append(inline, c)
		}
	}
	if len(lists) == 0 {
		return
	}
	d.nodes[id].children = append(append([]NodeID(nil), inline...), lists...)
}

// recurseAndPrune normalizes child containers and removes the ones
// that ended up empty. Empty paragraphs and list items survive: they
// are legitimate cursor positions.
func (d *Document) recurseAndPrune(id NodeID) {
	kids := append([]NodeID(nil), d.Children(id)...)
	for _, c := range kids {
		d.normalizeContainer(c)
	}
	kids = append(kids[:0], d.Children(id)...)
	for _, c := range kids {
		k := d.Kind(c)
		if (k.IsList() || k == KindQuote) && len(d.Children(c)) == 0 {
			d.Detach(c)
		}
	}
}
