package dom

// Iterator walks a subtree in depth-first document order, yielding
// the subtree root first.
type Iterator struct {
	d       *Document
	stack   []NodeID
	started bool
	current NodeID
}

// Iter returns an iterator over the whole document.
func (d *Document) Iter() *Iterator {
	return d.IterFrom(d.root)
}

// IterFrom returns an iterator over the subtree rooted at id,
// including id itself.
func (d *Document) IterFrom(id NodeID) *Iterator {
	return &Iterator{d: d, stack: []NodeID{id}}
}

// Next advances to the next node. Returns false when the traversal is
// complete.
func (it *Iterator) Next() bool {
	if len(it.stack) == 0 {
		return false
	}
	it.started = true
	// Pop the next node, push its children in reverse so the first
	// child is visited first.
	id := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	kids := it.d.nodes[id].children
	for i := len(kids) - 1; i >= 0; i-- {
		it.stack = append(it.stack, kids[i])
	}
	it.current = id
	return true
}

// Node returns the current node. Valid only after Next returned true.
func (it *Iterator) Node() NodeID { return it.current }

// TextNodes returns all text leaves of the document in depth-first
// order.
func (d *Document) TextNodes() []NodeID {
	var out []NodeID
	for it := d.Iter(); it.Next(); {
		if d.Kind(it.Node()) == KindText {
			out = append(out, it.Node())
		}
	}
	return out
}

// Containers returns all container nodes of the document in
// depth-first order, excluding the root.
func (d *Document) Containers() []NodeID {
	var out []NodeID
	for it := d.Iter(); it.Next(); {
		id := it.Node()
		k := d.Kind(id)
		if id != d.root && !k.IsLeaf() {
			out = append(out, id)
		}
	}
	return out
}

// NextNode returns the node after id in depth-first order, or None.
func (d *Document) NextNode(id NodeID) NodeID {
	if len(d.nodes[id].children) > 0 {
		return d.nodes[id].children[0]
	}
	for id != d.root {
		p := d.nodes[id].parent
		if p == None {
			return None
		}
		idx := d.ChildIndex(id)
		kids := d.nodes[p].children
		if idx+1 < len(kids) {
			return kids[idx+1]
		}
		id = p
	}
	return None
}

// PrevNode returns the node before id in depth-first order, or None.
func (d *Document) PrevNode(id NodeID) NodeID {
	if id == d.root {
		return None
	}
	p := d.nodes[id].parent
	if p == None {
		return None
	}
	idx := d.ChildIndex(id)
	if idx == 0 {
		return p
	}
	// Deepest last descendant of the previous sibling.
	n := d.nodes[p].children[idx-1]
	for len(d.nodes[n].children) > 0 {
		kids := d.nodes[n].children
		n = kids[len(kids)-1]
	}
	return n
}
