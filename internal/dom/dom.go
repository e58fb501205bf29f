package dom

// NodeID addresses a node inside a document's arena. IDs are stable
// for the lifetime of the node; detached subtrees keep their IDs
// until the next Clone compacts the arena.
type NodeID int32

// None is the null node ID.
const None NodeID = -1

// node is the arena slot. All variants share one struct; kind decides
// which fields are meaningful.
type node struct {
	parent   NodeID
	kind     Kind
	text     string // KindText content; KindMention display text
	href     string // KindLink and KindMention
	children []NodeID
}

// Document owns a node arena and the root container. A Document is
// mutated only by the command engine and lives for one composer
// session.
type Document struct {
	nodes []node
	root  NodeID
}

// NewDocument creates an empty document: a root container with a
// single empty paragraph, which is the canonical empty state.
func NewDocument() *Document {
	d := &Document{}
	d.root = d.alloc(node{parent: None, kind: KindDocument})
	d.AppendChild(d.root, d.NewContainer(KindParagraph))
	return d
}

// alloc adds a node to the arena and returns its ID.
func (d *Document) alloc(n node) NodeID {
	d.nodes = append(d.nodes, n)
	return NodeID(len(d.nodes) - 1)
}

// Root returns the document root.
func (d *Document) Root() NodeID { return d.root }

// NewText allocates a detached text leaf.
func (d *Document) NewText(text string) NodeID {
	return d.alloc(node{parent: None, kind: KindText, text: text})
}

// NewLineBreak allocates a detached line break.
func (d *Document) NewLineBreak() NodeID {
	return d.alloc(node{parent: None, kind: KindLineBreak})
}

// NewContainer allocates a detached container of the given kind.
func (d *Document) NewContainer(kind Kind) NodeID {
	return d.alloc(node{parent: None, kind: kind})
}

// NewLink allocates a detached link container.
func (d *Document) NewLink(href string) NodeID {
	return d.alloc(node{parent: None, kind: KindLink, href: href})
}

// NewMention allocates a detached mention leaf.
func (d *Document) NewMention(href, display string) NodeID {
	return d.alloc(node{parent: None, kind: KindMention, href: href, text: display})
}

// Kind returns the kind of id.
func (d *Document) Kind(id NodeID) Kind { return d.nodes[id].kind }

// Text returns the text of a text leaf, or the display text of a
// mention.
func (d *Document) Text(id NodeID) string { return d.nodes[id].text }

// SetText replaces the text of a text leaf.
func (d *Document) SetText(id NodeID, text string) { d.nodes[id].text = text }

// Href returns the href of a link or mention.
func (d *Document) Href(id NodeID) string { return d.nodes[id].href }

// SetHref replaces the href of a link or mention.
func (d *Document) SetHref(id NodeID, href string) { d.nodes[id].href = href }

// SetKind retags a container in place (for example switching an
// ordered list to unordered).
func (d *Document) SetKind(id NodeID, kind Kind) { d.nodes[id].kind = kind }

// Parent returns the parent of id, or None for the root and detached
// nodes.
func (d *Document) Parent(id NodeID) NodeID { return d.nodes[id].parent }

// Children returns the child list of id. The returned slice is the
// document's own storage; callers must not modify it.
func (d *Document) Children(id NodeID) []NodeID { return d.nodes[id].children }

// ChildCount returns the number of children of id.
func (d *Document) ChildCount(id NodeID) int { return len(d.nodes[id].children) }

// ChildIndex returns the position of id within its parent, or -1 for
// detached nodes and the root.
func (d *Document) ChildIndex(id NodeID) int {
	p := d.nodes[id].parent
	if p == None {
		return -1
	}
	for i, c := range d.nodes[p].children {
		if c == id {
			return i
		}
	}
	return -1
}

// AppendChild attaches child as the last child of parent.
func (d *Document) AppendChild(parent, child NodeID) {
	d.nodes[child].parent = parent
	d.nodes[parent].children = append(d.nodes[parent].children, child)
}

// InsertChild attaches child at position idx within parent. idx is
// clamped to the valid range.
func (d *Document) InsertChild(parent NodeID, idx int, child NodeID) {
	kids := d.nodes[parent].children
	if idx < 0 {
		idx = 0
	}
	if idx > len(kids) {
		idx = len(kids)
	}
	kids = append(kids, None)
	copy(kids[idx+1:], kids[idx:])
	kids[idx] = child
	d.nodes[parent].children = kids
	d.nodes[child].parent = parent
}

// Detach removes id from its parent's child list. The subtree stays
// in the arena until the next Clone.
func (d *Document) Detach(id NodeID) {
	p := d.nodes[id].parent
	if p == None {
		return
	}
	kids := d.nodes[p].children
	for i, c := range kids {
		if c == id {
			d.nodes[p].children = append(kids[:i], kids[i+1:]...)
			break
		}
	}
	d.nodes[id].parent = None
}

// Ancestors returns the chain of ancestors of id, nearest first,
// ending with the document root.
func (d *Document) Ancestors(id NodeID) []NodeID {
	var out []NodeID
	for p := d.nodes[id].parent; p != None; p = d.nodes[p].parent {
		out = append(out, p)
	}
	return out
}

// AncestorOfKind returns the nearest ancestor of id with the given
// kind, or None.
func (d *Document) AncestorOfKind(id NodeID, kind Kind) NodeID {
	for _, p := range d.Ancestors(id) {
		if d.nodes[p].kind == kind {
			return p
		}
	}
	return None
}

// IsEmpty reports whether the document has no text content.
func (d *Document) IsEmpty() bool {
	return d.Len() == 0
}

// Clone returns a deep copy of the document with a compacted arena.
// Detached subtrees are not carried over. Used for history snapshots.
func (d *Document) Clone() *Document {
	out := &Document{nodes: make([]node, 0, len(d.nodes))}
	out.root = out.copyFrom(d, d.root, None)
	return out
}

// copyFrom recursively copies src's subtree rooted at id into out.
func (out *Document) copyFrom(src *Document, id, parent NodeID) NodeID {
	n := src.nodes[id]
	nid := out.alloc(node{
		parent: parent,
		kind:   n.kind,
		text:   n.text,
		href:   n.href,
	})
	for _, c := range n.children {
		cid := out.copyFrom(src, c, nid)
		out.nodes[nid].children = append(out.nodes[nid].children, cid)
	}
	return nid
}
