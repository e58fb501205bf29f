package dom

import "fmt"

// InsertText inserts text (no newlines) at a UTF-16 content offset.
// The inserted text inherits the inline formats of the run it lands
// in, and a link only when the offset is strictly inside one.
func (d *Document) InsertText(off int, text string) error {
	if text == "" {
		return nil
	}
	blocks := d.Blocks()
	if off < 0 || off > d.Len() {
		return fmt.Errorf("insert at %d: %w", off, ErrOffsetOutOfRange)
	}
	i := BlockAt(blocks, off)
	b := blocks[i]
	local := off - b.Start
	runs := d.Runs(b.Node)
	left, right := SplitRunsAt(runs, local)

	var formats FormatSet
	link := ""
	switch {
	case len(left) > 0 && !left[len(left)-1].Mention && !left[len(left)-1].Break:
		formats = left[len(left)-1].Formats
	case len(right) > 0 && !right[0].Mention && !right[0].Break:
		formats = right[0].Formats
	}
	// Extend a link only when typing between two pieces of the same
	// link; typing at a link edge stays outside it.
	if len(left) > 0 && len(right) > 0 {
		l, r := left[len(left)-1], right[0]
		if !l.Mention && !r.Mention && l.Link != "" && l.Link == r.Link {
			link = l.Link
		}
	}
	if d.Kind(b.Node) == KindCodeBlock {
		formats, link = 0, ""
	}

	merged := append(append(left, Run{Text: text, Formats: formats, Link: link}), right...)
	d.SetRuns(b.Node, merged)
	return nil
}

// InsertLineBreak inserts an explicit line break at a UTF-16 content
// offset. Used for newlines inside code blocks and pasted text.
func (d *Document) InsertLineBreak(off int) error {
	blocks := d.Blocks()
	if off < 0 || off > d.Len() {
		return fmt.Errorf("insert break at %d: %w", off, ErrOffsetOutOfRange)
	}
	i := BlockAt(blocks, off)
	b := blocks[i]
	runs := d.Runs(b.Node)
	left, right := SplitRunsAt(runs, off-b.Start)
	merged := append(append(left, Run{Break: true}), right...)
	d.SetRuns(b.Node, merged)
	return nil
}

// DeleteRange removes the content in [start, end). A range spanning
// block boundaries merges the first and last partial blocks and
// removes fully covered blocks, then normalizes.
func (d *Document) DeleteRange(start, end int) error {
	if start > end {
		start, end = end, start
	}
	if start < 0 || end > d.Len() {
		return fmt.Errorf("delete [%d,%d): %w", start, end, ErrOffsetOutOfRange)
	}
	if start == end {
		return nil
	}
	blocks := d.Blocks()
	first := BlockAt(blocks, start)
	last := BlockAt(blocks, end)

	if first == last {
		b := blocks[first]
		runs := d.Runs(b.Node)
		left, tail := SplitRunsAt(runs, start-b.Start)
		_, right := SplitRunsAt(tail, end-start)
		d.SetRuns(b.Node, append(left, right...))
		d.Normalize()
		return nil
	}

	fb, lb := blocks[first], blocks[last]
	leftRuns, _ := SplitRunsAt(d.Runs(fb.Node), start-fb.Start)
	_, rightRuns := SplitRunsAt(d.Runs(lb.Node), end-lb.Start)

	// Merge surviving content into the first block.
	d.SetRuns(fb.Node, append(leftRuns, rightRuns...))

	// A nested list hanging off the last block survives the merge.
	d.adoptNestedLists(fb.Node, lb.Node)

	// Remove the last block and every block fully inside the range.
	for i := first + 1; i <= last; i++ {
		d.removeBlock(blocks[i].Node)
	}
	d.Normalize()
	return nil
}

// adoptNestedLists moves any nested lists from a doomed list item to
// the block that absorbs its content.
func (d *Document) adoptNestedLists(dst, src NodeID) {
	var lists []NodeID
	for _, c := range d.Children(src) {
		if d.Kind(c).IsList() {
			lists = append(lists, c)
		}
	}
	for _, l := range lists {
		d.Detach(l)
		if d.Kind(dst) == KindListItem {
			d.AppendChild(dst, l)
		} else {
			// Promote to a top-level block after dst's outermost
			// ancestor.
			top := dst
			for d.Parent(top) != d.root {
				top = d.Parent(top)
			}
			d.InsertChild(d.root, d.ChildIndex(top)+1, l)
		}
	}
}

// removeBlock detaches a leaf block from the tree. Emptied ancestor
// containers are pruned by Normalize.
func (d *Document) removeBlock(id NodeID) {
	d.Detach(id)
}

// SplitBlock splits the leaf block containing off into two blocks of
// the same kind at that offset. For a list item the nested list moves
// to the new (second) item.
func (d *Document) SplitBlock(off int) error {
	blocks := d.Blocks()
	if off < 0 || off > d.Len() {
		return fmt.Errorf("split at %d: %w", off, ErrOffsetOutOfRange)
	}
	i := BlockAt(blocks, off)
	b := blocks[i]
	runs := d.Runs(b.Node)
	left, right := SplitRunsAt(runs, off-b.Start)

	kind := d.Kind(b.Node)
	next := d.NewContainer(kind)
	parent := d.Parent(b.Node)
	d.InsertChild(parent, d.ChildIndex(b.Node)+1, next)

	// Nested lists follow the second half of a split list item.
	d.adoptSplitLists(b.Node, next)

	d.SetRuns(b.Node, left)
	d.SetRuns(next, right)
	return nil
}

// adoptSplitLists moves nested lists from a split list item to its
// new second half.
func (d *Document) adoptSplitLists(src, dst NodeID) {
	if d.Kind(src) != KindListItem {
		return
	}
	var lists []NodeID
	for _, c := range d.Children(src) {
		if d.Kind(c).IsList() {
			lists = append(lists, c)
		}
	}
	for _, l := range lists {
		d.Detach(l)
		d.AppendChild(dst, l)
	}
}

// ApplyFormat sets or clears an inline format across [start, end).
// Code blocks are skipped; applying inline code clears the other
// formats on the affected runs (inline code does not combine).
func (d *Document) ApplyFormat(start, end int, f Format, on bool) error {
	if start > end {
		start, end = end, start
	}
	if start < 0 || end > d.Len() {
		return fmt.Errorf("format [%d,%d): %w", start, end, ErrOffsetOutOfRange)
	}
	for _, b := range d.Blocks() {
		if b.End < start || b.Start > end || d.Kind(b.Node) == KindCodeBlock {
			continue
		}
		s := max(start, b.Start) - b.Start
		e := min(end, b.End) - b.Start
		if s >= e {
			continue
		}
		runs := d.Runs(b.Node)
		left, tail := SplitRunsAt(runs, s)
		mid, right := SplitRunsAt(tail, e-s)
		for i := range mid {
			if mid[i].Mention {
				continue
			}
			if on {
				mid[i].Formats = mid[i].Formats.With(f)
				if f == FormatInlineCode {
					mid[i].Formats = FormatSet(FormatInlineCode)
				} else {
					mid[i].Formats = mid[i].Formats.Without(FormatInlineCode)
				}
			} else {
				mid[i].Formats = mid[i].Formats.Without(f)
			}
		}
		d.SetRuns(b.Node, append(append(left, mid...), right...))
	}
	return nil
}

// SetLinkRange wraps the content in [start, end) in a link. Mentions
// keep their own hrefs.
func (d *Document) SetLinkRange(start, end int, href string) error {
	return d.mapLink(start, end, func(r *Run) { r.Link = href })
}

// RemoveLinkRange strips links from the content in [start, end).
func (d *Document) RemoveLinkRange(start, end int) error {
	return d.mapLink(start, end, func(r *Run) { r.Link = "" })
}

func (d *Document) mapLink(start, end int, apply func(*Run)) error {
	if start > end {
		start, end = end, start
	}
	if start < 0 || end > d.Len() {
		return fmt.Errorf("link [%d,%d): %w", start, end, ErrOffsetOutOfRange)
	}
	for _, b := range d.Blocks() {
		if b.End < start || b.Start > end || d.Kind(b.Node) == KindCodeBlock {
			continue
		}
		s := max(start, b.Start) - b.Start
		e := min(end, b.End) - b.Start
		if s >= e {
			continue
		}
		runs := d.Runs(b.Node)
		left, tail := SplitRunsAt(runs, s)
		mid, right := SplitRunsAt(tail, e-s)
		for i := range mid {
			if mid[i].Mention || mid[i].Break {
				continue
			}
			apply(&mid[i])
		}
		d.SetRuns(b.Node, append(append(left, mid...), right...))
	}
	return nil
}

// RangeRuns returns the flattened runs covering [start, end) across
// blocks. Block separators are not represented.
func (d *Document) RangeRuns(start, end int) []Run {
	if start > end {
		start, end = end, start
	}
	var out []Run
	for _, b := range d.Blocks() {
		if b.End < start || b.Start > end {
			continue
		}
		s := max(start, b.Start) - b.Start
		e := min(end, b.End) - b.Start
		if s > e {
			continue
		}
		out = append(out, SliceRuns(d.Runs(b.Node), s, e)...)
	}
	return out
}
