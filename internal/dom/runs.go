package dom

import "github.com/dshills/composer/internal/textutil"

// Run is one piece of flattened inline content: a stretch of text
// with a format set and an optional link, a line break, or an atomic
// mention. Formatting commands edit runs and rebuild the block, which
// keeps the tree in canonical nesting order.
type Run struct {
	Text    string
	Formats FormatSet
	Link    string // href when inside a link; mention href for mentions
	Mention bool
	Break   bool
}

// Len returns the UTF-16 length of the run.
func (r Run) Len() int {
	if r.Break {
		return 1
	}
	return textutil.UTF16Len(r.Text)
}

// RunsLen returns the total UTF-16 length of runs.
func RunsLen(runs []Run) int {
	n := 0
	for _, r := range runs {
		n += r.Len()
	}
	return n
}

// Runs flattens the inline content of a leaf block into a run list.
// Nested lists inside list items are skipped.
func (d *Document) Runs(block NodeID) []Run {
	var out []Run
	var walk func(id NodeID, formats FormatSet, link string)
	walk = func(id NodeID, formats FormatSet, link string) {
		switch k := d.Kind(id); {
		case k == KindText:
			if d.nodes[id].text != "" {
				out = append(out, Run{Text: d.nodes[id].text, Formats: formats, Link: link})
			}
		case k == KindLineBreak:
			out = append(out, Run{Break: true, Formats: formats})
		case k == KindMention:
			out = append(out, Run{Text: d.nodes[id].text, Link: d.nodes[id].href, Mention: true, Formats: formats})
		case k == KindLink:
			for _, c := range d.Children(id) {
				walk(c, formats, d.nodes[id].href)
			}
		case k.IsInlineFormat():
			for _, c := range d.Children(id) {
				walk(c, formats.With(KindFormat(k)), link)
			}
		case k.IsList():
			// nested list inside a list item; not inline content
		default:
			for _, c := range d.Children(id) {
				walk(c, formats, link)
			}
		}
	}
	for _, c := range d.Children(block) {
		walk(c, 0, "")
	}
	return out
}

// SetRuns replaces the inline content of a leaf block with the given
// runs, rebuilding containers in canonical nesting order. A trailing
// nested list inside a list item is preserved.
func (d *Document) SetRuns(block NodeID, runs []Run) {
	var nested []NodeID
	for _, c := range d.Children(block) {
		if d.Kind(c).IsList() {
			nested = append(nested, c)
		} else {
			d.nodes[c].parent = None
		}
	}
	d.nodes[block].children = nil
	for _, id := range d.buildInline(coalesceRuns(runs), 0) {
		d.AppendChild(block, id)
	}
	for _, l := range nested {
		d.nodes[l].parent = None
		d.AppendChild(block, l)
	}
}

// inlineLevels is the number of grouping passes when rebuilding:
// link first, then each canonical format.
const inlineLevels = 1 + 5

// levelKey returns the grouping key of a run at a rebuild level.
// Runs with equal keys at a level share a container at that level;
// the empty key means "no container".
func levelKey(r Run, level int) string {
	if level == 0 {
		if r.Mention || r.Break {
			return ""
		}
		return r.Link
	}
	if r.Formats.Has(canonicalFormats[level-1]) {
		return "on"
	}
	return ""
}

// buildInline assembles inline nodes from runs, grouping consecutive
// runs that share a link or format into one container per level.
func (d *Document) buildInline(runs []Run, level int) []NodeID {
	if level == inlineLevels {
		var out []NodeID
		for _, r := range runs {
			switch {
			case r.Break:
				out = append(out, d.NewLineBreak())
			case r.Mention:
				out = append(out, d.NewMention(r.Link, r.Text))
			case r.Text != "":
				out = append(out, d.NewText(r.Text))
			}
		}
		return out
	}
	var out []NodeID
	for i := 0; i < len(runs); {
		key := levelKey(runs[i], level)
		j := i + 1
		for j < len(runs) && levelKey(runs[j], level) == key {
			j++
		}
		inner := d.buildInline(runs[i:j], level+1)
		if key == "" || len(inner) == 0 {
			out = append(out, inner...)
		} else {
			var c NodeID
			if level == 0 {
				c = d.NewLink(key)
			} else {
				c = d.NewContainer(FormatKind(canonicalFormats[level-1]))
			}
			for _, id := range inner {
				d.AppendChild(c, id)
			}
			out = append(out, c)
		}
		i = j
	}
	return out
}

// coalesceRuns drops empty text runs and merges adjacent text runs
// with identical formatting and link.
func coalesceRuns(runs []Run) []Run {
	out := runs[:0:0]
	for _, r := range runs {
		if !r.Break && !r.Mention && r.Text == "" {
			continue
		}
		if n := len(out); n > 0 {
			prev := &out[n-1]
			if !prev.Break && !prev.Mention && !r.Break && !r.Mention &&
				prev.Formats == r.Formats && prev.Link == r.Link {
				prev.Text += r.Text
				continue
			}
		}
		out = append(out, r)
	}
	return out
}

// SplitRunsAt splits runs at a UTF-16 offset local to the run list.
// An offset inside an atomic mention snaps to the mention's end.
func SplitRunsAt(runs []Run, off int) (left, right []Run) {
	if off <= 0 {
		return nil, runs
	}
	pos := 0
	for i, r := range runs {
		l := r.Len()
		if off < pos+l {
			if r.Break || r.Mention {
				// atomic; keep whole run on the left
				left = append(left, runs[:i+1]...)
				right = append(right, runs[i+1:]...)
				return left, right
			}
			b := textutil.UTF16ToByte(r.Text, off-pos)
			left = append(left, runs[:i]...)
			if b > 0 {
				head := r
				head.Text = r.Text[:b]
				left = append(left, head)
			}
			tail := r
			tail.Text = r.Text[b:]
			right = append(right, tail)
			right = append(right, runs[i+1:]...)
			return left, right
		}
		pos += l
	}
	return runs, nil
}

// SliceRuns returns the runs covering [start, end) of the run list.
func SliceRuns(runs []Run, start, end int) []Run {
	_, tail := SplitRunsAt(runs, start)
	mid, _ := SplitRunsAt(tail, end-start)
	return mid
}

// CommonFormats returns the formats shared by every text and break
// run in runs. Mentions are ignored. Returns 0 when runs holds no
// formattable content.
func CommonFormats(runs []Run) (FormatSet, bool) {
	found := false
	var common FormatSet
	for _, r := range runs {
		if r.Mention {
			continue
		}
		if !found {
			common = r.Formats
			found = true
		} else {
			common &= r.Formats
		}
	}
	return common, found
}

// CommonLink returns the href shared by every run, or "" when the
// runs disagree or carry no link.
func CommonLink(runs []Run) string {
	href := ""
	for i, r := range runs {
		if i == 0 {
			href = r.Link
		} else if r.Link != href {
			return ""
		}
	}
	return href
}

// FormatsAt returns the formats a collapsed cursor at the given local
// offset would inherit: those of the run ending at the offset, or of
// the run starting there when the cursor is at the very beginning.
func FormatsAt(runs []Run, off int) FormatSet {
	if len(runs) == 0 {
		return 0
	}
	if off <= 0 {
		return runs[0].Formats
	}
	pos := 0
	for _, r := range runs {
		l := r.Len()
		if off <= pos+l {
			return r.Formats
		}
		pos += l
	}
	return runs[len(runs)-1].Formats
}

// LinkAt returns the href covering a collapsed cursor at the given
// local offset, preferring the run that ends at the offset.
func LinkAt(runs []Run, off int) string {
	pos := 0
	for _, r := range runs {
		l := r.Len()
		if off > pos && off <= pos+l {
			if r.Mention {
				return ""
			}
			return r.Link
		}
		pos += l
	}
	return ""
}
