package dom

import (
	"fmt"
	"strings"
)

// ToTree renders the document as an indented debug tree. Text leaves
// are quoted; containers show their tag name, links and mentions
// their href.
func (d *Document) ToTree() string {
	var sb strings.Builder
	var walk func(id NodeID, depth int)
	walk = func(id NodeID, depth int) {
		indent := ""
		if depth > 0 {
			indent = strings.Repeat("  ", depth)
		}
		switch d.Kind(id) {
		case KindDocument:
			sb.WriteString("\n")
		case KindText:
			fmt.Fprintf(&sb, "%s%q\n", indent, d.Text(id))
		case KindMention:
			fmt.Fprintf(&sb, "%smention %q -> %s\n", indent, d.Text(id), d.Href(id))
		case KindLink:
			fmt.Fprintf(&sb, "%sa -> %s\n", indent, d.Href(id))
		default:
			fmt.Fprintf(&sb, "%s%s\n", indent, d.Kind(id))
		}
		for _, c := range d.Children(id) {
			walk(c, depth+1)
		}
	}
	walk(d.root, -1)
	return sb.String()
}
