// Package history implements the composer undo/redo stacks.
//
// Entries are immutable (document snapshot, selection) pairs captured
// before each committed mutation. Rapid typing coalesces: a pure
// insert that continues exactly where the previous insert ended and
// contains no whitespace joins the previous undo entry, so one undo
// step removes a typed word rather than a single keystroke. Depth is
// bounded; the oldest entries are evicted.
package history

import (
	"github.com/dshills/composer/internal/dom"
	"github.com/dshills/composer/internal/selection"
	"github.com/dshills/composer/internal/textutil"
)

// DefaultMaxDepth bounds the undo stack when no depth is configured.
const DefaultMaxDepth = 1000

// Entry is one undo/redo state: a deep document snapshot plus the
// selection at that time.
type Entry struct {
	Doc *dom.Document
	Sel selection.Selection
}

// History manages the undo and redo stacks for one composer session.
type History struct {
	undo []Entry
	redo []Entry

	maxDepth int

	// lastInsertEnd is the offset where the previous pure-insert
	// command finished, or -1 when the previous command was anything
	// else. Coalescing eligibility hangs off this.
	lastInsertEnd int
}

// New creates a history with the given maximum depth.
func New(maxDepth int) *History {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &History{maxDepth: maxDepth, lastInsertEnd: -1}
}

// Push records the pre-mutation state for a non-insert command and
// clears the redo stack.
func (h *History) Push(prev Entry) {
	h.lastInsertEnd = -1
	h.push(prev)
}

// PushInsert records the pre-mutation state for a pure text insert.
// The entry coalesces with the previous one when the insert starts
// where the last insert ended and the text contains no whitespace.
func (h *History) PushInsert(prev Entry, insertStart int, text string, insertEnd int) {
	coalesce := h.lastInsertEnd == insertStart &&
		!textutil.ContainsWhitespace(text) &&
		len(h.undo) > 0
	h.lastInsertEnd = insertEnd
	if coalesce {
		h.redo = nil
		return
	}
	h.push(prev)
}

func (h *History) push(prev Entry) {
	h.undo = append(h.undo, prev)
	h.redo = nil
	if len(h.undo) > h.maxDepth {
		excess := len(h.undo) - h.maxDepth
		h.undo = append([]Entry(nil), h.undo[excess:]...)
	}
}

// Undo pops the previous state, pushing current onto the redo stack.
// Returns false when there is nothing to undo.
func (h *History) Undo(current Entry) (Entry, bool) {
	if len(h.undo) == 0 {
		return Entry{}, false
	}
	h.lastInsertEnd = -1
	prev := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, current)
	return prev, true
}

// Redo pops the next state, pushing current back onto the undo stack.
// Returns false when there is nothing to redo.
func (h *History) Redo(current Entry) (Entry, bool) {
	if len(h.redo) == 0 {
		return Entry{}, false
	}
	h.lastInsertEnd = -1
	next := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, current)
	return next, true
}

// CanUndo reports whether an undo entry is available.
func (h *History) CanUndo() bool { return len(h.undo) > 0 }

// CanRedo reports whether a redo entry is available.
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// Clear drops all history.
func (h *History) Clear() {
	h.undo = nil
	h.redo = nil
	h.lastInsertEnd = -1
}
