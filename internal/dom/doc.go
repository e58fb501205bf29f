// Package dom implements the rich-text document tree edited by the
// composer engine.
//
// Nodes are stored in an arena addressed by stable NodeID indices, so
// split and merge operations never chase or invalidate pointers. The
// node kind set is closed: text leaves, line breaks, inline format
// containers (bold, italic, strikethrough, underline, inline code),
// links, mentions, and block containers (paragraph, code block,
// quote, ordered/unordered list, list item).
//
// # Invariants
//
// A normalized document satisfies:
//
//   - no empty text nodes
//   - no adjacent sibling text nodes
//   - no empty containers (except the document root and an empty
//     trailing paragraph)
//   - list items appear only inside lists
//   - every child of the document root is a block container
//
// Normalize restores these after structural surgery; every
// document-level edit operation normalizes before returning.
//
// # Offsets
//
// Document-level operations take UTF-16 codeunit offsets over the
// document's text content: text leaves and mention display text
// contribute their UTF-16 length, and each line break or block
// boundary contributes one codeunit. This is the same coordinate
// space the selection model and host platforms use.
//
// # Inline runs
//
// The inline content of a single block can be flattened into a run
// list (text plus a format set and an optional link) and rebuilt with
// a canonical nesting order. Formatting commands edit runs and
// rebuild, which makes serialization deterministic and the
// html→tree→html round trip stable after one pass.
package dom
