// Package mdcodec converts between the composer document tree and a
// fixed Markdown subset: emphasis, strong, strikethrough, code spans,
// fenced and indented code blocks, block quotes, ordered and
// unordered lists, links, and hard breaks. Unsupported constructs
// degrade to their literal text.
//
// Parsing is built on goldmark; serialization is hand-rolled because
// the tree is the source of truth and the output must be
// deterministic.
package mdcodec
