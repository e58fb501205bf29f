// Package htmlcodec converts between the composer document tree and
// HTML.
//
// Parsing is tolerant: recognized tags map to node kinds, unknown
// inline tags are transparent (their children are kept), unknown
// block tags contribute their children as block content, and
// script/style elements and comments are dropped. Serialization is
// deterministic and, combined with dom.Normalize, makes
// html→tree→html stable after the first pass.
package htmlcodec
