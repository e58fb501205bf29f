// Package textutil provides conversions between UTF-16 codeunit
// offsets and byte offsets inside UTF-8 strings, plus grapheme-cluster
// stepping.
//
// UTF-16 codeunits are the cross-platform text-position currency: host
// platforms (web, iOS, Android, desktop) address their native text
// buffers in UTF-16, while the engine stores text as Go strings
// (UTF-8). Every selection offset that crosses the engine boundary
// goes through this package, so surrogate-pair handling lives in
// exactly one place.
//
// Grapheme segmentation uses github.com/rivo/uniseg so that backspace
// and delete remove one user-perceived character (emoji with
// modifiers, combining marks) rather than one codepoint.
package textutil
