// Package composer is a rich-text composer engine for chat message
// editors. A host application feeds it input events (text
// replacements, selection moves, formatting commands) and renders a
// native text surface; the engine owns the authoritative document
// tree and answers every command with a ComposerUpdate telling the
// host exactly what to change.
//
// One ComposerModel is one editor session:
//
//	m := composer.NewComposerModel()
//	m.ReplaceText("hello")
//	m.Select(0, 5)
//	m.Bold()
//	html := m.GetContentAsHTML() // "<strong>hello</strong>"
//
// Selection offsets are UTF-16 codeunits over the document's text
// content, the position currency shared with host platforms. Content
// moves in and out as HTML, Markdown, or plain text:
//
//	if _, err := m.SetContentFromHTML("<em>hi</em>"); err != nil {
//		// malformed input; prior state kept
//	}
//	md := m.GetContentAsMarkdown() // "*hi*"
//
// Every mutating command pushes an undo entry; rapid typing coalesces
// so one Undo removes a word, not a keystroke. The model is
// single-threaded and not reentrant: apply the returned update before
// issuing the next command.
package composer
