// Package wire implements the JSON line protocol spoken by FFI and
// IPC hosts. A request is {"method": "...", "params": {...}}; the
// response is the resulting ComposerUpdate (or a value for pure
// reads), and {"error": "..."} for content-load failures or malformed
// requests. Unknown methods produce an error response, never a crash.
package wire

import (
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/composer"
)

// Handler dispatches decoded requests against one composer model.
type Handler struct {
	model *composer.ComposerModel
}

// NewHandler creates a handler bound to the given model.
func NewHandler(m *composer.ComposerModel) *Handler {
	return &Handler{model: m}
}

// Handle processes one request and always returns a JSON response.
func (h *Handler) Handle(req string) string {
	if !gjson.Valid(req) {
		return errorResponse("invalid json")
	}
	method := gjson.Get(req, "method").String()
	if method == "" {
		return errorResponse("missing method")
	}
	p := gjson.Get(req, "params")

	switch method {
	case "set_content_from_html":
		upd, err := h.model.SetContentFromHTML(p.Get("html").String())
		if err != nil {
			return errorResponse(err.Error())
		}
		return encodeUpdate(upd)
	case "set_content_from_markdown":
		upd, err := h.model.SetContentFromMarkdown(p.Get("markdown").String())
		if err != nil {
			return errorResponse(err.Error())
		}
		return encodeUpdate(upd)
	case "get_content_as_html":
		return valueResponse(h.model.GetContentAsHTML())
	case "get_content_as_markdown":
		return valueResponse(h.model.GetContentAsMarkdown())
	case "get_content_as_plain_text":
		return valueResponse(h.model.GetContentAsPlainText())
	case "to_tree":
		return valueResponse(h.model.ToTree())
	case "to_example_format":
		return valueResponse(h.model.ToExampleFormat())
	case "clear":
		return encodeUpdate(h.model.Clear())
	case "select":
		return encodeUpdate(h.model.Select(intParam(p, "start"), intParam(p, "end")))
	case "replace_text":
		return encodeUpdate(h.model.ReplaceText(p.Get("text").String()))
	case "replace_text_in":
		return encodeUpdate(h.model.ReplaceTextIn(
			p.Get("text").String(), intParam(p, "start"), intParam(p, "end")))
	case "replace_text_suggestion":
		return encodeUpdate(h.model.ReplaceTextSuggestion(
			p.Get("text").String(), decodePattern(p.Get("pattern"))))
	case "backspace":
		return encodeUpdate(h.model.Backspace())
	case "delete":
		return encodeUpdate(h.model.Delete())
	case "delete_in":
		return encodeUpdate(h.model.DeleteIn(intParam(p, "start"), intParam(p, "end")))
	case "enter":
		return encodeUpdate(h.model.Enter())
	case "bold":
		return encodeUpdate(h.model.Bold())
	case "italic":
		return encodeUpdate(h.model.Italic())
	case "strike_through":
		return encodeUpdate(h.model.StrikeThrough())
	case "underline":
		return encodeUpdate(h.model.Underline())
	case "inline_code":
		return encodeUpdate(h.model.InlineCode())
	case "ordered_list":
		return encodeUpdate(h.model.OrderedList())
	case "unordered_list":
		return encodeUpdate(h.model.UnorderedList())
	case "indent":
		return encodeUpdate(h.model.Indent())
	case "unindent":
		return encodeUpdate(h.model.Unindent())
	case "code_block":
		return encodeUpdate(h.model.CodeBlock())
	case "quote":
		return encodeUpdate(h.model.Quote())
	case "undo":
		return encodeUpdate(h.model.Undo())
	case "redo":
		return encodeUpdate(h.model.Redo())
	case "set_link":
		return encodeUpdate(h.model.SetLink(p.Get("link").String()))
	case "set_link_with_text":
		return encodeUpdate(h.model.SetLinkWithText(
			p.Get("link").String(), p.Get("text").String()))
	case "set_link_suggestion":
		return encodeUpdate(h.model.SetLinkSuggestion(
			p.Get("link").String(), p.Get("text").String(),
			decodePattern(p.Get("pattern"))))
	case "remove_links":
		return encodeUpdate(h.model.RemoveLinks())
	case "action_states":
		return encodeActionStates(h.model.ActionStates())
	case "get_link_action":
		return encodeLinkAction(h.model.GetLinkAction())
	case "get_current_dom_state":
		return encodeDomState(h.model.GetCurrentDomState())
	default:
		return errorResponse("unknown method: " + method)
	}
}

func intParam(p gjson.Result, key string) int {
	return int(p.Get(key).Int())
}

func decodePattern(r gjson.Result) composer.SuggestionPattern {
	return composer.SuggestionPattern{
		Key:   patternKey(r.Get("key").String()),
		Text:  r.Get("text").String(),
		Start: int(r.Get("start").Int()),
		End:   int(r.Get("end").Int()),
	}
}

func patternKey(s string) composer.PatternKey {
	switch s {
	case "At":
		return composer.KeyAt
	case "Hash":
		return composer.KeyHash
	case "Slash":
		return composer.KeySlash
	default:
		return composer.KeyUnknown
	}
}

func errorResponse(msg string) string {
	out, _ := sjson.Set("{}", "error", msg)
	return out
}

func valueResponse(v string) string {
	out, _ := sjson.Set("{}", "value", v)
	return out
}

func encodeUpdate(u composer.ComposerUpdate) string {
	out := "{}"
	out, _ = sjson.Set(out, "text_update.kind", u.TextUpdate.Kind.String())
	if u.TextUpdate.Kind == composer.TextReplaceAll {
		out, _ = sjson.Set(out, "text_update.html", u.TextUpdate.HTML)
	}
	if u.TextUpdate.Kind != composer.TextKeep {
		out, _ = sjson.Set(out, "text_update.start", u.TextUpdate.Start)
		out, _ = sjson.Set(out, "text_update.end", u.TextUpdate.End)
	}

	out, _ = sjson.Set(out, "menu_state.kind", u.MenuState.Kind.String())
	if u.MenuState.Kind == composer.MenuUpdate {
		for action, state := range u.MenuState.States {
			out, _ = sjson.Set(out, "menu_state.states."+string(action), state.String())
		}
	}

	out, _ = sjson.Set(out, "menu_action.kind", u.MenuAction.Kind.String())
	if u.MenuAction.Kind == composer.MenuActionSuggestion {
		s := u.MenuAction.Suggestion
		out, _ = sjson.Set(out, "menu_action.suggestion.key", s.Key.String())
		out, _ = sjson.Set(out, "menu_action.suggestion.text", s.Text)
		out, _ = sjson.Set(out, "menu_action.suggestion.start", s.Start)
		out, _ = sjson.Set(out, "menu_action.suggestion.end", s.End)
	}
	return out
}

func encodeActionStates(states map[composer.Action]composer.ActionState) string {
	out := "{}"
	for action, state := range states {
		out, _ = sjson.Set(out, "states."+string(action), state.String())
	}
	return out
}

func encodeLinkAction(la composer.LinkAction) string {
	out, _ := sjson.Set("{}", "link_action", la.Kind.String())
	if la.Kind == composer.LinkActionEdit {
		out, _ = sjson.Set(out, "href", la.Href)
	}
	return out
}

func encodeDomState(st composer.DomState) string {
	out := "{}"
	out, _ = sjson.Set(out, "html", st.HTML)
	out, _ = sjson.Set(out, "start", st.Start)
	out, _ = sjson.Set(out, "end", st.End)
	return out
}
