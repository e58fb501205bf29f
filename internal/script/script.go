// Package script embeds a sandboxed Lua interpreter for driving the
// composer from automation scripts. Scripts see a global `composer`
// table whose functions mirror the command surface, plus read
// accessors for the serialized content.
//
// The interpreter opens only the base, table, string, and math
// libraries and strips the file loading primitives, so a script can
// compute and edit but cannot touch the host.
package script

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/composer"
)

// Runner owns one Lua state bound to one composer model.
type Runner struct {
	model *composer.ComposerModel
	state *lua.LState
}

// NewRunner creates a sandboxed Lua state and installs the composer
// table into it.
func NewRunner(m *composer.ComposerModel) *Runner {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	for _, lib := range []struct {
		name string
		fn   lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		L.Push(L.NewFunction(lib.fn))
		L.Push(lua.LString(lib.name))
		L.Call(1, 0)
	}
	// Base leaves file and chunk loaders behind. Remove them.
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		L.SetGlobal(name, lua.LNil)
	}

	r := &Runner{model: m, state: L}
	L.SetGlobal("composer", r.composerTable(L))
	return r
}

// Run executes a Lua chunk against the model.
func (r *Runner) Run(src string) error {
	if err := r.state.DoString(src); err != nil {
		return fmt.Errorf("script failed: %w", err)
	}
	return nil
}

// Close releases the Lua state. The runner must not be used after.
func (r *Runner) Close() {
	r.state.Close()
}

func (r *Runner) composerTable(L *lua.LState) *lua.LTable {
	t := L.NewTable()

	command := func(name string, fn func(*composer.ComposerModel) composer.ComposerUpdate) {
		L.SetField(t, name, L.NewFunction(func(L *lua.LState) int {
			fn(r.model)
			return 0
		}))
	}
	command("backspace", (*composer.ComposerModel).Backspace)
	command("delete", (*composer.ComposerModel).Delete)
	command("enter", (*composer.ComposerModel).Enter)
	command("bold", (*composer.ComposerModel).Bold)
	command("italic", (*composer.ComposerModel).Italic)
	command("strike_through", (*composer.ComposerModel).StrikeThrough)
	command("underline", (*composer.ComposerModel).Underline)
	command("inline_code", (*composer.ComposerModel).InlineCode)
	command("ordered_list", (*composer.ComposerModel).OrderedList)
	command("unordered_list", (*composer.ComposerModel).UnorderedList)
	command("indent", (*composer.ComposerModel).Indent)
	command("unindent", (*composer.ComposerModel).Unindent)
	command("code_block", (*composer.ComposerModel).CodeBlock)
	command("quote", (*composer.ComposerModel).Quote)
	command("undo", (*composer.ComposerModel).Undo)
	command("redo", (*composer.ComposerModel).Redo)
	command("clear", (*composer.ComposerModel).Clear)
	command("remove_links", (*composer.ComposerModel).RemoveLinks)

	L.SetField(t, "replace_text", L.NewFunction(func(L *lua.LState) int {
		r.model.ReplaceText(L.CheckString(1))
		return 0
	}))
	L.SetField(t, "select", L.NewFunction(func(L *lua.LState) int {
		r.model.Select(L.CheckInt(1), L.CheckInt(2))
		return 0
	}))
	L.SetField(t, "set_link", L.NewFunction(func(L *lua.LState) int {
		r.model.SetLink(L.CheckString(1))
		return 0
	}))
	L.SetField(t, "set_link_with_text", L.NewFunction(func(L *lua.LState) int {
		r.model.SetLinkWithText(L.CheckString(1), L.CheckString(2))
		return 0
	}))
	L.SetField(t, "set_content_from_html", L.NewFunction(func(L *lua.LState) int {
		if _, err := r.model.SetContentFromHTML(L.CheckString(1)); err != nil {
			L.RaiseError("%s", err.Error())
		}
		return 0
	}))
	L.SetField(t, "set_content_from_markdown", L.NewFunction(func(L *lua.LState) int {
		if _, err := r.model.SetContentFromMarkdown(L.CheckString(1)); err != nil {
			L.RaiseError("%s", err.Error())
		}
		return 0
	}))

	read := func(name string, fn func(*composer.ComposerModel) string) {
		L.SetField(t, name, L.NewFunction(func(L *lua.LState) int {
			L.Push(lua.LString(fn(r.model)))
			return 1
		}))
	}
	read("html", (*composer.ComposerModel).GetContentAsHTML)
	read("markdown", (*composer.ComposerModel).GetContentAsMarkdown)
	read("text", (*composer.ComposerModel).GetContentAsPlainText)
	read("tree", (*composer.ComposerModel).ToTree)
	read("example_format", (*composer.ComposerModel).ToExampleFormat)

	return t
}
