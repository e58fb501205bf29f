// Package main is an interactive terminal demo for the composer. It
// renders the plain text projection with a live cursor and a status
// line showing the serialized HTML, the active suggestion, and the
// menu state of the formatting actions.
package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/composer"
	"github.com/dshills/composer/internal/textutil"
)

func main() {
	os.Exit(run())
}

func run() int {
	var content string
	if len(os.Args) > 1 {
		content = os.Args[1]
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to init screen: %v\n", err)
		return 1
	}
	defer screen.Fini()

	m := composer.NewComposerModel(composer.WithContent(content))
	d := &demo{screen: screen, model: m}
	d.loop()
	return 0
}

type demo struct {
	screen     tcell.Screen
	model      *composer.ComposerModel
	suggestion string
	states     map[composer.Action]composer.ActionState
}

func (d *demo) loop() {
	d.states = d.model.ActionStates()
	for {
		d.draw()
		ev := d.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			d.screen.Sync()
		case *tcell.EventKey:
			if !d.handleKey(ev) {
				return
			}
		}
	}
}

// handleKey maps one key press to a command. Returns false to quit.
func (d *demo) handleKey(ev *tcell.EventKey) bool {
	var upd composer.ComposerUpdate
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		upd = d.model.Backspace()
	case tcell.KeyDelete:
		upd = d.model.Delete()
	case tcell.KeyEnter:
		upd = d.model.Enter()
	case tcell.KeyLeft:
		upd = d.moveCursor(-1)
	case tcell.KeyRight:
		upd = d.moveCursor(1)
	case tcell.KeyCtrlB:
		upd = d.model.Bold()
	case tcell.KeyCtrlE:
		upd = d.model.Italic()
	case tcell.KeyCtrlU:
		upd = d.model.Underline()
	case tcell.KeyCtrlK:
		upd = d.model.InlineCode()
	case tcell.KeyCtrlZ:
		upd = d.model.Undo()
	case tcell.KeyCtrlY:
		upd = d.model.Redo()
	case tcell.KeyCtrlO:
		upd = d.model.OrderedList()
	case tcell.KeyCtrlL:
		upd = d.model.UnorderedList()
	case tcell.KeyCtrlQ:
		upd = d.model.Quote()
	case tcell.KeyRune:
		upd = d.model.ReplaceText(string(ev.Rune()))
	default:
		return true
	}
	d.apply(upd)
	return true
}

func (d *demo) moveCursor(delta int) composer.ComposerUpdate {
	st := d.model.GetCurrentDomState()
	return d.model.Select(st.End+delta, st.End+delta)
}

func (d *demo) apply(upd composer.ComposerUpdate) {
	switch upd.MenuAction.Kind {
	case composer.MenuActionSuggestion:
		s := upd.MenuAction.Suggestion
		d.suggestion = fmt.Sprintf("%s %q [%d..%d]", s.Key, s.Text, s.Start, s.End)
	case composer.MenuActionNone:
		d.suggestion = ""
	}
	if upd.MenuState.Kind == composer.MenuUpdate {
		d.states = upd.MenuState.States
	}
}

func (d *demo) draw() {
	d.screen.Clear()
	width, height := d.screen.Size()

	text := d.model.GetContentAsPlainText()
	row := 0
	for _, line := range strings.Split(text, "\n") {
		if row >= height-3 {
			break
		}
		d.print(0, row, line, tcell.StyleDefault)
		row++
	}

	st := d.model.GetCurrentDomState()
	d.screen.ShowCursor(cursorPosition(text, st.End, height-3))

	sep := tcell.StyleDefault.Reverse(true)
	d.print(0, height-3, pad(" html: "+st.HTML, width), sep)
	d.print(0, height-2, pad(" menu: "+d.menuLine(), width), sep)
	status := " ctrl-b bold  ctrl-e italic  ctrl-u underline  ctrl-z undo  esc quit"
	if d.suggestion != "" {
		status = " suggestion: " + d.suggestion
	}
	d.print(0, height-1, pad(status, width), sep)

	d.screen.Show()
}

func (d *demo) menuLine() string {
	var parts []string
	for action, state := range d.states {
		if state == composer.ActionReversed {
			parts = append(parts, string(action))
		}
	}
	sort.Strings(parts)
	return strings.Join(parts, " ")
}

func (d *demo) print(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		d.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// cursorPosition maps a codeunit offset into the plain text projection
// to a screen row and column. Codeunits approximate columns well
// enough for a demo.
func cursorPosition(text string, offset, maxRow int) (int, int) {
	row, col := 0, 0
	for i, r := range text {
		if offset <= 0 {
			break
		}
		offset -= textutil.RuneLenAt(text, i)
		if r == '\n' {
			row++
			col = 0
		} else {
			col++
		}
	}
	if row >= maxRow {
		row = maxRow - 1
	}
	return col, row
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}
