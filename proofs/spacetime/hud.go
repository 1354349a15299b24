package main

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/gdamore/tcell"
	"github.com/gdamore/tcell/views"

	"github.com/borkshop/spacetime/internal/factory"
	"github.com/borkshop/spacetime/internal/input"
)

const logLines = 8

type hudT struct {
	views.Panel

	game  *gameT
	modal views.Widget

	title  *views.TextBar
	keybar *keybar
	status *views.SimpleStyledTextBar
	body   *views.BoxLayout
	view   *gridView
	logs   *views.TextArea
}

type keybar struct {
	*views.SimpleStyledText
	actions map[rune]keybarAction
	prior   map[rune]keybarAction
}

type keybarAction struct {
	l string
	f func()
}

func newKeybar() *keybar {
	kb := &keybar{}
	kb.SimpleStyledText = views.NewSimpleStyledText()
	kb.actions = make(map[rune]keybarAction)
	return kb
}

func (kb *keybar) addAction(k rune, label string, f func()) {
	if _, def := kb.actions[k]; def {
		panic(fmt.Sprintf("duplicate action %q", k))
	}
	kb.actions[k] = keybarAction{label, f}
	kb.refresh()
}

func keyLabel(k rune) string {
	if k == ' ' {
		return "Spc"
	}
	return string(k)
}

func (kb *keybar) refresh() {
	parts := make([]string, 0, len(kb.actions))
	for k, a := range kb.actions {
		parts = append(parts, fmt.Sprintf("%%S[%s]%%A%s%%N", keyLabel(k), a.l))
	}
	sort.Strings(parts)
	kb.SetMarkup(strings.Join(parts, " "))
}

func (kb *keybar) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyRune:
			k := ev.Rune()
			a, def := kb.actions[k]
			if !def && unicode.IsUpper(k) {
				a, def = kb.actions[unicode.ToLower(k)]
			}
			if def {
				a.f()
				return true
			}
		}
	}
	return false
}

func (hud *hudT) init(game *gameT) {
	hud.game = game

	hud.title = views.NewTextBar()

	hud.keybar = newKeybar()
	hud.keybar.RegisterStyle('N', tcell.StyleDefault.
		Background(tcell.ColorBlack).
		Foreground(tcell.ColorWhite))
	hud.keybar.RegisterStyle('A', tcell.StyleDefault.
		Background(tcell.ColorDarkBlue).
		Foreground(tcell.ColorSlateBlue))
	hud.keybar.RegisterStyle('S', tcell.StyleDefault.
		Background(tcell.ColorSlateBlue).
		Foreground(tcell.ColorDarkBlue))
	for _, b := range input.Bindings {
		act := b.Action
		hud.keybar.addAction(b.Key, actionLabel(act), func() { hud.game.act(act) })
	}

	hud.status = views.NewSimpleStyledTextBar()

	hud.view = newGridView(game)
	hud.logs = views.NewTextArea()
	hud.body = views.NewBoxLayout(views.Vertical)
	hud.body.AddWidget(hud.view, 0)
	hud.body.AddWidget(hud.logs, 1)

	hud.SetMenu(hud.status)
	hud.SetTitle(hud.title)
	hud.SetStatus(hud.keybar)
	hud.SetContent(hud.body)
	hud.refresh()
}

func actionLabel(act input.Action) string {
	if slot, ok := act.ShopSlot(); ok {
		return factory.ShopKinds[slot].String()
	}
	s := act.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

// refresh copies game state into the text widgets; the grid view reads the
// game directly when drawn.
func (hud *hudT) refresh() {
	g := hud.game
	title := fmt.Sprintf("Space|Time  %v  tick=%d", g.Pool(), g.Ticks())
	if g.Over() {
		title += "  GAME OVER"
	}
	hud.title.SetCenter(title, tcell.StyleDefault)

	var here string
	if ent, ok := g.Grid().Building(g.cursor); ok {
		if kind, ok := g.Kind(ent); ok {
			here = kind.String()
		} else {
			here = "pipe"
		}
		if buf, ok := g.Buffer(ent); ok {
			here += fmt.Sprintf(" %v=%.0f", buf.Kind, buf.Amount)
		}
	}
	hud.status.SetLeft(fmt.Sprintf("%v %s", g.cursor, here))
	hud.status.SetRight(strings.ReplaceAll(g.dash.Status(), "%", "%%"))

	hud.logs.SetLines(g.logs.Tail(logLines))
}

func (hud *hudT) showModal(wid views.Widget) {
	if hud.keybar.prior == nil {
		hud.keybar.prior = hud.keybar.actions
	}
	hud.modal = wid
	hud.SetContent(wid)
	hud.keybar.actions = make(map[rune]keybarAction)
	hud.keybar.addAction('Q', "Resume Game", hud.hideModal)
}

func (hud *hudT) hideModal() {
	if hud.keybar.prior != nil {
		hud.keybar.actions = hud.keybar.prior
		hud.keybar.prior = nil
		hud.keybar.refresh()
	}
	hud.modal = nil
	hud.SetContent(hud.body)
}

func (hud *hudT) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyCtrlL:
			app.Refresh()
			return true
		case tcell.KeyCtrlC:
			app.Quit()
			return true
		case tcell.KeyCtrlP:
			hud.game.perf.Toggle()
			return true
		case tcell.KeyRune:
			if ev.Rune() == '?' && hud.modal == nil {
				help()
				return true
			}
		}
	}

	if hud.Panel.HandleEvent(ev) {
		return true
	}
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyRune:
			hud.status.SetLeft(fmt.Sprintf("?rune %q", ev.Rune()))
		default:
			hud.status.SetLeft(fmt.Sprintf("?key %v", ev.Key()))
		}
	}
	return false
}
