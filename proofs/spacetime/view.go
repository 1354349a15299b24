package main

import (
	"image"

	"github.com/gdamore/tcell"
	"github.com/gdamore/tcell/views"

	"github.com/borkshop/spacetime/internal/ecs"
	"github.com/borkshop/spacetime/internal/factory"
	"github.com/borkshop/spacetime/internal/input"
	"github.com/borkshop/spacetime/internal/resource"
)

// cellWidth is how many columns each tile takes; the second column carries
// any link to the right neighbor so that tiles read roughly square.
const cellWidth = 2

type gridView struct {
	views.WidgetWatchers
	view views.View
	port *views.ViewPort
	game *gameT
}

func newGridView(game *gameT) *gridView {
	v := &gridView{}
	v.game = game
	v.port = views.NewViewPort(nil, 0, 0, 0, 0)
	return v
}

func (v *gridView) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyRune {
			if move, ok := input.ParseMove(ev.Rune(), image.Pt(3, 3)); ok {
				v.game.moveCursor(move)
				return true
			}
		}
	}
	return false
}

func (v *gridView) Size() (int, int) {
	n := v.game.Grid().Size()
	return n * cellWidth, n
}

func (v *gridView) SetView(view views.View) {
	v.port.SetView(view)
	v.view = view
	if v.view == nil {
		return
	}
	v.Resize()
	v.PostEventWidgetContent(v)
}

func (v *gridView) Resize() {
	v.updateSize()
}

func (v *gridView) updateSize() {
	w, h := v.Size()
	px, py := 0, 0
	vw, vh := v.view.Size()
	if n := vw - w - 1; n > 0 {
		px = n / 2
		vw -= px
	}
	if n := vh - h - 1; n > 0 {
		py = n / 2
		vh -= py
	}
	v.port.Resize(px, py, vw, vh)
	v.port.SetContentSize(w, h, true)
}

func (v *gridView) Draw() {
	if v.view == nil {
		return
	}
	v.updateSize()
	v.port.Fill(' ', tcell.StyleDefault)

	grid := v.game.Grid()
	n := grid.Size()
	for y := 0; y < n; y++ {
		row := n - 1 - y
		for x := 0; x < n; x++ {
			pos := image.Pt(x, y)
			ch, link, style := v.cell(pos)
			if pos == v.game.cursor {
				style = style.Reverse(true)
			}
			v.port.SetContent(x*cellWidth, row, ch, nil, style)
			v.port.SetContent(x*cellWidth+1, row, link, nil, style)
		}
	}
	cx, cy := v.game.cursor.X*cellWidth, n-1-v.game.cursor.Y
	v.port.MakeVisible(cx, cy)
}

// cell returns the glyph, right-hand link glyph, and style for a tile.
func (v *gridView) cell(pos image.Point) (rune, rune, tcell.Style) {
	g := v.game
	style := tcell.StyleDefault
	ent, ok := g.Grid().Building(pos)
	if !ok {
		if g.Grid().Tile(pos) {
			return '·', ' ', style.Foreground(tcell.ColorGray)
		}
		return '▒', ' ', style.Foreground(tcell.ColorGray)
	}

	links := v.links(pos, ent)
	link := ' '
	if links&linkR != 0 {
		link = '─'
	}

	if kind, ok := g.Kind(ent); ok {
		return machineGlyph(g, kind, pos), link, style.Foreground(machineColors[kind])
	}
	if net, ok := g.NetworkOf(ent); ok {
		style = style.Foreground(resourceColor(net.Resource))
	}
	return pipeGlyphs[links&0xf], link, style
}

// links returns a mask of the directions in which ent is linked, with bit d
// set for each Direction d.
func (v *gridView) links(pos image.Point, ent ecs.Entity) uint8 {
	g := v.game
	var mask uint8
	if _, ok := g.Kind(ent); ok {
		for _, pe := range g.Ports(ent) {
			if p, ok := g.Port(pe); ok && p.Connected.Alive() {
				mask |= 1 << p.Side
			}
		}
		return mask
	}
	pipe, ok := g.Pipe(ent)
	if !ok {
		return 0
	}
	for _, other := range [...]ecs.Entity{pipe.To, pipe.From} {
		if !other.Alive() {
			continue
		}
		at, ok := g.Position(other)
		if p, isPort := g.Port(other); isPort {
			at, ok = g.Position(p.Parent)
		}
		if !ok {
			continue
		}
		for _, d := range factory.Directions {
			if pos.Add(d.Vec()) == at {
				mask |= 1 << d
			}
		}
	}
	return mask
}

const (
	linkR = 1 << factory.Right
	linkU = 1 << factory.Up
	linkL = 1 << factory.Left
	linkD = 1 << factory.Down
)

// pipeGlyphs is indexed by link mask; Up is drawn towards the top of the
// screen.
var pipeGlyphs = [16]rune{
	0:                             '○',
	linkR:                         '╶',
	linkU:                         '╵',
	linkL:                         '╴',
	linkD:                         '╷',
	linkR | linkL:                 '─',
	linkU | linkD:                 '│',
	linkR | linkU:                 '└',
	linkR | linkD:                 '┌',
	linkL | linkU:                 '┘',
	linkL | linkD:                 '┐',
	linkR | linkU | linkL:         '┴',
	linkR | linkD | linkL:         '┬',
	linkU | linkD | linkR:         '├',
	linkU | linkD | linkL:         '┤',
	linkR | linkU | linkL | linkD: '┼',
}

var machineLetters = [...]rune{
	factory.InletMachine:  'I',
	factory.OutletMachine: 'O',
	factory.AmmoFactory:   'A',
	factory.RocketFactory: 'R',
	factory.HullFixer:     'H',
	factory.PipeSwitch:    'S',
}

var machineColors = [...]tcell.Color{
	factory.InletMachine:  tcell.ColorAqua,
	factory.OutletMachine: tcell.ColorFuchsia,
	factory.AmmoFactory:   tcell.ColorYellow,
	factory.RocketFactory: tcell.ColorRed,
	factory.HullFixer:     tcell.ColorLightGreen,
	factory.PipeSwitch:    tcell.ColorSilver,
}

var switchArrows = [...]rune{
	factory.Right: '→',
	factory.Up:    '↑',
	factory.Left:  '←',
	factory.Down:  '↓',
}

func machineGlyph(g *gameT, kind factory.MachineKind, pos image.Point) rune {
	if kind == factory.PipeSwitch {
		if d, ok := g.SwitchOutlet(pos); ok {
			return switchArrows[d]
		}
	}
	if int(kind) < len(machineLetters) {
		return machineLetters[kind]
	}
	return '?'
}

func resourceColor(k resource.Kind) tcell.Color {
	switch k {
	case resource.Ammo:
		return tcell.ColorYellow
	case resource.Rockets:
		return tcell.ColorRed
	case resource.Mineral:
		return tcell.ColorOrange
	case resource.Gas:
		return tcell.ColorAqua
	}
	return tcell.ColorDefault
}
