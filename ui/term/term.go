// Package term renders a game into a terminal using tcell. Every grid cell
// takes two terminal columns so the board keeps its square shape.
package term

import (
	"fmt"

	"snake-game/game"
	"snake-game/game/types"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

const (
	squareGlyph = '█'
	roundLeft   = '▐'
	roundRight  = '▌'
)

type Renderer struct {
	screen     tcell.Screen
	cfg        types.Config
	background tcell.Color
}

// NewScreen creates and initialises the terminal screen.
func NewScreen() (tcell.Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "creating terminal screen")
	}
	if err := s.Init(); err != nil {
		return nil, errors.Wrap(err, "initialising terminal screen")
	}
	return s, nil
}

func NewRenderer(screen tcell.Screen, cfg types.Config) *Renderer {
	return &Renderer{
		screen:     screen,
		cfg:        cfg,
		background: toTcell(cfg.Palette.Background),
	}
}

// Draw renders one frame followed by a status line under the board.
func (r *Renderer) Draw(g *game.Game) {
	r.screen.Clear()
	bg := tcell.StyleDefault.Background(r.background)
	for y := 0; y < r.cfg.Grid.Height; y++ {
		for x := 0; x < r.cfg.Grid.Width*2; x++ {
			r.screen.SetContent(x, y, ' ', nil, bg)
		}
	}

	g.Draw(r)

	status := fmt.Sprintf("%s  len %d  session %.8s", g.State(), g.Snake().Len(), g.UUID)
	for i, ch := range status {
		r.screen.SetContent(i, r.cfg.Grid.Height, ch, nil, tcell.StyleDefault)
	}
	r.screen.Show()
}

func (r *Renderer) DrawBlock(c types.Color, s types.Shape, x, y int) {
	left, right := squareGlyph, squareGlyph
	if s.Radius > 0 {
		left, right = roundLeft, roundRight
	}
	col := x * 2
	r.screen.SetContent(col, y, left, nil, r.styleAt(col, y).Foreground(toTcell(c)))
	r.screen.SetContent(col+1, y, right, nil, r.styleAt(col+1, y).Foreground(toTcell(c)))
}

// DrawRectangle tints the background of the covered cells, blending by the
// color's alpha so anything already drawn stays visible.
func (r *Renderer) DrawRectangle(c types.Color, x, y, w, h int) {
	for row := y; row < y+h; row++ {
		for col := x * 2; col < (x+w)*2; col++ {
			mainc, combc, style, _ := r.screen.GetContent(col, row)
			_, under, _ := style.Decompose()
			style = style.Background(blend(under, c, r.background))
			r.screen.SetContent(col, row, mainc, combc, style)
		}
	}
}

func (r *Renderer) styleAt(col, row int) tcell.Style {
	_, _, style, _ := r.screen.GetContent(col, row)
	return style
}

// blend mixes c over under. A default (unset) color falls back to bg.
func blend(under tcell.Color, c types.Color, bg tcell.Color) tcell.Color {
	if !under.Valid() {
		under = bg
	}
	ur, ug, ub := under.RGB()
	a := int32(c.A)
	mix := func(dst int32, src uint8) int32 {
		return (int32(src)*a + dst*(255-a)) / 255
	}
	return tcell.NewRGBColor(mix(ur, c.R), mix(ug, c.G), mix(ub, c.B))
}

func toTcell(c types.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
