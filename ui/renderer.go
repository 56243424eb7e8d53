package ui

import (
	"snake-game/game"
	"snake-game/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer draws a game into the raylib window, one cell per CellSize pixels.
type Renderer struct {
	cfg        types.Config
	background rl.Color
}

func NewRenderer(cfg types.Config) *Renderer {
	return &Renderer{
		cfg:        cfg,
		background: toRaylib(cfg.Palette.Background),
	}
}

// OpenWindow creates the window sized to the whole board.
func (r *Renderer) OpenWindow(title string, fps int32) {
	w, h := r.cfg.WindowSize()
	rl.InitWindow(w, h, title)
	rl.SetExitKey(rl.KeyEscape)
	rl.SetTargetFPS(fps)
}

func (r *Renderer) CloseWindow() {
	rl.CloseWindow()
}

func (r *Renderer) Draw(g *game.Game) {
	rl.BeginDrawing()
	rl.ClearBackground(r.background)
	g.Draw(r)
	rl.EndDrawing()
}

func (r *Renderer) DrawBlock(c types.Color, s types.Shape, x, y int) {
	size := r.cfg.CellSize
	rec := rl.NewRectangle(r.cfg.ToCoord(x), r.cfg.ToCoord(y), size, size)
	if s.Radius <= 0 {
		rl.DrawRectangleRec(rec, toRaylib(c))
		return
	}
	rl.DrawRectangleRounded(rec, roundness(s.Radius, size), s.Segments, toRaylib(c))
}

func (r *Renderer) DrawRectangle(c types.Color, x, y, w, h int) {
	rl.DrawRectangle(
		int32(r.cfg.ToCoord(x)),
		int32(r.cfg.ToCoord(y)),
		int32(r.cfg.ToCoord(w)),
		int32(r.cfg.ToCoord(h)),
		toRaylib(c))
}

// roundness converts a corner radius in pixels to raylib's 0..1 factor,
// where 1 rounds corners by half the block side.
func roundness(radius, size float32) float32 {
	f := 2 * radius / size
	if f > 1 {
		return 1
	}
	return f
}

func toRaylib(c types.Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
