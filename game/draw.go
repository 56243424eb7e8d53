package game

import "snake-game/game/types"

// Drawer receives draw commands in grid coordinates.
type Drawer interface {
	// DrawBlock draws one cell sized block at (x, y).
	DrawBlock(c types.Color, s types.Shape, x, y int)
	// DrawRectangle fills w by h cells starting at (x, y).
	DrawRectangle(c types.Color, x, y, w, h int)
}

// Draw emits one frame: snake, food, borders and the game over overlay.
func (g *Game) Draw(d Drawer) {
	cfg := g.Config
	pal := cfg.Palette
	w, h := cfg.Grid.Width, cfg.Grid.Height

	for i, p := range g.snake.Body() {
		if i == 0 {
			d.DrawBlock(pal.Head, cfg.HeadShape, p.X, p.Y)
		} else {
			d.DrawBlock(pal.Body, cfg.BodyShape, p.X, p.Y)
		}
	}

	if g.foodExists {
		d.DrawBlock(pal.Food, cfg.FoodShape, g.food.X, g.food.Y)
	}

	d.DrawRectangle(pal.TopBorder, 0, 0, w, 1)
	d.DrawRectangle(pal.BottomBorder, 0, h-1, w, 1)
	d.DrawRectangle(pal.LeftBorder, 0, 0, 1, h)
	d.DrawRectangle(pal.RightBorder, w-1, 0, 1, h)

	if g.stateMgr.Over() {
		d.DrawRectangle(pal.GameOver, 0, 0, w, h)
	}
}
