package types

import "github.com/pkg/errors"

type Color struct {
	R, G, B, A uint8
}

// Shape describes how a block is drawn. Radius is the corner radius in
// pixels; zero gives a square block.
type Shape struct {
	Radius   float32
	Segments int32
}

// Palette holds the color of every drawn element.
type Palette struct {
	Background   Color
	Food         Color
	Head         Color
	Body         Color
	TopBorder    Color
	BottomBorder Color
	LeftBorder   Color
	RightBorder  Color
	GameOver     Color
}

// Config is created once at startup and shared by the simulation and the
// renderers. It is never mutated after Validate.
type Config struct {
	Grid         Grid
	CellSize     float32 // pixels per cell
	MovingPeriod float64 // seconds between automatic moves
	Start        Point   // tail cell of a fresh snake
	FoodStart    Point
	FoodAttempts int // random draws before scanning for a free cell

	Palette   Palette
	FoodShape Shape
	HeadShape Shape
	BodyShape Shape
}

const (
	DefaultWidth        = 30
	DefaultHeight       = 30
	DefaultCellSize     = 20
	DefaultMovingPeriod = 0.3
	DefaultFoodAttempts = 100
)

var DefaultPalette = Palette{
	Background:   Color{R: 128, G: 128, B: 128, A: 255},
	Food:         Color{R: 255, G: 0, B: 255, A: 255},
	Head:         Color{R: 255, G: 0, B: 0, A: 255},
	Body:         Color{R: 128, G: 0, B: 0, A: 255},
	TopBorder:    Color{R: 0, G: 128, B: 128, A: 153},
	BottomBorder: Color{R: 0, G: 128, B: 128, A: 153},
	LeftBorder:   Color{R: 0, G: 128, B: 128, A: 153},
	RightBorder:  Color{R: 0, G: 128, B: 128, A: 153},
	GameOver:     Color{R: 230, G: 0, B: 0, A: 128},
}

// DefaultConfig returns the classic 30x30 board.
func DefaultConfig() Config {
	return Config{
		Grid:         Grid{Width: DefaultWidth, Height: DefaultHeight},
		CellSize:     DefaultCellSize,
		MovingPeriod: DefaultMovingPeriod,
		Start:        Point{X: 2, Y: 2},
		FoodStart:    Point{X: 6, Y: 4},
		FoodAttempts: DefaultFoodAttempts,
		Palette:      DefaultPalette,
		FoodShape:    Shape{Radius: 8, Segments: 16},
		HeadShape:    Shape{Radius: 10, Segments: 16},
		BodyShape:    Shape{Radius: 12.5, Segments: 16},
	}
}

// Validate checks that a fresh game fits on the board.
func (c Config) Validate() error {
	if c.CellSize <= 0 {
		return errors.Errorf("cell size must be positive, got %v", c.CellSize)
	}
	if c.MovingPeriod <= 0 {
		return errors.Errorf("moving period must be positive, got %v", c.MovingPeriod)
	}
	if c.FoodAttempts < 1 {
		return errors.Errorf("food attempts must be at least 1, got %d", c.FoodAttempts)
	}
	head := Point{X: c.Start.X + 2, Y: c.Start.Y}
	if !c.Grid.Interior(c.Start) || !c.Grid.Interior(head) {
		return errors.Errorf("%dx%d grid cannot hold a snake from %v to %v",
			c.Grid.Width, c.Grid.Height, c.Start, head)
	}
	if !c.Grid.Interior(c.FoodStart) {
		return errors.Errorf("%dx%d grid cannot hold food at %v",
			c.Grid.Width, c.Grid.Height, c.FoodStart)
	}
	return nil
}

// ToCoord converts a grid coordinate to pixels.
func (c Config) ToCoord(gameCoord int) float32 {
	return float32(gameCoord) * c.CellSize
}

// WindowSize returns the pixel size of the whole board.
func (c Config) WindowSize() (int32, int32) {
	return int32(c.ToCoord(c.Grid.Width)), int32(c.ToCoord(c.Grid.Height))
}
