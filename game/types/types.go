package types

// Point is one grid cell.
type Point struct {
	X, Y int
}

// Grid represents the game grid dimensions, border included
type Grid struct {
	Width  int
	Height int
}

// Interior reports whether p lies strictly inside the one-cell border ring.
func (g Grid) Interior(p Point) bool {
	return p.X > 0 && p.Y > 0 && p.X < g.Width-1 && p.Y < g.Height-1
}

// Direction is a snake heading.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Step returns the unit offset for one move in direction d.
func (d Direction) Step() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	default:
		return Point{X: 1, Y: 0}
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// Intent is the direction a single move should take. The zero value keeps
// the current heading.
type Intent struct {
	dir  Direction
	turn bool
}

// KeepHeading moves the snake along its current direction.
var KeepHeading = Intent{}

// Turn returns an intent that overrides the heading with d.
func Turn(d Direction) Intent {
	return Intent{dir: d, turn: true}
}

// Direction returns the override direction and whether there is one.
func (i Intent) Direction() (Direction, bool) {
	return i.dir, i.turn
}

// Resolve returns the direction a move takes given the current heading.
func (i Intent) Resolve(current Direction) Direction {
	if i.turn {
		return i.dir
	}
	return current
}

// Key is a discrete key press delivered by a frontend.
type Key int

const (
	KeyUnknown Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyP
	KeyR
)

// Direction maps an arrow key to a heading.
func (k Key) Direction() (Direction, bool) {
	switch k {
	case KeyUp:
		return Up, true
	case KeyDown:
		return Down, true
	case KeyLeft:
		return Left, true
	case KeyRight:
		return Right, true
	}
	return 0, false
}

// State is the coarse game state. Over wins over Paused.
type State int

const (
	Running State = iota
	Paused
	Over
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Over:
		return "over"
	}
	return "unknown"
}
