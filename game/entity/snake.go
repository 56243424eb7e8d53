package entity

import (
	"snake-game/game/types"

	"github.com/gammazero/deque"
)

// Snake is an ordered body of cells, head first.
type Snake struct {
	body      deque.Deque[types.Point]
	direction types.Direction
	tail      types.Point
	hasTail   bool // tail holds the last cell dropped by MoveForward
}

// NewSnake creates a three cell snake lying on row y, tail at x, facing right.
func NewSnake(x, y int) *Snake {
	s := &Snake{direction: types.Right}
	s.body.PushBack(types.Point{X: x + 2, Y: y})
	s.body.PushBack(types.Point{X: x + 1, Y: y})
	s.body.PushBack(types.Point{X: x, Y: y})
	return s
}

func (s *Snake) HeadPosition() types.Point {
	return s.body.Front()
}

func (s *Snake) HeadDirection() types.Direction {
	return s.direction
}

func (s *Snake) Len() int {
	return s.body.Len()
}

// Body returns a head-first copy of the body.
func (s *Snake) Body() []types.Point {
	out := make([]types.Point, s.body.Len())
	for i := range out {
		out[i] = s.body.At(i)
	}
	return out
}

// NextHead returns where the head would be after one move, without moving.
func (s *Snake) NextHead(intent types.Intent) types.Point {
	head := s.HeadPosition()
	step := intent.Resolve(s.direction).Step()
	return types.Point{X: head.X + step.X, Y: head.Y + step.Y}
}

// OverTail reports whether (x, y) is occupied by any body cell, head included.
func (s *Snake) OverTail(x, y int) bool {
	p := types.Point{X: x, Y: y}
	for i := 0; i < s.body.Len(); i++ {
		if s.body.At(i) == p {
			return true
		}
	}
	return false
}

// MoveForward shifts the body one cell. Reversal checks are the caller's job.
func (s *Snake) MoveForward(intent types.Intent) {
	next := s.NextHead(intent)
	s.direction = intent.Resolve(s.direction)
	s.body.PushFront(next)
	s.tail = s.body.PopBack()
	s.hasTail = true
}

// RestoreTail re-appends the cell dropped by the last move. It returns false
// when the snake has not moved yet.
func (s *Snake) RestoreTail() bool {
	if !s.hasTail {
		return false
	}
	s.body.PushBack(s.tail)
	return true
}
