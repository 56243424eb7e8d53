package entity

import (
	"reflect"
	"testing"

	"snake-game/game/types"
)

func TestNewSnake(t *testing.T) {
	s := NewSnake(2, 2)
	want := []types.Point{{X: 4, Y: 2}, {X: 3, Y: 2}, {X: 2, Y: 2}}
	if got := s.Body(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Body() = %v, want %v", got, want)
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
	if got := s.HeadPosition(); got != (types.Point{X: 4, Y: 2}) {
		t.Errorf("HeadPosition() = %v", got)
	}
	if s.HeadDirection() != types.Right {
		t.Errorf("HeadDirection() = %v, want right", s.HeadDirection())
	}
}

func TestNextHeadIsPure(t *testing.T) {
	s := NewSnake(5, 5)
	before := s.Body()

	tests := []struct {
		intent types.Intent
		want   types.Point
	}{
		{types.KeepHeading, types.Point{X: 8, Y: 5}},
		{types.Turn(types.Up), types.Point{X: 7, Y: 4}},
		{types.Turn(types.Down), types.Point{X: 7, Y: 6}},
		{types.Turn(types.Left), types.Point{X: 6, Y: 5}},
		{types.Turn(types.Right), types.Point{X: 8, Y: 5}},
	}
	for _, tt := range tests {
		first := s.NextHead(tt.intent)
		second := s.NextHead(tt.intent)
		if first != tt.want || second != tt.want {
			t.Errorf("NextHead(%v) = %v then %v, want %v", tt.intent, first, second, tt.want)
		}
	}

	if !reflect.DeepEqual(s.Body(), before) || s.HeadDirection() != types.Right {
		t.Errorf("NextHead mutated the snake: %v %v", s.Body(), s.HeadDirection())
	}
}

func TestOverTail(t *testing.T) {
	s := NewSnake(2, 2)
	for _, p := range []types.Point{{X: 4, Y: 2}, {X: 3, Y: 2}, {X: 2, Y: 2}} {
		if !s.OverTail(p.X, p.Y) {
			t.Errorf("OverTail(%v) = false", p)
		}
	}
	for _, p := range []types.Point{{X: 5, Y: 2}, {X: 1, Y: 2}, {X: 3, Y: 3}} {
		if s.OverTail(p.X, p.Y) {
			t.Errorf("OverTail(%v) = true", p)
		}
	}
}

func TestMoveForwardKeepsLength(t *testing.T) {
	s := NewSnake(2, 2)
	s.MoveForward(types.KeepHeading)
	s.MoveForward(types.Turn(types.Down))
	s.MoveForward(types.KeepHeading)

	want := []types.Point{{X: 5, Y: 4}, {X: 5, Y: 3}, {X: 5, Y: 2}}
	if got := s.Body(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Body() = %v, want %v", got, want)
	}
	if s.HeadDirection() != types.Down {
		t.Errorf("HeadDirection() = %v, want down", s.HeadDirection())
	}
}

func TestMoveForwardDoesNotValidateReversal(t *testing.T) {
	s := NewSnake(2, 2)
	s.MoveForward(types.Turn(types.Left))
	if got := s.HeadPosition(); got != (types.Point{X: 3, Y: 2}) {
		t.Errorf("HeadPosition() = %v, want (3,2)", got)
	}
	if s.HeadDirection() != types.Left {
		t.Errorf("HeadDirection() = %v, want left", s.HeadDirection())
	}
}

func TestRestoreTail(t *testing.T) {
	s := NewSnake(2, 2)
	if s.RestoreTail() {
		t.Fatal("RestoreTail succeeded before any move")
	}
	if s.Len() != 3 {
		t.Fatalf("Len() = %d after failed restore", s.Len())
	}

	s.MoveForward(types.KeepHeading)
	if !s.RestoreTail() {
		t.Fatal("RestoreTail failed after a move")
	}
	want := []types.Point{{X: 5, Y: 2}, {X: 4, Y: 2}, {X: 3, Y: 2}, {X: 2, Y: 2}}
	if got := s.Body(); !reflect.DeepEqual(got, want) {
		t.Errorf("Body() = %v, want %v", got, want)
	}
}
