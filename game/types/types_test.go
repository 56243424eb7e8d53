package types

import (
	"strings"
	"testing"
)

func TestOppositeIsInvolution(t *testing.T) {
	for _, d := range []Direction{Up, Down, Left, Right} {
		if got := d.Opposite().Opposite(); got != d {
			t.Errorf("opposite(opposite(%v)) = %v", d, got)
		}
		if d.Opposite() == d {
			t.Errorf("opposite(%v) returned itself", d)
		}
	}
}

func TestStepIsUnit(t *testing.T) {
	tests := []struct {
		dir  Direction
		want Point
	}{
		{Up, Point{0, -1}},
		{Down, Point{0, 1}},
		{Left, Point{-1, 0}},
		{Right, Point{1, 0}},
	}
	for _, tt := range tests {
		if got := tt.dir.Step(); got != tt.want {
			t.Errorf("%v.Step() = %v, want %v", tt.dir, got, tt.want)
		}
	}
}

func TestIntentResolve(t *testing.T) {
	if got := KeepHeading.Resolve(Left); got != Left {
		t.Errorf("KeepHeading.Resolve(Left) = %v", got)
	}
	if got := Turn(Up).Resolve(Left); got != Up {
		t.Errorf("Turn(Up).Resolve(Left) = %v", got)
	}
	if _, ok := KeepHeading.Direction(); ok {
		t.Error("KeepHeading reports an override")
	}
	if d, ok := Turn(Down).Direction(); !ok || d != Down {
		t.Errorf("Turn(Down).Direction() = %v, %v", d, ok)
	}
}

func TestKeyDirection(t *testing.T) {
	for _, k := range []Key{KeyP, KeyR, KeyUnknown} {
		if _, ok := k.Direction(); ok {
			t.Errorf("key %d mapped to a direction", k)
		}
	}
	if d, ok := KeyLeft.Direction(); !ok || d != Left {
		t.Errorf("KeyLeft.Direction() = %v, %v", d, ok)
	}
}

func TestGridInterior(t *testing.T) {
	g := Grid{Width: 30, Height: 30}
	tests := []struct {
		p    Point
		want bool
	}{
		{Point{1, 1}, true},
		{Point{28, 28}, true},
		{Point{0, 5}, false},
		{Point{5, 0}, false},
		{Point{29, 5}, false},
		{Point{5, 29}, false},
		{Point{-1, 5}, false},
	}
	for _, tt := range tests {
		if got := g.Interior(tt.p); got != tt.want {
			t.Errorf("Interior(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestConfigValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero cell", func(c *Config) { c.CellSize = 0 }, "cell size"},
		{"zero period", func(c *Config) { c.MovingPeriod = 0 }, "moving period"},
		{"no attempts", func(c *Config) { c.FoodAttempts = 0 }, "food attempts"},
		{"narrow grid", func(c *Config) { c.Grid.Width = 5 }, "cannot hold a snake"},
		{"short grid", func(c *Config) { c.Grid.Height = 5 }, "cannot hold food"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.mutate(&c)
			err := c.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.want)
			}
		})
	}
}

func TestWindowSize(t *testing.T) {
	w, h := DefaultConfig().WindowSize()
	if w != 600 || h != 600 {
		t.Errorf("WindowSize() = %d, %d, want 600, 600", w, h)
	}
}
