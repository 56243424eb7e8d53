package game

import "snake-game/game/types"

// Snapshot is a copy of every observable field of a game, excluding its
// session id. Two snapshots compare equal with reflect.DeepEqual when the
// games are indistinguishable.
type Snapshot struct {
	Body        []types.Point
	Direction   types.Direction
	FoodExists  bool
	Food        types.Point
	Paused      bool
	Over        bool
	WaitingTime float64
}

func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Body:        g.snake.Body(),
		Direction:   g.snake.HeadDirection(),
		FoodExists:  g.foodExists,
		Food:        g.food,
		Paused:      g.stateMgr.Paused(),
		Over:        g.stateMgr.Over(),
		WaitingTime: g.waitingTime,
	}
}
