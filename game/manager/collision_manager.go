package manager

import (
	"snake-game/game/entity"
	"snake-game/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	}
	return "none"
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckMove reports what the snake would hit moving one cell with intent.
// The body check runs against the current body, tail included.
func (cm *CollisionManager) CheckMove(snake *entity.Snake, intent types.Intent) (CollisionType, types.Point) {
	next := snake.NextHead(intent)
	if snake.OverTail(next.X, next.Y) {
		return SelfCollision, next
	}
	if cm.isWallCollision(next) {
		return WallCollision, next
	}
	return NoCollision, next
}

// isWallCollision is true on the border ring and anywhere beyond it
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.Interior(pos)
}

// ValidateSpawnPosition checks if a position is free interior space
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake) bool {
	if cm.isWallCollision(pos) {
		return false
	}
	return !snake.OverTail(pos.X, pos.Y)
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}
