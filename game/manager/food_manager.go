package manager

import (
	"snake-game/game/entity"
	"snake-game/game/types"

	"github.com/golang/glog"
	"golang.org/x/exp/rand"
)

// FoodManager places food on free interior cells.
type FoodManager struct {
	grid         types.Grid
	rng          *rand.Rand
	attempts     int
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, attempts int, rng *rand.Rand, collisionMgr *CollisionManager) *FoodManager {
	if attempts < 1 {
		attempts = 1
	}
	return &FoodManager{
		grid:         grid,
		rng:          rng,
		attempts:     attempts,
		collisionMgr: collisionMgr,
	}
}

// GenerateFood draws uniformly random interior cells until one is off the
// snake. After fm.attempts misses it picks uniformly among the free cells
// instead. ok is false when the snake fills the whole interior.
func (fm *FoodManager) GenerateFood(snake *entity.Snake) (food types.Point, ok bool) {
	for i := 0; i < fm.attempts; i++ {
		food = fm.randomInterior()
		if fm.collisionMgr.ValidateSpawnPosition(food, snake) {
			return food, true
		}
	}

	free := fm.freeCells(snake)
	if len(free) == 0 {
		glog.Warningf("no free cell for food on %dx%d grid", fm.grid.Width, fm.grid.Height)
		return types.Point{}, false
	}
	glog.V(1).Infof("food placement fell back to scan after %d draws, %d free cells", fm.attempts, len(free))
	return free[fm.rng.Intn(len(free))], true
}

func (fm *FoodManager) randomInterior() types.Point {
	return types.Point{
		X: fm.rng.Intn(fm.grid.Width-2) + 1,
		Y: fm.rng.Intn(fm.grid.Height-2) + 1,
	}
}

func (fm *FoodManager) freeCells(snake *entity.Snake) []types.Point {
	var free []types.Point
	for y := 1; y < fm.grid.Height-1; y++ {
		for x := 1; x < fm.grid.Width-1; x++ {
			p := types.Point{X: x, Y: y}
			if fm.collisionMgr.ValidateSpawnPosition(p, snake) {
				free = append(free, p)
			}
		}
	}
	return free
}
