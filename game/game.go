package game

import (
	"snake-game/game/entity"
	"snake-game/game/manager"
	"snake-game/game/types"

	"github.com/golang/glog"
	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

// Game owns the snake, the food and the movement timer. It is driven by a
// single control loop and is not safe for concurrent use.
type Game struct {
	UUID   string
	Config types.Config

	snake       *entity.Snake
	foodExists  bool
	food        types.Point
	waitingTime float64

	stateMgr     *manager.StateManager
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
}

// NewGame creates a game for a validated config. Food placement draws from rng.
func NewGame(cfg types.Config, rng *rand.Rand) *Game {
	collisionMgr := manager.NewCollisionManager(cfg.Grid)
	g := &Game{
		Config:       cfg,
		stateMgr:     manager.NewStateManager(),
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(cfg.Grid, cfg.FoodAttempts, rng, collisionMgr),
	}
	g.reset()
	glog.Infof("session %s: new %dx%d game", g.UUID, cfg.Grid.Width, cfg.Grid.Height)
	return g
}

func (g *Game) reset() {
	g.UUID = uuid.New().String()
	g.snake = entity.NewSnake(g.Config.Start.X, g.Config.Start.Y)
	g.waitingTime = 0
	g.foodExists = true
	g.food = g.Config.FoodStart
	g.stateMgr.Reset()
}

// Restart throws away the current snake and starts over in any state.
func (g *Game) Restart() {
	old := g.UUID
	g.reset()
	glog.Infof("session %s: restarted as %s", old, g.UUID)
}

// Update advances the movement timer by deltaTime seconds and moves the
// snake once the moving period has been exceeded.
func (g *Game) Update(deltaTime float64) {
	if g.stateMgr.Blocked() {
		return
	}

	g.waitingTime += deltaTime

	if !g.foodExists {
		g.addFood()
	}

	glog.V(2).Infof("waiting time %.3f, period %.3f", g.waitingTime, g.Config.MovingPeriod)
	if g.waitingTime > g.Config.MovingPeriod {
		g.updateSnake(types.KeepHeading)
	}
}

// KeyPressed handles one discrete key press.
func (g *Game) KeyPressed(key types.Key) {
	if key == types.KeyR {
		g.Restart()
		return
	}

	if g.stateMgr.Over() {
		return
	}

	if key == types.KeyP {
		g.stateMgr.TogglePause()
		glog.V(1).Infof("session %s: %v", g.UUID, g.stateMgr.State())
		return
	}

	dir, ok := key.Direction()
	if !ok {
		return
	}
	if dir == g.snake.HeadDirection().Opposite() {
		return
	}
	g.updateSnake(types.Turn(dir))
}

func (g *Game) updateSnake(intent types.Intent) {
	if g.stateMgr.Paused() {
		return
	}

	collision, next := g.collisionMgr.CheckMove(g.snake, intent)
	if collision == manager.NoCollision {
		g.snake.MoveForward(intent)
		glog.V(1).Infof("snake moved %v to %v", g.snake.HeadDirection(), next)
		g.checkEating()
	} else {
		g.stateMgr.SetOver()
		glog.Infof("session %s: game over, %v collision at %v, length %d",
			g.UUID, collision, next, g.snake.Len())
	}
	g.waitingTime = 0
}

func (g *Game) checkEating() {
	if !g.foodExists {
		return
	}
	head := g.snake.HeadPosition()
	if g.collisionMgr.IsFoodCollision(head, g.food) {
		g.foodExists = false
		g.snake.RestoreTail()
		glog.V(1).Infof("ate food at %v, length %d", head, g.snake.Len())
	}
}

func (g *Game) addFood() {
	food, ok := g.foodMgr.GenerateFood(g.snake)
	if !ok {
		return
	}
	g.food = food
	g.foodExists = true
	glog.V(1).Infof("food placed at %v", food)
}

func (g *Game) State() types.State {
	return g.stateMgr.State()
}

func (g *Game) Snake() *entity.Snake {
	return g.snake
}

// Food returns the food cell and whether food is on the board.
func (g *Game) Food() (types.Point, bool) {
	return g.food, g.foodExists
}
