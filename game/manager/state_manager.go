package manager

import "snake-game/game/types"

// StateManager tracks the pause and game over flags. Once over, the game
// stays over until Reset.
type StateManager struct {
	paused bool
	over   bool
}

func NewStateManager() *StateManager {
	return &StateManager{}
}

func (sm *StateManager) TogglePause() {
	sm.paused = !sm.paused
}

func (sm *StateManager) SetOver() {
	sm.over = true
}

func (sm *StateManager) Reset() {
	sm.paused = false
	sm.over = false
}

func (sm *StateManager) Paused() bool {
	return sm.paused
}

func (sm *StateManager) Over() bool {
	return sm.over
}

// Blocked reports whether ticks are suspended.
func (sm *StateManager) Blocked() bool {
	return sm.paused || sm.over
}

func (sm *StateManager) State() types.State {
	switch {
	case sm.over:
		return types.Over
	case sm.paused:
		return types.Paused
	}
	return types.Running
}
