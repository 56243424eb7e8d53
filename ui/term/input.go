package term

import (
	"context"

	"snake-game/game/types"

	"github.com/gdamore/tcell/v2"
)

// KeyFromEvent maps a tcell key event to a game key.
func KeyFromEvent(ev *tcell.EventKey) types.Key {
	switch ev.Key() {
	case tcell.KeyUp:
		return types.KeyUp
	case tcell.KeyDown:
		return types.KeyDown
	case tcell.KeyLeft:
		return types.KeyLeft
	case tcell.KeyRight:
		return types.KeyRight
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'p', 'P':
			return types.KeyP
		case 'r', 'R':
			return types.KeyR
		}
	}
	return types.KeyUnknown
}

// IsQuit reports whether the event should end the program.
func IsQuit(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC
}

// PollEvents forwards screen events until ctx is done. It is the only
// goroutine reading from the screen; the game itself stays on the caller's
// goroutine.
func PollEvents(ctx context.Context, s tcell.Screen) <-chan tcell.Event {
	events := make(chan tcell.Event)
	go func() {
		defer close(events)
		for {
			ev := s.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()
	return events
}
