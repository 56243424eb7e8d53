package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"snake-game/game"
	"snake-game/game/types"
	"snake-game/ui"
	"snake-game/ui/term"

	"github.com/gdamore/tcell/v2"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

func main() {
	width := flag.Int("width", types.DefaultWidth, "Grid width in cells, border included")
	height := flag.Int("height", types.DefaultHeight, "Grid height in cells, border included")
	cell := flag.Float64("cell", types.DefaultCellSize, "Cell size in pixels (window frontend)")
	period := flag.Float64("period", types.DefaultMovingPeriod, "Seconds between automatic moves")
	frontend := flag.String("frontend", "window", "Frontend to run: window or term")
	fps := flag.Int("fps", 60, "Target frames per second")
	seed := flag.Uint64("seed", 0, "Food placement seed (0 = time based)")
	flag.Parse()
	defer glog.Flush()

	cfg := types.DefaultConfig()
	cfg.Grid = types.Grid{Width: *width, Height: *height}
	cfg.CellSize = float32(*cell)
	cfg.MovingPeriod = *period
	if err := cfg.Validate(); err != nil {
		glog.Exitf("invalid configuration: %v", err)
	}
	if *fps < 1 {
		glog.Exitf("invalid configuration: fps must be positive, got %d", *fps)
	}

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	g := game.NewGame(cfg, rand.New(rand.NewSource(*seed)))

	switch *frontend {
	case "window":
		runWindow(g, cfg, int32(*fps))
	case "term":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := runTerminal(ctx, g, cfg, *fps); err != nil {
			glog.Exitf("terminal frontend: %v", err)
		}
	default:
		glog.Exitf("unknown frontend %q", *frontend)
	}
}

func runWindow(g *game.Game, cfg types.Config, fps int32) {
	renderer := ui.NewRenderer(cfg)
	renderer.OpenWindow("snake", fps)
	defer renderer.CloseWindow()

	for !rl.WindowShouldClose() {
		for _, key := range ui.PressedKeys() {
			g.KeyPressed(key)
		}
		renderer.Draw(g)
		g.Update(float64(rl.GetFrameTime()))
	}
}

func runTerminal(ctx context.Context, g *game.Game, cfg types.Config, fps int) error {
	screen, err := term.NewScreen()
	if err != nil {
		return err
	}
	defer screen.Fini()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	renderer := term.NewRenderer(screen, cfg)
	events := term.PollEvents(ctx, screen)
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	last := time.Now()
	renderer.Draw(g)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return errors.New("terminal event stream closed")
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if term.IsQuit(ev) {
					return nil
				}
				g.KeyPressed(term.KeyFromEvent(ev))
			case *tcell.EventResize:
				screen.Sync()
			}
		case now := <-ticker.C:
			g.Update(now.Sub(last).Seconds())
			last = now
			renderer.Draw(g)
		}
	}
}
