// Command backdrop opens a window and runs the animated backdrop in it.
package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/backdrop/bridge"
	"github.com/plus3/backdrop/debugui"
	"github.com/plus3/backdrop/internal/config"
	"github.com/plus3/backdrop/scene"
	ebitensurface "github.com/plus3/backdrop/surface/ebiten"
)

const title = "Backdrop"

type game struct {
	animator *scene.Animator
	loop     *scene.Loop
	canvas   *ebitensurface.Surface
	hub      *bridge.Hub
	overlay  *debugui.Overlay

	start            time.Time
	cursorX, cursorY int
}

func (g *game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	x, y := ebiten.CursorPosition()
	if x != g.cursorX || y != g.cursorY {
		g.cursorX, g.cursorY = x, y
		if g.overlay == nil || !g.overlay.WantsPointer() {
			g.hub.EmitPointer(float64(x), float64(y))
		}
	}

	if g.overlay != nil {
		g.overlay.BeginFrame()
	}
	running := g.loop.Frame(time.Since(g.start))
	if g.overlay != nil {
		g.overlay.EndFrame()
	}

	if !running {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.canvas.Present(screen)
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.hub.EmitResize(outsideWidth, outsideHeight)
	if g.overlay != nil {
		g.overlay.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	g := &game{hub: bridge.NewHub()}
	if cfg.Debug {
		g.overlay = debugui.NewOverlay(title, cfg.Width, cfg.Height)
	} else {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
		ebiten.SetWindowTitle(title)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	opts := []scene.Option{scene.WithLogger(log.Default())}
	if cfg.Seed != 0 {
		opts = append(opts, scene.WithSeed(cfg.Seed))
	}

	animator, err := scene.Initialize(ebitensurface.Device{}, g.hub, scene.Viewport{Width: cfg.Width, Height: cfg.Height}, opts...)
	if err != nil {
		log.Fatalf("Failed to start scene: %v", err)
	}
	defer animator.Dispose()

	g.animator = animator
	g.loop = scene.NewLoop(animator)
	g.canvas = animator.Surface().(*ebitensurface.Surface)
	if g.overlay != nil {
		g.overlay.Attach(animator)
	}

	g.start = time.Now()
	if err := ebiten.RunGame(g); err != nil {
		log.Printf("Game loop stopped: %v", err)
	}
}
