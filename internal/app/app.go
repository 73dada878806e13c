//go:build ebiten

package app

import (
	"image/color"
	"time"

	"torus-life/internal/render"
	"torus-life/internal/ui"
	"torus-life/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// advancer is implemented by sims that can run several generations in one
// call, such as life.Life.
type advancer interface {
	Advance(n int) (time.Duration, error)
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD

	scale    int
	steps    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	return &Game{
		sim:     sim,
		painter: render.NewGridPainter(sim.Size(), color.White, color.Black),
		hud:     ui.NewHUD(sim, cfg.HUDWidth),
		scale:   cfg.Scale,
		steps:   max(cfg.StepsPerTick, 1),
		seed:    cfg.Seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.steps *= 2
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) && g.steps > 1 {
		g.steps /= 2
	}

	switch {
	case g.tickOnce:
		g.sim.Step()
		g.tickOnce = false
	case !g.paused:
		if err := g.advance(); err != nil {
			return err
		}
	}
	g.hud.Update()
	return nil
}

func (g *Game) advance() error {
	if a, ok := g.sim.(advancer); ok {
		_, err := a.Advance(g.steps)
		return err
	}
	for range g.steps {
		g.sim.Step()
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, g.sim, g.scale)
	g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}
