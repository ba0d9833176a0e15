//go:build ebiten

package app

import (
	"image/color"
	"time"

	"isle-gen/internal/core"
	"isle-gen/internal/render"
	"isle-gen/internal/ui"
	pkgcore "isle-gen/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type paletteProvider interface {
	Palette() []color.RGBA
}

// Game adapts a step-driven generator to the ebiten.Game interface. Each
// tick it lets the pipeline advance a bounded number of rows, which is the
// external-scheduler half of the generation contract.
type Game struct {
	gen     core.Generator
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	ticker  *core.FixedStep
	rng     *pkgcore.RNG

	palette []color.RGBA

	cfg      *Config
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided generator.
func New(gen core.Generator, cfg *Config) *Game {
	size := gen.Size()
	g := &Game{
		gen:     gen,
		painter: render.NewGridPainter(size.W, size.H),
		overlay: ui.NewOverlay(gen, cfg.Scale),
		hud:     ui.NewHUD(gen, cfg.HUDWidth),
		ticker:  core.NewFixedStep(cfg.TPS),
		rng:     pkgcore.NewRNG(time.Now().UnixNano()),
		cfg:     cfg,
		seed:    cfg.Seed,
	}
	if pp, ok := gen.(paletteProvider); ok {
		g.palette = pp.Palette()
	} else {
		g.palette = []color.RGBA{{A: 255}, {R: 255, G: 255, B: 255, A: 255}}
	}
	return g
}

// Reset restarts generation with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.gen.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame input and advances the generation pipeline.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(g.rng.Seed())
	}

	g.overlay.Update()
	g.hud.Update()

	if g.ticker.ShouldStep() && (!g.paused || g.tickOnce) {
		steps := g.cfg.StepsPerTick
		if g.tickOnce {
			steps = 1
		}
		for i := 0; i < steps; i++ {
			if !g.gen.Step() {
				break
			}
		}
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current generation state.
func (g *Game) Draw(screen *ebiten.Image) {
	scale := float64(g.cfg.Scale)
	g.painter.Blit(screen, g.gen.Cells(), g.palette, scale, scale)
	g.overlay.Draw(screen)
	size := g.gen.Size()
	g.hud.Draw(screen, size.W*g.cfg.Scale, size.H*g.cfg.Scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.gen.Size()
	return s.W*g.cfg.Scale + g.cfg.HUDWidth, s.H * g.cfg.Scale
}
