//go:build ebiten

package app

import (
	"context"
	"fmt"
	"math"

	"hexwipe/internal/core"
	"hexwipe/internal/effect"
	"hexwipe/internal/noise"
	"hexwipe/internal/render"
	"hexwipe/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 240

// Game adapts the hex wipe to the ebiten.Game interface.
type Game struct {
	size  core.Size
	scale int
	tps   int

	params   effect.Params
	field    noise.Field
	renderer *render.Renderer

	first, second *render.Texture
	frame         *render.Frame
	painter       *render.FramePainter

	hud     *ui.HUD
	overlay *ui.Overlay

	clock  *core.Clock
	driver *Driver
}

// New constructs a Game rendering the transition from first to second.
func New(cfg *Config, first, second *render.Texture) (*Game, error) {
	if err := effect.CheckImages(first, second); err != nil {
		return nil, err
	}
	e, err := cfg.Effect()
	if err != nil {
		return nil, err
	}
	size := cfg.Size()
	g := &Game{
		size:     size,
		scale:    cfg.Scale,
		tps:      cfg.TPS,
		params:   e.Params(),
		field:    e.Noise(),
		renderer: render.NewRenderer(e, cfg.Workers),
		first:    first,
		second:   second,
		frame:    render.NewFrame(size.W, size.H),
		painter:  render.NewFramePainter(size.W, size.H),
		clock:    core.NewClock(),
		driver:   NewDriver(cfg.Transition, cfg.Speed),
	}
	g.overlay = ui.NewOverlay(g.renderer, size, float64(cfg.Scale))
	g.hud = ui.NewHUD(g, "Hex Transition", hudWidth)
	return g, nil
}

// Update handles per-frame input and advances the transition driver.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.clock.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.clock.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		g.first, g.second = g.second, g.first
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		if g.driver.Playing() {
			g.driver.SetSpeed(0)
		} else {
			g.driver.SetSpeed(0.25)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		g.driver.Set(TransitionControl.Nudge(g.driver.Transition(), -1))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		g.driver.Set(TransitionControl.Nudge(g.driver.Transition(), 1))
	}

	g.overlay.Update()
	g.hud.SetStatus(g.status())
	g.hud.Update(g.size.W * g.scale)

	if !g.clock.Paused() {
		g.driver.Advance(1 / float64(g.tps))
	}
	return nil
}

// Draw renders the current transition state.
func (g *Game) Draw(screen *ebiten.Image) {
	st := g.state()
	if err := g.renderer.Render(context.Background(), g.frame, g.first, g.second, st); err != nil {
		g.hud.SetStatus(err.Error())
	} else {
		g.painter.Blit(screen, g.frame, float64(g.scale))
	}
	g.overlay.Draw(screen, st)
	g.hud.Draw(screen, g.size.W*g.scale, g.size.H*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.size.W*g.scale + hudWidth, g.size.H * g.scale
}

func (g *Game) state() effect.State {
	return effect.State{
		Transition: g.driver.Transition(),
		Time:       g.clock.Elapsed(),
		Aspect:     g.size.Aspect(),
	}.Clamped()
}

func (g *Game) status() string {
	s := fmt.Sprintf("t=%.1fs", g.clock.Elapsed())
	if g.clock.Paused() {
		s += " paused"
	}
	if label := g.overlay.Label(); label != "" {
		s += " | " + label
	}
	return s
}

// Controls lists the values exposed on the HUD.
func (g *Game) Controls() []core.Control {
	return []core.Control{
		TransitionControl,
		{Key: "speed", Label: "Autoplay", Step: 0.05, Min: 0, Max: 2, HasMin: true, HasMax: true},
		{Key: "tiling", Label: "Tiling", Step: 1, Min: 4, Max: 60, HasMin: true, HasMax: true},
		{Key: "glow.gain", Label: "Glow", Step: 0.1, Min: 0, Max: 6, HasMin: true, HasMax: true},
	}
}

// Value reports the current value of a HUD control.
func (g *Game) Value(key string) (float64, bool) {
	switch key {
	case "transition":
		return g.driver.Transition(), true
	case "speed":
		return g.driver.Speed(), true
	case "tiling":
		return g.params.Tiling, true
	case "glow.gain":
		return g.params.GlowGain, true
	}
	return 0, false
}

// SetValue applies a HUD adjustment. Effect parameters rebuild the effect;
// the textures are left untouched.
func (g *Game) SetValue(key string, v float64) bool {
	if math.IsNaN(v) {
		return false
	}
	switch key {
	case "transition":
		g.driver.Set(v)
		return true
	case "speed":
		g.driver.SetSpeed(v)
		return true
	case "tiling", "glow.gain":
		p := g.params
		if err := p.Apply(map[string]string{key: fmt.Sprint(v)}); err != nil {
			return false
		}
		e, err := effect.New(p, g.field)
		if err != nil {
			return false
		}
		g.params = p
		g.renderer.SetEffect(e)
		return true
	}
	return false
}
