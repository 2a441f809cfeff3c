//go:build ebiten

package app

import (
	"log"
	"time"

	"lifecanvas/internal/core"
	"lifecanvas/internal/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a life session to the ebiten.Game interface. Each ebiten
// tick runs one frame of the board's loop.
type Game struct {
	session *life.Session
	frames  *core.FrameQueue
	host    *host

	outW, outH int
}

// New mounts a board sized to the configured window.
func New(cfg *Config) (*Game, error) {
	frames := core.NewFrameQueue()
	g := &Game{
		session: life.NewSession(cfg.Life(), frames),
		frames:  frames,
		host:    newHost(cfg.Width, cfg.Height),
		outW:    cfg.Width,
		outH:    cfg.Height,
	}
	if err := g.session.Mount(g.host); err != nil {
		return nil, err
	}
	return g, nil
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.session.Reseed(time.Now().UnixNano())
		g.resize(g.outW, g.outH, true)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.resize(g.outW, g.outH, true)
	}
	if g.outW != g.host.Width() || g.outH != g.host.Height() {
		g.resize(g.outW, g.outH, false)
	}

	g.host.poll()
	g.frames.RunFrame()
	return nil
}

func (g *Game) resize(w, h int, force bool) {
	if !force && w == g.host.Width() && h == g.host.Height() {
		return
	}
	if err := g.session.OnResize(w, h); err != nil {
		log.Printf("life: resize to %dx%d: %v", w, h, err)
	}
}

// Draw presents the offscreen surface.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.host.img, nil)
}

// Layout tracks the window size one-to-one with surface pixels.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.outW, g.outH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
