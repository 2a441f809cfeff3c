//go:build ebiten

package app

import (
	"lifecanvas/internal/core"
	"lifecanvas/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// host is the ebiten-backed surface: an offscreen image the board draws on
// and pointer events polled from the mouse once per tick.
type host struct {
	core.Listeners

	w, h   int
	img    *ebiten.Image
	screen *render.Screen

	lastX, lastY int
}

func newHost(w, h int) *host {
	hs := &host{}
	hs.SetSize(w, h)
	return hs
}

func (hs *host) Width() int { return hs.w }

func (hs *host) Height() int { return hs.h }

// SetSize reallocates the offscreen image. ebiten images must be at least
// 1x1, so degenerate sizes keep a single pixel while reporting zero.
func (hs *host) SetSize(w, h int) {
	if hs.img != nil && w == hs.w && h == hs.h {
		return
	}
	if hs.img != nil {
		hs.img.Dispose()
	}
	hs.w, hs.h = max(w, 0), max(h, 0)
	hs.img = ebiten.NewImage(max(w, 1), max(h, 1))
	hs.screen = render.NewScreen(hs.img)
}

func (hs *host) Canvas() core.Canvas { return hs.screen }

// poll translates the mouse state of this tick into pointer events.
func (hs *host) poll() {
	x, y := ebiten.CursorPosition()
	ev := core.PointerEvent{X: float64(x), Y: float64(y)}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		ev.Kind = core.PointerDown
		hs.Dispatch(ev)
	} else if x != hs.lastX || y != hs.lastY {
		ev.Kind = core.PointerMove
		hs.Dispatch(ev)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		ev.Kind = core.PointerUp
		hs.Dispatch(ev)
	}
	hs.lastX, hs.lastY = x, y
}
