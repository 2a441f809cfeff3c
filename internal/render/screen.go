//go:build ebiten

package render

import (
	"image"
	"image/color"
	"math"

	"lifecanvas/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Screen is a core.Canvas that draws onto an *ebiten.Image. Solid rects go
// straight to the GPU; everything else is rasterised by gg into a cached
// offscreen stamp and composited in one DrawImage call.
type Screen struct {
	img    *ebiten.Image
	face   font.Face
	stamps map[image.Point]*stamp
}

type stamp struct {
	raster *Raster
	img    *ebiten.Image
}

// NewScreen wraps img.
func NewScreen(img *ebiten.Image) *Screen {
	return &Screen{img: img, face: basicfont.Face7x13, stamps: make(map[image.Point]*stamp)}
}

// Image exposes the target image.
func (s *Screen) Image() *ebiten.Image { return s.img }

// Bounds implements core.Canvas.
func (s *Screen) Bounds() core.Size {
	b := s.img.Bounds()
	return core.Size{W: b.Dx(), H: b.Dy()}
}

// FillRect implements core.Canvas.
func (s *Screen) FillRect(x, y, w, h float64, p core.Paint) {
	if w <= 0 || h <= 0 {
		return
	}
	if solid, ok := p.(core.Solid); ok {
		vector.DrawFilledRect(s.img, float32(x), float32(y), float32(w), float32(h), color.NRGBA(solid), false)
		return
	}
	s.stampRect(x, y, w, h, 0, func(r *Raster, dx, dy float64) {
		r.FillRect(x+dx, y+dy, w, h, shiftPaint(p, dx, dy))
	})
}

// FillRoundedRect implements core.Canvas.
func (s *Screen) FillRoundedRect(x, y, w, h, radius float64, p core.Paint) {
	if w <= 0 || h <= 0 {
		return
	}
	s.stampRect(x, y, w, h, 0, func(r *Raster, dx, dy float64) {
		r.FillRoundedRect(x+dx, y+dy, w, h, radius, shiftPaint(p, dx, dy))
	})
}

// StrokeRoundedRect implements core.Canvas.
func (s *Screen) StrokeRoundedRect(x, y, w, h, radius, lineWidth float64, p core.Paint) {
	if w <= 0 || h <= 0 || lineWidth <= 0 {
		return
	}
	s.stampRect(x, y, w, h, lineWidth/2+1, func(r *Raster, dx, dy float64) {
		r.StrokeRoundedRect(x+dx, y+dy, w, h, radius, lineWidth, shiftPaint(p, dx, dy))
	})
}

// FillText implements core.Canvas.
func (s *Screen) FillText(str string, x, y float64, align core.TextAlign, p core.Paint) {
	if str == "" {
		return
	}
	ox, oy := textOrigin(s.face, str, x, y, align)
	m := s.face.Metrics()
	ascent, descent := float64(m.Ascent)/64, float64(m.Descent)/64
	s.stampRect(ox, oy-ascent, textWidth(s.face, str), ascent+descent, 1, func(r *Raster, dx, dy float64) {
		r.FillText(str, ox+dx, oy+dy, core.TextAlign{}, shiftPaint(p, dx, dy))
	})
}

// stampRect rasterises the area (x,y,w,h) grown by pad into a cached stamp.
// draw receives the offset that maps screen coordinates into the stamp.
func (s *Screen) stampRect(x, y, w, h, pad float64, draw func(r *Raster, dx, dy float64)) {
	x0, y0 := int(math.Floor(x-pad)), int(math.Floor(y-pad))
	x1, y1 := int(math.Ceil(x+w+pad)), int(math.Ceil(y+h+pad))
	sz := image.Pt(x1-x0, y1-y0)
	if sz.X <= 0 || sz.Y <= 0 {
		return
	}
	st, ok := s.stamps[sz]
	if !ok {
		st = &stamp{raster: NewRaster(sz.X, sz.Y), img: ebiten.NewImage(sz.X, sz.Y)}
		s.stamps[sz] = st
	}
	st.raster.Clear()
	draw(st.raster, -float64(x0), -float64(y0))
	st.img.WritePixels(st.raster.Image().Pix)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x0), float64(y0))
	s.img.DrawImage(st.img, op)
}

func shiftPaint(p core.Paint, dx, dy float64) core.Paint {
	if g, ok := p.(*core.LinearGradient); ok {
		return g.Translate(dx, dy)
	}
	return p
}
