package render

import (
	"image"
	"image/color"
	"math"

	"lifecanvas/internal/core"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Raster is a software Canvas backed by an *image.RGBA and a gg context.
type Raster struct {
	img  *image.RGBA
	dc   *gg.Context
	mask *gg.Context
	face font.Face
}

// NewRaster allocates a transparent w x h raster.
func NewRaster(w, h int) *Raster {
	img := image.NewRGBA(image.Rect(0, 0, max(w, 0), max(h, 0)))
	dc := gg.NewContextForRGBA(img)
	dc.SetFontFace(basicfont.Face7x13)
	return &Raster{img: img, dc: dc, face: basicfont.Face7x13}
}

// Image exposes the backing image.
func (r *Raster) Image() *image.RGBA { return r.img }

// Bounds implements core.Canvas.
func (r *Raster) Bounds() core.Size {
	b := r.img.Bounds()
	return core.Size{W: b.Dx(), H: b.Dy()}
}

// Clear resets every pixel to transparent.
func (r *Raster) Clear() {
	r.dc.SetColor(color.Transparent)
	r.dc.Clear()
}

// FillRect implements core.Canvas.
func (r *Raster) FillRect(x, y, w, h float64, p core.Paint) {
	if w <= 0 || h <= 0 {
		return
	}
	r.dc.DrawRectangle(x, y, w, h)
	r.dc.SetFillStyle(pattern(p))
	r.dc.Fill()
}

// FillRoundedRect implements core.Canvas.
func (r *Raster) FillRoundedRect(x, y, w, h, radius float64, p core.Paint) {
	if w <= 0 || h <= 0 {
		return
	}
	r.dc.DrawRoundedRectangle(x, y, w, h, clampRadius(radius, w, h))
	r.dc.SetFillStyle(pattern(p))
	r.dc.Fill()
}

// StrokeRoundedRect implements core.Canvas.
func (r *Raster) StrokeRoundedRect(x, y, w, h, radius, lineWidth float64, p core.Paint) {
	if w <= 0 || h <= 0 || lineWidth <= 0 {
		return
	}
	r.dc.DrawRoundedRectangle(x, y, w, h, clampRadius(radius, w, h))
	r.dc.SetLineWidth(lineWidth)
	r.dc.SetStrokeStyle(pattern(p))
	r.dc.Stroke()
}

// FillText implements core.Canvas using the 7x13 bitmap face. gg draws
// glyphs in a single colour, so gradient text is masked onto a filled box.
func (r *Raster) FillText(s string, x, y float64, align core.TextAlign, p core.Paint) {
	if s == "" {
		return
	}
	ox, oy := textOrigin(r.face, s, x, y, align)
	if solid, ok := p.(core.Solid); ok {
		r.dc.SetColor(color.NRGBA(solid))
		r.dc.DrawString(s, ox, oy)
		return
	}

	if r.mask == nil {
		b := r.Bounds()
		r.mask = gg.NewContext(b.W, b.H)
		r.mask.SetFontFace(r.face)
	}
	r.mask.SetColor(color.Transparent)
	r.mask.Clear()
	r.mask.SetColor(color.White)
	r.mask.DrawString(s, ox, oy)
	if err := r.dc.SetMask(r.mask.AsMask()); err != nil {
		return
	}
	defer r.dc.ResetClip()

	m := r.face.Metrics()
	ascent, descent := float64(m.Ascent)/64, float64(m.Descent)/64
	r.dc.DrawRectangle(ox, oy-ascent, textWidth(r.face, s), ascent+descent)
	r.dc.SetFillStyle(pattern(p))
	r.dc.Fill()
}

// pattern maps a core.Paint onto the matching gg pattern.
func pattern(p core.Paint) gg.Pattern {
	switch p := p.(type) {
	case core.Solid:
		return gg.NewSolidPattern(color.NRGBA(p))
	case *core.LinearGradient:
		g := gg.NewLinearGradient(p.X0, p.Y0, p.X1, p.Y1)
		for _, stop := range p.Stops {
			g.AddColorStop(stop.Offset, stop.Color)
		}
		return g
	default:
		return gg.NewSolidPattern(color.Transparent)
	}
}

func clampRadius(radius, w, h float64) float64 {
	return math.Max(0, math.Min(radius, math.Min(w, h)/2))
}

func textWidth(face font.Face, s string) float64 {
	return float64(font.MeasureString(face, s)) / 64
}

// textOrigin returns the baseline origin for s anchored at (x,y).
func textOrigin(face font.Face, s string, x, y float64, align core.TextAlign) (float64, float64) {
	width := textWidth(face, s)
	m := face.Metrics()
	switch align.H {
	case core.AlignCenter:
		x -= width / 2
	case core.AlignRight:
		x -= width
	}
	switch align.V {
	case core.AlignTop:
		y += float64(m.Ascent) / 64
	case core.AlignMiddle:
		y += float64(m.Ascent-m.Descent) / 128
	}
	return x, y
}
