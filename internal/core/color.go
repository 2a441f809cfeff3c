package core

import (
	"image/color"
	"math"
)

// Paint describes how a shape is filled. Canvases translate it into their
// own fill patterns; the only implementations are Solid and *LinearGradient.
type Paint interface {
	isPaint()
}

// Solid paints a single colour everywhere.
type Solid color.NRGBA

func (Solid) isPaint() {}

// ColorStop is a single stop of a gradient. Offset is in [0,1].
type ColorStop struct {
	Offset float64
	Color  color.NRGBA
}

// LinearGradient blends its stops along the line (X0,Y0)-(X1,Y1).
type LinearGradient struct {
	X0, Y0 float64
	X1, Y1 float64
	Stops  []ColorStop
}

func (*LinearGradient) isPaint() {}

// NewLinearGradient returns a gradient along the given line.
func NewLinearGradient(x0, y0, x1, y1 float64) *LinearGradient {
	return &LinearGradient{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// AddStop appends a stop with its offset clamped to [0,1].
func (g *LinearGradient) AddStop(offset float64, c color.NRGBA) {
	g.Stops = append(g.Stops, ColorStop{Offset: Clamp01(offset), Color: c})
}

// Translate returns a copy of g moved by (dx,dy).
func (g *LinearGradient) Translate(dx, dy float64) *LinearGradient {
	out := *g
	out.X0 += dx
	out.X1 += dx
	out.Y0 += dy
	out.Y1 += dy
	return &out
}

// HSLA converts hue in degrees, saturation and lightness in percent and
// alpha in [0,1] to a colour.
func HSLA(h, s, l, a float64) color.NRGBA {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	s = Clamp01(s / 100)
	l = Clamp01(l / 100)
	c := (1 - math.Abs(2*l-1)) * s
	hp := h / 60
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))
	var r, g, b float64
	switch int(hp) {
	case 0:
		r, g, b = c, x, 0
	case 1:
		r, g, b = x, c, 0
	case 2:
		r, g, b = 0, c, x
	case 3:
		r, g, b = 0, x, c
	case 4:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	m := l - c/2
	return color.NRGBA{
		R: unit8(r + m),
		G: unit8(g + m),
		B: unit8(b + m),
		A: unit8(a),
	}
}

// HSV converts hue, saturation and value (all in [0,1]) to a colour with
// the given alpha.
func HSV(h, s, v, a float64) color.NRGBA {
	i := math.Floor(h * 6)
	f := h*6 - i
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)
	var r, g, b float64
	switch int(i) % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	return color.NRGBA{R: unit8(r), G: unit8(g), B: unit8(b), A: unit8(a)}
}

// LerpNRGBA interpolates each channel of a towards b.
func LerpNRGBA(a, b color.NRGBA, t float64) color.NRGBA {
	t = Clamp01(t)
	return color.NRGBA{
		R: lerpComponent(a.R, b.R, t),
		G: lerpComponent(a.G, b.G, t),
		B: lerpComponent(a.B, b.B, t),
		A: lerpComponent(a.A, b.A, t),
	}
}

// Clamp01 limits v to [0,1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func lerpComponent(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

func unit8(v float64) uint8 {
	return uint8(math.Round(Clamp01(v) * 255))
}
