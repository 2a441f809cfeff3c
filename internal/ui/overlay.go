package ui

import (
	"image/color"
	"math"
	"time"

	"lifecanvas/internal/core"
)

const (
	cardPadding  = 15
	cardTop      = 15
	cardHeight   = 30
	cardMaxWidth = 800
	cardRadius   = 8
	glowLayers   = 3
	glowOffsetY  = 2
)

// MetricsCard draws the animated metrics readout across the top of a
// canvas. The animation phase is derived from the wall clock.
type MetricsCard struct {
	start time.Time
	now   func() time.Time
}

// NewMetricsCard returns a card animated from the current time.
func NewMetricsCard() *MetricsCard {
	return NewMetricsCardWithClock(time.Now)
}

// NewMetricsCardWithClock returns a card that reads time from now.
func NewMetricsCardWithClock(now func() time.Time) *MetricsCard {
	return &MetricsCard{start: now(), now: now}
}

// Rect is the layout of the card in pixels.
type Rect struct {
	X, Y, W, H float64
}

// Layout computes the card rectangle for a canvas of the given size.
func Layout(size core.Size) Rect {
	w := math.Min(float64(size.W)-cardPadding*2, cardMaxWidth)
	if w < 0 {
		w = 0
	}
	return Rect{
		X: (float64(size.W) - w) / 2,
		Y: cardTop,
		W: w,
		H: cardHeight,
	}
}

// EntryCenters returns the x coordinate of each of n evenly spaced entries.
func (r Rect) EntryCenters(n int) []float64 {
	if n <= 0 {
		return nil
	}
	slot := r.W / float64(n)
	out := make([]float64, n)
	for i := range out {
		out[i] = r.X + slot*(float64(i)+0.5)
	}
	return out
}

// Draw renders m onto canvas.
func (c *MetricsCard) Draw(canvas core.Canvas, m core.Metrics) {
	rect := Layout(canvas.Bounds())
	if rect.W <= 0 {
		return
	}
	t := c.now().Sub(c.start).Seconds()

	drawGlow(canvas, rect, t)

	offset := (math.Sin(t) + 1) * 0.5
	bg := core.NewLinearGradient(rect.X, rect.Y, rect.X+rect.W, rect.Y+rect.H)
	bg.AddStop(0, color.NRGBA{R: 20, G: 20, B: 20, A: 217})
	bg.AddStop(0.3+offset*0.2, color.NRGBA{R: 30, G: 30, B: 30, A: 217})
	bg.AddStop(0.7-offset*0.2, color.NRGBA{R: 25, G: 25, B: 25, A: 217})
	bg.AddStop(1, color.NRGBA{R: 20, G: 20, B: 20, A: 217})
	canvas.FillRoundedRect(rect.X, rect.Y, rect.W, rect.H, cardRadius, bg)

	baseHue := math.Mod(t*30, 360)
	borderAlpha := 0.3 + math.Sin(t*1.5)*0.1
	border := core.NewLinearGradient(rect.X, rect.Y, rect.X+rect.W, rect.Y)
	for i := 0; i <= 4; i++ {
		border.AddStop(float64(i)/4, core.HSLA(baseHue+float64(i%4)*90, 80, 70, borderAlpha))
	}
	canvas.StrokeRoundedRect(rect.X, rect.Y, rect.W, rect.H, cardRadius, 1, border)

	entries := m.Entries()
	centers := rect.EntryCenters(len(entries))
	textY := rect.Y + rect.H/2
	align := core.TextAlign{H: core.AlignCenter, V: core.AlignMiddle}
	for i, e := range entries {
		x := centers[i]
		hue := math.Mod(t*30+float64(i)*72, 360)
		g := core.NewLinearGradient(x-25, textY, x+25, textY)
		g.AddStop(0, core.HSLA(hue, 80, 75, 0.8))
		g.AddStop(0.5, core.HSLA(hue+30, 80, 75, 0.9))
		g.AddStop(1, core.HSLA(hue+60, 80, 75, 0.8))
		canvas.FillText(e.String(), x, textY, align, g)
	}
}

// drawGlow approximates a blurred blue shadow under the card with a few
// translucent rounded rects that grow outwards. Intensity and spread pulse
// at different rates.
func drawGlow(canvas core.Canvas, rect Rect, t float64) {
	intensity := 0.2 + math.Sin(t*2)*0.1
	spread := 15 + math.Sin(t*3)*5
	layer := core.Solid{R: 0, G: 150, B: 255, A: uint8(math.Round(intensity / glowLayers * 255))}
	for i := glowLayers; i >= 1; i-- {
		grow := spread * float64(i) / glowLayers
		canvas.FillRoundedRect(rect.X-grow/2, rect.Y-grow/2+glowOffsetY, rect.W+grow, rect.H+grow, cardRadius+grow/2, layer)
	}
}
