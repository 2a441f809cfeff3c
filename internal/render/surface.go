package render

import "lifecanvas/internal/core"

// Surface is an in-memory core.Surface. Pointer events are injected with
// Dispatch, which makes it suitable for headless runs and tests.
type Surface struct {
	core.Listeners
	raster *Raster
}

// NewSurface allocates a w x h surface.
func NewSurface(w, h int) *Surface {
	return &Surface{raster: NewRaster(w, h)}
}

// Width implements core.Surface.
func (s *Surface) Width() int { return s.raster.Bounds().W }

// Height implements core.Surface.
func (s *Surface) Height() int { return s.raster.Bounds().H }

// SetSize reallocates the backing raster; previous pixels are discarded.
func (s *Surface) SetSize(w, h int) {
	if w == s.Width() && h == s.Height() {
		return
	}
	s.raster = NewRaster(w, h)
}

// Canvas implements core.Surface.
func (s *Surface) Canvas() core.Canvas { return s.raster }

// Raster exposes the concrete canvas.
func (s *Surface) Raster() *Raster { return s.raster }
