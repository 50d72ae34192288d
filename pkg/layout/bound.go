package layout

import (
	"github.com/gridshape/chartlayout/pkg/canvas"
	"github.com/gridshape/chartlayout/pkg/coord"
	"github.com/gridshape/chartlayout/pkg/errors"
	"github.com/gridshape/chartlayout/pkg/geom"
)

// Bound is a Layout applied to a concrete surface: the descriptor snapshot
// plus the main area (the root canvas minus the title band, caption already
// painted). It borrows the canvas; the canvas must outlive it, and nothing
// else may draw into the region while it is in use.
type Bound struct {
	layout Layout
	main   *canvas.Canvas
}

// MainArea returns the canvas view below the title band.
func (b *Bound) MainArea() *canvas.Canvas { return b.main }

// EstimatePlotAreaSize measures the main area and subtracts the margins
// and label bands on both axes. A main area smaller than the reserved
// bands is a caller misconfiguration and reported as a geometry error,
// never clamped to zero.
func (b *Bound) EstimatePlotAreaSize() (geom.Size, error) {
	s := b.main.Size()
	w := s.W - b.layout.margin.Horizontal() - b.layout.labelArea.Horizontal()
	h := s.H - b.layout.margin.Vertical() - b.layout.labelArea.Vertical()
	if w < 0 || h < 0 {
		return geom.Size{}, errors.New(errors.ErrCodeGeometry,
			"main area %dx%d is smaller than the reserved margin and label bands", s.W, s.H)
	}
	return geom.Size{W: w, H: h}, nil
}

// BuildCartesian2D constructs a coordinate system over the main area with
// the snapshot's margins and label bands, spanning x horizontally and y
// vertically. Its PlotAreaSize equals EstimatePlotAreaSize exactly for
// every valid configuration.
func (b *Bound) BuildCartesian2D(x, y geom.Range[float64]) (*coord.Cartesian2D, error) {
	return coord.NewCartesian2D(b.main, b.layout.margin, b.layout.labelArea, x, y)
}
