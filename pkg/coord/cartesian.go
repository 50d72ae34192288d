// Package coord builds 2D Cartesian coordinate systems over canvas regions.
//
// A coordinate system subtracts margins and axis-label bands from a main
// area, maps two value ranges onto the remaining plot rectangle, and can
// draw an axis frame and tick labels into the label bands. It never touches
// pixels outside the main area it was given.
package coord

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gridshape/chartlayout/pkg/canvas"
	"github.com/gridshape/chartlayout/pkg/errors"
	"github.com/gridshape/chartlayout/pkg/geom"
)

// Cartesian2D maps two float64 value ranges onto a plot rectangle.
type Cartesian2D struct {
	main   *canvas.Canvas
	plot   *canvas.Canvas
	margin geom.Insets
	labels geom.Insets
	x, y   geom.Range[float64]
}

// NewCartesian2D constructs a coordinate system over main with the given
// margins and label bands. The plot rectangle is main minus margin+labels
// on each side; if that leaves a negative extent, or either range has a
// non-positive span, the configuration is rejected with a geometry error.
func NewCartesian2D(main *canvas.Canvas, margin, labels geom.Insets, x, y geom.Range[float64]) (*Cartesian2D, error) {
	if x.Span() <= 0 || y.Span() <= 0 {
		return nil, errors.New(errors.ErrCodeGeometry,
			"value ranges must have positive span, got x=%v y=%v", x, y)
	}
	s := main.Size()
	left := margin.Left + labels.Left
	top := margin.Top + labels.Top
	w := s.W - left - margin.Right - labels.Right
	h := s.H - top - margin.Bottom - labels.Bottom
	if w < 0 || h < 0 {
		return nil, errors.New(errors.ErrCodeGeometry,
			"main area %dx%d is smaller than the reserved margin and label bands", s.W, s.H)
	}
	plot := main.SubView(image.Rect(left, top, left+w, top+h))
	return &Cartesian2D{
		main:   main,
		plot:   plot,
		margin: margin,
		labels: labels,
		x:      x,
		y:      y,
	}, nil
}

// PlotAreaSize returns the plotting area's pixel size. It equals the
// bound layout's estimate for every valid configuration.
func (c *Cartesian2D) PlotAreaSize() geom.Size { return c.plot.Size() }

// PlotArea returns the canvas view covering the plotting area.
func (c *Cartesian2D) PlotArea() *canvas.Canvas { return c.plot }

// XRange returns the horizontal value range.
func (c *Cartesian2D) XRange() geom.Range[float64] { return c.x }

// YRange returns the vertical value range.
func (c *Cartesian2D) YRange() geom.Range[float64] { return c.y }

// MapPoint converts a value-space point to plot-area pixel coordinates.
// X grows rightward; value-space Y grows upward while pixel Y grows
// downward, so y.Min lands on the bottom edge.
func (c *Cartesian2D) MapPoint(x, y float64) (px, py float64) {
	s := c.plot.Size()
	px = (x - c.x.Min) / c.x.Span() * float64(s.W)
	py = (c.y.Max - y) / c.y.Span() * float64(s.H)
	return px, py
}

// DrawFrame strokes the plot-area border.
func (c *Cartesian2D) DrawFrame(col color.Color, width float64) {
	s := c.plot.Size()
	w, h := float64(s.W), float64(s.H)
	c.plot.StrokeLine(0, 0, w, 0, col, width)
	c.plot.StrokeLine(w, 0, w, h, col, width)
	c.plot.StrokeLine(w, h, 0, h, col, width)
	c.plot.StrokeLine(0, h, 0, 0, col, width)
}

// tickLength is the size of the tick marks drawn outside the plot border.
const tickLength = 4

// DrawTicks draws nx evenly spaced ticks along the bottom edge and ny
// along the left edge, with value labels placed in the label bands using
// style. Edges whose label band is zero get marks but no labels. Fails
// with a render error when a label cannot be drawn.
func (c *Cartesian2D) DrawTicks(nx, ny int, style canvas.TextStyle, col color.Color) error {
	s := c.plot.Size()
	plotLeft := c.margin.Left + c.labels.Left
	plotTop := c.margin.Top + c.labels.Top
	bottom := float64(plotTop + s.H)

	if nx > 0 {
		for i := 0; i <= nx; i++ {
			v := c.x.Min + c.x.Span()*float64(i)/float64(nx)
			px, _ := c.MapPoint(v, c.y.Min)
			x := float64(plotLeft) + px
			c.main.StrokeLine(x, bottom, x, bottom+tickLength, col, 1)
			if c.labels.Bottom > 0 {
				err := c.main.DrawText(formatTick(v), style, int(x), int(bottom)+tickLength+2, canvas.AnchorTopCenter)
				if err != nil {
					return err
				}
			}
		}
	}
	if ny > 0 {
		for i := 0; i <= ny; i++ {
			v := c.y.Min + c.y.Span()*float64(i)/float64(ny)
			_, py := c.MapPoint(c.x.Min, v)
			y := float64(plotTop) + py
			c.main.StrokeLine(float64(plotLeft), y, float64(plotLeft)-tickLength, y, col, 1)
			if c.labels.Left > 0 {
				err := c.main.DrawText(formatTick(v), style, plotLeft-tickLength-2, int(y), canvas.AnchorMiddleRight)
				if err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// formatTick renders a tick value compactly, dropping a trailing ".0".
func formatTick(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.4g", v)
}
