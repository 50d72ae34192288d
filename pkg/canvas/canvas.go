// Package canvas implements the pixel surface the layout engine draws on.
//
// A Canvas is a rectangular view into a single shared gg drawing context.
// Views are cheap to create and copy; they all target the same pixels, so
// the usual single-writer discipline applies: whoever holds a view owns its
// region until it hands the view away.
package canvas

import (
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"

	"github.com/gridshape/chartlayout/pkg/errors"
	"github.com/gridshape/chartlayout/pkg/geom"
)

// Canvas is a rectangular view into a shared drawing context.
type Canvas struct {
	dc   *gg.Context
	rect image.Rectangle
}

// New allocates a white image-backed canvas of the given pixel size.
func New(size geom.Size) *Canvas {
	dc := gg.NewContext(size.W, size.H)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	return &Canvas{dc: dc, rect: image.Rect(0, 0, size.W, size.H)}
}

// Size returns the view's pixel dimensions.
func (c *Canvas) Size() geom.Size {
	return geom.Size{W: c.rect.Dx(), H: c.rect.Dy()}
}

// SplitVertically cuts the view into a top band of the given height and
// the remaining bottom region. A height beyond the view collapses the
// bottom region to zero height rather than failing; the caller sees the
// problem as a geometry error when it measures the remainder.
func (c *Canvas) SplitVertically(topHeight int) (top, bottom *Canvas) {
	cut := c.rect.Min.Y + topHeight
	if cut > c.rect.Max.Y {
		cut = c.rect.Max.Y
	}
	top = &Canvas{dc: c.dc, rect: image.Rect(c.rect.Min.X, c.rect.Min.Y, c.rect.Max.X, cut)}
	bottom = &Canvas{dc: c.dc, rect: image.Rect(c.rect.Min.X, cut, c.rect.Max.X, c.rect.Max.Y)}
	return top, bottom
}

// SubView returns the view restricted to r, given in view-relative
// coordinates. The result is clipped to the parent view.
func (c *Canvas) SubView(r image.Rectangle) *Canvas {
	abs := r.Add(c.rect.Min)
	return &Canvas{dc: c.dc, rect: abs.Intersect(c.rect)}
}

// DrawText draws s with its anchor point at (x, y) in view coordinates.
// It fails with a render error when the style has no face or the view has
// no pixels to draw into.
func (c *Canvas) DrawText(s string, style TextStyle, x, y int, anchor Anchor) error {
	if style.Face == nil {
		return errors.New(errors.ErrCodeRender, "text style has no font face")
	}
	if c.rect.Empty() {
		return errors.New(errors.ErrCodeRender, "drawing text into an empty region")
	}
	col := style.Color
	if col == nil {
		col = color.Black
	}
	ax, ay := anchor.fractions()
	c.dc.SetFontFace(style.Face)
	c.dc.SetColor(col)
	c.dc.DrawStringAnchored(s, float64(c.rect.Min.X+x), float64(c.rect.Min.Y+y), ax, ay)
	return nil
}

// StrokeLine draws a straight line between two view coordinates.
func (c *Canvas) StrokeLine(x0, y0, x1, y1 float64, col color.Color, width float64) {
	ox, oy := float64(c.rect.Min.X), float64(c.rect.Min.Y)
	c.dc.SetColor(col)
	c.dc.SetLineWidth(width)
	c.dc.DrawLine(ox+x0, oy+y0, ox+x1, oy+y1)
	c.dc.Stroke()
}

// Image returns the backing image shared by all views of this context.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// EncodePNG writes the whole backing image as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if err := c.dc.EncodePNG(w); err != nil {
		return errors.Wrap(errors.ErrCodeEncode, err, "encoding PNG")
	}
	return nil
}
