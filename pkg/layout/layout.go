// Package layout computes the pixel-space geometry of a rectangular chart.
//
// A Layout describes the bands surrounding the plotting area: an optional
// title band at the top, outer margins on four sides, and axis-label bands
// on four sides. It converts between plot-area size and full-image size in
// both directions before any surface exists, and Bind applies it to a
// concrete canvas, painting the caption and exposing the remaining main
// area for measurement and coordinate-system construction.
//
// The guarantee the whole package is built around: for any configuration,
// the plot area measured on a bound layout equals the plot area produced by
// the coordinate system built from it, and binding a surface of
// DesiredImageSize(p) yields a plot area of exactly p.
package layout

import (
	"github.com/gridshape/chartlayout/pkg/canvas"
	"github.com/gridshape/chartlayout/pkg/fonts"
	"github.com/gridshape/chartlayout/pkg/geom"
)

// maxTitlePadding caps the symmetric vertical padding inside the title
// band so very large fonts do not inflate it.
const maxTitlePadding = 5

// caption is the stored title content: text, draw style, and the vertical
// padding derived from the text metrics at the time it was set.
type caption struct {
	text  string
	style canvas.TextStyle
	padY  int
}

// Layout describes desired band sizes before binding to a surface.
// The zero value reserves nothing and has no title. All setters mutate the
// receiver and return it for chaining; none of them validate, since sizes
// are only checked against a concrete surface at bind time.
type Layout struct {
	titleHeight int
	title       *caption
	margin      geom.Insets
	labelArea   geom.Insets
}

// New returns an empty layout.
func New() *Layout { return &Layout{} }

// SetAllLabelAreaSizes overwrites all four label bands at once.
func (l *Layout) SetAllLabelAreaSizes(top, bottom, left, right int) *Layout {
	l.labelArea = geom.Insets{Top: top, Bottom: bottom, Left: left, Right: right}
	return l
}

// XLabelAreaSize reserves the bottom band for X axis labels.
func (l *Layout) XLabelAreaSize(size int) *Layout {
	l.labelArea.Bottom = size
	return l
}

// YLabelAreaSize reserves the left band for Y axis labels.
func (l *Layout) YLabelAreaSize(size int) *Layout {
	l.labelArea.Left = size
	return l
}

// TopXLabelAreaSize reserves the top band for a secondary X axis.
func (l *Layout) TopXLabelAreaSize(size int) *Layout {
	l.labelArea.Top = size
	return l
}

// RightYLabelAreaSize reserves the right band for a secondary Y axis.
func (l *Layout) RightYLabelAreaSize(size int) *Layout {
	l.labelArea.Right = size
	return l
}

// SetAllMargins overwrites all four margins at once.
func (l *Layout) SetAllMargins(top, bottom, left, right int) *Layout {
	l.margin = geom.Insets{Top: top, Bottom: bottom, Left: left, Right: right}
	return l
}

// Margin sets all four margins to the same size.
func (l *Layout) Margin(size int) *Layout {
	l.margin = geom.Insets{Top: size, Bottom: size, Left: size, Right: size}
	return l
}

// MarginTop sets the top margin.
func (l *Layout) MarginTop(size int) *Layout {
	l.margin.Top = size
	return l
}

// MarginBottom sets the bottom margin.
func (l *Layout) MarginBottom(size int) *Layout {
	l.margin.Bottom = size
	return l
}

// MarginLeft sets the left margin.
func (l *Layout) MarginLeft(size int) *Layout {
	l.margin.Left = size
	return l
}

// MarginRight sets the right margin.
func (l *Layout) MarginRight(size int) *Layout {
	l.margin.Right = size
	return l
}

// NoCaption removes the caption and its title band. Idempotent.
func (l *Layout) NoCaption() *Layout {
	l.titleHeight = 0
	l.title = nil
	return l
}

// Caption sets the title text and reserves a band tall enough for it.
// The family is resolved through the fonts registry and the text measured
// at the given point size; a resolution or metrics failure is returned
// unchanged, never swallowed, since every later height computation would
// silently be wrong. A previous caption and its metrics are replaced.
func (l *Layout) Caption(text, family string, points float64) (*Layout, error) {
	f, err := fonts.Resolve(family)
	if err != nil {
		return nil, err
	}
	face := fonts.Face(f, points)
	box, err := canvas.MeasureText(text, face)
	if err != nil {
		return nil, err
	}
	padY := box.H / 2
	if padY > maxTitlePadding {
		padY = maxTitlePadding
	}
	l.titleHeight = 2*padY + box.H
	l.title = &caption{text: text, style: canvas.TextStyle{Face: face}, padY: padY}
	return l, nil
}

// ReplaceCaption swaps the caption text without touching the stored
// layout metrics: the band height and padding stay what the previous
// text's measurement produced, so geometry is stable across text updates.
// That is deliberate; call Caption to recompute the band. On a layout
// with no caption this is a no-op.
func (l *Layout) ReplaceCaption(text string) *Layout {
	if l.title != nil {
		l.title.text = text
	}
	return l
}

// TitleHeight returns the pixel height reserved for the title band,
// zero when no caption is set.
func (l *Layout) TitleHeight() int { return l.titleHeight }

// AdditionalSize returns the pixels consumed by everything that is not
// plot area: margins and label bands on both axes, plus the title band
// in the height.
func (l *Layout) AdditionalSize() geom.Size {
	return geom.Size{
		W: l.margin.Horizontal() + l.labelArea.Horizontal(),
		H: l.titleHeight + l.margin.Vertical() + l.labelArea.Vertical(),
	}
}

// DesiredImageSize returns the root-surface size whose plot area will
// measure exactly plot after binding.
func (l *Layout) DesiredImageSize(plot geom.Size) geom.Size {
	return plot.Add(l.AdditionalSize())
}

// DesiredImageHeightFromWidth derives the root-surface height from its
// width and the desired plot-area aspect ratio (height over width).
// A width too small to leave any plot area returns just the additional
// height: that degenerate value, combined with the too-small width, is the
// caller's signal of infeasibility, not an error.
func (l *Layout) DesiredImageHeightFromWidth(imageWidth int, aspectRatio float64) int {
	additional := l.AdditionalSize()
	if imageWidth < additional.W {
		return additional.H
	}
	return int(float64(imageWidth-additional.W)*aspectRatio) + additional.H
}

// Bind applies the layout to a concrete root canvas. When a title band is
// reserved it is split off the top and the caption painted anchored
// top-center at (bandWidth/2, padY); a draw failure surfaces as a render
// error. The remaining region becomes the bound layout's main area.
//
// Bind snapshots the layout, so mutating l afterwards never affects the
// returned Bound.
func (l *Layout) Bind(root *canvas.Canvas) (*Bound, error) {
	main := root
	if l.titleHeight > 0 {
		band, rest := root.SplitVertically(l.titleHeight)
		if l.title != nil {
			w := band.Size().W
			if err := band.DrawText(l.title.text, l.title.style, w/2, l.title.padY, canvas.AnchorTopCenter); err != nil {
				return nil, err
			}
		}
		main = rest
	}
	return &Bound{layout: l.snapshot(), main: main}, nil
}

// snapshot deep-copies the layout so a Bound is isolated from later
// setter calls on the original.
func (l *Layout) snapshot() Layout {
	cp := *l
	if l.title != nil {
		t := *l.title
		cp.title = &t
	}
	return cp
}
