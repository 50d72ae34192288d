package canvas

import (
	"image/color"

	"golang.org/x/image/font"

	"github.com/gridshape/chartlayout/pkg/errors"
	"github.com/gridshape/chartlayout/pkg/geom"
)

// TextStyle describes how a string is drawn. A nil Color draws black.
type TextStyle struct {
	Face  font.Face
	Color color.Color
}

// Anchor selects which point of a text's bounding box lands on the draw
// coordinate.
type Anchor int

const (
	// AnchorTopCenter places the top edge of the text, horizontally
	// centered, at the draw coordinate. Used for title captions.
	AnchorTopCenter Anchor = iota
	// AnchorCenter centers the text on the draw coordinate.
	AnchorCenter
	// AnchorMiddleRight places the right edge, vertically centered.
	AnchorMiddleRight
	// AnchorTopLeft places the top-left corner at the draw coordinate.
	AnchorTopLeft
)

// fractions converts the anchor into gg's (ax, ay) placement fractions.
func (a Anchor) fractions() (ax, ay float64) {
	switch a {
	case AnchorCenter:
		return 0.5, 0.5
	case AnchorMiddleRight:
		return 1, 0.5
	case AnchorTopLeft:
		return 0, 1
	default: // AnchorTopCenter
		return 0.5, 1
	}
}

// MeasureText returns the pixel bounding box s would occupy when rendered
// with face. An absent face is a metrics error; measuring itself cannot
// fail, and the empty string measures as a zero box.
func MeasureText(s string, face font.Face) (geom.Size, error) {
	if face == nil {
		return geom.Size{}, errors.New(errors.ErrCodeFontMetrics, "measuring text without a font face")
	}
	bounds, _ := font.BoundString(face, s)
	return geom.Size{
		W: (bounds.Max.X - bounds.Min.X).Ceil(),
		H: (bounds.Max.Y - bounds.Min.Y).Ceil(),
	}, nil
}
