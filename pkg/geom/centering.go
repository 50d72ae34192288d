package geom

import "golang.org/x/exp/constraints"

// CenteringRanges expands the minimum value rectangle (minX, minY) so that
// its aspect ratio matches destW:destH. Only the tight axis grows; it is
// recentered on its own midpoint, and the other axis is returned unchanged,
// so neither span ever shrinks and neither center moves. When the ratios
// already match, both ranges come back equal to the inputs.
//
// The comparison cross-multiplies the spans against the destination sides
// instead of dividing, so no ratio is ever formed from a zero span.
func CenteringRanges[T constraints.Float](minX, minY Range[T], destW, destH T) (Range[T], Range[T]) {
	sx := minX.Span()
	sy := minY.Span()
	if sx*destH < sy*destW {
		// X is tight: grow it to sy*destW/destH.
		radius := sy * destW / destH / 2
		center := minX.Center()
		return Range[T]{Min: center - radius, Max: center + radius}, minY
	}
	// Y is tight (or the ratios tie, in which case this recomputes the
	// same span): grow it to sx*destH/destW.
	radius := sx * destH / destW / 2
	center := minY.Center()
	return minX, Range[T]{Min: center - radius, Max: center + radius}
}
