// Package geom provides the small geometry vocabulary shared by the
// chartlayout packages: pixel sizes, per-side insets, and value-space
// ranges, plus the range-centering function used to match a value
// rectangle to a pixel aspect ratio.
package geom

import "golang.org/x/exp/constraints"

// Size is a pixel extent.
type Size struct {
	W, H int
}

// Add returns the componentwise sum of s and t.
func (s Size) Add(t Size) Size { return Size{W: s.W + t.W, H: s.H + t.H} }

// Insets hold one non-negative pixel size per side of a rectangle.
// The zero value reserves nothing on any side.
type Insets struct {
	Top, Bottom, Left, Right int
}

// Horizontal returns the combined left and right insets.
func (i Insets) Horizontal() int { return i.Left + i.Right }

// Vertical returns the combined top and bottom insets.
func (i Insets) Vertical() int { return i.Top + i.Bottom }

// Range is a value-space interval along one axis.
type Range[T constraints.Float] struct {
	Min, Max T
}

// Span returns the extent of the range.
func (r Range[T]) Span() T { return r.Max - r.Min }

// Center returns the midpoint of the range.
func (r Range[T]) Center() T { return (r.Min + r.Max) / 2 }
