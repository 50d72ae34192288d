package coord

import (
	"image/color"
	"math"
	"testing"

	"github.com/gridshape/chartlayout/pkg/canvas"
	"github.com/gridshape/chartlayout/pkg/errors"
	"github.com/gridshape/chartlayout/pkg/fonts"
	"github.com/gridshape/chartlayout/pkg/geom"
)

func TestNewCartesian2DPlotArea(t *testing.T) {
	tests := []struct {
		name   string
		main   geom.Size
		margin geom.Insets
		labels geom.Insets
		want   geom.Size
	}{
		{
			name: "margins and labels subtracted",
			main: geom.Size{W: 300, H: 200},
			margin: geom.Insets{
				Top: 4, Bottom: 4, Left: 4, Right: 4,
			},
			labels: geom.Insets{
				Bottom: 40, Left: 40,
			},
			want: geom.Size{W: 252, H: 152},
		},
		{
			name: "no bands",
			main: geom.Size{W: 300, H: 200},
			want: geom.Size{W: 300, H: 200},
		},
		{
			name:   "exact fit leaves zero plot",
			main:   geom.Size{W: 80, H: 80},
			margin: geom.Insets{Top: 40, Bottom: 40, Left: 40, Right: 40},
			want:   geom.Size{W: 0, H: 0},
		},
	}

	xr := geom.Range[float64]{Min: 0, Max: 10}
	yr := geom.Range[float64]{Min: 0, Max: 10}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCartesian2D(canvas.New(tt.main), tt.margin, tt.labels, xr, yr)
			if err != nil {
				t.Fatalf("NewCartesian2D error: %v", err)
			}
			if got := c.PlotAreaSize(); got != tt.want {
				t.Errorf("PlotAreaSize() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewCartesian2DTooSmall(t *testing.T) {
	_, err := NewCartesian2D(
		canvas.New(geom.Size{W: 50, H: 50}),
		geom.Insets{Top: 40, Bottom: 40, Left: 40, Right: 40},
		geom.Insets{},
		geom.Range[float64]{Min: 0, Max: 1},
		geom.Range[float64]{Min: 0, Max: 1},
	)
	if err == nil {
		t.Fatal("NewCartesian2D accepted an undersized main area")
	}
	if !errors.Is(err, errors.ErrCodeGeometry) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeGeometry)
	}
}

func TestNewCartesian2DRejectsEmptyRange(t *testing.T) {
	main := canvas.New(geom.Size{W: 100, H: 100})
	_, err := NewCartesian2D(main, geom.Insets{}, geom.Insets{},
		geom.Range[float64]{Min: 5, Max: 5},
		geom.Range[float64]{Min: 0, Max: 1},
	)
	if err == nil {
		t.Fatal("NewCartesian2D accepted a zero-span range")
	}
	if !errors.Is(err, errors.ErrCodeGeometry) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeGeometry)
	}
}

func TestMapPoint(t *testing.T) {
	c, err := NewCartesian2D(
		canvas.New(geom.Size{W: 200, H: 100}),
		geom.Insets{}, geom.Insets{},
		geom.Range[float64]{Min: 0, Max: 20},
		geom.Range[float64]{Min: -1, Max: 1},
	)
	if err != nil {
		t.Fatalf("NewCartesian2D error: %v", err)
	}

	tests := []struct {
		name   string
		x, y   float64
		px, py float64
	}{
		{"bottom-left corner", 0, -1, 0, 100},
		{"top-right corner", 20, 1, 200, 0},
		{"center", 10, 0, 100, 50},
		{"y min maps to bottom edge", 5, -1, 50, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			px, py := c.MapPoint(tt.x, tt.y)
			if math.Abs(px-tt.px) > 1e-9 || math.Abs(py-tt.py) > 1e-9 {
				t.Errorf("MapPoint(%v, %v) = (%v, %v), want (%v, %v)",
					tt.x, tt.y, px, py, tt.px, tt.py)
			}
		})
	}
}

func TestDrawFrameAndTicks(t *testing.T) {
	main := canvas.New(geom.Size{W: 300, H: 200})
	margin := geom.Insets{Top: 4, Bottom: 4, Left: 4, Right: 4}
	labels := geom.Insets{Bottom: 40, Left: 40}

	c, err := NewCartesian2D(main, margin, labels,
		geom.Range[float64]{Min: 0, Max: 10},
		geom.Range[float64]{Min: 0, Max: 5},
	)
	if err != nil {
		t.Fatalf("NewCartesian2D error: %v", err)
	}

	c.DrawFrame(color.Black, 1)

	f, err := fonts.Resolve(fonts.DefaultFamily)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	style := canvas.TextStyle{Face: fonts.Face(f, 10)}
	if err := c.DrawTicks(5, 5, style, color.Black); err != nil {
		t.Errorf("DrawTicks error: %v", err)
	}
}

func TestFormatTick(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{0, "0"},
		{-100, "-100"},
		{2.5, "2.5"},
		{1.0 / 3.0, "0.3333"},
	}

	for _, tt := range tests {
		if got := formatTick(tt.v); got != tt.want {
			t.Errorf("formatTick(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}
