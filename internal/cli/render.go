package cli

import (
	"image/color"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/gridshape/chartlayout/pkg/canvas"
	"github.com/gridshape/chartlayout/pkg/coord"
	"github.com/gridshape/chartlayout/pkg/fonts"
	"github.com/gridshape/chartlayout/pkg/geom"
	"github.com/gridshape/chartlayout/pkg/layout"
)

const defaultOutput = "chart.png"

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	config     string  // preset file path (optional)
	plotWidth  int     // plot-area width in pixels
	plotHeight int     // plot-area height in pixels
	xmin, xmax float64 // minimum X value range
	ymin, ymax float64 // minimum Y value range
	center     bool    // expand ranges to the plot aspect ratio
}

// newRenderCmd creates the render command, which draws a demo chart (axis
// frame, ticks, and a sample curve) sized so the plot area is exactly the
// requested size, and writes it as PNG.
func newRenderCmd() *cobra.Command {
	opts := renderOpts{
		plotWidth:  640,
		plotHeight: 480,
		xmin:       -200,
		xmax:       200,
		ymin:       -100,
		ymax:       100,
		center:     true,
	}

	cmd := &cobra.Command{
		Use:   "render [output.png]",
		Short: "Render a demo chart to a PNG file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := defaultOutput
			if len(args) == 1 {
				output = args[0]
			}
			return runRender(cmd, output, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "layout preset file (TOML)")
	cmd.Flags().IntVar(&opts.plotWidth, "plot-width", opts.plotWidth, "plot-area width in pixels")
	cmd.Flags().IntVar(&opts.plotHeight, "plot-height", opts.plotHeight, "plot-area height in pixels")
	cmd.Flags().Float64Var(&opts.xmin, "xmin", opts.xmin, "minimum X range start")
	cmd.Flags().Float64Var(&opts.xmax, "xmax", opts.xmax, "minimum X range end")
	cmd.Flags().Float64Var(&opts.ymin, "ymin", opts.ymin, "minimum Y range start")
	cmd.Flags().Float64Var(&opts.ymax, "ymax", opts.ymax, "minimum Y range end")
	cmd.Flags().BoolVar(&opts.center, "center", opts.center, "expand value ranges to match the plot aspect ratio")

	return cmd
}

func runRender(cmd *cobra.Command, output string, opts *renderOpts) error {
	logger := loggerFromContext(cmd.Context())
	prog := newProgress(logger)

	preset := DefaultPreset()
	if opts.config != "" {
		var err error
		if preset, err = LoadPreset(opts.config); err != nil {
			return err
		}
		logger.Debugf("Loaded preset %s", opts.config)
	}

	l, err := preset.Build()
	if err != nil {
		return err
	}

	root, err := renderDemo(l,
		geom.Size{W: opts.plotWidth, H: opts.plotHeight},
		geom.Range[float64]{Min: opts.xmin, Max: opts.xmax},
		geom.Range[float64]{Min: opts.ymin, Max: opts.ymax},
		opts.center,
	)
	if err != nil {
		return err
	}

	out, err := os.Create(output)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := root.EncodePNG(out); err != nil {
		return err
	}
	prog.done("Generated " + output)
	return nil
}

// renderDemo allocates a surface of the layout's desired size for plot,
// binds the layout, optionally centers the minimum value ranges on the
// measured plot aspect ratio, and draws a framed chart with ticks and a
// sample sine curve. The returned canvas is the root surface.
func renderDemo(l *layout.Layout, plot geom.Size, minX, minY geom.Range[float64], center bool) (*canvas.Canvas, error) {
	root := canvas.New(l.DesiredImageSize(plot))
	bound, err := l.Bind(root)
	if err != nil {
		return nil, err
	}

	measured, err := bound.EstimatePlotAreaSize()
	if err != nil {
		return nil, err
	}

	xr, yr := minX, minY
	if center && measured.W > 0 && measured.H > 0 {
		xr, yr = geom.CenteringRanges(minX, minY, float64(measured.W), float64(measured.H))
	}

	chart, err := bound.BuildCartesian2D(xr, yr)
	if err != nil {
		return nil, err
	}

	frameColor := color.RGBA{A: 255}
	chart.DrawFrame(frameColor, 1)

	f, err := fonts.Resolve(fonts.DefaultFamily)
	if err != nil {
		return nil, err
	}
	tickStyle := canvas.TextStyle{Face: fonts.Face(f, 10)}
	if err := chart.DrawTicks(8, 6, tickStyle, frameColor); err != nil {
		return nil, err
	}

	drawSine(chart)
	return root, nil
}

// drawSine strokes two periods of a sine wave spanning the chart's value
// ranges, as sample content for the plot area.
func drawSine(chart *coord.Cartesian2D) {
	const segments = 256
	xr, yr := chart.XRange(), chart.YRange()
	amp := yr.Span() * 0.4
	mid := yr.Center()

	curveColor := color.RGBA{R: 31, G: 119, B: 180, A: 255}
	plot := chart.PlotArea()

	px0, py0 := chart.MapPoint(xr.Min, mid)
	for i := 1; i <= segments; i++ {
		x := xr.Min + xr.Span()*float64(i)/segments
		y := mid + amp*math.Sin(4*math.Pi*float64(i)/segments)
		px1, py1 := chart.MapPoint(x, y)
		plot.StrokeLine(px0, py0, px1, py1, curveColor, 1.5)
		px0, py0 = px1, py1
	}
}
