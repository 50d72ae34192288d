package cli

import (
	"github.com/spf13/cobra"

	"github.com/gridshape/chartlayout/pkg/geom"
)

// sizeOpts holds the command-line flags for the size command.
type sizeOpts struct {
	config     string  // preset file path (optional)
	plotWidth  int     // desired plot-area width
	plotHeight int     // desired plot-area height
	imageWidth int     // known image width, for the aspect-ratio derivation
	aspect     float64 // plot-area height / width
}

// newSizeCmd creates the size command, which reports the band geometry of
// a preset: the additional pixels consumed by bands, the full image size
// for a desired plot size, and the image height derived from a width and
// plot aspect ratio.
func newSizeCmd() *cobra.Command {
	opts := sizeOpts{
		plotWidth:  640,
		plotHeight: 480,
		aspect:     0.75,
	}

	cmd := &cobra.Command{
		Use:   "size",
		Short: "Report band geometry and desired image sizes for a layout preset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSize(cmd, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "layout preset file (TOML)")
	cmd.Flags().IntVar(&opts.plotWidth, "plot-width", opts.plotWidth, "desired plot-area width in pixels")
	cmd.Flags().IntVar(&opts.plotHeight, "plot-height", opts.plotHeight, "desired plot-area height in pixels")
	cmd.Flags().IntVar(&opts.imageWidth, "image-width", 0, "known image width for the aspect-ratio derivation")
	cmd.Flags().Float64Var(&opts.aspect, "aspect", opts.aspect, "plot-area height/width ratio for --image-width")

	return cmd
}

func runSize(cmd *cobra.Command, opts *sizeOpts) error {
	logger := loggerFromContext(cmd.Context())

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

	additional := l.AdditionalSize()
	desired := l.DesiredImageSize(geom.Size{W: opts.plotWidth, H: opts.plotHeight})

	out := cmd.OutOrStdout()
	printSection(out, "Band geometry")
	printKV(out, "title band height", "%d px", l.TitleHeight())
	printKV(out, "additional width", "%d px", additional.W)
	printKV(out, "additional height", "%d px", additional.H)

	printSection(out, "Desired image size")
	printKV(out, "plot area", "%d x %d px", opts.plotWidth, opts.plotHeight)
	printKV(out, "image", "%d x %d px", desired.W, desired.H)

	if opts.imageWidth > 0 {
		height := l.DesiredImageHeightFromWidth(opts.imageWidth, opts.aspect)
		printSection(out, "Height from width")
		printKV(out, "image width", "%d px", opts.imageWidth)
		printKV(out, "aspect ratio", "%.4f", opts.aspect)
		printKV(out, "image height", "%d px", height)
		if opts.imageWidth < additional.W {
			logger.Warnf("image width %d leaves no room for a plot area (bands need %d px)",
				opts.imageWidth, additional.W)
		}
	}

	return nil
}
