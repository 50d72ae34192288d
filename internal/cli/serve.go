package cli

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"

	"github.com/gridshape/chartlayout/pkg/fonts"
	"github.com/gridshape/chartlayout/pkg/geom"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr   string // listen address
	config string // preset file path (optional)
}

// newServeCmd creates the serve command, a small preview server that
// renders charts on demand:
//
//	GET /chart.png?plot_width=640&plot_height=480&caption=Title
//
// plot_width/plot_height select the plot-area size; caption overrides the
// preset's caption text (geometry stays that of the preset's caption, or a
// fresh band is reserved when the preset has none).
func newServeCmd() *cobra.Command {
	opts := serveOpts{addr: ":8732"}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve rendered preview charts over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "layout preset file (TOML)")

	return cmd
}

func runServe(cmd *cobra.Command, opts *serveOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	preset := DefaultPreset()
	if opts.config != "" {
		var err error
		if preset, err = LoadPreset(opts.config); err != nil {
			return err
		}
		logger.Debugf("Loaded preset %s", opts.config)
	}

	r := chi.NewRouter()
	r.Get("/chart.png", chartHandler(preset))

	srv := &http.Server{Addr: opts.addr, Handler: r}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Infof("Serving charts on %s", opts.addr)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return ctx.Err()
}

// chartHandler renders a demo chart per request. Each request builds a
// fresh layout from the preset, since descriptors are cheap and not safe
// for concurrent mutation.
func chartHandler(preset *Preset) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		plot := geom.Size{
			W: queryInt(req, "plot_width", 640),
			H: queryInt(req, "plot_height", 480),
		}
		if plot.W <= 0 || plot.H <= 0 {
			http.Error(w, "plot_width and plot_height must be positive", http.StatusBadRequest)
			return
		}

		l, err := preset.Build()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		if caption := req.URL.Query().Get("caption"); caption != "" {
			if l.TitleHeight() > 0 {
				l.ReplaceCaption(caption)
			} else if _, err := l.Caption(caption, fonts.DefaultFamily, 20); err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
		}

		root, err := renderDemo(l, plot,
			geom.Range[float64]{Min: -200, Max: 200},
			geom.Range[float64]{Min: -100, Max: 100},
			true,
		)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		var buf bytes.Buffer
		if err := root.EncodePNG(&buf); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(buf.Bytes())
	}
}

// queryInt parses an integer query parameter, falling back to def when the
// parameter is absent or malformed.
func queryInt(req *http.Request, key string, def int) int {
	s := req.URL.Query().Get(key)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
