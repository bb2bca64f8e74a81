package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	hgerrors "github.com/matzehuels/hexgrid/pkg/errors"
	"github.com/matzehuels/hexgrid/pkg/render/sink"
	"github.com/matzehuels/hexgrid/pkg/scene"
)

// Output formats of the render command.
const (
	formatPNG = "png"
	formatSVG = "svg"
	formatGIF = "gif"
)

const (
	defaultFrame  = 1  // frame rendered by png/svg
	defaultFrames = 60 // frames recorded for gif
)

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{formatPNG: true, formatSVG: true, formatGIF: true}

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string  // output file path
	format  string  // png, svg or gif; inferred from output when empty
	width   float64 // viewport width in pixels; 0 uses the config
	frame   int     // frame number for png/svg
	frames  int     // number of frames for gif
	scale   float64 // raster resolution multiplier
	noCache bool    // bypass the remote dataset cache
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{frame: defaultFrame, frames: defaultFrames, scale: 1}

	cmd := &cobra.Command{
		Use:   "render [dataset...]",
		Short: "Render a dataset as a hexagon grid image",
		Long: `Render a dataset as a hexagon grid image.

Each argument is a candidate dataset location (local path or http(s) URL),
tried in order until one loads. Without arguments the configured candidates
are used (assets/dataset.csv, then dataset.csv).

PNG and SVG output show a single animation frame (--frame). GIF output
records --frames consecutive frames at the configured frame rate.

If no candidate loads, a diagnostic PNG is written instead and the command
fails.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.resolve(); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), newReport(cmd.OutOrStdout()), c.datasetPaths(args), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: hexgrid.<format>)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: png (default), svg, gif")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "viewport width in pixels (default from config)")
	cmd.Flags().IntVar(&opts.frame, "frame", opts.frame, "frame number to draw (png, svg)")
	cmd.Flags().IntVar(&opts.frames, "frames", opts.frames, "number of frames to record (gif)")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "raster scale factor (png, gif)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the remote dataset cache")

	return cmd
}

// resolve fills the format from the output extension (or vice versa) and
// validates the flags.
func (o *renderOpts) resolve() error {
	if o.format == "" {
		o.format = formatFromPath(o.output)
	}
	o.format = strings.ToLower(o.format)
	if !validFormats[o.format] {
		return hgerrors.New(hgerrors.ErrCodeInvalidFormat, "invalid format: %s (must be 'png', 'svg', or 'gif')", o.format)
	}
	if o.output == "" {
		o.output = appName + "." + o.format
	}
	if o.width < 0 {
		return hgerrors.New(hgerrors.ErrCodeInvalidInput, "invalid width: %v (must not be negative)", o.width)
	}
	if o.frame < 0 {
		return hgerrors.New(hgerrors.ErrCodeInvalidInput, "invalid frame: %d (must not be negative)", o.frame)
	}
	if o.frames < 1 {
		return hgerrors.New(hgerrors.ErrCodeInvalidInput, "invalid frames: %d (must be at least 1)", o.frames)
	}
	if o.scale <= 0 {
		return hgerrors.New(hgerrors.ErrCodeInvalidInput, "invalid scale: %v (must be positive)", o.scale)
	}
	return nil
}

// formatFromPath maps a file extension to a format, defaulting to png.
func formatFromPath(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if validFormats[ext] {
		return ext
	}
	return formatPNG
}

// runRender loads the dataset, draws the requested output and writes it.
func (c *CLI) runRender(ctx context.Context, rep *report, paths []string, opts renderOpts) error {
	logger := loggerFromContext(ctx)

	loader, err := c.newLoader(opts.noCache)
	if err != nil {
		return fmt.Errorf("initialize loader: %w", err)
	}

	st := c.newState(opts.width)
	spinner := newSpinnerWithContext(ctx, "Loading dataset...")
	spinner.Start()
	err = st.Load(ctx, loader, paths)
	spinner.Stop()
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return c.writePlaceholder(rep, opts.output, err)
	}

	styleOpts, err := c.sinkOptions(opts.scale)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	var data []byte
	switch opts.format {
	case formatPNG:
		data, err = sink.RenderPNG(st.Draw(opts.frame), styleOpts...)
	case formatSVG:
		data = sink.RenderSVG(st.Draw(opts.frame), styleOpts...)
	case formatGIF:
		data, err = c.recordGIF(ctx, st, opts.frames, styleOpts)
	}
	if err != nil {
		return fmt.Errorf("render %s: %w", opts.format, err)
	}

	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	prog.done("Rendered %d hexagons", st.Grid().Len())

	rep.rendered(st, opts.output)
	return nil
}

// recordGIF ticks st at the configured rate and encodes the frames.
func (c *CLI) recordGIF(ctx context.Context, st *scene.State, n int, styleOpts []sink.Option) ([]byte, error) {
	fps := c.Config.Render.FPS
	spinner := newSpinnerWithContext(ctx, "Recording frames...")
	spinner.Start()
	defer spinner.Stop()

	frames := make([]scene.Frame, 0, n)
	surface := scene.SurfaceFunc(func(f scene.Frame) error {
		frames = append(frames, f)
		spinner.SetMessage(fmt.Sprintf("Recording frame %d/%d", len(frames), n))
		return nil
	})
	prog := newProgress(loggerFromContext(ctx))
	if err := scene.Run(ctx, st, surface, scene.WithFPS(fps), scene.WithFrameLimit(n)); err != nil {
		return nil, err
	}
	prog.done("Recorded %d frames at %d fps", len(frames), fps)
	spinner.SetMessage("Encoding GIF...")
	return sink.RenderGIF(frames, sink.GIFDelay(fps), styleOpts...)
}

// writePlaceholder writes the diagnostic image for a failed load next to
// the requested output and returns loadErr.
func (c *CLI) writePlaceholder(rep *report, output string, loadErr error) error {
	path := strings.TrimSuffix(output, filepath.Ext(output)) + "." + formatPNG
	data, err := sink.RenderPlaceholder(loadErr)
	if err != nil {
		return errors.Join(loadErr, fmt.Errorf("render placeholder: %w", err))
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Join(loadErr, fmt.Errorf("write %s: %w", path, err))
	}
	rep.loadFailed(loadErr, path)
	return loadErr
}

// sinkOptions converts the render config to sink options.
func (c *CLI) sinkOptions(scale float64) ([]sink.Option, error) {
	bg, err := sink.ParseColor(c.Config.Render.Background)
	if err != nil {
		return nil, err
	}
	return []sink.Option{
		sink.WithBackground(bg),
		sink.WithStrokeWidth(c.Config.Render.StrokeWidth),
		sink.WithScale(scale),
	}, nil
}
