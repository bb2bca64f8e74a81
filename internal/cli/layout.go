package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	hgerrors "github.com/matzehuels/hexgrid/pkg/errors"
	"github.com/matzehuels/hexgrid/pkg/render/sink"
)

// layoutCommand creates the layout command for exporting the computed grid.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		width   float64
		frame   int
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "layout [dataset...]",
		Short: "Export the hexagon grid layout as JSON",
		Long: `Export the hexagon grid layout as JSON.

The output lists every placement (grid cell, center, radius, seed and base
angle) together with the canvas geometry and the value range. With --frame
the animated parameters of that frame are included as well.

Dataset arguments are tried in order, as with 'render'.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if width < 0 {
				return hgerrors.New(hgerrors.ErrCodeInvalidInput, "invalid width: %v (must not be negative)", width)
			}
			return c.runLayout(cmd.Context(), cmd.OutOrStdout(), c.datasetPaths(args), output, width, frame, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().Float64Var(&width, "width", 0, "viewport width in pixels (default from config)")
	cmd.Flags().IntVar(&frame, "frame", -1, "include animated parameters for this frame")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the remote dataset cache")

	return cmd
}

// runLayout loads the dataset, computes the grid and writes JSON to output,
// or to out when output is empty.
func (c *CLI) runLayout(ctx context.Context, out io.Writer, paths []string, output string, width float64, frame int, noCache bool) error {
	loader, err := c.newLoader(noCache)
	if err != nil {
		return fmt.Errorf("initialize loader: %w", err)
	}

	st := c.newState(width)
	if err := st.Load(ctx, loader, paths); err != nil {
		return err
	}
	prog := newProgress(loggerFromContext(ctx))

	opts := []sink.JSONOption{
		sink.WithSource(st.Table().Path),
		sink.WithColumn(st.Column()),
	}
	if frame >= 0 {
		opts = append(opts, sink.WithVisuals(frame))
	}
	data, err := sink.RenderJSON(st.Grid(), opts...)
	if err != nil {
		return fmt.Errorf("encode layout: %w", err)
	}
	prog.done("Laid out %d hexagons in %d columns", st.Grid().Len(), st.Grid().Cols)

	if output == "" {
		_, err := out.Write(append(data, '\n'))
		return err
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	newReport(out).layoutWritten(st, output)
	return nil
}
