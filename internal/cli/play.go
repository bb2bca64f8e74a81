package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/hexgrid/pkg/scene"
)

// playCommand creates the live terminal preview command.
func (c *CLI) playCommand() *cobra.Command {
	var (
		fps     int
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "play [dataset...]",
		Short: "Preview the animated grid in the terminal",
		Long: `Preview the animated grid in the terminal.

The grid is laid out for the terminal width and redrawn at the configured
frame rate. Resizing the terminal rebuilds the layout. Press q or ctrl+c
to quit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if fps == 0 {
				fps = c.Config.Render.FPS
			}
			if fps < 1 {
				return fmt.Errorf("invalid fps: %d (must be positive)", fps)
			}
			return c.runPlay(cmd.Context(), c.datasetPaths(args), fps, noCache)
		},
	}

	cmd.Flags().IntVar(&fps, "fps", 0, "frames per second (default from config)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the remote dataset cache")

	return cmd
}

// runPlay loads the dataset and runs the preview until the user quits.
// A failed load is shown in the preview rather than returned.
func (c *CLI) runPlay(ctx context.Context, paths []string, fps int, noCache bool) error {
	loader, err := c.newLoader(noCache)
	if err != nil {
		return fmt.Errorf("initialize loader: %w", err)
	}

	status := &statusLine{}
	st := scene.New(c.Config.Render.Width,
		scene.WithStatus(status),
		scene.WithLayout(c.Config.LayoutOptions()...),
	)

	spinner := newSpinnerWithContext(ctx, "Loading dataset...")
	spinner.Start()
	loadErr := st.Load(ctx, loader, paths)
	switch {
	case loadErr != nil && ctx.Err() != nil:
		spinner.Stop()
		return ctx.Err()
	case loadErr != nil:
		spinner.StopWithError("No dataset could be loaded")
		c.Logger.Warn("dataset unavailable", "err", loadErr)
	default:
		spinner.StopWithSuccess("Loaded " + st.Table().Path)
	}

	p := tea.NewProgram(newPlayModel(st, status, fps), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("preview: %w", err)
	}
	return nil
}
