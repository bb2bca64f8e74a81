package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/hexgrid/pkg/buildinfo"
	"github.com/matzehuels/hexgrid/pkg/cache"
	"github.com/matzehuels/hexgrid/pkg/config"
	"github.com/matzehuels/hexgrid/pkg/dataset"
	"github.com/matzehuels/hexgrid/pkg/observability"
	"github.com/matzehuels/hexgrid/pkg/scene"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "hexgrid"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config

	configPath string
}

// New creates a new CLI instance with a default logger and the built-in
// configuration. The config file is read when a command runs.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Defaults(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "hexgrid draws datasets as animated hexagon grids",
		Long:         `hexgrid loads a CSV dataset, sizes one hexagon per row by its first column, and animates the grid with colors and motion derived deterministically from each row.`,
		Version:      buildinfo.Current(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: ./"+config.DefaultFile+" if present)")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.playCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads the config file, attaches the logger to the command context
// and routes library hooks to debug logging.
func (c *CLI) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.Config = cfg

	cmd.SetContext(withLogger(cmd.Context(), c.Logger))

	hooks := &logHooks{logger: c.Logger}
	observability.SetSceneHooks(hooks)
	observability.SetCacheHooks(hooks)
	observability.SetHTTPHooks(hooks)
	return nil
}

// =============================================================================
// Loader Factory
// =============================================================================

// newLoader creates a dataset loader for local files and http(s) URLs.
func (c *CLI) newLoader(noCache bool) (*dataset.Loader, error) {
	ch, err := c.newCache(noCache)
	if err != nil {
		return nil, err
	}
	ds := c.Config.Dataset
	remote := dataset.NewHTTPFetcher(ch, ds.CacheTTL.Duration, ds.HTTPTimeout.Duration)
	return dataset.NewLoader(dataset.NewMultiFetcher(remote), c.Logger), nil
}

func (c *CLI) newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := c.cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// newState creates a render state using the configured layout, with status
// messages logged once per change.
func (c *CLI) newState(width float64) *scene.State {
	if width <= 0 {
		width = c.Config.Render.Width
	}
	status := scene.Dedup(scene.StatusFunc(func(msg string) { c.Logger.Info(msg) }))
	return scene.New(width,
		scene.WithStatus(status),
		scene.WithLayout(c.Config.LayoutOptions()...),
	)
}

// datasetPaths returns args, or the configured candidates when none are given.
func (c *CLI) datasetPaths(args []string) []string {
	if len(args) > 0 {
		return args
	}
	return c.Config.Dataset.Paths
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the configured cache directory, falling back to the XDG
// standard (~/.cache/hexgrid/).
func (c *CLI) cacheDir() (string, error) {
	if dir := c.Config.Dataset.CacheDir; dir != "" {
		return dir, nil
	}
	return defaultCacheDir()
}

func defaultCacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
