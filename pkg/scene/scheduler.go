package scene

import (
	"context"
	"fmt"
	"time"
)

// DefaultFPS is the tick rate used by [Run] when none is given.
const DefaultFPS = 30

// Surface paints frames.
type Surface interface {
	Present(f Frame) error
}

// SurfaceFunc adapts a function to [Surface].
type SurfaceFunc func(f Frame) error

// Present calls fn.
func (fn SurfaceFunc) Present(f Frame) error { return fn(f) }

type runConfig struct {
	fps   int
	limit int
}

// RunOption configures [Run].
type RunOption func(*runConfig)

// WithFPS sets the tick rate. Values below 1 select [DefaultFPS].
func WithFPS(fps int) RunOption {
	return func(c *runConfig) { c.fps = fps }
}

// WithFrameLimit stops Run after n frames. Zero means no limit.
func WithFrameLimit(n int) RunOption {
	return func(c *runConfig) { c.limit = n }
}

// Run ticks s at a fixed rate and presents each frame to surface, all on
// the calling goroutine. The first frame is presented immediately. Run
// returns nil once the frame limit is reached, ctx.Err() when ctx ends, or
// the first surface error.
func Run(ctx context.Context, s *State, surface Surface, opts ...RunOption) error {
	cfg := runConfig{fps: DefaultFPS}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.fps < 1 {
		cfg.fps = DefaultFPS
	}

	ticker := time.NewTicker(time.Second / time.Duration(cfg.fps))
	defer ticker.Stop()

	for n := 0; cfg.limit == 0 || n < cfg.limit; n++ {
		if n > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		f := s.Tick()
		if err := surface.Present(f); err != nil {
			return fmt.Errorf("present frame %d: %w", f.Number, err)
		}
	}
	return nil
}
