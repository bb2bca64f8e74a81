package scene

import (
	"context"
	"errors"
	"time"

	"github.com/matzehuels/hexgrid/pkg/animate"
	"github.com/matzehuels/hexgrid/pkg/dataset"
	"github.com/matzehuels/hexgrid/pkg/layout"
	"github.com/matzehuels/hexgrid/pkg/observability"
)

// valueColumn is the dataset column that drives hexagon size.
const valueColumn = 0

// Loader resolves a dataset from ordered candidate locations.
// *dataset.Loader satisfies it.
type Loader interface {
	Load(ctx context.Context, paths []string) (*dataset.Table, error)
}

// Item is one hexagon of a frame.
type Item struct {
	Placement layout.Placement
	Visual    animate.Visual
}

// Frame is everything a surface needs to paint one tick.
type Frame struct {
	Number int
	Width  float64
	Height float64
	Items  []Item
}

// Empty reports whether the frame has nothing to draw.
func (f Frame) Empty() bool { return len(f.Items) == 0 }

// State is the render state of one visualization. The zero value is not
// usable; create one with [New].
type State struct {
	status     StatusSink
	layoutOpts []layout.Option

	width  float64
	frame  int
	table  *dataset.Table
	column string
	raws   []string
	grid   layout.Grid
	err    error
}

// Option configures a [State].
type Option func(*State)

// WithStatus routes status messages to sink. The default discards them.
func WithStatus(sink StatusSink) Option {
	return func(s *State) {
		if sink != nil {
			s.status = sink
		}
	}
}

// WithLayout sets the layout options used for every rebuild.
func WithLayout(opts ...layout.Option) Option {
	return func(s *State) { s.layoutOpts = append(s.layoutOpts, opts...) }
}

// New returns an unloaded state for a viewport of the given width.
func New(width float64, opts ...Option) *State {
	s := &State{status: discardStatus{}, width: width}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load resolves the dataset and lays it out once. On failure the state
// stays unloaded, Err returns the cause and the failure status lists every
// attempted path.
func (s *State) Load(ctx context.Context, l Loader, paths []string) error {
	hooks := observability.Scene()
	hooks.OnLoadStart(ctx, paths)
	s.status.SetStatus(LoadingMessage())

	start := time.Now()
	t, err := l.Load(ctx, paths)
	if err != nil {
		s.table, s.raws, s.grid = nil, nil, layout.Grid{}
		s.err = err
		tried := paths
		var nf *dataset.NotFoundError
		if errors.As(err, &nf) {
			tried = nf.Paths
		}
		s.status.SetStatus(FailedMessage(tried))
		hooks.OnLoadComplete(ctx, "", 0, time.Since(start), err)
		return err
	}

	s.table, s.err = t, nil
	s.column = t.ColumnName(valueColumn)
	s.raws = t.Column(valueColumn)
	s.status.SetStatus(LoadedMessage(t.Path, t.RowCount(), t.ColumnCount()))
	hooks.OnLoadComplete(ctx, t.Path, t.RowCount(), time.Since(start), nil)

	s.relayout(ctx)
	return nil
}

// Resize rebuilds the grid for a new viewport width. Before a successful
// load it only records the width.
func (s *State) Resize(width float64) {
	s.width = width
	if s.table != nil {
		s.relayout(context.Background())
	}
}

func (s *State) relayout(ctx context.Context) {
	start := time.Now()
	s.grid = layout.Build(s.raws, s.width, s.layoutOpts...)
	observability.Scene().OnLayout(ctx, s.width, s.grid.Len(), s.grid.Cols, time.Since(start))
}

// Tick advances the frame counter and draws the new frame. An unloaded
// state yields an empty frame.
func (s *State) Tick() Frame {
	s.frame++
	return s.Draw(s.frame)
}

// Draw computes frame n and reports it on the status sink, without touching
// the frame counter.
func (s *State) Draw(n int) Frame {
	start := time.Now()
	f := s.FrameAt(n)
	if s.table != nil {
		s.status.SetStatus(DrawnMessage(s.table.RowCount(), s.column))
	}
	observability.Scene().OnFrame(context.Background(), f.Number, len(f.Items), time.Since(start))
	return f
}

// FrameAt computes frame n without touching the frame counter.
func (s *State) FrameAt(n int) Frame {
	f := Frame{Number: n, Width: s.width}
	if s.table == nil {
		return f
	}
	f.Height = s.grid.Height
	f.Items = make([]Item, len(s.grid.Placements))
	for i, p := range s.grid.Placements {
		f.Items[i] = Item{Placement: p, Visual: animate.At(p, n)}
	}
	return f
}

// Grid returns the current layout.
func (s *State) Grid() layout.Grid { return s.grid }

// Table returns the loaded dataset, or nil.
func (s *State) Table() *dataset.Table { return s.table }

// Column returns the header of the value column, cached at load.
func (s *State) Column() string { return s.column }

// Loaded reports whether a dataset is loaded.
func (s *State) Loaded() bool { return s.table != nil }

// Err returns the last load failure, or nil.
func (s *State) Err() error { return s.err }

// FrameCount returns the number of ticks so far.
func (s *State) FrameCount() int { return s.frame }

// Width returns the current viewport width.
func (s *State) Width() float64 { return s.width }
