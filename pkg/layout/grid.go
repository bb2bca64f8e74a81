package layout

import (
	"math"

	"github.com/matzehuels/hexgrid/pkg/seed"
)

// Default sizing constants, in pixels.
const (
	DefaultItemSize     = 40.0
	DefaultPadding      = 10.0
	DefaultOuterPadding = 5.0

	// MinDiameter is the diameter given to the smallest value.
	MinDiameter = 6.0
	// MaxDiameterRatio scales the item size to the diameter of the largest value.
	MaxDiameterRatio = 0.9
)

// Grid is the result of [Build]: every placement plus the canvas geometry.
type Grid struct {
	Placements []Placement
	Cols       int
	Rows       int // Number of grid rows actually used (at least 1)
	Width      float64
	Height     float64
	OffsetX    float64
	Range      Range
	Failed     []int // Row indices whose value fell back to Range.Min

	ItemSize     float64
	Padding      float64
	OuterPadding float64
}

// Option configures [Build].
type Option func(*builder)

type builder struct {
	itemSize     float64
	padding      float64
	outerPadding float64
}

// WithItemSize sets the cell size of one hexagon (default 40).
func WithItemSize(s float64) Option { return func(b *builder) { b.itemSize = s } }

// WithPadding sets the gap between neighbouring cells (default 10).
func WithPadding(p float64) Option { return func(b *builder) { b.padding = p } }

// WithOuterPadding sets the margin above the first and below the last row,
// and the horizontal margin used when counting columns (default 5).
func WithOuterPadding(p float64) Option { return func(b *builder) { b.outerPadding = p } }

// Columns returns how many cells fit in width. It is never less than 1.
func Columns(width, itemSize, padding, outerPadding float64) int {
	pitch := itemSize + padding
	if pitch <= 0 {
		return 1
	}
	n := math.Floor((width - 2*outerPadding) / pitch)
	if n < 1 || math.IsNaN(n) {
		return 1
	}
	if n > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(n)
}

// Build lays out one placement per raw value-column cell for a viewport of
// the given width. raws[i] belongs to dataset row i.
func Build(raws []string, width float64, opts ...Option) Grid {
	b := builder{
		itemSize:     DefaultItemSize,
		padding:      DefaultPadding,
		outerPadding: DefaultOuterPadding,
	}
	for _, opt := range opts {
		opt(&b)
	}

	size, pad, outer := b.itemSize, b.padding, b.outerPadding
	cols := Columns(width, size, pad, outer)
	vals := ParseValues(raws)

	g := Grid{
		Placements:   make([]Placement, len(raws)),
		Cols:         cols,
		Width:        width,
		OffsetX:      (width - (float64(cols)*size + float64(cols-1)*pad)) / 2,
		Range:        vals.Range,
		Failed:       vals.Failed,
		ItemSize:     size,
		Padding:      pad,
		OuterPadding: outer,
	}

	lastRow := 0
	for i, raw := range raws {
		col, row := i%cols, i/cols
		v := vals.Numbers[i]
		s := seed.ForRow(raw, i)
		g.Placements[i] = Placement{
			Index:     i,
			Col:       col,
			Row:       row,
			X:         g.OffsetX + float64(col)*(size+pad) + size/2,
			Y:         outer + float64(row)*(size+pad) + size/2,
			Radius:    LinearMap(v, vals.Range.Min, vals.Range.Max, MinDiameter, size*MaxDiameterRatio) / 2,
			Raw:       raw,
			Value:     v,
			Seed:      s,
			BaseAngle: BaseAngle(s),
		}
		lastRow = row
	}

	g.Rows = lastRow + 1
	g.Height = 2*outer + float64(lastRow+1)*size + float64(lastRow)*pad
	return g
}

// Resize rebuilds g for a new viewport width with the same sizing.
// It returns a fresh Grid and leaves g untouched.
func (g Grid) Resize(width float64) Grid {
	raws := make([]string, len(g.Placements))
	for i, p := range g.Placements {
		raws[i] = p.Raw
	}
	return Build(raws, width,
		WithItemSize(g.ItemSize),
		WithPadding(g.Padding),
		WithOuterPadding(g.OuterPadding),
	)
}

// Len returns the number of placements.
func (g Grid) Len() int { return len(g.Placements) }
