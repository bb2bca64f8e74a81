package sink

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/matzehuels/hexgrid/pkg/animate"
	"github.com/matzehuels/hexgrid/pkg/layout"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	runID  string
	source string
	column string
	frame  *int
}

// WithRunID sets the export id. By default every export gets a random UUID.
func WithRunID(id string) JSONOption { return func(r *jsonRenderer) { r.runID = id } }

// WithSource records the dataset location the grid was built from.
func WithSource(path string) JSONOption { return func(r *jsonRenderer) { r.source = path } }

// WithColumn records the header of the value column.
func WithColumn(name string) JSONOption { return func(r *jsonRenderer) { r.column = name } }

// WithVisuals adds the animated parameters of every placement at frame.
func WithVisuals(frame int) JSONOption {
	return func(r *jsonRenderer) { r.frame = &frame }
}

type jsonOutput struct {
	RunID        string          `json:"run_id"`
	Source       string          `json:"source,omitempty"`
	Column       string          `json:"column,omitempty"`
	Width        float64         `json:"width"`
	Height       float64         `json:"height"`
	Cols         int             `json:"cols"`
	Rows         int             `json:"rows"`
	OffsetX      float64         `json:"offset_x"`
	ItemSize     float64         `json:"item_size"`
	Padding      float64         `json:"padding"`
	OuterPadding float64         `json:"outer_padding"`
	Range        jsonRange       `json:"range"`
	Failed       []int           `json:"failed,omitempty"`
	Frame        *int            `json:"frame,omitempty"`
	Placements   []jsonPlacement `json:"placements"`
}

type jsonRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type jsonPlacement struct {
	Index     int         `json:"index"`
	Col       int         `json:"col"`
	Row       int         `json:"row"`
	X         float64     `json:"x"`
	Y         float64     `json:"y"`
	Radius    float64     `json:"radius"`
	Raw       string      `json:"raw"`
	Value     float64     `json:"value"`
	Seed      uint32      `json:"seed"`
	BaseAngle float64     `json:"base_angle"`
	Visual    *jsonVisual `json:"visual,omitempty"`
}

type jsonVisual struct {
	Hue        float64 `json:"hue"`
	Saturation float64 `json:"saturation"`
	Brightness float64 `json:"brightness"`
	Rotation   float64 `json:"rotation"`
	Offset     float64 `json:"offset"`
	Color      string  `json:"color"`
}

// RenderJSON exports the grid as a pretty-printed JSON document. It does
// not modify g.
func RenderJSON(g layout.Grid, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}
	if r.runID == "" {
		r.runID = uuid.NewString()
	}

	out := jsonOutput{
		RunID:        r.runID,
		Source:       r.source,
		Column:       r.column,
		Width:        g.Width,
		Height:       g.Height,
		Cols:         g.Cols,
		Rows:         g.Rows,
		OffsetX:      g.OffsetX,
		ItemSize:     g.ItemSize,
		Padding:      g.Padding,
		OuterPadding: g.OuterPadding,
		Range:        jsonRange{Min: g.Range.Min, Max: g.Range.Max},
		Failed:       g.Failed,
		Frame:        r.frame,
		Placements:   make([]jsonPlacement, len(g.Placements)),
	}
	for i, p := range g.Placements {
		jp := jsonPlacement{
			Index:     p.Index,
			Col:       p.Col,
			Row:       p.Row,
			X:         p.X,
			Y:         p.Y,
			Radius:    p.Radius,
			Raw:       p.Raw,
			Value:     p.Value,
			Seed:      p.Seed,
			BaseAngle: p.BaseAngle,
		}
		if r.frame != nil {
			v := animate.At(p, *r.frame)
			jp.Visual = &jsonVisual{
				Hue:        v.Hue,
				Saturation: v.Saturation,
				Brightness: v.Brightness,
				Rotation:   v.Rotation,
				Offset:     v.Offset,
				Color:      v.Hex(),
			}
		}
		out.Placements[i] = jp
	}

	return json.MarshalIndent(out, "", "  ")
}
