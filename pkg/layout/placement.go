package layout

import (
	"math"

	"github.com/matzehuels/hexgrid/pkg/random"
)

// Placement is the static geometry of one dataset row.
// Coordinates are in pixels with the origin at the top-left of the canvas.
type Placement struct {
	Index int // 0-based dataset row index
	Col   int
	Row   int

	X, Y   float64 // Baseline center, before animation
	Radius float64

	Raw   string  // Unparsed value-column cell
	Value float64 // Parsed value, or the range minimum on parse failure

	Seed      uint32
	BaseAngle float64 // Fixed rotation in radians drawn from Seed
}

// BaseAngle returns the fixed rotation of a seed: the first draw of a fresh
// stream scaled to a full turn.
func BaseAngle(seed uint32) float64 {
	return random.First(seed) * 2 * math.Pi
}
