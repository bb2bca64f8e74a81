// Package layout computes the hexagon grid for a dataset.
//
// # Overview
//
// Each dataset row becomes one [Placement]: a baseline center, a radius
// derived from the row's value, and an animation seed derived from the row's
// content. [Build] packs the placements into as many columns as fit the
// viewport, centers the block of columns horizontally and reports the canvas
// height needed to hold every row.
//
// # Packing
//
// With item size s, padding p and outer padding o the column count is
//
//	cols = max(1, floor((width - 2o) / (s + p)))
//
// and the grid block is centered with
//
//	offsetX = (width - (cols*s + (cols-1)*p)) / 2
//
// offsetX is not clamped: a viewport narrower than one item yields a negative
// offset and the single column hangs off the left edge.
//
// # Sizing
//
// Values are parsed best-effort (see [ParseValues]). The diameter of a
// hexagon is LinearMap(value, min, max, 6, 0.9*s) and its radius half of
// that. The mapping is not clamped.
//
// # Recomputing
//
// Column count and centering depend on the viewport width, so a resize
// rebuilds the whole [Grid]. Build is a pure function; calling it twice with
// the same arguments yields equal grids.
//
//	g := layout.Build(raws, 800,
//	    layout.WithItemSize(40),
//	    layout.WithPadding(10),
//	)
package layout
