// Package render draws hexagon outlines.
//
// # Overview
//
// The geometry lives here; pixel formats live in the [sink] subpackage.
// [Hexagon] returns the six vertices of a regular hexagon, starting at angle
// 0 and stepping by 2π/6. [DrawHexagon] traces them as a closed path on any
// [Pather], such as a *gg.Context, under whatever transform that target has
// active.
//
// Targets without a transform stack (SVG polygons) apply a [Transform] to
// each vertex themselves:
//
//	tr := render.Transform{X: p.X, Y: p.Y + v.Offset, Rotation: v.Rotation}
//	for _, pt := range render.Hexagon(0, 0, p.Radius) {
//	    pt = tr.Apply(pt)
//	    // ...
//	}
//
// [sink]: github.com/matzehuels/hexgrid/pkg/render/sink
package render
