// Package sink turns scene frames and layouts into output files.
//
// # Overview
//
// A "sink" takes a computed [scene.Frame] (or a [layout.Grid]) and encodes it:
//
//   - PNG: one rasterized frame ([RenderPNG])
//   - GIF: an animated loop of frames ([RenderGIF])
//   - SVG: one frame as vector polygons ([RenderSVG])
//   - JSON: layout export for external tools ([RenderJSON])
//
// [RenderPlaceholder] produces the diagnostic image shown when no dataset
// could be loaded.
//
// Basic usage:
//
//	frame := state.Tick()
//	png, err := sink.RenderPNG(frame, sink.WithStrokeWidth(2))
//
// # Drawing
//
// Every hexagon is translated to its baseline center plus the animated
// vertical offset, rotated by its animated angle and stroked (never filled)
// in its HSB color on a dark background. Raster sinks draw through
// [render.DrawHexagon] on a gg context; the SVG sink applies the same
// transform to the vertices itself via [render.Transform].
//
// [scene.Frame]: github.com/matzehuels/hexgrid/pkg/scene.Frame
// [layout.Grid]: github.com/matzehuels/hexgrid/pkg/layout.Grid
// [render.DrawHexagon]: github.com/matzehuels/hexgrid/pkg/render.DrawHexagon
// [render.Transform]: github.com/matzehuels/hexgrid/pkg/render.Transform
package sink
