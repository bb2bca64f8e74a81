// Package pkg provides the libraries behind hexgrid.
//
// # Overview
//
// hexgrid draws one hexagon per dataset row. The first column sizes the
// hexagon, the row content seeds its color and rotation, and a frame counter
// drives the animation. The pkg directory is organized leaves first:
//
//  1. [random], [seed] - deterministic per-row pseudo-random streams
//  2. [layout] - responsive, centered grid placement
//  3. [animate] - per-frame color, rotation and offset
//  4. [render] - hexagon geometry; [render/sink] output encoders
//  5. [dataset] - CSV tables and the ordered fallback loader
//  6. [scene] - the render state tying it all together
//
// Supporting packages: [config], [errors], [cache], [httputil], [fonts],
// [observability], [buildinfo].
//
// # Architecture
//
// The data flow through hexgrid:
//
//	candidate paths
//	      ↓
//	[dataset] Loader   (first location that loads wins)
//	      ↓
//	[layout] Build     (rebuilt on every resize)
//	      ↓
//	[animate] At       (every frame)
//	      ↓
//	[render/sink]      PNG / GIF / SVG / JSON
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/hexgrid/pkg/dataset"
//	    "github.com/matzehuels/hexgrid/pkg/render/sink"
//	    "github.com/matzehuels/hexgrid/pkg/scene"
//	)
//
//	st := scene.New(800)
//	if err := st.Load(ctx, dataset.NewLoader(nil, nil), []string{"assets/dataset.csv", "dataset.csv"}); err != nil {
//	    png, _ := sink.RenderPlaceholder(err)
//	    // ...
//	}
//	png, err := sink.RenderPNG(st.Tick())
//
// # Determinism
//
// Nothing in the pipeline reads the clock or a global random source. The
// same dataset, viewport width and frame number always produce the same
// picture.
package pkg
