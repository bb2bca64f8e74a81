// Package scene owns the render state of one hexagon visualization.
//
// A [State] ties the dataset loader, the layout engine and the animation
// engine together. It is created once, loaded once, resized whenever the
// viewport changes and ticked once per frame:
//
//	st := scene.New(800, scene.WithStatus(sink))
//	if err := st.Load(ctx, loader, []string{"assets/dataset.csv", "dataset.csv"}); err != nil {
//	    // st.Err() holds the failure; Tick keeps returning empty frames
//	}
//	frame := st.Tick()
//
// [Run] drives Tick at a fixed rate and hands each [Frame] to a [Surface].
//
// # Concurrency
//
// State is not safe for concurrent use. Exactly one goroutine (the
// scheduler loop or a UI update loop) owns it. Load blocks until the
// dataset resolves or fails; Resize rebuilds the whole grid before it
// returns, so the next Tick always sees a complete layout.
package scene
