package layout

import (
	"math"
	"reflect"
	"testing"
)

const tol = 1e-9

func TestBuildExample(t *testing.T) {
	g := Build([]string{"10", "20", "30"}, 200,
		WithItemSize(40), WithPadding(10), WithOuterPadding(5))

	if g.Cols != 3 {
		t.Fatalf("Cols = %d, want 3", g.Cols)
	}
	if g.Height != 50 {
		t.Errorf("Height = %v, want 50", g.Height)
	}

	wantX := []float64{50, 100, 150}
	wantR := []float64{3, 10.5, 18}
	for i, p := range g.Placements {
		if p.Row != 0 {
			t.Errorf("placement %d row = %d, want 0", i, p.Row)
		}
		if p.X != wantX[i] {
			t.Errorf("placement %d X = %v, want %v", i, p.X, wantX[i])
		}
		if p.Y != 25 {
			t.Errorf("placement %d Y = %v, want 25", i, p.Y)
		}
		if p.Radius != wantR[i] {
			t.Errorf("placement %d Radius = %v, want %v", i, p.Radius, wantR[i])
		}
	}
}

func TestBuildEmpty(t *testing.T) {
	g := Build(nil, 300)
	if len(g.Placements) != 0 {
		t.Errorf("got %d placements, want 0", len(g.Placements))
	}
	if g.Cols < 1 {
		t.Errorf("Cols = %d, want >= 1", g.Cols)
	}
	if want := 2*DefaultOuterPadding + DefaultItemSize; g.Height != want {
		t.Errorf("Height = %v, want %v", g.Height, want)
	}
}

func TestBuildRangeWidening(t *testing.T) {
	g := Build([]string{"5", "5", "5"}, 400)
	if g.Range != (Range{4, 6}) {
		t.Fatalf("Range = %+v, want {4 6}", g.Range)
	}
	minR, maxR := MinDiameter/2, DefaultItemSize*MaxDiameterRatio/2
	first := g.Placements[0].Radius
	for i, p := range g.Placements {
		if p.Radius != first {
			t.Errorf("placement %d radius %v differs from %v", i, p.Radius, first)
		}
		if p.Radius <= minR || p.Radius >= maxR {
			t.Errorf("radius %v not strictly within (%v, %v)", p.Radius, minR, maxR)
		}
	}
}

func TestBuildFailedTakesWidenedMin(t *testing.T) {
	g := Build([]string{"5", "abc"}, 200)
	if g.Range != (Range{4, 6}) {
		t.Fatalf("Range = %+v, want {4 6}", g.Range)
	}
	bad := g.Placements[1]
	if bad.Value != 4 {
		t.Errorf("failed cell Value = %v, want 4", bad.Value)
	}
	if bad.Radius != MinDiameter/2 {
		t.Errorf("failed cell Radius = %v, want %v", bad.Radius, MinDiameter/2)
	}
	if len(g.Failed) != 1 || g.Failed[0] != 1 {
		t.Errorf("Failed = %v, want [1]", g.Failed)
	}
}

func TestBuildGridInvariants(t *testing.T) {
	raws := make([]string, 37)
	for i := range raws {
		raws[i] = string(rune('0' + i%10))
	}

	for _, width := range []float64{10, 39, 40, 61, 200, 777, 1920} {
		g := Build(raws, width)
		if g.Cols < 1 {
			t.Fatalf("width %v: Cols = %d", width, g.Cols)
		}
		for _, p := range g.Placements {
			if p.Col < 0 || p.Col >= g.Cols {
				t.Errorf("width %v: col %d out of [0,%d)", width, p.Col, g.Cols)
			}
			if p.Index != p.Row*g.Cols+p.Col {
				t.Errorf("width %v: index %d != row*cols+col", width, p.Index)
			}
			// Centers stay on the canvas whenever at least one item fits.
			if width >= DefaultItemSize && (p.X < 0 || p.X > width) {
				t.Errorf("width %v: x %v outside canvas", width, p.X)
			}
		}
	}
}

func TestBuildNarrowViewport(t *testing.T) {
	g := Build([]string{"1", "2"}, 20)
	if g.Cols != 1 {
		t.Fatalf("Cols = %d, want 1", g.Cols)
	}
	if g.OffsetX >= 0 {
		t.Errorf("OffsetX = %v, want negative for viewport narrower than an item", g.OffsetX)
	}
	if g.Placements[1].Row != 1 {
		t.Errorf("second placement row = %d, want 1", g.Placements[1].Row)
	}
}

func TestBuildCentering(t *testing.T) {
	for _, width := range []float64{200, 333, 640, 1024} {
		g := Build(make([]string, 0), width)
		raws := make([]string, g.Cols*2)
		for i := range raws {
			raws[i] = "1"
		}
		g = Build(raws, width)

		var sum float64
		for _, p := range g.Placements[:g.Cols] {
			sum += p.X
		}
		if mid := sum / float64(g.Cols); math.Abs(mid-width/2) > tol {
			t.Errorf("width %v: column midpoint %v, want %v", width, mid, width/2)
		}
	}
}

func TestBuildIdempotent(t *testing.T) {
	raws := []string{"3", "x", "9", "9", "1.5"}
	a := Build(raws, 512, WithItemSize(32))
	b := Build(raws, 512, WithItemSize(32))
	if !reflect.DeepEqual(a, b) {
		t.Error("Build with identical arguments produced different grids")
	}
}

func TestBuildSeedsAndAngles(t *testing.T) {
	g := Build([]string{"5", "5"}, 300)
	p0, p1 := g.Placements[0], g.Placements[1]
	if p0.Seed == p1.Seed {
		t.Error("equal values on different rows should get different seeds")
	}
	for _, p := range g.Placements {
		if p.BaseAngle < 0 || p.BaseAngle >= 2*math.Pi {
			t.Errorf("BaseAngle %v outside [0, 2π)", p.BaseAngle)
		}
		if p.BaseAngle != BaseAngle(p.Seed) {
			t.Errorf("placement %d BaseAngle = %v, want BaseAngle(seed) %v", p.Index, p.BaseAngle, BaseAngle(p.Seed))
		}
	}
}

func TestGridResize(t *testing.T) {
	raws := []string{"1", "2", "3", "4", "5", "6"}
	g := Build(raws, 1000, WithItemSize(30), WithPadding(4))
	r := g.Resize(100)

	want := Build(raws, 100, WithItemSize(30), WithPadding(4))
	if !reflect.DeepEqual(r, want) {
		t.Error("Resize should equal a fresh Build at the new width")
	}
	if g.Width != 1000 {
		t.Error("Resize must not modify the receiver")
	}
	if r.Height <= g.Height {
		t.Errorf("narrower grid should be taller: %v <= %v", r.Height, g.Height)
	}
}

func TestColumns(t *testing.T) {
	tests := []struct {
		name                           string
		width, size, padding, outerPad float64
		want                           int
	}{
		{"example", 200, 40, 10, 5, 3},
		{"narrow", 10, 40, 10, 5, 1},
		{"zero pitch", 100, 0, 0, 0, 1},
		{"exact fit", 110, 40, 10, 5, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Columns(tt.width, tt.size, tt.padding, tt.outerPad); got != tt.want {
				t.Errorf("Columns() = %d, want %d", got, tt.want)
			}
		})
	}
}
