package render

import "math"

// Sides is the number of vertices of every drawn polygon.
const Sides = 6

// Point is a 2D position in pixels.
type Point struct {
	X, Y float64
}

// Pather receives path commands. *gg.Context satisfies it.
type Pather interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
}

// Hexagon returns the vertices of the regular hexagon of radius r centered
// at (cx, cy). Vertex i sits at angle i*2π/6.
func Hexagon(cx, cy, r float64) [Sides]Point {
	var pts [Sides]Point
	for i := range pts {
		a := float64(i) * 2 * math.Pi / Sides
		pts[i] = Point{X: cx + math.Cos(a)*r, Y: cy + math.Sin(a)*r}
	}
	return pts
}

// DrawHexagon traces the closed hexagon outline on p. It does not stroke.
func DrawHexagon(p Pather, cx, cy, r float64) {
	pts := Hexagon(cx, cy, r)
	p.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		p.LineTo(pt.X, pt.Y)
	}
	p.ClosePath()
}

// Transform is a rotation about the origin followed by a translation.
type Transform struct {
	X, Y     float64
	Rotation float64 // radians, clockwise on a y-down canvas
}

// Apply maps pt through the transform.
func (t Transform) Apply(pt Point) Point {
	sin, cos := math.Sincos(t.Rotation)
	return Point{
		X: t.X + pt.X*cos - pt.Y*sin,
		Y: t.Y + pt.X*sin + pt.Y*cos,
	}
}
