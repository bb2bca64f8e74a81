package sink

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/hexgrid/pkg/render"
	"github.com/matzehuels/hexgrid/pkg/scene"
)

// RenderSVG writes f as an SVG document with one outlined polygon per item.
func RenderSVG(f scene.Frame, opts ...Option) []byte {
	s := newStyle(opts)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		f.Width, f.Height, f.Width, f.Height)
	fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", hexColor(s.background))
	fmt.Fprintf(&buf, `  <g fill="none" stroke-width="%g" stroke-linejoin="miter">`+"\n", s.strokeWidth)

	for _, it := range f.Items {
		p, v := it.Placement, it.Visual
		tr := render.Transform{X: p.X, Y: p.Y + v.Offset, Rotation: v.Rotation}
		buf.WriteString(`    <polygon points="`)
		for i, pt := range render.Hexagon(0, 0, p.Radius) {
			if i > 0 {
				buf.WriteByte(' ')
			}
			q := tr.Apply(pt)
			fmt.Fprintf(&buf, "%.2f,%.2f", q.X, q.Y)
		}
		fmt.Fprintf(&buf, `" stroke="%s" data-index="%d"/>`+"\n", v.Hex(), p.Index)
	}

	buf.WriteString("  </g>\n</svg>\n")
	return buf.Bytes()
}
