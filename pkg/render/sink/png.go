package sink

import (
	"bytes"
	"image"
	"image/png"
	"io"

	"github.com/fogleman/gg"

	hgerrors "github.com/matzehuels/hexgrid/pkg/errors"
	"github.com/matzehuels/hexgrid/pkg/render"
	"github.com/matzehuels/hexgrid/pkg/scene"
)

// RenderPNG rasterizes f and encodes it as PNG.
func RenderPNG(f scene.Frame, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := encodePNG(&buf, Rasterize(f, opts...)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return hgerrors.Wrap(hgerrors.ErrCodeInternal, err, "encode png")
	}
	return nil
}

// Rasterize draws f onto a new image of the frame's size.
func Rasterize(f scene.Frame, opts ...Option) image.Image {
	s := newStyle(opts)
	w, h := canvasSize(f.Width, f.Height, s.scale)

	dc := gg.NewContext(w, h)
	dc.SetColor(s.background)
	dc.Clear()
	dc.Scale(s.scale, s.scale)
	dc.SetLineWidth(s.strokeWidth * s.scale)

	for _, it := range f.Items {
		p, v := it.Placement, it.Visual
		dc.Push()
		dc.Translate(p.X, p.Y+v.Offset)
		dc.Rotate(v.Rotation)
		render.DrawHexagon(dc, 0, 0, p.Radius)
		dc.SetColor(v.RGBA())
		dc.Stroke()
		dc.Pop()
	}
	return dc.Image()
}
