package sink

import (
	"bytes"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"

	hgerrors "github.com/matzehuels/hexgrid/pkg/errors"
	"github.com/matzehuels/hexgrid/pkg/scene"
)

// GIFDelay converts a frame rate to a GIF frame delay in hundredths of a
// second, never below 2 (most viewers clamp smaller delays).
func GIFDelay(fps int) int {
	if fps <= 0 {
		fps = scene.DefaultFPS
	}
	d := (100 + fps/2) / fps
	if d < 2 {
		return 2
	}
	return d
}

// RenderGIF encodes frames as a looping animated GIF. Each frame is
// rasterized as in [RenderPNG] and quantized to the Plan 9 palette.
func RenderGIF(frames []scene.Frame, delay int, opts ...Option) ([]byte, error) {
	if len(frames) == 0 {
		return nil, hgerrors.New(hgerrors.ErrCodeInvalidInput, "gif: no frames")
	}

	anim := &gif.GIF{}
	for _, f := range frames {
		img := Rasterize(f, opts...)
		b := img.Bounds()
		pal := image.NewPaletted(b, palette.Plan9)
		draw.FloydSteinberg.Draw(pal, b, img, b.Min)

		anim.Image = append(anim.Image, pal)
		anim.Delay = append(anim.Delay, delay)
		if b.Dx() > anim.Config.Width {
			anim.Config.Width = b.Dx()
		}
		if b.Dy() > anim.Config.Height {
			anim.Config.Height = b.Dy()
		}
	}
	anim.Config.ColorModel = anim.Image[0].Palette

	var buf bytes.Buffer
	if err := gif.EncodeAll(&buf, anim); err != nil {
		return nil, hgerrors.Wrap(hgerrors.ErrCodeInternal, err, "encode gif")
	}
	return buf.Bytes(), nil
}
