package sink

import (
	"bytes"
	"errors"
	"image/color"
	"strings"

	"github.com/fogleman/gg"

	"github.com/matzehuels/hexgrid/pkg/dataset"
	hgerrors "github.com/matzehuels/hexgrid/pkg/errors"
	"github.com/matzehuels/hexgrid/pkg/fonts"
)

// Placeholder canvas geometry.
const (
	PlaceholderWidth  = 600
	PlaceholderHeight = 200

	placeholderMargin = 16.0
)

var placeholderBackground = color.Gray{Y: 15}

// PlaceholderText returns the diagnostic shown in place of the grid.
func PlaceholderText(err error) string {
	var nf *dataset.NotFoundError
	if errors.As(err, &nf) {
		quoted := make([]string, len(nf.Paths))
		for i, p := range nf.Paths {
			quoted[i] = "'" + p + "'"
		}
		return "Error: dataset not found.\n" +
			"Check that the CSV is at " + strings.Join(quoted, " or ") + "."
	}
	if err == nil {
		return "Error: nothing to draw."
	}
	return "Error: " + hgerrors.UserMessage(err)
}

// RenderPlaceholder draws [PlaceholderText] for err in white Go Mono on a
// dark 600x200 canvas and encodes it as PNG.
func RenderPlaceholder(err error) ([]byte, error) {
	face, ferr := fonts.MonoFace(fonts.DefaultSize)
	if ferr != nil {
		return nil, ferr
	}
	defer face.Close()

	dc := gg.NewContext(PlaceholderWidth, PlaceholderHeight)
	dc.SetColor(placeholderBackground)
	dc.Clear()
	dc.SetFontFace(face)
	dc.SetColor(color.White)

	y := placeholderMargin
	for _, para := range strings.Split(PlaceholderText(err), "\n") {
		for _, line := range dc.WordWrap(para, PlaceholderWidth-2*placeholderMargin) {
			dc.DrawStringAnchored(line, placeholderMargin, y, 0, 1)
			y += dc.FontHeight() * 1.4
		}
	}

	var buf bytes.Buffer
	if err := encodePNG(&buf, dc.Image()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
