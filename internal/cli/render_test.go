package cli

import (
	"testing"

	hgerrors "github.com/matzehuels/hexgrid/pkg/errors"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"", formatPNG},
		{"out.png", formatPNG},
		{"out.SVG", formatSVG},
		{"anim.gif", formatGIF},
		{"layout.json", formatPNG},
		{"noext", formatPNG},
	}
	for _, tt := range tests {
		if got := formatFromPath(tt.path); got != tt.want {
			t.Errorf("formatFromPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestRenderOptsResolve(t *testing.T) {
	tests := []struct {
		name       string
		opts       renderOpts
		wantFormat string
		wantOutput string
		wantCode   hgerrors.Code
	}{
		{"defaults", renderOpts{frame: 1, frames: 60, scale: 1}, formatPNG, "hexgrid.png", ""},
		{"format from output", renderOpts{output: "x.svg", frames: 1, scale: 1}, formatSVG, "x.svg", ""},
		{"output from format", renderOpts{format: "GIF", frames: 1, scale: 1}, formatGIF, "hexgrid.gif", ""},
		{"explicit both", renderOpts{output: "x.bin", format: "png", frames: 1, scale: 1}, formatPNG, "x.bin", ""},
		{"invalid format", renderOpts{format: "pdf", frames: 1, scale: 1}, "", "", hgerrors.ErrCodeInvalidFormat},
		{"negative width", renderOpts{width: -1, frames: 1, scale: 1}, "", "", hgerrors.ErrCodeInvalidInput},
		{"negative frame", renderOpts{frame: -1, frames: 1, scale: 1}, "", "", hgerrors.ErrCodeInvalidInput},
		{"zero frames", renderOpts{frames: 0, scale: 1}, "", "", hgerrors.ErrCodeInvalidInput},
		{"zero scale", renderOpts{frames: 1, scale: 0}, "", "", hgerrors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := tt.opts
			err := o.resolve()
			if got := hgerrors.GetCode(err); got != tt.wantCode || (err != nil) != (tt.wantCode != "") {
				t.Fatalf("resolve() error = %v, want code %q", err, tt.wantCode)
			}
			if err != nil {
				return
			}
			if o.format != tt.wantFormat || o.output != tt.wantOutput {
				t.Errorf("resolve() = %q/%q, want %q/%q", o.format, o.output, tt.wantFormat, tt.wantOutput)
			}
		})
	}
}
