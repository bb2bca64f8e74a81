package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/hexgrid/pkg/dataset"
	"github.com/matzehuels/hexgrid/pkg/scene"
)

func playState(t *testing.T, csv string) (*scene.State, *statusLine) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "dataset.csv")
	if csv != "" {
		if err := os.WriteFile(path, []byte(csv), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	status := &statusLine{}
	st := scene.New(800, scene.WithStatus(status))
	_ = st.Load(context.Background(), dataset.NewLoader(nil, nil), []string{path})
	return st, status
}

func TestPlayModelResize(t *testing.T) {
	st, status := playState(t, "value\n10\n20\n30\n")
	var m tea.Model = newPlayModel(st, status, 30)

	m, _ = m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	if st.Width() != 400 {
		t.Errorf("state width = %v, want 400", st.Width())
	}
	if st.Grid().Cols != 7 {
		t.Errorf("cols = %d, want 7", st.Grid().Cols)
	}
	if pm := m.(PlayModel); pm.width != 40 || pm.height != 10 {
		t.Errorf("model size = %dx%d, want 40x10", pm.width, pm.height)
	}
}

func TestPlayModelTick(t *testing.T) {
	st, status := playState(t, "value\n10\n20\n30\n")
	var m tea.Model = newPlayModel(st, status, 30)
	m, _ = m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})

	m, cmd := m.Update(tickMsg(time.Now()))
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if got := m.(PlayModel).frame.Number; got != 1 {
		t.Errorf("frame = %d, want 1", got)
	}

	view := m.View()
	if !strings.Contains(view, "Drew 3 hexagons - value.") {
		t.Errorf("view missing drawn status:\n%s", view)
	}
	if !strings.Contains(view, "⬢") {
		t.Errorf("view missing largest glyph:\n%s", view)
	}
}

func TestPlayModelKeys(t *testing.T) {
	st, status := playState(t, "value\n1\n")
	m := newPlayModel(st, status, 30)

	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("x")},
		{Type: tea.KeyEnter},
		{Type: tea.KeyUp},
	} {
		if _, cmd := m.Update(key); cmd != nil {
			t.Errorf("key %q should be ignored", key.String())
		}
	}

	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyCtrlC},
	} {
		_, cmd := m.Update(key)
		if cmd == nil {
			t.Fatalf("key %q should quit", key.String())
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("key %q did not quit", key.String())
		}
	}
}

func TestPlayModelFailedLoad(t *testing.T) {
	st, status := playState(t, "")
	var m tea.Model = newPlayModel(st, status, 30)
	m, _ = m.Update(tea.WindowSizeMsg{Width: 60, Height: 10})
	m, _ = m.Update(tickMsg(time.Now()))

	view := m.View()
	if !strings.Contains(view, "Error: dataset not found.") {
		t.Errorf("view missing diagnostic:\n%s", view)
	}
	if !strings.Contains(view, "Tried:") {
		t.Errorf("view missing failure status:\n%s", view)
	}
}

func TestGlyphFor(t *testing.T) {
	tests := []struct {
		radius, max float64
		want        string
	}{
		{3, 18, "·"},
		{8, 18, "⬡"},
		{18, 18, "⬢"},
		{30, 18, "⬢"},
		{-1, 18, "·"},
		{5, 0, "⬢"},
	}
	for _, tt := range tests {
		if got := glyphFor(tt.radius, tt.max); got != tt.want {
			t.Errorf("glyphFor(%v, %v) = %q, want %q", tt.radius, tt.max, got, tt.want)
		}
	}
}
