package cli

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/hexgrid/pkg/layout"
	"github.com/matzehuels/hexgrid/pkg/render/sink"
	"github.com/matzehuels/hexgrid/pkg/scene"
)

// Terminal cell size in canvas pixels.
const (
	cellWidth  = 10.0
	cellHeight = 20.0
)

// statusLines reserved below the canvas.
const statusLines = 2

// Glyphs by relative hexagon size, smallest first.
var hexGlyphs = []string{"·", "⬡", "⬢"}

var (
	playStatusStyle = lipgloss.NewStyle().Foreground(colorGray)
	playHelpStyle   = lipgloss.NewStyle().Foreground(colorDim)
	playErrorStyle  = lipgloss.NewStyle().Foreground(colorRed)
)

// =============================================================================
// PlayModel - Live terminal preview
// =============================================================================

type tickMsg time.Time

// statusLine is the StatusSink of the preview; the model reads it in View.
type statusLine struct{ msg string }

func (s *statusLine) SetStatus(msg string) { s.msg = msg }

// PlayModel is the bubbletea model for the live preview. It owns the
// render state: every tick and resize happens inside Update.
type PlayModel struct {
	State  *scene.State
	Status *statusLine
	FPS    int

	width, height int // terminal size in cells
	frame         scene.Frame
}

// newPlayModel creates a preview model around a state whose status sink is
// status.
func newPlayModel(st *scene.State, status *statusLine, fps int) PlayModel {
	if fps < 1 {
		fps = scene.DefaultFPS
	}
	return PlayModel{State: st, Status: status, FPS: fps}
}

func (m PlayModel) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.FPS), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m PlayModel) Init() tea.Cmd {
	return m.tick()
}

func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.State.Resize(float64(msg.Width) * cellWidth)
	case tickMsg:
		m.frame = m.State.Tick()
		return m, m.tick()
	}
	return m, nil
}

func (m PlayModel) View() string {
	var b strings.Builder

	if err := m.State.Err(); err != nil {
		b.WriteString(playErrorStyle.Render(sink.PlaceholderText(err)))
		b.WriteString("\n\n")
	} else {
		b.WriteString(m.canvas())
	}

	b.WriteString(playStatusStyle.Render(m.Status.msg))
	b.WriteString("\n")
	b.WriteString(playHelpStyle.Render("q quit"))
	return b.String()
}

// canvas plots every item of the current frame as one colored glyph.
func (m PlayModel) canvas() string {
	cols, rows := m.width, m.height-statusLines
	if cols <= 0 || rows <= 0 {
		return ""
	}

	cells := make([][]string, rows)
	for y := range cells {
		cells[y] = make([]string, cols)
		for x := range cells[y] {
			cells[y][x] = " "
		}
	}

	maxRadius := m.State.Grid().ItemSize * layout.MaxDiameterRatio / 2
	for _, it := range m.frame.Items {
		p, v := it.Placement, it.Visual
		x := int(p.X / cellWidth)
		y := int((p.Y + v.Offset) / cellHeight)
		if x < 0 || x >= cols || y < 0 || y >= rows {
			continue
		}
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(v.Hex()))
		cells[y][x] = style.Render(glyphFor(p.Radius, maxRadius))
	}

	var b strings.Builder
	for _, row := range cells {
		b.WriteString(strings.Join(row, ""))
		b.WriteString("\n")
	}
	return b.String()
}

// glyphFor picks a glyph by radius relative to the largest possible radius.
func glyphFor(radius, maxRadius float64) string {
	if maxRadius <= 0 {
		return hexGlyphs[len(hexGlyphs)-1]
	}
	i := int(radius / maxRadius * float64(len(hexGlyphs)))
	if i < 0 {
		i = 0
	}
	if i >= len(hexGlyphs) {
		i = len(hexGlyphs) - 1
	}
	return hexGlyphs[i]
}
