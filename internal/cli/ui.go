package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/hexgrid/pkg/dataset"
	hgerrors "github.com/matzehuels/hexgrid/pkg/errors"
	"github.com/matzehuels/hexgrid/pkg/layout"
	"github.com/matzehuels/hexgrid/pkg/scene"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorBlue   = lipgloss.Color("75")  // Light blue - commands
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

var (
	// StyleHighlight for dataset paths and column names.
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for written files and settings.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleWarning for non-numeric cells and similar data problems.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)
	styleKey         = lipgloss.NewStyle().Foreground(colorGray).Width(12)
	styleCommand     = lipgloss.NewStyle().Foreground(colorBlue)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
	statsSep    = " · "
)

// =============================================================================
// Report - what a user reads after a command finishes
// =============================================================================

// report writes styled result lines to w. Progress and diagnostics go to the
// logger instead.
type report struct{ w io.Writer }

func newReport(w io.Writer) *report {
	if w == nil {
		w = io.Discard
	}
	return &report{w: w}
}

func (r *report) println(s string) { fmt.Fprintln(r.w, s) }

func (r *report) success(format string, args ...any) {
	r.println(styleIconSuccess.Render(iconSuccess) + " " + fmt.Sprintf(format, args...))
}

func (r *report) failure(format string, args ...any) {
	r.println(styleIconError.Render(iconError) + " " + fmt.Sprintf(format, args...))
}

func (r *report) warning(format string, args ...any) {
	r.println(StyleWarning.Render(iconWarning) + " " + StyleWarning.Render(fmt.Sprintf(format, args...)))
}

func (r *report) info(format string, args ...any) {
	r.println(styleIconInfo.Render(iconInfo) + " " + fmt.Sprintf(format, args...))
}

func (r *report) detail(format string, args ...any) {
	r.println("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

func (r *report) file(path string) {
	r.println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

func (r *report) keyValue(key, value string) {
	r.println(styleKey.Render(key) + " " + StyleValue.Render(value))
}

func (r *report) nextStep(description, cmd string) {
	r.println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

// =============================================================================
// Grid Output
// =============================================================================

// gridStats summarizes a grid on one line, e.g.
// "3 hexagons · 3×1 grid · population 10–30".
func gridStats(g layout.Grid, column string) string {
	parts := []string{
		fmt.Sprintf("%d hexagons", g.Len()),
		fmt.Sprintf("%d×%d grid", g.Cols, g.Rows),
	}
	if column != "" && g.Len() > 0 {
		parts = append(parts, fmt.Sprintf("%s %s–%s", column, formatValue(g.Range.Min), formatValue(g.Range.Max)))
	}
	return strings.Join(parts, statsSep)
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// grid prints the stats line and a warning for cells that fell back to the
// minimum size.
func (r *report) grid(g layout.Grid, column string) {
	r.println("  " + StyleDim.Render(gridStats(g, column)))
	if n := len(g.Failed); n > 0 {
		r.warning("%d of %d values in %s are not numeric and use the minimum size", n, g.Len(), column)
	}
}

// rendered reports a finished render of st to output.
func (r *report) rendered(st *scene.State, output string) {
	path := st.Table().Path
	r.success("Rendered %s", StyleHighlight.Render(path))
	r.grid(st.Grid(), st.Column())
	r.file(output)
	r.nextStep("Preview it live", appName+" play "+path)
}

// layoutWritten reports a layout export of st to output.
func (r *report) layoutWritten(st *scene.State, output string) {
	r.success("Layout of %s computed", StyleHighlight.Render(st.Table().Path))
	r.grid(st.Grid(), st.Column())
	r.file(output)
}

// loadFailed reports a failed dataset load, one detail line per attempted
// location, and the diagnostic image when one was written.
func (r *report) loadFailed(err error, placeholder string) {
	r.failure("No dataset could be loaded")
	var nf *dataset.NotFoundError
	if errors.As(err, &nf) {
		for i, p := range nf.Paths {
			if i < len(nf.Causes) {
				r.detail("tried %s: %s", p, hgerrors.UserMessage(nf.Causes[i]))
			} else {
				r.detail("tried %s", p)
			}
		}
	}
	if placeholder != "" {
		r.file(placeholder)
	}
}

// cacheCleared reports the result of clearing the dataset cache in dir.
func (r *report) cacheCleared(dir string, removed int) {
	if removed == 0 {
		r.info("Cache is empty")
		return
	}
	noun := "datasets"
	if removed == 1 {
		noun = "dataset"
	}
	r.success("Cleared %d cached %s", removed, noun)
	r.keyValue("Directory", dir)
}
