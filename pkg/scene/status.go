package scene

import (
	"fmt"
	"strings"
)

// StatusSink receives human-readable progress messages.
type StatusSink interface {
	SetStatus(msg string)
}

// StatusFunc adapts a function to [StatusSink].
type StatusFunc func(msg string)

// SetStatus calls f.
func (f StatusFunc) SetStatus(msg string) { f(msg) }

type discardStatus struct{}

func (discardStatus) SetStatus(string) {}

// Dedup wraps sink so that repeated identical messages are forwarded once.
// Tick reports the drawn status every frame; Dedup keeps line-oriented sinks
// such as loggers quiet between changes.
func Dedup(sink StatusSink) StatusSink {
	return &dedupStatus{sink: sink}
}

type dedupStatus struct {
	sink StatusSink
	last string
	seen bool
}

func (d *dedupStatus) SetStatus(msg string) {
	if d.seen && msg == d.last {
		return
	}
	d.last, d.seen = msg, true
	d.sink.SetStatus(msg)
}

// LoadingMessage is shown while the dataset is resolving.
func LoadingMessage() string {
	return "Loading dataset..."
}

// LoadedMessage reports where the dataset came from and its shape.
func LoadedMessage(path string, rows, cols int) string {
	return fmt.Sprintf("Dataset loaded from: %s. Rows: %d, Columns: %d", path, rows, cols)
}

// DrawnMessage reports how many hexagons were drawn from which column.
func DrawnMessage(rows int, column string) string {
	return fmt.Sprintf("Drew %d hexagons - %s.", rows, column)
}

// FailedMessage lists every location that was tried.
func FailedMessage(paths []string) string {
	return "Error: could not load the dataset. Tried: " + strings.Join(paths, ", ")
}
