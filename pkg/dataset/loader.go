package dataset

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	hgerrors "github.com/matzehuels/hexgrid/pkg/errors"
)

// NotFoundError is returned by [Loader.Load] when no candidate loaded.
type NotFoundError struct {
	Paths  []string
	Causes []error // One per path, same order
}

func (e *NotFoundError) Error() string {
	return "dataset not found, tried: " + strings.Join(e.Paths, ", ")
}

// ErrorCode reports DATASET_NOT_FOUND.
func (e *NotFoundError) ErrorCode() hgerrors.Code { return hgerrors.ErrCodeDatasetNotFound }

// Unwrap exposes the per-path causes to errors.Is and errors.As.
func (e *NotFoundError) Unwrap() []error { return e.Causes }

// Loader resolves a dataset over an ordered list of candidate locations.
type Loader struct {
	fetcher Fetcher
	logger  *log.Logger
}

// NewLoader returns a loader. A nil fetcher reads local files only; a nil
// logger discards attempt logs.
func NewLoader(f Fetcher, logger *log.Logger) *Loader {
	if f == nil {
		f = FileFetcher{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loader{fetcher: f, logger: logger}
}

// Load tries each location in order and returns the first table that opens
// and parses. Invalid locations count as failed attempts. Load stops early
// with ctx.Err() if the context ends.
func (l *Loader) Load(ctx context.Context, paths []string) (*Table, error) {
	if len(paths) == 0 {
		return nil, hgerrors.New(hgerrors.ErrCodeInvalidInput, "no dataset paths given")
	}

	nf := &NotFoundError{Paths: append([]string(nil), paths...)}
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		t, err := l.loadOne(ctx, p)
		if err == nil {
			l.logger.Debug("dataset loaded", "path", p, "rows", t.RowCount(), "columns", t.ColumnCount())
			return t, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		l.logger.Warn("failed to load dataset", "path", p, "err", err)
		nf.Causes = append(nf.Causes, err)
	}
	return nil, nf
}

func (l *Loader) loadOne(ctx context.Context, path string) (*Table, error) {
	if err := hgerrors.ValidateDatasetPath(path); err != nil {
		return nil, err
	}
	rc, err := l.fetcher.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	t, err := Parse(rc)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	t.Path = path
	return t, nil
}
