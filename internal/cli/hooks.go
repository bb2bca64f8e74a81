package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// logHooks reports library events at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnLoadStart(_ context.Context, paths []string) {
	h.logger.Debug("loading dataset", "candidates", len(paths))
}

func (h *logHooks) OnLoadComplete(_ context.Context, path string, rows int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("dataset load failed", "duration", d, "err", err)
		return
	}
	h.logger.Debug("dataset load complete", "path", path, "rows", rows, "duration", d)
}

func (h *logHooks) OnLayout(_ context.Context, width float64, items, cols int, d time.Duration) {
	h.logger.Debug("computed layout", "width", width, "items", items, "cols", cols, "duration", d)
}

// OnFrame is silent; frames arrive too often for a line-oriented log.
func (h *logHooks) OnFrame(context.Context, int, int, time.Duration) {}

func (h *logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

func (h *logHooks) OnRequest(_ context.Context, method, host, path string) {
	h.logger.Debug("http request", "method", method, "host", host, "path", path)
}

func (h *logHooks) OnResponse(_ context.Context, method, host, path string, status int, d time.Duration) {
	h.logger.Debug("http response", "method", method, "host", host, "path", path, "status", status, "duration", d)
}

func (h *logHooks) OnError(_ context.Context, method, host, path string, err error) {
	h.logger.Debug("http error", "method", method, "host", host, "path", path, "err", err)
}
