// Package emulog wraps log/slog with a Handler matching the plain,
// single-line text format the original emulator's SDL_Log categories
// produced, so log output reads the same whether it ends up in a
// terminal or a redirected -l/--log file. Grounded on
// rcornwell-S370/util/logger/logger.go.
package emulog

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// Handler is a slog.Handler that writes "TIME LEVEL: message attr attr"
// lines to a single writer, serialized by a mutex since the CPU loop,
// disk codec and monitor REPL may all log concurrently with a host
// audio callback.
type Handler struct {
	out   io.Writer
	inner slog.Handler
	mu    *sync.Mutex
}

// New returns a Handler writing to w at the given minimum level.
func New(w io.Writer, level slog.Level) *Handler {
	return &Handler{
		out:   w,
		inner: slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}),
		mu:    &sync.Mutex{},
	}
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{out: h.out, inner: h.inner.WithAttrs(attrs), mu: h.mu}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{out: h.out, inner: h.inner.WithGroup(name), mu: h.mu}
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	parts := []string{r.Time.Format("2006/01/02 15:04:05"), r.Level.String() + ":", r.Message}
	r.Attrs(func(a slog.Attr) bool {
		parts = append(parts, a.Key+"="+a.Value.String())
		return true
	})

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, strings.Join(parts, " ")+"\n")
	return err
}

// Category groups related log calls the way the original's
// SDL_LogVerbose categories (disk, cpu, memory) did, as an slog
// attribute rather than a separate output channel.
func Category(name string) slog.Attr {
	return slog.String("category", name)
}
