package logging

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// swapHandler forwards to a slog.Handler that can be replaced at runtime, so
// loggers created in bootstrap mode keep working after Upgrade.
type swapHandler struct {
	inner *atomic.Pointer[slog.Handler]
	// ops replays WithAttrs/WithGroup calls onto whatever handler is current.
	ops []func(slog.Handler) slog.Handler
}

func newSwapHandler(initial slog.Handler) *swapHandler {
	p := new(atomic.Pointer[slog.Handler])
	p.Store(&initial)
	return &swapHandler{inner: p}
}

func (h *swapHandler) swap(next slog.Handler) {
	h.inner.Store(&next)
}

func (h *swapHandler) current() slog.Handler {
	handler := *h.inner.Load()
	for _, op := range h.ops {
		handler = op(handler)
	}
	return handler
}

func (h *swapHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.current().Enabled(ctx, level)
}

func (h *swapHandler) Handle(ctx context.Context, r slog.Record) error {
	return h.current().Handle(ctx, r)
}

func (h *swapHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h.with(func(inner slog.Handler) slog.Handler { return inner.WithAttrs(attrs) })
}

func (h *swapHandler) WithGroup(name string) slog.Handler {
	return h.with(func(inner slog.Handler) slog.Handler { return inner.WithGroup(name) })
}

func (h *swapHandler) with(op func(slog.Handler) slog.Handler) *swapHandler {
	ops := make([]func(slog.Handler) slog.Handler, len(h.ops), len(h.ops)+1)
	copy(ops, h.ops)
	return &swapHandler{inner: h.inner, ops: append(ops, op)}
}
