package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/envkit/internal/ui/output"
	"go.trai.ch/envkit/internal/ui/style"
)

// PrettyHandler is a slog.Handler that writes one colored line per record.
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Leveler
	attrs []slog.Attr
	group string
}

// NewPrettyHandler creates a PrettyHandler writing to w.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{
		out:   output.New(w),
		level: level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and writes the record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	msg := r.Message
	color := style.Slate

	switch {
	case r.Level >= slog.LevelError:
		msg = style.Cross + " " + msg
		color = style.Red
	case r.Level >= slog.LevelWarn:
		msg = style.Warning + " " + msg
		color = style.Yellow
	}

	parts := make([]string, 0, len(h.attrs)+r.NumAttrs())
	for _, attr := range h.attrs {
		parts = append(parts, formatAttr(h.group, attr))
	}
	r.Attrs(func(attr slog.Attr) bool {
		parts = append(parts, formatAttr(h.group, attr))
		return true
	})
	if len(parts) > 0 {
		msg += " " + strings.Join(parts, " ")
	}

	styled := h.out.String(msg).Foreground(termenv.RGBColor(string(color)))
	_, err := h.out.WriteString(styled.String() + "\n")
	return err
}

// WithAttrs returns a new Handler with the given attributes appended.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)

	return &PrettyHandler{
		out:   h.out,
		level: h.level,
		attrs: merged,
		group: h.group,
	}
}

// WithGroup returns a new Handler that prefixes attribute keys with name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	return &PrettyHandler{
		out:   h.out,
		level: h.level,
		attrs: h.attrs,
		group: name,
	}
}

func formatAttr(group string, attr slog.Attr) string {
	key := attr.Key
	if group != "" {
		key = group + "." + key
	}
	return key + "=" + attr.Value.String()
}
