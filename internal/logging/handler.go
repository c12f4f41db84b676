package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

// Handler implements slog.Handler for terminal-friendly text output.
// Colors are only used when the writer supports them.
type Handler struct {
	opts   slog.HandlerOptions
	out    io.Writer
	mu     *sync.Mutex
	attrs  []slog.Attr
	prefix string

	useColor bool
	levels   map[slog.Level]*color.Color
	timeCol  *color.Color
	keyCol   *color.Color
}

// NewHandler creates a text handler writing to out.
func NewHandler(out io.Writer, opts *slog.HandlerOptions) *Handler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}
	h := &Handler{
		opts: *opts,
		out:  out,
		mu:   &sync.Mutex{},
	}
	if SupportsColor(out) {
		h.useColor = true
		h.timeCol = color.New(color.FgHiBlack)
		h.keyCol = color.New(color.FgCyan)
		h.levels = map[slog.Level]*color.Color{
			LevelTrace:      color.New(color.FgHiBlack),
			slog.LevelDebug: color.New(color.FgMagenta),
			slog.LevelInfo:  color.New(color.FgGreen),
			slog.LevelWarn:  color.New(color.FgYellow),
			slog.LevelError: color.New(color.FgRed, color.Bold),
		}
	}
	return h
}

// Enabled reports whether the handler handles records at the given level.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	minLevel := slog.LevelInfo
	if h.opts.Level != nil {
		minLevel = h.opts.Level.Level()
	}
	return level >= minLevel
}

// Handle writes one line: time, level, message, then key=value pairs.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder

	if !r.Time.IsZero() {
		sb.WriteString(h.paint(h.timeCol, r.Time.Format(time.Kitchen)))
		sb.WriteByte(' ')
	}
	fmt.Fprintf(&sb, "%-5s ", h.paint(h.levelColor(r.Level), levelName(r.Level)))
	sb.WriteString(r.Message)

	for _, a := range h.attrs {
		h.writeAttr(&sb, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(&sb, h.prefix, a)
		return true
	})
	sb.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, sb.String())
	return err
}

func (h *Handler) writeAttr(sb *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			h.writeAttr(sb, prefix+a.Key+".", ga)
		}
		return
	}
	fmt.Fprintf(sb, " %s=%v", h.paint(h.keyCol, prefix+a.Key), a.Value.Any())
}

func (h *Handler) levelColor(l slog.Level) *color.Color {
	if !h.useColor {
		return nil
	}
	switch {
	case l >= slog.LevelError:
		return h.levels[slog.LevelError]
	case l >= slog.LevelWarn:
		return h.levels[slog.LevelWarn]
	case l >= slog.LevelInfo:
		return h.levels[slog.LevelInfo]
	case l >= slog.LevelDebug:
		return h.levels[slog.LevelDebug]
	default:
		return h.levels[LevelTrace]
	}
}

func (h *Handler) paint(c *color.Color, s string) string {
	if c == nil {
		return s
	}
	return c.Sprint(s)
}

func levelName(l slog.Level) string {
	if l < slog.LevelDebug {
		return "TRACE"
	}
	return l.String()
}

// WithAttrs returns a new Handler with the given attributes.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newH := *h
	newH.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	newH.attrs = append(newH.attrs, h.attrs...)
	for _, a := range attrs {
		a.Key = h.prefix + a.Key
		newH.attrs = append(newH.attrs, a)
	}
	return &newH
}

// WithGroup returns a new Handler whose keys are prefixed with name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	newH := *h
	newH.prefix = h.prefix + name + "."
	return &newH
}
