// Package logring provides a slog.Handler that retains the last N
// formatted log lines in a fixed-capacity ring for tail-style inspection.
package logring

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/c360/ringkit/errors"
	"github.com/c360/ringkit/ring"
)

// Handler formats records as single lines and keeps the newest ones in a
// bounded ring. It implements slog.Handler; WithAttrs and WithGroup return
// children that share the same ring, switch and level.
type Handler struct {
	core *core
	// attrs holds this branch's preformatted attribute suffix; group is
	// the dotted key prefix applied to record attrs.
	attrs string
	group string
}

// core is the state shared by a handler and all its WithAttrs/WithGroup
// children. The mutex serializes ring access, which is the external
// locking the ring engine requires for multi-goroutine use.
type core struct {
	tag     string
	leveler slog.Leveler
	enabled atomic.Bool
	maxLine int
	sink    func(line string)
	metrics *handlerMetrics

	mu  sync.Mutex
	buf *ring.Buffer[string]
}

// New creates a handler that tags every line with tag and retains the last
// capacity lines. The handler starts enabled at slog.LevelInfo unless
// WithLevel says otherwise. Empty tags and non-positive capacities are
// rejected.
func New(tag string, capacity int, opts ...Option) (*Handler, error) {
	if tag == "" {
		return nil, errors.WrapInvalid(errors.ErrInvalidArgument,
			"Handler", "New", "tag must not be empty")
	}

	o := applyOptions(opts...)

	buf, err := ring.New[string](capacity)
	if err != nil {
		return nil, errors.Wrap(err, "Handler", "New", "line buffer")
	}

	var metrics *handlerMetrics
	if o.metricsReg != nil && o.component != "" {
		metrics, err = newHandlerMetrics(o.metricsReg, o.component)
		if err != nil {
			return nil, errors.Wrap(err, "Handler", "New", "metrics registration")
		}
	}

	leveler := o.level
	if leveler == nil {
		leveler = new(slog.LevelVar)
	}

	c := &core{
		tag:     tag,
		leveler: leveler,
		maxLine: o.maxLine,
		sink:    o.sink,
		metrics: metrics,
		buf:     buf,
	}
	c.enabled.Store(true)

	return &Handler{core: c}, nil
}

// Enabled reports whether a record at the given level would be retained.
// A disabled handler rejects every level.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	if h == nil || !h.core.enabled.Load() {
		return false
	}
	return level >= h.core.leveler.Level()
}

// Handle formats the record and pushes the line into the ring, overwriting
// the oldest line when full. The disable switch is honored even on direct
// calls; level gating is Enabled's job, per the slog contract. The sink
// callback runs after the ring is updated, outside the lock.
func (h *Handler) Handle(_ context.Context, rec slog.Record) error {
	if h == nil || !h.core.enabled.Load() {
		return nil
	}

	line := h.format(rec)
	if h.core.maxLine > 0 && len(line) > h.core.maxLine {
		line = line[:h.core.maxLine]
	}

	h.core.mu.Lock()
	h.core.buf.Push(line)
	h.core.mu.Unlock()

	if h.core.metrics != nil {
		h.core.metrics.recordLine(rec.Level)
	}
	if h.core.sink != nil {
		h.core.sink(line)
	}
	return nil
}

// WithAttrs returns a handler that includes attrs on every line. The
// attributes are formatted once here, not per record.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if h == nil || len(attrs) == 0 {
		return h
	}

	var sb strings.Builder
	for _, a := range attrs {
		appendAttr(&sb, h.group, a)
	}
	return &Handler{core: h.core, attrs: h.attrs + sb.String(), group: h.group}
}

// WithGroup returns a handler that prefixes subsequent attribute keys with
// name, dot-separated.
func (h *Handler) WithGroup(name string) slog.Handler {
	if h == nil || name == "" {
		return h
	}

	group := name
	if h.group != "" {
		group = h.group + "." + name
	}
	return &Handler{core: h.core, attrs: h.attrs, group: group}
}

// Enable turns retention back on.
func (h *Handler) Enable() {
	if h == nil {
		return
	}
	h.core.enabled.Store(true)
}

// Disable drops all records until Enable is called. Already-retained lines
// stay in the ring.
func (h *Handler) Disable() {
	if h == nil {
		return
	}
	h.core.enabled.Store(false)
}

// SetLevel adjusts the handler's own level variable at runtime. When
// WithLevel supplied an external Leveler, SetLevel is a no-op; adjust that
// Leveler instead.
func (h *Handler) SetLevel(level slog.Level) {
	if h == nil {
		return
	}
	if lv, ok := h.core.leveler.(*slog.LevelVar); ok {
		lv.Set(level)
	}
}

// Tail returns copies of the newest n retained lines, oldest first.
func (h *Handler) Tail(n int) []string {
	if h == nil || n <= 0 {
		return nil
	}

	lines := h.Lines()
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return lines
}

// Lines returns copies of all retained lines, oldest first.
func (h *Handler) Lines() []string {
	if h == nil {
		return nil
	}

	h.core.mu.Lock()
	defer h.core.mu.Unlock()
	return h.core.buf.Snapshot()
}

// Clear discards all retained lines.
func (h *Handler) Clear() {
	if h == nil {
		return
	}

	h.core.mu.Lock()
	defer h.core.mu.Unlock()
	h.core.buf.Clear()
}

// Stats exposes the line ring's statistics. Drops counts lines lost to
// overwrite.
func (h *Handler) Stats() *ring.Statistics {
	if h == nil {
		return nil
	}
	return h.core.buf.Stats()
}

// format renders one record as "HH:MM:SS.mmm [L] (TAG): msg key=val ...".
func (h *Handler) format(rec slog.Record) string {
	t := rec.Time
	if t.IsZero() {
		t = time.Now()
	}

	var sb strings.Builder
	sb.WriteString(t.Format("15:04:05.000"))
	sb.WriteString(" [")
	sb.WriteString(levelLetter(rec.Level))
	sb.WriteString("] (")
	sb.WriteString(h.core.tag)
	sb.WriteString("): ")
	sb.WriteString(rec.Message)
	sb.WriteString(h.attrs)

	rec.Attrs(func(a slog.Attr) bool {
		appendAttr(&sb, h.group, a)
		return true
	})

	return sb.String()
}

// appendAttr writes " key=value", flattening groups into dotted keys.
func appendAttr(sb *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()

	if a.Value.Kind() == slog.KindGroup {
		p := prefix
		if a.Key != "" {
			p = a.Key
			if prefix != "" {
				p = prefix + "." + a.Key
			}
		}
		for _, ga := range a.Value.Group() {
			appendAttr(sb, p, ga)
		}
		return
	}

	if a.Key == "" {
		return
	}

	sb.WriteByte(' ')
	if prefix != "" {
		sb.WriteString(prefix)
		sb.WriteByte('.')
	}
	sb.WriteString(a.Key)
	sb.WriteByte('=')
	sb.WriteString(a.Value.String())
}

// levelLetter maps slog levels onto the single-letter line markers.
func levelLetter(level slog.Level) string {
	switch {
	case level < slog.LevelInfo:
		return "D"
	case level < slog.LevelWarn:
		return "I"
	case level < slog.LevelError:
		return "W"
	default:
		return "E"
	}
}

// levelName maps slog levels onto metric label values.
func levelName(level slog.Level) string {
	switch {
	case level < slog.LevelInfo:
		return "debug"
	case level < slog.LevelWarn:
		return "info"
	case level < slog.LevelError:
		return "warn"
	default:
		return "error"
	}
}
