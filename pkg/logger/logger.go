package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	reset     = "\033[0m"
	red       = "\033[31m"
	green     = "\033[32m"
	yellow    = "\033[33m"
	magenta   = "\033[35m"
	cyan      = "\033[36m"
	white     = "\033[37m"
	boldBlue  = "\033[1;34m"
	boldWhite = "\033[1;37m"
)

var levelColors = map[slog.Level]string{
	slog.LevelDebug: cyan,
	slog.LevelInfo:  green,
	slog.LevelWarn:  yellow,
	slog.LevelError: red,
}

type requestKey string

const requestIDKey requestKey = "requestID"

// ColoredHandler prints one colored line per record for terminals.
type ColoredHandler struct {
	h     slog.Handler
	out   io.Writer
	attrs []slog.Attr
}

func NewColoredHandler(w io.Writer, opts *slog.HandlerOptions) *ColoredHandler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}
	return &ColoredHandler{h: slog.NewTextHandler(w, opts), out: w}
}

func (h *ColoredHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.h.Enabled(ctx, level)
}

func (h *ColoredHandler) Handle(ctx context.Context, r slog.Record) error {
	levelColor, ok := levelColors[r.Level]
	if !ok {
		levelColor = white
	}

	var line strings.Builder
	fmt.Fprintf(&line, "%s%s%s ", magenta, r.Time.Format("15:04:05.000"), reset)
	fmt.Fprintf(&line, "%s%-6s%s ", levelColor, strings.ToUpper(r.Level.String()), reset)

	if id := GetRequestID(ctx); id != "" {
		fmt.Fprintf(&line, "%s[%s]%s ", boldBlue, id, reset)
	}
	fmt.Fprintf(&line, "%s%s%s ", boldWhite, r.Message, reset)

	write := func(a slog.Attr) bool {
		if a.Key == "request_id" {
			return true
		}
		val := a.Value.String()
		if a.Value.Kind() == slog.KindString {
			val = fmt.Sprintf("%q", val)
		}
		fmt.Fprintf(&line, "%s%s%s=%s ", yellow, a.Key, reset, val)
		return true
	}
	for _, a := range h.attrs {
		write(a)
	}
	r.Attrs(write)

	_, err := fmt.Fprintln(h.out, line.String())
	return err
}

func (h *ColoredHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &ColoredHandler{h: h.h.WithAttrs(attrs), out: h.out, attrs: merged}
}

func (h *ColoredHandler) WithGroup(name string) slog.Handler {
	return &ColoredHandler{h: h.h.WithGroup(name), out: h.out, attrs: h.attrs}
}

// requestIDHandler adds request_id to JSON records from the context.
type requestIDHandler struct {
	slog.Handler
}

func (h requestIDHandler) Handle(ctx context.Context, r slog.Record) error {
	if id := GetRequestID(ctx); id != "" {
		r.AddAttrs(slog.String("request_id", id))
	}
	return h.Handler.Handle(ctx, r)
}

func (h requestIDHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return requestIDHandler{h.Handler.WithAttrs(attrs)}
}

func (h requestIDHandler) WithGroup(name string) slog.Handler {
	return requestIDHandler{h.Handler.WithGroup(name)}
}

// ParseLevel maps debug/info/warn/error to a slog level, defaulting to info.
func ParseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}

// New builds a handler writing to w. format "json" selects JSON output;
// anything else gets the colored text handler.
func New(w io.Writer, level, format string) slog.Handler {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}
	if strings.EqualFold(format, "json") {
		return requestIDHandler{slog.NewJSONHandler(w, opts)}
	}
	return NewColoredHandler(w, opts)
}

// Setup installs the default logger on stdout.
func Setup(level, format string) *slog.Logger {
	l := slog.New(New(os.Stdout, level, format))
	slog.SetDefault(l)
	return l
}

func GetRequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if reqID, ok := ctx.Value(requestIDKey).(string); ok {
		return reqID
	}
	return ""
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}
