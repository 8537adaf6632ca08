package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	slogmulti "github.com/samber/slog-multi"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config controls logger output.
type Config struct {
	Level   string // debug, info, warn, error
	Format  string // text, json, pretty
	Service string
	Version string
	File    string // optional rotating log file, always JSON
	Output  io.Writer
}

// NewLogger returns a structured logger. Console output goes to stderr unless Output is set
// so that the standings table on stdout stays clean.
func NewLogger(cfg Config) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	level := parseLevel(cfg.Level)

	handler := consoleHandler(out, strings.ToLower(strings.TrimSpace(cfg.Format)), level)
	if cfg.File != "" {
		handler = slogmulti.Fanout(handler, fileHandler(cfg.File, level))
	}

	attrs := WithCommon(nil, cfg.Service, cfg.Version)
	if len(attrs) > 0 {
		handler = handler.WithAttrs(attrs)
	}
	return slog.New(handler)
}

func consoleHandler(out io.Writer, format string, level slog.Level) slog.Handler {
	switch format {
	case "json":
		return slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level})
	case "pretty":
		return tint.NewHandler(out, &tint.Options{
			Level: level,
			ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
				if _, ok := attr.Value.Any().(error); attr.Key == FieldError || ok {
					return tint.Attr(9, attr)
				}
				return attr
			},
			TimeFormat: time.Kitchen,
			NoColor:    !logColors(out),
		})
	default:
		return slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})
	}
}

func fileHandler(path string, level slog.Level) slog.Handler {
	return slog.NewJSONHandler(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}, &slog.HandlerOptions{Level: level})
}

func logColors(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if !isatty.IsTerminal(f.Fd()) {
		return false
	}
	return os.Getenv("TERM") != "dumb"
}

func parseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
