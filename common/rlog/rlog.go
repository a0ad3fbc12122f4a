package rlog

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"github.com/lmittmann/tint"
)

var level = new(slog.LevelVar)
var logger atomic.Pointer[slog.Logger]

func init() {
	SetOutput(os.Stderr)
}

// SetOutput replaces the destination of the process logger
func SetOutput(w io.Writer) {
	logger.Store(slog.New(tint.NewHandler(w, &tint.Options{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				a.Value = slog.StringValue(formatRFC3339Millis(a.Value.Time()))
			}
			if s, ok := a.Value.Any().(string); ok && s == "" {
				return slog.Attr{}
			}
			return a
		},
	})))
}

// SetVerbose switches between the debug and the info level
func SetVerbose(verbose bool) {
	if verbose {
		level.Set(slog.LevelDebug)
	} else {
		level.Set(slog.LevelInfo)
	}
}

// Logger returns the process logger
func Logger() *slog.Logger {
	return logger.Load()
}

// With returns a logger that carries the given attributes
func With(args ...any) *slog.Logger {
	return Logger().With(args...)
}

func Debug(msg string, args ...any) { Logger().Debug(msg, args...) }
func Info(msg string, args ...any)  { Logger().Info(msg, args...) }
func Warn(msg string, args ...any)  { Logger().Warn(msg, args...) }
func Error(msg string, args ...any) { Logger().Error(msg, args...) }

// Println prints the values at the info level
func Println(v ...interface{}) {
	Logger().Info(fmt.Sprint(v...))
}

// Fatal prints the values at the error level followed by a call to os.Exit(1).
func Fatal(v ...interface{}) {
	Logger().Error(fmt.Sprint(v...))
	os.Exit(1)
}

func formatRFC3339Millis(t time.Time) string {
	t = t.UTC()
	return fmt.Sprintf("%s.%03dZ", t.Format("2006-01-02T15:04:05"), t.Nanosecond()/1_000_000)
}
