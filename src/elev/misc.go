package elev

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"scanvator/src/types"
)

// InitLogger sets up global logging with compact time format, tee'd to logFile when given.
// The returned function closes the log file.
func InitLogger(level slog.Level, logFile string) (func() error, error) {
	var w io.Writer = os.Stderr
	closeFn := func() error { return nil }
	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if err != nil {
			return closeFn, fmt.Errorf("open log file: %w", err)
		}
		w = io.MultiWriter(os.Stderr, file)
		closeFn = file.Close
	}
	slog.SetDefault(slog.New(newHandler(w, level)))
	return closeFn, nil
}

func newHandler(w io.Writer, level slog.Level) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.Format("15:04:05"))
				}
			}
			if a.Key == slog.SourceKey {
				if source, ok := a.Value.Any().(*slog.Source); ok {
					file := source.File
					if lastSlash := strings.LastIndexByte(file, '/'); lastSlash >= 0 {
						file = file[lastSlash+1:]
					}
					a.Value = slog.StringValue(fmt.Sprintf("%s:%d", file, source.Line))
				}
			}
			return a
		},
	})
}

func FormatEvent(ev types.Event) string {
	switch ev.Kind {
	case types.EvUnboard:
		return fmt.Sprintf("UN-BOARDING at Floor: %d", ev.Floor)
	case types.EvBoard:
		return fmt.Sprintf("BOARDING at Floor: %d", ev.Floor)
	case types.EvMove:
		if ev.Dir == types.DirDown {
			return fmt.Sprintf("GOING DOWN TO %d", ev.Floor)
		}
		return fmt.Sprintf("GOING UP TO %d", ev.Floor)
	case types.EvIdle:
		return fmt.Sprintf("STOPPED at Floor: %d", ev.Floor)
	case types.EvMalfunction:
		return "Elevator Malfunctioned"
	}
	return "Unknown"
}
