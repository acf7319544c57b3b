package toolwindows

import (
	"log/slog"
	"os"
)

var logLevel = new(slog.LevelVar)

// SetVerbose enables debug logging of z-order changes and drags.
func SetVerbose(v bool) {
	if v {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}
}

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})).With("component", "toolwindows")
