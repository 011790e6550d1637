package main

import (
	"io"
	"log/slog"
	"os"
)

var persistentLogFile *os.File

// setupLogger initializes the structured logger. Diagnostics go to stderr
// (and optionally a file): stdout carries only the report line, which the
// monitoring caller parses.
func setupLogger(cfg *Config) {
	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}

	var out io.Writer = os.Stderr
	if cfg.LogFile != "" {
		logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			persistentLogFile = logFile
			out = io.MultiWriter(os.Stderr, logFile)
		}
	}

	handler := slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler).With("app", pluginName))
}

func closeLogger() {
	if persistentLogFile == nil {
		return
	}
	_ = persistentLogFile.Sync()
	_ = persistentLogFile.Close()
	persistentLogFile = nil
}
