package main

import (
	"io"

	"github.com/charmbracelet/log"
)

// setupLogger configures a logger with timestamps at the given level
func setupLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "poker-outs",
	})
}
