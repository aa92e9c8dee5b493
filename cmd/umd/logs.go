package main

import (
	"io"
	"log"
	"os"

	"github.com/gregoryv/umd/notify"
)

// stdout is where commands write their results.
var stdout io.Writer = os.Stdout

// NextLogWriter if set is used in next call to NewLogger.
var NextLogWriter io.Writer

// NewLogger returns a packet logger writing to stderr.
func NewLogger(debug bool) *notify.Logger {
	l := notify.NewLogger()
	l.SetOutput(os.Stderr)
	l.SetFlags(log.Flags())
	l.SetDebug(debug)
	if v := NextLogWriter; v != nil {
		l.SetOutput(v)
		NextLogWriter = nil
	}
	return l
}
