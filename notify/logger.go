package notify

import (
	"context"
	"io"
	"log"

	"github.com/gregoryv/mq"
)

// NewLogger returns a logger with output discarded.
func NewLogger() *Logger {
	return &Logger{
		Logger: log.New(io.Discard, "", log.Flags()),
	}
}

type Logger struct {
	*log.Logger
	debug bool
}

// SetDebug includes a hex dump of each packet.
func (l *Logger) SetDebug(v bool) { l.debug = v }

// Out logs outgoing packets.
func (l *Logger) Out(next Handler) Handler {
	return func(ctx context.Context, p mq.Packet) error {
		if l.debug {
			l.Print("out ", p, "\n", dumpPacket(p))
		} else {
			l.Print("out ", p)
		}
		err := next(ctx, p)
		if err != nil {
			l.Print(err)
		}
		return err
	}
}
