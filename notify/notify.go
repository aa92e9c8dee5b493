/*
Package notify publishes model and diagram changes as mqtt-v5
packets.

A Publisher is set as OnEvent callback on a model or diagram and
passes one publish packet per event through a Handler chain, e.g.

	log := notify.NewLogger()
	pub := notify.NewPublisher(log.Out(notify.WriteTo(w)))
	model.OnEvent = pub.OnEvent
*/
package notify

import (
	"bytes"
	"context"
	"encoding/hex"
	"io"

	"github.com/gregoryv/mq"
)

// Handler handles a mqtt control packet
type Handler func(context.Context, mq.Packet) error

// PubHandler handles publish packets only, see Router.
type PubHandler func(context.Context, *mq.Publish) error

// WriteTo returns a handler encoding each packet onto w.
func WriteTo(w io.Writer) Handler {
	return func(_ context.Context, p mq.Packet) error {
		_, err := p.WriteTo(w)
		return err
	}
}

func NoopHandler(_ context.Context, _ mq.Packet) error { return nil }

func dumpPacket(p mq.Packet) string {
	var buf bytes.Buffer
	p.WriteTo(&buf)
	return hex.Dump(buf.Bytes())
}
