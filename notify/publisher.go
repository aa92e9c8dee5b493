package notify

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/gregoryv/mq"
	"github.com/gregoryv/umd/event"
	"gopkg.in/yaml.v3"
)

// NewPublisher returns a publisher passing packets to next using
// the default topic prefix "umd".
func NewPublisher(next Handler) *Publisher {
	return &Publisher{
		Prefix: "umd",
		Log:    log.New(io.Discard, "notify ", log.Flags()),
		next:   next,
	}
}

// Publisher turns events into QoS 0 publish packets.
type Publisher struct {
	Prefix string
	Log    *log.Logger

	next Handler
}

// OnEvent publishes v, events of unknown types are ignored. Errors
// from the handler chain are logged.
func (p *Publisher) OnEvent(v any) {
	if err := p.Publish(context.Background(), v); err != nil {
		p.Log.Print(err)
	}
}

// Publish passes one packet for v to the handler chain.
func (p *Publisher) Publish(ctx context.Context, v any) error {
	msg, err := p.Packet(v)
	if err != nil {
		return err
	}
	return p.next(ctx, msg)
}

// Packet returns the publish packet for event v. The payload is the
// event in yaml.
func (p *Publisher) Packet(v any) (*mq.Publish, error) {
	topic, err := Topic(p.Prefix, v)
	if err != nil {
		return nil, err
	}
	payload, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", topic, err)
	}
	return mq.Pub(0, topic, string(payload)), nil
}

// Topic returns topic name for the given event, e.g.
// umd/owner-changed/{id}. Line events use the line ID and end,
// umd/connected/{line}/head.
func Topic(prefix string, v any) (string, error) {
	var levels []string
	switch v := v.(type) {
	case event.ElementCreated:
		levels = []string{"element-created", v.ID}
	case event.ElementDeleted:
		levels = []string{"element-deleted", v.ID}
	case event.OwnerChanged:
		levels = []string{"owner-changed", v.ID}
	case event.ItemCreated:
		levels = []string{"item-created", v.ID}
	case event.ItemRemoved:
		levels = []string{"item-removed", v.ID}
	case event.Connected:
		levels = []string{"connected", v.Line, v.End}
	case event.Disconnected:
		levels = []string{"disconnected", v.Line, v.End}
	default:
		return "", fmt.Errorf("%T: %w", v, ErrUnknownEvent)
	}
	if prefix != "" {
		levels = append([]string{prefix}, levels...)
	}
	return strings.Join(levels, "/"), nil
}

var ErrUnknownEvent = fmt.Errorf("unknown event")
