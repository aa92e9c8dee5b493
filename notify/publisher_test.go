package notify

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/gregoryv/mq"
	"github.com/gregoryv/umd"
	"github.com/gregoryv/umd/event"
)

func ExampleTopic() {
	topic, _ := Topic("umd", event.Connected{Line: "l1", End: "head", Item: "i1"})
	fmt.Println(topic)
	// output:
	// umd/connected/l1/head
}

func TestTopic(t *testing.T) {
	cases := []struct {
		v   any
		exp string
	}{
		{event.ElementCreated{ID: "e"}, "umd/element-created/e"},
		{event.ElementDeleted{ID: "e"}, "umd/element-deleted/e"},
		{event.OwnerChanged{ID: "e"}, "umd/owner-changed/e"},
		{event.ItemCreated{ID: "i"}, "umd/item-created/i"},
		{event.ItemRemoved{ID: "i"}, "umd/item-removed/i"},
		{event.Disconnected{Line: "l", End: "tail"}, "umd/disconnected/l/tail"},
	}
	for _, c := range cases {
		got, err := Topic("umd", c.v)
		if err != nil || got != c.exp {
			t.Error(got, err)
		}
	}
	if _, err := Topic("umd", "nope"); !errors.Is(err, ErrUnknownEvent) {
		t.Error(err)
	}
	if got, _ := Topic("", event.ItemRemoved{ID: "i"}); got != "item-removed/i" {
		t.Error(got)
	}
}

func TestPublisher_Packet(t *testing.T) {
	pub := NewPublisher(NoopHandler)
	p, err := pub.Packet(event.OwnerChanged{ID: "a", Old: "", New: "b"})
	if err != nil {
		t.Fatal(err)
	}
	if p.TopicName() != "umd/owner-changed/a" {
		t.Error(p.TopicName())
	}
	if v := string(p.Payload()); !strings.Contains(v, "new: b") {
		t.Error(v)
	}
}

func TestPublisher_OnEvent(t *testing.T) {
	var topics []string
	pub := NewPublisher(func(_ context.Context, p mq.Packet) error {
		topics = append(topics, p.(*mq.Publish).TopicName())
		return nil
	})
	m := umd.NewModel()
	m.OnEvent = pub.OnEvent
	pkg := m.Create(umd.KindPackage, "p")
	cls := m.Create(umd.KindClass, "c")
	_ = cls.SetPackage(pkg)
	m.OnEvent("unknown") // logged only

	exp := []string{
		"umd/element-created/" + pkg.ID,
		"umd/element-created/" + cls.ID,
		"umd/owner-changed/" + cls.ID,
	}
	if strings.Join(topics, " ") != strings.Join(exp, " ") {
		t.Error(topics)
	}
}

func TestPublisher_errors(t *testing.T) {
	var buf bytes.Buffer
	pub := NewPublisher(func(context.Context, mq.Packet) error {
		return fmt.Errorf("broken")
	})
	pub.Log.SetOutput(&buf)
	pub.OnEvent(event.ItemRemoved{ID: "x"})
	if !strings.Contains(buf.String(), "broken") {
		t.Error(buf.String())
	}
}

func TestWriteTo(t *testing.T) {
	var buf bytes.Buffer
	pub := NewPublisher(WriteTo(&buf))
	if err := pub.Publish(context.Background(), event.ItemRemoved{ID: "x"}); err != nil {
		t.Fatal(err)
	}
	p, err := mq.ReadPacket(&buf)
	if err != nil {
		t.Fatal(err)
	}
	got, ok := p.(*mq.Publish)
	if !ok || got.TopicName() != "umd/item-removed/x" {
		t.Errorf("%T %v", p, p)
	}
}
