package notify

import (
	"context"
	"io"
	"log"
	"strings"
	"sync"

	"github.com/gregoryv/mq"
	"github.com/gregoryv/umd/qname"
)

// NewRouter returns a router without subscriptions. Handler errors
// are logged to Log which discards them by default.
func NewRouter() *Router {
	return &Router{
		Log: log.New(io.Discard, "router ", log.Flags()),
	}
}

// Router routes publish packets to subscriptions with matching
// topic filters. It is safe for concurrent use.
type Router struct {
	Log *log.Logger

	m    sync.Mutex
	subs []*Subscription
}

func (r *Router) AddSubscriptions(v ...*Subscription) {
	r.m.Lock()
	defer r.m.Unlock()
	r.subs = append(r.subs, v...)
}

// Route routes mq.Publish packets by topic name, other packets are
// ignored.
func (r *Router) Route(ctx context.Context, p mq.Packet) error {
	pub, ok := p.(*mq.Publish)
	if !ok {
		return ctx.Err()
	}
	r.m.Lock()
	subs := make([]*Subscription, len(r.subs))
	copy(subs, r.subs)
	r.m.Unlock()

	for _, s := range subs {
		if !s.Match(pub.TopicName()) {
			continue
		}
		for _, h := range s.handlers {
			if err := h(ctx, pub); err != nil {
				r.Log.Println("handle", pub, err)
			}
		}
	}
	return ctx.Err()
}

// MustNewSubscription panics on bad filter
func MustNewSubscription(filter string, handlers ...PubHandler) *Subscription {
	s, err := NewSubscription(filter, handlers...)
	if err != nil {
		panic(err.Error())
	}
	return s
}

// NewSubscription returns a subscription for the given topic
// filter. Filters use the same wildcards as qualified name
// patterns.
func NewSubscription(filter string, handlers ...PubHandler) (*Subscription, error) {
	if err := qname.ParsePattern(filter); err != nil {
		return nil, err
	}
	return &Subscription{
		filter:   filter,
		handlers: handlers,
	}, nil
}

type Subscription struct {
	filter   string
	handlers []PubHandler
}

func (s *Subscription) String() string { return s.filter }
func (s *Subscription) Filter() string { return s.filter }

// Match returns true if the topic name matches the filter.
func (s *Subscription) Match(name string) bool {
	return match(s.filter, name)
}

func match(filter, name string) bool {
	f := strings.Split(filter, "/")
	n := strings.Split(name, "/")
	for i, level := range f {
		if level == "#" {
			// a/# also matches a
			return true
		}
		if i == len(n) {
			return false
		}
		if level != "+" && level != n[i] {
			return false
		}
	}
	return len(f) == len(n)
}
