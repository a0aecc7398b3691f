package events

import (
	"log/slog"
	"sync"
)

// Bus is the process-wide publish/subscribe channel. Publish never blocks
// the mutator and never fails: a subscriber whose buffer is full simply
// misses the event (best-effort delivery, clients re-fetch on reconnect).
//
// Ordering: each subscriber channel is FIFO and Publish runs under the bus
// lock, so events published for one topic are observed by every subscriber
// in publish order.
type Bus struct {
	mu     sync.Mutex
	subs   map[Topic][]*Subscription
	all    []*Subscription
	buffer int
	closed bool
}

type Subscription struct {
	topics []Topic
	ch     chan Event
	closed bool // guarded by the bus mutex
}

// C is the receive side of the subscription. It is closed on Unsubscribe and
// on bus Close.
func (s *Subscription) C() <-chan Event {
	return s.ch
}

func NewBus(buffer int) *Bus {
	if buffer <= 0 {
		buffer = 16
	}
	return &Bus{
		subs:   make(map[Topic][]*Subscription),
		buffer: buffer,
	}
}

// Subscribe registers for the exact topics given.
func (b *Bus) Subscribe(topics ...Topic) *Subscription {
	sub := &Subscription{topics: topics, ch: make(chan Event, b.buffer)}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		sub.closed = true
		close(sub.ch)
		return sub
	}
	for _, t := range topics {
		b.subs[t] = append(b.subs[t], sub)
	}
	return sub
}

// SubscribeAll registers for every event regardless of topic. The fan-out
// uses this and applies its own audience filtering.
func (b *Bus) SubscribeAll() *Subscription {
	sub := &Subscription{ch: make(chan Event, b.buffer)}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		sub.closed = true
		close(sub.ch)
		return sub
	}
	b.all = append(b.all, sub)
	return sub
}

// Unsubscribe detaches the subscription and closes its channel. Safe to call
// more than once.
func (b *Bus) Unsubscribe(sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed || sub.closed {
		return
	}
	for _, t := range sub.topics {
		b.subs[t] = removeSub(b.subs[t], sub)
		if len(b.subs[t]) == 0 {
			delete(b.subs, t)
		}
	}
	b.all = removeSub(b.all, sub)
	sub.closed = true
	close(sub.ch)
}

// Publish delivers ev to every subscriber of each of its topics, and to
// every all-subscriber exactly once.
func (b *Bus) Publish(ev Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}

	seen := make(map[*Subscription]struct{})
	for _, t := range ev.Topics {
		for _, sub := range b.subs[t] {
			if _, dup := seen[sub]; dup {
				continue
			}
			seen[sub] = struct{}{}
			b.send(sub, ev)
		}
	}
	for _, sub := range b.all {
		b.send(sub, ev)
	}
}

func (b *Bus) send(sub *Subscription, ev Event) {
	select {
	case sub.ch <- ev:
	default:
		slog.Warn("event dropped for slow subscriber", "event", ev.Name)
	}
}

func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for _, subs := range b.subs {
		for _, sub := range subs {
			if sub.closed {
				continue
			}
			sub.closed = true
			close(sub.ch)
		}
	}
	for _, sub := range b.all {
		if sub.closed {
			continue
		}
		sub.closed = true
		close(sub.ch)
	}
	b.subs = nil
	b.all = nil
}

func removeSub(subs []*Subscription, target *Subscription) []*Subscription {
	out := subs[:0]
	for _, s := range subs {
		if s != target {
			out = append(out, s)
		}
	}
	return out
}
