package rtsvc

import "sync"

// Group scopes subscriptions to one page's lifetime. The channel itself may
// outlive the page; closing the group deregisters everything the page added,
// which keeps a stale page's callbacks from firing after navigation.
type Group struct {
	mu   sync.Mutex
	ch   *Channel
	subs []*Subscription
}

func (ch *Channel) Group() *Group {
	return &Group{ch: ch}
}

func (g *Group) Subscribe(event string, fn Handler) *Subscription {
	sub := g.ch.Subscribe(event, fn)

	g.mu.Lock()
	g.subs = append(g.subs, sub)
	g.mu.Unlock()
	return sub
}

// Close disposes every subscription this group created. Idempotent.
func (g *Group) Close() {
	g.mu.Lock()
	subs := g.subs
	g.subs = nil
	g.mu.Unlock()

	for _, sub := range subs {
		sub.Close()
	}
}
