package component

import "sync"

type subscription struct {
	id int
	fn func()
}

// notifier fans state changes out to renderers.
type notifier struct {
	mu   sync.Mutex
	next int
	subs []subscription
}

// Subscribe registers fn to run after every state change. The returned
// function removes the subscription.
func (n *notifier) Subscribe(fn func()) func() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.next++
	id := n.next
	n.subs = append(n.subs, subscription{id: id, fn: fn})
	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		for i, s := range n.subs {
			if s.id == id {
				n.subs = append(n.subs[:i], n.subs[i+1:]...)
				return
			}
		}
	}
}

// notify must be called without holding the component lock.
func (n *notifier) notify() {
	n.mu.Lock()
	subs := make([]subscription, len(n.subs))
	copy(subs, n.subs)
	n.mu.Unlock()
	for _, s := range subs {
		s.fn()
	}
}
