// Package notifier broadcasts registry reloads to SSE listeners.
package notifier

import "sync"

// Notifier fans out the version of each newly activated registry.
// Listeners only need the latest version, so a slow listener may miss
// intermediate ones.
type Notifier struct {
	mu        sync.RWMutex
	listeners map[chan uint64]struct{}
}

// New creates a new Notifier instance.
func New() *Notifier {
	return &Notifier{
		listeners: make(map[chan uint64]struct{}),
	}
}

// Subscribe returns a channel that receives registry versions.
// The caller must call Unsubscribe when done.
func (n *Notifier) Subscribe() chan uint64 {
	ch := make(chan uint64, 1)
	n.mu.Lock()
	n.listeners[ch] = struct{}{}
	n.mu.Unlock()
	return ch
}

// Unsubscribe removes a listener channel and closes it.
func (n *Notifier) Unsubscribe(ch chan uint64) {
	n.mu.Lock()
	delete(n.listeners, ch)
	n.mu.Unlock()
	close(ch)
}

// Broadcast sends version to all listeners.
// A listener with a pending, unread version gets it replaced.
func (n *Notifier) Broadcast(version uint64) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	for ch := range n.listeners {
		select {
		case ch <- version:
			continue
		default:
		}
		// Drop the stale version and retry once.
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- version:
		default:
		}
	}
}

// Len returns the number of subscribed listeners.
func (n *Notifier) Len() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.listeners)
}
