// Package subscription keeps ordered listener lists with explicit handles.
package subscription

import "sync"

// Subscription detaches one listener. Close is idempotent and safe on nil.
type Subscription struct {
	once   sync.Once
	cancel func()
}

func (s *Subscription) Close() {
	if s == nil {
		return
	}
	s.once.Do(s.cancel)
}

type entry[T any] struct {
	id uint64
	fn func(T)
}

// Listeners is a registry of callbacks invoked in registration order.
// The zero value is ready to use.
type Listeners[T any] struct {
	mu      sync.RWMutex
	next    uint64
	entries []entry[T]
}

func (l *Listeners[T]) Add(fn func(T)) *Subscription {
	l.mu.Lock()
	l.next++
	id := l.next
	l.entries = append(l.entries, entry[T]{id: id, fn: fn})
	l.mu.Unlock()

	return &Subscription{cancel: func() { l.remove(id) }}
}

func (l *Listeners[T]) remove(id uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, e := range l.entries {
		if e.id == id {
			l.entries = append(l.entries[:i:i], l.entries[i+1:]...)
			return
		}
	}
}

// Notify calls every listener with v. The registry lock is not held while
// listeners run, so a listener may close its own subscription.
func (l *Listeners[T]) Notify(v T) {
	l.mu.RLock()
	fns := make([]func(T), len(l.entries))
	for i, e := range l.entries {
		fns[i] = e.fn
	}
	l.mu.RUnlock()

	for _, fn := range fns {
		fn(v)
	}
}

func (l *Listeners[T]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

// Clear detaches all listeners.
func (l *Listeners[T]) Clear() {
	l.mu.Lock()
	l.entries = nil
	l.mu.Unlock()
}
