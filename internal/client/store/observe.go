package store

import (
	"errors"
	"sync"
)

// ErrSuperseded is returned by an intent whose result was discarded because
// a newer intent of the same kind was issued while it was in flight.
var ErrSuperseded = errors.New("superseded by a newer request")

// snapshot is a published state. version grows with every commit and is
// taken under the store lock.
type snapshot[T any] struct {
	state   T
	version uint64
}

// listeners is a set of state observers. Callbacks run on the goroutine that
// changed the state, after the store lock is released, one delivery at a
// time. A snapshot older than one already delivered is dropped, so the last
// state a subscriber saw is always the newest committed one.
//
// Callbacks must not call intents of the same store.
type listeners[T any] struct {
	mu   sync.Mutex
	next int
	fns  map[int]func(T)

	deliver   sync.Mutex
	delivered uint64
}

func (l *listeners[T]) add(fn func(T)) func() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.fns == nil {
		l.fns = make(map[int]func(T))
	}
	id := l.next
	l.next++
	l.fns[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			defer l.mu.Unlock()
			delete(l.fns, id)
		})
	}
}

func (l *listeners[T]) notify(s snapshot[T]) {
	l.deliver.Lock()
	defer l.deliver.Unlock()

	if s.version <= l.delivered {
		return
	}
	l.delivered = s.version

	l.mu.Lock()
	fns := make([]func(T), 0, len(l.fns))
	for _, fn := range l.fns {
		fns = append(fns, fn)
	}
	l.mu.Unlock()

	for _, fn := range fns {
		fn(s.state)
	}
}
