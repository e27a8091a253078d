package client

import "sync"

// Observable is a single shared cell. Every reader sees the last published
// value, and subscribers are notified on each Set in publication order.
// Callbacks must not call Set or Subscribe on the same cell.
type Observable[T any] struct {
	// delivery serializes publication so subscribers see values in Set order
	delivery    sync.Mutex
	mu          sync.RWMutex
	value       T
	nextID      int
	subscribers map[int]func(T)
}

// NewObservable creates a cell holding initial
func NewObservable[T any](initial T) *Observable[T] {
	return &Observable[T]{
		value:       initial,
		subscribers: make(map[int]func(T)),
	}
}

// Get returns the current value
func (o *Observable[T]) Get() T {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.value
}

// Set publishes v to every subscriber. Callbacks run outside the value lock,
// so they may call Get.
func (o *Observable[T]) Set(v T) {
	o.delivery.Lock()
	defer o.delivery.Unlock()

	o.mu.Lock()
	o.value = v
	subs := make([]func(T), 0, len(o.subscribers))
	for _, fn := range o.subscribers {
		subs = append(subs, fn)
	}
	o.mu.Unlock()

	for _, fn := range subs {
		fn(v)
	}
}

// Subscribe registers fn, calls it once with the current value and returns
// a function that removes the subscription.
func (o *Observable[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	o.delivery.Lock()
	defer o.delivery.Unlock()

	o.mu.Lock()
	id := o.nextID
	o.nextID++
	o.subscribers[id] = fn
	current := o.value
	o.mu.Unlock()

	fn(current)

	return func() {
		o.mu.Lock()
		delete(o.subscribers, id)
		o.mu.Unlock()
	}
}
