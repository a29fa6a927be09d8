// Package state provides a small immutable-update state container.
//
// Values are replaced wholesale by Update; subscribers are notified
// synchronously, in subscription order, after the new value is installed.
// Subscribers must not call Update on the same container.
package state

import "sync"

// Listener observes a state transition.
type Listener[S any] func(prev, next S)

type Container[S any] struct {
	mu        sync.Mutex
	notify    sync.Mutex
	value     S
	nextID    int
	listeners map[int]Listener[S]
	order     []int
}

// New returns a container holding initial.
func New[S any](initial S) *Container[S] {
	return &Container[S]{value: initial, listeners: map[int]Listener[S]{}}
}

// Get returns the current value.
func (c *Container[S]) Get() S {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Update replaces the value with fn(current) and notifies subscribers.
// It returns the installed value.
func (c *Container[S]) Update(fn func(S) S) S {
	c.notify.Lock()
	defer c.notify.Unlock()

	c.mu.Lock()
	prev := c.value
	next := fn(prev)
	c.value = next
	ls := c.snapshot()
	c.mu.Unlock()

	for _, l := range ls {
		l(prev, next)
	}
	return next
}

// Subscribe registers l and returns a function that removes it.
func (c *Container[S]) Subscribe(l Listener[S]) (unsubscribe func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextID
	c.nextID++
	c.listeners[id] = l
	c.order = append(c.order, id)

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			delete(c.listeners, id)
			for i, v := range c.order {
				if v == id {
					c.order = append(c.order[:i], c.order[i+1:]...)
					break
				}
			}
		})
	}
}

func (c *Container[S]) snapshot() []Listener[S] {
	out := make([]Listener[S], 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.listeners[id])
	}
	return out
}
