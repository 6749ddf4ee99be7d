// Package store provides a single-value observable container.
//
// A Store holds one value and notifies subscribers synchronously when the
// value changes:
//
//	count := store.New(0)
//	unsubscribe := count.Subscribe(func(n int) { handle.Render() })
//	count.Set(5) // subscribers run before Set returns
//	defer unsubscribe()
//
// Stores are created explicitly and live as long as something references
// them. Components that subscribe must also unsubscribe at teardown; the
// component runtime deliberately does not do this for them.
package store

import (
	"reflect"
	"sync"
	"sync/atomic"
)

// Store is an observable value container.
type Store[T any] struct {
	mu    sync.RWMutex
	value T

	subMu  sync.RWMutex
	subs   []subscriber[T]
	nextID uint64

	// equal determines whether a Set actually changed the value.
	// If nil, defaultEquals is used.
	equal func(T, T) bool
}

type subscriber[T any] struct {
	id uint64
	fn func(T)
}

// New creates a store holding the given initial value.
func New[T any](initial T) *Store[T] {
	return &Store[T]{value: initial}
}

// WithEquals configures a custom equality function and returns the store.
// Useful for types where reflect.DeepEqual is too expensive or has the
// wrong semantics.
func (s *Store[T]) WithEquals(fn func(T, T) bool) *Store[T] {
	s.equal = fn
	return s
}

// Get returns the current value.
func (s *Store[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Peek returns the current value without any change observation. With
// explicit subscriptions it behaves like Get; it exists so call sites
// can state that they deliberately do not react to the value.
func (s *Store[T]) Peek() T {
	return s.Get()
}

// Set updates the value and, if it changed, notifies all subscribers
// synchronously before returning.
func (s *Store[T]) Set(value T) {
	s.mu.Lock()
	changed := !s.equals(s.value, value)
	if changed {
		s.value = value
	}
	s.mu.Unlock()

	if changed {
		s.notify(value)
	}
}

// Update atomically reads and rewrites the value via fn, notifying
// subscribers if the result differs.
func (s *Store[T]) Update(fn func(T) T) {
	s.mu.Lock()
	newValue := fn(s.value)
	changed := !s.equals(s.value, newValue)
	if changed {
		s.value = newValue
	}
	s.mu.Unlock()

	if changed {
		s.notify(newValue)
	}
}

// Subscribe registers a callback for value changes and returns its
// unsubscribe function. Callbacks run synchronously on the goroutine
// that called Set.
func (s *Store[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	if fn == nil {
		panic("store: nil subscriber")
	}

	s.subMu.Lock()
	id := atomic.AddUint64(&s.nextID, 1)
	s.subs = append(s.subs, subscriber[T]{id: id, fn: fn})
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// notify runs all subscribers with value. Copy-before-notify so no lock
// is held while callbacks run.
func (s *Store[T]) notify(value T) {
	s.subMu.RLock()
	subs := make([]subscriber[T], len(s.subs))
	copy(subs, s.subs)
	s.subMu.RUnlock()

	for _, sub := range subs {
		sub.fn(value)
	}
}

func (s *Store[T]) equals(a, b T) bool {
	if s.equal != nil {
		return s.equal(a, b)
	}
	return defaultEquals(a, b)
}

// defaultEquals provides type-appropriate equality checking: == for the
// common comparable types, reflect.DeepEqual for everything else.
func defaultEquals[T any](a, b T) bool {
	switch av := any(a).(type) {
	case int:
		return av == any(b).(int)
	case int64:
		return av == any(b).(int64)
	case uint64:
		return av == any(b).(uint64)
	case float64:
		return av == any(b).(float64)
	case string:
		return av == any(b).(string)
	case bool:
		return av == any(b).(bool)
	default:
		return reflect.DeepEqual(a, b)
	}
}
