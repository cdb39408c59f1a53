package observer

import (
	"sync"

	"github.com/go-leo/gox/slicex"
	"golang.org/x/exp/slices"
)

// Handler reacts to an emitted event.
type Handler[E any] func(e E)

type subscription[E any] struct {
	id      uint64
	handler Handler[E]
	once    bool
}

// Emitter fans events out to subscribed handlers, in the order they subscribed.
// The zero value is ready to use.
type Emitter[E any] struct {
	mu     sync.Mutex
	nextID uint64
	subs   []*subscription[E]
}

func NewEmitter[E any]() *Emitter[E] {
	return &Emitter[E]{}
}

// Subscribe adds handler and returns the id to unsubscribe it with.
// Ids start at zero and are never reused.
func (em *Emitter[E]) Subscribe(handler Handler[E]) uint64 {
	return em.add(handler, false)
}

// Once adds a handler that is removed after it sees its first event.
func (em *Emitter[E]) Once(handler Handler[E]) uint64 {
	return em.add(handler, true)
}

// Unsubscribe removes the handler registered under id and reports whether
// there was one.
func (em *Emitter[E]) Unsubscribe(id uint64) bool {
	em.mu.Lock()
	defer em.mu.Unlock()
	indexes := slicex.IndexesFunc(em.subs, func(sub *subscription[E]) bool {
		return sub.id == id
	})
	if len(indexes) == 0 {
		return false
	}
	em.subs = slicex.DeleteAll(em.subs, indexes...)
	return true
}

// Emit synchronously calls every handler with e. Handlers subscribed or
// removed while Emit runs take effect from the next event.
func (em *Emitter[E]) Emit(e E) {
	em.mu.Lock()
	subs := slices.Clone(em.subs)
	onces := slicex.IndexesFunc(em.subs, func(sub *subscription[E]) bool {
		return sub.once
	})
	if len(onces) > 0 {
		em.subs = slicex.DeleteAll(em.subs, onces...)
	}
	em.mu.Unlock()

	for _, sub := range subs {
		sub.handler(e)
	}
}

// Len returns the number of subscribed handlers.
func (em *Emitter[E]) Len() int {
	em.mu.Lock()
	defer em.mu.Unlock()
	return len(em.subs)
}

func (em *Emitter[E]) add(handler Handler[E], once bool) uint64 {
	if handler == nil {
		panic("observer: nil handler")
	}
	em.mu.Lock()
	defer em.mu.Unlock()
	id := em.nextID
	em.nextID++
	em.subs = append(em.subs, &subscription[E]{id: id, handler: handler, once: once})
	return id
}
