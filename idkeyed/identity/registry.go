package identity

import (
	"container/list"
	"iter"
)

type registryEntry[T any] struct {
	tok Token
	obj T
}

// Registry maps identity tokens to retained objects. It is the shared
// primitive under both identity-keyed containers: while an entry
// exists the stored object stays reachable, so its address cannot be
// reclaimed and handed to another allocation, and the token stays
// valid. Entries keep their insertion position; overwriting an
// existing token keeps the original position.
//
// Not safe for concurrent use.
type Registry[T any] struct {
	index map[Token]*list.Element
	order *list.List
}

func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		index: make(map[Token]*list.Element),
		order: list.New(),
	}
}

// Put stores obj under tok, replacing any previous entry.
func (r *Registry[T]) Put(tok Token, obj T) {
	if elem, ok := r.index[tok]; ok {
		elem.Value = registryEntry[T]{tok: tok, obj: obj}
		return
	}
	r.index[tok] = r.order.PushBack(registryEntry[T]{tok: tok, obj: obj})
}

func (r *Registry[T]) Get(tok Token) (T, bool) {
	elem, ok := r.index[tok]
	if !ok {
		var zero T
		return zero, false
	}
	return elem.Value.(registryEntry[T]).obj, true
}

// Delete removes the entry for tok and reports whether it existed.
func (r *Registry[T]) Delete(tok Token) bool {
	elem, ok := r.index[tok]
	if !ok {
		return false
	}
	delete(r.index, tok)
	r.order.Remove(elem)
	return true
}

func (r *Registry[T]) Has(tok Token) bool {
	_, ok := r.index[tok]
	return ok
}

func (r *Registry[T]) Len() int {
	return len(r.index)
}

// All returns a fresh sequence over all entries in insertion order.
func (r *Registry[T]) All() iter.Seq2[Token, T] {
	return func(yield func(Token, T) bool) {
		for elem := r.order.Front(); elem != nil; elem = elem.Next() {
			e := elem.Value.(registryEntry[T])
			if !yield(e.tok, e.obj) {
				return
			}
		}
	}
}
