package idmap

import (
	"iter"

	"github.com/hashicorp/go-multierror"

	"github.com/krew-solutions/idkey-collections-go/idkeyed/identity"
	"github.com/krew-solutions/idkey-collections-go/idkeyed/option"
)

type entry[K, V any] struct {
	key   K
	value V
}

// Map is a mapping whose keys are compared by object identity rather
// than by value: two separately allocated keys with equal contents
// are two independent entries. The key object is retained alongside
// its value for as long as the entry exists, both for iteration and
// to keep the key's identity token valid.
//
// Keys must be of a reference kind; see identity.TokenOf.
// Not safe for concurrent use.
type Map[K, V any] struct {
	entries *identity.Registry[entry[K, V]]
}

func New[K, V any]() *Map[K, V] {
	return &Map[K, V]{entries: identity.NewRegistry[entry[K, V]]()}
}

// Set associates value with the identity of key. Setting the same key
// object again silently overwrites the previous value.
func (m *Map[K, V]) Set(key K, value V) {
	m.entries.Put(identity.TokenOf(key), entry[K, V]{key: key, value: value})
}

// Get returns the value stored for key, or ErrKeyNotFound if no entry
// exists for the key's identity.
func (m *Map[K, V]) Get(key K) (V, error) {
	e, ok := m.entries.Get(identity.TokenOf(key))
	if !ok {
		var zero V
		return zero, ErrKeyNotFound
	}
	return e.value, nil
}

// Lookup returns Some(value) for a present key and Nothing otherwise,
// for callers that prefer an explicit absent marker over an error.
func (m *Map[K, V]) Lookup(key K) option.Option[V] {
	e, ok := m.entries.Get(identity.TokenOf(key))
	if !ok {
		return option.Nothing[V]()
	}
	return option.Some(e.value)
}

// Delete removes the entry for key, releasing the retained key object.
// Returns ErrKeyNotFound if no entry exists.
func (m *Map[K, V]) Delete(key K) error {
	if !m.entries.Delete(identity.TokenOf(key)) {
		return ErrKeyNotFound
	}
	return nil
}

// DeleteAll removes every given key. Present keys are removed even
// when others are missing; the missing ones are reported together as
// a multierror of ErrKeyNotFound.
func (m *Map[K, V]) DeleteAll(keys ...K) error {
	var result *multierror.Error
	for _, key := range keys {
		if err := m.Delete(key); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

// Has reports whether an entry exists for the key's identity.
func (m *Map[K, V]) Has(key K) bool {
	return m.entries.Has(identity.TokenOf(key))
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return m.entries.Len()
}

// Keys returns a fresh sequence over the original key objects, in
// insertion order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, e := range m.entries.All() {
			if !yield(e.key) {
				return
			}
		}
	}
}

// Values returns a fresh sequence over the stored values, in
// insertion order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, e := range m.entries.All() {
			if !yield(e.value) {
				return
			}
		}
	}
}

// All returns a fresh sequence over key/value pairs, in insertion
// order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range m.entries.All() {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}
