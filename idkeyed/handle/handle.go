package handle

import (
	"iter"
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// Handle is an opaque identity tag assigned at insertion time. Where
// an address-based identity token is only valid while the runtime
// keeps the object in place, a handle names the insertion itself, so
// it stays valid regardless of how the stored object moves around.
// Handles are comparable and usable as map keys.
type Handle struct {
	id ulid.ULID
}

// String implements fmt.Stringer.
func (h Handle) String() string {
	return h.id.String()
}

// Map associates monotonically-assigned handles with stored objects.
// Inserting the same object twice yields two independent entries with
// two distinct handles. Stored objects are retained until deleted.
//
// Not safe for concurrent use.
type Map[T any] struct {
	entries map[Handle]T
	order   []Handle
	entropy *ulid.MonotonicEntropy
}

func NewMap[T any]() *Map[T] {
	return &Map[T]{
		entries: make(map[Handle]T),
		entropy: ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
	}
}

// Insert stores obj and returns the freshly assigned handle, the only
// way to refer to this entry later.
func (m *Map[T]) Insert(obj T) Handle {
	h := Handle{id: ulid.MustNew(ulid.Now(), m.entropy)}
	m.entries[h] = obj
	m.order = append(m.order, h)
	return h
}

// Get returns the object stored under h, or ErrHandleNotFound.
func (m *Map[T]) Get(h Handle) (T, error) {
	obj, ok := m.entries[h]
	if !ok {
		var zero T
		return zero, ErrHandleNotFound
	}
	return obj, nil
}

// Delete removes the entry for h, releasing the stored object.
// Returns ErrHandleNotFound if no entry exists.
func (m *Map[T]) Delete(h Handle) error {
	if _, ok := m.entries[h]; !ok {
		return ErrHandleNotFound
	}
	delete(m.entries, h)
	for i, candidate := range m.order {
		if candidate == h {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

// Has reports whether an entry exists for h.
func (m *Map[T]) Has(h Handle) bool {
	_, ok := m.entries[h]
	return ok
}

// Len returns the number of entries.
func (m *Map[T]) Len() int {
	return len(m.entries)
}

// All returns a fresh sequence over handle/object pairs, in insertion
// order.
func (m *Map[T]) All() iter.Seq2[Handle, T] {
	return func(yield func(Handle, T) bool) {
		for _, h := range m.order {
			if !yield(h, m.entries[h]) {
				return
			}
		}
	}
}
