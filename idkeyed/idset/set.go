package idset

import (
	"iter"

	"github.com/krew-solutions/idkey-collections-go/idkeyed/identity"
)

// Set is a set whose membership is decided by object identity rather
// than by value: two separately allocated elements with equal
// contents are two distinct members. Elements are retained for as
// long as they stay in the set, which keeps their identity tokens
// valid.
//
// Elements must be of a reference kind; see identity.TokenOf.
// Not safe for concurrent use.
type Set[T any] struct {
	elems *identity.Registry[T]
}

var _ Container[any] = (*Set[any])(nil)

func New[T any]() *Set[T] {
	return &Set[T]{elems: identity.NewRegistry[T]()}
}

// Of creates a set containing the given items.
func Of[T any](items ...T) *Set[T] {
	s := New[T]()
	for _, item := range items {
		s.Add(item)
	}
	return s
}

// Add inserts item. Adding the same object instance again is a no-op.
func (s *Set[T]) Add(item T) {
	s.elems.Put(identity.TokenOf(item), item)
}

// Discard removes item if present. Unlike a mapping delete, absence
// is a valid outcome here, not an error: Discard ensures the item is
// not a member.
func (s *Set[T]) Discard(item T) {
	s.elems.Delete(identity.TokenOf(item))
}

// Contains reports whether the exact object instance is a member.
func (s *Set[T]) Contains(item T) bool {
	return s.elems.Has(identity.TokenOf(item))
}

// Len returns the number of members.
func (s *Set[T]) Len() int {
	return s.elems.Len()
}

// All returns a fresh sequence over the members, in insertion order.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range s.elems.All() {
			if !yield(item) {
				return
			}
		}
	}
}

// operand narrows a Container operand to an identity-keyed set.
func (s *Set[T]) operand(other Container[T]) (*Set[T], error) {
	o, ok := other.(*Set[T])
	if !ok {
		return nil, ErrTypeMismatch
	}
	return o, nil
}

// SubsetOf reports whether every member of s is a member of other.
// The empty set is a subset of everything.
func (s *Set[T]) SubsetOf(other Container[T]) (bool, error) {
	o, err := s.operand(other)
	if err != nil {
		return false, err
	}
	return s.subsetOf(o), nil
}

// ProperSubsetOf reports whether s is a subset of other and the two
// are not equal.
func (s *Set[T]) ProperSubsetOf(other Container[T]) (bool, error) {
	o, err := s.operand(other)
	if err != nil {
		return false, err
	}
	return s.subsetOf(o) && s.Len() != o.Len(), nil
}

// SupersetOf reports whether every member of other is a member of s.
func (s *Set[T]) SupersetOf(other Container[T]) (bool, error) {
	o, err := s.operand(other)
	if err != nil {
		return false, err
	}
	return o.subsetOf(s), nil
}

// ProperSupersetOf reports whether s is a superset of other and the
// two are not equal.
func (s *Set[T]) ProperSupersetOf(other Container[T]) (bool, error) {
	o, err := s.operand(other)
	if err != nil {
		return false, err
	}
	return o.subsetOf(s) && s.Len() != o.Len(), nil
}

// Equal reports whether s and other hold exactly the same object
// instances.
func (s *Set[T]) Equal(other Container[T]) (bool, error) {
	o, err := s.operand(other)
	if err != nil {
		return false, err
	}
	return s.Len() == o.Len() && s.subsetOf(o), nil
}

func (s *Set[T]) subsetOf(o *Set[T]) bool {
	for tok := range s.elems.All() {
		if !o.elems.Has(tok) {
			return false
		}
	}
	return true
}

// Union returns a new set with the members of both operands. Neither
// operand is mutated. A member present in both contributes the
// other's stored reference, which is the same instance by definition.
func (s *Set[T]) Union(other Container[T]) (*Set[T], error) {
	o, err := s.operand(other)
	if err != nil {
		return nil, err
	}
	out := New[T]()
	for tok, item := range s.elems.All() {
		out.elems.Put(tok, item)
	}
	for tok, item := range o.elems.All() {
		out.elems.Put(tok, item)
	}
	return out, nil
}

// Intersection returns a new set with the members present in both
// operands, taken from s. Neither operand is mutated.
func (s *Set[T]) Intersection(other Container[T]) (*Set[T], error) {
	o, err := s.operand(other)
	if err != nil {
		return nil, err
	}
	out := New[T]()
	for tok, item := range s.elems.All() {
		if o.elems.Has(tok) {
			out.elems.Put(tok, item)
		}
	}
	return out, nil
}

// Difference returns a new set with the members of s that are not
// members of other. Neither operand is mutated.
func (s *Set[T]) Difference(other Container[T]) (*Set[T], error) {
	o, err := s.operand(other)
	if err != nil {
		return nil, err
	}
	out := New[T]()
	for tok, item := range s.elems.All() {
		if !o.elems.Has(tok) {
			out.elems.Put(tok, item)
		}
	}
	return out, nil
}
