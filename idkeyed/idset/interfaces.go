package idset

import "iter"

// Container is the read surface of a set-like container. The
// relational and algebraic operators on Set accept any Container, but
// only another identity-keyed Set is a valid operand: membership in a
// value-based set means something else entirely, so mixing the two is
// a programming error and is rejected with ErrTypeMismatch instead of
// being answered with a meaningless result.
type Container[T any] interface {
	Len() int
	Contains(item T) bool
	All() iter.Seq[T]
}
