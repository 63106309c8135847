package idset

import (
	"iter"
	"slices"
	"testing"

	"github.com/icrowley/fake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type model struct {
	Name string
}

// valueSet is a value-equality based container used to exercise the
// operand kind check.
type valueSet struct {
	items []*model
}

func (s *valueSet) Len() int { return len(s.items) }

func (s *valueSet) Contains(item *model) bool {
	for _, candidate := range s.items {
		if *candidate == *item {
			return true
		}
	}
	return false
}

func (s *valueSet) All() iter.Seq[*model] {
	return slices.Values(s.items)
}

func TestAddAndContains(t *testing.T) {
	s := New[*model]()
	item := &model{Name: "x"}

	assert.False(t, s.Contains(item))
	s.Add(item)
	assert.True(t, s.Contains(item))
	assert.False(t, s.Contains(&model{Name: "x"}))
}

func TestAddIsIdempotent(t *testing.T) {
	s := New[*model]()
	item := &model{Name: "x"}
	s.Add(item)
	s.Add(item)
	assert.Equal(t, 1, s.Len())
}

func TestEqualByValueItemsAreDistinctMembers(t *testing.T) {
	name := fake.Word()
	a := &model{Name: name}
	b := &model{Name: name}
	assert.Equal(t, *a, *b)

	s := Of(a, b)
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains(a))
	assert.True(t, s.Contains(b))
}

func TestDiscard(t *testing.T) {
	s := New[*model]()
	item := &model{Name: "x"}
	s.Add(item)

	s.Discard(item)
	assert.False(t, s.Contains(item))
	assert.Equal(t, 0, s.Len())

	// Absence is a valid outcome, never an error.
	assert.NotPanics(t, func() { s.Discard(item) })
}

func TestAll(t *testing.T) {
	items := []*model{{Name: "a"}, {Name: "b"}, {Name: "c"}}
	s := Of(items...)

	assert.Equal(t, items, slices.Collect(s.All()))
	// Restartable: a second pass yields the same members.
	assert.Equal(t, items, slices.Collect(s.All()))
}

func TestUnionIntersectionDifference(t *testing.T) {
	x := &model{Name: "x"}
	y := &model{Name: "y"}
	z := &model{Name: "z"}
	a := Of(x, y)
	b := Of(y, z)

	union, err := a.Union(b)
	require.NoError(t, err)
	assert.Equal(t, 3, union.Len())
	assert.True(t, union.Contains(x))
	assert.True(t, union.Contains(y))
	assert.True(t, union.Contains(z))

	inter, err := a.Intersection(b)
	require.NoError(t, err)
	assert.Equal(t, 1, inter.Len())
	assert.True(t, inter.Contains(y))

	diff, err := a.Difference(b)
	require.NoError(t, err)
	assert.Equal(t, 1, diff.Len())
	assert.True(t, diff.Contains(x))
}

func TestBinaryOperatorsDoNotMutateOperands(t *testing.T) {
	x := &model{Name: "x"}
	y := &model{Name: "y"}
	z := &model{Name: "z"}
	a := Of(x, y)
	b := Of(y, z)

	_, err := a.Union(b)
	require.NoError(t, err)
	_, err = a.Intersection(b)
	require.NoError(t, err)
	_, err = a.Difference(b)
	require.NoError(t, err)

	assert.Equal(t, []*model{x, y}, slices.Collect(a.All()))
	assert.Equal(t, []*model{y, z}, slices.Collect(b.All()))
}

func TestBinaryOperatorsAreDeterministic(t *testing.T) {
	a := Of(&model{Name: "x"}, &model{Name: "y"})
	b := Of(&model{Name: "z"})

	first, err := a.Union(b)
	require.NoError(t, err)
	second, err := a.Union(b)
	require.NoError(t, err)

	equal, err := first.Equal(second)
	require.NoError(t, err)
	assert.True(t, equal)
}

func TestSubsetOf(t *testing.T) {
	x := &model{Name: "x"}
	y := &model{Name: "y"}
	a := Of(x)
	b := Of(x, y)

	ok, err := a.SubsetOf(b)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = b.SubsetOf(a)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSubsetOfIsReflexive(t *testing.T) {
	a := Of(&model{Name: "x"})
	ok, err := a.SubsetOf(a)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestEmptySetIsSubsetOfEverything(t *testing.T) {
	empty := New[*model]()

	ok, err := empty.SubsetOf(Of(&model{Name: "x"}))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = empty.SubsetOf(New[*model]())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestProperSubsetAndSuperset(t *testing.T) {
	x := &model{Name: "x"}
	y := &model{Name: "y"}
	a := Of(x)
	b := Of(x, y)

	ok, err := a.ProperSubsetOf(b)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = a.ProperSubsetOf(a)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = b.SupersetOf(a)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = b.ProperSupersetOf(b)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEqual(t *testing.T) {
	x := &model{Name: "x"}
	y := &model{Name: "y"}

	equal, err := Of(x, y).Equal(Of(y, x))
	require.NoError(t, err)
	assert.True(t, equal)

	equal, err = Of(x).Equal(Of(y))
	require.NoError(t, err)
	assert.False(t, equal)
}

func TestValueBasedOperandIsRejected(t *testing.T) {
	x := &model{Name: "x"}
	s := Of(x)
	other := &valueSet{items: []*model{x}}

	_, err := s.SubsetOf(other)
	assert.ErrorIs(t, err, ErrTypeMismatch)
	_, err = s.ProperSubsetOf(other)
	assert.ErrorIs(t, err, ErrTypeMismatch)
	_, err = s.SupersetOf(other)
	assert.ErrorIs(t, err, ErrTypeMismatch)
	_, err = s.ProperSupersetOf(other)
	assert.ErrorIs(t, err, ErrTypeMismatch)
	_, err = s.Equal(other)
	assert.ErrorIs(t, err, ErrTypeMismatch)
	_, err = s.Union(other)
	assert.ErrorIs(t, err, ErrTypeMismatch)
	_, err = s.Intersection(other)
	assert.ErrorIs(t, err, ErrTypeMismatch)
	_, err = s.Difference(other)
	assert.ErrorIs(t, err, ErrTypeMismatch)
}
