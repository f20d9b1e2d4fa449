package vector

import (
	"iter"
	"slices"
)

// Begin returns the position of the first element.
func (v *Vector[T]) Begin() int {
	return 0
}

// End returns the position one past the last element.
func (v *Vector[T]) End() int {
	return v.size
}

// Iterator walks the elements of a vector in forward or reverse order.
//
// Both directions advance the same forward step counter; a reverse iterator maps
// step k to index Size()-1-k. Iterating while the vector changes size is undefined.
type Iterator[T any] struct {
	v       *Vector[T]
	step    int
	reverse bool
}

// Iter returns an iterator positioned before the first element.
func (v *Vector[T]) Iter() *Iterator[T] {
	return &Iterator[T]{v: v, step: -1}
}

// ReverseIter returns an iterator positioned after the last element, walking towards the first.
func (v *Vector[T]) ReverseIter() *Iterator[T] {
	return &Iterator[T]{v: v, step: -1, reverse: true}
}

// Next advances the iterator and reports whether an element is available.
func (it *Iterator[T]) Next() bool {
	if it.step+1 >= it.v.size {
		it.step = it.v.size
		return false
	}

	it.step++
	return true
}

// Index returns the vector index of the current element.
func (it *Iterator[T]) Index() int {
	if it.reverse {
		return it.v.size - 1 - it.step
	}
	return it.step
}

// Value returns the current element. Only valid after Next returned true.
func (it *Iterator[T]) Value() T {
	return it.v.elements[it.Index()]
}

// Set overwrites the current element. Only valid after Next returned true.
func (it *Iterator[T]) Set(value T) {
	it.v.elements[it.Index()] = value
}

// All yields index/element pairs from first to last.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		it := v.Iter()
		for it.Next() {
			if !yield(it.Index(), it.Value()) {
				return
			}
		}
	}
}

// Backward yields index/element pairs from last to first.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		it := v.ReverseIter()
		for it.Next() {
			if !yield(it.Index(), it.Value()) {
				return
			}
		}
	}
}

// Values returns a copy of the live elements.
func (v *Vector[T]) Values() []T {
	return slices.Clone(v.elements[:v.size])
}
