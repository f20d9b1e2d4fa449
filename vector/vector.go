// Package vector provides Vector, a generic growable array with explicit capacity control.
//
// A Vector owns a contiguous backing buffer of Capacity slots of which the first
// Size hold live elements. Appends double the buffer when it is full; nothing
// shrinks it except Reduce and Clear. The zero value is an empty vector with no
// buffer, which is also the state a vector is left in after Move.
package vector

import (
	"fmt"
	"math"

	"github.com/biiclasses/bii/container"
)

const (
	// DefaultCapacity is the capacity of a vector built by New and restored by Clear.
	DefaultCapacity = 10

	// MinGrowCapacity is the capacity a buffer-less vector grows to, since doubling zero stays zero.
	MinGrowCapacity = 1
)

// Vector is a dynamically-resizable sequence of T backed by an exclusively owned buffer.
// A Vector is not safe for concurrent use.
type Vector[T any] struct {
	// elements is the backing buffer; len(elements) is the capacity.
	// Slots at and after size hold the zero value.
	elements []T
	size     int
}

// New returns an empty vector with DefaultCapacity.
func New[T any]() *Vector[T] {
	return &Vector[T]{elements: make([]T, DefaultCapacity)}
}

// NewSized returns an empty vector with the given capacity.
func NewSized[T any](capacity int) (*Vector[T], error) {
	if capacity < 0 {
		return nil, fmt.Errorf("%w: capacity %d is negative", container.ErrInvalidArgument, capacity)
	}

	return &Vector[T]{elements: make([]T, capacity)}, nil
}

// NewFilled returns a vector holding n copies of value, with room for n more.
func NewFilled[T any](n int, value T) (*Vector[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: fill count %d is negative", container.ErrInvalidArgument, n)
	}
	if n > math.MaxInt/2 {
		return nil, fmt.Errorf("%w: fill count %d is too large", container.ErrInvalidArgument, n)
	}

	v := &Vector[T]{elements: make([]T, 2*n), size: n}
	for i := 0; i < n; i++ {
		v.elements[i] = value
	}

	return v, nil
}

// Of returns a vector holding values in order.
func Of[T any](values ...T) *Vector[T] {
	v := &Vector[T]{elements: make([]T, max(DefaultCapacity, len(values)))}
	v.size = copy(v.elements, values)
	return v
}

// Size returns the number of elements.
func (v *Vector[T]) Size() int {
	return v.size
}

// Capacity returns the number of allocated slots.
func (v *Vector[T]) Capacity() int {
	return len(v.elements)
}

// Empty reports whether the vector holds no elements.
func (v *Vector[T]) Empty() bool {
	return v.size == 0
}

// Open returns the number of slots that can be filled before the next reallocation.
func (v *Vector[T]) Open() int {
	return len(v.elements) - v.size
}

// Clone returns a deep copy with the same elements and capacity.
func (v *Vector[T]) Clone() *Vector[T] {
	c := &Vector[T]{elements: make([]T, len(v.elements)), size: v.size}
	copy(c.elements, v.elements[:v.size])
	return c
}

// CopyFrom replaces the contents of v with a deep copy of src.
func (v *Vector[T]) CopyFrom(src *Vector[T]) {
	if src == v {
		return
	}

	c := src.Clone()
	v.elements, v.size = c.elements, c.size
}

// Move transfers the buffer of v to a new vector and leaves v as the zero value.
func (v *Vector[T]) Move() *Vector[T] {
	moved := &Vector[T]{elements: v.elements, size: v.size}
	v.elements, v.size = nil, 0
	return moved
}

// MoveFrom takes the buffer of src, dropping the previous contents of v.
// src is left as the zero value.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	if src == v {
		return
	}

	v.elements, v.size = src.elements, src.size
	src.elements, src.size = nil, 0
}

// SwapContents exchanges the buffers of a and b.
func SwapContents[T any](a, b *Vector[T]) {
	a.elements, b.elements = b.elements, a.elements
	a.size, b.size = b.size, a.size
}

// resize reallocates the buffer to exactly capacity slots, keeping the live elements.
// capacity must not be less than size.
func (v *Vector[T]) resize(capacity int) {
	elements := make([]T, capacity)
	copy(elements, v.elements[:v.size])
	v.elements = elements
}

// ensureCapacity doubles the buffer when there is no open slot left.
func (v *Vector[T]) ensureCapacity() {
	if v.size < len(v.elements) {
		return
	}

	next := 2 * len(v.elements)
	if next < MinGrowCapacity {
		next = MinGrowCapacity
	}
	v.resize(next)
}
