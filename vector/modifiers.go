package vector

import (
	"fmt"
	"math"

	"github.com/biiclasses/bii/container"
)

// AddBack appends value, doubling the capacity first when the vector is full.
func (v *Vector[T]) AddBack(value T) {
	v.ensureCapacity()
	v.elements[v.size] = value
	v.size++
}

// RemoveBack removes and returns the last element. The capacity is unchanged.
func (v *Vector[T]) RemoveBack() (T, error) {
	if v.size == 0 {
		var zero T
		return zero, fmt.Errorf("%w: remove back", container.ErrEmptyContainer)
	}

	v.size--
	value := v.elements[v.size]
	var zero T
	v.elements[v.size] = zero
	return value, nil
}

// Remove deletes the element at position and shifts the following elements left.
func (v *Vector[T]) Remove(position int) error {
	if err := v.checkPosition("remove", position); err != nil {
		return err
	}

	copy(v.elements[position:v.size], v.elements[position+1:v.size])
	v.size--
	var zero T
	v.elements[v.size] = zero
	return nil
}

// Insert places value at position, shifting the element there and all after it right.
// position must refer to an existing element, so inserting into an empty vector fails.
func (v *Vector[T]) Insert(value T, position int) error {
	if err := v.checkPosition("insert", position); err != nil {
		return err
	}

	v.ensureCapacity()
	copy(v.elements[position+1:v.size+1], v.elements[position:v.size])
	v.elements[position] = value
	v.size++
	return nil
}

// Merge appends the elements of other in order.
// The capacity grows by exactly the shortfall when other does not fit.
func (v *Vector[T]) Merge(other *Vector[T]) {
	if other == nil || other.size == 0 {
		return
	}

	n := other.size
	if n > v.Open() {
		v.resize(len(v.elements) + n - v.Open())
	}

	// other may be v itself; its first n elements are untouched by the copy.
	copy(v.elements[v.size:v.size+n], other.elements[:n])
	v.size += n
}

// InnerVec returns a new vector holding copies of the elements in [first, second).
// Both bounds may range over [Begin, End].
func (v *Vector[T]) InnerVec(first, second int) (*Vector[T], error) {
	if v.size == 0 {
		return nil, fmt.Errorf("%w: inner vector", container.ErrEmptyContainer)
	}
	if first < 0 || first > v.size {
		return nil, fmt.Errorf("%w: inner vector first bound %d with size %d", container.ErrOutOfRange, first, v.size)
	}
	if second < 0 || second > v.size {
		return nil, fmt.Errorf("%w: inner vector second bound %d with size %d", container.ErrOutOfRange, second, v.size)
	}
	if first > second {
		return nil, fmt.Errorf("%w: inner vector bounds %d > %d", container.ErrInvalidOrder, first, second)
	}

	inner := New[T]()
	for i := first; i < second; i++ {
		inner.AddBack(v.elements[i])
	}

	return inner, nil
}

// Swap exchanges the elements at first and second in place.
func (v *Vector[T]) Swap(first, second int) error {
	if err := v.checkPosition("swap", first); err != nil {
		return err
	}
	if err := v.checkPosition("swap", second); err != nil {
		return err
	}

	v.elements[first], v.elements[second] = v.elements[second], v.elements[first]
	return nil
}

// Reserve grows the capacity by extra slots beyond the current capacity.
func (v *Vector[T]) Reserve(extra int) error {
	if extra <= 0 {
		return fmt.Errorf("%w: reserve %d", container.ErrInvalidArgument, extra)
	}
	if extra > math.MaxInt-len(v.elements) {
		return fmt.Errorf("%w: reserve %d overflows capacity %d", container.ErrInvalidArgument, extra, len(v.elements))
	}

	v.resize(len(v.elements) + extra)
	return nil
}

// Reduce shrinks the capacity to the current size.
func (v *Vector[T]) Reduce() {
	v.resize(v.size)
}

// Clear drops every element and restores DefaultCapacity.
func (v *Vector[T]) Clear() {
	v.elements = make([]T, DefaultCapacity)
	v.size = 0
}

func (v *Vector[T]) checkPosition(op string, position int) error {
	if position < 0 || position >= v.size {
		return fmt.Errorf("%w: %s position %d with size %d", container.ErrOutOfRange, op, position, v.size)
	}
	return nil
}
