package vector

import (
	"fmt"

	"github.com/biiclasses/bii/container"
	"github.com/samber/mo"
)

// at is the single bounds-checked accessor behind every read and write path.
func (v *Vector[T]) at(op string, index int) (*T, error) {
	if index < 0 || index >= v.size {
		return nil, fmt.Errorf("%w: %s index %d with size %d", container.ErrOutOfRange, op, index, v.size)
	}
	return &v.elements[index], nil
}

func (v *Vector[T]) edge(op string, last bool) (*T, error) {
	if v.size == 0 {
		return nil, fmt.Errorf("%w: %s", container.ErrEmptyContainer, op)
	}
	if last {
		return v.at(op, v.size-1)
	}
	return v.at(op, 0)
}

func deref[T any](p *T, err error) (T, error) {
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// Check returns the element at index.
func (v *Vector[T]) Check(index int) (T, error) {
	return deref(v.at("check", index))
}

// CheckMut returns a pointer to the element at index.
// The pointer is invalidated by any operation that reallocates the buffer.
func (v *Vector[T]) CheckMut(index int) (*T, error) {
	return v.at("check", index)
}

// Get returns the element at index, or None when index is out of range.
func (v *Vector[T]) Get(index int) mo.Option[T] {
	p, err := v.at("get", index)
	if err != nil {
		return mo.None[T]()
	}
	return mo.Some(*p)
}

// Front returns the first element.
func (v *Vector[T]) Front() (T, error) {
	return deref(v.edge("front", false))
}

// FrontMut returns a pointer to the first element.
func (v *Vector[T]) FrontMut() (*T, error) {
	return v.edge("front", false)
}

// Back returns the last element.
func (v *Vector[T]) Back() (T, error) {
	return deref(v.edge("back", true))
}

// BackMut returns a pointer to the last element.
func (v *Vector[T]) BackMut() (*T, error) {
	return v.edge("back", true)
}
