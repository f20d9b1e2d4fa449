package stack

import (
	"fmt"
	"iter"
	"strings"
)

// All yields the elements from top to bottom.
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := s.top; n != nil; n = n.below {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Values returns the elements from top to bottom.
func (s *Stack[T]) Values() []T {
	values := make([]T, 0, s.size)
	for v := range s.All() {
		values = append(values, v)
	}
	return values
}

// Equal reports whether a and b hold the same elements from top to bottom.
func Equal[T comparable](a, b *Stack[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T any](a, b *Stack[T], eq func(T, T) bool) bool {
	if a.size != b.size {
		return false
	}

	for x, y := a.top, b.top; x != nil; x, y = x.below, y.below {
		if !eq(x.value, y.value) {
			return false
		}
	}
	return true
}

// Pushed returns a copy of s with value pushed on top.
func Pushed[T any](s *Stack[T], value T) *Stack[T] {
	c := s.Clone()
	c.Push(value)
	return c
}

// Join returns a copy of a with the elements of b pushed on top, b's top last.
func Join[T any](a, b *Stack[T]) *Stack[T] {
	c := a.Clone()
	c.PushStack(b)
	return c
}

// String renders the elements from top to bottom as {top, ..., bottom}.
func (s *Stack[T]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for n := s.top; n != nil; n = n.below {
		fmt.Fprint(&b, n.value)
		if n.below != nil {
			b.WriteString(", ")
		}
	}
	b.WriteByte('}')
	return b.String()
}
