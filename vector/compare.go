package vector

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// Equal reports whether a and b hold the same elements in the same order.
func Equal[T comparable](a, b *Vector[T]) bool {
	return slices.Equal(a.elements[:a.size], b.elements[:b.size])
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T any](a, b *Vector[T], eq func(T, T) bool) bool {
	return slices.EqualFunc(a.elements[:a.size], b.elements[:b.size], eq)
}

// Appended returns a copy of v with value added at the back.
func Appended[T any](v *Vector[T], value T) *Vector[T] {
	c := v.Clone()
	c.AddBack(value)
	return c
}

// Join returns a copy of a followed by the elements of b.
func Join[T any](a, b *Vector[T]) *Vector[T] {
	c := a.Clone()
	c.Merge(b)
	return c
}

// String renders the elements as {e0, e1, ...}.
func (v *Vector[T]) String() string {
	parts := lo.Map(v.elements[:v.size], func(e T, _ int) string {
		return fmt.Sprint(e)
	})
	return "{" + strings.Join(parts, ", ") + "}"
}
