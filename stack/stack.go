// Package stack provides Stack, a generic last-in-first-out container built from linked nodes.
//
// Ownership runs strictly from the top of the stack downwards: the stack holds the
// top node and each node holds the node below it. The upward link on every node is
// navigational only and lets whole-stack operations walk bottom to top without
// recursion or extra allocation.
package stack

import (
	"fmt"

	"github.com/biiclasses/bii/container"
	"github.com/samber/mo"
)

type node[T any] struct {
	value T
	below *node[T]
	above *node[T]
}

// Stack is a LIFO sequence of T. The zero value is an empty stack ready to use.
// A Stack is not safe for concurrent use.
type Stack[T any] struct {
	top  *node[T]
	size int
}

// New returns an empty stack.
func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Of returns a stack with values pushed in order, so the last value is on top.
func Of[T any](values ...T) *Stack[T] {
	s := New[T]()
	for _, v := range values {
		s.Push(v)
	}
	return s
}

// Size returns the number of elements.
func (s *Stack[T]) Size() int {
	return s.size
}

// Empty reports whether the stack holds no elements.
func (s *Stack[T]) Empty() bool {
	return s.size == 0
}

// Push places value on top of the stack.
func (s *Stack[T]) Push(value T) {
	n := &node[T]{value: value, below: s.top}
	if s.top != nil {
		s.top.above = n
	}
	s.top = n
	s.size++
}

// Pull removes and returns the top element.
func (s *Stack[T]) Pull() (T, error) {
	if s.size == 0 {
		var zero T
		return zero, fmt.Errorf("%w: pull", container.ErrEmptyContainer)
	}

	n := s.top
	s.top = n.below
	if s.top != nil {
		s.top.above = nil
	}
	n.below = nil
	s.size--
	return n.value, nil
}

func (s *Stack[T]) peek(op string) (*T, error) {
	if s.size == 0 {
		return nil, fmt.Errorf("%w: %s", container.ErrEmptyContainer, op)
	}
	return &s.top.value, nil
}

// Top returns the top element without removing it.
func (s *Stack[T]) Top() (T, error) {
	p, err := s.peek("top")
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// TopMut returns a pointer to the top element. The pointer stays valid until that element is pulled.
func (s *Stack[T]) TopMut() (*T, error) {
	return s.peek("top")
}

// Peek returns the top element, or None when the stack is empty.
func (s *Stack[T]) Peek() mo.Option[T] {
	if s.size == 0 {
		return mo.None[T]()
	}
	return mo.Some(s.top.value)
}

// bottom returns the lowest node, or nil for an empty stack.
func (s *Stack[T]) bottom() *node[T] {
	n := s.top
	for n != nil && n.below != nil {
		n = n.below
	}
	return n
}

// PushStack pushes the elements of other from its bottom to its top,
// so the former top of other ends up on top of s. other is not modified.
func (s *Stack[T]) PushStack(other *Stack[T]) {
	if other == nil || other.size == 0 {
		return
	}

	// Counting steps keeps s.PushStack(s) finite: the old top gains an upward link mid-walk.
	n := other.bottom()
	for count := other.size; count > 0; count-- {
		s.Push(n.value)
		n = n.above
	}
}

// Clear drops every element, unlinking nodes one at a time.
func (s *Stack[T]) Clear() {
	n := s.top
	for n != nil {
		below := n.below
		n.below, n.above = nil, nil
		n = below
	}
	s.top, s.size = nil, 0
}

// Clone returns an independent copy with the same elements in the same order.
func (s *Stack[T]) Clone() *Stack[T] {
	c := New[T]()
	c.PushStack(s)
	return c
}

// CopyFrom replaces the contents of s with a copy of src.
func (s *Stack[T]) CopyFrom(src *Stack[T]) {
	if src == s {
		return
	}

	c := src.Clone()
	s.Clear()
	s.top, s.size = c.top, c.size
}

// Move transfers the node chain of s to a new stack and leaves s empty.
func (s *Stack[T]) Move() *Stack[T] {
	moved := &Stack[T]{top: s.top, size: s.size}
	s.top, s.size = nil, 0
	return moved
}

// MoveFrom takes the node chain of src, dropping the previous contents of s.
// src is left empty.
func (s *Stack[T]) MoveFrom(src *Stack[T]) {
	if src == s {
		return
	}

	s.Clear()
	s.top, s.size = src.top, src.size
	src.top, src.size = nil, 0
}
