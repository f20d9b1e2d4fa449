package harness

import (
	"errors"

	"github.com/biiclasses/bii/constant"
	"github.com/biiclasses/bii/container"
	"github.com/biiclasses/bii/stack"
)

var stackSections = []section{
	{constant.StackConstructors, "Constructors", stackConstructors},
	{constant.StackCapacity, "Capacity", stackCapacity},
	{constant.StackModifiers, "Modifiers", stackModifiers},
	{constant.StackElements, "Element Viewing", stackElements},
	{constant.StackOperators, "Operators", stackOperators},
	{constant.StackFriends, "Friends", stackFriends},
	{constant.StackNonMembers, "Non-Members", stackNonMembers},
}

// pile returns a stack with 0..size-1 pushed in order.
func pile(size int) *stack.Stack[int] {
	s := stack.New[int]()
	for i := 0; i < size; i++ {
		s.Push(i)
	}
	return s
}

func stackConstructors(size int, t *tally) {
	s := stack.New[int]()
	t.expect("Default Constructor", s.Empty() && s.Size() == 0, "size %d", s.Size())

	s = pile(size)
	cp := s.Clone()
	t.expect("Copy Constructor", stack.Equal(cp, s), "copy %v differs from %v", cp, s)

	_, _ = cp.Pull()
	t.expect("Copy Constructor (independence)", s.Size() == size, "original shrank to %d", s.Size())

	moved := s.Move()
	t.expect("Move Constructor", moved.Size() == size && s.Empty(), "moved %d, source %d", moved.Size(), s.Size())
}

func stackCapacity(size int, t *tally) {
	s := pile(size)
	t.expect("Size", s.Size() == size, "size %d, want %d", s.Size(), size)
	t.expect("Empty", !s.Empty(), "stack of %d reports empty", s.Size())
}

func stackModifiers(size int, t *tally) {
	s := stack.New[string]()
	for i := 0; i < size; i++ {
		s.Push("Eva")
	}
	t.expect("Push", s.Size() == size, "size %d, want %d", s.Size(), size)

	for i := size; i > 0; i-- {
		if _, err := s.Pull(); err != nil {
			break
		}
	}
	t.expect("Pull", s.Empty(), "size %d after pulling everything", s.Size())

	ints := pile(size)
	ok := true
	for want := size - 1; want >= 0; want-- {
		got, err := ints.Pull()
		ok = ok && err == nil && got == want
	}
	t.expect("Pull (order)", ok, "stack did not pull in reverse push order")

	_, err := ints.Pull()
	t.expect("Pull (empty)", errors.Is(err, container.ErrEmptyContainer), "got %v", err)
}

func stackElements(size int, t *tally) {
	s := stack.New[string]()
	s.Push("Some kind of general message, I suppose")

	t.expect("Top (const)", must(s.Top()) == "Some kind of general message, I suppose", "top %q", must(s.Top()))

	*mustPtr(s.TopMut()) = "Camp Lejeune"
	top, err := s.Pull()
	t.expect("Top (mutable)", err == nil && top == "Camp Lejeune", "pulled %q", top)

	_, err = s.Top()
	t.expect("Top (empty)", errors.Is(err, container.ErrEmptyContainer), "got %v", err)
}

func stackOperators(size int, t *tally) {
	s := stack.New[int]()
	s.Push(-1)

	s.PushStack(pile(size))
	t.expect("+= (stack)", s.Size() == size+1 && must(s.Top()) == size-1,
		"size %d top %d", s.Size(), must(s.Top()))

	assigned := stack.New[int]()
	assigned.CopyFrom(s)
	assigned.Push(99)
	t.expect("Copy Assignment", assigned.Size() == s.Size()+1 && must(s.Top()) == size-1,
		"copy %d original top %d", assigned.Size(), must(s.Top()))

	taken := stack.New[int]()
	taken.MoveFrom(assigned)
	t.expect("Move Assignment", taken.Size() == size+2 && assigned.Empty(),
		"taken %d source %d", taken.Size(), assigned.Size())
}

func stackFriends(size int, t *tally) {
	a, b := pile(size), pile(size)
	t.expect("==", stack.Equal(a, b), "%v != %v", a, b)

	b.Push(size)
	t.expect("!=", !stack.Equal(a, b), "%v == %v", a, b)
}

func stackNonMembers(size int, t *tally) {
	s := pile(size)

	plus := stack.Pushed(s, size)
	t.expect("Stack + Value", plus.Size() == size+1 && must(plus.Top()) == size && s.Size() == size,
		"plus %v", plus)

	joined := stack.Join(s, stack.Of(-1, -2))
	t.expect("Stack + Stack", joined.Size() == size+2 && must(joined.Top()) == -2,
		"joined %v", joined)
}
