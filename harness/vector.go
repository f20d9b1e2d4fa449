package harness

import (
	"errors"
	"math/rand/v2"

	"github.com/biiclasses/bii/constant"
	"github.com/biiclasses/bii/container"
	"github.com/biiclasses/bii/vector"
)

var vectorSections = []section{
	{constant.VectorConstructors, "Constructors", vectorConstructors},
	{constant.VectorCapacity, "Capacity", vectorCapacity},
	{constant.VectorModifiers, "Modifiers", vectorModifiers},
	{constant.VectorElements, "Element Viewing", vectorElements},
	{constant.VectorMemory, "Memory Handling", vectorMemory},
	{constant.VectorOperators, "Operators", vectorOperators},
	{constant.VectorIterators, "Iterators", vectorIterators},
	{constant.VectorFriends, "Friends", vectorFriends},
	{constant.VectorNonMembers, "Non-Members", vectorNonMembers},
}

// sequence returns a vector holding 0..size-1 built through AddBack.
func sequence(size int) *vector.Vector[int] {
	v := vector.New[int]()
	for i := 0; i < size; i++ {
		v.AddBack(i)
	}
	return v
}

func vectorConstructors(size int, t *tally) {
	sized, err := vector.NewSized[int](size)
	t.expect("Size Initialization Constructor", err == nil && sized.Capacity() == size,
		"capacity %d, want %d (err %v)", sized.Capacity(), size, err)

	for i := 0; i < size; i++ {
		sized.AddBack(i)
	}

	cp := sized.Clone()
	t.expect("Copy Constructor", vector.Equal(cp, sized) && cp.Capacity() == sized.Capacity(),
		"copy %v differs from %v", cp, sized)

	*mustPtr(cp.FrontMut()) = -1
	t.expect("Copy Constructor (independence)", must(sized.Front()) == 0,
		"writing the copy changed the original front to %d", must(sized.Front()))

	moved := cp.Move()
	t.expect("Move Constructor", moved.Size() == size && cp.Capacity() == 0 && cp.Empty(),
		"moved size %d, source capacity %d", moved.Size(), cp.Capacity())

	fill, err := vector.NewFilled(size, "Eva")
	t.expect("Fill Constructor (A)", err == nil && fill.Size() == size,
		"size %d, want %d (err %v)", fill.Size(), size, err)

	at := rand.IntN(size)
	t.expect("Fill Constructor (B)", must(fill.Check(at)) == "Eva",
		"element %d is %q", at, must(fill.Check(at)))

	list := vector.Of(3, 1, 4, 1, 5)
	t.expect("Initializer Constructor", list.Size() == 5 && must(list.Back()) == 5,
		"got %v", list)
}

func vectorCapacity(size int, t *tally) {
	v, _ := vector.NewSized[int](size)
	t.expect("Capacity", v.Capacity() == size, "capacity %d, want %d", v.Capacity(), size)

	for i := 0; i < size; i++ {
		v.AddBack(i)
	}
	t.expect("Size", v.Size() == size, "size %d, want %d", v.Size(), size)
	t.expect("Empty", !v.Empty(), "vector of %d elements reports empty", v.Size())

	filled, _ := vector.NewFilled(size, "hello")
	t.expect("Open", filled.Open() == size, "open %d, want %d", filled.Open(), size)
}

func vectorModifiers(size int, t *tally) {
	v := sequence(size)
	at := rand.IntN(size)
	t.expect("AddBack", must(v.Check(at)) == at, "element %d is %d", at, must(v.Check(at)))

	for !v.Empty() {
		if err := v.Remove(v.End() - 1); err != nil {
			break
		}
	}
	t.expect("Remove", v.Size() == 0, "size %d after removing everything", v.Size())

	second := vector.New[int]()
	for i := 0; i < size; i++ {
		v.AddBack(i)
		second.AddBack(i + 10000)
	}
	v.Merge(second)
	t.expect("Merge", v.Size() == 2*size && must(v.Back()) == size-1+10000,
		"size %d, want %d", v.Size(), 2*size)

	before := v.Size()
	_, err := v.RemoveBack()
	t.expect("RemoveBack", err == nil && v.Size() == before-1, "size %d, want %d", v.Size(), before-1)

	err = v.Insert(7, v.Begin())
	t.expect("Insert", err == nil && must(v.Check(0)) == 7 && must(v.Check(1)) == 0,
		"front is %d (err %v)", must(v.Front()), err)

	inner, err := v.InnerVec(1, 1+size/2)
	t.expect("InnerVec", err == nil && inner.Size() == size/2 && (size/2 == 0 || must(inner.Front()) == 0),
		"inner %v (err %v)", inner, err)

	_, err = v.InnerVec(v.End(), v.Begin())
	t.expect("InnerVec (order)", errors.Is(err, container.ErrInvalidOrder), "got %v", err)

	last := must(v.Back())
	err = v.Swap(0, v.End()-1)
	t.expect("Swap", err == nil && must(v.Front()) == last && must(v.Back()) == 7,
		"front %d back %d (err %v)", must(v.Front()), must(v.Back()), err)
}

func vectorElements(size int, t *tally) {
	v := sequence(size)
	at := rand.IntN(size)

	t.expect("Check (const)", must(v.Check(at)) == at, "element %d is %d", at, must(v.Check(at)))

	*mustPtr(v.CheckMut(at)) = -at - 1
	t.expect("Check (mutable)", must(v.Check(at)) == -at-1, "element %d is %d", at, must(v.Check(at)))

	_, err := v.Check(v.End())
	t.expect("Check (out of range)", errors.Is(err, container.ErrOutOfRange), "got %v", err)

	t.expect("Front (const)", must(v.Front()) == must(v.Check(0)), "front %d", must(v.Front()))
	*mustPtr(v.FrontMut()) = 42
	t.expect("Front (mutable)", must(v.Check(0)) == 42, "front %d", must(v.Check(0)))

	t.expect("Back (const)", must(v.Back()) == must(v.Check(size-1)), "back %d", must(v.Back()))
	*mustPtr(v.BackMut()) = 43
	t.expect("Back (mutable)", must(v.Check(size-1)) == 43, "back %d", must(v.Check(size-1)))

	_, err = vector.New[int]().Front()
	t.expect("Front (empty)", errors.Is(err, container.ErrEmptyContainer), "got %v", err)
}

func vectorMemory(size int, t *tally) {
	v := vector.New[int]()
	err := v.Reserve(size)
	t.expect("Reserve", err == nil && v.Capacity() == vector.DefaultCapacity+size,
		"capacity %d, want %d", v.Capacity(), vector.DefaultCapacity+size)

	err = v.Reserve(0)
	t.expect("Reserve (invalid)", errors.Is(err, container.ErrInvalidArgument), "got %v", err)

	for i := 0; i < size; i++ {
		v.AddBack(i)
	}
	v.Reduce()
	t.expect("Reduce", v.Capacity() == size && v.Open() == 0, "capacity %d, want %d", v.Capacity(), size)

	v.Clear()
	t.expect("Clear", v.Empty() && v.Capacity() == vector.DefaultCapacity,
		"size %d capacity %d", v.Size(), v.Capacity())
}

func vectorOperators(size int, t *tally) {
	v := vector.New[int]()
	for i := 0; i < size; i++ {
		v.AddBack(i)
	}
	t.expect("+= (value)", v.Size() == size, "size %d", v.Size())

	v.Merge(sequence(size))
	t.expect("+= (vector)", v.Size() == 2*size, "size %d", v.Size())

	assigned := vector.New[int]()
	assigned.CopyFrom(v)
	assigned.AddBack(-1)
	t.expect("Copy Assignment", assigned.Size() == v.Size()+1 && must(v.Back()) == size-1,
		"copy size %d, original back %d", assigned.Size(), must(v.Back()))

	taken := vector.New[int]()
	taken.MoveFrom(assigned)
	t.expect("Move Assignment", taken.Size() == 2*size+1 && assigned.Capacity() == 0,
		"taken size %d, source capacity %d", taken.Size(), assigned.Capacity())
}

func vectorIterators(size int, t *tally) {
	v := sequence(size)

	ok := true
	for i, e := range v.All() {
		ok = ok && i == e
	}
	t.expect("Forward", ok, "forward iteration out of order: %v", v)

	want := size - 1
	ok = true
	for i, e := range v.Backward() {
		ok = ok && i == want && e == want
		want--
	}
	t.expect("Reverse", ok && want == -1, "reverse iteration stopped at %d", want)

	it := v.Iter()
	for it.Next() {
		it.Set(it.Value() * 2)
	}
	t.expect("Iterator Set", must(v.Back()) == 2*(size-1), "back %d", must(v.Back()))

	rit := v.ReverseIter()
	t.expect("Reverse Begin", rit.Next() && rit.Index() == v.End()-1, "first reverse index %d", rit.Index())
}

func vectorFriends(size int, t *tally) {
	a, b := sequence(size), sequence(size)
	t.expect("==", vector.Equal(a, b), "%v != %v", a, b)

	b.AddBack(size)
	t.expect("!=", !vector.Equal(a, b), "%v == %v", a, b)

	t.expect("<<", vector.Of(1, 2, 3).String() == "{1, 2, 3}", "rendered %s", vector.Of(1, 2, 3))
}

func vectorNonMembers(size int, t *tally) {
	v := sequence(size)

	plus := vector.Appended(v, size)
	t.expect("Vector + Value", plus.Size() == size+1 && v.Size() == size, "sizes %d and %d", plus.Size(), v.Size())

	joined := vector.Join(v, v)
	t.expect("Vector + Vector", joined.Size() == 2*size && must(joined.Check(size)) == 0,
		"joined %v", joined)

	other := vector.Of(-1)
	vector.SwapContents(v, other)
	t.expect("Swap", v.Size() == 1 && other.Size() == size, "sizes %d and %d", v.Size(), other.Size())
}

// must unwraps a container result inside a section; a failure panics and is
// recorded by runSection.
func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func mustPtr[T any](p *T, err error) *T {
	return must(p, err)
}
