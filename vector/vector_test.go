package vector

import (
	"errors"
	"math"
	"testing"

	"github.com/biiclasses/bii/container"
	. "github.com/smartystreets/goconvey/convey"
)

func TestConstruction(t *testing.T) {
	Convey("Construction", t, func() {
		Convey("New should start empty with the default capacity", func() {
			v := New[int]()
			So(v.Size(), ShouldEqual, 0)
			So(v.Capacity(), ShouldEqual, DefaultCapacity)
			So(v.Empty(), ShouldBeTrue)
			So(v.Open(), ShouldEqual, DefaultCapacity)
		})

		Convey("NewSized should allocate capacity without elements", func() {
			v, err := NewSized[int](25)
			So(err, ShouldBeNil)
			So(v.Capacity(), ShouldEqual, 25)
			So(v.Size(), ShouldEqual, 0)

			_, err = NewSized[int](-1)
			So(errors.Is(err, container.ErrInvalidArgument), ShouldBeTrue)
		})

		Convey("NewFilled should place n copies and double the capacity", func() {
			v, err := NewFilled(7, "Eva")
			So(err, ShouldBeNil)
			So(v.Size(), ShouldEqual, 7)
			So(v.Capacity(), ShouldEqual, 14)
			So(v.Open(), ShouldEqual, 7)
			for _, e := range v.All() {
				So(e, ShouldEqual, "Eva")
			}

			_, err = NewFilled(-3, "Eva")
			So(errors.Is(err, container.ErrInvalidArgument), ShouldBeTrue)
		})

		Convey("NewFilled should reject counts whose capacity overflows", func() {
			_, err := NewFilled(math.MaxInt/2+1, byte(0))
			So(errors.Is(err, container.ErrInvalidArgument), ShouldBeTrue)
		})

		Convey("Of should keep the given order", func() {
			v := Of(4, 5, 6)
			So(v.Values(), ShouldResemble, []int{4, 5, 6})
			So(v.Capacity(), ShouldEqual, DefaultCapacity)
			So(Of(make([]int, 12)...).Capacity(), ShouldEqual, 12)
		})

		Convey("The zero value should be usable", func() {
			var v Vector[int]
			So(v.Capacity(), ShouldEqual, 0)
			v.AddBack(1)
			So(v.Capacity(), ShouldEqual, MinGrowCapacity)
			So(v.Values(), ShouldResemble, []int{1})
		})
	})
}

func TestAddBackAndRemoveBack(t *testing.T) {
	Convey("Given an empty vector", t, func() {
		v := New[int]()

		Convey("Appending 1, 2, 3 should be readable by index", func() {
			v.AddBack(1)
			v.AddBack(2)
			v.AddBack(3)
			So(v.Size(), ShouldEqual, 3)
			So(must(v.Check(0)), ShouldEqual, 1)
			So(must(v.Check(2)), ShouldEqual, 3)

			last, err := v.RemoveBack()
			So(err, ShouldBeNil)
			So(last, ShouldEqual, 3)
			So(v.Size(), ShouldEqual, 2)
		})

		Convey("N appends then N removals should leave it empty", func() {
			const n = 50
			for i := 0; i < n; i++ {
				v.AddBack(i)
			}
			So(v.Size(), ShouldEqual, n)
			for i := 0; i < n; i++ {
				So(must(v.Check(i)), ShouldEqual, i)
			}
			for i := n - 1; i >= 0; i-- {
				So(must(v.RemoveBack()), ShouldEqual, i)
			}
			So(v.Size(), ShouldEqual, 0)
			So(v.Empty(), ShouldBeTrue)
		})

		Convey("Capacity should only change when full, and then double", func() {
			capacity := v.Capacity()
			for i := 0; i < 100; i++ {
				full := v.Size() == v.Capacity()
				v.AddBack(i)
				if full {
					So(v.Capacity(), ShouldEqual, 2*capacity)
				} else {
					So(v.Capacity(), ShouldEqual, capacity)
				}
				capacity = v.Capacity()
			}
		})

		Convey("RemoveBack should fail and not shrink", func() {
			_, err := v.RemoveBack()
			So(errors.Is(err, container.ErrEmptyContainer), ShouldBeTrue)
			So(v.Capacity(), ShouldEqual, DefaultCapacity)
		})
	})

	Convey("Given a vector with zero capacity", t, func() {
		v, _ := NewSized[string](0)

		Convey("The first append should grow to MinGrowCapacity, then double", func() {
			v.AddBack("a")
			So(v.Capacity(), ShouldEqual, 1)
			v.AddBack("b")
			So(v.Capacity(), ShouldEqual, 2)
			v.AddBack("c")
			So(v.Capacity(), ShouldEqual, 4)
			So(v.String(), ShouldEqual, "{a, b, c}")
		})
	})
}

func TestInsertAndRemove(t *testing.T) {
	Convey("Given a vector 0..4", t, func() {
		v := Of(0, 1, 2, 3, 4)

		Convey("Insert should place the value and shift the rest right", func() {
			So(v.Insert(9, 2), ShouldBeNil)
			So(v.Size(), ShouldEqual, 6)
			So(must(v.Check(2)), ShouldEqual, 9)
			So(v.Values(), ShouldResemble, []int{0, 1, 9, 2, 3, 4})
		})

		Convey("Insert at Begin should prepend", func() {
			So(v.Insert(7, v.Begin()), ShouldBeNil)
			So(must(v.Front()), ShouldEqual, 7)
		})

		Convey("Insert should grow a full vector", func() {
			full, _ := NewSized[int](2)
			full.AddBack(1)
			full.AddBack(2)
			So(full.Insert(0, 0), ShouldBeNil)
			So(full.Capacity(), ShouldEqual, 4)
			So(full.Values(), ShouldResemble, []int{0, 1, 2})
		})

		Convey("Insert outside [Begin, End) should fail without mutation", func() {
			for _, p := range []int{-1, v.End(), v.End() + 3} {
				err := v.Insert(9, p)
				So(errors.Is(err, container.ErrOutOfRange), ShouldBeTrue)
			}
			So(v.Values(), ShouldResemble, []int{0, 1, 2, 3, 4})

			So(errors.Is(New[int]().Insert(1, 0), container.ErrOutOfRange), ShouldBeTrue)
		})

		Convey("Remove should drop exactly one element and shift left", func() {
			So(v.Remove(1), ShouldBeNil)
			So(v.Size(), ShouldEqual, 4)
			So(v.Values(), ShouldResemble, []int{0, 2, 3, 4})
			So(v.Capacity(), ShouldEqual, DefaultCapacity)
		})

		Convey("Removing at End-1 until Begin == End should empty it", func() {
			for v.End() > v.Begin() {
				So(v.Remove(v.End()-1), ShouldBeNil)
			}
			So(v.Empty(), ShouldBeTrue)
		})

		Convey("Remove outside [Begin, End) should fail", func() {
			So(errors.Is(v.Remove(-1), container.ErrOutOfRange), ShouldBeTrue)
			So(errors.Is(v.Remove(v.End()), container.ErrOutOfRange), ShouldBeTrue)
			So(v.Size(), ShouldEqual, 5)
		})
	})
}

func TestMergeAndInnerVec(t *testing.T) {
	Convey("Merge", t, func() {
		Convey("Should append in order and reserve only the shortfall", func() {
			a, _ := NewSized[int](4)
			a.AddBack(1)
			a.AddBack(2)
			b := Of(3, 4, 5, 6, 7)
			a.Merge(b)
			So(a.Values(), ShouldResemble, []int{1, 2, 3, 4, 5, 6, 7})
			So(a.Capacity(), ShouldEqual, 7)
			So(b.Size(), ShouldEqual, 5)
		})

		Convey("Should not reallocate when there is room", func() {
			a := Of(1)
			a.Merge(Of(2, 3))
			So(a.Capacity(), ShouldEqual, DefaultCapacity)
		})

		Convey("Merging into itself should duplicate the contents", func() {
			a := Of(1, 2, 3)
			a.Reduce()
			a.Merge(a)
			So(a.Values(), ShouldResemble, []int{1, 2, 3, 1, 2, 3})
		})
	})

	Convey("InnerVec", t, func() {
		v := Of(10, 11, 12, 13, 14)

		Convey("Should return the half-open range", func() {
			inner, err := v.InnerVec(1, 4)
			So(err, ShouldBeNil)
			So(inner.Size(), ShouldEqual, 3)
			So(inner.Values(), ShouldResemble, []int{11, 12, 13})
		})

		Convey("Should accept End as a bound", func() {
			inner, err := v.InnerVec(v.Begin(), v.End())
			So(err, ShouldBeNil)
			So(Equal(inner, v), ShouldBeTrue)

			empty, err := v.InnerVec(v.End(), v.End())
			So(err, ShouldBeNil)
			So(empty.Empty(), ShouldBeTrue)
		})

		Convey("Should copy, not alias", func() {
			inner, _ := v.InnerVec(0, 2)
			*must(inner.FrontMut()) = 99
			So(must(v.Front()), ShouldEqual, 10)
		})

		Convey("Should report each failure kind", func() {
			_, err := New[int]().InnerVec(0, 0)
			So(errors.Is(err, container.ErrEmptyContainer), ShouldBeTrue)

			_, err = v.InnerVec(-1, 2)
			So(errors.Is(err, container.ErrOutOfRange), ShouldBeTrue)

			_, err = v.InnerVec(0, 6)
			So(errors.Is(err, container.ErrOutOfRange), ShouldBeTrue)

			_, err = v.InnerVec(3, 1)
			So(errors.Is(err, container.ErrInvalidOrder), ShouldBeTrue)
		})
	})

	Convey("Swap", t, func() {
		v := Of("a", "b", "c")
		So(v.Swap(0, 2), ShouldBeNil)
		So(v.String(), ShouldEqual, "{c, b, a}")
		So(errors.Is(v.Swap(0, 3), container.ErrOutOfRange), ShouldBeTrue)
		So(v.String(), ShouldEqual, "{c, b, a}")
	})
}

func TestAccess(t *testing.T) {
	Convey("Given a vector of strings", t, func() {
		v := Of("x", "y", "z")

		Convey("Check should reject negative and past-the-end indexes", func() {
			_, err := v.Check(-1)
			So(errors.Is(err, container.ErrOutOfRange), ShouldBeTrue)
			_, err = v.Check(3)
			So(errors.Is(err, container.ErrOutOfRange), ShouldBeTrue)
		})

		Convey("CheckMut should write through", func() {
			p, err := v.CheckMut(1)
			So(err, ShouldBeNil)
			*p = "Camp Lejeune"
			So(must(v.Check(1)), ShouldEqual, "Camp Lejeune")
		})

		Convey("Front and Back should read the edges", func() {
			So(must(v.Front()), ShouldEqual, "x")
			So(must(v.Back()), ShouldEqual, "z")
			*must(v.BackMut()) = "w"
			So(must(v.Back()), ShouldEqual, "w")
		})

		Convey("Get should return an option", func() {
			So(v.Get(0).MustGet(), ShouldEqual, "x")
			So(v.Get(5).IsPresent(), ShouldBeFalse)
		})

		Convey("Edges of an empty vector should fail", func() {
			e := New[string]()
			_, err := e.Front()
			So(errors.Is(err, container.ErrEmptyContainer), ShouldBeTrue)
			_, err = e.BackMut()
			So(errors.Is(err, container.ErrEmptyContainer), ShouldBeTrue)
		})
	})
}

func TestMemory(t *testing.T) {
	Convey("Memory control", t, func() {
		v := New[int]()

		Convey("Reserve should be additive", func() {
			So(v.Reserve(5), ShouldBeNil)
			So(v.Capacity(), ShouldEqual, 15)
		})

		Convey("Reserve should reject non-positive amounts", func() {
			So(errors.Is(v.Reserve(0), container.ErrInvalidArgument), ShouldBeTrue)
			So(errors.Is(v.Reserve(-2), container.ErrInvalidArgument), ShouldBeTrue)
			So(v.Capacity(), ShouldEqual, DefaultCapacity)
		})

		Convey("Reserve should reject amounts that overflow the capacity", func() {
			So(errors.Is(v.Reserve(math.MaxInt), container.ErrInvalidArgument), ShouldBeTrue)
			So(errors.Is(v.Reserve(math.MaxInt-DefaultCapacity+1), container.ErrInvalidArgument), ShouldBeTrue)
			So(v.Capacity(), ShouldEqual, DefaultCapacity)
		})

		Convey("Reduce should drop all slack", func() {
			v.AddBack(1)
			v.AddBack(2)
			v.Reduce()
			So(v.Capacity(), ShouldEqual, 2)
			So(v.Open(), ShouldEqual, 0)
			So(v.Values(), ShouldResemble, []int{1, 2})
		})

		Convey("Clear should restore the default capacity", func() {
			for i := 0; i < 40; i++ {
				v.AddBack(i)
			}
			v.Clear()
			So(v.Size(), ShouldEqual, 0)
			So(v.Capacity(), ShouldEqual, DefaultCapacity)
		})
	})
}

func TestOwnership(t *testing.T) {
	Convey("Given a populated vector", t, func() {
		v := Of(1, 2, 3)

		Convey("Clone should be independent both ways", func() {
			c := v.Clone()
			So(Equal(c, v), ShouldBeTrue)
			So(c.Capacity(), ShouldEqual, v.Capacity())

			*must(c.FrontMut()) = 100
			So(must(v.Front()), ShouldEqual, 1)
			v.AddBack(4)
			So(c.Size(), ShouldEqual, 3)
		})

		Convey("CopyFrom should deep copy and tolerate self assignment", func() {
			dst := Of(9)
			dst.CopyFrom(v)
			So(dst.Values(), ShouldResemble, []int{1, 2, 3})
			*must(dst.BackMut()) = 0
			So(must(v.Back()), ShouldEqual, 3)

			v.CopyFrom(v)
			So(v.Values(), ShouldResemble, []int{1, 2, 3})
		})

		Convey("Move should leave the source with no buffer", func() {
			moved := v.Move()
			So(moved.Values(), ShouldResemble, []int{1, 2, 3})
			So(moved.Capacity(), ShouldEqual, DefaultCapacity)
			So(v.Size(), ShouldEqual, 0)
			So(v.Capacity(), ShouldEqual, 0)

			v.AddBack(7)
			So(v.Capacity(), ShouldEqual, 1)
			So(moved.Size(), ShouldEqual, 3)
		})

		Convey("MoveFrom should take the buffer", func() {
			dst := Of(5, 5)
			dst.MoveFrom(v)
			So(dst.Values(), ShouldResemble, []int{1, 2, 3})
			So(v.Capacity(), ShouldEqual, 0)
			So(v.Empty(), ShouldBeTrue)
		})

		Convey("SwapContents should exchange storage", func() {
			other := Of(8)
			SwapContents(v, other)
			So(v.Values(), ShouldResemble, []int{8})
			So(other.Values(), ShouldResemble, []int{1, 2, 3})
		})
	})
}

func TestIterationAndEquality(t *testing.T) {
	Convey("Iteration", t, func() {
		v := Of(1, 2, 3, 4)

		Convey("Forward and reverse should mirror each other", func() {
			var fwd, rev []int
			for _, e := range v.All() {
				fwd = append(fwd, e)
			}
			for _, e := range v.Backward() {
				rev = append(rev, e)
			}
			So(fwd, ShouldResemble, []int{1, 2, 3, 4})
			So(rev, ShouldResemble, []int{4, 3, 2, 1})
		})

		Convey("Reverse indexes should count down from End-1", func() {
			var idx []int
			for i := range v.Backward() {
				idx = append(idx, i)
			}
			So(idx, ShouldResemble, []int{3, 2, 1, 0})
		})

		Convey("Set should write through the iterator", func() {
			it := v.Iter()
			for it.Next() {
				it.Set(it.Value() * 10)
			}
			So(v.Values(), ShouldResemble, []int{10, 20, 30, 40})
		})

		Convey("An exhausted iterator should stay exhausted", func() {
			it := New[int]().ReverseIter()
			So(it.Next(), ShouldBeFalse)
			So(it.Next(), ShouldBeFalse)
		})
	})

	Convey("Equality and concatenation", t, func() {
		a, b := New[int](), New[int]()
		for i := 0; i < 5; i++ {
			a.AddBack(i)
			b.AddBack(i)
		}
		So(Equal(a, b), ShouldBeTrue)

		b.AddBack(99)
		So(Equal(a, b), ShouldBeFalse)

		So(EqualFunc(Of("A"), Of("a"), func(x, y string) bool { return len(x) == len(y) }), ShouldBeTrue)

		joined := Join(a, b)
		So(joined.Size(), ShouldEqual, 11)
		So(a.Size(), ShouldEqual, 5)

		plus := Appended(a, 5)
		So(must(plus.Back()), ShouldEqual, 5)
		So(a.Size(), ShouldEqual, 5)
	})

	Convey("String", t, func() {
		So(New[int]().String(), ShouldEqual, "{}")
		So(Of(1, 2, 3).String(), ShouldEqual, "{1, 2, 3}")
	})
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
