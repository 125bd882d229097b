package board

import "iter"

// Coordinate is the behaviour shared by Rank and File. It is implemented only
// by the types in this package.
type Coordinate[T any] interface {
	comparable
	coordinate[T]

	Plus(other T) (T, bool)
	Minus(other T) (T, bool)
	AbsSub(other T) int
	Compare(other T) int
	RangeTo(other T) iter.Seq[T]
}

// coordinate is what a kind supplies so the generic operations below can work
// on it: its raw offset, its ordinal and a factory for new instances.
type coordinate[T any] interface {
	// Int returns the ordinal of the coordinate.
	Int() int
	String() string

	offset() int
	factory() *axisFactory[T]
}

// axisFactory validates ordinals and raw offsets against the pool of a kind.
// first is the ordinal of raw offset 0.
type axisFactory[T any] struct {
	pool  pool[T]
	first int
}

func newFactory[T any](first int, constructor func(offset int) T) *axisFactory[T] {
	return &axisFactory[T]{pool: buildPool(constructor), first: first}
}

// NewInstance returns the pooled coordinate with the given ordinal.
func (f *axisFactory[T]) NewInstance(ordinal int) (T, bool) {
	return f.pool.at(ordinal - f.first)
}

// fromOffset looks a coordinate up by raw offset. Callers must have already
// proven the offset is in range.
func (f *axisFactory[T]) fromOffset(offset int) T {
	c, ok := f.pool.at(offset)
	if !ok {
		panic("board: raw offset out of range")
	}
	return c
}

// plus adds the ordinal of b to the raw offset of a.
func plus[T coordinate[T]](a, b T) (T, bool) {
	return a.factory().NewInstance(a.offset() + b.Int())
}

// minus subtracts the ordinal of b from the raw offset of a.
func minus[T coordinate[T]](a, b T) (T, bool) {
	return a.factory().NewInstance(a.offset() - b.Int())
}

func absSub[T coordinate[T]](a, b T) int {
	d := a.Int() - b.Int()
	if d < 0 {
		return -d
	}
	return d
}

func compare[T coordinate[T]](a, b T) int {
	switch {
	case a.offset() < b.offset():
		return -1
	case a.offset() > b.offset():
		return 1
	default:
		return 0
	}
}

// rangeTo yields a through b inclusive. It yields nothing unless a < b.
func rangeTo[T coordinate[T]](a, b T) iter.Seq[T] {
	return func(yield func(T) bool) {
		if compare(a, b) >= 0 {
			return
		}
		f := a.factory()
		for off := a.offset(); off <= b.offset(); off++ {
			if !yield(f.fromOffset(off)) {
				return
			}
		}
	}
}

// all yields every coordinate of a kind in ascending order.
func all[T any](f *axisFactory[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, c := range f.pool {
			if !yield(c) {
				return
			}
		}
	}
}
