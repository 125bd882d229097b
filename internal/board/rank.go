package board

import (
	"iter"
	"strconv"
)

// Rank is a row of the board, numbered 1-8 from White's side.
// The zero value is Rank1.
type Rank struct {
	raw uint8
}

var rankFactory = newFactory(1, func(offset int) Rank { return Rank{raw: uint8(offset)} })

// Ranks of the board.
var (
	Rank1 = rankFactory.fromOffset(0)
	Rank2 = rankFactory.fromOffset(1)
	Rank3 = rankFactory.fromOffset(2)
	Rank4 = rankFactory.fromOffset(3)
	Rank5 = rankFactory.fromOffset(4)
	Rank6 = rankFactory.fromOffset(5)
	Rank7 = rankFactory.fromOffset(6)
	Rank8 = rankFactory.fromOffset(7)
)

// NewRank returns the rank numbered n, or false if n is not in 1-8.
func NewRank(n int) (Rank, bool) {
	return rankFactory.NewInstance(n)
}

// Ranks yields Rank1 through Rank8.
func Ranks() iter.Seq[Rank] {
	return all(rankFactory)
}

// Int returns the rank number (1-8).
func (r Rank) Int() int {
	return int(r.raw) + 1
}

// String returns the rank number as a decimal string.
func (r Rank) String() string {
	return strconv.Itoa(r.Int())
}

func (r Rank) offset() int { return int(r.raw) }
func (r Rank) factory() *axisFactory[Rank] { return rankFactory }

// Plus adds the number of other to the zero-based offset of r, so Rank1 is
// the identity: Rank3.Plus(Rank2) is Rank4. It returns false past Rank8.
func (r Rank) Plus(other Rank) (Rank, bool) {
	return plus(r, other)
}

// Minus subtracts the number of other from the zero-based offset of r.
// It returns false below Rank1.
func (r Rank) Minus(other Rank) (Rank, bool) {
	return minus(r, other)
}

// AbsSub returns the number of ranks between r and other.
func (r Rank) AbsSub(other Rank) int {
	return absSub(r, other)
}

// Compare returns -1, 0 or +1 as r is below, equal to or above other.
func (r Rank) Compare(other Rank) int {
	return compare(r, other)
}

// Less reports whether r is below other.
func (r Rank) Less(other Rank) bool {
	return compare(r, other) < 0
}

// RangeTo yields the ranks from r up to other inclusive. A range whose start
// is not below its end is empty.
func (r Rank) RangeTo(other Rank) iter.Seq[Rank] {
	return rangeTo(r, other)
}
