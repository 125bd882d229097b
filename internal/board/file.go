package board

import "iter"

// File is a column of the board, A-H, numbered 0-7.
// The zero value is FileA.
type File struct {
	raw uint8
}

var fileFactory = newFactory(0, func(offset int) File { return File{raw: uint8(offset)} })

// Files of the board.
var (
	FileA = fileFactory.fromOffset(0)
	FileB = fileFactory.fromOffset(1)
	FileC = fileFactory.fromOffset(2)
	FileD = fileFactory.fromOffset(3)
	FileE = fileFactory.fromOffset(4)
	FileF = fileFactory.fromOffset(5)
	FileG = fileFactory.fromOffset(6)
	FileH = fileFactory.fromOffset(7)
)

// NewFile returns the file with index n, or false if n is not in 0-7.
func NewFile(n int) (File, bool) {
	return fileFactory.NewInstance(n)
}

// Files yields FileA through FileH.
func Files() iter.Seq[File] {
	return all(fileFactory)
}

// Int returns the file index (0-7).
func (f File) Int() int {
	return int(f.raw)
}

// String returns the file letter, "A" to "H".
func (f File) String() string {
	return string(rune('A' + f.Int()))
}

func (f File) offset() int { return int(f.raw) }
func (f File) factory() *axisFactory[File] { return fileFactory }

// Plus returns the file other.Int() columns to the right of f, or false past FileH.
func (f File) Plus(other File) (File, bool) {
	return plus(f, other)
}

// Minus returns the file other.Int() columns to the left of f, or false before FileA.
func (f File) Minus(other File) (File, bool) {
	return minus(f, other)
}

func (f File) AbsSub(other File) int {
	return absSub(f, other)
}

func (f File) Compare(other File) int {
	return compare(f, other)
}

// Less reports whether f is left of other.
func (f File) Less(other File) bool {
	return compare(f, other) < 0
}

// RangeTo yields the files from f to other inclusive, left to right.
// It is empty unless f is left of other.
func (f File) RangeTo(other File) iter.Seq[File] {
	return rangeTo(f, other)
}
