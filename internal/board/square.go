// Package board implements the coordinate system of a chess board: ranks,
// files and the squares they address.
package board

import "iter"

// Square represents a square on the chess board (0-63).
// Uses Little-Endian Rank-File Mapping: A1=0, H1=7, A8=56, H8=63.
type Square uint8

// NoSquare is the sentinel for "no square".
const NoSquare Square = 64

// NewSquare returns the square at the intersection of f and r.
func NewSquare(f File, r Rank) Square {
	return Square(r.offset()*axisSize + f.offset())
}

// File returns the file (column) of the square, or false if sq is not a
// board square.
func (sq Square) File() (File, bool) {
	if !sq.IsValid() {
		return File{}, false
	}
	return NewFile(int(sq) & 7)
}

// Rank returns the rank (row) of the square, or false if sq is not a board
// square.
func (sq Square) Rank() (Rank, bool) {
	if !sq.IsValid() {
		return Rank{}, false
	}
	return NewRank(int(sq)>>3 + 1)
}

// String returns the name of the square (e.g., "E4").
func (sq Square) String() string {
	f, ok := sq.File()
	if !ok {
		return "-"
	}
	r, _ := sq.Rank()
	return f.String() + r.String()
}

// IsValid returns true if the square is a valid board square (0-63).
func (sq Square) IsValid() bool {
	return sq < NoSquare
}

// Mirror returns the square mirrored vertically (for black's perspective).
func (sq Square) Mirror() Square {
	return sq ^ 56
}

// Squares yields A1 through H8 in index order, rank by rank.
func Squares() iter.Seq[Square] {
	return func(yield func(Square) bool) {
		for r := range Ranks() {
			for f := range Files() {
				if !yield(NewSquare(f, r)) {
					return
				}
			}
		}
	}
}
