package board

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSquare(t *testing.T) {
	tcs := []struct {
		file File
		rank Rank
		sq   Square
		name string
	}{
		{FileA, Rank1, 0, "A1"},
		{FileH, Rank1, 7, "H1"},
		{FileE, Rank4, 28, "E4"},
		{FileA, Rank8, 56, "A8"},
		{FileH, Rank8, 63, "H8"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			sq := NewSquare(tc.file, tc.rank)
			assert.Equal(t, tc.sq, sq)
			f, ok := sq.File()
			require.True(t, ok)
			assert.Equal(t, tc.file, f)
			r, ok := sq.Rank()
			require.True(t, ok)
			assert.Equal(t, tc.rank, r)
			assert.Equal(t, tc.name, sq.String())
			assert.True(t, sq.IsValid())
		})
	}

}

func TestSquareOffBoard(t *testing.T) {
	for _, sq := range []Square{NoSquare, 65, 200, 255} {
		assert.False(t, sq.IsValid(), "square %d", uint8(sq))
		assert.Equal(t, "-", sq.String())

		assert.NotPanics(t, func() {
			_, ok := sq.File()
			assert.False(t, ok, "file of square %d", uint8(sq))
			_, ok = sq.Rank()
			assert.False(t, ok, "rank of square %d", uint8(sq))
		})
	}
}

func TestSquareMirror(t *testing.T) {
	for sq := range Squares() {
		m := sq.Mirror()
		f, _ := sq.File()
		mf, _ := m.File()
		assert.Equal(t, f, mf)
		r, _ := sq.Rank()
		mr, _ := m.Rank()
		assert.Equal(t, 9, r.Int()+mr.Int())
		assert.Equal(t, sq, m.Mirror())
	}
}

func TestSquares(t *testing.T) {
	all := slices.Collect(Squares())
	assert.Len(t, all, 64)
	for i, sq := range all {
		assert.Equal(t, Square(i), sq)
	}
}
