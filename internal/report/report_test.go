package report

import (
	"bytes"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hailam/chesscoord/internal/board"
)

func TestAxis(t *testing.T) {
	var buf bytes.Buffer
	Axis(&buf, board.Files())

	out := buf.String()
	for f := range board.Files() {
		assert.Contains(t, out, f.String())
	}
	assert.Contains(t, out, "Ordinal")
	assert.Contains(t, out, "Label")
	assert.NotContains(t, out, "ORDINAL")
}

func TestGrid(t *testing.T) {
	var buf bytes.Buffer
	Grid(&buf)

	out := buf.String()
	assert.Contains(t, out, "A1")
	assert.Contains(t, out, "H8")
	assert.Less(t, strings.Index(out, "A8"), strings.Index(out, "A1"))
}

func TestSequence(t *testing.T) {
	tcs := []struct {
		name   string
		labels []string
		want   string
	}{
		{"empty", nil, "(empty)\n"},
		{"single", []string{"C"}, "[C]\n"},
		{"ranks", Labels(slices.Collect(board.Rank1.RangeTo(board.Rank3))), "[1 2 3]\n"},
		{"backwards", Labels(slices.Collect(board.Rank3.RangeTo(board.Rank1))), "(empty)\n"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			Sequence(&buf, tc.labels)
			assert.Equal(t, tc.want, buf.String())
		})
	}
}
