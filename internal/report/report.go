// Package report renders board coordinates as text tables.
package report

import (
	"fmt"
	"io"
	"iter"
	"slices"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/samber/lo"

	"github.com/hailam/chesscoord/internal/board"
)

// Axis prints one row per coordinate with its ordinal and label.
func Axis[T board.Coordinate[T]](w io.Writer, coords iter.Seq[T]) {
	t := newTable(w)
	t.AppendHeader(table.Row{"Ordinal", "Label"})
	for c := range coords {
		t.AppendRow(table.Row{c.Int(), c.String()})
	}
	t.Render()
}

// Grid prints the square names of the whole board with rank 8 on top.
func Grid(w io.Writer) {
	files := slices.Collect(board.Files())
	ranks := slices.Collect(board.Ranks())
	slices.Reverse(ranks)

	t := newTable(w)
	header := table.Row{""}
	for _, f := range files {
		header = append(header, f.String())
	}
	t.AppendHeader(header)

	for _, r := range ranks {
		row := table.Row{r.String()}
		for _, f := range files {
			row = append(row, board.NewSquare(f, r).String())
		}
		t.AppendRow(row)
	}
	t.Render()
}

// Sequence prints labels on one line, or "(empty)" when there are none.
func Sequence(w io.Writer, labels []string) {
	if len(labels) == 0 {
		_, _ = fmt.Fprintln(w, "(empty)")
		return
	}
	_, _ = fmt.Fprintln(w, "["+strings.Join(labels, " ")+"]")
}

// Labels returns the string form of each item.
func Labels[T fmt.Stringer](items []T) []string {
	return lo.Map(items, func(item T, _ int) string {
		return item.String()
	})
}

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.Style().Format.Header = text.FormatDefault
	return t
}
