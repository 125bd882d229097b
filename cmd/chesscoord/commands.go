package main

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/hailam/chesscoord/internal/board"
	"github.com/hailam/chesscoord/internal/report"
)

const (
	kindRank = "rank"
	kindFile = "file"
)

type operation string

const (
	opPlus    operation = "plus"
	opMinus   operation = "minus"
	opDist    operation = "dist"
	opCompare operation = "compare"
	opRange   operation = "range"
)

func commands() []*cli.Command {
	cmds := []*cli.Command{
		{
			Name:  "ranks",
			Usage: "list all ranks",
			Action: func(cCtx *cli.Context) error {
				report.Axis(cCtx.App.Writer, board.Ranks())
				return nil
			},
		},
		{
			Name:  "files",
			Usage: "list all files",
			Action: func(cCtx *cli.Context) error {
				report.Axis(cCtx.App.Writer, board.Files())
				return nil
			},
		},
		{
			Name:  "squares",
			Usage: "print the square names of the board",
			Action: func(cCtx *cli.Context) error {
				report.Grid(cCtx.App.Writer)
				return nil
			},
		},
	}

	for _, op := range []struct {
		op    operation
		usage string
	}{
		{opPlus, "add the ordinal of B to A"},
		{opMinus, "subtract the ordinal of B from A"},
		{opDist, "absolute distance between A and B"},
		{opCompare, "compare A with B (-1, 0, 1)"},
		{opRange, "enumerate A up to B inclusive"},
	} {
		cmds = append(cmds, &cli.Command{
			Name:      string(op.op),
			Usage:     op.usage,
			ArgsUsage: "rank|file A B",
			Action: func(cCtx *cli.Context) error {
				args := cCtx.Args()
				if args.Len() != 3 {
					return errors.Errorf("%s: expected 3 arguments, got %d", op.op, args.Len())
				}

				return errors.Wrapf(dispatch(cCtx.App.Writer, op.op, args.Get(0), args.Get(1), args.Get(2)),
					"failed to run %s", op.op)
			},
		})
	}

	return cmds
}

func dispatch(w io.Writer, op operation, kind, argA, argB string) error {
	slog.Debug("Running", "op", op, "kind", kind, "a", argA, "b", argB)

	switch strings.ToLower(kind) {
	case kindRank:
		a, b, err := parsePair(parseRank, argA, argB)
		if err != nil {
			return err
		}
		return run(w, op, a, b)
	case kindFile:
		a, b, err := parsePair(parseFile, argA, argB)
		if err != nil {
			return err
		}
		return run(w, op, a, b)
	default:
		return errors.Errorf("unknown kind %q, expected %s or %s", kind, kindRank, kindFile)
	}
}

func run[T board.Coordinate[T]](w io.Writer, op operation, a, b T) error {
	switch op {
	case opPlus:
		res, ok := a.Plus(b)
		printResult(w, res, ok)
	case opMinus:
		res, ok := a.Minus(b)
		printResult(w, res, ok)
	case opDist:
		_, _ = fmt.Fprintln(w, a.AbsSub(b))
	case opCompare:
		_, _ = fmt.Fprintln(w, a.Compare(b))
	case opRange:
		report.Sequence(w, report.Labels(slices.Collect(a.RangeTo(b))))
	default:
		return errors.Errorf("unknown operation %q", op)
	}

	return nil
}

func printResult(w io.Writer, res fmt.Stringer, ok bool) {
	if !ok {
		_, _ = fmt.Fprintln(w, "out of range")
		return
	}
	_, _ = fmt.Fprintln(w, res)
}

func parsePair[T any](parse func(string) (T, error), argA, argB string) (T, T, error) {
	a, err := parse(argA)
	if err != nil {
		var zero T
		return zero, zero, err
	}
	b, err := parse(argB)
	if err != nil {
		var zero T
		return zero, zero, err
	}
	return a, b, nil
}

// parseRank accepts a rank number, 1-8.
func parseRank(s string) (board.Rank, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return board.Rank{}, errors.Wrapf(err, "invalid rank %q", s)
	}
	r, ok := board.NewRank(n)
	if !ok {
		return board.Rank{}, errors.Errorf("rank %d out of range 1-8", n)
	}
	return r, nil
}

// parseFile accepts a file letter (A-H, any case) or index (0-7).
func parseFile(s string) (board.File, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		if len(s) != 1 {
			return board.File{}, errors.Errorf("invalid file %q", s)
		}
		n = int(strings.ToUpper(s)[0]) - 'A'
	}
	f, ok := board.NewFile(n)
	if !ok {
		return board.File{}, errors.Errorf("file %q out of range A-H", s)
	}
	return f, nil
}
