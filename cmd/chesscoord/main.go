package main

import (
	"log/slog"
	"os"
	"runtime/debug"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	slogmulti "github.com/samber/slog-multi"
	"github.com/urfave/cli/v2"
)

var version = "(devel)"

// newLogger writes to stderr; stdout carries command output.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slogmulti.Fanout(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
		}),
	))
}

func main() {
	defer func() {
		if err := recover(); err != nil {
			slog.Error("Panic", "err", err, "stack", string(debug.Stack()))
			os.Exit(1)
		}
	}()

	if err := newApp().Run(os.Args); err != nil {
		slog.Error("Failed", "err", err.Error())
		os.Exit(1)
	}
}

func newApp() *cli.App {
	var verbose bool

	cli.VersionFlag.(*cli.BoolFlag).Aliases = []string{"V"}

	return &cli.App{
		Name:                   "chesscoord",
		Usage:                  "inspect chess board ranks, files and squares",
		Version:                version,
		Suggest:                true,
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "verbose",
				Aliases:     []string{"v"},
				Usage:       "verbose output (includes debug)",
				Destination: &verbose,
			},
		},
		Before: func(_ *cli.Context) error {
			slog.SetDefault(newLogger(verbose))
			return nil
		},
		Commands: commands(),
	}
}
