// Command dijkstra-bench compares shortest-path search over an adjacency
// list and a dense adjacency matrix built from the same random graph.
//
// Without a subcommand it runs the comparison; "example" searches the small
// city network on both representations.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
)

type cli struct {
	LogLevel string `help:"Log level (debug, info, warn, error)" default:"info" env:"DIJKSTRA_BENCH_LOG_LEVEL"`

	Run     runCmd     `cmd:"" default:"withargs" help:"Run the list vs matrix comparison (default)"`
	Example exampleCmd `cmd:"" help:"Search the worked city example on both representations"`
}

func main() {
	var params cli
	ctx := kong.Parse(&params,
		kong.Name("dijkstra-bench"),
		kong.Description("Dijkstra over an adjacency list and an adjacency matrix."),
	)

	l, err := newLogger(params.LogLevel)
	ctx.FatalIfErrorf(err)

	if err := ctx.Run(l); err != nil {
		l.Error("Failed", slog.Any("error", err))
		os.Exit(1)
	}
}

// newLogger returns a text logger on stderr at the named level.
func newLogger(level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})), nil
}
