// Command datplot plots the columns of a simulation data file.
//
// Usage:
//
//	datplot [flags] <basename> [average] [show]
//
// It reads <basename>.dat from the directory holding the executable (or
// --input-dir), plots columns 1..N against column 0 and writes <basename>.png
// to the working directory.
//
// Examples:
//
//	datplot epot
//	datplot epot average
//	datplot epot average show
//	datplot --input-dir ./runs --log-level debug epot
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/cwbudde/datplot/display"
	"github.com/cwbudde/datplot/internal/app"
	"github.com/cwbudde/datplot/internal/cli"
	"github.com/cwbudde/datplot/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run executes one invocation and returns the process exit status.
func run(args []string, stderr io.Writer) int {
	opts, err := cli.Parse(args, stderr)
	switch {
	case errors.Is(err, pflag.ErrHelp):
		return 0
	case errors.Is(err, cli.ErrUsage):
		// pflag has already printed the error and the usage text.
		return 1
	case err != nil:
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	log, err := logging.New(opts.LogLevel, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	if err := app.Run(opts, display.NewWindow(), log); err != nil {
		log.Error(err, "datplot failed", "basename", opts.Basename)
		return 1
	}
	return 0
}
