// Package cli turns the command line into Options.
//
// Usage:
//
//	datplot [--input-dir DIR] [--log-level LEVEL] <basename> [average] [show]
//
// The tokens "average" and "show" may appear anywhere among the positional
// arguments, including in first position, where the same word also serves as
// the basename.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/pflag"

	"github.com/cwbudde/datplot/internal/logging"
)

// Positional tokens.
const (
	AverageToken = "average"
	ShowToken    = "show"
)

// File extensions.
const (
	InputExt  = ".dat"
	OutputExt = ".png"
)

var (
	// ErrMissingBasename is returned when no positional argument is given.
	ErrMissingBasename = errors.New("cli: missing basename argument")
	// ErrUsage wraps flag errors that have already been reported, together
	// with the usage text, on the usage writer.
	ErrUsage = errors.New("cli: invalid flags")
)

// Options is the resolved invocation.
type Options struct {
	Basename string
	// InputDir holds <basename>.dat.
	InputDir string
	// OutputDir receives <basename>.png. Empty means the working directory.
	OutputDir string
	Average   bool
	Show      bool
	LogLevel  string
}

// InputPath returns <InputDir>/<Basename>.dat.
func (o Options) InputPath() string {
	return filepath.Join(o.InputDir, o.Basename+InputExt)
}

// OutputPath returns <Basename>.png, relative to OutputDir.
func (o Options) OutputPath() string {
	return filepath.Join(o.OutputDir, o.Basename+OutputExt)
}

// executable is replaced in tests.
var executable = os.Executable

// ExecutableDir returns the directory holding the running binary, with
// symlinks resolved.
func ExecutableDir() (string, error) {
	exe, err := executable()
	if err != nil {
		return "", fmt.Errorf("cli: locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

// Parse builds Options from args (without the program name). Usage and flag
// errors are written to usage and returned wrapped in ErrUsage. -h/--help
// returns pflag.ErrHelp.
func Parse(args []string, usage io.Writer) (Options, error) {
	fs := pflag.NewFlagSet("datplot", pflag.ContinueOnError)
	fs.SetOutput(usage)
	fs.SetInterspersed(true)

	var opts Options
	fs.StringVar(&opts.InputDir, "input-dir", "", "directory holding <basename>.dat (default: the executable's directory)")
	fs.StringVar(&opts.LogLevel, "log-level", logging.LevelInfo, "log level: error, info, debug or trace")
	fs.Usage = func() {
		fmt.Fprintf(usage, "Usage: datplot [flags] <basename> [average] [show]\n\n")
		fmt.Fprintf(usage, "Plots columns 1..N of <basename>.dat against column 0 and writes <basename>.png.\n\n")
		fmt.Fprintf(usage, "  average  smooth the series with a forward moving average (window = rows/50)\n")
		fmt.Fprintf(usage, "  show     open the saved image in a window\n\n")
		fmt.Fprintf(usage, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return Options{}, err
		}
		return Options{}, fmt.Errorf("%w: %w", ErrUsage, err)
	}

	pos := fs.Args()
	if len(pos) == 0 {
		return Options{}, ErrMissingBasename
	}
	opts.Basename = pos[0]
	opts.Average = slices.Contains(pos, AverageToken)
	opts.Show = slices.Contains(pos, ShowToken)

	if opts.InputDir == "" {
		dir, err := ExecutableDir()
		if err != nil {
			return Options{}, err
		}
		opts.InputDir = dir
	}

	return opts, nil
}
