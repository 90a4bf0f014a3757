// seehuhn.de/go/cellgauge - multi-level progress glyphs for terminal fonts
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command cellgauge draws progress indicators with the CellGauge Symbols
// font and builds the font itself.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"seehuhn.de/go/cellgauge/internal/buildinfo"
	"seehuhn.de/go/cellgauge/internal/logging"
	"seehuhn.de/go/cellgauge/internal/styles"
	"seehuhn.de/go/cellgauge/reference"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1 // runtime failure, including a missing reference glyph
	exitUsage   = 2 // invalid arguments
)

// env holds the output streams of one invocation.
type env struct {
	stdout, stderr io.Writer
}

type command struct {
	name    string
	summary string
	run     func(e *env, args []string) error
}

var commands []*command

func init() {
	commands = []*command{
		{"render", "draw a progress bar or donut (default)", cmdRender},
		{"showcase", "show samples of all indicator styles", cmdShowcase},
		{"svg", "write the glyph shapes as SVG files", cmdSVG},
		{"build", "compile and align the font", cmdBuild},
		{"align", "align the glyphs of a compiled font", cmdAlign},
		{"check", "verify a finished font", cmdCheck},
		{"codepoint", "convert between glyph names and codepoints", cmdCodepoint},
		{"version", "print version information", cmdVersion},
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line args and returns the exit code.
// Without a subcommand name, the arguments are passed to "render".
func run(args []string, stdout, stderr io.Writer) int {
	e := &env{stdout: stdout, stderr: stderr}

	cmd := commands[0]
	if len(args) > 0 {
		switch args[0] {
		case "help", "-h", "-help", "--help":
			e.usage()
			return exitOK
		}
		for _, c := range commands {
			if c.name == args[0] {
				cmd = c
				args = args[1:]
				break
			}
		}
	}

	err := cmd.run(e, args)
	return e.exitCode(err)
}

func (e *env) usage() {
	w := e.stderr
	fmt.Fprintf(w, "cellgauge - multi-level progress glyphs for terminals\n")
	fmt.Fprintf(w, "%s\n\n", buildinfo.Short("cellgauge"))
	fmt.Fprintf(w, "Usage:\n")
	fmt.Fprintf(w, "  cellgauge [command] [options] [arguments]\n\n")
	fmt.Fprintf(w, "Commands:\n")
	for _, c := range commands {
		fmt.Fprintf(w, "  %-10s %s\n", c.name, c.summary)
	}
	fmt.Fprintf(w, "\nUse \"cellgauge <command> -h\" for the options of a command.\n")
}

// usageError indicates invalid command line arguments.
type usageError struct {
	err error

	// reported is set if the flag package has already printed the error.
	reported bool
}

func (err *usageError) Error() string {
	return err.err.Error()
}

func (err *usageError) Unwrap() error {
	return err.err
}

func usagef(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

func (e *env) exitCode(err error) int {
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return exitOK
	}

	var uErr *usageError
	var sErr *styles.UnknownStyleError
	switch {
	case errors.As(err, &uErr):
		if !uErr.reported {
			fmt.Fprintf(e.stderr, "cellgauge: %v\n", err)
		}
		return exitUsage
	case errors.As(err, &sErr):
		fmt.Fprintf(e.stderr, "cellgauge: %v\n", err)
		return exitUsage
	default:
		fmt.Fprintf(e.stderr, "cellgauge: %v\n", err)
		return exitFailure
	}
}

// flagSet creates the flag set for a subcommand.  The usage text
// consists of the synopsis, the option list and the example lines.
func (e *env) flagSet(name, synopsis string, examples ...string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	fs.Usage = func() {
		w := e.stderr
		fmt.Fprintf(w, "Usage:\n  cellgauge %s %s\n\n", name, synopsis)
		fmt.Fprintf(w, "Options:\n")
		fs.PrintDefaults()
		if len(examples) > 0 {
			fmt.Fprintf(w, "\nExamples:\n")
			for _, ex := range examples {
				fmt.Fprintf(w, "  %s\n", ex)
			}
		}
	}
	return fs
}

// parse parses the options in args.  Flag errors are usage errors.
func parse(fs *flag.FlagSet, args []string) error {
	err := fs.Parse(args)
	if err != nil && !errors.Is(err, flag.ErrHelp) {
		return &usageError{err: err, reported: true}
	}
	return err
}

// logFlag registers the -v flag and returns a function which creates
// the logger after the flags have been parsed.
func (e *env) logFlag(fs *flag.FlagSet) func() *slog.Logger {
	verbose := fs.Bool("v", false, "show debug messages")
	return func() *slog.Logger {
		return logging.New(e.stderr, *verbose)
	}
}

// loadReference reads the reference font, or Go Mono if fname is empty.
func loadReference(fname string, unitsPerEm int) (*reference.Metrics, error) {
	if fname == "" {
		return reference.GoMono(unitsPerEm)
	}
	return reference.LoadFile(fname, unitsPerEm)
}

func cmdVersion(e *env, args []string) error {
	fs := e.flagSet("version", "")
	if err := parse(fs, args); err != nil {
		return err
	}
	fmt.Fprintln(e.stdout, buildinfo.Short("cellgauge"))
	return nil
}

// oneArg returns the single positional argument of fs.
func oneArg(fs *flag.FlagSet, what string) (string, error) {
	if fs.NArg() != 1 {
		return "", usagef("%s: expected one %s, got %d arguments: %s",
			fs.Name(), what, fs.NArg(), strings.Join(fs.Args(), " "))
	}
	return fs.Arg(0), nil
}
