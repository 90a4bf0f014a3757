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

package main

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"os"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/term"

	"seehuhn.de/go/cellgauge/render"
)

var numericLiteral = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)$`)

func cmdRender(e *env, args []string) error {
	fs := e.flagSet("render", "[options] [percent...]",
		"cellgauge 42 -gapped -full -border",
		"cellgauge 42 -donut -full -border",
		"cellgauge 30 70 -gapped",
		"cellgauge 30,50,90 -gapped")

	var opt render.Options
	width := fs.Int("width", render.DefaultWidth, "bar width in `cells`")
	fs.BoolVar(&opt.Gapped, "gapped", false, "separate the lanes of multi-lane bars")
	fs.BoolVar(&opt.Full, "full", false, "use the full cell height instead of the cap height")
	setBorder := func(string) error { opt.Bordered = true; return nil }
	clearBorder := func(string) error { opt.Bordered = false; return nil }
	fs.BoolFunc("border", "draw a frame", setBorder)
	fs.BoolFunc("boarder", "same as -border", setBorder)
	fs.BoolFunc("no-border", "do not draw a frame (default)", clearBorder)
	fs.BoolFunc("no-boarder", "same as -no-border", clearBorder)
	donut := fs.Bool("donut", false, "draw a two-cell donut for a single value")
	fs.BoolVar(&opt.SeamSpace, "seam-space", false, "append a space after the indicator")
	fs.Int("lanes", 0, "ignored, the lane count is the number of values")

	tokens, err := parseInterspersed(fs, args)
	if err != nil {
		return err
	}
	values, err := percentValues(tokens)
	if err != nil {
		return err
	}

	if *width <= 0 {
		return usagef("-width must be a positive integer")
	}
	opt.Width = *width

	var out string
	if *donut {
		if len(values) > 1 {
			return usagef("-donut accepts a single percent value")
		}
		req := &render.Request{Values: values, Donut: true, Options: opt}
		out, err = req.Render()
	} else {
		out, err = render.Bar(values, &opt)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(e.stdout, out)
	return nil
}

// parseInterspersed parses args, allowing options after positional
// arguments.  The positional arguments are returned.
func parseInterspersed(fs *flag.FlagSet, args []string) ([]string, error) {
	for _, a := range args {
		if a == "--" {
			break
		}
		if strings.HasPrefix(a, "-") && isNumericList(a) {
			return nil, errNegative
		}
	}

	var pos []string
	for {
		err := parse(fs, args)
		if err != nil {
			return nil, err
		}
		args = fs.Args()
		if len(args) == 0 {
			return pos, nil
		}
		pos = append(pos, args[0])
		args = args[1:]
	}
}

var errNegative = &usageError{err: errors.New("negative percent values are not allowed")}

// isNumericList reports whether s is a non-empty comma separated list
// of numbers.
func isNumericList(s string) bool {
	n := 0
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if !numericLiteral.MatchString(part) {
			return false
		}
		n++
	}
	return n > 0
}

// percentValues converts positional arguments into percentages.
// Each argument may hold a comma separated list.  Tokens which are not
// numbers count as 0%.
func percentValues(args []string) ([]float64, error) {
	var res []float64
	for _, a := range args {
		for _, tok := range strings.Split(a, ",") {
			tok = strings.TrimSpace(tok)
			if tok == "" {
				continue
			}
			x, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				x = math.NaN()
			} else if x < 0 {
				return nil, errNegative
			}
			res = append(res, x)
		}
	}
	return res, nil
}

func cmdShowcase(e *env, args []string) error {
	fs := e.flagSet("showcase", "[options]", "cellgauge showcase -width 12")
	width := fs.Int("width", 0, "bar width in `cells` (default: fit the terminal)")
	if err := parse(fs, args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return usagef("showcase: unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	w := *width
	if w <= 0 {
		w = render.FitWidth(terminalColumns(e))
	}
	return render.WriteShowcase(e.stdout, w)
}

// terminalColumns returns the width of the terminal connected to
// standard output, or 0 if there is none.
func terminalColumns(e *env) int {
	f, ok := e.stdout.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	cols, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return cols
}
