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
	"fmt"
	"log/slog"
	"os"

	"seehuhn.de/go/cellgauge/align"
	"seehuhn.de/go/cellgauge/compile"
	"seehuhn.de/go/cellgauge/fontcheck"
	"seehuhn.de/go/cellgauge/fontfile"
	"seehuhn.de/go/cellgauge/internal/profile"
	"seehuhn.de/go/cellgauge/internal/styles"
	"seehuhn.de/go/cellgauge/shape"
)

func cmdSVG(e *env, args []string) error {
	fs := e.flagSet("svg", "[options]",
		"cellgauge svg -out-dir glyphs",
		"cellgauge svg -styles 1,2-nhn,gap-nb")
	styleArg := fs.String("styles", "all", "comma separated `list` of styles: all, 1, 2, 3, <lanes>-<style>, <style>")
	outDir := fs.String("out-dir", "svg", "destination `directory`")
	logger := e.logFlag(fs)
	if err := parse(fs, args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return usagef("svg: unexpected arguments")
	}
	sel, err := styles.Parse(*styleArg)
	if err != nil {
		return err
	}
	log := logger()

	err = os.MkdirAll(*outDir, 0o755)
	if err != nil {
		return err
	}
	err = shape.Clean(*outDir)
	if err != nil {
		return err
	}
	n, err := shape.DefaultTuning.WriteDir(*outDir, sel.States())
	if err != nil {
		return err
	}
	log.Info("glyph shapes written", "files", n, "dir", *outDir)
	return nil
}

func cmdBuild(e *env, args []string) error {
	fs := e.flagSet("build", "[options]",
		"cellgauge build -o CellGaugeSymbols.otf",
		"cellgauge build -reference Menlo.ttc -prune -o out.otf")
	out := fs.String("o", "CellGaugeSymbols.otf", "output `file`")
	refFile := fs.String("reference", "", "reference monospace font `file` (default: Go Mono)")
	styleArg := fs.String("styles", "all", "comma separated `list` of bar styles")
	prune := fs.Bool("prune", false, "omit glyphs which are never rendered")
	var prof profile.Profile
	prof.AddFlags(fs)
	logger := e.logFlag(fs)
	if err := parse(fs, args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return usagef("build: unexpected arguments")
	}
	sel, err := styles.Parse(*styleArg)
	if err != nil {
		return err
	}
	log := logger()

	stop, err := prof.Start()
	if err != nil {
		return err
	}

	err = build(*out, *refFile, sel, *prune, log)
	if stopErr := stop(); err == nil {
		err = stopErr
	}
	return err
}

func build(out, refFile string, sel styles.Selection, prune bool, log *slog.Logger) error {
	ref, err := loadReference(refFile, compile.UnitsPerEm)
	if err != nil {
		return err
	}

	mm := compile.Manifest(&compile.Options{Select: sel.Contains, Prune: prune})
	tab, err := compile.Compile(mm, nil)
	if err != nil {
		return err
	}
	log.Info("glyphs compiled", "glyphs", len(mm))

	a := &align.Aligner{Ref: ref, Logger: log}
	if _, err := a.Run(tab); err != nil {
		return err
	}
	err = fontfile.WriteFile(out, tab)
	if err != nil {
		return err
	}
	log.Info("font written", "file", out)
	return nil
}

func cmdAlign(e *env, args []string) error {
	fs := e.flagSet("align", "[options] font.ttf",
		"cellgauge align build/CellGaugeSymbols.ttf",
		"cellgauge align -reference Menlo.ttc -o aligned.otf compiled.ttf")
	refFile := fs.String("reference", "", "reference monospace font `file` (default: Go Mono)")
	out := fs.String("o", "", "output `file` (default: replace the input)")
	logger := e.logFlag(fs)
	if err := parse(fs, args); err != nil {
		return err
	}
	fname, err := oneArg(fs, "font file")
	if err != nil {
		return err
	}
	if *out == "" {
		*out = fname
	}
	log := logger()

	tab, err := fontfile.ReadFile(fname)
	if err != nil {
		return err
	}
	ref, err := loadReference(*refFile, tab.UnitsPerEm)
	if err != nil {
		return err
	}

	a := &align.Aligner{Ref: ref, Logger: log}
	stats, err := a.Run(tab)
	if err != nil {
		return err
	}
	if stats.Groups == 0 {
		log.Warn("no progress glyphs found", "file", fname)
	}
	err = fontfile.WriteFile(*out, tab)
	if err != nil {
		return err
	}
	log.Info("font written", "file", *out)
	return nil
}

func cmdCheck(e *env, args []string) error {
	fs := e.flagSet("check", "[options] font.otf", "cellgauge check CellGaugeSymbols.otf")
	refFile := fs.String("reference", "", "reference monospace font `file` (default: Go Mono)")
	if err := parse(fs, args); err != nil {
		return err
	}
	fname, err := oneArg(fs, "font file")
	if err != nil {
		return err
	}

	data, err := os.ReadFile(fname)
	if err != nil {
		return err
	}
	tab, err := fontfile.Read(data)
	if err != nil {
		return err
	}
	ref, err := loadReference(*refFile, tab.UnitsPerEm)
	if err != nil {
		return err
	}

	r, err := fontcheck.Check(data, ref.AdvanceWidth())
	if err != nil {
		return err
	}
	fmt.Fprintf(e.stdout, "family: %s\n", r.Family)
	fmt.Fprintf(e.stdout, "%d glyphs checked, %d codepoints not covered\n", r.Checked, r.Missing)
	for _, p := range r.Problems {
		fmt.Fprintln(e.stdout, p)
	}
	if !r.OK() {
		return fmt.Errorf("%s: %d problems found", fname, len(r.Problems))
	}
	return nil
}
