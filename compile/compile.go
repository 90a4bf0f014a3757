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

// Package compile turns the glyph geometry into a glyph table, addressed
// by temporary codepoints.  The result is the input of the alignment step.
package compile

import (
	"fmt"

	"golang.org/x/exp/slices"
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/cellgauge/glyphstate"
	"seehuhn.de/go/cellgauge/outline"
	"seehuhn.de/go/cellgauge/shape"
)

// Vertical metrics of the compiled font.
const (
	UnitsPerEm = 1000
	FontHeight = 1000
	Descent    = 200
)

// scale maps design units to font units.
const scale = float64(FontHeight) / shape.Height

// DesignToFont maps the design grid (y down, origin top left)
// to font units (y up, origin on the baseline).
var DesignToFont = matrix.Matrix{scale, 0, 0, -scale, 0, FontHeight - Descent}

// Advance is the advance width of all compiled glyphs.
var Advance = outline.Round(shape.Width * scale)

// Entry is one glyph of the manifest.
type Entry struct {
	State glyphstate.State
	Code  rune // temporary codepoint
}

// Options select the glyphs of a manifest.
type Options struct {
	// Select restricts the manifest to some families and styles.
	// If this is nil, all styles of all families are included.
	Select func(glyphstate.Family, glyphstate.Style) bool

	// Prune omits glyphs which the renderer never emits.
	Prune bool
}

// Manifest lists the glyphs to compile, in codepoint order.
func Manifest(opt *Options) []Entry {
	if opt == nil {
		opt = &Options{}
	}
	var res []Entry
	for s := range glyphstate.Each() {
		if opt.Select != nil && !opt.Select(s.Family, s.Style) {
			continue
		}
		if opt.Prune && !Reachable(s) {
			continue
		}
		code, err := glyphstate.EncodeTemporary(s)
		if err != nil {
			// Each only yields valid states.
			panic(err)
		}
		res = append(res, Entry{State: s, Code: code})
	}
	// The temporary family blocks are not in family order.
	slices.SortFunc(res, func(a, b Entry) int { return int(a.Code - b.Code) })
	return res
}

// Reachable reports whether the renderer can emit the glyph for s.
//
// Empty cells without a border are rendered as spaces, and one-lane bars
// are never drawn with a lane gap.
func Reachable(s glyphstate.State) bool {
	if !s.Style.Bordered && s.IsBlank() {
		return false
	}
	if s.Family == glyphstate.Bar1 && s.Style.Gapped {
		return false
	}
	return true
}

// Compile builds the glyphs listed in the manifest.
// Glyph 0 of the result is an empty ".notdef" glyph.
// If t is nil, [shape.DefaultTuning] is used.
func Compile(entries []Entry, t *shape.Tuning) (*outline.Table, error) {
	if t == nil {
		t = &shape.DefaultTuning
	}
	tab := &outline.Table{
		UnitsPerEm: UnitsPerEm,
		Ascent:     FontHeight - Descent,
		Descent:    -Descent,
		Glyphs:     make([]*outline.Glyph, 0, len(entries)+1),
		CMap:       make(map[rune]int, len(entries)),
	}
	tab.Glyphs = append(tab.Glyphs, &outline.Glyph{Name: ".notdef", Advance: Advance})

	for _, e := range entries {
		if _, dup := tab.CMap[e.Code]; dup {
			return nil, fmt.Errorf("compile: duplicate code %#x", e.Code)
		}
		pp, err := t.Parts(e.State)
		if err != nil {
			return nil, err
		}
		g := &outline.Glyph{
			Name:     e.State.Name(),
			Contours: shape.Contours(pp, DesignToFont),
			Advance:  Advance,
		}
		if b, ok := g.BBox(); ok {
			g.LSB = outline.Round(b.LLx)
		}
		tab.CMap[e.Code] = len(tab.Glyphs)
		tab.Glyphs = append(tab.Glyphs, g)
	}
	return tab, nil
}
