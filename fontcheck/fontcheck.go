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

// Package fontcheck verifies a finished glyph font.
//
// The font is read with two independent parsers.  The character map and
// naming are taken from golang.org/x/image/font/sfnt, and every progress
// glyph is shaped with the HarfBuzz port from go-text/typesetting.
// This catches fonts which only work with the library used to write them.
package fontcheck

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/cellgauge/fontfile"
	"seehuhn.de/go/cellgauge/glyphstate"
)

// chunkSize is the maximal number of characters shaped at once.
const chunkSize = 512

// Problem describes one defect of the font.
type Problem struct {
	Code   rune // 0 for problems which concern the whole font
	Reason string
}

func (p Problem) String() string {
	if p.Code == 0 {
		return p.Reason
	}
	s, _ := glyphstate.Decode(p.Code)
	return fmt.Sprintf("U+%04X %s: %s", p.Code, s, p.Reason)
}

// Report summarises the result of a check.
type Report struct {
	Family   string
	Checked  int // managed codepoints present in the font
	Missing  int // managed codepoints without a glyph
	Problems []Problem
}

// OK reports whether no problems were found.
func (r *Report) OK() bool {
	return len(r.Problems) == 0
}

func (r *Report) addf(code rune, format string, args ...any) {
	r.Problems = append(r.Problems, Problem{Code: code, Reason: fmt.Sprintf(format, args...)})
}

// Check verifies the font data.  Every managed final codepoint which is
// mapped by the font must shape to its own glyph with the given advance
// width, in font units.
func Check(data []byte, advance int) (*Report, error) {
	xf, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("fontcheck: %w", err)
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("fontcheck: %w", err)
	}

	r := &Report{}
	var buf sfnt.Buffer
	r.Family, err = xf.Name(&buf, sfnt.NameIDFamily)
	if err != nil {
		return nil, fmt.Errorf("fontcheck: %w", err)
	}
	if r.Family != fontfile.FamilyName {
		r.addf(0, "family name %q, want %q", r.Family, fontfile.FamilyName)
	}

	var codes []rune
	gids := make(map[rune]sfnt.GlyphIndex)
	for _, f := range glyphstate.Families {
		lo, hi := glyphstate.Final.Range(f)
		for code := lo; code < hi; code++ {
			gid, err := xf.GlyphIndex(&buf, code)
			if err != nil {
				return nil, fmt.Errorf("fontcheck: %w", err)
			}
			if gid == 0 {
				r.Missing++
				continue
			}
			codes = append(codes, code)
			gids[code] = gid
		}
	}
	r.Checked = len(codes)

	upem := int(xf.UnitsPerEm())
	shaper := &shaping.HarfbuzzShaper{}
	for start := 0; start < len(codes); start += chunkSize {
		chunk := codes[start:min(start+chunkSize, len(codes))]
		out := shaper.Shape(shaping.Input{
			Text:      chunk,
			RunStart:  0,
			RunEnd:    len(chunk),
			Direction: di.DirectionLTR,
			Face:      face,
			Size:      fixed.Int26_6(upem) << 6,
			Script:    language.LookupScript(chunk[0]),
			Language:  language.NewLanguage("en"),
		})
		if len(out.Glyphs) != len(chunk) {
			r.addf(chunk[0], "%d characters shaped into %d glyphs", len(chunk), len(out.Glyphs))
			continue
		}
		for _, g := range out.Glyphs {
			code := chunk[g.TextIndex()]
			if want := gids[code]; uint32(g.GlyphID) != uint32(want) {
				r.addf(code, "shaped to glyph %d, character map gives %d", g.GlyphID, want)
			}
			if got := fixedToUnits(g.Advance); got != advance {
				r.addf(code, "advance width %d, want %d", got, advance)
			}
		}
	}
	return r, nil
}

// fixedToUnits converts a shaped advance back to font units.
// This assumes that the text was shaped at a size of one unit per pixel.
func fixedToUnits(x fixed.Int26_6) int {
	return int((x + 32) >> 6)
}
