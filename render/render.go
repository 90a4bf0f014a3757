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

// Package render converts percentages into strings of progress glyphs.
//
// The strings use the final codepoints of the glyph font, so they only
// display correctly in a terminal which uses the font.
package render

import (
	"errors"
	"math"
	"strings"

	"seehuhn.de/go/cellgauge/glyphstate"
	"seehuhn.de/go/cellgauge/outline"
)

// DefaultWidth is the width of a bar, in cells, if no width is given.
const DefaultWidth = 8

// ErrWidth is returned for negative bar widths.
// A zero width selects DefaultWidth.
var ErrWidth = errors.New("render: negative bar width")

// Options control the appearance of an indicator.
type Options struct {
	// Width is the number of cells of a bar.  If this is zero,
	// DefaultWidth is used.  Donuts always use two cells.
	Width int

	Gapped   bool // separate the lanes of multi-lane bars
	Full     bool // use the full cell height instead of the cap height
	Bordered bool // draw a frame

	// SeamSpace appends a space after the indicator.  Some terminals
	// show the last glyph of a line clipped without this.
	SeamSpace bool
}

// Clamp restricts pct to the range [0, 100].
// Values which are not finite give 0.
func Clamp(pct float64) float64 {
	if math.IsNaN(pct) || math.IsInf(pct, 0) {
		return 0
	}
	return max(0, min(100, pct))
}

// Units converts a percentage into the number of filled level units of
// a lane which spans width cells with levels units each.
func Units(pct float64, width, levels int) int {
	return outline.Round(Clamp(pct) / 100 * float64(width*levels))
}

// LaneLevel returns the level of cell idx for a lane with the given
// number of filled units.
func LaneLevel(units, idx, levels int) int {
	r := units - idx*levels
	return max(0, min(levels, r))
}

// VariantFor returns the glyph variant for cell i of a bar with the
// given width.
func VariantFor(i, width int) glyphstate.Variant {
	switch {
	case width == 1:
		return glyphstate.Single
	case i == 0:
		return glyphstate.Left
	case i == width-1:
		return glyphstate.Right
	default:
		return glyphstate.Middle
	}
}

// Bar renders a bar with one lane per value.  The lane count is the
// number of values, limited to the range 1 to 3; a bar without values
// shows a single empty lane.  Extra values are ignored.
func Bar(values []float64, opt *Options) (string, error) {
	if opt == nil {
		opt = &Options{}
	}
	width := opt.Width
	if width == 0 {
		width = DefaultWidth
	} else if width < 0 {
		return "", ErrWidth
	}

	lanes := max(1, min(glyphstate.MaxLanes, len(values)))
	var f glyphstate.Family
	switch lanes {
	case 1:
		f = glyphstate.Bar1
	case 2:
		f = glyphstate.Bar2
	default:
		f = glyphstate.Bar3
	}
	style := glyphstate.Style{
		// one-lane bars have no gaps
		Gapped:   opt.Gapped && lanes > 1,
		Full:     opt.Full,
		Bordered: opt.Bordered,
	}

	levels := f.MaxLevel()
	var units [glyphstate.MaxLanes]int
	for i := range lanes {
		if i < len(values) {
			units[i] = Units(values[i], width, levels)
		}
	}

	var b strings.Builder
	for i := range width {
		s := glyphstate.State{
			Family:  f,
			Style:   style,
			Variant: VariantFor(i, width),
		}
		for lane := range lanes {
			s.Levels[lane] = LaneLevel(units[lane], i, levels)
		}
		if !style.Bordered && s.IsBlank() {
			b.WriteByte(' ')
			continue
		}
		cp, err := glyphstate.Encode(s)
		if err != nil {
			return "", err
		}
		b.WriteRune(cp)
	}
	if opt.SeamSpace {
		b.WriteByte(' ')
	}
	return b.String(), nil
}

// Donut renders a two-cell donut.  The bar width and the gap setting
// of opt are ignored.
func Donut(pct float64, opt *Options) (string, error) {
	if opt == nil {
		opt = &Options{}
	}
	f := glyphstate.Donut2
	level := outline.Round(Clamp(pct) / 100 * float64(f.MaxLevel()))
	style := glyphstate.Style{Full: opt.Full, Bordered: opt.Bordered}

	var b strings.Builder
	if !style.Bordered && level == 0 {
		b.WriteString("  ")
	} else {
		for _, v := range []glyphstate.Variant{glyphstate.Left, glyphstate.Right} {
			cp, err := glyphstate.Encode(glyphstate.State{
				Family:  f,
				Style:   style,
				Variant: v,
				Levels:  [glyphstate.MaxLanes]int{level},
			})
			if err != nil {
				return "", err
			}
			b.WriteRune(cp)
		}
	}
	if opt.SeamSpace {
		b.WriteByte(' ')
	}
	return b.String(), nil
}
