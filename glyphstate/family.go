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

package glyphstate

import "fmt"

// Family identifies the shape category of a glyph.
type Family uint8

// These are the glyph families.
const (
	Bar1   Family = iota + 1 // one-lane bar
	Bar2                     // two-lane bar
	Bar3                     // three-lane bar
	Donut2                   // donut ring split into two cells
)

// Families lists all glyph families, in canonical order.
var Families = []Family{Bar1, Bar2, Bar3, Donut2}

func (f Family) String() string {
	switch f {
	case Bar1:
		return "bar1"
	case Bar2:
		return "bar2"
	case Bar3:
		return "bar3"
	case Donut2:
		return "donut2"
	default:
		return fmt.Sprintf("Family(%d)", uint8(f))
	}
}

// ParseFamily converts a family name like "bar2" into a Family.
func ParseFamily(s string) (Family, bool) {
	for _, f := range Families {
		if f.String() == s {
			return f, true
		}
	}
	return 0, false
}

// IsValid reports whether f is one of the known families.
func (f Family) IsValid() bool {
	return f >= Bar1 && f <= Donut2
}

// IsBar reports whether f is one of the bar families.
func (f Family) IsBar() bool {
	return f == Bar1 || f == Bar2 || f == Bar3
}

// Lanes returns the number of independently filled lanes.
// Donuts have a single lane.
func (f Family) Lanes() int {
	switch f {
	case Bar1, Donut2:
		return 1
	case Bar2:
		return 2
	case Bar3:
		return 3
	default:
		return 0
	}
}

// MaxLevel returns the largest fill level of a lane.
func (f Family) MaxLevel() int {
	switch f {
	case Bar1:
		return 16
	case Bar2, Bar3:
		return 8
	case Donut2:
		return 32
	default:
		return 0
	}
}

// Radix returns the number of distinct levels per lane.
func (f Family) Radix() int {
	return f.MaxLevel() + 1
}

// StateSpace returns the number of level tuples for one style and variant.
// This is Radix()^Lanes().
func (f Family) StateSpace() int {
	n := 1
	for range f.Lanes() {
		n *= f.Radix()
	}
	return n
}

// Styles returns the styles of the family, in codepoint order.
func (f Family) Styles() []Style {
	switch {
	case f.IsBar():
		return barStyles
	case f == Donut2:
		return donutStyles
	default:
		return nil
	}
}

// Variants returns the variants of the family, in codepoint order.
func (f Family) Variants() []Variant {
	switch {
	case f.IsBar():
		return barVariants
	case f == Donut2:
		return donutSides
	default:
		return nil
	}
}

// BlockSize returns the number of codepoints used by one style.
func (f Family) BlockSize() int {
	return len(f.Variants()) * f.StateSpace()
}

// Span returns the number of codepoints used by the whole family.
func (f Family) Span() int {
	return len(f.Styles()) * f.BlockSize()
}

// Style collects the rendering flags of a glyph.
//
// Donut glyphs have no lane gaps; for donuts Gapped must be false.
type Style struct {
	Gapped   bool // lanes separated by a gap (bars only)
	Full     bool // fill the full block height instead of the cap height
	Bordered bool // draw a frame around the fill
}

var (
	barStyles = []Style{
		{Gapped: true, Full: false, Bordered: true},   // ghb
		{Gapped: true, Full: true, Bordered: true},    // gfb
		{Gapped: false, Full: false, Bordered: true},  // nhb
		{Gapped: false, Full: true, Bordered: true},   // nfb
		{Gapped: true, Full: false, Bordered: false},  // ghn
		{Gapped: true, Full: true, Bordered: false},   // gfn
		{Gapped: false, Full: false, Bordered: false}, // nhn
		{Gapped: false, Full: true, Bordered: false},  // nfn
	}
	donutStyles = []Style{
		{Full: false, Bordered: true},  // hb
		{Full: true, Bordered: true},   // fb
		{Full: false, Bordered: false}, // hn
		{Full: true, Bordered: false},  // fn
	}
)

// Index returns the position of the style within the styles of the family,
// or -1 if the style is not used by the family.
func (s Style) Index(f Family) int {
	idx := 0
	if s.Full {
		idx++
	}
	switch {
	case f.IsBar():
		if !s.Gapped {
			idx += 2
		}
		if !s.Bordered {
			idx += 4
		}
	case f == Donut2:
		if s.Gapped {
			return -1
		}
		if !s.Bordered {
			idx += 2
		}
	default:
		return -1
	}
	return idx
}

// Code returns the short style identifier used in glyph names,
// for example "ghb" for a gapped, cap-height, bordered bar
// or "fn" for a full-height donut without border.
func (s Style) Code(f Family) string {
	var buf []byte
	if f.IsBar() {
		buf = append(buf, flag(s.Gapped, 'g', 'n'))
	}
	buf = append(buf, flag(s.Full, 'f', 'h'), flag(s.Bordered, 'b', 'n'))
	return string(buf)
}

func flag(set bool, yes, no byte) byte {
	if set {
		return yes
	}
	return no
}

// ParseStyle converts a style code like "nhn" (bars) or "fb" (donuts)
// into a Style.
func ParseStyle(f Family, code string) (Style, bool) {
	for _, s := range f.Styles() {
		if s.Code(f) == code {
			return s, true
		}
	}
	return Style{}, false
}

// Variant distinguishes the glyphs used at different positions
// of a multi-cell indicator.
type Variant byte

// These are the glyph variants.  Bars use all four,
// donuts use Left and Right for the two halves of the ring.
const (
	Left   Variant = 'l' // leftmost cell, capped on the left
	Middle Variant = 'm' // interior cell
	Right  Variant = 'r' // rightmost cell, capped on the right
	Single Variant = 's' // one-cell indicator, capped on both sides
)

var (
	barVariants = []Variant{Left, Middle, Right, Single}
	donutSides  = []Variant{Left, Right}
)

func (v Variant) String() string {
	return string(rune(v))
}

// Index returns the position of the variant within the variants of the
// family, or -1 if the variant is not used by the family.
func (v Variant) Index(f Family) int {
	for i, w := range f.Variants() {
		if v == w {
			return i
		}
	}
	return -1
}

// LeftCap reports whether the variant closes the indicator on the left.
func (v Variant) LeftCap() bool {
	return v == Left || v == Single
}

// RightCap reports whether the variant closes the indicator on the right.
func (v Variant) RightCap() bool {
	return v == Right || v == Single
}
