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

package outline

import (
	"cmp"

	"golang.org/x/exp/slices"
)

// Table is a glyph table together with its character map.
//
// Glyphs are addressed by their index in Glyphs (the glyph ID).
// By convention, glyph 0 is ".notdef".
type Table struct {
	UnitsPerEm int
	Ascent     int
	Descent    int // negative for descenders below the baseline
	CapHeight  int
	XHeight    int

	Glyphs []*Glyph
	CMap   map[rune]int
}

// Lookup returns the glyph ID of the glyph with the given name.
func (t *Table) Lookup(name string) (int, bool) {
	for gid, g := range t.Glyphs {
		if g != nil && g.Name == name {
			return gid, true
		}
	}
	return 0, false
}

// Mapping maps one character code to a glyph ID.
type Mapping struct {
	Code rune
	GID  int
}

// Mappings returns the character map of the table, sorted by code.
func (t *Table) Mappings() []Mapping {
	res := make([]Mapping, 0, len(t.CMap))
	for code, gid := range t.CMap {
		res = append(res, Mapping{Code: code, GID: gid})
	}
	slices.SortFunc(res, func(a, b Mapping) int {
		return cmp.Compare(a.Code, b.Code)
	})
	return res
}

// SetMappings replaces the character map of the table.
func (t *Table) SetMappings(mm []Mapping) {
	t.CMap = make(map[rune]int, len(mm))
	for _, m := range mm {
		t.CMap[m.Code] = m.GID
	}
}

// BMP returns the mappings for codes in the basic multilingual plane,
// i.e. codes which fit into 16 bits.  The input must be sorted by code;
// the result shares the order.
func BMP(mm []Mapping) []Mapping {
	n, _ := slices.BinarySearchFunc(mm, rune(0x10000), func(m Mapping, code rune) int {
		return cmp.Compare(m.Code, code)
	})
	return mm[:n:n]
}
