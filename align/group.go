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

package align

import (
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/cellgauge/glyphstate"
	"seehuhn.de/go/cellgauge/outline"
)

type member struct {
	gid   int
	state glyphstate.State
}

// group holds the managed glyphs of one family and style,
// in glyph ID order.
type group struct {
	family  glyphstate.Family
	style   glyphstate.Style
	members []member
}

type groupKey struct {
	family glyphstate.Family
	style  glyphstate.Style
}

// collect finds the managed glyphs in t and groups them by family and
// style.  Groups are returned in order of first appearance.
func collect(t *outline.Table) []*group {
	var groups []*group
	byKey := make(map[groupKey]*group)
	for gid, glyph := range t.Glyphs {
		if glyph == nil {
			continue
		}
		s, ok := glyphstate.ParseName(glyph.Name)
		if !ok {
			continue
		}
		key := groupKey{s.Family, s.Style}
		g := byKey[key]
		if g == nil {
			g = &group{family: s.Family, style: s.Style}
			byKey[key] = g
			groups = append(groups, g)
		}
		g.members = append(g.members, member{gid: gid, state: s})
	}
	return groups
}

// candidate is one row of the representative decision table.
// A nil levels field matches any level tuple.
type candidate struct {
	variant glyphstate.Variant
	levels  *[glyphstate.MaxLanes]int
}

// candidates returns the decision table for choosing a representative
// glyph of the given variant, in order of preference: the glyph with the
// largest levels, the empty glyph, any glyph.
func (g *group) candidates(v glyphstate.Variant) []candidate {
	hi := g.levelMaxima()
	lo := [glyphstate.MaxLanes]int{}
	return []candidate{
		{variant: v, levels: &hi},
		{variant: v, levels: &lo},
		{variant: v},
	}
}

// levelMaxima returns the componentwise maximum of all level tuples.
func (g *group) levelMaxima() [glyphstate.MaxLanes]int {
	var hi [glyphstate.MaxLanes]int
	for _, m := range g.members {
		for i, level := range m.state.Levels {
			hi[i] = max(hi[i], level)
		}
	}
	return hi
}

// pick returns the first group member which matches the decision table
// for variant v.
func (g *group) pick(v glyphstate.Variant) (member, bool) {
	for _, c := range g.candidates(v) {
		for _, m := range g.members {
			if m.state.Variant != c.variant {
				continue
			}
			if c.levels != nil && m.state.Levels != *c.levels {
				continue
			}
			return m, true
		}
	}
	return member{}, false
}

// representative returns the glyph used to measure the group.
// Bars are measured on a middle glyph, donuts on a left half.
// If the group has no glyph of this variant, the first member is used.
func (g *group) representative() member {
	v := glyphstate.Left
	if g.family.IsBar() {
		v = glyphstate.Middle
	}
	if m, ok := g.pick(v); ok {
		return m
	}
	return g.members[0]
}

// transform applies m to all glyphs of the group.
func (g *group) transform(t *outline.Table, m matrix.Matrix) {
	for _, mem := range g.members {
		t.Glyphs[mem.gid].Transform(m)
	}
}
