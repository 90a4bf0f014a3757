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

// Package glyphstate enumerates the progress glyphs and assigns codepoints
// to them.
//
// A glyph is described by a [State]: the [Family] (bars with one to three
// lanes, or a donut ring split over two terminal cells), the [Style] flags,
// the [Variant] used at a given cell position, and one fill level per lane.
//
// There are two codepoint assignments, [Final] for the shipped font and
// [Temporary] for the font compiler, which cannot handle codepoints
// outside the basic multilingual plane.  Both use the same layout and
// differ only in the base address of each family.
package glyphstate
