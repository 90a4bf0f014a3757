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

// AddressSpace assigns codepoints to glyph states.
//
// Every family occupies a contiguous range starting at its base address.
// Inside this range, the codepoint of a state is
//
//	base + styleIndex*BlockSize + variantIndex*StateSpace + LevelIndex
//
// The base addresses are the only per-space constants.
type AddressSpace struct {
	name  string
	bases map[Family]rune
}

// These are the two address spaces used by the font build.
var (
	// Final holds the codepoints of the shipped font.
	// All of these are in the supplementary private use area B.
	Final = &AddressSpace{
		name: "final",
		bases: map[Family]rune{
			Bar3:   0x100000,
			Bar2:   0x10F000,
			Bar1:   0x10FA20,
			Donut2: 0x10FE20,
		},
	}

	// Temporary holds codepoints which fit into 16 bits.
	// These are only used while the glyph outlines are compiled.
	Temporary = &AddressSpace{
		name: "temporary",
		bases: map[Family]rune{
			Bar3:   0x1000,
			Bar2:   0x7000,
			Bar1:   0x7B00,
			Donut2: 0x7E20,
		},
	}
)

func (a *AddressSpace) String() string {
	return a.name
}

// Range returns the codepoint range [lo, hi) used by family f.
func (a *AddressSpace) Range(f Family) (lo, hi rune) {
	base, ok := a.bases[f]
	if !ok {
		return 0, 0
	}
	return base, base + rune(f.Span())
}

// Block returns the codepoint range [lo, hi) used by one style of family f.
// The empty range is returned if the style is not used by the family.
func (a *AddressSpace) Block(f Family, s Style) (lo, hi rune) {
	idx := s.Index(f)
	base, ok := a.bases[f]
	if idx < 0 || !ok {
		return 0, 0
	}
	lo = base + rune(idx*f.BlockSize())
	return lo, lo + rune(f.BlockSize())
}

// Encode returns the codepoint of the state s.
// An *InvalidStateError is returned if s is not a valid state.
func (a *AddressSpace) Encode(s State) (rune, error) {
	err := s.Validate()
	if err != nil {
		return 0, err
	}
	f := s.Family
	lo, _ := a.Block(f, s.Style)
	return lo + rune(s.Variant.Index(f)*f.StateSpace()+s.LevelIndex()), nil
}

// Decode returns the state encoded by cp.
// If cp does not lie inside any family range, ok is false.
func (a *AddressSpace) Decode(cp rune) (s State, ok bool) {
	for _, f := range Families {
		lo, hi := a.Range(f)
		if cp < lo || cp >= hi {
			continue
		}
		off := int(cp - lo)
		styleIdx := off / f.BlockSize()
		off %= f.BlockSize()
		variantIdx := off / f.StateSpace()
		off %= f.StateSpace()
		return State{
			Family:  f,
			Style:   f.Styles()[styleIdx],
			Variant: f.Variants()[variantIdx],
			Levels:  levelsFromIndex(f, off),
		}, true
	}
	return State{}, false
}

// Encode returns the final codepoint of the state s.
func Encode(s State) (rune, error) {
	return Final.Encode(s)
}

// Decode returns the state with final codepoint cp.
func Decode(cp rune) (State, bool) {
	return Final.Decode(cp)
}

// EncodeTemporary returns the temporary codepoint of the state s.
func EncodeTemporary(s State) (rune, error) {
	return Temporary.Encode(s)
}

// DecodeTemporary returns the state with temporary codepoint cp.
// Codepoints outside the temporary ranges are not managed glyphs
// and give ok == false.
func DecodeTemporary(cp rune) (State, bool) {
	return Temporary.Decode(cp)
}

// Remap converts a temporary codepoint into the corresponding
// final codepoint.  Unmanaged codepoints are returned unchanged.
func Remap(cp rune) rune {
	s, ok := Temporary.Decode(cp)
	if !ok {
		return cp
	}
	final, err := Final.Encode(s)
	if err != nil {
		// Decode only returns valid states.
		panic("unreachable")
	}
	return final
}
