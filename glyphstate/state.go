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

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
)

// MaxLanes is the largest number of lanes of any family.
const MaxLanes = 3

// State fully describes one glyph.
//
// Levels holds one fill level per lane, top lane first.  Entries beyond
// the lane count of the family must be zero, so that State values
// can be compared with == and used as map keys.
type State struct {
	Family  Family
	Style   Style
	Variant Variant
	Levels  [MaxLanes]int
}

// InvalidStateError is returned for states outside the valid domain.
type InvalidStateError struct {
	State  State
	Reason string
}

func (err *InvalidStateError) Error() string {
	return "glyphstate: invalid " + err.State.Family.String() + " state: " + err.Reason
}

// Validate checks that s lies inside the valid domain of its family.
func (s State) Validate() error {
	f := s.Family
	if !f.IsValid() {
		return &InvalidStateError{State: s, Reason: "unknown family"}
	}
	if s.Style.Index(f) < 0 {
		return &InvalidStateError{State: s, Reason: "style not used by family"}
	}
	if s.Variant.Index(f) < 0 {
		return &InvalidStateError{
			State:  s,
			Reason: fmt.Sprintf("variant %q not used by family", byte(s.Variant)),
		}
	}
	n := f.Lanes()
	maxLevel := f.MaxLevel()
	for i, level := range s.Levels {
		if i >= n {
			if level != 0 {
				return &InvalidStateError{
					State:  s,
					Reason: fmt.Sprintf("level set for unused lane %d", i),
				}
			}
			continue
		}
		if level < 0 || level > maxLevel {
			return &InvalidStateError{
				State:  s,
				Reason: fmt.Sprintf("lane %d level %d outside [0, %d]", i, level, maxLevel),
			}
		}
	}
	return nil
}

// LevelIndex returns the mixed-radix index of the level tuple.
// The first lane is the most significant digit.
func (s State) LevelIndex() int {
	r := s.Family.Radix()
	idx := 0
	for i := range s.Family.Lanes() {
		idx = idx*r + s.Levels[i]
	}
	return idx
}

// levelsFromIndex is the inverse of State.LevelIndex.
func levelsFromIndex(f Family, idx int) [MaxLanes]int {
	var levels [MaxLanes]int
	r := f.Radix()
	for i := f.Lanes() - 1; i >= 0; i-- {
		levels[i] = idx % r
		idx /= r
	}
	return levels
}

// IsBlank reports whether all lanes of s are empty.
func (s State) IsBlank() bool {
	return s.Levels == [MaxLanes]int{}
}

// Name returns the glyph name of s, for example "bar1_nhn_m_08",
// "bar3_ghb_l_807" or "donut2_fb_r_32".
// The empty string is returned for invalid states.
func (s State) Name() string {
	if s.Validate() != nil {
		return ""
	}
	f := s.Family
	var digits string
	switch f {
	case Bar1, Donut2:
		digits = fmt.Sprintf("%02d", s.Levels[0])
	default:
		var b strings.Builder
		for i := range f.Lanes() {
			b.WriteByte('0' + byte(s.Levels[i]))
		}
		digits = b.String()
	}
	return f.String() + "_" + s.Style.Code(f) + "_" + s.Variant.String() + "_" + digits
}

func (s State) String() string {
	if name := s.Name(); name != "" {
		return name
	}
	return fmt.Sprintf("%s{%+v %q %v}", s.Family, s.Style, byte(s.Variant), s.Levels)
}

// ParseName parses a glyph name as produced by State.Name.
// The compact form without the separator between style and variant,
// for example "bar1_nhnm_08", is also accepted.
//
// Malformed names and names with out-of-range levels give ok == false.
func ParseName(name string) (s State, ok bool) {
	parts := strings.Split(name, "_")
	if len(parts) == 3 && len(parts[1]) > 1 {
		sv := parts[1]
		parts = []string{parts[0], sv[:len(sv)-1], sv[len(sv)-1:], parts[2]}
	}
	if len(parts) != 4 {
		return State{}, false
	}

	f, ok := ParseFamily(parts[0])
	if !ok {
		return State{}, false
	}
	style, ok := ParseStyle(f, parts[1])
	if !ok {
		return State{}, false
	}
	if len(parts[2]) != 1 {
		return State{}, false
	}
	v := Variant(parts[2][0])
	if v.Index(f) < 0 {
		return State{}, false
	}

	s = State{Family: f, Style: style, Variant: v}
	digits := parts[3]
	switch f {
	case Bar1, Donut2:
		if len(digits) != 2 || !allDigits(digits) {
			return State{}, false
		}
		level, err := strconv.Atoi(digits)
		if err != nil {
			return State{}, false
		}
		s.Levels[0] = level
	default:
		if len(digits) != f.Lanes() || !allDigits(digits) {
			return State{}, false
		}
		for i := range f.Lanes() {
			s.Levels[i] = int(digits[i] - '0')
		}
	}

	if s.Validate() != nil {
		return State{}, false
	}
	return s, true
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// All iterates over every valid state of the family, in codepoint order:
// by style, then by variant, then by level tuple.
func All(f Family) iter.Seq[State] {
	return func(yield func(State) bool) {
		for _, style := range f.Styles() {
			for _, v := range f.Variants() {
				for idx := range f.StateSpace() {
					s := State{
						Family:  f,
						Style:   style,
						Variant: v,
						Levels:  levelsFromIndex(f, idx),
					}
					if !yield(s) {
						return
					}
				}
			}
		}
	}
}

// Each iterates over every valid state of every family.
func Each() iter.Seq[State] {
	return func(yield func(State) bool) {
		for _, f := range Families {
			for s := range All(f) {
				if !yield(s) {
					return
				}
			}
		}
	}
}
