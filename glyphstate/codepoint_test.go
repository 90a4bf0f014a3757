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
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFamilyParameters(t *testing.T) {
	type params struct {
		Lanes, MaxLevel, StateSpace, BlockSize, Span int
	}
	want := map[Family]params{
		Bar1:   {Lanes: 1, MaxLevel: 16, StateSpace: 17, BlockSize: 68, Span: 544},
		Bar2:   {Lanes: 2, MaxLevel: 8, StateSpace: 81, BlockSize: 324, Span: 2592},
		Bar3:   {Lanes: 3, MaxLevel: 8, StateSpace: 729, BlockSize: 2916, Span: 23328},
		Donut2: {Lanes: 1, MaxLevel: 32, StateSpace: 33, BlockSize: 66, Span: 264},
	}
	got := map[Family]params{}
	for _, f := range Families {
		got[f] = params{
			Lanes:      f.Lanes(),
			MaxLevel:   f.MaxLevel(),
			StateSpace: f.StateSpace(),
			BlockSize:  f.BlockSize(),
			Span:       f.Span(),
		}
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Fatal(d)
	}
}

func TestStyleCodes(t *testing.T) {
	var bars []string
	for _, s := range Bar2.Styles() {
		bars = append(bars, s.Code(Bar2))
	}
	wantBars := []string{"ghb", "gfb", "nhb", "nfb", "ghn", "gfn", "nhn", "nfn"}
	if d := cmp.Diff(wantBars, bars); d != "" {
		t.Error(d)
	}

	var donuts []string
	for _, s := range Donut2.Styles() {
		donuts = append(donuts, s.Code(Donut2))
	}
	wantDonuts := []string{"hb", "fb", "hn", "fn"}
	if d := cmp.Diff(wantDonuts, donuts); d != "" {
		t.Error(d)
	}

	for _, f := range Families {
		for i, s := range f.Styles() {
			if idx := s.Index(f); idx != i {
				t.Errorf("%s: style %s has index %d, want %d", f, s.Code(f), idx, i)
			}
		}
	}
}

// TestRoundTrip checks the encoding of every valid state,
// in both address spaces.
func TestRoundTrip(t *testing.T) {
	for _, space := range []*AddressSpace{Final, Temporary} {
		count := 0
		for s := range Each() {
			cp, err := space.Encode(s)
			if err != nil {
				t.Fatalf("%s: %s: %v", space, s, err)
			}
			lo, hi := space.Block(s.Family, s.Style)
			if cp < lo || cp >= hi {
				t.Fatalf("%s: %s encodes to %#x outside [%#x, %#x)", space, s, cp, lo, hi)
			}
			s2, ok := space.Decode(cp)
			if !ok {
				t.Fatalf("%s: %#x not decoded", space, cp)
			}
			if s2 != s {
				t.Fatalf("%s: %s -> %#x -> %s", space, s, cp, s2)
			}
			count++
		}
		want := 0
		for _, f := range Families {
			want += f.Span()
		}
		if count != want {
			t.Errorf("%s: %d states, want %d", space, count, want)
		}
	}
}

func TestCodepointsDense(t *testing.T) {
	// Every codepoint inside a family range decodes to a state
	// which encodes back to the same codepoint.
	for _, space := range []*AddressSpace{Final, Temporary} {
		for _, f := range Families {
			lo, hi := space.Range(f)
			for cp := lo; cp < hi; cp++ {
				s, ok := space.Decode(cp)
				if !ok {
					t.Fatalf("%s: %#x not decoded", space, cp)
				}
				cp2, err := space.Encode(s)
				if err != nil || cp2 != cp {
					t.Fatalf("%s: %#x -> %s -> %#x, %v", space, cp, s, cp2, err)
				}
			}
		}
	}
}

func TestBlocksDisjoint(t *testing.T) {
	type block struct {
		name   string
		lo, hi rune
	}
	for _, space := range []*AddressSpace{Final, Temporary} {
		var blocks []block
		for _, f := range Families {
			for _, s := range f.Styles() {
				lo, hi := space.Block(f, s)
				if hi-lo != rune(f.BlockSize()) {
					t.Errorf("%s: %s %s has size %d", space, f, s.Code(f), hi-lo)
				}
				blocks = append(blocks, block{f.String() + "_" + s.Code(f), lo, hi})
			}
		}
		for i, a := range blocks {
			for _, b := range blocks[i+1:] {
				if a.lo < b.hi && b.lo < a.hi {
					t.Errorf("%s: %s [%#x, %#x) overlaps %s [%#x, %#x)",
						space, a.name, a.lo, a.hi, b.name, b.lo, b.hi)
				}
			}
		}
	}
}

func TestAddressSpaceLimits(t *testing.T) {
	for _, f := range Families {
		_, hi := Temporary.Range(f)
		if hi > 0x10000 {
			t.Errorf("temporary range of %s ends at %#x", f, hi)
		}
		lo, hi := Final.Range(f)
		if lo < 0x100000 || hi > 0x110000 {
			t.Errorf("final range of %s is [%#x, %#x)", f, lo, hi)
		}
	}
}

func TestKnownCodepoints(t *testing.T) {
	cases := []struct {
		name  string
		space *AddressSpace
		cp    rune
	}{
		{"bar3_ghb_l_000", Temporary, 0x1000},
		{"bar2_ghb_l_01", Temporary, 0x7001},
		{"bar2_ghb_l_10", Temporary, 0x7009},
		{"bar2_gfn_m_80", Temporary, 0x76ED},
		{"donut2_fn_r_32", Temporary, 0x7F27},
		{"bar1_ghb_l_00", Temporary, 0x7B00},
		{"bar3_ghb_l_000", Final, 0x100000},
		{"bar2_ghb_l_00", Final, 0x10F000},
		{"bar1_ghb_l_00", Final, 0x10FA20},
		{"bar1_nhn_m_08", Final, 0x10FBD1},
		{"donut2_hb_l_00", Final, 0x10FE20},
		{"donut2_fb_r_32", Final, 0x10FEA3},
	}
	for _, c := range cases {
		s, ok := ParseName(c.name)
		if !ok {
			t.Errorf("cannot parse %q", c.name)
			continue
		}
		cp, err := c.space.Encode(s)
		if err != nil {
			t.Error(err)
			continue
		}
		if cp != c.cp {
			t.Errorf("%s %s: got %#x, want %#x", c.space, c.name, cp, c.cp)
		}
	}
}

func TestBar1HalfLevel(t *testing.T) {
	s, ok := ParseName("bar1_nhn_m_08")
	if !ok {
		t.Fatal("not parsed")
	}
	want := State{Family: Bar1, Style: Style{}, Variant: Middle, Levels: [MaxLanes]int{8}}
	if s != want {
		t.Fatalf("got %s, want %s", s, want)
	}

	cp, err := Encode(s)
	if err != nil {
		t.Fatal(err)
	}
	lo, hi := Final.Range(Bar1)
	if cp < lo || cp >= hi {
		t.Fatalf("%#x outside bar1 range", cp)
	}
	blockLo, _ := Final.Block(Bar1, Style{})
	off := int(cp - blockLo)
	if v := off / Bar1.StateSpace(); v != Middle.Index(Bar1) {
		t.Errorf("variant index %d", v)
	}
	if l := off % Bar1.StateSpace(); l != 8 {
		t.Errorf("level index %d", l)
	}
}

func TestDonutFullRight(t *testing.T) {
	s := State{
		Family:  Donut2,
		Style:   Style{Full: true, Bordered: true},
		Variant: Right,
		Levels:  [MaxLanes]int{32},
	}
	cp, err := EncodeTemporary(s)
	if err != nil {
		t.Fatal(err)
	}
	got, ok := DecodeTemporary(cp)
	if !ok || got != s {
		t.Fatalf("got %s, %t", got, ok)
	}
	if got.Name() != "donut2_fb_r_32" {
		t.Errorf("name %q", got.Name())
	}
}

func TestInvalidStates(t *testing.T) {
	cases := []State{
		{Family: 0, Variant: Left},
		{Family: Bar1, Variant: Left, Levels: [MaxLanes]int{17}},
		{Family: Bar1, Variant: Left, Levels: [MaxLanes]int{-1}},
		{Family: Bar1, Variant: Left, Levels: [MaxLanes]int{1, 1}},
		{Family: Bar2, Variant: Middle, Levels: [MaxLanes]int{9, 0}},
		{Family: Bar3, Variant: Single, Levels: [MaxLanes]int{0, 0, 9}},
		{Family: Bar2, Variant: 'x'},
		{Family: Donut2, Variant: Middle},
		{Family: Donut2, Variant: Single},
		{Family: Donut2, Variant: Left, Style: Style{Gapped: true}},
		{Family: Donut2, Variant: Right, Levels: [MaxLanes]int{33}},
	}
	for _, s := range cases {
		_, err := Encode(s)
		var stateErr *InvalidStateError
		if !errors.As(err, &stateErr) {
			t.Errorf("%v: got error %v", s, err)
		}
		if s.Name() != "" {
			t.Errorf("%v: invalid state has name %q", s, s.Name())
		}
	}
}

func TestUnmanagedCodepoints(t *testing.T) {
	for _, cp := range []rune{0, 'A', 0x0FFF, 0x6B20, 0x7A20, 0x7D20, 0x7F28, 0xFFFF, 0x10FFFF} {
		if s, ok := DecodeTemporary(cp); ok {
			t.Errorf("%#x decoded to %s", cp, s)
		}
		if got := Remap(cp); got != cp {
			t.Errorf("%#x remapped to %#x", cp, got)
		}
	}
	if got := Remap(0x1000); got != 0x100000 {
		t.Errorf("0x1000 remapped to %#x", got)
	}
}
