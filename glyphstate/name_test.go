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

import "testing"

func TestNames(t *testing.T) {
	cases := []struct {
		name string
		s    State
	}{
		{"bar1_nhn_m_08", State{Family: Bar1, Variant: Middle, Levels: [MaxLanes]int{8}}},
		{"bar1_gfb_s_16", State{Family: Bar1, Style: Style{Gapped: true, Full: true, Bordered: true}, Variant: Single, Levels: [MaxLanes]int{16}}},
		{"bar2_ghn_l_80", State{Family: Bar2, Style: Style{Gapped: true}, Variant: Left, Levels: [MaxLanes]int{8, 0}}},
		{"bar3_nfb_r_807", State{Family: Bar3, Style: Style{Full: true, Bordered: true}, Variant: Right, Levels: [MaxLanes]int{8, 0, 7}}},
		{"donut2_hn_l_00", State{Family: Donut2, Variant: Left}},
		{"donut2_fb_r_32", State{Family: Donut2, Style: Style{Full: true, Bordered: true}, Variant: Right, Levels: [MaxLanes]int{32}}},
	}
	for _, c := range cases {
		if got := c.s.Name(); got != c.name {
			t.Errorf("%v: got name %q, want %q", c.s, got, c.name)
		}
		s, ok := ParseName(c.name)
		if !ok {
			t.Errorf("%q: not parsed", c.name)
		} else if s != c.s {
			t.Errorf("%q: got %v, want %v", c.name, s, c.s)
		}
	}
}

func TestNameRoundTrip(t *testing.T) {
	seen := make(map[string]bool)
	for s := range Each() {
		name := s.Name()
		if seen[name] {
			t.Fatalf("duplicate name %q", name)
		}
		seen[name] = true
		s2, ok := ParseName(name)
		if !ok || s2 != s {
			t.Fatalf("%q: got %v, %t", name, s2, ok)
		}
	}
}

func TestCompactName(t *testing.T) {
	s, ok := ParseName("bar1_nhnm_08")
	if !ok {
		t.Fatal("compact name not parsed")
	}
	if s.Name() != "bar1_nhn_m_08" {
		t.Errorf("got %q", s.Name())
	}
}

func TestMalformedNames(t *testing.T) {
	names := []string{
		"",
		"H",
		".notdef",
		"bar1_nhn_m_17",
		"bar1_nhn_m_8",
		"bar1_nhn_m_008",
		"bar1_nhn_x_08",
		"bar1_xhn_m_08",
		"bar2_nhn_m_90",
		"bar2_nhn_m_1",
		"bar3_ghb_l_00a",
		"bar4_ghb_l_000",
		"donut2_hb_m_00",
		"donut2_ghb_l_00",
		"donut2_hb_l_33",
		"donut2_hb_l_+1",
		"bar1_nhn_m_08_extra",
	}
	for _, name := range names {
		if s, ok := ParseName(name); ok {
			t.Errorf("%q parsed as %v", name, s)
		}
	}
}
