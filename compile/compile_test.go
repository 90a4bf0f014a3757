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

package compile

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/cellgauge/glyphstate"
)

func TestManifestSize(t *testing.T) {
	all := Manifest(nil)
	if len(all) != 26728 {
		t.Errorf("full manifest has %d entries, want 26728", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i].Code <= all[i-1].Code {
			t.Fatalf("manifest not sorted at %d", i)
		}
	}
	if all[0].Code != 0x1000 || all[0].State.Name() != "bar3_ghb_l_000" {
		t.Errorf("first entry %#x %s", all[0].Code, all[0].State)
	}

	pruned := Manifest(&Options{Prune: true})
	if len(pruned) != 26412 {
		t.Errorf("pruned manifest has %d entries, want 26412", len(pruned))
	}
}

func TestReachable(t *testing.T) {
	cases := []struct {
		name string
		want bool
	}{
		{"bar1_nhn_m_00", false},
		{"bar1_nhb_m_00", true},
		{"bar1_ghb_m_08", false},
		{"bar1_nfn_l_01", true},
		{"bar2_ghn_l_00", false},
		{"bar2_ghn_l_01", true},
		{"bar3_nfb_s_000", true},
		{"donut2_hn_r_00", false},
		{"donut2_hb_r_00", true},
		{"donut2_fn_l_32", true},
	}
	for _, c := range cases {
		s, ok := glyphstate.ParseName(c.name)
		if !ok {
			t.Fatalf("invalid name %q", c.name)
		}
		if got := Reachable(s); got != c.want {
			t.Errorf("%s: got %t, want %t", c.name, got, c.want)
		}
	}
}

func TestManifestSelect(t *testing.T) {
	nhn := glyphstate.Style{}
	mm := Manifest(&Options{
		Select: func(f glyphstate.Family, s glyphstate.Style) bool {
			return f == glyphstate.Bar1 && s == nhn
		},
	})
	if len(mm) != 68 {
		t.Fatalf("got %d entries, want 68", len(mm))
	}
	if mm[0].Code != 0x7C98 || mm[0].State.Name() != "bar1_nhn_l_00" {
		t.Errorf("first entry %#x %s", mm[0].Code, mm[0].State)
	}
}

func TestCompile(t *testing.T) {
	nhn := glyphstate.Style{}
	mm := Manifest(&Options{
		Select: func(f glyphstate.Family, s glyphstate.Style) bool {
			return f == glyphstate.Bar1 && s == nhn
		},
	})
	tab, err := Compile(mm, nil)
	if err != nil {
		t.Fatal(err)
	}

	if len(tab.Glyphs) != 69 || tab.Glyphs[0].Name != ".notdef" {
		t.Fatalf("unexpected glyph list")
	}
	if Advance != 670 {
		t.Errorf("advance width %d", Advance)
	}
	for code, gid := range tab.CMap {
		s, ok := glyphstate.DecodeTemporary(code)
		if !ok {
			t.Fatalf("%#x is not a temporary code", code)
		}
		g := tab.Glyphs[gid]
		if g.Name != s.Name() {
			t.Errorf("%#x maps to %s, want %s", code, g.Name, s.Name())
		}
		if g.Advance != Advance {
			t.Errorf("%s: advance %d", g.Name, g.Advance)
		}
	}

	gid, _ := tab.Lookup("bar1_nhn_m_16")
	b, ok := tab.Glyphs[gid].BBox()
	want := rect.Rect{LLx: 0, LLy: -200, URx: 670, URy: 800}
	if !ok || b != want {
		t.Errorf("full glyph has bbox %v, want %v", b, want)
	}

	gid, _ = tab.Lookup("bar1_nhn_m_00")
	if !tab.Glyphs[gid].IsEmpty() {
		t.Error("empty glyph has an outline")
	}

	gid, _ = tab.Lookup("bar1_nhn_l_16")
	if g := tab.Glyphs[gid]; g.LSB != 13 {
		t.Errorf("left glyph has lsb %d", g.LSB)
	}
}

func TestCompileDonut(t *testing.T) {
	s := glyphstate.State{
		Family:  glyphstate.Donut2,
		Style:   glyphstate.Style{Full: true, Bordered: true},
		Variant: glyphstate.Left,
		Levels:  [glyphstate.MaxLanes]int{32},
	}
	code, _ := glyphstate.EncodeTemporary(s)
	tab, err := Compile([]Entry{{State: s, Code: code}}, nil)
	if err != nil {
		t.Fatal(err)
	}
	g := tab.Glyphs[1]
	if g.NumContours() != 3 {
		t.Errorf("got %d contours, want 3", g.NumContours())
	}
	b, _ := g.BBox()
	if b.URx != 670 {
		t.Errorf("left half ends at %g", b.URx)
	}
	if d := cmp.Diff(map[rune]int{code: 1}, tab.CMap); d != "" {
		t.Error(d)
	}
}

func TestCompileDuplicate(t *testing.T) {
	mm := Manifest(&Options{
		Select: func(f glyphstate.Family, _ glyphstate.Style) bool {
			return f == glyphstate.Donut2
		},
	})
	mm = append(mm, mm[0])
	if _, err := Compile(mm, nil); err == nil {
		t.Error("duplicate code accepted")
	}
}
