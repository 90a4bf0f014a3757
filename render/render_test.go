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

package render

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/cellgauge/glyphstate"
)

// glyphs converts glyph names into the rendered string.
// The name " " stands for a space.
func glyphs(t *testing.T, names ...string) string {
	t.Helper()
	var b strings.Builder
	for _, name := range names {
		if name == " " {
			b.WriteByte(' ')
			continue
		}
		s, ok := glyphstate.ParseName(name)
		if !ok {
			t.Fatalf("invalid glyph name %q", name)
		}
		cp, err := glyphstate.Encode(s)
		if err != nil {
			t.Fatal(err)
		}
		b.WriteRune(cp)
	}
	return b.String()
}

func TestBar(t *testing.T) {
	cases := []struct {
		values []float64
		opt    Options
		want   []string
	}{
		{
			values: []float64{42},
			want: []string{
				"bar1_nhn_l_16", "bar1_nhn_m_16", "bar1_nhn_m_16", "bar1_nhn_m_06",
				" ", " ", " ", " ",
			},
		},
		{
			values: []float64{0},
			opt:    Options{Width: 3, Bordered: true},
			want:   []string{"bar1_nhb_l_00", "bar1_nhb_m_00", "bar1_nhb_r_00"},
		},
		{
			values: []float64{100},
			opt:    Options{Width: 1, Full: true},
			want:   []string{"bar1_nfn_s_16"},
		},
		{
			values: []float64{20, 65},
			opt:    Options{Gapped: true, Bordered: true},
			want: []string{
				"bar2_ghb_l_88", "bar2_ghb_m_58", "bar2_ghb_m_08", "bar2_ghb_m_08",
				"bar2_ghb_m_08", "bar2_ghb_m_02", "bar2_ghb_m_00", "bar2_ghb_r_00",
			},
		},
		{
			values: []float64{20, 45, 70},
			opt:    Options{Width: 2, Full: true},
			want:   []string{"bar3_nfn_l_378", "bar3_nfn_r_003"},
		},
		{
			values: nil,
			opt:    Options{Width: 2},
			want:   []string{" ", " "},
		},
	}
	for i, c := range cases {
		got, err := Bar(c.values, &c.opt)
		if err != nil {
			t.Fatalf("%d: %v", i, err)
		}
		want := glyphs(t, c.want...)
		if got != want {
			t.Errorf("%d: got %q, want %q", i, got, want)
		}
	}
}

func TestBarHalf(t *testing.T) {
	got, err := Bar([]float64{50}, &Options{Width: 3})
	if err != nil {
		t.Fatal(err)
	}
	cells := []rune(got)
	if len(cells) != 3 || cells[1] != 0x10FBD1 || cells[2] != ' ' {
		t.Errorf("got %q", got)
	}
}

func TestBarGappedSingleLane(t *testing.T) {
	plain, err := Bar([]float64{42}, &Options{Bordered: true})
	if err != nil {
		t.Fatal(err)
	}
	gapped, err := Bar([]float64{42}, &Options{Bordered: true, Gapped: true})
	if err != nil {
		t.Fatal(err)
	}
	if plain != gapped {
		t.Errorf("gapped one-lane bar differs: %q != %q", gapped, plain)
	}
}

func TestBarExtraValues(t *testing.T) {
	a, _ := Bar([]float64{10, 20, 30}, nil)
	b, _ := Bar([]float64{10, 20, 30, 40}, nil)
	if a != b {
		t.Errorf("%q != %q", a, b)
	}
}

func TestBarWidth(t *testing.T) {
	for _, width := range []int{0, 1, 5, 40} {
		s, err := Bar([]float64{30, 60}, &Options{Width: width, Bordered: true})
		if err != nil {
			t.Fatal(err)
		}
		want := width
		if width == 0 {
			want = DefaultWidth
		}
		if n := utf8.RuneCountInString(s); n != want {
			t.Errorf("width %d: got %d cells", width, n)
		}
	}

	_, err := Bar([]float64{1}, &Options{Width: -1})
	if !errors.Is(err, ErrWidth) {
		t.Errorf("negative width: got error %v", err)
	}
}

func TestSeamSpace(t *testing.T) {
	s, _ := Bar([]float64{100}, &Options{Width: 2, SeamSpace: true})
	if utf8.RuneCountInString(s) != 3 || !strings.HasSuffix(s, " ") {
		t.Errorf("got %q", s)
	}
	d, _ := Donut(100, &Options{SeamSpace: true})
	if utf8.RuneCountInString(d) != 3 || !strings.HasSuffix(d, " ") {
		t.Errorf("got %q", d)
	}
}

func TestClamp(t *testing.T) {
	cases := []struct{ in, out float64 }{
		{-5, 0},
		{0, 0},
		{42.5, 42.5},
		{100, 100},
		{150, 100},
		{math.NaN(), 0},
		{math.Inf(1), 0},
		{math.Inf(-1), 0},
	}
	for _, c := range cases {
		if got := Clamp(c.in); got != c.out {
			t.Errorf("Clamp(%g) = %g, want %g", c.in, got, c.out)
		}
	}
}

func TestLaneLevel(t *testing.T) {
	units := Units(42, 8, 16)
	if units != 54 {
		t.Fatalf("got %d units, want 54", units)
	}
	var got []int
	for i := range 8 {
		got = append(got, LaneLevel(units, i, 16))
	}
	want := []int{16, 16, 16, 6, 0, 0, 0, 0}
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}
}

func TestVariantFor(t *testing.T) {
	var got []glyphstate.Variant
	for i := range 4 {
		got = append(got, VariantFor(i, 4))
	}
	want := []glyphstate.Variant{'l', 'm', 'm', 'r'}
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}
	if VariantFor(0, 1) != glyphstate.Single {
		t.Error("one-cell bar does not use the single variant")
	}
}

func TestDonut(t *testing.T) {
	cases := []struct {
		pct  float64
		opt  Options
		want []string
	}{
		{42, Options{}, []string{"donut2_hn_l_13", "donut2_hn_r_13"}},
		{0, Options{}, []string{" ", " "}},
		{1, Options{Full: true}, []string{" ", " "}},
		{0, Options{Bordered: true}, []string{"donut2_hb_l_00", "donut2_hb_r_00"}},
		{100, Options{Full: true, Bordered: true}, []string{"donut2_fb_l_32", "donut2_fb_r_32"}},
		{250, Options{Full: true}, []string{"donut2_fn_l_32", "donut2_fn_r_32"}},
	}
	for i, c := range cases {
		got, err := Donut(c.pct, &c.opt)
		if err != nil {
			t.Fatal(err)
		}
		want := glyphs(t, c.want...)
		if got != want {
			t.Errorf("%d: got %q, want %q", i, got, want)
		}
	}
}

func TestRequest(t *testing.T) {
	req := &Request{Values: []float64{42, 99}, Donut: true}
	got, err := req.Render()
	if err != nil {
		t.Fatal(err)
	}
	want, _ := Donut(42, nil)
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWriteShowcase(t *testing.T) {
	buf := &bytes.Buffer{}
	err := WriteShowcase(buf, 0)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")

	var titles []string
	rows := 0
	for i, line := range lines {
		switch {
		case line == "":
			titles = append(titles, lines[i+1])
		case strings.Contains(line, ":"):
			rows++
			label := line[:LabelWidth]
			if !strings.HasSuffix(strings.TrimRight(label, " "), ":") {
				t.Errorf("malformed row %q", line)
			}
			cells := utf8.RuneCountInString(line[LabelWidth:])
			if cells != DefaultWidth && cells != 2 {
				t.Errorf("row %q has %d cells", line, cells)
			}
		}
	}
	wantTitles := []string{
		"Bar1 (single lane)",
		"Bar2 (two lanes)",
		"Bar3 (three lanes)",
		"Donut (single only)",
	}
	if d := cmp.Diff(wantTitles, titles); d != "" {
		t.Error(d)
	}
	if rows != 16 {
		t.Errorf("got %d rows, want 16", rows)
	}
}

func TestFitWidth(t *testing.T) {
	cases := []struct{ columns, want int }{
		{0, DefaultWidth},
		{80, DefaultWidth},
		{30, 5},
		{10, 1},
	}
	for _, c := range cases {
		if got := FitWidth(c.columns); got != c.want {
			t.Errorf("FitWidth(%d) = %d, want %d", c.columns, got, c.want)
		}
	}
}
