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

package shape

import (
	"golang.org/x/exp/slices"

	"seehuhn.de/go/cellgauge/glyphstate"
)

// Parts returns the geometry of the glyph for state s.
// Invalid states give an *glyphstate.InvalidStateError.
func (t *Tuning) Parts(s glyphstate.State) ([]Part, error) {
	err := s.Validate()
	if err != nil {
		return nil, err
	}
	if s.Family == glyphstate.Donut2 {
		return t.donut(s), nil
	}
	return t.bar(s), nil
}

// Parts returns the geometry of the glyph for state s,
// using [DefaultTuning].
func Parts(s glyphstate.State) ([]Part, error) {
	return DefaultTuning.Parts(s)
}

// parts collects the elements of a glyph, dropping empty ones.
type parts []Part

func (pp *parts) rect(x, y, w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	*pp = append(*pp, Rect{X: x, Y: y, W: w, H: h})
}

func (pp *parts) segment(cx, cy, outer, inner, start, end float64) {
	if r, ok := Segment(cx, cy, outer, inner, start, end); ok {
		*pp = append(*pp, r)
	}
}

func (t *Tuning) bar(s glyphstate.State) []Part {
	f := s.Family
	st := s.Style
	bounds := t.LaneBounds(f.Lanes(), st.Gapped, st.Full)

	x0, x1 := 0.0, float64(Width)
	if s.Variant.LeftCap() {
		x0 = OuterPad
	}
	if s.Variant.RightCap() {
		x1 = Width - OuterPad
	}

	var pp parts
	if st.Bordered {
		pp.horizontalBorders(x0, x1, bounds)
	}

	xFill := x0
	fillW := x1 - x0
	if st.Bordered && s.Variant.LeftCap() {
		for _, b := range bounds {
			pp.rect(x0, float64(b.Y0), Stroke, float64(b.Y1-b.Y0))
		}
		xFill += Stroke
		fillW -= Stroke
	}
	if st.Bordered && s.Variant.RightCap() {
		for _, b := range bounds {
			pp.rect(x1-Stroke, float64(b.Y0), Stroke, float64(b.Y1-b.Y0))
		}
		fillW -= Stroke
	}

	bias := 0
	if st.Full && !st.Bordered {
		bias = t.FillBias
	}
	for lane, b := range bounds {
		var fillY, fillH int
		if st.Bordered {
			fillY = b.Y0 + Stroke
			fillH = (b.Y1 - Stroke) - fillY
		} else {
			fillY = b.Y0
			fillH = b.Y1 - b.Y0 + bias
			fillH = min(fillH, Height-fillY)
		}
		w := LevelWidth(s.Levels[lane], fillW, f.MaxLevel())
		pp.rect(xFill, float64(fillY), w, float64(fillH))
	}
	return pp
}

// horizontalBorders draws the top and bottom border of every lane.
// Each vertical position is drawn only once, so that a border shared by
// two overlapping lanes has the same thickness as any other border.
func (pp *parts) horizontalBorders(x0, x1 float64, bounds []Span) {
	seen := make(map[int]bool)
	var ys []int
	for _, b := range bounds {
		for _, y := range []int{b.Y0, b.Y1 - Stroke} {
			if !seen[y] {
				seen[y] = true
				ys = append(ys, y)
			}
		}
	}
	slices.Sort(ys)
	for _, y := range ys {
		pp.rect(x0, float64(y), x1-x0, Stroke)
	}
}

// The two halves of a donut, as angle ranges in degrees.
// The right half starts at the top of the ring.
var (
	rightHalf = [2]float64{-90, 90}
	leftHalf  = [2]float64{90, 270}
)

// SweepEnd returns the end angle of the progress sweep of a donut
// at the given level.  The sweep starts at -90° (the top of the ring).
func SweepEnd(level int) float64 {
	maxLevel := glyphstate.Donut2.MaxLevel()
	return rightHalf[0] + 360*float64(level)/float64(maxLevel)
}

func (t *Tuning) donut(s glyphstate.State) []Part {
	cy := Height / 2.0

	bias := 0.0
	if s.Style.Full {
		bias = float64(t.RadiusBias)
	}
	fillOuter := RingOuter + bias
	fillInner := RingInner + bias

	// The ring is centred on the edge between the two cells.
	half, cx := rightHalf, 0.0
	if s.Variant == glyphstate.Left {
		half, cx = leftHalf, Width
	}

	var pp parts
	if s.Style.Bordered {
		pp.segment(cx, cy, fillOuter+RingBorder, fillOuter, half[0], half[1])
		pp.segment(cx, cy, fillInner, max(1, fillInner-RingBorder), half[0], half[1])
	}

	end := min(SweepEnd(s.Levels[0]), half[1])
	pp.segment(cx, cy, fillOuter, fillInner, half[0], end)
	return pp
}
