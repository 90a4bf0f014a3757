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

// Package shape computes the vector geometry of the progress glyphs.
//
// All shapes are given in a fixed design grid of [Width] × [Height] units,
// with the origin in the top left corner and y increasing downwards
// (the SVG convention).  Bars are built from axis-aligned rectangles,
// donuts from segments of circular rings.
package shape

// Dimensions of the design grid and the fixed stroke sizes.
const (
	Width  = 2000
	Height = 2986

	Stroke   = 160 // border stroke width of bars
	Gap2     = 340 // gap between the lanes of a gapped two-lane bar
	Gap3     = 180 // gap between the lanes of a gapped three-lane bar
	OuterPad = 40  // inset on the capped side of left and right cells

	RingOuter  = 1160 // outer radius of the donut fill
	RingInner  = 760  // inner radius of the donut fill
	RingBorder = 36   // width of the donut border rings
)

// FullSweep is the smallest sweep angle, in degrees, which is drawn as
// a closed ring instead of a wedge.
const FullSweep = 359.999

// Tuning holds the small offsets which keep the geometry of full-height
// styles distinct from the geometry of the corresponding cap-height styles.
// Without these, a font compiler which merges identical outlines could
// alias glyphs of different styles.
type Tuning struct {
	LaneShift  int // per lane index, added to the lane offsets of full-height bars
	FillBias   int // added to the fill height of full-height bars without border
	RadiusBias int // added to the fill radii of full-height donuts
}

// DefaultTuning is the tuning used for the shipped font.
var DefaultTuning = Tuning{
	LaneShift:  2,
	FillBias:   1,
	RadiusBias: 1,
}

// Span is the vertical extent [Y0, Y1) of one lane.
type Span struct {
	Y0, Y1 int
}

// LaneBounds returns the vertical extent of each lane, top lane first.
//
// In gapped layouts, the lanes are separated by a fixed gap.
// Otherwise adjacent lanes overlap by one stroke width, so that the
// border between two lanes has the same thickness as an outer border.
func (t *Tuning) LaneBounds(lanes int, gapped, full bool) []Span {
	if lanes <= 1 {
		if full {
			return []Span{{0, Height}}
		}
		return []Span{{1, Height - 1}}
	}

	shift := 0
	if full {
		shift = t.LaneShift
	}

	var laneH, step int
	if gapped {
		gap := Gap3
		if lanes == 2 {
			gap = Gap2
		}
		laneH = (Height - (lanes-1)*gap) / lanes
		step = laneH + gap
	} else {
		laneH = (Height + (lanes-1)*Stroke) / lanes
		step = laneH - Stroke
	}

	res := make([]Span, lanes)
	for i := range res {
		y0 := i*step + i*shift
		y1 := y0 + laneH
		if i == lanes-1 {
			y1 = Height
		}
		res[i] = Span{y0, y1}
	}
	return res
}

// LaneBounds returns the lane extents using [DefaultTuning].
func LaneBounds(lanes int, gapped, full bool) []Span {
	return DefaultTuning.LaneBounds(lanes, gapped, full)
}

// LevelWidth returns the filled width of a lane at the given level.
// The result is exactly 0 for level <= 0 and exactly avail for
// level >= maxLevel.
func LevelWidth(level int, avail float64, maxLevel int) float64 {
	if level <= 0 {
		return 0
	}
	if level >= maxLevel {
		return avail
	}
	return avail * float64(level) / float64(maxLevel)
}
