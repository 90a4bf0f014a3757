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
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Part is one filled element of a glyph.
// The concrete types are [Rect] and [Ring].
type Part interface {
	// Bounds returns the bounding box in design grid coordinates
	// (LLy is the smallest y value, i.e. the top edge).
	Bounds() rect.Rect

	isPart()
}

// Rect is a filled axis-aligned rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Bounds implements the [Part] interface.
func (r Rect) Bounds() rect.Rect {
	return rect.Rect{LLx: r.X, LLy: r.Y, URx: r.X + r.W, URy: r.Y + r.H}
}

func (Rect) isPart() {}

// Ring is a segment of a circular ring between two radii.
//
// Angles are in degrees.  0° points in the direction of the positive
// x-axis and angles increase clockwise on screen (towards positive y).
// If Full is set, the segment is the complete ring and Start and End
// are ignored.
type Ring struct {
	CX, CY       float64
	Outer, Inner float64
	Start, End   float64
	Full         bool
}

// Bounds implements the [Part] interface.
func (r Ring) Bounds() rect.Rect {
	if r.Full {
		return rect.Rect{
			LLx: r.CX - r.Outer, LLy: r.CY - r.Outer,
			URx: r.CX + r.Outer, URy: r.CY + r.Outer,
		}
	}

	pts := []vec.Vec2{
		polar(r.CX, r.CY, r.Outer, r.Start),
		polar(r.CX, r.CY, r.Outer, r.End),
		polar(r.CX, r.CY, r.Inner, r.Start),
		polar(r.CX, r.CY, r.Inner, r.End),
	}
	for a := math.Ceil(r.Start/90) * 90; a < r.End; a += 90 {
		if a > r.Start {
			pts = append(pts, polar(r.CX, r.CY, r.Outer, a))
		}
	}

	b := rect.Rect{LLx: pts[0].X, LLy: pts[0].Y, URx: pts[0].X, URy: pts[0].Y}
	for _, p := range pts[1:] {
		b.LLx = min(b.LLx, p.X)
		b.LLy = min(b.LLy, p.Y)
		b.URx = max(b.URx, p.X)
		b.URy = max(b.URy, p.Y)
	}
	return b
}

func (Ring) isPart() {}

// Sweep returns the angle span, in degrees, of a ring segment.
func (r Ring) Sweep() float64 {
	if r.Full {
		return 360
	}
	return r.End - r.Start
}

// Segment returns the ring segment between the angles start and end.
// A non-positive sweep gives no segment.  A sweep of at least
// [FullSweep] gives the full ring.
func Segment(cx, cy, outer, inner, start, end float64) (Ring, bool) {
	if end <= start {
		return Ring{}, false
	}
	r := Ring{CX: cx, CY: cy, Outer: outer, Inner: inner}
	if end-start >= FullSweep {
		r.Full = true
		return r, true
	}
	r.Start = start
	r.End = end
	return r, true
}

func polar(cx, cy, radius, deg float64) vec.Vec2 {
	rad := deg * math.Pi / 180
	return vec.Vec2{X: cx + radius*math.Cos(rad), Y: cy + radius*math.Sin(rad)}
}
