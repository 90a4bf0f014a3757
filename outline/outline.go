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

// Package outline holds glyph outlines and horizontal metrics in font
// design units.
//
// Coordinates are stored as integers, like in a TrueType "glyf" table.
// Every transformation rounds the resulting points, so that glyph
// bounds computed after a transformation agree with the bounds a font
// reader sees once the font is saved.
package outline

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Segment is one piece of a contour.
// For straight lines, C1 and C2 are unused.
type Segment struct {
	Cubic  bool
	C1, C2 vec.Vec2
	End    vec.Vec2
}

// Contour is a closed path.
// The path starts at Start and implicitly returns there after the last segment.
type Contour struct {
	Start    vec.Vec2
	Segments []Segment
}

// LineTo appends a straight line segment.
func (c *Contour) LineTo(p vec.Vec2) {
	c.Segments = append(c.Segments, Segment{End: p})
}

// CubeTo appends a cubic Bézier segment.
func (c *Contour) CubeTo(c1, c2, p vec.Vec2) {
	c.Segments = append(c.Segments, Segment{Cubic: true, C1: c1, C2: c2, End: p})
}

// QuadTo appends a quadratic Bézier segment, converted to cubic form.
func (c *Contour) QuadTo(q, p vec.Vec2) {
	p0 := c.current()
	c1 := p0.Add(q.Sub(p0).Mul(2.0 / 3.0))
	c2 := p.Add(q.Sub(p).Mul(2.0 / 3.0))
	c.CubeTo(c1, c2, p)
}

func (c *Contour) current() vec.Vec2 {
	if n := len(c.Segments); n > 0 {
		return c.Segments[n-1].End
	}
	return c.Start
}

// points calls yield for every on-curve and off-curve point of the contour.
func (c *Contour) points(yield func(vec.Vec2)) {
	yield(c.Start)
	for _, seg := range c.Segments {
		if seg.Cubic {
			yield(seg.C1)
			yield(seg.C2)
		}
		yield(seg.End)
	}
}

// SignedArea returns the area enclosed by the polygon of the contour's
// points.  The sign gives the orientation: positive values correspond to
// counter-clockwise contours in a y-up coordinate system.
func (c *Contour) SignedArea() float64 {
	var pts []vec.Vec2
	c.points(func(p vec.Vec2) { pts = append(pts, p) })
	var a float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}

// Glyph is a glyph outline together with its horizontal metrics.
type Glyph struct {
	Name     string
	Contours []Contour
	Advance  int // advance width
	LSB      int // left side bearing
}

// NumContours returns the number of contours of the glyph.
func (g *Glyph) NumContours() int {
	return len(g.Contours)
}

// IsEmpty reports whether the glyph has no outline.
func (g *Glyph) IsEmpty() bool {
	return len(g.Contours) == 0
}

// BBox returns the bounding box of all points of the glyph,
// including off-curve control points.
// If the glyph has no outline, ok is false.
func (g *Glyph) BBox() (bbox rect.Rect, ok bool) {
	for i := range g.Contours {
		g.Contours[i].points(func(p vec.Vec2) {
			if !ok {
				bbox = rect.Rect{LLx: p.X, LLy: p.Y, URx: p.X, URy: p.Y}
				ok = true
				return
			}
			bbox.LLx = min(bbox.LLx, p.X)
			bbox.LLy = min(bbox.LLy, p.Y)
			bbox.URx = max(bbox.URx, p.X)
			bbox.URy = max(bbox.URy, p.Y)
		})
	}
	return bbox, ok
}

// Transform applies the affine map m to every point of the glyph and
// rounds the result to integer coordinates.
// The horizontal metrics are not changed.
func (g *Glyph) Transform(m matrix.Matrix) {
	for i := range g.Contours {
		c := &g.Contours[i]
		c.Start = Apply(m, c.Start)
		for j := range c.Segments {
			seg := &c.Segments[j]
			if seg.Cubic {
				seg.C1 = Apply(m, seg.C1)
				seg.C2 = Apply(m, seg.C2)
			}
			seg.End = Apply(m, seg.End)
		}
	}
}

// Apply maps p through m and rounds the result to integer coordinates.
func Apply(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: float64(Round(m[0]*p.X + m[2]*p.Y + m[4])),
		Y: float64(Round(m[1]*p.X + m[3]*p.Y + m[5])),
	}
}

// Round rounds x to the nearest integer, with halves rounded up.
// This is the rounding used for all font unit values.
func Round(x float64) int {
	return int(math.Floor(x + 0.5))
}
