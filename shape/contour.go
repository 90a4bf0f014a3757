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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/cellgauge/outline"
)

// Contours converts parts into closed outline contours.  The points are
// mapped through m, which takes design grid coordinates to font units,
// and are rounded to integers.
//
// All filled areas have the same orientation and the hole of a full ring
// has the opposite orientation, so the outlines render correctly under
// the non-zero winding rule.  Circular arcs are approximated by cubic
// Bézier curves, split at multiples of 90°.  This keeps every control
// point inside the bounding box of the exact ring.
func Contours(pp []Part, m matrix.Matrix) []outline.Contour {
	var res []outline.Contour
	for _, p := range pp {
		switch p := p.(type) {
		case Rect:
			c := outline.Contour{Start: outline.Apply(m, vec.Vec2{X: p.X, Y: p.Y})}
			c.LineTo(outline.Apply(m, vec.Vec2{X: p.X + p.W, Y: p.Y}))
			c.LineTo(outline.Apply(m, vec.Vec2{X: p.X + p.W, Y: p.Y + p.H}))
			c.LineTo(outline.Apply(m, vec.Vec2{X: p.X, Y: p.Y + p.H}))
			res = append(res, c)
		case Ring:
			res = append(res, ringContours(p, m)...)
		}
	}
	return res
}

func ringContours(r Ring, m matrix.Matrix) []outline.Contour {
	if r.Full {
		outer := outline.Contour{Start: outline.Apply(m, polar(r.CX, r.CY, r.Outer, -90))}
		arcTo(&outer, r.CX, r.CY, r.Outer, -90, 270, m)
		inner := outline.Contour{Start: outline.Apply(m, polar(r.CX, r.CY, r.Inner, 270))}
		arcTo(&inner, r.CX, r.CY, r.Inner, 270, -90, m)
		return []outline.Contour{outer, inner}
	}

	c := outline.Contour{Start: outline.Apply(m, polar(r.CX, r.CY, r.Outer, r.Start))}
	arcTo(&c, r.CX, r.CY, r.Outer, r.Start, r.End, m)
	c.LineTo(outline.Apply(m, polar(r.CX, r.CY, r.Inner, r.End)))
	arcTo(&c, r.CX, r.CY, r.Inner, r.End, r.Start, m)
	return []outline.Contour{c}
}

// arcTo appends a circular arc from angle a0 to angle a1 to the contour.
// The contour must currently end at the start point of the arc.
func arcTo(c *outline.Contour, cx, cy, radius, a0, a1 float64, m matrix.Matrix) {
	for _, piece := range arcPieces(a0, a1) {
		b0, b1 := piece[0], piece[1]
		theta := (b1 - b0) * math.Pi / 180
		k := 4.0 / 3.0 * math.Tan(theta/4) * radius

		s0, c0 := math.Sincos(b0 * math.Pi / 180)
		s1, c1 := math.Sincos(b1 * math.Pi / 180)
		p0 := vec.Vec2{X: cx + radius*c0, Y: cy + radius*s0}
		p3 := vec.Vec2{X: cx + radius*c1, Y: cy + radius*s1}
		p1 := vec.Vec2{X: p0.X - k*s0, Y: p0.Y + k*c0}
		p2 := vec.Vec2{X: p3.X + k*s1, Y: p3.Y - k*c1}
		c.CubeTo(outline.Apply(m, p1), outline.Apply(m, p2), outline.Apply(m, p3))
	}
}

// arcPieces splits the angle range from a0 to a1 (in either direction)
// at every multiple of 90°.
func arcPieces(a0, a1 float64) [][2]float64 {
	const eps = 1e-9
	var res [][2]float64
	if a1 > a0 {
		prev := a0
		for a := math.Floor(a0/90)*90 + 90; a < a1-eps; a += 90 {
			if a > prev+eps {
				res = append(res, [2]float64{prev, a})
				prev = a
			}
		}
		return append(res, [2]float64{prev, a1})
	}
	prev := a0
	for a := math.Ceil(a0/90)*90 - 90; a > a1+eps; a -= 90 {
		if a < prev-eps {
			res = append(res, [2]float64{prev, a})
			prev = a
		}
	}
	return append(res, [2]float64{prev, a1})
}
