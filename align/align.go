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

// Package align normalises the progress glyphs of a compiled font so that
// they line up with a monospace reference font.
//
// Glyphs are identified by their names (see [glyphstate.ParseName]) and
// processed in groups of one family and style.  Each group is scaled and
// moved as a whole, so that the glyphs of a group keep their relative
// geometry.  Afterwards the character map is rewritten from the temporary
// to the final codepoints.
package align

import (
	"errors"
	"log/slog"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/cellgauge/glyphstate"
	"seehuhn.de/go/cellgauge/internal/logging"
	"seehuhn.de/go/cellgauge/outline"
	"seehuhn.de/go/cellgauge/reference"
)

// Horizontal overlap between adjacent cells, as a fraction of the
// advance width.  This avoids hairline seams between the cells of an
// indicator in terminal output.
const (
	BarOverlapRatio   = 0.06
	DonutOverlapRatio = 0.04
)

// MinBarStretch is the smallest horizontal stretch applied to middle and
// right bar glyphs.
const MinBarStretch = 1 + BarOverlapRatio

// Aligner aligns the glyphs of a font to a reference font.
type Aligner struct {
	Ref *reference.Metrics

	// Logger receives progress information.
	// If this is nil, no log output is produced.
	Logger *slog.Logger
}

// Stats summarises an alignment run.
type Stats struct {
	Groups  int // groups which were aligned
	Skipped int // groups without a usable representative
	Glyphs  int // managed glyphs seen
}

// Run aligns all managed glyphs of t, rewrites the character map to the
// final codepoints, and records the cap height and x-height of the
// reference font.
func (a *Aligner) Run(t *outline.Table) (Stats, error) {
	if a.Ref == nil {
		return Stats{}, errors.New("align: missing reference metrics")
	}
	stats := a.Align(t)
	a.Remap(t)
	t.CapHeight = a.Ref.CapHeight()
	t.XHeight = a.Ref.XHeight()
	return stats, nil
}

// Align normalises the geometry and the horizontal metrics of all
// managed glyphs in t.  Glyphs with names which are not glyph state
// names are left alone.
func (a *Aligner) Align(t *outline.Table) Stats {
	log := a.logger()
	groups := collect(t)

	var stats Stats
	for _, g := range groups {
		stats.Glyphs += len(g.members)
		yMin, height := a.Ref.Target(g.style.Full)
		if !a.alignGroup(t, g, yMin, height) {
			stats.Skipped++
			log.Warn("group has no extent, skipped",
				"family", g.family, "style", g.style.Code(g.family))
			continue
		}
		stats.Groups++
		log.Debug("group aligned",
			"family", g.family, "style", g.style.Code(g.family),
			"glyphs", len(g.members))
	}
	log.Info("alignment done",
		"groups", stats.Groups, "skipped", stats.Skipped, "glyphs", stats.Glyphs)
	return stats
}

func (a *Aligner) logger() *slog.Logger {
	if a.Logger == nil {
		return logging.Discard()
	}
	return a.Logger
}

// Remap replaces every temporary codepoint in the character map of t by
// the corresponding final codepoint.  Other codes are kept.
// The new mappings are returned, sorted by code.
func (a *Aligner) Remap(t *outline.Table) []outline.Mapping {
	mm := t.Mappings()
	remapped := 0
	for i, m := range mm {
		code := glyphstate.Remap(m.Code)
		if code != m.Code {
			remapped++
		}
		mm[i].Code = code
	}
	t.SetMappings(mm)
	mm = t.Mappings()
	a.logger().Debug("character map rebuilt", "codes", len(mm), "remapped", remapped)
	return mm
}

// alignGroup normalises one group of glyphs.
// If the group has no usable representative, the glyph outlines are not
// changed and false is returned.
func (a *Aligner) alignGroup(t *outline.Table, g *group, yMin, height float64) bool {
	targetAW := a.Ref.Advance
	aw := outline.Round(targetAW)

	ref := t.Glyphs[g.representative().gid]
	b, ok := ref.BBox()
	curH := b.URy - b.LLy
	if !ok || curH <= 0 {
		for _, m := range g.members {
			glyph := t.Glyphs[m.gid]
			glyph.Advance = aw
			glyph.LSB = 0
		}
		return false
	}

	// vertical size and position
	sy := height / curH
	if g.family.IsBar() {
		g.transform(t, matrix.Scale(1, sy))
	} else {
		g.transform(t, matrix.Scale(sy, sy))
	}
	b, _ = ref.BBox()
	g.transform(t, matrix.Translate(0, yMin-b.LLy))
	for _, m := range g.members {
		glyph := t.Glyphs[m.gid]
		if g.family.IsBar() {
			glyph.LSB = xMin(glyph)
		} else {
			glyph.LSB = 0
		}
	}

	if g.family.IsBar() {
		overlap := max(1, outline.Round(targetAW*BarOverlapRatio))
		a.placeBars(t, g, ref, targetAW, overlap)
	} else {
		overlap := max(1, outline.Round(targetAW*DonutOverlapRatio))
		a.placeDonut(t, g, height, aw, overlap)
	}
	return true
}

func (a *Aligner) placeBars(t *outline.Table, g *group, ref *outline.Glyph, targetAW float64, overlap int) {
	aw := outline.Round(targetAW)

	// match the advance width of the reference font
	if ref.Advance > 0 {
		g.transform(t, matrix.Scale(targetAW/float64(ref.Advance), 1))
		for _, m := range g.members {
			glyph := t.Glyphs[m.gid]
			glyph.Advance = aw
			glyph.LSB = xMin(glyph)
		}
	}

	// Widen the glyphs which join a cell on their left, so that the
	// repositioning below makes adjacent cells overlap.
	stretch := MinBarStretch
	if rep, ok := g.pick(glyphstate.Middle); ok {
		rb, _ := t.Glyphs[rep.gid].BBox()
		width := rb.URx - rb.LLx
		desired := float64(aw + overlap)
		if width > 0 && desired > 0 {
			stretch = max(stretch, desired/width)
		}
	}
	for _, m := range g.members {
		glyph := t.Glyphs[m.gid]
		v := m.state.Variant
		if v != glyphstate.Middle && v != glyphstate.Right || glyph.IsEmpty() {
			continue
		}
		glyph.Transform(matrix.Scale(stretch, 1))
		glyph.Advance = aw
		glyph.LSB = xMin(glyph)
	}

	leftPad, rightPad := 0, 0
	if rep, ok := g.pick(glyphstate.Left); ok {
		lb, _ := t.Glyphs[rep.gid].BBox()
		leftPad = max(0, outline.Round(lb.LLx))
	}
	if rep, ok := g.pick(glyphstate.Right); ok {
		rb, _ := t.Glyphs[rep.gid].BBox()
		rightPad = max(0, aw-outline.Round(rb.URx))
	}

	for _, m := range g.members {
		glyph := t.Glyphs[m.gid]
		gb, ok := glyph.BBox()
		if !ok {
			glyph.Advance = aw
			glyph.LSB = 0
			continue
		}

		var dx float64
		switch m.state.Variant {
		case glyphstate.Middle:
			dx = float64(-overlap) - gb.LLx
		case glyphstate.Left, glyphstate.Single:
			dx = float64(leftPad) - gb.LLx
		case glyphstate.Right:
			dx = float64(aw-rightPad) - gb.URx
		}
		glyph.Transform(matrix.Translate(dx, 0))
		glyph.Advance = aw
		glyph.LSB = xMin(glyph)
	}
}

func (a *Aligner) placeDonut(t *outline.Table, g *group, height float64, aw, overlap int) {
	// Make each half as wide as half the target height,
	// so that the two cells together show a circle.
	var curHalf float64
	found := false
	for _, v := range []glyphstate.Variant{glyphstate.Left, glyphstate.Right} {
		rep, ok := g.pick(v)
		if !ok {
			continue
		}
		rb, ok := t.Glyphs[rep.gid].BBox()
		if !ok {
			continue
		}
		curHalf = max(curHalf, rb.URx-rb.LLx)
		found = true
	}
	desiredHalf := height / 2
	if found && curHalf > 0 && desiredHalf > 0 {
		g.transform(t, matrix.Scale(desiredHalf/curHalf, 1))
	}

	// Move the halves towards the shared cell edge.
	for _, m := range g.members {
		glyph := t.Glyphs[m.gid]
		gb, ok := glyph.BBox()
		if !ok {
			glyph.Advance = aw
			glyph.LSB = 0
			continue
		}
		var dx float64
		if m.state.Variant == glyphstate.Left {
			dx = float64(aw+overlap) - gb.URx
		} else {
			dx = float64(-overlap) - gb.LLx
		}
		glyph.Transform(matrix.Translate(dx, 0))
		glyph.Advance = aw
		glyph.LSB = xMin(glyph)
	}
}

// xMin returns the left edge of the glyph, or 0 for empty glyphs.
func xMin(g *outline.Glyph) int {
	b, ok := g.BBox()
	if !ok {
		return 0
	}
	return outline.Round(b.LLx)
}
