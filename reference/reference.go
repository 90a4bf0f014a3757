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

// Package reference extracts the metrics of a monospace reference font,
// which the progress glyphs are aligned to.
package reference

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/cellgauge/outline"
)

// Reference glyphs.
const (
	CapGlyph   = 'H' // defines the cap height and the advance width
	BlockGlyph = '█' // FULL BLOCK, defines the full cell height
)

// Metrics describes the reference font, scaled into the units of the
// icon font.  All y values are measured upwards from the baseline.
type Metrics struct {
	CapMin, CapMax   float64 // vertical extent of CapGlyph
	FullMin, FullMax float64 // vertical extent of BlockGlyph
	Advance          float64 // advance width of CapGlyph
	UnitsPerEm       int     // units per em of the icon font

	// HasFullBlock is false if the reference font has no BlockGlyph.
	// In this case FullMin and FullMax equal CapMin and CapMax.
	HasFullBlock bool
}

// MissingGlyphError indicates that the reference font lacks a glyph
// which is required to compute the metrics.
type MissingGlyphError struct {
	Font string
	Rune rune
}

func (err *MissingGlyphError) Error() string {
	return fmt.Sprintf("reference font %s has no glyph for %q", err.Font, err.Rune)
}

// Load reads the metrics of the first font in the font file or font
// collection data.  The metrics are scaled to unitsPerEm.
// The name is only used in error messages.
func Load(name string, data []byte, unitsPerEm int) (*Metrics, error) {
	coll, err := sfnt.ParseCollection(data)
	if err != nil {
		return nil, fmt.Errorf("reference font %s: %w", name, err)
	}
	f, err := coll.Font(0)
	if err != nil {
		return nil, fmt.Errorf("reference font %s: %w", name, err)
	}

	var buf sfnt.Buffer
	refUPM := f.UnitsPerEm()
	ppem := fixed.Int26_6(refUPM) << 6
	scale := float64(unitsPerEm) / float64(refUPM)

	extent := func(r rune) (yMin, yMax, advance float64, ok bool, err error) {
		gid, err := f.GlyphIndex(&buf, r)
		if err != nil || gid == 0 {
			return 0, 0, 0, false, err
		}
		bounds, adv, err := f.GlyphBounds(&buf, gid, ppem, font.HintingNone)
		if err != nil {
			return 0, 0, 0, false, err
		}
		// sfnt uses y-down coordinates
		yMin = -float64(bounds.Max.Y) / 64 * scale
		yMax = -float64(bounds.Min.Y) / 64 * scale
		advance = float64(adv) / 64 * scale
		return yMin, yMax, advance, true, nil
	}

	m := &Metrics{UnitsPerEm: unitsPerEm}
	capMin, capMax, advance, ok, err := extent(CapGlyph)
	if err != nil {
		return nil, fmt.Errorf("reference font %s: %w", name, err)
	} else if !ok {
		return nil, &MissingGlyphError{Font: name, Rune: CapGlyph}
	}
	m.CapMin, m.CapMax, m.Advance = capMin, capMax, advance

	fullMin, fullMax, _, ok, err := extent(BlockGlyph)
	if err != nil {
		return nil, fmt.Errorf("reference font %s: %w", name, err)
	}
	if ok {
		m.FullMin, m.FullMax = fullMin, fullMax
		m.HasFullBlock = true
	} else {
		m.FullMin, m.FullMax = capMin, capMax
	}
	return m, nil
}

// LoadFile reads the metrics of the reference font stored in fname.
func LoadFile(fname string, unitsPerEm int) (*Metrics, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	return Load(fname, data, unitsPerEm)
}

// GoMono returns the metrics of the Go Mono font.
func GoMono(unitsPerEm int) (*Metrics, error) {
	return Load("Go Mono", gomono.TTF, unitsPerEm)
}

// Target returns the vertical placement for full-height or cap-height
// glyphs: the lowest y value and the height.
func (m *Metrics) Target(full bool) (yMin, height float64) {
	if full {
		return m.FullMin, m.FullMax - m.FullMin
	}
	return m.CapMin, m.CapMax - m.CapMin
}

// AdvanceWidth returns the advance width, rounded to font units.
func (m *Metrics) AdvanceWidth() int {
	return outline.Round(m.Advance)
}

// CapHeight returns the cap height, rounded to font units.
func (m *Metrics) CapHeight() int {
	return outline.Round(m.CapMax)
}

// XHeight returns the x-height recorded in the icon font.
// This is three quarters of the cap height.
func (m *Metrics) XHeight() int {
	return outline.Round(m.CapMax * 0.75)
}
