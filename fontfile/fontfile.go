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

// Package fontfile converts between OpenType font files and the in-memory
// glyph tables used by the font build.
//
// Fonts are written with CFF outlines.  Both CFF and TrueType outlines can
// be read; quadratic curves are converted to cubic ones on input.
package fontfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/postscript/type1"
	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cff"
	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyph"
	"seehuhn.de/go/sfnt/os2"

	"seehuhn.de/go/cellgauge/outline"
)

// Naming of the generated font.
//
// Only the family name is stored explicitly.  The font writer derives
// the remaining name table entries from the family name and the
// regular style, giving the values listed here.
const (
	FamilyName     = "CellGauge Symbols"
	SubfamilyName  = "Regular"
	FullName       = FamilyName + " " + SubfamilyName
	PostScriptName = "CellGaugeSymbols-Regular"
	UniqueID       = FullName + ";" + PostScriptName
)

// Read decodes an OpenType or TrueType font.
func Read(data []byte) (*outline.Table, error) {
	f, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return FromFont(f)
}

// ReadFile reads an OpenType or TrueType font from a file.
func ReadFile(fname string) (*outline.Table, error) {
	f, err := sfnt.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	return FromFont(f)
}

// FromFont extracts the glyphs, metrics and character map of f.
func FromFont(f *sfnt.Font) (*outline.Table, error) {
	t := &outline.Table{
		UnitsPerEm: int(f.UnitsPerEm),
		Ascent:     int(f.Ascent),
		Descent:    int(f.Descent),
		CapHeight:  int(f.CapHeight),
		XHeight:    int(f.XHeight),
		CMap:       make(map[rune]int),
	}

	n := f.NumGlyphs()
	t.Glyphs = make([]*outline.Glyph, n)
	for i := range n {
		gid := glyph.ID(i)
		g := &outline.Glyph{
			Name:    f.GlyphName(gid),
			Advance: outline.Round(float64(f.GlyphWidth(gid))),
		}
		if f.Outlines != nil {
			g.Contours = contours(f.Outlines.Path(gid))
		}
		if b, ok := g.BBox(); ok {
			g.LSB = outline.Round(b.LLx)
		}
		t.Glyphs[i] = g
	}

	if f.CMapTable == nil {
		return t, nil
	}
	sub, err := f.CMapTable.GetBest()
	if err != nil {
		return nil, fmt.Errorf("fontfile: %w", err)
	}
	low, high := sub.CodeRange()
	for r := low; r <= high; r++ {
		gid := sub.Lookup(r)
		if gid != 0 && int(gid) < n {
			t.CMap[r] = int(gid)
		}
	}
	return t, nil
}

// contours converts a glyph path into closed contours.
func contours(p path.Path) []outline.Contour {
	var res []outline.Contour
	var cur *outline.Contour
	flush := func() {
		if cur != nil && len(cur.Segments) > 0 {
			res = append(res, *cur)
		}
		cur = nil
	}
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			flush()
			cur = &outline.Contour{Start: pts[0]}
		case path.CmdLineTo:
			if cur != nil {
				cur.LineTo(pts[0])
			}
		case path.CmdQuadTo:
			if cur != nil {
				cur.QuadTo(pts[0], pts[1])
			}
		case path.CmdCubeTo:
			if cur != nil {
				cur.CubeTo(pts[0], pts[1], pts[2])
			}
		case path.CmdClose:
			flush()
		}
	}
	flush()
	return res
}

// New converts a glyph table into an OpenType font with CFF outlines.
// Glyph 0 of the table must be the ".notdef" glyph.  Unnamed glyphs,
// as found in some TrueType fonts, are given generated names.
func New(t *outline.Table) (*sfnt.Font, error) {
	if len(t.Glyphs) == 0 || t.Glyphs[0] == nil {
		return nil, errors.New("fontfile: no glyphs")
	}
	if name := t.Glyphs[0].Name; name != ".notdef" && name != "" {
		return nil, fmt.Errorf("fontfile: glyph 0 is %q, not .notdef", name)
	}
	if len(t.Glyphs) > 0xFFFF {
		return nil, fmt.Errorf("fontfile: too many glyphs (%d)", len(t.Glyphs))
	}
	upem := t.UnitsPerEm
	if upem <= 0 {
		upem = 1000
	}
	q := 1 / float64(upem)

	outlines := &cff.Outlines{
		Private: []*type1.PrivateDict{
			{
				BlueValues: blueValues(t),
				BlueScale:  0.039625,
				BlueShift:  7,
				BlueFuzz:   1,
			},
		},
		Encoding: make([]glyph.ID, 256),
		FDSelect: func(glyph.ID) int { return 0 },
	}
	for i, g := range t.Glyphs {
		if g == nil {
			return nil, fmt.Errorf("fontfile: glyph %d missing", i)
		}
		cg := toCFF(g)
		if cg.Name == "" {
			// CFF fonts need unique glyph names
			cg.Name = fmt.Sprintf("glyph%05d", i)
			if i == 0 {
				cg.Name = ".notdef"
			}
		}
		outlines.Glyphs = append(outlines.Glyphs, cg)
	}

	cmapTable, err := encodeCMap(t.Mappings())
	if err != nil {
		return nil, err
	}

	lineGap := upem/5 - (t.Ascent - t.Descent - upem)
	f := &sfnt.Font{
		FamilyName:         FamilyName,
		Ascent:             funit.Int16(t.Ascent),
		Descent:            funit.Int16(t.Descent),
		LineGap:            funit.Int16(max(0, lineGap)),
		UnderlinePosition:  funit.Float64(-upem / 10),
		UnderlineThickness: funit.Float64(upem / 20),
		CapHeight:          funit.Int16(t.CapHeight),
		XHeight:            funit.Int16(t.XHeight),
		Outlines:           outlines,
		Width:              os2.WidthNormal,
		Weight:             os2.WeightMedium,
		IsRegular:          true,
		PermUse:            os2.PermInstall,
		UnitsPerEm:         uint16(upem),
		FontMatrix:         matrix.Matrix{q, 0, 0, q, 0, 0},
		CMapTable:          cmapTable,
	}
	return f, nil
}

func toCFF(g *outline.Glyph) *cff.Glyph {
	cg := cff.NewGlyph(g.Name, float64(g.Advance))
	for _, c := range g.Contours {
		cg.MoveTo(c.Start.X, c.Start.Y)
		for _, s := range c.Segments {
			if s.Cubic {
				cg.CurveTo(s.C1.X, s.C1.Y, s.C2.X, s.C2.Y, s.End.X, s.End.Y)
			} else {
				cg.LineTo(s.End.X, s.End.Y)
			}
		}
	}
	return cg
}

// blueValues returns alignment zones at the baseline and at the cap height.
func blueValues(t *outline.Table) []funit.Int16 {
	top := funit.Int16(max(t.CapHeight, 10))
	return []funit.Int16{-10, 0, top, top + 10}
}

// encodeCMap builds the character map.  Codes in the basic multilingual
// plane go into a format 4 subtable; if any code is outside this plane,
// a format 12 subtable with all codes is added.
func encodeCMap(mm []outline.Mapping) (cmap.Table, error) {
	sub4 := cmap.Format4{}
	for _, m := range outline.BMP(mm) {
		sub4[uint16(m.Code)] = glyph.ID(m.GID)
	}
	data4 := sub4.Encode(0)
	res := cmap.Table{
		{PlatformID: 0, EncodingID: 3}: data4,
		{PlatformID: 3, EncodingID: 1}: data4,
	}

	if len(mm) == 0 || mm[len(mm)-1].Code <= 0xFFFF {
		return res, nil
	}
	sub12 := cmap.Format12{}
	for _, m := range mm {
		if m.Code < 0 || m.Code > 0x10FFFF {
			return nil, fmt.Errorf("fontfile: invalid code %#x", m.Code)
		}
		sub12[uint32(m.Code)] = glyph.ID(m.GID)
	}
	data12 := sub12.Encode(0)
	res[cmap.Key{PlatformID: 0, EncodingID: 4}] = data12
	res[cmap.Key{PlatformID: 3, EncodingID: 10}] = data12
	return res, nil
}

// Write encodes t as an OpenType font.
func Write(w io.Writer, t *outline.Table) error {
	f, err := New(t)
	if err != nil {
		return err
	}
	_, err = f.Write(w)
	return err
}

// WriteFile writes t as an OpenType font to the named file.
// The file is replaced atomically, so that a failed write leaves
// an existing file unchanged.
func WriteFile(fname string, t *outline.Table) error {
	f, err := New(t)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(fname), ".cellgauge-*.otf")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	_, err = f.Write(tmp)
	err = errors.Join(err, tmp.Close())
	if err != nil {
		return err
	}
	err = os.Chmod(tmp.Name(), 0o644)
	if err != nil {
		return err
	}
	return os.Rename(tmp.Name(), fname)
}
