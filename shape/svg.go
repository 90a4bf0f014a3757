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
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"
	"strconv"

	"seehuhn.de/go/cellgauge/glyphstate"
)

// WriteSVG writes an SVG document showing the given parts.
func WriteSVG(w io.Writer, pp []Part) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, `<svg width="100" height="100" viewBox="0 0 %d %d" fill="none" xmlns="http://www.w3.org/2000/svg">`,
		Width, Height)
	for _, p := range pp {
		switch p := p.(type) {
		case Rect:
			fmt.Fprintf(bw, `<rect x="%s" y="%s" width="%s" height="%s" fill="currentColor"/>`,
				num(p.X), num(p.Y), num(p.W), num(p.H))
		case Ring:
			writeRing(bw, p)
		default:
			return fmt.Errorf("shape: unsupported part %T", p)
		}
	}
	bw.WriteString("</svg>\n")
	return bw.Flush()
}

func writeRing(w *bufio.Writer, r Ring) {
	if r.Full {
		cx, cy := num(r.CX), r.CY
		R, rr := num(r.Outer), num(r.Inner)
		fmt.Fprintf(w, `<path d="M %s %s A %s %s 0 1 1 %s %s A %s %s 0 1 1 %s %s Z `,
			cx, num(cy-r.Outer), R, R, cx, num(cy+r.Outer), R, R, cx, num(cy-r.Outer))
		fmt.Fprintf(w, `M %s %s A %s %s 0 1 0 %s %s A %s %s 0 1 0 %s %s Z" fill="currentColor" fill-rule="evenodd"/>`,
			cx, num(cy-r.Inner), rr, rr, cx, num(cy+r.Inner), rr, rr, cx, num(cy-r.Inner))
		return
	}

	o0 := polar(r.CX, r.CY, r.Outer, r.Start)
	o1 := polar(r.CX, r.CY, r.Outer, r.End)
	i0 := polar(r.CX, r.CY, r.Inner, r.Start)
	i1 := polar(r.CX, r.CY, r.Inner, r.End)
	large := 0
	if r.End-r.Start > 180 {
		large = 1
	}
	fmt.Fprintf(w, `<path d="M %s %s A %s %s 0 %d 1 %s %s L %s %s A %s %s 0 %d 0 %s %s Z" fill="currentColor"/>`,
		num(o0.X), num(o0.Y), num(r.Outer), num(r.Outer), large, num(o1.X), num(o1.Y),
		num(i1.X), num(i1.Y), num(r.Inner), num(r.Inner), large, num(i0.X), num(i0.Y))
}

// num formats a coordinate with six significant digits.
func num(x float64) string {
	return strconv.FormatFloat(x, 'g', 6, 64)
}

// WriteDir writes one SVG file per state into the directory dir.
// The file names are the glyph names with a ".svg" suffix.
// The number of files written is returned.
func (t *Tuning) WriteDir(dir string, states iter.Seq[glyphstate.State]) (int, error) {
	n := 0
	for s := range states {
		pp, err := t.Parts(s)
		if err != nil {
			return n, err
		}
		err = writeFile(filepath.Join(dir, s.Name()+".svg"), pp)
		if err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

func writeFile(fname string, pp []Part) (err error) {
	fd, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, fd.Close())
	}()
	return WriteSVG(fd, pp)
}

// Clean removes previously generated glyph files from dir.
func Clean(dir string) error {
	for _, pattern := range []string{"bar*.svg", "donut*.svg"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return err
		}
		for _, m := range matches {
			if err := os.Remove(m); err != nil {
				return err
			}
		}
	}
	return nil
}
