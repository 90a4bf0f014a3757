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
	"fmt"
	"io"
)

// Request describes one indicator.
type Request struct {
	Values []float64
	Donut  bool // render a donut using the first value
	Options
}

// Render draws the indicator described by req.
func (req *Request) Render() (string, error) {
	if req.Donut {
		var pct float64
		if len(req.Values) > 0 {
			pct = req.Values[0]
		}
		return Donut(pct, &req.Options)
	}
	return Bar(req.Values, &req.Options)
}

// Row is one labelled line of the showcase.
type Row struct {
	Label   string
	Request Request
}

// Section is a titled group of showcase rows.
type Section struct {
	Title string
	Rows  []Row
}

// LabelWidth is the width of the label column of the showcase.
const LabelWidth = 24

// Showcase lists sample indicators for all families and most styles.
var Showcase = []Section{
	{
		Title: "Bar1 (single lane)",
		Rows: []Row{
			{"h+border", Request{Values: v(42), Options: Options{Bordered: true}}},
			{"h no-border", Request{Values: v(42)}},
			{"full+border", Request{Values: v(42), Options: Options{Full: true, Bordered: true}}},
			{"full no-border", Request{Values: v(42), Options: Options{Full: true}}},
			{"gapped h+border", Request{Values: v(42), Options: Options{Gapped: true, Bordered: true}}},
			{"gapped h no-border", Request{Values: v(42), Options: Options{Gapped: true}}},
			{"gapped full+border", Request{Values: v(42), Options: Options{Gapped: true, Full: true, Bordered: true}}},
			{"gapped full no-border", Request{Values: v(42), Options: Options{Gapped: true, Full: true}}},
		},
	},
	{
		Title: "Bar2 (two lanes)",
		Rows: []Row{
			{"h+border", Request{Values: v(20, 65), Options: Options{Bordered: true}}},
			{"gapped full no-border", Request{Values: v(20, 65), Options: Options{Gapped: true, Full: true}}},
		},
	},
	{
		Title: "Bar3 (three lanes)",
		Rows: []Row{
			{"h+border", Request{Values: v(20, 45, 70), Options: Options{Bordered: true}}},
			{"gapped full no-border", Request{Values: v(20, 45, 70), Options: Options{Gapped: true, Full: true}}},
		},
	},
	{
		Title: "Donut (single only)",
		Rows: []Row{
			{"h+border", Request{Values: v(42), Donut: true, Options: Options{Bordered: true}}},
			{"h no-border", Request{Values: v(42), Donut: true}},
			{"full+border", Request{Values: v(42), Donut: true, Options: Options{Full: true, Bordered: true}}},
			{"full no-border", Request{Values: v(42), Donut: true, Options: Options{Full: true}}},
		},
	},
}

// FitWidth returns the bar width for showcase rows on a terminal with
// the given number of columns.  Non-positive column counts give
// DefaultWidth.
func FitWidth(columns int) int {
	if columns <= 0 {
		return DefaultWidth
	}
	return max(1, min(DefaultWidth, columns-LabelWidth-1))
}

func v(values ...float64) []float64 {
	return values
}

// WriteShowcase writes the showcase to w.  If width is positive, it
// overrides the width of all bars.
func WriteShowcase(w io.Writer, width int) error {
	for _, sec := range Showcase {
		_, err := fmt.Fprintf(w, "\n%s\n", sec.Title)
		if err != nil {
			return err
		}
		for _, row := range sec.Rows {
			req := row.Request
			if width > 0 {
				req.Width = width
			}
			text, err := req.Render()
			if err != nil {
				return fmt.Errorf("%s: %w", row.Label, err)
			}
			_, err = fmt.Fprintf(w, "%-*s%s\n", LabelWidth, row.Label+":", text)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
