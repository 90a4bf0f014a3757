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

// Package styles parses the style selection argument of the command line
// tools.
//
// The argument is a comma separated list of tokens.  Each token is one of
//
//	all            all styles of all bar families
//	1, 2, 3        all styles of the bar family with this many lanes
//	<lanes>-<id>   one style of one bar family, for example "2-nhn"
//	<id>           one style of the one-lane bar
//
// where <id> is a style code like "ghb" or one of the aliases listed in
// [Aliases].  Donut glyphs are always selected.
package styles

import (
	"fmt"
	"iter"
	"strings"

	"golang.org/x/text/cases"

	"seehuhn.de/go/cellgauge/glyphstate"
)

// Aliases maps alternative names to bar style codes.
var Aliases = map[string]string{
	"gap":           "ghb",
	"sh":            "nhb",
	"sf":            "nfb",
	"gf":            "gfb",
	"gap-nb":        "ghn",
	"gap-full-nb":   "gfn",
	"nogap-nb":      "nhn",
	"nogap-full-nb": "nfn",
}

// Target is one selected family and style.
type Target struct {
	Family glyphstate.Family
	Style  glyphstate.Style
}

func (t Target) String() string {
	return t.Family.String() + "_" + t.Style.Code(t.Family)
}

// Selection is a list of bar targets, without duplicates.
type Selection []Target

// UnknownStyleError is returned for tokens which cannot be parsed.
type UnknownStyleError struct {
	Token string
}

func (err *UnknownStyleError) Error() string {
	return fmt.Sprintf("unknown style token: %s", err.Token)
}

var fold = cases.Fold()

// Parse parses a style selection.  Tokens are case-insensitive and
// empty tokens are ignored.
func Parse(raw string) (Selection, error) {
	var sel Selection
	seen := make(map[Target]bool)
	add := func(f glyphstate.Family, s glyphstate.Style) {
		t := Target{Family: f, Style: s}
		if !seen[t] {
			seen[t] = true
			sel = append(sel, t)
		}
	}
	addAll := func(f glyphstate.Family) {
		for _, s := range f.Styles() {
			add(f, s)
		}
	}

	for _, token := range strings.Split(raw, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		t := fold.String(token)

		if t == "all" {
			for _, f := range barFamilies {
				addAll(f)
			}
			continue
		}
		if f, ok := lanesFamily(t); ok {
			addAll(f)
			continue
		}
		if p0, p1, ok := strings.Cut(t, "-"); ok {
			if f, ok := lanesFamily(p0); ok {
				s, ok := parseStyle(p1)
				if !ok {
					return nil, &UnknownStyleError{Token: token}
				}
				add(f, s)
				continue
			}
		}
		if s, ok := parseStyle(t); ok {
			add(glyphstate.Bar1, s)
			continue
		}
		return nil, &UnknownStyleError{Token: token}
	}
	return sel, nil
}

var barFamilies = []glyphstate.Family{glyphstate.Bar1, glyphstate.Bar2, glyphstate.Bar3}

func lanesFamily(s string) (glyphstate.Family, bool) {
	switch s {
	case "1":
		return glyphstate.Bar1, true
	case "2":
		return glyphstate.Bar2, true
	case "3":
		return glyphstate.Bar3, true
	}
	return 0, false
}

func parseStyle(s string) (glyphstate.Style, bool) {
	if code, ok := Aliases[s]; ok {
		s = code
	}
	return glyphstate.ParseStyle(glyphstate.Bar1, s)
}

// Contains reports whether the glyphs of family f and style s are
// selected.
func (sel Selection) Contains(f glyphstate.Family, s glyphstate.Style) bool {
	if f == glyphstate.Donut2 {
		return true
	}
	for _, t := range sel {
		if t.Family == f && t.Style == s {
			return true
		}
	}
	return false
}

// States iterates over the selected glyph states: the bar targets in
// selection order, followed by all donut states.
func (sel Selection) States() iter.Seq[glyphstate.State] {
	return func(yield func(glyphstate.State) bool) {
		for _, t := range sel {
			for s := range glyphstate.All(t.Family) {
				if s.Style != t.Style {
					continue
				}
				if !yield(s) {
					return
				}
			}
		}
		for s := range glyphstate.All(glyphstate.Donut2) {
			if !yield(s) {
				return
			}
		}
	}
}
