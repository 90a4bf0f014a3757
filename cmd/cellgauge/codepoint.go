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

package main

import (
	"fmt"
	"strconv"
	"strings"

	"seehuhn.de/go/cellgauge/glyphstate"
)

func cmdCodepoint(e *env, args []string) error {
	fs := e.flagSet("codepoint", "[options] name|codepoint...",
		"cellgauge codepoint bar1_nhn_m_08",
		"cellgauge codepoint U+10FEA3",
		"cellgauge codepoint -temporary 0x76ED")
	temporary := fs.Bool("temporary", false, "use the temporary codepoints of the build")
	if err := parse(fs, args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return usagef("codepoint: no glyph names or codepoints given")
	}

	space := glyphstate.Final
	if *temporary {
		space = glyphstate.Temporary
	}
	for _, arg := range fs.Args() {
		if s, ok := glyphstate.ParseName(arg); ok {
			cp, err := space.Encode(s)
			if err != nil {
				return err
			}
			fmt.Fprintf(e.stdout, "%s\tU+%04X\n", s.Name(), cp)
			continue
		}
		cp, ok := parseCodepoint(arg)
		if !ok {
			return usagef("codepoint: invalid glyph name or codepoint %q", arg)
		}
		s, ok := space.Decode(cp)
		if !ok {
			return usagef("codepoint: U+%04X is not a %s glyph codepoint", cp, space)
		}
		fmt.Fprintf(e.stdout, "%s\tU+%04X\n", s.Name(), cp)
	}
	return nil
}

// parseCodepoint accepts "U+10FBD1", "0x10FBD1" and decimal numbers.
func parseCodepoint(s string) (rune, bool) {
	base := 10
	switch {
	case strings.HasPrefix(s, "U+"), strings.HasPrefix(s, "u+"):
		s, base = s[2:], 16
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		s, base = s[2:], 16
	}
	x, err := strconv.ParseUint(s, base, 32)
	if err != nil || x > 0x10FFFF {
		return 0, false
	}
	return rune(x), true
}
