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

// Package buildinfo reports the version of the command line tools.
package buildinfo

import (
	"runtime/debug"
)

// Info is the version information embedded by the Go toolchain.
type Info struct {
	Path     string // module path
	Version  string // module version, empty for development builds
	Revision string // VCS revision, shortened
	Dirty    bool   // the working tree had local modifications
}

// Read extracts the version information of the running binary.
func Read() (*Info, bool) {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return nil, false
	}
	info := &Info{Path: bi.Main.Path}
	if v := bi.Main.Version; v != "(devel)" {
		info.Version = v
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.Revision = s.Value
		case "vcs.modified":
			info.Dirty = s.Value == "true"
		}
	}
	if len(info.Revision) > 8 {
		info.Revision = info.Revision[:8]
	}
	return info, true
}

// Describe returns the version, or the VCS revision for development
// builds.  The empty string is returned if neither is known.
func (info *Info) Describe() string {
	if info.Version != "" {
		return info.Version
	}
	if info.Revision == "" {
		return ""
	}
	if info.Dirty {
		return info.Revision + "+dirty"
	}
	return info.Revision
}

// Short returns a one-line version string for a command line tool, e.g.
// "cellgauge (seehuhn.de/go/cellgauge v0.2.0)".
func Short(toolName string) string {
	info, ok := Read()
	if !ok {
		return toolName
	}
	return info.short(toolName)
}

func (info *Info) short(toolName string) string {
	v := info.Describe()
	if v == "" {
		return toolName
	}
	return toolName + " (" + info.Path + " " + v + ")"
}
