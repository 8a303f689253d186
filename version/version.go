// This file is part of rollout.
//
// rollout is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// rollout is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with rollout.  If not, see <https://www.gnu.org/licenses/>.


// Package version reports the version of the program from the information
// embedded by the Go toolchain, or from a number set at link time:
//
//	go build -ldflags "-X github.com/jetsetilly/rollout/version.number=v0.1.0"
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is used when referring to the program.
const ApplicationName = "rollout"

// set at link time for numbered releases
var number string

// Info describes the build.
type Info struct {
	// the release number. "unreleased" if built from a vcs checkout without a
	// number and "local" if there is no vcs information at all
	Version string

	// the vcs revision, suffixed with "+dirty" if there were uncommitted
	// changes
	Revision string

	// true if this is a numbered release
	Release bool
}

func (inf Info) String() string {
	if inf.Release {
		return fmt.Sprintf("%s %s", ApplicationName, inf.Version)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, inf.Version, inf.Revision)
}

// Version returns information about the build.
func Version() Info {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return fromSettings(nil)
	}
	return fromSettings(info.Settings)
}

func fromSettings(settings []debug.BuildSetting) Info {
	var vcs bool
	var revision string
	var modified bool

	for _, s := range settings {
		switch s.Key {
		case "vcs":
			vcs = true
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}

	var inf Info

	if revision == "" {
		inf.Revision = "no revision information"
	} else {
		inf.Revision = revision
		if modified {
			inf.Revision = fmt.Sprintf("%s+dirty", revision)
		}
	}

	switch {
	case number != "":
		inf.Version = number
		inf.Release = true
	case vcs:
		inf.Version = "unreleased"
	default:
		inf.Version = "local"
	}

	return inf
}
