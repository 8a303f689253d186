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


//go:build !statsview

package statsview

import "io"

// DefaultAddress is used by Launch() when no address is given.
const DefaultAddress = ""

// Launch does nothing unless the package was built with the statsview build
// tag.
func Launch(_ io.Writer, _ string) func() {
	return func() {}
}

// Available returns true if the package was built with the statsview build
// tag.
func Available() bool {
	return false
}
