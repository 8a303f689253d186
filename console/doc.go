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


// Package console drives a simulation interactively from a terminal. Each key
// press is translated into a request for an agent.Host and the resulting state
// is printed.
//
// The Terminal type is a small wrapper for "github.com/pkg/term". It puts the
// terminal into cbreak mode so that key presses are delivered immediately.
// Play() itself only needs a KeyReader, which means it can be driven by
// anything that produces key codes.
package console
