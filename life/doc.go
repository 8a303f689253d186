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

// Package life is Conway's Game of Life on a wrapping grid. It is a small but
// complete example of a simulation that can be recorded, rewound and replayed.
//
// The State type is an immutable value. Every step returns a new State and
// never changes the State it was given. The Input type is a small set of
// actions, each of which is registered with an identifier in the actions
// registry returned by NewRegistry().
//
// Randomisation is deterministic. The random number generator is seeded from
// values carried in the State, so that the same sequence of inputs always
// produces the same sequence of states.
package life
