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

// Package logic defines the capability a simulation must expose in order to
// be run, rewound and replayed: an initial state and a pure transition from
// (state, input) to the next state.
//
// The replay guarantees of the rewind, runner and regression packages rest
// entirely on the purity of Step(). An implementation must not keep hidden
// mutable context, must not use randomness that is not seeded from the state
// or the input, and must not perform I/O.
//
// States are treated as immutable values. Step() must not modify the state it
// is given and must return a new value. If the state type contains reference
// types (slices, maps, pointers) then Step() is responsible for copying them
// before making changes. Implementing the Cloner interface allows the Clone()
// function to make a deep copy when a state is handed to a caller outside of
// the simulation.
//
// States must also be serialisable with the encoding/json package. This is
// how a recorded history is persisted and later resumed from.
package logic
