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

// Package actions translates string identifiers into simulation inputs.
//
// Identifiers are how things outside of the program refer to inputs: a remote
// connection, a script or a command line. The simulation owns the registry and
// decides what identifiers are available.
//
//	reg := actions.NewRegistry[Input]()
//	reg.Register("tick", "Advance one generation", Tick)
//
// Unknown identifiers are rejected with an UnknownAction error before any
// request reaches an agent.Host. The error message names the identifier.
package actions
