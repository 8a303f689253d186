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

// Package agent is a synchronous request/response interface to a simulation.
// It is suitable for use by anything that wants to control a simulation
// without knowing how the simulation is run: a user interface, a script or a
// remote connection.
//
// Requests are created with the constructor functions and passed to
// Host.Handle(). Every request returns a Response. Requests never fail.
//
//	h := agent.NewHost(logic)
//	resp := h.Handle(agent.Step(input))
//	fmt.Println(resp.Frame, resp.State)
//
// Action identifiers that arrive as strings must be translated into inputs
// before a request is created. See the actions package.
package agent
