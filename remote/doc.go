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


// Package remote allows a simulation to be controlled from outside the
// goroutine that runs it.
//
// Commands are pushed onto a Queue by any number of producers. The goroutine
// that owns the simulation calls Drain() once per tick, which applies every
// queued command through an agent.Host, in the order they were pushed, and
// replies to each one.
//
//	q := remote.NewQueue[remote.Command[life.State]](64)
//	for range ticker.C {
//		remote.Drain(q, host, registry)
//	}
//
// The Server type accepts commands over a websocket connection and forwards
// them to a Queue. The server never touches the simulation directly.
package remote
