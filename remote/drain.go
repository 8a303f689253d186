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


package remote

import (
	"github.com/jetsetilly/rollout/actions"
	"github.com/jetsetilly/rollout/agent"
	"github.com/jetsetilly/rollout/curated"
)

// Drain applies every command waiting in the queue, oldest first, and
// replies to each. It never blocks. Returns the number of commands taken from
// the queue, including those that replied with an error.
//
// Drain must only be called from the goroutine that owns the host.
func Drain[S any, I any](q *Queue[Command[S]], host *agent.Host[S, I], reg *actions.Registry[I]) int {
	var n int
	for {
		cmd, ok := q.TryPop()
		if !ok {
			return n
		}
		cmd.respond(apply(cmd, host, reg))
		n++
	}
}

func apply[S any, I any](cmd Command[S], host *agent.Host[S, I], reg *actions.Registry[I]) Reply[S] {
	var r Reply[S]

	switch cmd.Kind {
	case CmdStep:
		r.Response, r.Err = actions.StepByID(host, reg, cmd.Action)
		if r.Err != nil {
			// the host is left untouched but the reply still describes the
			// current position
			r.Response = host.Handle(agent.GetState[I]())
		}
	case CmdRewind:
		r.Response = host.Handle(agent.Rewind[I](cmd.Frames))
	case CmdForward:
		r.Response = host.Handle(agent.Forward[I](cmd.Frames))
	case CmdSeek:
		r.Response = host.Handle(agent.Seek[I](cmd.Frames))
	case CmdReset:
		r.Response = host.Handle(agent.Reset[I]())
	case CmdGetState, CmdGetTimeline:
		r.Response = host.Handle(agent.GetState[I]())
	case CmdGetHistory:
		r.Response = host.Handle(agent.GetHistory[I]())
	default:
		r.Err = curated.Errorf(UnknownCommand, cmd.Kind.String())
		r.Response = host.Handle(agent.GetState[I]())
	}

	r.Timeline = host.Timeline()
	return r
}
