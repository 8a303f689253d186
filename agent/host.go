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

package agent

import (
	"fmt"

	"github.com/jetsetilly/rollout/logic"
	"github.com/jetsetilly/rollout/rewind"
	"github.com/jetsetilly/rollout/runner"
)

// Host handles requests for a single simulation.
type Host[S any, I any] struct {
	runner *runner.Runner[S, I]
}

// NewHost is the preferred method of initialisation for the Host type.
func NewHost[S any, I any](l logic.Logic[S, I]) *Host[S, I] {
	return &Host[S, I]{
		runner: runner.NewRunner(l),
	}
}

// FromRunner creates a Host for an existing runner. A reset request will
// reinitialise the simulation with the runner's logic.
func FromRunner[S any, I any](r *runner.Runner[S, I]) *Host[S, I] {
	return &Host[S, I]{
		runner: r,
	}
}

// Runner returns the runner being used by the host.
func (h *Host[S, I]) Runner() *runner.Runner[S, I] {
	return h.runner
}

// Timeline returns a summary of the simulation's history.
func (h *Host[S, I]) Timeline() rewind.Timeline {
	return h.runner.Timeline().GetTimeline()
}

func (h *Host[S, I]) state() Response[S] {
	return Response[S]{
		Kind:  RespState,
		Frame: h.runner.Frame(),
		State: logic.Clone(h.runner.State()),
	}
}

// Handle a request. Requests are handled synchronously and always succeed.
//
// An unrecognised request kind is a programming error and will cause a panic.
func (h *Host[S, I]) Handle(req Request[I]) Response[S] {
	switch req.Kind {
	case ReqStep:
		h.runner.Step(req.Input)
	case ReqReset:
		// reinitialises from the logic and not from the present history
		h.runner.Reset()
	case ReqGetState:
	case ReqGetHistory:
		return Response[S]{
			Kind:    RespHistory,
			Frame:   h.runner.Frame(),
			History: cloneAll(h.runner.History()),
		}
	case ReqRewind:
		h.runner.Rewind(req.Frames)
	case ReqForward:
		h.runner.Forward(req.Frames)
	case ReqSeek:
		h.runner.Seek(req.Frames)
	default:
		panic(fmt.Sprintf("agent: %v", req.Kind))
	}
	return h.state()
}

// states leaving the host must not share memory with the recorded history
func cloneAll[S any](states []S) []S {
	for i := range states {
		states[i] = logic.Clone(states[i])
	}
	return states
}
