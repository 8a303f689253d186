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

package performance

import "time"

// StepTimings are the durations of the parts of a single step.
type StepTimings struct {
	// the time taken by the simulation to produce the next state
	Step time.Duration

	// the time taken to record the new state. this will be zero if the state
	// was not recorded
	Record time.Duration

	// the time taken by the entire step, including any overhead
	Total time.Duration
}

// Profiler implementations receive the timings of every step.
type Profiler interface {
	OnStep(frame int, timings StepTimings)
}

type nop struct{}

func (_ nop) OnStep(_ int, _ StepTimings) {}

// Nop is a Profiler that does nothing.
var Nop Profiler = nop{}
