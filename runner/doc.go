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

// Package runner drives a simulation forward one step at a time, recording
// every new state in a rewind.History.
//
// The Runner type owns the simulation logic and the history. Each call to
// Step() computes the next state from the present state and records it:
//
//	r := runner.NewRunner(logic)
//	r.Step(input)
//	r.Run(inputs...)
//
// Rewind(), Forward() and Seek() move the present frame without running the
// simulation. A Step() after a Rewind() continues from the rewound state and
// discards the states that were ahead of it.
//
// A runner can also be created from a history that has been loaded from disk
// with FromHistory(). No steps are run in that case and the present state is
// the state at the history's present frame.
//
// The time taken by each step is reported to a performance.Profiler. The
// default profiler does nothing. Timings are for information only and never
// affect the simulation.
//
// By default every step is recorded. SetRecordEveryNFrames() changes that so
// that only every Nth step is recorded. The present state still advances on
// every step but Frame() only increases when a state is recorded.
package runner
