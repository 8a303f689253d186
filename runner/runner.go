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

package runner

import (
	"time"

	"github.com/jetsetilly/rollout/logic"
	"github.com/jetsetilly/rollout/performance"
	"github.com/jetsetilly/rollout/rewind"
)

// Runner steps a simulation and records the result.
type Runner[S any, I any] struct {
	logic    logic.Logic[S, I]
	history  *rewind.History[S]
	profiler performance.Profiler

	// the present state. this is the same as the state at the history's
	// present frame unless the record interval is greater than one
	live S

	// the number of steps taken since frame zero. used to decide whether a
	// step should be recorded
	steps int
}

// NewRunner is the preferred method of initialisation for the Runner type. The
// history is seeded with the initial state of the logic.
func NewRunner[S any, I any](l logic.Logic[S, I]) *Runner[S, I] {
	return FromHistory(l, rewind.NewHistory(l.InitialState()))
}

// FromHistory creates a Runner that adopts an existing history. No steps are
// run.
func FromHistory[S any, I any](l logic.Logic[S, I], h *rewind.History[S]) *Runner[S, I] {
	r := &Runner[S, I]{
		logic:    l,
		history:  h,
		profiler: performance.Nop,
	}
	r.sync()
	return r
}

// sync the live state and step count with the history's present frame
func (r *Runner[S, I]) sync() {
	r.live = r.history.State()
	r.steps = r.history.Frame() * r.history.RecordEveryNFrames()
}

// SetProfiler changes the profiler that receives step timings. A nil value
// restores the default profiler.
func (r *Runner[S, I]) SetProfiler(p performance.Profiler) {
	if p == nil {
		p = performance.Nop
	}
	r.profiler = p
}

// SetRecordEveryNFrames changes the recording interval. Values less than one
// are treated as one.
func (r *Runner[S, I]) SetRecordEveryNFrames(n int) {
	r.history.SetRecordEveryNFrames(n)
	r.steps = r.history.Frame() * r.history.RecordEveryNFrames()
}

// Frame returns the present frame.
func (r *Runner[S, I]) Frame() int {
	return r.history.Frame()
}

// State returns the present state.
func (r *Runner[S, I]) State() S {
	return r.live
}

// History returns a copy of every recorded state.
func (r *Runner[S, I]) History() []S {
	return r.history.States()
}

// Timeline returns the underlying history. It is intended for persistence
// and inspection. Moving the history's present frame directly will not be
// reflected by State() until the next call to Rewind(), Forward() or Seek().
func (r *Runner[S, I]) Timeline() *rewind.History[S] {
	return r.history
}

// Logic returns the simulation logic used by the runner.
func (r *Runner[S, I]) Logic() logic.Logic[S, I] {
	return r.logic
}

// Step the simulation once with the supplied input. Returns the present
// frame.
func (r *Runner[S, I]) Step(input I) int {
	start := time.Now()

	r.live = r.logic.Step(r.live, input)
	r.steps++
	stepped := time.Now()

	var timings performance.StepTimings
	timings.Step = stepped.Sub(start)

	if r.steps%r.history.RecordEveryNFrames() == 0 {
		r.history.Record(r.live)
		timings.Record = time.Since(stepped)
	}

	frame := r.history.Frame()
	timings.Total = time.Since(start)
	r.profiler.OnStep(frame, timings)

	return frame
}

// Run steps the simulation once for each input, in order. Returns the present
// frame after the last step.
func (r *Runner[S, I]) Run(inputs ...I) int {
	for _, i := range inputs {
		r.Step(i)
	}
	return r.history.Frame()
}

// Reset replaces the history with a new history containing only the initial
// state. The recording interval is preserved. Returns the present frame, which
// is always zero.
func (r *Runner[S, I]) Reset() int {
	n := r.history.RecordEveryNFrames()
	r.history = rewind.NewHistory(r.logic.InitialState())
	r.history.SetRecordEveryNFrames(n)
	r.sync()
	return r.history.Frame()
}

// Rewind the present frame by the number of frames. Returns the present frame.
func (r *Runner[S, I]) Rewind(frames int) int {
	r.history.Rewind(frames)
	r.sync()
	return r.history.Frame()
}

// Forward the present frame by the number of frames. Returns the present
// frame.
func (r *Runner[S, I]) Forward(frames int) int {
	r.history.Forward(frames)
	r.sync()
	return r.history.Frame()
}

// Seek moves the present frame to the specified frame. Returns the present
// frame.
func (r *Runner[S, I]) Seek(frame int) int {
	r.history.Seek(frame)
	r.sync()
	return r.history.Frame()
}
