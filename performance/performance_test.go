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

package performance_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/rollout/performance"
	"github.com/jetsetilly/rollout/test"
)

func TestAccumulator(t *testing.T) {
	var acc performance.Accumulator

	w := &strings.Builder{}
	test.ExpectSuccess(t, acc.Report(w))
	test.ExpectEquality(t, w.String(), "no steps profiled\n")
	test.ExpectEquality(t, acc.Mean(), performance.StepTimings{})

	acc.OnStep(1, performance.StepTimings{Step: 2 * time.Millisecond, Record: time.Millisecond, Total: 4 * time.Millisecond})
	acc.OnStep(2, performance.StepTimings{Step: 4 * time.Millisecond, Total: 6 * time.Millisecond})
	acc.OnStep(3, performance.StepTimings{Step: 3 * time.Millisecond, Record: time.Millisecond, Total: 5 * time.Millisecond})

	test.ExpectEquality(t, acc.Steps, 3)
	test.ExpectEquality(t, acc.LastFrame, 3)
	test.ExpectEquality(t, acc.MaxFrame, 2)
	test.ExpectEquality(t, acc.Max.Step, 4*time.Millisecond)
	test.ExpectEquality(t, acc.Max.Record, time.Millisecond)
	test.ExpectEquality(t, acc.Mean().Step, 3*time.Millisecond)
	test.ExpectEquality(t, acc.Mean().Total, 5*time.Millisecond)

	w.Reset()
	test.ExpectSuccess(t, acc.Report(w))
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "3 steps (last frame 3)\n"))

	acc.Reset()
	test.ExpectEquality(t, acc.Steps, 0)
}

func TestNop(t *testing.T) {
	// must not panic
	performance.Nop.OnStep(0, performance.StepTimings{})
}

func TestParseProfile(t *testing.T) {
	p, err := performance.ParseProfile("cpu")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU)

	p, err = performance.ParseProfile("CPU,mem")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileMem)
	test.ExpectEquality(t, p.String(), "CPU,MEM")

	p, err = performance.ParseProfile("both")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileMem)

	p, err = performance.ParseProfile("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p.String(), "NONE")

	_, err = performance.ParseProfile("gpu")
	test.ExpectFailure(t, err)
}

func TestCheck(t *testing.T) {
	var frame int
	w := &strings.Builder{}
	err := performance.Check(context.Background(), w, performance.ProfileNone, 10*time.Millisecond, func() int {
		frame++
		return frame
	})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, frame >= 100)
	test.ExpectSuccess(t, strings.Contains(w.String(), "steps/sec"))

	err = performance.Check(context.Background(), w, performance.ProfileNone, 0, func() int { return 0 })
	test.ExpectFailure(t, err)
}

func TestCheckCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var frame int
	w := &strings.Builder{}
	start := time.Now()
	err := performance.Check(ctx, w, performance.ProfileNone, time.Hour, func() int {
		frame++
		return frame
	})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, time.Since(start) < time.Second)
	test.ExpectEquality(t, frame, 0)
	test.ExpectSuccess(t, strings.Contains(w.String(), "(0 steps in"))
}

func TestCheckCancelledDuringRun(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var frame int
	w := &strings.Builder{}
	start := time.Now()
	err := performance.Check(ctx, w, performance.ProfileNone, time.Hour, func() int {
		frame++
		if frame == 250 {
			cancel()
		}
		return frame
	})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, time.Since(start) < time.Second)

	// cancellation is noticed at the next brake boundary
	test.ExpectEquality(t, frame, 300)
	test.ExpectSuccess(t, strings.Contains(w.String(), "(300 steps in"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "last frame 300"))
}
