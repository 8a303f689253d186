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

import (
	"context"
	"fmt"
	"io"
	"time"
)

// how often the duration is checked. checking the clock on every step is
// measurably expensive for simple simulations
const performanceBrake = 100

// Check the performance of a simulation by calling the step function
// repeatedly until the duration has elapsed. The step function should return
// the frame number of the simulation after the step.
//
// Check returns early if the context is cancelled. Only steps that were
// actually taken are included in the rate written to output.
func Check(ctx context.Context, output io.Writer, profile Profile, duration time.Duration, step func() int) error {
	if duration <= 0 {
		return fmt.Errorf("performance: duration must be positive (%v)", duration)
	}

	var numSteps int
	var lastFrame int
	var elapsed time.Duration

	run := func() error {
		start := time.Now()
		for {
			select {
			case <-ctx.Done():
				elapsed = time.Since(start)
				return nil
			default:
			}
			for range performanceBrake {
				lastFrame = step()
				numSteps++
			}
			elapsed = time.Since(start)
			if elapsed >= duration {
				return nil
			}
		}
	}

	err := RunProfiler(profile, "performance", run)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	var rate float64
	if elapsed > 0 {
		rate = float64(numSteps) / elapsed.Seconds()
	}
	_, err = io.WriteString(output, fmt.Sprintf("%.2f steps/sec (%d steps in %.2f seconds, last frame %d)\n",
		rate, numSteps, elapsed.Seconds(), lastFrame))

	return err
}
