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
	"fmt"
	"io"
	"time"
)

// Accumulator is an implementation of the Profiler interface. It collects
// the timings of every step it is given.
type Accumulator struct {
	Steps int

	// sum of all timings
	Sum StepTimings

	// the largest timing of each type and the frame it occurred on
	Max      StepTimings
	MaxFrame int

	// the frame number given by the most recent step
	LastFrame int
}

// OnStep implements the Profiler interface.
func (acc *Accumulator) OnStep(frame int, timings StepTimings) {
	acc.Steps++
	acc.LastFrame = frame

	acc.Sum.Step += timings.Step
	acc.Sum.Record += timings.Record
	acc.Sum.Total += timings.Total

	if timings.Step > acc.Max.Step {
		acc.Max.Step = timings.Step
	}
	if timings.Record > acc.Max.Record {
		acc.Max.Record = timings.Record
	}
	if timings.Total > acc.Max.Total {
		acc.Max.Total = timings.Total
		acc.MaxFrame = frame
	}
}

// Mean returns the average timings. All values will be zero if no steps have
// been accumulated.
func (acc *Accumulator) Mean() StepTimings {
	if acc.Steps == 0 {
		return StepTimings{}
	}
	n := time.Duration(acc.Steps)
	return StepTimings{
		Step:   acc.Sum.Step / n,
		Record: acc.Sum.Record / n,
		Total:  acc.Sum.Total / n,
	}
}

// Reset all accumulated values.
func (acc *Accumulator) Reset() {
	*acc = Accumulator{}
}

// Report writes a summary of the accumulated timings to io.Writer.
func (acc *Accumulator) Report(output io.Writer) error {
	if acc.Steps == 0 {
		_, err := io.WriteString(output, "no steps profiled\n")
		return err
	}

	mean := acc.Mean()
	_, err := io.WriteString(output, fmt.Sprintf("%d steps (last frame %d)\n", acc.Steps, acc.LastFrame))
	if err != nil {
		return err
	}
	_, err = io.WriteString(output, fmt.Sprintf("  step:   mean %v max %v\n", mean.Step, acc.Max.Step))
	if err != nil {
		return err
	}
	_, err = io.WriteString(output, fmt.Sprintf("  record: mean %v max %v\n", mean.Record, acc.Max.Record))
	if err != nil {
		return err
	}
	_, err = io.WriteString(output, fmt.Sprintf("  total:  mean %v max %v (frame %d)\n", mean.Total, acc.Max.Total, acc.MaxFrame))
	return err
}
