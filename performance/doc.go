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

// Package performance contains helper functions relating to performance.
//
// The Profiler interface is the instrumentation hook used by the runner
// package. A profiler receives the frame number and the time taken by each
// part of a step: the simulation step itself and the recording of the new
// state. Keeping these separate allows the cost of the simulation to be
// distinguished from the cost of bookkeeping. The runner uses the Nop profiler
// unless told otherwise.
//
// The Accumulator type is a Profiler that collects statistics over many steps
// and can write a summary report.
//
// Check() is a quick way of running a simulation for a fixed duration of time.
// It will optionally generate profiling information with RunProfiler().
//
// The limiter sub-package provides a way of running a loop at a fixed rate.
package performance
