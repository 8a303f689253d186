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


// Package random should be used in preference to the math/rand package when a
// random number is required inside a simulation step.
//
// Numbers are derived from a seed carried by the simulation state and from
// the position in simulated time. The same seed and time always produce the
// same numbers, which means a step that uses random numbers can be rewound and
// replayed with identical results.
//
//	rng := random.Random{Seed: s.Entropy}.At(uint64(s.Generation))
//	v := rng.IntN(2)
//
// Random numbers based on wall-clock time or a global generator must never be
// used inside a step.
package random
