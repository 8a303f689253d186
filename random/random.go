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


package random

import "math/rand/v2"

// Random is a source of random numbers that depends only on the seed and the
// time requested.
type Random struct {
	Seed uint64
}

// At returns a new generator for the point t in simulated time.
func (rnd Random) At(t uint64) *rand.Rand {
	return rand.New(rand.NewPCG(rnd.Seed, t))
}

// IntN returns the first number in [0,n) produced at time t.
func (rnd Random) IntN(t uint64, n int) int {
	return rnd.At(t).IntN(n)
}
