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

package life

import (
	"fmt"

	"github.com/jetsetilly/rollout/actions"
)

// Input is an action applied to the grid during a step.
type Input int

// List of valid Input values.
const (
	Noop Input = iota
	Tick
	Clear
	Glider
	Randomise
)

func (i Input) String() string {
	switch i {
	case Noop:
		return "noop"
	case Tick:
		return "tick"
	case Clear:
		return "clear"
	case Glider:
		return "glider"
	case Randomise:
		return "randomise"
	}
	return fmt.Sprintf("input(%d)", int(i))
}

// NewRegistry returns the action registry for the simulation.
func NewRegistry() *actions.Registry[Input] {
	reg := actions.NewRegistry[Input]()

	// identifiers are unique so registration can not fail
	_ = reg.Register(Noop.String(), "Do nothing", Noop)
	_ = reg.Register(Tick.String(), "Advance one generation", Tick)
	_ = reg.Register(Clear.String(), "Kill every cell", Clear)
	_ = reg.Register(Glider.String(), "Add a glider", Glider)
	_ = reg.Register(Randomise.String(), "Fill the grid randomly", Randomise)

	return reg
}
