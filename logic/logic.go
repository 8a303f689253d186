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

package logic

// Logic is implemented by any deterministic simulation. S is the state type
// and I is the input type.
type Logic[S any, I any] interface {
	// the state of the simulation at frame zero
	InitialState() S

	// the state that follows the supplied state when the input is applied.
	// must be a pure function of state and input
	Step(state S, input I) S
}

// Func adapts a pair of functions to the Logic interface.
type Func[S any, I any] struct {
	Initial    func() S
	Transition func(state S, input I) S
}

// InitialState implements the Logic interface.
func (f Func[S, I]) InitialState() S {
	return f.Initial()
}

// Step implements the Logic interface.
func (f Func[S, I]) Step(state S, input I) S {
	return f.Transition(state, input)
}

// Cloner is an optional interface for state types that contain reference
// types.
type Cloner[S any] interface {
	Clone() S
}

// Clone returns a copy of the state that does not share memory with the
// original. If the state type does not implement Cloner then a value copy is
// returned, which is sufficient for state types with no reference types.
func Clone[S any](s S) S {
	if c, ok := any(s).(Cloner[S]); ok {
		return c.Clone()
	}
	return s
}
