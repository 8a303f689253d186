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

import "github.com/jetsetilly/rollout/random"

// default size of the grid
const (
	DefaultWidth  = 32
	DefaultHeight = 32
)

// Logic implements the logic.Logic interface for the game of life.
type Logic struct {
	Width  int
	Height int
	Seed   uint64
}

// NewLogic is the preferred method of initialisation for the Logic type. Sizes
// less than four are changed to the default size.
func NewLogic(width int, height int, seed uint64) Logic {
	if width < 4 {
		width = DefaultWidth
	}
	if height < 4 {
		height = DefaultHeight
	}
	return Logic{Width: width, Height: height, Seed: seed}
}

// InitialState implements the logic.Logic interface. The grid is empty.
func (l Logic) InitialState() State {
	return State{
		Width:   l.Width,
		Height:  l.Height,
		Cells:   make([]uint8, l.Width*l.Height),
		Entropy: l.Seed,
	}
}

// Step implements the logic.Logic interface.
func (l Logic) Step(s State, input Input) State {
	switch input {
	case Tick:
		return tick(s)
	case Clear:
		n := s.Clone()
		clear(n.Cells)
		return n
	case Glider:
		return glider(s)
	case Randomise:
		return randomise(s)
	}
	return s.Clone()
}

func tick(s State) State {
	n := s.Clone()
	n.Generation++

	w, h := s.Width, s.Height
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			neighbours := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx := (x + dx + w) % w
					ny := (y + dy + h) % h
					neighbours += int(s.Cells[ny*w+nx])
				}
			}
			idx := y*w + x
			alive := s.Cells[idx] == 1
			n.Cells[idx] = 0
			if (alive && (neighbours == 2 || neighbours == 3)) || (!alive && neighbours == 3) {
				n.Cells[idx] = 1
			}
		}
	}

	return n
}

// relative coordinates of a glider heading down and to the right
var gliderShape = [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}

func glider(s State) State {
	n := s.Clone()

	// successive gliders are placed along the diagonal
	ox := 1 + 4*s.Gliders
	oy := 1 + 4*s.Gliders
	for _, c := range gliderShape {
		n.Cells[n.index(ox+c[0], oy+c[1])] = 1
	}
	n.Gliders++

	return n
}

func randomise(s State) State {
	n := s.Clone()

	rng := random.Random{Seed: s.Entropy}.At(uint64(s.Generation))
	for i := range n.Cells {
		n.Cells[i] = uint8(rng.IntN(2))
	}
	n.Entropy = rng.Uint64()

	return n
}
