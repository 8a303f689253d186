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
	"strings"
)

// State is the state of the grid at a single frame. Cells are stored row by
// row and are either 0 (dead) or 1 (alive).
type State struct {
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	Cells      []uint8 `json:"cells"`
	Generation int     `json:"generation"`

	// the number of gliders stamped. used to place the next glider
	Gliders int `json:"gliders"`

	// seed for the next randomisation
	Entropy uint64 `json:"entropy"`
}

// Clone implements the logic.Cloner interface.
func (s State) Clone() State {
	c := s
	c.Cells = make([]uint8, len(s.Cells))
	copy(c.Cells, s.Cells)
	return c
}

// Alive returns true if the cell at the coordinates is alive. Coordinates
// wrap around the edges of the grid.
func (s State) Alive(x int, y int) bool {
	return s.Cells[s.index(x, y)] == 1
}

func (s State) index(x int, y int) int {
	x = ((x % s.Width) + s.Width) % s.Width
	y = ((y % s.Height) + s.Height) % s.Height
	return y*s.Width + x
}

// Population returns the number of live cells.
func (s State) Population() int {
	var n int
	for _, c := range s.Cells {
		n += int(c)
	}
	return n
}

// String returns the grid as text. Live cells are shown as '#'.
func (s State) String() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("generation %d population %d\n", s.Generation, s.Population()))
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			if s.Cells[y*s.Width+x] == 1 {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
