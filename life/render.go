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
	"image/color"

	"github.com/jetsetilly/rollout/regression"
)

// colours used by Render()
var (
	AliveColour = color.RGBA{R: 0xf0, G: 0xe0, B: 0x60, A: 0xff}
	DeadColour  = color.RGBA{R: 0x10, G: 0x10, B: 0x20, A: 0xff}
)

// Render draws the grid into the RGBA pixel buffer, scaled to fill the
// buffer. Implements regression.RenderFunc.
func Render(s State, pixels []byte, width int, height int) {
	if s.Width == 0 || s.Height == 0 {
		return
	}

	for py := 0; py < height; py++ {
		cy := py * s.Height / height
		for px := 0; px < width; px++ {
			cx := px * s.Width / width

			col := DeadColour
			if s.Cells[cy*s.Width+cx] != 0 {
				col = AliveColour
			}

			base := (py*width + px) * 4
			pixels[base+0] = col.R
			pixels[base+1] = col.G
			pixels[base+2] = col.B
			pixels[base+3] = col.A
		}
	}
}

// Name of the simulation in the regression database and in scenario scripts.
const Name = "life"

// Game returns the simulation in the form required by the regression
// database. Each cell is drawn as a square of scale pixels.
func Game(l Logic, scale int) regression.Game {
	if scale < 1 {
		scale = 1
	}
	return regression.NewGame[State, Input](Name, l, NewRegistry(), Render, l.Width*scale, l.Height*scale)
}
