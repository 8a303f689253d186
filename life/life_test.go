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

package life_test

import (
	"testing"

	"github.com/jetsetilly/rollout/life"
	"github.com/jetsetilly/rollout/test"
)

func TestBlinker(t *testing.T) {
	l := life.NewLogic(5, 5, 0)
	s := l.InitialState()
	s.Cells[1*5+2] = 1
	s.Cells[2*5+2] = 1
	s.Cells[3*5+2] = 1

	n := l.Step(s, life.Tick)
	test.ExpectEquality(t, n.Generation, 1)
	test.ExpectEquality(t, n.Population(), 3)
	test.ExpectSuccess(t, n.Alive(1, 2))
	test.ExpectSuccess(t, n.Alive(2, 2))
	test.ExpectSuccess(t, n.Alive(3, 2))

	n = l.Step(n, life.Tick)
	test.ExpectDeepEquality(t, n.Cells, s.Cells)

	// the original state has not been changed by stepping
	test.ExpectEquality(t, s.Generation, 0)
	test.ExpectSuccess(t, s.Alive(2, 1))
	test.ExpectFailure(t, s.Alive(1, 2))
}

func TestGlider(t *testing.T) {
	l := life.NewLogic(8, 8, 0)
	s := l.Step(l.InitialState(), life.Glider)
	test.ExpectEquality(t, s.Population(), 5)
	test.ExpectEquality(t, s.Gliders, 1)

	// a glider moves one cell diagonally every four generations
	n := s
	for i := 0; i < 4; i++ {
		n = l.Step(n, life.Tick)
	}
	test.ExpectEquality(t, n.Population(), 5)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			test.ExpectEquality(t, n.Alive(x+1, y+1), s.Alive(x, y), x, y)
		}
	}

	// the second glider is placed elsewhere
	s = l.Step(s, life.Glider)
	test.ExpectEquality(t, s.Population(), 10)

	s = l.Step(s, life.Clear)
	test.ExpectEquality(t, s.Population(), 0)
	test.ExpectEquality(t, s.Gliders, 2)
}

func TestRandomise(t *testing.T) {
	l := life.NewLogic(16, 16, 1234)

	a := l.Step(l.InitialState(), life.Randomise)
	b := l.Step(l.InitialState(), life.Randomise)
	test.ExpectDeepEquality(t, a, b)
	test.ExpectInequality(t, a.Population(), 0)

	// randomising again produces a different grid
	c := l.Step(a, life.Randomise)
	test.ExpectInequality(t, c.Entropy, a.Entropy)
	test.ExpectFailure(t, string(c.Cells) == string(a.Cells))

	// a different seed produces a different grid
	d := life.NewLogic(16, 16, 4321).Step(life.NewLogic(16, 16, 4321).InitialState(), life.Randomise)
	test.ExpectFailure(t, string(d.Cells) == string(a.Cells))
}

func TestNoop(t *testing.T) {
	l := life.NewLogic(0, 0, 0)
	test.ExpectEquality(t, l.Width, life.DefaultWidth)
	test.ExpectEquality(t, l.Height, life.DefaultHeight)

	s := l.Step(l.InitialState(), life.Glider)
	n := l.Step(s, life.Noop)
	test.ExpectDeepEquality(t, n, s)

	// the result does not share memory with the original
	n.Cells[0] = 1
	test.ExpectEquality(t, s.Cells[0], uint8(0))
}

func TestRegistry(t *testing.T) {
	reg := life.NewRegistry()
	test.ExpectDeepEquality(t, reg.IDs(), []string{"noop", "tick", "clear", "glider", "randomise"})

	i, err := reg.Lookup("glider")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, i, life.Glider)
}

func TestRender(t *testing.T) {
	l := life.NewLogic(4, 4, 0)
	s := l.InitialState()
	s.Cells[0] = 1

	pixels := make([]byte, 8*8*4)
	life.Render(s, pixels, 8, 8)

	// cell 0,0 covers the top left 2x2 pixels
	for _, p := range [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
		base := (p[1]*8 + p[0]) * 4
		test.ExpectEquality(t, pixels[base], life.AliveColour.R, p)
	}
	test.ExpectEquality(t, pixels[2*4], life.DeadColour.R)
	test.ExpectEquality(t, pixels[len(pixels)-1], life.DeadColour.A)
}

func TestString(t *testing.T) {
	l := life.NewLogic(4, 4, 0)
	s := l.Step(l.InitialState(), life.Glider)
	test.ExpectEquality(t, s.String(), "generation 0 population 5\n....\n..#.\n...#\n.###\n")
}
