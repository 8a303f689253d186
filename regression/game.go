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

package regression

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/rollout/actions"
	"github.com/jetsetilly/rollout/curated"
	"github.com/jetsetilly/rollout/digest"
	"github.com/jetsetilly/rollout/logic"
)

// Game is a simulation that can be used with the regression database.
type Game interface {
	Name() string
	Dimensions() (width int, height int)
	Actions() []actions.Action

	// RunScenario drives the simulation with the scenario and returns the
	// result of RecordReplayHashes()
	RunScenario(scr *Scenario, outDir string, hasher digest.Hasher) (Artifacts, error)
}

type game[S any, I any] struct {
	name   string
	logic  logic.Logic[S, I]
	reg    *actions.Registry[I]
	render RenderFunc[S]
	width  int
	height int
}

// NewGame creates a Game from the parts of a simulation.
func NewGame[S any, I any](name string, l logic.Logic[S, I], reg *actions.Registry[I],
	render RenderFunc[S], width int, height int) Game {
	return &game[S, I]{
		name:   name,
		logic:  l,
		reg:    reg,
		render: render,
		width:  width,
		height: height,
	}
}

func (g *game[S, I]) Name() string {
	return g.name
}

func (g *game[S, I]) Dimensions() (int, int) {
	return g.width, g.height
}

func (g *game[S, I]) Actions() []actions.Action {
	return g.reg.Manifest()
}

func (g *game[S, I]) RunScenario(scr *Scenario, outDir string, hasher digest.Hasher) (Artifacts, error) {
	if scr.Game != "" && scr.Game != g.name {
		return Artifacts{}, curated.Errorf(ScenarioError, scr.Name,
			fmt.Errorf("scenario is for %s not %s", scr.Game, g.name))
	}

	drive, err := Drive[S, I](scr, g.reg)
	if err != nil {
		return Artifacts{}, err
	}

	return RecordReplayHashes(scr.Name, outDir, g.logic, drive, g.width, g.height, g.render, hasher)
}

// FindGame returns the game with the specified name. The comparison is not
// case sensitive.
func FindGame(games []Game, name string) (Game, error) {
	for _, g := range games {
		if strings.EqualFold(g.Name(), name) {
			return g, nil
		}
	}
	return nil, curated.Errorf("regression: unknown game (%s)", name)
}
