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
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jetsetilly/rollout/actions"
	"github.com/jetsetilly/rollout/curated"
	"github.com/jetsetilly/rollout/runner"
)

// ScenarioError is the sentinal error pattern for an invalid scenario. The
// first placeholder is the name of the scenario.
const ScenarioError = "regression: scenario (%s): %v"

// ScenarioStep is a single instruction in a scenario. Exactly one field should
// be set.
type ScenarioStep struct {
	Action  string `yaml:"action,omitempty"`
	Repeat  int    `yaml:"repeat,omitempty"`
	Rewind  int    `yaml:"rewind,omitempty"`
	Forward int    `yaml:"forward,omitempty"`
	Seek    *int   `yaml:"seek,omitempty"`
	Reset   bool   `yaml:"reset,omitempty"`
}

func (stp ScenarioStep) String() string {
	switch {
	case stp.Action != "":
		if stp.Repeat > 1 {
			return fmt.Sprintf("action %s x%d", stp.Action, stp.Repeat)
		}
		return fmt.Sprintf("action %s", stp.Action)
	case stp.Rewind != 0:
		return fmt.Sprintf("rewind %d", stp.Rewind)
	case stp.Forward != 0:
		return fmt.Sprintf("forward %d", stp.Forward)
	case stp.Seek != nil:
		return fmt.Sprintf("seek %d", *stp.Seek)
	case stp.Reset:
		return "reset"
	}
	return "empty step"
}

func (stp ScenarioStep) validate() error {
	var n int
	if stp.Action != "" {
		n++
	}
	if stp.Rewind != 0 {
		n++
	}
	if stp.Forward != 0 {
		n++
	}
	if stp.Seek != nil {
		n++
	}
	if stp.Reset {
		n++
	}
	if n != 1 {
		return fmt.Errorf("step must have exactly one instruction")
	}
	if stp.Repeat != 0 && stp.Action == "" {
		return fmt.Errorf("repeat is only valid with an action")
	}
	if stp.Repeat < 0 || stp.Rewind < 0 || stp.Forward < 0 {
		return fmt.Errorf("negative count (%s)", stp)
	}
	return nil
}

// Scenario is a scripted sequence of actions and history movements.
//
// Scenarios are written in YAML:
//
//	name: glider
//	game: life
//	steps:
//	  - action: glider
//	  - action: tick
//	    repeat: 10
//	  - rewind: 2
//	  - action: clear
//	  - seek: 3
//	  - forward: 1
//	  - reset: true
type Scenario struct {
	Name               string         `yaml:"name"`
	Game               string         `yaml:"game"`
	RecordEveryNFrames int            `yaml:"record_every_n_frames,omitempty"`
	Steps              []ScenarioStep `yaml:"steps"`
}

// ParseScenario parses YAML data into a Scenario.
func ParseScenario(data []byte) (*Scenario, error) {
	var scr Scenario
	if err := yaml.Unmarshal(data, &scr); err != nil {
		return nil, curated.Errorf(ScenarioError, "yaml", err)
	}

	scr.Name = strings.TrimSpace(scr.Name)
	if scr.Name == "" {
		return nil, curated.Errorf(ScenarioError, "yaml", "scenario has no name")
	}

	for i, stp := range scr.Steps {
		if err := stp.validate(); err != nil {
			return nil, curated.Errorf(ScenarioError, scr.Name, fmt.Errorf("step %d: %w", i, err))
		}
	}

	return &scr, nil
}

// LoadScenario reads and parses the named file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, curated.Errorf(PersistenceError, path, err)
	}
	return ParseScenario(data)
}

// Marshal the scenario to YAML.
func (scr *Scenario) Marshal() ([]byte, error) {
	return yaml.Marshal(scr)
}

// NumActions returns the number of steps the scenario will take, counting
// repeats.
func (scr *Scenario) NumActions() int {
	var n int
	for _, stp := range scr.Steps {
		if stp.Action != "" {
			n += max(1, stp.Repeat)
		}
	}
	return n
}

// Drive returns a function that runs the scenario on a runner. All action
// identifiers are checked before the function is returned, so that a scenario
// with an unknown action never touches a runner.
func Drive[S any, I any](scr *Scenario, reg *actions.Registry[I]) (func(*runner.Runner[S, I]), error) {
	type step struct {
		ScenarioStep
		input I
	}

	steps := make([]step, len(scr.Steps))
	for i, stp := range scr.Steps {
		steps[i].ScenarioStep = stp
		if stp.Action != "" {
			input, err := reg.Lookup(stp.Action)
			if err != nil {
				return nil, curated.Errorf(ScenarioError, scr.Name, fmt.Errorf("step %d: %w", i, err))
			}
			steps[i].input = input
		}
	}

	return func(r *runner.Runner[S, I]) {
		if scr.RecordEveryNFrames > 1 {
			r.SetRecordEveryNFrames(scr.RecordEveryNFrames)
		}
		for _, stp := range steps {
			switch {
			case stp.Action != "":
				for n := 0; n < max(1, stp.Repeat); n++ {
					r.Step(stp.input)
				}
			case stp.Rewind != 0:
				r.Rewind(stp.Rewind)
			case stp.Forward != 0:
				r.Forward(stp.Forward)
			case stp.Seek != nil:
				r.Seek(*stp.Seek)
			case stp.Reset:
				r.Reset()
			}
		}
	}, nil
}
