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
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/rollout/curated"
	"github.com/jetsetilly/rollout/database"
	"github.com/jetsetilly/rollout/digest"
)

const scenarioEntryType = "scenario"

const (
	scenarioFieldGame int = iota
	scenarioFieldName
	scenarioFieldScript
	scenarioFieldAlg
	scenarioFieldFrames
	scenarioFieldDigest
	numScenarioFields
)

// ScenarioEntry is the regression database entry for a scenario.
type ScenarioEntry struct {
	game   Game
	name   string
	script string
	hasher digest.Hasher

	// the number of frames recorded by the scenario and the chained digest of
	// their render hashes
	frames int
	digest string
}

// NewScenarioEntry prepares a new entry for the regression database. The
// scenario is loaded from the script to check that it is usable with the
// game.
func NewScenarioEntry(games []Game, script string, hasher digest.Hasher) (*ScenarioEntry, error) {
	scr, err := LoadScenario(script)
	if err != nil {
		return nil, err
	}

	g, err := FindGame(games, scr.Game)
	if err != nil {
		return nil, err
	}

	if hasher == nil {
		hasher = digest.SHA256
	}

	return &ScenarioEntry{
		game:   g,
		name:   strings.ReplaceAll(scr.Name, ",", " "),
		script: script,
		hasher: hasher,
	}, nil
}

func deserialiseScenarioEntry(games []Game) database.Deserialiser {
	return func(fields []string) (database.Entry, error) {
		if len(fields) != numScenarioFields {
			return nil, fmt.Errorf("scenario: expected %d fields, got %d", numScenarioFields, len(fields))
		}

		g, err := FindGame(games, fields[scenarioFieldGame])
		if err != nil {
			return nil, err
		}

		hasher, err := digest.ByName(fields[scenarioFieldAlg])
		if err != nil {
			return nil, err
		}

		frames, err := strconv.Atoi(fields[scenarioFieldFrames])
		if err != nil {
			return nil, fmt.Errorf("scenario: invalid frame count (%s)", fields[scenarioFieldFrames])
		}

		return &ScenarioEntry{
			game:   g,
			name:   fields[scenarioFieldName],
			script: fields[scenarioFieldScript],
			hasher: hasher,
			frames: frames,
			digest: fields[scenarioFieldDigest],
		}, nil
	}
}

// EntryType implements the database.Entry interface.
func (ent *ScenarioEntry) EntryType() string {
	return scenarioEntryType
}

// Serialise implements the database.Entry interface.
func (ent *ScenarioEntry) Serialise() ([]string, error) {
	if ent.digest == "" {
		return nil, fmt.Errorf("scenario: %s has not been run", ent.name)
	}
	fields := make([]string, numScenarioFields)
	fields[scenarioFieldGame] = ent.game.Name()
	fields[scenarioFieldName] = ent.name
	fields[scenarioFieldScript] = ent.script
	fields[scenarioFieldAlg] = ent.hasher.Name()
	fields[scenarioFieldFrames] = strconv.Itoa(ent.frames)
	fields[scenarioFieldDigest] = ent.digest
	return fields, nil
}

// CleanUp implements the database.Entry interface. The copy of the scenario
// script is removed.
func (ent *ScenarioEntry) CleanUp() error {
	err := os.Remove(ent.script)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (ent *ScenarioEntry) String() string {
	w, h := ent.game.Dimensions()
	return fmt.Sprintf("[%s] %s (%s %dx%d) frames=%d", scenarioEntryType, ent.name, ent.game.Name(), w, h, ent.frames)
}

// regress runs the scenario. if newRegression is true the digest is stored
// in the entry. otherwise the digest is compared with the stored digest. the
// returned string describes the failure
func (ent *ScenarioEntry) regress(newRegression bool, output io.Writer, msg string) (bool, string, error) {
	if _, err := io.WriteString(output, msg); err != nil {
		return false, "", err
	}

	scr, err := LoadScenario(ent.script)
	if err != nil {
		return false, "", err
	}

	tmp, err := os.MkdirTemp("", "rollout_regression")
	if err != nil {
		return false, "", curated.Errorf("regression: %v", err)
	}
	defer os.RemoveAll(tmp)

	art, err := ent.game.RunScenario(scr, tmp, ent.hasher)
	if err != nil {
		if curated.Is(err, ReplayDivergence) {
			return false, err.Error(), nil
		}
		return false, "", err
	}

	ch := digest.NewChain(ent.hasher)
	for _, h := range art.OriginalHashes {
		ch.Push([]byte(h))
	}

	if newRegression {
		ent.frames = len(art.OriginalHashes)
		ent.digest = ch.Hash()
		return true, "", nil
	}

	if len(art.OriginalHashes) != ent.frames {
		return false, fmt.Sprintf("%d frames recorded, expected %d", len(art.OriginalHashes), ent.frames), nil
	}

	if ch.Hash() != ent.digest {
		return false, "digest mismatch", nil
	}

	return true, "", nil
}
