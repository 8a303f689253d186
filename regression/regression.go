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
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/jetsetilly/rollout/curated"
	"github.com/jetsetilly/rollout/database"
	"github.com/jetsetilly/rollout/logger"
	"github.com/jetsetilly/rollout/resources"
)

// resource paths
const (
	regressionDBFile    = "regressionDB"
	regressionPath      = "regression"
	regressionScenarios = "scenarios"
	regressionFails     = "fails"
)

// Regressor represents the generic entry in the regression database.
type Regressor interface {
	database.Entry

	// perform the regression test for the regression type. the newRegression
	// flag is for convenience really (or "logical binding", as the structured
	// programmers would have it)
	//
	// message is the string that is to be printed during the regression.
	// returns a description of the failure if the regression fails
	regress(newRegression bool, output io.Writer, message string) (bool, string, error)
}

// when starting a database session we need to register what entries we will
// find in the database
func initDBSession(games []Game) func(*database.Session) error {
	return func(db *database.Session) error {
		return db.RegisterEntryType(scenarioEntryType, deserialiseScenarioEntry(games))
	}
}

func startSession(games []Game, activity database.Activity) (*database.Session, error) {
	dbPth, err := resources.JoinPath(regressionDBFile)
	if err != nil {
		return nil, curated.Errorf("regression: %v", err)
	}

	db, err := database.StartSession(dbPth, activity, initDBSession(games))
	if err != nil {
		return nil, curated.Errorf("regression: %v", err)
	}

	return db, nil
}

// RegressList displays all entries in the database.
func RegressList(output io.Writer, games []Game) error {
	if output == nil {
		return fmt.Errorf("regression: list: io.Writer should not be nil (use a nopWriter)")
	}

	db, err := startSession(games, database.ActivityCreating)
	if err != nil {
		return err
	}
	defer db.EndSession(false)

	return db.List(output)
}

// RegressAdd adds a new scenario to the database. The scenario script is
// copied into the resources directory so that later changes to the original
// file do not affect the regression.
func RegressAdd(output io.Writer, games []Game, reg *ScenarioEntry) error {
	if output == nil {
		return fmt.Errorf("regression: add: io.Writer should not be nil (use a nopWriter)")
	}

	data, err := os.ReadFile(reg.script)
	if err != nil {
		return curated.Errorf(PersistenceError, reg.script, err)
	}

	copyPth, err := uniqueFilename(reg.name)
	if err != nil {
		return curated.Errorf("regression: %v", err)
	}

	if err := os.WriteFile(copyPth, data, 0600); err != nil {
		return curated.Errorf(PersistenceError, copyPth, err)
	}
	reg.script = copyPth

	db, err := startSession(games, database.ActivityCreating)
	if err != nil {
		_ = reg.CleanUp()
		return err
	}

	ok, fail, err := reg.regress(true, output, fmt.Sprintf("adding: %s", reg))
	if err != nil || !ok {
		_ = reg.CleanUp()
		_ = db.EndSession(false)
		if err != nil {
			return err
		}
		return curated.Errorf("regression: %s", fail)
	}

	key, err := db.Add(reg)
	if err != nil {
		_ = reg.CleanUp()
		_ = db.EndSession(false)
		return err
	}

	if err := db.EndSession(true); err != nil {
		return err
	}

	_, err = io.WriteString(output, fmt.Sprintf("\radded: %03d %s\n", key, reg))
	logger.Logf(logger.Allow, "regression", "added %s", reg)

	return err
}

// RegressDelete removes an entry from the regression database. The user is
// asked to confirm the deletion by reading from the confirmation io.Reader.
func RegressDelete(output io.Writer, confirmation io.Reader, games []Game, key string) error {
	if output == nil {
		return fmt.Errorf("regression: delete: io.Writer should not be nil (use a nopWriter)")
	}

	v, err := strconv.Atoi(key)
	if err != nil {
		return curated.Errorf("regression: invalid key (%s)", key)
	}

	db, err := startSession(games, database.ActivityModifying)
	if err != nil {
		return err
	}

	ent, err := db.Get(v)
	if err != nil {
		_ = db.EndSession(false)
		return err
	}

	if _, err := io.WriteString(output, fmt.Sprintf("%s\ndelete? (y/n): ", ent)); err != nil {
		_ = db.EndSession(false)
		return err
	}

	confirm, err := bufio.NewReader(confirmation).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		_ = db.EndSession(false)
		return err
	}

	confirm = strings.ToLower(strings.TrimSpace(confirm))
	if confirm != "y" && confirm != "yes" {
		return db.EndSession(false)
	}

	if err := db.Delete(v); err != nil {
		_ = db.EndSession(false)
		return err
	}

	if err := db.EndSession(true); err != nil {
		return err
	}

	_, err = io.WriteString(output, fmt.Sprintf("deleted test #%s from regression database\n", key))
	return err
}

// RegressResult summarises a call to RegressRun().
type RegressResult struct {
	Succeed int
	Fail    int
	Error   int
	Skipped int
}

func (res RegressResult) String() string {
	s := fmt.Sprintf("regression tests: %d succeed, %d fail, %d skipped", res.Succeed, res.Fail, res.Skipped)
	if res.Error > 0 {
		s = fmt.Sprintf("%s [with %d errors]", s, res.Error)
	}
	return s
}

// RegressRun runs the entries in the regression database. The keys argument
// specifies which entries to run. An empty list means that every entry should
// be run. The key FAILS selects the entries that failed during the previous
// run.
//
// The keys of any entries that fail (or return an error) are remembered for
// the next run.
func RegressRun(output io.Writer, games []Game, verbose bool, keys []string) (RegressResult, error) {
	var res RegressResult

	if output == nil {
		return res, fmt.Errorf("regression: run: io.Writer should not be nil (use a nopWriter)")
	}

	keys, err := addFailsToKeys(keys)
	if err != nil {
		if errors.Is(err, errNoPreviousFails) && len(keys) == 0 {
			_, err = io.WriteString(output, "no previous fails\n")
			return res, err
		}
		if !errors.Is(err, errNoPreviousFails) {
			return res, curated.Errorf("regression: %v", err)
		}
	}

	db, err := startSession(games, database.ActivityReading)
	if err != nil {
		return res, err
	}
	defer db.EndSession(false)

	keysV := make([]int, 0, len(keys))
	for _, k := range keys {
		v, err := strconv.Atoi(k)
		if err != nil {
			return res, curated.Errorf("regression: invalid key (%s)", k)
		}
		keysV = append(keysV, v)
	}
	sort.Ints(keysV)

	if len(keysV) > 0 {
		res.Skipped = db.NumEntries() - len(keysV)
	}

	var fails []string

	onSelect := func(key int, ent database.Entry) error {
		reg, ok := ent.(Regressor)
		if !ok {
			return curated.Errorf("regression: database entry does not satisfy Regressor interface")
		}

		ok, fail, err := reg.regress(false, output, fmt.Sprintf("running: %03d %s", key, reg))

		switch {
		case err != nil:
			res.Error++
			fails = append(fails, strconv.Itoa(key))
			if _, err := io.WriteString(output, fmt.Sprintf("\r  ERROR: %03d %s\n", key, reg)); err != nil {
				return err
			}
			if verbose {
				if _, err := io.WriteString(output, fmt.Sprintf("  %v\n", err)); err != nil {
					return err
				}
			}
		case !ok:
			res.Fail++
			fails = append(fails, strconv.Itoa(key))
			if _, err := io.WriteString(output, fmt.Sprintf("\rfailure: %03d %s\n", key, reg)); err != nil {
				return err
			}
			if verbose {
				if _, err := io.WriteString(output, fmt.Sprintf("  %s\n", fail)); err != nil {
					return err
				}
			}
		default:
			res.Succeed++
			if _, err := io.WriteString(output, fmt.Sprintf("\rsucceed: %03d %s\n", key, reg)); err != nil {
				return err
			}
		}

		return nil
	}

	if err := db.SelectKeys(onSelect, keysV...); err != nil {
		return res, err
	}

	if err := saveFails(fails); err != nil {
		return res, curated.Errorf("regression: %v", err)
	}

	_, err = io.WriteString(output, fmt.Sprintf("%s\n", res))
	logger.Log(logger.Allow, "regression", res)

	return res, err
}
