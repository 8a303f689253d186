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
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"sort"
	"strings"

	"github.com/jetsetilly/rollout/resources"
)

// the key that selects the entries that failed during the previous run
const failsKey = "FAILS"

// errNoPreviousFails is returned by addFailsToKeys() if the FAILS key has
// been used but there are no previous fails
var errNoPreviousFails = errors.New("no previous fails")

func saveFails(keys []string) error {
	sort.Strings(keys)
	keys = slices.Compact(keys)

	p, err := resources.JoinPath(regressionPath, regressionFails)
	if err != nil {
		return fmt.Errorf("save fails: %w", err)
	}

	var s strings.Builder
	for _, k := range keys {
		s.WriteString(k)
		s.WriteString("\n")
	}

	if err := os.WriteFile(p, []byte(s.String()), 0600); err != nil {
		return fmt.Errorf("save fails: %w", err)
	}

	return nil
}

func loadFails() ([]string, error) {
	p, err := resources.JoinPath(regressionPath, regressionFails)
	if err != nil {
		return []string{}, fmt.Errorf("load fails: %w", err)
	}

	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return []string{}, fmt.Errorf("load fails: %w", err)
	}

	keys := strings.Split(string(b), "\n")

	keys = slices.DeleteFunc(keys, func(s string) bool {
		return len(strings.TrimSpace(s)) == 0
	})

	sort.Strings(keys)
	keys = slices.Compact(keys)

	return keys, nil
}

// addFailsToKeys replaces the FAILS key with the keys that failed during the
// previous run
func addFailsToKeys(keys []string) ([]string, error) {
	sort.Strings(keys)
	keys = slices.Compact(keys)

	n := slices.IndexFunc(keys, func(s string) bool {
		return strings.ToUpper(s) == failsKey
	})
	if n >= 0 {
		keys = slices.Delete(keys, n, n+1)

		prevFails, err := loadFails()
		if err != nil {
			return keys, err
		}

		if len(prevFails) == 0 {
			return keys, errNoPreviousFails
		}

		keys = append(keys, prevFails...)
		sort.Strings(keys)
		keys = slices.Compact(keys)
	}

	return keys, nil
}
