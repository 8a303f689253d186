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
	"path/filepath"
	"time"

	"github.com/jetsetilly/rollout/resources"
)

// create a unique filename for a copy of a scenario. used when saving
// scenarios into the regressionScenarios directory
func uniqueFilename(scenarioName string) (string, error) {
	n := time.Now()
	timestamp := fmt.Sprintf("%04d%02d%02d_%02d%02d%02d%03d",
		n.Year(), n.Month(), n.Day(), n.Hour(), n.Minute(), n.Second(), n.Nanosecond()/1000000)

	f := fmt.Sprintf("%s_%s.yaml", SanitizeFilename(scenarioName), timestamp)

	p, err := resources.JoinPath(regressionPath, regressionScenarios, f)
	if err != nil {
		return "", err
	}

	// a scenario added in the same millisecond as another with the same name
	for i := 1; ; i++ {
		if _, err := os.Stat(p); os.IsNotExist(err) {
			return p, nil
		}
		p = filepath.Join(filepath.Dir(p), fmt.Sprintf("%s_%s_%d.yaml", SanitizeFilename(scenarioName), timestamp, i))
	}
}
