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
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/rollout/curated"
	"github.com/jetsetilly/rollout/digest"
	"github.com/jetsetilly/rollout/logger"
)

// GoldenMismatch is the sentinal error pattern for a failed golden check. The
// first placeholder is the path of the golden file.
const GoldenMismatch = "regression: golden mismatch (%s): %v"

// UpdateHint is included in every GoldenMismatch error.
const UpdateHint = "set ROLLOUT_UPDATE_GOLDENS=1 to accept the new hashes"

const goldenVersion = "# rollout golden v1"

// Golden is the baseline of render hashes for a named regression run.
type Golden struct {
	Name   string
	Width  int
	Height int
	Alg    string
	Hashes []string
}

// GoldenPath returns the path of the golden file for a regression name.
func GoldenPath(dir string, name string) string {
	return filepath.Join(dir, SanitizeFilename(name)+".golden")
}

// SanitizeFilename replaces every character that is not a letter, a digit, a
// hyphen or an underscore with an underscore.
func SanitizeFilename(name string) string {
	var s strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			s.WriteRune(r)
		default:
			s.WriteRune('_')
		}
	}
	return s.String()
}

// Write the golden to io.Writer in the text format.
func (g Golden) Write(w io.Writer) error {
	var s strings.Builder
	s.WriteString(goldenVersion)
	s.WriteString("\n")
	s.WriteString(fmt.Sprintf("# name: %s\n", g.Name))
	s.WriteString(fmt.Sprintf("# size: %dx%d\n", g.Width, g.Height))
	s.WriteString(fmt.Sprintf("# alg: %s\n", g.Alg))
	for _, h := range g.Hashes {
		s.WriteString(h)
		s.WriteString("\n")
	}
	_, err := io.WriteString(w, s.String())
	return err
}

// ReadGolden reads a golden from io.Reader.
func ReadGolden(r io.Reader) (Golden, error) {
	var g Golden

	scanner := bufio.NewScanner(r)

	if !scanner.Scan() || strings.TrimSpace(scanner.Text()) != goldenVersion {
		return Golden{}, fmt.Errorf("not a golden file")
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if c, ok := strings.CutPrefix(line, "#"); ok {
			k, v, ok := strings.Cut(strings.TrimSpace(c), ":")
			if !ok {
				continue
			}
			v = strings.TrimSpace(v)
			switch strings.TrimSpace(k) {
			case "name":
				g.Name = v
			case "size":
				if _, err := fmt.Sscanf(v, "%dx%d", &g.Width, &g.Height); err != nil {
					return Golden{}, fmt.Errorf("invalid size (%s)", v)
				}
			case "alg":
				g.Alg = v
			}
			continue
		}

		g.Hashes = append(g.Hashes, line)
	}

	if err := scanner.Err(); err != nil {
		return Golden{}, err
	}

	if g.Alg == "" {
		g.Alg = digest.SHA256.Name()
	}

	return g, nil
}

// SaveGolden writes the golden to the named file, creating any missing
// directories.
func SaveGolden(path string, g Golden) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return curated.Errorf(PersistenceError, path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return curated.Errorf(PersistenceError, path, err)
	}

	err = g.Write(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return curated.Errorf(PersistenceError, path, err)
	}

	return nil
}

// LoadGolden reads the golden in the named file.
func LoadGolden(path string) (Golden, error) {
	f, err := os.Open(path)
	if err != nil {
		return Golden{}, curated.Errorf(PersistenceError, path, err)
	}
	defer f.Close()

	g, err := ReadGolden(f)
	if err != nil {
		return Golden{}, curated.Errorf(PersistenceError, path, err)
	}

	return g, nil
}

// AssertOrUpdateGolden checks SHA256 render hashes against the golden file at
// path. See AssertOrUpdate().
func AssertOrUpdateGolden(path string, name string, width int, height int, hashes []string, update bool) error {
	return AssertOrUpdate(path, Golden{
		Name:   name,
		Width:  width,
		Height: height,
		Alg:    digest.SHA256.Name(),
		Hashes: hashes,
	}, update)
}

// AssertOrUpdate checks the golden against the golden file at path. If update
// is true the file is overwritten instead and no check is made.
//
// A GoldenMismatch error is returned if the file does not exist, if the
// name, dimensions or hash algorithm differ, or if any hash differs.
func AssertOrUpdate(path string, g Golden, update bool) error {
	if update {
		if err := SaveGolden(path, g); err != nil {
			return err
		}
		logger.Logf(logger.Allow, "regression", "updated golden %s (%d frames)", path, len(g.Hashes))
		return nil
	}

	expected, err := LoadGolden(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return curated.Errorf(GoldenMismatch, path, fmt.Errorf("golden file does not exist: %s", UpdateHint))
		}
		return err
	}

	if expected.Name != g.Name {
		return curated.Errorf(GoldenMismatch, path,
			fmt.Errorf("name is %q, expected %q: %s", g.Name, expected.Name, UpdateHint))
	}

	if expected.Width != g.Width || expected.Height != g.Height {
		return curated.Errorf(GoldenMismatch, path,
			fmt.Errorf("dimensions are %dx%d, expected %dx%d: %s", g.Width, g.Height, expected.Width, expected.Height, UpdateHint))
	}

	if expected.Alg != g.Alg {
		return curated.Errorf(GoldenMismatch, path,
			fmt.Errorf("hash algorithm is %s, expected %s: %s", g.Alg, expected.Alg, UpdateHint))
	}

	if len(expected.Hashes) != len(g.Hashes) {
		return curated.Errorf(GoldenMismatch, path,
			fmt.Errorf("%d frames, expected %d: %s", len(g.Hashes), len(expected.Hashes), UpdateHint))
	}

	var diffs []string
	for i := range g.Hashes {
		if g.Hashes[i] != expected.Hashes[i] {
			diffs = append(diffs, fmt.Sprintf("frame %d (expected %s, got %s)", i, expected.Hashes[i], g.Hashes[i]))
		}
	}

	if len(diffs) > 0 {
		return curated.Errorf(GoldenMismatch, path,
			fmt.Errorf("%d frames differ in %dx%d: %s: %s", len(diffs), g.Width, g.Height, strings.Join(diffs, ", "), UpdateHint))
	}

	return nil
}
