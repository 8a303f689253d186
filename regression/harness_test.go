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

package regression_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/rollout/actions"
	"github.com/jetsetilly/rollout/curated"
	"github.com/jetsetilly/rollout/digest"
	"github.com/jetsetilly/rollout/logic"
	"github.com/jetsetilly/rollout/regression"
	"github.com/jetsetilly/rollout/runner"
	"github.com/jetsetilly/rollout/test"
)

// grid is a small simulation where a cursor moves around a grid and marks
// every cell it visits
type grid struct {
	X, Y  int
	Cells [16]bool
}

type move int

const (
	up move = iota
	down
	left
	right
	mark
)

var gridLogic = logic.Func[grid, move]{
	Initial: func() grid { return grid{} },
	Transition: func(g grid, m move) grid {
		switch m {
		case up:
			g.Y = (g.Y + 3) % 4
		case down:
			g.Y = (g.Y + 1) % 4
		case left:
			g.X = (g.X + 3) % 4
		case right:
			g.X = (g.X + 1) % 4
		case mark:
			g.Cells[g.Y*4+g.X] = true
		}
		return g
	},
}

func gridRender(g grid, pixels []byte, width int, height int) {
	for py := 0; py < height; py++ {
		for px := 0; px < width; px++ {
			cx := px * 4 / width
			cy := py * 4 / height
			base := (py*width + px) * 4
			if g.Cells[cy*4+cx] {
				pixels[base] = 0xff
			}
			if cx == g.X && cy == g.Y {
				pixels[base+1] = 0xff
			}
			pixels[base+3] = 0xff
		}
	}
}

func gridRegistry() *actions.Registry[move] {
	reg := actions.NewRegistry[move]()
	_ = reg.Register("up", "Move up", up)
	_ = reg.Register("down", "Move down", down)
	_ = reg.Register("left", "Move left", left)
	_ = reg.Register("right", "Move right", right)
	_ = reg.Register("mark", "Mark cell", mark)
	return reg
}

func gridDrive(r *runner.Runner[grid, move]) {
	r.Run(mark, right, mark, down, down)
	r.Rewind(2)
	r.Run(left, mark)
}

func TestRecordReplayHashes(t *testing.T) {
	dir := t.TempDir()

	art, err := regression.RecordReplayHashes[grid, move]("grid test/1", dir, gridLogic, gridDrive, 8, 8, gridRender, digest.SHA256)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, art.StatePath, filepath.Join(dir, "grid_test_1.json"))
	test.ExpectEquality(t, len(art.OriginalHashes), 6)
	test.ExpectDeepEquality(t, art.ReplayHashes, art.OriginalHashes)

	// the saved history is the full branch-discarded history
	data, err := os.ReadFile(art.StatePath)
	test.DemandSuccess(t, err)
	var saved struct {
		States []grid `json:"states"`
		Frame  int    `json:"frame"`
	}
	test.DemandSuccess(t, json.Unmarshal(data, &saved))
	test.ExpectEquality(t, len(saved.States), 6)
	test.ExpectEquality(t, saved.Frame, 5)
}

func TestHashFramesKeepsLiveState(t *testing.T) {
	r := runner.NewRunner[grid, move](gridLogic)
	r.SetRecordEveryNFrames(2)

	// the third step is live but not yet recorded
	r.Run(mark, right, mark)
	test.DemandEquality(t, r.Timeline().Len(), 2)
	live := r.State()

	hashes := regression.HashFrames(r, 4, 4, gridRender, digest.SHA256)
	test.ExpectEquality(t, len(hashes), 2)
	test.ExpectEquality(t, r.Frame(), 1)
	test.ExpectEquality(t, r.State(), live)

	// the next step completes the interval and records the fourth step
	r.Step(down)
	test.ExpectEquality(t, r.Timeline().Len(), 3)
	test.ExpectEquality(t, r.State(), grid{X: 1, Y: 1, Cells: live.Cells})

	recorded, ok := r.Timeline().StateAt(2)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, recorded, r.State())
}

func TestReplayDivergence(t *testing.T) {
	// a renderer that depends on something other than the state
	var calls int
	render := func(g grid, pixels []byte, width int, height int) {
		gridRender(g, pixels, width, height)
		calls++
		if calls > 3 {
			pixels[0] ^= 0xff
		}
	}

	art, err := regression.RecordReplayHashes[grid, move]("divergent", t.TempDir(), gridLogic, gridDrive, 4, 4, render, digest.XXHash)
	test.ExpectSuccess(t, curated.Is(err, regression.ReplayDivergence))
	test.ExpectSuccess(t, strings.Contains(err.Error(), "frame 0"))
	test.ExpectEquality(t, len(art.ReplayHashes), len(art.OriginalHashes))
}

func TestCompareHashes(t *testing.T) {
	test.ExpectSuccess(t, regression.CompareHashes([]string{"a", "b"}, []string{"a", "b"}))
	test.ExpectSuccess(t, regression.CompareHashes(nil, nil))

	err := regression.CompareHashes([]string{"a", "b", "c"}, []string{"a", "x", "c"})
	test.ExpectSuccess(t, curated.Is(err, regression.ReplayDivergence))
	test.ExpectEquality(t, err.Error(), "regression: replay diverges at frame 1: original b, replay x")

	err = regression.CompareHashes([]string{"a"}, []string{"a", "b"})
	test.ExpectEquality(t, err.Error(), "regression: replay diverges at frame 1: original none, replay b")
}

func TestPersistenceFailure(t *testing.T) {
	// the output directory is a file
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	test.DemandSuccess(t, os.WriteFile(blocker, nil, 0600))

	_, err := regression.RecordReplayHashes[grid, move]("blocked", blocker, gridLogic, gridDrive, 4, 4, gridRender, nil)
	test.ExpectSuccess(t, curated.Is(err, regression.PersistenceError))
	test.ExpectSuccess(t, strings.Contains(err.Error(), blocker))
}

func TestSanitizeFilename(t *testing.T) {
	test.ExpectEquality(t, regression.SanitizeFilename("abc-DEF_123"), "abc-DEF_123")
	test.ExpectEquality(t, regression.SanitizeFilename("a b/c.d"), "a_b_c_d")
	test.ExpectEquality(t, regression.SanitizeFilename("ü"), "_")
	test.ExpectEquality(t, regression.GoldenPath("goldens", "x y"), filepath.Join("goldens", "x_y.golden"))
}

func TestGoldenMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.golden")
	hashes := []string{"h0", "h1", "h2", "h3"}

	err := regression.AssertOrUpdateGolden(path, "g", 4, 4, hashes, false)
	test.ExpectSuccess(t, curated.Is(err, regression.GoldenMismatch))
	test.ExpectSuccess(t, strings.Contains(err.Error(), path))
	test.ExpectSuccess(t, strings.Contains(err.Error(), "ROLLOUT_UPDATE_GOLDENS=1"))

	test.DemandSuccess(t, regression.AssertOrUpdateGolden(path, "g", 4, 4, hashes, true))

	data, err := os.ReadFile(path)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(data), "# rollout golden v1\n# name: g\n# size: 4x4\n# alg: sha256\nh0\nh1\nh2\nh3\n")

	test.ExpectSuccess(t, regression.AssertOrUpdateGolden(path, "g", 4, 4, hashes, false))

	// differing frames are listed
	err = regression.AssertOrUpdateGolden(path, "g", 4, 4, []string{"h0", "x1", "h2", "x3"}, false)
	test.ExpectSuccess(t, curated.Is(err, regression.GoldenMismatch))
	test.ExpectSuccess(t, strings.Contains(err.Error(), "frame 1 (expected h1, got x1)"))
	test.ExpectSuccess(t, strings.Contains(err.Error(), "frame 3 (expected h3, got x3)"))
	test.ExpectFailure(t, strings.Contains(err.Error(), "frame 2"))
	test.ExpectSuccess(t, strings.Contains(err.Error(), "ROLLOUT_UPDATE_GOLDENS=1"))

	// length
	err = regression.AssertOrUpdateGolden(path, "g", 4, 4, hashes[:3], false)
	test.ExpectSuccess(t, curated.Is(err, regression.GoldenMismatch))
	test.ExpectSuccess(t, strings.Contains(err.Error(), "3 frames, expected 4"))

	// dimensions
	err = regression.AssertOrUpdateGolden(path, "g", 4, 5, hashes, false)
	test.ExpectSuccess(t, strings.Contains(err.Error(), "dimensions are 4x5, expected 4x4"))

	// name
	err = regression.AssertOrUpdateGolden(path, "h", 4, 4, hashes, false)
	test.ExpectSuccess(t, curated.Is(err, regression.GoldenMismatch))

	// algorithm
	err = regression.AssertOrUpdate(path, regression.Golden{Name: "g", Width: 4, Height: 4, Alg: "xxhash", Hashes: hashes}, false)
	test.ExpectSuccess(t, curated.Is(err, regression.GoldenMismatch))

	// not a golden file
	test.DemandSuccess(t, os.WriteFile(path, []byte("hello\n"), 0600))
	err = regression.AssertOrUpdateGolden(path, "g", 4, 4, hashes, false)
	test.ExpectSuccess(t, curated.Is(err, regression.PersistenceError))
}
