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
	"path/filepath"

	"github.com/jetsetilly/rollout/curated"
	"github.com/jetsetilly/rollout/digest"
	"github.com/jetsetilly/rollout/logger"
	"github.com/jetsetilly/rollout/logic"
	"github.com/jetsetilly/rollout/rewind"
	"github.com/jetsetilly/rollout/runner"
)

// Sentinal error patterns.
const (
	// the first placeholder is the path of the file
	PersistenceError = "regression: %s: %v"

	// frame number followed by the original and replay hashes. if the hash
	// sequences are of different lengths the missing hash is shown as "none"
	ReplayDivergence = "regression: replay diverges at frame %d: original %s, replay %s"
)

// RenderFunc draws a state into an RGBA pixel buffer. The buffer is always
// width*height*4 bytes. The function should depend only on the state and the
// dimensions.
type RenderFunc[S any] func(state S, pixels []byte, width int, height int)

// Artifacts are the results of a regression run.
type Artifacts struct {
	// path to the saved history
	StatePath string

	// hash of every frame before and after the history was saved and loaded
	OriginalHashes []string
	ReplayHashes   []string
}

// RecordReplayHashes runs the simulation with the drive function and saves the
// history to outDir. The history is then loaded into a new runner without
// running the simulation.
//
// Every recorded frame is rendered and hashed for both the original and the
// reloaded runner. If the two sequences of hashes differ the artifacts are
// returned with a ReplayDivergence error.
func RecordReplayHashes[S any, I any](name string, outDir string, l logic.Logic[S, I],
	drive func(*runner.Runner[S, I]), width int, height int, render RenderFunc[S],
	hasher digest.Hasher) (Artifacts, error) {

	if hasher == nil {
		hasher = digest.SHA256
	}

	r := runner.NewRunner(l)
	drive(r)

	art := Artifacts{
		StatePath: filepath.Join(outDir, SanitizeFilename(name)+".json"),
	}

	if err := r.Timeline().Save(art.StatePath); err != nil {
		return Artifacts{}, curated.Errorf(PersistenceError, art.StatePath, err)
	}

	art.OriginalHashes = HashFrames(r, width, height, render, hasher)

	h, err := rewind.Load[S](art.StatePath)
	if err != nil {
		return Artifacts{}, curated.Errorf(PersistenceError, art.StatePath, err)
	}

	art.ReplayHashes = HashFrames(runner.FromHistory(l, h), width, height, render, hasher)

	logger.Logf(logger.Allow, "regression", "%s: hashed %d frames (%s)", name, len(art.OriginalHashes), hasher.Name())

	return art, CompareHashes(art.OriginalHashes, art.ReplayHashes)
}

// HashFrames renders and hashes every recorded frame of the runner, including
// any frames after the present frame. The runner is not changed, so live
// steps not yet recorded because of the record interval are preserved.
func HashFrames[S any, I any](r *runner.Runner[S, I], width int, height int, render RenderFunc[S], hasher digest.Hasher) []string {
	tl := r.Timeline()

	hashes := make([]string, tl.Len())
	for i := range hashes {
		s, _ := tl.StateAt(i)
		pixels := make([]byte, width*height*4)
		render(s, pixels, width, height)
		hashes[i] = hasher.Sum(pixels)
	}

	return hashes
}

// CompareHashes returns a ReplayDivergence error for the first frame where the
// two sequences differ.
func CompareHashes(original []string, replay []string) error {
	n := max(len(original), len(replay))
	for i := 0; i < n; i++ {
		o := "none"
		if i < len(original) {
			o = original[i]
		}
		r := "none"
		if i < len(replay) {
			r = replay[i]
		}
		if o != r {
			return curated.Errorf(ReplayDivergence, i, o, r)
		}
	}
	return nil
}
