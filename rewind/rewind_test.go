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

package rewind_test

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/jetsetilly/rollout/curated"
	"github.com/jetsetilly/rollout/rewind"
	"github.com/jetsetilly/rollout/test"
)

func TestRewindAndBranch(t *testing.T) {
	h := rewind.NewHistory(0)
	test.ExpectEquality(t, h.Record(1), 1)
	test.ExpectEquality(t, h.Record(3), 2)
	test.ExpectDeepEquality(t, h.States(), []int{0, 1, 3})
	test.ExpectEquality(t, h.State(), 3)

	test.ExpectEquality(t, h.Rewind(1), 1)
	test.ExpectEquality(t, h.State(), 1)
	test.ExpectDeepEquality(t, h.States(), []int{0, 1, 3})
	test.ExpectSuccess(t, h.CanForward())

	// recording from frame 1 discards the 3
	test.ExpectEquality(t, h.Record(99), 2)
	test.ExpectDeepEquality(t, h.States(), []int{0, 1, 99})
	test.ExpectEquality(t, h.Frame(), 2)
	test.ExpectFailure(t, h.CanForward())
}

func TestSaturation(t *testing.T) {
	h := rewind.NewHistory("a")
	h.Record("b")
	h.Record("c")

	test.ExpectEquality(t, h.Rewind(100), 0)
	test.ExpectFailure(t, h.CanRewind())
	test.ExpectEquality(t, h.Rewind(1), 0)
	test.ExpectEquality(t, h.Forward(100), 2)
	test.ExpectEquality(t, h.Forward(1), 2)
	test.ExpectEquality(t, h.Len(), 3)

	// negative values do not move the cursor
	test.ExpectEquality(t, h.Rewind(-1), 2)
	test.ExpectEquality(t, h.Forward(-1), 2)

	test.ExpectEquality(t, h.Seek(-5), 0)
	test.ExpectEquality(t, h.Seek(1), 1)
	test.ExpectEquality(t, h.State(), "b")
	test.ExpectEquality(t, h.Seek(50), 2)
	test.ExpectEquality(t, h.Len(), 3)

	_, ok := h.StateAt(3)
	test.ExpectFailure(t, ok)
	s, ok := h.StateAt(0)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, "a")
}

func TestStatesIsCopy(t *testing.T) {
	h := rewind.NewHistory(0)
	h.Record(1)
	s := h.States()
	s[1] = 100
	test.ExpectEquality(t, h.State(), 1)
}

func TestTimeline(t *testing.T) {
	h := rewind.NewHistory(0)
	h.Record(1)
	h.Record(2)
	h.Rewind(1)

	tl := h.GetTimeline()
	test.ExpectEquality(t, tl, rewind.Timeline{Frame: 1, Len: 3, CanRewind: true, CanForward: true})
	test.ExpectEquality(t, tl.String(), "frame 1 of 2")
}

func TestRecordInterval(t *testing.T) {
	h := rewind.NewHistory(0)
	test.ExpectEquality(t, h.RecordEveryNFrames(), 1)
	h.SetRecordEveryNFrames(0)
	test.ExpectEquality(t, h.RecordEveryNFrames(), 1)
	h.SetRecordEveryNFrames(4)
	test.ExpectEquality(t, h.RecordEveryNFrames(), 4)
}

type grid struct {
	Cells [][]uint8 `json:"cells"`
	Gen   int       `json:"gen"`
}

func TestSaveAndLoad(t *testing.T) {
	h := rewind.NewHistory(grid{Cells: [][]uint8{{0, 0}, {0, 0}}})
	h.Record(grid{Cells: [][]uint8{{1, 0}, {0, 0}}, Gen: 1})
	h.Record(grid{Cells: [][]uint8{{1, 2}, {0, 0}}, Gen: 2})
	h.Rewind(1)
	h.Record(grid{Cells: [][]uint8{{1, 0}, {0, 3}}, Gen: 2})
	h.Rewind(1)
	h.SetRecordEveryNFrames(2)

	pth := filepath.Join(t.TempDir(), "nested", "history.json")
	test.DemandSuccess(t, h.Save(pth))

	l, err := rewind.Load[grid](pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, l.Frame(), h.Frame())
	test.ExpectEquality(t, l.Len(), h.Len())
	test.ExpectDeepEquality(t, l.State(), h.State())
	test.ExpectDeepEquality(t, l.States(), h.States())
	test.ExpectEquality(t, l.RecordEveryNFrames(), 2)
}

func TestLoadFailures(t *testing.T) {
	dir := t.TempDir()

	// missing file
	_, err := rewind.Load[int](filepath.Join(dir, "missing.json"))
	test.ExpectSuccess(t, curated.Is(err, rewind.FormatError))
	test.ExpectSuccess(t, errors.Is(err, fs.ErrNotExist))
	test.ExpectSuccess(t, strings.Contains(err.Error(), "missing.json"))

	cases := map[string]string{
		"malformed":  `{"states": [0, 1`,
		"wrongtype":  `{"states": ["a", "b"], "frame": 0}`,
		"nostates":   `{"states": [], "frame": 0}`,
		"nofield":    `{"frame": 0}`,
		"outofrange": `{"states": [0, 1], "frame": 2}`,
		"negative":   `{"states": [0, 1], "frame": -1}`,
	}

	for name, data := range cases {
		pth := filepath.Join(dir, name+".json")
		test.DemandSuccess(t, os.WriteFile(pth, []byte(data), 0644))
		_, err := rewind.Load[int](pth)
		test.ExpectSuccess(t, curated.Is(err, rewind.FormatError), name)
		test.ExpectSuccess(t, strings.Contains(err.Error(), pth), name)
	}
}

func TestZeroIntervalLoadsAsOne(t *testing.T) {
	r := strings.NewReader(`{"states": [5], "frame": 0, "record_every_n_frames": 0}`)
	h, err := rewind.Read[int](r)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, h.RecordEveryNFrames(), 1)
	test.ExpectEquality(t, h.State(), 5)
}

// build a history from a list of states and a cursor position. the cursor is
// wrapped into range
func buildHistory(states []int, cursor int) *rewind.History[int] {
	h := rewind.NewHistory(0)
	for _, s := range states {
		h.Record(s)
	}
	if cursor < 0 {
		cursor = -cursor
	}
	h.Seek(cursor % h.Len())
	return h
}

func TestProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("rewind then forward restores cursor, clamped symmetrically", prop.ForAll(
		func(states []int, cursor int, n int) bool {
			h := buildHistory(states, cursor)
			c := h.Frame()
			h.Rewind(n)
			f := h.Forward(n)
			if n <= c {
				return f == c
			}
			// rewind was clamped at frame zero so forward moves on from there
			return f == min(h.Len()-1, n)
		},
		gen.SliceOf(gen.Int()), gen.IntRange(0, 1000), gen.IntRange(0, 200),
	))

	properties.Property("forward then rewind restores cursor, clamped symmetrically", prop.ForAll(
		func(states []int, cursor int, n int) bool {
			h := buildHistory(states, cursor)
			c := h.Frame()
			h.Forward(n)
			r := h.Rewind(n)
			if c+n <= h.Len()-1 {
				return r == c
			}
			return r == max(0, h.Len()-1-n)
		},
		gen.SliceOf(gen.Int()), gen.IntRange(0, 1000), gen.IntRange(0, 200),
	))

	properties.Property("recording after rewind to k truncates to k+2", prop.ForAll(
		func(states []int, k int, v int) bool {
			h := buildHistory(states, 0)
			h.Forward(h.Len())
			before := h.States()

			k = k % h.Len()
			h.Seek(k)
			h.Record(v)

			if h.Len() != k+2 || h.Frame() != k+1 || h.State() != v {
				return false
			}

			after := h.States()
			for i := 0; i <= k; i++ {
				if after[i] != before[i] {
					return false
				}
			}
			_, ok := h.StateAt(k + 2)
			return !ok
		},
		gen.SliceOf(gen.Int()), gen.IntRange(0, 1000), gen.Int(),
	))

	properties.Property("persistence round trip", prop.ForAll(
		func(states []int, cursor int) bool {
			h := buildHistory(states, cursor)

			var b bytes.Buffer
			if err := h.Write(&b); err != nil {
				return false
			}
			l, err := rewind.Read[int](&b)
			if err != nil {
				return false
			}

			if l.Frame() != h.Frame() || l.Len() != h.Len() || l.State() != h.State() {
				return false
			}
			for i := 0; i < h.Len(); i++ {
				x, _ := h.StateAt(i)
				y, _ := l.StateAt(i)
				if x != y {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.Int()), gen.IntRange(0, 1000),
	))

	properties.TestingRun(t)
}
