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

package rewind

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jetsetilly/rollout/curated"
	"github.com/jetsetilly/rollout/logger"
)

// Sentinal patterns for persistence errors. The first placeholder is the path
// of the file (or a description of the reader) and the second is the cause.
const (
	// the history could not be written
	PersistenceError = "rewind: %s: %v"

	// the history could not be loaded. this includes missing or unreadable
	// files, malformed data and data that does not describe a valid history
	FormatError = "rewind: invalid history (%s): %v"
)

// the on-disk representation of a History
type fileFormat[S any] struct {
	States             []S `json:"states"`
	Frame              int `json:"frame"`
	RecordEveryNFrames int `json:"record_every_n_frames,omitempty"`
}

// Write the history to io.Writer as JSON.
func (h *History[S]) Write(w io.Writer) error {
	f := fileFormat[S]{
		States:             h.states,
		Frame:              h.cursor,
		RecordEveryNFrames: h.RecordEveryNFrames(),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(f); err != nil {
		return curated.Errorf(PersistenceError, "writer", err)
	}

	return nil
}

// Save the history to the named file. Any missing parent directories are
// created. An existing file is overwritten.
func (h *History[S]) Save(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return curated.Errorf(PersistenceError, path, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return curated.Errorf(PersistenceError, path, err)
	}

	w := bufio.NewWriter(f)
	err = h.Write(w)
	if err == nil {
		err = w.Flush()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return curated.Errorf(PersistenceError, path, err)
	}

	logger.Logf(logger.Allow, "rewind", "saved %d states (frame %d) to %s", len(h.states), h.cursor, path)

	return nil
}

// Read a history from an io.Reader. The data must have been created by the
// Write() or Save() functions of a History with the same state type.
func Read[S any](r io.Reader) (*History[S], error) {
	return read[S](r, "reader")
}

// Load a history from the named file.
func Load[S any](path string) (*History[S], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, curated.Errorf(FormatError, path, err)
	}
	defer f.Close()

	h, err := read[S](bufio.NewReader(f), path)
	if err != nil {
		return nil, err
	}

	logger.Logf(logger.Allow, "rewind", "loaded %d states (frame %d) from %s", len(h.states), h.cursor, path)

	return h, nil
}

func read[S any](r io.Reader, name string) (*History[S], error) {
	var f fileFormat[S]

	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, curated.Errorf(FormatError, name, err)
	}

	if len(f.States) == 0 {
		return nil, curated.Errorf(FormatError, name, "recording has no states")
	}

	if f.Frame < 0 || f.Frame >= len(f.States) {
		return nil, curated.Errorf(FormatError, name,
			fmt.Sprintf("frame %d out of bounds (len %d)", f.Frame, len(f.States)))
	}

	h := &History[S]{
		states: f.States,
		cursor: f.Frame,
	}
	h.SetRecordEveryNFrames(f.RecordEveryNFrames)

	return h, nil
}
