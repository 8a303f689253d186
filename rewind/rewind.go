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

// History contains the recorded states of a simulation and a cursor
// indicating the present frame.
//
// Frame zero is always present. The only way of adding a state is with
// Record(), which discards any states recorded after the cursor before
// appending. States after the cursor are only ever present as a result of
// rewinding (or seeking) without recording.
type History[S any] struct {
	states []S
	cursor int

	// a step counter greater than one means that only every Nth step of a
	// runner is recorded. the History type itself does not count steps
	recordEveryN int
}

// NewHistory is the preferred method of initialisation for the History type.
func NewHistory[S any](initial S) *History[S] {
	return &History[S]{
		states:       []S{initial},
		recordEveryN: 1,
	}
}

// Frame returns the present frame.
func (h *History[S]) Frame() int {
	return h.cursor
}

// State returns the state at the present frame.
func (h *History[S]) State() S {
	return h.states[h.cursor]
}

// StateAt returns the state at the specified frame. The boolean return value
// is false if the frame has not been recorded.
func (h *History[S]) StateAt(frame int) (S, bool) {
	if frame < 0 || frame >= len(h.states) {
		var s S
		return s, false
	}
	return h.states[frame], true
}

// Len returns the number of recorded states. This is never less than one.
func (h *History[S]) Len() int {
	return len(h.states)
}

// States returns a copy of all recorded states, including any states after
// the present frame.
func (h *History[S]) States() []S {
	c := make([]S, len(h.states))
	copy(c, h.states)
	return c
}

// CanRewind returns true if the present frame is not frame zero.
func (h *History[S]) CanRewind() bool {
	return h.cursor > 0
}

// CanForward returns true if there are recorded states after the present
// frame.
func (h *History[S]) CanForward() bool {
	return h.cursor+1 < len(h.states)
}

// last returns the index of the most recently recorded state
func (h *History[S]) last() int {
	return len(h.states) - 1
}

// Record a new state. Any states after the present frame are discarded
// before the new state is appended. The new state becomes the present frame,
// which is returned.
func (h *History[S]) Record(s S) int {
	if h.cursor < h.last() {
		// clear references to the discarded branch so that the states can be
		// garbage collected
		var zero S
		for i := h.cursor + 1; i < len(h.states); i++ {
			h.states[i] = zero
		}
		h.states = h.states[:h.cursor+1]
	}
	h.states = append(h.states, s)
	h.cursor = h.last()
	return h.cursor
}

// Rewind moves the present frame back by the number of frames. Rewinding past
// frame zero stops at frame zero. Returns the new present frame.
func (h *History[S]) Rewind(frames int) int {
	if frames < 0 {
		frames = 0
	}
	h.cursor -= frames
	if h.cursor < 0 {
		h.cursor = 0
	}
	return h.cursor
}

// Forward moves the present frame forward by the number of frames. Moving
// past the last recorded frame stops at the last recorded frame. No states are
// created. Returns the new present frame.
func (h *History[S]) Forward(frames int) int {
	if frames < 0 {
		frames = 0
	}
	if frames > h.last()-h.cursor {
		h.cursor = h.last()
	} else {
		h.cursor += frames
	}
	return h.cursor
}

// Seek moves the present frame to the specified frame, clamped to the range
// of recorded frames. Returns the new present frame.
func (h *History[S]) Seek(frame int) int {
	switch {
	case frame < 0:
		h.cursor = 0
	case frame > h.last():
		h.cursor = h.last()
	default:
		h.cursor = frame
	}
	return h.cursor
}

// RecordEveryNFrames returns the recording interval used by a runner. The
// value is never less than one.
func (h *History[S]) RecordEveryNFrames() int {
	if h.recordEveryN < 1 {
		return 1
	}
	return h.recordEveryN
}

// SetRecordEveryNFrames sets the recording interval. Values less than one are
// treated as one.
func (h *History[S]) SetRecordEveryNFrames(n int) {
	if n < 1 {
		n = 1
	}
	h.recordEveryN = n
}
