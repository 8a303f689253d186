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

import "fmt"

// Timeline provides a summary of the current state of the history.
//
// Useful for user interfaces and remote controllers, to present the range of
// frame numbers that are available to be scrubbed through.
type Timeline struct {
	Frame      int  `json:"frame"`
	Len        int  `json:"historyLen"`
	CanRewind  bool `json:"canRewind"`
	CanForward bool `json:"canForward"`
}

func (tl Timeline) String() string {
	return fmt.Sprintf("frame %d of %d", tl.Frame, tl.Len-1)
}

// GetTimeline returns a summary of the history.
func (h *History[S]) GetTimeline() Timeline {
	return Timeline{
		Frame:      h.cursor,
		Len:        len(h.states),
		CanRewind:  h.CanRewind(),
		CanForward: h.CanForward(),
	}
}
