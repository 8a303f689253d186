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

// Package rewind contains the History type, a record of simulation states
// that can be moved through in time.
//
// The present frame (the cursor) can be moved backwards with Rewind(), forwards
// with Forward() or to a specific frame with Seek(). None of these functions
// can fail. Requests that go beyond the range of recorded frames are clamped
// to the first or last recorded frame.
//
// New states are added with Record(). If the present frame is not the most
// recently recorded frame then the states after the present frame are
// discarded before the new state is appended. In other words, once a new state
// has been recorded from a point in the past, the previously recorded future
// is lost. This is the branch-discard rule and it can not be avoided because
// the History type offers no other way of modifying the recorded states.
//
// A History can be saved to and loaded from a file with Save() and Load(). The
// format is JSON:
//
//	{
//	  "states": [ ... ],
//	  "frame": 2,
//	  "record_every_n_frames": 1
//	}
//
// Load() will fail with an error matching the FormatError pattern if the file
// is missing, unreadable, malformed or does not describe a valid history.
package rewind
