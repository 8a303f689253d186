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

package recorder

import (
	"strings"
	"testing"

	"github.com/jetsetilly/rollout/test"
)

func TestParseFrameMD5(t *testing.T) {
	const output = `#format: frame checksums
#version: 2
#hash: MD5
#tb 0: 1/30
#media_type 0: video
#stream#, dts,        pts, duration,     size, hash
0,          0,          0,        1,     6144, 3b8b5a6b64d2a8c8e2e59e3a0ec4b5a1
0,          1,          1,        1,     6144, 5d41402abc4b2a76b9719d911017c592
`
	test.ExpectDeepEquality(t, parseFrameMD5(strings.NewReader(output)), []string{
		"3b8b5a6b64d2a8c8e2e59e3a0ec4b5a1",
		"5d41402abc4b2a76b9719d911017c592",
	})
}
