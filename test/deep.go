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

package test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// ExpectDeepEquality compares values that are not comparable with the ==
// operator, slices of states for example. The failure message is the diff
// between the two values.
func ExpectDeepEquality(t *testing.T, v any, expectedValue any, tags ...any) bool {
	t.Helper()
	if d := cmp.Diff(expectedValue, v); d != "" {
		t.Errorf("%sdeep equality test of type %T failed (-want +got):\n%s", id(tags...), v, d)
		return false
	}
	return true
}

// DemandDeepEquality is the fatal version of ExpectDeepEquality.
func DemandDeepEquality(t *testing.T, v any, expectedValue any, tags ...any) {
	t.Helper()
	if d := cmp.Diff(expectedValue, v); d != "" {
		t.Fatalf("%sdeep equality test of type %T failed (-want +got):\n%s", id(tags...), v, d)
	}
}
