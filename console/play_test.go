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


package console_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/jetsetilly/rollout/actions"
	"github.com/jetsetilly/rollout/agent"
	"github.com/jetsetilly/rollout/console"
	"github.com/jetsetilly/rollout/curated"
	"github.com/jetsetilly/rollout/logic"
	"github.com/jetsetilly/rollout/test"
)

type keys struct {
	*strings.Reader
}

func (k keys) ReadKey() (byte, error) {
	return k.ReadByte()
}

type brokenKeys struct{}

func (brokenKeys) ReadKey() (byte, error) {
	return 0, errors.New("device gone")
}

var accumulator = logic.Func[int, int]{
	Initial:    func() int { return 0 },
	Transition: func(s int, i int) int { return s + i },
}

func setup(t *testing.T) (*agent.Host[int, int], *actions.Registry[int], console.Bindings) {
	t.Helper()
	reg := actions.NewRegistry[int]()
	test.DemandSuccess(t, reg.Register("one", "add one", 1))
	test.DemandSuccess(t, reg.Register("ten", "add ten", 10))
	test.DemandSuccess(t, reg.Register("quarter", "add twenty five", 25))
	return agent.NewHost[int, int](accumulator), reg, console.NewBindings(reg.Manifest())
}

func view(s int) string {
	return fmt.Sprintf("total %d", s)
}

func TestBindings(t *testing.T) {
	_, _, bind := setup(t)
	test.ExpectEquality(t, len(bind), 3)
	test.ExpectEquality(t, bind['o'], "one")
	test.ExpectEquality(t, bind['t'], "ten")

	// q is reserved for quit so the next letter is used
	test.ExpectEquality(t, bind['u'], "quarter")

	var w strings.Builder
	bind.Help(&w)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "  o  one\n  t  ten\n  u  quarter\n"))
}

func TestPlay(t *testing.T) {
	host, reg, bind := setup(t)

	var out strings.Builder
	err := console.Play(keys{strings.NewReader("oot,x.")}, &out, host, reg, bind, view)
	test.ExpectSuccess(t, err)

	test.ExpectEquality(t, host.Runner().Frame(), 3)
	test.ExpectEquality(t, host.Runner().State(), 12)
	test.ExpectSuccess(t, strings.HasPrefix(out.String(), "frame 0 of 0\ntotal 0\n"))
	test.ExpectSuccess(t, strings.HasSuffix(out.String(), "frame 3 of 3\ntotal 12\n"))
}

func TestPlayCursorKeys(t *testing.T) {
	host, reg, bind := setup(t)

	seq := "ooo" +
		string([]byte{console.KeyEsc, console.EscCursor, console.CursorBackward}) +
		string([]byte{console.KeyEsc, console.EscCursor, console.CursorBackward}) +
		string([]byte{console.KeyEsc, console.EscCursor, console.CursorForward})

	var out strings.Builder
	test.ExpectSuccess(t, console.Play(keys{strings.NewReader(seq)}, &out, host, reg, bind, view))
	test.ExpectEquality(t, host.Runner().Frame(), 2)
	test.ExpectEquality(t, host.Runner().State(), 2)

	seq = string([]byte{console.KeyEsc, console.EscCursor, console.CursorDown})
	test.ExpectSuccess(t, console.Play(keys{strings.NewReader(seq)}, &out, host, reg, bind, view))
	test.ExpectEquality(t, host.Runner().Frame(), 0)

	seq = string([]byte{console.KeyEsc, console.EscCursor, console.CursorUp})
	test.ExpectSuccess(t, console.Play(keys{strings.NewReader(seq)}, &out, host, reg, bind, view))
	test.ExpectEquality(t, host.Runner().Frame(), 3)
}

func TestPlayQuitAndReset(t *testing.T) {
	host, reg, bind := setup(t)

	var out strings.Builder
	test.ExpectSuccess(t, console.Play(keys{strings.NewReader("tt*oqoooo")}, &out, host, reg, bind, view))
	test.ExpectEquality(t, host.Runner().Frame(), 1)
	test.ExpectEquality(t, host.Runner().State(), 1)
	test.ExpectEquality(t, host.Timeline().Len, 2)
}

func TestPlayBrokenKeys(t *testing.T) {
	host, reg, bind := setup(t)

	var out strings.Builder
	err := console.Play(brokenKeys{}, &out, host, reg, bind, view)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, console.PlayError))
	test.ExpectEquality(t, err.Error(), "console: play: device gone")
}
