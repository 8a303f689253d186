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


package console

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/jetsetilly/rollout/actions"
	"github.com/jetsetilly/rollout/agent"
	"github.com/jetsetilly/rollout/curated"
)

// Sentinal error returned by Play() when the keys can no longer be read.
const PlayError = "console: play: %v"

// Bindings maps a key to an action identifier.
type Bindings map[byte]string

// NewBindings binds each action to the first letter of its identifier that
// is not already in use. Actions for which no letter can be found are left
// unbound.
func NewBindings(manifest []actions.Action) Bindings {
	bind := make(Bindings)
	for _, a := range manifest {
		for _, c := range []byte(strings.ToLower(a.ID)) {
			if c < 'a' || c > 'z' || reserved(c) {
				continue
			}
			if _, ok := bind[c]; !ok {
				bind[c] = a.ID
				break
			}
		}
	}
	return bind
}

// Help writes a description of the key bindings.
func (bind Bindings) Help(w io.Writer) {
	keys := make([]byte, 0, len(bind))
	for k := range bind {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "  %c  %s\n", k, bind[k])
	}
	fmt.Fprintf(w, "  %c  rewind (or cursor left)\n", KeyRewind)
	fmt.Fprintf(w, "  %c  forward (or cursor right)\n", KeyForward)
	fmt.Fprintf(w, "  %c  first frame\n", KeyStart)
	fmt.Fprintf(w, "  %c  last frame\n", KeyEnd)
	fmt.Fprintf(w, "  %c  reset\n", KeyReset)
	fmt.Fprintf(w, "  %c  quit\n", KeyQuit)
}

// Play reads keys until KeyQuit, KeyInterrupt or the end of input and applies
// the corresponding request to the host. The view function is used to print
// the state after every request.
func Play[S any, I any](keys KeyReader, out io.Writer, host *agent.Host[S, I], reg *actions.Registry[I], bind Bindings, view func(S) string) error {
	show := func(resp agent.Response[S]) {
		fmt.Fprintf(out, "%s\n%s\n", host.Timeline(), view(resp.State))
	}

	show(host.Handle(agent.GetState[I]()))

	for {
		k, err := keys.ReadKey()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return curated.Errorf(PlayError, err)
		}

		if k == KeyEsc {
			k, err = cursor(keys)
			if err != nil {
				if errors.Is(err, io.EOF) {
					return nil
				}
				return curated.Errorf(PlayError, err)
			}
		}

		var resp agent.Response[S]

		switch k {
		case KeyQuit, KeyInterrupt:
			return nil
		case KeyHelp:
			bind.Help(out)
			continue
		case KeyRewind:
			resp = host.Handle(agent.Rewind[I](1))
		case KeyForward:
			resp = host.Handle(agent.Forward[I](1))
		case KeyStart:
			resp = host.Handle(agent.Seek[I](0))
		case KeyEnd:
			resp = host.Handle(agent.Seek[I](host.Timeline().Len - 1))
		case KeyReset:
			resp = host.Handle(agent.Reset[I]())
		default:
			id, ok := bind[k]
			if !ok {
				continue
			}
			resp, err = actions.StepByID(host, reg, id)
			if err != nil {
				fmt.Fprintln(out, err)
				continue
			}
		}

		show(resp)
	}
}

// translates the remainder of a cursor key sequence into the equivalent
// fixed key. other escape sequences translate to zero, which is never bound
func cursor(keys KeyReader) (byte, error) {
	k, err := keys.ReadKey()
	if err != nil || k != EscCursor {
		return 0, err
	}
	k, err = keys.ReadKey()
	if err != nil {
		return 0, err
	}
	switch k {
	case CursorBackward:
		return KeyRewind, nil
	case CursorForward:
		return KeyForward, nil
	case CursorUp:
		return KeyEnd, nil
	case CursorDown:
		return KeyStart, nil
	}
	return 0, nil
}
