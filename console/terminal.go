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
	"github.com/jetsetilly/rollout/curated"
	"github.com/pkg/term"
)

// Sentinal error returned when the terminal device can not be used.
const TerminalError = "console: terminal: %v"

// KeyReader implementations return one key code at a time.
type KeyReader interface {
	ReadKey() (byte, error)
}

// Terminal is a KeyReader for a posix terminal device.
type Terminal struct {
	t *term.Term
}

// OpenTerminal opens the terminal device (usually /dev/tty) and puts it into
// cbreak mode. The terminal must be closed with Close() in order to restore
// the original mode.
func OpenTerminal(device string) (*Terminal, error) {
	t, err := term.Open(device, term.CBreakMode)
	if err != nil {
		return nil, curated.Errorf(TerminalError, err)
	}
	return &Terminal{t: t}, nil
}

// ReadKey implements the KeyReader interface. It blocks until a key has been
// pressed.
func (tm *Terminal) ReadKey() (byte, error) {
	var b [1]byte
	for {
		n, err := tm.t.Read(b[:])
		if err != nil {
			return 0, err
		}
		if n == 1 {
			return b[0], nil
		}
	}
}

// Close restores the terminal to the mode it was in when it was opened.
func (tm *Terminal) Close() error {
	if err := tm.t.Restore(); err != nil {
		_ = tm.t.Close()
		return curated.Errorf(TerminalError, err)
	}
	if err := tm.t.Close(); err != nil {
		return curated.Errorf(TerminalError, err)
	}
	return nil
}
