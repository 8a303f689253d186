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

// list of ASCII codes for non-alphanumeric characters
const (
	KeyInterrupt = 3 // end-of-text character
	KeyEsc       = 27
)

// the character that follows KeyEsc in a cursor key sequence
const EscCursor = '['

// list of ASCII codes that can follow EscCursor
const (
	CursorUp       = 'A'
	CursorDown     = 'B'
	CursorForward  = 'C'
	CursorBackward = 'D'
)

// list of keys with a fixed meaning during Play()
const (
	KeyRewind  = ','
	KeyForward = '.'
	KeyStart   = '<'
	KeyEnd     = '>'
	KeyReset   = '*'
	KeyQuit    = 'q'
	KeyHelp    = '?'
)

func reserved(k byte) bool {
	switch k {
	case KeyRewind, KeyForward, KeyStart, KeyEnd, KeyReset, KeyQuit, KeyHelp:
		return true
	}
	return false
}
