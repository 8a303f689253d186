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


package remote

import (
	"context"
	"fmt"
	"strings"

	"github.com/jetsetilly/rollout/agent"
	"github.com/jetsetilly/rollout/curated"
	"github.com/jetsetilly/rollout/rewind"
)

// Sentinal error returned by ParseCommandKind().
const UnknownCommand = "remote: unknown command: %q"

// CommandKind identifies what a Command asks of the simulation.
type CommandKind int

// List of valid CommandKind values.
const (
	CmdStep CommandKind = iota
	CmdRewind
	CmdForward
	CmdSeek
	CmdReset
	CmdGetState
	CmdGetTimeline
	CmdGetHistory
)

var commandNames = [...]string{
	CmdStep:        "step",
	CmdRewind:      "rewind",
	CmdForward:     "forward",
	CmdSeek:        "seek",
	CmdReset:       "reset",
	CmdGetState:    "state",
	CmdGetTimeline: "timeline",
	CmdGetHistory:  "history",
}

func (k CommandKind) String() string {
	if k >= 0 && int(k) < len(commandNames) {
		return commandNames[k]
	}
	return fmt.Sprintf("unknown command (%d)", int(k))
}

// ParseCommandKind is the inverse of CommandKind.String(). Case insensitive.
func ParseCommandKind(s string) (CommandKind, error) {
	for k, n := range commandNames {
		if strings.EqualFold(s, n) {
			return CommandKind(k), nil
		}
	}
	return 0, curated.Errorf(UnknownCommand, s)
}

// Reply is the result of applying a Command.
type Reply[S any] struct {
	Err      error
	Response agent.Response[S]
	Timeline rewind.Timeline
}

// Command is a request for the simulation together with the channel on which
// the reply will be sent. Commands should be created with NewCommand().
type Command[S any] struct {
	Kind CommandKind

	// action identifier. used by CmdStep only
	Action string

	// number of frames for CmdRewind and CmdForward. the target frame for
	// CmdSeek
	Frames int

	reply chan Reply[S]
}

// NewCommand is the preferred method of initialisation for the Command type.
func NewCommand[S any](kind CommandKind, action string, frames int) Command[S] {
	return Command[S]{
		Kind:   kind,
		Action: action,
		Frames: frames,
		reply:  make(chan Reply[S], 1),
	}
}

func (cmd Command[S]) String() string {
	switch cmd.Kind {
	case CmdStep:
		return fmt.Sprintf("%s %s", cmd.Kind, cmd.Action)
	case CmdRewind, CmdForward, CmdSeek:
		return fmt.Sprintf("%s %d", cmd.Kind, cmd.Frames)
	}
	return cmd.Kind.String()
}

// Reply returns the channel on which the reply will be sent. Only one reply
// is ever sent.
func (cmd Command[S]) Reply() <-chan Reply[S] {
	return cmd.reply
}

// Wait blocks until the reply has arrived or the context is done.
func (cmd Command[S]) Wait(ctx context.Context) (Reply[S], error) {
	select {
	case r := <-cmd.reply:
		return r, nil
	case <-ctx.Done():
		return Reply[S]{}, ctx.Err()
	}
}

// the reply channel has capacity for exactly one reply so this never blocks
// the draining goroutine
func (cmd Command[S]) respond(r Reply[S]) {
	select {
	case cmd.reply <- r:
	default:
	}
}
