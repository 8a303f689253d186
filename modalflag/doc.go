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


// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Unlike flag.FlagSet, the arguments are given once with NewArgs() and then
// Parse() is called with no arguments, once for every level of mode:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "REPLAY", "REGRESS")
//	echo := md.AddBool("log", false, "echo log to stderr")
//	if r, err := md.Parse(); r != modalflag.ParseContinue {
//		return err
//	}
//
// The first argument after the flags is compared with the sub-modes. If it
// matches then it becomes the Mode(), otherwise the first sub-mode is used.
// Comparisons are case insensitive and Mode() is always upper case.
//
//	switch md.Mode() {
//	case "REGRESS":
//		md.NewMode()
//		md.AddSubModes("RUN", "LIST", "ADD", "DELETE")
//		verbose := md.AddBool("verbose", false, "print every scenario")
//		...
//	}
//
// Path() returns every mode found so far, for example "REGRESS/LIST", and is
// used to label help messages.
//
// Arguments that are neither flags nor a sub-mode are returned by
// RemainingArgs() and GetArg(). IsSet() tells whether a flag was given on the
// command line, which is useful when a flag overrides a value from the
// environment.
package modalflag
