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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The pattern is what identifies the kind of error. Packages that produce
// errors the caller is expected to act upon declare the pattern as an exported
// constant. For example, the rewind package declares:
//
//	const FormatError = "rewind: invalid history (%s): %v"
//
// and callers test for that kind of error with Is() or Has():
//
//	h, err := rewind.Load[int](path)
//	if curated.Is(err, rewind.FormatError) {
//		// the recording can not be resumed from
//	}
//
// Is() only checks the outermost error. Has() checks whether the pattern occurs
// anywhere in the chain of curated errors:
//
//	e := curated.Errorf(rewind.FormatError, path, err)
//	f := curated.Errorf("regression: %v", e)
//
//	curated.Is(f, rewind.FormatError)  // false
//	curated.Has(f, rewind.FormatError) // true
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). We can think of the difference as being between 'expected'
// and 'unexpected' errors.
//
// The Error() function implementation for curated errors normalises the error
// chain. Specifically, the chain does not contain duplicate adjacent parts.
// For the purposes of this package we think of chains as being composed of
// parts separated by the sub-string ': ' as suggested on p239 of "The Go
// Programming Language" (Donovan, Kernighan). For example:
//
//	part 1: part 2: part 3
//
// Curated errors also implement Unwrap(). The first placeholder value that is
// itself an error is returned, which means that errors.Is() from the standard
// library works through a curated error. For example, a missing history file
// can still be identified with:
//
//	errors.Is(err, fs.ErrNotExist)
package curated
