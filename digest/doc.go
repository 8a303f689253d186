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

// Package digest is used to create content hashes of rendered images.
//
// A Hasher produces a hexadecimal string for a buffer of pixels. Two hashers
// are provided: SHA256, which is the default and is used for golden files,
// and XXHash, which is much faster and is suitable for comparing a recording
// with its replay in the same session.
//
// The Chain type creates a single digest for a sequence of images. Each new
// image is hashed together with the digest of the previous image, meaning
// that the final value depends on every image in the sequence and on their
// order.
package digest
