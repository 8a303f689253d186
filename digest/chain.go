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

package digest

// Chain creates a single digest for a sequence of images.
type Chain struct {
	hasher Hasher
	digest string
	count  int

	// buffer with enough room for the previous digest and the pixels of the
	// new image. reused between calls to Push()
	buffer []byte
}

// NewChain is the preferred method of initialisation for the Chain type.
func NewChain(hasher Hasher) *Chain {
	return &Chain{hasher: hasher}
}

// Push the pixels of the next image in the sequence. Returns the updated
// digest.
func (ch *Chain) Push(pixels []byte) string {
	// chain digests by copying the previous digest to the head of the buffer
	ch.buffer = append(ch.buffer[:0], ch.digest...)
	ch.buffer = append(ch.buffer, pixels...)
	ch.digest = ch.hasher.Sum(ch.buffer)
	ch.count++
	return ch.digest
}

// Hash returns the current digest. Returns the empty string if no images have
// been pushed.
func (ch *Chain) Hash() string {
	return ch.digest
}

// Len returns the number of images pushed.
func (ch *Chain) Len() int {
	return ch.count
}

// Reset the chain to its initial state.
func (ch *Chain) Reset() {
	ch.digest = ""
	ch.count = 0
}
