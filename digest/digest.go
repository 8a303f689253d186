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

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Hasher implementations create a hash string for a buffer of pixels.
type Hasher interface {
	// short name of the algorithm. used in golden files and configuration
	Name() string

	// hexadecimal hash of the data
	Sum(data []byte) string
}

type sha256Hasher struct{}

func (_ sha256Hasher) Name() string {
	return "sha256"
}

func (_ sha256Hasher) Sum(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}

type xxhashHasher struct{}

func (_ xxhashHasher) Name() string {
	return "xxhash"
}

func (_ xxhashHasher) Sum(data []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}

// List of available hashers.
var (
	SHA256 Hasher = sha256Hasher{}
	XXHash Hasher = xxhashHasher{}
)

// Hashers returns the name of every available hasher.
func Hashers() []string {
	return []string{SHA256.Name(), XXHash.Name()}
}

// ByName returns the Hasher with the specified name. The empty string returns
// the default hasher.
func ByName(name string) (Hasher, error) {
	switch strings.ToLower(name) {
	case "", SHA256.Name():
		return SHA256, nil
	case XXHash.Name():
		return XXHash, nil
	}
	return nil, fmt.Errorf("digest: unknown hash algorithm (%s)", name)
}
