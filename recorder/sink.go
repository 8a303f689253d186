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

package recorder

import (
	"fmt"

	"github.com/jetsetilly/rollout/curated"
	"github.com/jetsetilly/rollout/digest"
)

// Sentinal error returned by all sink implementations.
const SinkError = "sink: %v"

// Config is the configuration of a video sink.
type Config struct {
	Width  int
	Height int
	FPS    int
}

// FrameLen returns the number of bytes in a single RGBA image.
func (cfg Config) FrameLen() int {
	return cfg.Width * cfg.Height * 4
}

// Validate returns an error if any field in the configuration is not usable.
func (cfg Config) Validate() error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return curated.Errorf(SinkError, fmt.Sprintf("invalid dimensions (%dx%d)", cfg.Width, cfg.Height))
	}
	if cfg.FPS <= 0 {
		return curated.Errorf(SinkError, fmt.Sprintf("invalid frame rate (%d)", cfg.FPS))
	}
	return nil
}

func (cfg Config) String() string {
	return fmt.Sprintf("%dx%d@%d", cfg.Width, cfg.Height, cfg.FPS)
}

// Sink implementations accept a sequence of RGBA images.
type Sink interface {
	Start(cfg Config) error
	PushFrame(rgba []byte) error
	Finish() error
}

// checkFrame returns an error if the image is not the size required by the
// configuration
func checkFrame(cfg Config, rgba []byte) error {
	if len(rgba) != cfg.FrameLen() {
		return curated.Errorf(SinkError, fmt.Sprintf("frame is %d bytes, expected %d for %s", len(rgba), cfg.FrameLen(), cfg))
	}
	return nil
}

// Memory is a Sink that keeps a hash of every image pushed to it.
type Memory struct {
	Hasher digest.Hasher

	cfg      Config
	started  bool
	finished bool
	hashes   []string
}

// Start implements the Sink interface.
func (mem *Memory) Start(cfg Config) error {
	if mem.started {
		return curated.Errorf(SinkError, "already started")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if mem.Hasher == nil {
		mem.Hasher = digest.SHA256
	}
	mem.cfg = cfg
	mem.started = true
	return nil
}

// PushFrame implements the Sink interface.
func (mem *Memory) PushFrame(rgba []byte) error {
	if !mem.started || mem.finished {
		return curated.Errorf(SinkError, "not running")
	}
	if err := checkFrame(mem.cfg, rgba); err != nil {
		return err
	}
	mem.hashes = append(mem.hashes, mem.Hasher.Sum(rgba))
	return nil
}

// Finish implements the Sink interface.
func (mem *Memory) Finish() error {
	if !mem.started || mem.finished {
		return curated.Errorf(SinkError, "not running")
	}
	mem.finished = true
	return nil
}

// Hashes returns the hash of every image pushed to the sink.
func (mem *Memory) Hashes() []string {
	return mem.hashes
}
