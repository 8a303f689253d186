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

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/jetsetilly/rollout/digest"
)

// Env is the configuration read from environment variables.
type Env struct {
	UpdateGoldens   bool   `env:"ROLLOUT_UPDATE_GOLDENS"`
	RegressionVideo bool   `env:"ROLLOUT_REGRESSION_VIDEO"`
	FFmpegBin       string `env:"ROLLOUT_FFMPEG_BIN" envDefault:"ffmpeg"`
	GoldenDir       string `env:"ROLLOUT_GOLDEN_DIR" envDefault:"testdata/goldens"`
	RemoteAddr      string `env:"ROLLOUT_REMOTE_ADDR" envDefault:"localhost:12700"`
	Hash            string `env:"ROLLOUT_HASH" envDefault:"sha256"`
}

// Load the configuration from the process environment.
func Load() (Env, error) {
	return parse(env.Options{})
}

// LoadFrom loads the configuration from the supplied variables rather than the
// process environment.
func LoadFrom(environ map[string]string) (Env, error) {
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (Env, error) {
	var cfg Env
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Env{}, fmt.Errorf("config: %w", err)
	}
	if _, err := digest.ByName(cfg.Hash); err != nil {
		return Env{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Hasher returns the hasher named by the configuration.
func (cfg Env) Hasher() digest.Hasher {
	h, err := digest.ByName(cfg.Hash)
	if err != nil {
		return digest.SHA256
	}
	return h
}
