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

package config_test

import (
	"testing"

	"github.com/jetsetilly/rollout/config"
	"github.com/jetsetilly/rollout/test"
)

func TestDefaults(t *testing.T) {
	cfg, err := config.LoadFrom(map[string]string{})
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, cfg.UpdateGoldens)
	test.ExpectFailure(t, cfg.RegressionVideo)
	test.ExpectEquality(t, cfg.FFmpegBin, "ffmpeg")
	test.ExpectEquality(t, cfg.GoldenDir, "testdata/goldens")
	test.ExpectEquality(t, cfg.RemoteAddr, "localhost:12700")
	test.ExpectEquality(t, cfg.Hasher().Name(), "sha256")
}

func TestEnvironment(t *testing.T) {
	cfg, err := config.LoadFrom(map[string]string{
		"ROLLOUT_UPDATE_GOLDENS":   "1",
		"ROLLOUT_REGRESSION_VIDEO": "true",
		"ROLLOUT_FFMPEG_BIN":       "/opt/ffmpeg/bin/ffmpeg",
		"ROLLOUT_HASH":             "xxhash",
	})
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, cfg.UpdateGoldens)
	test.ExpectSuccess(t, cfg.RegressionVideo)
	test.ExpectEquality(t, cfg.FFmpegBin, "/opt/ffmpeg/bin/ffmpeg")
	test.ExpectEquality(t, cfg.Hasher().Name(), "xxhash")
}

func TestInvalid(t *testing.T) {
	_, err := config.LoadFrom(map[string]string{"ROLLOUT_UPDATE_GOLDENS": "perhaps"})
	test.ExpectFailure(t, err)

	_, err = config.LoadFrom(map[string]string{"ROLLOUT_HASH": "md5"})
	test.ExpectFailure(t, err)
}
