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

// Package config reads the configuration of the program from the environment.
//
// All variables are prefixed with ROLLOUT_. Command line flags take
// precedence over the environment and are handled by the main package.
//
//	ROLLOUT_UPDATE_GOLDENS    accept new render hashes as the golden baseline
//	ROLLOUT_REGRESSION_VIDEO  also run the video regression checks
//	ROLLOUT_FFMPEG_BIN        ffmpeg binary used for video (default ffmpeg)
//	ROLLOUT_GOLDEN_DIR        location of golden files (default testdata/goldens)
//	ROLLOUT_REMOTE_ADDR       address of the remote server (default localhost:12700)
//	ROLLOUT_HASH              render hash algorithm, sha256 or xxhash (default sha256)
package config
