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

// Package regression checks that a simulation can be recorded, saved and
// replayed without any change to what is rendered.
//
// RecordReplayHashes() is the basic check. A simulation is driven by a
// function, the history is saved to disk and loaded into a new runner. Every
// recorded frame is rendered and hashed before and after the save. The two
// sequences of hashes must be identical:
//
//	art, err := regression.RecordReplayHashes("glider", outDir, logic, drive,
//		width, height, render, digest.SHA256)
//
// The hashes can then be checked against a golden file with
// AssertOrUpdateGolden(). Golden files are plain text, with one hash per line,
// so that an accepted change can be reviewed as a diff. Setting the update
// argument (ROLLOUT_UPDATE_GOLDENS=1 in tests) overwrites the golden file with
// the new hashes.
//
// RecordStateAndVideoThenReplay() is a variation that also sends every frame
// of the original run and of the replay to a recorder.Sink. CompareVideos()
// checks two encoded videos frame by frame with ffmpeg.
//
// Scenarios are YAML scripts of actions and history movements. They drive a
// runner through an actions.Registry so that a scenario with an unknown
// action is rejected before anything is run.
//
// Scenarios can be added to the regression database with RegressAdd(). The
// database stores a digest of the render hashes of every scenario. Running
// the regression database with RegressRun() runs every scenario again and
// compares the digests. Failed entries are remembered and can be selected
// again with the key FAILS.
package regression
