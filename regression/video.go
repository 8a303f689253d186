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

package regression

import (
	"fmt"
	"path/filepath"

	"github.com/jetsetilly/rollout/curated"
	"github.com/jetsetilly/rollout/digest"
	"github.com/jetsetilly/rollout/logger"
	"github.com/jetsetilly/rollout/logic"
	"github.com/jetsetilly/rollout/recorder"
	"github.com/jetsetilly/rollout/rewind"
	"github.com/jetsetilly/rollout/runner"
)

// VideoMismatch is the sentinal error pattern for two videos that do not
// decode to the same frames. The placeholders are the two video files and
// the reason.
const VideoMismatch = "regression: video mismatch (%s, %s): %v"

// VideoConfig is the configuration of a video regression run.
type VideoConfig struct {
	recorder.Config

	// number of times each frame is pushed to the sink. values less than one
	// are treated as one
	HoldFrames int
}

func (cfg VideoConfig) hold() int {
	if cfg.HoldFrames < 1 {
		return 1
	}
	return cfg.HoldFrames
}

// SinkFactory creates a sink for a leg of a video regression run. The leg is
// either "original" or "replay".
type SinkFactory func(name string, leg string) (recorder.Sink, error)

// FFmpegSinks returns a SinkFactory that encodes each leg to an mp4 file in
// outDir.
func FFmpegSinks(binary string, outDir string) SinkFactory {
	return func(name string, leg string) (recorder.Sink, error) {
		return recorder.NewFFmpeg(binary, VideoPath(outDir, name, leg)), nil
	}
}

// VideoPath returns the path of the video file created by FFmpegSinks().
func VideoPath(outDir string, name string, leg string) string {
	return filepath.Join(outDir, fmt.Sprintf("%s_%s.mp4", SanitizeFilename(name), leg))
}

// RecordStateAndVideoThenReplay steps the simulation with each input in turn,
// pushing every rendered frame to the "original" sink as it happens. The
// history is then saved, loaded into a new runner and every recorded frame is
// rendered to the "replay" sink.
//
// The artifacts contain the hashes of the frames sent to each sink. A
// ReplayDivergence error is returned if they differ.
func RecordStateAndVideoThenReplay[S any, I any](name string, outDir string, l logic.Logic[S, I],
	inputs []I, cfg VideoConfig, render RenderFunc[S], hasher digest.Hasher,
	sinks SinkFactory) (Artifacts, error) {

	if hasher == nil {
		hasher = digest.SHA256
	}

	art := Artifacts{
		StatePath: filepath.Join(outDir, SanitizeFilename(name)+".json"),
	}

	push := func(sink recorder.Sink, state S) (string, error) {
		pixels := make([]byte, cfg.FrameLen())
		render(state, pixels, cfg.Width, cfg.Height)
		for i := 0; i < cfg.hold(); i++ {
			if err := sink.PushFrame(pixels); err != nil {
				return "", err
			}
		}
		return hasher.Sum(pixels), nil
	}

	// original leg
	sink, err := startSink(sinks, name, "original", cfg)
	if err != nil {
		return Artifacts{}, err
	}

	r := runner.NewRunner(l)

	h, err := push(sink, r.State())
	if err != nil {
		return Artifacts{}, abandon(sink, err)
	}
	art.OriginalHashes = append(art.OriginalHashes, h)

	for _, i := range inputs {
		r.Step(i)
		h, err := push(sink, r.State())
		if err != nil {
			return Artifacts{}, abandon(sink, err)
		}
		art.OriginalHashes = append(art.OriginalHashes, h)
	}

	if err := sink.Finish(); err != nil {
		return Artifacts{}, err
	}

	if err := r.Timeline().Save(art.StatePath); err != nil {
		return Artifacts{}, curated.Errorf(PersistenceError, art.StatePath, err)
	}

	// replay leg
	hst, err := rewind.Load[S](art.StatePath)
	if err != nil {
		return Artifacts{}, curated.Errorf(PersistenceError, art.StatePath, err)
	}
	replay := runner.FromHistory(l, hst)

	sink, err = startSink(sinks, name, "replay", cfg)
	if err != nil {
		return Artifacts{}, err
	}

	for f := 0; f < hst.Len(); f++ {
		replay.Seek(f)
		h, err := push(sink, replay.State())
		if err != nil {
			return Artifacts{}, abandon(sink, err)
		}
		art.ReplayHashes = append(art.ReplayHashes, h)
	}

	if err := sink.Finish(); err != nil {
		return Artifacts{}, err
	}

	logger.Logf(logger.Allow, "regression", "%s: recorded %d frames to video (%s)", name, len(art.OriginalHashes), cfg.Config)

	return art, CompareHashes(art.OriginalHashes, art.ReplayHashes)
}

func startSink(sinks SinkFactory, name string, leg string, cfg VideoConfig) (recorder.Sink, error) {
	sink, err := sinks(name, leg)
	if err != nil {
		return nil, err
	}
	if err := sink.Start(cfg.Config); err != nil {
		return nil, err
	}
	return sink, nil
}

// abandon finishes the sink after an error. the original error is returned
func abandon(sink recorder.Sink, err error) error {
	_ = sink.Finish()
	return err
}

// CompareVideos decodes both video files with ffmpeg and compares the MD5 sum
// of every frame.
func CompareVideos(binary string, a string, b string) error {
	x, err := recorder.FrameMD5s(binary, a)
	if err != nil {
		return curated.Errorf(VideoMismatch, a, b, err)
	}
	y, err := recorder.FrameMD5s(binary, b)
	if err != nil {
		return curated.Errorf(VideoMismatch, a, b, err)
	}

	if len(x) != len(y) {
		return curated.Errorf(VideoMismatch, a, b, fmt.Errorf("%d frames compared to %d frames", len(x), len(y)))
	}

	for i := range x {
		if x[i] != y[i] {
			return curated.Errorf(VideoMismatch, a, b, fmt.Errorf("frame %d differs", i))
		}
	}

	return nil
}
