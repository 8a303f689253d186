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

package recorder_test

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/jetsetilly/rollout/curated"
	"github.com/jetsetilly/rollout/recorder"
	"github.com/jetsetilly/rollout/test"
)

func TestConfig(t *testing.T) {
	cfg := recorder.Config{Width: 4, Height: 2, FPS: 30}
	test.ExpectEquality(t, cfg.FrameLen(), 32)
	test.ExpectSuccess(t, cfg.Validate())
	test.ExpectEquality(t, cfg.String(), "4x2@30")

	test.ExpectFailure(t, recorder.Config{Width: 0, Height: 2, FPS: 30}.Validate())
	test.ExpectFailure(t, recorder.Config{Width: 4, Height: 2}.Validate())
}

func TestMemory(t *testing.T) {
	cfg := recorder.Config{Width: 2, Height: 2, FPS: 10}
	var mem recorder.Memory

	err := mem.PushFrame(make([]byte, cfg.FrameLen()))
	test.ExpectSuccess(t, curated.Is(err, recorder.SinkError))

	test.DemandSuccess(t, mem.Start(cfg))
	test.ExpectFailure(t, mem.Start(cfg))

	test.ExpectSuccess(t, mem.PushFrame(make([]byte, cfg.FrameLen())))

	// wrong size is rejected without being recorded
	err = mem.PushFrame(make([]byte, cfg.FrameLen()-1))
	test.ExpectSuccess(t, curated.Is(err, recorder.SinkError))
	test.ExpectEquality(t, len(mem.Hashes()), 1)

	test.ExpectSuccess(t, mem.Finish())
	test.ExpectFailure(t, mem.Finish())
	test.ExpectFailure(t, mem.PushFrame(make([]byte, cfg.FrameLen())))
}

func TestFFmpeg(t *testing.T) {
	binary := os.Getenv("ROLLOUT_FFMPEG_BIN")
	if binary == "" {
		binary = "ffmpeg"
	}
	if !recorder.FFmpegAvailable(binary) {
		t.Skipf("%s not available", binary)
	}

	cfg := recorder.Config{Width: 16, Height: 16, FPS: 10}
	output := filepath.Join(t.TempDir(), "video", "test.mp4")

	ff := recorder.NewFFmpeg(binary, output)
	test.ExpectFailure(t, ff.PushFrame(make([]byte, cfg.FrameLen())))
	test.DemandSuccess(t, ff.Start(cfg))

	// wrong size is rejected before anything is written to ffmpeg
	test.ExpectFailure(t, ff.PushFrame(make([]byte, 3)))

	for i := 0; i < 5; i++ {
		frame := make([]byte, cfg.FrameLen())
		for j := range frame {
			frame[j] = byte(i * 40)
		}
		test.ExpectSuccess(t, ff.PushFrame(frame))
	}
	test.DemandSuccess(t, ff.Finish())

	sums, err := recorder.FrameMD5s(binary, output)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(sums), 5)

	_, err = recorder.FrameMD5s(binary, filepath.Join(t.TempDir(), "missing.mp4"))
	test.ExpectFailure(t, err)
}

func TestFFmpegMissing(t *testing.T) {
	test.ExpectFailure(t, recorder.FFmpegAvailable("this-ffmpeg-does-not-exist"))

	ff := recorder.NewFFmpeg("this-ffmpeg-does-not-exist", filepath.Join(t.TempDir(), "out.mp4"))
	err := ff.Start(recorder.Config{Width: 2, Height: 2, FPS: 1})
	test.ExpectSuccess(t, curated.Is(err, recorder.SinkError))
}

func TestFFmpegExitsEarly(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script stand-in for ffmpeg requires a unix shell")
	}

	// an encoder that complains and exits without reading any input
	binary := filepath.Join(t.TempDir(), "broken-ffmpeg")
	script := "#!/bin/sh\necho broken encoder >&2\nexit 1\n"
	test.DemandSuccess(t, os.WriteFile(binary, []byte(script), 0755))

	// a frame larger than a pipe buffer so that the write can not complete
	cfg := recorder.Config{Width: 256, Height: 256, FPS: 10}
	ff := recorder.NewFFmpeg(binary, filepath.Join(t.TempDir(), "out.mp4"))
	test.DemandSuccess(t, ff.Start(cfg))

	err := ff.PushFrame(make([]byte, cfg.FrameLen()))
	test.DemandFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, recorder.SinkError))
	test.ExpectSuccess(t, strings.Contains(err.Error(), "broken encoder"), err.Error())

	// the sink is no longer running after a failed write
	test.ExpectFailure(t, ff.PushFrame(make([]byte, cfg.FrameLen())))
	test.ExpectFailure(t, ff.Finish())
}
