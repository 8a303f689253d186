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
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/rollout/curated"
	"github.com/jetsetilly/rollout/logger"
)

// FFmpegAvailable returns true if the ffmpeg binary can be run.
func FFmpegAvailable(binary string) bool {
	err := exec.Command(binary, "-hide_banner", "-version").Run()
	return err == nil
}

// FFmpeg is a Sink that encodes images to a video file with an external ffmpeg
// process.
type FFmpeg struct {
	binary string
	output string

	cfg    Config
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stderr bytes.Buffer
}

// NewFFmpeg is the preferred method of initialisation for the FFmpeg type.
// The output file will be overwritten if it already exists.
func NewFFmpeg(binary string, output string) *FFmpeg {
	return &FFmpeg{
		binary: binary,
		output: output,
	}
}

// Output returns the filename of the video file.
func (ff *FFmpeg) Output() string {
	return ff.output
}

// Start implements the Sink interface.
func (ff *FFmpeg) Start(cfg Config) error {
	if ff.cmd != nil {
		return curated.Errorf(SinkError, "already started")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(ff.output), 0755); err != nil {
		return curated.Errorf(SinkError, err)
	}

	ff.cfg = cfg
	ff.cmd = exec.Command(ff.binary,
		"-hide_banner", "-loglevel", "error", "-y",
		"-f", "rawvideo", "-pix_fmt", "rgba",
		"-s", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height),
		"-r", fmt.Sprintf("%d", cfg.FPS),
		"-i", "-",
		"-an", "-c:v", "libx264", "-preset", "ultrafast", "-crf", "18",
		"-pix_fmt", "yuv420p",
		ff.output,
	)
	ff.cmd.Stderr = &ff.stderr

	var err error
	ff.stdin, err = ff.cmd.StdinPipe()
	if err != nil {
		return curated.Errorf(SinkError, err)
	}

	if err := ff.cmd.Start(); err != nil {
		return curated.Errorf(SinkError, err)
	}

	logger.Logf(logger.Allow, "recorder", "encoding %s to %s", cfg, ff.output)

	return nil
}

// PushFrame implements the Sink interface.
func (ff *FFmpeg) PushFrame(rgba []byte) error {
	if ff.stdin == nil {
		return curated.Errorf(SinkError, "not running")
	}
	if err := checkFrame(ff.cfg, rgba); err != nil {
		return err
	}
	if _, err := ff.stdin.Write(rgba); err != nil {
		// ffmpeg has most likely exited. the process must be waited on
		// before stderr is read
		_ = ff.stdin.Close()
		ff.stdin = nil
		_ = ff.cmd.Wait()
		return curated.Errorf(SinkError, ff.failure(err))
	}
	return nil
}

// Finish implements the Sink interface.
func (ff *FFmpeg) Finish() error {
	if ff.stdin == nil {
		return curated.Errorf(SinkError, "not running")
	}

	err := ff.stdin.Close()
	ff.stdin = nil
	if err != nil {
		_ = ff.cmd.Wait()
		return curated.Errorf(SinkError, ff.failure(err))
	}

	if err := ff.cmd.Wait(); err != nil {
		return curated.Errorf(SinkError, ff.failure(err))
	}

	return nil
}

// failure adds anything ffmpeg wrote to stderr to the error. must only be
// called after cmd.Wait() has returned
func (ff *FFmpeg) failure(err error) error {
	msg := strings.TrimSpace(ff.stderr.String())
	if msg == "" {
		return err
	}
	return fmt.Errorf("%w (%s)", err, msg)
}

// FrameMD5s decodes the video file and returns the MD5 sum of every frame.
func FrameMD5s(binary string, video string) ([]string, error) {
	var stderr bytes.Buffer

	cmd := exec.Command(binary, "-hide_banner", "-loglevel", "error", "-i", video, "-f", "framemd5", "-")
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return nil, curated.Errorf(SinkError, fmt.Errorf("%s: %w (%s)", video, err, msg))
		}
		return nil, curated.Errorf(SinkError, fmt.Errorf("%s: %w", video, err))
	}

	return parseFrameMD5(bytes.NewReader(out)), nil
}

// parseFrameMD5 returns the last field of every line that isn't a comment
func parseFrameMD5(r io.Reader) []string {
	var sums []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, ",")
		sums = append(sums, strings.TrimSpace(fields[len(fields)-1]))
	}

	return sums
}
