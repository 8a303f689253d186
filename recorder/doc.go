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

// Package recorder sends rendered images to a video sink.
//
// The Sink interface is the contract for anything that accepts a sequence of
// RGBA images of a fixed size. A sink is started once, receives images in
// order with PushFrame() and is finished once.
//
// The FFmpeg type is a Sink that encodes images to a video file with an
// external ffmpeg binary. FFmpegAvailable() should be used to check that the
// binary can be run before relying on the FFmpeg sink. The Memory type is a
// Sink that keeps a digest of every image and is useful for comparing
// recordings without an external encoder.
//
// Errors from a sink are SinkError errors. They are never retried.
package recorder
