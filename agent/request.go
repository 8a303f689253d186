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

package agent

import "fmt"

// RequestKind identifies the type of a Request.
type RequestKind int

// List of valid RequestKind values.
const (
	ReqStep RequestKind = iota
	ReqReset
	ReqGetState
	ReqGetHistory
	ReqRewind
	ReqForward
	ReqSeek
)

func (k RequestKind) String() string {
	switch k {
	case ReqStep:
		return "step"
	case ReqReset:
		return "reset"
	case ReqGetState:
		return "get state"
	case ReqGetHistory:
		return "get history"
	case ReqRewind:
		return "rewind"
	case ReqForward:
		return "forward"
	case ReqSeek:
		return "seek"
	}
	return fmt.Sprintf("unknown request (%d)", int(k))
}

// Request is sent to Host.Handle(). Create requests with the constructor
// functions rather than directly.
type Request[I any] struct {
	Kind RequestKind

	// used by ReqStep only
	Input I

	// number of frames for ReqRewind and ReqForward. the target frame for
	// ReqSeek
	Frames int
}

func (req Request[I]) String() string {
	switch req.Kind {
	case ReqStep:
		return fmt.Sprintf("%s %v", req.Kind, req.Input)
	case ReqRewind, ReqForward, ReqSeek:
		return fmt.Sprintf("%s %d", req.Kind, req.Frames)
	}
	return req.Kind.String()
}

// Step creates a request to advance the simulation by one frame.
func Step[I any](input I) Request[I] {
	return Request[I]{Kind: ReqStep, Input: input}
}

// Reset creates a request to reinitialise the simulation.
func Reset[I any]() Request[I] {
	return Request[I]{Kind: ReqReset}
}

// GetState creates a request for the present state.
func GetState[I any]() Request[I] {
	return Request[I]{Kind: ReqGetState}
}

// GetHistory creates a request for every recorded state.
func GetHistory[I any]() Request[I] {
	return Request[I]{Kind: ReqGetHistory}
}

// Rewind creates a request to move the present frame back.
func Rewind[I any](frames int) Request[I] {
	return Request[I]{Kind: ReqRewind, Frames: frames}
}

// Forward creates a request to move the present frame forward.
func Forward[I any](frames int) Request[I] {
	return Request[I]{Kind: ReqForward, Frames: frames}
}

// Seek creates a request to move the present frame to the specified frame.
func Seek[I any](frame int) Request[I] {
	return Request[I]{Kind: ReqSeek, Frames: frame}
}

// ResponseKind identifies the type of a Response.
type ResponseKind int

// List of valid ResponseKind values.
const (
	RespState ResponseKind = iota
	RespHistory
)

// Response is returned by Host.Handle().
type Response[S any] struct {
	Kind  ResponseKind
	Frame int

	// the state at Frame. only valid for RespState
	State S

	// every recorded state, including any after Frame. only valid for
	// RespHistory
	History []S
}
