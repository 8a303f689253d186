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


package remote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/jetsetilly/rollout/actions"
	"github.com/jetsetilly/rollout/curated"
	"github.com/jetsetilly/rollout/logger"
	"github.com/jetsetilly/rollout/rewind"
)

// Sentinal error returned by Server.ListenAndServe().
const ServerError = "remote: server: %v"

// time allowed for a single reply to be written to the connection
const writeWait = 5 * time.Second

// the JSON message sent by a client
type request struct {
	ID     string `json:"id"`
	Cmd    string `json:"cmd"`
	Action string `json:"action"`
	Frames int    `json:"frames"`
	Frame  int    `json:"frame"`
}

// the JSON message sent in reply to a request
type reply[S any] struct {
	ID       string           `json:"id"`
	OK       bool             `json:"ok"`
	Error    string           `json:"error,omitempty"`
	Frame    int              `json:"frame"`
	State    *S               `json:"state,omitempty"`
	History  []S              `json:"history,omitempty"`
	Timeline *rewind.Timeline `json:"timeline,omitempty"`
}

type health struct {
	Status string `json:"status"`
	Queued int    `json:"queued"`
}

// Server forwards websocket requests to a Queue and writes the replies back
// to the client.
//
// Endpoints:
//
//	/ws       websocket. one JSON reply for every JSON request
//	/health   status of the server and the number of waiting commands
//	/actions  the action identifiers accepted by the step command
type Server[S any] struct {
	queue    *Queue[Command[S]]
	manifest []actions.Action
	upgrader websocket.Upgrader
	mux      *http.ServeMux

	// maximum time to wait for the draining goroutine to apply a command. a
	// value of zero means the wait is bounded only by the connection
	Timeout time.Duration
}

// NewServer is the preferred method of initialisation for the Server type.
func NewServer[S any](q *Queue[Command[S]], manifest []actions.Action) *Server[S] {
	srv := &Server[S]{
		queue:    q,
		manifest: manifest,
		mux:      http.NewServeMux(),
		Timeout:  5 * time.Second,
	}
	srv.mux.HandleFunc("/ws", srv.handleWebsocket)
	srv.mux.HandleFunc("/health", srv.handleHealth)
	srv.mux.HandleFunc("/actions", srv.handleActions)
	return srv
}

// ServeHTTP implements the http.Handler interface.
func (srv *Server[S]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	srv.mux.ServeHTTP(w, r)
}

// ListenAndServe runs the server on the address until the context is done.
func (srv *Server[S]) ListenAndServe(ctx context.Context, addr string) error {
	hs := &http.Server{
		Addr:    addr,
		Handler: srv,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- hs.ListenAndServe()
	}()

	logger.Logf(logger.Allow, "remote", "listening on %s", addr)

	select {
	case <-ctx.Done():
		shutdown, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		err := hs.Shutdown(shutdown)
		<-errCh
		if err != nil {
			return curated.Errorf(ServerError, err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return curated.Errorf(ServerError, err)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log(logger.Allow, "remote", err)
	}
}

func (srv *Server[S]) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, health{
		Status: "ok",
		Queued: srv.queue.Len(),
	})
}

func (srv *Server[S]) handleActions(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, srv.manifest)
}

func (srv *Server[S]) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	conn, err := srv.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// the upgrader has already replied to the client
		logger.Logf(logger.Allow, "remote", "upgrade: %v", err)
		return
	}
	defer conn.Close()

	logger.Logf(logger.Allow, "remote", "connection from %s", r.RemoteAddr)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Logf(logger.Allow, "remote", "read: %v", err)
			}
			return
		}

		rep := srv.handle(r.Context(), data)

		if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
			logger.Logf(logger.Allow, "remote", "write: %v", err)
			return
		}
		if err := conn.WriteJSON(rep); err != nil {
			logger.Logf(logger.Allow, "remote", "write: %v", err)
			return
		}
	}
}

// handle a single request. the returned reply is always suitable for sending
// to the client
func (srv *Server[S]) handle(ctx context.Context, data []byte) reply[S] {
	var req request
	if err := json.Unmarshal(data, &req); err != nil {
		return reply[S]{ID: uuid.NewString(), Error: err.Error()}
	}

	if req.ID == "" {
		req.ID = uuid.NewString()
	}

	kind, err := ParseCommandKind(req.Cmd)
	if err != nil {
		return reply[S]{ID: req.ID, Error: err.Error()}
	}

	frames := req.Frames
	if kind == CmdSeek {
		frames = req.Frame
	}
	cmd := NewCommand[S](kind, req.Action, frames)

	if srv.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, srv.Timeout)
		defer cancel()
	}

	if err := srv.queue.Push(ctx, cmd); err != nil {
		return reply[S]{ID: req.ID, Error: err.Error()}
	}

	r, err := cmd.Wait(ctx)
	if err != nil {
		return reply[S]{ID: req.ID, Error: err.Error()}
	}

	rep := reply[S]{
		ID:       req.ID,
		OK:       r.Err == nil,
		Frame:    r.Response.Frame,
		Timeline: &r.Timeline,
	}
	if r.Err != nil {
		rep.Error = r.Err.Error()
	}

	switch kind {
	case CmdGetHistory:
		rep.History = r.Response.History
	case CmdGetTimeline:
	default:
		rep.State = &r.Response.State
	}

	return rep
}
