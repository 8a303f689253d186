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


package remote_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/jetsetilly/rollout/actions"
	"github.com/jetsetilly/rollout/agent"
	"github.com/jetsetilly/rollout/remote"
	"github.com/jetsetilly/rollout/rewind"
	"github.com/jetsetilly/rollout/test"
)

type wireReply struct {
	ID       string           `json:"id"`
	OK       bool             `json:"ok"`
	Error    string           `json:"error"`
	Frame    int              `json:"frame"`
	State    *int             `json:"state"`
	History  []int            `json:"history"`
	Timeline *rewind.Timeline `json:"timeline"`
}

// starts a server and a goroutine that drains the queue in the manner of a
// tick loop. the returned function stops both
func startServer(t *testing.T) (string, *agent.Host[int, int], func()) {
	t.Helper()

	q := remote.NewQueue[remote.Command[int]](16)
	host := agent.NewHost[int, int](accumulator)
	reg := newRegistry(t)

	srv := remote.NewServer(q, reg.Manifest())
	hs := httptest.NewServer(srv)

	done := make(chan struct{})
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		tick := time.NewTicker(time.Millisecond)
		defer tick.Stop()
		for {
			select {
			case <-done:
				return
			case <-tick.C:
				remote.Drain(q, host, reg)
			}
		}
	}()

	return hs.URL, host, func() {
		hs.Close()
		close(done)
		<-stopped
		q.Close()
	}
}

func exchange(t *testing.T, conn *websocket.Conn, req string) wireReply {
	t.Helper()

	test.DemandSuccess(t, conn.SetWriteDeadline(time.Now().Add(2*time.Second)))
	test.DemandSuccess(t, conn.WriteMessage(websocket.TextMessage, []byte(req)))

	test.DemandSuccess(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	test.DemandSuccess(t, err)

	var rep wireReply
	test.DemandSuccess(t, json.Unmarshal(data, &rep))
	return rep
}

func TestServer(t *testing.T) {
	url, host, stop := startServer(t)

	wsURL := "ws" + strings.TrimPrefix(url, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	test.DemandSuccess(t, err)

	rep := exchange(t, conn, `{"id":"a","cmd":"step","action":"one"}`)
	test.ExpectEquality(t, rep.ID, "a")
	test.ExpectSuccess(t, rep.OK)
	test.ExpectEquality(t, rep.Frame, 1)
	if rep.State == nil {
		t.Fatalf("reply to step has no state")
	}
	test.ExpectEquality(t, *rep.State, 1)

	rep = exchange(t, conn, `{"id":"b","cmd":"step","action":"two"}`)
	test.ExpectEquality(t, *rep.State, 3)

	rep = exchange(t, conn, `{"id":"c","cmd":"rewind","frames":1}`)
	test.ExpectEquality(t, rep.Frame, 1)

	rep = exchange(t, conn, `{"id":"d","cmd":"step","action":"ninety-eight"}`)
	test.ExpectEquality(t, rep.Frame, 2)
	test.ExpectEquality(t, *rep.State, 99)

	rep = exchange(t, conn, `{"id":"e","cmd":"history"}`)
	test.ExpectEquality(t, rep.Frame, 2)
	test.ExpectDeepEquality(t, rep.History, []int{0, 1, 99})

	rep = exchange(t, conn, `{"id":"f","cmd":"seek","frame":0}`)
	test.ExpectEquality(t, rep.Frame, 0)
	if rep.Timeline == nil {
		t.Fatalf("reply to seek has no timeline")
	}
	test.ExpectEquality(t, rep.Timeline.Len, 3)
	test.ExpectEquality(t, rep.Timeline.CanForward, true)

	// request without an id is given one
	rep = exchange(t, conn, `{"cmd":"timeline"}`)
	test.ExpectInequality(t, rep.ID, "")
	test.ExpectSuccess(t, rep.OK)
	test.ExpectEquality(t, rep.State == nil, true)

	rep = exchange(t, conn, `{"id":"g","cmd":"step","action":"does-not-exist"}`)
	test.ExpectFailure(t, rep.OK)
	test.ExpectEquality(t, rep.Error, `unknown action: "does-not-exist"`)
	test.ExpectEquality(t, rep.Frame, 0)

	rep = exchange(t, conn, `{"id":"h","cmd":"jump"}`)
	test.ExpectFailure(t, rep.OK)
	test.ExpectEquality(t, rep.Error, `remote: unknown command: "jump"`)

	rep = exchange(t, conn, `not json`)
	test.ExpectFailure(t, rep.OK)
	test.ExpectInequality(t, rep.ID, "")

	test.ExpectSuccess(t, conn.Close())
	stop()

	// the host is only ever touched by the draining goroutine
	test.ExpectEquality(t, host.Runner().Frame(), 0)
	test.ExpectEquality(t, host.Timeline().Len, 3)
}

func TestServerEndpoints(t *testing.T) {
	url, _, stop := startServer(t)
	defer stop()

	resp, err := http.Get(url + "/health")
	test.DemandSuccess(t, err)
	var h struct {
		Status string `json:"status"`
		Queued int    `json:"queued"`
	}
	test.ExpectSuccess(t, json.NewDecoder(resp.Body).Decode(&h))
	resp.Body.Close()
	test.ExpectEquality(t, resp.StatusCode, http.StatusOK)
	test.ExpectEquality(t, h.Status, "ok")

	resp, err = http.Get(url + "/actions")
	test.DemandSuccess(t, err)
	var manifest []actions.Action
	test.ExpectSuccess(t, json.NewDecoder(resp.Body).Decode(&manifest))
	resp.Body.Close()
	test.ExpectDeepEquality(t, manifest, []actions.Action{
		{ID: "one", Label: "add one"},
		{ID: "two", Label: "add two"},
		{ID: "ninety-eight", Label: "add ninety-eight"},
	})
}

func TestServerTimeout(t *testing.T) {
	// nothing drains this queue
	q := remote.NewQueue[remote.Command[int]](16)
	srv := remote.NewServer(q, nil)
	srv.Timeout = 20 * time.Millisecond

	hs := httptest.NewServer(srv)
	defer hs.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(hs.URL, "http")+"/ws", nil)
	test.DemandSuccess(t, err)
	defer conn.Close()

	rep := exchange(t, conn, `{"id":"a","cmd":"state"}`)
	test.ExpectFailure(t, rep.OK)
	test.ExpectEquality(t, rep.ID, "a")
	test.ExpectInequality(t, rep.Error, "")
	test.ExpectEquality(t, q.Len(), 1)
}
