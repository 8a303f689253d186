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
	"sync"

	"github.com/jetsetilly/rollout/curated"
)

// Sentinal error returned by Queue.Push() when the queue has been closed.
const QueueClosed = "remote: queue closed"

// Queue is a multi-producer, single-consumer hand-off of commands.
type Queue[C any] struct {
	ch        chan C
	done      chan struct{}
	closeOnce sync.Once
}

// NewQueue is the preferred method of initialisation for the Queue type. The
// capacity is the number of commands that can be waiting before Push()
// blocks. A capacity of less than one is treated as one.
func NewQueue[C any](capacity int) *Queue[C] {
	return &Queue[C]{
		ch:   make(chan C, max(capacity, 1)),
		done: make(chan struct{}),
	}
}

// Push adds a command to the queue, blocking while the queue is full. Returns
// an error if the queue is closed or if the context is done before there is
// room.
func (q *Queue[C]) Push(ctx context.Context, c C) error {
	select {
	case <-q.done:
		return curated.Errorf(QueueClosed)
	default:
	}

	select {
	case <-q.done:
		return curated.Errorf(QueueClosed)
	case <-ctx.Done():
		return ctx.Err()
	case q.ch <- c:
		return nil
	}
}

// TryPop returns the oldest waiting command. It never blocks. The boolean
// result is false if there is no command waiting, whether or not the queue
// has been closed.
func (q *Queue[C]) TryPop() (C, bool) {
	select {
	case c := <-q.ch:
		return c, true
	default:
		var c C
		return c, false
	}
}

// Len returns the number of commands waiting.
func (q *Queue[C]) Len() int {
	return len(q.ch)
}

// Close stops the queue from accepting any more commands. Commands already in
// the queue can still be popped. It is safe to call Close() more than once.
func (q *Queue[C]) Close() {
	q.closeOnce.Do(func() {
		close(q.done)
	})
}
