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

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate.
//
// A new Limiter can be created with (error handling removed for clarity):
//
//	lim, _ := limiter.NewLimiter(60)
//	defer lim.Stop()
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for lim.Wait(ctx) {
//		runner.Step(input)
//	}
package limiter

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Limiter will trigger the specified number of times per second.
type Limiter struct {
	crit   sync.Mutex
	rate   int
	ticker *time.Ticker
}

// NewLimiter is the preferred method of initialisation for Limiter type.
func NewLimiter(perSecond int) (*Limiter, error) {
	d, err := period(perSecond)
	if err != nil {
		return nil, err
	}
	return &Limiter{
		rate:   perSecond,
		ticker: time.NewTicker(d),
	}, nil
}

func period(perSecond int) (time.Duration, error) {
	if perSecond <= 0 {
		return 0, fmt.Errorf("limiter: rate must be positive (%d)", perSecond)
	}
	return time.Second / time.Duration(perSecond), nil
}

// SetLimit changes the rate at which the Limiter triggers.
func (lim *Limiter) SetLimit(perSecond int) error {
	d, err := period(perSecond)
	if err != nil {
		return err
	}
	lim.crit.Lock()
	defer lim.crit.Unlock()
	lim.rate = perSecond
	lim.ticker.Reset(d)
	return nil
}

// Limit returns the current rate.
func (lim *Limiter) Limit() int {
	lim.crit.Lock()
	defer lim.crit.Unlock()
	return lim.rate
}

// Wait will block until trigger. Returns false if the context is done before
// the trigger.
func (lim *Limiter) Wait(ctx context.Context) bool {
	select {
	case <-lim.ticker.C:
		return true
	case <-ctx.Done():
		return false
	}
}

// HasWaited will return true if time has already elapsed and false if it is
// still yet to happen.
func (lim *Limiter) HasWaited() bool {
	select {
	case <-lim.ticker.C:
		return true
	default:
		return false
	}
}

// Stop the limiter. Wait() will not trigger after Stop() has been called
// except when the context is done.
func (lim *Limiter) Stop() {
	lim.ticker.Stop()
}
