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

package limiter_test

import (
	"context"
	"testing"
	"time"

	"github.com/jetsetilly/rollout/performance/limiter"
	"github.com/jetsetilly/rollout/test"
)

func TestLimiter(t *testing.T) {
	_, err := limiter.NewLimiter(0)
	test.ExpectFailure(t, err)

	lim, err := limiter.NewLimiter(200)
	test.DemandSuccess(t, err)
	defer lim.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for i := 0; i < 3; i++ {
		test.ExpectSuccess(t, lim.Wait(ctx))
	}

	test.ExpectFailure(t, lim.SetLimit(-1))
	test.ExpectSuccess(t, lim.SetLimit(100))
	test.ExpectEquality(t, lim.Limit(), 100)
}

func TestLimiterCancel(t *testing.T) {
	lim, err := limiter.NewLimiter(1)
	test.DemandSuccess(t, err)
	defer lim.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// the first tick is a second away so the cancelled context always wins
	test.ExpectFailure(t, lim.Wait(ctx))
}
