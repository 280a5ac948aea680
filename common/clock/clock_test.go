// Copyright 2024 The google-apis-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package clock_test

import (
	"context"
	"testing"
	"time"

	"github.com/dermesser/google-apis-go/common/clock"
	"github.com/dermesser/google-apis-go/common/clock/testclock"

	. "github.com/smartystreets/goconvey/convey"
)

func TestContextClock(t *testing.T) {
	t.Parallel()

	Convey(`A Context with a test clock installed`, t, func() {
		ctx, tc := testclock.UseTime(context.Background(), testclock.TestTimeUTC)

		Convey(`Resolves Now through the Context.`, func() {
			So(clock.Now(ctx), ShouldResemble, testclock.TestTimeUTC)
			tc.Add(time.Minute)
			So(clock.Now(ctx), ShouldResemble, testclock.TestTimeUTC.Add(time.Minute))
		})

		Convey(`Sleep advances the clock without blocking.`, func() {
			var slept time.Duration
			tc.SetSleepCallback(func(d time.Duration) { slept = d })

			res := clock.Sleep(ctx, 5*time.Second)
			So(res.Incomplete(), ShouldBeFalse)
			So(slept, ShouldEqual, 5*time.Second)
			So(clock.Now(ctx), ShouldResemble, testclock.TestTimeUTC.Add(5*time.Second))
		})

		Convey(`Sleep with a canceled Context is incomplete.`, func() {
			cctx, cancel := context.WithCancel(ctx)
			cancel()

			res := clock.Sleep(cctx, time.Second)
			So(res.Incomplete(), ShouldBeTrue)
			So(res.Err, ShouldEqual, context.Canceled)
		})
	})

	Convey(`A Context without a clock falls back to the system clock.`, t, func() {
		So(clock.Get(context.Background()), ShouldEqual, clock.GetSystemClock())
	})
}
