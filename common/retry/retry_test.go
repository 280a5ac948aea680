// Copyright 2024 The google-apis-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package retry

import (
	"context"
	"testing"
	"time"

	"github.com/dermesser/google-apis-go/common/clock/testclock"
	"github.com/dermesser/google-apis-go/common/errors"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLimited(t *testing.T) {
	t.Parallel()

	Convey(`A Limited Iterator, using an instrumented context`, t, func() {
		ctx, tc := testclock.UseTime(context.Background(), time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC))
		l := Limited{}

		Convey(`When empty, will return Stop immediately.`, func() {
			So(l.Next(ctx, nil), ShouldEqual, Stop)
		})

		Convey(`With 3 retries, will Stop after three retries.`, func() {
			l.Delay = time.Second
			l.Retries = 3

			So(l.Next(ctx, nil), ShouldEqual, time.Second)
			So(l.Next(ctx, nil), ShouldEqual, time.Second)
			So(l.Next(ctx, nil), ShouldEqual, time.Second)
			So(l.Next(ctx, nil), ShouldEqual, Stop)
		})

		Convey(`Will stop after MaxTotal.`, func() {
			l.Retries = 1000
			l.Delay = 3 * time.Second
			l.MaxTotal = 8 * time.Second

			So(l.Next(ctx, nil), ShouldEqual, 3*time.Second)
			tc.Add(8 * time.Second)
			So(l.Next(ctx, nil), ShouldEqual, Stop)
		})
	})
}

func TestExponentialBackoff(t *testing.T) {
	t.Parallel()

	Convey(`An ExponentialBackoff Iterator`, t, func() {
		ctx := context.Background()
		b := ExponentialBackoff{
			Limited: Limited{
				Delay:   time.Second,
				Retries: 10,
			},
		}

		Convey(`Doubles by default.`, func() {
			So(b.Next(ctx, nil), ShouldEqual, time.Second)
			So(b.Next(ctx, nil), ShouldEqual, 2*time.Second)
			So(b.Next(ctx, nil), ShouldEqual, 4*time.Second)
		})

		Convey(`Honors Multiplier.`, func() {
			b.Multiplier = 3
			So(b.Next(ctx, nil), ShouldEqual, time.Second)
			So(b.Next(ctx, nil), ShouldEqual, 3*time.Second)
		})

		Convey(`Caps at MaxDelay.`, func() {
			b.MaxDelay = 3 * time.Second
			So(b.Next(ctx, nil), ShouldEqual, time.Second)
			So(b.Next(ctx, nil), ShouldEqual, 2*time.Second)
			So(b.Next(ctx, nil), ShouldEqual, 3*time.Second)
			So(b.Next(ctx, nil), ShouldEqual, 3*time.Second)
		})

		Convey(`Stops when retries run out.`, func() {
			b.Retries = 1
			So(b.Next(ctx, nil), ShouldEqual, time.Second)
			So(b.Next(ctx, nil), ShouldEqual, Stop)
		})
	})
}

func TestRetry(t *testing.T) {
	t.Parallel()

	Convey(`Retry, using an instrumented context`, t, func() {
		ctx, _ := testclock.UseTime(context.Background(), testclock.TestTimeUTC)

		factory := func(retries int, delay time.Duration) Factory {
			return func(context.Context) Iterator {
				return &Limited{Delay: delay, Retries: retries}
			}
		}

		Convey(`Executes exactly once on success.`, func() {
			calls := 0
			err := Retry(ctx, factory(10, time.Second), func() error {
				calls++
				return nil
			}, nil)
			So(err, ShouldBeNil)
			So(calls, ShouldEqual, 1)
		})

		Convey(`With a nil Factory, executes exactly once.`, func() {
			calls := 0
			err := Retry(ctx, nil, func() error {
				calls++
				return errors.New("boom")
			}, nil)
			So(err, ShouldNotBeNil)
			So(calls, ShouldEqual, 1)
		})

		Convey(`Retries until the Iterator stops, invoking the callback.`, func() {
			calls, cbs := 0, 0
			err := Retry(ctx, factory(3, time.Second), func() error {
				calls++
				return errors.New("boom")
			}, func(error, time.Duration) { cbs++ })
			So(err, ShouldNotBeNil)
			So(calls, ShouldEqual, 4)
			So(cbs, ShouldEqual, 3)
		})

		Convey(`Succeeds mid-plan.`, func() {
			calls := 0
			err := Retry(ctx, factory(10, time.Second), func() error {
				calls++
				if calls < 3 {
					return errors.New("boom")
				}
				return nil
			}, nil)
			So(err, ShouldBeNil)
			So(calls, ShouldEqual, 3)
		})

		Convey(`Does not execute with a canceled Context.`, func() {
			cctx, cancel := context.WithCancel(ctx)
			cancel()

			calls := 0
			err := Retry(cctx, factory(10, time.Second), func() error {
				calls++
				return nil
			}, nil)
			So(err, ShouldEqual, context.Canceled)
			So(calls, ShouldEqual, 0)
		})

		Convey(`TransientOnly stops on non-transient errors.`, func() {
			calls := 0
			f := TransientOnlyFactory(factory(10, time.Second))
			err := Retry(ctx, f, func() error {
				calls++
				if calls < 3 {
					return errors.WrapTransient(errors.New("boom"))
				}
				return errors.New("fatal")
			}, nil)
			So(err.Error(), ShouldEqual, "fatal")
			So(calls, ShouldEqual, 3)
		})
	})
}
