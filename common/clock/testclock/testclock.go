// Copyright 2024 The google-apis-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package testclock implements a Clock for testing: time only moves when the
// test advances it, and sleeps complete immediately.
package testclock

import (
	"context"
	"sync"
	"time"

	"github.com/dermesser/google-apis-go/common/clock"
)

// TestTimeUTC is an arbitrary time point in UTC for testing.
//
// It corresponds to a date sufficiently far away from "zero" that
// subtractions are safe.
var TestTimeUTC = time.Date(2016, time.February, 3, 4, 5, 6, 7, time.UTC)

// SleepCallback is invoked when a sleep begins, with the requested duration.
// This is useful for synchronizing state when testing.
type SleepCallback func(d time.Duration)

// TestClock is a Clock interface with additional methods to help
// instrument it.
type TestClock interface {
	clock.Clock

	// Set sets the test clock's time.
	Set(time.Time)

	// Add advances the test clock's time.
	Add(time.Duration)

	// SetSleepCallback sets an instance-wide callback that is invoked before
	// any sleep completes.
	SetSleepCallback(SleepCallback)
}

type testClock struct {
	sync.Mutex

	now           time.Time
	sleepCallback SleepCallback
}

var _ TestClock = (*testClock)(nil)

// New returns a TestClock instance set at the specified time.
func New(now time.Time) TestClock {
	return &testClock{now: now}
}

// UseTime installs a TestClock set at the given time into the Context.
func UseTime(ctx context.Context, now time.Time) (context.Context, TestClock) {
	tc := New(now)
	return clock.Set(ctx, tc), tc
}

func (c *testClock) Now() time.Time {
	c.Lock()
	defer c.Unlock()
	return c.now
}

// Sleep completes immediately, advancing the clock by the slept duration.
// A canceled context still yields an incomplete TimerResult, as with the
// system clock.
func (c *testClock) Sleep(ctx context.Context, d time.Duration) clock.TimerResult {
	c.Lock()
	cb := c.sleepCallback
	c.Unlock()
	if cb != nil {
		cb(d)
	}
	if err := ctx.Err(); err != nil {
		return clock.TimerResult{Time: c.Now(), Err: err}
	}
	c.Add(d)
	return clock.TimerResult{Time: c.Now()}
}

func (c *testClock) Set(t time.Time) {
	c.Lock()
	defer c.Unlock()
	if t.Before(c.now) {
		panic("testclock: cannot go backwards in time")
	}
	c.now = t
}

func (c *testClock) Add(d time.Duration) {
	c.Set(c.Now().Add(d))
}

func (c *testClock) SetSleepCallback(cb SleepCallback) {
	c.Lock()
	defer c.Unlock()
	c.sleepCallback = cb
}
