// Copyright 2024 The google-apis-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package clock is an interface to system time, allowing tests to substitute
// an instrumented implementation through the Context.
package clock

import (
	"context"
	"time"
)

// Clock is an interface to system time.
//
// The standard clock is the system clock, which falls through to the time
// library. A test clock is available in the testclock subpackage.
type Clock interface {
	// Now returns the current time (see time.Now).
	Now() time.Time

	// Sleep sleeps the current goroutine (see time.Sleep).
	//
	// Sleep returns a TimerResult containing the time when it was awakened.
	// If the sleep terminated prematurely from cancellation, the TimerResult's
	// Incomplete() method will return true.
	Sleep(context.Context, time.Duration) TimerResult
}

// TimerResult is the result of a timed sleep.
//
// Time is the time when the result was generated. If the sleep was terminated
// prematurely due to Context cancellation, Err will be non-nil and will
// indicate the cancellation reason.
type TimerResult struct {
	time.Time

	// Err, if not nil, indicates that the sleep did not finish naturally and
	// contains the reason why.
	Err error
}

// Incomplete returns true if the sleep was canceled prematurely due to
// Context cancellation or deadline expiration.
func (tr TimerResult) Incomplete() bool {
	return tr.Err != nil
}
