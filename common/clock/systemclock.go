// Copyright 2024 The google-apis-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package clock

import (
	"context"
	"time"
)

// Implementation of Clock that uses Go's standard library.
type systemClock struct{}

// System clock instance.
var systemClockInstance systemClock

var _ Clock = systemClock{}

// GetSystemClock returns an instance of a Clock whose method calls directly
// use Go's "time" library.
func GetSystemClock() Clock {
	return systemClockInstance
}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) Sleep(ctx context.Context, d time.Duration) TimerResult {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case now := <-t.C:
		return TimerResult{Time: now}
	case <-ctx.Done():
		return TimerResult{Time: time.Now(), Err: ctx.Err()}
	}
}
