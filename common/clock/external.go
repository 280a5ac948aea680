// Copyright 2024 The google-apis-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package clock

import (
	"context"
	"time"
)

// Unique value for clock key.
var clockKey = "clock.Clock"

// Set creates a new Context using the supplied Clock.
func Set(ctx context.Context, c Clock) context.Context {
	return context.WithValue(ctx, &clockKey, c)
}

// Get returns the Clock set in the supplied Context, defaulting to the system
// clock if none is set.
func Get(ctx context.Context) Clock {
	if c, ok := ctx.Value(&clockKey).(Clock); ok {
		return c
	}
	return GetSystemClock()
}

// Now calls Clock.Now on the Clock instance stored in the supplied Context.
func Now(ctx context.Context) time.Time {
	return Get(ctx).Now()
}

// Sleep calls Clock.Sleep on the Clock instance stored in the supplied
// Context.
func Sleep(ctx context.Context, d time.Duration) TimerResult {
	return Get(ctx).Sleep(ctx, d)
}

// Since is an equivalent of time.Since.
func Since(ctx context.Context, t time.Time) time.Duration {
	return Now(ctx).Sub(t)
}

// Until is an equivalent of time.Until.
func Until(ctx context.Context, t time.Time) time.Duration {
	return t.Sub(Now(ctx))
}
