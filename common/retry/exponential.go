// Copyright 2024 The google-apis-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package retry

import (
	"context"
	"time"
)

// ExponentialBackoff is an Iterator implementation that returns an
// exponentially-increasing series of delays.
type ExponentialBackoff struct {
	Limited

	// Multiplier is the exponential growth multiplier. If < 1, a default of
	// 2 will be used.
	Multiplier float64

	// MaxDelay is the maximum duration. If <= 0, no maximum will be enforced.
	MaxDelay time.Duration
}

var _ Iterator = (*ExponentialBackoff)(nil)

// Next implements the Iterator interface.
func (b *ExponentialBackoff) Next(ctx context.Context, err error) time.Duration {
	// Get the base delay from the wrapped Limited Iterator.
	delay := b.Limited.Next(ctx, err)
	if delay == Stop {
		return Stop
	}

	// Bound the delay.
	if b.MaxDelay > 0 && delay > b.MaxDelay {
		delay = b.MaxDelay
		b.Limited.Delay = delay
		return delay
	}

	// Calculate the next delay.
	multiplier := b.Multiplier
	if multiplier < 1 {
		multiplier = 2
	}
	b.Limited.Delay = time.Duration(float64(b.Limited.Delay) * multiplier)
	return delay
}
