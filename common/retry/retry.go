// Copyright 2024 The google-apis-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package retry provides a configurable retry engine based on composable
// iterators that yield the delay before the next attempt.
package retry

import (
	"context"
	"time"

	"github.com/dermesser/google-apis-go/common/clock"
)

// Stop is a sentinel returned by an Iterator to indicate that no more
// attempts should be made.
const Stop time.Duration = -1

// Callback is a callback function that Retry will invoke every time an
// attempt fails prior to sleeping.
type Callback func(error, time.Duration)

// Iterator describes a stateful implementation of retry logic.
type Iterator interface {
	// Next returns either the time to wait before the next retry, or Stop to
	// indicate that no more retries should be performed.
	//
	// It is called after every failed attempt, with the error that the
	// attempt produced.
	Next(context.Context, error) time.Duration
}

// Factory is a function that produces an independent Iterator instance.
//
// Since each Iterator may have state, the Factory is invoked once per Retry
// invocation.
type Factory func(context.Context) Iterator

// Retry executes a function fn. If the function returns an error, it will
// be re-executed according to a retry plan.
//
// If a Factory is supplied, it will be called to generate a single retry
// Iterator for this Retry round. If nil, Retry will perform exactly one
// attempt.
//
// If the supplied Context is canceled, retry will stop executing. Retry will
// not execute the supplied function at all if the Context is canceled when
// Retry is invoked.
//
// If callback is not nil, it will be invoked if an attempt fails prior to
// sleeping.
func Retry(ctx context.Context, f Factory, fn func() error, callback Callback) (err error) {
	var it Iterator
	if f != nil {
		it = f(ctx)
	}

	for {
		// If the Context has been canceled, don't try/retry further.
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err = fn(); err == nil {
			return nil
		}

		if it == nil {
			return err
		}
		delay := it.Next(ctx, err)
		if delay == Stop {
			return err
		}

		if callback != nil {
			callback(err, delay)
		}

		if delay > 0 {
			if tr := clock.Sleep(ctx, delay); tr.Incomplete() {
				return tr.Err
			}
		}
	}
}
