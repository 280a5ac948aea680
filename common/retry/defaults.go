// Copyright 2024 The google-apis-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package retry

import (
	"context"
	"time"
)

// defaultIteratorTemplate defines a template for the default retry parameters
// that should be used throughout the program.
var defaultIteratorTemplate = ExponentialBackoff{
	Limited: Limited{
		Delay:   200 * time.Millisecond,
		Retries: 10,
	},
	MaxDelay:   10 * time.Second,
	Multiplier: 2,
}

// Default is a Factory that returns a new instance of the default iterator
// configuration.
func Default(context.Context) Iterator {
	it := defaultIteratorTemplate
	return &it
}

// TransientOnlyFactory wraps a Factory so that the produced Iterator only
// retries transient errors.
func TransientOnlyFactory(f Factory) Factory {
	return func(ctx context.Context) Iterator {
		return &TransientOnly{f(ctx)}
	}
}
