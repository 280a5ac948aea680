// Copyright 2024 The google-apis-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package errors

import (
	"errors"
)

// transientWrapper marks an error as transient. It forwards Error() to the
// wrapped error and unwraps through the standard errors package.
type transientWrapper struct {
	error
}

func (t transientWrapper) Unwrap() error {
	return t.error
}

// IsTransient tests if a given error, or any error inside of it, is flagged
// as transient.
//
// A MultiError is transient if any of its components is transient.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	var t transientWrapper
	if errors.As(err, &t) {
		return true
	}
	var m MultiError
	if errors.As(err, &m) {
		for _, e := range m {
			if IsTransient(e) {
				return true
			}
		}
	}
	return false
}

// WrapTransient wraps an error with a marker that identifies it as transient.
//
// If the supplied error is nil, or already transient, it is returned
// unchanged.
func WrapTransient(err error) error {
	if err == nil || IsTransient(err) {
		return err
	}
	return transientWrapper{err}
}
