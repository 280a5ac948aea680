// Copyright 2024 The google-apis-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package errors holds the small set of error utilities shared by this
// repository: transient error marking (consumed by common/retry) and
// a flat multi-error container.
package errors

import (
	"errors"
	"fmt"
)

// New is a passthrough to the standard library errors.New, so that callers
// don't need to import both packages.
func New(text string) error {
	return errors.New(text)
}

// Reason returns a formatted error, like fmt.Errorf. It exists to keep error
// construction within this package at call sites that also mark errors
// transient.
func Reason(format string, args ...any) error {
	return fmt.Errorf(format, args...)
}

// MultiError is a simple error slice. It is used where several independent
// operations can fail and all failures should be reported.
type MultiError []error

func (m MultiError) Error() string {
	n := 0
	var first error
	for _, e := range m {
		if e != nil {
			if n == 0 {
				first = e
			}
			n++
		}
	}
	switch n {
	case 0:
		return "(0 errors)"
	case 1:
		return first.Error()
	}
	parts := make([]string, 0, n)
	for _, e := range m {
		if e != nil {
			parts = append(parts, e.Error())
		}
	}
	return fmt.Sprintf("%s (and %d other errors)", parts[0], n-1)
}

// AsError returns nil if the MultiError holds no errors, and the MultiError
// itself otherwise.
func (m MultiError) AsError() error {
	for _, e := range m {
		if e != nil {
			return m
		}
	}
	return nil
}

// SingleError unwraps a MultiError of size one, returning the inner error.
// All other errors are returned unchanged.
func SingleError(err error) error {
	var m MultiError
	if errors.As(err, &m) && len(m) == 1 {
		return m[0]
	}
	return err
}

// Append joins the non-nil errors among errs into a MultiError, or returns
// nil if there are none.
func Append(errs ...error) error {
	var m MultiError
	for _, e := range errs {
		if e != nil {
			m = append(m, e)
		}
	}
	return m.AsError()
}
