// Copyright 2024 The google-apis-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package errors

import (
	"fmt"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestTransientError(t *testing.T) {
	t.Parallel()

	Convey(`A nil error`, t, func() {
		err := error(nil)

		Convey(`Is not transient.`, func() {
			So(IsTransient(err), ShouldBeFalse)
		})

		Convey(`Returns nil when wrapped with a transient error.`, func() {
			So(WrapTransient(err), ShouldBeNil)
		})
	})

	Convey(`An error`, t, func() {
		err := New("test error")

		Convey(`Is not transient.`, func() {
			So(IsTransient(err), ShouldBeFalse)
		})

		Convey(`When wrapped with a transient error`, func() {
			terr := WrapTransient(err)

			Convey(`Has the same error string.`, func() {
				So(terr.Error(), ShouldEqual, "test error")
			})

			Convey(`Is transient.`, func() {
				So(IsTransient(terr), ShouldBeTrue)
			})

			Convey(`Remains transient when wrapped again.`, func() {
				So(WrapTransient(terr), ShouldEqual, terr)
			})

			Convey(`Stays visible through fmt wrapping.`, func() {
				So(IsTransient(fmt.Errorf("outer: %w", terr)), ShouldBeTrue)
			})
		})

		Convey(`A MultiError with a transient sub-error is transient.`, func() {
			So(IsTransient(MultiError{nil, WrapTransient(err), err}), ShouldBeTrue)
		})

		Convey(`A MultiError without transient sub-errors is not.`, func() {
			So(IsTransient(MultiError{nil, err}), ShouldBeFalse)
		})
	})
}

func TestMultiError(t *testing.T) {
	t.Parallel()

	Convey(`MultiError`, t, func() {
		Convey(`Empty renders as zero errors.`, func() {
			So(MultiError(nil).Error(), ShouldEqual, "(0 errors)")
		})

		Convey(`A single error renders alone.`, func() {
			So(MultiError{New("boom")}.Error(), ShouldEqual, "boom")
		})

		Convey(`Several errors render with a count.`, func() {
			m := MultiError{New("a"), nil, New("b"), New("c")}
			So(m.Error(), ShouldEqual, "a (and 2 other errors)")
		})

		Convey(`AsError collapses the all-nil case.`, func() {
			So(MultiError{nil, nil}.AsError(), ShouldBeNil)
			So(Append(nil, nil), ShouldBeNil)
			So(Append(nil, New("x")), ShouldNotBeNil)
		})

		Convey(`SingleError unwraps a singleton.`, func() {
			inner := New("inner")
			So(SingleError(MultiError{inner}), ShouldEqual, inner)
			So(SingleError(inner), ShouldEqual, inner)
		})
	})
}
