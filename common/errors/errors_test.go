// Copyright 2024 The google-apis-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package errors

import (
	"errors"
	"os"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestReason(t *testing.T) {
	t.Parallel()

	Convey(`Reason formats and wraps`, t, func() {
		err := Reason("bad key %q: %w", "k.json", os.ErrNotExist)
		So(err.Error(), ShouldEqual, `bad key "k.json": file does not exist`)
		So(errors.Is(err, os.ErrNotExist), ShouldBeTrue)
	})
}

func TestMultiErrorReporting(t *testing.T) {
	t.Parallel()

	Convey(`MultiError reporting`, t, func() {
		Convey(`Append drops nils and empty sets.`, func() {
			So(Append(nil, nil), ShouldBeNil)
			err := Append(nil, New("a"), New("b"))
			So(err.Error(), ShouldEqual, "a (and 1 other errors)")
		})

		Convey(`SingleError unwraps a one-element MultiError.`, func() {
			inner := New("inner")
			So(SingleError(Append(inner)), ShouldEqual, inner)
			So(SingleError(inner), ShouldEqual, inner)
		})
	})
}
