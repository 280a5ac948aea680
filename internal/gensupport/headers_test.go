// Copyright 2024 The google-apis-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package gensupport

import (
	"net/http"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSetHeaders(t *testing.T) {
	t.Parallel()

	Convey(`SetHeaders assembles the outgoing header set`, t, func() {
		Convey(`Computed headers.`, func() {
			h := SetHeaders("my-agent", "application/json", nil)
			So(h.Get("User-Agent"), ShouldEqual, "my-agent")
			So(h.Get("Content-Type"), ShouldEqual, "application/json")
			So(h.Get("x-goog-api-client"), ShouldStartWith, "gl-go/")
			So(h.Get("x-goog-api-client"), ShouldEndWith, " gdcl/"+Version)
		})

		Convey(`No Content-Type without a request body.`, func() {
			h := SetHeaders("my-agent", "", nil)
			_, ok := h["Content-Type"]
			So(ok, ShouldBeFalse)
		})

		Convey(`User-supplied headers win.`, func() {
			user := http.Header{"User-Agent": {"custom"}, "X-Extra": {"1"}}
			h := SetHeaders("my-agent", "", user)
			So(h.Get("User-Agent"), ShouldEqual, "custom")
			So(h.Get("X-Extra"), ShouldEqual, "1")
		})
	})
}
