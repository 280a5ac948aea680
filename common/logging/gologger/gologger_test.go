// Copyright 2024 The google-apis-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package gologger

import (
	"bytes"
	"context"
	"testing"

	gol "github.com/op/go-logging"

	"github.com/dermesser/google-apis-go/common/logging"

	. "github.com/smartystreets/goconvey/convey"
)

func TestGoLogger(t *testing.T) {
	Convey(`A go-logging logger installed in a context`, t, func() {
		buf := bytes.Buffer{}
		lc := LoggerConfig{
			Format: `[%{level:.4s}] %{message}`,
			Out:    &buf,
			Level:  gol.INFO,
		}
		ctx := lc.Use(context.Background())

		Convey(`Formats and writes messages.`, func() {
			logging.Infof(ctx, "hello, %s", "world")
			So(buf.String(), ShouldContainSubstring, "[INFO] hello, world")
		})

		Convey(`Respects the configured level.`, func() {
			logging.Debugf(ctx, "should not appear")
			So(buf.String(), ShouldBeEmpty)

			logging.Errorf(ctx, "should appear")
			So(buf.String(), ShouldContainSubstring, "[ERRO] should appear")
		})
	})

	Convey(`A context without a logger swallows messages.`, t, func() {
		So(func() { logging.Infof(context.Background(), "into the void") }, ShouldNotPanic)
	})

	Convey(`NewLogger builds a leveled logger directly.`, t, func() {
		buf := bytes.Buffer{}
		l := NewLogger(&buf, gol.WARNING)

		l.Debugf("should not appear")
		So(buf.String(), ShouldBeEmpty)

		l.Warningf("watch out for %s", "geese")
		So(buf.String(), ShouldContainSubstring, "watch out for geese")
	})
}
