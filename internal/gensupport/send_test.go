// Copyright 2024 The google-apis-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package gensupport

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"google.golang.org/api/googleapi"

	"github.com/dermesser/google-apis-go/common/clock/testclock"
	"github.com/dermesser/google-apis-go/common/retry"

	. "github.com/smartystreets/goconvey/convey"
)

func limitedFactory(retries int) retry.Factory {
	return func(context.Context) retry.Iterator {
		return &retry.TransientOnly{Iterator: &retry.Limited{Delay: time.Millisecond, Retries: retries}}
	}
}

func TestSendRequest(t *testing.T) {
	t.Parallel()

	Convey(`SendRequest against a test server`, t, func() {
		ctx, _ := testclock.UseTime(context.Background(), testclock.TestTimeUTC)

		var calls int
		var handler func(w http.ResponseWriter, r *http.Request)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			handler(w, r)
		}))
		defer srv.Close()

		newReq := func(body string) *http.Request {
			var rdr io.Reader
			if body != "" {
				rdr = strings.NewReader(body)
			}
			req, err := http.NewRequest("POST", srv.URL+"/call", rdr)
			So(err, ShouldBeNil)
			return req
		}

		Convey(`Returns a successful response unchanged.`, func() {
			handler = func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"ok":true}`))
			}

			resp, err := SendRequest(ctx, srv.Client(), newReq(""), nil)
			So(err, ShouldBeNil)
			defer googleapi.CloseBody(resp)
			So(resp.StatusCode, ShouldEqual, 200)
			So(calls, ShouldEqual, 1)
		})

		Convey(`Without a retry factory, a 500 is returned after one attempt.`, func() {
			handler = func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			}

			resp, err := SendRequest(ctx, srv.Client(), newReq(""), nil)
			So(err, ShouldBeNil)
			defer googleapi.CloseBody(resp)
			So(resp.StatusCode, ShouldEqual, 500)
			So(calls, ShouldEqual, 1)
			So(googleapi.CheckResponse(resp), ShouldNotBeNil)
		})

		Convey(`Retries transient statuses until success, resending the body.`, func() {
			var bodies []string
			handler = func(w http.ResponseWriter, r *http.Request) {
				b, _ := io.ReadAll(r.Body)
				bodies = append(bodies, string(b))
				if calls < 3 {
					http.Error(w, "unavailable", http.StatusServiceUnavailable)
					return
				}
				w.Write([]byte(`{"ok":true}`))
			}

			resp, err := SendRequest(ctx, srv.Client(), newReq(`{"req":1}`), limitedFactory(5))
			So(err, ShouldBeNil)
			defer googleapi.CloseBody(resp)
			So(resp.StatusCode, ShouldEqual, 200)
			So(calls, ShouldEqual, 3)
			So(bodies, ShouldResemble, []string{`{"req":1}`, `{"req":1}`, `{"req":1}`})
		})

		Convey(`Retries 429 and gives the last response back when exhausted.`, func() {
			handler = func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "slow down", http.StatusTooManyRequests)
			}

			resp, err := SendRequest(ctx, srv.Client(), newReq(""), limitedFactory(2))
			So(err, ShouldBeNil)
			defer googleapi.CloseBody(resp)
			So(resp.StatusCode, ShouldEqual, 429)
			So(calls, ShouldEqual, 3)
		})

		Convey(`Does not retry client errors.`, func() {
			handler = func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "bad", http.StatusBadRequest)
			}

			resp, err := SendRequest(ctx, srv.Client(), newReq(""), limitedFactory(5))
			So(err, ShouldBeNil)
			defer googleapi.CloseBody(resp)
			So(resp.StatusCode, ShouldEqual, 400)
			So(calls, ShouldEqual, 1)
		})

		Convey(`A canceled context aborts before sending.`, func() {
			cctx, cancel := context.WithCancel(ctx)
			cancel()

			_, err := SendRequest(cctx, srv.Client(), newReq(""), nil)
			So(err, ShouldEqual, context.Canceled)
			So(calls, ShouldEqual, 0)
		})
	})
}
