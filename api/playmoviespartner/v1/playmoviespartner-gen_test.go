// Copyright 2024 The google-apis-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package playmoviespartner

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"google.golang.org/api/googleapi"

	"github.com/dermesser/google-apis-go/common/retry"

	. "github.com/smartystreets/goconvey/convey"
)

func newTestService(h http.HandlerFunc) (*Service, *httptest.Server) {
	srv := httptest.NewServer(h)
	s, err := New(srv.Client())
	if err != nil {
		panic(err)
	}
	s.BasePath = srv.URL + "/"
	return s, srv
}

func TestOrdersCalls(t *testing.T) {
	t.Parallel()

	Convey(`Orders calls against a test server`, t, func() {
		var gotPath string
		var gotQuery map[string][]string

		s, srv := newTestService(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotQuery = r.URL.Query()
			switch r.URL.Path {
			case "/v1/accounts/acc-1/orders/ord-9":
				json.NewEncoder(w).Encode(&Order{OrderId: "ord-9", Name: "Googlers, The"})
			case "/v1/accounts/acc-1/orders":
				json.NewEncoder(w).Encode(&ListOrdersResponse{
					Orders:    []*Order{{OrderId: "a"}, {OrderId: "b"}},
					TotalSize: 2,
				})
			default:
				http.Error(w, `{"error":{"code":404,"message":"not found"}}`, 404)
			}
		})
		defer srv.Close()

		Convey(`Get expands path parameters and decodes the response.`, func() {
			order, err := s.Accounts.Orders.Get("acc-1", "ord-9").Do()
			So(err, ShouldBeNil)
			So(gotPath, ShouldEqual, "/v1/accounts/acc-1/orders/ord-9")
			So(order.OrderId, ShouldEqual, "ord-9")
			So(order.Name, ShouldEqual, "Googlers, The")
			So(order.HTTPStatusCode, ShouldEqual, 200)
		})

		Convey(`List carries optional and repeated query parameters.`, func() {
			_, err := s.Accounts.Orders.List("acc-1").
				PageSize(5).
				Status("STATUS_PROCESSING", "STATUS_COMPLETED").
				CustomId("GOOGLER_2006").
				Context(context.Background()).
				Do()
			So(err, ShouldBeNil)
			So(gotPath, ShouldEqual, "/v1/accounts/acc-1/orders")
			So(gotQuery["pageSize"], ShouldResemble, []string{"5"})
			So(gotQuery["status"], ShouldResemble, []string{"STATUS_PROCESSING", "STATUS_COMPLETED"})
			So(gotQuery["customId"], ShouldResemble, []string{"GOOGLER_2006"})
			So(gotQuery["alt"], ShouldResemble, []string{"json"})
			So(gotQuery["prettyPrint"], ShouldResemble, []string{"false"})
		})

		Convey(`Call options can override the prettyPrint default.`, func() {
			_, err := s.Accounts.Orders.Get("acc-1", "ord-9").
				Do(googleapi.QueryParameter("prettyPrint", "true"))
			So(err, ShouldBeNil)
			So(gotQuery["prettyPrint"], ShouldResemble, []string{"true"})
		})

		Convey(`A missing order surfaces as a googleapi.Error.`, func() {
			_, err := s.Accounts.Orders.Get("acc-1", "nope").Do()
			So(err, ShouldNotBeNil)
			var gerr *googleapi.Error
			So(func() { gerr = err.(*googleapi.Error) }, ShouldNotPanic)
			So(gerr.Code, ShouldEqual, 404)
		})
	})
}

func TestAvailsPaging(t *testing.T) {
	t.Parallel()

	Convey(`Avails list pages through results`, t, func() {
		var pageTokens []string
		s, srv := newTestService(func(w http.ResponseWriter, r *http.Request) {
			tok := r.URL.Query().Get("pageToken")
			pageTokens = append(pageTokens, tok)
			resp := &ListAvailsResponse{Avails: []*Avail{{AvailId: "av-" + tok}}}
			if tok == "" {
				resp.NextPageToken = "t2"
			}
			json.NewEncoder(w).Encode(resp)
		})
		defer srv.Close()

		var got []*Avail
		err := s.Accounts.Avails.List("acc-1").Pages(context.Background(), func(p *ListAvailsResponse) error {
			got = append(got, p.Avails...)
			return nil
		})
		So(err, ShouldBeNil)
		So(pageTokens, ShouldResemble, []string{"", "t2"})
		So(got, ShouldHaveLength, 2)
	})
}

func TestStoreInfosCountryGet(t *testing.T) {
	t.Parallel()

	Convey(`StoreInfos country get hits the nested path`, t, func() {
		s, srv := newTestService(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/v1/accounts/acc/storeInfos/vid/country/US" {
				http.Error(w, "wrong path "+r.URL.Path, 500)
				return
			}
			json.NewEncoder(w).Encode(&StoreInfo{VideoId: "vid", Country: "US"})
		})
		defer srv.Close()

		si, err := s.Accounts.StoreInfos.Country.Get("acc", "vid", "US").Do()
		So(err, ShouldBeNil)
		So(si.VideoId, ShouldEqual, "vid")
		So(si.Country, ShouldEqual, "US")
	})
}

func TestIfNoneMatch(t *testing.T) {
	t.Parallel()

	Convey(`An If-None-Match hit returns a 304 error`, t, func() {
		s, srv := newTestService(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("If-None-Match") == `"tag-1"` {
				w.WriteHeader(http.StatusNotModified)
				return
			}
			json.NewEncoder(w).Encode(&Order{OrderId: "ord-9"})
		})
		defer srv.Close()

		Convey(`With a matching entity tag.`, func() {
			_, err := s.Accounts.Orders.Get("acc-1", "ord-9").IfNoneMatch(`"tag-1"`).Do()
			So(err, ShouldNotBeNil)
			So(googleapi.IsNotModified(err), ShouldBeTrue)
			var gerr *googleapi.Error
			So(func() { gerr = err.(*googleapi.Error) }, ShouldNotPanic)
			So(gerr.Code, ShouldEqual, http.StatusNotModified)
		})

		Convey(`With a stale entity tag.`, func() {
			order, err := s.Accounts.Orders.Get("acc-1", "ord-9").IfNoneMatch(`"old"`).Do()
			So(err, ShouldBeNil)
			So(order.OrderId, ShouldEqual, "ord-9")
		})
	})
}

func TestServiceRetry(t *testing.T) {
	t.Parallel()

	Convey(`A service with a retry plan retries transient failures`, t, func() {
		calls := 0
		s, srv := newTestService(func(w http.ResponseWriter, r *http.Request) {
			calls++
			if calls < 3 {
				http.Error(w, "unavailable", http.StatusServiceUnavailable)
				return
			}
			fmt.Fprint(w, `{"orderId":"ord"}`)
		})
		defer srv.Close()

		s.Retry = func(context.Context) retry.Iterator {
			return &retry.Limited{Delay: time.Millisecond, Retries: 5}
		}

		order, err := s.Accounts.Orders.Get("a", "ord").Do()
		So(err, ShouldBeNil)
		So(order.OrderId, ShouldEqual, "ord")
		So(calls, ShouldEqual, 3)
	})
}
