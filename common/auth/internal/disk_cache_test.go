// Copyright 2024 The google-apis-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package internal

import (
	"context"
	"testing"
	"time"

	"golang.org/x/oauth2"

	"github.com/dermesser/google-apis-go/common/clock"
	"github.com/dermesser/google-apis-go/common/clock/testclock"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCacheKey(t *testing.T) {
	t.Parallel()

	Convey(`Scope order does not matter`, t, func() {
		a := &CacheKey{Key: "user/id", Scopes: []string{"scope-b", "scope-a"}}
		b := &CacheKey{Key: "user/id", Scopes: []string{"scope-a", "scope-b"}}
		So(EqualCacheKeys(a, b), ShouldBeTrue)
		So(a.ToMapKey(), ShouldEqual, "user/id|scope-a|scope-b")
	})

	Convey(`Different credentials differ`, t, func() {
		a := &CacheKey{Key: "user/id1", Scopes: []string{"s"}}
		b := &CacheKey{Key: "user/id2", Scopes: []string{"s"}}
		So(EqualCacheKeys(a, b), ShouldBeFalse)
	})
}

func TestDiskTokenCache(t *testing.T) {
	t.Parallel()

	tmp := t.TempDir()

	ctx := context.Background()
	ctx, tc := testclock.UseTime(ctx, testclock.TestTimeUTC)

	Convey(`DiskTokenCache round-trips tokens`, t, func() {
		cache := &DiskTokenCache{
			Context:    ctx,
			SecretsDir: tmp,
		}
		key := &CacheKey{Key: "user/cid", Scopes: []string{"scope"}}

		tok, err := cache.GetToken(key)
		So(err, ShouldBeNil)
		So(tok, ShouldBeNil)

		So(cache.PutToken(key, &oauth2.Token{
			AccessToken:  "abc",
			RefreshToken: "def",
			Expiry:       clock.Now(ctx).Add(time.Hour),
		}), ShouldBeNil)

		tok, err = cache.GetToken(key)
		So(err, ShouldBeNil)
		So(tok.AccessToken, ShouldEqual, "abc")
		So(tok.RefreshToken, ShouldEqual, "def")

		So(cache.DeleteToken(key), ShouldBeNil)
		tok, err = cache.GetToken(key)
		So(err, ShouldBeNil)
		So(tok, ShouldBeNil)
	})

	Convey(`Cleans up old tokens`, t, func() {
		cache := &DiskTokenCache{
			Context:    ctx,
			SecretsDir: tmp,
		}

		cache.PutToken(&CacheKey{Key: "a"}, &oauth2.Token{
			AccessToken: "abc",
			Expiry:      clock.Now(ctx),
		})
		cache.PutToken(&CacheKey{Key: "b"}, &oauth2.Token{
			AccessToken:  "abc",
			RefreshToken: "def",
			Expiry:       clock.Now(ctx),
		})

		// GCAccessTokenMaxAge later, "a" is gone while the cache is updated.
		tc.Add(GCAccessTokenMaxAge)
		unused := &oauth2.Token{
			AccessToken: "zzz",
			Expiry:      clock.Now(ctx).Add(365 * 24 * time.Hour),
		}
		cache.PutToken(&CacheKey{Key: "unused"}, unused)

		tok, err := cache.GetToken(&CacheKey{Key: "a"})
		So(err, ShouldBeNil)
		So(tok, ShouldBeNil)

		// "b" is still there.
		tok, err = cache.GetToken(&CacheKey{Key: "b"})
		So(err, ShouldBeNil)
		So(tok.RefreshToken, ShouldEqual, "def")

		// Some time later "b" is also removed.
		tc.Add(GCRefreshTokenMaxAge)
		cache.PutToken(&CacheKey{Key: "unused"}, unused)

		tok, err = cache.GetToken(&CacheKey{Key: "b"})
		So(err, ShouldBeNil)
		So(tok, ShouldBeNil)
	})
}
