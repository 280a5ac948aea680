// Copyright 2024 The google-apis-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package auth

import (
	"context"
	"testing"
	"time"

	"golang.org/x/oauth2"

	"github.com/dermesser/google-apis-go/common/auth/internal"
	"github.com/dermesser/google-apis-go/common/clock"
	"github.com/dermesser/google-apis-go/common/clock/testclock"

	. "github.com/smartystreets/goconvey/convey"
)

// fakeTokenProvider implements internal.TokenProvider for tests.
type fakeTokenProvider struct {
	interactive  bool
	mintedTok    *oauth2.Token
	mintErr      error
	refreshedTok *oauth2.Token
	refreshErr   error
	mintCalls    int
	refreshCalls int
}

func (p *fakeTokenProvider) RequiresInteraction() bool {
	return p.interactive
}

func (p *fakeTokenProvider) CacheKey() *internal.CacheKey {
	return &internal.CacheKey{Key: "fake", Scopes: []string{"scope"}}
}

func (p *fakeTokenProvider) MintToken() (*oauth2.Token, error) {
	p.mintCalls++
	return p.mintedTok, p.mintErr
}

func (p *fakeTokenProvider) RefreshToken(tok *oauth2.Token) (*oauth2.Token, error) {
	p.refreshCalls++
	return p.refreshedTok, p.refreshErr
}

// memTokenCache implements internal.TokenCache in memory.
type memTokenCache struct {
	tokens map[string]*oauth2.Token
}

func newMemTokenCache() *memTokenCache {
	return &memTokenCache{tokens: map[string]*oauth2.Token{}}
}

func (c *memTokenCache) GetToken(key *internal.CacheKey) (*oauth2.Token, error) {
	return c.tokens[key.ToMapKey()], nil
}

func (c *memTokenCache) PutToken(key *internal.CacheKey, tok *oauth2.Token) error {
	c.tokens[key.ToMapKey()] = tok
	return nil
}

func (c *memTokenCache) DeleteToken(key *internal.CacheKey) error {
	delete(c.tokens, key.ToMapKey())
	return nil
}

func newTestAuthenticator(ctx context.Context, mode LoginMode, p internal.TokenProvider, cache internal.TokenCache) *Authenticator {
	opts := &Options{}
	opts.populateDefaults()
	return &Authenticator{
		ctx:       ctx,
		loginMode: mode,
		opts:      opts,
		provider:  p,
		cache:     cache,
	}
}

func TestAuthenticator(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ctx, tc := testclock.UseTime(ctx, testclock.TestTimeUTC)

	Convey(`With a non-interactive provider`, t, func() {
		p := &fakeTokenProvider{
			mintedTok: &oauth2.Token{
				AccessToken: "minted",
				Expiry:      clock.Now(ctx).Add(time.Hour),
			},
		}
		a := newTestAuthenticator(ctx, SilentLogin, p, newMemTokenCache())

		Convey(`No login is ever required.`, func() {
			So(a.CheckLoginRequired(), ShouldBeNil)
		})

		Convey(`GetAccessToken mints and caches a token.`, func() {
			tok, err := a.GetAccessToken(time.Minute)
			So(err, ShouldBeNil)
			So(tok.AccessToken, ShouldEqual, "minted")
			So(p.mintCalls, ShouldEqual, 1)

			// A second call uses the cached copy.
			tok, err = a.GetAccessToken(time.Minute)
			So(err, ShouldBeNil)
			So(p.mintCalls, ShouldEqual, 1)
		})

		Convey(`An expiring token is replaced.`, func() {
			_, err := a.GetAccessToken(time.Minute)
			So(err, ShouldBeNil)
			tc.Add(time.Hour)
			_, err = a.GetAccessToken(time.Minute)
			So(err, ShouldBeNil)
			So(p.mintCalls, ShouldEqual, 2)
		})
	})

	Convey(`With an interactive provider`, t, func() {
		p := &fakeTokenProvider{
			interactive: true,
			mintedTok: &oauth2.Token{
				AccessToken:  "minted",
				RefreshToken: "refresh",
				Expiry:       clock.Now(ctx).Add(time.Hour),
			},
			refreshedTok: &oauth2.Token{
				AccessToken:  "refreshed",
				RefreshToken: "refresh",
				Expiry:       clock.Now(ctx).Add(2 * time.Hour),
			},
		}
		cache := newMemTokenCache()

		Convey(`SilentLogin fails without a cached token.`, func() {
			a := newTestAuthenticator(ctx, SilentLogin, p, cache)
			So(a.CheckLoginRequired(), ShouldEqual, ErrLoginRequired)
			_, err := a.GetAccessToken(time.Minute)
			So(err, ShouldEqual, ErrLoginRequired)
		})

		Convey(`Login stores the token, later calls refresh it.`, func() {
			a := newTestAuthenticator(ctx, SilentLogin, p, cache)
			So(a.Login(), ShouldBeNil)
			So(a.CheckLoginRequired(), ShouldBeNil)

			tok, err := a.GetAccessToken(time.Minute)
			So(err, ShouldBeNil)
			So(tok.AccessToken, ShouldEqual, "minted")

			tc.Add(2 * time.Hour)
			tok, err = a.GetAccessToken(time.Minute)
			So(err, ShouldBeNil)
			So(tok.AccessToken, ShouldEqual, "refreshed")
			So(p.refreshCalls, ShouldEqual, 1)
		})

		Convey(`A rejected refresh token with SilentLogin asks for relogin.`, func() {
			a := newTestAuthenticator(ctx, SilentLogin, p, cache)
			So(a.Login(), ShouldBeNil)
			tc.Add(2 * time.Hour)
			p.refreshErr = internal.ErrBadRefreshToken
			p.refreshedTok = nil
			_, err := a.GetAccessToken(time.Minute)
			So(err, ShouldEqual, ErrLoginRequired)
		})

		Convey(`Logout drops the cached token.`, func() {
			a := newTestAuthenticator(ctx, SilentLogin, p, cache)
			So(a.Login(), ShouldBeNil)
			So(a.Logout(), ShouldBeNil)
			So(a.CheckLoginRequired(), ShouldEqual, ErrLoginRequired)
		})
	})
}
