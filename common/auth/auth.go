// Copyright 2024 The google-apis-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package auth implements an opinionated wrapper around OAuth2 for
// command-line tools that talk to Google APIs.
//
// It hides the differences between user-interactive login flows and service
// account keys behind a single Authenticator type, and caches refresh tokens
// on disk so that a user logs in once per machine, not once per invocation.
package auth

import (
	"context"
	"net/http"
	"sync"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"golang.org/x/oauth2"

	"github.com/dermesser/google-apis-go/common/auth/internal"
	"github.com/dermesser/google-apis-go/common/clock"
	"github.com/dermesser/google-apis-go/common/errors"
	"github.com/dermesser/google-apis-go/common/logging"
)

var (
	// ErrLoginRequired is returned by Client() when a login is required but the
	// login mode forbids interacting with a user.
	ErrLoginRequired = errors.New("interactive login is required")

	// ErrBadCredentials is returned when stored credentials were rejected by
	// the authorization server. Deleting the token cache and logging in again
	// usually helps.
	ErrBadCredentials = errors.New("stored credentials are invalid or revoked")
)

// Method defines a way to obtain OAuth2 tokens.
type Method string

const (
	// AutoSelectMethod lets the authenticator pick a method based on Options.
	AutoSelectMethod Method = ""
	// UserCredentialsMethod uses an interactive 3-legged OAuth flow.
	UserCredentialsMethod Method = "UserCredentialsMethod"
	// ServiceAccountMethod uses a service account private key file.
	ServiceAccountMethod Method = "ServiceAccountMethod"
)

// LoginMode defines how Client() behaves when there are no cached credentials.
type LoginMode string

const (
	// InteractiveLogin instructs the authenticator to run an interactive login
	// flow if there's no cached token.
	InteractiveLogin LoginMode = "InteractiveLogin"
	// SilentLogin makes Client() fail with ErrLoginRequired if there's no
	// cached token.
	SilentLogin LoginMode = "SilentLogin"
	// OptionalLogin makes Client() return a non-authenticating client if
	// there's no cached token. Requests are then sent anonymously.
	OptionalLogin LoginMode = "OptionalLogin"
)

// Default OAuth client credentials for tools in this repository. They identify
// the application on the consent screen, not the user; there is nothing secret
// about an installed-application "secret".
const (
	DefaultClientID     = "620214639292-22e15se6ope2um3vigarrpasgmcvm9c8.apps.googleusercontent.com"
	DefaultClientSecret = "b2mUT9cXmjsysSJyxnDVbExm"

	// DefaultSecretsDirName is the directory under the home directory where
	// the token cache lives by default.
	DefaultSecretsDirName = ".config/google-api-cli"

	// OAuthScopeEmail is a scope requested by default. Having it allows tools
	// to report what account is being used.
	OAuthScopeEmail = "https://www.googleapis.com/auth/userinfo.email"
)

// Options controls what kind of credentials to use and where to cache them.
type Options struct {
	// Transport is the base RoundTripper to use for token and API requests.
	// Defaults to http.DefaultTransport.
	Transport http.RoundTripper

	// Method defaults to ServiceAccountMethod if ServiceAccountJSONPath is
	// set, UserCredentialsMethod otherwise.
	Method Method

	// Scopes to request. Defaults to [OAuthScopeEmail].
	Scopes []string

	// ClientID and ClientSecret identify the OAuth client for the 3-legged
	// user flow. Defaults to DefaultClientID and DefaultClientSecret.
	ClientID     string
	ClientSecret string

	// ServiceAccountJSONPath is a path to a service account key file, as
	// downloaded from the Cloud Console.
	ServiceAccountJSONPath string

	// SecretsDir is where the token cache lives. Defaults to
	// ~/.config/google-api-cli.
	SecretsDir string
}

func (o *Options) populateDefaults() error {
	if o.Transport == nil {
		o.Transport = http.DefaultTransport
	}
	if o.Method == AutoSelectMethod {
		if o.ServiceAccountJSONPath != "" {
			o.Method = ServiceAccountMethod
		} else {
			o.Method = UserCredentialsMethod
		}
	}
	if len(o.Scopes) == 0 {
		o.Scopes = []string{OAuthScopeEmail}
	}
	if o.ClientID == "" {
		o.ClientID = DefaultClientID
	}
	if o.ClientSecret == "" {
		o.ClientSecret = DefaultClientSecret
	}
	if o.SecretsDir == "" {
		home, err := homedir.Dir()
		if err != nil {
			return err
		}
		o.SecretsDir = home + "/" + DefaultSecretsDirName
	}
	return nil
}

// Authenticator produces authenticating http.Clients and manages the token
// cache. It is safe for concurrent use.
type Authenticator struct {
	ctx       context.Context
	loginMode LoginMode
	opts      *Options

	lock     sync.Mutex
	err      error // sticky initialization error
	provider internal.TokenProvider
	cache    internal.TokenCache
	token    *oauth2.Token // in-memory copy of the cached token
}

// NewAuthenticator returns a new instance of Authenticator given its options.
func NewAuthenticator(ctx context.Context, loginMode LoginMode, opts Options) *Authenticator {
	a := &Authenticator{ctx: ctx, loginMode: loginMode, opts: &opts}
	a.err = a.initialize()
	return a
}

func (a *Authenticator) initialize() error {
	if err := a.opts.populateDefaults(); err != nil {
		return err
	}
	var err error
	switch a.opts.Method {
	case UserCredentialsMethod:
		a.provider, err = internal.NewUserAuthTokenProvider(
			a.ctx, a.opts.ClientID, a.opts.ClientSecret, a.opts.Scopes)
	case ServiceAccountMethod:
		a.provider, err = internal.NewServiceAccountTokenProvider(
			a.ctx, a.opts.ServiceAccountJSONPath, a.opts.Scopes)
	default:
		err = errors.New("unrecognized authentication method")
	}
	if err != nil {
		return err
	}
	a.cache = &internal.DiskTokenCache{
		Context:    a.ctx,
		SecretsDir: a.opts.SecretsDir,
	}
	return nil
}

// CheckLoginRequired returns nil if the authenticator can produce tokens
// without user interaction, and ErrLoginRequired otherwise.
func (a *Authenticator) CheckLoginRequired() error {
	a.lock.Lock()
	defer a.lock.Unlock()
	if a.err != nil {
		return a.err
	}
	if !a.provider.RequiresInteraction() {
		return nil
	}
	tok, err := a.cachedToken()
	if err != nil {
		return err
	}
	if tok == nil || tok.RefreshToken == "" {
		return ErrLoginRequired
	}
	return nil
}

// Login runs the interactive login flow (if the method needs one) and stores
// the resulting token in the cache.
func (a *Authenticator) Login() error {
	a.lock.Lock()
	defer a.lock.Unlock()
	if a.err != nil {
		return a.err
	}
	tok, err := a.provider.MintToken()
	if err != nil {
		return err
	}
	a.token = tok
	return a.cache.PutToken(a.provider.CacheKey(), tok)
}

// Logout drops the cached token, if any.
func (a *Authenticator) Logout() error {
	a.lock.Lock()
	defer a.lock.Unlock()
	if a.err != nil {
		return a.err
	}
	a.token = nil
	return a.cache.DeleteToken(a.provider.CacheKey())
}

// GetAccessToken returns a token valid for at least the given duration,
// refreshing or minting one as necessary.
func (a *Authenticator) GetAccessToken(lifetime time.Duration) (*oauth2.Token, error) {
	a.lock.Lock()
	defer a.lock.Unlock()
	return a.getAccessTokenLocked(lifetime)
}

func (a *Authenticator) getAccessTokenLocked(lifetime time.Duration) (*oauth2.Token, error) {
	if a.err != nil {
		return nil, a.err
	}
	if a.token == nil {
		tok, err := a.cachedToken()
		if err != nil {
			return nil, err
		}
		a.token = tok
	}
	if a.token != nil && tokenLivesLongEnough(a.ctx, a.token, lifetime) {
		return a.token, nil
	}

	// Have a stale token. Try to refresh it first.
	if a.token != nil && a.token.RefreshToken != "" {
		logging.Debugf(a.ctx, "Refreshing the access token")
		switch tok, err := a.provider.RefreshToken(a.token); {
		case err == nil:
			a.token = tok
			if err := a.cache.PutToken(a.provider.CacheKey(), tok); err != nil {
				return nil, err
			}
			return tok, nil
		case err == internal.ErrBadRefreshToken:
			// Fall through to minting a new token.
			logging.Warningf(a.ctx, "Cached refresh token was rejected, it will be removed")
			a.token = nil
			if err := a.cache.DeleteToken(a.provider.CacheKey()); err != nil {
				return nil, err
			}
		default:
			return nil, err
		}
	}

	// Minting a brand new token. Respect the login mode if it needs a user.
	if a.provider.RequiresInteraction() && a.loginMode != InteractiveLogin {
		return nil, ErrLoginRequired
	}
	tok, err := a.provider.MintToken()
	if err != nil {
		return nil, err
	}
	a.token = tok
	if err := a.cache.PutToken(a.provider.CacheKey(), tok); err != nil {
		return nil, err
	}
	return tok, nil
}

func tokenLivesLongEnough(ctx context.Context, tok *oauth2.Token, lifetime time.Duration) bool {
	if tok.AccessToken == "" {
		return false
	}
	if tok.Expiry.IsZero() {
		return true
	}
	return clock.Until(ctx, tok.Expiry) > lifetime
}

func (a *Authenticator) cachedToken() (*oauth2.Token, error) {
	return a.cache.GetToken(a.provider.CacheKey())
}

// TokenSource returns an oauth2.TokenSource bound to this authenticator.
func (a *Authenticator) TokenSource() oauth2.TokenSource {
	return tokenSource{a}
}

type tokenSource struct {
	a *Authenticator
}

func (s tokenSource) Token() (*oauth2.Token, error) {
	return s.a.GetAccessToken(time.Minute)
}

// Client returns an http.Client that attaches access tokens to requests.
//
// How a missing token is handled depends on the login mode: InteractiveLogin
// runs the login flow on first use, SilentLogin returns ErrLoginRequired, and
// OptionalLogin returns a plain non-authenticating client.
func (a *Authenticator) Client() (*http.Client, error) {
	switch err := a.CheckLoginRequired(); {
	case err == nil:
		// Have cached credentials (or don't need any interaction).
	case err == ErrLoginRequired && a.loginMode == InteractiveLogin:
		if err := a.Login(); err != nil {
			return nil, err
		}
	case err == ErrLoginRequired && a.loginMode == OptionalLogin:
		logging.Debugf(a.ctx, "Not logged in, using anonymous client")
		return &http.Client{Transport: a.opts.Transport}, nil
	default:
		return nil, err
	}
	return &http.Client{
		Transport: &oauth2.Transport{
			Base:   a.opts.Transport,
			Source: a.TokenSource(),
		},
	}, nil
}
