// Copyright 2024 The google-apis-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package internal holds the token providers and the token cache used by the
// auth package.
package internal

import (
	"sort"
	"strings"

	"golang.org/x/oauth2"

	"github.com/dermesser/google-apis-go/common/errors"
)

// ErrBadRefreshToken is returned by RefreshToken if the refresh token was
// revoked or otherwise rejected by the authorization server. The caller is
// expected to forget the cached token and relogin.
var ErrBadRefreshToken = errors.New("refresh_token is not valid")

// TokenProvider knows how to mint new tokens and refresh existing ones.
type TokenProvider interface {
	// RequiresInteraction is true if MintToken needs to talk to a user.
	RequiresInteraction() bool

	// CacheKey identifies the slot in the token cache where tokens produced by
	// this provider are stored.
	CacheKey() *CacheKey

	// MintToken produces a new token, possibly interacting with a user.
	MintToken() (*oauth2.Token, error)

	// RefreshToken exchanges a refresh token for a fresh access token.
	RefreshToken(tok *oauth2.Token) (*oauth2.Token, error)
}

// TokenCache stores tokens between program runs.
type TokenCache interface {
	GetToken(key *CacheKey) (*oauth2.Token, error)
	PutToken(key *CacheKey, tok *oauth2.Token) error
	DeleteToken(key *CacheKey) error
}

// CacheKey identifies a slot in the token cache. Two providers that produce
// interchangeable tokens (same credentials, same scopes) map to the same key.
type CacheKey struct {
	// Key identifies the credentials used to mint tokens.
	Key string `json:"key"`
	// Scopes is the list of OAuth scopes the token is good for.
	Scopes []string `json:"scopes,omitempty"`
}

// ToMapKey returns a string usable as a map key or a file name fragment.
// Scope order does not matter: the scopes are sorted before joining.
func (k *CacheKey) ToMapKey() string {
	scopes := append([]string(nil), k.Scopes...)
	sort.Strings(scopes)
	return k.Key + "|" + strings.Join(scopes, "|")
}

// EqualCacheKeys returns true if keys identify the same cache slot.
func EqualCacheKeys(a, b *CacheKey) bool {
	return a == b || (a != nil && b != nil && a.ToMapKey() == b.ToMapKey())
}

// isBadTokenError sniffs out HTTP 400 and 401 responses from the token
// endpoint, which indicate a revoked or malformed refresh token.
func isBadTokenError(err error) bool {
	if rerr, ok := err.(*oauth2.RetrieveError); ok {
		return rerr.Response.StatusCode == 400 || rerr.Response.StatusCode == 401
	}
	return false
}
