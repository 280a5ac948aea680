// Copyright 2024 The google-apis-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package internal

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"

	"github.com/dermesser/google-apis-go/common/errors"
	"github.com/dermesser/google-apis-go/common/logging"
)

type serviceAccountTokenProvider struct {
	ctx    context.Context
	config *jwt.Config
}

// NewServiceAccountTokenProvider returns a TokenProvider that uses a service
// account private key (from a JSON key file) to mint tokens directly, without
// any user interaction.
func NewServiceAccountTokenProvider(ctx context.Context, keyPath string, scopes []string) (TokenProvider, error) {
	blob, err := os.ReadFile(keyPath)
	if err != nil {
		return nil, err
	}
	config, err := google.JWTConfigFromJSON(blob, scopes...)
	if err != nil {
		return nil, errors.Reason("bad service account key %q: %w", keyPath, err)
	}
	return &serviceAccountTokenProvider{ctx: ctx, config: config}, nil
}

func (p *serviceAccountTokenProvider) RequiresInteraction() bool {
	return false
}

func (p *serviceAccountTokenProvider) CacheKey() *CacheKey {
	return &CacheKey{
		Key:    fmt.Sprintf("service_account/%s", p.config.Email),
		Scopes: p.config.Scopes,
	}
}

func (p *serviceAccountTokenProvider) MintToken() (*oauth2.Token, error) {
	switch tok, err := p.config.TokenSource(p.ctx).Token(); {
	case isBadTokenError(err):
		logging.Warningf(p.ctx, "Invalid or revoked service account key - %s", err)
		return nil, ErrBadRefreshToken
	case err != nil:
		logging.Warningf(p.ctx, "Error when minting service account token - %s", err)
		return nil, err
	default:
		return tok, nil
	}
}

func (p *serviceAccountTokenProvider) RefreshToken(tok *oauth2.Token) (*oauth2.Token, error) {
	// JWT tokens are self-sufficient: a "refresh" is just a new token.
	return p.MintToken()
}
