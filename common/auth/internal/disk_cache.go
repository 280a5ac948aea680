// Copyright 2024 The google-apis-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package internal

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/oauth2"

	"github.com/dermesser/google-apis-go/common/clock"
	"github.com/dermesser/google-apis-go/common/logging"
	"github.com/dermesser/google-apis-go/common/retry"
)

const (
	// GCAccessTokenMaxAge is how long to keep a token without a refresh token
	// in the cache before garbage collecting it.
	GCAccessTokenMaxAge = 2 * time.Hour

	// GCRefreshTokenMaxAge is how long to keep a token that carries a refresh
	// token. Refresh tokens do not expire on their own, but unused slots should
	// not live forever.
	GCRefreshTokenMaxAge = 14 * 24 * time.Hour

	tokensFileName = "tokens.json"
)

// DiskTokenCache implements TokenCache on top of a JSON file in SecretsDir.
//
// The file holds tokens for all cache keys together. Garbage collection of
// stale entries happens as a side effect of PutToken.
type DiskTokenCache struct {
	Context    context.Context // for logging and clock
	SecretsDir string
}

type cacheFile struct {
	Cache      []*cacheFileEntry `json:"cache"`
	LastUpdate time.Time         `json:"last_update"`
}

type cacheFileEntry struct {
	Key        CacheKey     `json:"key"`
	Token      oauth2.Token `json:"token"`
	LastUpdate time.Time    `json:"last_update"`
}

func (e *cacheFileEntry) isOld(ctx context.Context) bool {
	maxAge := GCAccessTokenMaxAge
	if e.Token.RefreshToken != "" {
		maxAge = GCRefreshTokenMaxAge
	}
	return clock.Since(ctx, e.LastUpdate.Round(0)) >= maxAge
}

func (c *DiskTokenCache) absPath() string {
	return filepath.Join(c.SecretsDir, tokensFileName)
}

// readCacheFile loads the file with cached tokens. A missing or corrupt file
// is treated as empty: tokens are a cache, losing them only costs a relogin.
func (c *DiskTokenCache) readCacheFile() (*cacheFile, error) {
	blob, err := os.ReadFile(c.absPath())
	switch {
	case os.IsNotExist(err):
		return &cacheFile{}, nil
	case err != nil:
		return nil, err
	}
	cache := &cacheFile{}
	if err := json.Unmarshal(blob, cache); err != nil {
		logging.Warningf(c.Context, "The token cache %s is broken: %s", c.absPath(), err)
		return &cacheFile{}, nil
	}
	return cache, nil
}

// writeCacheFile overwrites the file with cached tokens.
//
// The write is made through a temp file and a rename. On some file systems
// the rename can fail spuriously when another process holds the file open, so
// it is retried a few times.
func (c *DiskTokenCache) writeCacheFile(cache *cacheFile) error {
	if err := os.MkdirAll(c.SecretsDir, 0700); err != nil {
		return err
	}
	blob, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return err
	}
	return retry.Retry(c.Context, writeRetryFactory, func() error {
		tmp, err := os.CreateTemp(c.SecretsDir, tokensFileName)
		if err != nil {
			return err
		}
		name := tmp.Name()
		if _, err := tmp.Write(blob); err != nil {
			tmp.Close()
			os.Remove(name)
			return err
		}
		if err := tmp.Close(); err != nil {
			os.Remove(name)
			return err
		}
		if err := os.Rename(name, c.absPath()); err != nil {
			os.Remove(name)
			return err
		}
		return os.Chmod(c.absPath(), 0600)
	}, nil)
}

func writeRetryFactory(ctx context.Context) retry.Iterator {
	return &retry.Limited{
		Delay:   10 * time.Millisecond,
		Retries: 5,
	}
}

// GetToken returns the cached token for the given key or nil if there's none.
func (c *DiskTokenCache) GetToken(key *CacheKey) (*oauth2.Token, error) {
	cache, err := c.readCacheFile()
	if err != nil {
		return nil, err
	}
	for _, entry := range cache.Cache {
		if EqualCacheKeys(&entry.Key, key) {
			tok := entry.Token
			return &tok, nil
		}
	}
	return nil, nil
}

// PutToken stores the token under the given key and garbage collects stale
// entries while at it.
func (c *DiskTokenCache) PutToken(key *CacheKey, tok *oauth2.Token) error {
	cache, err := c.readCacheFile()
	if err != nil {
		return err
	}
	now := clock.Now(c.Context).UTC()

	updated := false
	for _, entry := range cache.Cache {
		if EqualCacheKeys(&entry.Key, key) {
			entry.Token = *tok
			entry.LastUpdate = now
			updated = true
			break
		}
	}
	if !updated {
		cache.Cache = append(cache.Cache, &cacheFileEntry{
			Key:        *key,
			Token:      *tok,
			LastUpdate: now,
		})
	}

	kept := cache.Cache[:0]
	for _, entry := range cache.Cache {
		if !entry.isOld(c.Context) {
			kept = append(kept, entry)
		}
	}
	cache.Cache = kept
	cache.LastUpdate = now
	return c.writeCacheFile(cache)
}

// DeleteToken removes the token under the given key, if any.
func (c *DiskTokenCache) DeleteToken(key *CacheKey) error {
	cache, err := c.readCacheFile()
	if err != nil {
		return err
	}
	for i, entry := range cache.Cache {
		if EqualCacheKeys(&entry.Key, key) {
			cache.Cache = append(cache.Cache[:i], cache.Cache[i+1:]...)
			cache.LastUpdate = clock.Now(c.Context).UTC()
			return c.writeCacheFile(cache)
		}
	}
	return nil
}
