// Copyright 2024 The google-apis-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package gensupport

import (
	"testing"

	"google.golang.org/api/googleapi"
)

func TestURLParams(t *testing.T) {
	t.Parallel()

	u := make(URLParams)
	u.Set("alt", "json")
	u.Set("alt", "media")
	u.SetMulti("fields", []string{"a", "b"})

	if got := u.Get("alt"); got != "media" {
		t.Errorf("Get(alt) = %q, want media", got)
	}
	if got := u.Get("missing"); got != "" {
		t.Errorf("Get(missing) = %q, want empty", got)
	}
	if got := u.Encode(); got != "alt=media&fields=a&fields=b" {
		t.Errorf("Encode() = %q", got)
	}
}

func TestSetOptions(t *testing.T) {
	t.Parallel()

	u := make(URLParams)
	SetOptions(u, googleapi.QuotaUser("alice"), googleapi.Trace("token"))
	if got := u.Get("quotaUser"); got != "alice" {
		t.Errorf("quotaUser = %q", got)
	}
	if got := u.Get("trace"); got != "token" {
		t.Errorf("trace = %q", got)
	}
}
