// Copyright 2024 The google-apis-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package gensupport

import (
	"net/http"
	"runtime"
	"strings"
)

// Version is the version of this client runtime, reported to the API
// endpoint in the x-goog-api-client header.
const Version = "0.1.0"

// SetHeaders builds the header set for an outgoing request: the service
// user agent, the x-goog-api-client client identification header, an
// optional Content-Type, and any user-supplied headers. User-supplied
// headers win over the computed ones.
func SetHeaders(userAgent, contentType string, userHeaders http.Header) http.Header {
	reqHeaders := make(http.Header)
	reqHeaders.Set("x-goog-api-client", "gl-go/"+goVersion()+" gdcl/"+Version)
	reqHeaders.Set("User-Agent", userAgent)
	if contentType != "" {
		reqHeaders.Set("Content-Type", contentType)
	}
	for k, v := range userHeaders {
		reqHeaders[k] = v
	}
	return reqHeaders
}

// goVersion reports the Go release the binary was built with, e.g. "1.22.4".
// Development toolchains report their full version string.
func goVersion() string {
	v := runtime.Version()
	if strings.HasPrefix(v, "go1") {
		return v[2:]
	}
	return v
}
