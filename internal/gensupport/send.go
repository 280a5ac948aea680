// Copyright 2024 The google-apis-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package gensupport is the runtime shared by all generated API clients in
// this repository. Where the upstream generators inline the request loop into
// every endpoint, the generated code here funnels every call through
// SendRequest, so retry, token attachment and header assembly exist exactly
// once.
package gensupport

import (
	"context"
	"encoding/json"
	"net/http"

	"google.golang.org/api/googleapi"

	"github.com/dermesser/google-apis-go/common/clock"
	"github.com/dermesser/google-apis-go/common/errors"
	"github.com/dermesser/google-apis-go/common/logging"
	"github.com/dermesser/google-apis-go/common/retry"
)

// SendRequest sends a single HTTP request using the given client.
//
// If f is non-nil, it produces the retry plan for the call: transport errors
// and transient HTTP statuses (429 and 5xx) are retried according to the
// produced Iterator, sleeping through the context clock between attempts.
// The terminal response is returned unconsumed, so the caller can run
// googleapi.CheckResponse against it even when retries were exhausted.
//
// A nil ctx is permitted for callers that did not configure a context on the
// call builder.
func SendRequest(ctx context.Context, client *http.Client, req *http.Request, f retry.Factory) (*http.Response, error) {
	if client == nil {
		client = http.DefaultClient
	}
	if ctx == nil {
		ctx = context.Background()
	} else {
		req = req.WithContext(ctx)
	}

	var it retry.Iterator
	if f != nil {
		it = f(ctx)
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		// Requests carrying a body must be rewound before each attempt.
		if req.GetBody != nil {
			body, err := req.GetBody()
			if err != nil {
				return nil, err
			}
			req.Body = body
		}

		resp, err := client.Do(req)

		var attemptErr error
		switch {
		case err != nil:
			attemptErr = errors.WrapTransient(err)
		case shouldRetry(resp.StatusCode):
			attemptErr = errors.WrapTransient(&googleapi.Error{
				Code: resp.StatusCode,
			})
		default:
			return resp, nil
		}

		delay := retry.Stop
		if it != nil {
			delay = it.Next(ctx, attemptErr)
		}
		if delay == retry.Stop {
			// Out of attempts. Hand the last response (if any) back to the
			// caller so the HTTP failure surfaces with its body intact.
			return resp, err
		}

		if resp != nil {
			googleapi.CloseBody(resp)
		}
		logging.Warningf(ctx, "Transient error sending %s %s, retrying in %s: %s",
			req.Method, req.URL.Path, delay, attemptErr)
		if tr := clock.Sleep(ctx, delay); tr.Incomplete() {
			return nil, tr.Err
		}
	}
}

// DefaultRetryFactory is the retry plan generated clients install when the
// caller asks for retries without supplying a plan of their own.
func DefaultRetryFactory(ctx context.Context) retry.Iterator {
	return &retry.TransientOnly{Iterator: retry.Default(ctx)}
}

// shouldRetry reports whether an HTTP status is worth another attempt:
// throttling and server-side failures, never other client errors.
func shouldRetry(status int) bool {
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}

// DecodeResponse decodes the body of res into target. If there is no body,
// target is unchanged.
func DecodeResponse(target any, res *http.Response) error {
	if res.StatusCode == http.StatusNoContent {
		return nil
	}
	return json.NewDecoder(res.Body).Decode(target)
}
