// Copyright 2024 The google-apis-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package common

import (
	"google.golang.org/api/googleapi"

	"github.com/dermesser/google-apis-go/common/errors"
)

// globalParams are the standard query parameters every Google API accepts.
// The flag spelling uses dashes; the API spelling is what goes on the wire.
var globalParams = []struct{ flag, api string }{
	{"$-xgafv", "$.xgafv"},
	{"access-token", "access_token"},
	{"alt", "alt"},
	{"callback", "callback"},
	{"fields", "fields"},
	{"key", "key"},
	{"oauth-token", "oauth_token"},
	{"pretty-print", "prettyPrint"},
	{"quota-user", "quotaUser"},
	{"upload-protocol", "upload_protocol"},
	{"upload-type", "uploadType"},
}

// GlobalParamNames returns the flag spellings of all standard parameters.
func GlobalParamNames() []string {
	names := make([]string, len(globalParams))
	for i, p := range globalParams {
		names[i] = p.flag
	}
	return names
}

// GlobalCallOptions converts parsed -p key=value arguments into call options
// applied to a generated API call. Unknown keys are an error, with a typo
// suggestion when one is close enough.
func GlobalCallOptions(kvs KVsFlag) ([]googleapi.CallOption, error) {
	var opts []googleapi.CallOption
	for _, kv := range kvs {
		key, value, err := ParseKV(kv)
		if err != nil {
			return nil, err
		}
		api := ""
		for _, p := range globalParams {
			if p.flag == key || p.api == key {
				api = p.api
				break
			}
		}
		if api == "" {
			return nil, errors.New(UnknownName("parameter", key, GlobalParamNames()))
		}
		opts = append(opts, googleapi.QueryParameter(api, value))
	}
	return opts, nil
}
