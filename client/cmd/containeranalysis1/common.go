// Copyright 2024 The google-apis-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/maruel/subcommands"
	"google.golang.org/api/googleapi"

	api "github.com/dermesser/google-apis-go/api/containeranalysis/v1"
	"github.com/dermesser/google-apis-go/client/authcli"
	"github.com/dermesser/google-apis-go/client/internal/common"
	"github.com/dermesser/google-apis-go/common/auth"
	"github.com/dermesser/google-apis-go/common/logging/gologger"
	"github.com/dermesser/google-apis-go/internal/gensupport"
)

type commonFlags struct {
	subcommands.CommandRunBase
	authFlags authcli.Flags
	baseURL   string
	output    string
	params    common.KVsFlag

	parsedAuthOpts auth.Options
}

// Init initializes common flags.
func (c *commonFlags) Init(authOpts auth.Options) {
	c.authFlags.Register(&c.Flags, authOpts)
	c.Flags.StringVar(&c.baseURL, "base-url", os.Getenv("CONTAINERANALYSIS_URL"),
		"API endpoint base URL; mostly useful for testing against a fake server.")
	c.Flags.StringVar(&c.output, "o", "",
		"Write the JSON result to this file instead of stdout. \"-\" is stdout.")
	c.Flags.Var(&c.params, "p",
		"Standard query parameter as key=value; may be repeated (e.g. -p fields=notes.name).")
}

// Parse parses the common flags.
func (c *commonFlags) Parse() error {
	var err error
	c.parsedAuthOpts, err = c.authFlags.Options()
	return err
}

// createService builds an authenticating API client per the parsed flags.
func (c *commonFlags) createService(ctx context.Context) (*api.Service, error) {
	authOpts := c.parsedAuthOpts
	var loginMode auth.LoginMode
	if authOpts.ServiceAccountJSONPath != "" {
		loginMode = auth.SilentLogin
	} else {
		loginMode = auth.OptionalLogin
	}
	client, err := auth.NewAuthenticator(ctx, loginMode, authOpts).Client()
	if err != nil {
		return nil, err
	}
	s, err := api.New(client)
	if err != nil {
		return nil, err
	}
	if c.baseURL != "" {
		s.BasePath = c.baseURL
	}
	s.Retry = gensupport.DefaultRetryFactory
	return s, nil
}

// callOptions converts the repeated -p flags into call options.
func (c *commonFlags) callOptions() ([]googleapi.CallOption, error) {
	return common.GlobalCallOptions(c.params)
}

// printResult writes the call result as pretty JSON to -o (or stdout).
func (c *commonFlags) printResult(object any) error {
	w, close, err := common.OpenOutput(c.output)
	if err != nil {
		return err
	}
	defer close()
	return common.PrintJSON(w, object)
}

// done reports err (if any) and converts it to a process exit code.
func (c *commonFlags) done(err error) int {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// requestFlags holds the flags shared by all subcommands that send a request
// body: either a JSON file (-body) or a sequence of -r key=value assignments
// validated against the message's field table.
type requestFlags struct {
	bodyFile string
	fields   common.KVsFlag
}

func (r *requestFlags) register(f *subcommands.CommandRunBase) {
	f.Flags.StringVar(&r.bodyFile, "body", "",
		"Read the request body from this JSON file. \"-\" is stdin.")
	f.Flags.Var(&r.fields, "r",
		"Set a request body field as path=value; may be repeated. A leading dot "+
			"addresses a sibling of the previously set field.")
}

// build decodes the request body into dst.
func (r *requestFlags) build(fields map[string]common.FieldDesc, dst any) error {
	if r.bodyFile != "" {
		if len(r.fields) > 0 {
			return errors.New("-body and -r are mutually exclusive")
		}
		var blob []byte
		var err error
		if r.bodyFile == "-" {
			blob, err = io.ReadAll(os.Stdin)
		} else {
			blob, err = os.ReadFile(r.bodyFile)
		}
		if err != nil {
			return err
		}
		return json.Unmarshal(blob, dst)
	}
	fc := common.NewFieldCursor()
	for _, kv := range r.fields {
		key, value, err := common.ParseKV(kv)
		if err != nil {
			return err
		}
		if err := fc.SetKV(key, value, fields); err != nil {
			return err
		}
	}
	blob, err := json.Marshal(fc.Object())
	if err != nil {
		return err
	}
	return json.Unmarshal(blob, dst)
}

func newContext() context.Context {
	return gologger.StdConfig.Use(context.Background())
}
