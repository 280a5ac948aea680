// Copyright 2024 The google-apis-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/maruel/subcommands"
	"google.golang.org/api/googleapi"

	api "github.com/dermesser/google-apis-go/api/playmoviespartner/v1"
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
	c.Flags.StringVar(&c.baseURL, "base-url", os.Getenv("PLAYMOVIESPARTNER_URL"),
		"API endpoint base URL; mostly useful for testing against a fake server.")
	c.Flags.StringVar(&c.output, "o", "",
		"Write the JSON result to this file instead of stdout. \"-\" is stdout.")
	c.Flags.Var(&c.params, "p",
		"Standard query parameter as key=value; may be repeated (e.g. -p fields=orders.name).")
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

func newContext() context.Context {
	return gologger.StdConfig.Use(context.Background())
}
