// Copyright 2024 The google-apis-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package authcli implements authentication related flags parsing and CLI
// subcommands.
//
// It can be used to implement "login", "logout" and "whoami" subcommands for
// any CLI tool built on top of the auth package.
package authcli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"

	"github.com/maruel/subcommands"

	"github.com/dermesser/google-apis-go/common/auth"
	"github.com/dermesser/google-apis-go/common/logging/gologger"
)

// Flags defines command line flags related to authentication.
type Flags struct {
	defaults           auth.Options
	serviceAccountJSON string
	secretsDir         string
}

// Register adds auth related flags to the FlagSet.
func (fl *Flags) Register(f *flag.FlagSet, defaults auth.Options) {
	fl.defaults = defaults
	f.StringVar(&fl.serviceAccountJSON, "service-account-json", "",
		"Path to JSON file with service account credentials to use.")
	f.StringVar(&fl.secretsDir, "secrets-dir", "",
		"Directory to keep cached OAuth tokens in. Default: ~/"+auth.DefaultSecretsDirName+".")
}

// Options returns auth.Options populated based on the parsed flags.
func (fl *Flags) Options() (auth.Options, error) {
	opts := fl.defaults
	if fl.serviceAccountJSON != "" {
		opts.Method = auth.ServiceAccountMethod
		opts.ServiceAccountJSONPath = fl.serviceAccountJSON
	}
	if fl.secretsDir != "" {
		opts.SecretsDir = fl.secretsDir
	}
	return opts, nil
}

// SubcommandLogin returns a subcommand that runs an interactive login flow
// and caches the refresh token.
func SubcommandLogin(opts auth.Options, name string) *subcommands.Command {
	return &subcommands.Command{
		UsageLine: name,
		ShortDesc: "performs interactive login flow",
		LongDesc:  "Performs interactive login flow and caches obtained credentials.",
		CommandRun: func() subcommands.CommandRun {
			c := &loginRun{}
			c.flags.Register(&c.Flags, opts)
			return c
		},
	}
}

type loginRun struct {
	subcommands.CommandRunBase
	flags Flags
}

func (c *loginRun) Run(subcommands.Application, []string, subcommands.Env) int {
	ctx := gologger.StdConfig.Use(context.Background())
	opts, err := c.flags.Options()
	if err != nil {
		fmt.Println(err)
		return 1
	}
	a := auth.NewAuthenticator(ctx, auth.InteractiveLogin, opts)
	if err := a.Login(); err != nil {
		fmt.Printf("Login failed: %s\n", err)
		return 2
	}
	return reportIdentity(ctx, a)
}

// SubcommandLogout returns a subcommand that removes cached credentials.
func SubcommandLogout(opts auth.Options, name string) *subcommands.Command {
	return &subcommands.Command{
		UsageLine: name,
		ShortDesc: "removes cached credentials",
		LongDesc:  "Removes cached credentials from the disk.",
		CommandRun: func() subcommands.CommandRun {
			c := &logoutRun{}
			c.flags.Register(&c.Flags, opts)
			return c
		},
	}
}

type logoutRun struct {
	subcommands.CommandRunBase
	flags Flags
}

func (c *logoutRun) Run(subcommands.Application, []string, subcommands.Env) int {
	ctx := gologger.StdConfig.Use(context.Background())
	opts, err := c.flags.Options()
	if err != nil {
		fmt.Println(err)
		return 1
	}
	if err := auth.NewAuthenticator(ctx, auth.SilentLogin, opts).Logout(); err != nil {
		fmt.Println(err)
		return 2
	}
	return 0
}

// SubcommandInfo returns a subcommand that prints the identity of the
// currently cached credentials.
func SubcommandInfo(opts auth.Options, name string) *subcommands.Command {
	return &subcommands.Command{
		UsageLine: name,
		ShortDesc: "prints an email address associated with cached credentials",
		LongDesc:  "Prints an email address associated with cached credentials.",
		CommandRun: func() subcommands.CommandRun {
			c := &infoRun{}
			c.flags.Register(&c.Flags, opts)
			return c
		},
	}
}

type infoRun struct {
	subcommands.CommandRunBase
	flags Flags
}

func (c *infoRun) Run(subcommands.Application, []string, subcommands.Env) int {
	ctx := gologger.StdConfig.Use(context.Background())
	opts, err := c.flags.Options()
	if err != nil {
		fmt.Println(err)
		return 1
	}
	a := auth.NewAuthenticator(ctx, auth.SilentLogin, opts)
	if err := a.CheckLoginRequired(); err == auth.ErrLoginRequired {
		fmt.Println("Not logged in.")
		return 2
	} else if err != nil {
		fmt.Println(err)
		return 3
	}
	return reportIdentity(ctx, a)
}

// reportIdentity prints the email associated with the current credentials by
// asking the userinfo endpoint.
func reportIdentity(ctx context.Context, a *auth.Authenticator) int {
	client, err := a.Client()
	if err != nil {
		fmt.Println(err)
		return 3
	}
	email, err := fetchEmail(ctx, client)
	if err != nil {
		fmt.Printf("Failed to fetch the token info: %s\n", err)
		return 3
	}
	fmt.Printf("Logged in as %s.\n", email)
	return 0
}

func fetchEmail(ctx context.Context, client *http.Client) (string, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", "https://www.googleapis.com/oauth2/v3/userinfo", nil)
	if err != nil {
		return "", err
	}
	res, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("userinfo endpoint replied with HTTP %d", res.StatusCode)
	}
	var info struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(res.Body).Decode(&info); err != nil {
		return "", err
	}
	return info.Email, nil
}
