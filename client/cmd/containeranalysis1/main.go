// Copyright 2024 The google-apis-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Command containeranalysis1 is a CLI for the Container Analysis API (v1).
package main

import (
	"log"
	"os"

	"github.com/maruel/subcommands"

	api "github.com/dermesser/google-apis-go/api/containeranalysis/v1"
	"github.com/dermesser/google-apis-go/client/authcli"
	"github.com/dermesser/google-apis-go/client/internal/common"
	"github.com/dermesser/google-apis-go/common/auth"
)

// version must be updated whenever a functional change (behavior, arguments,
// supported commands) is done.
const version = "0.1"

func defaultAuthOpts() auth.Options {
	return auth.Options{
		Scopes: []string{api.CloudPlatformScope, auth.OAuthScopeEmail},
	}
}

var application = &subcommands.DefaultApplication{
	Name:  "containeranalysis1",
	Title: "Client tool to access the Container Analysis API (v1).",
	// Keep in alphabetical order of their name.
	Commands: []*subcommands.Command{
		cmdNotesBatchCreate(defaultAuthOpts()),
		cmdNotesCreate(defaultAuthOpts()),
		cmdNotesDelete(defaultAuthOpts()),
		cmdNotesGet(defaultAuthOpts()),
		cmdNotesGetIamPolicy(defaultAuthOpts()),
		cmdNotesList(defaultAuthOpts()),
		cmdNotesOccurrencesList(defaultAuthOpts()),
		cmdNotesPatch(defaultAuthOpts()),
		cmdNotesSetIamPolicy(defaultAuthOpts()),
		cmdNotesTestIamPermissions(defaultAuthOpts()),
		cmdOccurrencesBatchCreate(defaultAuthOpts()),
		cmdOccurrencesCreate(defaultAuthOpts()),
		cmdOccurrencesDelete(defaultAuthOpts()),
		cmdOccurrencesGet(defaultAuthOpts()),
		cmdOccurrencesGetIamPolicy(defaultAuthOpts()),
		cmdOccurrencesGetNotes(defaultAuthOpts()),
		cmdOccurrencesGetVulnerabilitySummary(defaultAuthOpts()),
		cmdOccurrencesList(defaultAuthOpts()),
		cmdOccurrencesPatch(defaultAuthOpts()),
		cmdOccurrencesSetIamPolicy(defaultAuthOpts()),
		cmdOccurrencesTestIamPermissions(defaultAuthOpts()),
		subcommands.CmdHelp,
		authcli.SubcommandInfo(defaultAuthOpts(), "whoami"),
		authcli.SubcommandLogin(defaultAuthOpts(), "login"),
		authcli.SubcommandLogout(defaultAuthOpts(), "logout"),
		common.CmdVersion(version),
	},
}

func main() {
	log.SetFlags(log.Lmicroseconds)
	os.Exit(subcommands.Run(application, nil))
}
