// Copyright 2024 The google-apis-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"errors"

	"github.com/maruel/subcommands"

	"github.com/dermesser/google-apis-go/client/internal/common"
	"github.com/dermesser/google-apis-go/common/auth"
)

func cmdAvailsGet(authOpts auth.Options) *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "avails-get <account-id> <avail-id>",
		ShortDesc: "gets an Avail given its avail group id and avail id",
		LongDesc:  "Gets an Avail given its avail group id and avail id.",
		CommandRun: func() subcommands.CommandRun {
			r := &availsGetRun{}
			r.Init(authOpts)
			return r
		},
	}
}

type availsGetRun struct {
	commonFlags
}

func (r *availsGetRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	if len(args) != 2 {
		return r.done(errors.New("expected exactly two arguments: <account-id> <avail-id>"))
	}
	if err := r.Parse(); err != nil {
		return r.done(err)
	}
	ctx := newContext()
	s, err := r.createService(ctx)
	if err != nil {
		return r.done(err)
	}
	opts, err := r.callOptions()
	if err != nil {
		return r.done(err)
	}
	avail, err := s.Accounts.Avails.Get(args[0], args[1]).Context(ctx).Do(opts...)
	if err != nil {
		return r.done(err)
	}
	return r.done(r.printResult(avail))
}

func cmdAvailsList(authOpts auth.Options) *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "avails-list <account-id>",
		ShortDesc: "lists Avails owned or managed by the partner",
		LongDesc:  "Lists Avails owned or managed by the partner.",
		CommandRun: func() subcommands.CommandRun {
			r := &availsListRun{}
			r.Init(authOpts)
			r.Flags.StringVar(&r.altID, "alt-id", "", "Filter Avails by a partner-specific custom id (deprecated, use -alt-ids).")
			r.Flags.Var(&r.altIDs, "alt-ids", "Filter Avails by partner-specific custom ids; may be repeated.")
			r.Flags.Int64Var(&r.pageSize, "page-size", 0, "Maximum number of results per page.")
			r.Flags.StringVar(&r.pageToken, "page-token", "", "Continuation token from a previous list response.")
			r.Flags.Var(&r.pphNames, "pph-name", "Filter by PlayMovies Partner hub name; may be repeated.")
			r.Flags.Var(&r.studioNames, "studio-name", "Filter by studio name; may be repeated.")
			r.Flags.Var(&r.territories, "territory", "Filter by territory (ISO 3166-1 alpha-2 code); may be repeated.")
			r.Flags.StringVar(&r.title, "title", "", "Filter by title name (fuzzy match).")
			r.Flags.Var(&r.videoIDs, "video-id", "Filter Avails that match any of the given video ids; may be repeated.")
			return r
		},
	}
}

type availsListRun struct {
	commonFlags
	altID       string
	altIDs      common.StringsFlag
	pageSize    int64
	pageToken   string
	pphNames    common.StringsFlag
	studioNames common.StringsFlag
	territories common.StringsFlag
	title       string
	videoIDs    common.StringsFlag
}

func (r *availsListRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	if len(args) != 1 {
		return r.done(errors.New("expected exactly one argument: <account-id>"))
	}
	if err := r.Parse(); err != nil {
		return r.done(err)
	}
	ctx := newContext()
	s, err := r.createService(ctx)
	if err != nil {
		return r.done(err)
	}
	opts, err := r.callOptions()
	if err != nil {
		return r.done(err)
	}

	call := s.Accounts.Avails.List(args[0]).Context(ctx)
	if r.altID != "" {
		call.AltId(r.altID)
	}
	if len(r.altIDs) > 0 {
		call.AltIds(r.altIDs...)
	}
	if r.pageSize > 0 {
		call.PageSize(r.pageSize)
	}
	if r.pageToken != "" {
		call.PageToken(r.pageToken)
	}
	if len(r.pphNames) > 0 {
		call.PphNames(r.pphNames...)
	}
	if len(r.studioNames) > 0 {
		call.StudioNames(r.studioNames...)
	}
	if len(r.territories) > 0 {
		call.Territories(r.territories...)
	}
	if r.title != "" {
		call.Title(r.title)
	}
	if len(r.videoIDs) > 0 {
		call.VideoIds(r.videoIDs...)
	}

	resp, err := call.Do(opts...)
	if err != nil {
		return r.done(err)
	}
	return r.done(r.printResult(resp))
}
