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

func cmdStoreInfosList(authOpts auth.Options) *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "store-infos-list <account-id>",
		ShortDesc: "lists StoreInfos owned or managed by the partner",
		LongDesc:  "Lists StoreInfos owned or managed by the partner.",
		CommandRun: func() subcommands.CommandRun {
			r := &storeInfosListRun{}
			r.Init(authOpts)
			r.Flags.Var(&r.countries, "country", "Filter by country (ISO 3166-1 alpha-2 code); may be repeated.")
			r.Flags.Var(&r.mids, "mid", "Filter by knowledge graph id; may be repeated.")
			r.Flags.StringVar(&r.name, "name", "", "Filter by episode or movie name (fuzzy match).")
			r.Flags.Int64Var(&r.pageSize, "page-size", 0, "Maximum number of results per page.")
			r.Flags.StringVar(&r.pageToken, "page-token", "", "Continuation token from a previous list response.")
			r.Flags.Var(&r.pphNames, "pph-name", "Filter by PlayMovies Partner hub name; may be repeated.")
			r.Flags.Var(&r.seasonIDs, "season-id", "Filter by season id; may be repeated.")
			r.Flags.Var(&r.studioNames, "studio-name", "Filter by studio name; may be repeated.")
			r.Flags.StringVar(&r.videoID, "video-id", "", "Filter by a single video id (deprecated, use -video-ids).")
			r.Flags.Var(&r.videoIDs, "video-ids", "Filter by video id; may be repeated.")
			return r
		},
	}
}

type storeInfosListRun struct {
	commonFlags
	countries   common.StringsFlag
	mids        common.StringsFlag
	name        string
	pageSize    int64
	pageToken   string
	pphNames    common.StringsFlag
	seasonIDs   common.StringsFlag
	studioNames common.StringsFlag
	videoID     string
	videoIDs    common.StringsFlag
}

func (r *storeInfosListRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
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

	call := s.Accounts.StoreInfos.List(args[0]).Context(ctx)
	if len(r.countries) > 0 {
		call.Countries(r.countries...)
	}
	if len(r.mids) > 0 {
		call.Mids(r.mids...)
	}
	if r.name != "" {
		call.Name(r.name)
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
	if len(r.seasonIDs) > 0 {
		call.SeasonIds(r.seasonIDs...)
	}
	if len(r.studioNames) > 0 {
		call.StudioNames(r.studioNames...)
	}
	if r.videoID != "" {
		call.VideoId(r.videoID)
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

func cmdStoreInfosCountryGet(authOpts auth.Options) *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "store-infos-country-get <account-id> <video-id> <country>",
		ShortDesc: "gets a StoreInfo given its video id and country",
		LongDesc:  "Gets a StoreInfo given its video id and country.",
		CommandRun: func() subcommands.CommandRun {
			r := &storeInfosCountryGetRun{}
			r.Init(authOpts)
			return r
		},
	}
}

type storeInfosCountryGetRun struct {
	commonFlags
}

func (r *storeInfosCountryGetRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	if len(args) != 3 {
		return r.done(errors.New("expected exactly three arguments: <account-id> <video-id> <country>"))
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
	si, err := s.Accounts.StoreInfos.Country.Get(args[0], args[1], args[2]).Context(ctx).Do(opts...)
	if err != nil {
		return r.done(err)
	}
	return r.done(r.printResult(si))
}
