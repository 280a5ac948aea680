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

func cmdOrdersGet(authOpts auth.Options) *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "orders-get <account-id> <order-id>",
		ShortDesc: "gets an Order given its id",
		LongDesc:  "Gets an Order given its id.",
		CommandRun: func() subcommands.CommandRun {
			r := &ordersGetRun{}
			r.Init(authOpts)
			return r
		},
	}
}

type ordersGetRun struct {
	commonFlags
}

func (r *ordersGetRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	if len(args) != 2 {
		return r.done(errors.New("expected exactly two arguments: <account-id> <order-id>"))
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
	order, err := s.Accounts.Orders.Get(args[0], args[1]).Context(ctx).Do(opts...)
	if err != nil {
		return r.done(err)
	}
	return r.done(r.printResult(order))
}

func cmdOrdersList(authOpts auth.Options) *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "orders-list <account-id>",
		ShortDesc: "lists Orders owned or managed by the partner",
		LongDesc:  "Lists Orders owned or managed by the partner.",
		CommandRun: func() subcommands.CommandRun {
			r := &ordersListRun{}
			r.Init(authOpts)
			r.Flags.StringVar(&r.customID, "custom-id", "", "Filter Orders by a partner-specific custom id.")
			r.Flags.StringVar(&r.name, "name", "", "Filter by episode or movie name (fuzzy match).")
			r.Flags.Int64Var(&r.pageSize, "page-size", 0, "Maximum number of results per page.")
			r.Flags.StringVar(&r.pageToken, "page-token", "", "Continuation token from a previous list response.")
			r.Flags.Var(&r.pphNames, "pph-name", "Filter by PlayMovies Partner hub name; may be repeated.")
			r.Flags.Var(&r.status, "status", "Filter by status (e.g. STATUS_PROCESSING); may be repeated.")
			r.Flags.Var(&r.studioNames, "studio-name", "Filter by studio name; may be repeated.")
			r.Flags.Var(&r.videoIDs, "video-id", "Filter by video id; may be repeated.")
			return r
		},
	}
}

type ordersListRun struct {
	commonFlags
	customID    string
	name        string
	pageSize    int64
	pageToken   string
	pphNames    common.StringsFlag
	status      common.StringsFlag
	studioNames common.StringsFlag
	videoIDs    common.StringsFlag
}

func (r *ordersListRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
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

	call := s.Accounts.Orders.List(args[0]).Context(ctx)
	if r.customID != "" {
		call.CustomId(r.customID)
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
	if len(r.status) > 0 {
		call.Status(r.status...)
	}
	if len(r.studioNames) > 0 {
		call.StudioNames(r.studioNames...)
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
