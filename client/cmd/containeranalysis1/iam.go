// Copyright 2024 The google-apis-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"context"
	"errors"

	"github.com/maruel/subcommands"
	"google.golang.org/api/googleapi"

	api "github.com/dermesser/google-apis-go/api/containeranalysis/v1"
	"github.com/dermesser/google-apis-go/client/internal/common"
	"github.com/dermesser/google-apis-go/common/auth"
)

// The IAM operations are identical for notes and occurrences except for the
// service they are issued against, so the three run types take the concrete
// call as a closure.

func cmdNotesGetIamPolicy(authOpts auth.Options) *subcommands.Command {
	return cmdGetIamPolicy(authOpts, "notes-get-iam-policy", "note",
		func(ctx context.Context, s *api.Service, resource string, req *api.GetIamPolicyRequest, opts []googleapi.CallOption) (*api.Policy, error) {
			return s.Projects.Notes.GetIamPolicy(resource, req).Context(ctx).Do(opts...)
		})
}

func cmdOccurrencesGetIamPolicy(authOpts auth.Options) *subcommands.Command {
	return cmdGetIamPolicy(authOpts, "occurrences-get-iam-policy", "occurrence",
		func(ctx context.Context, s *api.Service, resource string, req *api.GetIamPolicyRequest, opts []googleapi.CallOption) (*api.Policy, error) {
			return s.Projects.Occurrences.GetIamPolicy(resource, req).Context(ctx).Do(opts...)
		})
}

type getIamPolicyFunc func(ctx context.Context, s *api.Service, resource string, req *api.GetIamPolicyRequest, opts []googleapi.CallOption) (*api.Policy, error)

func cmdGetIamPolicy(authOpts auth.Options, name, kind string, call getIamPolicyFunc) *subcommands.Command {
	return &subcommands.Command{
		UsageLine: name + " <resource>",
		ShortDesc: "gets the access control policy for a " + kind,
		LongDesc: "Gets the access control policy for a " + kind + `.

The caller must have containeranalysis.` + kind + `s.setIamPolicy permission,
and the resource must exist.`,
		CommandRun: func() subcommands.CommandRun {
			r := &getIamPolicyRun{call: call}
			r.Init(authOpts)
			r.Flags.Int64Var(&r.policyVersion, "policy-version", 0,
				"Maximum policy version that will be used to format the policy.")
			return r
		},
	}
}

type getIamPolicyRun struct {
	commonFlags
	policyVersion int64
	call          getIamPolicyFunc
}

func (r *getIamPolicyRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	if len(args) != 1 {
		return r.done(errors.New("expected exactly one argument: <resource>"))
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
	req := &api.GetIamPolicyRequest{}
	if r.policyVersion > 0 {
		req.Options = &api.GetPolicyOptions{RequestedPolicyVersion: r.policyVersion}
	}
	policy, err := r.call(ctx, s, args[0], req, opts)
	if err != nil {
		return r.done(err)
	}
	return r.done(r.printResult(policy))
}

func cmdNotesSetIamPolicy(authOpts auth.Options) *subcommands.Command {
	return cmdSetIamPolicy(authOpts, "notes-set-iam-policy", "note",
		func(ctx context.Context, s *api.Service, resource string, req *api.SetIamPolicyRequest, opts []googleapi.CallOption) (*api.Policy, error) {
			return s.Projects.Notes.SetIamPolicy(resource, req).Context(ctx).Do(opts...)
		})
}

func cmdOccurrencesSetIamPolicy(authOpts auth.Options) *subcommands.Command {
	return cmdSetIamPolicy(authOpts, "occurrences-set-iam-policy", "occurrence",
		func(ctx context.Context, s *api.Service, resource string, req *api.SetIamPolicyRequest, opts []googleapi.CallOption) (*api.Policy, error) {
			return s.Projects.Occurrences.SetIamPolicy(resource, req).Context(ctx).Do(opts...)
		})
}

type setIamPolicyFunc func(ctx context.Context, s *api.Service, resource string, req *api.SetIamPolicyRequest, opts []googleapi.CallOption) (*api.Policy, error)

func cmdSetIamPolicy(authOpts auth.Options, name, kind string, call setIamPolicyFunc) *subcommands.Command {
	return &subcommands.Command{
		UsageLine: name + " <resource>",
		ShortDesc: "sets the access control policy on a " + kind,
		LongDesc: "Sets the access control policy on a " + kind + `.

The policy (with its bindings) must be supplied as a full JSON document via
-body, e.g. {"policy": {"bindings": [...], "etag": "..."}}.`,
		CommandRun: func() subcommands.CommandRun {
			r := &setIamPolicyRun{call: call}
			r.Init(authOpts)
			r.body.register(&r.CommandRunBase)
			return r
		},
	}
}

type setIamPolicyRun struct {
	commonFlags
	body requestFlags
	call setIamPolicyFunc
}

func (r *setIamPolicyRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	if len(args) != 1 {
		return r.done(errors.New("expected exactly one argument: <resource>"))
	}
	if err := r.Parse(); err != nil {
		return r.done(err)
	}
	if r.body.bodyFile == "" {
		return r.done(errors.New("set-iam-policy requires -body"))
	}
	var req api.SetIamPolicyRequest
	if err := r.body.build(nil, &req); err != nil {
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
	policy, err := r.call(ctx, s, args[0], &req, opts)
	if err != nil {
		return r.done(err)
	}
	return r.done(r.printResult(policy))
}

func cmdNotesTestIamPermissions(authOpts auth.Options) *subcommands.Command {
	return cmdTestIamPermissions(authOpts, "notes-test-iam-permissions", "note",
		func(ctx context.Context, s *api.Service, resource string, req *api.TestIamPermissionsRequest, opts []googleapi.CallOption) (*api.TestIamPermissionsResponse, error) {
			return s.Projects.Notes.TestIamPermissions(resource, req).Context(ctx).Do(opts...)
		})
}

func cmdOccurrencesTestIamPermissions(authOpts auth.Options) *subcommands.Command {
	return cmdTestIamPermissions(authOpts, "occurrences-test-iam-permissions", "occurrence",
		func(ctx context.Context, s *api.Service, resource string, req *api.TestIamPermissionsRequest, opts []googleapi.CallOption) (*api.TestIamPermissionsResponse, error) {
			return s.Projects.Occurrences.TestIamPermissions(resource, req).Context(ctx).Do(opts...)
		})
}

type testIamPermissionsFunc func(ctx context.Context, s *api.Service, resource string, req *api.TestIamPermissionsRequest, opts []googleapi.CallOption) (*api.TestIamPermissionsResponse, error)

func cmdTestIamPermissions(authOpts auth.Options, name, kind string, call testIamPermissionsFunc) *subcommands.Command {
	return &subcommands.Command{
		UsageLine: name + " <resource> -permission <p> [-permission <p> ...]",
		ShortDesc: "returns the permissions the caller has on a " + kind,
		LongDesc: "Returns the subset of the given permissions that the caller has on a " + kind + `.

Permission strings look like "containeranalysis.` + kind + `s.get".`,
		CommandRun: func() subcommands.CommandRun {
			r := &testIamPermissionsRun{call: call}
			r.Init(authOpts)
			r.Flags.Var(&r.permissions, "permission", "Permission to test; may be repeated.")
			return r
		},
	}
}

type testIamPermissionsRun struct {
	commonFlags
	permissions common.StringsFlag
	call        testIamPermissionsFunc
}

func (r *testIamPermissionsRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	if len(args) != 1 {
		return r.done(errors.New("expected exactly one argument: <resource>"))
	}
	if len(r.permissions) == 0 {
		return r.done(errors.New("at least one -permission is required"))
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
	req := &api.TestIamPermissionsRequest{Permissions: r.permissions}
	resp, err := r.call(ctx, s, args[0], req, opts)
	if err != nil {
		return r.done(err)
	}
	return r.done(r.printResult(resp))
}
