// Copyright 2024 The google-apis-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"errors"

	"github.com/maruel/subcommands"

	api "github.com/dermesser/google-apis-go/api/containeranalysis/v1"
	"github.com/dermesser/google-apis-go/client/internal/common"
	"github.com/dermesser/google-apis-go/common/auth"
)

// occurrenceFields lists the Occurrence fields settable through -r.
var occurrenceFields = map[string]common.FieldDesc{
	"attestation.serializedPayload":           {Type: common.TypeString},
	"build.provenanceBytes":                   {Type: common.TypeString},
	"compliance.nonComplianceReason":          {Type: common.TypeString},
	"deployment.address":                      {Type: common.TypeString},
	"deployment.config":                       {Type: common.TypeString},
	"deployment.deployTime":                   {Type: common.TypeString},
	"deployment.platform":                     {Type: common.TypeString},
	"deployment.resourceUri":                  {Type: common.TypeString, Repeated: true},
	"deployment.undeployTime":                 {Type: common.TypeString},
	"deployment.userEmail":                    {Type: common.TypeString},
	"discovery.analysisStatus":                {Type: common.TypeString},
	"discovery.continuousAnalysis":            {Type: common.TypeString},
	"dsseAttestation.envelope.payload":        {Type: common.TypeString},
	"dsseAttestation.envelope.payloadType":    {Type: common.TypeString},
	"envelope.payload":                        {Type: common.TypeString},
	"envelope.payloadType":                    {Type: common.TypeString},
	"image.baseResourceUrl":                   {Type: common.TypeString},
	"image.distance":                          {Type: common.TypeInt},
	"image.fingerprint.v1Name":                {Type: common.TypeString},
	"image.fingerprint.v2Blob":                {Type: common.TypeString, Repeated: true},
	"image.fingerprint.v2Name":                {Type: common.TypeString},
	"kind":                                    {Type: common.TypeString},
	"name":                                    {Type: common.TypeString},
	"noteName":                                {Type: common.TypeString},
	"package.name":                            {Type: common.TypeString},
	"package.version.epoch":                   {Type: common.TypeInt},
	"package.version.fullName":                {Type: common.TypeString},
	"package.version.inclusive":               {Type: common.TypeBool},
	"package.version.kind":                    {Type: common.TypeString},
	"package.version.name":                    {Type: common.TypeString},
	"package.version.revision":                {Type: common.TypeString},
	"remediation":                             {Type: common.TypeString},
	"resourceUri":                             {Type: common.TypeString},
	"upgrade.package":                         {Type: common.TypeString},
	"upgrade.parsedVersion.epoch":             {Type: common.TypeInt},
	"upgrade.parsedVersion.fullName":          {Type: common.TypeString},
	"upgrade.parsedVersion.inclusive":         {Type: common.TypeBool},
	"upgrade.parsedVersion.kind":              {Type: common.TypeString},
	"upgrade.parsedVersion.name":              {Type: common.TypeString},
	"upgrade.parsedVersion.revision":          {Type: common.TypeString},
	"vulnerability.cvssScore":                 {Type: common.TypeFloat},
	"vulnerability.cvssv3.attackComplexity":   {Type: common.TypeString},
	"vulnerability.cvssv3.attackVector":       {Type: common.TypeString},
	"vulnerability.cvssv3.baseScore":          {Type: common.TypeFloat},
	"vulnerability.effectiveSeverity":         {Type: common.TypeString},
	"vulnerability.fixAvailable":              {Type: common.TypeBool},
	"vulnerability.longDescription":           {Type: common.TypeString},
	"vulnerability.severity":                  {Type: common.TypeString},
	"vulnerability.shortDescription":          {Type: common.TypeString},
	"vulnerability.type":                      {Type: common.TypeString},
}

func cmdOccurrencesCreate(authOpts auth.Options) *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "occurrences-create <parent>",
		ShortDesc: "creates a new occurrence",
		LongDesc: `Creates a new occurrence under the given project.

The occurrence body is assembled from -r path=value flags or read from
-body. Example:

  containeranalysis1 occurrences-create projects/p1 \
      -r noteName=projects/p1/notes/my-note \
      -r resourceUri=https://gcr.io/p1/img@sha256:abc \
      -r vulnerability.effectiveSeverity=HIGH`,
		CommandRun: func() subcommands.CommandRun {
			r := &occurrencesCreateRun{}
			r.Init(authOpts)
			r.body.register(&r.CommandRunBase)
			return r
		},
	}
}

type occurrencesCreateRun struct {
	commonFlags
	body requestFlags
}

func (r *occurrencesCreateRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	if len(args) != 1 {
		return r.done(errors.New("expected exactly one argument: <parent>"))
	}
	if err := r.Parse(); err != nil {
		return r.done(err)
	}
	var occ api.Occurrence
	if err := r.body.build(occurrenceFields, &occ); err != nil {
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
	created, err := s.Projects.Occurrences.Create(args[0], &occ).Context(ctx).Do(opts...)
	if err != nil {
		return r.done(err)
	}
	return r.done(r.printResult(created))
}

func cmdOccurrencesBatchCreate(authOpts auth.Options) *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "occurrences-batch-create <parent>",
		ShortDesc: "creates several occurrences in one request",
		LongDesc: `Creates several occurrences in one request.

The request holds a list of occurrences and therefore must be supplied as a
full JSON document via -body.`,
		CommandRun: func() subcommands.CommandRun {
			r := &occurrencesBatchCreateRun{}
			r.Init(authOpts)
			r.body.register(&r.CommandRunBase)
			return r
		},
	}
}

type occurrencesBatchCreateRun struct {
	commonFlags
	body requestFlags
}

func (r *occurrencesBatchCreateRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	if len(args) != 1 {
		return r.done(errors.New("expected exactly one argument: <parent>"))
	}
	if err := r.Parse(); err != nil {
		return r.done(err)
	}
	if r.body.bodyFile == "" {
		return r.done(errors.New("occurrences-batch-create requires -body"))
	}
	var req api.BatchCreateOccurrencesRequest
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
	resp, err := s.Projects.Occurrences.BatchCreate(args[0], &req).Context(ctx).Do(opts...)
	if err != nil {
		return r.done(err)
	}
	return r.done(r.printResult(resp))
}

func cmdOccurrencesGet(authOpts auth.Options) *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "occurrences-get <name>",
		ShortDesc: "gets the specified occurrence",
		LongDesc: `Gets the specified occurrence.

<name> is of the form projects/[PROJECT_ID]/occurrences/[OCCURRENCE_ID].`,
		CommandRun: func() subcommands.CommandRun {
			r := &occurrencesGetRun{}
			r.Init(authOpts)
			return r
		},
	}
}

type occurrencesGetRun struct {
	commonFlags
}

func (r *occurrencesGetRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	if len(args) != 1 {
		return r.done(errors.New("expected exactly one argument: <name>"))
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
	occ, err := s.Projects.Occurrences.Get(args[0]).Context(ctx).Do(opts...)
	if err != nil {
		return r.done(err)
	}
	return r.done(r.printResult(occ))
}

func cmdOccurrencesGetNotes(authOpts auth.Options) *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "occurrences-get-notes <name>",
		ShortDesc: "gets the note attached to the specified occurrence",
		LongDesc: `Gets the note attached to the specified occurrence.

Consumer projects can use this to get a note that belongs to a provider
project.`,
		CommandRun: func() subcommands.CommandRun {
			r := &occurrencesGetNotesRun{}
			r.Init(authOpts)
			return r
		},
	}
}

type occurrencesGetNotesRun struct {
	commonFlags
}

func (r *occurrencesGetNotesRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	if len(args) != 1 {
		return r.done(errors.New("expected exactly one argument: <name>"))
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
	note, err := s.Projects.Occurrences.GetNotes(args[0]).Context(ctx).Do(opts...)
	if err != nil {
		return r.done(err)
	}
	return r.done(r.printResult(note))
}

func cmdOccurrencesGetVulnerabilitySummary(authOpts auth.Options) *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "occurrences-get-vulnerability-summary <parent>",
		ShortDesc: "gets a summary of vulnerability occurrence counts",
		LongDesc:  "Gets a summary of the number and severity of occurrences.",
		CommandRun: func() subcommands.CommandRun {
			r := &occurrencesVulnSummaryRun{}
			r.Init(authOpts)
			r.Flags.StringVar(&r.filter, "filter", "", "The filter expression.")
			return r
		},
	}
}

type occurrencesVulnSummaryRun struct {
	commonFlags
	filter string
}

func (r *occurrencesVulnSummaryRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	if len(args) != 1 {
		return r.done(errors.New("expected exactly one argument: <parent>"))
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
	call := s.Projects.Occurrences.GetVulnerabilitySummary(args[0]).Context(ctx)
	if r.filter != "" {
		call.Filter(r.filter)
	}
	summary, err := call.Do(opts...)
	if err != nil {
		return r.done(err)
	}
	return r.done(r.printResult(summary))
}

func cmdOccurrencesList(authOpts auth.Options) *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "occurrences-list <parent>",
		ShortDesc: "lists occurrences for the specified project",
		LongDesc:  "Lists occurrences for the specified project.",
		CommandRun: func() subcommands.CommandRun {
			r := &occurrencesListRun{}
			r.Init(authOpts)
			r.Flags.StringVar(&r.filter, "filter", "", "The filter expression.")
			r.Flags.Int64Var(&r.pageSize, "page-size", 0, "Maximum number of results per page.")
			r.Flags.StringVar(&r.pageToken, "page-token", "", "Continuation token from a previous list response.")
			return r
		},
	}
}

type occurrencesListRun struct {
	commonFlags
	filter    string
	pageSize  int64
	pageToken string
}

func (r *occurrencesListRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	if len(args) != 1 {
		return r.done(errors.New("expected exactly one argument: <parent>"))
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
	call := s.Projects.Occurrences.List(args[0]).Context(ctx)
	if r.filter != "" {
		call.Filter(r.filter)
	}
	if r.pageSize > 0 {
		call.PageSize(r.pageSize)
	}
	if r.pageToken != "" {
		call.PageToken(r.pageToken)
	}
	resp, err := call.Do(opts...)
	if err != nil {
		return r.done(err)
	}
	return r.done(r.printResult(resp))
}

func cmdOccurrencesPatch(authOpts auth.Options) *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "occurrences-patch <name>",
		ShortDesc: "updates the specified occurrence",
		LongDesc: `Updates the specified occurrence.

Only the fields named in -update-mask are changed; the new values come from
-r path=value flags or -body.`,
		CommandRun: func() subcommands.CommandRun {
			r := &occurrencesPatchRun{}
			r.Init(authOpts)
			r.body.register(&r.CommandRunBase)
			r.Flags.StringVar(&r.updateMask, "update-mask", "", "Comma-separated list of fields to update.")
			return r
		},
	}
}

type occurrencesPatchRun struct {
	commonFlags
	body       requestFlags
	updateMask string
}

func (r *occurrencesPatchRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	if len(args) != 1 {
		return r.done(errors.New("expected exactly one argument: <name>"))
	}
	if err := r.Parse(); err != nil {
		return r.done(err)
	}
	var occ api.Occurrence
	if err := r.body.build(occurrenceFields, &occ); err != nil {
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
	call := s.Projects.Occurrences.Patch(args[0], &occ).Context(ctx)
	if r.updateMask != "" {
		call.UpdateMask(r.updateMask)
	}
	updated, err := call.Do(opts...)
	if err != nil {
		return r.done(err)
	}
	return r.done(r.printResult(updated))
}

func cmdOccurrencesDelete(authOpts auth.Options) *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "occurrences-delete <name>",
		ShortDesc: "deletes the specified occurrence",
		LongDesc: `Deletes the specified occurrence.

For example, use this when an occurrence is no longer applicable for the
given resource.`,
		CommandRun: func() subcommands.CommandRun {
			r := &occurrencesDeleteRun{}
			r.Init(authOpts)
			return r
		},
	}
}

type occurrencesDeleteRun struct {
	commonFlags
}

func (r *occurrencesDeleteRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	if len(args) != 1 {
		return r.done(errors.New("expected exactly one argument: <name>"))
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
	if _, err := s.Projects.Occurrences.Delete(args[0]).Context(ctx).Do(opts...); err != nil {
		return r.done(err)
	}
	return r.done(nil)
}
