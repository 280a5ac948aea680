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

// noteFields lists the Note fields settable through -r. Repeated message
// fields (signatures, bindings, ...) need a full -body document.
var noteFields = map[string]common.FieldDesc{
	"attestation.hint.humanReadableName":          {Type: common.TypeString},
	"build.builderVersion":                        {Type: common.TypeString},
	"compliance.cisBenchmark.profileLevel":        {Type: common.TypeInt},
	"compliance.cisBenchmark.severity":            {Type: common.TypeString},
	"compliance.description":                      {Type: common.TypeString},
	"compliance.rationale":                        {Type: common.TypeString},
	"compliance.remediation":                      {Type: common.TypeString},
	"compliance.scanInstructions":                 {Type: common.TypeString},
	"compliance.title":                            {Type: common.TypeString},
	"deployment.resourceUri":                      {Type: common.TypeString, Repeated: true},
	"discovery.analysisKind":                      {Type: common.TypeString},
	"dsseAttestation.hint.humanReadableName":      {Type: common.TypeString},
	"expirationTime":                              {Type: common.TypeString},
	"image.fingerprint.v1Name":                    {Type: common.TypeString},
	"image.fingerprint.v2Blob":                    {Type: common.TypeString, Repeated: true},
	"image.fingerprint.v2Name":                    {Type: common.TypeString},
	"image.resourceUrl":                           {Type: common.TypeString},
	"kind":                                        {Type: common.TypeString},
	"longDescription":                             {Type: common.TypeString},
	"name":                                        {Type: common.TypeString},
	"package.name":                                {Type: common.TypeString},
	"package.version.epoch":                       {Type: common.TypeInt},
	"package.version.fullName":                    {Type: common.TypeString},
	"package.version.inclusive":                   {Type: common.TypeBool},
	"package.version.kind":                        {Type: common.TypeString},
	"package.version.name":                        {Type: common.TypeString},
	"package.version.revision":                    {Type: common.TypeString},
	"relatedNoteNames":                            {Type: common.TypeString, Repeated: true},
	"shortDescription":                            {Type: common.TypeString},
	"upgrade.package":                             {Type: common.TypeString},
	"upgrade.version.epoch":                       {Type: common.TypeInt},
	"upgrade.version.fullName":                    {Type: common.TypeString},
	"upgrade.version.inclusive":                   {Type: common.TypeBool},
	"upgrade.version.kind":                        {Type: common.TypeString},
	"upgrade.version.name":                        {Type: common.TypeString},
	"upgrade.version.revision":                    {Type: common.TypeString},
	"vulnerability.cvssScore":                     {Type: common.TypeFloat},
	"vulnerability.cvssV3.attackComplexity":       {Type: common.TypeString},
	"vulnerability.cvssV3.attackVector":           {Type: common.TypeString},
	"vulnerability.cvssV3.availabilityImpact":     {Type: common.TypeString},
	"vulnerability.cvssV3.baseScore":              {Type: common.TypeFloat},
	"vulnerability.cvssV3.confidentialityImpact":  {Type: common.TypeString},
	"vulnerability.cvssV3.exploitabilityScore":    {Type: common.TypeFloat},
	"vulnerability.cvssV3.impactScore":            {Type: common.TypeFloat},
	"vulnerability.cvssV3.integrityImpact":        {Type: common.TypeString},
	"vulnerability.cvssV3.privilegesRequired":     {Type: common.TypeString},
	"vulnerability.cvssV3.scope":                  {Type: common.TypeString},
	"vulnerability.cvssV3.userInteraction":        {Type: common.TypeString},
	"vulnerability.severity":                      {Type: common.TypeString},
	"vulnerability.sourceUpdateTime":              {Type: common.TypeString},
}

func cmdNotesCreate(authOpts auth.Options) *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "notes-create <parent>",
		ShortDesc: "creates a new note",
		LongDesc: `Creates a new note under the given project.

The note body is assembled from -r path=value flags or read from -body.
Example:

  containeranalysis1 notes-create projects/p1 -note-id my-note \
      -r shortDescription=CVE-2024-0001 \
      -r vulnerability.severity=HIGH \
      -r .cvssScore=7.5`,
		CommandRun: func() subcommands.CommandRun {
			r := &notesCreateRun{}
			r.Init(authOpts)
			r.body.register(&r.CommandRunBase)
			r.Flags.StringVar(&r.noteID, "note-id", "", "The id to use for this note.")
			return r
		},
	}
}

type notesCreateRun struct {
	commonFlags
	body   requestFlags
	noteID string
}

func (r *notesCreateRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	if len(args) != 1 {
		return r.done(errors.New("expected exactly one argument: <parent>"))
	}
	if err := r.Parse(); err != nil {
		return r.done(err)
	}
	var note api.Note
	if err := r.body.build(noteFields, &note); err != nil {
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
	call := s.Projects.Notes.Create(args[0], &note).Context(ctx)
	if r.noteID != "" {
		call.NoteId(r.noteID)
	}
	created, err := call.Do(opts...)
	if err != nil {
		return r.done(err)
	}
	return r.done(r.printResult(created))
}

func cmdNotesBatchCreate(authOpts auth.Options) *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "notes-batch-create <parent>",
		ShortDesc: "creates several notes in one request",
		LongDesc: `Creates several notes in one request.

The request maps note ids to notes and therefore must be supplied as a full
JSON document via -body.`,
		CommandRun: func() subcommands.CommandRun {
			r := &notesBatchCreateRun{}
			r.Init(authOpts)
			r.body.register(&r.CommandRunBase)
			return r
		},
	}
}

type notesBatchCreateRun struct {
	commonFlags
	body requestFlags
}

func (r *notesBatchCreateRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	if len(args) != 1 {
		return r.done(errors.New("expected exactly one argument: <parent>"))
	}
	if err := r.Parse(); err != nil {
		return r.done(err)
	}
	if r.body.bodyFile == "" {
		return r.done(errors.New("notes-batch-create requires -body"))
	}
	var req api.BatchCreateNotesRequest
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
	resp, err := s.Projects.Notes.BatchCreate(args[0], &req).Context(ctx).Do(opts...)
	if err != nil {
		return r.done(err)
	}
	return r.done(r.printResult(resp))
}

func cmdNotesGet(authOpts auth.Options) *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "notes-get <name>",
		ShortDesc: "gets the specified note",
		LongDesc: `Gets the specified note.

<name> is of the form projects/[PROJECT_ID]/notes/[NOTE_ID].`,
		CommandRun: func() subcommands.CommandRun {
			r := &notesGetRun{}
			r.Init(authOpts)
			return r
		},
	}
}

type notesGetRun struct {
	commonFlags
}

func (r *notesGetRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
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
	note, err := s.Projects.Notes.Get(args[0]).Context(ctx).Do(opts...)
	if err != nil {
		return r.done(err)
	}
	return r.done(r.printResult(note))
}

func cmdNotesList(authOpts auth.Options) *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "notes-list <parent>",
		ShortDesc: "lists notes for the specified project",
		LongDesc:  "Lists notes for the specified project.",
		CommandRun: func() subcommands.CommandRun {
			r := &notesListRun{}
			r.Init(authOpts)
			r.Flags.StringVar(&r.filter, "filter", "", "The filter expression.")
			r.Flags.Int64Var(&r.pageSize, "page-size", 0, "Maximum number of results per page.")
			r.Flags.StringVar(&r.pageToken, "page-token", "", "Continuation token from a previous list response.")
			return r
		},
	}
}

type notesListRun struct {
	commonFlags
	filter    string
	pageSize  int64
	pageToken string
}

func (r *notesListRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
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
	call := s.Projects.Notes.List(args[0]).Context(ctx)
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

func cmdNotesPatch(authOpts auth.Options) *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "notes-patch <name>",
		ShortDesc: "updates the specified note",
		LongDesc: `Updates the specified note.

Only the fields named in -update-mask are changed; the new values come from
-r path=value flags or -body.`,
		CommandRun: func() subcommands.CommandRun {
			r := &notesPatchRun{}
			r.Init(authOpts)
			r.body.register(&r.CommandRunBase)
			r.Flags.StringVar(&r.updateMask, "update-mask", "", "Comma-separated list of fields to update.")
			return r
		},
	}
}

type notesPatchRun struct {
	commonFlags
	body       requestFlags
	updateMask string
}

func (r *notesPatchRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	if len(args) != 1 {
		return r.done(errors.New("expected exactly one argument: <name>"))
	}
	if err := r.Parse(); err != nil {
		return r.done(err)
	}
	var note api.Note
	if err := r.body.build(noteFields, &note); err != nil {
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
	call := s.Projects.Notes.Patch(args[0], &note).Context(ctx)
	if r.updateMask != "" {
		call.UpdateMask(r.updateMask)
	}
	updated, err := call.Do(opts...)
	if err != nil {
		return r.done(err)
	}
	return r.done(r.printResult(updated))
}

func cmdNotesDelete(authOpts auth.Options) *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "notes-delete <name>",
		ShortDesc: "deletes the specified note",
		LongDesc:  "Deletes the specified note.",
		CommandRun: func() subcommands.CommandRun {
			r := &notesDeleteRun{}
			r.Init(authOpts)
			return r
		},
	}
}

type notesDeleteRun struct {
	commonFlags
}

func (r *notesDeleteRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
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
	if _, err := s.Projects.Notes.Delete(args[0]).Context(ctx).Do(opts...); err != nil {
		return r.done(err)
	}
	return r.done(nil)
}

func cmdNotesOccurrencesList(authOpts auth.Options) *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "notes-occurrences-list <name>",
		ShortDesc: "lists occurrences referencing the specified note",
		LongDesc: `Lists occurrences referencing the specified note.

Provider projects can use this to get all occurrences across consumer
projects referencing one of their notes.`,
		CommandRun: func() subcommands.CommandRun {
			r := &notesOccurrencesListRun{}
			r.Init(authOpts)
			r.Flags.StringVar(&r.filter, "filter", "", "The filter expression.")
			r.Flags.Int64Var(&r.pageSize, "page-size", 0, "Maximum number of results per page.")
			r.Flags.StringVar(&r.pageToken, "page-token", "", "Continuation token from a previous list response.")
			return r
		},
	}
}

type notesOccurrencesListRun struct {
	commonFlags
	filter    string
	pageSize  int64
	pageToken string
}

func (r *notesOccurrencesListRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
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
	call := s.Projects.Notes.Occurrences.List(args[0]).Context(ctx)
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
