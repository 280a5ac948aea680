// Copyright 2024 The google-apis-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package containeranalysis

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"google.golang.org/api/googleapi"

	. "github.com/smartystreets/goconvey/convey"
)

func newTestService(h http.HandlerFunc) (*Service, *httptest.Server) {
	srv := httptest.NewServer(h)
	s, err := New(srv.Client())
	if err != nil {
		panic(err)
	}
	s.BasePath = srv.URL + "/"
	return s, srv
}

func TestNotesCalls(t *testing.T) {
	t.Parallel()

	Convey(`Notes calls against a test server`, t, func() {
		var gotMethod, gotPath string
		var gotQuery map[string][]string
		var gotBody []byte

		s, srv := newTestService(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotPath = r.URL.Path
			gotQuery = r.URL.Query()
			gotBody, _ = io.ReadAll(r.Body)
			switch {
			case r.URL.Path == "/v1/projects/p1/notes" && r.Method == "POST":
				json.NewEncoder(w).Encode(&Note{Name: "projects/p1/notes/n1"})
			case r.URL.Path == "/v1/projects/p1/notes/n1" && r.Method == "GET":
				json.NewEncoder(w).Encode(&Note{
					Name:             "projects/p1/notes/n1",
					ShortDescription: "CVE-2016-0001",
					Vulnerability:    &VulnerabilityNote{Severity: "HIGH", CvssScore: 7.5},
				})
			case r.URL.Path == "/v1/projects/p1/notes/n1" && r.Method == "DELETE":
				w.Write([]byte("{}"))
			case r.URL.Path == "/v1/projects/p1/notes/n1" && r.Method == "PATCH":
				json.NewEncoder(w).Encode(&Note{Name: "projects/p1/notes/n1", LongDescription: "patched"})
			default:
				http.Error(w, `{"error":{"code":404,"message":"not found"}}`, 404)
			}
		})
		defer srv.Close()

		Convey(`Create posts the note body and carries noteId.`, func() {
			note, err := s.Projects.Notes.Create("projects/p1", &Note{
				ShortDescription: "CVE-2016-0001",
				Vulnerability:    &VulnerabilityNote{Severity: "HIGH"},
			}).NoteId("n1").Do()
			So(err, ShouldBeNil)
			So(gotMethod, ShouldEqual, "POST")
			So(gotPath, ShouldEqual, "/v1/projects/p1/notes")
			So(gotQuery["noteId"], ShouldResemble, []string{"n1"})

			var sent map[string]any
			So(json.Unmarshal(gotBody, &sent), ShouldBeNil)
			So(sent["shortDescription"], ShouldEqual, "CVE-2016-0001")
			So(note.Name, ShouldEqual, "projects/p1/notes/n1")
		})

		Convey(`Get expands the multi-segment name without escaping slashes.`, func() {
			note, err := s.Projects.Notes.Get("projects/p1/notes/n1").Do()
			So(err, ShouldBeNil)
			So(gotPath, ShouldEqual, "/v1/projects/p1/notes/n1")
			So(note.Vulnerability.Severity, ShouldEqual, "HIGH")
			So(note.HTTPStatusCode, ShouldEqual, 200)
		})

		Convey(`Patch sends the update mask.`, func() {
			note, err := s.Projects.Notes.Patch("projects/p1/notes/n1", &Note{LongDescription: "patched"}).
				UpdateMask("longDescription").
				Context(context.Background()).
				Do()
			So(err, ShouldBeNil)
			So(gotMethod, ShouldEqual, "PATCH")
			So(gotQuery["updateMask"], ShouldResemble, []string{"longDescription"})
			So(note.LongDescription, ShouldEqual, "patched")
		})

		Convey(`Delete returns an Empty carrying the response code.`, func() {
			e, err := s.Projects.Notes.Delete("projects/p1/notes/n1").Do()
			So(err, ShouldBeNil)
			So(gotMethod, ShouldEqual, "DELETE")
			So(e.HTTPStatusCode, ShouldEqual, 200)
		})

		Convey(`A missing note surfaces as a googleapi.Error.`, func() {
			_, err := s.Projects.Notes.Get("projects/p1/notes/absent").Do()
			So(err, ShouldNotBeNil)
			gerr, ok := err.(*googleapi.Error)
			So(ok, ShouldBeTrue)
			So(gerr.Code, ShouldEqual, 404)
		})
	})
}

func TestNotesListPaging(t *testing.T) {
	t.Parallel()

	Convey(`Notes list pages through results and forwards the filter`, t, func() {
		var pageTokens []string
		var gotFilter string
		s, srv := newTestService(func(w http.ResponseWriter, r *http.Request) {
			tok := r.URL.Query().Get("pageToken")
			gotFilter = r.URL.Query().Get("filter")
			pageTokens = append(pageTokens, tok)
			resp := &ListNotesResponse{Notes: []*Note{{Name: "n-" + tok}}}
			if tok == "" {
				resp.NextPageToken = "t2"
			}
			json.NewEncoder(w).Encode(resp)
		})
		defer srv.Close()

		var got []*Note
		err := s.Projects.Notes.List("projects/p1").
			Filter(`kind="VULNERABILITY"`).
			Pages(context.Background(), func(p *ListNotesResponse) error {
				got = append(got, p.Notes...)
				return nil
			})
		So(err, ShouldBeNil)
		So(pageTokens, ShouldResemble, []string{"", "t2"})
		So(gotFilter, ShouldEqual, `kind="VULNERABILITY"`)
		So(got, ShouldHaveLength, 2)
	})
}

func TestOccurrencesCalls(t *testing.T) {
	t.Parallel()

	Convey(`Occurrences calls against a test server`, t, func() {
		var gotMethod, gotPath string
		var gotBody []byte

		s, srv := newTestService(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotPath = r.URL.Path
			gotBody, _ = io.ReadAll(r.Body)
			switch r.URL.Path {
			case "/v1/projects/p1/occurrences:batchCreate":
				json.NewEncoder(w).Encode(&BatchCreateOccurrencesResponse{
					Occurrences: []*Occurrence{{Name: "projects/p1/occurrences/o1"}},
				})
			case "/v1/projects/p1/occurrences/o1/notes":
				json.NewEncoder(w).Encode(&Note{Name: "projects/provider/notes/n1"})
			case "/v1/projects/p1/occurrences:vulnerabilitySummary":
				json.NewEncoder(w).Encode(&VulnerabilityOccurrencesSummary{
					Counts: []*FixableTotalByDigest{{
						ResourceUri:  "https://gcr.io/p1/img@sha256:abc",
						Severity:     "HIGH",
						FixableCount: 3,
						TotalCount:   10,
					}},
				})
			default:
				http.Error(w, `{"error":{"code":404,"message":"not found"}}`, 404)
			}
		})
		defer srv.Close()

		Convey(`BatchCreate hits the custom verb path.`, func() {
			resp, err := s.Projects.Occurrences.BatchCreate("projects/p1", &BatchCreateOccurrencesRequest{
				Occurrences: []*Occurrence{{ResourceUri: "https://gcr.io/p1/img@sha256:abc"}},
			}).Do()
			So(err, ShouldBeNil)
			So(gotMethod, ShouldEqual, "POST")
			So(gotPath, ShouldEqual, "/v1/projects/p1/occurrences:batchCreate")
			So(resp.Occurrences, ShouldHaveLength, 1)

			var sent map[string]any
			So(json.Unmarshal(gotBody, &sent), ShouldBeNil)
			So(sent["occurrences"], ShouldNotBeNil)
		})

		Convey(`GetNotes follows the occurrence's note path.`, func() {
			note, err := s.Projects.Occurrences.GetNotes("projects/p1/occurrences/o1").Do()
			So(err, ShouldBeNil)
			So(gotPath, ShouldEqual, "/v1/projects/p1/occurrences/o1/notes")
			So(note.Name, ShouldEqual, "projects/provider/notes/n1")
		})

		Convey(`GetVulnerabilitySummary decodes string-encoded counts.`, func() {
			sum, err := s.Projects.Occurrences.GetVulnerabilitySummary("projects/p1").
				Filter(`resourceUrl="https://gcr.io/p1/img@sha256:abc"`).
				Do()
			So(err, ShouldBeNil)
			So(gotPath, ShouldEqual, "/v1/projects/p1/occurrences:vulnerabilitySummary")
			So(sum.Counts, ShouldHaveLength, 1)
			So(sum.Counts[0].FixableCount, ShouldEqual, 3)
			So(sum.Counts[0].TotalCount, ShouldEqual, 10)
		})
	})
}

func TestIamCalls(t *testing.T) {
	t.Parallel()

	Convey(`IAM calls use the colon-suffixed resource paths`, t, func() {
		var gotPath string
		var gotBody []byte
		s, srv := newTestService(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotBody, _ = io.ReadAll(r.Body)
			switch r.URL.Path {
			case "/v1/projects/p1/notes/n1:setIamPolicy":
				json.NewEncoder(w).Encode(&Policy{Etag: "abc", Version: 3})
			case "/v1/projects/p1/occurrences/o1:testIamPermissions":
				json.NewEncoder(w).Encode(&TestIamPermissionsResponse{
					Permissions: []string{"containeranalysis.occurrences.get"},
				})
			default:
				http.Error(w, `{"error":{"code":404,"message":"not found"}}`, 404)
			}
		})
		defer srv.Close()

		Convey(`SetIamPolicy posts the policy.`, func() {
			p, err := s.Projects.Notes.SetIamPolicy("projects/p1/notes/n1", &SetIamPolicyRequest{
				Policy: &Policy{
					Bindings: []*Binding{{Role: "roles/containeranalysis.notes.viewer", Members: []string{"user:a@example.com"}}},
				},
			}).Do()
			So(err, ShouldBeNil)
			So(gotPath, ShouldEqual, "/v1/projects/p1/notes/n1:setIamPolicy")
			So(p.Etag, ShouldEqual, "abc")

			var sent map[string]any
			So(json.Unmarshal(gotBody, &sent), ShouldBeNil)
			So(sent["policy"], ShouldNotBeNil)
		})

		Convey(`TestIamPermissions echoes the granted subset.`, func() {
			resp, err := s.Projects.Occurrences.TestIamPermissions("projects/p1/occurrences/o1", &TestIamPermissionsRequest{
				Permissions: []string{"containeranalysis.occurrences.get", "containeranalysis.occurrences.delete"},
			}).Do()
			So(err, ShouldBeNil)
			So(gotPath, ShouldEqual, "/v1/projects/p1/occurrences/o1:testIamPermissions")
			So(resp.Permissions, ShouldResemble, []string{"containeranalysis.occurrences.get"})
		})
	})
}
