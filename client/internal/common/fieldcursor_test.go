// Copyright 2024 The google-apis-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package common

import (
	"bytes"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestFieldCursor(t *testing.T) {
	t.Parallel()

	Convey(`With a fresh cursor`, t, func() {
		fc := NewFieldCursor()

		Convey(`Sets nested and typed fields.`, func() {
			So(fc.Set("short-description", "CVE-1", FieldDesc{Path: "shortDescription", Type: TypeString}), ShouldBeNil)
			So(fc.Set("vulnerability.cvss-score", "7.5", FieldDesc{Type: TypeFloat}), ShouldBeNil)
			So(fc.Set(".severity", "HIGH", FieldDesc{Type: TypeString}), ShouldBeNil)

			So(fc.Object(), ShouldResemble, map[string]any{
				"short-description": "CVE-1",
				"vulnerability": map[string]any{
					"cvss-score": 7.5,
					"severity":   "HIGH",
				},
			})
		})

		Convey(`Multiple dots pop multiple levels.`, func() {
			So(fc.Set("a.b.c", "1", FieldDesc{Type: TypeInt}), ShouldBeNil)
			// Cursor is at a.b; two dots pop one level to a.
			So(fc.Set("..d", "2", FieldDesc{Type: TypeInt}), ShouldBeNil)
			So(fc.Object(), ShouldResemble, map[string]any{
				"a": map[string]any{
					"b": map[string]any{"c": int64(1)},
					"d": int64(2),
				},
			})
		})

		Convey(`Repeated fields accumulate.`, func() {
			desc := FieldDesc{Type: TypeString, Repeated: true}
			So(fc.Set("resourceUri", "r1", desc), ShouldBeNil)
			So(fc.Set("resourceUri", "r2", desc), ShouldBeNil)
			So(fc.Object()["resourceUri"], ShouldResemble, []any{"r1", "r2"})
		})

		Convey(`Rejects duplicate scalar fields.`, func() {
			So(fc.Set("name", "a", FieldDesc{Type: TypeString}), ShouldBeNil)
			So(fc.Set("name", "b", FieldDesc{Type: TypeString}), ShouldNotBeNil)
		})

		Convey(`Rejects bad values.`, func() {
			So(fc.Set("n", "abc", FieldDesc{Type: TypeInt}), ShouldNotBeNil)
			So(fc.Set("b", "maybe", FieldDesc{Type: TypeBool}), ShouldNotBeNil)
			So(fc.Set("...x", "1", FieldDesc{Type: TypeInt}), ShouldNotBeNil)
		})

		Convey(`Accepts boolean spellings.`, func() {
			So(fc.Set("yes", "YES", FieldDesc{Type: TypeBool}), ShouldBeNil)
			So(fc.Set("no", "0", FieldDesc{Type: TypeBool}), ShouldBeNil)
			So(fc.Object(), ShouldResemble, map[string]any{"yes": true, "no": false})
		})

		Convey(`SetKV validates against a field table.`, func() {
			fields := map[string]FieldDesc{
				"vulnerability.severity":  {Type: TypeString},
				"vulnerability.cvssScore": {Type: TypeFloat},
			}
			So(fc.SetKV("vulnerability.severity", "HIGH", fields), ShouldBeNil)
			So(fc.SetKV(".cvssScore", "7.5", fields), ShouldBeNil)
			So(fc.Object(), ShouldResemble, map[string]any{
				"vulnerability": map[string]any{
					"severity":  "HIGH",
					"cvssScore": 7.5,
				},
			})

			err := fc.SetKV("vulnerability.sevrity", "LOW", fields)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, `did you mean "vulnerability.severity"?`)
		})
	})
}

func TestParseKV(t *testing.T) {
	t.Parallel()

	Convey(`ParseKV splits on the first '='`, t, func() {
		k, v, err := ParseKV("filter=kind=\"VULNERABILITY\"")
		So(err, ShouldBeNil)
		So(k, ShouldEqual, "filter")
		So(v, ShouldEqual, `kind="VULNERABILITY"`)

		_, _, err = ParseKV("novalue")
		So(err, ShouldNotBeNil)
		_, _, err = ParseKV("=empty-key")
		So(err, ShouldNotBeNil)
	})
}

func TestDidYouMean(t *testing.T) {
	t.Parallel()

	Convey(`Close names are suggested`, t, func() {
		names := []string{"severity", "cvssScore", "sourceUpdateTime"}
		So(DidYouMean("serverity", names), ShouldEqual, `did you mean "severity"?`)
		So(DidYouMean("completely-different", names), ShouldEqual, "")
		So(UnknownName("field", "serverity", names), ShouldContainSubstring, "severity")
	})
}

func TestPrintJSON(t *testing.T) {
	t.Parallel()

	Convey(`Nulls are dropped from output`, t, func() {
		buf := &bytes.Buffer{}
		err := PrintJSON(buf, map[string]any{
			"name":  "n",
			"gone":  nil,
			"inner": map[string]any{"also-gone": nil, "kept": 1},
		})
		So(err, ShouldBeNil)
		So(buf.String(), ShouldNotContainSubstring, "gone")
		So(buf.String(), ShouldContainSubstring, `"kept": 1`)
	})
}
