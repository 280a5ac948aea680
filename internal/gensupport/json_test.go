// Copyright 2024 The google-apis-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package gensupport

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type jsonTestSchema struct {
	// Fields mirror what the generator emits: camelCase wire names with
	// omitempty, plus the ForceSendFields/NullFields selectors.
	B   bool              `json:"b,omitempty"`
	F   float64           `json:"f,omitempty"`
	I   int64             `json:"i,omitempty"`
	Str string            `json:"str,omitempty"`
	P   *string           `json:"p,omitempty"`
	M   map[string]string `json:"m,omitempty"`
	L   []string          `json:"l,omitempty"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func marshaled(t *testing.T, s jsonTestSchema) map[string]any {
	t.Helper()
	b, err := MarshalJSON(s, s.ForceSendFields, s.NullFields)
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	return m
}

func TestMarshalJSON(t *testing.T) {
	t.Parallel()

	str := "s"
	cases := []struct {
		name string
		in   jsonTestSchema
		want map[string]any
	}{
		{
			name: "empty fields are dropped",
			in:   jsonTestSchema{Str: "x"},
			want: map[string]any{"str": "x"},
		},
		{
			name: "ForceSendFields keeps zero values",
			in: jsonTestSchema{
				Str:             "x",
				ForceSendFields: []string{"B", "I"},
			},
			want: map[string]any{"str": "x", "b": false, "i": float64(0)},
		},
		{
			name: "ForceSendFields does not resurrect nil pointers",
			in: jsonTestSchema{
				ForceSendFields: []string{"P", "Str"},
			},
			want: map[string]any{"str": ""},
		},
		{
			name: "NullFields sends explicit nulls",
			in: jsonTestSchema{
				Str:        "x",
				NullFields: []string{"L"},
			},
			want: map[string]any{"str": "x", "l": nil},
		},
		{
			name: "NullFields with map keys",
			in: jsonTestSchema{
				M:          map[string]string{"keep": "v"},
				NullFields: []string{"M.drop"},
			},
			want: map[string]any{"m": map[string]any{"keep": "v", "drop": nil}},
		},
		{
			name: "pointers and collections are passed through",
			in: jsonTestSchema{
				P: &str,
				L: []string{"a", "b"},
			},
			want: map[string]any{"p": "s", "l": []any{"a", "b"}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, marshaled(t, tc.in)); diff != "" {
				t.Errorf("MarshalJSON mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMarshalJSONErrors(t *testing.T) {
	t.Parallel()

	s := jsonTestSchema{Str: "x", NullFields: []string{"Str"}}
	if _, err := MarshalJSON(s, nil, s.NullFields); err == nil {
		t.Error("expected an error for a NullFields entry with a non-empty value")
	}

	s = jsonTestSchema{NullFields: []string{"Str.key"}}
	if _, err := MarshalJSON(s, nil, s.NullFields); err == nil {
		t.Error("expected an error for map-style NullFields on a non-map")
	}
}
