// Copyright 2024 The google-apis-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package common

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// OpenOutput returns the writer results should be printed to. An empty
// destination or "-" means stdout; anything else is treated as a file path.
// The returned func closes the file, if one was opened.
func OpenOutput(dest string) (io.Writer, func() error, error) {
	if dest == "" || dest == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.OpenFile(dest, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s: %s", dest, err)
	}
	return f, f.Close, nil
}

// PrintJSON pretty-prints object to w with 2 space indentation, after
// removing JSON null values. The server uses nulls to mark cleared fields;
// they are noise in human-facing output.
func PrintJSON(w io.Writer, object any) error {
	blob, err := json.Marshal(object)
	if err != nil {
		return err
	}
	var tree any
	if err := json.Unmarshal(blob, &tree); err != nil {
		return err
	}
	tree = removeNulls(tree)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(tree)
}

func removeNulls(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			if val == nil {
				delete(t, k)
			} else {
				t[k] = removeNulls(val)
			}
		}
	case []any:
		for i, val := range t {
			t[i] = removeNulls(val)
		}
	}
	return v
}
