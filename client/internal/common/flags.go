// Copyright 2024 The google-apis-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package common

import "strings"

// StringsFlag is a repeated string flag. Each occurrence appends a value.
type StringsFlag []string

func (f *StringsFlag) String() string {
	return strings.Join(*f, " ")
}

// Set implements flag.Value.
func (f *StringsFlag) Set(v string) error {
	*f = append(*f, v)
	return nil
}

// KVsFlag is a repeated key=value flag. The key=value shape is checked when
// collected; key meaning is interpreted by the command.
type KVsFlag []string

func (f *KVsFlag) String() string {
	return strings.Join(*f, " ")
}

// Set implements flag.Value.
func (f *KVsFlag) Set(v string) error {
	if _, _, err := ParseKV(v); err != nil {
		return err
	}
	*f = append(*f, v)
	return nil
}
