// Copyright 2024 The google-apis-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package logging

// Null is a logger that silently ignores all messages.
var Null Logger = nullLogger{}

type nullLogger struct{}

func (nullLogger) Debugf(string, ...any)             {}
func (nullLogger) Infof(string, ...any)              {}
func (nullLogger) Warningf(string, ...any)           {}
func (nullLogger) Errorf(string, ...any)             {}
func (nullLogger) LogCall(Level, int, string, []any) {}
