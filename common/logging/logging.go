// Copyright 2024 The google-apis-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package logging defines a Logger interface and context-based discovery of
// the current logger. Libraries in this repository log exclusively through
// this package; binaries install a concrete implementation (see gologger).
package logging

import (
	"context"
)

// Logger interface is ultimately implemented by underlying logging libraries.
type Logger interface {
	// Debugf formats its arguments according to the format, analogous to
	// fmt.Printf, and records the text as a log message at Debug level.
	Debugf(format string, args ...any)

	// Infof is like Debugf, but logs at Info level.
	Infof(format string, args ...any)

	// Warningf is like Debugf, but logs at Warning level.
	Warningf(format string, args ...any)

	// Errorf is like Debugf, but logs at Error level.
	Errorf(format string, args ...any)

	// LogCall is a generic logging function with an explicit level and a
	// calldepth used to figure out what source line to attribute the message
	// to.
	LogCall(l Level, calldepth int, format string, args []any)
}

// Unique value for logger key.
var loggerKey = "logging.Logger"

// SetFactory sets the Logger factory for this context.
func SetFactory(ctx context.Context, f func(context.Context) Logger) context.Context {
	return context.WithValue(ctx, &loggerKey, f)
}

// Set sets the logger for this context.
func Set(ctx context.Context, l Logger) context.Context {
	return SetFactory(ctx, func(context.Context) Logger { return l })
}

// Get the current Logger, or a logger that ignores all messages if none is
// defined.
func Get(ctx context.Context) Logger {
	if f, ok := ctx.Value(&loggerKey).(func(context.Context) Logger); ok {
		return f(ctx)
	}
	return Null
}

// Debugf is a shorthand method to call the current logger's Debugf method.
func Debugf(ctx context.Context, format string, args ...any) {
	Get(ctx).LogCall(Debug, 1, format, args)
}

// Infof is a shorthand method to call the current logger's Infof method.
func Infof(ctx context.Context, format string, args ...any) {
	Get(ctx).LogCall(Info, 1, format, args)
}

// Warningf is a shorthand method to call the current logger's Warningf
// method.
func Warningf(ctx context.Context, format string, args ...any) {
	Get(ctx).LogCall(Warning, 1, format, args)
}

// Errorf is a shorthand method to call the current logger's Errorf method.
func Errorf(ctx context.Context, format string, args ...any) {
	Get(ctx).LogCall(Error, 1, format, args)
}
