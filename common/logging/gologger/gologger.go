// Copyright 2024 The google-apis-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package gologger provides a logging.Logger implementation backed by the
// go-logging library.
package gologger

import (
	"context"
	"io"
	"os"
	"sync"

	gol "github.com/op/go-logging"

	"github.com/dermesser/google-apis-go/common/logging"
)

// StandardFormat prints time, log level and source location, all colored,
// then the message.
const StandardFormat = `%{color}[%{time:15:04:05.000} %{shortfile} %{level:.4s}]%{color:reset} %{message}`

// StdConfig defines default logger configuration: writes >=Debug messages to
// STDERR.
var StdConfig = LoggerConfig{
	Format: StandardFormat,
	Out:    os.Stderr,
	Level:  gol.DEBUG,
}

// LoggerConfig owns a go-logging logger, configured in some way.
//
// Despite its name, the zero value is not a valid configuration; at minimum,
// Out must be set. A nil Format defaults to StandardFormat.
type LoggerConfig struct {
	Out    io.Writer // where to write the log to, required
	Format string    // how to format the log, defaults to StandardFormat
	Level  gol.Level // logging level, default is gol.DEBUG (everything)

	once   sync.Once
	logger *loggerImpl
}

// NewLogger returns a new logging.Logger writing messages of the given level
// (or above) to w.
func NewLogger(w io.Writer, level gol.Level) logging.Logger {
	lc := LoggerConfig{Format: StandardFormat, Out: w, Level: level}
	return lc.getImpl()
}

// Use registers the logger configured by lc as the logger in the context.
func (lc *LoggerConfig) Use(ctx context.Context) context.Context {
	return logging.Set(ctx, lc.getImpl())
}

func (lc *LoggerConfig) getImpl() *loggerImpl {
	lc.once.Do(func() {
		lc.logger = &loggerImpl{l: lc.newGoLogger()}
	})
	return lc.logger
}

func (lc *LoggerConfig) newGoLogger() *gol.Logger {
	format := lc.Format
	if format == "" {
		format = StandardFormat
	}
	backend := gol.NewLogBackend(lc.Out, "", 0)
	formatted := gol.NewBackendFormatter(backend, gol.MustStringFormatter(format))
	leveled := gol.AddModuleLevel(formatted)
	leveled.SetLevel(lc.Level, "")
	l := &gol.Logger{Module: "goapis"}
	l.SetBackend(leveled)
	return l
}

type loggerImpl struct {
	l *gol.Logger
}

func (li *loggerImpl) Debugf(format string, args ...any) {
	li.LogCall(logging.Debug, 1, format, args)
}

func (li *loggerImpl) Infof(format string, args ...any) {
	li.LogCall(logging.Info, 1, format, args)
}

func (li *loggerImpl) Warningf(format string, args ...any) {
	li.LogCall(logging.Warning, 1, format, args)
}

func (li *loggerImpl) Errorf(format string, args ...any) {
	li.LogCall(logging.Error, 1, format, args)
}

func (li *loggerImpl) LogCall(l logging.Level, calldepth int, format string, args []any) {
	// ExtraCalldepth makes go-logging attribute the message to our caller,
	// not to this wrapper.
	li.l.ExtraCalldepth = calldepth + 1
	switch l {
	case logging.Debug:
		li.l.Debugf(format, args...)
	case logging.Info:
		li.l.Infof(format, args...)
	case logging.Warning:
		li.l.Warningf(format, args...)
	default:
		li.l.Errorf(format, args...)
	}
}
