// Copyright 2016 The Cayley Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package clog provides the logging interface used throughout this
// module, plus an optional component tag so the loader, resolver,
// model, schemaassets and command packages can each identify their
// own log lines without
// pulling in a structured-logging framework.
package clog

import "log"

// Logger is the clog logging interface.
type Logger interface {
	Infof(format string, args ...interface{})
	Warningf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
}

var logger Logger = stdlog{}

// SetLogger set the clog logging implementation.
func SetLogger(l Logger) { logger = l }

var verbosity int

// V returns whether the current clog verbosity is above the specified level.
func V(level int) bool { return verbosity >= level }

// SetV sets the clog verbosity level.
func SetV(level int) { verbosity = level }

// Infof logs information level messages.
func Infof(format string, args ...interface{}) {
	if logger != nil {
		logger.Infof(format, args...)
	}
}

// Warningf logs warning level messages.
func Warningf(format string, args ...interface{}) {
	if logger != nil {
		logger.Warningf(format, args...)
	}
}

// Errorf logs error level messages.
func Errorf(format string, args ...interface{}) {
	if logger != nil {
		logger.Errorf(format, args...)
	}
}

// Fatalf logs fatal messages and terminates the program.
func Fatalf(format string, args ...interface{}) {
	if logger != nil {
		logger.Fatalf(format, args...)
	}
}

// Component returns a Logger whose messages are prefixed with name,
// e.g. clog.Component("resolver").Warningf("field %s not found", iri).
// The loader, resolver, model, schemaassets and command packages each
// take one of these
// instead of logging through the bare package-level functions, so a
// single verbosity setting still lets log lines be attributed to the
// stage that produced them.
func Component(name string) Logger { return component(name) }

type component string

func (c component) Infof(format string, args ...interface{}) {
	Infof("%s: "+format, append([]interface{}{string(c)}, args...)...)
}

func (c component) Warningf(format string, args ...interface{}) {
	Warningf("%s: "+format, append([]interface{}{string(c)}, args...)...)
}

func (c component) Errorf(format string, args ...interface{}) {
	Errorf("%s: "+format, append([]interface{}{string(c)}, args...)...)
}

func (c component) Fatalf(format string, args ...interface{}) {
	Fatalf("%s: "+format, append([]interface{}{string(c)}, args...)...)
}

// stdlog wraps the standard library logger.
type stdlog struct{}

func (stdlog) Infof(format string, args ...interface{})    { log.Printf(format, args...) }
func (stdlog) Warningf(format string, args ...interface{}) { log.Printf("WARN: "+format, args...) }
func (stdlog) Errorf(format string, args ...interface{})   { log.Printf("ERROR: "+format, args...) }
func (stdlog) Fatalf(format string, args ...interface{})   { log.Fatalf("FATAL: "+format, args...) }
