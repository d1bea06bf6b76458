/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package api holds the contract between the SDK's module loggers and the
// implementation that writes their messages.
package api

// Level is a message severity. Lower values are more severe; a module set
// to INFO writes CRITICAL through INFO and drops DEBUG.
type Level int

// Levels, most severe first
const (
	CRITICAL Level = iota
	ERROR
	WARNING
	INFO
	DEBUG
)

// Logger receives the messages of a single module
type Logger interface {
	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
}

// LoggerProvider hands out the Logger of a module. Applications install
// their own with logging.Initialize.
type LoggerProvider interface {
	GetLogger(module string) Logger
}
