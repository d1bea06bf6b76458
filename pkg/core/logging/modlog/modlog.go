/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package modlog provides the built-in module logger. Each module writes
// through its own stdlib logger and is filtered by a per-module level.
package modlog

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"github.com/hashgraph/hedera-sdk-go/pkg/core/logging/api"
	"github.com/hashgraph/hedera-sdk-go/pkg/core/logging/metadata"
)

var (
	rwmutex      = &sync.RWMutex{}
	moduleLevels = &metadata.ModuleLevels{}
)

const (
	logLevelFormatter  = "UTC %s-> %4.4s "
	logPrefixFormatter = " [%s] "
)

// Provider is the default logger implementation
type Provider struct {
}

// GetLogger returns an SDK logger implementation
func (p *Provider) GetLogger(module string) api.Logger {
	return &Log{
		deflogger: log.New(os.Stdout, fmt.Sprintf(logPrefixFormatter, module), log.Ldate|log.Ltime|log.LUTC),
		module:    module,
	}
}

// LoggerProvider returns logging provider for SDK logger
func LoggerProvider() api.LoggerProvider {
	return &Provider{}
}

// Log is a standard SDK logger implementation
type Log struct {
	deflogger *log.Logger
	module    string
}

// SetLevel sets the log level for the given module
func SetLevel(module string, level api.Level) {
	rwmutex.Lock()
	defer rwmutex.Unlock()
	moduleLevels.SetLevel(module, level)
}

// GetLevel returns the log level for the given module
func GetLevel(module string) api.Level {
	rwmutex.RLock()
	defer rwmutex.RUnlock()
	return moduleLevels.GetLevel(module)
}

// IsEnabledFor returns true if the given level is enabled for the module
func IsEnabledFor(module string, level api.Level) bool {
	rwmutex.RLock()
	defer rwmutex.RUnlock()
	return moduleLevels.IsEnabledFor(module, level)
}

// Debug logs at DEBUG level
func (l *Log) Debug(args ...interface{}) {
	l.log(api.DEBUG, args...)
}

// Debugf logs a formatted message at DEBUG level
func (l *Log) Debugf(format string, args ...interface{}) {
	l.logf(api.DEBUG, format, args...)
}

// Info logs at INFO level
func (l *Log) Info(args ...interface{}) {
	l.log(api.INFO, args...)
}

// Infof logs a formatted message at INFO level
func (l *Log) Infof(format string, args ...interface{}) {
	l.logf(api.INFO, format, args...)
}

// Warn logs at WARNING level
func (l *Log) Warn(args ...interface{}) {
	l.log(api.WARNING, args...)
}

// Warnf logs a formatted message at WARNING level
func (l *Log) Warnf(format string, args ...interface{}) {
	l.logf(api.WARNING, format, args...)
}

// Error logs at ERROR level
func (l *Log) Error(args ...interface{}) {
	l.log(api.ERROR, args...)
}

// Errorf logs a formatted message at ERROR level
func (l *Log) Errorf(format string, args ...interface{}) {
	l.logf(api.ERROR, format, args...)
}

// ChangeOutput for changing output destination for the logger.
func (l *Log) ChangeOutput(output io.Writer) {
	l.deflogger.SetOutput(output)
}

func (l *Log) logf(level api.Level, format string, args ...interface{}) {
	if !IsEnabledFor(l.module, level) {
		return
	}
	//Format prefix to show function name and log level
	customPrefix := fmt.Sprintf(logLevelFormatter, l.module, metadata.ParseString(level))
	l.output(customPrefix + fmt.Sprintf(format, args...))
}

func (l *Log) log(level api.Level, args ...interface{}) {
	if !IsEnabledFor(l.module, level) {
		return
	}
	customPrefix := fmt.Sprintf(logLevelFormatter, l.module, metadata.ParseString(level))
	l.output(customPrefix + fmt.Sprint(args...))
}

func (l *Log) output(msg string) {
	if err := l.deflogger.Output(2, msg); err != nil {
		fmt.Fprintf(os.Stderr, "log output failed: %s\n", err)
	}
}
