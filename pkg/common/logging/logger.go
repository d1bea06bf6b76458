/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package logging provides the module loggers of the SDK.
//
// Every package logs through a Logger named after it ("hedera/txn",
// "client/query", ...). Messages go to the standard log package unless an
// application installs its own api.LoggerProvider with Initialize before the
// first message is written. Levels are kept per module and are normally set
// from the client.logging.level configuration key.
package logging

import (
	"sync"

	"github.com/hashgraph/hedera-sdk-go/pkg/core/logging/api"
	"github.com/hashgraph/hedera-sdk-go/pkg/core/logging/metadata"
	"github.com/hashgraph/hedera-sdk-go/pkg/core/logging/modlog"
)

// Level is the severity of a message
type Level = api.Level

// Levels, most severe first
const (
	CRITICAL = api.CRITICAL
	ERROR    = api.ERROR
	WARNING  = api.WARNING
	INFO     = api.INFO
	DEBUG    = api.DEBUG
)

const selfModule = "common/logging"

var (
	provider     api.LoggerProvider
	providerOnce sync.Once
)

// Logger writes the messages of one module. The provider is resolved on the
// first message, so loggers may be created in package variables.
type Logger struct {
	module string
	once   sync.Once
	target api.Logger
}

// NewLogger returns the logger of module
func NewLogger(module string) *Logger {
	return &Logger{module: module}
}

// Initialize installs p as the destination of all module loggers. Only the
// first call before any message is written takes effect.
func Initialize(p api.LoggerProvider) {
	providerOnce.Do(func() {
		provider = p
		provider.GetLogger(selfModule).Debug("Logger provider initialized")
	})
}

func currentProvider() api.LoggerProvider {
	providerOnce.Do(func() {
		provider = modlog.LoggerProvider()
		provider.GetLogger(selfModule).Debug("no logger provider installed, writing to the standard logger")
	})
	return provider
}

// SetLevel sets the lowest severity module writes
func SetLevel(module string, level Level) {
	modlog.SetLevel(module, level)
}

// GetLevel returns the level of module
func GetLevel(module string) Level {
	return modlog.GetLevel(module)
}

// IsEnabledFor reports whether module writes messages of level
func IsEnabledFor(module string, level Level) bool {
	return modlog.IsEnabledFor(module, level)
}

// LogLevel parses a level name such as "info" or "WARNING"
func LogLevel(level string) (Level, error) {
	return metadata.ParseLevel(level)
}

func (l *Logger) logger() api.Logger {
	l.once.Do(func() {
		l.target = currentProvider().GetLogger(l.module)
	})
	return l.target
}

// Debug writes a DEBUG message
func (l *Logger) Debug(args ...interface{}) { l.logger().Debug(args...) }

// Debugf writes a formatted DEBUG message
func (l *Logger) Debugf(format string, args ...interface{}) { l.logger().Debugf(format, args...) }

// Info writes an INFO message
func (l *Logger) Info(args ...interface{}) { l.logger().Info(args...) }

// Infof writes a formatted INFO message
func (l *Logger) Infof(format string, args ...interface{}) { l.logger().Infof(format, args...) }

// Warn writes a WARNING message
func (l *Logger) Warn(args ...interface{}) { l.logger().Warn(args...) }

// Warnf writes a formatted WARNING message
func (l *Logger) Warnf(format string, args ...interface{}) { l.logger().Warnf(format, args...) }

// Error writes an ERROR message
func (l *Logger) Error(args ...interface{}) { l.logger().Error(args...) }

// Errorf writes a formatted ERROR message
func (l *Logger) Errorf(format string, args ...interface{}) { l.logger().Errorf(format, args...) }
