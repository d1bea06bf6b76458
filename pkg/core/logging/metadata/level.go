/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package metadata

import "github.com/hashgraph/hedera-sdk-go/pkg/core/logging/api"

// ModuleLevels maintains log levels based on module. The empty module name
// holds the default level.
type ModuleLevels struct {
	levels map[string]api.Level
}

// GetLevel returns the log level for the given module.
func (l *ModuleLevels) GetLevel(module string) api.Level {
	if level, exists := l.levels[module]; exists {
		return level
	}
	if level, exists := l.levels[""]; exists {
		return level
	}
	return api.INFO
}

// SetLevel sets the log level for the given module.
func (l *ModuleLevels) SetLevel(module string, level api.Level) {
	if l.levels == nil {
		l.levels = make(map[string]api.Level)
	}
	l.levels[module] = level
}

// IsEnabledFor will return true if logging is enabled for the given module.
func (l *ModuleLevels) IsEnabledFor(module string, level api.Level) bool {
	return level <= l.GetLevel(module)
}
