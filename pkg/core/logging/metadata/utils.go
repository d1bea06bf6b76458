/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package metadata

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/hashgraph/hedera-sdk-go/pkg/core/logging/api"
)

var levelNames = []string{
	"CRITICAL",
	"ERROR",
	"WARNING",
	"INFO",
	"DEBUG",
}

// ParseLevel returns the log level from a string representation.
// "WARN" is accepted as an alias of WARNING.
func ParseLevel(level string) (api.Level, error) {
	if strings.EqualFold(level, "WARN") {
		return api.WARNING, nil
	}
	for i, name := range levelNames {
		if strings.EqualFold(name, level) {
			return api.Level(i), nil
		}
	}
	return api.ERROR, errors.Errorf("logger: invalid log level %q", level)
}

// ParseString returns the string representation of the given log level
func ParseString(level api.Level) string {
	if level < 0 || int(level) >= len(levelNames) {
		return "UNKNOWN"
	}
	return levelNames[level]
}
