/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package multi is an error type that holds multiple errors. The SDK uses it
// when validating client configuration, so that every missing or malformed
// setting is reported at once instead of one per attempt.
package multi

import (
	"strings"
)

// Errors is used to represent multiple errors
type Errors []error

// New Errors object with the given errors. Only non-nil errors are kept.
// Returns nil when no error remains and the error itself when only one does.
func New(errs ...error) error {
	var m Errors
	for _, err := range errs {
		m = m.add(err)
	}
	return m.ToError()
}

// Append err to errs. If errs is not an Errors value, one is created.
func Append(errs error, err error) error {
	m, ok := errs.(Errors)
	if !ok {
		return New(errs, err)
	}
	return m.add(err)
}

func (errs Errors) add(err error) Errors {
	if err == nil {
		return errs
	}
	if nested, ok := err.(Errors); ok {
		return append(errs, nested...)
	}
	return append(errs, err)
}

// ToError converts Errors to the error interface.
// Returns nil if no errors are present, the single error if only one is present.
func (errs Errors) ToError() error {
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	}
	return errs
}

// Error implements the error interface
func (errs Errors) Error() string {
	switch len(errs) {
	case 0:
		return ""
	case 1:
		return errs[0].Error()
	}

	msgs := make([]string, 0, len(errs)+1)
	msgs = append(msgs, "Multiple errors occurred:")
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, " - ")
}
