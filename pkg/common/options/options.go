/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package options carries functional options to components whose parameters
// are private. An option only takes effect when the parameters implement the
// setter interface it looks for, so one option set may be shared by several
// components.
package options

// Params is the target of a set of options
type Params interface{}

// Opt sets one parameter
type Opt func(opts Params)

// Apply applies opts to params in order; nil options are skipped
func Apply(params Params, opts []Opt) {
	for _, opt := range opts {
		if opt != nil {
			opt(params)
		}
	}
}
