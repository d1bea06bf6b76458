/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package config

import (
	"github.com/spf13/viper"

	"github.com/hashgraph/hedera-sdk-go/pkg/common/providers/core"
)

// defConfigBackend represents the default config backend
type defConfigBackend struct {
	configViper *viper.Viper
	opts        options
}

// Lookup gets the config item value by Key
func (c *defConfigBackend) Lookup(key string, opts ...core.LookupOption) (interface{}, bool) {
	lookupOpts := &core.LookupOpts{}
	for _, option := range opts {
		option(lookupOpts)
	}

	if lookupOpts.UnmarshalType != nil {
		if !c.configViper.IsSet(key) {
			return nil, false
		}
		if err := c.configViper.UnmarshalKey(key, lookupOpts.UnmarshalType); err != nil {
			return nil, false
		}
		return lookupOpts.UnmarshalType, true
	}

	value := c.configViper.Get(key)
	if value == nil {
		return nil, false
	}
	return value, true
}
