/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mocks

import (
	"github.com/mitchellh/mapstructure"

	"github.com/hashgraph/hedera-sdk-go/pkg/common/providers/core"
)

//MockConfigBackend mocks config backend for unit tests
type MockConfigBackend struct {
	//KeyValueMap map to override CustomBackend key-values.
	KeyValueMap map[string]interface{}
}

// NewMockConfigBackend returns a backend holding the given key-values
func NewMockConfigBackend(kv map[string]interface{}) *MockConfigBackend {
	if kv == nil {
		kv = make(map[string]interface{})
	}
	return &MockConfigBackend{KeyValueMap: kv}
}

// Provider returns a config provider serving this backend
func (b *MockConfigBackend) Provider() core.ConfigProvider {
	return func() ([]core.ConfigBackend, error) {
		return []core.ConfigBackend{b}, nil
	}
}

//Lookup returns or unmarshals value for given key
func (b *MockConfigBackend) Lookup(key string, opts ...core.LookupOption) (interface{}, bool) {
	v, ok := b.KeyValueMap[key]
	if !ok {
		return nil, false
	}

	lookupOpts := &core.LookupOpts{}
	for _, option := range opts {
		option(lookupOpts)
	}
	if lookupOpts.UnmarshalType == nil {
		return v, true
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		WeaklyTypedInput: true,
		Result:           lookupOpts.UnmarshalType,
	})
	if err != nil {
		return nil, false
	}
	if err := decoder.Decode(v); err != nil {
		return nil, false
	}
	return lookupOpts.UnmarshalType, true
}

// Set sets a value for the given key
func (b *MockConfigBackend) Set(key string, value interface{}) {
	b.KeyValueMap[key] = value
}
