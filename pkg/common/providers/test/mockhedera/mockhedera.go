/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mockhedera

import (
	"time"

	"github.com/golang/mock/gomock"

	"github.com/hashgraph/hedera-sdk-go/pkg/common/providers/hedera"
	"github.com/hashgraph/hedera-sdk-go/pkg/hedera/id"
	"github.com/hashgraph/hedera-sdk-go/pkg/hedera/metrics"
)

// OperatorAccount is the operator of the default mock context
var OperatorAccount = id.AccountID{Num: 2}

// NodeAccount is the node of the default mock context
var NodeAccount = id.AccountID{Num: 3}

// DefaultTransactionConfig is returned by the default mock config
var DefaultTransactionConfig = hedera.TransactionConfig{
	DefaultFee:     100000,
	ValidDuration:  120 * time.Second,
	ValidStartSkew: 10 * time.Second,
}

// DefaultMockConfig returns a default mock config for testing
func DefaultMockConfig(mockCtrl *gomock.Controller) *MockEndpointConfig {
	return CustomMockConfig(mockCtrl, DefaultTransactionConfig)
}

// CustomMockConfig returns a mock config with the given transaction settings
func CustomMockConfig(mockCtrl *gomock.Controller, txCfg hedera.TransactionConfig) *MockEndpointConfig {
	config := NewMockEndpointConfig(mockCtrl)

	node := NodeAccount
	operator := OperatorAccount
	config.EXPECT().NetworkConfig().Return(hedera.NetworkConfig{Address: "127.0.0.1:50211", Node: &node}).AnyTimes()
	config.EXPECT().OperatorConfig().Return(hedera.OperatorConfig{Account: &operator}).AnyTimes()
	config.EXPECT().TransactionConfig().Return(txCfg).AnyTimes()
	config.EXPECT().ConnectionConfig().Return(hedera.ConnectionConfig{Timeout: 5 * time.Second, AllowInsecure: true}).AnyTimes()
	config.EXPECT().MetricsConfig().Return(hedera.MetricsConfig{Namespace: metrics.DefaultNamespace}).AnyTimes()

	return config
}

// DefaultMockContext returns a mock context with the default config, an
// operator and a node, and no operator signer
func DefaultMockContext(mockCtrl *gomock.Controller, services hedera.Services) *MockContext {
	return CustomMockContext(mockCtrl, services, DefaultMockConfig(mockCtrl), nil)
}

// CustomMockContext returns a mock context using config. The operator signer
// is reported only when signer is not nil.
func CustomMockContext(mockCtrl *gomock.Controller, services hedera.Services, config hedera.EndpointConfig, signer hedera.Signer) *MockContext {
	ctx := NewMockContext(mockCtrl)

	ctx.EXPECT().Services().Return(services).AnyTimes()
	ctx.EXPECT().EndpointConfig().Return(config).AnyTimes()
	ctx.EXPECT().Operator().Return(OperatorAccount, true).AnyTimes()
	ctx.EXPECT().Node().Return(NodeAccount, true).AnyTimes()
	ctx.EXPECT().OperatorSigner().Return(signer, signer != nil).AnyTimes()
	ctx.EXPECT().Metrics().Return(metrics.NewDisabledClientMetrics()).AnyTimes()

	return ctx
}

// NoOperatorMockContext returns a mock context without operator or node
func NoOperatorMockContext(mockCtrl *gomock.Controller, services hedera.Services) *MockContext {
	ctx := NewMockContext(mockCtrl)

	ctx.EXPECT().Services().Return(services).AnyTimes()
	ctx.EXPECT().EndpointConfig().Return(DefaultMockConfig(mockCtrl)).AnyTimes()
	ctx.EXPECT().Operator().Return(id.AccountID{}, false).AnyTimes()
	ctx.EXPECT().Node().Return(id.AccountID{}, false).AnyTimes()
	ctx.EXPECT().OperatorSigner().Return(nil, false).AnyTimes()
	ctx.EXPECT().Metrics().Return(metrics.NewDisabledClientMetrics()).AnyTimes()

	return ctx
}
