/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package hedera

import (
	"io/ioutil"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/hashgraph/hedera-sdk-go/pkg/common/errors/multi"
	"github.com/hashgraph/hedera-sdk-go/pkg/common/logging"
	"github.com/hashgraph/hedera-sdk-go/pkg/common/providers/core"
	"github.com/hashgraph/hedera-sdk-go/pkg/common/providers/hedera"
	"github.com/hashgraph/hedera-sdk-go/pkg/core/config/lookup"
	"github.com/hashgraph/hedera-sdk-go/pkg/hedera/id"
	"github.com/hashgraph/hedera-sdk-go/pkg/hedera/metrics"
)

var logger = logging.NewLogger("hederasdk")

const (
	// DefaultTransactionFee is the fee offered when none is configured
	DefaultTransactionFee uint64 = 100000
	// DefaultValidDuration is how long a transaction stays valid after its valid start
	DefaultValidDuration = 120 * time.Second

	defaultConnectionTimeout = 10 * time.Second
)

const (
	keyNetworkAddress   = "client.network.address"
	keyNetworkNode      = "client.network.node"
	keyOperatorAccount  = "client.operator.account"
	keyOperatorKey      = "client.operator.privateKey"
	keyOperatorKeyFile  = "client.operator.privateKeyFile"
	keyDefaultFee       = "client.transaction.defaultFee"
	keyValidDuration    = "client.transaction.validDuration"
	keyValidStartSkew   = "client.transaction.validStartSkew"
	keyNested           = "client.transaction.nestedSignatures"
	keyTimeout          = "client.connection.timeout"
	keyKeepAlive        = "client.connection.keepAlive"
	keyAllowInsecure    = "client.connection.allowInsecure"
	keyTLSCACerts       = "client.connection.tlsCACerts"
	keyMetricsEnabled   = "client.metrics.enabled"
	keyMetricsNamespace = "client.metrics.namespace"
)

//ConfigFromBackend returns endpoint config implementation for given backend
func ConfigFromBackend(coreBackend ...core.ConfigBackend) (hedera.EndpointConfig, error) {
	config := &EndpointConfig{backend: lookup.New(coreBackend...)}

	if err := config.loadEndpointConfiguration(); err != nil {
		return nil, errors.WithMessage(err, "client configuration load failed")
	}
	return config, nil
}

// EndpointConfig represents the endpoint configuration for the client
type EndpointConfig struct {
	backend           *lookup.ConfigLookup
	networkConfig     hedera.NetworkConfig
	operatorConfig    hedera.OperatorConfig
	transactionConfig hedera.TransactionConfig
	connectionConfig  hedera.ConnectionConfig
	metricsConfig     hedera.MetricsConfig
}

type keepAliveConfig struct {
	Time    time.Duration
	Timeout time.Duration
}

// NetworkConfig returns the node address and account
func (c *EndpointConfig) NetworkConfig() hedera.NetworkConfig {
	return c.networkConfig
}

// OperatorConfig returns the paying account and its key
func (c *EndpointConfig) OperatorConfig() hedera.OperatorConfig {
	return c.operatorConfig
}

// TransactionConfig returns the transaction defaults
func (c *EndpointConfig) TransactionConfig() hedera.TransactionConfig {
	return c.transactionConfig
}

// ConnectionConfig returns the gRPC connection settings
func (c *EndpointConfig) ConnectionConfig() hedera.ConnectionConfig {
	return c.connectionConfig
}

// MetricsConfig returns the metrics settings
func (c *EndpointConfig) MetricsConfig() hedera.MetricsConfig {
	return c.metricsConfig
}

func (c *EndpointConfig) loadEndpointConfiguration() error {
	var errs error

	errs = multi.Append(errs, c.loadNetworkConfig())
	errs = multi.Append(errs, c.loadOperatorConfig())
	errs = multi.Append(errs, c.loadTransactionConfig())
	errs = multi.Append(errs, c.loadConnectionConfig())
	c.loadMetricsConfig()

	return errs
}

func (c *EndpointConfig) loadNetworkConfig() error {
	c.networkConfig.Address = c.backend.GetString(keyNetworkAddress)

	node, err := c.accountID(keyNetworkNode)
	if err != nil {
		return err
	}
	c.networkConfig.Node = node
	return nil
}

func (c *EndpointConfig) loadOperatorConfig() error {
	var errs error

	account, err := c.accountID(keyOperatorAccount)
	errs = multi.Append(errs, err)
	c.operatorConfig.Account = account

	c.operatorConfig.PrivateKey = strings.TrimSpace(c.backend.GetString(keyOperatorKey))
	c.operatorConfig.PrivateKeyFile = c.backend.GetString(keyOperatorKeyFile)

	if c.operatorConfig.PrivateKey == "" && c.operatorConfig.PrivateKeyFile != "" {
		raw, err := ioutil.ReadFile(c.operatorConfig.PrivateKeyFile)
		if err != nil {
			errs = multi.Append(errs, errors.Wrapf(err, "reading %s failed", keyOperatorKeyFile))
		} else {
			c.operatorConfig.PrivateKey = strings.TrimSpace(string(raw))
		}
	}

	if c.operatorConfig.PrivateKey != "" && account == nil {
		errs = multi.Append(errs, errors.Errorf("%s is required when an operator key is configured", keyOperatorAccount))
	}
	return errs
}

func (c *EndpointConfig) loadTransactionConfig() error {
	tc := hedera.TransactionConfig{
		DefaultFee:     DefaultTransactionFee,
		ValidDuration:  DefaultValidDuration,
		ValidStartSkew: id.DefaultValidStartSkew,
	}

	if c.backend.IsSet(keyDefaultFee) {
		tc.DefaultFee = c.backend.GetUint64(keyDefaultFee)
	}
	if d := c.backend.GetDuration(keyValidDuration); d > 0 {
		tc.ValidDuration = d
	}
	if c.backend.IsSet(keyValidStartSkew) {
		tc.ValidStartSkew = c.backend.GetDuration(keyValidStartSkew)
	}

	nested := make(map[string]bool)
	if err := c.backend.UnmarshalKey(keyNested, &nested); err != nil {
		return errors.Wrapf(err, "invalid %s", keyNested)
	}
	if len(nested) > 0 {
		// viper lowercases map keys, so kind names are matched case-insensitively
		tc.NestedSignatures = make(map[string]bool, len(nested))
		for kind, enabled := range nested {
			tc.NestedSignatures[strings.ToLower(kind)] = enabled
		}
	}

	if tc.ValidDuration < 0 || tc.ValidStartSkew < 0 {
		return errors.New("transaction durations must not be negative")
	}

	c.transactionConfig = tc
	return nil
}

func (c *EndpointConfig) loadConnectionConfig() error {
	cc := hedera.ConnectionConfig{
		Timeout:       defaultConnectionTimeout,
		AllowInsecure: true,
	}
	if d := c.backend.GetDuration(keyTimeout); d > 0 {
		cc.Timeout = d
	}
	if c.backend.IsSet(keyAllowInsecure) {
		cc.AllowInsecure = c.backend.GetBool(keyAllowInsecure)
	}

	ka := keepAliveConfig{}
	if err := c.backend.UnmarshalKey(keyKeepAlive, &ka); err != nil {
		return errors.Wrapf(err, "invalid %s", keyKeepAlive)
	}
	cc.KeepAliveTime = ka.Time
	cc.KeepAliveTimeout = ka.Timeout

	if err := c.backend.UnmarshalKey(keyTLSCACerts, &cc.TLSCACerts); err != nil {
		return errors.Wrapf(err, "invalid %s", keyTLSCACerts)
	}
	if err := cc.TLSCACerts.LoadBytes(); err != nil {
		return errors.WithMessage(err, keyTLSCACerts)
	}

	c.connectionConfig = cc
	return nil
}

func (c *EndpointConfig) loadMetricsConfig() {
	c.metricsConfig = hedera.MetricsConfig{
		Enabled:   c.backend.GetBool(keyMetricsEnabled),
		Namespace: c.backend.GetString(keyMetricsNamespace),
	}
	if c.metricsConfig.Namespace == "" {
		c.metricsConfig.Namespace = metrics.DefaultNamespace
	}
	logger.Debugf("metrics enabled: %t, namespace: %s", c.metricsConfig.Enabled, c.metricsConfig.Namespace)
}

func (c *EndpointConfig) accountID(key string) (*id.AccountID, error) {
	s := c.backend.GetString(key)
	if s == "" {
		return nil, nil
	}
	account, err := id.ParseAccountID(s)
	if err != nil {
		return nil, errors.WithMessage(err, key)
	}
	return &account, nil
}
