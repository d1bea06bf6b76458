/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package hederasdk enables client usage of a Hedera network.
//
// A Client owns the connection to a single node, the operator account paying
// for transactions and queries, and the operator key used to sign them. It is
// the context every transaction and query runs under.
//
// Basic Flow:
// 1) Create a client from a configuration provider
// 2) Build a transaction or a query from the client
// 3) Freeze, sign and execute the transaction, or ask the query for its cost and answer
// 4) Close the client to release the connection
package hederasdk

import (
	reqContext "context"
	"sync"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hashgraph/hedera-sdk-go/pkg/common/errors/status"
	"github.com/hashgraph/hedera-sdk-go/pkg/common/logging"
	"github.com/hashgraph/hedera-sdk-go/pkg/common/options"
	"github.com/hashgraph/hedera-sdk-go/pkg/common/providers/context"
	"github.com/hashgraph/hedera-sdk-go/pkg/common/providers/core"
	"github.com/hashgraph/hedera-sdk-go/pkg/common/providers/hedera"
	"github.com/hashgraph/hedera-sdk-go/pkg/core/crypto"
	hederaImpl "github.com/hashgraph/hedera-sdk-go/pkg/hedera"
	"github.com/hashgraph/hedera-sdk-go/pkg/hedera/comm"
	"github.com/hashgraph/hedera-sdk-go/pkg/hedera/id"
	"github.com/hashgraph/hedera-sdk-go/pkg/hedera/metrics"
)

var logger = logging.NewLogger("hederasdk")

// Client provides access (and context) to transactions and queries. It is
// safe for concurrent use once created.
type Client struct {
	endpointConfig hedera.EndpointConfig
	services       hedera.Services
	closer         func()
	operator       *id.AccountID
	signer         hedera.Signer
	node           *id.AccountID
	metrics        *metrics.ClientMetrics
	closeOnce      sync.Once
}

type clientOptions struct {
	services    hedera.Services
	connOpts    []options.Opt
	operator    *id.AccountID
	signer      hedera.Signer
	node        *id.AccountID
	registerer  prometheus.Registerer
	dialContext reqContext.Context
}

// Option configures the client
type Option func(opts *clientOptions) error

// New initializes the client from the configuration returned by
// configProvider. Options take precedence over the configuration.
func New(configProvider core.ConfigProvider, opts ...Option) (*Client, error) {
	if configProvider == nil {
		return nil, errors.New("config provider is required")
	}

	o := clientOptions{dialContext: reqContext.Background()}
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, errors.WithMessage(err, "Error in option passed to New")
		}
	}

	backends, err := configProvider()
	if err != nil {
		return nil, errors.WithMessage(err, "failed to load config")
	}

	endpointConfig, err := hederaImpl.ConfigFromBackend(backends...)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to initialize endpoint config")
	}

	c := &Client{endpointConfig: endpointConfig, closer: func() {}}

	if err := c.initOperator(&o); err != nil {
		return nil, err
	}

	c.node = o.node
	if c.node == nil {
		c.node = endpointConfig.NetworkConfig().Node
	}

	c.metrics = newMetrics(endpointConfig.MetricsConfig(), o.registerer)

	if err := c.initServices(&o); err != nil {
		return nil, err
	}

	logger.Debugf("client initialized [operator: %s, node: %s]", optionalAccount(c.operator), optionalAccount(c.node))
	return c, nil
}

func (c *Client) initOperator(o *clientOptions) error {
	oc := c.endpointConfig.OperatorConfig()

	if o.operator != nil {
		c.operator = o.operator
		c.signer = o.signer
		return nil
	}

	c.operator = oc.Account
	if oc.PrivateKey != "" {
		key, err := crypto.ParsePrivateKey(oc.PrivateKey)
		if err != nil {
			return errors.WithMessage(err, "failed to parse operator private key")
		}
		c.signer = key
	}
	return nil
}

func (c *Client) initServices(o *clientOptions) error {
	if o.services != nil {
		c.services = o.services
		return nil
	}

	address := c.endpointConfig.NetworkConfig().Address
	if address == "" {
		return status.NewMissingField("client.network.address")
	}

	connOpts, err := comm.OptsFromConfig(address, c.endpointConfig.ConnectionConfig())
	if err != nil {
		return errors.WithMessage(err, "invalid connection config")
	}
	conn, err := comm.NewConnection(o.dialContext, address, append(connOpts, o.connOpts...)...)
	if err != nil {
		return errors.WithMessage(err, "failed to connect to node")
	}

	c.services = conn
	c.closer = conn.Close
	return nil
}

func newMetrics(cfg hedera.MetricsConfig, registerer prometheus.Registerer) *metrics.ClientMetrics {
	if !cfg.Enabled {
		return metrics.NewDisabledClientMetrics()
	}
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	return metrics.NewClientMetrics(&metrics.PrometheusProvider{Registerer: registerer}, cfg.Namespace)
}

// Close releases the connection owned by the client. A connection supplied
// with WithServices is left open.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		logger.Debug("closing client")
		c.closer()
	})
}

// Services returns the node connection
func (c *Client) Services() hedera.Services {
	return c.services
}

// EndpointConfig returns the loaded configuration
func (c *Client) EndpointConfig() hedera.EndpointConfig {
	return c.endpointConfig
}

// Operator returns the account paying for transactions and queries
func (c *Client) Operator() (id.AccountID, bool) {
	if c.operator == nil {
		return id.AccountID{}, false
	}
	return *c.operator, true
}

// OperatorSigner returns the operator key, if one was configured
func (c *Client) OperatorSigner() (hedera.Signer, bool) {
	return c.signer, c.signer != nil
}

// Node returns the account of the node requests are sent to
func (c *Client) Node() (id.AccountID, bool) {
	if c.node == nil {
		return id.AccountID{}, false
	}
	return *c.node, true
}

// Metrics returns the client metrics
func (c *Client) Metrics() *metrics.ClientMetrics {
	return c.metrics
}

// ClientProvider returns a provider of this client as a context
func (c *Client) ClientProvider() context.ClientProvider {
	return func() (context.Client, error) {
		return c, nil
	}
}

func optionalAccount(a *id.AccountID) string {
	if a == nil {
		return "none"
	}
	return a.String()
}
