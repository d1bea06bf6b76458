/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package hederasdk

import (
	reqContext "context"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hashgraph/hedera-sdk-go/pkg/common/errors/status"
	"github.com/hashgraph/hedera-sdk-go/pkg/common/options"
	"github.com/hashgraph/hedera-sdk-go/pkg/common/providers/hedera"
	"github.com/hashgraph/hedera-sdk-go/pkg/hedera/id"
)

// WithServices uses services instead of dialing the configured node address.
// The client does not close services.
func WithServices(services hedera.Services) Option {
	return func(o *clientOptions) error {
		if services == nil {
			return errors.New("services must not be nil")
		}
		o.services = services
		return nil
	}
}

// WithConnectionOpts appends connection options to the ones derived from
// configuration, for example comm.WithTransportCredentials
func WithConnectionOpts(opts ...options.Opt) Option {
	return func(o *clientOptions) error {
		o.connOpts = append(o.connOpts, opts...)
		return nil
	}
}

// WithDialContext bounds the initial connection attempt by ctx
func WithDialContext(ctx reqContext.Context) Option {
	return func(o *clientOptions) error {
		if ctx == nil {
			return errors.New("dial context must not be nil")
		}
		o.dialContext = ctx
		return nil
	}
}

// WithOperator sets the operator account and the key transactions and query
// payments are signed with. The signer may be nil to only set the account.
func WithOperator(account id.AccountID, signer hedera.Signer) Option {
	return func(o *clientOptions) error {
		if account.IsZero() {
			return status.NewMissingField("operator")
		}
		o.operator = &account
		o.signer = signer
		return nil
	}
}

// WithNode sets the account of the node requests are sent to
func WithNode(node id.AccountID) Option {
	return func(o *clientOptions) error {
		if node.IsZero() {
			return status.NewMissingField("node")
		}
		o.node = &node
		return nil
	}
}

// WithMetricsRegisterer registers client metrics with registerer instead of
// the prometheus default registerer. Metrics must be enabled in configuration.
func WithMetricsRegisterer(registerer prometheus.Registerer) Option {
	return func(o *clientOptions) error {
		o.registerer = registerer
		return nil
	}
}
