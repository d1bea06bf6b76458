/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package hedera declares the collaborators the transaction and query
// engines depend on: the node connection, key management and configuration.
package hedera

import (
	"time"

	"github.com/hashgraph/hedera-sdk-go/pkg/core/config/endpoint"
	"github.com/hashgraph/hedera-sdk-go/pkg/hapi"
	"github.com/hashgraph/hedera-sdk-go/pkg/hedera/id"
	"github.com/hashgraph/hedera-sdk-go/pkg/hedera/metrics"
)

// Services exposes the gRPC services of a single node
type Services interface {
	CryptoService() hapi.CryptoServiceClient
	FileService() hapi.FileServiceClient
	SmartContractService() hapi.SmartContractServiceClient
}

// PublicKey verifies signatures
type PublicKey interface {
	// Bytes returns the raw 32 byte key
	Bytes() []byte
	Verify(message, signature []byte) bool
}

// Signer produces signatures over transaction bodies
type Signer interface {
	Sign(message []byte) ([]byte, error)
	PublicKey() PublicKey
}

// EndpointConfig contains the client settings read from configuration
type EndpointConfig interface {
	NetworkConfig() NetworkConfig
	OperatorConfig() OperatorConfig
	TransactionConfig() TransactionConfig
	ConnectionConfig() ConnectionConfig
	MetricsConfig() MetricsConfig
}

// NetworkConfig is the node the client talks to
type NetworkConfig struct {
	Address string
	Node    *id.AccountID
}

// OperatorConfig is the account paying for transactions and queries.
// PrivateKey holds the hex encoded key, raw or DER.
type OperatorConfig struct {
	Account        *id.AccountID
	PrivateKey     string
	PrivateKeyFile string
}

// TransactionConfig contains the defaults applied to new transactions
type TransactionConfig struct {
	DefaultFee     uint64
	ValidDuration  time.Duration
	ValidStartSkew time.Duration
	// NestedSignatures overrides, per operation kind name, whether signatures
	// after the first are wrapped in a signature list
	NestedSignatures map[string]bool
}

// ConnectionConfig contains gRPC connection settings
type ConnectionConfig struct {
	Timeout          time.Duration
	KeepAliveTime    time.Duration
	KeepAliveTimeout time.Duration
	// AllowInsecure dials without TLS when the address has no grpc:// or
	// grpcs:// scheme
	AllowInsecure bool
	// TLSCACerts are the root certificates used to verify the node. The
	// system roots are used when none are configured.
	TLSCACerts endpoint.TLSConfig
}

// MetricsConfig enables client metrics
type MetricsConfig struct {
	Enabled   bool
	Namespace string
}

// Context supplies transactions and queries with the client they run under.
// The operator and node are defaults that a single transaction may override.
type Context interface {
	Services() Services
	EndpointConfig() EndpointConfig
	Operator() (id.AccountID, bool)
	OperatorSigner() (Signer, bool)
	Node() (id.AccountID, bool)
	Metrics() *metrics.ClientMetrics
}
