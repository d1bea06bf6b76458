/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package comm holds the gRPC connection to a node.
package comm

import (
	reqContext "context"
	"crypto/tls"
	"sync/atomic"

	"github.com/pkg/errors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"

	"github.com/hashgraph/hedera-sdk-go/pkg/common/errors/status"
	"github.com/hashgraph/hedera-sdk-go/pkg/common/logging"
	"github.com/hashgraph/hedera-sdk-go/pkg/common/options"
	"github.com/hashgraph/hedera-sdk-go/pkg/core/config/endpoint"
	"github.com/hashgraph/hedera-sdk-go/pkg/hapi"
)

var logger = logging.NewLogger("hedera/comm")

// GRPCConnection is a connection to one node. It implements hedera.Services
// and is safe for concurrent use.
type GRPCConnection struct {
	address  string
	conn     *grpc.ClientConn
	crypto   hapi.CryptoServiceClient
	file     hapi.FileServiceClient
	contract hapi.SmartContractServiceClient
	done     int32
}

// NewConnection dials address and blocks until the connection is ready, the
// connect timeout expires or ctx is done.
func NewConnection(ctx reqContext.Context, address string, opts ...options.Opt) (*GRPCConnection, error) {
	if address == "" {
		return nil, errors.New("node address not specified")
	}

	params := defaultParams()
	options.Apply(params, opts)

	grpcctx, cancel := reqContext.WithTimeout(ctx, params.connectTimeout)
	defer cancel()

	target := endpoint.ToAddress(address)
	grpcconn, err := grpc.DialContext(grpcctx, target, newDialOpts(target, params)...)
	if err != nil {
		return nil, status.New(status.ClientStatus, status.ConnectionFailed.ToInt32(),
			errors.Wrapf(err, "could not connect to %s", address).Error(), []interface{}{address})
	}

	logger.Debugf("connected to %s", address)

	return &GRPCConnection{
		address:  address,
		conn:     grpcconn,
		crypto:   hapi.NewCryptoServiceClient(grpcconn),
		file:     hapi.NewFileServiceClient(grpcconn),
		contract: hapi.NewSmartContractServiceClient(grpcconn),
	}, nil
}

// Address returns the node address
func (c *GRPCConnection) Address() string {
	return c.address
}

// CryptoService returns the account service client
func (c *GRPCConnection) CryptoService() hapi.CryptoServiceClient {
	return c.crypto
}

// FileService returns the file service client
func (c *GRPCConnection) FileService() hapi.FileServiceClient {
	return c.file
}

// SmartContractService returns the contract service client
func (c *GRPCConnection) SmartContractService() hapi.SmartContractServiceClient {
	return c.contract
}

// Close closes the connection
func (c *GRPCConnection) Close() {
	if !c.setClosed() {
		logger.Debugf("Already closed")
		return
	}

	logger.Debugf("Closing connection to %s", c.address)
	if err := c.conn.Close(); err != nil {
		logger.Warnf("error closing GRPC connection: %s", err)
	}
}

// Closed returns true if the connection has been closed
func (c *GRPCConnection) Closed() bool {
	return atomic.LoadInt32(&c.done) == 1
}

func (c *GRPCConnection) setClosed() bool {
	return atomic.CompareAndSwapInt32(&c.done, 0, 1)
}

func newDialOpts(address string, params *params) []grpc.DialOption {
	dialOpts := []grpc.DialOption{grpc.WithBlock()}

	if params.keepAliveParams.Time > 0 || params.keepAliveParams.Timeout > 0 {
		dialOpts = append(dialOpts, grpc.WithKeepaliveParams(params.keepAliveParams))
	}

	switch {
	case params.creds != nil:
		logger.Debugf("Creating a secure connection to [%s]", address)
		dialOpts = append(dialOpts, grpc.WithTransportCredentials(params.creds))
	case params.insecure:
		logger.Debugf("Creating an insecure connection [%s]", address)
		dialOpts = append(dialOpts, grpc.WithInsecure())
	default:
		logger.Debugf("Creating a TLS connection to [%s] with system roots", address)
		dialOpts = append(dialOpts, grpc.WithTransportCredentials(credentials.NewTLS(&tls.Config{})))
	}

	return dialOpts
}
