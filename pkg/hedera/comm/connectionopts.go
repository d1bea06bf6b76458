/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package comm

import (
	"crypto/tls"
	"time"

	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/keepalive"

	"github.com/hashgraph/hedera-sdk-go/pkg/common/options"
	"github.com/hashgraph/hedera-sdk-go/pkg/common/providers/hedera"
	"github.com/hashgraph/hedera-sdk-go/pkg/core/config/endpoint"
)

const defaultConnectTimeout = 10 * time.Second

type params struct {
	keepAliveParams keepalive.ClientParameters
	insecure        bool
	creds           credentials.TransportCredentials
	connectTimeout  time.Duration
}

func defaultParams() *params {
	return &params{
		connectTimeout: defaultConnectTimeout,
	}
}

// WithKeepAliveParams sets the GRPC keep-alive parameters
func WithKeepAliveParams(value keepalive.ClientParameters) options.Opt {
	return func(p options.Params) {
		if setter, ok := p.(keepAliveParamsSetter); ok {
			setter.SetKeepAliveParams(value)
		}
	}
}

// WithConnectTimeout sets the GRPC connection timeout
func WithConnectTimeout(value time.Duration) options.Opt {
	return func(p options.Params) {
		if setter, ok := p.(connectTimeoutSetter); ok {
			setter.SetConnectTimeout(value)
		}
	}
}

// WithInsecure dials without transport security
func WithInsecure() options.Opt {
	return func(p options.Params) {
		if setter, ok := p.(insecureSetter); ok {
			setter.SetInsecure(true)
		}
	}
}

// WithTransportCredentials dials with the given credentials. It takes
// precedence over WithInsecure.
func WithTransportCredentials(value credentials.TransportCredentials) options.Opt {
	return func(p options.Params) {
		if setter, ok := p.(credsSetter); ok {
			setter.SetTransportCredentials(value)
		}
	}
}

func (p *params) SetKeepAliveParams(value keepalive.ClientParameters) {
	logger.Debugf("KeepAliveParams: %#v", value)
	p.keepAliveParams = value
}

func (p *params) SetConnectTimeout(value time.Duration) {
	logger.Debugf("ConnectTimeout: %s", value)
	if value > 0 {
		p.connectTimeout = value
	}
}

func (p *params) SetInsecure(value bool) {
	logger.Debugf("Insecure: %t", value)
	p.insecure = value
}

func (p *params) SetTransportCredentials(value credentials.TransportCredentials) {
	logger.Debugf("setting transport credentials")
	p.creds = value
}

type keepAliveParamsSetter interface {
	SetKeepAliveParams(value keepalive.ClientParameters)
}

type connectTimeoutSetter interface {
	SetConnectTimeout(value time.Duration)
}

type insecureSetter interface {
	SetInsecure(value bool)
}

type credsSetter interface {
	SetTransportCredentials(value credentials.TransportCredentials)
}

// OptsFromConfig returns the connection options for a node at url. The
// scheme of url decides between TLS and plaintext: grpcs:// always uses TLS,
// grpc:// never does, and without a scheme TLS is used unless insecure
// connections are allowed.
func OptsFromConfig(url string, cfg hedera.ConnectionConfig) ([]options.Opt, error) {
	opts := []options.Opt{
		WithConnectTimeout(cfg.Timeout),
		WithKeepAliveParams(keepalive.ClientParameters{
			Time:    cfg.KeepAliveTime,
			Timeout: cfg.KeepAliveTimeout,
		}),
	}

	if !endpoint.AttemptSecured(url, cfg.AllowInsecure) {
		return append(opts, WithInsecure()), nil
	}

	pool, err := cfg.TLSCACerts.CertPool()
	if err != nil {
		return nil, err
	}
	if pool != nil {
		opts = append(opts, WithTransportCredentials(credentials.NewTLS(&tls.Config{RootCAs: pool})))
	}
	return opts, nil
}
