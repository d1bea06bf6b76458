/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package endpoint interprets node URLs and the TLS material used to reach them.
package endpoint

import (
	"crypto/x509"
	"encoding/pem"
	"io/ioutil"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

var securedScheme = regexp.MustCompile(`^(?i)grpcs://`)

// ToAddress is a utility function to trim the GRPC protocol prefix as it is not needed by GO
// if the GRPC protocol is not found, the url is returned unchanged
func ToAddress(url string) string {
	if strings.HasPrefix(url, "grpc://") {
		return strings.TrimPrefix(url, "grpc://")
	}
	if strings.HasPrefix(url, "grpcs://") {
		return strings.TrimPrefix(url, "grpcs://")
	}
	return url
}

// AttemptSecured reports whether a TLS connection should be made to url:
// true for grpcs://, false for grpc://, and !allowInsecure without a scheme
func AttemptSecured(url string, allowInsecure bool) bool {
	if securedScheme.MatchString(url) {
		return true
	}
	if strings.Contains(url, "://") {
		return false
	}
	return !allowInsecure
}

// TLSConfig holds PEM encoded root certificates, given inline or by path.
// If both are set Pem takes precedence.
type TLSConfig struct {
	Path string
	Pem  string
	//bytes from Pem/Path
	bytes []byte
}

// Bytes returns the loaded PEM bytes
func (cfg *TLSConfig) Bytes() []byte {
	return cfg.bytes
}

// IsSet returns true if a Pem or a Path is configured
func (cfg *TLSConfig) IsSet() bool {
	return cfg.Pem != "" || cfg.Path != ""
}

//LoadBytes preloads bytes from Pem/Path
//Pem takes precedence over Path
func (cfg *TLSConfig) LoadBytes() error {
	var err error
	if cfg.Pem != "" {
		cfg.bytes = []byte(cfg.Pem)
	} else if cfg.Path != "" {
		cfg.bytes, err = ioutil.ReadFile(cfg.Path)
		if err != nil {
			return errors.Wrapf(err, "failed to load pem bytes from path %s", cfg.Path)
		}
	}
	return nil
}

// TLSCert returns the first certificate of the loaded bytes
func (cfg *TLSConfig) TLSCert() (*x509.Certificate, bool, error) {
	block, _ := pem.Decode(cfg.bytes)
	if block == nil {
		return nil, false, nil
	}

	cert, err := x509.ParseCertificate(block.Bytes)
	if err != nil {
		return nil, false, errors.Wrap(err, "certificate parsing failed")
	}
	return cert, true, nil
}

// CertPool returns a pool holding every certificate of the loaded bytes, or
// nil when nothing was loaded
func (cfg *TLSConfig) CertPool() (*x509.CertPool, error) {
	if len(cfg.bytes) == 0 {
		return nil, nil
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(cfg.bytes) {
		return nil, errors.New("no certificate found in tls root certificates")
	}
	return pool, nil
}
