/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package endpoint

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"io/ioutil"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func selfSignedPEM(t *testing.T) []byte {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	template := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "node.hedera.test"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
		IsCA:         true,
		KeyUsage:     x509.KeyUsageCertSign,
	}
	der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	require.NoError(t, err)

	return pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
}

func TestToAddress(t *testing.T) {
	assert.Equal(t, "testnet.hedera.com:50211", ToAddress("grpcs://testnet.hedera.com:50211"))
	assert.Equal(t, "testnet.hedera.com:50211", ToAddress("grpc://testnet.hedera.com:50211"))
	assert.Equal(t, "testnet.hedera.com:50211", ToAddress("testnet.hedera.com:50211"))
	assert.Equal(t, "https://some.url", ToAddress("https://some.url"))
}

func TestAttemptSecured(t *testing.T) {
	assert.True(t, AttemptSecured("grpcs://some.url", true))
	assert.True(t, AttemptSecured("GRPCS://some.url", true))
	assert.False(t, AttemptSecured("grpc://some.url", false))
	assert.True(t, AttemptSecured("some.url:50211", false))
	assert.False(t, AttemptSecured("some.url:50211", true))
}

func TestTLSConfigPem(t *testing.T) {
	cfg := TLSConfig{Pem: string(selfSignedPEM(t)), Path: "/does/not/exist"}
	assert.True(t, cfg.IsSet())
	require.NoError(t, cfg.LoadBytes())

	cert, ok, err := cfg.TLSCert()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "node.hedera.test", cert.Subject.CommonName)

	pool, err := cfg.CertPool()
	require.NoError(t, err)
	assert.Len(t, pool.Subjects(), 1)
}

func TestTLSConfigPath(t *testing.T) {
	dir, err := ioutil.TempDir("", "endpoint")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "ca.pem")
	require.NoError(t, ioutil.WriteFile(path, selfSignedPEM(t), 0600))

	cfg := TLSConfig{Path: path}
	require.NoError(t, cfg.LoadBytes())
	assert.NotEmpty(t, cfg.Bytes())

	_, ok, err := cfg.TLSCert()
	require.NoError(t, err)
	assert.True(t, ok)

	missing := TLSConfig{Path: filepath.Join(dir, "missing.pem")}
	assert.Error(t, missing.LoadBytes())
}

func TestTLSConfigEmpty(t *testing.T) {
	cfg := TLSConfig{}
	assert.False(t, cfg.IsSet())
	require.NoError(t, cfg.LoadBytes())

	_, ok, err := cfg.TLSCert()
	require.NoError(t, err)
	assert.False(t, ok)

	pool, err := cfg.CertPool()
	require.NoError(t, err)
	assert.Nil(t, pool)

	garbage := TLSConfig{Pem: "not a certificate"}
	require.NoError(t, garbage.LoadBytes())
	_, err = garbage.CertPool()
	assert.Error(t, err)
}
