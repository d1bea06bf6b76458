/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package config

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashgraph/hedera-sdk-go/pkg/common/logging"
	"github.com/hashgraph/hedera-sdk-go/pkg/common/providers/core"
)

const (
	configFile = "config_test.yaml"
	configType = "yaml"
)

var configTestFilePath = filepath.Join("testdata", configFile)

func loadConfigBytes(t *testing.T) []byte {
	cBytes, err := ioutil.ReadFile(configTestFilePath)
	require.NoError(t, err, "failed to read test config")
	require.NotEmpty(t, cBytes)
	return cBytes
}

func lookupFirst(t *testing.T, provider core.ConfigProvider, key string) interface{} {
	backends, err := provider()
	require.NoError(t, err)
	require.Len(t, backends, 1)
	value, ok := backends[0].Lookup(key)
	require.True(t, ok, "key %s not found", key)
	return value
}

func TestFromRawSuccess(t *testing.T) {
	value := lookupFirst(t, FromRaw(loadConfigBytes(t), configType), "client.network.address")
	assert.Equal(t, "testnet.hedera.com:50003", value)
}

func TestFromReaderSuccess(t *testing.T) {
	buf := bytes.NewBuffer(loadConfigBytes(t))
	value := lookupFirst(t, FromReader(buf, configType), "client.operator.account")
	assert.Equal(t, "0:0:2", value)
}

func TestFromFileSuccess(t *testing.T) {
	value := lookupFirst(t, FromFile(configTestFilePath), "client.transaction.defaultFee")
	assert.EqualValues(t, 250000, value)

	assert.Equal(t, logging.DEBUG, logging.GetLevel("client/transaction"))
	assert.Equal(t, logging.DEBUG, logging.GetLevel("hedera/comm"))
}

func TestFromFileErrors(t *testing.T) {
	_, err := FromFile("")()
	assert.Error(t, err, "empty file name should fail")

	_, err = FromFile(filepath.Join("testdata", "missing.yaml"))()
	assert.Error(t, err, "missing file should fail")
}

func TestFromReaderErrors(t *testing.T) {
	_, err := FromRaw(loadConfigBytes(t), "")()
	assert.Error(t, err, "empty config type should fail")

	_, err = FromRaw([]byte("client: [unterminated"), configType)()
	assert.Error(t, err, "malformed yaml should fail")
}

func TestInvalidLogLevel(t *testing.T) {
	raw := []byte("client:\n  logging:\n    level: chatty\n")
	_, err := FromRaw(raw, configType)()
	assert.Error(t, err)
}

func TestEnvOverride(t *testing.T) {
	const envKey = "HEDERA_SDK_CLIENT_NETWORK_ADDRESS"
	require.NoError(t, os.Setenv(envKey, "localhost:50211"))
	defer os.Unsetenv(envKey)

	value := lookupFirst(t, FromRaw(loadConfigBytes(t), configType), "client.network.address")
	assert.Equal(t, "localhost:50211", value)

	value = lookupFirst(t, FromEnv(), "client.network.address")
	assert.Equal(t, "localhost:50211", value)
}

func TestEnvPrefix(t *testing.T) {
	const envKey = "MYAPP_CLIENT_OPERATOR_ACCOUNT"
	require.NoError(t, os.Setenv(envKey, "0:0:1001"))
	defer os.Unsetenv(envKey)

	value := lookupFirst(t, FromRaw(loadConfigBytes(t), configType, WithEnvPrefix("MYAPP")), "client.operator.account")
	assert.Equal(t, "0:0:1001", value)

	_, err := FromRaw(loadConfigBytes(t), configType, WithEnvPrefix(""))()
	assert.Error(t, err)
}

func TestLookupUnmarshal(t *testing.T) {
	backends, err := FromRaw(loadConfigBytes(t), configType)()
	require.NoError(t, err)

	keepAlive := struct {
		Time    time.Duration
		Timeout time.Duration
	}{}
	_, ok := backends[0].Lookup("client.connection.keepAlive", core.WithUnmarshalType(&keepAlive))
	require.True(t, ok)
	assert.Equal(t, 30*time.Second, keepAlive.Time)
	assert.Equal(t, 10*time.Second, keepAlive.Timeout)

	nested := map[string]bool{}
	_, ok = backends[0].Lookup("client.transaction.nestedSignatures", core.WithUnmarshalType(&nested))
	require.True(t, ok)
	assert.True(t, nested["filecreate"])
	assert.False(t, nested["cryptotransfer"])

	_, ok = backends[0].Lookup("client.missing.key", core.WithUnmarshalType(&nested))
	assert.False(t, ok)
	_, ok = backends[0].Lookup("client.missing.key")
	assert.False(t, ok)
}
