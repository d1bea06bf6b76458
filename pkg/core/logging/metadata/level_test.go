/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashgraph/hedera-sdk-go/pkg/core/logging/api"
)

func TestLogLevels(t *testing.T) {
	mlevel := ModuleLevels{}

	assert.Equal(t, api.INFO, mlevel.GetLevel("client/transaction"), "default level is INFO")

	mlevel.SetLevel("client/transaction", api.DEBUG)
	mlevel.SetLevel("hedera/comm", api.ERROR)

	assert.True(t, mlevel.IsEnabledFor("client/transaction", api.DEBUG))
	assert.True(t, mlevel.IsEnabledFor("client/transaction", api.CRITICAL))

	assert.False(t, mlevel.IsEnabledFor("hedera/comm", api.WARNING))
	assert.True(t, mlevel.IsEnabledFor("hedera/comm", api.ERROR))

	// unconfigured modules follow the default module
	mlevel.SetLevel("", api.WARNING)
	assert.True(t, mlevel.IsEnabledFor("client/query", api.WARNING))
	assert.False(t, mlevel.IsEnabledFor("client/query", api.INFO))
}

func TestParseLevel(t *testing.T) {
	for i, name := range []string{"critical", "ERROR", "Warning", "info", "DEBUG"} {
		level, err := ParseLevel(name)
		require.NoError(t, err)
		assert.Equal(t, api.Level(i), level)
		assert.EqualValues(t, levelNames[i], ParseString(level))
	}

	level, err := ParseLevel("warn")
	require.NoError(t, err)
	assert.Equal(t, api.WARNING, level)

	_, err = ParseLevel("verbose")
	assert.Error(t, err)

	assert.Equal(t, "UNKNOWN", ParseString(api.Level(42)))
}
