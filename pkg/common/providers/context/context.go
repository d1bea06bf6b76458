/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package context

import (
	"github.com/hashgraph/hedera-sdk-go/pkg/common/providers/hedera"
)

// Client supplies the connection, operator and configuration to client objects.
type Client hedera.Context

// ClientProvider returns client context
type ClientProvider func() (Client, error)
