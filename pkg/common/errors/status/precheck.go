/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package status

import (
	"strconv"

	"github.com/hashgraph/hedera-sdk-go/pkg/hapi"
)

// PrecheckCode is the result of a node's synchronous admission check of a
// transaction or query. It is unrelated to the consensus status reported in
// a receipt: an admitted transaction can still fail at consensus.
type PrecheckCode int32

const (
	// PrecheckOk the request passed the precheck
	PrecheckOk PrecheckCode = 0
	// PrecheckInvalidTransaction the transaction is malformed or not yet valid
	PrecheckInvalidTransaction PrecheckCode = 1
	// PrecheckInvalidAccount the payer account does not exist
	PrecheckInvalidAccount PrecheckCode = 2
	// PrecheckInsufficientFee the offered fee is too low
	PrecheckInsufficientFee PrecheckCode = 3
	// PrecheckInsufficientBalance the payer cannot cover the fee
	PrecheckInsufficientBalance PrecheckCode = 4
	// PrecheckDuplicate the transaction id was already submitted
	PrecheckDuplicate PrecheckCode = 5
	// PrecheckBusy the node is too busy to accept the request
	PrecheckBusy PrecheckCode = 6
	// PrecheckNotSupported the request is not supported by the node
	PrecheckNotSupported PrecheckCode = 7
)

// PrecheckCodeName maps precheck codes to human-readable strings
var PrecheckCodeName = map[int32]string{
	0: "OK",
	1: "INVALID_TRANSACTION",
	2: "INVALID_ACCOUNT",
	3: "INSUFFICIENT_FEE",
	4: "INSUFFICIENT_BALANCE",
	5: "DUPLICATE",
	6: "BUSY",
	7: "NOT_SUPPORTED",
}

// ToInt32 cast to int32
func (c PrecheckCode) ToInt32() int32 {
	return int32(c)
}

// String representation of the code
func (c PrecheckCode) String() string {
	if s, ok := PrecheckCodeName[c.ToInt32()]; ok {
		return s
	}
	return strconv.Itoa(int(c))
}

// ToPrecheckCode cast to precheck code
func ToPrecheckCode(c int32) PrecheckCode {
	return PrecheckCode(c)
}

// PrecheckCodeFromWire maps the wire code onto a PrecheckCode.
func PrecheckCodeFromWire(c hapi.NodeTransactionPrecheckCode) PrecheckCode {
	return PrecheckCode(c)
}
