/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package hapi

import (
	"github.com/golang/protobuf/proto"
)

// NodeTransactionPrecheckCode is the node's synchronous admission result.
type NodeTransactionPrecheckCode int32

// Precheck codes
const (
	NodeTransactionPrecheckCode_OK                   NodeTransactionPrecheckCode = 0
	NodeTransactionPrecheckCode_INVALID_TRANSACTION  NodeTransactionPrecheckCode = 1
	NodeTransactionPrecheckCode_INVALID_ACCOUNT      NodeTransactionPrecheckCode = 2
	NodeTransactionPrecheckCode_INSUFFICIENT_FEE     NodeTransactionPrecheckCode = 3
	NodeTransactionPrecheckCode_INSUFFICIENT_BALANCE NodeTransactionPrecheckCode = 4
	NodeTransactionPrecheckCode_DUPLICATE            NodeTransactionPrecheckCode = 5
	NodeTransactionPrecheckCode_BUSY                 NodeTransactionPrecheckCode = 6
	NodeTransactionPrecheckCode_NOT_SUPPORTED        NodeTransactionPrecheckCode = 7
)

// NodeTransactionPrecheckCode_name maps values to names
var NodeTransactionPrecheckCode_name = map[int32]string{
	0: "OK",
	1: "INVALID_TRANSACTION",
	2: "INVALID_ACCOUNT",
	3: "INSUFFICIENT_FEE",
	4: "INSUFFICIENT_BALANCE",
	5: "DUPLICATE",
	6: "BUSY",
	7: "NOT_SUPPORTED",
}

// NodeTransactionPrecheckCode_value maps names to values
var NodeTransactionPrecheckCode_value = map[string]int32{
	"OK":                   0,
	"INVALID_TRANSACTION":  1,
	"INVALID_ACCOUNT":      2,
	"INSUFFICIENT_FEE":     3,
	"INSUFFICIENT_BALANCE": 4,
	"DUPLICATE":            5,
	"BUSY":                 6,
	"NOT_SUPPORTED":        7,
}

func (x NodeTransactionPrecheckCode) String() string {
	return proto.EnumName(NodeTransactionPrecheckCode_name, int32(x))
}

// ResponseType selects whether a query returns the answer or only its cost.
type ResponseType int32

// Response types
const (
	ResponseType_ANSWER_ONLY             ResponseType = 0
	ResponseType_ANSWER_STATE_PROOF      ResponseType = 1
	ResponseType_COST_ANSWER             ResponseType = 2
	ResponseType_COST_ANSWER_STATE_PROOF ResponseType = 3
)

// ResponseType_name maps values to names
var ResponseType_name = map[int32]string{
	0: "ANSWER_ONLY",
	1: "ANSWER_STATE_PROOF",
	2: "COST_ANSWER",
	3: "COST_ANSWER_STATE_PROOF",
}

func (x ResponseType) String() string {
	return proto.EnumName(ResponseType_name, int32(x))
}

// ResponseCodeEnum is the consensus outcome of a transaction, as reported in
// receipts and records.
type ResponseCodeEnum int32

// Response codes
const (
	ResponseCodeEnum_OK                                ResponseCodeEnum = 0
	ResponseCodeEnum_INVALID_TRANSACTION               ResponseCodeEnum = 1
	ResponseCodeEnum_PAYER_ACCOUNT_NOT_FOUND           ResponseCodeEnum = 2
	ResponseCodeEnum_INVALID_NODE_ACCOUNT              ResponseCodeEnum = 3
	ResponseCodeEnum_TRANSACTION_EXPIRED               ResponseCodeEnum = 4
	ResponseCodeEnum_INVALID_TRANSACTION_START         ResponseCodeEnum = 5
	ResponseCodeEnum_INVALID_TRANSACTION_DURATION      ResponseCodeEnum = 6
	ResponseCodeEnum_INVALID_SIGNATURE                 ResponseCodeEnum = 7
	ResponseCodeEnum_MEMO_TOO_LONG                     ResponseCodeEnum = 8
	ResponseCodeEnum_INSUFFICIENT_TX_FEE               ResponseCodeEnum = 9
	ResponseCodeEnum_INSUFFICIENT_PAYER_BALANCE        ResponseCodeEnum = 10
	ResponseCodeEnum_DUPLICATE_TRANSACTION             ResponseCodeEnum = 11
	ResponseCodeEnum_BUSY                              ResponseCodeEnum = 12
	ResponseCodeEnum_NOT_SUPPORTED                     ResponseCodeEnum = 13
	ResponseCodeEnum_INVALID_FILE_ID                   ResponseCodeEnum = 14
	ResponseCodeEnum_INVALID_ACCOUNT_ID                ResponseCodeEnum = 15
	ResponseCodeEnum_INVALID_CONTRACT_ID               ResponseCodeEnum = 16
	ResponseCodeEnum_INVALID_TRANSACTION_ID            ResponseCodeEnum = 17
	ResponseCodeEnum_RECEIPT_NOT_FOUND                 ResponseCodeEnum = 18
	ResponseCodeEnum_RECORD_NOT_FOUND                  ResponseCodeEnum = 19
	ResponseCodeEnum_INVALID_SOLIDITY_ID               ResponseCodeEnum = 20
	ResponseCodeEnum_UNKNOWN                           ResponseCodeEnum = 21
	ResponseCodeEnum_SUCCESS                           ResponseCodeEnum = 22
	ResponseCodeEnum_FAIL_INVALID                      ResponseCodeEnum = 23
	ResponseCodeEnum_FAIL_FEE                          ResponseCodeEnum = 24
	ResponseCodeEnum_FAIL_BALANCE                      ResponseCodeEnum = 25
	ResponseCodeEnum_KEY_REQUIRED                      ResponseCodeEnum = 26
	ResponseCodeEnum_BAD_ENCODING                      ResponseCodeEnum = 27
	ResponseCodeEnum_INSUFFICIENT_ACCOUNT_BALANCE      ResponseCodeEnum = 28
	ResponseCodeEnum_INVALID_SOLIDITY_ADDRESS          ResponseCodeEnum = 29
	ResponseCodeEnum_INSUFFICIENT_GAS                  ResponseCodeEnum = 30
	ResponseCodeEnum_CONTRACT_SIZE_LIMIT_EXCEEDED      ResponseCodeEnum = 31
	ResponseCodeEnum_LOCAL_CALL_MODIFICATION_EXCEPTION ResponseCodeEnum = 32
	ResponseCodeEnum_CONTRACT_REVERT_EXECUTED          ResponseCodeEnum = 33
	ResponseCodeEnum_CONTRACT_EXECUTION_EXCEPTION      ResponseCodeEnum = 34
	ResponseCodeEnum_INVALID_RECEIVING_NODE_ACCOUNT    ResponseCodeEnum = 35
	ResponseCodeEnum_MISSING_QUERY_HEADER              ResponseCodeEnum = 36
	ResponseCodeEnum_ACCOUNT_UPDATE_FAILED             ResponseCodeEnum = 37
	ResponseCodeEnum_INVALID_KEY_ENCODING              ResponseCodeEnum = 38
	ResponseCodeEnum_NULL_SOLIDITY_ADDRESS             ResponseCodeEnum = 39
	ResponseCodeEnum_CONTRACT_UPDATE_FAILED            ResponseCodeEnum = 40
	ResponseCodeEnum_INVALID_QUERY_HEADER              ResponseCodeEnum = 41
	ResponseCodeEnum_INVALID_FEE_SUBMITTED             ResponseCodeEnum = 42
	ResponseCodeEnum_INVALID_PAYER_SIGNATURE           ResponseCodeEnum = 43
	ResponseCodeEnum_KEY_NOT_PROVIDED                  ResponseCodeEnum = 44
	ResponseCodeEnum_INVALID_EXPIRATION_TIME           ResponseCodeEnum = 45
	ResponseCodeEnum_NO_WACL_KEY                       ResponseCodeEnum = 46
	ResponseCodeEnum_FILE_CONTENT_EMPTY                ResponseCodeEnum = 47
	ResponseCodeEnum_INVALID_ACCOUNT_AMOUNTS           ResponseCodeEnum = 48
	ResponseCodeEnum_EMPTY_TRANSACTION_BODY            ResponseCodeEnum = 49
	ResponseCodeEnum_INVALID_TRANSACTION_BODY          ResponseCodeEnum = 50
)

// ResponseCodeEnum_name maps values to names
var ResponseCodeEnum_name = map[int32]string{
	0:  "OK",
	1:  "INVALID_TRANSACTION",
	2:  "PAYER_ACCOUNT_NOT_FOUND",
	3:  "INVALID_NODE_ACCOUNT",
	4:  "TRANSACTION_EXPIRED",
	5:  "INVALID_TRANSACTION_START",
	6:  "INVALID_TRANSACTION_DURATION",
	7:  "INVALID_SIGNATURE",
	8:  "MEMO_TOO_LONG",
	9:  "INSUFFICIENT_TX_FEE",
	10: "INSUFFICIENT_PAYER_BALANCE",
	11: "DUPLICATE_TRANSACTION",
	12: "BUSY",
	13: "NOT_SUPPORTED",
	14: "INVALID_FILE_ID",
	15: "INVALID_ACCOUNT_ID",
	16: "INVALID_CONTRACT_ID",
	17: "INVALID_TRANSACTION_ID",
	18: "RECEIPT_NOT_FOUND",
	19: "RECORD_NOT_FOUND",
	20: "INVALID_SOLIDITY_ID",
	21: "UNKNOWN",
	22: "SUCCESS",
	23: "FAIL_INVALID",
	24: "FAIL_FEE",
	25: "FAIL_BALANCE",
	26: "KEY_REQUIRED",
	27: "BAD_ENCODING",
	28: "INSUFFICIENT_ACCOUNT_BALANCE",
	29: "INVALID_SOLIDITY_ADDRESS",
	30: "INSUFFICIENT_GAS",
	31: "CONTRACT_SIZE_LIMIT_EXCEEDED",
	32: "LOCAL_CALL_MODIFICATION_EXCEPTION",
	33: "CONTRACT_REVERT_EXECUTED",
	34: "CONTRACT_EXECUTION_EXCEPTION",
	35: "INVALID_RECEIVING_NODE_ACCOUNT",
	36: "MISSING_QUERY_HEADER",
	37: "ACCOUNT_UPDATE_FAILED",
	38: "INVALID_KEY_ENCODING",
	39: "NULL_SOLIDITY_ADDRESS",
	40: "CONTRACT_UPDATE_FAILED",
	41: "INVALID_QUERY_HEADER",
	42: "INVALID_FEE_SUBMITTED",
	43: "INVALID_PAYER_SIGNATURE",
	44: "KEY_NOT_PROVIDED",
	45: "INVALID_EXPIRATION_TIME",
	46: "NO_WACL_KEY",
	47: "FILE_CONTENT_EMPTY",
	48: "INVALID_ACCOUNT_AMOUNTS",
	49: "EMPTY_TRANSACTION_BODY",
	50: "INVALID_TRANSACTION_BODY",
}

func (x ResponseCodeEnum) String() string {
	return proto.EnumName(ResponseCodeEnum_name, int32(x))
}
