/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package hapi

import (
	"github.com/golang/protobuf/proto"
)

// QueryHeader is embedded in every query.
type QueryHeader struct {
	Payment      *Transaction `protobuf:"bytes,1,opt,name=payment,proto3" json:"payment,omitempty"`
	ResponseType ResponseType `protobuf:"varint,2,opt,name=responseType,proto3,enum=proto.ResponseType" json:"responseType,omitempty"`
}

func (m *QueryHeader) Reset()         { *m = QueryHeader{} }
func (m *QueryHeader) String() string { return proto.CompactTextString(m) }
func (*QueryHeader) ProtoMessage()    {}

// GetResponseType returns the response type
func (m *QueryHeader) GetResponseType() ResponseType {
	if m != nil {
		return m.ResponseType
	}
	return ResponseType_ANSWER_ONLY
}

// ResponseHeader is embedded in every response; it carries the precheck code
// and, for cost queries, the cost.
type ResponseHeader struct {
	NodeTransactionPrecheckCode NodeTransactionPrecheckCode `protobuf:"varint,1,opt,name=nodeTransactionPrecheckCode,proto3,enum=proto.NodeTransactionPrecheckCode" json:"nodeTransactionPrecheckCode,omitempty"`
	ResponseType                ResponseType                `protobuf:"varint,2,opt,name=responseType,proto3,enum=proto.ResponseType" json:"responseType,omitempty"`
	Cost                        uint64                      `protobuf:"varint,3,opt,name=cost,proto3" json:"cost,omitempty"`
	StateProof                  []byte                      `protobuf:"bytes,4,opt,name=stateProof,proto3" json:"stateProof,omitempty"`
}

func (m *ResponseHeader) Reset()         { *m = ResponseHeader{} }
func (m *ResponseHeader) String() string { return proto.CompactTextString(m) }
func (*ResponseHeader) ProtoMessage()    {}

// GetNodeTransactionPrecheckCode returns the precheck code
func (m *ResponseHeader) GetNodeTransactionPrecheckCode() NodeTransactionPrecheckCode {
	if m != nil {
		return m.NodeTransactionPrecheckCode
	}
	return NodeTransactionPrecheckCode_OK
}

// GetCost returns the cost
func (m *ResponseHeader) GetCost() uint64 {
	if m != nil {
		return m.Cost
	}
	return 0
}

// Query is a request to a node. Exactly one field is set.
type Query struct {
	GetByKey                *GetByKeyQuery                `protobuf:"bytes,1,opt,name=getByKey,proto3" json:"getByKey,omitempty"`
	ContractCallLocal       *ContractCallLocalQuery       `protobuf:"bytes,3,opt,name=contractCallLocal,proto3" json:"contractCallLocal,omitempty"`
	ContractGetInfo         *ContractGetInfoQuery         `protobuf:"bytes,4,opt,name=contractGetInfo,proto3" json:"contractGetInfo,omitempty"`
	ContractGetBytecode     *ContractGetBytecodeQuery     `protobuf:"bytes,5,opt,name=contractGetBytecode,proto3" json:"contractGetBytecode,omitempty"`
	ContractGetRecords      *ContractGetRecordsQuery      `protobuf:"bytes,6,opt,name=ContractGetRecords,json=contractGetRecords,proto3" json:"ContractGetRecords,omitempty"`
	CryptogetAccountBalance *CryptoGetAccountBalanceQuery `protobuf:"bytes,7,opt,name=cryptogetAccountBalance,proto3" json:"cryptogetAccountBalance,omitempty"`
	CryptoGetAccountRecords *CryptoGetAccountRecordsQuery `protobuf:"bytes,8,opt,name=cryptoGetAccountRecords,proto3" json:"cryptoGetAccountRecords,omitempty"`
	CryptoGetInfo           *CryptoGetInfoQuery           `protobuf:"bytes,9,opt,name=cryptoGetInfo,proto3" json:"cryptoGetInfo,omitempty"`
	CryptoGetClaim          *CryptoGetClaimQuery          `protobuf:"bytes,10,opt,name=cryptoGetClaim,proto3" json:"cryptoGetClaim,omitempty"`
	FileGetContents         *FileGetContentsQuery         `protobuf:"bytes,12,opt,name=fileGetContents,proto3" json:"fileGetContents,omitempty"`
	FileGetInfo             *FileGetInfoQuery             `protobuf:"bytes,13,opt,name=fileGetInfo,proto3" json:"fileGetInfo,omitempty"`
	TransactionGetReceipt   *TransactionGetReceiptQuery   `protobuf:"bytes,14,opt,name=transactionGetReceipt,proto3" json:"transactionGetReceipt,omitempty"`
	TransactionGetRecord    *TransactionGetRecordQuery    `protobuf:"bytes,15,opt,name=transactionGetRecord,proto3" json:"transactionGetRecord,omitempty"`
}

func (m *Query) Reset()         { *m = Query{} }
func (m *Query) String() string { return proto.CompactTextString(m) }
func (*Query) ProtoMessage()    {}

// Response is a node's answer to a Query. Exactly one field is set; it
// matches the query field that was set.
type Response struct {
	GetByKey                *GetByKeyResponse                `protobuf:"bytes,1,opt,name=getByKey,proto3" json:"getByKey,omitempty"`
	ContractCallLocal       *ContractCallLocalResponse       `protobuf:"bytes,3,opt,name=contractCallLocal,proto3" json:"contractCallLocal,omitempty"`
	ContractGetInfo         *ContractGetInfoResponse         `protobuf:"bytes,4,opt,name=contractGetInfo,proto3" json:"contractGetInfo,omitempty"`
	ContractGetBytecode     *ContractGetBytecodeResponse     `protobuf:"bytes,5,opt,name=contractGetBytecodeResponse,proto3" json:"contractGetBytecodeResponse,omitempty"`
	ContractGetRecords      *ContractGetRecordsResponse      `protobuf:"bytes,6,opt,name=contractGetRecordsResponse,proto3" json:"contractGetRecordsResponse,omitempty"`
	CryptogetAccountBalance *CryptoGetAccountBalanceResponse `protobuf:"bytes,7,opt,name=cryptogetAccountBalance,proto3" json:"cryptogetAccountBalance,omitempty"`
	CryptoGetAccountRecords *CryptoGetAccountRecordsResponse `protobuf:"bytes,8,opt,name=cryptoGetAccountRecords,proto3" json:"cryptoGetAccountRecords,omitempty"`
	CryptoGetInfo           *CryptoGetInfoResponse           `protobuf:"bytes,9,opt,name=cryptoGetInfo,proto3" json:"cryptoGetInfo,omitempty"`
	CryptoGetClaim          *CryptoGetClaimResponse          `protobuf:"bytes,10,opt,name=cryptoGetClaim,proto3" json:"cryptoGetClaim,omitempty"`
	FileGetContents         *FileGetContentsResponse         `protobuf:"bytes,12,opt,name=fileGetContents,proto3" json:"fileGetContents,omitempty"`
	FileGetInfo             *FileGetInfoResponse             `protobuf:"bytes,13,opt,name=fileGetInfo,proto3" json:"fileGetInfo,omitempty"`
	TransactionGetReceipt   *TransactionGetReceiptResponse   `protobuf:"bytes,14,opt,name=transactionGetReceipt,proto3" json:"transactionGetReceipt,omitempty"`
	TransactionGetRecord    *TransactionGetRecordResponse    `protobuf:"bytes,15,opt,name=transactionGetRecord,proto3" json:"transactionGetRecord,omitempty"`
}

func (m *Response) Reset()         { *m = Response{} }
func (m *Response) String() string { return proto.CompactTextString(m) }
func (*Response) ProtoMessage()    {}

// QueryCase names the field set on a Query or Response. Values are the
// field numbers, which are shared between the two messages.
type QueryCase int32

// Query cases
const (
	Query_NOT_SET                    QueryCase = 0
	Query_GET_BY_KEY                 QueryCase = 1
	Query_CONTRACT_CALL_LOCAL        QueryCase = 3
	Query_CONTRACT_GET_INFO          QueryCase = 4
	Query_CONTRACT_GET_BYTECODE      QueryCase = 5
	Query_CONTRACT_GET_RECORDS       QueryCase = 6
	Query_CRYPTO_GET_ACCOUNT_BALANCE QueryCase = 7
	Query_CRYPTO_GET_ACCOUNT_RECORDS QueryCase = 8
	Query_CRYPTO_GET_INFO            QueryCase = 9
	Query_CRYPTO_GET_CLAIM           QueryCase = 10
	Query_FILE_GET_CONTENTS          QueryCase = 12
	Query_FILE_GET_INFO              QueryCase = 13
	Query_TRANSACTION_GET_RECEIPT    QueryCase = 14
	Query_TRANSACTION_GET_RECORD     QueryCase = 15
)

var queryCaseName = map[int32]string{
	0:  "NOT_SET",
	1:  "getByKey",
	3:  "contractCallLocal",
	4:  "contractGetInfo",
	5:  "contractGetBytecode",
	6:  "contractGetRecords",
	7:  "cryptogetAccountBalance",
	8:  "cryptoGetAccountRecords",
	9:  "cryptoGetInfo",
	10: "cryptoGetClaim",
	12: "fileGetContents",
	13: "fileGetInfo",
	14: "transactionGetReceipt",
	15: "transactionGetRecord",
}

func (c QueryCase) String() string {
	return proto.EnumName(queryCaseName, int32(c))
}

// QueryCase returns which query field is set.
func (m *Query) QueryCase() QueryCase {
	switch {
	case m == nil:
		return Query_NOT_SET
	case m.GetByKey != nil:
		return Query_GET_BY_KEY
	case m.ContractCallLocal != nil:
		return Query_CONTRACT_CALL_LOCAL
	case m.ContractGetInfo != nil:
		return Query_CONTRACT_GET_INFO
	case m.ContractGetBytecode != nil:
		return Query_CONTRACT_GET_BYTECODE
	case m.ContractGetRecords != nil:
		return Query_CONTRACT_GET_RECORDS
	case m.CryptogetAccountBalance != nil:
		return Query_CRYPTO_GET_ACCOUNT_BALANCE
	case m.CryptoGetAccountRecords != nil:
		return Query_CRYPTO_GET_ACCOUNT_RECORDS
	case m.CryptoGetInfo != nil:
		return Query_CRYPTO_GET_INFO
	case m.CryptoGetClaim != nil:
		return Query_CRYPTO_GET_CLAIM
	case m.FileGetContents != nil:
		return Query_FILE_GET_CONTENTS
	case m.FileGetInfo != nil:
		return Query_FILE_GET_INFO
	case m.TransactionGetReceipt != nil:
		return Query_TRANSACTION_GET_RECEIPT
	case m.TransactionGetRecord != nil:
		return Query_TRANSACTION_GET_RECORD
	}
	return Query_NOT_SET
}

// ResponseCase returns which response field is set.
func (m *Response) ResponseCase() QueryCase {
	switch {
	case m == nil:
		return Query_NOT_SET
	case m.GetByKey != nil:
		return Query_GET_BY_KEY
	case m.ContractCallLocal != nil:
		return Query_CONTRACT_CALL_LOCAL
	case m.ContractGetInfo != nil:
		return Query_CONTRACT_GET_INFO
	case m.ContractGetBytecode != nil:
		return Query_CONTRACT_GET_BYTECODE
	case m.ContractGetRecords != nil:
		return Query_CONTRACT_GET_RECORDS
	case m.CryptogetAccountBalance != nil:
		return Query_CRYPTO_GET_ACCOUNT_BALANCE
	case m.CryptoGetAccountRecords != nil:
		return Query_CRYPTO_GET_ACCOUNT_RECORDS
	case m.CryptoGetInfo != nil:
		return Query_CRYPTO_GET_INFO
	case m.CryptoGetClaim != nil:
		return Query_CRYPTO_GET_CLAIM
	case m.FileGetContents != nil:
		return Query_FILE_GET_CONTENTS
	case m.FileGetInfo != nil:
		return Query_FILE_GET_INFO
	case m.TransactionGetReceipt != nil:
		return Query_TRANSACTION_GET_RECEIPT
	case m.TransactionGetRecord != nil:
		return Query_TRANSACTION_GET_RECORD
	}
	return Query_NOT_SET
}
