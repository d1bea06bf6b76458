/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package hapi

import (
	"github.com/golang/protobuf/proto"
)

// Transaction is the signed envelope submitted to a node.
type Transaction struct {
	Body *TransactionBody `protobuf:"bytes,1,opt,name=body,proto3" json:"body,omitempty"`
	Sigs *SignatureList   `protobuf:"bytes,2,opt,name=sigs,proto3" json:"sigs,omitempty"`
}

func (m *Transaction) Reset()         { *m = Transaction{} }
func (m *Transaction) String() string { return proto.CompactTextString(m) }
func (*Transaction) ProtoMessage()    {}

// GetBody returns the body or nil
func (m *Transaction) GetBody() *TransactionBody {
	if m != nil {
		return m.Body
	}
	return nil
}

// GetSigs returns the signature list or nil
func (m *Transaction) GetSigs() *SignatureList {
	if m != nil {
		return m.Sigs
	}
	return nil
}

// TransactionBody is the part of a transaction covered by signatures.
// Exactly one of the data fields (7 and up) is set.
type TransactionBody struct {
	TransactionID            *TransactionID `protobuf:"bytes,1,opt,name=transactionID,proto3" json:"transactionID,omitempty"`
	NodeAccountID            *AccountID     `protobuf:"bytes,2,opt,name=nodeAccountID,proto3" json:"nodeAccountID,omitempty"`
	TransactionFee           uint64         `protobuf:"varint,3,opt,name=transactionFee,proto3" json:"transactionFee,omitempty"`
	TransactionValidDuration *Duration      `protobuf:"bytes,4,opt,name=transactionValidDuration,proto3" json:"transactionValidDuration,omitempty"`
	GenerateRecord           bool           `protobuf:"varint,5,opt,name=generateRecord,proto3" json:"generateRecord,omitempty"`
	Memo                     string         `protobuf:"bytes,6,opt,name=memo,proto3" json:"memo,omitempty"`

	ContractCall           *ContractCallTransactionBody      `protobuf:"bytes,7,opt,name=contractCall,proto3" json:"contractCall,omitempty"`
	ContractCreateInstance *ContractCreateTransactionBody    `protobuf:"bytes,8,opt,name=contractCreateInstance,proto3" json:"contractCreateInstance,omitempty"`
	ContractUpdateInstance *ContractUpdateTransactionBody    `protobuf:"bytes,9,opt,name=contractUpdateInstance,proto3" json:"contractUpdateInstance,omitempty"`
	CryptoAddClaim         *CryptoAddClaimTransactionBody    `protobuf:"bytes,10,opt,name=cryptoAddClaim,proto3" json:"cryptoAddClaim,omitempty"`
	CryptoCreateAccount    *CryptoCreateTransactionBody      `protobuf:"bytes,11,opt,name=cryptoCreateAccount,proto3" json:"cryptoCreateAccount,omitempty"`
	CryptoDelete           *CryptoDeleteTransactionBody      `protobuf:"bytes,12,opt,name=cryptoDelete,proto3" json:"cryptoDelete,omitempty"`
	CryptoDeleteClaim      *CryptoDeleteClaimTransactionBody `protobuf:"bytes,13,opt,name=cryptoDeleteClaim,proto3" json:"cryptoDeleteClaim,omitempty"`
	CryptoTransfer         *CryptoTransferTransactionBody    `protobuf:"bytes,14,opt,name=cryptoTransfer,proto3" json:"cryptoTransfer,omitempty"`
	CryptoUpdateAccount    *CryptoUpdateTransactionBody      `protobuf:"bytes,15,opt,name=cryptoUpdateAccount,proto3" json:"cryptoUpdateAccount,omitempty"`
	FileAppend             *FileAppendTransactionBody        `protobuf:"bytes,16,opt,name=fileAppend,proto3" json:"fileAppend,omitempty"`
	FileCreate             *FileCreateTransactionBody        `protobuf:"bytes,17,opt,name=fileCreate,proto3" json:"fileCreate,omitempty"`
	FileDelete             *FileDeleteTransactionBody        `protobuf:"bytes,18,opt,name=fileDelete,proto3" json:"fileDelete,omitempty"`
	FileUpdate             *FileUpdateTransactionBody        `protobuf:"bytes,19,opt,name=fileUpdate,proto3" json:"fileUpdate,omitempty"`
	AdminDelete            *AdminDeleteTransactionBody       `protobuf:"bytes,20,opt,name=adminDelete,proto3" json:"adminDelete,omitempty"`
	AdminUndelete          *AdminUndeleteTransactionBody     `protobuf:"bytes,21,opt,name=adminUndelete,proto3" json:"adminUndelete,omitempty"`
	ContractDeleteInstance *ContractDeleteTransactionBody    `protobuf:"bytes,22,opt,name=contractDeleteInstance,proto3" json:"contractDeleteInstance,omitempty"`
}

func (m *TransactionBody) Reset()         { *m = TransactionBody{} }
func (m *TransactionBody) String() string { return proto.CompactTextString(m) }
func (*TransactionBody) ProtoMessage()    {}

// GetTransactionID returns the transaction id or nil
func (m *TransactionBody) GetTransactionID() *TransactionID {
	if m != nil {
		return m.TransactionID
	}
	return nil
}

// GetNodeAccountID returns the account of the node the body is bound to, or nil
func (m *TransactionBody) GetNodeAccountID() *AccountID {
	if m != nil {
		return m.NodeAccountID
	}
	return nil
}

// GetCryptoTransfer returns the transfer operation or nil
func (m *TransactionBody) GetCryptoTransfer() *CryptoTransferTransactionBody {
	if m != nil {
		return m.CryptoTransfer
	}
	return nil
}

// TransactionBodyCase names the data field set on a TransactionBody. Values
// are the field numbers.
type TransactionBodyCase int32

// Transaction body cases
const (
	TransactionBody_NOT_SET                  TransactionBodyCase = 0
	TransactionBody_CONTRACT_CALL            TransactionBodyCase = 7
	TransactionBody_CONTRACT_CREATE_INSTANCE TransactionBodyCase = 8
	TransactionBody_CONTRACT_UPDATE_INSTANCE TransactionBodyCase = 9
	TransactionBody_CRYPTO_ADD_CLAIM         TransactionBodyCase = 10
	TransactionBody_CRYPTO_CREATE_ACCOUNT    TransactionBodyCase = 11
	TransactionBody_CRYPTO_DELETE            TransactionBodyCase = 12
	TransactionBody_CRYPTO_DELETE_CLAIM      TransactionBodyCase = 13
	TransactionBody_CRYPTO_TRANSFER          TransactionBodyCase = 14
	TransactionBody_CRYPTO_UPDATE_ACCOUNT    TransactionBodyCase = 15
	TransactionBody_FILE_APPEND              TransactionBodyCase = 16
	TransactionBody_FILE_CREATE              TransactionBodyCase = 17
	TransactionBody_FILE_DELETE              TransactionBodyCase = 18
	TransactionBody_FILE_UPDATE              TransactionBodyCase = 19
	TransactionBody_ADMIN_DELETE             TransactionBodyCase = 20
	TransactionBody_ADMIN_UNDELETE           TransactionBodyCase = 21
	TransactionBody_CONTRACT_DELETE_INSTANCE TransactionBodyCase = 22
)

var transactionBodyCaseName = map[int32]string{
	0:  "NOT_SET",
	7:  "contractCall",
	8:  "contractCreateInstance",
	9:  "contractUpdateInstance",
	10: "cryptoAddClaim",
	11: "cryptoCreateAccount",
	12: "cryptoDelete",
	13: "cryptoDeleteClaim",
	14: "cryptoTransfer",
	15: "cryptoUpdateAccount",
	16: "fileAppend",
	17: "fileCreate",
	18: "fileDelete",
	19: "fileUpdate",
	20: "adminDelete",
	21: "adminUndelete",
	22: "contractDeleteInstance",
}

func (c TransactionBodyCase) String() string {
	return proto.EnumName(transactionBodyCaseName, int32(c))
}

// DataCase returns which data field is set.
func (m *TransactionBody) DataCase() TransactionBodyCase {
	switch {
	case m == nil:
		return TransactionBody_NOT_SET
	case m.ContractCall != nil:
		return TransactionBody_CONTRACT_CALL
	case m.ContractCreateInstance != nil:
		return TransactionBody_CONTRACT_CREATE_INSTANCE
	case m.ContractUpdateInstance != nil:
		return TransactionBody_CONTRACT_UPDATE_INSTANCE
	case m.CryptoAddClaim != nil:
		return TransactionBody_CRYPTO_ADD_CLAIM
	case m.CryptoCreateAccount != nil:
		return TransactionBody_CRYPTO_CREATE_ACCOUNT
	case m.CryptoDelete != nil:
		return TransactionBody_CRYPTO_DELETE
	case m.CryptoDeleteClaim != nil:
		return TransactionBody_CRYPTO_DELETE_CLAIM
	case m.CryptoTransfer != nil:
		return TransactionBody_CRYPTO_TRANSFER
	case m.CryptoUpdateAccount != nil:
		return TransactionBody_CRYPTO_UPDATE_ACCOUNT
	case m.FileAppend != nil:
		return TransactionBody_FILE_APPEND
	case m.FileCreate != nil:
		return TransactionBody_FILE_CREATE
	case m.FileDelete != nil:
		return TransactionBody_FILE_DELETE
	case m.FileUpdate != nil:
		return TransactionBody_FILE_UPDATE
	case m.AdminDelete != nil:
		return TransactionBody_ADMIN_DELETE
	case m.AdminUndelete != nil:
		return TransactionBody_ADMIN_UNDELETE
	case m.ContractDeleteInstance != nil:
		return TransactionBody_CONTRACT_DELETE_INSTANCE
	}
	return TransactionBody_NOT_SET
}

// DataFieldCount returns how many data fields are set. A well formed body
// has exactly one.
func (m *TransactionBody) DataFieldCount() int {
	if m == nil {
		return 0
	}
	n := 0
	for _, set := range []bool{
		m.ContractCall != nil, m.ContractCreateInstance != nil, m.ContractUpdateInstance != nil,
		m.CryptoAddClaim != nil, m.CryptoCreateAccount != nil, m.CryptoDelete != nil,
		m.CryptoDeleteClaim != nil, m.CryptoTransfer != nil, m.CryptoUpdateAccount != nil,
		m.FileAppend != nil, m.FileCreate != nil, m.FileDelete != nil, m.FileUpdate != nil,
		m.AdminDelete != nil, m.AdminUndelete != nil, m.ContractDeleteInstance != nil,
	} {
		if set {
			n++
		}
	}
	return n
}

// TransactionResponse is the node's synchronous answer to a submission.
type TransactionResponse struct {
	NodeTransactionPrecheckCode NodeTransactionPrecheckCode `protobuf:"varint,1,opt,name=nodeTransactionPrecheckCode,proto3,enum=proto.NodeTransactionPrecheckCode" json:"nodeTransactionPrecheckCode,omitempty"`
}

func (m *TransactionResponse) Reset()         { *m = TransactionResponse{} }
func (m *TransactionResponse) String() string { return proto.CompactTextString(m) }
func (*TransactionResponse) ProtoMessage()    {}

// GetNodeTransactionPrecheckCode returns the precheck code
func (m *TransactionResponse) GetNodeTransactionPrecheckCode() NodeTransactionPrecheckCode {
	if m != nil {
		return m.NodeTransactionPrecheckCode
	}
	return NodeTransactionPrecheckCode_OK
}
