/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package hapi

import (
	"github.com/golang/protobuf/proto"
)

// GetByKeyQuery lists the entities associated with a key.
type GetByKeyQuery struct {
	Header *QueryHeader `protobuf:"bytes,1,opt,name=header,proto3" json:"header,omitempty"`
	Key    *Key         `protobuf:"bytes,2,opt,name=key,proto3" json:"key,omitempty"`
}

func (m *GetByKeyQuery) Reset()         { *m = GetByKeyQuery{} }
func (m *GetByKeyQuery) String() string { return proto.CompactTextString(m) }
func (*GetByKeyQuery) ProtoMessage()    {}

// EntityID is one of account, claim, file or contract.
type EntityID struct {
	AccountID  *AccountID  `protobuf:"bytes,1,opt,name=accountID,proto3" json:"accountID,omitempty"`
	Claim      *Claim      `protobuf:"bytes,2,opt,name=claim,proto3" json:"claim,omitempty"`
	FileID     *FileID     `protobuf:"bytes,3,opt,name=fileID,proto3" json:"fileID,omitempty"`
	ContractID *ContractID `protobuf:"bytes,4,opt,name=contractID,proto3" json:"contractID,omitempty"`
}

func (m *EntityID) Reset()         { *m = EntityID{} }
func (m *EntityID) String() string { return proto.CompactTextString(m) }
func (*EntityID) ProtoMessage()    {}

// GetByKeyResponse answers GetByKeyQuery.
type GetByKeyResponse struct {
	Header   *ResponseHeader `protobuf:"bytes,1,opt,name=header,proto3" json:"header,omitempty"`
	Entities []*EntityID     `protobuf:"bytes,2,rep,name=entities,proto3" json:"entities,omitempty"`
}

func (m *GetByKeyResponse) Reset()         { *m = GetByKeyResponse{} }
func (m *GetByKeyResponse) String() string { return proto.CompactTextString(m) }
func (*GetByKeyResponse) ProtoMessage()    {}

// ContractCallLocalQuery runs a contract function on the node without
// reaching consensus.
type ContractCallLocalQuery struct {
	Header             *QueryHeader `protobuf:"bytes,1,opt,name=header,proto3" json:"header,omitempty"`
	ContractID         *ContractID  `protobuf:"bytes,2,opt,name=contractID,proto3" json:"contractID,omitempty"`
	Gas                int64        `protobuf:"varint,3,opt,name=gas,proto3" json:"gas,omitempty"`
	FunctionParameters []byte       `protobuf:"bytes,4,opt,name=functionParameters,proto3" json:"functionParameters,omitempty"`
	MaxResultSize      int64        `protobuf:"varint,5,opt,name=maxResultSize,proto3" json:"maxResultSize,omitempty"`
}

func (m *ContractCallLocalQuery) Reset()         { *m = ContractCallLocalQuery{} }
func (m *ContractCallLocalQuery) String() string { return proto.CompactTextString(m) }
func (*ContractCallLocalQuery) ProtoMessage()    {}

// ContractCallLocalResponse answers ContractCallLocalQuery.
type ContractCallLocalResponse struct {
	Header         *ResponseHeader         `protobuf:"bytes,1,opt,name=header,proto3" json:"header,omitempty"`
	FunctionResult *ContractFunctionResult `protobuf:"bytes,2,opt,name=functionResult,proto3" json:"functionResult,omitempty"`
}

func (m *ContractCallLocalResponse) Reset()         { *m = ContractCallLocalResponse{} }
func (m *ContractCallLocalResponse) String() string { return proto.CompactTextString(m) }
func (*ContractCallLocalResponse) ProtoMessage()    {}

// ContractGetInfoQuery requests the properties of a contract.
type ContractGetInfoQuery struct {
	Header     *QueryHeader `protobuf:"bytes,1,opt,name=header,proto3" json:"header,omitempty"`
	ContractID *ContractID  `protobuf:"bytes,2,opt,name=contractID,proto3" json:"contractID,omitempty"`
}

func (m *ContractGetInfoQuery) Reset()         { *m = ContractGetInfoQuery{} }
func (m *ContractGetInfoQuery) String() string { return proto.CompactTextString(m) }
func (*ContractGetInfoQuery) ProtoMessage()    {}

// ContractInfo describes a contract.
type ContractInfo struct {
	ContractID        *ContractID `protobuf:"bytes,1,opt,name=contractID,proto3" json:"contractID,omitempty"`
	AccountID         *AccountID  `protobuf:"bytes,2,opt,name=accountID,proto3" json:"accountID,omitempty"`
	ContractAccountID string      `protobuf:"bytes,3,opt,name=contractAccountID,proto3" json:"contractAccountID,omitempty"`
	AdminKey          *Key        `protobuf:"bytes,4,opt,name=adminKey,proto3" json:"adminKey,omitempty"`
	ExpirationTime    *Timestamp  `protobuf:"bytes,5,opt,name=expirationTime,proto3" json:"expirationTime,omitempty"`
	AutoRenewPeriod   *Duration   `protobuf:"bytes,6,opt,name=autoRenewPeriod,proto3" json:"autoRenewPeriod,omitempty"`
	Storage           int64       `protobuf:"varint,7,opt,name=storage,proto3" json:"storage,omitempty"`
	Memo              string      `protobuf:"bytes,8,opt,name=memo,proto3" json:"memo,omitempty"`
	Balance           uint64      `protobuf:"varint,9,opt,name=balance,proto3" json:"balance,omitempty"`
}

func (m *ContractInfo) Reset()         { *m = ContractInfo{} }
func (m *ContractInfo) String() string { return proto.CompactTextString(m) }
func (*ContractInfo) ProtoMessage()    {}

// ContractGetInfoResponse answers ContractGetInfoQuery.
type ContractGetInfoResponse struct {
	Header       *ResponseHeader `protobuf:"bytes,1,opt,name=header,proto3" json:"header,omitempty"`
	ContractInfo *ContractInfo   `protobuf:"bytes,2,opt,name=contractInfo,proto3" json:"contractInfo,omitempty"`
}

func (m *ContractGetInfoResponse) Reset()         { *m = ContractGetInfoResponse{} }
func (m *ContractGetInfoResponse) String() string { return proto.CompactTextString(m) }
func (*ContractGetInfoResponse) ProtoMessage()    {}

// ContractGetBytecodeQuery requests the runtime bytecode of a contract.
type ContractGetBytecodeQuery struct {
	Header     *QueryHeader `protobuf:"bytes,1,opt,name=header,proto3" json:"header,omitempty"`
	ContractID *ContractID  `protobuf:"bytes,2,opt,name=contractID,proto3" json:"contractID,omitempty"`
}

func (m *ContractGetBytecodeQuery) Reset()         { *m = ContractGetBytecodeQuery{} }
func (m *ContractGetBytecodeQuery) String() string { return proto.CompactTextString(m) }
func (*ContractGetBytecodeQuery) ProtoMessage()    {}

// ContractGetBytecodeResponse answers ContractGetBytecodeQuery.
type ContractGetBytecodeResponse struct {
	Header   *ResponseHeader `protobuf:"bytes,1,opt,name=header,proto3" json:"header,omitempty"`
	Bytecode []byte          `protobuf:"bytes,6,opt,name=bytecode,proto3" json:"bytecode,omitempty"`
}

func (m *ContractGetBytecodeResponse) Reset()         { *m = ContractGetBytecodeResponse{} }
func (m *ContractGetBytecodeResponse) String() string { return proto.CompactTextString(m) }
func (*ContractGetBytecodeResponse) ProtoMessage()    {}

// ContractGetRecordsQuery requests the recent records of a contract.
type ContractGetRecordsQuery struct {
	Header     *QueryHeader `protobuf:"bytes,1,opt,name=header,proto3" json:"header,omitempty"`
	ContractID *ContractID  `protobuf:"bytes,2,opt,name=contractID,proto3" json:"contractID,omitempty"`
}

func (m *ContractGetRecordsQuery) Reset()         { *m = ContractGetRecordsQuery{} }
func (m *ContractGetRecordsQuery) String() string { return proto.CompactTextString(m) }
func (*ContractGetRecordsQuery) ProtoMessage()    {}

// ContractGetRecordsResponse answers ContractGetRecordsQuery.
type ContractGetRecordsResponse struct {
	Header     *ResponseHeader      `protobuf:"bytes,1,opt,name=header,proto3" json:"header,omitempty"`
	ContractID *ContractID          `protobuf:"bytes,2,opt,name=contractID,proto3" json:"contractID,omitempty"`
	Records    []*TransactionRecord `protobuf:"bytes,3,rep,name=records,proto3" json:"records,omitempty"`
}

func (m *ContractGetRecordsResponse) Reset()         { *m = ContractGetRecordsResponse{} }
func (m *ContractGetRecordsResponse) String() string { return proto.CompactTextString(m) }
func (*ContractGetRecordsResponse) ProtoMessage()    {}

// CryptoGetAccountBalanceQuery requests the balance of an account.
type CryptoGetAccountBalanceQuery struct {
	Header    *QueryHeader `protobuf:"bytes,1,opt,name=header,proto3" json:"header,omitempty"`
	AccountID *AccountID   `protobuf:"bytes,2,opt,name=accountID,proto3" json:"accountID,omitempty"`
}

func (m *CryptoGetAccountBalanceQuery) Reset()         { *m = CryptoGetAccountBalanceQuery{} }
func (m *CryptoGetAccountBalanceQuery) String() string { return proto.CompactTextString(m) }
func (*CryptoGetAccountBalanceQuery) ProtoMessage()    {}

// CryptoGetAccountBalanceResponse answers CryptoGetAccountBalanceQuery.
type CryptoGetAccountBalanceResponse struct {
	Header    *ResponseHeader `protobuf:"bytes,1,opt,name=header,proto3" json:"header,omitempty"`
	AccountID *AccountID      `protobuf:"bytes,2,opt,name=accountID,proto3" json:"accountID,omitempty"`
	Balance   uint64          `protobuf:"varint,3,opt,name=balance,proto3" json:"balance,omitempty"`
}

func (m *CryptoGetAccountBalanceResponse) Reset()         { *m = CryptoGetAccountBalanceResponse{} }
func (m *CryptoGetAccountBalanceResponse) String() string { return proto.CompactTextString(m) }
func (*CryptoGetAccountBalanceResponse) ProtoMessage()    {}

// CryptoGetAccountRecordsQuery requests the recent records of an account.
type CryptoGetAccountRecordsQuery struct {
	Header    *QueryHeader `protobuf:"bytes,1,opt,name=header,proto3" json:"header,omitempty"`
	AccountID *AccountID   `protobuf:"bytes,2,opt,name=accountID,proto3" json:"accountID,omitempty"`
}

func (m *CryptoGetAccountRecordsQuery) Reset()         { *m = CryptoGetAccountRecordsQuery{} }
func (m *CryptoGetAccountRecordsQuery) String() string { return proto.CompactTextString(m) }
func (*CryptoGetAccountRecordsQuery) ProtoMessage()    {}

// CryptoGetAccountRecordsResponse answers CryptoGetAccountRecordsQuery.
type CryptoGetAccountRecordsResponse struct {
	Header    *ResponseHeader      `protobuf:"bytes,1,opt,name=header,proto3" json:"header,omitempty"`
	AccountID *AccountID           `protobuf:"bytes,2,opt,name=accountID,proto3" json:"accountID,omitempty"`
	Records   []*TransactionRecord `protobuf:"bytes,3,rep,name=records,proto3" json:"records,omitempty"`
}

func (m *CryptoGetAccountRecordsResponse) Reset()         { *m = CryptoGetAccountRecordsResponse{} }
func (m *CryptoGetAccountRecordsResponse) String() string { return proto.CompactTextString(m) }
func (*CryptoGetAccountRecordsResponse) ProtoMessage()    {}

// CryptoGetInfoQuery requests the properties of an account.
type CryptoGetInfoQuery struct {
	Header    *QueryHeader `protobuf:"bytes,1,opt,name=header,proto3" json:"header,omitempty"`
	AccountID *AccountID   `protobuf:"bytes,2,opt,name=accountID,proto3" json:"accountID,omitempty"`
}

func (m *CryptoGetInfoQuery) Reset()         { *m = CryptoGetInfoQuery{} }
func (m *CryptoGetInfoQuery) String() string { return proto.CompactTextString(m) }
func (*CryptoGetInfoQuery) ProtoMessage()    {}

// AccountInfo describes an account.
type AccountInfo struct {
	AccountID                      *AccountID `protobuf:"bytes,1,opt,name=accountID,proto3" json:"accountID,omitempty"`
	ContractAccountID              string     `protobuf:"bytes,2,opt,name=contractAccountID,proto3" json:"contractAccountID,omitempty"`
	Deleted                        bool       `protobuf:"varint,3,opt,name=deleted,proto3" json:"deleted,omitempty"`
	ProxyAccountID                 *AccountID `protobuf:"bytes,4,opt,name=proxyAccountID,proto3" json:"proxyAccountID,omitempty"`
	ProxyFraction                  int32      `protobuf:"varint,5,opt,name=proxyFraction,proto3" json:"proxyFraction,omitempty"`
	ProxyReceived                  int64      `protobuf:"varint,6,opt,name=proxyReceived,proto3" json:"proxyReceived,omitempty"`
	Key                            *Key       `protobuf:"bytes,7,opt,name=key,proto3" json:"key,omitempty"`
	Balance                        uint64     `protobuf:"varint,8,opt,name=balance,proto3" json:"balance,omitempty"`
	GenerateSendRecordThreshold    uint64     `protobuf:"varint,9,opt,name=generateSendRecordThreshold,proto3" json:"generateSendRecordThreshold,omitempty"`
	GenerateReceiveRecordThreshold uint64     `protobuf:"varint,10,opt,name=generateReceiveRecordThreshold,proto3" json:"generateReceiveRecordThreshold,omitempty"`
	ReceiverSigRequired            bool       `protobuf:"varint,11,opt,name=receiverSigRequired,proto3" json:"receiverSigRequired,omitempty"`
	ExpirationTime                 *Timestamp `protobuf:"bytes,12,opt,name=expirationTime,proto3" json:"expirationTime,omitempty"`
	AutoRenewPeriod                *Duration  `protobuf:"bytes,13,opt,name=autoRenewPeriod,proto3" json:"autoRenewPeriod,omitempty"`
	Claims                         []*Claim   `protobuf:"bytes,14,rep,name=claims,proto3" json:"claims,omitempty"`
}

func (m *AccountInfo) Reset()         { *m = AccountInfo{} }
func (m *AccountInfo) String() string { return proto.CompactTextString(m) }
func (*AccountInfo) ProtoMessage()    {}

// CryptoGetInfoResponse answers CryptoGetInfoQuery.
type CryptoGetInfoResponse struct {
	Header      *ResponseHeader `protobuf:"bytes,1,opt,name=header,proto3" json:"header,omitempty"`
	AccountInfo *AccountInfo    `protobuf:"bytes,2,opt,name=accountInfo,proto3" json:"accountInfo,omitempty"`
}

func (m *CryptoGetInfoResponse) Reset()         { *m = CryptoGetInfoResponse{} }
func (m *CryptoGetInfoResponse) String() string { return proto.CompactTextString(m) }
func (*CryptoGetInfoResponse) ProtoMessage()    {}

// CryptoGetClaimQuery requests a claim attached to an account.
type CryptoGetClaimQuery struct {
	Header    *QueryHeader `protobuf:"bytes,1,opt,name=header,proto3" json:"header,omitempty"`
	AccountID *AccountID   `protobuf:"bytes,2,opt,name=accountID,proto3" json:"accountID,omitempty"`
	Hash      []byte       `protobuf:"bytes,3,opt,name=hash,proto3" json:"hash,omitempty"`
}

func (m *CryptoGetClaimQuery) Reset()         { *m = CryptoGetClaimQuery{} }
func (m *CryptoGetClaimQuery) String() string { return proto.CompactTextString(m) }
func (*CryptoGetClaimQuery) ProtoMessage()    {}

// CryptoGetClaimResponse answers CryptoGetClaimQuery.
type CryptoGetClaimResponse struct {
	Header *ResponseHeader `protobuf:"bytes,1,opt,name=header,proto3" json:"header,omitempty"`
	Claim  *Claim          `protobuf:"bytes,2,opt,name=claim,proto3" json:"claim,omitempty"`
}

func (m *CryptoGetClaimResponse) Reset()         { *m = CryptoGetClaimResponse{} }
func (m *CryptoGetClaimResponse) String() string { return proto.CompactTextString(m) }
func (*CryptoGetClaimResponse) ProtoMessage()    {}

// FileGetContentsQuery requests the contents of a file.
type FileGetContentsQuery struct {
	Header *QueryHeader `protobuf:"bytes,1,opt,name=header,proto3" json:"header,omitempty"`
	FileID *FileID      `protobuf:"bytes,2,opt,name=fileID,proto3" json:"fileID,omitempty"`
}

func (m *FileGetContentsQuery) Reset()         { *m = FileGetContentsQuery{} }
func (m *FileGetContentsQuery) String() string { return proto.CompactTextString(m) }
func (*FileGetContentsQuery) ProtoMessage()    {}

// FileContents is a file id and its contents.
type FileContents struct {
	FileID   *FileID `protobuf:"bytes,1,opt,name=fileID,proto3" json:"fileID,omitempty"`
	Contents []byte  `protobuf:"bytes,2,opt,name=contents,proto3" json:"contents,omitempty"`
}

func (m *FileContents) Reset()         { *m = FileContents{} }
func (m *FileContents) String() string { return proto.CompactTextString(m) }
func (*FileContents) ProtoMessage()    {}

// FileGetContentsResponse answers FileGetContentsQuery.
type FileGetContentsResponse struct {
	Header       *ResponseHeader `protobuf:"bytes,1,opt,name=header,proto3" json:"header,omitempty"`
	FileContents *FileContents   `protobuf:"bytes,2,opt,name=fileContents,proto3" json:"fileContents,omitempty"`
}

func (m *FileGetContentsResponse) Reset()         { *m = FileGetContentsResponse{} }
func (m *FileGetContentsResponse) String() string { return proto.CompactTextString(m) }
func (*FileGetContentsResponse) ProtoMessage()    {}

// FileGetInfoQuery requests the properties of a file.
type FileGetInfoQuery struct {
	Header *QueryHeader `protobuf:"bytes,1,opt,name=header,proto3" json:"header,omitempty"`
	FileID *FileID      `protobuf:"bytes,2,opt,name=fileID,proto3" json:"fileID,omitempty"`
}

func (m *FileGetInfoQuery) Reset()         { *m = FileGetInfoQuery{} }
func (m *FileGetInfoQuery) String() string { return proto.CompactTextString(m) }
func (*FileGetInfoQuery) ProtoMessage()    {}

// FileInfo describes a file.
type FileInfo struct {
	FileID         *FileID    `protobuf:"bytes,1,opt,name=fileID,proto3" json:"fileID,omitempty"`
	Size           int64      `protobuf:"varint,2,opt,name=size,proto3" json:"size,omitempty"`
	ExpirationTime *Timestamp `protobuf:"bytes,3,opt,name=expirationTime,proto3" json:"expirationTime,omitempty"`
	Deleted        bool       `protobuf:"varint,4,opt,name=deleted,proto3" json:"deleted,omitempty"`
	Keys           *KeyList   `protobuf:"bytes,5,opt,name=keys,proto3" json:"keys,omitempty"`
}

func (m *FileInfo) Reset()         { *m = FileInfo{} }
func (m *FileInfo) String() string { return proto.CompactTextString(m) }
func (*FileInfo) ProtoMessage()    {}

// FileGetInfoResponse answers FileGetInfoQuery.
type FileGetInfoResponse struct {
	Header   *ResponseHeader `protobuf:"bytes,1,opt,name=header,proto3" json:"header,omitempty"`
	FileInfo *FileInfo       `protobuf:"bytes,2,opt,name=fileInfo,proto3" json:"fileInfo,omitempty"`
}

func (m *FileGetInfoResponse) Reset()         { *m = FileGetInfoResponse{} }
func (m *FileGetInfoResponse) String() string { return proto.CompactTextString(m) }
func (*FileGetInfoResponse) ProtoMessage()    {}

// TransactionGetReceiptQuery requests the receipt of a transaction.
type TransactionGetReceiptQuery struct {
	Header        *QueryHeader   `protobuf:"bytes,1,opt,name=header,proto3" json:"header,omitempty"`
	TransactionID *TransactionID `protobuf:"bytes,2,opt,name=transactionID,proto3" json:"transactionID,omitempty"`
}

func (m *TransactionGetReceiptQuery) Reset()         { *m = TransactionGetReceiptQuery{} }
func (m *TransactionGetReceiptQuery) String() string { return proto.CompactTextString(m) }
func (*TransactionGetReceiptQuery) ProtoMessage()    {}

// TransactionReceipt is the consensus outcome of a transaction.
type TransactionReceipt struct {
	Status     ResponseCodeEnum `protobuf:"varint,1,opt,name=status,proto3,enum=proto.ResponseCodeEnum" json:"status,omitempty"`
	AccountID  *AccountID       `protobuf:"bytes,2,opt,name=accountID,proto3" json:"accountID,omitempty"`
	FileID     *FileID          `protobuf:"bytes,3,opt,name=fileID,proto3" json:"fileID,omitempty"`
	ContractID *ContractID      `protobuf:"bytes,4,opt,name=contractID,proto3" json:"contractID,omitempty"`
}

func (m *TransactionReceipt) Reset()         { *m = TransactionReceipt{} }
func (m *TransactionReceipt) String() string { return proto.CompactTextString(m) }
func (*TransactionReceipt) ProtoMessage()    {}

// TransactionGetReceiptResponse answers TransactionGetReceiptQuery.
type TransactionGetReceiptResponse struct {
	Header  *ResponseHeader     `protobuf:"bytes,1,opt,name=header,proto3" json:"header,omitempty"`
	Receipt *TransactionReceipt `protobuf:"bytes,2,opt,name=receipt,proto3" json:"receipt,omitempty"`
}

func (m *TransactionGetReceiptResponse) Reset()         { *m = TransactionGetReceiptResponse{} }
func (m *TransactionGetReceiptResponse) String() string { return proto.CompactTextString(m) }
func (*TransactionGetReceiptResponse) ProtoMessage()    {}

// TransactionGetRecordQuery requests the record of a transaction.
type TransactionGetRecordQuery struct {
	Header        *QueryHeader   `protobuf:"bytes,1,opt,name=header,proto3" json:"header,omitempty"`
	TransactionID *TransactionID `protobuf:"bytes,2,opt,name=transactionID,proto3" json:"transactionID,omitempty"`
}

func (m *TransactionGetRecordQuery) Reset()         { *m = TransactionGetRecordQuery{} }
func (m *TransactionGetRecordQuery) String() string { return proto.CompactTextString(m) }
func (*TransactionGetRecordQuery) ProtoMessage()    {}

// TransactionRecord is the detailed consensus outcome of a transaction. At
// most one of ContractCallResult and ContractCreateResult is set.
type TransactionRecord struct {
	Receipt              *TransactionReceipt     `protobuf:"bytes,1,opt,name=receipt,proto3" json:"receipt,omitempty"`
	TransactionHash      []byte                  `protobuf:"bytes,2,opt,name=transactionHash,proto3" json:"transactionHash,omitempty"`
	ConsensusTimestamp   *Timestamp              `protobuf:"bytes,3,opt,name=consensusTimestamp,proto3" json:"consensusTimestamp,omitempty"`
	TransactionID        *TransactionID          `protobuf:"bytes,4,opt,name=transactionID,proto3" json:"transactionID,omitempty"`
	Memo                 string                  `protobuf:"bytes,5,opt,name=memo,proto3" json:"memo,omitempty"`
	TransactionFee       uint64                  `protobuf:"varint,6,opt,name=transactionFee,proto3" json:"transactionFee,omitempty"`
	ContractCallResult   *ContractFunctionResult `protobuf:"bytes,7,opt,name=contractCallResult,proto3" json:"contractCallResult,omitempty"`
	ContractCreateResult *ContractFunctionResult `protobuf:"bytes,8,opt,name=contractCreateResult,proto3" json:"contractCreateResult,omitempty"`
	TransferList         *TransferList           `protobuf:"bytes,10,opt,name=transferList,proto3" json:"transferList,omitempty"`
}

func (m *TransactionRecord) Reset()         { *m = TransactionRecord{} }
func (m *TransactionRecord) String() string { return proto.CompactTextString(m) }
func (*TransactionRecord) ProtoMessage()    {}

// TransactionGetRecordResponse answers TransactionGetRecordQuery.
type TransactionGetRecordResponse struct {
	Header            *ResponseHeader    `protobuf:"bytes,1,opt,name=header,proto3" json:"header,omitempty"`
	TransactionRecord *TransactionRecord `protobuf:"bytes,3,opt,name=transactionRecord,proto3" json:"transactionRecord,omitempty"`
}

func (m *TransactionGetRecordResponse) Reset()         { *m = TransactionGetRecordResponse{} }
func (m *TransactionGetRecordResponse) String() string { return proto.CompactTextString(m) }
func (*TransactionGetRecordResponse) ProtoMessage()    {}
