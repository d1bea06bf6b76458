/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package hapi

import (
	"github.com/golang/protobuf/proto"
)

// ContractCreateTransactionBody instantiates a contract from bytecode stored
// in a file.
type ContractCreateTransactionBody struct {
	FileID                *FileID    `protobuf:"bytes,1,opt,name=fileID,proto3" json:"fileID,omitempty"`
	AdminKey              *Key       `protobuf:"bytes,3,opt,name=adminKey,proto3" json:"adminKey,omitempty"`
	Gas                   int64      `protobuf:"varint,4,opt,name=gas,proto3" json:"gas,omitempty"`
	InitialBalance        int64      `protobuf:"varint,5,opt,name=initialBalance,proto3" json:"initialBalance,omitempty"`
	ProxyAccountID        *AccountID `protobuf:"bytes,6,opt,name=proxyAccountID,proto3" json:"proxyAccountID,omitempty"`
	AutoRenewPeriod       *Duration  `protobuf:"bytes,8,opt,name=autoRenewPeriod,proto3" json:"autoRenewPeriod,omitempty"`
	ConstructorParameters []byte     `protobuf:"bytes,9,opt,name=constructorParameters,proto3" json:"constructorParameters,omitempty"`
	ShardID               *ShardID   `protobuf:"bytes,10,opt,name=shardID,proto3" json:"shardID,omitempty"`
	RealmID               *RealmID   `protobuf:"bytes,11,opt,name=realmID,proto3" json:"realmID,omitempty"`
	NewRealmAdminKey      *Key       `protobuf:"bytes,12,opt,name=newRealmAdminKey,proto3" json:"newRealmAdminKey,omitempty"`
}

func (m *ContractCreateTransactionBody) Reset()         { *m = ContractCreateTransactionBody{} }
func (m *ContractCreateTransactionBody) String() string { return proto.CompactTextString(m) }
func (*ContractCreateTransactionBody) ProtoMessage()    {}

// ContractUpdateTransactionBody changes the properties of a contract.
type ContractUpdateTransactionBody struct {
	ContractID      *ContractID `protobuf:"bytes,1,opt,name=contractID,proto3" json:"contractID,omitempty"`
	ExpirationTime  *Timestamp  `protobuf:"bytes,2,opt,name=expirationTime,proto3" json:"expirationTime,omitempty"`
	AdminKey        *Key        `protobuf:"bytes,3,opt,name=adminKey,proto3" json:"adminKey,omitempty"`
	ProxyAccountID  *AccountID  `protobuf:"bytes,6,opt,name=proxyAccountID,proto3" json:"proxyAccountID,omitempty"`
	AutoRenewPeriod *Duration   `protobuf:"bytes,7,opt,name=autoRenewPeriod,proto3" json:"autoRenewPeriod,omitempty"`
	FileID          *FileID     `protobuf:"bytes,8,opt,name=fileID,proto3" json:"fileID,omitempty"`
}

func (m *ContractUpdateTransactionBody) Reset()         { *m = ContractUpdateTransactionBody{} }
func (m *ContractUpdateTransactionBody) String() string { return proto.CompactTextString(m) }
func (*ContractUpdateTransactionBody) ProtoMessage()    {}

// ContractCallTransactionBody calls a contract function.
type ContractCallTransactionBody struct {
	ContractID         *ContractID `protobuf:"bytes,1,opt,name=contractID,proto3" json:"contractID,omitempty"`
	Gas                int64       `protobuf:"varint,2,opt,name=gas,proto3" json:"gas,omitempty"`
	Amount             int64       `protobuf:"varint,3,opt,name=amount,proto3" json:"amount,omitempty"`
	FunctionParameters []byte      `protobuf:"bytes,4,opt,name=functionParameters,proto3" json:"functionParameters,omitempty"`
}

func (m *ContractCallTransactionBody) Reset()         { *m = ContractCallTransactionBody{} }
func (m *ContractCallTransactionBody) String() string { return proto.CompactTextString(m) }
func (*ContractCallTransactionBody) ProtoMessage()    {}

// ContractDeleteTransactionBody deletes a contract. At most one of the
// obtainer fields is set.
type ContractDeleteTransactionBody struct {
	ContractID         *ContractID `protobuf:"bytes,1,opt,name=contractID,proto3" json:"contractID,omitempty"`
	TransferAccountID  *AccountID  `protobuf:"bytes,2,opt,name=transferAccountID,proto3" json:"transferAccountID,omitempty"`
	TransferContractID *ContractID `protobuf:"bytes,3,opt,name=transferContractID,proto3" json:"transferContractID,omitempty"`
}

func (m *ContractDeleteTransactionBody) Reset()         { *m = ContractDeleteTransactionBody{} }
func (m *ContractDeleteTransactionBody) String() string { return proto.CompactTextString(m) }
func (*ContractDeleteTransactionBody) ProtoMessage()    {}

// ContractLoginfo is one log entry emitted by a contract call.
type ContractLoginfo struct {
	ContractID *ContractID `protobuf:"bytes,1,opt,name=contractID,proto3" json:"contractID,omitempty"`
	Bloom      []byte      `protobuf:"bytes,2,opt,name=bloom,proto3" json:"bloom,omitempty"`
	Topic      [][]byte    `protobuf:"bytes,3,rep,name=topic,proto3" json:"topic,omitempty"`
	Data       []byte      `protobuf:"bytes,4,opt,name=data,proto3" json:"data,omitempty"`
}

func (m *ContractLoginfo) Reset()         { *m = ContractLoginfo{} }
func (m *ContractLoginfo) String() string { return proto.CompactTextString(m) }
func (*ContractLoginfo) ProtoMessage()    {}

// ContractFunctionResult is the outcome of a contract call or creation.
type ContractFunctionResult struct {
	ContractID         *ContractID        `protobuf:"bytes,1,opt,name=contractID,proto3" json:"contractID,omitempty"`
	ContractCallResult []byte             `protobuf:"bytes,2,opt,name=contractCallResult,proto3" json:"contractCallResult,omitempty"`
	ErrorMessage       string             `protobuf:"bytes,3,opt,name=errorMessage,proto3" json:"errorMessage,omitempty"`
	Bloom              []byte             `protobuf:"bytes,4,opt,name=bloom,proto3" json:"bloom,omitempty"`
	GasUsed            uint64             `protobuf:"varint,5,opt,name=gasUsed,proto3" json:"gasUsed,omitempty"`
	LogInfo            []*ContractLoginfo `protobuf:"bytes,6,rep,name=logInfo,proto3" json:"logInfo,omitempty"`
}

func (m *ContractFunctionResult) Reset()         { *m = ContractFunctionResult{} }
func (m *ContractFunctionResult) String() string { return proto.CompactTextString(m) }
func (*ContractFunctionResult) ProtoMessage()    {}
