/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package hapi holds the protobuf messages and gRPC service bindings of the
// ledger's node API. Messages are plain proto3 structs marshalled through
// github.com/golang/protobuf; oneof members are modelled as optional fields
// of which at most one is set.
package hapi

import (
	"github.com/golang/protobuf/proto"
)

// ShardID identifies a shard.
type ShardID struct {
	ShardNum int64 `protobuf:"varint,1,opt,name=shardNum,proto3" json:"shardNum,omitempty"`
}

func (m *ShardID) Reset()         { *m = ShardID{} }
func (m *ShardID) String() string { return proto.CompactTextString(m) }
func (*ShardID) ProtoMessage()    {}

// RealmID identifies a realm within a shard.
type RealmID struct {
	ShardNum int64 `protobuf:"varint,1,opt,name=shardNum,proto3" json:"shardNum,omitempty"`
	RealmNum int64 `protobuf:"varint,2,opt,name=realmNum,proto3" json:"realmNum,omitempty"`
}

func (m *RealmID) Reset()         { *m = RealmID{} }
func (m *RealmID) String() string { return proto.CompactTextString(m) }
func (*RealmID) ProtoMessage()    {}

// AccountID identifies an account.
type AccountID struct {
	ShardNum   int64 `protobuf:"varint,1,opt,name=shardNum,proto3" json:"shardNum,omitempty"`
	RealmNum   int64 `protobuf:"varint,2,opt,name=realmNum,proto3" json:"realmNum,omitempty"`
	AccountNum int64 `protobuf:"varint,3,opt,name=accountNum,proto3" json:"accountNum,omitempty"`
}

func (m *AccountID) Reset()         { *m = AccountID{} }
func (m *AccountID) String() string { return proto.CompactTextString(m) }
func (*AccountID) ProtoMessage()    {}

// FileID identifies a file.
type FileID struct {
	ShardNum int64 `protobuf:"varint,1,opt,name=shardNum,proto3" json:"shardNum,omitempty"`
	RealmNum int64 `protobuf:"varint,2,opt,name=realmNum,proto3" json:"realmNum,omitempty"`
	FileNum  int64 `protobuf:"varint,3,opt,name=fileNum,proto3" json:"fileNum,omitempty"`
}

func (m *FileID) Reset()         { *m = FileID{} }
func (m *FileID) String() string { return proto.CompactTextString(m) }
func (*FileID) ProtoMessage()    {}

// ContractID identifies a smart contract instance.
type ContractID struct {
	ShardNum    int64 `protobuf:"varint,1,opt,name=shardNum,proto3" json:"shardNum,omitempty"`
	RealmNum    int64 `protobuf:"varint,2,opt,name=realmNum,proto3" json:"realmNum,omitempty"`
	ContractNum int64 `protobuf:"varint,3,opt,name=contractNum,proto3" json:"contractNum,omitempty"`
}

func (m *ContractID) Reset()         { *m = ContractID{} }
func (m *ContractID) String() string { return proto.CompactTextString(m) }
func (*ContractID) ProtoMessage()    {}

// Timestamp is an instant with nanosecond precision.
type Timestamp struct {
	Seconds int64 `protobuf:"varint,1,opt,name=seconds,proto3" json:"seconds,omitempty"`
	Nanos   int32 `protobuf:"varint,2,opt,name=nanos,proto3" json:"nanos,omitempty"`
}

func (m *Timestamp) Reset()         { *m = Timestamp{} }
func (m *Timestamp) String() string { return proto.CompactTextString(m) }
func (*Timestamp) ProtoMessage()    {}

// TimestampSeconds is an instant with second precision.
type TimestampSeconds struct {
	Seconds int64 `protobuf:"varint,1,opt,name=seconds,proto3" json:"seconds,omitempty"`
}

func (m *TimestampSeconds) Reset()         { *m = TimestampSeconds{} }
func (m *TimestampSeconds) String() string { return proto.CompactTextString(m) }
func (*TimestampSeconds) ProtoMessage()    {}

// Duration is a length of time in seconds.
type Duration struct {
	Seconds int64 `protobuf:"varint,1,opt,name=seconds,proto3" json:"seconds,omitempty"`
}

func (m *Duration) Reset()         { *m = Duration{} }
func (m *Duration) String() string { return proto.CompactTextString(m) }
func (*Duration) ProtoMessage()    {}

// TransactionID is the payer account plus the start of the validity window.
type TransactionID struct {
	TransactionValidStart *Timestamp `protobuf:"bytes,1,opt,name=transactionValidStart,proto3" json:"transactionValidStart,omitempty"`
	AccountID             *AccountID `protobuf:"bytes,2,opt,name=accountID,proto3" json:"accountID,omitempty"`
}

func (m *TransactionID) Reset()         { *m = TransactionID{} }
func (m *TransactionID) String() string { return proto.CompactTextString(m) }
func (*TransactionID) ProtoMessage()    {}

// GetTransactionValidStart returns the valid start or nil
func (m *TransactionID) GetTransactionValidStart() *Timestamp {
	if m != nil {
		return m.TransactionValidStart
	}
	return nil
}

// GetAccountID returns the payer account or nil
func (m *TransactionID) GetAccountID() *AccountID {
	if m != nil {
		return m.AccountID
	}
	return nil
}

// Key is one of several key kinds; exactly one field is set.
type Key struct {
	ContractID   *ContractID   `protobuf:"bytes,1,opt,name=contractID,proto3" json:"contractID,omitempty"`
	Ed25519      []byte        `protobuf:"bytes,2,opt,name=ed25519,proto3" json:"ed25519,omitempty"`
	RSA_3072     []byte        `protobuf:"bytes,3,opt,name=RSA_3072,json=RSA3072,proto3" json:"RSA_3072,omitempty"`
	ECDSA_384    []byte        `protobuf:"bytes,4,opt,name=ECDSA_384,json=ECDSA384,proto3" json:"ECDSA_384,omitempty"`
	ThresholdKey *ThresholdKey `protobuf:"bytes,5,opt,name=thresholdKey,proto3" json:"thresholdKey,omitempty"`
	KeyList      *KeyList      `protobuf:"bytes,6,opt,name=keyList,proto3" json:"keyList,omitempty"`
}

func (m *Key) Reset()         { *m = Key{} }
func (m *Key) String() string { return proto.CompactTextString(m) }
func (*Key) ProtoMessage()    {}

// ThresholdKey requires Threshold of Keys to sign.
type ThresholdKey struct {
	Threshold uint32   `protobuf:"varint,1,opt,name=threshold,proto3" json:"threshold,omitempty"`
	Keys      *KeyList `protobuf:"bytes,2,opt,name=keys,proto3" json:"keys,omitempty"`
}

func (m *ThresholdKey) Reset()         { *m = ThresholdKey{} }
func (m *ThresholdKey) String() string { return proto.CompactTextString(m) }
func (*ThresholdKey) ProtoMessage()    {}

// KeyList requires all of Keys to sign.
type KeyList struct {
	Keys []*Key `protobuf:"bytes,1,rep,name=keys,proto3" json:"keys,omitempty"`
}

func (m *KeyList) Reset()         { *m = KeyList{} }
func (m *KeyList) String() string { return proto.CompactTextString(m) }
func (*KeyList) ProtoMessage()    {}

// GetKeys returns the keys or nil
func (m *KeyList) GetKeys() []*Key {
	if m != nil {
		return m.Keys
	}
	return nil
}

// Signature is one of several signature kinds; exactly one field is set.
type Signature struct {
	Contract           []byte              `protobuf:"bytes,1,opt,name=contract,proto3" json:"contract,omitempty"`
	Ed25519            []byte              `protobuf:"bytes,2,opt,name=ed25519,proto3" json:"ed25519,omitempty"`
	RSA_3072           []byte              `protobuf:"bytes,3,opt,name=RSA_3072,json=RSA3072,proto3" json:"RSA_3072,omitempty"`
	ECDSA_384          []byte              `protobuf:"bytes,4,opt,name=ECDSA_384,json=ECDSA384,proto3" json:"ECDSA_384,omitempty"`
	ThresholdSignature *ThresholdSignature `protobuf:"bytes,5,opt,name=thresholdSignature,proto3" json:"thresholdSignature,omitempty"`
	SignatureList      *SignatureList      `protobuf:"bytes,6,opt,name=signatureList,proto3" json:"signatureList,omitempty"`
}

func (m *Signature) Reset()         { *m = Signature{} }
func (m *Signature) String() string { return proto.CompactTextString(m) }
func (*Signature) ProtoMessage()    {}

// ThresholdSignature carries the signatures matching a ThresholdKey.
type ThresholdSignature struct {
	Sigs *SignatureList `protobuf:"bytes,2,opt,name=sigs,proto3" json:"sigs,omitempty"`
}

func (m *ThresholdSignature) Reset()         { *m = ThresholdSignature{} }
func (m *ThresholdSignature) String() string { return proto.CompactTextString(m) }
func (*ThresholdSignature) ProtoMessage()    {}

// SignatureList carries the signatures matching a KeyList, in key order.
type SignatureList struct {
	Sigs []*Signature `protobuf:"bytes,2,rep,name=sigs,proto3" json:"sigs,omitempty"`
}

func (m *SignatureList) Reset()         { *m = SignatureList{} }
func (m *SignatureList) String() string { return proto.CompactTextString(m) }
func (*SignatureList) ProtoMessage()    {}

// GetSigs returns the signatures or nil
func (m *SignatureList) GetSigs() []*Signature {
	if m != nil {
		return m.Sigs
	}
	return nil
}
