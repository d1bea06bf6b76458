/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package hapi

import (
	"github.com/golang/protobuf/proto"
)

// CryptoCreateTransactionBody creates an account.
type CryptoCreateTransactionBody struct {
	Key                     *Key       `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
	InitialBalance          uint64     `protobuf:"varint,2,opt,name=initialBalance,proto3" json:"initialBalance,omitempty"`
	ProxyAccountID          *AccountID `protobuf:"bytes,3,opt,name=proxyAccountID,proto3" json:"proxyAccountID,omitempty"`
	ProxyFraction           int32      `protobuf:"varint,4,opt,name=proxyFraction,proto3" json:"proxyFraction,omitempty"`
	MaxReceiveProxyFraction int32      `protobuf:"varint,5,opt,name=maxReceiveProxyFraction,proto3" json:"maxReceiveProxyFraction,omitempty"`
	SendRecordThreshold     uint64     `protobuf:"varint,6,opt,name=sendRecordThreshold,proto3" json:"sendRecordThreshold,omitempty"`
	ReceiveRecordThreshold  uint64     `protobuf:"varint,7,opt,name=receiveRecordThreshold,proto3" json:"receiveRecordThreshold,omitempty"`
	ReceiverSigRequired     bool       `protobuf:"varint,8,opt,name=receiverSigRequired,proto3" json:"receiverSigRequired,omitempty"`
	AutoRenewPeriod         *Duration  `protobuf:"bytes,9,opt,name=autoRenewPeriod,proto3" json:"autoRenewPeriod,omitempty"`
	ShardID                 *ShardID   `protobuf:"bytes,10,opt,name=shardID,proto3" json:"shardID,omitempty"`
	RealmID                 *RealmID   `protobuf:"bytes,11,opt,name=realmID,proto3" json:"realmID,omitempty"`
	NewRealmAdminKey        *Key       `protobuf:"bytes,12,opt,name=newRealmAdminKey,proto3" json:"newRealmAdminKey,omitempty"`
}

func (m *CryptoCreateTransactionBody) Reset()         { *m = CryptoCreateTransactionBody{} }
func (m *CryptoCreateTransactionBody) String() string { return proto.CompactTextString(m) }
func (*CryptoCreateTransactionBody) ProtoMessage()    {}

// AccountAmount is a signed change to an account balance.
type AccountAmount struct {
	AccountID *AccountID `protobuf:"bytes,1,opt,name=accountID,proto3" json:"accountID,omitempty"`
	Amount    int64      `protobuf:"zigzag64,2,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *AccountAmount) Reset()         { *m = AccountAmount{} }
func (m *AccountAmount) String() string { return proto.CompactTextString(m) }
func (*AccountAmount) ProtoMessage()    {}

// GetAccountID returns the account or nil
func (m *AccountAmount) GetAccountID() *AccountID {
	if m != nil {
		return m.AccountID
	}
	return nil
}

// TransferList is a set of balance changes summing to zero.
type TransferList struct {
	AccountAmounts []*AccountAmount `protobuf:"bytes,1,rep,name=accountAmounts,proto3" json:"accountAmounts,omitempty"`
}

func (m *TransferList) Reset()         { *m = TransferList{} }
func (m *TransferList) String() string { return proto.CompactTextString(m) }
func (*TransferList) ProtoMessage()    {}

// GetAccountAmounts returns the transfers or nil
func (m *TransferList) GetAccountAmounts() []*AccountAmount {
	if m != nil {
		return m.AccountAmounts
	}
	return nil
}

// CryptoTransferTransactionBody moves currency between accounts.
type CryptoTransferTransactionBody struct {
	Transfers *TransferList `protobuf:"bytes,1,opt,name=transfers,proto3" json:"transfers,omitempty"`
}

func (m *CryptoTransferTransactionBody) Reset()         { *m = CryptoTransferTransactionBody{} }
func (m *CryptoTransferTransactionBody) String() string { return proto.CompactTextString(m) }
func (*CryptoTransferTransactionBody) ProtoMessage()    {}

// GetTransfers returns the transfer list or nil
func (m *CryptoTransferTransactionBody) GetTransfers() *TransferList {
	if m != nil {
		return m.Transfers
	}
	return nil
}

// CryptoUpdateTransactionBody changes the properties of an account.
type CryptoUpdateTransactionBody struct {
	AccountIDToUpdate      *AccountID `protobuf:"bytes,2,opt,name=accountIDToUpdate,proto3" json:"accountIDToUpdate,omitempty"`
	Key                    *Key       `protobuf:"bytes,3,opt,name=key,proto3" json:"key,omitempty"`
	ProxyAccountID         *AccountID `protobuf:"bytes,4,opt,name=proxyAccountID,proto3" json:"proxyAccountID,omitempty"`
	ProxyFraction          int32      `protobuf:"varint,5,opt,name=proxyFraction,proto3" json:"proxyFraction,omitempty"`
	SendRecordThreshold    uint64     `protobuf:"varint,6,opt,name=sendRecordThreshold,proto3" json:"sendRecordThreshold,omitempty"`
	ReceiveRecordThreshold uint64     `protobuf:"varint,7,opt,name=receiveRecordThreshold,proto3" json:"receiveRecordThreshold,omitempty"`
	AutoRenewPeriod        *Duration  `protobuf:"bytes,8,opt,name=autoRenewPeriod,proto3" json:"autoRenewPeriod,omitempty"`
	ExpirationTime         *Timestamp `protobuf:"bytes,9,opt,name=expirationTime,proto3" json:"expirationTime,omitempty"`
}

func (m *CryptoUpdateTransactionBody) Reset()         { *m = CryptoUpdateTransactionBody{} }
func (m *CryptoUpdateTransactionBody) String() string { return proto.CompactTextString(m) }
func (*CryptoUpdateTransactionBody) ProtoMessage()    {}

// CryptoDeleteTransactionBody deletes an account, moving its balance.
type CryptoDeleteTransactionBody struct {
	TransferAccountID *AccountID `protobuf:"bytes,1,opt,name=transferAccountID,proto3" json:"transferAccountID,omitempty"`
	DeleteAccountID   *AccountID `protobuf:"bytes,2,opt,name=deleteAccountID,proto3" json:"deleteAccountID,omitempty"`
}

func (m *CryptoDeleteTransactionBody) Reset()         { *m = CryptoDeleteTransactionBody{} }
func (m *CryptoDeleteTransactionBody) String() string { return proto.CompactTextString(m) }
func (*CryptoDeleteTransactionBody) ProtoMessage()    {}

// Claim is a hash attached to an account together with the keys that may
// remove it.
type Claim struct {
	AccountID *AccountID `protobuf:"bytes,1,opt,name=accountID,proto3" json:"accountID,omitempty"`
	Hash      []byte     `protobuf:"bytes,2,opt,name=hash,proto3" json:"hash,omitempty"`
	Keys      *KeyList   `protobuf:"bytes,3,opt,name=keys,proto3" json:"keys,omitempty"`
}

func (m *Claim) Reset()         { *m = Claim{} }
func (m *Claim) String() string { return proto.CompactTextString(m) }
func (*Claim) ProtoMessage()    {}

// CryptoAddClaimTransactionBody attaches a claim to an account.
type CryptoAddClaimTransactionBody struct {
	Claim *Claim `protobuf:"bytes,3,opt,name=claim,proto3" json:"claim,omitempty"`
}

func (m *CryptoAddClaimTransactionBody) Reset()         { *m = CryptoAddClaimTransactionBody{} }
func (m *CryptoAddClaimTransactionBody) String() string { return proto.CompactTextString(m) }
func (*CryptoAddClaimTransactionBody) ProtoMessage()    {}

// CryptoDeleteClaimTransactionBody removes a claim from an account.
type CryptoDeleteClaimTransactionBody struct {
	AccountIDToDeleteFrom *AccountID `protobuf:"bytes,1,opt,name=accountIDToDeleteFrom,proto3" json:"accountIDToDeleteFrom,omitempty"`
	HashToDelete          []byte     `protobuf:"bytes,2,opt,name=hashToDelete,proto3" json:"hashToDelete,omitempty"`
}

func (m *CryptoDeleteClaimTransactionBody) Reset()         { *m = CryptoDeleteClaimTransactionBody{} }
func (m *CryptoDeleteClaimTransactionBody) String() string { return proto.CompactTextString(m) }
func (*CryptoDeleteClaimTransactionBody) ProtoMessage()    {}
