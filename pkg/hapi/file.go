/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package hapi

import (
	"github.com/golang/protobuf/proto"
)

// FileCreateTransactionBody creates a file.
type FileCreateTransactionBody struct {
	ExpirationTime   *Timestamp `protobuf:"bytes,2,opt,name=expirationTime,proto3" json:"expirationTime,omitempty"`
	Keys             *KeyList   `protobuf:"bytes,3,opt,name=keys,proto3" json:"keys,omitempty"`
	Contents         []byte     `protobuf:"bytes,4,opt,name=contents,proto3" json:"contents,omitempty"`
	ShardID          *ShardID   `protobuf:"bytes,5,opt,name=shardID,proto3" json:"shardID,omitempty"`
	RealmID          *RealmID   `protobuf:"bytes,6,opt,name=realmID,proto3" json:"realmID,omitempty"`
	NewRealmAdminKey *Key       `protobuf:"bytes,7,opt,name=newRealmAdminKey,proto3" json:"newRealmAdminKey,omitempty"`
}

func (m *FileCreateTransactionBody) Reset()         { *m = FileCreateTransactionBody{} }
func (m *FileCreateTransactionBody) String() string { return proto.CompactTextString(m) }
func (*FileCreateTransactionBody) ProtoMessage()    {}

// FileAppendTransactionBody appends bytes to a file.
type FileAppendTransactionBody struct {
	FileID   *FileID `protobuf:"bytes,2,opt,name=fileID,proto3" json:"fileID,omitempty"`
	Contents []byte  `protobuf:"bytes,4,opt,name=contents,proto3" json:"contents,omitempty"`
}

func (m *FileAppendTransactionBody) Reset()         { *m = FileAppendTransactionBody{} }
func (m *FileAppendTransactionBody) String() string { return proto.CompactTextString(m) }
func (*FileAppendTransactionBody) ProtoMessage()    {}

// FileUpdateTransactionBody replaces properties or contents of a file.
type FileUpdateTransactionBody struct {
	FileID         *FileID    `protobuf:"bytes,1,opt,name=fileID,proto3" json:"fileID,omitempty"`
	ExpirationTime *Timestamp `protobuf:"bytes,2,opt,name=expirationTime,proto3" json:"expirationTime,omitempty"`
	Keys           *KeyList   `protobuf:"bytes,3,opt,name=keys,proto3" json:"keys,omitempty"`
	Contents       []byte     `protobuf:"bytes,4,opt,name=contents,proto3" json:"contents,omitempty"`
}

func (m *FileUpdateTransactionBody) Reset()         { *m = FileUpdateTransactionBody{} }
func (m *FileUpdateTransactionBody) String() string { return proto.CompactTextString(m) }
func (*FileUpdateTransactionBody) ProtoMessage()    {}

// FileDeleteTransactionBody deletes a file.
type FileDeleteTransactionBody struct {
	FileID *FileID `protobuf:"bytes,2,opt,name=fileID,proto3" json:"fileID,omitempty"`
}

func (m *FileDeleteTransactionBody) Reset()         { *m = FileDeleteTransactionBody{} }
func (m *FileDeleteTransactionBody) String() string { return proto.CompactTextString(m) }
func (*FileDeleteTransactionBody) ProtoMessage()    {}

// AdminDeleteTransactionBody marks a file or contract deleted until
// ExpirationTime. Exactly one of FileID and ContractID is set.
type AdminDeleteTransactionBody struct {
	FileID         *FileID           `protobuf:"bytes,1,opt,name=fileID,proto3" json:"fileID,omitempty"`
	ContractID     *ContractID       `protobuf:"bytes,2,opt,name=contractID,proto3" json:"contractID,omitempty"`
	ExpirationTime *TimestampSeconds `protobuf:"bytes,3,opt,name=expirationTime,proto3" json:"expirationTime,omitempty"`
}

func (m *AdminDeleteTransactionBody) Reset()         { *m = AdminDeleteTransactionBody{} }
func (m *AdminDeleteTransactionBody) String() string { return proto.CompactTextString(m) }
func (*AdminDeleteTransactionBody) ProtoMessage()    {}

// AdminUndeleteTransactionBody recovers an administratively deleted file or
// contract. Exactly one of FileID and ContractID is set.
type AdminUndeleteTransactionBody struct {
	FileID     *FileID     `protobuf:"bytes,1,opt,name=fileID,proto3" json:"fileID,omitempty"`
	ContractID *ContractID `protobuf:"bytes,2,opt,name=contractID,proto3" json:"contractID,omitempty"`
}

func (m *AdminUndeleteTransactionBody) Reset()         { *m = AdminUndeleteTransactionBody{} }
func (m *AdminUndeleteTransactionBody) String() string { return proto.CompactTextString(m) }
func (*AdminUndeleteTransactionBody) ProtoMessage()    {}
