/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package id contains the identifiers of ledger entities and transactions
// together with their text forms.
package id

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/hashgraph/hedera-sdk-go/pkg/common/errors/status"
	"github.com/hashgraph/hedera-sdk-go/pkg/hapi"
)

// entity is the shard, realm, num triple shared by all entity ids
type entity struct {
	Shard int64
	Realm int64
	Num   int64
}

func (e entity) String() string {
	return fmt.Sprintf("%d:%d:%d", e.Shard, e.Realm, e.Num)
}

func (e entity) compare(o entity) int {
	switch {
	case e.Shard != o.Shard:
		return cmpInt64(e.Shard, o.Shard)
	case e.Realm != o.Realm:
		return cmpInt64(e.Realm, o.Realm)
	default:
		return cmpInt64(e.Num, o.Num)
	}
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// parseEntity accepts "shard:realm:num" or "shard.realm.num"
func parseEntity(s string) (entity, error) {
	sep := ":"
	if !strings.Contains(s, sep) {
		sep = "."
	}
	parts := strings.Split(s, sep)
	if len(parts) != 3 {
		return entity{}, status.NewParseError(s, errors.New("expected {shard}:{realm}:{num}"))
	}

	var nums [3]int64
	for i, p := range parts {
		n, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return entity{}, status.NewParseError(s, err)
		}
		nums[i] = n
	}
	return entity{Shard: nums[0], Realm: nums[1], Num: nums[2]}, nil
}

// AccountID identifies an account
type AccountID entity

// ParseAccountID parses the text form of an account id
func ParseAccountID(s string) (AccountID, error) {
	e, err := parseEntity(s)
	return AccountID(e), err
}

func (a AccountID) String() string {
	return entity(a).String()
}

// Compare orders account ids by shard, realm then num. It returns -1, 0 or 1.
func (a AccountID) Compare(o AccountID) int {
	return entity(a).compare(entity(o))
}

// IsZero returns true for the unset id 0:0:0
func (a AccountID) IsZero() bool {
	return a == AccountID{}
}

// ToProto converts the id to its wire form
func (a AccountID) ToProto() *hapi.AccountID {
	return &hapi.AccountID{ShardNum: a.Shard, RealmNum: a.Realm, AccountNum: a.Num}
}

// AccountIDFromProto converts the wire form. A nil message yields 0:0:0.
func AccountIDFromProto(p *hapi.AccountID) AccountID {
	if p == nil {
		return AccountID{}
	}
	return AccountID{Shard: p.ShardNum, Realm: p.RealmNum, Num: p.AccountNum}
}

// FileID identifies a file
type FileID entity

// ParseFileID parses the text form of a file id
func ParseFileID(s string) (FileID, error) {
	e, err := parseEntity(s)
	return FileID(e), err
}

func (f FileID) String() string {
	return entity(f).String()
}

// Compare orders file ids by shard, realm then num.
func (f FileID) Compare(o FileID) int {
	return entity(f).compare(entity(o))
}

// ToProto converts the id to its wire form
func (f FileID) ToProto() *hapi.FileID {
	return &hapi.FileID{ShardNum: f.Shard, RealmNum: f.Realm, FileNum: f.Num}
}

// FileIDFromProto converts the wire form. A nil message yields 0:0:0.
func FileIDFromProto(p *hapi.FileID) FileID {
	if p == nil {
		return FileID{}
	}
	return FileID{Shard: p.ShardNum, Realm: p.RealmNum, Num: p.FileNum}
}

// ContractID identifies a smart contract instance
type ContractID entity

// ParseContractID parses the text form of a contract id
func ParseContractID(s string) (ContractID, error) {
	e, err := parseEntity(s)
	return ContractID(e), err
}

func (c ContractID) String() string {
	return entity(c).String()
}

// Compare orders contract ids by shard, realm then num.
func (c ContractID) Compare(o ContractID) int {
	return entity(c).compare(entity(o))
}

// ToProto converts the id to its wire form
func (c ContractID) ToProto() *hapi.ContractID {
	return &hapi.ContractID{ShardNum: c.Shard, RealmNum: c.Realm, ContractNum: c.Num}
}

// ContractIDFromProto converts the wire form. A nil message yields 0:0:0.
func ContractIDFromProto(p *hapi.ContractID) ContractID {
	if p == nil {
		return ContractID{}
	}
	return ContractID{Shard: p.ShardNum, Realm: p.RealmNum, Num: p.ContractNum}
}
