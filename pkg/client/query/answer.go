/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package query

import (
	"time"

	"github.com/hashgraph/hedera-sdk-go/pkg/client/transaction"
	"github.com/hashgraph/hedera-sdk-go/pkg/common/errors/status"
	"github.com/hashgraph/hedera-sdk-go/pkg/common/providers/hedera"
	"github.com/hashgraph/hedera-sdk-go/pkg/core/crypto"
	"github.com/hashgraph/hedera-sdk-go/pkg/hapi"
	"github.com/hashgraph/hedera-sdk-go/pkg/hedera/id"
)

// TransactionReceipt is the consensus outcome of a transaction. Status is
// the consensus status, unrelated to the precheck code of the submission.
type TransactionReceipt struct {
	Status     hapi.ResponseCodeEnum
	AccountID  *id.AccountID
	FileID     *id.FileID
	ContractID *id.ContractID
}

// ContractLogInfo is a log entry emitted by a contract
type ContractLogInfo struct {
	Contract id.ContractID
	Bloom    []byte
	Topics   [][]byte
	Data     []byte
}

// ContractFunctionResult is the outcome of a contract call or creation
type ContractFunctionResult struct {
	Contract     id.ContractID
	Result       []byte
	ErrorMessage string
	Bloom        []byte
	GasUsed      uint64
	LogInfo      []ContractLogInfo
}

// TransactionRecord is the detailed consensus outcome of a transaction. At
// most one of ContractCallResult and ContractCreateResult is set.
type TransactionRecord struct {
	Receipt              TransactionReceipt
	TransactionHash      []byte
	ConsensusTimestamp   *id.Timestamp
	TransactionID        id.TransactionID
	Memo                 string
	TransactionFee       uint64
	ContractCallResult   *ContractFunctionResult
	ContractCreateResult *ContractFunctionResult
	Transfers            []transaction.Transfer
}

// Claim is a hash attached to an account
type Claim struct {
	Account id.AccountID
	Hash    []byte
	Keys    []hedera.PublicKey
}

// AccountInfo describes an account
type AccountInfo struct {
	Account                        id.AccountID
	ContractAccountID              string
	Deleted                        bool
	Proxy                          *id.AccountID
	ProxyFraction                  int32
	ProxyReceived                  int64
	Key                            hedera.PublicKey
	Balance                        uint64
	GenerateSendRecordThreshold    uint64
	GenerateReceiveRecordThreshold uint64
	ReceiverSigRequired            bool
	ExpirationTime                 id.Timestamp
	AutoRenewPeriod                time.Duration
	Claims                         []Claim
}

// FileInfo describes a file
type FileInfo struct {
	File           id.FileID
	Size           int64
	ExpirationTime id.Timestamp
	Deleted        bool
	Keys           []hedera.PublicKey
}

// ContractInfo describes a contract
type ContractInfo struct {
	Contract          id.ContractID
	Account           id.AccountID
	ContractAccountID string
	AdminKey          hedera.PublicKey
	ExpirationTime    id.Timestamp
	AutoRenewPeriod   time.Duration
	Storage           int64
	Memo              string
	Balance           uint64
}

// Entity is one of an account, a claim, a file or a contract
type Entity struct {
	Account  *id.AccountID
	Claim    *Claim
	File     *id.FileID
	Contract *id.ContractID
}

func unexpected(msg string) error {
	return status.New(status.ClientStatus, status.UnexpectedResponse.ToInt32(), msg, nil)
}

func keyFromProto(k *hapi.Key) (hedera.PublicKey, error) {
	if k == nil {
		return nil, nil
	}
	if len(k.Ed25519) == 0 {
		return nil, unexpected("only ed25519 keys are supported")
	}
	key, err := crypto.PublicKeyFromBytes(k.Ed25519)
	if err != nil {
		return nil, unexpected(err.Error())
	}
	return key, nil
}

func keysFromProto(list *hapi.KeyList) ([]hedera.PublicKey, error) {
	var keys []hedera.PublicKey
	for _, k := range list.GetKeys() {
		key, err := keyFromProto(k)
		if err != nil {
			return nil, err
		}
		if key != nil {
			keys = append(keys, key)
		}
	}
	return keys, nil
}

func receiptFromProto(p *hapi.TransactionReceipt) TransactionReceipt {
	r := TransactionReceipt{Status: p.Status}
	if p.AccountID != nil {
		a := id.AccountIDFromProto(p.AccountID)
		r.AccountID = &a
	}
	if p.FileID != nil {
		f := id.FileIDFromProto(p.FileID)
		r.FileID = &f
	}
	if p.ContractID != nil {
		c := id.ContractIDFromProto(p.ContractID)
		r.ContractID = &c
	}
	return r
}

func functionResultFromProto(p *hapi.ContractFunctionResult) *ContractFunctionResult {
	if p == nil {
		return nil
	}
	r := &ContractFunctionResult{
		Contract:     id.ContractIDFromProto(p.ContractID),
		Result:       p.ContractCallResult,
		ErrorMessage: p.ErrorMessage,
		Bloom:        p.Bloom,
		GasUsed:      p.GasUsed,
	}
	for _, l := range p.LogInfo {
		r.LogInfo = append(r.LogInfo, ContractLogInfo{
			Contract: id.ContractIDFromProto(l.ContractID),
			Bloom:    l.Bloom,
			Topics:   l.Topic,
			Data:     l.Data,
		})
	}
	return r
}

func recordFromProto(p *hapi.TransactionRecord) (TransactionRecord, error) {
	if p == nil || p.Receipt == nil {
		return TransactionRecord{}, unexpected("transaction record without receipt")
	}
	r := TransactionRecord{
		Receipt:              receiptFromProto(p.Receipt),
		TransactionHash:      p.TransactionHash,
		TransactionID:        id.TransactionIDFromProto(p.TransactionID),
		Memo:                 p.Memo,
		TransactionFee:       p.TransactionFee,
		ContractCallResult:   functionResultFromProto(p.ContractCallResult),
		ContractCreateResult: functionResultFromProto(p.ContractCreateResult),
	}
	if p.ConsensusTimestamp != nil {
		ts := id.TimestampFromProto(p.ConsensusTimestamp)
		r.ConsensusTimestamp = &ts
	}
	for _, aa := range p.TransferList.GetAccountAmounts() {
		r.Transfers = append(r.Transfers, transaction.Transfer{Account: id.AccountIDFromProto(aa.AccountID), Amount: aa.Amount})
	}
	return r, nil
}

func recordsFromProto(list []*hapi.TransactionRecord) ([]TransactionRecord, error) {
	records := make([]TransactionRecord, 0, len(list))
	for _, p := range list {
		r, err := recordFromProto(p)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, nil
}

func claimFromProto(p *hapi.Claim) (Claim, error) {
	keys, err := keysFromProto(p.Keys)
	if err != nil {
		return Claim{}, err
	}
	return Claim{Account: id.AccountIDFromProto(p.AccountID), Hash: p.Hash, Keys: keys}, nil
}

func accountInfoFromProto(p *hapi.AccountInfo) (AccountInfo, error) {
	key, err := keyFromProto(p.Key)
	if err != nil {
		return AccountInfo{}, err
	}
	info := AccountInfo{
		Account:                        id.AccountIDFromProto(p.AccountID),
		ContractAccountID:              p.ContractAccountID,
		Deleted:                        p.Deleted,
		ProxyFraction:                  p.ProxyFraction,
		ProxyReceived:                  p.ProxyReceived,
		Key:                            key,
		Balance:                        p.Balance,
		GenerateSendRecordThreshold:    p.GenerateSendRecordThreshold,
		GenerateReceiveRecordThreshold: p.GenerateReceiveRecordThreshold,
		ReceiverSigRequired:            p.ReceiverSigRequired,
		ExpirationTime:                 id.TimestampFromProto(p.ExpirationTime),
		AutoRenewPeriod:                id.DurationFromProto(p.AutoRenewPeriod),
	}
	if p.ProxyAccountID != nil {
		proxy := id.AccountIDFromProto(p.ProxyAccountID)
		info.Proxy = &proxy
	}
	for _, c := range p.Claims {
		claim, err := claimFromProto(c)
		if err != nil {
			return AccountInfo{}, err
		}
		info.Claims = append(info.Claims, claim)
	}
	return info, nil
}

func fileInfoFromProto(p *hapi.FileInfo) (FileInfo, error) {
	keys, err := keysFromProto(p.Keys)
	if err != nil {
		return FileInfo{}, err
	}
	return FileInfo{
		File:           id.FileIDFromProto(p.FileID),
		Size:           p.Size,
		ExpirationTime: id.TimestampFromProto(p.ExpirationTime),
		Deleted:        p.Deleted,
		Keys:           keys,
	}, nil
}

func contractInfoFromProto(p *hapi.ContractInfo) (ContractInfo, error) {
	key, err := keyFromProto(p.AdminKey)
	if err != nil {
		return ContractInfo{}, err
	}
	return ContractInfo{
		Contract:          id.ContractIDFromProto(p.ContractID),
		Account:           id.AccountIDFromProto(p.AccountID),
		ContractAccountID: p.ContractAccountID,
		AdminKey:          key,
		ExpirationTime:    id.TimestampFromProto(p.ExpirationTime),
		AutoRenewPeriod:   id.DurationFromProto(p.AutoRenewPeriod),
		Storage:           p.Storage,
		Memo:              p.Memo,
		Balance:           p.Balance,
	}, nil
}

func entityFromProto(p *hapi.EntityID) (Entity, error) {
	var e Entity
	switch {
	case p.AccountID != nil:
		a := id.AccountIDFromProto(p.AccountID)
		e.Account = &a
	case p.Claim != nil:
		c, err := claimFromProto(p.Claim)
		if err != nil {
			return Entity{}, err
		}
		e.Claim = &c
	case p.FileID != nil:
		f := id.FileIDFromProto(p.FileID)
		e.File = &f
	case p.ContractID != nil:
		c := id.ContractIDFromProto(p.ContractID)
		e.Contract = &c
	default:
		return Entity{}, unexpected("entity without id")
	}
	return e, nil
}
