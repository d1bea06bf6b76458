/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package query

import (
	"github.com/hashgraph/hedera-sdk-go/pkg/common/errors/status"
	"github.com/hashgraph/hedera-sdk-go/pkg/common/providers/hedera"
	"github.com/hashgraph/hedera-sdk-go/pkg/hapi"
	"github.com/hashgraph/hedera-sdk-go/pkg/hedera/id"
)

// Kind identifies a query
type Kind int

// Query kinds
const (
	CryptoGetAccountBalanceKind Kind = iota
	CryptoGetInfoKind
	CryptoGetAccountRecordsKind
	CryptoGetClaimKind
	FileGetContentsKind
	FileGetInfoKind
	TransactionGetReceiptKind
	TransactionGetRecordKind
	ContractGetInfoKind
	ContractGetBytecodeKind
	ContractCallLocalKind
	ContractGetRecordsKind
	GetByKeyKind
)

var kindNames = []string{
	"CryptoGetAccountBalance",
	"CryptoGetInfo",
	"CryptoGetAccountRecords",
	"CryptoGetClaim",
	"FileGetContents",
	"FileGetInfo",
	"TransactionGetReceipt",
	"TransactionGetRecord",
	"ContractGetInfo",
	"ContractGetBytecode",
	"ContractCallLocal",
	"ContractGetRecords",
	"GetByKey",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Unknown"
	}
	return kindNames[k]
}

// costWithoutPayment lists the kinds whose cost is reported with an
// INVALID_TRANSACTION precheck when the query carries no valid payment.
// The balance and receipt queries are free.
var costWithoutPayment = map[Kind]bool{
	CryptoGetInfoKind:           true,
	CryptoGetAccountRecordsKind: true,
	CryptoGetClaimKind:          true,
	FileGetContentsKind:         true,
	FileGetInfoKind:             true,
	TransactionGetRecordKind:    true,
	ContractGetInfoKind:         true,
	ContractGetBytecodeKind:     true,
	ContractCallLocalKind:       true,
	ContractGetRecordsKind:      true,
	GetByKeyKind:                true,
}

// Body is the request of a query. The set of bodies is closed.
type Body interface {
	Kind() Kind
	// build returns the query without its header
	build() (*hapi.Query, error)
	// decode extracts the typed answer of a response of the same variant
	decode(r *hapi.Response) (interface{}, error)
}

// CryptoGetAccountBalance requests the balance of Account. Answers uint64.
type CryptoGetAccountBalance struct {
	Account id.AccountID
}

// Kind returns CryptoGetAccountBalanceKind
func (b *CryptoGetAccountBalance) Kind() Kind { return CryptoGetAccountBalanceKind }

func (b *CryptoGetAccountBalance) build() (*hapi.Query, error) {
	if b.Account.IsZero() {
		return nil, status.NewMissingField("account")
	}
	return &hapi.Query{CryptogetAccountBalance: &hapi.CryptoGetAccountBalanceQuery{AccountID: b.Account.ToProto()}}, nil
}

func (b *CryptoGetAccountBalance) decode(r *hapi.Response) (interface{}, error) {
	return r.CryptogetAccountBalance.Balance, nil
}

// CryptoGetInfo requests the properties of Account. Answers AccountInfo.
type CryptoGetInfo struct {
	Account id.AccountID
}

// Kind returns CryptoGetInfoKind
func (b *CryptoGetInfo) Kind() Kind { return CryptoGetInfoKind }

func (b *CryptoGetInfo) build() (*hapi.Query, error) {
	if b.Account.IsZero() {
		return nil, status.NewMissingField("account")
	}
	return &hapi.Query{CryptoGetInfo: &hapi.CryptoGetInfoQuery{AccountID: b.Account.ToProto()}}, nil
}

func (b *CryptoGetInfo) decode(r *hapi.Response) (interface{}, error) {
	if r.CryptoGetInfo.AccountInfo == nil {
		return nil, unexpected("account info missing from response")
	}
	return accountInfoFromProto(r.CryptoGetInfo.AccountInfo)
}

// CryptoGetAccountRecords requests the recent records of Account.
// Answers []TransactionRecord.
type CryptoGetAccountRecords struct {
	Account id.AccountID
}

// Kind returns CryptoGetAccountRecordsKind
func (b *CryptoGetAccountRecords) Kind() Kind { return CryptoGetAccountRecordsKind }

func (b *CryptoGetAccountRecords) build() (*hapi.Query, error) {
	if b.Account.IsZero() {
		return nil, status.NewMissingField("account")
	}
	return &hapi.Query{CryptoGetAccountRecords: &hapi.CryptoGetAccountRecordsQuery{AccountID: b.Account.ToProto()}}, nil
}

func (b *CryptoGetAccountRecords) decode(r *hapi.Response) (interface{}, error) {
	return recordsFromProto(r.CryptoGetAccountRecords.Records)
}

// CryptoGetClaim requests the claim with Hash attached to Account. Answers Claim.
type CryptoGetClaim struct {
	Account id.AccountID
	Hash    []byte
}

// Kind returns CryptoGetClaimKind
func (b *CryptoGetClaim) Kind() Kind { return CryptoGetClaimKind }

func (b *CryptoGetClaim) build() (*hapi.Query, error) {
	if b.Account.IsZero() {
		return nil, status.NewMissingField("account")
	}
	if len(b.Hash) == 0 {
		return nil, status.NewMissingField("hash")
	}
	return &hapi.Query{CryptoGetClaim: &hapi.CryptoGetClaimQuery{AccountID: b.Account.ToProto(), Hash: b.Hash}}, nil
}

func (b *CryptoGetClaim) decode(r *hapi.Response) (interface{}, error) {
	if r.CryptoGetClaim.Claim == nil {
		return nil, unexpected("claim missing from response")
	}
	return claimFromProto(r.CryptoGetClaim.Claim)
}

// FileGetContents requests the contents of File. Answers []byte.
type FileGetContents struct {
	File id.FileID
}

// Kind returns FileGetContentsKind
func (b *FileGetContents) Kind() Kind { return FileGetContentsKind }

func (b *FileGetContents) build() (*hapi.Query, error) {
	if b.File == (id.FileID{}) {
		return nil, status.NewMissingField("file")
	}
	return &hapi.Query{FileGetContents: &hapi.FileGetContentsQuery{FileID: b.File.ToProto()}}, nil
}

func (b *FileGetContents) decode(r *hapi.Response) (interface{}, error) {
	if r.FileGetContents.FileContents == nil {
		return []byte{}, nil
	}
	return r.FileGetContents.FileContents.Contents, nil
}

// FileGetInfo requests the properties of File. Answers FileInfo.
type FileGetInfo struct {
	File id.FileID
}

// Kind returns FileGetInfoKind
func (b *FileGetInfo) Kind() Kind { return FileGetInfoKind }

func (b *FileGetInfo) build() (*hapi.Query, error) {
	if b.File == (id.FileID{}) {
		return nil, status.NewMissingField("file")
	}
	return &hapi.Query{FileGetInfo: &hapi.FileGetInfoQuery{FileID: b.File.ToProto()}}, nil
}

func (b *FileGetInfo) decode(r *hapi.Response) (interface{}, error) {
	if r.FileGetInfo.FileInfo == nil {
		return nil, unexpected("file info missing from response")
	}
	return fileInfoFromProto(r.FileGetInfo.FileInfo)
}

// TransactionGetReceipt requests the receipt of a transaction. Answers
// TransactionReceipt.
type TransactionGetReceipt struct {
	TransactionID id.TransactionID
}

// Kind returns TransactionGetReceiptKind
func (b *TransactionGetReceipt) Kind() Kind { return TransactionGetReceiptKind }

func (b *TransactionGetReceipt) build() (*hapi.Query, error) {
	if b.TransactionID.IsZero() {
		return nil, status.NewMissingField("transaction id")
	}
	return &hapi.Query{TransactionGetReceipt: &hapi.TransactionGetReceiptQuery{TransactionID: b.TransactionID.ToProto()}}, nil
}

func (b *TransactionGetReceipt) decode(r *hapi.Response) (interface{}, error) {
	if r.TransactionGetReceipt.Receipt == nil {
		return nil, unexpected("receipt missing from response")
	}
	return receiptFromProto(r.TransactionGetReceipt.Receipt), nil
}

// TransactionGetRecord requests the record of a transaction. Answers
// TransactionRecord.
type TransactionGetRecord struct {
	TransactionID id.TransactionID
}

// Kind returns TransactionGetRecordKind
func (b *TransactionGetRecord) Kind() Kind { return TransactionGetRecordKind }

func (b *TransactionGetRecord) build() (*hapi.Query, error) {
	if b.TransactionID.IsZero() {
		return nil, status.NewMissingField("transaction id")
	}
	return &hapi.Query{TransactionGetRecord: &hapi.TransactionGetRecordQuery{TransactionID: b.TransactionID.ToProto()}}, nil
}

func (b *TransactionGetRecord) decode(r *hapi.Response) (interface{}, error) {
	return recordFromProto(r.TransactionGetRecord.TransactionRecord)
}

// ContractGetInfo requests the properties of Contract. Answers ContractInfo.
type ContractGetInfo struct {
	Contract id.ContractID
}

// Kind returns ContractGetInfoKind
func (b *ContractGetInfo) Kind() Kind { return ContractGetInfoKind }

func (b *ContractGetInfo) build() (*hapi.Query, error) {
	if b.Contract == (id.ContractID{}) {
		return nil, status.NewMissingField("contract")
	}
	return &hapi.Query{ContractGetInfo: &hapi.ContractGetInfoQuery{ContractID: b.Contract.ToProto()}}, nil
}

func (b *ContractGetInfo) decode(r *hapi.Response) (interface{}, error) {
	if r.ContractGetInfo.ContractInfo == nil {
		return nil, unexpected("contract info missing from response")
	}
	return contractInfoFromProto(r.ContractGetInfo.ContractInfo)
}

// ContractGetBytecode requests the runtime bytecode of Contract. Answers []byte.
type ContractGetBytecode struct {
	Contract id.ContractID
}

// Kind returns ContractGetBytecodeKind
func (b *ContractGetBytecode) Kind() Kind { return ContractGetBytecodeKind }

func (b *ContractGetBytecode) build() (*hapi.Query, error) {
	if b.Contract == (id.ContractID{}) {
		return nil, status.NewMissingField("contract")
	}
	return &hapi.Query{ContractGetBytecode: &hapi.ContractGetBytecodeQuery{ContractID: b.Contract.ToProto()}}, nil
}

func (b *ContractGetBytecode) decode(r *hapi.Response) (interface{}, error) {
	bytecode := r.ContractGetBytecode.Bytecode
	if bytecode == nil {
		bytecode = []byte{}
	}
	return bytecode, nil
}

// ContractCallLocal runs a function of Contract on the node without
// consensus. Answers ContractFunctionResult.
type ContractCallLocal struct {
	Contract      id.ContractID
	Gas           int64
	Parameters    []byte
	MaxResultSize int64
}

// Kind returns ContractCallLocalKind
func (b *ContractCallLocal) Kind() Kind { return ContractCallLocalKind }

func (b *ContractCallLocal) build() (*hapi.Query, error) {
	if b.Contract == (id.ContractID{}) {
		return nil, status.NewMissingField("contract")
	}
	return &hapi.Query{ContractCallLocal: &hapi.ContractCallLocalQuery{
		ContractID:         b.Contract.ToProto(),
		Gas:                b.Gas,
		FunctionParameters: b.Parameters,
		MaxResultSize:      b.MaxResultSize,
	}}, nil
}

func (b *ContractCallLocal) decode(r *hapi.Response) (interface{}, error) {
	result := functionResultFromProto(r.ContractCallLocal.FunctionResult)
	if result == nil {
		return nil, unexpected("function result missing from response")
	}
	return *result, nil
}

// ContractGetRecords requests the recent records of Contract. Answers
// []TransactionRecord.
type ContractGetRecords struct {
	Contract id.ContractID
}

// Kind returns ContractGetRecordsKind
func (b *ContractGetRecords) Kind() Kind { return ContractGetRecordsKind }

func (b *ContractGetRecords) build() (*hapi.Query, error) {
	if b.Contract == (id.ContractID{}) {
		return nil, status.NewMissingField("contract")
	}
	return &hapi.Query{ContractGetRecords: &hapi.ContractGetRecordsQuery{ContractID: b.Contract.ToProto()}}, nil
}

func (b *ContractGetRecords) decode(r *hapi.Response) (interface{}, error) {
	return recordsFromProto(r.ContractGetRecords.Records)
}

// GetByKey requests the entities associated with Key. Answers []Entity.
type GetByKey struct {
	Key hedera.PublicKey
}

// Kind returns GetByKeyKind
func (b *GetByKey) Kind() Kind { return GetByKeyKind }

func (b *GetByKey) build() (*hapi.Query, error) {
	if b.Key == nil {
		return nil, status.NewMissingField("key")
	}
	return &hapi.Query{GetByKey: &hapi.GetByKeyQuery{Key: &hapi.Key{Ed25519: b.Key.Bytes()}}}, nil
}

func (b *GetByKey) decode(r *hapi.Response) (interface{}, error) {
	entities := make([]Entity, 0, len(r.GetByKey.Entities))
	for _, p := range r.GetByKey.Entities {
		e, err := entityFromProto(p)
		if err != nil {
			return nil, err
		}
		entities = append(entities, e)
	}
	return entities, nil
}
