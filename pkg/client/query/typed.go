/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package query

import (
	reqContext "context"

	"github.com/hashgraph/hedera-sdk-go/pkg/common/providers/context"
	"github.com/hashgraph/hedera-sdk-go/pkg/common/providers/hedera"
	"github.com/hashgraph/hedera-sdk-go/pkg/hedera/id"
)

// AccountBalanceQuery answers the balance of an account in tinybars
type AccountBalanceQuery struct{ *Query }

// NewAccountBalance returns a balance query for account
func NewAccountBalance(ctx context.Client, account id.AccountID) (*AccountBalanceQuery, error) {
	q, err := New(ctx, &CryptoGetAccountBalance{Account: account})
	if err != nil {
		return nil, err
	}
	return &AccountBalanceQuery{q}, nil
}

// Get returns the balance
func (q *AccountBalanceQuery) Get(reqCtx reqContext.Context) (uint64, error) {
	v, err := q.Answer(reqCtx)
	if err != nil {
		return 0, err
	}
	return v.(uint64), nil
}

// AccountInfoQuery answers the properties of an account
type AccountInfoQuery struct{ *Query }

// NewAccountInfo returns an info query for account
func NewAccountInfo(ctx context.Client, account id.AccountID) (*AccountInfoQuery, error) {
	q, err := New(ctx, &CryptoGetInfo{Account: account})
	if err != nil {
		return nil, err
	}
	return &AccountInfoQuery{q}, nil
}

// Get returns the account info
func (q *AccountInfoQuery) Get(reqCtx reqContext.Context) (AccountInfo, error) {
	v, err := q.Answer(reqCtx)
	if err != nil {
		return AccountInfo{}, err
	}
	return v.(AccountInfo), nil
}

// AccountRecordsQuery answers the recent records of an account
type AccountRecordsQuery struct{ *Query }

// NewAccountRecords returns a records query for account
func NewAccountRecords(ctx context.Client, account id.AccountID) (*AccountRecordsQuery, error) {
	q, err := New(ctx, &CryptoGetAccountRecords{Account: account})
	if err != nil {
		return nil, err
	}
	return &AccountRecordsQuery{q}, nil
}

// Get returns the records
func (q *AccountRecordsQuery) Get(reqCtx reqContext.Context) ([]TransactionRecord, error) {
	v, err := q.Answer(reqCtx)
	if err != nil {
		return nil, err
	}
	return v.([]TransactionRecord), nil
}

// ClaimQuery answers a claim attached to an account
type ClaimQuery struct{ *Query }

// NewClaim returns a query for the claim of account with hash
func NewClaim(ctx context.Client, account id.AccountID, hash []byte) (*ClaimQuery, error) {
	q, err := New(ctx, &CryptoGetClaim{Account: account, Hash: hash})
	if err != nil {
		return nil, err
	}
	return &ClaimQuery{q}, nil
}

// Get returns the claim
func (q *ClaimQuery) Get(reqCtx reqContext.Context) (Claim, error) {
	v, err := q.Answer(reqCtx)
	if err != nil {
		return Claim{}, err
	}
	return v.(Claim), nil
}

// FileContentsQuery answers the contents of a file
type FileContentsQuery struct{ *Query }

// NewFileContents returns a contents query for file
func NewFileContents(ctx context.Client, file id.FileID) (*FileContentsQuery, error) {
	q, err := New(ctx, &FileGetContents{File: file})
	if err != nil {
		return nil, err
	}
	return &FileContentsQuery{q}, nil
}

// Get returns the contents
func (q *FileContentsQuery) Get(reqCtx reqContext.Context) ([]byte, error) {
	v, err := q.Answer(reqCtx)
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

// FileInfoQuery answers the properties of a file
type FileInfoQuery struct{ *Query }

// NewFileInfo returns an info query for file
func NewFileInfo(ctx context.Client, file id.FileID) (*FileInfoQuery, error) {
	q, err := New(ctx, &FileGetInfo{File: file})
	if err != nil {
		return nil, err
	}
	return &FileInfoQuery{q}, nil
}

// Get returns the file info
func (q *FileInfoQuery) Get(reqCtx reqContext.Context) (FileInfo, error) {
	v, err := q.Answer(reqCtx)
	if err != nil {
		return FileInfo{}, err
	}
	return v.(FileInfo), nil
}

// ReceiptQuery answers the receipt of a transaction
type ReceiptQuery struct{ *Query }

// NewReceipt returns a receipt query for txID
func NewReceipt(ctx context.Client, txID id.TransactionID) (*ReceiptQuery, error) {
	q, err := New(ctx, &TransactionGetReceipt{TransactionID: txID})
	if err != nil {
		return nil, err
	}
	return &ReceiptQuery{q}, nil
}

// Get returns the receipt
func (q *ReceiptQuery) Get(reqCtx reqContext.Context) (TransactionReceipt, error) {
	v, err := q.Answer(reqCtx)
	if err != nil {
		return TransactionReceipt{}, err
	}
	return v.(TransactionReceipt), nil
}

// RecordQuery answers the record of a transaction
type RecordQuery struct{ *Query }

// NewRecord returns a record query for txID
func NewRecord(ctx context.Client, txID id.TransactionID) (*RecordQuery, error) {
	q, err := New(ctx, &TransactionGetRecord{TransactionID: txID})
	if err != nil {
		return nil, err
	}
	return &RecordQuery{q}, nil
}

// Get returns the record
func (q *RecordQuery) Get(reqCtx reqContext.Context) (TransactionRecord, error) {
	v, err := q.Answer(reqCtx)
	if err != nil {
		return TransactionRecord{}, err
	}
	return v.(TransactionRecord), nil
}

// ContractInfoQuery answers the properties of a contract
type ContractInfoQuery struct{ *Query }

// NewContractInfo returns an info query for contract
func NewContractInfo(ctx context.Client, contract id.ContractID) (*ContractInfoQuery, error) {
	q, err := New(ctx, &ContractGetInfo{Contract: contract})
	if err != nil {
		return nil, err
	}
	return &ContractInfoQuery{q}, nil
}

// Get returns the contract info
func (q *ContractInfoQuery) Get(reqCtx reqContext.Context) (ContractInfo, error) {
	v, err := q.Answer(reqCtx)
	if err != nil {
		return ContractInfo{}, err
	}
	return v.(ContractInfo), nil
}

// ContractBytecodeQuery answers the runtime bytecode of a contract
type ContractBytecodeQuery struct{ *Query }

// NewContractBytecode returns a bytecode query for contract
func NewContractBytecode(ctx context.Client, contract id.ContractID) (*ContractBytecodeQuery, error) {
	q, err := New(ctx, &ContractGetBytecode{Contract: contract})
	if err != nil {
		return nil, err
	}
	return &ContractBytecodeQuery{q}, nil
}

// Get returns the bytecode
func (q *ContractBytecodeQuery) Get(reqCtx reqContext.Context) ([]byte, error) {
	v, err := q.Answer(reqCtx)
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

// ContractCallQuery answers a local contract call
type ContractCallQuery struct{ *Query }

// NewContractCall returns a local call of contract with the encoded
// function call in params
func NewContractCall(ctx context.Client, contract id.ContractID, gas int64, params []byte) (*ContractCallQuery, error) {
	q, err := New(ctx, &ContractCallLocal{Contract: contract, Gas: gas, Parameters: params})
	if err != nil {
		return nil, err
	}
	return &ContractCallQuery{q}, nil
}

// Get returns the function result
func (q *ContractCallQuery) Get(reqCtx reqContext.Context) (ContractFunctionResult, error) {
	v, err := q.Answer(reqCtx)
	if err != nil {
		return ContractFunctionResult{}, err
	}
	return v.(ContractFunctionResult), nil
}

// ContractRecordsQuery answers the recent records of a contract
type ContractRecordsQuery struct{ *Query }

// NewContractRecords returns a records query for contract
func NewContractRecords(ctx context.Client, contract id.ContractID) (*ContractRecordsQuery, error) {
	q, err := New(ctx, &ContractGetRecords{Contract: contract})
	if err != nil {
		return nil, err
	}
	return &ContractRecordsQuery{q}, nil
}

// Get returns the records
func (q *ContractRecordsQuery) Get(reqCtx reqContext.Context) ([]TransactionRecord, error) {
	v, err := q.Answer(reqCtx)
	if err != nil {
		return nil, err
	}
	return v.([]TransactionRecord), nil
}

// EntitiesQuery answers the entities associated with a key
type EntitiesQuery struct{ *Query }

// NewEntities returns a query for the entities of key
func NewEntities(ctx context.Client, key hedera.PublicKey) (*EntitiesQuery, error) {
	q, err := New(ctx, &GetByKey{Key: key})
	if err != nil {
		return nil, err
	}
	return &EntitiesQuery{q}, nil
}

// Get returns the entities
func (q *EntitiesQuery) Get(reqCtx reqContext.Context) ([]Entity, error) {
	v, err := q.Answer(reqCtx)
	if err != nil {
		return nil, err
	}
	return v.([]Entity), nil
}
