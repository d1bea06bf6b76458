/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mocks

import (
	"context"
	"fmt"
	"net"
	"sync"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"

	"github.com/hashgraph/hedera-sdk-go/pkg/common/logging"
	"github.com/hashgraph/hedera-sdk-go/pkg/hapi"
)

var logger = logging.NewLogger("hedera/mocks")

// MockNodeServer is a mock node serving the crypto, file and smart contract
// services. Every request is recorded.
type MockNodeServer struct {
	Creds credentials.TransportCredentials

	// TransactionPrecheck is returned for every transaction
	TransactionPrecheck hapi.NodeTransactionPrecheckCode
	// TransactionError, if set, fails every transaction call
	TransactionError error
	// TransactionHandler, if set, replaces the default transaction handling
	TransactionHandler func(tx *hapi.Transaction) (*hapi.TransactionResponse, error)

	// QueryPrecheck is set in the header of every default query response
	QueryPrecheck hapi.NodeTransactionPrecheckCode
	// Cost is set in the header of every default query response
	Cost uint64
	// QueryHandler, if set, replaces the default query handling
	QueryHandler func(q *hapi.Query) (*hapi.Response, error)

	mutex        sync.RWMutex
	methods      []string
	transactions []*hapi.Transaction
	queries      []*hapi.Query

	wg  sync.WaitGroup
	srv *grpc.Server
}

// Transactions returns the transactions received so far
func (m *MockNodeServer) Transactions() []*hapi.Transaction {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return append([]*hapi.Transaction(nil), m.transactions...)
}

// Queries returns the queries received so far
func (m *MockNodeServer) Queries() []*hapi.Query {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return append([]*hapi.Query(nil), m.queries...)
}

// Methods returns the full gRPC method names invoked so far
func (m *MockNodeServer) Methods() []string {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return append([]string(nil), m.methods...)
}

func (m *MockNodeServer) record(ctx context.Context) {
	method, _ := grpc.Method(ctx)
	m.mutex.Lock()
	m.methods = append(m.methods, method)
	m.mutex.Unlock()
}

func (m *MockNodeServer) transaction(ctx context.Context, tx *hapi.Transaction) (*hapi.TransactionResponse, error) {
	m.record(ctx)
	m.mutex.Lock()
	m.transactions = append(m.transactions, tx)
	m.mutex.Unlock()

	if m.TransactionHandler != nil {
		return m.TransactionHandler(tx)
	}
	if m.TransactionError != nil {
		return nil, m.TransactionError
	}
	return &hapi.TransactionResponse{NodeTransactionPrecheckCode: m.TransactionPrecheck}, nil
}

func (m *MockNodeServer) query(ctx context.Context, q *hapi.Query) (*hapi.Response, error) {
	m.record(ctx)
	m.mutex.Lock()
	m.queries = append(m.queries, q)
	m.mutex.Unlock()

	if m.QueryHandler != nil {
		return m.QueryHandler(q)
	}

	header := &hapi.ResponseHeader{
		NodeTransactionPrecheckCode: m.QueryPrecheck,
		ResponseType:                requestedType(q),
		Cost:                        m.Cost,
	}
	return NewResponse(q.QueryCase(), header), nil
}

// NewResponse returns a response of the given variant carrying header. The
// receipt variant reports SUCCESS.
func NewResponse(c hapi.QueryCase, header *hapi.ResponseHeader) *hapi.Response {
	switch c {
	case hapi.Query_GET_BY_KEY:
		return &hapi.Response{GetByKey: &hapi.GetByKeyResponse{Header: header}}
	case hapi.Query_CONTRACT_CALL_LOCAL:
		return &hapi.Response{ContractCallLocal: &hapi.ContractCallLocalResponse{Header: header}}
	case hapi.Query_CONTRACT_GET_INFO:
		return &hapi.Response{ContractGetInfo: &hapi.ContractGetInfoResponse{Header: header}}
	case hapi.Query_CONTRACT_GET_BYTECODE:
		return &hapi.Response{ContractGetBytecode: &hapi.ContractGetBytecodeResponse{Header: header}}
	case hapi.Query_CONTRACT_GET_RECORDS:
		return &hapi.Response{ContractGetRecords: &hapi.ContractGetRecordsResponse{Header: header}}
	case hapi.Query_CRYPTO_GET_ACCOUNT_BALANCE:
		return &hapi.Response{CryptogetAccountBalance: &hapi.CryptoGetAccountBalanceResponse{Header: header}}
	case hapi.Query_CRYPTO_GET_ACCOUNT_RECORDS:
		return &hapi.Response{CryptoGetAccountRecords: &hapi.CryptoGetAccountRecordsResponse{Header: header}}
	case hapi.Query_CRYPTO_GET_INFO:
		return &hapi.Response{CryptoGetInfo: &hapi.CryptoGetInfoResponse{Header: header}}
	case hapi.Query_CRYPTO_GET_CLAIM:
		return &hapi.Response{CryptoGetClaim: &hapi.CryptoGetClaimResponse{Header: header}}
	case hapi.Query_FILE_GET_CONTENTS:
		return &hapi.Response{FileGetContents: &hapi.FileGetContentsResponse{Header: header}}
	case hapi.Query_FILE_GET_INFO:
		return &hapi.Response{FileGetInfo: &hapi.FileGetInfoResponse{Header: header}}
	case hapi.Query_TRANSACTION_GET_RECEIPT:
		return &hapi.Response{TransactionGetReceipt: &hapi.TransactionGetReceiptResponse{Header: header,
			Receipt: &hapi.TransactionReceipt{Status: hapi.ResponseCodeEnum_SUCCESS}}}
	case hapi.Query_TRANSACTION_GET_RECORD:
		return &hapi.Response{TransactionGetRecord: &hapi.TransactionGetRecordResponse{Header: header}}
	}
	return &hapi.Response{}
}

func requestedType(q *hapi.Query) hapi.ResponseType {
	return headerOf(q).GetResponseType()
}

func headerOf(q *hapi.Query) *hapi.QueryHeader {
	switch q.QueryCase() {
	case hapi.Query_GET_BY_KEY:
		return q.GetByKey.Header
	case hapi.Query_CONTRACT_CALL_LOCAL:
		return q.ContractCallLocal.Header
	case hapi.Query_CONTRACT_GET_INFO:
		return q.ContractGetInfo.Header
	case hapi.Query_CONTRACT_GET_BYTECODE:
		return q.ContractGetBytecode.Header
	case hapi.Query_CONTRACT_GET_RECORDS:
		return q.ContractGetRecords.Header
	case hapi.Query_CRYPTO_GET_ACCOUNT_BALANCE:
		return q.CryptogetAccountBalance.Header
	case hapi.Query_CRYPTO_GET_ACCOUNT_RECORDS:
		return q.CryptoGetAccountRecords.Header
	case hapi.Query_CRYPTO_GET_INFO:
		return q.CryptoGetInfo.Header
	case hapi.Query_CRYPTO_GET_CLAIM:
		return q.CryptoGetClaim.Header
	case hapi.Query_FILE_GET_CONTENTS:
		return q.FileGetContents.Header
	case hapi.Query_FILE_GET_INFO:
		return q.FileGetInfo.Header
	case hapi.Query_TRANSACTION_GET_RECEIPT:
		return q.TransactionGetReceipt.Header
	case hapi.Query_TRANSACTION_GET_RECORD:
		return q.TransactionGetRecord.Header
	}
	return nil
}

// CreateAccount mock implementation
func (m *MockNodeServer) CreateAccount(ctx context.Context, tx *hapi.Transaction) (*hapi.TransactionResponse, error) {
	return m.transaction(ctx, tx)
}

// UpdateAccount mock implementation
func (m *MockNodeServer) UpdateAccount(ctx context.Context, tx *hapi.Transaction) (*hapi.TransactionResponse, error) {
	return m.transaction(ctx, tx)
}

// CryptoTransfer mock implementation
func (m *MockNodeServer) CryptoTransfer(ctx context.Context, tx *hapi.Transaction) (*hapi.TransactionResponse, error) {
	return m.transaction(ctx, tx)
}

// CryptoDelete mock implementation
func (m *MockNodeServer) CryptoDelete(ctx context.Context, tx *hapi.Transaction) (*hapi.TransactionResponse, error) {
	return m.transaction(ctx, tx)
}

// AddClaim mock implementation
func (m *MockNodeServer) AddClaim(ctx context.Context, tx *hapi.Transaction) (*hapi.TransactionResponse, error) {
	return m.transaction(ctx, tx)
}

// DeleteClaim mock implementation
func (m *MockNodeServer) DeleteClaim(ctx context.Context, tx *hapi.Transaction) (*hapi.TransactionResponse, error) {
	return m.transaction(ctx, tx)
}

// CreateFile mock implementation
func (m *MockNodeServer) CreateFile(ctx context.Context, tx *hapi.Transaction) (*hapi.TransactionResponse, error) {
	return m.transaction(ctx, tx)
}

// UpdateFile mock implementation
func (m *MockNodeServer) UpdateFile(ctx context.Context, tx *hapi.Transaction) (*hapi.TransactionResponse, error) {
	return m.transaction(ctx, tx)
}

// DeleteFile mock implementation
func (m *MockNodeServer) DeleteFile(ctx context.Context, tx *hapi.Transaction) (*hapi.TransactionResponse, error) {
	return m.transaction(ctx, tx)
}

// AppendContent mock implementation
func (m *MockNodeServer) AppendContent(ctx context.Context, tx *hapi.Transaction) (*hapi.TransactionResponse, error) {
	return m.transaction(ctx, tx)
}

// AdminDelete mock implementation, shared by the file and contract services
func (m *MockNodeServer) AdminDelete(ctx context.Context, tx *hapi.Transaction) (*hapi.TransactionResponse, error) {
	return m.transaction(ctx, tx)
}

// AdminUndelete mock implementation, shared by the file and contract services
func (m *MockNodeServer) AdminUndelete(ctx context.Context, tx *hapi.Transaction) (*hapi.TransactionResponse, error) {
	return m.transaction(ctx, tx)
}

// CreateContract mock implementation
func (m *MockNodeServer) CreateContract(ctx context.Context, tx *hapi.Transaction) (*hapi.TransactionResponse, error) {
	return m.transaction(ctx, tx)
}

// UpdateContract mock implementation
func (m *MockNodeServer) UpdateContract(ctx context.Context, tx *hapi.Transaction) (*hapi.TransactionResponse, error) {
	return m.transaction(ctx, tx)
}

// ContractCallMethod mock implementation
func (m *MockNodeServer) ContractCallMethod(ctx context.Context, tx *hapi.Transaction) (*hapi.TransactionResponse, error) {
	return m.transaction(ctx, tx)
}

// DeleteContract mock implementation
func (m *MockNodeServer) DeleteContract(ctx context.Context, tx *hapi.Transaction) (*hapi.TransactionResponse, error) {
	return m.transaction(ctx, tx)
}

// GetClaim mock implementation
func (m *MockNodeServer) GetClaim(ctx context.Context, q *hapi.Query) (*hapi.Response, error) {
	return m.query(ctx, q)
}

// GetAccountRecords mock implementation
func (m *MockNodeServer) GetAccountRecords(ctx context.Context, q *hapi.Query) (*hapi.Response, error) {
	return m.query(ctx, q)
}

// CryptoGetBalance mock implementation
func (m *MockNodeServer) CryptoGetBalance(ctx context.Context, q *hapi.Query) (*hapi.Response, error) {
	return m.query(ctx, q)
}

// GetAccountInfo mock implementation
func (m *MockNodeServer) GetAccountInfo(ctx context.Context, q *hapi.Query) (*hapi.Response, error) {
	return m.query(ctx, q)
}

// GetTransactionReceipts mock implementation
func (m *MockNodeServer) GetTransactionReceipts(ctx context.Context, q *hapi.Query) (*hapi.Response, error) {
	return m.query(ctx, q)
}

// GetTxRecordByTxID mock implementation
func (m *MockNodeServer) GetTxRecordByTxID(ctx context.Context, q *hapi.Query) (*hapi.Response, error) {
	return m.query(ctx, q)
}

// GetByKey mock implementation
func (m *MockNodeServer) GetByKey(ctx context.Context, q *hapi.Query) (*hapi.Response, error) {
	return m.query(ctx, q)
}

// GetFileContent mock implementation
func (m *MockNodeServer) GetFileContent(ctx context.Context, q *hapi.Query) (*hapi.Response, error) {
	return m.query(ctx, q)
}

// GetFileInfo mock implementation
func (m *MockNodeServer) GetFileInfo(ctx context.Context, q *hapi.Query) (*hapi.Response, error) {
	return m.query(ctx, q)
}

// GetContractInfo mock implementation
func (m *MockNodeServer) GetContractInfo(ctx context.Context, q *hapi.Query) (*hapi.Response, error) {
	return m.query(ctx, q)
}

// ContractCallLocalMethod mock implementation
func (m *MockNodeServer) ContractCallLocalMethod(ctx context.Context, q *hapi.Query) (*hapi.Response, error) {
	return m.query(ctx, q)
}

// ContractGetBytecode mock implementation
func (m *MockNodeServer) ContractGetBytecode(ctx context.Context, q *hapi.Query) (*hapi.Response, error) {
	return m.query(ctx, q)
}

// GetTxRecordByContractID mock implementation
func (m *MockNodeServer) GetTxRecordByContractID(ctx context.Context, q *hapi.Query) (*hapi.Response, error) {
	return m.query(ctx, q)
}

// Start the mock node server
func (m *MockNodeServer) Start(address string) string {
	if m.srv != nil {
		panic("MockNodeServer already started")
	}

	// pass in TLS creds if present
	if m.Creds != nil {
		m.srv = grpc.NewServer(grpc.Creds(m.Creds))
	} else {
		m.srv = grpc.NewServer()
	}

	lis, err := net.Listen("tcp", address)
	if err != nil {
		panic(fmt.Sprintf("Error starting MockNodeServer %s", err))
	}
	addr := lis.Addr().String()

	logger.Infof("Starting MockNodeServer [%s]", addr)
	hapi.RegisterCryptoServiceServer(m.srv, m)
	hapi.RegisterFileServiceServer(m.srv, m)
	hapi.RegisterSmartContractServiceServer(m.srv, m)
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		if err := m.srv.Serve(lis); err != nil {
			logger.Warnf("MockNodeServer failed [%s]", err)
		}
	}()

	return addr
}

// Stop the mock node server and wait for completion.
func (m *MockNodeServer) Stop() {
	if m.srv == nil {
		panic("MockNodeServer not started")
	}

	m.srv.Stop()
	m.wg.Wait()
	m.srv = nil
}
