/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package txn

import (
	reqContext "context"

	"github.com/pkg/errors"
	"google.golang.org/grpc"

	"github.com/hashgraph/hedera-sdk-go/pkg/common/errors/status"
	"github.com/hashgraph/hedera-sdk-go/pkg/common/providers/hedera"
	"github.com/hashgraph/hedera-sdk-go/pkg/hapi"
)

type queryRPC func(ctx reqContext.Context, in *hapi.Query, opts ...grpc.CallOption) (*hapi.Response, error)

// queryKind binds a query variant to its header accessors and service RPC
type queryKind struct {
	setHeader      func(q *hapi.Query, h *hapi.QueryHeader)
	queryHeader    func(q *hapi.Query) *hapi.QueryHeader
	responseHeader func(r *hapi.Response) *hapi.ResponseHeader
	method         func(s hedera.Services) queryRPC
}

var queryKinds = map[hapi.QueryCase]queryKind{
	hapi.Query_GET_BY_KEY: {
		setHeader:      func(q *hapi.Query, h *hapi.QueryHeader) { q.GetByKey.Header = h },
		queryHeader:    func(q *hapi.Query) *hapi.QueryHeader { return q.GetByKey.Header },
		responseHeader: func(r *hapi.Response) *hapi.ResponseHeader { return r.GetByKey.Header },
		method:         func(s hedera.Services) queryRPC { return s.CryptoService().GetByKey },
	},
	hapi.Query_CONTRACT_CALL_LOCAL: {
		setHeader:      func(q *hapi.Query, h *hapi.QueryHeader) { q.ContractCallLocal.Header = h },
		queryHeader:    func(q *hapi.Query) *hapi.QueryHeader { return q.ContractCallLocal.Header },
		responseHeader: func(r *hapi.Response) *hapi.ResponseHeader { return r.ContractCallLocal.Header },
		method:         func(s hedera.Services) queryRPC { return s.SmartContractService().ContractCallLocalMethod },
	},
	hapi.Query_CONTRACT_GET_INFO: {
		setHeader:      func(q *hapi.Query, h *hapi.QueryHeader) { q.ContractGetInfo.Header = h },
		queryHeader:    func(q *hapi.Query) *hapi.QueryHeader { return q.ContractGetInfo.Header },
		responseHeader: func(r *hapi.Response) *hapi.ResponseHeader { return r.ContractGetInfo.Header },
		method:         func(s hedera.Services) queryRPC { return s.SmartContractService().GetContractInfo },
	},
	hapi.Query_CONTRACT_GET_BYTECODE: {
		setHeader:      func(q *hapi.Query, h *hapi.QueryHeader) { q.ContractGetBytecode.Header = h },
		queryHeader:    func(q *hapi.Query) *hapi.QueryHeader { return q.ContractGetBytecode.Header },
		responseHeader: func(r *hapi.Response) *hapi.ResponseHeader { return r.ContractGetBytecode.Header },
		method:         func(s hedera.Services) queryRPC { return s.SmartContractService().ContractGetBytecode },
	},
	hapi.Query_CONTRACT_GET_RECORDS: {
		setHeader:      func(q *hapi.Query, h *hapi.QueryHeader) { q.ContractGetRecords.Header = h },
		queryHeader:    func(q *hapi.Query) *hapi.QueryHeader { return q.ContractGetRecords.Header },
		responseHeader: func(r *hapi.Response) *hapi.ResponseHeader { return r.ContractGetRecords.Header },
		method:         func(s hedera.Services) queryRPC { return s.SmartContractService().GetTxRecordByContractID },
	},
	hapi.Query_CRYPTO_GET_ACCOUNT_BALANCE: {
		setHeader:      func(q *hapi.Query, h *hapi.QueryHeader) { q.CryptogetAccountBalance.Header = h },
		queryHeader:    func(q *hapi.Query) *hapi.QueryHeader { return q.CryptogetAccountBalance.Header },
		responseHeader: func(r *hapi.Response) *hapi.ResponseHeader { return r.CryptogetAccountBalance.Header },
		method:         func(s hedera.Services) queryRPC { return s.CryptoService().CryptoGetBalance },
	},
	hapi.Query_CRYPTO_GET_ACCOUNT_RECORDS: {
		setHeader:      func(q *hapi.Query, h *hapi.QueryHeader) { q.CryptoGetAccountRecords.Header = h },
		queryHeader:    func(q *hapi.Query) *hapi.QueryHeader { return q.CryptoGetAccountRecords.Header },
		responseHeader: func(r *hapi.Response) *hapi.ResponseHeader { return r.CryptoGetAccountRecords.Header },
		method:         func(s hedera.Services) queryRPC { return s.CryptoService().GetAccountRecords },
	},
	hapi.Query_CRYPTO_GET_INFO: {
		setHeader:      func(q *hapi.Query, h *hapi.QueryHeader) { q.CryptoGetInfo.Header = h },
		queryHeader:    func(q *hapi.Query) *hapi.QueryHeader { return q.CryptoGetInfo.Header },
		responseHeader: func(r *hapi.Response) *hapi.ResponseHeader { return r.CryptoGetInfo.Header },
		method:         func(s hedera.Services) queryRPC { return s.CryptoService().GetAccountInfo },
	},
	hapi.Query_CRYPTO_GET_CLAIM: {
		setHeader:      func(q *hapi.Query, h *hapi.QueryHeader) { q.CryptoGetClaim.Header = h },
		queryHeader:    func(q *hapi.Query) *hapi.QueryHeader { return q.CryptoGetClaim.Header },
		responseHeader: func(r *hapi.Response) *hapi.ResponseHeader { return r.CryptoGetClaim.Header },
		method:         func(s hedera.Services) queryRPC { return s.CryptoService().GetClaim },
	},
	hapi.Query_FILE_GET_CONTENTS: {
		setHeader:      func(q *hapi.Query, h *hapi.QueryHeader) { q.FileGetContents.Header = h },
		queryHeader:    func(q *hapi.Query) *hapi.QueryHeader { return q.FileGetContents.Header },
		responseHeader: func(r *hapi.Response) *hapi.ResponseHeader { return r.FileGetContents.Header },
		method:         func(s hedera.Services) queryRPC { return s.FileService().GetFileContent },
	},
	hapi.Query_FILE_GET_INFO: {
		setHeader:      func(q *hapi.Query, h *hapi.QueryHeader) { q.FileGetInfo.Header = h },
		queryHeader:    func(q *hapi.Query) *hapi.QueryHeader { return q.FileGetInfo.Header },
		responseHeader: func(r *hapi.Response) *hapi.ResponseHeader { return r.FileGetInfo.Header },
		method:         func(s hedera.Services) queryRPC { return s.FileService().GetFileInfo },
	},
	hapi.Query_TRANSACTION_GET_RECEIPT: {
		setHeader:      func(q *hapi.Query, h *hapi.QueryHeader) { q.TransactionGetReceipt.Header = h },
		queryHeader:    func(q *hapi.Query) *hapi.QueryHeader { return q.TransactionGetReceipt.Header },
		responseHeader: func(r *hapi.Response) *hapi.ResponseHeader { return r.TransactionGetReceipt.Header },
		method:         func(s hedera.Services) queryRPC { return s.CryptoService().GetTransactionReceipts },
	},
	hapi.Query_TRANSACTION_GET_RECORD: {
		setHeader:      func(q *hapi.Query, h *hapi.QueryHeader) { q.TransactionGetRecord.Header = h },
		queryHeader:    func(q *hapi.Query) *hapi.QueryHeader { return q.TransactionGetRecord.Header },
		responseHeader: func(r *hapi.Response) *hapi.ResponseHeader { return r.TransactionGetRecord.Header },
		method:         func(s hedera.Services) queryRPC { return s.CryptoService().GetTxRecordByTxID },
	},
}

func kindOf(c hapi.QueryCase) (queryKind, error) {
	k, ok := queryKinds[c]
	if !ok {
		return queryKind{}, errors.Errorf("unsupported query %s", c)
	}
	return k, nil
}

// SetQueryHeader installs h on whichever query variant is set
func SetQueryHeader(q *hapi.Query, h *hapi.QueryHeader) error {
	k, err := kindOf(q.QueryCase())
	if err != nil {
		return err
	}
	k.setHeader(q, h)
	return nil
}

// QueryHeader returns the header of whichever query variant is set
func QueryHeader(q *hapi.Query) (*hapi.QueryHeader, error) {
	k, err := kindOf(q.QueryCase())
	if err != nil {
		return nil, err
	}
	return k.queryHeader(q), nil
}

// ResponseHeader extracts the header of whichever response variant is set
func ResponseHeader(r *hapi.Response) (*hapi.ResponseHeader, error) {
	k, err := kindOf(r.ResponseCase())
	if err != nil {
		return nil, status.New(status.ClientStatus, status.UnexpectedResponse.ToInt32(), err.Error(), nil)
	}
	h := k.responseHeader(r)
	if h == nil {
		return nil, status.New(status.ClientStatus, status.UnexpectedResponse.ToInt32(),
			"response header missing", []interface{}{r.ResponseCase().String()})
	}
	return h, nil
}

// SendQuery sends q to the service RPC for its variant and checks that the
// response answers the same variant. Precheck codes are not interpreted.
func SendQuery(reqCtx reqContext.Context, services hedera.Services, q *hapi.Query, opts ...grpc.CallOption) (*hapi.Response, *hapi.ResponseHeader, error) {
	k, err := kindOf(q.QueryCase())
	if err != nil {
		return nil, nil, err
	}

	logger.Debugf("sending %s query", q.QueryCase())
	resp, err := k.method(services)(reqCtx, q, opts...)
	if err != nil {
		return nil, nil, TransportError(err)
	}

	if resp.ResponseCase() != q.QueryCase() {
		return nil, nil, status.New(status.ClientStatus, status.UnexpectedResponse.ToInt32(),
			"response does not answer the query", []interface{}{q.QueryCase().String(), resp.ResponseCase().String()})
	}

	header, err := ResponseHeader(resp)
	if err != nil {
		return nil, nil, err
	}
	return resp, header, nil
}
