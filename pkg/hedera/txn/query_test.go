/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package txn

import (
	reqContext "context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashgraph/hedera-sdk-go/pkg/common/errors/status"
	"github.com/hashgraph/hedera-sdk-go/pkg/hapi"
	"github.com/hashgraph/hedera-sdk-go/pkg/hedera/id"
	"github.com/hashgraph/hedera-sdk-go/pkg/hedera/mocks"
)

var queryCases = []struct {
	kind   hapi.QueryCase
	method string
	query  func() *hapi.Query
}{
	{hapi.Query_GET_BY_KEY, "/proto.CryptoService/getByKey",
		func() *hapi.Query { return &hapi.Query{GetByKey: &hapi.GetByKeyQuery{}} }},
	{hapi.Query_CONTRACT_CALL_LOCAL, "/proto.SmartContractService/contractCallLocalMethod",
		func() *hapi.Query { return &hapi.Query{ContractCallLocal: &hapi.ContractCallLocalQuery{}} }},
	{hapi.Query_CONTRACT_GET_INFO, "/proto.SmartContractService/getContractInfo",
		func() *hapi.Query { return &hapi.Query{ContractGetInfo: &hapi.ContractGetInfoQuery{}} }},
	{hapi.Query_CONTRACT_GET_BYTECODE, "/proto.SmartContractService/ContractGetBytecode",
		func() *hapi.Query { return &hapi.Query{ContractGetBytecode: &hapi.ContractGetBytecodeQuery{}} }},
	{hapi.Query_CONTRACT_GET_RECORDS, "/proto.SmartContractService/getTxRecordByContractID",
		func() *hapi.Query { return &hapi.Query{ContractGetRecords: &hapi.ContractGetRecordsQuery{}} }},
	{hapi.Query_CRYPTO_GET_ACCOUNT_BALANCE, "/proto.CryptoService/cryptoGetBalance",
		func() *hapi.Query { return &hapi.Query{CryptogetAccountBalance: &hapi.CryptoGetAccountBalanceQuery{}} }},
	{hapi.Query_CRYPTO_GET_ACCOUNT_RECORDS, "/proto.CryptoService/getAccountRecords",
		func() *hapi.Query { return &hapi.Query{CryptoGetAccountRecords: &hapi.CryptoGetAccountRecordsQuery{}} }},
	{hapi.Query_CRYPTO_GET_INFO, "/proto.CryptoService/getAccountInfo",
		func() *hapi.Query { return &hapi.Query{CryptoGetInfo: &hapi.CryptoGetInfoQuery{}} }},
	{hapi.Query_CRYPTO_GET_CLAIM, "/proto.CryptoService/getClaim",
		func() *hapi.Query { return &hapi.Query{CryptoGetClaim: &hapi.CryptoGetClaimQuery{}} }},
	{hapi.Query_FILE_GET_CONTENTS, "/proto.FileService/getFileContent",
		func() *hapi.Query { return &hapi.Query{FileGetContents: &hapi.FileGetContentsQuery{}} }},
	{hapi.Query_FILE_GET_INFO, "/proto.FileService/getFileInfo",
		func() *hapi.Query { return &hapi.Query{FileGetInfo: &hapi.FileGetInfoQuery{}} }},
	{hapi.Query_TRANSACTION_GET_RECEIPT, "/proto.CryptoService/getTransactionReceipts",
		func() *hapi.Query { return &hapi.Query{TransactionGetReceipt: &hapi.TransactionGetReceiptQuery{}} }},
	{hapi.Query_TRANSACTION_GET_RECORD, "/proto.CryptoService/getTxRecordByTxID",
		func() *hapi.Query { return &hapi.Query{TransactionGetRecord: &hapi.TransactionGetRecordQuery{}} }},
}

func TestResponseHeaderEveryVariant(t *testing.T) {
	for _, tc := range queryCases {
		header := &hapi.ResponseHeader{NodeTransactionPrecheckCode: hapi.NodeTransactionPrecheckCode_BUSY, Cost: 42}
		resp := mocks.NewResponse(tc.kind, header)
		require.Equal(t, tc.kind, resp.ResponseCase(), tc.kind.String())

		h, err := ResponseHeader(resp)
		require.NoError(t, err, tc.kind.String())
		assert.Equal(t, header, h, tc.kind.String())
	}

	_, err := ResponseHeader(&hapi.Response{})
	assert.True(t, status.HasCode(err, status.UnexpectedResponse))

	_, err = ResponseHeader(&hapi.Response{CryptoGetInfo: &hapi.CryptoGetInfoResponse{}})
	assert.True(t, status.HasCode(err, status.UnexpectedResponse))
}

func TestSetQueryHeaderEveryVariant(t *testing.T) {
	for _, tc := range queryCases {
		q := tc.query()
		header := &hapi.QueryHeader{ResponseType: hapi.ResponseType_COST_ANSWER}
		require.NoError(t, SetQueryHeader(q, header), tc.kind.String())

		h, err := QueryHeader(q)
		require.NoError(t, err)
		assert.Equal(t, header, h, tc.kind.String())
	}

	require.Error(t, SetQueryHeader(&hapi.Query{}, &hapi.QueryHeader{}))
	_, err := QueryHeader(&hapi.Query{})
	require.Error(t, err)
}

func TestSendQueryDispatch(t *testing.T) {
	srv, conn, stop := startNode(t)
	defer stop()

	srv.Cost = 25

	for _, tc := range queryCases {
		q := tc.query()
		require.NoError(t, SetQueryHeader(q, &hapi.QueryHeader{ResponseType: hapi.ResponseType_COST_ANSWER}))

		resp, header, err := SendQuery(reqContext.Background(), conn, q)
		require.NoError(t, err, tc.kind.String())
		assert.Equal(t, tc.kind, resp.ResponseCase())
		assert.Equal(t, uint64(25), header.GetCost())
		assert.Equal(t, hapi.ResponseType_COST_ANSWER, header.ResponseType)

		methods := srv.Methods()
		assert.Equal(t, tc.method, methods[len(methods)-1])
	}
	assert.Len(t, srv.Queries(), len(queryCases))
}

func TestSendQueryUnexpectedResponse(t *testing.T) {
	srv, conn, stop := startNode(t)
	defer stop()

	srv.QueryHandler = func(q *hapi.Query) (*hapi.Response, error) {
		return mocks.NewResponse(hapi.Query_FILE_GET_INFO, &hapi.ResponseHeader{}), nil
	}

	q := &hapi.Query{CryptogetAccountBalance: &hapi.CryptoGetAccountBalanceQuery{
		Header:    &hapi.QueryHeader{},
		AccountID: id.AccountID{Num: 2}.ToProto(),
	}}
	_, _, err := SendQuery(reqContext.Background(), conn, q)
	require.Error(t, err)
	assert.True(t, status.HasCode(err, status.UnexpectedResponse))
}

func TestSendQueryPrecheckNotInterpreted(t *testing.T) {
	srv, conn, stop := startNode(t)
	defer stop()

	srv.QueryPrecheck = hapi.NodeTransactionPrecheckCode_INVALID_ACCOUNT

	q := &hapi.Query{CryptoGetInfo: &hapi.CryptoGetInfoQuery{Header: &hapi.QueryHeader{}}}
	_, header, err := SendQuery(reqContext.Background(), conn, q)
	require.NoError(t, err)
	assert.Equal(t, hapi.NodeTransactionPrecheckCode_INVALID_ACCOUNT, header.GetNodeTransactionPrecheckCode())
}
