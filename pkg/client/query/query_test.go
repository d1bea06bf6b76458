/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package query

import (
	reqContext "context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/golang/protobuf/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"

	"github.com/hashgraph/hedera-sdk-go/pkg/client/transaction"
	"github.com/hashgraph/hedera-sdk-go/pkg/common/errors/status"
	"github.com/hashgraph/hedera-sdk-go/pkg/common/providers/test/mockhedera"
	"github.com/hashgraph/hedera-sdk-go/pkg/core/crypto"
	"github.com/hashgraph/hedera-sdk-go/pkg/hapi"
	"github.com/hashgraph/hedera-sdk-go/pkg/hedera/comm"
	"github.com/hashgraph/hedera-sdk-go/pkg/hedera/id"
	"github.com/hashgraph/hedera-sdk-go/pkg/hedera/mocks"
	"github.com/hashgraph/hedera-sdk-go/pkg/hedera/txn"
)

var (
	account  = id.AccountID{Num: 1001}
	file     = id.FileID{Num: 150}
	contract = id.ContractID{Num: 1002}
	txID     = id.TransactionID{Account: id.AccountID{Num: 2}, ValidStart: id.Timestamp{Seconds: 1539387985, Nanos: 758025699}}
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func startNode(t *testing.T) (*mocks.MockNodeServer, *comm.GRPCConnection, func()) {
	srv := &mocks.MockNodeServer{}
	addr := srv.Start("127.0.0.1:0")

	conn, err := comm.NewConnection(reqContext.Background(), addr, comm.WithInsecure(), comm.WithConnectTimeout(5*time.Second))
	if err != nil {
		srv.Stop()
		t.Fatalf("error connecting to mock node: %s", err)
	}
	return srv, conn, func() {
		conn.Close()
		srv.Stop()
	}
}

func newKey(t *testing.T) *crypto.PrivateKey {
	key, err := crypto.GeneratePrivateKey()
	require.NoError(t, err)
	return key
}

func responseType(t *testing.T, q *hapi.Query) hapi.ResponseType {
	h, err := txn.QueryHeader(q)
	require.NoError(t, err)
	return h.GetResponseType()
}

func TestNew(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	_, err := New(mockhedera.DefaultMockContext(mockCtrl, mockhedera.NewMockServices(mockCtrl)), nil)
	name, ok := status.MissingFieldName(err)
	require.True(t, ok)
	assert.Equal(t, "body", name)

	_, err = New(nil, &FileGetInfo{File: file})
	assert.Error(t, err)
}

func TestMissingField(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	// no RPC is expected on the mock services
	ctx := mockhedera.DefaultMockContext(mockCtrl, mockhedera.NewMockServices(mockCtrl))

	tests := []struct {
		body  Body
		field string
	}{
		{&CryptoGetAccountBalance{}, "account"},
		{&CryptoGetClaim{Account: account}, "hash"},
		{&FileGetContents{}, "file"},
		{&TransactionGetReceipt{}, "transaction id"},
		{&ContractCallLocal{}, "contract"},
		{&GetByKey{}, "key"},
	}

	for _, test := range tests {
		q, err := New(ctx, test.body)
		require.NoError(t, err)

		_, err = q.Cost(reqContext.Background())
		name, ok := status.MissingFieldName(err)
		require.True(t, ok, "%s: %v", test.body.Kind(), err)
		assert.Equal(t, test.field, name)

		_, err = q.Answer(reqContext.Background())
		name, _ = status.MissingFieldName(err)
		assert.Equal(t, test.field, name)
	}
}

func TestCostThenAnswer(t *testing.T) {
	srv, conn, stop := startNode(t)
	defer stop()
	srv.Cost = 25

	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	q, err := NewAccountBalance(mockhedera.DefaultMockContext(mockCtrl, conn), account)
	require.NoError(t, err)

	cost, err := q.Cost(reqContext.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(25), cost)

	balance, err := q.Get(reqContext.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(0), balance)

	cost, err = q.Cost(reqContext.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(25), cost)

	queries := srv.Queries()
	require.Len(t, queries, 3)
	assert.Equal(t, hapi.ResponseType_COST_ANSWER, responseType(t, queries[0]))
	assert.Equal(t, hapi.ResponseType_ANSWER_ONLY, responseType(t, queries[1]))
	assert.Equal(t, hapi.ResponseType_COST_ANSWER, responseType(t, queries[2]))
	assert.Equal(t, account, id.AccountIDFromProto(queries[0].CryptogetAccountBalance.AccountID))
	assert.Equal(t, "/proto.CryptoService/cryptoGetBalance", srv.Methods()[0])
}

func TestCostInvalidTransaction(t *testing.T) {
	srv, conn, stop := startNode(t)
	defer stop()
	srv.Cost = 80
	srv.QueryPrecheck = hapi.NodeTransactionPrecheckCode_INVALID_TRANSACTION

	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	ctx := mockhedera.DefaultMockContext(mockCtrl, conn)

	info, err := New(ctx, &CryptoGetInfo{Account: account})
	require.NoError(t, err)
	cost, err := info.Cost(reqContext.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(80), cost)

	_, err = info.Answer(reqContext.Background())
	code, ok := status.IsPrecheck(err)
	require.True(t, ok)
	assert.Equal(t, status.PrecheckInvalidTransaction, code)

	for _, body := range []Body{&CryptoGetAccountBalance{Account: account}, &TransactionGetReceipt{TransactionID: txID}} {
		q, err := New(ctx, body)
		require.NoError(t, err)
		_, err = q.Cost(reqContext.Background())
		code, ok := status.IsPrecheck(err)
		require.True(t, ok, "%s", body.Kind())
		assert.Equal(t, status.PrecheckInvalidTransaction, code)
	}
}

func TestAnswerPrecheck(t *testing.T) {
	srv, conn, stop := startNode(t)
	defer stop()
	srv.QueryPrecheck = hapi.NodeTransactionPrecheckCode_BUSY

	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	q, err := NewFileContents(mockhedera.DefaultMockContext(mockCtrl, conn), file)
	require.NoError(t, err)

	_, err = q.Get(reqContext.Background())
	code, ok := status.IsPrecheck(err)
	require.True(t, ok)
	assert.Equal(t, status.PrecheckBusy, code)
	assert.Contains(t, err.Error(), mockhedera.NodeAccount.String())

	_, err = q.Cost(reqContext.Background())
	code, _ = status.IsPrecheck(err)
	assert.Equal(t, status.PrecheckBusy, code)
}

func TestUnexpectedResponse(t *testing.T) {
	srv, conn, stop := startNode(t)
	defer stop()
	srv.QueryHandler = func(q *hapi.Query) (*hapi.Response, error) {
		return mocks.NewResponse(hapi.Query_CRYPTO_GET_ACCOUNT_BALANCE, &hapi.ResponseHeader{}), nil
	}

	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	q, err := NewReceipt(mockhedera.DefaultMockContext(mockCtrl, conn), txID)
	require.NoError(t, err)

	_, err = q.Get(reqContext.Background())
	assert.True(t, status.HasCode(err, status.UnexpectedResponse))
}

func TestTransportFailure(t *testing.T) {
	srv, conn, stop := startNode(t)
	defer stop()
	srv.QueryHandler = func(q *hapi.Query) (*hapi.Response, error) {
		return nil, grpcstatus.Error(codes.Unavailable, "node is restarting")
	}

	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	q, err := NewAccountBalance(mockhedera.DefaultMockContext(mockCtrl, conn), account)
	require.NoError(t, err)

	_, err = q.Cost(reqContext.Background())
	assert.True(t, status.IsTransport(err))
	_, ok := status.IsPrecheck(err)
	assert.False(t, ok)
}

func TestSetPayment(t *testing.T) {
	srv, conn, stop := startNode(t)
	defer stop()

	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	operatorKey := newKey(t)
	ctx := mockhedera.CustomMockContext(mockCtrl, conn, mockhedera.DefaultMockConfig(mockCtrl), operatorKey)

	q, err := NewFileInfo(ctx, file)
	require.NoError(t, err)

	assert.True(t, status.HasCode(q.SetPayment(nil), status.InvalidPayment))

	payment, err := transaction.New(ctx, (&transaction.CryptoTransfer{}).
		AddTransfer(mockhedera.OperatorAccount, -100).
		AddTransfer(mockhedera.NodeAccount, 100))
	require.NoError(t, err)
	assert.True(t, status.HasCode(q.SetPayment(payment), status.IllegalStateTransition))

	notTransfer, err := transaction.New(ctx, &transaction.FileDelete{File: file})
	require.NoError(t, err)
	require.NoError(t, notTransfer.Freeze())
	assert.True(t, status.HasCode(q.SetPayment(notTransfer), status.InvalidPayment))

	require.NoError(t, payment.Freeze())
	require.NoError(t, q.SetPayment(payment))
	assert.Equal(t, 2, payment.Envelope().SignatureCount())

	_, err = q.Cost(reqContext.Background())
	require.NoError(t, err)

	header, err := txn.QueryHeader(srv.Queries()[0])
	require.NoError(t, err)
	require.NotNil(t, header.Payment)
	assert.True(t, proto.Equal(payment.Envelope().Transaction(), header.Payment))
	assert.NoError(t, txn.Verify(payment.Envelope().BodyBytes(), header.Payment.Sigs, operatorKey.Public()))

	_, err = payment.Execute(reqContext.Background())
	require.NoError(t, err)
	assert.True(t, status.HasCode(q.SetPayment(payment), status.IllegalStateTransition))
}

func TestKind(t *testing.T) {
	assert.Equal(t, "CryptoGetAccountBalance", CryptoGetAccountBalanceKind.String())
	assert.Equal(t, "GetByKey", GetByKeyKind.String())
	assert.Equal(t, "Unknown", Kind(-1).String())
	assert.False(t, costWithoutPayment[CryptoGetAccountBalanceKind])
	assert.False(t, costWithoutPayment[TransactionGetReceiptKind])
	assert.True(t, costWithoutPayment[TransactionGetRecordKind])
}
