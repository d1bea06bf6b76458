/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package txn

import (
	reqContext "context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"

	"github.com/hashgraph/hedera-sdk-go/pkg/common/errors/status"
	"github.com/hashgraph/hedera-sdk-go/pkg/common/providers/test/mockhedera"
	"github.com/hashgraph/hedera-sdk-go/pkg/hapi"
	"github.com/hashgraph/hedera-sdk-go/pkg/hedera/comm"
	"github.com/hashgraph/hedera-sdk-go/pkg/hedera/id"
	"github.com/hashgraph/hedera-sdk-go/pkg/hedera/mocks"
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

func signedTransaction(t *testing.T, body *hapi.TransactionBody) *hapi.Transaction {
	env, err := NewEnvelope(body)
	require.NoError(t, err)
	require.NoError(t, env.AppendSignature(newKey(t), false))
	return env.Transaction()
}

func TestSendDispatch(t *testing.T) {
	srv, conn, stop := startNode(t)
	defer stop()

	fileID := id.FileID{Num: 150}.ToProto()
	contractID := id.ContractID{Num: 1002}.ToProto()

	tests := []struct {
		name   string
		set    func(b *hapi.TransactionBody)
		method string
	}{
		{"transfer", func(b *hapi.TransactionBody) {
			b.CryptoTransfer = transferBody().CryptoTransfer
		}, "/proto.CryptoService/cryptoTransfer"},
		{"createAccount", func(b *hapi.TransactionBody) {
			b.CryptoCreateAccount = &hapi.CryptoCreateTransactionBody{}
		}, "/proto.CryptoService/createAccount"},
		{"appendContent", func(b *hapi.TransactionBody) {
			b.FileAppend = &hapi.FileAppendTransactionBody{FileID: fileID}
		}, "/proto.FileService/appendContent"},
		{"fileAdminDelete", func(b *hapi.TransactionBody) {
			b.AdminDelete = &hapi.AdminDeleteTransactionBody{FileID: fileID}
		}, "/proto.FileService/adminDelete"},
		{"contractAdminDelete", func(b *hapi.TransactionBody) {
			b.AdminDelete = &hapi.AdminDeleteTransactionBody{ContractID: contractID}
		}, "/proto.SmartContractService/adminDelete"},
		{"contractAdminUndelete", func(b *hapi.TransactionBody) {
			b.AdminUndelete = &hapi.AdminUndeleteTransactionBody{ContractID: contractID}
		}, "/proto.SmartContractService/adminUndelete"},
		{"contractCall", func(b *hapi.TransactionBody) {
			b.ContractCall = &hapi.ContractCallTransactionBody{ContractID: contractID}
		}, "/proto.SmartContractService/contractCallMethod"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			body := transferBody()
			body.CryptoTransfer = nil
			tc.set(body)
			require.Equal(t, 1, body.DataFieldCount())

			resp, err := Send(reqContext.Background(), conn, signedTransaction(t, body))
			require.NoError(t, err)
			assert.Equal(t, hapi.NodeTransactionPrecheckCode_OK, resp.GetNodeTransactionPrecheckCode())

			methods := srv.Methods()
			require.NotEmpty(t, methods)
			assert.Equal(t, tc.method, methods[len(methods)-1])
		})
	}
}

func TestSendNoBody(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	services := mockhedera.NewMockServices(mockCtrl)
	_, err := Send(reqContext.Background(), services, &hapi.Transaction{Body: &hapi.TransactionBody{}})
	require.Error(t, err)
}

func TestSendAmbiguousBody(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	body := transferBody()
	body.FileAppend = &hapi.FileAppendTransactionBody{FileID: id.FileID{Num: 150}.ToProto()}

	services := mockhedera.NewMockServices(mockCtrl)
	_, err := Send(reqContext.Background(), services, &hapi.Transaction{Body: body})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 operations")
}

func TestSendPrecheck(t *testing.T) {
	srv, conn, stop := startNode(t)
	defer stop()

	srv.TransactionPrecheck = hapi.NodeTransactionPrecheckCode_INSUFFICIENT_FEE

	_, err := Send(reqContext.Background(), conn, signedTransaction(t, transferBody()))
	require.Error(t, err)

	code, ok := status.IsPrecheck(err)
	require.True(t, ok)
	assert.Equal(t, status.PrecheckInsufficientFee, code)
	assert.False(t, status.IsTransport(err))
	assert.Contains(t, err.Error(), "0:0:3")
}

func TestSendTransportFailure(t *testing.T) {
	srv, conn, stop := startNode(t)
	defer stop()

	srv.TransactionError = grpcstatus.Error(codes.Unavailable, "node is down")

	_, err := Send(reqContext.Background(), conn, signedTransaction(t, transferBody()))
	require.Error(t, err)
	assert.True(t, status.IsTransport(err))
	_, isPrecheck := status.IsPrecheck(err)
	assert.False(t, isPrecheck)

	s, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, status.GRPCTransportStatus, s.Group)
	assert.Equal(t, int32(codes.Unavailable), s.Code)
}

func TestTransportError(t *testing.T) {
	assert.NoError(t, TransportError(nil))

	err := TransportError(errors.New("connection reset"))
	s, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, status.ClientStatus, s.Group)
	assert.Equal(t, status.ConnectionFailed.ToInt32(), s.Code)

	precheck := status.NewFromPrecheck(hapi.NodeTransactionPrecheckCode_BUSY, "0:0:3")
	assert.Equal(t, precheck, TransportError(precheck))
}

func TestCheckPrecheck(t *testing.T) {
	assert.NoError(t, CheckPrecheck(hapi.NodeTransactionPrecheckCode_OK, "0:0:3"))

	err := CheckPrecheck(hapi.NodeTransactionPrecheckCode_DUPLICATE, "0:0:3")
	code, ok := status.IsPrecheck(err)
	require.True(t, ok)
	assert.Equal(t, status.PrecheckDuplicate, code)
}
