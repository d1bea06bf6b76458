/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package transaction

import (
	reqContext "context"
	"math"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/golang/protobuf/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"

	"github.com/hashgraph/hedera-sdk-go/pkg/common/errors/status"
	"github.com/hashgraph/hedera-sdk-go/pkg/common/providers/hedera"
	"github.com/hashgraph/hedera-sdk-go/pkg/common/providers/test/mockhedera"
	"github.com/hashgraph/hedera-sdk-go/pkg/core/crypto"
	"github.com/hashgraph/hedera-sdk-go/pkg/hapi"
	"github.com/hashgraph/hedera-sdk-go/pkg/hedera/comm"
	"github.com/hashgraph/hedera-sdk-go/pkg/hedera/id"
	"github.com/hashgraph/hedera-sdk-go/pkg/hedera/mocks"
	"github.com/hashgraph/hedera-sdk-go/pkg/hedera/txn"
)

var recipient = id.AccountID{Num: 1001}

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newKey(t *testing.T) *crypto.PrivateKey {
	key, err := crypto.GeneratePrivateKey()
	require.NoError(t, err)
	return key
}

func transferBody() *CryptoTransfer {
	return (&CryptoTransfer{}).
		AddTransfer(mockhedera.OperatorAccount, -1000000).
		AddTransfer(recipient, 1000000)
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

func TestNew(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	ctx := mockhedera.DefaultMockContext(mockCtrl, mockhedera.NewMockServices(mockCtrl))

	_, err := New(ctx, nil)
	name, ok := status.MissingFieldName(err)
	require.True(t, ok)
	assert.Equal(t, "body", name)

	_, err = New(ctx, transferBody(), WithNode(id.AccountID{}))
	_, ok = status.MissingFieldName(err)
	assert.True(t, ok)

	tx, err := New(ctx, transferBody())
	require.NoError(t, err)
	assert.Equal(t, Building, tx.State())
	assert.Equal(t, CryptoTransferKind, tx.Kind())
	assert.Nil(t, tx.Envelope())
	assert.True(t, tx.ID().IsZero())

	_, err = tx.Bytes()
	assert.True(t, status.HasCode(err, status.IllegalStateTransition))
}

func TestFreezeRequiresOperatorThenNode(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	tx, err := New(mockhedera.NoOperatorMockContext(mockCtrl, mockhedera.NewMockServices(mockCtrl)), transferBody())
	require.NoError(t, err)

	err = tx.Freeze()
	name, ok := status.MissingFieldName(err)
	require.True(t, ok)
	assert.Equal(t, "operator", name)
	assert.Equal(t, Building, tx.State())

	require.NoError(t, tx.Configure(WithOperator(mockhedera.OperatorAccount)))
	err = tx.Freeze()
	name, ok = status.MissingFieldName(err)
	require.True(t, ok)
	assert.Equal(t, "node", name)
	assert.Equal(t, Building, tx.State())

	require.NoError(t, tx.Configure(WithNode(mockhedera.NodeAccount)))
	require.NoError(t, tx.Freeze())
	assert.Equal(t, Signed, tx.State())
}

func TestFreezeMissingKey(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	ctx := mockhedera.DefaultMockContext(mockCtrl, mockhedera.NewMockServices(mockCtrl))

	for _, body := range []Body{&CryptoCreateAccount{InitialBalance: 10}, &FileCreate{Contents: []byte("hello")}} {
		tx, err := New(ctx, body)
		require.NoError(t, err)

		err = tx.Freeze()
		name, ok := status.MissingFieldName(err)
		require.True(t, ok, "%s: %s", body.Kind(), err)
		assert.Equal(t, "key", name)
		assert.Equal(t, Building, tx.State())
		assert.Nil(t, tx.Envelope())
	}
}

func TestFreeze(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	ctx := mockhedera.DefaultMockContext(mockCtrl, mockhedera.NewMockServices(mockCtrl))

	tx, err := New(ctx, transferBody(), WithMemo("hello"), WithGenerateRecord(true))
	require.NoError(t, err)
	require.NoError(t, tx.Freeze())

	body := tx.Envelope().Body()
	assert.Equal(t, hapi.TransactionBody_CRYPTO_TRANSFER, body.DataCase())
	assert.Equal(t, DefaultFee, body.TransactionFee)
	assert.Equal(t, int64(120), body.TransactionValidDuration.Seconds)
	assert.Equal(t, "hello", body.Memo)
	assert.True(t, body.GenerateRecord)
	assert.Equal(t, mockhedera.NodeAccount, id.AccountIDFromProto(body.NodeAccountID))
	assert.Equal(t, mockhedera.OperatorAccount, tx.ID().Account)
	assert.Equal(t, tx.ID(), id.TransactionIDFromProto(body.TransactionID))

	amounts := body.CryptoTransfer.Transfers.AccountAmounts
	require.Len(t, amounts, 2)
	assert.Equal(t, int64(-1000000), amounts[0].Amount)
	assert.Equal(t, recipient, id.AccountIDFromProto(amounts[1].AccountID))

	canonical := tx.Envelope().BodyBytes()
	require.NoError(t, tx.Freeze())
	assert.Equal(t, canonical, tx.Envelope().BodyBytes())

	b, err := tx.Bytes()
	require.NoError(t, err)
	decoded := &hapi.Transaction{}
	require.NoError(t, proto.Unmarshal(b, decoded))
	assert.True(t, proto.Equal(body, decoded.Body))
}

func TestFreezeOptions(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	operator := id.AccountID{Num: 50}
	node := id.AccountID{Num: 4}
	txID := id.TransactionID{Account: id.AccountID{Num: 77}, ValidStart: id.Timestamp{Seconds: 1539387985, Nanos: 758025699}}

	ctx := mockhedera.DefaultMockContext(mockCtrl, mockhedera.NewMockServices(mockCtrl))
	tx, err := New(ctx, transferBody(), WithOperator(operator), WithNode(node), WithFee(5))
	require.NoError(t, err)
	require.NoError(t, tx.Freeze())
	assert.Equal(t, operator, tx.ID().Account)
	assert.Equal(t, node, id.AccountIDFromProto(tx.Envelope().Body().NodeAccountID))
	assert.Equal(t, uint64(5), tx.Envelope().Body().TransactionFee)

	tx, err = New(ctx, transferBody(), WithTransactionID(txID))
	require.NoError(t, err)
	require.NoError(t, tx.Freeze())
	assert.Equal(t, txID, tx.ID())

	_, err = New(ctx, transferBody(), WithTransactionID(id.TransactionID{}))
	assert.Error(t, err)
}

func TestFreezeConfiguredDefaults(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	cfg := mockhedera.CustomMockConfig(mockCtrl, hedera.TransactionConfig{DefaultFee: 42, ValidDuration: 30 * time.Second})
	ctx := mockhedera.CustomMockContext(mockCtrl, mockhedera.NewMockServices(mockCtrl), cfg, nil)

	tx, err := New(ctx, transferBody())
	require.NoError(t, err)
	require.NoError(t, tx.Freeze())
	assert.Equal(t, uint64(42), tx.Envelope().Body().TransactionFee)
	assert.Equal(t, int64(30), tx.Envelope().Body().TransactionValidDuration.Seconds)
}

func TestMutationAfterFreeze(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	ctx := mockhedera.DefaultMockContext(mockCtrl, mockhedera.NewMockServices(mockCtrl))
	tx, err := New(ctx, transferBody())
	require.NoError(t, err)

	assert.True(t, status.HasCode(tx.Sign(newKey(t)), status.IllegalStateTransition))

	_, err = tx.Execute(reqContext.Background())
	assert.True(t, status.HasCode(err, status.IllegalStateTransition))
	assert.Equal(t, Building, tx.State())

	require.NoError(t, tx.Freeze())

	assert.True(t, status.HasCode(tx.Configure(WithMemo("late")), status.IllegalStateTransition))
	assert.True(t, status.HasCode(tx.SetBody(&FileDelete{File: id.FileID{Num: 1}}), status.IllegalStateTransition))
	assert.Equal(t, "", tx.Envelope().Body().Memo)
}

func TestBodySnapshot(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	ctx := mockhedera.DefaultMockContext(mockCtrl, mockhedera.NewMockServices(mockCtrl))

	body := &FileDelete{File: id.FileID{Num: 150}}
	tx, err := New(ctx, body)
	require.NoError(t, err)

	body.File = id.FileID{Num: 151}
	require.NoError(t, tx.Freeze())
	assert.Equal(t, id.FileID{Num: 150}, id.FileIDFromProto(tx.Envelope().Body().FileDelete.FileID))
}

func TestSignNesting(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	ctx := mockhedera.DefaultMockContext(mockCtrl, mockhedera.NewMockServices(mockCtrl))
	key := newKey(t).Public()

	tests := []struct {
		name   string
		body   Body
		opts   []Option
		nested []bool
	}{
		{"transfer", transferBody(), nil, []bool{false, false, false}},
		{"fileCreate", &FileCreate{Keys: []hedera.PublicKey{key}}, nil, []bool{false, true, true}},
		{"fileAppend", &FileAppend{File: id.FileID{Num: 150}, Contents: []byte("more")}, nil, []bool{false, true, true}},
		{"fileCreateFlat", &FileCreate{Keys: []hedera.PublicKey{key}}, []Option{WithNestedSignatures(false)}, []bool{false, false, false}},
		{"transferNested", transferBody(), []Option{WithNestedSignatures(true)}, []bool{false, true, true}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			tx, err := New(ctx, test.body, test.opts...)
			require.NoError(t, err)
			require.NoError(t, tx.Freeze())

			signers := []*crypto.PrivateKey{newKey(t), newKey(t), newKey(t)}
			for _, s := range signers {
				require.NoError(t, tx.Sign(s))
			}

			sigs := tx.Envelope().Transaction().Sigs.Sigs
			require.Len(t, sigs, len(test.nested))
			for i, nested := range test.nested {
				if nested {
					require.NotNil(t, sigs[i].SignatureList, "signature %d", i)
					assert.Len(t, sigs[i].SignatureList.Sigs, 1)
				} else {
					assert.NotEmpty(t, sigs[i].Ed25519, "signature %d", i)
				}
			}
			for i, s := range signers {
				assert.Equal(t, s.PublicKey().Bytes(), tx.Envelope().Signers()[i].Bytes())
			}
			assert.NoError(t, txn.VerifyEnvelope(tx.Envelope()))
		})
	}
}

func TestSignNestingFromConfig(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	cfg := mockhedera.CustomMockConfig(mockCtrl, hedera.TransactionConfig{
		NestedSignatures: map[string]bool{"cryptotransfer": true, "filecreate": false},
	})
	ctx := mockhedera.CustomMockContext(mockCtrl, mockhedera.NewMockServices(mockCtrl), cfg, nil)

	tx, err := New(ctx, transferBody())
	require.NoError(t, err)
	require.NoError(t, tx.Freeze())
	require.NoError(t, tx.Sign(newKey(t)))
	require.NoError(t, tx.Sign(newKey(t)))
	assert.NotNil(t, tx.Envelope().Transaction().Sigs.Sigs[1].SignatureList)

	tx, err = New(ctx, &FileCreate{Keys: []hedera.PublicKey{newKey(t).Public()}})
	require.NoError(t, err)
	require.NoError(t, tx.Freeze())
	require.NoError(t, tx.Sign(newKey(t)))
	require.NoError(t, tx.Sign(newKey(t)))
	assert.Nil(t, tx.Envelope().Transaction().Sigs.Sigs[1].SignatureList)
}

func TestSignerFailure(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	ctx := mockhedera.DefaultMockContext(mockCtrl, mockhedera.NewMockServices(mockCtrl))
	tx, err := New(ctx, transferBody())
	require.NoError(t, err)
	require.NoError(t, tx.Freeze())

	signer := mockhedera.NewMockSigner(mockCtrl)
	signer.EXPECT().Sign(gomock.Any()).Return(nil, assert.AnError)

	assert.True(t, status.HasCode(tx.Sign(signer), status.SigningFailed))
	assert.Equal(t, 0, tx.Envelope().SignatureCount())
	assert.Equal(t, Signed, tx.State())
}

func TestExecuteTransfer(t *testing.T) {
	srv, conn, stop := startNode(t)
	defer stop()

	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	operatorKey := newKey(t)
	ctx := mockhedera.CustomMockContext(mockCtrl, conn, mockhedera.DefaultMockConfig(mockCtrl), operatorKey)

	tx, err := New(ctx, transferBody())
	require.NoError(t, err)
	require.NoError(t, tx.Freeze())

	resp, err := tx.Execute(reqContext.Background())
	require.NoError(t, err)
	assert.Equal(t, tx.ID(), resp.TransactionID)
	assert.Equal(t, mockhedera.NodeAccount, resp.Node)
	assert.Equal(t, Executed, tx.State())

	assert.Equal(t, []string{"/proto.CryptoService/cryptoTransfer"}, srv.Methods())
	received := srv.Transactions()
	require.Len(t, received, 1)

	// operator signature first, then one for the operator's transfer entry
	sigs := received[0].Sigs.Sigs
	require.Len(t, sigs, 2)
	bodyBytes, err := proto.Marshal(received[0].Body)
	require.NoError(t, err)
	for _, sig := range sigs {
		assert.True(t, operatorKey.Public().Verify(bodyBytes, sig.Ed25519))
	}
	assert.NoError(t, txn.VerifyEnvelope(tx.Envelope()))

	_, err = tx.Execute(reqContext.Background())
	assert.True(t, status.HasCode(err, status.IllegalStateTransition))
	assert.True(t, status.HasCode(tx.Sign(newKey(t)), status.IllegalStateTransition))
	assert.True(t, status.HasCode(tx.Freeze(), status.IllegalStateTransition))
	assert.Len(t, srv.Transactions(), 1)
}

func TestExecuteOperatorSlot(t *testing.T) {
	srv, conn, stop := startNode(t)
	defer stop()

	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	operatorKey := newKey(t)
	ctx := mockhedera.CustomMockContext(mockCtrl, conn, mockhedera.DefaultMockConfig(mockCtrl), operatorKey)

	tx, err := New(ctx, &FileAppend{File: id.FileID{Num: 150}, Contents: []byte("more")})
	require.NoError(t, err)
	require.NoError(t, tx.Freeze())

	fileKey := newKey(t)
	require.NoError(t, tx.Sign(fileKey))
	assert.NotNil(t, tx.Envelope().Transaction().Sigs.Sigs[0].SignatureList)

	_, err = tx.Execute(reqContext.Background())
	require.NoError(t, err)

	sigs := srv.Transactions()[0].Sigs.Sigs
	require.Len(t, sigs, 2)
	assert.NotEmpty(t, sigs[0].Ed25519)
	assert.NotNil(t, sigs[1].SignatureList)
	assert.Equal(t, operatorKey.PublicKey().Bytes(), tx.Envelope().Signers()[0].Bytes())
	assert.Equal(t, []string{"/proto.FileService/appendContent"}, srv.Methods())
}

func TestExecuteOperatorAlreadySigned(t *testing.T) {
	srv, conn, stop := startNode(t)
	defer stop()

	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	operatorKey := newKey(t)
	ctx := mockhedera.CustomMockContext(mockCtrl, conn, mockhedera.DefaultMockConfig(mockCtrl), operatorKey)

	tx, err := New(ctx, &FileDelete{File: id.FileID{Num: 150}})
	require.NoError(t, err)
	require.NoError(t, tx.Freeze())
	require.NoError(t, tx.Sign(operatorKey))

	_, err = tx.Execute(reqContext.Background())
	require.NoError(t, err)
	assert.Len(t, srv.Transactions()[0].Sigs.Sigs, 1)
}

func TestExecutePrecheck(t *testing.T) {
	srv, conn, stop := startNode(t)
	defer stop()
	srv.TransactionPrecheck = hapi.NodeTransactionPrecheckCode_INSUFFICIENT_FEE

	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	ctx := mockhedera.DefaultMockContext(mockCtrl, conn)
	tx, err := New(ctx, transferBody())
	require.NoError(t, err)
	require.NoError(t, tx.Freeze())
	require.NoError(t, tx.Sign(newKey(t)))

	resp, err := tx.Execute(reqContext.Background())
	assert.Nil(t, resp)
	code, ok := status.IsPrecheck(err)
	require.True(t, ok, "expected precheck error, got %v", err)
	assert.Equal(t, status.PrecheckInsufficientFee, code)
	assert.False(t, status.IsTransport(err))
	assert.Equal(t, Executed, tx.State())
}

func TestExecuteTransportFailure(t *testing.T) {
	srv, conn, stop := startNode(t)
	defer stop()
	srv.TransactionError = grpcstatus.Error(codes.Unavailable, "node is restarting")

	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	ctx := mockhedera.DefaultMockContext(mockCtrl, conn)
	tx, err := New(ctx, transferBody())
	require.NoError(t, err)
	require.NoError(t, tx.Freeze())
	require.NoError(t, tx.Sign(newKey(t)))

	_, err = tx.Execute(reqContext.Background())
	require.Error(t, err)
	assert.True(t, status.IsTransport(err))
	_, ok := status.IsPrecheck(err)
	assert.False(t, ok)
	assert.Equal(t, Executed, tx.State())
}

func TestKind(t *testing.T) {
	assert.Equal(t, "CryptoTransfer", CryptoTransferKind.String())
	assert.Equal(t, "AdminRecover", AdminRecoverKind.String())
	assert.Equal(t, "Unknown", Kind(99).String())

	assert.True(t, nestedSignatures(FileCreateKind, hedera.TransactionConfig{}))
	assert.False(t, nestedSignatures(FileDeleteKind, hedera.TransactionConfig{}))
	assert.True(t, nestedSignatures(FileDeleteKind, hedera.TransactionConfig{NestedSignatures: map[string]bool{"filedelete": true}}))

	assert.Equal(t, "Signed", Signed.String())
}

func TestSignWithOperator(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	operatorKey := newKey(t)
	ctx := mockhedera.CustomMockContext(mockCtrl, mockhedera.NewMockServices(mockCtrl), mockhedera.DefaultMockConfig(mockCtrl), operatorKey)

	tx, err := New(ctx, transferBody())
	require.NoError(t, err)
	assert.True(t, status.HasCode(tx.SignWithOperator(), status.IllegalStateTransition))

	require.NoError(t, tx.Freeze())
	require.NoError(t, tx.SignWithOperator())
	assert.Equal(t, 2, tx.Envelope().SignatureCount())

	require.NoError(t, tx.SignWithOperator())
	assert.Equal(t, 2, tx.Envelope().SignatureCount())
	assert.NoError(t, txn.Verify(tx.Envelope().BodyBytes(), tx.Envelope().Transaction().Sigs, operatorKey.Public()))
}

func TestBodySnapshotDeep(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	operatorKey := newKey(t)
	ctx := mockhedera.CustomMockContext(mockCtrl, mockhedera.NewMockServices(mockCtrl), mockhedera.DefaultMockConfig(mockCtrl), operatorKey)

	body := transferBody()
	tx, err := New(ctx, body)
	require.NoError(t, err)

	body.Transfers[0].Amount = -5
	body.Transfers[1].Amount = 5
	require.NoError(t, tx.Freeze())

	amounts := tx.Envelope().Body().CryptoTransfer.Transfers.AccountAmounts
	require.Len(t, amounts, 2)
	assert.Equal(t, int64(-1000000), amounts[0].Amount)
	assert.Equal(t, int64(1000000), amounts[1].Amount)

	// the caller now lists the operator twice; the frozen bytes list it once
	body.Transfers[1].Account = mockhedera.OperatorAccount
	require.NoError(t, tx.SignWithOperator())
	assert.Equal(t, 2, tx.Envelope().SignatureCount())
	assert.NoError(t, txn.VerifyEnvelope(tx.Envelope()))
}

func TestSignOperatorKeyOnNestedKind(t *testing.T) {
	srv, conn, stop := startNode(t)
	defer stop()

	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	operatorKey := newKey(t)
	ctx := mockhedera.CustomMockContext(mockCtrl, conn, mockhedera.DefaultMockConfig(mockCtrl), operatorKey)

	ownerKey := newKey(t)
	tx, err := New(ctx, &FileCreate{Keys: []hedera.PublicKey{ownerKey.Public()}})
	require.NoError(t, err)
	require.NoError(t, tx.Freeze())

	// a separately loaded copy of the operator key
	sameKey, err := crypto.ParsePrivateKey(operatorKey.String())
	require.NoError(t, err)
	require.NoError(t, tx.Sign(sameKey))
	require.NoError(t, tx.Sign(ownerKey))

	_, err = tx.Execute(reqContext.Background())
	require.NoError(t, err)

	sigs := srv.Transactions()[0].Sigs.Sigs
	require.Len(t, sigs, 2)
	assert.NotEmpty(t, sigs[0].Ed25519)
	assert.Nil(t, sigs[0].SignatureList)
	require.NotNil(t, sigs[1].SignatureList)
	assert.Equal(t, operatorKey.PublicKey().Bytes(), tx.Envelope().Signers()[0].Bytes())
	assert.Equal(t, ownerKey.PublicKey().Bytes(), tx.Envelope().Signers()[1].Bytes())
	assert.NoError(t, txn.VerifyEnvelope(tx.Envelope()))
}

func TestFreezeBodyDefaults(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	ctx := mockhedera.DefaultMockContext(mockCtrl, mockhedera.NewMockServices(mockCtrl))
	operator := mockhedera.OperatorAccount

	freeze := func(t *testing.T, body Body) *hapi.TransactionBody {
		tx, err := New(ctx, body)
		require.NoError(t, err)
		require.NoError(t, tx.Freeze())
		return tx.Envelope().Body()
	}

	t.Run("cryptoDeleteRecipient", func(t *testing.T) {
		data := freeze(t, &CryptoDelete{Account: recipient})
		assert.Equal(t, operator, id.AccountIDFromProto(data.CryptoDelete.TransferAccountID))

		target := id.AccountID{Num: 77}
		data = freeze(t, &CryptoDelete{Account: recipient, TransferAccount: &target})
		assert.Equal(t, target, id.AccountIDFromProto(data.CryptoDelete.TransferAccountID))
	})

	t.Run("contractDeleteRecipient", func(t *testing.T) {
		data := freeze(t, &ContractDelete{Contract: id.ContractID{Num: 1002}})
		assert.Equal(t, operator, id.AccountIDFromProto(data.ContractDeleteInstance.TransferAccountID))
		assert.Nil(t, data.ContractDeleteInstance.TransferContractID)
	})

	t.Run("createAccount", func(t *testing.T) {
		data := freeze(t, &CryptoCreateAccount{Key: newKey(t).Public(), InitialBalance: 10})
		body := data.CryptoCreateAccount
		assert.Equal(t, uint64(math.MaxInt64), body.SendRecordThreshold)
		assert.Equal(t, uint64(math.MaxInt64), body.ReceiveRecordThreshold)
		assert.Equal(t, int64(2592000), body.AutoRenewPeriod.Seconds)

		data = freeze(t, &CryptoCreateAccount{Key: newKey(t).Public(), SendRecordThreshold: 7, AutoRenewPeriod: time.Hour})
		assert.Equal(t, uint64(7), data.CryptoCreateAccount.SendRecordThreshold)
		assert.Equal(t, int64(3600), data.CryptoCreateAccount.AutoRenewPeriod.Seconds)
	})

	t.Run("createContract", func(t *testing.T) {
		data := freeze(t, &ContractCreate{File: id.FileID{Num: 150}})
		assert.Equal(t, int64(2592000), data.ContractCreateInstance.AutoRenewPeriod.Seconds)
	})

	t.Run("adminDeleteExpiration", func(t *testing.T) {
		before := time.Now().Add(time.Minute).Unix()
		data := freeze(t, &AdminDelete{File: &id.FileID{Num: 150}})
		after := time.Now().Add(time.Minute).Unix()

		seconds := data.AdminDelete.ExpirationTime.Seconds
		assert.True(t, seconds >= before && seconds <= after, "expiration %d not within [%d, %d]", seconds, before, after)

		data = freeze(t, &AdminDelete{Contract: &id.ContractID{Num: 1002}, ExpirationTime: id.Timestamp{Seconds: 42}})
		assert.Equal(t, int64(42), data.AdminDelete.ExpirationTime.Seconds)
	})
}
