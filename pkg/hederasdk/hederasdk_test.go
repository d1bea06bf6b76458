/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package hederasdk

import (
	reqContext "context"
	"fmt"
	"math"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/hashgraph/hedera-sdk-go/pkg/client/query"
	"github.com/hashgraph/hedera-sdk-go/pkg/client/transaction"
	"github.com/hashgraph/hedera-sdk-go/pkg/common/errors/status"
	"github.com/hashgraph/hedera-sdk-go/pkg/common/providers/test/mockhedera"
	"github.com/hashgraph/hedera-sdk-go/pkg/core/config"
	"github.com/hashgraph/hedera-sdk-go/pkg/core/crypto"
	"github.com/hashgraph/hedera-sdk-go/pkg/hapi"
	"github.com/hashgraph/hedera-sdk-go/pkg/hedera/id"
	"github.com/hashgraph/hedera-sdk-go/pkg/hedera/mocks"
)

const operatorKey = "302e020100300506032b657004220420db484b828e64b2d8f12ce3c0a0e93a0b8cce7af1bb8f39c97732394482538e10"

const configTemplate = `
client:
  logging:
    level: info
  network:
    address: %s
    node: 0:0:3
  operator:
    account: 0:0:2
    privateKey: %s
  connection:
    timeout: 5s
    allowInsecure: true
  metrics:
    enabled: %t
    namespace: hedera_test
`

var recipient = id.AccountID{Num: 1001}

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func configFor(address string, metricsEnabled bool) []byte {
	return []byte(fmt.Sprintf(configTemplate, address, operatorKey, metricsEnabled))
}

func newClient(t *testing.T, metricsEnabled bool, opts ...Option) (*mocks.MockNodeServer, *Client, func()) {
	srv := &mocks.MockNodeServer{}
	addr := srv.Start("127.0.0.1:0")

	c, err := New(config.FromRaw(configFor(addr, metricsEnabled), "yaml"), opts...)
	if err != nil {
		srv.Stop()
		t.Fatalf("error creating client: %s", err)
	}
	return srv, c, func() {
		c.Close()
		srv.Stop()
	}
}

func TestNewFromConfig(t *testing.T) {
	_, c, stop := newClient(t, false)
	defer stop()

	operator, ok := c.Operator()
	require.True(t, ok)
	assert.Equal(t, id.AccountID{Num: 2}, operator)

	node, ok := c.Node()
	require.True(t, ok)
	assert.Equal(t, id.AccountID{Num: 3}, node)

	signer, ok := c.OperatorSigner()
	require.True(t, ok)
	key, err := crypto.ParsePrivateKey(operatorKey)
	require.NoError(t, err)
	assert.Equal(t, key.Public().Bytes(), signer.PublicKey().Bytes())

	assert.NotNil(t, c.Services())
	assert.NotNil(t, c.Metrics())
	assert.Equal(t, uint64(100000), c.EndpointConfig().TransactionConfig().DefaultFee)

	ctx, err := c.ClientProvider()()
	require.NoError(t, err)
	assert.Equal(t, c, ctx)
}

func TestNewOptions(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	services := mockhedera.NewMockServices(mockCtrl)
	signer := mockhedera.NewMockSigner(mockCtrl)
	operator := id.AccountID{Num: 50}
	node := id.AccountID{Num: 4}

	c, err := New(config.FromRaw(configFor("", false), "yaml"),
		WithServices(services), WithOperator(operator, signer), WithNode(node))
	require.NoError(t, err)
	defer c.Close()

	assert.Equal(t, services, c.Services())
	a, _ := c.Operator()
	assert.Equal(t, operator, a)
	s, ok := c.OperatorSigner()
	require.True(t, ok)
	assert.Equal(t, signer, s)
	n, _ := c.Node()
	assert.Equal(t, node, n)

	// the configured key belongs to the configured operator, not to this one
	c, err = New(config.FromRaw(configFor("", false), "yaml"), WithServices(services), WithOperator(operator, nil))
	require.NoError(t, err)
	_, ok = c.OperatorSigner()
	assert.False(t, ok)
}

func TestNewErrors(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)

	_, err = New(config.FromRaw(configFor("", false), "yaml"))
	name, ok := status.MissingFieldName(err)
	require.True(t, ok, "expected missing field, got %v", err)
	assert.Equal(t, "client.network.address", name)

	_, err = New(config.FromRaw(configFor("127.0.0.1:1", false), "yaml"), WithOperator(id.AccountID{}, nil))
	name, ok = status.MissingFieldName(err)
	require.True(t, ok)
	assert.Equal(t, "operator", name)

	_, err = New(config.FromRaw(configFor("127.0.0.1:1", false), "yaml"), WithNode(id.AccountID{}))
	name, ok = status.MissingFieldName(err)
	require.True(t, ok)
	assert.Equal(t, "node", name)

	_, err = New(config.FromRaw([]byte("client:\n  operator:\n    privateKey: zz\n    account: 0:0:2\n"), "yaml"))
	assert.Error(t, err)
}

func TestTransferAndReceipt(t *testing.T) {
	srv, c, stop := newClient(t, false)
	defer stop()

	tx, err := c.CryptoTransfer(recipient, 1000000, transaction.WithMemo("hello"))
	require.NoError(t, err)
	require.NoError(t, tx.Freeze())

	resp, err := tx.Execute(reqContext.Background())
	require.NoError(t, err)
	assert.Equal(t, tx.ID(), resp.TransactionID)
	assert.Equal(t, id.AccountID{Num: 3}, resp.Node)

	require.Len(t, srv.Transactions(), 1)
	sent := srv.Transactions()[0]
	// operator slot plus the co-signature for the debited operator account
	assert.Len(t, sent.Sigs.Sigs, 2)
	assert.Equal(t, "/proto.CryptoService/cryptoTransfer", srv.Methods()[0])

	q, err := c.TransactionReceipt(resp.TransactionID)
	require.NoError(t, err)
	receipt, err := q.Get(reqContext.Background())
	require.NoError(t, err)
	assert.Equal(t, hapi.ResponseCodeEnum_SUCCESS, receipt.Status)
}

func TestCreateAccount(t *testing.T) {
	srv, c, stop := newClient(t, false)
	defer stop()

	key, err := crypto.GeneratePrivateKey()
	require.NoError(t, err)

	tx, err := c.CreateAccount(key.Public(), 5000)
	require.NoError(t, err)
	assert.Equal(t, transaction.CryptoCreateAccountKind, tx.Kind())
	require.NoError(t, tx.Freeze())
	_, err = tx.Execute(reqContext.Background())
	require.NoError(t, err)

	require.Len(t, srv.Transactions(), 1)
	body := srv.Transactions()[0].Body
	require.NotNil(t, body.CryptoCreateAccount)
	assert.Equal(t, uint64(5000), body.CryptoCreateAccount.InitialBalance)
}

func TestPaidQuery(t *testing.T) {
	srv, c, stop := newClient(t, false)
	defer stop()
	srv.Cost = 25

	q, err := c.AccountBalance(recipient)
	require.NoError(t, err)

	cost, err := q.Cost(reqContext.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(25), cost)

	payment, err := c.QueryPayment(cost)
	require.NoError(t, err)
	assert.Equal(t, transaction.Signed, payment.State())
	require.NoError(t, q.SetPayment(payment))

	_, err = q.Get(reqContext.Background())
	require.NoError(t, err)

	queries := srv.Queries()
	require.Len(t, queries, 2)
	paid := queries[1].CryptogetAccountBalance.Header.Payment
	require.NotNil(t, paid)
	transfers := paid.Body.CryptoTransfer.Transfers.AccountAmounts
	require.Len(t, transfers, 2)
	assert.Equal(t, int64(-25), transfers[0].Amount)
	assert.Equal(t, int64(25), transfers[1].Amount)
	assert.Equal(t, id.AccountID{Num: 3}, id.AccountIDFromProto(transfers[1].AccountID))
}

func TestGenericFactories(t *testing.T) {
	srv, c, stop := newClient(t, false)
	defer stop()

	tx, err := c.NewTransaction(&transaction.FileDelete{File: id.FileID{Num: 150}})
	require.NoError(t, err)
	require.NoError(t, tx.Freeze())
	_, err = tx.Execute(reqContext.Background())
	require.NoError(t, err)
	assert.Equal(t, "/proto.FileService/deleteFile", srv.Methods()[0])

	q, err := c.NewQuery(&query.FileGetContents{File: id.FileID{Num: 150}})
	require.NoError(t, err)
	assert.Equal(t, query.FileGetContentsKind, q.Kind())

	r, err := c.TransactionRecord(tx.ID())
	require.NoError(t, err)
	assert.Equal(t, query.TransactionGetRecordKind, r.Kind())
}

func TestMetricsEnabled(t *testing.T) {
	registry := prometheus.NewRegistry()
	srv, c, stop := newClient(t, true, WithMetricsRegisterer(registry))
	defer stop()
	srv.TransactionPrecheck = hapi.NodeTransactionPrecheckCode_INSUFFICIENT_FEE

	tx, err := c.CryptoTransfer(recipient, 10)
	require.NoError(t, err)
	require.NoError(t, tx.Freeze())
	_, err = tx.Execute(reqContext.Background())
	code, ok := status.IsPrecheck(err)
	require.True(t, ok)
	assert.Equal(t, status.PrecheckInsufficientFee, code)

	families, err := registry.Gather()
	require.NoError(t, err)

	counts := make(map[string]float64)
	for _, f := range families {
		for _, m := range f.GetMetric() {
			if m.GetCounter() != nil {
				counts[f.GetName()] += m.GetCounter().GetValue()
			}
		}
	}
	assert.Equal(t, float64(1), counts["hedera_test_client_transactions_received"])
	assert.Equal(t, float64(1), counts["hedera_test_client_transactions_failed"])
}

func TestQueryPaymentWithoutOperator(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	c, err := New(config.FromRaw([]byte("client:\n  network:\n    node: 0:0:3\n"), "yaml"),
		WithServices(mockhedera.NewMockServices(mockCtrl)))
	require.NoError(t, err)

	_, err = c.QueryPayment(10)
	name, ok := status.MissingFieldName(err)
	require.True(t, ok)
	assert.Equal(t, "operator", name)

	_, err = c.CryptoTransfer(recipient, 10)
	name, _ = status.MissingFieldName(err)
	assert.Equal(t, "operator", name)
}

func TestClientsShareDefaultRegisterer(t *testing.T) {
	srv := &mocks.MockNodeServer{}
	addr := srv.Start("127.0.0.1:0")
	defer srv.Stop()

	var clients []*Client
	for i := 0; i < 2; i++ {
		require.NotPanics(t, func() {
			c, err := New(config.FromRaw(configFor(addr, true), "yaml"))
			require.NoError(t, err)
			clients = append(clients, c)
		})
	}
	for _, c := range clients {
		c.Close()
	}
	require.Len(t, clients, 2)
}

func TestTransferAmountBounds(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	c, err := New(config.FromRaw(configFor("", false), "yaml"), WithServices(mockhedera.NewMockServices(mockCtrl)))
	require.NoError(t, err)

	_, err = c.QueryPayment(math.MaxInt64 + 1)
	assert.Error(t, err)

	_, err = c.CryptoTransfer(recipient, math.MinInt64)
	assert.Error(t, err)

	payment, err := c.QueryPayment(math.MaxInt64)
	require.NoError(t, err)
	transfers := payment.Envelope().Body().CryptoTransfer.Transfers.AccountAmounts
	assert.Equal(t, int64(-math.MaxInt64), transfers[0].Amount)
	assert.Equal(t, int64(math.MaxInt64), transfers[1].Amount)
}
