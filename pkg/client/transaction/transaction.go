/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package transaction builds, signs and submits ledger transactions.
//
// A Transaction is created in the Building state, where its options and
// operation body may be changed. Freeze serializes the body and moves the
// transaction to Signed; from then on only signatures may be added. Execute
// submits the envelope once and moves the transaction to Executed whatever
// the outcome.
//
// Basic Flow:
// 1) Create a transaction with New or a client factory method
// 2) Freeze the transaction
// 3) Sign it with every key the operation requires
// 4) Execute it and query the receipt of the returned transaction id
package transaction

import (
	"bytes"
	reqContext "context"
	"time"

	"github.com/pkg/errors"

	"github.com/hashgraph/hedera-sdk-go/pkg/common/errors/status"
	"github.com/hashgraph/hedera-sdk-go/pkg/common/logging"
	"github.com/hashgraph/hedera-sdk-go/pkg/common/providers/context"
	"github.com/hashgraph/hedera-sdk-go/pkg/common/providers/hedera"
	"github.com/hashgraph/hedera-sdk-go/pkg/hapi"
	"github.com/hashgraph/hedera-sdk-go/pkg/hedera/id"
	"github.com/hashgraph/hedera-sdk-go/pkg/hedera/metrics"
	"github.com/hashgraph/hedera-sdk-go/pkg/hedera/txn"
)

var logger = logging.NewLogger("client/transaction")

const (
	// DefaultFee is the maximum fee in tinybars when none is configured
	DefaultFee = uint64(100000)

	// DefaultValidDuration is the time a transaction stays valid after its valid start
	DefaultValidDuration = 120 * time.Second
)

// Transaction is a single ledger operation and its signatures
type Transaction struct {
	ctx      context.Client
	state    State
	settings settings
	body     Body
	txID     id.TransactionID
	env      *txn.Envelope
}

// New returns a transaction in the Building state. The operator, node and
// operator signer default to those of the client.
func New(ctx context.Client, body Body, opts ...Option) (*Transaction, error) {
	if ctx == nil {
		return nil, errors.New("client context is required")
	}

	t := &Transaction{ctx: ctx, state: Building}

	t.settings.fee = t.config().DefaultFee
	if t.settings.fee == 0 {
		t.settings.fee = DefaultFee
	}
	if operator, ok := ctx.Operator(); ok {
		t.settings.operator = &operator
	}
	if node, ok := ctx.Node(); ok {
		t.settings.node = &node
	}
	if signer, ok := ctx.OperatorSigner(); ok {
		t.settings.signer = signer
	}

	if err := t.SetBody(body); err != nil {
		return nil, err
	}
	if err := t.Configure(opts...); err != nil {
		return nil, err
	}
	return t, nil
}

// Configure applies opts. Only allowed while Building.
func (t *Transaction) Configure(opts ...Option) error {
	if t.state != Building {
		return status.NewIllegalStateTransition("transaction %s cannot be configured in state %s", t.Kind(), t.state)
	}

	s := t.settings
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(t.ctx, &s); err != nil {
			return errors.WithMessage(err, "failed to apply transaction option")
		}
	}
	t.settings = s
	return nil
}

// SetBody replaces the operation. Only allowed while Building.
func (t *Transaction) SetBody(body Body) error {
	if t.state != Building {
		return status.NewIllegalStateTransition("transaction %s body cannot be replaced in state %s", t.Kind(), t.state)
	}

	b, err := snapshot(body)
	if err != nil {
		return err
	}
	t.body = b
	return nil
}

// Freeze serializes the body and moves the transaction to Signed. Freezing a
// Signed transaction does nothing. On failure the transaction is unchanged.
func (t *Transaction) Freeze() error {
	switch t.state {
	case Signed:
		return nil
	case Executed:
		return status.NewIllegalStateTransition("transaction %s was already executed", t.Kind())
	}

	if t.settings.operator == nil {
		return status.NewMissingField("operator")
	}
	if t.settings.node == nil {
		return status.NewMissingField("node")
	}
	operator := *t.settings.operator

	cfg := t.config()

	txID := id.NewTransactionIDWithSkew(operator, skew(cfg))
	if t.settings.transactionID != nil {
		txID = *t.settings.transactionID
	}

	validDuration := cfg.ValidDuration
	if validDuration <= 0 {
		validDuration = DefaultValidDuration
	}

	data := &hapi.TransactionBody{
		TransactionID:            txID.ToProto(),
		NodeAccountID:            t.settings.node.ToProto(),
		TransactionFee:           t.settings.fee,
		TransactionValidDuration: id.DurationToProto(validDuration),
		GenerateRecord:           t.settings.generateRecord,
		Memo:                     t.settings.memo,
	}
	if err := t.body.build(data, operator); err != nil {
		return errors.WithMessagef(err, "freeze of %s failed", t.Kind())
	}

	env, err := txn.NewEnvelope(data)
	if err != nil {
		return err
	}

	t.txID = txID
	t.env = env
	t.state = Signed
	logger.Debugf("transaction %s frozen as %s", t.Kind(), txID)
	return nil
}

// Sign appends the signature of signer. Only allowed once frozen and before
// execution.
func (t *Transaction) Sign(signer hedera.Signer) error {
	if t.state != Signed {
		return status.NewIllegalStateTransition("transaction %s cannot be signed in state %s", t.Kind(), t.state)
	}
	if signer == nil {
		return errors.New("signer is required")
	}

	if t.isOperatorKey(signer) && !t.env.SignedBy(signer.PublicKey()) {
		return t.signWithOperator()
	}

	// slot 0 belongs to the operator signature when it is added at execution
	first := t.env.SignatureCount() == 0 && t.settings.signer == nil
	return t.env.AppendSignature(signer, t.nested() && !first)
}

// Execute submits the transaction. The transaction is Executed afterwards
// even if the node rejected it or it never reached the node.
func (t *Transaction) Execute(reqCtx reqContext.Context) (*Response, error) {
	if t.state != Signed {
		return nil, status.NewIllegalStateTransition("transaction %s cannot be executed in state %s", t.Kind(), t.state)
	}
	t.state = Executed

	kind := t.Kind().String()
	m := t.metrics()

	if err := t.signWithOperator(); err != nil {
		m.TransactionsFailed.With("kind", kind, "fail", metrics.FailureLabel(err)).Add(1)
		return nil, err
	}

	m.TransactionsReceived.With("kind", kind).Add(1)
	start := time.Now()
	_, err := txn.Send(reqCtx, t.ctx.Services(), t.env.Transaction())
	m.TransactionDuration.With("kind", kind).Observe(time.Since(start).Seconds())
	if err != nil {
		m.TransactionsFailed.With("kind", kind, "fail", metrics.FailureLabel(err)).Add(1)
		return nil, err
	}

	logger.Debugf("transaction %s admitted by node %s", t.txID, t.settings.node)
	return &Response{TransactionID: t.txID, Node: *t.settings.node}, nil
}

// SignWithOperator adds the signatures of the client's operator signer now
// instead of at execution. Transactions that are never executed, such as
// query payments, need it. It does nothing without an operator signer.
func (t *Transaction) SignWithOperator() error {
	if t.state != Signed {
		return status.NewIllegalStateTransition("transaction %s cannot be signed in state %s", t.Kind(), t.state)
	}
	return t.signWithOperator()
}

// signWithOperator inserts the operator signature first, unless the operator
// key already signed. A transfer also carries one operator signature per
// transfer entry of the paying account.
func (t *Transaction) signWithOperator() error {
	signer := t.settings.signer
	if signer == nil || t.env.SignedBy(signer.PublicKey()) {
		return nil
	}

	// counted from the signed bytes so later edits to the caller's body cannot change it
	for _, aa := range t.env.Body().GetCryptoTransfer().GetTransfers().GetAccountAmounts() {
		if id.AccountIDFromProto(aa.GetAccountID()) != t.txID.Account {
			continue
		}
		if err := t.env.AppendSignature(signer, false); err != nil {
			return err
		}
	}
	return t.env.InsertSignature(0, signer, false)
}

func (t *Transaction) isOperatorKey(signer hedera.Signer) bool {
	operator := t.settings.signer
	if operator == nil {
		return false
	}
	return bytes.Equal(operator.PublicKey().Bytes(), signer.PublicKey().Bytes())
}

// Kind returns the operation kind
func (t *Transaction) Kind() Kind {
	if t.body == nil {
		return Kind(-1)
	}
	return t.body.Kind()
}

// State returns the lifecycle state
func (t *Transaction) State() State {
	return t.state
}

// ID returns the transaction id. It is zero until the transaction is frozen.
func (t *Transaction) ID() id.TransactionID {
	return t.txID
}

// Envelope returns the signed envelope, or nil while Building
func (t *Transaction) Envelope() *txn.Envelope {
	return t.env
}

// Bytes returns the wire encoding of the signed transaction
func (t *Transaction) Bytes() ([]byte, error) {
	if t.env == nil {
		return nil, status.NewIllegalStateTransition("transaction %s is not frozen", t.Kind())
	}
	return t.env.Marshal()
}

func (t *Transaction) nested() bool {
	if t.settings.nested != nil {
		return *t.settings.nested
	}
	return nestedSignatures(t.Kind(), t.config())
}

func (t *Transaction) config() hedera.TransactionConfig {
	if cfg := t.ctx.EndpointConfig(); cfg != nil {
		return cfg.TransactionConfig()
	}
	return hedera.TransactionConfig{}
}

func (t *Transaction) metrics() *metrics.ClientMetrics {
	if m := t.ctx.Metrics(); m != nil {
		return m
	}
	return metrics.NewDisabledClientMetrics()
}

func skew(cfg hedera.TransactionConfig) time.Duration {
	if cfg.ValidStartSkew > 0 {
		return cfg.ValidStartSkew
	}
	return id.DefaultValidStartSkew
}
