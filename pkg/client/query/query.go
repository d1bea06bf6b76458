/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package query requests ledger state from a node.
//
// Every query supports two round trips: Cost asks the node for the fee of
// the query and Answer asks for the answer itself. Queries other than the
// balance and receipt queries must carry a payment, a signed crypto transfer
// to the node covering the fee. Nothing is cached: each call sends a new
// request.
package query

import (
	reqContext "context"
	"time"

	"github.com/pkg/errors"

	"github.com/hashgraph/hedera-sdk-go/pkg/client/transaction"
	"github.com/hashgraph/hedera-sdk-go/pkg/common/errors/status"
	"github.com/hashgraph/hedera-sdk-go/pkg/common/logging"
	"github.com/hashgraph/hedera-sdk-go/pkg/common/providers/context"
	"github.com/hashgraph/hedera-sdk-go/pkg/hapi"
	"github.com/hashgraph/hedera-sdk-go/pkg/hedera/metrics"
	"github.com/hashgraph/hedera-sdk-go/pkg/hedera/txn"
)

var logger = logging.NewLogger("client/query")

// Query is a request for ledger state
type Query struct {
	ctx     context.Client
	body    Body
	payment *hapi.Transaction
}

// New returns a query for body
func New(ctx context.Client, body Body) (*Query, error) {
	if ctx == nil {
		return nil, errors.New("client context is required")
	}
	if body == nil {
		return nil, status.NewMissingField("body")
	}
	return &Query{ctx: ctx, body: body}, nil
}

// Kind returns the query kind
func (q *Query) Kind() Kind {
	return q.body.Kind()
}

// SetPayment attaches the transaction paying for the query. It must be a
// frozen crypto transfer that was not executed. The client's operator
// signature is added to it if missing.
func (q *Query) SetPayment(tx *transaction.Transaction) error {
	if tx == nil {
		return status.New(status.ClientStatus, status.InvalidPayment.ToInt32(), "payment transaction is required", nil)
	}
	if tx.State() != transaction.Signed {
		return status.NewIllegalStateTransition("payment transaction must be signed and not executed, it is %s", tx.State())
	}
	if tx.Kind() != transaction.CryptoTransferKind {
		return status.New(status.ClientStatus, status.InvalidPayment.ToInt32(),
			"payment must be a crypto transfer", []interface{}{tx.Kind().String()})
	}
	if err := tx.SignWithOperator(); err != nil {
		return err
	}

	q.payment = tx.Envelope().Transaction()
	return nil
}

// Cost returns the fee the node charges to answer the query
func (q *Query) Cost(reqCtx reqContext.Context) (uint64, error) {
	_, header, err := q.send(reqCtx, hapi.ResponseType_COST_ANSWER)
	if err != nil {
		return 0, err
	}
	return header.Cost, nil
}

// Answer returns the typed answer of the query. The concrete type is given
// by the documentation of each Body.
func (q *Query) Answer(reqCtx reqContext.Context) (interface{}, error) {
	resp, _, err := q.send(reqCtx, hapi.ResponseType_ANSWER_ONLY)
	if err != nil {
		return nil, err
	}
	return q.body.decode(resp)
}

func (q *Query) send(reqCtx reqContext.Context, mode hapi.ResponseType) (*hapi.Response, *hapi.ResponseHeader, error) {
	kind := q.Kind().String()
	m := q.metrics()

	resp, header, err := q.roundTrip(reqCtx, mode)
	if err != nil {
		m.QueriesFailed.With("kind", kind, "mode", mode.String(), "fail", metrics.FailureLabel(err)).Add(1)
		return nil, nil, err
	}
	return resp, header, nil
}

func (q *Query) roundTrip(reqCtx reqContext.Context, mode hapi.ResponseType) (*hapi.Response, *hapi.ResponseHeader, error) {
	request, err := q.body.build()
	if err != nil {
		return nil, nil, errors.WithMessagef(err, "invalid %s query", q.Kind())
	}
	if err := txn.SetQueryHeader(request, &hapi.QueryHeader{Payment: q.payment, ResponseType: mode}); err != nil {
		return nil, nil, err
	}

	kind := q.Kind().String()
	m := q.metrics()
	m.QueriesReceived.With("kind", kind, "mode", mode.String()).Add(1)

	start := time.Now()
	resp, header, err := txn.SendQuery(reqCtx, q.ctx.Services(), request)
	m.QueryDuration.With("kind", kind, "mode", mode.String()).Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, nil, err
	}

	code := header.GetNodeTransactionPrecheckCode()
	if mode == hapi.ResponseType_COST_ANSWER && code == hapi.NodeTransactionPrecheckCode_INVALID_TRANSACTION && costWithoutPayment[q.Kind()] {
		logger.Debugf("%s cost reported with precheck %s", q.Kind(), code)
		return resp, header, nil
	}
	if err := txn.CheckPrecheck(code, q.nodeName()); err != nil {
		return nil, nil, err
	}
	return resp, header, nil
}

func (q *Query) nodeName() string {
	if node, ok := q.ctx.Node(); ok {
		return node.String()
	}
	return "unknown"
}

func (q *Query) metrics() *metrics.ClientMetrics {
	if m := q.ctx.Metrics(); m != nil {
		return m
	}
	return metrics.NewDisabledClientMetrics()
}
