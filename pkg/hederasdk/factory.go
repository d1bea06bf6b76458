/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package hederasdk

import (
	"math"

	"github.com/pkg/errors"

	"github.com/hashgraph/hedera-sdk-go/pkg/client/query"
	"github.com/hashgraph/hedera-sdk-go/pkg/client/transaction"
	"github.com/hashgraph/hedera-sdk-go/pkg/common/errors/status"
	"github.com/hashgraph/hedera-sdk-go/pkg/common/providers/hedera"
	"github.com/hashgraph/hedera-sdk-go/pkg/hedera/id"
)

// NewTransaction returns a transaction for body in the Building state
func (c *Client) NewTransaction(body transaction.Body, opts ...transaction.Option) (*transaction.Transaction, error) {
	return transaction.New(c, body, opts...)
}

// NewQuery returns a query for body
func (c *Client) NewQuery(body query.Body) (*query.Query, error) {
	return query.New(c, body)
}

// CreateAccount returns a transaction creating an account owned by key
// with the given initial balance
func (c *Client) CreateAccount(key hedera.PublicKey, initialBalance uint64, opts ...transaction.Option) (*transaction.Transaction, error) {
	return c.NewTransaction(&transaction.CryptoCreateAccount{Key: key, InitialBalance: initialBalance}, opts...)
}

// CryptoTransfer returns a transaction moving amount from the operator to
// recipient
func (c *Client) CryptoTransfer(recipient id.AccountID, amount int64, opts ...transaction.Option) (*transaction.Transaction, error) {
	operator, ok := c.Operator()
	if !ok {
		return nil, status.NewMissingField("operator")
	}
	if amount == math.MinInt64 {
		return nil, errors.Errorf("transfer amount %d cannot be negated", amount)
	}
	body := (&transaction.CryptoTransfer{}).
		AddTransfer(operator, -amount).
		AddTransfer(recipient, amount)
	return c.NewTransaction(body, opts...)
}

// AccountBalance returns a query for the balance of account
func (c *Client) AccountBalance(account id.AccountID) (*query.AccountBalanceQuery, error) {
	return query.NewAccountBalance(c, account)
}

// TransactionReceipt returns a query for the receipt of txID
func (c *Client) TransactionReceipt(txID id.TransactionID) (*query.ReceiptQuery, error) {
	return query.NewReceipt(c, txID)
}

// TransactionRecord returns a query for the record of txID
func (c *Client) TransactionRecord(txID id.TransactionID) (*query.RecordQuery, error) {
	return query.NewRecord(c, txID)
}

// QueryPayment returns a frozen transfer of amount from the operator to the
// node, ready to be attached to a query with SetPayment
func (c *Client) QueryPayment(amount uint64) (*transaction.Transaction, error) {
	node, ok := c.Node()
	if !ok {
		return nil, status.NewMissingField("node")
	}
	if amount > math.MaxInt64 {
		return nil, errors.Errorf("query payment %d exceeds the largest transfer amount", amount)
	}
	tx, err := c.CryptoTransfer(node, int64(amount))
	if err != nil {
		return nil, err
	}
	if err := tx.Freeze(); err != nil {
		return nil, errors.WithMessage(err, "failed to freeze query payment")
	}
	return tx, nil
}
