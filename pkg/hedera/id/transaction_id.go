/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package id

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/golang/protobuf/proto"

	"github.com/hashgraph/hedera-sdk-go/pkg/common/errors/status"
	"github.com/hashgraph/hedera-sdk-go/pkg/hapi"
)

// DefaultValidStartSkew is subtracted from the local clock when generating a
// transaction id so that a node running slightly behind still accepts it.
const DefaultValidStartSkew = 10 * time.Second

// TransactionID identifies a transaction by its payer and valid start
type TransactionID struct {
	Account    AccountID
	ValidStart Timestamp
}

// NewTransactionID generates an id for account starting DefaultValidStartSkew ago
func NewTransactionID(account AccountID) TransactionID {
	return NewTransactionIDWithSkew(account, DefaultValidStartSkew)
}

// NewTransactionIDWithSkew generates an id for account starting skew ago
func NewTransactionIDWithSkew(account AccountID, skew time.Duration) TransactionID {
	return TransactionID{
		Account:    account,
		ValidStart: TimestampFromTime(time.Now().Add(-skew)),
	}
}

// ParseTransactionID parses "{account}@{seconds}.{nanos}". Input without an
// '@' is decoded as the hex encoding of the wire message.
func ParseTransactionID(s string) (TransactionID, error) {
	at := strings.Index(s, "@")
	if at < 0 {
		return decodeTransactionID(s)
	}

	account, err := ParseAccountID(s[:at])
	if err != nil {
		return TransactionID{}, status.NewParseError(s, err)
	}
	validStart, err := ParseTimestamp(s[at+1:])
	if err != nil {
		return TransactionID{}, status.NewParseError(s, err)
	}
	return TransactionID{Account: account, ValidStart: validStart}, nil
}

func decodeTransactionID(s string) (TransactionID, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return TransactionID{}, status.NewParseError(s, err)
	}
	msg := &hapi.TransactionID{}
	if err := proto.Unmarshal(raw, msg); err != nil {
		return TransactionID{}, status.NewParseError(s, err)
	}
	return TransactionIDFromProto(msg), nil
}

func (t TransactionID) String() string {
	return fmt.Sprintf("%s@%s", t.Account, t.ValidStart)
}

// Hex returns the hex encoding of the wire message
func (t TransactionID) Hex() (string, error) {
	raw, err := proto.Marshal(t.ToProto())
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(raw), nil
}

// IsZero returns true if the id was never set
func (t TransactionID) IsZero() bool {
	return t == TransactionID{}
}

// ToProto converts the id to its wire form
func (t TransactionID) ToProto() *hapi.TransactionID {
	return &hapi.TransactionID{
		TransactionValidStart: t.ValidStart.ToProto(),
		AccountID:             t.Account.ToProto(),
	}
}

// TransactionIDFromProto converts the wire form
func TransactionIDFromProto(p *hapi.TransactionID) TransactionID {
	if p == nil {
		return TransactionID{}
	}
	return TransactionID{
		Account:    AccountIDFromProto(p.GetAccountID()),
		ValidStart: TimestampFromProto(p.GetTransactionValidStart()),
	}
}
