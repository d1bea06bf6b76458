/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package transaction

import (
	"strings"

	"github.com/hashgraph/hedera-sdk-go/pkg/common/errors/status"
	"github.com/hashgraph/hedera-sdk-go/pkg/common/providers/context"
	"github.com/hashgraph/hedera-sdk-go/pkg/common/providers/hedera"
	"github.com/hashgraph/hedera-sdk-go/pkg/hedera/id"
)

// Kind identifies the operation a transaction performs
type Kind int

// Operation kinds
const (
	CryptoCreateAccountKind Kind = iota
	CryptoTransferKind
	CryptoUpdateKind
	CryptoDeleteKind
	CryptoAddClaimKind
	CryptoDeleteClaimKind
	FileCreateKind
	FileAppendKind
	FileUpdateKind
	FileDeleteKind
	ContractCreateKind
	ContractUpdateKind
	ContractCallKind
	ContractDeleteKind
	AdminDeleteKind
	AdminRecoverKind
)

var kindNames = []string{
	"CryptoCreateAccount",
	"CryptoTransfer",
	"CryptoUpdate",
	"CryptoDelete",
	"CryptoAddClaim",
	"CryptoDeleteClaim",
	"FileCreate",
	"FileAppend",
	"FileUpdate",
	"FileDelete",
	"ContractCreate",
	"ContractUpdate",
	"ContractCall",
	"ContractDelete",
	"AdminDelete",
	"AdminRecover",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Unknown"
	}
	return kindNames[k]
}

// nestedByDefault lists the kinds whose second and later signatures are
// wrapped in a signature list
var nestedByDefault = map[Kind]bool{
	FileCreateKind: true,
	FileAppendKind: true,
}

// nestedSignatures returns the nested flag for k, with configuration
// overrides keyed by lowercase kind name
func nestedSignatures(k Kind, cfg hedera.TransactionConfig) bool {
	if nested, ok := cfg.NestedSignatures[strings.ToLower(k.String())]; ok {
		return nested
	}
	return nestedByDefault[k]
}

// State is the lifecycle stage of a transaction
type State int

const (
	// Building accepts configuration
	Building State = iota
	// Signed is frozen: the body bytes are fixed and signatures may be added
	Signed
	// Executed has been submitted (successfully or not) and is unusable
	Executed
)

func (s State) String() string {
	switch s {
	case Building:
		return "Building"
	case Signed:
		return "Signed"
	case Executed:
		return "Executed"
	}
	return "Unknown"
}

// Response is returned by a transaction the node admitted
type Response struct {
	TransactionID id.TransactionID
	Node          id.AccountID
}

type settings struct {
	operator       *id.AccountID
	node           *id.AccountID
	signer         hedera.Signer
	memo           string
	fee            uint64
	generateRecord bool
	transactionID  *id.TransactionID
	nested         *bool
}

// Option configures a transaction that is still being built
type Option func(ctx context.Client, s *settings) error

// WithOperator sets the paying account. The client's operator signer no
// longer signs automatically and a new transaction id is generated.
func WithOperator(account id.AccountID) Option {
	return func(ctx context.Client, s *settings) error {
		if account.IsZero() {
			return status.NewMissingField("operator")
		}
		s.operator = &account
		s.signer = nil
		s.transactionID = nil
		return nil
	}
}

// WithNode sets the node account the transaction is submitted to
func WithNode(node id.AccountID) Option {
	return func(ctx context.Client, s *settings) error {
		if node.IsZero() {
			return status.NewMissingField("node")
		}
		s.node = &node
		return nil
	}
}

// WithMemo sets the memo
func WithMemo(memo string) Option {
	return func(ctx context.Client, s *settings) error {
		s.memo = memo
		return nil
	}
}

// WithFee sets the maximum fee in tinybars
func WithFee(fee uint64) Option {
	return func(ctx context.Client, s *settings) error {
		s.fee = fee
		return nil
	}
}

// WithGenerateRecord requests a record in addition to the receipt
func WithGenerateRecord(generate bool) Option {
	return func(ctx context.Client, s *settings) error {
		s.generateRecord = generate
		return nil
	}
}

// WithTransactionID sets the transaction id instead of generating one from the operator
func WithTransactionID(txID id.TransactionID) Option {
	return func(ctx context.Client, s *settings) error {
		if txID.IsZero() {
			return status.NewMissingField("transaction id")
		}
		s.transactionID = &txID
		return nil
	}
}

// WithNestedSignatures overrides whether signatures after the first are
// wrapped in a signature list
func WithNestedSignatures(nested bool) Option {
	return func(ctx context.Client, s *settings) error {
		s.nested = &nested
		return nil
	}
}
