/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package txn

import (
	"bytes"

	"github.com/golang/protobuf/proto"
	"github.com/pkg/errors"

	"github.com/hashgraph/hedera-sdk-go/pkg/common/errors/status"
	"github.com/hashgraph/hedera-sdk-go/pkg/common/logging"
	"github.com/hashgraph/hedera-sdk-go/pkg/common/providers/hedera"
	"github.com/hashgraph/hedera-sdk-go/pkg/hapi"
)

var logger = logging.NewLogger("hedera/txn")

// Envelope is a frozen transaction body, its canonical bytes and the
// signatures collected over those bytes. The i-th signer is the key that
// produced the i-th signature of the list.
type Envelope struct {
	bodyBytes []byte
	tx        *hapi.Transaction
	signers   []hedera.PublicKey
}

// NewEnvelope freezes body. Later changes to body are not reflected in the
// canonical bytes, so callers must not modify it.
func NewEnvelope(body *hapi.TransactionBody) (*Envelope, error) {
	if body == nil {
		return nil, errors.New("transaction body is required")
	}
	bodyBytes, err := proto.Marshal(body)
	if err != nil {
		return nil, errors.Wrap(err, "marshal of transaction body failed")
	}
	return &Envelope{
		bodyBytes: bodyBytes,
		tx:        &hapi.Transaction{Body: body, Sigs: &hapi.SignatureList{}},
	}, nil
}

// BodyBytes returns the canonical bytes all signatures are computed over
func (e *Envelope) BodyBytes() []byte {
	return e.bodyBytes
}

// Body returns the frozen body
func (e *Envelope) Body() *hapi.TransactionBody {
	return e.tx.GetBody()
}

// Transaction returns the wire message
func (e *Envelope) Transaction() *hapi.Transaction {
	return e.tx
}

// Signers returns the public keys of the signatures in list order
func (e *Envelope) Signers() []hedera.PublicKey {
	return append([]hedera.PublicKey(nil), e.signers...)
}

// SignatureCount returns the number of entries in the signature list
func (e *Envelope) SignatureCount() int {
	return len(e.tx.GetSigs().GetSigs())
}

// SignedBy returns true if key already produced a signature
func (e *Envelope) SignedBy(key hedera.PublicKey) bool {
	for _, s := range e.signers {
		if bytes.Equal(s.Bytes(), key.Bytes()) {
			return true
		}
	}
	return false
}

// AppendSignature signs the body and appends the signature. When nested is
// set the signature is wrapped in its own signature list.
func (e *Envelope) AppendSignature(signer hedera.Signer, nested bool) error {
	return e.InsertSignature(e.SignatureCount(), signer, nested)
}

// InsertSignature signs the body and inserts the signature at index
func (e *Envelope) InsertSignature(index int, signer hedera.Signer, nested bool) error {
	if index < 0 || index > e.SignatureCount() {
		return errors.Errorf("signature index %d out of range", index)
	}

	sig, err := signature(signer, e.bodyBytes, nested)
	if err != nil {
		return err
	}

	sigs := e.tx.Sigs.Sigs
	sigs = append(sigs, nil)
	copy(sigs[index+1:], sigs[index:])
	sigs[index] = sig
	e.tx.Sigs.Sigs = sigs

	e.signers = append(e.signers, nil)
	copy(e.signers[index+1:], e.signers[index:])
	e.signers[index] = signer.PublicKey()

	logger.Debugf("signature added at %d of %d (nested: %t)", index, len(sigs), nested)
	return nil
}

// Marshal returns the wire encoding of the signed transaction
func (e *Envelope) Marshal() ([]byte, error) {
	b, err := proto.Marshal(e.tx)
	if err != nil {
		return nil, errors.Wrap(err, "marshal of transaction failed")
	}
	return b, nil
}

func signature(signer hedera.Signer, message []byte, nested bool) (*hapi.Signature, error) {
	if signer == nil {
		return nil, errors.New("signer is required")
	}
	raw, err := signer.Sign(message)
	if err != nil {
		return nil, status.New(status.ClientStatus, status.SigningFailed.ToInt32(), err.Error(), nil)
	}

	sig := &hapi.Signature{Ed25519: raw}
	if nested {
		return &hapi.Signature{SignatureList: &hapi.SignatureList{Sigs: []*hapi.Signature{sig}}}, nil
	}
	return sig, nil
}

// Verify checks that each key produced a valid ed25519 signature over
// bodyBytes, either directly in sigs or inside a nested signature list.
func Verify(bodyBytes []byte, sigs *hapi.SignatureList, keys ...hedera.PublicKey) error {
	raw := flatten(sigs, nil)
	for _, key := range keys {
		if !verifiedByAny(key, bodyBytes, raw) {
			return status.New(status.ClientStatus, status.SignatureVerificationFailed.ToInt32(),
				"no valid signature found for key", []interface{}{key.Bytes()})
		}
	}
	return nil
}

// VerifyEnvelope checks every signature of e against the key recorded for it
func VerifyEnvelope(e *Envelope) error {
	for i, sig := range e.tx.GetSigs().GetSigs() {
		if !verifiedByAny(e.signers[i], e.bodyBytes, flatten(&hapi.SignatureList{Sigs: []*hapi.Signature{sig}}, nil)) {
			return status.New(status.ClientStatus, status.SignatureVerificationFailed.ToInt32(),
				"signature does not match its signer", []interface{}{i})
		}
	}
	return nil
}

func verifiedByAny(key hedera.PublicKey, message []byte, sigs [][]byte) bool {
	for _, s := range sigs {
		if key.Verify(message, s) {
			return true
		}
	}
	return false
}

func flatten(list *hapi.SignatureList, out [][]byte) [][]byte {
	for _, s := range list.GetSigs() {
		switch {
		case s.SignatureList != nil:
			out = flatten(s.SignatureList, out)
		case s.ThresholdSignature != nil:
			out = flatten(s.ThresholdSignature.Sigs, out)
		case len(s.Ed25519) > 0:
			out = append(out, s.Ed25519)
		}
	}
	return out
}
