/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package status

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	grpccodes "google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"

	"github.com/hashgraph/hedera-sdk-go/pkg/common/errors/multi"
	"github.com/hashgraph/hedera-sdk-go/pkg/hapi"
)

func TestStatusConstructors(t *testing.T) {
	s := New(ClientStatus, ConnectionFailed.ToInt32(), "test", nil)
	assert.NotNil(t, s, "Expected status to be constructed")
	assert.EqualValues(t, ConnectionFailed, ToSDKStatusCode(s.Code))
	assert.Equal(t, ClientStatus, s.Group)
	assert.Equal(t, "test", s.Message, "Expected test message")

	s = NewFromGRPCStatus(nil)
	assert.Nil(t, s)
	s = NewFromGRPCStatus(grpcstatus.New(grpccodes.DeadlineExceeded, "test"))
	assert.NotNil(t, s, "Expected status to be constructed")
	assert.EqualValues(t, grpccodes.DeadlineExceeded, ToGRPCStatusCode(s.Code))
	assert.Equal(t, GRPCTransportStatus, s.Group)
	assert.Equal(t, "test", s.Message, "Expected test message")

	s = NewFromPrecheck(hapi.NodeTransactionPrecheckCode_BUSY, "0:0:3")
	assert.Equal(t, PrecheckStatus, s.Group)
	assert.Equal(t, PrecheckBusy, ToPrecheckCode(s.Code))
	assert.Equal(t, "0:0:3", s.Details[0].(string))

	s = NewMissingField("node")
	assert.Equal(t, ClientStatus, s.Group)
	assert.EqualValues(t, MissingField, s.Code)
	assert.Equal(t, "missing required field: node", s.Message)

	s = NewIllegalStateTransition("cannot %s in state %s", "sign", "Building")
	assert.EqualValues(t, IllegalStateTransition, s.Code)
	assert.Equal(t, "cannot sign in state Building", s.Message)

	s = NewParseError("1:2", errors.New("expected 3 parts"))
	assert.EqualValues(t, ParseError, s.Code)
	assert.Equal(t, `failed to parse "1:2": expected 3 parts`, s.Message)
}

func TestFromError(t *testing.T) {
	s := New(ClientStatus, ConnectionFailed.ToInt32(), "test", nil)
	derivedStatus, ok := FromError(s)
	assert.True(t, ok)
	assert.Equal(t, s, derivedStatus)

	// Test unwrap
	s1 := errors.Wrap(s, "test")
	derivedStatus, ok = FromError(s1)
	assert.True(t, ok)
	assert.Equal(t, s, derivedStatus)

	s, ok = FromError(nil)
	assert.True(t, ok)
	assert.EqualValues(t, OK.ToInt32(), s.Code)

	_, ok = FromError(fmt.Errorf("Test"))
	assert.False(t, ok)

	errs := multi.Errors{}
	errs = append(errs, fmt.Errorf("Test"))
	s, ok = FromError(errs)
	assert.True(t, ok)
	assert.Equal(t, ClientStatus, s.Group)
	assert.EqualValues(t, MultipleErrors.ToInt32(), s.Code)
	assert.Equal(t, errs.Error(), s.Message)
}

func TestStatusToError(t *testing.T) {
	s := New(ClientStatus, ConnectionFailed.ToInt32(), "test", nil)
	assert.Equal(t, "Client Status Code: (2) CONNECTION_FAILED. Description: test", s.Error())

	s = New(PrecheckStatus, PrecheckDuplicate.ToInt32(), "test", nil)
	assert.Equal(t, "Precheck Status Code: (5) DUPLICATE. Description: test", s.Error())
}

func TestPrecheckDistinctFromTransport(t *testing.T) {
	for code := range hapi.NodeTransactionPrecheckCode_name {
		if code == 0 {
			continue
		}
		err := errors.Wrap(NewFromPrecheck(hapi.NodeTransactionPrecheckCode(code), "node"), "execute")

		pc, ok := IsPrecheck(err)
		assert.True(t, ok)
		assert.EqualValues(t, code, pc)
		assert.False(t, IsTransport(err))
	}

	transportErr := errors.Wrap(NewFromGRPCStatus(grpcstatus.New(grpccodes.Unavailable, "down")), "execute")
	_, ok := IsPrecheck(transportErr)
	assert.False(t, ok)
	assert.True(t, IsTransport(transportErr))

	assert.True(t, IsTransport(New(ClientStatus, ConnectionFailed.ToInt32(), "refused", nil)))
	assert.False(t, IsTransport(NewMissingField("node")))
	assert.False(t, IsTransport(nil))

	_, ok = IsPrecheck(nil)
	assert.False(t, ok)
}

func TestMissingFieldName(t *testing.T) {
	name, ok := MissingFieldName(errors.WithMessage(NewMissingField("operator"), "freeze"))
	assert.True(t, ok)
	assert.Equal(t, "operator", name)

	_, ok = MissingFieldName(NewIllegalStateTransition("nope"))
	assert.False(t, ok)

	assert.True(t, HasCode(NewIllegalStateTransition("nope"), IllegalStateTransition))
	assert.False(t, HasCode(NewFromPrecheck(hapi.NodeTransactionPrecheckCode_BUSY, "n"), IllegalStateTransition))
}

func TestStatusCodeConversion(t *testing.T) {
	s := OK.String()
	assert.Equal(t, CodeName[OK.ToInt32()], s)

	invalidCode25999 := Code(25999)
	assert.Equal(t, "25999", invalidCode25999.String())

	assert.Equal(t, PrecheckNotSupported, PrecheckCodeFromWire(hapi.NodeTransactionPrecheckCode_NOT_SUPPORTED))
	assert.Equal(t, "99", PrecheckCode(99).String())
}

func TestStatusCodeString(t *testing.T) {
	s := Status{Group: GRPCTransportStatus, Code: int32(grpccodes.Aborted)}
	assert.Equal(t, grpccodes.Aborted.String(), s.codeString())

	s = Status{Group: PrecheckStatus, Code: PrecheckInvalidAccount.ToInt32()}
	assert.Equal(t, "INVALID_ACCOUNT", s.codeString())

	s = Status{Group: ClientStatus, Code: int32(OK)}
	assert.Equal(t, OK.String(), s.codeString())

	unknownCode45779 := 45779
	s = Status{Code: int32(unknownCode45779)}
	assert.Equal(t, Unknown.String(), s.codeString())
}

func TestStatusGroupString(t *testing.T) {
	unknownGroup77377 := Group(73777)
	assert.Equal(t, UnknownStatus.String(), unknownGroup77377.String())
}
