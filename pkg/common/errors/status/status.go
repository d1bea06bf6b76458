/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package status defines metadata for errors returned by hedera-sdk-go. This
// information may be used by SDK users to make decisions about how to handle
// certain error conditions.
// Status codes are divided by group, where each group represents a particular
// component and the codes correspond to those returned by the component.
// Node admission failures (precheck codes) have their own group and are never
// mixed with transport failures or with consensus outcomes reported in
// receipts.
package status

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/hashgraph/hedera-sdk-go/pkg/common/errors/multi"
	"github.com/hashgraph/hedera-sdk-go/pkg/hapi"
	grpcstatus "google.golang.org/grpc/status"
)

// Status provides additional information about an unsuccessful operation
// performed by hedera-sdk-go. Essentially, this object contains metadata about
// an error returned by the SDK.
type Status struct {
	// Group status group
	Group Group
	// Code status code
	Code int32
	// Message status message
	Message string
	// Details any additional status details
	Details []interface{}
}

// Group of status to help users infer status codes from various components
type Group int32

const (
	// UnknownStatus unknown status group
	UnknownStatus Group = iota

	// GRPCTransportStatus is the status associated with requests made over
	// gRPC connections
	GRPCTransportStatus

	// PrecheckStatus is the status returned by a node when it refuses to
	// admit a transaction or answer a query. Codes are PrecheckCode values.
	PrecheckStatus

	// ClientStatus is the status inferred by the SDK itself, for example when
	// a builder is incomplete or used in the wrong state
	ClientStatus

	// TestStatus is used by tests
	TestStatus
)

// GroupName maps the groups in this packages to human-readable strings
var GroupName = map[int32]string{
	0: "Unknown",
	1: "gRPC Transport Status",
	2: "Precheck Status",
	3: "Client Status",
	4: "Test status",
}

func (g Group) String() string {
	if s, ok := GroupName[int32(g)]; ok {
		return s
	}
	return UnknownStatus.String()
}

// FromError returns a Status representing err if available,
// otherwise it returns nil, false.
func FromError(err error) (s *Status, ok bool) {
	if err == nil {
		return &Status{Code: int32(OK)}, true
	}
	if s, ok := err.(*Status); ok {
		return s, true
	}
	unwrappedErr := errors.Cause(err)
	if s, ok := unwrappedErr.(*Status); ok {
		return s, true
	}
	if m, ok := unwrappedErr.(multi.Errors); ok {
		// Return all of the errors in the details
		var errors []interface{}
		for _, err := range m {
			errors = append(errors, err)
		}
		return New(ClientStatus, MultipleErrors.ToInt32(), m.Error(), errors), true
	}

	return nil, false
}

func (s *Status) Error() string {
	return fmt.Sprintf("%s Code: (%d) %s. Description: %s", s.Group.String(), s.Code, s.codeString(), s.Message)
}

func (s *Status) codeString() string {
	switch s.Group {
	case GRPCTransportStatus:
		return ToGRPCStatusCode(s.Code).String()
	case PrecheckStatus:
		return ToPrecheckCode(s.Code).String()
	case ClientStatus:
		return ToSDKStatusCode(s.Code).String()
	default:
		return Unknown.String()
	}
}

// New returns a Status with the given parameters
func New(group Group, code int32, msg string, details []interface{}) *Status {
	return &Status{Group: group, Code: code, Message: msg, Details: details}
}

// NewFromGRPCStatus new Status from gRPC status response
func NewFromGRPCStatus(s *grpcstatus.Status) *Status {
	if s == nil {
		return nil
	}
	details := make([]interface{}, len(s.Proto().Details))
	for i, detail := range s.Proto().Details {
		details[i] = detail
	}

	return &Status{Group: GRPCTransportStatus, Code: s.Proto().Code,
		Message: s.Message(), Details: details}
}

// NewFromPrecheck returns a Status for a node precheck code. The node name
// (or address) is carried in the details.
func NewFromPrecheck(code hapi.NodeTransactionPrecheckCode, node string) *Status {
	pc := PrecheckCodeFromWire(code)
	return &Status{Group: PrecheckStatus, Code: pc.ToInt32(),
		Message: fmt.Sprintf("node %s rejected the request: %s", node, pc), Details: []interface{}{node}}
}

// NewMissingField returns the status reported when a builder is frozen
// without a required field.
func NewMissingField(name string) *Status {
	return &Status{Group: ClientStatus, Code: MissingField.ToInt32(),
		Message: fmt.Sprintf("missing required field: %s", name), Details: []interface{}{name}}
}

// NewIllegalStateTransition returns the status reported when an operation is
// not allowed in the current state of a transaction.
func NewIllegalStateTransition(msg string, args ...interface{}) *Status {
	return &Status{Group: ClientStatus, Code: IllegalStateTransition.ToInt32(),
		Message: fmt.Sprintf(msg, args...)}
}

// NewParseError returns the status reported for malformed text input.
func NewParseError(input string, cause error) *Status {
	msg := fmt.Sprintf("failed to parse %q", input)
	if cause != nil {
		msg = fmt.Sprintf("%s: %s", msg, cause)
	}
	return &Status{Group: ClientStatus, Code: ParseError.ToInt32(), Message: msg, Details: []interface{}{input}}
}

// IsPrecheck returns the precheck code carried by err, if err is a node
// precheck failure.
func IsPrecheck(err error) (PrecheckCode, bool) {
	s, ok := FromError(err)
	if !ok || err == nil || s.Group != PrecheckStatus {
		return PrecheckOk, false
	}
	return ToPrecheckCode(s.Code), true
}

// IsTransport returns true if err was produced by the transport rather than
// by the node or the SDK.
func IsTransport(err error) bool {
	s, ok := FromError(err)
	if !ok || err == nil {
		return false
	}
	switch s.Group {
	case GRPCTransportStatus:
		return true
	case ClientStatus:
		return s.Code == ConnectionFailed.ToInt32() || s.Code == Timeout.ToInt32()
	}
	return false
}

// MissingFieldName returns the name of the missing field if err is a
// missing field error.
func MissingFieldName(err error) (string, bool) {
	s, ok := FromError(err)
	if !ok || err == nil || s.Group != ClientStatus || s.Code != MissingField.ToInt32() || len(s.Details) == 0 {
		return "", false
	}
	name, ok := s.Details[0].(string)
	return name, ok
}

// HasCode returns true if err carries the given SDK client code.
func HasCode(err error, code Code) bool {
	s, ok := FromError(err)
	if !ok || err == nil {
		return false
	}
	return s.Group == ClientStatus && s.Code == code.ToInt32()
}
