/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package status

import (
	"strconv"

	grpcCodes "google.golang.org/grpc/codes"
)

// Code represents a status code
type Code uint32

const (
	// OK is returned on success.
	OK Code = 0

	// Unknown represents status codes that are uncategorized or unknown to the SDK
	Unknown Code = 1

	// ConnectionFailed is returned when a network connection attempt from the SDK fails
	ConnectionFailed Code = 2

	// Timeout operation timed out
	Timeout Code = 5

	// MultipleErrors multiple errors occurred
	MultipleErrors Code = 7

	// SignatureVerificationFailed is when signature fails verification
	SignatureVerificationFailed Code = 8

	// MissingField is returned when a transaction is frozen without a required field
	MissingField Code = 30

	// IllegalStateTransition is returned when a transaction is mutated after
	// it was frozen, or executed twice
	IllegalStateTransition Code = 31

	// ParseError is returned for malformed identifiers, timestamps or keys
	ParseError Code = 32

	// UnexpectedResponse is returned when a node answers with a response
	// that does not match the request
	UnexpectedResponse Code = 33

	// InvalidPayment is returned when a query payment is not a crypto transfer
	InvalidPayment Code = 34

	// SigningFailed is returned when a signer could not produce a signature
	SigningFailed Code = 35
)

// CodeName maps the codes in this packages to human-readable strings
var CodeName = map[int32]string{
	0:  "OK",
	1:  "UNKNOWN",
	2:  "CONNECTION_FAILED",
	5:  "TIMEOUT",
	7:  "MULTIPLE_ERRORS",
	8:  "SIGNATURE_VERIFICATION_FAILED",
	30: "MISSING_FIELD",
	31: "ILLEGAL_STATE_TRANSITION",
	32: "PARSE_ERROR",
	33: "UNEXPECTED_RESPONSE",
	34: "INVALID_PAYMENT",
	35: "SIGNING_FAILED",
}

// ToInt32 cast to int32
func (c Code) ToInt32() int32 {
	return int32(c)
}

// String representation of the code
func (c Code) String() string {
	if s, ok := CodeName[c.ToInt32()]; ok {
		return s
	}
	return strconv.Itoa(int(c))
}

// ToSDKStatusCode cast to hedera-sdk-go status code
func ToSDKStatusCode(c int32) Code {
	return Code(c)
}

// ToGRPCStatusCode cast to gRPC status code
func ToGRPCStatusCode(c int32) grpcCodes.Code {
	return grpcCodes.Code(c)
}
