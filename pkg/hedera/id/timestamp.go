/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package id

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/hashgraph/hedera-sdk-go/pkg/common/errors/status"
	"github.com/hashgraph/hedera-sdk-go/pkg/hapi"
)

// Timestamp is a point in time with nanosecond precision
type Timestamp struct {
	Seconds int64
	Nanos   int32
}

// TimestampFromTime converts t
func TimestampFromTime(t time.Time) Timestamp {
	return Timestamp{Seconds: t.Unix(), Nanos: int32(t.Nanosecond())}
}

// ParseTimestamp parses "{seconds}.{nanos}". The nanos part is an integer,
// not a decimal fraction.
func ParseTimestamp(s string) (Timestamp, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 2 {
		return Timestamp{}, status.NewParseError(s, errors.New("expected {seconds}.{nanos}"))
	}
	secs, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return Timestamp{}, status.NewParseError(s, err)
	}
	nanos, err := strconv.ParseInt(parts[1], 10, 32)
	if err != nil {
		return Timestamp{}, status.NewParseError(s, err)
	}
	if nanos < 0 || nanos >= int64(time.Second) {
		return Timestamp{}, status.NewParseError(s, errors.New("nanos out of range"))
	}
	return Timestamp{Seconds: secs, Nanos: int32(nanos)}, nil
}

func (t Timestamp) String() string {
	return fmt.Sprintf("%d.%d", t.Seconds, t.Nanos)
}

// Time converts the timestamp to a UTC time.Time
func (t Timestamp) Time() time.Time {
	return time.Unix(t.Seconds, int64(t.Nanos)).UTC()
}

// Add returns the timestamp shifted by d
func (t Timestamp) Add(d time.Duration) Timestamp {
	return TimestampFromTime(t.Time().Add(d))
}

// ToProto converts the timestamp to its wire form
func (t Timestamp) ToProto() *hapi.Timestamp {
	return &hapi.Timestamp{Seconds: t.Seconds, Nanos: t.Nanos}
}

// TimestampFromProto converts the wire form. A nil message yields the zero timestamp.
func TimestampFromProto(p *hapi.Timestamp) Timestamp {
	if p == nil {
		return Timestamp{}
	}
	return Timestamp{Seconds: p.Seconds, Nanos: p.Nanos}
}

// DurationToProto converts d to a whole number of seconds on the wire
func DurationToProto(d time.Duration) *hapi.Duration {
	return &hapi.Duration{Seconds: int64(d / time.Second)}
}

// DurationFromProto converts the wire form
func DurationFromProto(p *hapi.Duration) time.Duration {
	if p == nil {
		return 0
	}
	return time.Duration(p.Seconds) * time.Second
}
