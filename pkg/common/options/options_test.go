/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type feeParams struct {
	fee uint64
}

func (p *feeParams) SetFee(fee uint64) {
	p.fee = fee
}

type feeSetter interface {
	SetFee(fee uint64)
}

func withFee(fee uint64) Opt {
	return func(p Params) {
		if setter, ok := p.(feeSetter); ok {
			setter.SetFee(fee)
		}
	}
}

func TestApply(t *testing.T) {
	p := &feeParams{}
	Apply(p, []Opt{withFee(10), nil, withFee(20)})
	assert.Equal(t, uint64(20), p.fee)

	// options for other parameter types are ignored
	other := &struct{}{}
	Apply(other, []Opt{withFee(10)})
}
