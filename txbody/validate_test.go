// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package txbody_test

import (
	"errors"
	"math"
	"testing"

	"github.com/blinklabs-io/txdraft/internal/test"
	"github.com/blinklabs-io/txdraft/primitive"
	"github.com/blinklabs-io/txdraft/txbody"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fieldErrors flattens the joined errors returned by Validate
func fieldErrors(t *testing.T, err error) []*txbody.FieldError {
	t.Helper()
	if err == nil {
		return nil
	}
	joined, ok := err.(interface{ Unwrap() []error })
	require.True(t, ok, "expected joined errors, got %T", err)
	var ret []*txbody.FieldError
	for _, tmpErr := range joined.Unwrap() {
		var fieldErr *txbody.FieldError
		require.ErrorAs(t, tmpErr, &fieldErr)
		ret = append(ret, fieldErr)
	}
	return ret
}

func TestValidateFullBody(t *testing.T) {
	require.NoError(t, fullBody().Validate())
	require.NoError(t, (&txbody.TransactionBody{}).Validate())
}

func TestValidate(t *testing.T) {
	testDefs := []struct {
		name     string
		modify   func(*txbody.TransactionBody)
		path     string
		expected error
	}{
		{
			name: "zero mint",
			modify: func(b *txbody.TransactionBody) {
				b.Mints[1].Amount = 0
			},
			path:     "mints[1].amount",
			expected: txbody.ErrZeroMint,
		},
		{
			name: "mint cannot be negated",
			modify: func(b *txbody.TransactionBody) {
				b.Mints[0].Amount = math.MinInt64
			},
			path:     "mints[0].amount",
			expected: txbody.ErrMintOverflow,
		},
		{
			name: "bad mint type",
			modify: func(b *txbody.TransactionBody) {
				b.Mints[0].Type = "plutus"
			},
			path:     "mints[0].type",
			expected: txbody.ErrInvalidMintType,
		},
		{
			name: "margin above one",
			modify: func(b *txbody.TransactionBody) {
				pool := b.Certificates[0].(txbody.RegisterPool)
				pool.PoolParams.Margin = [2]uint64{3, 2}
				b.Certificates[0] = pool
			},
			path:     "certificates[0].poolParams.margin",
			expected: txbody.ErrInvalidMargin,
		},
		{
			name: "margin zero denominator",
			modify: func(b *txbody.TransactionBody) {
				pool := b.Certificates[0].(txbody.RegisterPool)
				pool.PoolParams.Margin = [2]uint64{0, 0}
				b.Certificates[0] = pool
			},
			path:     "certificates[0].poolParams.margin",
			expected: txbody.ErrInvalidMargin,
		},
		{
			name: "zero quantity native asset",
			modify: func(b *txbody.TransactionBody) {
				b.Outputs[0].Amount[1].Quantity = "0"
			},
			path:     "outputs[0].amount[1].quantity",
			expected: txbody.ErrZeroQuantity,
		},
		{
			name: "short tx hash",
			modify: func(b *txbody.TransactionBody) {
				b.Inputs[0] = txbody.PubKeyTxIn{
					TxIn: txbody.TxInParameter{TxHash: "abcd"},
				}
			},
			path:     "inputs[0].txIn.txHash",
			expected: primitive.ErrHexLength,
		},
		{
			name: "empty validity range",
			modify: func(b *txbody.TransactionBody) {
				b.ValidityRange.InvalidHereafter = b.ValidityRange.InvalidBefore
			},
			path:     "validityRange",
			expected: txbody.ErrEmptyValidity,
		},
		{
			name: "bad datum type",
			modify: func(b *txbody.TransactionBody) {
				b.ChangeDatum.Type = "Embedded"
			},
			path:     "changeDatum.type",
			expected: txbody.ErrInvalidDatumType,
		},
		{
			name: "bad language version",
			modify: func(b *txbody.TransactionBody) {
				b.Withdrawals[1] = txbody.PlutusScriptWithdrawal{
					Address: testStakeAddr,
					ScriptSource: txbody.ProvidedScriptSource{
						ScriptCbor: test.ScriptDoubleHex,
					},
				}
			},
			path:     "withdrawals[1].scriptSource.languageVersion",
			expected: txbody.ErrInvalidLanguage,
		},
		{
			name: "nil certificate",
			modify: func(b *txbody.TransactionBody) {
				b.Certificates[2] = nil
			},
			path:     "certificates[2]",
			expected: txbody.ErrMissingField,
		},
		{
			name: "zero inline script size",
			modify: func(b *txbody.TransactionBody) {
				scriptIn := b.Inputs[1].(txbody.ScriptTxIn)
				source := scriptIn.ScriptSource.(txbody.InlineScriptSource)
				source.ScriptSize = 0
				scriptIn.ScriptSource = source
				b.Inputs[1] = scriptIn
			},
			path:     "inputs[1].scriptTxIn.scriptSource.scriptSize",
			expected: txbody.ErrInvalidScriptSize,
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			body := fullBody()
			testDef.modify(body)
			err := body.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, testDef.expected), "got: %s", err)
			fieldErrs := fieldErrors(t, err)
			require.Len(t, fieldErrs, 1, "got: %s", err)
			assert.Equal(t, testDef.path, fieldErrs[0].Path)
		})
	}
}

func TestValidateReportsAllProblems(t *testing.T) {
	body := fullBody()
	body.Mints[0].Amount = 0
	body.RequiredSignatures = append(body.RequiredSignatures, "zz")
	body.Metadata[0].Tag = "-1"
	body.Certificates = append(
		body.Certificates,
		txbody.DelegateStake{StakeKeyHash: testKeyHash, PoolId: "pool1bogus"},
	)
	var paths []string
	for _, fieldErr := range fieldErrors(t, body.Validate()) {
		paths = append(paths, fieldErr.Path)
	}
	assert.Equal(
		t,
		[]string{
			"requiredSignatures[1]",
			"mints[0].amount",
			"metadata[0].tag",
			"certificates[5].poolId",
		},
		paths,
	)
}

func TestValidateLovelaceZeroQuantity(t *testing.T) {
	body := fullBody()
	body.Outputs[1].Amount[0].Quantity = "0"
	require.NoError(t, body.Validate())
}

func TestValidateRelays(t *testing.T) {
	body := &txbody.TransactionBody{
		Certificates: []txbody.Certificate{
			txbody.RegisterPool{
				PoolParams: txbody.PoolParams{
					VrfKeyHash: testVrfKeyHash,
					Operator:   testKeyHash,
					Pledge:     "0",
					Cost:       "-1",
					Margin:     [2]uint64{0, 1},
					Relays: []txbody.Relay{
						txbody.SingleHostAddr{Ipv4: ptr("2001:db8::1")},
						txbody.SingleHostAddr{Ipv6: ptr("10.0.0.1")},
						txbody.MultiHostName{},
					},
					RewardAddress: testStakeAddr,
				},
			},
		},
	}
	var paths []string
	for _, fieldErr := range fieldErrors(t, body.Validate()) {
		paths = append(paths, fieldErr.Path)
	}
	assert.Equal(
		t,
		[]string{
			"certificates[0].poolParams.cost",
			"certificates[0].poolParams.relays[0].ipv4",
			"certificates[0].poolParams.relays[1].ipv6",
			"certificates[0].poolParams.relays[2].domainName",
		},
		paths,
	)
}
