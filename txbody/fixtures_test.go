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
	"github.com/blinklabs-io/txdraft/internal/test"
	"github.com/blinklabs-io/txdraft/txbody"
)

const (
	testTxHash      = "0102030405060708091011121314151617181920212223242526272829303132"
	testTxHash2     = "3132333435363738394041424344454647484950515253545556575859606162"
	testKeyHash     = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b"
	testPolicyId    = "1b1a191817161514131211100f0e0d0c0b0a09080706050403020100"
	testVrfKeyHash  = "00112233445566778899aabbccddeeff00112233445566778899aabbccddeeff"
	testAddress     = "addr_test1vyqqzqsrqszsvpcgpy9qkrqdpc83qygjzv2p29shrqv35xcfegsv2"
	testStakeAddr   = "stake_test1uqqqzqsrqszsvpcgpy9qkrqdpc83qygjzv2p29shrqv35xcfrxem8"
	testPoolId      = "pool1qqqsyqcyq5rqwzqfpg9scrgwpugpzysnzs23v9ccrydpk35lkuk"
	testDatumCbor   = "d87980"
	testDatumHash   = "923918e403bf43c34b4ef6b48eb2ee04babed17320d8d1b9ff9ad086e86f44ec"
	testScriptHash  = "5066154a102ee037390c5236f78db23239b49c5748d3d349f3ccf04b"
	testRedeemerHex = "d87a80"
	// Tag 24 wrapped [2, script] holding the single-wrapped test script
	testScriptRef = "d818584b82025847" + test.ScriptSingleHex
)

func ptr[T any](v T) *T {
	return &v
}

// fullBody returns a transaction body that uses every variant and optional field
func fullBody() *txbody.TransactionBody {
	redeemer := &txbody.Redeemer{
		Data:    testRedeemerHex,
		ExUnits: txbody.Budget{Mem: 7000000, Steps: 3000000000},
	}
	return &txbody.TransactionBody{
		Inputs: []txbody.TxIn{
			txbody.PubKeyTxIn{
				TxIn: txbody.TxInParameter{
					TxHash:  testTxHash,
					TxIndex: 1,
					Amount: []txbody.Asset{
						{Unit: "lovelace", Quantity: "5000000"},
					},
					Address: testAddress,
				},
			},
			txbody.ScriptTxIn{
				TxIn: txbody.TxInParameter{
					TxHash:  testTxHash2,
					TxIndex: 0,
				},
				ScriptSource: txbody.InlineScriptSource{
					TxHash:             testTxHash,
					TxIndex:            2,
					SpendingScriptHash: testScriptHash,
					LanguageVersion:    txbody.LanguageVersionV2,
					ScriptSize:         79,
				},
				DatumSource: txbody.InlineDatumSource{
					TxHash:  testTxHash2,
					TxIndex: 0,
				},
				Redeemer: redeemer,
			},
			txbody.ScriptTxIn{
				TxIn: txbody.TxInParameter{
					TxHash:  testTxHash2,
					TxIndex: 3,
				},
				ScriptSource: txbody.ProvidedScriptSource{
					ScriptCbor:      test.ScriptDoubleHex,
					LanguageVersion: txbody.LanguageVersionV3,
				},
				DatumSource: txbody.ProvidedDatumSource{Data: testDatumCbor},
				Redeemer:    redeemer,
			},
		},
		Outputs: []txbody.Output{
			{
				Address: testAddress,
				Amount: []txbody.Asset{
					{Unit: "lovelace", Quantity: "2000000"},
					{Unit: testPolicyId + "74657374", Quantity: "10"},
				},
				Datum: &txbody.Datum{Type: txbody.DatumTypeInline, Data: testDatumCbor},
				ReferenceScript: &txbody.ProvidedScriptSource{
					ScriptCbor:      test.ScriptSingleHex,
					LanguageVersion: txbody.LanguageVersionV2,
				},
			},
			{
				Address: testAddress,
				Amount: []txbody.Asset{
					{Unit: "lovelace", Quantity: "1000000"},
				},
				Datum: &txbody.Datum{Type: txbody.DatumTypeHash, Data: testDatumHash},
			},
		},
		Collaterals: []txbody.PubKeyTxIn{
			{
				TxIn: txbody.TxInParameter{
					TxHash:  testTxHash,
					TxIndex: 4,
					Amount: []txbody.Asset{
						{Unit: "lovelace", Quantity: "5000000"},
					},
					Address: testAddress,
				},
			},
		},
		RequiredSignatures: []string{testKeyHash},
		ReferenceInputs: []txbody.RefTxIn{
			{TxHash: testTxHash, TxIndex: 2},
		},
		Withdrawals: []txbody.Withdrawal{
			txbody.PubKeyWithdrawal{Address: testStakeAddr, Coin: 0},
			txbody.PlutusScriptWithdrawal{
				Address: testStakeAddr,
				Coin:    1234,
				ScriptSource: txbody.ProvidedScriptSource{
					ScriptCbor:      test.ScriptDoubleHex,
					LanguageVersion: txbody.LanguageVersionV1,
				},
				Redeemer: redeemer,
			},
		},
		Mints: []txbody.MintItem{
			{
				Type:      txbody.MintTypePlutus,
				PolicyId:  testPolicyId,
				AssetName: "74657374",
				Amount:    10,
				Redeemer:  redeemer,
				ScriptSource: txbody.ProvidedScriptSource{
					ScriptCbor:      test.ScriptDoubleHex,
					LanguageVersion: txbody.LanguageVersionV2,
				},
			},
			{
				Type:      txbody.MintTypeNative,
				PolicyId:  testPolicyId,
				AssetName: "",
				Amount:    -5,
			},
		},
		ChangeAddress: testAddress,
		ChangeDatum:   &txbody.Datum{Type: txbody.DatumTypeInline, Data: testDatumCbor},
		Metadata: []txbody.Metadata{
			{Tag: "674", Metadata: `{"msg":["hello"]}`},
		},
		ValidityRange: txbody.ValidityRange{
			InvalidBefore:    ptr(uint64(1000)),
			InvalidHereafter: ptr(uint64(2000)),
		},
		Certificates: []txbody.Certificate{
			txbody.RegisterPool{
				PoolParams: txbody.PoolParams{
					VrfKeyHash: testVrfKeyHash,
					Operator:   testKeyHash,
					Pledge:     "500000000000",
					Cost:       "340000000",
					Margin:     [2]uint64{1, 100},
					Relays: []txbody.Relay{
						txbody.SingleHostAddr{
							Ipv4: ptr("10.0.0.1"),
							Ipv6: ptr("2001:db8::1"),
							Port: ptr(uint16(3001)),
						},
						txbody.SingleHostName{
							DomainName: "relay.example.com",
							Port:       ptr(uint16(3001)),
						},
						txbody.MultiHostName{DomainName: "example.com"},
					},
					Owners:        []string{testKeyHash},
					RewardAddress: testStakeAddr,
					Metadata: &txbody.PoolMetadata{
						Url:  "https://example.com/pool.json",
						Hash: testVrfKeyHash,
					},
				},
			},
			txbody.RegisterStake{StakeKeyHash: testKeyHash},
			txbody.DelegateStake{StakeKeyHash: testKeyHash, PoolId: testPoolId},
			txbody.DeregisterStake{StakeKeyHash: testKeyHash},
			txbody.RetirePool{PoolId: testKeyHash, Epoch: 500},
		},
		SigningKeys: []string{"5820" + testVrfKeyHash},
	}
}
