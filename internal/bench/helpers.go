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

// Package bench provides benchmark fixtures for script processing and
// transaction body handling.
package bench

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/blinklabs-io/txdraft/internal/test"
	"github.com/blinklabs-io/txdraft/txbody"
)

const (
	benchTxHash  = "0102030405060708091011121314151617181920212223242526272829303132"
	benchAddress = "addr_test1vyqqzqsrqszsvpcgpy9qkrqdpc83qygjzv2p29shrqv35xcfegsv2"
	benchPolicy  = "1b1a191817161514131211100f0e0d0c0b0a09080706050403020100"
)

// ScriptFixture is a compiled script in a particular envelope form
type ScriptFixture struct {
	Name      string
	ScriptHex string
}

// ScriptFixtures returns the test validator in each supported envelope form
func ScriptFixtures() []ScriptFixture {
	return []ScriptFixture{
		{Name: "SingleWrapped", ScriptHex: test.ScriptSingleHex},
		{Name: "DoubleWrapped", ScriptHex: test.ScriptDoubleHex},
		{Name: "Applied", ScriptHex: test.ScriptAppliedHex},
	}
}

// BytesParams returns count parameters in detailed JSON schema, each a short bytestring
func BytesParams(count int) []string {
	ret := make([]string, count)
	for i := range ret {
		ret[i] = fmt.Sprintf(`{"bytes": "%04x"}`, i)
	}
	return ret
}

// NestedParam returns a single constructor parameter nested to the given depth
func NestedParam(depth int) string {
	var sb strings.Builder
	for range depth {
		sb.WriteString(`{"constructor": 0, "fields": [{"int": 1}, `)
	}
	sb.WriteString(`{"bytes": "00"}`)
	for range depth {
		sb.WriteString(`]}`)
	}
	return sb.String()
}

// BodyFixture builds a transaction body with the given number of inputs, outputs and mints
func BodyFixture(count int) *txbody.TransactionBody {
	body := &txbody.TransactionBody{
		ChangeAddress: benchAddress,
	}
	for i := range count {
		body.Inputs = append(
			body.Inputs,
			txbody.PubKeyTxIn{
				TxIn: txbody.TxInParameter{
					TxHash:  benchTxHash,
					TxIndex: uint32(i),
				},
			},
		)
		body.Outputs = append(
			body.Outputs,
			txbody.Output{
				Address: benchAddress,
				Amount: []txbody.Asset{
					{Unit: "lovelace", Quantity: "2000000"},
				},
			},
		)
		body.Mints = append(
			body.Mints,
			txbody.MintItem{
				Type:      txbody.MintTypeNative,
				PolicyId:  benchPolicy,
				AssetName: fmt.Sprintf("%02x", i%256),
				Amount:    1,
			},
		)
	}
	return body
}

// BodyFixtureJson returns the JSON form of BodyFixture
func BodyFixtureJson(count int) (string, error) {
	data, err := json.Marshal(BodyFixture(count))
	if err != nil {
		return "", err
	}
	return string(data), nil
}
