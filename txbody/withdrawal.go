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

package txbody

import (
	"encoding/json"
)

const (
	WithdrawalTypePubKey       = "PubKeyWithdrawal"
	WithdrawalTypePlutusScript = "PlutusScriptWithdrawal"
)

// Withdrawal is one of PubKeyWithdrawal or PlutusScriptWithdrawal
type Withdrawal interface {
	isWithdrawal()
	RewardAddress() string
	Amount() uint64
}

type PubKeyWithdrawal struct {
	Address string
	Coin    uint64
}

func (PubKeyWithdrawal) isWithdrawal() {}

func (w PubKeyWithdrawal) RewardAddress() string {
	return w.Address
}

func (w PubKeyWithdrawal) Amount() uint64 {
	return w.Coin
}

func (w PubKeyWithdrawal) MarshalJSON() ([]byte, error) {
	tmp := struct {
		Type    string `json:"type"`
		Address string `json:"address"`
		Coin    uint64 `json:"coin"`
	}{
		Type:    WithdrawalTypePubKey,
		Address: w.Address,
		Coin:    w.Coin,
	}
	return json.Marshal(tmp)
}

// PlutusScriptWithdrawal withdraws rewards from a script-controlled stake address
type PlutusScriptWithdrawal struct {
	Address      string
	Coin         uint64
	ScriptSource ScriptSource
	Redeemer     *Redeemer
}

func (PlutusScriptWithdrawal) isWithdrawal() {}

func (w PlutusScriptWithdrawal) RewardAddress() string {
	return w.Address
}

func (w PlutusScriptWithdrawal) Amount() uint64 {
	return w.Coin
}

type plutusScriptWithdrawalJson struct {
	Type         string          `json:"type"`
	Address      string          `json:"address"`
	Coin         uint64          `json:"coin"`
	ScriptSource json.RawMessage `json:"scriptSource,omitempty"`
	Redeemer     *Redeemer       `json:"redeemer,omitempty"`
}

func (w PlutusScriptWithdrawal) MarshalJSON() ([]byte, error) {
	scriptSource, err := marshalOptional(w.ScriptSource)
	if err != nil {
		return nil, err
	}
	return json.Marshal(plutusScriptWithdrawalJson{
		Type:         WithdrawalTypePlutusScript,
		Address:      w.Address,
		Coin:         w.Coin,
		ScriptSource: scriptSource,
		Redeemer:     w.Redeemer,
	})
}

// UnmarshalWithdrawal decodes a Withdrawal from its tagged JSON form
func UnmarshalWithdrawal(data []byte) (Withdrawal, error) {
	return decodeWithdrawal(data, "")
}

func decodeWithdrawal(data json.RawMessage, path string) (Withdrawal, error) {
	if isNull(data) {
		return nil, fieldErrorf(path, "missing withdrawal")
	}
	withdrawalType, err := variantType(data, path)
	if err != nil {
		return nil, err
	}
	switch withdrawalType {
	case WithdrawalTypePubKey:
		var tmp struct {
			Address string `json:"address"`
			Coin    uint64 `json:"coin"`
		}
		if err := unmarshalField(data, &tmp, path); err != nil {
			return nil, err
		}
		return PubKeyWithdrawal{Address: tmp.Address, Coin: tmp.Coin}, nil
	case WithdrawalTypePlutusScript:
		var tmp plutusScriptWithdrawalJson
		if err := unmarshalField(data, &tmp, path); err != nil {
			return nil, err
		}
		scriptSource, err := decodeScriptSource(
			tmp.ScriptSource,
			joinPath(path, "scriptSource"),
		)
		if err != nil {
			return nil, err
		}
		return PlutusScriptWithdrawal{
			Address:      tmp.Address,
			Coin:         tmp.Coin,
			ScriptSource: scriptSource,
			Redeemer:     tmp.Redeemer,
		}, nil
	default:
		return nil, unknownVariant(
			path,
			withdrawalType,
			WithdrawalTypePubKey,
			WithdrawalTypePlutusScript,
		)
	}
}
