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
	TxInTypePubKey = "PubKey"
	TxInTypeScript = "Script"
)

// TxIn is one of PubKeyTxIn or ScriptTxIn
type TxIn interface {
	isTxIn()
	Input() TxInParameter
}

// TxInParameter identifies the output being spent. Amount and Address are optional
// hints used for fee and balance estimation
type TxInParameter struct {
	TxHash  string  `json:"txHash"`
	TxIndex uint32  `json:"txIndex"`
	Amount  []Asset `json:"amount,omitempty"`
	Address string  `json:"address,omitempty"`
}

type PubKeyTxIn struct {
	TxIn TxInParameter
}

func (PubKeyTxIn) isTxIn() {}

func (i PubKeyTxIn) Input() TxInParameter {
	return i.TxIn
}

type pubKeyTxInJson struct {
	Type string        `json:"type"`
	TxIn TxInParameter `json:"txIn"`
}

func (i PubKeyTxIn) MarshalJSON() ([]byte, error) {
	return json.Marshal(pubKeyTxInJson{Type: TxInTypePubKey, TxIn: i.TxIn})
}

func (i *PubKeyTxIn) UnmarshalJSON(data []byte) error {
	tmp, err := decodePubKeyTxIn(data, "")
	if err != nil {
		return err
	}
	*i = tmp
	return nil
}

func decodePubKeyTxIn(data json.RawMessage, path string) (PubKeyTxIn, error) {
	var tmp pubKeyTxInJson
	if err := unmarshalField(data, &tmp, path); err != nil {
		return PubKeyTxIn{}, err
	}
	if tmp.Type != TxInTypePubKey {
		return PubKeyTxIn{}, unknownVariant(path, tmp.Type, TxInTypePubKey)
	}
	return PubKeyTxIn{TxIn: tmp.TxIn}, nil
}

// ScriptTxIn spends an output locked by a script
type ScriptTxIn struct {
	TxIn         TxInParameter
	ScriptSource ScriptSource
	DatumSource  DatumSource
	Redeemer     *Redeemer
}

func (ScriptTxIn) isTxIn() {}

func (i ScriptTxIn) Input() TxInParameter {
	return i.TxIn
}

type scriptTxInJson struct {
	Type       string                  `json:"type"`
	TxIn       TxInParameter           `json:"txIn"`
	ScriptTxIn scriptTxInParameterJson `json:"scriptTxIn"`
}

type scriptTxInParameterJson struct {
	ScriptSource json.RawMessage `json:"scriptSource,omitempty"`
	DatumSource  json.RawMessage `json:"datumSource,omitempty"`
	Redeemer     *Redeemer       `json:"redeemer,omitempty"`
}

func (i ScriptTxIn) MarshalJSON() ([]byte, error) {
	tmp := scriptTxInJson{
		Type: TxInTypeScript,
		TxIn: i.TxIn,
	}
	var err error
	if tmp.ScriptTxIn.ScriptSource, err = marshalOptional(i.ScriptSource); err != nil {
		return nil, err
	}
	if tmp.ScriptTxIn.DatumSource, err = marshalOptional(i.DatumSource); err != nil {
		return nil, err
	}
	tmp.ScriptTxIn.Redeemer = i.Redeemer
	return json.Marshal(tmp)
}

func (i *ScriptTxIn) UnmarshalJSON(data []byte) error {
	tmp, err := decodeScriptTxIn(data, "")
	if err != nil {
		return err
	}
	*i = tmp
	return nil
}

func decodeScriptTxIn(data json.RawMessage, path string) (ScriptTxIn, error) {
	var tmp scriptTxInJson
	if err := unmarshalField(data, &tmp, path); err != nil {
		return ScriptTxIn{}, err
	}
	if tmp.Type != TxInTypeScript {
		return ScriptTxIn{}, unknownVariant(path, tmp.Type, TxInTypeScript)
	}
	paramPath := joinPath(path, "scriptTxIn")
	scriptSource, err := decodeScriptSource(
		tmp.ScriptTxIn.ScriptSource,
		joinPath(paramPath, "scriptSource"),
	)
	if err != nil {
		return ScriptTxIn{}, err
	}
	datumSource, err := decodeDatumSource(
		tmp.ScriptTxIn.DatumSource,
		joinPath(paramPath, "datumSource"),
	)
	if err != nil {
		return ScriptTxIn{}, err
	}
	return ScriptTxIn{
		TxIn:         tmp.TxIn,
		ScriptSource: scriptSource,
		DatumSource:  datumSource,
		Redeemer:     tmp.ScriptTxIn.Redeemer,
	}, nil
}

// UnmarshalTxIn decodes a TxIn from its tagged JSON form
func UnmarshalTxIn(data []byte) (TxIn, error) {
	return decodeTxIn(data, "")
}

func decodeTxIn(data json.RawMessage, path string) (TxIn, error) {
	if isNull(data) {
		return nil, fieldErrorf(path, "missing input")
	}
	inputType, err := variantType(data, path)
	if err != nil {
		return nil, err
	}
	switch inputType {
	case TxInTypePubKey:
		return decodePubKeyTxIn(data, path)
	case TxInTypeScript:
		return decodeScriptTxIn(data, path)
	default:
		return nil, unknownVariant(path, inputType, TxInTypePubKey, TxInTypeScript)
	}
}

// RefTxIn is a reference input, which makes an output visible to scripts without
// spending it
type RefTxIn struct {
	TxHash  string `json:"txHash"`
	TxIndex uint32 `json:"txIndex"`
}

// marshalOptional encodes a variant value, returning nil for a nil interface
func marshalOptional(v any) (json.RawMessage, error) {
	if v == nil {
		return nil, nil
	}
	return json.Marshal(v)
}
