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
	"fmt"

	"github.com/blinklabs-io/plutigo/data"
)

// TransactionBody is an unsigned transaction draft. It is built up by a caller and
// handed to serialization and signing, which are outside this package
type TransactionBody struct {
	Inputs             []TxIn
	Outputs            []Output
	Collaterals        []PubKeyTxIn
	RequiredSignatures []string
	ReferenceInputs    []RefTxIn
	Withdrawals        []Withdrawal
	Mints              []MintItem
	ChangeAddress      string
	ChangeDatum        *Datum
	Metadata           []Metadata
	ValidityRange      ValidityRange
	Certificates       []Certificate
	// Opaque key material for the signer
	SigningKeys []string
}

type transactionBodyJson struct {
	Inputs             []json.RawMessage `json:"inputs"`
	Outputs            []json.RawMessage `json:"outputs"`
	Collaterals        []json.RawMessage `json:"collaterals"`
	RequiredSignatures []string          `json:"requiredSignatures"`
	ReferenceInputs    []RefTxIn         `json:"referenceInputs"`
	Withdrawals        []json.RawMessage `json:"withdrawals"`
	Mints              []json.RawMessage `json:"mints"`
	ChangeAddress      string            `json:"changeAddress"`
	ChangeDatum        *Datum            `json:"changeDatum,omitempty"`
	Metadata           []Metadata        `json:"metadata"`
	ValidityRange      ValidityRange     `json:"validityRange"`
	Certificates       []json.RawMessage `json:"certificates"`
	SigningKeys        []string          `json:"signingKey"`
}

func marshalList[T any](items []T) ([]json.RawMessage, error) {
	ret := make([]json.RawMessage, 0, len(items))
	for _, item := range items {
		tmp, err := json.Marshal(item)
		if err != nil {
			return nil, err
		}
		ret = append(ret, tmp)
	}
	return ret, nil
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

func (b TransactionBody) MarshalJSON() ([]byte, error) {
	tmp := transactionBodyJson{
		RequiredSignatures: nonNil(b.RequiredSignatures),
		ReferenceInputs:    nonNil(b.ReferenceInputs),
		ChangeAddress:      b.ChangeAddress,
		ChangeDatum:        b.ChangeDatum,
		Metadata:           nonNil(b.Metadata),
		ValidityRange:      b.ValidityRange,
		SigningKeys:        nonNil(b.SigningKeys),
	}
	var err error
	if tmp.Inputs, err = marshalList(b.Inputs); err != nil {
		return nil, fmt.Errorf("inputs: %w", err)
	}
	if tmp.Outputs, err = marshalList(b.Outputs); err != nil {
		return nil, fmt.Errorf("outputs: %w", err)
	}
	if tmp.Collaterals, err = marshalList(b.Collaterals); err != nil {
		return nil, fmt.Errorf("collaterals: %w", err)
	}
	if tmp.Withdrawals, err = marshalList(b.Withdrawals); err != nil {
		return nil, fmt.Errorf("withdrawals: %w", err)
	}
	if tmp.Mints, err = marshalList(b.Mints); err != nil {
		return nil, fmt.Errorf("mints: %w", err)
	}
	if tmp.Certificates, err = marshalList(b.Certificates); err != nil {
		return nil, fmt.Errorf("certificates: %w", err)
	}
	return json.Marshal(tmp)
}

func (b *TransactionBody) UnmarshalJSON(data []byte) error {
	var tmp transactionBodyJson
	if err := unmarshalField(data, &tmp, ""); err != nil {
		return err
	}
	var err error
	ret := TransactionBody{
		RequiredSignatures: tmp.RequiredSignatures,
		ReferenceInputs:    tmp.ReferenceInputs,
		ChangeAddress:      tmp.ChangeAddress,
		ChangeDatum:        tmp.ChangeDatum,
		Metadata:           tmp.Metadata,
		ValidityRange:      tmp.ValidityRange,
		SigningKeys:        tmp.SigningKeys,
	}
	if ret.Inputs, err = decodeList(
		tmp.Inputs,
		"inputs",
		decodeTxIn,
	); err != nil {
		return err
	}
	if ret.Outputs, err = decodeList(
		tmp.Outputs,
		"outputs",
		decodeOutput,
	); err != nil {
		return err
	}
	if ret.Collaterals, err = decodeList(
		tmp.Collaterals,
		"collaterals",
		decodePubKeyTxIn,
	); err != nil {
		return err
	}
	if ret.Withdrawals, err = decodeList(
		tmp.Withdrawals,
		"withdrawals",
		decodeWithdrawal,
	); err != nil {
		return err
	}
	if ret.Mints, err = decodeList(
		tmp.Mints,
		"mints",
		decodeMintItem,
	); err != nil {
		return err
	}
	if ret.Certificates, err = decodeList(
		tmp.Certificates,
		"certificates",
		decodeCertificate,
	); err != nil {
		return err
	}
	*b = ret
	return nil
}

// Clone returns a deep copy of the transaction body, made by a JSON round trip. Nil
// lists come back as empty lists
func (b *TransactionBody) Clone() (*TransactionBody, error) {
	tmpJson, err := json.Marshal(b)
	if err != nil {
		return nil, fmt.Errorf("clone transaction body: %w", err)
	}
	ret := &TransactionBody{}
	if err := json.Unmarshal(tmpJson, ret); err != nil {
		return nil, fmt.Errorf("clone transaction body: %w", err)
	}
	return ret, nil
}

// Asset is an amount of a single asset. Unit is "lovelace" or the policy id hex followed
// by the asset name hex
type Asset struct {
	Unit     string `json:"unit"`
	Quantity string `json:"quantity"`
}

// Output is a transaction output
type Output struct {
	Address         string                `json:"address"`
	Amount          []Asset               `json:"amount"`
	Datum           *Datum                `json:"datum,omitempty"`
	ReferenceScript *ProvidedScriptSource `json:"referenceScript,omitempty"`
}

func decodeOutput(data json.RawMessage, path string) (Output, error) {
	if isNull(data) {
		return Output{}, fieldErrorf(path, "missing output")
	}
	var tmp struct {
		Address         string          `json:"address"`
		Amount          []Asset         `json:"amount"`
		Datum           *Datum          `json:"datum"`
		ReferenceScript json.RawMessage `json:"referenceScript"`
	}
	if err := unmarshalField(data, &tmp, path); err != nil {
		return Output{}, err
	}
	ret := Output{
		Address: tmp.Address,
		Amount:  tmp.Amount,
		Datum:   tmp.Datum,
	}
	if !isNull(tmp.ReferenceScript) {
		refScript, err := decodeProvidedScriptSource(
			tmp.ReferenceScript,
			joinPath(path, "referenceScript"),
		)
		if err != nil {
			return Output{}, err
		}
		ret.ReferenceScript = &refScript
	}
	return ret, nil
}

const (
	DatumTypeHash   = "Hash"
	DatumTypeInline = "Inline"
)

// Datum attached to an output, either by hash or inline. Data is hex: the datum hash
// for DatumTypeHash and the datum CBOR for DatumTypeInline
type Datum struct {
	Type string `json:"type"`
	Data string `json:"data"`
}

// ToPlutusData decodes an inline datum
func (d Datum) ToPlutusData() (data.PlutusData, error) {
	if d.Type != DatumTypeInline {
		return nil, fmt.Errorf("datum of type %q has no inline data", d.Type)
	}
	return decodePlutusData(d.Data)
}

const (
	MintTypePlutus = "Plutus"
	MintTypeNative = "Native"
)

// MintItem mints (positive Amount) or burns (negative Amount) a single asset
type MintItem struct {
	Type         string
	PolicyId     string
	AssetName    string
	Amount       int64
	Redeemer     *Redeemer
	ScriptSource ScriptSource
}

type mintItemJson struct {
	Type         string          `json:"type"`
	PolicyId     string          `json:"policyId"`
	AssetName    string          `json:"assetName"`
	Amount       int64           `json:"amount"`
	Redeemer     *Redeemer       `json:"redeemer,omitempty"`
	ScriptSource json.RawMessage `json:"scriptSource,omitempty"`
}

func (m MintItem) MarshalJSON() ([]byte, error) {
	scriptSource, err := marshalOptional(m.ScriptSource)
	if err != nil {
		return nil, err
	}
	return json.Marshal(mintItemJson{
		Type:         m.Type,
		PolicyId:     m.PolicyId,
		AssetName:    m.AssetName,
		Amount:       m.Amount,
		Redeemer:     m.Redeemer,
		ScriptSource: scriptSource,
	})
}

func (m *MintItem) UnmarshalJSON(data []byte) error {
	tmp, err := decodeMintItem(data, "")
	if err != nil {
		return err
	}
	*m = tmp
	return nil
}

func decodeMintItem(data json.RawMessage, path string) (MintItem, error) {
	if isNull(data) {
		return MintItem{}, fieldErrorf(path, "missing mint")
	}
	var tmp mintItemJson
	if err := unmarshalField(data, &tmp, path); err != nil {
		return MintItem{}, err
	}
	scriptSource, err := decodeScriptSource(
		tmp.ScriptSource,
		joinPath(path, "scriptSource"),
	)
	if err != nil {
		return MintItem{}, err
	}
	return MintItem{
		Type:         tmp.Type,
		PolicyId:     tmp.PolicyId,
		AssetName:    tmp.AssetName,
		Amount:       tmp.Amount,
		Redeemer:     tmp.Redeemer,
		ScriptSource: scriptSource,
	}, nil
}

// Metadata is a transaction metadata entry. Tag is the decimal metadata label and
// Metadata is the payload, which is not interpreted here
type Metadata struct {
	Tag      string `json:"tag"`
	Metadata string `json:"metadata"`
}

// ValidityRange holds the optional slot bounds of a transaction
type ValidityRange struct {
	InvalidBefore    *uint64 `json:"invalidBefore,omitempty"`
	InvalidHereafter *uint64 `json:"invalidHereafter,omitempty"`
}
