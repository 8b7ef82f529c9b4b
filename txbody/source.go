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
	"strings"

	"github.com/blinklabs-io/plutigo/data"
	"github.com/blinklabs-io/txdraft/primitive"
	"github.com/blinklabs-io/txdraft/script"
)

// LanguageVersion is the Plutus language version of a script. The values match the
// ledger script type prefixes used for hashing.
type LanguageVersion uint

const (
	LanguageVersionV1 LanguageVersion = script.ScriptRefTypePlutusV1
	LanguageVersionV2 LanguageVersion = script.ScriptRefTypePlutusV2
	LanguageVersionV3 LanguageVersion = script.ScriptRefTypePlutusV3
)

func (v LanguageVersion) Valid() bool {
	return v >= LanguageVersionV1 && v <= LanguageVersionV3
}

func (v LanguageVersion) String() string {
	switch v {
	case LanguageVersionV1:
		return "v1"
	case LanguageVersionV2:
		return "v2"
	case LanguageVersionV3:
		return "v3"
	default:
		return fmt.Sprintf("unknown(%d)", uint(v))
	}
}

func (v LanguageVersion) MarshalJSON() ([]byte, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("invalid language version %d", uint(v))
	}
	return json.Marshal(v.String())
}

func (v *LanguageVersion) UnmarshalJSON(data []byte) error {
	var tmp string
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	parsed, err := ParseLanguageVersion(tmp)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// ParseLanguageVersion accepts "v1", "v2" or "v3" in any case.
func ParseLanguageVersion(s string) (LanguageVersion, error) {
	switch strings.ToLower(s) {
	case "v1":
		return LanguageVersionV1, nil
	case "v2":
		return LanguageVersionV2, nil
	case "v3":
		return LanguageVersionV3, nil
	default:
		return 0, fmt.Errorf("unknown language version %q", s)
	}
}

const (
	ScriptSourceTypeProvided = "Provided"
	ScriptSourceTypeInline   = "Inline"

	DatumSourceTypeProvided = "Provided"
	DatumSourceTypeInline   = "Inline"
)

// ScriptSource is one of ProvidedScriptSource or InlineScriptSource.
type ScriptSource interface {
	isScriptSource()
	Version() LanguageVersion
}

// ProvidedScriptSource carries the script bytes directly in the transaction.
type ProvidedScriptSource struct {
	ScriptCbor      string
	LanguageVersion LanguageVersion
}

func (ProvidedScriptSource) isScriptSource() {}

func (s ProvidedScriptSource) Version() LanguageVersion {
	return s.LanguageVersion
}

// Hash returns the ledger hash of the script.
func (s ProvidedScriptSource) Hash() (script.ScriptHash, error) {
	return script.Hash(s.ScriptCbor, uint(s.LanguageVersion))
}

// NewProvidedScriptSource normalizes a compiled script, applies any parameters, and
// returns the finished script ready to be attached to a transaction.
func NewProvidedScriptSource(
	scriptHex string,
	version LanguageVersion,
	params ...string,
) (ProvidedScriptSource, error) {
	if !version.Valid() {
		return ProvidedScriptSource{}, fmt.Errorf(
			"invalid language version %d",
			uint(version),
		)
	}
	finished, err := script.ApplyParams(params, scriptHex)
	if err != nil {
		return ProvidedScriptSource{}, err
	}
	return ProvidedScriptSource{
		ScriptCbor:      finished,
		LanguageVersion: version,
	}, nil
}

type providedScriptSourceJson struct {
	Type            string          `json:"type,omitempty"`
	ScriptCbor      string          `json:"scriptCbor"`
	LanguageVersion LanguageVersion `json:"languageVersion"`
}

func (s ProvidedScriptSource) MarshalJSON() ([]byte, error) {
	return json.Marshal(providedScriptSourceJson{
		Type:            ScriptSourceTypeProvided,
		ScriptCbor:      s.ScriptCbor,
		LanguageVersion: s.LanguageVersion,
	})
}

func (s *ProvidedScriptSource) UnmarshalJSON(data []byte) error {
	tmp, err := decodeProvidedScriptSource(data, "")
	if err != nil {
		return err
	}
	*s = tmp
	return nil
}

// decodeProvidedScriptSource also accepts objects without a discriminant, which is how
// output reference scripts are commonly given.
func decodeProvidedScriptSource(
	data json.RawMessage,
	path string,
) (ProvidedScriptSource, error) {
	var tmp providedScriptSourceJson
	if err := unmarshalField(data, &tmp, path); err != nil {
		return ProvidedScriptSource{}, err
	}
	if tmp.Type != "" && tmp.Type != ScriptSourceTypeProvided {
		return ProvidedScriptSource{}, unknownVariant(
			path,
			tmp.Type,
			ScriptSourceTypeProvided,
		)
	}
	return ProvidedScriptSource{
		ScriptCbor:      tmp.ScriptCbor,
		LanguageVersion: tmp.LanguageVersion,
	}, nil
}

// InlineScriptSource references a script stored in the reference script field of an
// on-chain output.
type InlineScriptSource struct {
	TxHash             string
	TxIndex            uint32
	SpendingScriptHash string
	LanguageVersion    LanguageVersion
	// Size in bytes of the referenced script, which feeds into fee calculation.
	ScriptSize uint64
}

func (InlineScriptSource) isScriptSource() {}

func (s InlineScriptSource) Version() LanguageVersion {
	return s.LanguageVersion
}

type inlineScriptSourceJson struct {
	Type               string          `json:"type"`
	TxHash             string          `json:"txHash"`
	TxIndex            uint32          `json:"txIndex"`
	SpendingScriptHash string          `json:"spendingScriptHash"`
	LanguageVersion    LanguageVersion `json:"languageVersion"`
	ScriptSize         uint64          `json:"scriptSize"`
}

func (s InlineScriptSource) MarshalJSON() ([]byte, error) {
	return json.Marshal(inlineScriptSourceJson{
		Type:               ScriptSourceTypeInline,
		TxHash:             s.TxHash,
		TxIndex:            s.TxIndex,
		SpendingScriptHash: s.SpendingScriptHash,
		LanguageVersion:    s.LanguageVersion,
		ScriptSize:         s.ScriptSize,
	})
}

func (s *InlineScriptSource) UnmarshalJSON(data []byte) error {
	tmp, err := decodeInlineScriptSource(data, "")
	if err != nil {
		return err
	}
	*s = tmp
	return nil
}

func decodeInlineScriptSource(
	data json.RawMessage,
	path string,
) (InlineScriptSource, error) {
	var tmp inlineScriptSourceJson
	if err := unmarshalField(data, &tmp, path); err != nil {
		return InlineScriptSource{}, err
	}
	if tmp.Type != ScriptSourceTypeInline {
		return InlineScriptSource{}, unknownVariant(
			path,
			tmp.Type,
			ScriptSourceTypeInline,
		)
	}
	return InlineScriptSource{
		TxHash:             tmp.TxHash,
		TxIndex:            tmp.TxIndex,
		SpendingScriptHash: tmp.SpendingScriptHash,
		LanguageVersion:    tmp.LanguageVersion,
		ScriptSize:         tmp.ScriptSize,
	}, nil
}

// UnmarshalScriptSource decodes a ScriptSource from its tagged JSON form.
func UnmarshalScriptSource(data []byte) (ScriptSource, error) {
	return decodeScriptSource(data, "")
}

func decodeScriptSource(data json.RawMessage, path string) (ScriptSource, error) {
	if isNull(data) {
		return nil, nil
	}
	sourceType, err := variantType(data, path)
	if err != nil {
		return nil, err
	}
	switch sourceType {
	case ScriptSourceTypeProvided:
		return decodeProvidedScriptSource(data, path)
	case ScriptSourceTypeInline:
		return decodeInlineScriptSource(data, path)
	default:
		return nil, unknownVariant(
			path,
			sourceType,
			ScriptSourceTypeProvided,
			ScriptSourceTypeInline,
		)
	}
}

// DatumSource is one of ProvidedDatumSource or InlineDatumSource.
type DatumSource interface {
	isDatumSource()
}

// ProvidedDatumSource carries the CBOR hex of the datum in the transaction.
type ProvidedDatumSource struct {
	Data string
}

func (ProvidedDatumSource) isDatumSource() {}

func (d ProvidedDatumSource) ToPlutusData() (data.PlutusData, error) {
	return decodePlutusData(d.Data)
}

func (d ProvidedDatumSource) MarshalJSON() ([]byte, error) {
	tmp := struct {
		Type string `json:"type"`
		Data string `json:"data"`
	}{
		Type: DatumSourceTypeProvided,
		Data: d.Data,
	}
	return json.Marshal(tmp)
}

// InlineDatumSource references the inline datum of the output being spent.
type InlineDatumSource struct {
	TxHash  string
	TxIndex uint32
}

func (InlineDatumSource) isDatumSource() {}

func (d InlineDatumSource) MarshalJSON() ([]byte, error) {
	tmp := struct {
		Type    string `json:"type"`
		TxHash  string `json:"txHash"`
		TxIndex uint32 `json:"txIndex"`
	}{
		Type:    DatumSourceTypeInline,
		TxHash:  d.TxHash,
		TxIndex: d.TxIndex,
	}
	return json.Marshal(tmp)
}

// UnmarshalDatumSource decodes a DatumSource from its tagged JSON form.
func UnmarshalDatumSource(data []byte) (DatumSource, error) {
	return decodeDatumSource(data, "")
}

func decodeDatumSource(data json.RawMessage, path string) (DatumSource, error) {
	if isNull(data) {
		return nil, nil
	}
	sourceType, err := variantType(data, path)
	if err != nil {
		return nil, err
	}
	switch sourceType {
	case DatumSourceTypeProvided:
		var tmp struct {
			Data string `json:"data"`
		}
		if err := unmarshalField(data, &tmp, path); err != nil {
			return nil, err
		}
		return ProvidedDatumSource{Data: tmp.Data}, nil
	case DatumSourceTypeInline:
		var tmp struct {
			TxHash  string `json:"txHash"`
			TxIndex uint32 `json:"txIndex"`
		}
		if err := unmarshalField(data, &tmp, path); err != nil {
			return nil, err
		}
		return InlineDatumSource{TxHash: tmp.TxHash, TxIndex: tmp.TxIndex}, nil
	default:
		return nil, unknownVariant(
			path,
			sourceType,
			DatumSourceTypeProvided,
			DatumSourceTypeInline,
		)
	}
}

// Budget bounds the execution cost of a script.
type Budget struct {
	Mem   uint64 `json:"mem"`
	Steps uint64 `json:"steps"`
}

// Redeemer is the CBOR hex of the redeemer data plus its execution budget.
type Redeemer struct {
	Data    string `json:"data"`
	ExUnits Budget `json:"exUnits"`
}

func (r Redeemer) ToPlutusData() (data.PlutusData, error) {
	return decodePlutusData(r.Data)
}

func decodePlutusData(dataHex string) (data.PlutusData, error) {
	dataBytes, err := primitive.DecodeHex(dataHex)
	if err != nil {
		return nil, err
	}
	ret, err := data.Decode(dataBytes)
	if err != nil {
		return nil, fmt.Errorf("decode plutus data: %w", err)
	}
	return ret, nil
}
