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
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/blinklabs-io/txdraft/cbor"
	"github.com/blinklabs-io/txdraft/primitive"
	"github.com/blinklabs-io/txdraft/script"
	"github.com/jinzhu/copier"
	utxorpc "github.com/utxorpc/go-codegen/utxorpc/v1alpha/cardano"
)

var (
	ErrUtxoMismatch       = errors.New("UTxO does not match the script source")
	ErrMissingScriptRef   = errors.New("UTxO has no reference script")
	ErrNativeScriptRef    = errors.New("reference script is a native script")
	ErrScriptSizeMismatch = errors.New("declared script size does not match the reference script")
	ErrScriptHashMismatch = errors.New("declared script hash does not match the reference script")
)

// UTxO is an unspent output as returned by a chain query.
type UTxO struct {
	Input  UtxoInput  `json:"input"`
	Output UtxoOutput `json:"output"`
}

type UtxoInput struct {
	OutputIndex uint32 `json:"outputIndex"`
	TxHash      string `json:"txHash"`
}

// UtxoOutput holds the contents of an unspent output. ScriptRef is the hex of the
// tag 24 wrapped reference script, as found on chain.
type UtxoOutput struct {
	Address    string  `json:"address"`
	Amount     []Asset `json:"amount"`
	DataHash   string  `json:"dataHash,omitempty"`
	PlutusData string  `json:"plutusData,omitempty"`
	ScriptRef  string  `json:"scriptRef,omitempty"`
	ScriptHash string  `json:"scriptHash,omitempty"`
}

// TxIn returns a key input spending the UTxO, with the amount and address hints populated.
func (u UTxO) TxIn() PubKeyTxIn {
	return PubKeyTxIn{
		TxIn: TxInParameter{
			TxHash:  u.Input.TxHash,
			TxIndex: u.Input.OutputIndex,
			Amount:  append([]Asset(nil), u.Output.Amount...),
			Address: u.Output.Address,
		},
	}
}

// RefTxIn returns a reference input pointing at the UTxO.
func (u UTxO) RefTxIn() RefTxIn {
	return RefTxIn{
		TxHash:  u.Input.TxHash,
		TxIndex: u.Input.OutputIndex,
	}
}

// ToOutput builds an output with the same contents as the UTxO.
func (o UtxoOutput) ToOutput() (Output, error) {
	var ret Output
	if err := copier.CopyWithOption(&ret, &o, copier.Option{DeepCopy: true}); err != nil {
		return Output{}, fmt.Errorf("copy output: %w", err)
	}
	switch {
	case o.PlutusData != "":
		ret.Datum = &Datum{Type: DatumTypeInline, Data: o.PlutusData}
	case o.DataHash != "":
		ret.Datum = &Datum{Type: DatumTypeHash, Data: o.DataHash}
	}
	if o.ScriptRef != "" {
		refScript, err := ParseScriptRef(o.ScriptRef)
		if err != nil {
			return Output{}, err
		}
		ret.ReferenceScript = &refScript
	}
	return ret, nil
}

// ParseScriptRef decodes the on-chain reference script format, a tag 24 wrapped
// [type, script] pair. Only Plutus scripts are supported.
func ParseScriptRef(scriptRefHex string) (ProvidedScriptSource, error) {
	scriptRef, err := primitive.DecodeHex(scriptRefHex)
	if err != nil {
		return ProvidedScriptSource{}, fmt.Errorf("invalid script ref: %w", err)
	}
	var wrapped cbor.WrappedCbor
	if err := cbor.DecodeFull(scriptRef, &wrapped); err != nil {
		return ProvidedScriptSource{}, fmt.Errorf("invalid script ref: %w", err)
	}
	var tmpItems []cbor.RawMessage
	if err := cbor.DecodeFull(wrapped.Bytes(), &tmpItems); err != nil {
		return ProvidedScriptSource{}, fmt.Errorf("invalid script ref: %w", err)
	}
	if len(tmpItems) != 2 {
		return ProvidedScriptSource{}, fmt.Errorf(
			"invalid script ref: expected 2 items, found %d",
			len(tmpItems),
		)
	}
	var scriptType uint
	if err := cbor.DecodeFull(tmpItems[0], &scriptType); err != nil {
		return ProvidedScriptSource{}, fmt.Errorf("invalid script ref type: %w", err)
	}
	if scriptType == script.ScriptRefTypeNativeScript {
		return ProvidedScriptSource{}, ErrNativeScriptRef
	}
	version := LanguageVersion(scriptType)
	if !version.Valid() {
		return ProvidedScriptSource{}, fmt.Errorf(
			"invalid script ref: unknown script type %d",
			scriptType,
		)
	}
	scriptBytes, err := cbor.DecodeByteString(tmpItems[1])
	if err != nil {
		return ProvidedScriptSource{}, fmt.Errorf("invalid script ref: %w", err)
	}
	return ProvidedScriptSource{
		ScriptCbor:      hex.EncodeToString(scriptBytes),
		LanguageVersion: version,
	}, nil
}

// InlineScriptSourceFromUTxO builds an InlineScriptSource for the reference script held
// by a UTxO, with the size and hash taken from the script itself.
func InlineScriptSourceFromUTxO(utxo UTxO) (InlineScriptSource, error) {
	if utxo.Output.ScriptRef == "" {
		return InlineScriptSource{}, ErrMissingScriptRef
	}
	refScript, err := ParseScriptRef(utxo.Output.ScriptRef)
	if err != nil {
		return InlineScriptSource{}, err
	}
	scriptHash, err := refScript.Hash()
	if err != nil {
		return InlineScriptSource{}, err
	}
	return InlineScriptSource{
		TxHash:             utxo.Input.TxHash,
		TxIndex:            utxo.Input.OutputIndex,
		SpendingScriptHash: scriptHash.String(),
		LanguageVersion:    refScript.LanguageVersion,
		ScriptSize:         uint64(len(utxo.Output.ScriptRef) / 2),
	}, nil
}

// ResolveInlineScript checks an InlineScriptSource against the UTxO it references. The
// declared size must equal the reference script byte length, since it feeds into the
// fee, and the declared hash must match the script.
func ResolveInlineScript(src InlineScriptSource, utxo UTxO) error {
	if !strings.EqualFold(src.TxHash, utxo.Input.TxHash) ||
		src.TxIndex != utxo.Input.OutputIndex {
		return fmt.Errorf(
			"%w: source references %s#%d, UTxO is %s#%d",
			ErrUtxoMismatch,
			src.TxHash,
			src.TxIndex,
			utxo.Input.TxHash,
			utxo.Input.OutputIndex,
		)
	}
	if utxo.Output.ScriptRef == "" {
		return ErrMissingScriptRef
	}
	scriptRef, err := primitive.DecodeHex(utxo.Output.ScriptRef)
	if err != nil {
		return fmt.Errorf("invalid script ref: %w", err)
	}
	if src.ScriptSize != uint64(len(scriptRef)) {
		return fmt.Errorf(
			"%w: declared %d bytes, found %d",
			ErrScriptSizeMismatch,
			src.ScriptSize,
			len(scriptRef),
		)
	}
	if utxo.Output.ScriptHash != "" &&
		!strings.EqualFold(utxo.Output.ScriptHash, src.SpendingScriptHash) {
		return fmt.Errorf(
			"%w: declared %s, UTxO has %s",
			ErrScriptHashMismatch,
			src.SpendingScriptHash,
			utxo.Output.ScriptHash,
		)
	}
	refScript, err := ParseScriptRef(utxo.Output.ScriptRef)
	if err != nil {
		return err
	}
	if refScript.LanguageVersion != src.LanguageVersion {
		return fmt.Errorf(
			"%w: declared language %s, reference script is %s",
			ErrUtxoMismatch,
			src.LanguageVersion,
			refScript.LanguageVersion,
		)
	}
	scriptHash, err := refScript.Hash()
	if err != nil {
		return err
	}
	if !strings.EqualFold(scriptHash.String(), src.SpendingScriptHash) {
		return fmt.Errorf(
			"%w: declared %s, reference script hashes to %s",
			ErrScriptHashMismatch,
			src.SpendingScriptHash,
			scriptHash.String(),
		)
	}
	return nil
}

func (i UtxoInput) Utxorpc() (*utxorpc.TxInput, error) {
	txHash, err := primitive.NewBlake2b256FromHex(i.TxHash)
	if err != nil {
		return nil, fmt.Errorf("invalid tx hash: %w", err)
	}
	return &utxorpc.TxInput{
		TxHash:      txHash.Bytes(),
		OutputIndex: i.OutputIndex,
	}, nil
}

func (o UtxoOutput) Utxorpc() (*utxorpc.TxOutput, error) {
	address, err := primitive.AddressBytes(o.Address)
	if err != nil {
		return nil, err
	}
	coin, assets, err := assetsUtxorpc(o.Amount)
	if err != nil {
		return nil, err
	}
	var datumHash []byte
	switch {
	case o.PlutusData != "":
		datumCbor, err := primitive.DecodeHex(o.PlutusData)
		if err != nil {
			return nil, fmt.Errorf("invalid inline datum: %w", err)
		}
		datumHash = primitive.Blake2b256Hash(datumCbor).Bytes()
	case o.DataHash != "":
		tmpHash, err := primitive.NewBlake2b256FromHex(o.DataHash)
		if err != nil {
			return nil, fmt.Errorf("invalid datum hash: %w", err)
		}
		datumHash = tmpHash.Bytes()
	default:
		datumHash = []byte{}
	}
	return &utxorpc.TxOutput{
		Address: address,
		Coin:    coin,
		Assets:  assets,
		Datum: &utxorpc.Datum{
			Hash: datumHash,
		},
	}, nil
}

func (u UTxO) Utxorpc() (*utxorpc.TxInput, *utxorpc.TxOutput, error) {
	input, err := u.Input.Utxorpc()
	if err != nil {
		return nil, nil, err
	}
	output, err := u.Output.Utxorpc()
	if err != nil {
		return nil, nil, err
	}
	return input, output, nil
}

func (o Output) Utxorpc() (*utxorpc.TxOutput, error) {
	address, err := primitive.AddressBytes(o.Address)
	if err != nil {
		return nil, err
	}
	coin, assets, err := assetsUtxorpc(o.Amount)
	if err != nil {
		return nil, err
	}
	datumHash := []byte{}
	if o.Datum != nil {
		switch o.Datum.Type {
		case DatumTypeHash:
			tmpHash, err := primitive.NewBlake2b256FromHex(o.Datum.Data)
			if err != nil {
				return nil, fmt.Errorf("invalid datum hash: %w", err)
			}
			datumHash = tmpHash.Bytes()
		case DatumTypeInline:
			datumCbor, err := primitive.DecodeHex(o.Datum.Data)
			if err != nil {
				return nil, fmt.Errorf("invalid inline datum: %w", err)
			}
			datumHash = primitive.Blake2b256Hash(datumCbor).Bytes()
		default:
			return nil, fmt.Errorf("unknown datum type %q", o.Datum.Type)
		}
	}
	return &utxorpc.TxOutput{
		Address: address,
		Coin:    coin,
		Assets:  assets,
		Datum: &utxorpc.Datum{
			Hash: datumHash,
		},
	}, nil
}

// assetsUtxorpc splits an asset list into the lovelace amount and the native assets
// grouped by policy, keeping the order in which policies first appear.
func assetsUtxorpc(amount []Asset) (uint64, []*utxorpc.Multiasset, error) {
	var coin uint64
	var assets []*utxorpc.Multiasset
	policies := make(map[primitive.Blake2b224]*utxorpc.Multiasset)
	for i, asset := range amount {
		unit, err := primitive.ParseUnit(asset.Unit)
		if err != nil {
			return 0, nil, fmt.Errorf("asset %d: %w", i, err)
		}
		quantity, err := primitive.ParseQuantity(asset.Quantity)
		if err != nil {
			return 0, nil, fmt.Errorf("asset %d: %w", i, err)
		}
		if unit.IsLovelace() {
			if quantity > math.MaxUint64-coin {
				return 0, nil, fmt.Errorf("asset %d: lovelace amount overflows", i)
			}
			coin += quantity
			continue
		}
		ma, ok := policies[unit.PolicyId]
		if !ok {
			ma = &utxorpc.Multiasset{
				PolicyId: unit.PolicyId.Bytes(),
			}
			policies[unit.PolicyId] = ma
			assets = append(assets, ma)
		}
		ma.Assets = append(
			ma.Assets,
			&utxorpc.Asset{
				Name:       unit.AssetName,
				OutputCoin: quantity,
			},
		)
	}
	return coin, assets, nil
}
