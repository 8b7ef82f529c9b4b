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

package script

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/blinklabs-io/plutigo/data"
	"github.com/blinklabs-io/plutigo/syn"
	"github.com/blinklabs-io/txdraft/cbor"
	"github.com/blinklabs-io/txdraft/internal/flat"
)

// ApplyParams applies Plutus data parameters, given in the detailed JSON schema, to a
// compiled script. The first parameter is applied first. The script may be single or
// double-wrapped and the result is always double-wrapped. With no parameters, the result
// is the normalized script.
func ApplyParams(params []string, scriptHex string) (string, error) {
	normalized, err := Normalize(scriptHex)
	if err != nil {
		return "", err
	}
	if len(params) == 0 {
		return normalized, nil
	}
	items := make([]data.PlutusData, len(params))
	for i, param := range params {
		item, err := decodeDatumJSON(param, fmt.Sprintf("$[%d]", i))
		if err != nil {
			return "", err
		}
		items[i] = item
	}
	return applyData(items, normalized)
}

// ApplyParamsData is the same as ApplyParams, but takes already decoded Plutus data.
func ApplyParamsData(params []data.PlutusData, scriptHex string) (string, error) {
	normalized, err := Normalize(scriptHex)
	if err != nil {
		return "", err
	}
	if len(params) == 0 {
		return normalized, nil
	}
	return applyData(params, normalized)
}

func applyData(params []data.PlutusData, normalizedHex string) (string, error) {
	normalized, err := hex.DecodeString(normalizedHex)
	if err != nil {
		return "", &DecodeError{Err: err}
	}
	_, programBytes, err := unwrap(normalized)
	if err != nil {
		return "", err
	}
	program, err := flat.Scan(programBytes)
	if err != nil {
		return "", &ScriptFormatError{Err: fmt.Errorf("decode program: %w", err)}
	}
	args := make([][]byte, len(params))
	for i, param := range params {
		if param == nil {
			return "", &SchemaError{
				Path: fmt.Sprintf("$[%d]", i),
				Err:  errors.New("missing plutus data"),
			}
		}
		argCbor, err := data.Encode(param)
		if err != nil {
			return "", &SchemaError{
				Path: fmt.Sprintf("$[%d]", i),
				Err:  fmt.Errorf("encode plutus data: %w", err),
			}
		}
		args[i] = argCbor
	}
	applied, err := program.ApplyData(args)
	if err != nil {
		return "", &ApplicationError{Err: err}
	}
	// Make sure the result is a program the evaluator will accept
	if _, err := syn.Decode[syn.DeBruijn](applied); err != nil {
		return "", &ApplicationError{Err: fmt.Errorf("decode applied program: %w", err)}
	}
	single, err := cbor.EncodeByteString(applied)
	if err != nil {
		return "", &ApplicationError{Err: err}
	}
	double, err := cbor.EncodeByteString(single)
	if err != nil {
		return "", &ApplicationError{Err: err}
	}
	return hex.EncodeToString(double), nil
}
