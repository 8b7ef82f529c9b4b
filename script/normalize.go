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

	"github.com/blinklabs-io/txdraft/cbor"
	"github.com/blinklabs-io/txdraft/primitive"
)

// Normalize returns the double CBOR-wrapped form of a compiled script, which is the form
// the ledger expects for Plutus scripts. A script that is already double-wrapped is
// returned unchanged, so Normalize is idempotent.
func Normalize(scriptHex string) (string, error) {
	raw, err := primitive.DecodeHex(scriptHex)
	if err != nil {
		return "", &DecodeError{Err: err}
	}
	normalized, changed, err := normalize(raw)
	if err != nil {
		return "", err
	}
	if !changed {
		return scriptHex, nil
	}
	return hex.EncodeToString(normalized), nil
}

// NormalizeBytes is the same as Normalize, but operates on raw bytes.
func NormalizeBytes(raw []byte) ([]byte, error) {
	normalized, _, err := normalize(raw)
	return normalized, err
}

func normalize(raw []byte) ([]byte, bool, error) {
	inner, err := cbor.DecodeByteString(raw)
	if err != nil {
		return nil, false, &ScriptFormatError{Err: err}
	}
	if _, err := cbor.DecodeByteString(inner); err == nil {
		return raw, false, nil
	}
	// Single-wrapped, so add exactly one more layer around the original bytes
	wrapped, err := cbor.EncodeByteString(raw)
	if err != nil {
		return nil, false, &ScriptFormatError{Err: err}
	}
	return wrapped, true, nil
}

// unwrap returns the single-wrapped script and the flat program from a normalized script.
func unwrap(normalized []byte) ([]byte, []byte, error) {
	single, err := cbor.DecodeByteString(normalized)
	if err != nil {
		return nil, nil, &ScriptFormatError{Err: err}
	}
	program, err := cbor.DecodeByteString(single)
	if err != nil {
		return nil, nil, &ScriptFormatError{Err: err}
	}
	return single, program, nil
}

// Program returns the flat-encoded program of a single or double-wrapped script.
func Program(scriptHex string) ([]byte, error) {
	raw, err := primitive.DecodeHex(scriptHex)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	normalized, _, err := normalize(raw)
	if err != nil {
		return nil, err
	}
	_, program, err := unwrap(normalized)
	return program, err
}
