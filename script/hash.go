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
	"fmt"
	"slices"

	"github.com/blinklabs-io/txdraft/primitive"
)

// Script type prefixes used when hashing scripts.
const (
	ScriptRefTypeNativeScript = 0
	ScriptRefTypePlutusV1     = 1
	ScriptRefTypePlutusV2     = 2
	ScriptRefTypePlutusV3     = 3
)

type ScriptHash = primitive.Blake2b224

// Hash computes the ledger hash of a Plutus script given in either wrapped form. The
// hash covers the script type prefix and the single-wrapped script bytes.
func Hash(scriptHex string, scriptType uint) (ScriptHash, error) {
	if scriptType < ScriptRefTypePlutusV1 || scriptType > ScriptRefTypePlutusV3 {
		return ScriptHash{}, fmt.Errorf("unknown Plutus script type %d", scriptType)
	}
	raw, err := primitive.DecodeHex(scriptHex)
	if err != nil {
		return ScriptHash{}, &DecodeError{Err: err}
	}
	normalized, _, err := normalize(raw)
	if err != nil {
		return ScriptHash{}, err
	}
	single, _, err := unwrap(normalized)
	if err != nil {
		return ScriptHash{}, err
	}
	return primitive.Blake2b224Hash(
		slices.Concat(
			[]byte{byte(scriptType)},
			single,
		),
	), nil
}
