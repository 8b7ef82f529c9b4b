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

package test

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Compiled validator used across tests, in its single-wrapped
// (one CBOR bytestring around the flat program) and double-wrapped forms
const (
	ScriptSingleHex = "584501000032323232323222533300432323253330073370e900018041baa0011324a2600c0022c60120026012002600600229309b2b118021baa0015734aae7555cf2ba157441"
	ScriptDoubleHex = "5847" + ScriptSingleHex
	// ScriptDoubleHex with {"bytes": "1234"} applied
	ScriptAppliedHex = "584f584d010000332323232323222533300432323253330073370e900018041baa0011324a2600c0022c60120026012002600600229309b2b118021baa0015734aae7555cf2ba157449801034212340001"

	// Three-argument validator whose body traces "validating escrow" and "bad owner",
	// compares against a bytestring, returns a data constant and also holds list,
	// pair, integer, unit and bool constants. Its byte-aligned constants sit at odd
	// nibble offsets once an argument is applied
	ScriptTraceSingleHex = "58650100002223357389211176616c69646174696e6720657363726f7700333573466e3d220103cafe01000014c105d8799f07ff00335738920109626164206f776e657200333320014bd62901aa008102bbcc0019b80480152f7b42254101ff00337369325161"
	ScriptTraceDoubleHex = "5867" + ScriptTraceSingleHex
)

// DecodeHexString is a helper function for tests that decodes hex strings. It doesn't return
// an error value, which makes it usable inline.
func DecodeHexString(hexData string) []byte {
	// Strip off any leading/trailing whitespace in hex string
	hexData = strings.TrimSpace(hexData)
	decoded, err := hex.DecodeString(hexData)
	if err != nil {
		panic(fmt.Sprintf("error decoding hex: %s", err))
	}
	return decoded
}
